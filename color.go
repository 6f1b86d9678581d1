// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package frug

import (
	"image/color"

	"cogentcore.org/core/colors"
	"github.com/cogentcore/webgpu/wgpu"
)

// Color is a linear RGBA color with float64 channels in [0, 1],
// as used for the background clear color.
type Color struct {
	R, G, B, A float64
}

// CreateColor returns a Color with each channel clamped to [0, 1].
func CreateColor(r, g, b, a float64) Color {
	return Color{
		R: clamp01(r),
		G: clamp01(g),
		B: clamp01(b),
		A: clamp01(a),
	}
}

// CreateColorFrom returns a Color from any standard [color.Color].
func CreateColorFrom(c color.Color) Color {
	r, g, b, a := colors.ToFloat32(c)
	return Color{R: float64(r), G: float64(g), B: float64(b), A: float64(a)}
}

func (c Color) wgpu() wgpu.Color {
	return wgpu.Color{R: c.R, G: c.G, B: c.B, A: c.A}
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
