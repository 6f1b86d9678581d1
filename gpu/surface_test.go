// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package gpu

import (
	"image"
	"testing"

	"github.com/cogentcore/webgpu/wgpu"
	"github.com/stretchr/testify/assert"
)

func TestSelectFormat(t *testing.T) {
	assert.Equal(t, wgpu.TextureFormatBGRA8UnormSrgb, SelectFormat([]wgpu.TextureFormat{
		wgpu.TextureFormatBGRA8Unorm,
		wgpu.TextureFormatBGRA8UnormSrgb,
		wgpu.TextureFormatRGBA8UnormSrgb,
	}))

	// no sRGB format available: first supported is used
	assert.Equal(t, wgpu.TextureFormatBGRA8Unorm, SelectFormat([]wgpu.TextureFormat{
		wgpu.TextureFormatBGRA8Unorm,
		wgpu.TextureFormatRGBA8Unorm,
	}))

	assert.Equal(t, wgpu.TextureFormatUndefined, SelectFormat(nil))
}

func TestIsSRGB(t *testing.T) {
	assert.True(t, IsSRGB(wgpu.TextureFormatRGBA8UnormSrgb))
	assert.True(t, IsSRGB(wgpu.TextureFormatBGRA8UnormSrgb))
	assert.False(t, IsSRGB(wgpu.TextureFormatBGRA8Unorm))
	assert.False(t, IsSRGB(wgpu.TextureFormatRGBA8Unorm))
}

func TestUpdateConfig(t *testing.T) {
	cfg := wgpu.SurfaceConfiguration{Width: 800, Height: 600}

	assert.False(t, UpdateConfig(&cfg, image.Point{0, 400}))
	assert.False(t, UpdateConfig(&cfg, image.Point{400, 0}))
	assert.False(t, UpdateConfig(&cfg, image.Point{-1, 400}))
	assert.Equal(t, uint32(800), cfg.Width)
	assert.Equal(t, uint32(600), cfg.Height)

	assert.True(t, UpdateConfig(&cfg, image.Point{1024, 768}))
	assert.Equal(t, uint32(1024), cfg.Width)
	assert.Equal(t, uint32(768), cfg.Height)

	// same size is still applied, for surface reconfiguration
	assert.True(t, UpdateConfig(&cfg, image.Point{1024, 768}))
}
