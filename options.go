// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package frug

import (
	"image"
)

// SessionOption configures a [RenderSession] during creation.
type SessionOption func(*sessionOptions)

// sessionOptions holds optional configuration for session creation.
type sessionOptions struct {
	size       image.Point
	mesh       Mesh
	shaderCode string
	background Color
}

func defaultSessionOptions() sessionOptions {
	return sessionOptions{
		size:       image.Point{800, 600},
		mesh:       DefaultMesh(),
		shaderCode: vertexColorShader,
		background: CreateColor(0.2, 0.2, 0.2, 1),
	}
}

// WithSize sets the initial window or target size in pixels.
// The default is 800x600.
func WithSize(width, height int) SessionOption {
	return func(o *sessionOptions) {
		o.size = image.Point{width, height}
	}
}

// WithMesh sets the geometry drawn each frame, replacing the default
// pentagon. The mesh must be valid per [Mesh.Validate].
func WithMesh(mesh Mesh) SessionOption {
	return func(o *sessionOptions) {
		o.mesh = mesh
	}
}

// WithShader sets custom WGSL shader source, which must provide
// vs_main and fs_main entry points with vertex inputs matching
// [VertexLayout].
func WithShader(code string) SessionOption {
	return func(o *sessionOptions) {
		o.shaderCode = code
	}
}

// WithBackground sets the initial background clear color.
func WithBackground(c Color) SessionOption {
	return func(o *sessionOptions) {
		o.background = c
	}
}
