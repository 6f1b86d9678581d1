// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package gpu

import (
	"image"

	"cogentcore.org/core/base/errors"
	"github.com/cogentcore/webgpu/wgpu"
	"github.com/cogentcore/webgpu/wgpuglfw"
	"github.com/go-gl/glfw/v3.3/glfw"
)

// note: this file contains the glfw dependencies, for desktop platform builds.

// Init initializes the WebGPU system for display-enabled use, using glfw.
// Must be called before any other windowing calls.
// IMPORTANT: must be called on the main initial thread!
func Init() error {
	return errors.Log(glfw.Init())
}

// Terminate shuts down the windowing system. Call as the last thing
// before quitting.
// IMPORTANT: must be called on the main initial thread!
func Terminate() {
	glfw.Terminate()
}

// NewGLFWWindow returns a new glfw window with no client graphics API,
// suitable for WebGPU rendering, along with the WebGPU surface for it.
// Init must have been called first.
// IMPORTANT: must be called on the main initial thread!
func NewGLFWWindow(size image.Point, title string) (*glfw.Window, *wgpu.Surface, error) {
	glfw.WindowHint(glfw.ClientAPI, glfw.NoAPI)
	window, err := glfw.CreateWindow(size.X, size.Y, title, nil, nil)
	if err != nil {
		return nil, nil, errors.Log(err)
	}
	surface := Instance().CreateSurface(wgpuglfw.GetSurfaceDescriptor(window))
	return window, surface, nil
}
