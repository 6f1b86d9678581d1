// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package frug is a minimal library for getting pixels on screen with
// WebGPU: it creates a window, negotiates a GPU device, and runs a
// render loop drawing indexed triangle geometry over a configurable
// background color.
//
// The simplest use is a single call:
//
//	frug.Run("my app", func(sn *frug.RenderSession) {
//		sn.SetBackgroundColor(frug.CreateColor(0.1, 0.2, 0.3, 1))
//	})
//
// For more control, create a [RenderSession] directly with
// [NewSession] and drive it with a [Driver], or render offscreen with
// [NewOffscreenSession].
package frug

import (
	"runtime"

	"github.com/cogentcore/frug/gpu"
)

func init() {
	// glfw event processing must run on the main OS thread
	runtime.LockOSThread()
}

// Run opens a window with the given title and runs the render loop
// until the window is closed, drawing the default geometry over the
// session background color. The frame function, if non-nil, is called
// once per loop iteration with the session, after each frame renders;
// use it to change session state such as the background color.
// Run blocks until the loop ends and returns the error that
// terminated it, if any. It must be called from the main goroutine.
func Run(title string, frame func(sn *RenderSession), opts ...SessionOption) error {
	if err := gpu.Init(); err != nil {
		return err
	}
	defer gpu.Terminate()

	sn, err := NewSession(title, opts...)
	if err != nil {
		return err
	}
	defer sn.Release()

	dr := &Driver{Session: sn, Window: sn.Window()}
	if frame != nil {
		dr.Frame = func() { frame(sn) }
	}
	return dr.Run()
}
