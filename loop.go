// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package frug

import (
	stderrors "errors"
	"image"
	"time"

	"cogentcore.org/core/base/errors"
	"github.com/cogentcore/frug/gpu"
	"github.com/go-gl/glfw/v3.3/glfw"
)

// Session is what a [Driver] needs from a render session.
// [*RenderSession] implements it.
type Session interface {
	// Render draws one frame, returning [*gpu.SurfaceError] when the
	// next frame could not be acquired.
	Render() error

	// Resize updates the render target to the given size in raw
	// physical pixels, ignoring zero dimensions.
	Resize(size image.Point)

	// Size returns the last applied render target size.
	Size() image.Point
}

// Driver runs the event loop for a session: it pumps window events,
// renders a frame, applies the per-frame error policy, and calls the
// user Frame function once per iteration. The loop blocks
// cooperatively between frames rather than spinning.
type Driver struct {
	// Session is the session being driven.
	Session Session

	// Window is the window whose events are pumped. The loop ends when
	// it is closed.
	Window *glfw.Window

	// Frame, if set, is called exactly once per loop iteration, after
	// the frame has been rendered.
	Frame func()

	// FramePeriod is the maximum time to block waiting for events
	// between frames. The default is ~16ms (60 FPS).
	FramePeriod time.Duration

	err error
}

// Err returns the error that terminated the loop, or nil for a normal
// window close.
func (dr *Driver) Err() error {
	return dr.err
}

// Run drives the loop until the window closes or rendering fails
// unrecoverably, returning the terminating error if any.
// It must be called on the main thread.
func (dr *Driver) Run() error {
	w := dr.Window
	w.SetFramebufferSizeCallback(func(_ *glfw.Window, width, height int) {
		dr.Session.Resize(image.Point{width, height})
	})
	w.SetContentScaleCallback(func(_ *glfw.Window, x, y float32) {
		width, height := w.GetFramebufferSize()
		dr.Session.Resize(image.Point{width, height})
	})
	for !w.ShouldClose() {
		glfw.WaitEventsTimeout(dr.framePeriod().Seconds())
		if !dr.step() {
			break
		}
	}
	return dr.err
}

func (dr *Driver) framePeriod() time.Duration {
	if dr.FramePeriod > 0 {
		return dr.FramePeriod
	}
	return time.Second / 60
}

// step renders one frame, applies the error policy, and calls the
// Frame function. It reports whether the loop should continue.
func (dr *Driver) step() bool {
	ok := dr.handleRenderError(dr.Session.Render())
	if dr.Frame != nil {
		dr.Frame()
	}
	return ok
}

// handleRenderError applies the per-frame error policy: a lost surface
// is reconfigured at the last known size and the loop continues, out
// of memory terminates the loop, and anything else is logged and the
// frame skipped. It reports whether the loop should continue.
func (dr *Driver) handleRenderError(err error) bool {
	if err == nil {
		return true
	}
	var se *gpu.SurfaceError
	if stderrors.As(err, &se) {
		switch se.Kind {
		case gpu.SurfaceLost:
			dr.Session.Resize(dr.Session.Size())
			return true
		case gpu.SurfaceOutOfMemory:
			dr.err = se
			errors.Log(se)
			return false
		default:
			errors.Log(se)
			return true
		}
	}
	errors.Log(err)
	return true
}
