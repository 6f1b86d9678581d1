// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package gpu

import (
	"strings"
)

// SurfaceErrorKinds classifies failures to acquire the next presentable
// texture from a [Surface]. Each kind has a distinct recovery policy,
// applied by the frame loop driving the surface.
type SurfaceErrorKinds int32

const (
	// SurfaceLost means the surface has been invalidated and must be
	// reconfigured at the last known size before the next frame.
	SurfaceLost SurfaceErrorKinds = iota

	// SurfaceOutdated means the surface configuration no longer matches
	// the window, typically mid-resize. The pending resize fixes it, so
	// the frame is skipped and the next one proceeds normally.
	SurfaceOutdated

	// SurfaceTimeout means the next texture could not be acquired in
	// time. The frame is skipped.
	SurfaceTimeout

	// SurfaceOutOfMemory means the device or driver has exhausted
	// memory. This is not recoverable: rendering must stop.
	SurfaceOutOfMemory

	// SurfaceOther covers any other acquisition failure, which is
	// assumed transient: the frame is skipped and rendering continues.
	SurfaceOther
)

var surfaceErrorKindNames = map[SurfaceErrorKinds]string{
	SurfaceLost:        "Lost",
	SurfaceOutdated:    "Outdated",
	SurfaceTimeout:     "Timeout",
	SurfaceOutOfMemory: "OutOfMemory",
	SurfaceOther:       "Other",
}

func (sk SurfaceErrorKinds) String() string {
	if nm, ok := surfaceErrorKindNames[sk]; ok {
		return nm
	}
	return "Other"
}

// SurfaceError is a failure to acquire the next presentable texture,
// classified by [SurfaceErrorKinds] so the frame loop can apply the
// right recovery policy.
type SurfaceError struct {
	Kind SurfaceErrorKinds
	Err  error
}

func (se *SurfaceError) Error() string {
	return "gpu.Surface: " + se.Kind.String() + ": " + se.Err.Error()
}

func (se *SurfaceError) Unwrap() error {
	return se.Err
}

// Recoverable reports whether rendering can continue after this error.
// Only [SurfaceOutOfMemory] is unrecoverable.
func (se *SurfaceError) Recoverable() bool {
	return se.Kind != SurfaceOutOfMemory
}

// classifySurfaceError wraps an error from Surface.GetCurrentTexture
// in a [SurfaceError], classifying it from the status text reported by
// the underlying implementation.
func classifySurfaceError(err error) *SurfaceError {
	msg := strings.ToLower(err.Error())
	kind := SurfaceOther
	switch {
	case strings.Contains(msg, "out of memory") || strings.Contains(msg, "outofmemory"):
		kind = SurfaceOutOfMemory
	case strings.Contains(msg, "lost"):
		kind = SurfaceLost
	case strings.Contains(msg, "outdated"):
		kind = SurfaceOutdated
	case strings.Contains(msg, "timeout") || strings.Contains(msg, "timed out"):
		kind = SurfaceTimeout
	}
	return &SurfaceError{Kind: kind, Err: err}
}
