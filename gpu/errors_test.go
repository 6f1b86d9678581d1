// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package gpu

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClassifySurfaceError(t *testing.T) {
	tests := []struct {
		msg  string
		kind SurfaceErrorKinds
	}{
		{"Surface image is Lost", SurfaceLost},
		{"surface lost", SurfaceLost},
		{"Surface is Outdated", SurfaceOutdated},
		{"Surface texture acquisition Timeout", SurfaceTimeout},
		{"timed out waiting for next texture", SurfaceTimeout},
		{"device Out of Memory", SurfaceOutOfMemory},
		{"OutOfMemory", SurfaceOutOfMemory},
		{"validation error", SurfaceOther},
		{"", SurfaceOther},
	}
	for _, tt := range tests {
		se := classifySurfaceError(errors.New(tt.msg))
		assert.Equal(t, tt.kind, se.Kind, tt.msg)
	}
}

func TestSurfaceErrorUnwrap(t *testing.T) {
	base := errors.New("surface lost")
	se := classifySurfaceError(base)
	assert.ErrorIs(t, se, base)

	var target *SurfaceError
	assert.True(t, errors.As(error(se), &target))
	assert.Equal(t, SurfaceLost, target.Kind)
	assert.Contains(t, se.Error(), "Lost")
}

func TestSurfaceErrorRecoverable(t *testing.T) {
	for _, kind := range []SurfaceErrorKinds{SurfaceLost, SurfaceOutdated, SurfaceTimeout, SurfaceOther} {
		se := &SurfaceError{Kind: kind, Err: errors.New("x")}
		assert.True(t, se.Recoverable(), kind.String())
	}
	se := &SurfaceError{Kind: SurfaceOutOfMemory, Err: errors.New("x")}
	assert.False(t, se.Recoverable())
}
