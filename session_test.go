// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package frug

import (
	"errors"
	"image"
	"testing"

	"github.com/cogentcore/frug/gpu"
	"github.com/cogentcore/webgpu/wgpu"
	"github.com/stretchr/testify/assert"
)

// fakeSystem records the per-frame calls a session makes, in place of
// a real GPU.
type fakeSystem struct {
	begins   []wgpu.Color
	draws    []uint32
	ends     int
	presents int
	sizes    []image.Point
	size     image.Point
	beginErr error
}

func (fs *fakeSystem) BeginFrame(clear wgpu.Color) error {
	if fs.beginErr != nil {
		return fs.beginErr
	}
	fs.begins = append(fs.begins, clear)
	return nil
}

func (fs *fakeSystem) DrawIndexed(n uint32) { fs.draws = append(fs.draws, n) }
func (fs *fakeSystem) EndFrame() error      { fs.ends++; return nil }
func (fs *fakeSystem) Present()             { fs.presents++ }

func (fs *fakeSystem) SetSize(size image.Point) {
	fs.sizes = append(fs.sizes, size)
	fs.size = size
}

func (fs *fakeSystem) Size() image.Point { return fs.size }
func (fs *fakeSystem) Release()          {}

func newTestSession(fs *fakeSystem, size image.Point) *RenderSession {
	fs.size = size
	return &RenderSession{
		Title:      "test",
		Mesh:       DefaultMesh(),
		background: CreateColor(0.2, 0.2, 0.2, 1),
		size:       size,
		sys:        fs,
	}
}

func TestSessionRenderFrame(t *testing.T) {
	fs := &fakeSystem{}
	sn := newTestSession(fs, image.Point{800, 600})

	assert.NoError(t, sn.Render())

	assert.Len(t, fs.begins, 1)
	assert.Equal(t, []uint32{9}, fs.draws)
	assert.Equal(t, 1, fs.ends)
	assert.Equal(t, 1, fs.presents)
	assert.Equal(t, image.Point{800, 600}, sn.Size())
}

func TestSessionBackgroundColor(t *testing.T) {
	fs := &fakeSystem{}
	sn := newTestSession(fs, image.Point{800, 600})

	c := CreateColor(0.1, 0.2, 0.3, 1)
	sn.SetBackgroundColor(c)
	assert.Equal(t, c, sn.BackgroundColor())

	assert.NoError(t, sn.Render())
	assert.Equal(t, []wgpu.Color{{R: 0.1, G: 0.2, B: 0.3, A: 1}}, fs.begins)
}

func TestSessionResize(t *testing.T) {
	fs := &fakeSystem{}
	sn := newTestSession(fs, image.Point{800, 600})

	sn.Resize(image.Point{1024, 768})
	assert.Equal(t, image.Point{1024, 768}, sn.Size())
	assert.Equal(t, []image.Point{{1024, 768}}, fs.sizes)
}

func TestSessionResizeZeroIgnored(t *testing.T) {
	fs := &fakeSystem{}
	sn := newTestSession(fs, image.Point{800, 600})

	sn.Resize(image.Point{0, 600})
	sn.Resize(image.Point{800, 0})
	sn.Resize(image.Point{-1, -1})

	assert.Equal(t, image.Point{800, 600}, sn.Size())
	assert.Empty(t, fs.sizes)
}

func TestSessionRenderError(t *testing.T) {
	serr := &gpu.SurfaceError{Kind: gpu.SurfaceLost, Err: errors.New("surface lost")}
	fs := &fakeSystem{beginErr: serr}
	sn := newTestSession(fs, image.Point{800, 600})

	err := sn.Render()
	var got *gpu.SurfaceError
	assert.True(t, errors.As(err, &got))
	assert.Equal(t, gpu.SurfaceLost, got.Kind)

	// nothing is drawn or presented on a failed acquire
	assert.Empty(t, fs.draws)
	assert.Equal(t, 0, fs.ends)
	assert.Equal(t, 0, fs.presents)
}
