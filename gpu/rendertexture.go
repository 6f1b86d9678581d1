// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package gpu

import (
	"image"

	"cogentcore.org/core/base/errors"
	"github.com/cogentcore/webgpu/wgpu"
)

// RenderTexture is an offscreen, non-window-backed [Renderer].
// It rotates through NFrames textures so a new frame can start while
// a previous one is still in flight.
type RenderTexture struct {
	// Format is the texture format rendered to.
	Format wgpu.TextureFormat

	// NFrames is the number of textures rotated through. 2 by default.
	NFrames int

	render   Render
	size     image.Point
	device   *Device
	frames   []*wgpu.Texture
	views    []*wgpu.TextureView
	curFrame int
}

// NewRenderTexture returns an offscreen render target of the given
// size in raw physical pixels, rendering to sRGB RGBA textures.
func NewRenderTexture(gp *GPU, size image.Point) *RenderTexture {
	rt := &RenderTexture{
		Format:  wgpu.TextureFormatRGBA8UnormSrgb,
		NFrames: 2,
		device:  &gp.Device,
	}
	rt.render.Format = rt.Format
	rt.SetSize(size)
	return rt
}

// Render returns the Render state for this target.
func (rt *RenderTexture) Render() *Render {
	return &rt.render
}

// Size returns the current size in raw physical pixels.
func (rt *RenderTexture) Size() image.Point {
	return rt.size
}

// SetSize reallocates the frame textures at the given size in raw
// physical pixels. A zero width or height is ignored.
func (rt *RenderTexture) SetSize(size image.Point) {
	if size.X <= 0 || size.Y <= 0 {
		return
	}
	if size == rt.size && rt.frames != nil {
		return
	}
	rt.releaseFrames()
	rt.size = size
	rt.frames = make([]*wgpu.Texture, rt.NFrames)
	rt.views = make([]*wgpu.TextureView, rt.NFrames)
	for i := range rt.frames {
		t, err := rt.device.Device.CreateTexture(&wgpu.TextureDescriptor{
			Label: "RenderTexture",
			Size: wgpu.Extent3D{
				Width:              uint32(size.X),
				Height:             uint32(size.Y),
				DepthOrArrayLayers: 1,
			},
			MipLevelCount: 1,
			SampleCount:   1,
			Dimension:     wgpu.TextureDimension2D,
			Format:        rt.Format,
			Usage:         wgpu.TextureUsageRenderAttachment | wgpu.TextureUsageCopySrc,
		})
		if errors.Log(err) != nil {
			continue
		}
		vw, err := t.CreateView(nil)
		if errors.Log(err) != nil {
			t.Release()
			continue
		}
		rt.frames[i] = t
		rt.views[i] = vw
	}
	rt.curFrame = 0
}

// GetCurrentTexture returns the view for the current frame texture,
// advancing to the next frame in the rotation. It returns an error
// if the frame textures have not been allocated, from a zero size or
// a failed allocation.
func (rt *RenderTexture) GetCurrentTexture() (*wgpu.TextureView, error) {
	if len(rt.views) == 0 {
		return nil, errors.New("gpu.RenderTexture: no frame textures: size not set")
	}
	vw := rt.views[rt.curFrame]
	rt.curFrame = (rt.curFrame + 1) % rt.NFrames
	if vw == nil {
		return nil, errors.New("gpu.RenderTexture: frame texture allocation failed")
	}
	return vw, nil
}

// Present is a no-op for offscreen targets.
func (rt *RenderTexture) Present() {
}

// Release releases the frame textures.
func (rt *RenderTexture) Release() {
	rt.releaseFrames()
}

func (rt *RenderTexture) releaseFrames() {
	for _, vw := range rt.views {
		if vw != nil {
			vw.Release()
		}
	}
	for _, t := range rt.frames {
		if t != nil {
			t.Release()
		}
	}
	rt.views = nil
	rt.frames = nil
}
