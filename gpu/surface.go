// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package gpu

import (
	"image"

	"cogentcore.org/core/base/errors"
	"github.com/cogentcore/webgpu/wgpu"
)

// Renderer is a render target: either a window-backed [Surface]
// or an offscreen [RenderTexture].
type Renderer interface {
	// GetCurrentTexture returns the texture view to render the current
	// frame into. Window-backed targets return a [*SurfaceError] when
	// the next frame cannot be acquired.
	GetCurrentTexture() (*wgpu.TextureView, error)

	// Present presents the rendered frame to the target. It must be
	// called exactly once per frame, after the frame's commands have
	// been submitted.
	Present()

	// Render returns the Render state for this target, which has the
	// clear color and constructs the render passes.
	Render() *Render

	// SetSize sets the size of the target in raw physical pixels.
	// A zero width or height is ignored, as happens transiently during
	// window minimization.
	SetSize(size image.Point)

	// Size returns the current size of the target in raw physical pixels.
	Size() image.Point

	// Release releases the target resources.
	Release()
}

// Surface is a window-backed [Renderer]. It manages the swapchain
// configuration for the window and the acquire / present cycle of
// frame textures.
type Surface struct {
	// Format is the texture format of the surface, selected by
	// [SelectFormat] from the adapter's reported capabilities.
	Format wgpu.TextureFormat

	render     Render
	surface    *wgpu.Surface
	adapter    *wgpu.Adapter
	device     *Device
	config     wgpu.SurfaceConfiguration
	size       image.Point
	curTexture *wgpu.Texture
	curView    *wgpu.TextureView
}

// NewSurface configures the given WebGPU surface for presentation at
// the given size in raw physical pixels, using the device from gp.
// The surface must have been created compatible with gp's adapter
// (see [NewGLFWWindow] and [NewGPU]).
func NewSurface(gp *GPU, wsurf *wgpu.Surface, size image.Point) *Surface {
	sf := &Surface{
		surface: wsurf,
		adapter: gp.Adapter,
		device:  &gp.Device,
	}
	caps := wsurf.GetCapabilities(gp.Adapter)
	sf.Format = SelectFormat(caps.Formats)
	sf.render.Format = sf.Format
	sf.config = wgpu.SurfaceConfiguration{
		Usage:       wgpu.TextureUsageRenderAttachment,
		Format:      sf.Format,
		PresentMode: caps.PresentModes[0],
		AlphaMode:   caps.AlphaModes[0],
	}
	sf.SetSize(size)
	return sf
}

// Render returns the Render state for this surface.
func (sf *Surface) Render() *Render {
	return &sf.render
}

// Size returns the current size of the surface in raw physical pixels.
func (sf *Surface) Size() image.Point {
	return sf.size
}

// Device returns the device this surface renders with.
func (sf *Surface) Device() *Device {
	return sf.device
}

// SetSize reconfigures the surface at the given size in raw physical
// pixels. A zero width or height is ignored, as happens transiently
// during window minimization. Calling with the current size is valid
// and reconfigures the surface, which is how a lost surface is
// reestablished.
func (sf *Surface) SetSize(size image.Point) {
	if !UpdateConfig(&sf.config, size) {
		return
	}
	sf.size = size
	sf.surface.Configure(sf.adapter, sf.device.Device, &sf.config)
}

// GetCurrentTexture returns the texture view to render the current
// frame into, or a [*SurfaceError] classifying why the next frame
// could not be acquired. Any prior frame that was never presented
// (because its commands failed) is released first.
func (sf *Surface) GetCurrentTexture() (*wgpu.TextureView, error) {
	sf.releaseCurrent()
	tex, err := sf.surface.GetCurrentTexture()
	if err != nil {
		serr := classifySurfaceError(err)
		if Debug {
			errors.Log(serr)
		}
		return nil, serr
	}
	view, err := tex.CreateView(nil)
	if err != nil {
		tex.Release()
		return nil, errors.Log(err)
	}
	sf.curTexture = tex
	sf.curView = view
	return view, nil
}

// Present presents the current frame to the window and releases the
// frame texture.
func (sf *Surface) Present() {
	sf.surface.Present()
	sf.releaseCurrent()
}

func (sf *Surface) releaseCurrent() {
	if sf.curView != nil {
		sf.curView.Release()
		sf.curView = nil
	}
	if sf.curTexture != nil {
		sf.curTexture.Release()
		sf.curTexture = nil
	}
}

// Release releases the surface resources.
// The shared adapter and device are owned by the GPU, not released here.
func (sf *Surface) Release() {
	sf.releaseCurrent()
	if sf.surface != nil {
		sf.surface.Release()
		sf.surface = nil
	}
}

// SelectFormat returns the preferred texture format among those
// supported by a surface: the first gamma corrected (sRGB) format,
// falling back to the first supported format when none is sRGB.
// Rendering to a non-sRGB format produces washed-out colors but
// still works, so the fallback is permissive rather than an error.
func SelectFormat(formats []wgpu.TextureFormat) wgpu.TextureFormat {
	if len(formats) == 0 {
		return wgpu.TextureFormatUndefined
	}
	for _, f := range formats {
		if IsSRGB(f) {
			return f
		}
	}
	return formats[0]
}

// IsSRGB reports whether the given format is gamma corrected (sRGB).
func IsSRGB(f wgpu.TextureFormat) bool {
	switch f {
	case wgpu.TextureFormatRGBA8UnormSrgb, wgpu.TextureFormatBGRA8UnormSrgb:
		return true
	}
	return false
}

// UpdateConfig applies the given size in raw physical pixels to a
// surface configuration, reporting whether it was applied. A zero
// width or height is not applied.
func UpdateConfig(cfg *wgpu.SurfaceConfiguration, size image.Point) bool {
	if size.X <= 0 || size.Y <= 0 {
		return false
	}
	cfg.Width = uint32(size.X)
	cfg.Height = uint32(size.Y)
	return true
}
