// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package frug

import (
	_ "embed"
	"fmt"
	"image"

	"cogentcore.org/core/base/errors"
	"github.com/cogentcore/frug/gpu"
	"github.com/cogentcore/webgpu/wgpu"
	"github.com/go-gl/glfw/v3.3/glfw"
)

//go:embed shaders/vertexcolor.wgsl
var vertexColorShader string

// renderSystem is the per-frame GPU collaborator driven by a
// [RenderSession]. [*gpu.GraphicsSystem] is the production
// implementation.
type renderSystem interface {
	// BeginFrame acquires the next target texture and opens a render
	// pass clearing it to the given color.
	BeginFrame(clear wgpu.Color) error

	// DrawIndexed records one indexed draw of n indices.
	DrawIndexed(n uint32)

	// EndFrame ends the pass and submits the frame in one submission.
	EndFrame() error

	// Present presents the rendered frame.
	Present()

	// SetSize sets the target size in raw physical pixels.
	SetSize(size image.Point)

	// Size returns the target size in raw physical pixels.
	Size() image.Point

	// Release releases the system resources.
	Release()
}

// RenderSession owns everything needed to render: the window, the GPU
// device, the surface, the pipeline, and the geometry buffers. It is
// created fully initialized by [NewSession] and renders one frame per
// [RenderSession.Render] call.
type RenderSession struct {
	// Title is the window title.
	Title string

	// Mesh is the geometry drawn each frame.
	Mesh Mesh

	background Color
	size       image.Point
	sys        renderSystem
	window     *glfw.Window
	shader     *gpu.Shader
	gp         *gpu.GPU
}

// NewSession creates a window with the given title and fully
// initializes GPU rendering for it: device negotiation, surface
// configuration, pipeline creation, and geometry upload. When it
// returns without error the session is ready to render. An error means
// the environment cannot render at all and should be treated as fatal;
// there is no retry and no degraded mode.
// [gpu.Init] must have been called first, on the main thread.
func NewSession(title string, opts ...SessionOption) (*RenderSession, error) {
	o := defaultSessionOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if err := o.mesh.Validate(); err != nil {
		return nil, errors.Log(err)
	}

	window, wsurf, err := gpu.NewGLFWWindow(o.size, title)
	if err != nil {
		return nil, err
	}
	gp, err := gpu.NewGPU(wsurf)
	if err != nil {
		wsurf.Release()
		window.Destroy()
		return nil, err
	}

	// the framebuffer can differ from the requested size on high-DPI
	// displays, so the surface is configured from the actual size
	fbw, fbh := window.GetFramebufferSize()
	size := image.Point{fbw, fbh}
	sf := gpu.NewSurface(gp, wsurf, size)
	sy := gpu.NewGraphicsSystem(gp, title, sf)

	sn := &RenderSession{
		Title:      title,
		Mesh:       o.mesh,
		background: o.background,
		size:       size,
		sys:        sy,
		window:     window,
		gp:         gp,
	}
	if err := sn.initPipeline(sy, o.shaderCode); err != nil {
		sn.Release()
		return nil, err
	}
	return sn, nil
}

// NewOffscreenSession creates a session rendering to offscreen
// textures instead of a window, for headless use and testing.
// Present is a no-op for such sessions, and Run does not apply:
// call [RenderSession.Render] directly.
func NewOffscreenSession(width, height int, opts ...SessionOption) (*RenderSession, error) {
	o := defaultSessionOptions()
	o.size = image.Point{width, height}
	for _, opt := range opts {
		opt(&o)
	}
	if err := o.mesh.Validate(); err != nil {
		return nil, errors.Log(err)
	}
	if o.size.X <= 0 || o.size.Y <= 0 {
		return nil, errors.Log(fmt.Errorf("frug: invalid offscreen size %dx%d", o.size.X, o.size.Y))
	}

	gp, err := gpu.NoDisplayGPU()
	if err != nil {
		return nil, err
	}
	rt := gpu.NewRenderTexture(gp, o.size)
	sy := gpu.NewGraphicsSystem(gp, "offscreen", rt)

	sn := &RenderSession{
		Title:      "offscreen",
		Mesh:       o.mesh,
		background: o.background,
		size:       o.size,
		sys:        sy,
		gp:         gp,
	}
	if err := sn.initPipeline(sy, o.shaderCode); err != nil {
		sn.Release()
		return nil, err
	}
	return sn, nil
}

// initPipeline compiles the shader, configures the pipeline for the
// target format, and uploads the mesh to static GPU buffers.
func (sn *RenderSession) initPipeline(sy *gpu.GraphicsSystem, shaderCode string) error {
	sh := gpu.NewShader("vertexcolor", sy.Device())
	if err := sh.OpenCode(shaderCode); err != nil {
		return err
	}
	sn.shader = sh
	sy.Pipeline.SetShader(sh, "vs_main", "fs_main")
	sy.Pipeline.SetVertexLayout(VertexLayout())
	if err := sy.Config(); err != nil {
		return err
	}
	vtx, err := gpu.NewVertexBuffer(sy.Device(), "Vertex", sn.Mesh.Vertices)
	if err != nil {
		return err
	}
	idx, err := gpu.NewIndexBuffer(sy.Device(), "Index", sn.Mesh.Indices)
	if err != nil {
		vtx.Release()
		return err
	}
	sy.SetBuffers(vtx, idx)
	return nil
}

// SetBackgroundColor sets the background clear color used by
// subsequent frames.
func (sn *RenderSession) SetBackgroundColor(c Color) {
	sn.background = c
}

// BackgroundColor returns the current background clear color.
func (sn *RenderSession) BackgroundColor() Color {
	return sn.background
}

// Size returns the last applied render target size in raw physical
// pixels.
func (sn *RenderSession) Size() image.Point {
	return sn.size
}

// Window returns the session's window, or nil for offscreen sessions.
func (sn *RenderSession) Window() *glfw.Window {
	return sn.window
}

// Resize updates the render target to the given size in raw physical
// pixels. A zero width or height is ignored, as reported transiently
// during window minimization. Calling with the current size is valid
// and reconfigures the surface, which is how a lost surface is
// restored.
func (sn *RenderSession) Resize(size image.Point) {
	if size.X <= 0 || size.Y <= 0 {
		return
	}
	sn.size = size
	sn.sys.SetSize(size)
}

// Render draws one frame: it acquires the next target texture, clears
// it to the background color, draws the mesh with one indexed draw in
// a single submission, and presents. Acquisition failures are returned
// as [*gpu.SurfaceError] for the caller to dispatch on; see
// [Driver] for the standard recovery policy.
func (sn *RenderSession) Render() error {
	if err := sn.sys.BeginFrame(sn.background.wgpu()); err != nil {
		return err
	}
	sn.sys.DrawIndexed(sn.Mesh.NIndices())
	if err := sn.sys.EndFrame(); err != nil {
		return err
	}
	sn.sys.Present()
	return nil
}

// Release releases all session resources: pipeline, buffers, surface,
// device, and window. The session cannot be used afterwards.
func (sn *RenderSession) Release() {
	if sn.sys != nil {
		sn.sys.Release()
		sn.sys = nil
	}
	if sn.shader != nil {
		sn.shader.Release()
		sn.shader = nil
	}
	if sn.gp != nil {
		sn.gp.Release()
		sn.gp = nil
	}
	if sn.window != nil {
		sn.window.Destroy()
		sn.window = nil
	}
}
