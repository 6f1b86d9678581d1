// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package gpu

import (
	"image"

	"cogentcore.org/core/base/errors"
	"github.com/cogentcore/webgpu/wgpu"
)

// GraphicsSystem manages one [GraphicsPipeline] rendering indexed
// geometry to a [Renderer] target, providing a simple top-level API
// for the whole render process of a frame: BeginFrame, DrawIndexed,
// EndFrame, Present.
type GraphicsSystem struct {
	// Name is used for debugging and labels.
	Name string

	// Pipeline does the rendering.
	Pipeline *GraphicsPipeline

	// Renderer is the rendering target for this system.
	// It is either a Surface or a RenderTexture.
	Renderer Renderer

	// CommandEncoder is the command encoder for the current frame,
	// between BeginFrame and EndFrame.
	CommandEncoder *wgpu.CommandEncoder

	renderPass   *wgpu.RenderPassEncoder
	vertexBuffer *wgpu.Buffer
	indexBuffer  *wgpu.Buffer
	device       *Device
}

// NewGraphicsSystem returns a new GraphicsSystem rendering to the
// given target, with a new default pipeline on the given GPU's device.
func NewGraphicsSystem(gp *GPU, name string, rd Renderer) *GraphicsSystem {
	sy := &GraphicsSystem{
		Name:     name,
		Renderer: rd,
		device:   &gp.Device,
	}
	sy.Pipeline = NewGraphicsPipeline(name, sy.device)
	return sy
}

// Device returns the device this system renders with.
func (sy *GraphicsSystem) Device() *Device {
	return sy.device
}

// SetBuffers sets the vertex and index buffers drawn by DrawIndexed,
// releasing any previously set buffers.
func (sy *GraphicsSystem) SetBuffers(vtx, idx *wgpu.Buffer) {
	if sy.vertexBuffer != nil {
		sy.vertexBuffer.Release()
	}
	if sy.indexBuffer != nil {
		sy.indexBuffer.Release()
	}
	sy.vertexBuffer = vtx
	sy.indexBuffer = idx
}

// Config creates the underlying pipeline for the target's texture
// format. Call after the pipeline shader and vertex layout are set.
func (sy *GraphicsSystem) Config() error {
	return sy.Pipeline.Config(sy.Renderer.Render().Format)
}

// BeginFrame acquires the next target texture, sets the clear color,
// and opens a clearing render pass with the pipeline bound.
// Any error from texture acquisition is returned as-is, including
// [*SurfaceError] from a window-backed target.
func (sy *GraphicsSystem) BeginFrame(clear wgpu.Color) error {
	view, err := sy.Renderer.GetCurrentTexture()
	if err != nil {
		return err
	}
	sy.Renderer.Render().ClearColor = clear
	cmd, err := sy.device.Device.CreateCommandEncoder(nil)
	if errors.Log(err) != nil {
		return err
	}
	sy.CommandEncoder = cmd
	sy.renderPass = sy.Renderer.Render().BeginRenderPass(cmd, view)
	sy.Pipeline.BindPipeline(sy.renderPass)
	return nil
}

// DrawIndexed records one indexed draw of n indices from the buffers
// set by SetBuffers, into the current frame's render pass.
func (sy *GraphicsSystem) DrawIndexed(n uint32) {
	rp := sy.renderPass
	rp.SetVertexBuffer(0, sy.vertexBuffer, 0, wgpu.WholeSize)
	rp.SetIndexBuffer(sy.indexBuffer, wgpu.IndexFormatUint16, 0, wgpu.WholeSize)
	rp.DrawIndexed(n, 1, 0, 0, 0)
}

// EndFrame ends the render pass and submits the frame's commands to
// the device queue in one submission.
func (sy *GraphicsSystem) EndFrame() error {
	rp := sy.renderPass
	sy.renderPass = nil
	rp.End()
	rp.Release() // must happen before Finish
	cmd := sy.CommandEncoder
	sy.CommandEncoder = nil
	cmdBuffer, err := cmd.Finish(nil)
	if errors.Log(err) != nil {
		cmd.Release()
		return err
	}
	sy.device.Queue.Submit(cmdBuffer)
	cmdBuffer.Release()
	cmd.Release()
	return nil
}

// Present presents the rendered frame to the target.
func (sy *GraphicsSystem) Present() {
	sy.Renderer.Present()
}

// SetSize sets the size of the render target in raw physical pixels.
func (sy *GraphicsSystem) SetSize(size image.Point) {
	sy.Renderer.SetSize(size)
}

// Size returns the current render target size in raw physical pixels.
func (sy *GraphicsSystem) Size() image.Point {
	return sy.Renderer.Size()
}

// WaitDone blocks until all submitted work on the device is complete.
func (sy *GraphicsSystem) WaitDone() {
	sy.device.WaitDone()
}

// Release releases the system resources: buffers, pipeline, and the
// render target. The GPU and device are owned by the caller.
func (sy *GraphicsSystem) Release() {
	sy.WaitDone()
	sy.SetBuffers(nil, nil)
	if sy.Pipeline != nil {
		sy.Pipeline.Release()
		sy.Pipeline = nil
	}
	if sy.Renderer != nil {
		sy.Renderer.Release()
		sy.Renderer = nil
	}
}
