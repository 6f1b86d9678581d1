// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package gpu

import (
	"fmt"

	"cogentcore.org/core/base/errors"
	"github.com/cogentcore/webgpu/wgpu"
)

// GraphicsPipeline is a fixed-function rendering pipeline with one
// WGSL shader providing the vertex and fragment entry points.
// Configure it with the Set* methods, which can be chained, then call
// Config to create the underlying WebGPU pipeline for a target format.
type GraphicsPipeline struct {
	// Name is used for debugging and error messages.
	Name string

	// Primitive has the topology, winding order, and culling mode.
	Primitive wgpu.PrimitiveState

	// Multisample has the multisampled antialiasing configuration.
	Multisample wgpu.MultisampleState

	// Blend is the color blend state for the single color target.
	Blend *wgpu.BlendState

	shader         *Shader
	vertexEntry    string
	fragmentEntry  string
	vertexLayout   []wgpu.VertexBufferLayout
	layout         *wgpu.PipelineLayout
	renderPipeline *wgpu.RenderPipeline
	device         *Device
}

// NewGraphicsPipeline returns a new GraphicsPipeline with default
// settings (see SetGraphicsDefaults), on the given device.
func NewGraphicsPipeline(name string, dev *Device) *GraphicsPipeline {
	pl := &GraphicsPipeline{Name: name, device: dev}
	pl.SetGraphicsDefaults()
	return pl
}

// SetGraphicsDefaults configures the default pipeline settings:
// triangle list topology, clockwise front face winding, back face
// culling, replace blending, and no multisampling.
func (pl *GraphicsPipeline) SetGraphicsDefaults() *GraphicsPipeline {
	pl.SetTopology(wgpu.PrimitiveTopologyTriangleList)
	pl.SetFrontFace(wgpu.FrontFaceCW)
	pl.SetCullMode(wgpu.CullModeBack)
	pl.SetBlend(&wgpu.BlendStateReplace)
	pl.SetMultisample(1)
	return pl
}

// SetTopology sets the primitive topology (default TriangleList).
func (pl *GraphicsPipeline) SetTopology(topo wgpu.PrimitiveTopology) *GraphicsPipeline {
	pl.Primitive.Topology = topo
	return pl
}

// SetFrontFace sets which winding order is front-facing (default CW).
func (pl *GraphicsPipeline) SetFrontFace(face wgpu.FrontFace) *GraphicsPipeline {
	pl.Primitive.FrontFace = face
	return pl
}

// SetCullMode sets which faces are culled (default Back).
func (pl *GraphicsPipeline) SetCullMode(mode wgpu.CullMode) *GraphicsPipeline {
	pl.Primitive.CullMode = mode
	return pl
}

// SetBlend sets the color blend state (default replace).
func (pl *GraphicsPipeline) SetBlend(blend *wgpu.BlendState) *GraphicsPipeline {
	pl.Blend = blend
	return pl
}

// SetMultisample sets the number of multisamples (default 1 = none).
func (pl *GraphicsPipeline) SetMultisample(ms int) *GraphicsPipeline {
	pl.Multisample = wgpu.MultisampleState{
		Count: uint32(max(ms, 1)),
		Mask:  0xFFFFFFFF,
	}
	return pl
}

// SetShader sets the shader providing the vertex and fragment entry
// points used by the pipeline.
func (pl *GraphicsPipeline) SetShader(sh *Shader, vertexEntry, fragmentEntry string) *GraphicsPipeline {
	pl.shader = sh
	pl.vertexEntry = vertexEntry
	pl.fragmentEntry = fragmentEntry
	return pl
}

// SetVertexLayout sets the vertex buffer layout, which must match the
// shader's vertex inputs.
func (pl *GraphicsPipeline) SetVertexLayout(layout []wgpu.VertexBufferLayout) *GraphicsPipeline {
	pl.vertexLayout = layout
	return pl
}

// Config creates the underlying WebGPU render pipeline, targeting the
// given texture format. It must be called after the shader and vertex
// layout are set, and before BindPipeline.
func (pl *GraphicsPipeline) Config(format wgpu.TextureFormat) error {
	if pl.shader == nil || pl.shader.Module() == nil {
		return errors.Log(fmt.Errorf("gpu.GraphicsPipeline: %s: no shader set", pl.Name))
	}
	lay, err := pl.device.Device.CreatePipelineLayout(&wgpu.PipelineLayoutDescriptor{
		Label: pl.Name,
	})
	if err != nil {
		return errors.Log(err)
	}
	rp, err := pl.device.Device.CreateRenderPipeline(&wgpu.RenderPipelineDescriptor{
		Label:  pl.Name,
		Layout: lay,
		Vertex: wgpu.VertexState{
			Module:     pl.shader.Module(),
			EntryPoint: pl.vertexEntry,
			Buffers:    pl.vertexLayout,
		},
		Fragment: &wgpu.FragmentState{
			Module:     pl.shader.Module(),
			EntryPoint: pl.fragmentEntry,
			Targets: []wgpu.ColorTargetState{{
				Format:    format,
				Blend:     pl.Blend,
				WriteMask: wgpu.ColorWriteMaskAll,
			}},
		},
		Primitive:   pl.Primitive,
		Multisample: pl.Multisample,
	})
	if err != nil {
		lay.Release()
		return errors.Log(err)
	}
	pl.layout = lay
	pl.renderPipeline = rp
	return nil
}

// BindPipeline binds this pipeline as the one to use for subsequent
// drawing commands in the given render pass.
func (pl *GraphicsPipeline) BindPipeline(rp *wgpu.RenderPassEncoder) {
	rp.SetPipeline(pl.renderPipeline)
}

// Release releases the pipeline resources. The shader is owned by the
// caller and is not released here.
func (pl *GraphicsPipeline) Release() {
	if pl.renderPipeline != nil {
		pl.renderPipeline.Release()
		pl.renderPipeline = nil
	}
	if pl.layout != nil {
		pl.layout.Release()
		pl.layout = nil
	}
}
