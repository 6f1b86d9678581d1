// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package gpu

import (
	"testing"

	"github.com/cogentcore/webgpu/wgpu"
	"github.com/stretchr/testify/assert"
)

func TestGraphicsPipelineDefaults(t *testing.T) {
	pl := NewGraphicsPipeline("test", nil)
	assert.Equal(t, wgpu.PrimitiveTopologyTriangleList, pl.Primitive.Topology)
	assert.Equal(t, wgpu.FrontFaceCW, pl.Primitive.FrontFace)
	assert.Equal(t, wgpu.CullModeBack, pl.Primitive.CullMode)
	assert.Equal(t, &wgpu.BlendStateReplace, pl.Blend)
	assert.Equal(t, uint32(1), pl.Multisample.Count)
	assert.Equal(t, uint32(0xFFFFFFFF), pl.Multisample.Mask)
}

func TestGraphicsPipelineSetters(t *testing.T) {
	pl := NewGraphicsPipeline("test", nil).
		SetTopology(wgpu.PrimitiveTopologyLineList).
		SetFrontFace(wgpu.FrontFaceCCW).
		SetCullMode(wgpu.CullModeNone).
		SetMultisample(4)
	assert.Equal(t, wgpu.PrimitiveTopologyLineList, pl.Primitive.Topology)
	assert.Equal(t, wgpu.FrontFaceCCW, pl.Primitive.FrontFace)
	assert.Equal(t, wgpu.CullModeNone, pl.Primitive.CullMode)
	assert.Equal(t, uint32(4), pl.Multisample.Count)

	pl.SetMultisample(0)
	assert.Equal(t, uint32(1), pl.Multisample.Count)
}

func TestGraphicsPipelineConfigNoShader(t *testing.T) {
	pl := NewGraphicsPipeline("test", nil)
	assert.Error(t, pl.Config(wgpu.TextureFormatRGBA8UnormSrgb))
}
