// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package frug

import (
	"testing"

	"cogentcore.org/core/math32"
	"github.com/cogentcore/webgpu/wgpu"
	"github.com/stretchr/testify/assert"
)

func TestDefaultMesh(t *testing.T) {
	ms := DefaultMesh()
	assert.Len(t, ms.Vertices, 5)
	assert.Len(t, ms.Indices, 9)
	assert.Equal(t, uint32(9), ms.NIndices())
	assert.NoError(t, ms.Validate())
	for i, ix := range ms.Indices {
		assert.Less(t, int(ix), len(ms.Vertices), "index at %d", i)
	}
}

func TestMeshValidate(t *testing.T) {
	ms := Mesh{}
	assert.Error(t, ms.Validate())

	ms.Vertices = []Vertex{{}, {}, {}}
	assert.Error(t, ms.Validate())

	ms.Indices = []uint16{0, 1}
	assert.Error(t, ms.Validate())

	ms.Indices = []uint16{0, 1, 3}
	assert.Error(t, ms.Validate())

	ms.Indices = []uint16{0, 1, 2}
	assert.NoError(t, ms.Validate())
}

func TestVertexLayout(t *testing.T) {
	layout := VertexLayout()
	assert.Len(t, layout, 1)
	vb := layout[0]
	assert.Equal(t, uint64(24), vb.ArrayStride)
	assert.Equal(t, wgpu.VertexStepModeVertex, vb.StepMode)
	assert.Len(t, vb.Attributes, 2)
	assert.Equal(t, wgpu.VertexFormatFloat32x3, vb.Attributes[0].Format)
	assert.Equal(t, uint64(0), vb.Attributes[0].Offset)
	assert.Equal(t, uint32(0), vb.Attributes[0].ShaderLocation)
	assert.Equal(t, wgpu.VertexFormatFloat32x3, vb.Attributes[1].Format)
	assert.Equal(t, uint64(12), vb.Attributes[1].Offset)
	assert.Equal(t, uint32(1), vb.Attributes[1].ShaderLocation)
}

func TestMeshCustom(t *testing.T) {
	ms := Mesh{
		Vertices: []Vertex{
			{Pos: math32.Vec3(0, 0.5, 0), Color: math32.Vec3(1, 0, 0)},
			{Pos: math32.Vec3(-0.5, -0.5, 0), Color: math32.Vec3(0, 1, 0)},
			{Pos: math32.Vec3(0.5, -0.5, 0), Color: math32.Vec3(0, 0, 1)},
		},
		Indices: []uint16{0, 2, 1},
	}
	assert.NoError(t, ms.Validate())
	assert.Equal(t, uint32(3), ms.NIndices())
}
