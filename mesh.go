// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package frug

import (
	"fmt"
	"unsafe"

	"cogentcore.org/core/math32"
	"github.com/cogentcore/webgpu/wgpu"
)

// Vertex is one vertex of a [Mesh], with a position in normalized
// device coordinates and an RGB color interpolated across triangles.
// The field layout matches the vertex inputs of the default shader.
type Vertex struct {
	// Pos is the position in normalized device coordinates.
	Pos math32.Vector3

	// Color is the RGB vertex color.
	Color math32.Vector3
}

// VertexLayout returns the vertex buffer layout for [Vertex], matching
// the vertex inputs of the default shader.
func VertexLayout() []wgpu.VertexBufferLayout {
	return []wgpu.VertexBufferLayout{{
		ArrayStride: uint64(unsafe.Sizeof(Vertex{})),
		StepMode:    wgpu.VertexStepModeVertex,
		Attributes: []wgpu.VertexAttribute{
			{Format: wgpu.VertexFormatFloat32x3, Offset: 0, ShaderLocation: 0},
			{Format: wgpu.VertexFormatFloat32x3, Offset: uint64(unsafe.Offsetof(Vertex{}.Color)), ShaderLocation: 1},
		},
	}}
}

// Mesh is indexed triangle geometry: a vertex list and a uint16 index
// list with three indices per triangle, wound clockwise for front faces.
type Mesh struct {
	Vertices []Vertex
	Indices  []uint16
}

// Validate checks that the mesh is drawable: non-empty, whole
// triangles, and every index within the vertex range.
func (ms *Mesh) Validate() error {
	if len(ms.Vertices) == 0 {
		return fmt.Errorf("frug.Mesh: no vertices")
	}
	if len(ms.Indices) == 0 {
		return fmt.Errorf("frug.Mesh: no indices")
	}
	if len(ms.Indices)%3 != 0 {
		return fmt.Errorf("frug.Mesh: %d indices is not a whole number of triangles", len(ms.Indices))
	}
	for i, ix := range ms.Indices {
		if int(ix) >= len(ms.Vertices) {
			return fmt.Errorf("frug.Mesh: index %d at position %d out of range: %d vertices", ix, i, len(ms.Vertices))
		}
	}
	return nil
}

// NIndices returns the number of indices to draw.
func (ms *Mesh) NIndices() uint32 {
	return uint32(len(ms.Indices))
}

// DefaultMesh returns the built-in placeholder geometry: a purple
// pentagon fanned into three triangles around its last vertex.
func DefaultMesh() Mesh {
	purple := math32.Vec3(0.5, 0, 0.5)
	return Mesh{
		Vertices: []Vertex{
			{Pos: math32.Vec3(-0.0868241, 0.49240386, 0), Color: purple},
			{Pos: math32.Vec3(-0.49513406, 0.06958647, 0), Color: purple},
			{Pos: math32.Vec3(-0.21918549, -0.44939706, 0), Color: purple},
			{Pos: math32.Vec3(0.35966998, -0.3473291, 0), Color: purple},
			{Pos: math32.Vec3(0.44147372, 0.2347359, 0), Color: purple},
		},
		Indices: []uint16{4, 1, 0, 4, 2, 1, 4, 3, 2},
	}
}
