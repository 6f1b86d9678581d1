// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package gpu

import (
	"github.com/cogentcore/webgpu/wgpu"
)

// Render manages the render pass state for a [Renderer] target,
// including the clear color used when a pass starts by clearing.
type Render struct {
	// Format is the texture format of the target.
	Format wgpu.TextureFormat

	// ClearColor is the color to clear the target to at the start of a
	// clearing render pass.
	ClearColor wgpu.Color
}

// ClearRenderPass returns a render pass descriptor that clears the
// given texture view to ClearColor before rendering.
func (rd *Render) ClearRenderPass(view *wgpu.TextureView) *wgpu.RenderPassDescriptor {
	return &wgpu.RenderPassDescriptor{
		Label: "ClearRenderPass",
		ColorAttachments: []wgpu.RenderPassColorAttachment{{
			View:       view,
			LoadOp:     wgpu.LoadOpClear,
			StoreOp:    wgpu.StoreOpStore,
			ClearValue: rd.ClearColor,
		}},
	}
}

// LoadRenderPass returns a render pass descriptor that retains the
// current contents of the given texture view.
func (rd *Render) LoadRenderPass(view *wgpu.TextureView) *wgpu.RenderPassDescriptor {
	return &wgpu.RenderPassDescriptor{
		Label: "LoadRenderPass",
		ColorAttachments: []wgpu.RenderPassColorAttachment{{
			View:    view,
			LoadOp:  wgpu.LoadOpLoad,
			StoreOp: wgpu.StoreOpStore,
		}},
	}
}

// BeginRenderPass starts a clearing render pass on the given command
// encoder, rendering into the given texture view.
func (rd *Render) BeginRenderPass(cmd *wgpu.CommandEncoder, view *wgpu.TextureView) *wgpu.RenderPassEncoder {
	return cmd.BeginRenderPass(rd.ClearRenderPass(view))
}

// BeginRenderPassNoClear starts a render pass on the given command
// encoder that retains the current contents of the texture view.
func (rd *Render) BeginRenderPassNoClear(cmd *wgpu.CommandEncoder, view *wgpu.TextureView) *wgpu.RenderPassEncoder {
	return cmd.BeginRenderPass(rd.LoadRenderPass(view))
}
