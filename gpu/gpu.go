// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package gpu

import (
	"fmt"

	"cogentcore.org/core/base/errors"
	"github.com/cogentcore/webgpu/wgpu"
)

// Debug enables logging of adapter, device, and surface configuration
// steps, and of per-frame surface errors. It is useful when diagnosing
// driver or windowing problems, and should be off otherwise.
var Debug = false

var theInstance *wgpu.Instance

// Instance returns the shared WebGPU instance, creating it on first use.
func Instance() *wgpu.Instance {
	if theInstance == nil {
		theInstance = wgpu.CreateInstance(nil)
	}
	return theInstance
}

// GPU represents the physical GPU hardware for a rendering session:
// the selected adapter and the logical device and queue created from it.
// A session creates exactly one GPU at startup and owns it exclusively
// for its entire lifetime.
type GPU struct {
	// Adapter is the selected physical GPU.
	Adapter *wgpu.Adapter

	// Device is the logical device and its command queue.
	Device Device
}

// NewGPU negotiates an adapter and device capable of presenting to the
// given surface, which can be nil for offscreen rendering. This is the
// one blocking handshake in the system: it completes fully before any
// rendering starts. An error here means the environment has no usable
// GPU, which callers should treat as fatal. There is no retry and no
// degraded mode.
func NewGPU(compatible *wgpu.Surface) (*GPU, error) {
	gp := &GPU{}
	adapter, err := Instance().RequestAdapter(&wgpu.RequestAdapterOptions{
		CompatibleSurface:    compatible,
		ForceFallbackAdapter: false,
	})
	if err != nil {
		return nil, errors.Log(fmt.Errorf("gpu: no suitable graphics adapter found: %w", err))
	}
	gp.Adapter = adapter
	err = gp.Device.init(adapter)
	if err != nil {
		adapter.Release()
		return nil, errors.Log(fmt.Errorf("gpu: device request failed: %w", err))
	}
	return gp, nil
}

// NoDisplayGPU returns a GPU with no display surface, for offscreen
// rendering to a [RenderTexture].
func NoDisplayGPU() (*GPU, error) {
	return NewGPU(nil)
}

// Release releases the device and adapter.
// Call only after all resources created from them have been released.
func (gp *GPU) Release() {
	gp.Device.Release()
	if gp.Adapter != nil {
		gp.Adapter.Release()
		gp.Adapter = nil
	}
}
