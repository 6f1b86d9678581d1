// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package gpu

import (
	"github.com/cogentcore/webgpu/wgpu"
)

// Device holds the logical Device and associated Queue.
type Device struct {
	// Device is the logical device, created from the adapter.
	Device *wgpu.Device

	// Queue is the command queue for submitting work to the device.
	Queue *wgpu.Queue
}

func (dv *Device) init(adapter *wgpu.Adapter) error {
	device, err := adapter.RequestDevice(&wgpu.DeviceDescriptor{
		Label:          "device",
		RequiredLimits: &wgpu.RequiredLimits{Limits: wgpu.DefaultLimits()},
	})
	if err != nil {
		return err
	}
	dv.Device = device
	dv.Queue = device.GetQueue()
	return nil
}

// WaitDone blocks until all submitted work on this device has completed.
func (dv *Device) WaitDone() {
	if dv.Device == nil {
		return
	}
	dv.Device.Poll(true, nil)
}

// Release releases the queue and device.
func (dv *Device) Release() {
	if dv.Device == nil {
		return
	}
	dv.WaitDone()
	if dv.Queue != nil {
		dv.Queue.Release()
		dv.Queue = nil
	}
	dv.Device.Release()
	dv.Device = nil
}
