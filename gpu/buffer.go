// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package gpu

import (
	"cogentcore.org/core/base/errors"
	"github.com/cogentcore/webgpu/wgpu"
)

// NewVertexBuffer returns a device-local vertex buffer initialized
// with the given values, uploaded once at creation.
func NewVertexBuffer[E any](dev *Device, label string, data []E) (*wgpu.Buffer, error) {
	return newBufferInit(dev, label, wgpu.ToBytes(data), wgpu.BufferUsageVertex|wgpu.BufferUsageCopyDst)
}

// NewIndexBuffer returns a device-local index buffer initialized
// with the given values, uploaded once at creation.
func NewIndexBuffer[E any](dev *Device, label string, data []E) (*wgpu.Buffer, error) {
	return newBufferInit(dev, label, wgpu.ToBytes(data), wgpu.BufferUsageIndex|wgpu.BufferUsageCopyDst)
}

func newBufferInit(dev *Device, label string, contents []byte, usage wgpu.BufferUsage) (*wgpu.Buffer, error) {
	buf, err := dev.Device.CreateBufferInit(&wgpu.BufferInitDescriptor{
		Label:    label,
		Contents: contents,
		Usage:    usage,
	})
	if err != nil {
		return nil, errors.Log(err)
	}
	return buf, nil
}

// SetBufferFrom writes the given values to an existing buffer, which
// must be large enough and have CopyDst usage.
func SetBufferFrom[E any](dev *Device, buf *wgpu.Buffer, data []E) error {
	return errors.Log(dev.Queue.WriteBuffer(buf, 0, wgpu.ToBytes(data)))
}
