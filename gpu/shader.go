// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package gpu

import (
	"fmt"
	"os"

	"cogentcore.org/core/base/errors"
	"github.com/cogentcore/webgpu/wgpu"
)

// Shader is a WGSL shader module, which can contain multiple entry
// points (e.g., one vertex and one fragment function).
type Shader struct {
	// Name is used for debugging and error messages.
	Name string

	module *wgpu.ShaderModule
	device *Device
}

// NewShader returns a new Shader with the given name, on the given
// device. Use OpenCode or OpenFile to load the WGSL source.
func NewShader(name string, dev *Device) *Shader {
	return &Shader{Name: name, device: dev}
}

// OpenFile loads WGSL shader source from the given file.
func (sh *Shader) OpenFile(fname string) error {
	b, err := os.ReadFile(fname)
	if err != nil {
		return errors.Log(fmt.Errorf("gpu.Shader: %s: %w", sh.Name, err))
	}
	return sh.OpenCode(string(b))
}

// OpenCode compiles the given WGSL shader source into a module.
func (sh *Shader) OpenCode(code string) error {
	module, err := sh.device.Device.CreateShaderModule(&wgpu.ShaderModuleDescriptor{
		Label:          sh.Name,
		WGSLDescriptor: &wgpu.ShaderModuleWGSLDescriptor{Code: code},
	})
	if err != nil {
		return errors.Log(fmt.Errorf("gpu.Shader: %s: %w", sh.Name, err))
	}
	sh.module = module
	return nil
}

// Module returns the compiled shader module.
func (sh *Shader) Module() *wgpu.ShaderModule {
	return sh.module
}

// Release releases the shader module.
func (sh *Shader) Release() {
	if sh.module == nil {
		return
	}
	sh.module.Release()
	sh.module = nil
}
