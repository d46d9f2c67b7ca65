package vks

import (
	"encoding/binary"

	"github.com/vulkayes/vulkayes-go/foreign"
)

// ShaderModule wraps a foreign shader module created from SPIR-V code.
type ShaderModule struct {
	shared
	device *Device
	handle foreign.ShaderModule
}

// NewShaderModule creates a shader module from SPIR-V words. With strict
// validation an empty code slice is rejected.
func NewShaderModule(d *Device, code []uint32) (*ShaderModule, error) {
	if d.strict && len(code) == 0 {
		return nil, ErrCodeSizeInvalid
	}
	info := foreign.ShaderModuleCreateInfo{Code: code}
	h, res := d.disp.CreateShaderModule(d.handle, &info, d.allocCB)
	if err := checkResult("vkCreateShaderModule", res,
		foreign.OutOfHostMemory, foreign.OutOfDeviceMemory); err != nil {
		return nil, err
	}
	d.Retain()
	m := &ShaderModule{device: d, handle: h}
	m.init(m.destroy)
	return m, nil
}

// NewShaderModuleBytes creates a shader module from raw SPIR-V bytes, as
// read from a .spv file. The byte length must be a multiple of four.
func NewShaderModuleBytes(d *Device, code []byte) (*ShaderModule, error) {
	if len(code) == 0 || len(code)%4 != 0 {
		return nil, ErrCodeSizeInvalid
	}
	words := make([]uint32, len(code)/4)
	for i := range words {
		words[i] = binary.LittleEndian.Uint32(code[i*4:])
	}
	return NewShaderModule(d, words)
}

func (m *ShaderModule) destroy() {
	m.device.disp.DestroyShaderModule(m.device.handle, m.handle, m.device.allocCB)
	m.device.Release()
}

func (m *ShaderModule) Device() *Device              { return m.device }
func (m *ShaderModule) Handle() foreign.ShaderModule { return m.handle }
