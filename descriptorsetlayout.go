package vks

import (
	"github.com/vulkayes/vulkayes-go/foreign"
)

// DescriptorSetLayout wraps a foreign descriptor set layout. The binding
// list is recorded at construction for introspection.
type DescriptorSetLayout struct {
	shared
	device   *Device
	handle   foreign.DescriptorSetLayout
	bindings []foreign.DescriptorSetLayoutBinding
}

// NewDescriptorSetLayout creates a layout from the binding list. With strict
// validation an empty list is rejected before the foreign call.
func NewDescriptorSetLayout(d *Device, bindings []foreign.DescriptorSetLayoutBinding) (*DescriptorSetLayout, error) {
	if d.strict && len(bindings) == 0 {
		return nil, ErrBindingsEmpty
	}
	info := foreign.DescriptorSetLayoutCreateInfo{Bindings: bindings}
	h, res := d.disp.CreateDescriptorSetLayout(d.handle, &info, d.allocCB)
	if err := checkResult("vkCreateDescriptorSetLayout", res,
		foreign.OutOfHostMemory, foreign.OutOfDeviceMemory); err != nil {
		return nil, err
	}
	d.Retain()
	l := &DescriptorSetLayout{
		device:   d,
		handle:   h,
		bindings: append([]foreign.DescriptorSetLayoutBinding(nil), bindings...),
	}
	l.init(l.destroy)
	return l, nil
}

func (l *DescriptorSetLayout) destroy() {
	l.device.disp.DestroyDescriptorSetLayout(l.device.handle, l.handle, l.device.allocCB)
	l.device.Release()
}

func (l *DescriptorSetLayout) Device() *Device                     { return l.device }
func (l *DescriptorSetLayout) Handle() foreign.DescriptorSetLayout { return l.handle }

// Bindings returns the binding list recorded at construction.
func (l *DescriptorSetLayout) Bindings() []foreign.DescriptorSetLayoutBinding { return l.bindings }
