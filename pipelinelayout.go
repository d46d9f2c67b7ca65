package vks

import (
	"github.com/vulkayes/vulkayes-go/foreign"
)

// PipelineLayout wraps a foreign pipeline layout.
type PipelineLayout struct {
	shared
	device *Device
	handle foreign.PipelineLayout
}

// NewPipelineLayout creates a pipeline layout from set layouts and push
// constant ranges. With strict validation every set layout must come from d.
func NewPipelineLayout(d *Device, setLayouts []*DescriptorSetLayout, pushRanges []foreign.PushConstantRange) (*PipelineLayout, error) {
	if d.strict {
		for _, l := range setLayouts {
			if l.device != d {
				return nil, ErrDeviceMismatch
			}
		}
	}
	raw := make([]foreign.DescriptorSetLayout, len(setLayouts))
	for i, l := range setLayouts {
		raw[i] = l.handle
	}
	info := foreign.PipelineLayoutCreateInfo{
		SetLayouts:         raw,
		PushConstantRanges: pushRanges,
	}
	h, res := d.disp.CreatePipelineLayout(d.handle, &info, d.allocCB)
	if err := checkResult("vkCreatePipelineLayout", res,
		foreign.OutOfHostMemory, foreign.OutOfDeviceMemory); err != nil {
		return nil, err
	}
	d.Retain()
	l := &PipelineLayout{device: d, handle: h}
	l.init(l.destroy)
	return l, nil
}

func (l *PipelineLayout) destroy() {
	l.device.disp.DestroyPipelineLayout(l.device.handle, l.handle, l.device.allocCB)
	l.device.Release()
}

func (l *PipelineLayout) Device() *Device                { return l.device }
func (l *PipelineLayout) Handle() foreign.PipelineLayout { return l.handle }
