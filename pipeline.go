package vks

import (
	"github.com/vulkayes/vulkayes-go/foreign"
)

// Pipeline wraps a foreign pipeline together with its bind point. The
// layout and shader module used at creation stay alive through the held
// references.
type Pipeline struct {
	shared
	layout    *PipelineLayout
	shader    *ShaderModule
	handle    foreign.Pipeline
	bindPoint foreign.PipelineBindPoint
}

// NewComputePipeline creates a compute pipeline running the given entry
// point of the shader module. With strict validation the layout and shader
// must come from the same device.
func NewComputePipeline(layout *PipelineLayout, shader *ShaderModule, entryPoint string) (*Pipeline, error) {
	d := layout.device
	if d.strict && shader.device != d {
		return nil, ErrDeviceMismatch
	}
	info := foreign.ComputePipelineCreateInfo{
		Module:     shader.handle,
		EntryPoint: entryPoint,
		Layout:     layout.handle,
	}
	h, res := d.disp.CreateComputePipeline(d.handle, &info, d.allocCB)
	if err := checkResult("vkCreateComputePipelines", res,
		foreign.OutOfHostMemory, foreign.OutOfDeviceMemory); err != nil {
		return nil, err
	}
	layout.Retain()
	shader.Retain()
	p := &Pipeline{
		layout:    layout,
		shader:    shader,
		handle:    h,
		bindPoint: foreign.PipelineBindPointCompute,
	}
	p.init(p.destroy)
	return p, nil
}

func (p *Pipeline) destroy() {
	d := p.layout.device
	d.disp.DestroyPipeline(d.handle, p.handle, d.allocCB)
	p.shader.Release()
	p.layout.Release()
}

func (p *Pipeline) Layout() *PipelineLayout              { return p.layout }
func (p *Pipeline) Device() *Device                      { return p.layout.device }
func (p *Pipeline) Handle() foreign.Pipeline             { return p.handle }
func (p *Pipeline) BindPoint() foreign.PipelineBindPoint { return p.bindPoint }
