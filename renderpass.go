package vks

import (
	"github.com/vulkayes/vulkayes-go/foreign"
)

// RenderPass wraps a foreign render pass. The handle is read-only after
// creation.
type RenderPass struct {
	shared
	device *Device
	handle foreign.RenderPass
}

// NewRenderPass creates a render pass from attachment, subpass and
// dependency descriptions. With strict validation at least one subpass is
// required.
func NewRenderPass(d *Device, info foreign.RenderPassCreateInfo) (*RenderPass, error) {
	if d.strict && len(info.Subpasses) == 0 {
		return nil, ErrSubpassesEmpty
	}
	h, res := d.disp.CreateRenderPass(d.handle, &info, d.allocCB)
	if err := checkResult("vkCreateRenderPass", res,
		foreign.OutOfHostMemory, foreign.OutOfDeviceMemory); err != nil {
		return nil, err
	}
	d.Retain()
	rp := &RenderPass{device: d, handle: h}
	rp.init(rp.destroy)
	return rp, nil
}

func (rp *RenderPass) destroy() {
	rp.device.disp.DestroyRenderPass(rp.device.handle, rp.handle, rp.device.allocCB)
	rp.device.Release()
}

func (rp *RenderPass) Device() *Device            { return rp.device }
func (rp *RenderPass) Handle() foreign.RenderPass { return rp.handle }
