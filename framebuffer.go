package vks

import (
	"github.com/vulkayes/vulkayes-go/foreign"
)

// Framebuffer wraps a foreign framebuffer. It keeps the render pass and
// every attachment view alive for as long as it exists.
type Framebuffer struct {
	shared
	renderPass  *RenderPass
	attachments []*ImageView
	handle      foreign.Framebuffer
	width       uint32
	height      uint32
	layers      uint32
}

// NewFramebuffer creates a framebuffer over the given attachment views.
// With strict validation the render pass and every view must come from the
// same device.
func NewFramebuffer(rp *RenderPass, attachments []*ImageView, width, height, layers uint32) (*Framebuffer, error) {
	d := rp.device
	if d.strict {
		for _, v := range attachments {
			if v.image.device != d {
				return nil, ErrDeviceMismatch
			}
		}
	}
	raw := make([]foreign.ImageView, len(attachments))
	for i, v := range attachments {
		raw[i] = v.handle
	}
	info := foreign.FramebufferCreateInfo{
		RenderPass:  rp.handle,
		Attachments: raw,
		Width:       width,
		Height:      height,
		Layers:      layers,
	}
	h, res := d.disp.CreateFramebuffer(d.handle, &info, d.allocCB)
	if err := checkResult("vkCreateFramebuffer", res,
		foreign.OutOfHostMemory, foreign.OutOfDeviceMemory); err != nil {
		return nil, err
	}
	rp.Retain()
	for _, v := range attachments {
		v.Retain()
	}
	fb := &Framebuffer{
		renderPass:  rp,
		attachments: append([]*ImageView(nil), attachments...),
		handle:      h,
		width:       width,
		height:      height,
		layers:      layers,
	}
	fb.init(fb.destroy)
	return fb, nil
}

func (fb *Framebuffer) destroy() {
	d := fb.renderPass.device
	d.disp.DestroyFramebuffer(d.handle, fb.handle, d.allocCB)
	for i := len(fb.attachments) - 1; i >= 0; i-- {
		fb.attachments[i].Release()
	}
	fb.renderPass.Release()
}

func (fb *Framebuffer) RenderPass() *RenderPass     { return fb.renderPass }
func (fb *Framebuffer) Device() *Device             { return fb.renderPass.device }
func (fb *Framebuffer) Handle() foreign.Framebuffer { return fb.handle }
func (fb *Framebuffer) Width() uint32               { return fb.width }
func (fb *Framebuffer) Height() uint32              { return fb.height }
func (fb *Framebuffer) Layers() uint32              { return fb.layers }
