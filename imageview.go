package vks

import (
	"github.com/vulkayes/vulkayes-go/foreign"
)

// ImageView wraps a foreign image view. It owns a reference on its image, so
// a view can never outlive the image it references.
type ImageView struct {
	shared
	image  *Image
	handle foreign.ImageView
}

// NewImageView creates a view over a validated subresource range of the
// image: the mip and layer ranges must lie within the image's allocated
// levels and layers.
func NewImageView(img *Image, viewType foreign.ImageViewType, format foreign.Format, rng foreign.ImageSubresourceRange) (*ImageView, error) {
	if err := img.checkSubresourceRange(rng); err != nil {
		return nil, err
	}
	d := img.device
	info := foreign.ImageViewCreateInfo{
		Image:            img.handle,
		ViewType:         viewType,
		Format:           format,
		SubresourceRange: rng,
	}
	h, res := d.disp.CreateImageView(d.handle, &info, d.allocCB)
	if err := checkResult("vkCreateImageView", res,
		foreign.OutOfHostMemory, foreign.OutOfDeviceMemory); err != nil {
		return nil, err
	}
	img.Retain()
	v := &ImageView{image: img, handle: h}
	v.init(v.destroy)
	return v, nil
}

func (v *ImageView) destroy() {
	d := v.image.device
	d.disp.DestroyImageView(d.handle, v.handle, d.allocCB)
	v.image.Release()
}

func (v *ImageView) Image() *Image             { return v.image }
func (v *ImageView) Device() *Device           { return v.image.device }
func (v *ImageView) Handle() foreign.ImageView { return v.handle }
