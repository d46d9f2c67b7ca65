package vks

import (
	"fmt"

	"github.com/vulkayes/vulkayes-go/foreign"
)

// Image wraps a foreign image handle. Like Buffer, the handle is read-only
// after creation. Format, extent and the allocated mip/layer counts are
// recorded for subresource-range validation.
type Image struct {
	shared
	device      *Device
	handle      foreign.Image
	format      foreign.Format
	extent      foreign.Extent3D
	mipLevels   uint32
	arrayLayers uint32
	usage       foreign.ImageUsageFlags
	memory      *Allocation
}

// ImageOptions are the creation parameters NewImage fills a create-info
// from. Zero mip levels or array layers default to one.
type ImageOptions struct {
	Type          foreign.ImageType
	Format        foreign.Format
	Extent        foreign.Extent3D
	MipLevels     uint32
	ArrayLayers   uint32
	Tiling        foreign.ImageTiling
	Usage         foreign.ImageUsageFlags
	SharingMode   foreign.SharingMode
	QueueFamilies []uint32
	InitialLayout foreign.ImageLayout
}

// NewImage creates an image. With strict validation enabled, empty usage
// flags and a degenerate extent are rejected before the foreign call.
func NewImage(d *Device, opts ImageOptions) (*Image, error) {
	if d.strict {
		if opts.Usage == 0 {
			return nil, ErrUsageEmpty
		}
		if opts.Extent.Width == 0 || opts.Extent.Height == 0 || opts.Extent.Depth == 0 {
			return nil, ErrZeroSize
		}
	}
	if opts.MipLevels == 0 {
		opts.MipLevels = 1
	}
	if opts.ArrayLayers == 0 {
		opts.ArrayLayers = 1
	}
	info := foreign.ImageCreateInfo{
		Type:               opts.Type,
		Format:             opts.Format,
		Extent:             opts.Extent,
		MipLevels:          opts.MipLevels,
		ArrayLayers:        opts.ArrayLayers,
		Samples:            foreign.SampleCount1,
		Tiling:             opts.Tiling,
		Usage:              opts.Usage,
		SharingMode:        opts.SharingMode,
		QueueFamilyIndices: opts.QueueFamilies,
		InitialLayout:      opts.InitialLayout,
	}
	return ImageFromCreateInfo(d, info)
}

// ImageFromCreateInfo creates an image from an explicit create-info value,
// recording the same metadata as NewImage would for equivalent parameters.
func ImageFromCreateInfo(d *Device, info foreign.ImageCreateInfo) (*Image, error) {
	h, res := d.disp.CreateImage(d.handle, &info, d.allocCB)
	if err := checkResult("vkCreateImage", res,
		foreign.OutOfHostMemory, foreign.OutOfDeviceMemory); err != nil {
		return nil, err
	}
	d.Retain()
	img := &Image{
		device:      d,
		handle:      h,
		format:      info.Format,
		extent:      info.Extent,
		mipLevels:   info.MipLevels,
		arrayLayers: info.ArrayLayers,
		usage:       info.Usage,
	}
	img.init(img.destroy)
	return img, nil
}

func (img *Image) destroy() {
	img.device.disp.DestroyImage(img.device.handle, img.handle, img.device.allocCB)
	if img.memory != nil {
		img.memory.free()
		img.memory = nil
	}
	img.device.Release()
}

func (img *Image) Device() *Device { return img.device }

// Handle returns the raw image handle; wrapper equality is defined by it.
func (img *Image) Handle() foreign.Image { return img.handle }

func (img *Image) Format() foreign.Format         { return img.format }
func (img *Image) Extent() foreign.Extent3D       { return img.extent }
func (img *Image) MipLevels() uint32              { return img.mipLevels }
func (img *Image) ArrayLayers() uint32            { return img.arrayLayers }
func (img *Image) Usage() foreign.ImageUsageFlags { return img.usage }
func (img *Image) Memory() *Allocation            { return img.memory }

// BindMemory binds device memory to the image, taking ownership of the
// allocation.
func (img *Image) BindMemory(a *Allocation) error {
	if img.memory != nil {
		return ErrMemoryAlreadyBound
	}
	if img.device.strict && a.Memory.device != img.device {
		return ErrDeviceMismatch
	}
	res := img.device.disp.BindImageMemory(img.device.handle, img.handle, a.Memory.handle, a.Offset)
	if err := checkResult("vkBindImageMemory", res,
		foreign.OutOfHostMemory, foreign.OutOfDeviceMemory); err != nil {
		return err
	}
	img.memory = a
	return nil
}

func (img *Image) String() string {
	return fmt.Sprintf("Image(%#x, %dx%dx%d)", uint64(img.handle),
		img.extent.Width, img.extent.Height, img.extent.Depth)
}
