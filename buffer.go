package vks

import (
	"fmt"

	units "github.com/docker/go-units"

	"github.com/vulkayes/vulkayes-go/foreign"
)

// Buffer wraps a foreign buffer handle. The handle itself is read-only after
// creation (its contents are only manipulated by GPU-side work recorded
// elsewhere), so it needs no Synced cell; destruction is serialized by the
// reference count. Size and usage are recorded at construction for later
// range validation and introspection.
type Buffer struct {
	shared
	device *Device
	handle foreign.Buffer
	size   uint64
	usage  foreign.BufferUsageFlags
	memory *Allocation
}

// NewBuffer creates a buffer. With strict validation enabled, empty usage
// flags and a zero size are rejected before the foreign call.
func NewBuffer(d *Device, size uint64, usage foreign.BufferUsageFlags, sharing foreign.SharingMode, queueFamilies []uint32) (*Buffer, error) {
	if d.strict {
		if usage == 0 {
			return nil, ErrUsageEmpty
		}
		if size == 0 {
			return nil, ErrZeroSize
		}
	}
	info := foreign.BufferCreateInfo{
		Size:               size,
		Usage:              usage,
		SharingMode:        sharing,
		QueueFamilyIndices: queueFamilies,
	}
	return BufferFromCreateInfo(d, info)
}

// BufferFromCreateInfo creates a buffer from an explicit create-info value.
// The wrapper records the same metadata as NewBuffer would for equivalent
// parameters.
func BufferFromCreateInfo(d *Device, info foreign.BufferCreateInfo) (*Buffer, error) {
	h, res := d.disp.CreateBuffer(d.handle, &info, d.allocCB)
	if err := checkResult("vkCreateBuffer", res,
		foreign.OutOfHostMemory, foreign.OutOfDeviceMemory, foreign.InvalidOpaqueCaptureAddress); err != nil {
		return nil, err
	}
	d.Retain()
	b := &Buffer{
		device: d,
		handle: h,
		size:   info.Size,
		usage:  info.Usage,
	}
	b.init(b.destroy)
	return b, nil
}

func (b *Buffer) destroy() {
	b.device.disp.DestroyBuffer(b.device.handle, b.handle, b.device.allocCB)
	if b.memory != nil {
		b.memory.free()
		b.memory = nil
	}
	b.device.Release()
}

func (b *Buffer) Device() *Device { return b.device }

// Handle returns the raw buffer handle. Wrapper equality is defined by this
// value alone, never by the recorded metadata.
func (b *Buffer) Handle() foreign.Buffer { return b.handle }

// Size returns the byte size recorded at construction.
func (b *Buffer) Size() uint64 { return b.size }

// Usage returns the usage flags recorded at construction.
func (b *Buffer) Usage() foreign.BufferUsageFlags { return b.usage }

// Memory returns the bound allocation, or nil before BindMemory.
func (b *Buffer) Memory() *Allocation { return b.memory }

// BindMemory binds device memory to the buffer. The buffer takes ownership
// of the allocation and frees it on destruction. With strict validation the
// allocation must come from the buffer's device.
func (b *Buffer) BindMemory(a *Allocation) error {
	if b.memory != nil {
		return ErrMemoryAlreadyBound
	}
	if b.device.strict && a.Memory.device != b.device {
		return ErrDeviceMismatch
	}
	res := b.device.disp.BindBufferMemory(b.device.handle, b.handle, a.Memory.handle, a.Offset)
	if err := checkResult("vkBindBufferMemory", res,
		foreign.OutOfHostMemory, foreign.OutOfDeviceMemory, foreign.InvalidOpaqueCaptureAddress); err != nil {
		return err
	}
	b.memory = a
	return nil
}

func (b *Buffer) String() string {
	return fmt.Sprintf("Buffer(%#x, %s)", uint64(b.handle), units.BytesSize(float64(b.size)))
}
