package vks

import (
	"github.com/vulkayes/vulkayes-go/foreign"
)

// DeviceMemory wraps a foreign device memory allocation. Map and Unmap
// mutate the mapping state, so the handle lives behind a Synced cell.
type DeviceMemory struct {
	shared
	device    *Device
	handle    foreign.DeviceMemory
	mapState  *Synced[uintptr]
	size      uint64
	typeIndex uint32
}

// AllocateMemory allocates size bytes from the given memory type.
func AllocateMemory(d *Device, size uint64, typeIndex uint32) (*DeviceMemory, error) {
	if d.strict && size == 0 {
		return nil, ErrZeroSize
	}
	info := foreign.MemoryAllocateInfo{
		AllocationSize:  size,
		MemoryTypeIndex: typeIndex,
	}
	h, res := d.disp.AllocateMemory(d.handle, &info, d.allocCB)
	if err := checkResult("vkAllocateMemory", res,
		foreign.OutOfHostMemory, foreign.OutOfDeviceMemory,
		foreign.InvalidOpaqueCaptureAddress); err != nil {
		return nil, err
	}
	d.Retain()
	m := &DeviceMemory{
		device:    d,
		handle:    h,
		mapState:  NewSynced[uintptr](0),
		size:      size,
		typeIndex: typeIndex,
	}
	m.init(m.destroy)
	return m, nil
}

func (m *DeviceMemory) destroy() {
	m.mapState.With(func(*uintptr) {
		m.device.disp.FreeMemory(m.device.handle, m.handle, m.device.allocCB)
	})
	m.device.Release()
}

func (m *DeviceMemory) Device() *Device              { return m.device }
func (m *DeviceMemory) Handle() foreign.DeviceMemory { return m.handle }
func (m *DeviceMemory) Size() uint64                 { return m.size }
func (m *DeviceMemory) TypeIndex() uint32            { return m.typeIndex }

// Map maps size bytes at offset into host address space and returns the
// host pointer. The memory type must be host visible; that property is the
// caller's to guarantee, since memory-type properties belong to physical
// device discovery.
func (m *DeviceMemory) Map(offset, size uint64) (uintptr, error) {
	if m.device.strict && (offset+size > m.size || offset+size < offset) {
		return 0, ErrRangeOutOfBounds
	}
	var ptr uintptr
	var err error
	m.mapState.With(func(p *uintptr) {
		var res foreign.Result
		ptr, res = m.device.disp.MapMemory(m.device.handle, m.handle, offset, size)
		err = checkResult("vkMapMemory", res,
			foreign.OutOfHostMemory, foreign.OutOfDeviceMemory, foreign.MemoryMapFailed)
		if err == nil {
			*p = ptr
		}
	})
	return ptr, err
}

// Unmap unmaps a previous Map.
func (m *DeviceMemory) Unmap() {
	m.mapState.With(func(p *uintptr) {
		m.device.disp.UnmapMemory(m.device.handle, m.handle)
		*p = 0
	})
}
