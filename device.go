package vks

import (
	"fmt"

	"github.com/vulkayes/vulkayes-go/foreign"
)

// DeviceOptions configures the top of an ownership tree. The allocation
// callback table and the validation toggle apply to every object created
// below this device.
type DeviceOptions struct {
	// AllocationCallbacks is threaded to every foreign create and destroy
	// call for objects in this tree. Zero selects the runtime default.
	AllocationCallbacks foreign.AllocationCallbacks

	// StrictValidation enables the additional precondition checks (empty
	// usage flags, cross-device and cross-family argument mismatches)
	// before foreign calls are issued. Intended for debug and test builds.
	StrictValidation bool
}

// Device is the root of an ownership tree. It wraps an already created
// foreign device handle; instance and physical-device discovery are the
// caller's concern. Every child object holds a reference on its device, so
// the foreign destroy call for the device cannot be issued while any queue,
// pool, buffer or other derived object is still live.
//
// The device handle itself needs no Synced cell: creation calls against it
// are internally synchronized by the foreign interface, and the only
// externally synchronized use is destruction, which the reference count
// already serializes against every other use.
type Device struct {
	shared
	disp    foreign.Dispatch
	handle  foreign.Device
	allocCB foreign.AllocationCallbacks
	strict  bool
}

// NewDevice wraps a foreign device handle. The wrapper takes ownership: when
// the last reference is released the foreign destroy entry point is called.
func NewDevice(disp foreign.Dispatch, handle foreign.Device, opts DeviceOptions) (*Device, error) {
	if disp == nil {
		return nil, ErrNilDispatch
	}
	if handle == 0 {
		return nil, ErrNullHandle
	}
	d := &Device{
		disp:    disp,
		handle:  handle,
		allocCB: opts.AllocationCallbacks,
		strict:  opts.StrictValidation,
	}
	d.init(d.destroy)
	return d, nil
}

func (d *Device) destroy() {
	d.disp.DestroyDevice(d.handle, d.allocCB)
}

// Handle returns the raw device handle. Two wrappers around the same raw
// handle are the same device for equality purposes.
func (d *Device) Handle() foreign.Device { return d.handle }

// Dispatch returns the foreign dispatch table this tree was built on.
func (d *Device) Dispatch() foreign.Dispatch { return d.disp }

// AllocationCallbacks returns the host allocation callback table configured
// for this tree.
func (d *Device) AllocationCallbacks() foreign.AllocationCallbacks { return d.allocCB }

// StrictValidation reports whether the extra precondition checks are on.
func (d *Device) StrictValidation() bool { return d.strict }

// Queue fetches a device queue. Queues are owned by the device and are not
// destroyed individually; releasing the wrapper only drops its reference on
// the device.
func (d *Device) Queue(family, index uint32) *Queue {
	h := d.disp.GetDeviceQueue(d.handle, family, index)
	d.Retain()
	q := &Queue{
		device: d,
		handle: NewSynced(h),
		family: family,
		index:  index,
	}
	q.init(q.destroy)
	return q
}

// WaitIdle blocks until all queues of the device are idle.
func (d *Device) WaitIdle() error {
	return checkResult("vkDeviceWaitIdle", d.disp.DeviceWaitIdle(d.handle),
		foreign.OutOfHostMemory, foreign.OutOfDeviceMemory, foreign.DeviceLost)
}

func (d *Device) String() string {
	return fmt.Sprintf("Device(%#x)", uint64(d.handle))
}
