package vks

import (
	"time"

	"github.com/vulkayes/vulkayes-go/foreign"
)

// Fence wraps a foreign fence. Status queries, waits, resets and destruction
// all go through the Synced cell; fences are not safe for concurrent use at
// the foreign level.
type Fence struct {
	shared
	device *Device
	handle *Synced[foreign.Fence]
}

// NewFence creates a fence, optionally already signaled.
func NewFence(d *Device, signaled bool) (*Fence, error) {
	var flags foreign.FenceCreateFlags
	if signaled {
		flags = foreign.FenceCreateSignaled
	}
	return FenceFromCreateInfo(d, foreign.FenceCreateInfo{Flags: flags})
}

// FenceFromCreateInfo creates a fence from an explicit create-info value.
func FenceFromCreateInfo(d *Device, info foreign.FenceCreateInfo) (*Fence, error) {
	h, res := d.disp.CreateFence(d.handle, &info, d.allocCB)
	if err := checkResult("vkCreateFence", res,
		foreign.OutOfHostMemory, foreign.OutOfDeviceMemory); err != nil {
		return nil, err
	}
	d.Retain()
	f := &Fence{device: d, handle: NewSynced(h)}
	f.init(f.destroy)
	return f, nil
}

func (f *Fence) destroy() {
	f.handle.With(func(h *foreign.Fence) {
		f.device.disp.DestroyFence(f.device.handle, *h, f.device.allocCB)
	})
	f.device.Release()
}

func (f *Fence) Device() *Device { return f.device }

// Handle locks the fence's Synced cell and returns the guard.
func (f *Fence) Handle() *Guard[foreign.Fence] { return f.handle.Lock() }

// Status reports without blocking whether the fence is signaled.
func (f *Fence) Status() (bool, error) {
	g := f.handle.Lock()
	res := f.device.disp.GetFenceStatus(f.device.handle, g.Handle())
	g.Unlock()
	if res == foreign.NotReady {
		return false, nil
	}
	if err := checkResult("vkGetFenceStatus", res,
		foreign.OutOfHostMemory, foreign.OutOfDeviceMemory, foreign.DeviceLost); err != nil {
		return false, err
	}
	return true, nil
}

// Wait blocks until the fence is signaled or the timeout expires. A negative
// timeout waits forever; zero polls. The bool result distinguishes signaled
// (true) from timed out (false); a timeout is not an error.
func (f *Fence) Wait(timeout time.Duration) (bool, error) {
	g := f.handle.Lock()
	res := f.device.disp.WaitForFences(f.device.handle,
		[]foreign.Fence{g.Handle()}, true, timeoutNanos(timeout))
	g.Unlock()
	if res == foreign.Timeout {
		return false, nil
	}
	if err := checkResult("vkWaitForFences", res,
		foreign.OutOfHostMemory, foreign.OutOfDeviceMemory, foreign.DeviceLost); err != nil {
		return false, err
	}
	return true, nil
}

// Reset returns the fence to the unsignaled state.
func (f *Fence) Reset() error {
	g := f.handle.Lock()
	res := f.device.disp.ResetFences(f.device.handle, []foreign.Fence{g.Handle()})
	g.Unlock()
	return checkResult("vkResetFences", res, foreign.OutOfDeviceMemory)
}

// WaitForFences waits on several fences of one device at once. With waitAll
// set it waits for every fence, otherwise for any one of them. With strict
// validation every fence must come from d.
func WaitForFences(d *Device, fences []*Fence, waitAll bool, timeout time.Duration) (bool, error) {
	if len(fences) == 0 {
		return true, nil
	}
	if d.strict {
		for _, f := range fences {
			if f.device != d {
				return false, ErrDeviceMismatch
			}
		}
	}
	guards := make([]*Guard[foreign.Fence], len(fences))
	raw := make([]foreign.Fence, len(fences))
	for i, f := range fences {
		guards[i] = f.handle.Lock()
		raw[i] = guards[i].Handle()
	}
	res := d.disp.WaitForFences(d.handle, raw, waitAll, timeoutNanos(timeout))
	for i := len(guards) - 1; i >= 0; i-- {
		guards[i].Unlock()
	}
	if res == foreign.Timeout {
		return false, nil
	}
	if err := checkResult("vkWaitForFences", res,
		foreign.OutOfHostMemory, foreign.OutOfDeviceMemory, foreign.DeviceLost); err != nil {
		return false, err
	}
	return true, nil
}

func timeoutNanos(timeout time.Duration) uint64 {
	if timeout < 0 {
		return ^uint64(0)
	}
	return uint64(timeout.Nanoseconds())
}
