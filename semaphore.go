package vks

import (
	"github.com/vulkayes/vulkayes-go/foreign"
)

// Semaphore wraps a foreign binary semaphore. The handle is locked whenever
// it appears in a submission batch and during destruction.
type Semaphore struct {
	shared
	device *Device
	handle *Synced[foreign.Semaphore]
}

// NewSemaphore creates a semaphore in the unsignaled state.
func NewSemaphore(d *Device) (*Semaphore, error) {
	info := foreign.SemaphoreCreateInfo{}
	h, res := d.disp.CreateSemaphore(d.handle, &info, d.allocCB)
	if err := checkResult("vkCreateSemaphore", res,
		foreign.OutOfHostMemory, foreign.OutOfDeviceMemory); err != nil {
		return nil, err
	}
	d.Retain()
	s := &Semaphore{device: d, handle: NewSynced(h)}
	s.init(s.destroy)
	return s, nil
}

func (s *Semaphore) destroy() {
	s.handle.With(func(h *foreign.Semaphore) {
		s.device.disp.DestroySemaphore(s.device.handle, *h, s.device.allocCB)
	})
	s.device.Release()
}

func (s *Semaphore) Device() *Device { return s.device }

// Handle locks the semaphore's Synced cell and returns the guard.
func (s *Semaphore) Handle() *Guard[foreign.Semaphore] { return s.handle.Lock() }
