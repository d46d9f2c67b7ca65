package vks

import (
	"fmt"
	"sort"
	"unsafe"

	"github.com/vulkayes/vulkayes-go/foreign"
)

// Queue wraps a device queue. The foreign interface forbids concurrent use
// of a queue handle, so submission and idle waits go through the queue's
// Synced cell.
type Queue struct {
	shared
	device *Device
	handle *Synced[foreign.Queue]
	family uint32
	index  uint32
}

func (q *Queue) destroy() {
	// Queue handles belong to the device and have no destroy entry point.
	q.device.Release()
}

func (q *Queue) Device() *Device { return q.device }

// FamilyIndex returns the queue family this queue was fetched from.
func (q *Queue) FamilyIndex() uint32 { return q.family }

// QueueIndex returns the index of this queue within its family.
func (q *Queue) QueueIndex() uint32 { return q.index }

// Handle locks the queue's Synced cell and returns the guard. The caller
// must Unlock it.
func (q *Queue) Handle() *Guard[foreign.Queue] { return q.handle.Lock() }

// SemaphoreStage pairs a wait semaphore with the pipeline stages that must
// wait on it.
type SemaphoreStage struct {
	Semaphore *Semaphore
	Stages    foreign.PipelineStageFlags
}

// Submit submits one batch to the queue: the command buffers execute after
// every wait semaphore is signaled (each gated at its stage mask), then the
// signal semaphores and the optional fence are signaled.
//
// With strict validation enabled, every semaphore, command buffer and fence
// argument is checked to originate from the queue's device, every command
// buffer's pool must share the queue's queue family, and no wait stage mask
// may be empty. Any violation returns a typed error before the foreign
// submit call is issued.
//
// All involved synchronized handles are locked for the duration of the
// foreign call; submitting a command buffer that is still being recorded
// therefore blocks until the recording session ends. The cells are acquired
// in a single global order, so concurrent submissions sharing semaphores or
// buffers cannot deadlock on each other.
func (q *Queue) Submit(waits []SemaphoreStage, buffers []*CommandBuffer, signals []*Semaphore, fence *Fence) error {
	if q.device.strict {
		if err := q.validateSubmit(waits, buffers, signals, fence); err != nil {
			return err
		}
	}

	info := foreign.SubmitInfo{
		WaitSemaphores:   make([]foreign.Semaphore, len(waits)),
		WaitStages:       make([]foreign.PipelineStageFlags, len(waits)),
		CommandBuffers:   make([]foreign.CommandBuffer, len(buffers)),
		SignalSemaphores: make([]foreign.Semaphore, len(signals)),
	}

	var guards []interface{ Unlock() }
	defer func() {
		for i := len(guards) - 1; i >= 0; i-- {
			guards[i].Unlock()
		}
	}()

	type acquisition struct {
		order uintptr
		lock  func()
	}
	acqs := make([]acquisition, 0, len(waits)+len(buffers)+len(signals)+2)

	for i, w := range waits {
		i, w := i, w
		info.WaitStages[i] = w.Stages
		acqs = append(acqs, acquisition{cellOrder(w.Semaphore.handle), func() {
			g := w.Semaphore.handle.Lock()
			guards = append(guards, g)
			info.WaitSemaphores[i] = g.Handle()
		}})
	}
	for i, b := range buffers {
		i, b := i, b
		acqs = append(acqs, acquisition{cellOrder(b.handle), func() {
			g := b.handle.Lock()
			guards = append(guards, g)
			info.CommandBuffers[i] = g.Handle()
		}})
	}
	for i, s := range signals {
		i, s := i, s
		acqs = append(acqs, acquisition{cellOrder(s.handle), func() {
			g := s.handle.Lock()
			guards = append(guards, g)
			info.SignalSemaphores[i] = g.Handle()
		}})
	}

	var fenceHandle foreign.Fence
	if fence != nil {
		acqs = append(acqs, acquisition{cellOrder(fence.handle), func() {
			g := fence.handle.Lock()
			guards = append(guards, g)
			fenceHandle = g.Handle()
		}})
	}

	var queueHandle foreign.Queue
	acqs = append(acqs, acquisition{cellOrder(q.handle), func() {
		g := q.handle.Lock()
		guards = append(guards, g)
		queueHandle = g.Handle()
	}})

	sort.Slice(acqs, func(a, b int) bool { return acqs[a].order < acqs[b].order })
	for _, a := range acqs {
		a.lock()
	}

	res := q.device.disp.QueueSubmit(queueHandle, []foreign.SubmitInfo{info}, fenceHandle)
	return checkResult("vkQueueSubmit", res,
		foreign.OutOfHostMemory, foreign.OutOfDeviceMemory, foreign.DeviceLost)
}

// cellOrder gives a Synced cell its position in the global lock order.
func cellOrder[H any](c *Synced[H]) uintptr { return uintptr(unsafe.Pointer(c)) }

func (q *Queue) validateSubmit(waits []SemaphoreStage, buffers []*CommandBuffer, signals []*Semaphore, fence *Fence) error {
	for _, w := range waits {
		if w.Stages == 0 {
			return ErrWaitStagesEmpty
		}
		if w.Semaphore.device != q.device {
			return ErrSubmitDeviceMismatch
		}
	}
	for _, b := range buffers {
		if b.pool.queue.device != q.device {
			return ErrSubmitDeviceMismatch
		}
		if b.pool.queue.family != q.family {
			return ErrQueueFamilyMismatch
		}
	}
	for _, s := range signals {
		if s.device != q.device {
			return ErrSubmitDeviceMismatch
		}
	}
	if fence != nil && fence.device != q.device {
		return ErrQueueFenceDeviceMismatch
	}
	return nil
}

// WaitIdle blocks until all outstanding work on the queue has completed.
func (q *Queue) WaitIdle() error {
	g := q.handle.Lock()
	res := q.device.disp.QueueWaitIdle(g.Handle())
	g.Unlock()
	return checkResult("vkQueueWaitIdle", res,
		foreign.OutOfHostMemory, foreign.OutOfDeviceMemory, foreign.DeviceLost)
}

func (q *Queue) String() string {
	return fmt.Sprintf("Queue(family %d, index %d)", q.family, q.index)
}
