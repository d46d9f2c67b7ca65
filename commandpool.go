package vks

import (
	"github.com/vulkayes/vulkayes-go/foreign"
)

// CommandPool wraps a foreign command pool. Pools require exclusive access
// during command buffer allocation, freeing, reset, and the begin/end edges
// of recording (but not during the body of a recording session), which is
// why the handle lives in a Synced cell.
type CommandPool struct {
	shared
	queue  *Queue
	handle *Synced[foreign.CommandPool]
	flags  foreign.CommandPoolCreateFlags
}

// NewCommandPool creates a command pool for the queue's family.
func NewCommandPool(q *Queue, flags foreign.CommandPoolCreateFlags) (*CommandPool, error) {
	info := foreign.CommandPoolCreateInfo{
		Flags:            flags,
		QueueFamilyIndex: q.FamilyIndex(),
	}
	return CommandPoolFromCreateInfo(q, info)
}

// CommandPoolFromCreateInfo creates a command pool from an explicit
// create-info value. The queue-family index in the info is used as given.
func CommandPoolFromCreateInfo(q *Queue, info foreign.CommandPoolCreateInfo) (*CommandPool, error) {
	d := q.device
	h, res := d.disp.CreateCommandPool(d.handle, &info, d.allocCB)
	if err := checkResult("vkCreateCommandPool", res,
		foreign.OutOfHostMemory, foreign.OutOfDeviceMemory); err != nil {
		return nil, err
	}
	q.Retain()
	p := &CommandPool{
		queue:  q,
		handle: NewSynced(h),
		flags:  info.Flags,
	}
	p.init(p.destroy)
	return p, nil
}

func (p *CommandPool) destroy() {
	d := p.queue.device
	p.handle.With(func(h *foreign.CommandPool) {
		d.disp.DestroyCommandPool(d.handle, *h, d.allocCB)
	})
	p.queue.Release()
}

func (p *CommandPool) Queue() *Queue   { return p.queue }
func (p *CommandPool) Device() *Device { return p.queue.device }

// Flags returns the creation flags recorded at construction.
func (p *CommandPool) Flags() foreign.CommandPoolCreateFlags { return p.flags }

// AllocateBuffers allocates count primary-level command buffers from the
// pool. Each returned buffer holds a reference on the pool, so the pool's
// foreign destroy call cannot be issued while any of them is live.
func (p *CommandPool) AllocateBuffers(count int) ([]*CommandBuffer, error) {
	return p.AllocateBuffersWithLevel(foreign.CommandBufferLevelPrimary, count)
}

// AllocateBuffer allocates a single primary-level command buffer.
func (p *CommandPool) AllocateBuffer() (*CommandBuffer, error) {
	bufs, err := p.AllocateBuffers(1)
	if err != nil {
		return nil, err
	}
	return bufs[0], nil
}

// AllocateBuffersWithLevel allocates count command buffers at the given
// level. The pool's guard is held for the duration of the foreign call.
func (p *CommandPool) AllocateBuffersWithLevel(level foreign.CommandBufferLevel, count int) ([]*CommandBuffer, error) {
	if count <= 0 {
		return nil, ErrZeroCount
	}
	d := p.queue.device

	g := p.handle.Lock()
	info := foreign.CommandBufferAllocateInfo{
		CommandPool: g.Handle(),
		Level:       level,
		Count:       uint32(count),
	}
	raw, res := d.disp.AllocateCommandBuffers(d.handle, &info)
	g.Unlock()

	if err := checkResult("vkAllocateCommandBuffers", res,
		foreign.OutOfHostMemory, foreign.OutOfDeviceMemory); err != nil {
		return nil, err
	}

	bufs := make([]*CommandBuffer, len(raw))
	for i, h := range raw {
		p.Retain()
		cb := &CommandBuffer{
			pool:   p,
			handle: NewSynced(h),
			level:  level,
		}
		cb.init(cb.destroy)
		bufs[i] = cb
	}
	return bufs, nil
}

// Reset recycles all command buffers allocated from the pool back to the
// initial state. Requires exclusive access to the pool, which serializes the
// reset against allocation and against the begin/end edges of recording.
func (p *CommandPool) Reset(releaseResources bool) error {
	d := p.queue.device
	var flags foreign.CommandPoolResetFlags
	if releaseResources {
		flags = foreign.CommandPoolResetReleaseResources
	}
	g := p.handle.Lock()
	res := d.disp.ResetCommandPool(d.handle, g.Handle(), flags)
	g.Unlock()
	return checkResult("vkResetCommandPool", res, foreign.OutOfDeviceMemory)
}
