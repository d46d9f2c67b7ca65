package vks

import (
	"github.com/vulkayes/vulkayes-go/foreign"
)

// CommandBuffer wraps a foreign command buffer allocated from a CommandPool.
// The handle lives in a Synced cell: recording, reset and free all require
// exclusive access, and a recording session holds the guard for its entire
// lifetime so no other goroutine can record into or reset the buffer
// concurrently.
type CommandBuffer struct {
	shared
	pool   *CommandPool
	handle *Synced[foreign.CommandBuffer]
	level  foreign.CommandBufferLevel
}

func (cb *CommandBuffer) destroy() {
	d := cb.pool.queue.device
	cb.handle.With(func(h *foreign.CommandBuffer) {
		pg := cb.pool.handle.Lock()
		d.disp.FreeCommandBuffers(d.handle, pg.Handle(), []foreign.CommandBuffer{*h})
		pg.Unlock()
	})
	cb.pool.Release()
}

func (cb *CommandBuffer) Pool() *CommandPool { return cb.pool }
func (cb *CommandBuffer) Device() *Device    { return cb.pool.queue.device }

// Level returns the allocation level recorded at construction.
func (cb *CommandBuffer) Level() foreign.CommandBufferLevel { return cb.level }

// Handle locks the buffer's Synced cell and returns the guard. The caller
// must Unlock it. Calling this while a recording session is live blocks
// until the session ends.
func (cb *CommandBuffer) Handle() *Guard[foreign.CommandBuffer] { return cb.handle.Lock() }

// Reset returns the command buffer to the initial state, optionally
// returning the resources it retained to the pool. It requires the same
// exclusive guard as Begin, so resetting while a recording session is live
// blocks rather than silently interleaving with it.
func (cb *CommandBuffer) Reset(releaseResources bool) error {
	var flags foreign.CommandBufferResetFlags
	if releaseResources {
		flags = foreign.CommandBufferResetReleaseResources
	}
	g := cb.handle.Lock()
	res := cb.Device().disp.ResetCommandBuffer(g.Handle(), flags)
	g.Unlock()
	return checkResult("vkResetCommandBuffer", res, foreign.OutOfDeviceMemory)
}
