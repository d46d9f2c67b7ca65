package vks

import (
	"github.com/vulkayes/vulkayes-go/foreign"
)

// BeginInfo selects the usage semantics of a recording session.
type BeginInfo struct {
	// OneTime marks the buffer for a single submission before reset.
	OneTime bool
	// Simultaneous allows the buffer to be submitted multiple times at
	// once. Ignored when OneTime is set.
	Simultaneous bool
}

func (info BeginInfo) flags() foreign.CommandBufferUsageFlags {
	switch {
	case info.OneTime:
		return foreign.CommandBufferUsageOneTimeSubmit
	case info.Simultaneous:
		return foreign.CommandBufferUsageSimultaneousUse
	}
	return 0
}

type recordState uint8

const (
	stateOutsidePass recordState = iota
	stateInsidePass
	stateEnded
)

// recordSession is the shared state behind the Recording and PassRecording
// capabilities. It holds the command buffer's guard for the whole session;
// the guard is released exactly once, by End (or by Record's cleanup).
type recordSession struct {
	buf   *CommandBuffer
	guard *Guard[foreign.CommandBuffer]
	state recordState
}

func (s *recordSession) require(want recordState) {
	if s.state != want {
		switch s.state {
		case stateEnded:
			panic("vks: use of an ended recording")
		case stateInsidePass:
			panic("vks: operation is not legal inside a render pass")
		default:
			panic("vks: operation is only legal inside a render pass")
		}
	}
}

func (s *recordSession) handle() foreign.CommandBuffer { return s.guard.Handle() }
func (s *recordSession) disp() foreign.Dispatch        { return s.buf.pool.queue.device.disp }

// Begin starts a recording session and returns the outside-render-pass
// capability. The buffer's guard is taken for the whole session, so a second
// Begin on the same buffer (or a concurrent Reset or free) blocks until the
// session ends. The pool's guard is held only for the duration of the
// foreign begin call: pools require exclusivity at the begin/end edges but
// not during the body of recording.
//
// The returned Recording is the only way to reach the recording operations;
// its state-transition methods return the capability for the next state and
// invalidate the previous one.
func (cb *CommandBuffer) Begin(info BeginInfo) (*Recording, error) {
	guard := cb.handle.Lock()

	beginInfo := foreign.CommandBufferBeginInfo{Flags: info.flags()}
	pg := cb.pool.handle.Lock()
	res := cb.Device().disp.BeginCommandBuffer(guard.Handle(), &beginInfo)
	pg.Unlock()

	if err := checkResult("vkBeginCommandBuffer", res,
		foreign.OutOfHostMemory, foreign.OutOfDeviceMemory); err != nil {
		guard.Unlock()
		return nil, err
	}
	return &Recording{s: &recordSession{buf: cb, guard: guard}}, nil
}

// Record runs fn inside a recording session and guarantees that the session
// is ended exactly once, even when fn returns early or panics: a render pass
// left open is closed and the foreign end call is issued before the guard is
// released. The error from ending is returned when fn itself succeeded.
func (cb *CommandBuffer) Record(info BeginInfo, fn func(*Recording) error) (err error) {
	r, err := cb.Begin(info)
	if err != nil {
		return err
	}
	s := r.s

	defer func() {
		if v := recover(); v != nil {
			if s.state != stateEnded {
				s.finish()
			}
			panic(v)
		}
	}()

	err = fn(r)
	if s.state != stateEnded {
		if endErr := s.finish(); endErr != nil && err == nil {
			err = endErr
		}
	}
	return err
}

// finish unwinds whatever state the session was left in: closes an open
// render pass, issues the foreign end call and releases the guard.
func (s *recordSession) finish() error {
	if s.state == stateInsidePass {
		s.disp().CmdEndRenderPass(s.handle())
		s.state = stateOutsidePass
	}
	return (&Recording{s: s}).End()
}

// Recording is the outside-render-pass capability of a recording session.
// It exposes binding, dispatch, copy and barrier operations plus the
// transition into a render pass. Draw calls are not reachable from this
// type; entering a render pass first is a compile-time requirement.
//
// Recording is a linear capability: BeginRenderPass and End consume it, and
// using a consumed value panics.
type Recording struct {
	s *recordSession
}

// Buffer returns the command buffer being recorded. Locking its handle from
// the same goroutine deadlocks, since the session already holds the guard.
func (r *Recording) Buffer() *CommandBuffer { return r.s.buf }

// BindPipeline binds a pipeline at its bind point.
func (r *Recording) BindPipeline(p *Pipeline) {
	r.s.require(stateOutsidePass)
	r.s.disp().CmdBindPipeline(r.s.handle(), p.bindPoint, p.handle)
}

// BindDescriptorSets binds descriptor sets starting at firstSet.
func (r *Recording) BindDescriptorSets(bindPoint foreign.PipelineBindPoint, layout *PipelineLayout, firstSet uint32, sets ...*DescriptorSet) {
	r.s.require(stateOutsidePass)
	raw := make([]foreign.DescriptorSet, len(sets))
	for i, s := range sets {
		raw[i] = s.handle
	}
	r.s.disp().CmdBindDescriptorSets(r.s.handle(), bindPoint, layout.handle, firstSet, raw)
}

// BindVertexBuffers binds vertex buffers starting at firstBinding. The
// offsets slice must be the same length as buffers.
func (r *Recording) BindVertexBuffers(firstBinding uint32, buffers []*Buffer, offsets []uint64) {
	r.s.require(stateOutsidePass)
	raw := make([]foreign.Buffer, len(buffers))
	for i, b := range buffers {
		raw[i] = b.handle
	}
	r.s.disp().CmdBindVertexBuffers(r.s.handle(), firstBinding, raw, offsets)
}

// BindIndexBuffer binds an index buffer.
func (r *Recording) BindIndexBuffer(b *Buffer, offset uint64, indexType foreign.IndexType) {
	r.s.require(stateOutsidePass)
	r.s.disp().CmdBindIndexBuffer(r.s.handle(), b.handle, offset, indexType)
}

// PushConstants records a push constant update. The data size must be a
// non-zero multiple of four bytes.
func (r *Recording) PushConstants(layout *PipelineLayout, stages foreign.ShaderStageFlags, offset uint32, data []byte) error {
	r.s.require(stateOutsidePass)
	if len(data) == 0 || len(data)%4 != 0 {
		return ErrPushConstantSizeInvalid
	}
	r.s.disp().CmdPushConstants(r.s.handle(), layout.handle, stages, offset, data)
	return nil
}

// Dispatch records a compute dispatch with the given workgroup counts.
func (r *Recording) Dispatch(groupCount [3]uint32) {
	r.s.require(stateOutsidePass)
	r.s.disp().CmdDispatch(r.s.handle(), groupCount[0], groupCount[1], groupCount[2])
}

// DispatchBase records a compute dispatch with a non-zero base workgroup.
func (r *Recording) DispatchBase(base, groupCount [3]uint32) {
	r.s.require(stateOutsidePass)
	r.s.disp().CmdDispatchBase(r.s.handle(),
		base[0], base[1], base[2],
		groupCount[0], groupCount[1], groupCount[2])
}

// CopyBuffer records a buffer-to-buffer copy. Use NewBufferCopy to build
// validated regions.
func (r *Recording) CopyBuffer(src, dst *Buffer, regions ...foreign.BufferCopy) {
	r.s.require(stateOutsidePass)
	r.s.disp().CmdCopyBuffer(r.s.handle(), src.handle, dst.handle, regions)
}

// CopyBufferToImage records a buffer-to-image copy with the destination in
// dstLayout.
func (r *Recording) CopyBufferToImage(src *Buffer, dst *Image, dstLayout foreign.ImageLayout, regions ...foreign.BufferImageCopy) {
	r.s.require(stateOutsidePass)
	r.s.disp().CmdCopyBufferToImage(r.s.handle(), src.handle, dst.handle, dstLayout, regions)
}

// CopyImageToBuffer records an image-to-buffer copy with the source in
// srcLayout.
func (r *Recording) CopyImageToBuffer(src *Image, srcLayout foreign.ImageLayout, dst *Buffer, regions ...foreign.BufferImageCopy) {
	r.s.require(stateOutsidePass)
	r.s.disp().CmdCopyImageToBuffer(r.s.handle(), src.handle, srcLayout, dst.handle, regions)
}

// FillBuffer records a fill of size bytes at offset with a repeated 32-bit
// value. Offset must be four-byte aligned; size must be a four-byte multiple
// within the buffer, or WholeSize for the rest of the buffer.
func (r *Recording) FillBuffer(b *Buffer, offset, size uint64, value uint32) error {
	r.s.require(stateOutsidePass)
	if offset%4 != 0 || (size != foreign.WholeSize && size%4 != 0) {
		return ErrDataSizeInvalid
	}
	if err := b.checkRange(offset, size); err != nil {
		return err
	}
	r.s.disp().CmdFillBuffer(r.s.handle(), b.handle, offset, size, value)
	return nil
}

// UpdateBuffer records an inline update writing data into the buffer at
// offset. The data travels in the command buffer itself, so the foreign
// interface caps it at 65536 bytes and requires four-byte alignment.
func (r *Recording) UpdateBuffer(b *Buffer, offset uint64, data []byte) error {
	r.s.require(stateOutsidePass)
	if len(data) == 0 || len(data)%4 != 0 || len(data) > 65536 || offset%4 != 0 {
		return ErrDataSizeInvalid
	}
	if err := b.checkRange(offset, uint64(len(data))); err != nil {
		return err
	}
	r.s.disp().CmdUpdateBuffer(r.s.handle(), b.handle, offset, data)
	return nil
}

// PipelineBarrier records an explicit memory/execution dependency. Use the
// barrier constructors to build validated descriptors.
func (r *Recording) PipelineBarrier(srcStages, dstStages foreign.PipelineStageFlags, memory []foreign.MemoryBarrier, buffers []foreign.BufferMemoryBarrier, images []foreign.ImageMemoryBarrier) {
	r.s.require(stateOutsidePass)
	r.s.disp().CmdPipelineBarrier(r.s.handle(), srcStages, dstStages, 0, memory, buffers, images)
}

// BeginRenderPass transitions into the render pass and returns the
// inside-render-pass capability, consuming the receiver. Draw calls are only
// reachable on the returned PassRecording.
func (r *Recording) BeginRenderPass(rp *RenderPass, fb *Framebuffer, area foreign.Rect2D, clearValues []foreign.ClearValue, inline bool) *PassRecording {
	r.s.require(stateOutsidePass)
	info := foreign.RenderPassBeginInfo{
		RenderPass:  rp.handle,
		Framebuffer: fb.handle,
		RenderArea:  area,
		ClearValues: clearValues,
	}
	r.s.disp().CmdBeginRenderPass(r.s.handle(), &info, subpassContents(inline))
	r.s.state = stateInsidePass
	return &PassRecording{s: r.s}
}

// End issues the foreign end call and releases the buffer's guard, returning
// the buffer to the not-recording state. The pool's guard is held for the
// duration of the call, matching Begin. End consumes the receiver.
//
// End is not reachable while inside a render pass; EndRenderPass first.
func (r *Recording) End() error {
	r.s.require(stateOutsidePass)

	pg := r.s.buf.pool.handle.Lock()
	res := r.s.disp().EndCommandBuffer(r.s.handle())
	pg.Unlock()

	r.s.state = stateEnded
	r.s.guard.Unlock()
	return checkResult("vkEndCommandBuffer", res,
		foreign.OutOfHostMemory, foreign.OutOfDeviceMemory)
}

// PassRecording is the inside-render-pass capability. It exposes draw calls
// and subpass control; ending the recording session is not reachable from
// this type, so a session cannot end with a render pass still open.
type PassRecording struct {
	s *recordSession
}

// Buffer returns the command buffer being recorded.
func (p *PassRecording) Buffer() *CommandBuffer { return p.s.buf }

// Draw records a non-indexed draw.
func (p *PassRecording) Draw(vertexCount, instanceCount, firstVertex, firstInstance uint32) {
	p.s.require(stateInsidePass)
	p.s.disp().CmdDraw(p.s.handle(), vertexCount, instanceCount, firstVertex, firstInstance)
}

// DrawIndexed records an indexed draw.
func (p *PassRecording) DrawIndexed(indexCount, instanceCount, firstIndex uint32, vertexOffset int32, firstInstance uint32) {
	p.s.require(stateInsidePass)
	p.s.disp().CmdDrawIndexed(p.s.handle(), indexCount, instanceCount, firstIndex, vertexOffset, firstInstance)
}

// NextSubpass advances to the next subpass, staying inside the render pass.
func (p *PassRecording) NextSubpass(inline bool) {
	p.s.require(stateInsidePass)
	p.s.disp().CmdNextSubpass(p.s.handle(), subpassContents(inline))
}

// EndRenderPass closes the render pass and returns the outside-render-pass
// capability, consuming the receiver.
func (p *PassRecording) EndRenderPass() *Recording {
	p.s.require(stateInsidePass)
	p.s.disp().CmdEndRenderPass(p.s.handle())
	p.s.state = stateOutsidePass
	return &Recording{s: p.s}
}

func subpassContents(inline bool) foreign.SubpassContents {
	if inline {
		return foreign.SubpassContentsInline
	}
	return foreign.SubpassContentsSecondaryCommandBuffers
}
