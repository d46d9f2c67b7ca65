package vks

import (
	"github.com/vulkayes/vulkayes-go/foreign"
)

// DescriptorSet wraps a foreign descriptor set allocated from a
// DescriptorPool. It keeps both its pool and its layout alive. If the pool
// was created with the free-descriptor-set flag the set is returned to the
// pool individually on release; otherwise its storage is reclaimed only by
// pool reset or destruction.
type DescriptorSet struct {
	shared
	pool   *DescriptorPool
	layout *DescriptorSetLayout
	handle foreign.DescriptorSet
}

func (s *DescriptorSet) destroy() {
	if s.pool.freeSets {
		d := s.pool.device
		g := s.pool.handle.Lock()
		// Destruction is infallible from the caller's point of view; any
		// error code here means a broken foreign state and checkResult
		// escalates it by panicking.
		res := d.disp.FreeDescriptorSets(d.handle, g.Handle(), []foreign.DescriptorSet{s.handle})
		g.Unlock()
		_ = checkResult("vkFreeDescriptorSets", res)
	}
	s.layout.Release()
	s.pool.Release()
}

// WriteBuffer points the descriptor at binding to a range of the buffer. A
// rng of foreign.WholeSize covers the rest of the buffer from offset. The
// range is validated against the buffer's recorded size; with strict
// validation the buffer must come from the set's device.
func (s *DescriptorSet) WriteBuffer(binding uint32, dtype foreign.DescriptorType, buf *Buffer, offset, rng uint64) error {
	d := s.pool.device
	if err := buf.checkRange(offset, rng); err != nil {
		return err
	}
	if d.strict && buf.device != d {
		return ErrDeviceMismatch
	}
	write := foreign.WriteDescriptorSet{
		DstSet:         s.handle,
		DstBinding:     binding,
		DescriptorType: dtype,
		BufferInfos: []foreign.DescriptorBufferInfo{
			{Buffer: buf.handle, Offset: offset, Range: rng},
		},
	}
	d.disp.UpdateDescriptorSets(d.handle, []foreign.WriteDescriptorSet{write})
	return nil
}

func (s *DescriptorSet) Pool() *DescriptorPool         { return s.pool }
func (s *DescriptorSet) Layout() *DescriptorSetLayout  { return s.layout }
func (s *DescriptorSet) Device() *Device               { return s.pool.device }
func (s *DescriptorSet) Handle() foreign.DescriptorSet { return s.handle }
