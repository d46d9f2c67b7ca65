package vks

import (
	"errors"
	"fmt"
	"sync"

	units "github.com/docker/go-units"
)

// Allocation is a region of device memory handed out by a MemoryAllocator.
// Binding it to a buffer or image transfers ownership to that resource,
// which frees it on destruction; unbound allocations are freed with Free.
type Allocation struct {
	Memory *DeviceMemory
	Offset uint64
	Size   uint64

	release func(*Allocation)
}

// Free returns the allocation to its allocator. Safe to call once; freeing
// through the owning resource's destruction covers the bound case.
func (a *Allocation) Free() { a.free() }

func (a *Allocation) free() {
	if a.release != nil {
		r := a.release
		a.release = nil
		r(a)
	}
}

func (a *Allocation) String() string {
	return fmt.Sprintf("[%d %d]", a.Offset, a.Size)
}

// MemoryAllocator is the single pluggable device-memory allocation strategy.
// Implementations decide how requests map onto foreign memory allocations.
type MemoryAllocator interface {
	Allocate(size, align uint64) (*Allocation, error)
	Free(a *Allocation)
}

// NaiveAllocator performs one foreign memory allocation per request. Simple
// and correct; unsuitable for workloads that churn many small resources,
// where PoolAllocator suballocates instead.
type NaiveAllocator struct {
	device    *Device
	typeIndex uint32
}

// NewNaiveAllocator allocates from the given memory type. The allocator
// holds a reference on the device.
func NewNaiveAllocator(d *Device, typeIndex uint32) *NaiveAllocator {
	d.Retain()
	return &NaiveAllocator{device: d, typeIndex: typeIndex}
}

func (n *NaiveAllocator) Allocate(size, align uint64) (*Allocation, error) {
	mem, err := AllocateMemory(n.device, size, n.typeIndex)
	if err != nil {
		return nil, err
	}
	return &Allocation{
		Memory: mem,
		Offset: 0,
		Size:   size,
		release: func(a *Allocation) {
			a.Memory.Release()
		},
	}, nil
}

func (n *NaiveAllocator) Free(a *Allocation) { a.free() }

// Close drops the allocator's reference on the device. Outstanding
// allocations keep their own references and remain valid.
func (n *NaiveAllocator) Close() { n.device.Release() }

// PoolAllocator suballocates from one large foreign memory block using a
// first-fit scan over the live allocations, kept sorted by offset.
type PoolAllocator struct {
	mu     sync.Mutex
	memory *DeviceMemory
	size   uint64
	align  uint64
	allocs []*Allocation
}

// ErrPoolExhausted is returned when no gap in the pool fits the request.
var ErrPoolExhausted = errors.New("vks: pool allocator exhausted")

// NewPoolAllocator allocates a backing block of the given size and serves
// requests out of it. align is the minimum alignment applied to every
// suballocation; zero means byte alignment.
func NewPoolAllocator(d *Device, size, align uint64, typeIndex uint32) (*PoolAllocator, error) {
	if align == 0 {
		align = 1
	}
	mem, err := AllocateMemory(d, size, typeIndex)
	if err != nil {
		return nil, err
	}
	return &PoolAllocator{memory: mem, size: size, align: align}, nil
}

func alignUp(v, align uint64) uint64 {
	m := v % align
	if m == 0 {
		return v
	}
	return v - m + align
}

func (p *PoolAllocator) Allocate(size, align uint64) (*Allocation, error) {
	if align < p.align {
		align = p.align
	}

	p.mu.Lock()
	defer p.mu.Unlock()

	place := func(offset uint64, at int) *Allocation {
		// Each suballocation keeps the backing block alive on its own, so a
		// bound resource never outlives the memory it points into even when
		// the pool itself is released early.
		p.memory.Retain()
		na := &Allocation{
			Memory: p.memory,
			Offset: offset,
			Size:   size,
			release: func(a *Allocation) {
				p.remove(a)
				a.Memory.Release()
			},
		}
		p.allocs = append(p.allocs, nil)
		copy(p.allocs[at+1:], p.allocs[at:])
		p.allocs[at] = na
		return na
	}

	if len(p.allocs) == 0 {
		if size > p.size {
			return nil, ErrPoolExhausted
		}
		return place(0, 0), nil
	}

	// Head gap.
	if p.allocs[0].Offset >= size {
		return place(0, 0), nil
	}

	// Gaps between neighboring allocations, first fit.
	for i := 0; i+1 < len(p.allocs); i++ {
		lo := alignUp(p.allocs[i].Offset+p.allocs[i].Size, align)
		hi := p.allocs[i+1].Offset
		if hi > lo && hi-lo >= size {
			return place(lo, i+1), nil
		}
	}

	// Tail gap.
	last := p.allocs[len(p.allocs)-1]
	lo := alignUp(last.Offset+last.Size, align)
	if p.size-lo >= size {
		return place(lo, len(p.allocs)), nil
	}
	return nil, ErrPoolExhausted
}

func (p *PoolAllocator) Free(a *Allocation) { a.free() }

func (p *PoolAllocator) remove(fa *Allocation) {
	p.mu.Lock()
	defer p.mu.Unlock()
	for i, a := range p.allocs {
		if a == fa {
			p.allocs = append(p.allocs[:i], p.allocs[i+1:]...)
			return
		}
	}
}

// Release frees the backing memory block. All suballocations must have been
// freed first; the backing DeviceMemory's reference count enforces the
// device-level ordering either way.
func (p *PoolAllocator) Release() { p.memory.Release() }

func (p *PoolAllocator) String() string {
	p.mu.Lock()
	defer p.mu.Unlock()
	return fmt.Sprintf("PoolAllocator(%s, %d allocs)", units.BytesSize(float64(p.size)), len(p.allocs))
}
