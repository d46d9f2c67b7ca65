package vks

import (
	"github.com/vulkayes/vulkayes-go/foreign"
)

// DescriptorPool wraps a foreign descriptor pool. Set allocation, freeing
// and reset require exclusive access, so the handle lives in a Synced cell.
type DescriptorPool struct {
	shared
	device   *Device
	handle   *Synced[foreign.DescriptorPool]
	flags    foreign.DescriptorPoolCreateFlags
	freeSets bool
}

// NewDescriptorPool creates a pool sized for maxSets sets drawn from the
// given pool sizes. With strict validation a zero maxSets or empty pool-size
// list is rejected before the foreign call.
func NewDescriptorPool(d *Device, maxSets uint32, sizes []foreign.DescriptorPoolSize, flags foreign.DescriptorPoolCreateFlags) (*DescriptorPool, error) {
	if d.strict {
		if maxSets == 0 {
			return nil, ErrZeroCount
		}
		if len(sizes) == 0 {
			return nil, ErrPoolSizesEmpty
		}
	}
	info := foreign.DescriptorPoolCreateInfo{
		Flags:     flags,
		MaxSets:   maxSets,
		PoolSizes: sizes,
	}
	h, res := d.disp.CreateDescriptorPool(d.handle, &info, d.allocCB)
	if err := checkResult("vkCreateDescriptorPool", res,
		foreign.OutOfHostMemory, foreign.OutOfDeviceMemory, foreign.FragmentedPool); err != nil {
		return nil, err
	}
	d.Retain()
	p := &DescriptorPool{
		device:   d,
		handle:   NewSynced(h),
		flags:    flags,
		freeSets: flags&foreign.DescriptorPoolCreateFreeDescriptorSet != 0,
	}
	p.init(p.destroy)
	return p, nil
}

func (p *DescriptorPool) destroy() {
	p.handle.With(func(h *foreign.DescriptorPool) {
		p.device.disp.DestroyDescriptorPool(p.device.handle, *h, p.device.allocCB)
	})
	p.device.Release()
}

func (p *DescriptorPool) Device() *Device { return p.device }

// Flags returns the creation flags recorded at construction.
func (p *DescriptorPool) Flags() foreign.DescriptorPoolCreateFlags { return p.flags }

// AllocateSets allocates one descriptor set per layout. Each returned set
// holds references on the pool and its layout. With strict validation the
// layout list must be non-empty and every layout must come from the pool's
// device.
func (p *DescriptorPool) AllocateSets(layouts ...*DescriptorSetLayout) ([]*DescriptorSet, error) {
	if p.device.strict {
		if len(layouts) == 0 {
			return nil, ErrLayoutsEmpty
		}
		for _, l := range layouts {
			if l.device != p.device {
				return nil, ErrDeviceMismatch
			}
		}
	}

	raw := make([]foreign.DescriptorSetLayout, len(layouts))
	for i, l := range layouts {
		raw[i] = l.handle
	}

	g := p.handle.Lock()
	info := foreign.DescriptorSetAllocateInfo{
		DescriptorPool: g.Handle(),
		SetLayouts:     raw,
	}
	handles, res := p.device.disp.AllocateDescriptorSets(p.device.handle, &info)
	g.Unlock()

	if err := checkResult("vkAllocateDescriptorSets", res,
		foreign.OutOfHostMemory, foreign.OutOfDeviceMemory,
		foreign.FragmentedPool, foreign.OutOfPoolMemory); err != nil {
		return nil, err
	}

	sets := make([]*DescriptorSet, len(handles))
	for i, h := range handles {
		p.Retain()
		layouts[i].Retain()
		s := &DescriptorSet{pool: p, layout: layouts[i], handle: h}
		s.init(s.destroy)
		sets[i] = s
	}
	return sets, nil
}

// Reset recycles every set allocated from the pool. Outstanding DescriptorSet
// wrappers become invalid for recording purposes but still release cleanly.
func (p *DescriptorPool) Reset() error {
	g := p.handle.Lock()
	res := p.device.disp.ResetDescriptorPool(p.device.handle, g.Handle())
	g.Unlock()
	return checkResult("vkResetDescriptorPool", res, foreign.OutOfPoolMemory)
}
