package vks

import (
	"github.com/vulkayes/vulkayes-go/foreign"
)

// Barrier constructors. These build validated descriptor values for
// Recording.PipelineBarrier; the range arithmetic is checked against the
// metadata recorded at resource creation so an out-of-bounds descriptor
// never reaches the foreign API.

// NewMemoryBarrier builds a global memory barrier.
func NewMemoryBarrier(srcAccess, dstAccess foreign.AccessFlags) foreign.MemoryBarrier {
	return foreign.MemoryBarrier{
		SrcAccessMask: srcAccess,
		DstAccessMask: dstAccess,
	}
}

// MemoryBarrier builds a buffer memory barrier over [offset, offset+size).
// A size of foreign.WholeSize covers the rest of the buffer. The range must
// lie within the buffer.
func (b *Buffer) MemoryBarrier(srcAccess, dstAccess foreign.AccessFlags, offset, size uint64) (foreign.BufferMemoryBarrier, error) {
	return b.QueueTransferBarrier(srcAccess, dstAccess,
		foreign.QueueFamilyIgnored, foreign.QueueFamilyIgnored, offset, size)
}

// QueueTransferBarrier is MemoryBarrier with an explicit queue family
// ownership transfer.
func (b *Buffer) QueueTransferBarrier(srcAccess, dstAccess foreign.AccessFlags, srcFamily, dstFamily uint32, offset, size uint64) (foreign.BufferMemoryBarrier, error) {
	if err := b.checkRange(offset, size); err != nil {
		return foreign.BufferMemoryBarrier{}, err
	}
	return foreign.BufferMemoryBarrier{
		SrcAccessMask:       srcAccess,
		DstAccessMask:       dstAccess,
		SrcQueueFamilyIndex: srcFamily,
		DstQueueFamilyIndex: dstFamily,
		Buffer:              b.handle,
		Offset:              offset,
		Size:                size,
	}, nil
}

// checkRange verifies that [offset, offset+size) lies within the buffer.
// foreign.WholeSize is accepted as long as offset is in bounds.
func (b *Buffer) checkRange(offset, size uint64) error {
	if size == foreign.WholeSize {
		if offset >= b.size {
			return ErrRangeOutOfBounds
		}
		return nil
	}
	if size == 0 || offset+size > b.size || offset+size < offset {
		return ErrRangeOutOfBounds
	}
	return nil
}

// MemoryBarrier builds an image memory barrier transitioning rng from
// oldLayout to newLayout. The subresource range must lie within the image's
// allocated mip levels and array layers.
func (img *Image) MemoryBarrier(srcAccess, dstAccess foreign.AccessFlags, oldLayout, newLayout foreign.ImageLayout, rng foreign.ImageSubresourceRange) (foreign.ImageMemoryBarrier, error) {
	return img.QueueTransferBarrier(srcAccess, dstAccess, oldLayout, newLayout,
		foreign.QueueFamilyIgnored, foreign.QueueFamilyIgnored, rng)
}

// QueueTransferBarrier is MemoryBarrier with an explicit queue family
// ownership transfer.
func (img *Image) QueueTransferBarrier(srcAccess, dstAccess foreign.AccessFlags, oldLayout, newLayout foreign.ImageLayout, srcFamily, dstFamily uint32, rng foreign.ImageSubresourceRange) (foreign.ImageMemoryBarrier, error) {
	if err := img.checkSubresourceRange(rng); err != nil {
		return foreign.ImageMemoryBarrier{}, err
	}
	return foreign.ImageMemoryBarrier{
		SrcAccessMask:       srcAccess,
		DstAccessMask:       dstAccess,
		OldLayout:           oldLayout,
		NewLayout:           newLayout,
		SrcQueueFamilyIndex: srcFamily,
		DstQueueFamilyIndex: dstFamily,
		Image:               img.handle,
		SubresourceRange:    rng,
	}, nil
}

// checkSubresourceRange verifies that rng addresses only mip levels and
// array layers the image was created with.
func (img *Image) checkSubresourceRange(rng foreign.ImageSubresourceRange) error {
	if rng.LevelCount == 0 || rng.LayerCount == 0 {
		return ErrRangeOutOfBounds
	}
	if rng.BaseMipLevel+rng.LevelCount > img.mipLevels {
		return ErrRangeOutOfBounds
	}
	if rng.BaseArrayLayer+rng.LayerCount > img.arrayLayers {
		return ErrRangeOutOfBounds
	}
	return nil
}

// checkSubresourceLayers is the single-mip variant used by copy regions.
func (img *Image) checkSubresourceLayers(l foreign.ImageSubresourceLayers) error {
	if l.LayerCount == 0 {
		return ErrRangeOutOfBounds
	}
	if l.MipLevel >= img.mipLevels {
		return ErrRangeOutOfBounds
	}
	if l.BaseArrayLayer+l.LayerCount > img.arrayLayers {
		return ErrRangeOutOfBounds
	}
	return nil
}
