package vks

import (
	"github.com/vulkayes/vulkayes-go/foreign"
)

// Copy-region constructors. Like the barrier constructors these validate the
// region against the sizes recorded at resource creation before handing a
// descriptor to the recording calls.

// NewBufferCopy builds a buffer-to-buffer copy region. The source and
// destination ranges must lie within their respective buffers.
func NewBufferCopy(src, dst *Buffer, srcOffset, dstOffset, size uint64) (foreign.BufferCopy, error) {
	if size == 0 ||
		srcOffset+size > src.size || srcOffset+size < srcOffset ||
		dstOffset+size > dst.size || dstOffset+size < dstOffset {
		return foreign.BufferCopy{}, ErrRangeOutOfBounds
	}
	return foreign.BufferCopy{
		SrcOffset: srcOffset,
		DstOffset: dstOffset,
		Size:      size,
	}, nil
}

// NewBufferImageCopy builds a region for buffer/image copies in either
// direction. The subresource layers must exist on the image and the texel
// region must fit the image extent at the selected mip level. A zero extent
// component selects the full remaining extent in that dimension.
func NewBufferImageCopy(buf *Buffer, img *Image, bufferOffset uint64, layers foreign.ImageSubresourceLayers, offset foreign.Offset3D, extent foreign.Extent3D) (foreign.BufferImageCopy, error) {
	if bufferOffset >= buf.size {
		return foreign.BufferImageCopy{}, ErrRangeOutOfBounds
	}
	if err := img.checkSubresourceLayers(layers); err != nil {
		return foreign.BufferImageCopy{}, err
	}
	mip := mipExtent(img.extent, layers.MipLevel)
	if offset.X < 0 || offset.Y < 0 || offset.Z < 0 ||
		uint32(offset.X) >= mip.Width ||
		uint32(offset.Y) >= mip.Height ||
		uint32(offset.Z) >= mip.Depth {
		return foreign.BufferImageCopy{}, ErrRangeOutOfBounds
	}
	if extent.Width == 0 {
		extent.Width = mip.Width - uint32(offset.X)
	}
	if extent.Height == 0 {
		extent.Height = mip.Height - uint32(offset.Y)
	}
	if extent.Depth == 0 {
		extent.Depth = mip.Depth - uint32(offset.Z)
	}
	if extent.Width > mip.Width-uint32(offset.X) ||
		extent.Height > mip.Height-uint32(offset.Y) ||
		extent.Depth > mip.Depth-uint32(offset.Z) {
		return foreign.BufferImageCopy{}, ErrRangeOutOfBounds
	}
	return foreign.BufferImageCopy{
		BufferOffset:     bufferOffset,
		ImageSubresource: layers,
		ImageOffset:      offset,
		ImageExtent:      extent,
	}, nil
}

// mipExtent halves each dimension per mip level, clamping at one.
func mipExtent(e foreign.Extent3D, level uint32) foreign.Extent3D {
	for i := uint32(0); i < level; i++ {
		if e.Width > 1 {
			e.Width >>= 1
		}
		if e.Height > 1 {
			e.Height >>= 1
		}
		if e.Depth > 1 {
			e.Depth >>= 1
		}
	}
	return e
}
