package vks

import (
	"errors"
	"testing"

	"github.com/vulkayes/vulkayes-go/foreign"
)

func TestNewBufferStrict(t *testing.T) {
	d, disp := newTestDevice(t)

	if _, err := NewBuffer(d, 64, 0, foreign.SharingModeExclusive, nil); !errors.Is(err, ErrUsageEmpty) {
		t.Errorf("empty usage err = %v", err)
	}
	if _, err := NewBuffer(d, 0, foreign.BufferUsageStorageBuffer, foreign.SharingModeExclusive, nil); !errors.Is(err, ErrZeroSize) {
		t.Errorf("zero size err = %v", err)
	}
	if disp.called("CreateBuffer") != 0 {
		t.Error("rejected creation reached the foreign interface")
	}

	b, err := NewBuffer(d, 64, foreign.BufferUsageStorageBuffer, foreign.SharingModeExclusive, nil)
	if err != nil {
		t.Fatalf("NewBuffer: %v", err)
	}
	if b.Size() != 64 || b.Usage() != foreign.BufferUsageStorageBuffer {
		t.Error("recorded metadata mismatch")
	}
}

func TestBufferFromCreateInfoMetadata(t *testing.T) {
	d, _ := newTestDevice(t)
	info := foreign.BufferCreateInfo{
		Size:  128,
		Usage: foreign.BufferUsageTransferDst | foreign.BufferUsageVertexBuffer,
	}
	b, err := BufferFromCreateInfo(d, info)
	if err != nil {
		t.Fatalf("BufferFromCreateInfo: %v", err)
	}
	if b.Size() != info.Size || b.Usage() != info.Usage {
		t.Error("recorded metadata mismatch")
	}
}

func TestBufferBindMemory(t *testing.T) {
	d, _ := newTestDevice(t)
	alloc := NewNaiveAllocator(d, 0)
	b, _ := NewBuffer(d, 64, foreign.BufferUsageStorageBuffer, foreign.SharingModeExclusive, nil)

	a, err := alloc.Allocate(64, 1)
	if err != nil {
		t.Fatalf("Allocate: %v", err)
	}
	if err := b.BindMemory(a); err != nil {
		t.Fatalf("BindMemory: %v", err)
	}
	if err := b.BindMemory(a); !errors.Is(err, ErrMemoryAlreadyBound) {
		t.Errorf("double bind err = %v", err)
	}
}

func TestBufferBarrierRange(t *testing.T) {
	d, disp := newTestDevice(t)
	b, _ := NewBuffer(d, 100, foreign.BufferUsageStorageBuffer, foreign.SharingModeExclusive, nil)

	if _, err := b.MemoryBarrier(foreign.AccessShaderWrite, foreign.AccessShaderRead, 50, 51); !errors.Is(err, ErrRangeOutOfBounds) {
		t.Errorf("overflow err = %v", err)
	}
	if _, err := b.MemoryBarrier(foreign.AccessShaderWrite, foreign.AccessShaderRead, 100, foreign.WholeSize); !errors.Is(err, ErrRangeOutOfBounds) {
		t.Errorf("offset at end err = %v", err)
	}

	barrier, err := b.MemoryBarrier(foreign.AccessShaderWrite, foreign.AccessShaderRead, 0, foreign.WholeSize)
	if err != nil {
		t.Fatalf("MemoryBarrier: %v", err)
	}
	if barrier.Buffer != b.Handle() {
		t.Error("barrier references wrong buffer")
	}
	if barrier.SrcQueueFamilyIndex != foreign.QueueFamilyIgnored {
		t.Error("unexpected queue family transfer")
	}
	if disp.called("CmdPipelineBarrier") != 0 {
		t.Error("descriptor construction touched the foreign interface")
	}
}

func TestImageBarrierRange(t *testing.T) {
	d, _ := newTestDevice(t)
	img, _ := NewImage(d, ImageOptions{
		Type:        foreign.ImageType2D,
		Format:      foreign.FormatR8G8B8A8Unorm,
		Extent:      foreign.Extent3D{Width: 64, Height: 64, Depth: 1},
		MipLevels:   4,
		ArrayLayers: 2,
		Usage:       foreign.ImageUsageSampled,
	})

	rng := foreign.ImageSubresourceRange{
		AspectMask: foreign.ImageAspectColor,
		LevelCount: 4,
		LayerCount: 2,
	}
	if _, err := img.MemoryBarrier(0, foreign.AccessShaderRead,
		foreign.ImageLayoutUndefined, foreign.ImageLayoutShaderReadOnlyOptimal, rng); err != nil {
		t.Fatalf("full range: %v", err)
	}

	rng.BaseMipLevel = 2
	rng.LevelCount = 3
	if _, err := img.MemoryBarrier(0, foreign.AccessShaderRead,
		foreign.ImageLayoutUndefined, foreign.ImageLayoutShaderReadOnlyOptimal, rng); !errors.Is(err, ErrRangeOutOfBounds) {
		t.Errorf("mip overflow err = %v", err)
	}

	rng = foreign.ImageSubresourceRange{
		AspectMask:     foreign.ImageAspectColor,
		LevelCount:     1,
		BaseArrayLayer: 2,
		LayerCount:     1,
	}
	if _, err := img.MemoryBarrier(0, foreign.AccessShaderRead,
		foreign.ImageLayoutUndefined, foreign.ImageLayoutShaderReadOnlyOptimal, rng); !errors.Is(err, ErrRangeOutOfBounds) {
		t.Errorf("layer overflow err = %v", err)
	}
}

func TestBufferCopyRange(t *testing.T) {
	d, _ := newTestDevice(t)
	src, _ := NewBuffer(d, 100, foreign.BufferUsageTransferSrc, foreign.SharingModeExclusive, nil)
	dst, _ := NewBuffer(d, 50, foreign.BufferUsageTransferDst, foreign.SharingModeExclusive, nil)

	if _, err := NewBufferCopy(src, dst, 0, 0, 60); !errors.Is(err, ErrRangeOutOfBounds) {
		t.Errorf("dst overflow err = %v", err)
	}
	if _, err := NewBufferCopy(src, dst, 60, 0, 50); !errors.Is(err, ErrRangeOutOfBounds) {
		t.Errorf("src overflow err = %v", err)
	}
	if _, err := NewBufferCopy(src, dst, ^uint64(0), 0, 1); !errors.Is(err, ErrRangeOutOfBounds) {
		t.Errorf("src offset wraparound err = %v", err)
	}
	if _, err := NewBufferCopy(src, dst, 0, ^uint64(0), 1); !errors.Is(err, ErrRangeOutOfBounds) {
		t.Errorf("dst offset wraparound err = %v", err)
	}
	region, err := NewBufferCopy(src, dst, 50, 0, 50)
	if err != nil {
		t.Fatalf("NewBufferCopy: %v", err)
	}
	if region.SrcOffset != 50 || region.Size != 50 {
		t.Error("region mismatch")
	}
}

func TestBufferImageCopyRange(t *testing.T) {
	d, _ := newTestDevice(t)
	buf, _ := NewBuffer(d, 1<<16, foreign.BufferUsageTransferSrc, foreign.SharingModeExclusive, nil)
	img, _ := NewImage(d, ImageOptions{
		Type:      foreign.ImageType2D,
		Format:    foreign.FormatR8G8B8A8Unorm,
		Extent:    foreign.Extent3D{Width: 64, Height: 32, Depth: 1},
		MipLevels: 2,
		Usage:     foreign.ImageUsageTransferDst,
	})

	layers := foreign.ImageSubresourceLayers{
		AspectMask: foreign.ImageAspectColor,
		LayerCount: 1,
	}

	region, err := NewBufferImageCopy(buf, img, 0, layers, foreign.Offset3D{}, foreign.Extent3D{})
	if err != nil {
		t.Fatalf("NewBufferImageCopy: %v", err)
	}
	if region.ImageExtent.Width != 64 || region.ImageExtent.Height != 32 {
		t.Error("zero extent did not expand to the full image")
	}

	layers.MipLevel = 1
	region, err = NewBufferImageCopy(buf, img, 0, layers, foreign.Offset3D{}, foreign.Extent3D{})
	if err != nil {
		t.Fatalf("mip 1: %v", err)
	}
	if region.ImageExtent.Width != 32 || region.ImageExtent.Height != 16 {
		t.Error("mip extent not halved")
	}

	layers.MipLevel = 2
	if _, err := NewBufferImageCopy(buf, img, 0, layers, foreign.Offset3D{}, foreign.Extent3D{}); !errors.Is(err, ErrRangeOutOfBounds) {
		t.Errorf("missing mip err = %v", err)
	}

	layers.MipLevel = 0
	if _, err := NewBufferImageCopy(buf, img, 0, layers,
		foreign.Offset3D{X: 32}, foreign.Extent3D{Width: 33, Height: 32, Depth: 1}); !errors.Is(err, ErrRangeOutOfBounds) {
		t.Errorf("texel overflow err = %v", err)
	}

	// An offset past the mip extent must be rejected before the zero-extent
	// defaulting, which would otherwise underflow.
	if _, err := NewBufferImageCopy(buf, img, 0, layers,
		foreign.Offset3D{X: 70}, foreign.Extent3D{}); !errors.Is(err, ErrRangeOutOfBounds) {
		t.Errorf("offset past extent err = %v", err)
	}
	if _, err := NewBufferImageCopy(buf, img, 0, layers,
		foreign.Offset3D{X: 1}, foreign.Extent3D{Width: ^uint32(0), Height: 1, Depth: 1}); !errors.Is(err, ErrRangeOutOfBounds) {
		t.Errorf("extent wraparound err = %v", err)
	}
}

func TestImageViewRange(t *testing.T) {
	d, _ := newTestDevice(t)
	img, _ := NewImage(d, ImageOptions{
		Type:      foreign.ImageType2D,
		Format:    foreign.FormatR8G8B8A8Unorm,
		Extent:    foreign.Extent3D{Width: 16, Height: 16, Depth: 1},
		MipLevels: 2,
		Usage:     foreign.ImageUsageSampled,
	})

	_, err := NewImageView(img, foreign.ImageViewType2D, img.Format(), foreign.ImageSubresourceRange{
		AspectMask: foreign.ImageAspectColor,
		LevelCount: 3,
		LayerCount: 1,
	})
	if !errors.Is(err, ErrRangeOutOfBounds) {
		t.Errorf("err = %v", err)
	}
}
