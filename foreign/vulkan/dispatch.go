// Package vulkan implements foreign.Dispatch on top of the Vulkan loader.
//
// Handles cross the boundary as integers; this package converts them to and
// from the loader's typed handles. Instance and physical device selection
// stay with the application, which wraps the resulting VkDevice via
// Wrap before handing it to vks.
package vulkan

import (
	"unsafe"

	vk "github.com/vulkan-go/vulkan"

	"github.com/vulkayes/vulkayes-go/foreign"
)

// Dispatch is the loader-backed implementation of foreign.Dispatch. The
// zero value is ready to use once vk.Init has succeeded.
type Dispatch struct{}

// New returns a loader-backed dispatch table.
func New() *Dispatch { return &Dispatch{} }

// Wrap converts a raw VkDevice obtained from vk.CreateDevice into a
// boundary handle.
func Wrap(device vk.Device) foreign.Device {
	return foreign.Device(uintptr(unsafe.Pointer(device)))
}

func dev(h foreign.Device) vk.Device {
	return vk.Device(unsafe.Pointer(uintptr(h)))
}

func queue(h foreign.Queue) vk.Queue {
	return vk.Queue(unsafe.Pointer(uintptr(h)))
}

func cmdbuf(h foreign.CommandBuffer) vk.CommandBuffer {
	return vk.CommandBuffer(unsafe.Pointer(uintptr(h)))
}

func alloc(cb foreign.AllocationCallbacks) *vk.AllocationCallbacks {
	return (*vk.AllocationCallbacks)(unsafe.Pointer(uintptr(cb)))
}

func boundary(p unsafe.Pointer) uint64 { return uint64(uintptr(p)) }

func (Dispatch) DestroyDevice(d foreign.Device, cb foreign.AllocationCallbacks) {
	vk.DestroyDevice(dev(d), alloc(cb))
}

func (Dispatch) DeviceWaitIdle(d foreign.Device) foreign.Result {
	return foreign.Result(vk.DeviceWaitIdle(dev(d)))
}

func (Dispatch) GetDeviceQueue(d foreign.Device, family, index uint32) foreign.Queue {
	var q vk.Queue
	vk.GetDeviceQueue(dev(d), family, index, &q)
	return foreign.Queue(boundary(unsafe.Pointer(q)))
}

func (Dispatch) QueueSubmit(q foreign.Queue, infos []foreign.SubmitInfo, fence foreign.Fence) foreign.Result {
	submits := make([]vk.SubmitInfo, len(infos))
	for i, in := range infos {
		waits := make([]vk.Semaphore, len(in.WaitSemaphores))
		for j, s := range in.WaitSemaphores {
			waits[j] = vk.Semaphore(unsafe.Pointer(uintptr(s)))
		}
		stages := make([]vk.PipelineStageFlags, len(in.WaitStages))
		for j, s := range in.WaitStages {
			stages[j] = vk.PipelineStageFlags(s)
		}
		buffers := make([]vk.CommandBuffer, len(in.CommandBuffers))
		for j, b := range in.CommandBuffers {
			buffers[j] = cmdbuf(b)
		}
		signals := make([]vk.Semaphore, len(in.SignalSemaphores))
		for j, s := range in.SignalSemaphores {
			signals[j] = vk.Semaphore(unsafe.Pointer(uintptr(s)))
		}
		submits[i] = vk.SubmitInfo{
			SType:                vk.StructureTypeSubmitInfo,
			WaitSemaphoreCount:   uint32(len(waits)),
			PWaitSemaphores:      waits,
			PWaitDstStageMask:    stages,
			CommandBufferCount:   uint32(len(buffers)),
			PCommandBuffers:      buffers,
			SignalSemaphoreCount: uint32(len(signals)),
			PSignalSemaphores:    signals,
		}
	}
	return foreign.Result(vk.QueueSubmit(queue(q),
		uint32(len(submits)), submits, vk.Fence(unsafe.Pointer(uintptr(fence)))))
}

func (Dispatch) QueueWaitIdle(q foreign.Queue) foreign.Result {
	return foreign.Result(vk.QueueWaitIdle(queue(q)))
}

func (Dispatch) CreateCommandPool(d foreign.Device, info *foreign.CommandPoolCreateInfo, cb foreign.AllocationCallbacks) (foreign.CommandPool, foreign.Result) {
	ci := vk.CommandPoolCreateInfo{
		SType:            vk.StructureTypeCommandPoolCreateInfo,
		Flags:            vk.CommandPoolCreateFlags(info.Flags),
		QueueFamilyIndex: info.QueueFamilyIndex,
	}
	var pool vk.CommandPool
	res := vk.CreateCommandPool(dev(d), &ci, alloc(cb), &pool)
	return foreign.CommandPool(boundary(unsafe.Pointer(pool))), foreign.Result(res)
}

func (Dispatch) DestroyCommandPool(d foreign.Device, pool foreign.CommandPool, cb foreign.AllocationCallbacks) {
	vk.DestroyCommandPool(dev(d), vk.CommandPool(unsafe.Pointer(uintptr(pool))), alloc(cb))
}

func (Dispatch) ResetCommandPool(d foreign.Device, pool foreign.CommandPool, flags foreign.CommandPoolResetFlags) foreign.Result {
	return foreign.Result(vk.ResetCommandPool(dev(d),
		vk.CommandPool(unsafe.Pointer(uintptr(pool))), vk.CommandPoolResetFlags(flags)))
}

func (Dispatch) AllocateCommandBuffers(d foreign.Device, info *foreign.CommandBufferAllocateInfo) ([]foreign.CommandBuffer, foreign.Result) {
	ai := vk.CommandBufferAllocateInfo{
		SType:              vk.StructureTypeCommandBufferAllocateInfo,
		CommandPool:        vk.CommandPool(unsafe.Pointer(uintptr(info.CommandPool))),
		Level:              vk.CommandBufferLevel(info.Level),
		CommandBufferCount: info.Count,
	}
	raw := make([]vk.CommandBuffer, info.Count)
	res := vk.AllocateCommandBuffers(dev(d), &ai, raw)
	if vk.Result(res) != vk.Success {
		return nil, foreign.Result(res)
	}
	out := make([]foreign.CommandBuffer, len(raw))
	for i, b := range raw {
		out[i] = foreign.CommandBuffer(boundary(unsafe.Pointer(b)))
	}
	return out, foreign.Result(res)
}

func (Dispatch) FreeCommandBuffers(d foreign.Device, pool foreign.CommandPool, buffers []foreign.CommandBuffer) {
	raw := make([]vk.CommandBuffer, len(buffers))
	for i, b := range buffers {
		raw[i] = cmdbuf(b)
	}
	vk.FreeCommandBuffers(dev(d), vk.CommandPool(unsafe.Pointer(uintptr(pool))),
		uint32(len(raw)), raw)
}

func (Dispatch) BeginCommandBuffer(b foreign.CommandBuffer, info *foreign.CommandBufferBeginInfo) foreign.Result {
	bi := vk.CommandBufferBeginInfo{
		SType: vk.StructureTypeCommandBufferBeginInfo,
		Flags: vk.CommandBufferUsageFlags(info.Flags),
	}
	return foreign.Result(vk.BeginCommandBuffer(cmdbuf(b), &bi))
}

func (Dispatch) EndCommandBuffer(b foreign.CommandBuffer) foreign.Result {
	return foreign.Result(vk.EndCommandBuffer(cmdbuf(b)))
}

func (Dispatch) ResetCommandBuffer(b foreign.CommandBuffer, flags foreign.CommandBufferResetFlags) foreign.Result {
	return foreign.Result(vk.ResetCommandBuffer(cmdbuf(b), vk.CommandBufferResetFlags(flags)))
}

func (Dispatch) CmdBindPipeline(b foreign.CommandBuffer, bindPoint foreign.PipelineBindPoint, pipeline foreign.Pipeline) {
	vk.CmdBindPipeline(cmdbuf(b), vk.PipelineBindPoint(bindPoint),
		vk.Pipeline(unsafe.Pointer(uintptr(pipeline))))
}

func (Dispatch) CmdBindDescriptorSets(b foreign.CommandBuffer, bindPoint foreign.PipelineBindPoint, layout foreign.PipelineLayout, firstSet uint32, sets []foreign.DescriptorSet) {
	raw := make([]vk.DescriptorSet, len(sets))
	for i, s := range sets {
		raw[i] = vk.DescriptorSet(unsafe.Pointer(uintptr(s)))
	}
	vk.CmdBindDescriptorSets(cmdbuf(b), vk.PipelineBindPoint(bindPoint),
		vk.PipelineLayout(unsafe.Pointer(uintptr(layout))),
		firstSet, uint32(len(raw)), raw, 0, nil)
}

func (Dispatch) CmdBindVertexBuffers(b foreign.CommandBuffer, firstBinding uint32, buffers []foreign.Buffer, offsets []uint64) {
	raw := make([]vk.Buffer, len(buffers))
	for i, buf := range buffers {
		raw[i] = vk.Buffer(unsafe.Pointer(uintptr(buf)))
	}
	offs := make([]vk.DeviceSize, len(offsets))
	for i, o := range offsets {
		offs[i] = vk.DeviceSize(o)
	}
	vk.CmdBindVertexBuffers(cmdbuf(b), firstBinding, uint32(len(raw)), raw, offs)
}

func (Dispatch) CmdBindIndexBuffer(b foreign.CommandBuffer, indexBuffer foreign.Buffer, offset uint64, indexType foreign.IndexType) {
	vk.CmdBindIndexBuffer(cmdbuf(b), vk.Buffer(unsafe.Pointer(uintptr(indexBuffer))),
		vk.DeviceSize(offset), vk.IndexType(indexType))
}

func (Dispatch) CmdPushConstants(b foreign.CommandBuffer, layout foreign.PipelineLayout, stages foreign.ShaderStageFlags, offset uint32, data []byte) {
	if len(data) == 0 {
		return
	}
	vk.CmdPushConstants(cmdbuf(b), vk.PipelineLayout(unsafe.Pointer(uintptr(layout))),
		vk.ShaderStageFlags(stages), offset, uint32(len(data)), unsafe.Pointer(&data[0]))
}

func (Dispatch) CmdDispatch(b foreign.CommandBuffer, x, y, z uint32) {
	vk.CmdDispatch(cmdbuf(b), x, y, z)
}

func (Dispatch) CmdDispatchBase(b foreign.CommandBuffer, baseX, baseY, baseZ, x, y, z uint32) {
	vk.CmdDispatchBase(cmdbuf(b), baseX, baseY, baseZ, x, y, z)
}

func (Dispatch) CmdCopyBuffer(b foreign.CommandBuffer, src, dst foreign.Buffer, regions []foreign.BufferCopy) {
	raw := make([]vk.BufferCopy, len(regions))
	for i, r := range regions {
		raw[i] = vk.BufferCopy{
			SrcOffset: vk.DeviceSize(r.SrcOffset),
			DstOffset: vk.DeviceSize(r.DstOffset),
			Size:      vk.DeviceSize(r.Size),
		}
	}
	vk.CmdCopyBuffer(cmdbuf(b), vk.Buffer(unsafe.Pointer(uintptr(src))),
		vk.Buffer(unsafe.Pointer(uintptr(dst))), uint32(len(raw)), raw)
}

func bufferImageCopies(regions []foreign.BufferImageCopy) []vk.BufferImageCopy {
	raw := make([]vk.BufferImageCopy, len(regions))
	for i, r := range regions {
		raw[i] = vk.BufferImageCopy{
			BufferOffset:      vk.DeviceSize(r.BufferOffset),
			BufferRowLength:   r.BufferRowLength,
			BufferImageHeight: r.BufferImageHeight,
			ImageSubresource: vk.ImageSubresourceLayers{
				AspectMask:     vk.ImageAspectFlags(r.ImageSubresource.AspectMask),
				MipLevel:       r.ImageSubresource.MipLevel,
				BaseArrayLayer: r.ImageSubresource.BaseArrayLayer,
				LayerCount:     r.ImageSubresource.LayerCount,
			},
			ImageOffset: vk.Offset3D{X: r.ImageOffset.X, Y: r.ImageOffset.Y, Z: r.ImageOffset.Z},
			ImageExtent: vk.Extent3D{Width: r.ImageExtent.Width, Height: r.ImageExtent.Height, Depth: r.ImageExtent.Depth},
		}
	}
	return raw
}

func (Dispatch) CmdCopyBufferToImage(b foreign.CommandBuffer, src foreign.Buffer, dst foreign.Image, dstLayout foreign.ImageLayout, regions []foreign.BufferImageCopy) {
	raw := bufferImageCopies(regions)
	vk.CmdCopyBufferToImage(cmdbuf(b), vk.Buffer(unsafe.Pointer(uintptr(src))),
		vk.Image(unsafe.Pointer(uintptr(dst))), vk.ImageLayout(dstLayout),
		uint32(len(raw)), raw)
}

func (Dispatch) CmdFillBuffer(b foreign.CommandBuffer, dst foreign.Buffer, offset, size uint64, value uint32) {
	vk.CmdFillBuffer(cmdbuf(b), vk.Buffer(unsafe.Pointer(uintptr(dst))),
		vk.DeviceSize(offset), vk.DeviceSize(size), value)
}

func (Dispatch) CmdUpdateBuffer(b foreign.CommandBuffer, dst foreign.Buffer, offset uint64, data []byte) {
	if len(data) == 0 {
		return
	}
	vk.CmdUpdateBuffer(cmdbuf(b), vk.Buffer(unsafe.Pointer(uintptr(dst))),
		vk.DeviceSize(offset), vk.DeviceSize(len(data)), (*uint32)(unsafe.Pointer(&data[0])))
}

func (Dispatch) CmdCopyImageToBuffer(b foreign.CommandBuffer, src foreign.Image, srcLayout foreign.ImageLayout, dst foreign.Buffer, regions []foreign.BufferImageCopy) {
	raw := bufferImageCopies(regions)
	vk.CmdCopyImageToBuffer(cmdbuf(b), vk.Image(unsafe.Pointer(uintptr(src))),
		vk.ImageLayout(srcLayout), vk.Buffer(unsafe.Pointer(uintptr(dst))),
		uint32(len(raw)), raw)
}

func (Dispatch) CmdPipelineBarrier(b foreign.CommandBuffer, srcStages, dstStages foreign.PipelineStageFlags, flags foreign.DependencyFlags, memory []foreign.MemoryBarrier, buffers []foreign.BufferMemoryBarrier, images []foreign.ImageMemoryBarrier) {
	mem := make([]vk.MemoryBarrier, len(memory))
	for i, m := range memory {
		mem[i] = vk.MemoryBarrier{
			SType:         vk.StructureTypeMemoryBarrier,
			SrcAccessMask: vk.AccessFlags(m.SrcAccessMask),
			DstAccessMask: vk.AccessFlags(m.DstAccessMask),
		}
	}
	buf := make([]vk.BufferMemoryBarrier, len(buffers))
	for i, m := range buffers {
		buf[i] = vk.BufferMemoryBarrier{
			SType:               vk.StructureTypeBufferMemoryBarrier,
			SrcAccessMask:       vk.AccessFlags(m.SrcAccessMask),
			DstAccessMask:       vk.AccessFlags(m.DstAccessMask),
			SrcQueueFamilyIndex: m.SrcQueueFamilyIndex,
			DstQueueFamilyIndex: m.DstQueueFamilyIndex,
			Buffer:              vk.Buffer(unsafe.Pointer(uintptr(m.Buffer))),
			Offset:              vk.DeviceSize(m.Offset),
			Size:                vk.DeviceSize(m.Size),
		}
	}
	img := make([]vk.ImageMemoryBarrier, len(images))
	for i, m := range images {
		img[i] = vk.ImageMemoryBarrier{
			SType:               vk.StructureTypeImageMemoryBarrier,
			SrcAccessMask:       vk.AccessFlags(m.SrcAccessMask),
			DstAccessMask:       vk.AccessFlags(m.DstAccessMask),
			OldLayout:           vk.ImageLayout(m.OldLayout),
			NewLayout:           vk.ImageLayout(m.NewLayout),
			SrcQueueFamilyIndex: m.SrcQueueFamilyIndex,
			DstQueueFamilyIndex: m.DstQueueFamilyIndex,
			Image:               vk.Image(unsafe.Pointer(uintptr(m.Image))),
			SubresourceRange: vk.ImageSubresourceRange{
				AspectMask:     vk.ImageAspectFlags(m.SubresourceRange.AspectMask),
				BaseMipLevel:   m.SubresourceRange.BaseMipLevel,
				LevelCount:     m.SubresourceRange.LevelCount,
				BaseArrayLayer: m.SubresourceRange.BaseArrayLayer,
				LayerCount:     m.SubresourceRange.LayerCount,
			},
		}
	}
	vk.CmdPipelineBarrier(cmdbuf(b),
		vk.PipelineStageFlags(srcStages), vk.PipelineStageFlags(dstStages),
		vk.DependencyFlags(flags),
		uint32(len(mem)), mem, uint32(len(buf)), buf, uint32(len(img)), img)
}

func (Dispatch) CmdBeginRenderPass(b foreign.CommandBuffer, info *foreign.RenderPassBeginInfo, contents foreign.SubpassContents) {
	clears := make([]vk.ClearValue, len(info.ClearValues))
	for i, c := range info.ClearValues {
		if c.DepthStencil {
			clears[i].SetDepthStencil(c.Depth, c.Stencil)
		} else {
			clears[i].SetColor(c.Color[:])
		}
	}
	bi := vk.RenderPassBeginInfo{
		SType:       vk.StructureTypeRenderPassBeginInfo,
		RenderPass:  vk.RenderPass(unsafe.Pointer(uintptr(info.RenderPass))),
		Framebuffer: vk.Framebuffer(unsafe.Pointer(uintptr(info.Framebuffer))),
		RenderArea: vk.Rect2D{
			Offset: vk.Offset2D{X: info.RenderArea.Offset.X, Y: info.RenderArea.Offset.Y},
			Extent: vk.Extent2D{Width: info.RenderArea.Extent.Width, Height: info.RenderArea.Extent.Height},
		},
		ClearValueCount: uint32(len(clears)),
		PClearValues:    clears,
	}
	vk.CmdBeginRenderPass(cmdbuf(b), &bi, vk.SubpassContents(contents))
}

func (Dispatch) CmdNextSubpass(b foreign.CommandBuffer, contents foreign.SubpassContents) {
	vk.CmdNextSubpass(cmdbuf(b), vk.SubpassContents(contents))
}

func (Dispatch) CmdEndRenderPass(b foreign.CommandBuffer) {
	vk.CmdEndRenderPass(cmdbuf(b))
}

func (Dispatch) CmdDraw(b foreign.CommandBuffer, vertexCount, instanceCount, firstVertex, firstInstance uint32) {
	vk.CmdDraw(cmdbuf(b), vertexCount, instanceCount, firstVertex, firstInstance)
}

func (Dispatch) CmdDrawIndexed(b foreign.CommandBuffer, indexCount, instanceCount, firstIndex uint32, vertexOffset int32, firstInstance uint32) {
	vk.CmdDrawIndexed(cmdbuf(b), indexCount, instanceCount, firstIndex, vertexOffset, firstInstance)
}

func (Dispatch) CreateBuffer(d foreign.Device, info *foreign.BufferCreateInfo, cb foreign.AllocationCallbacks) (foreign.Buffer, foreign.Result) {
	ci := vk.BufferCreateInfo{
		SType:                 vk.StructureTypeBufferCreateInfo,
		Size:                  vk.DeviceSize(info.Size),
		Usage:                 vk.BufferUsageFlags(info.Usage),
		SharingMode:           vk.SharingMode(info.SharingMode),
		QueueFamilyIndexCount: uint32(len(info.QueueFamilyIndices)),
		PQueueFamilyIndices:   info.QueueFamilyIndices,
	}
	var buffer vk.Buffer
	res := vk.CreateBuffer(dev(d), &ci, alloc(cb), &buffer)
	return foreign.Buffer(boundary(unsafe.Pointer(buffer))), foreign.Result(res)
}

func (Dispatch) DestroyBuffer(d foreign.Device, buffer foreign.Buffer, cb foreign.AllocationCallbacks) {
	vk.DestroyBuffer(dev(d), vk.Buffer(unsafe.Pointer(uintptr(buffer))), alloc(cb))
}

func (Dispatch) CreateImage(d foreign.Device, info *foreign.ImageCreateInfo, cb foreign.AllocationCallbacks) (foreign.Image, foreign.Result) {
	ci := vk.ImageCreateInfo{
		SType:                 vk.StructureTypeImageCreateInfo,
		ImageType:             vk.ImageType(info.Type),
		Format:                vk.Format(info.Format),
		Extent:                vk.Extent3D{Width: info.Extent.Width, Height: info.Extent.Height, Depth: info.Extent.Depth},
		MipLevels:             info.MipLevels,
		ArrayLayers:           info.ArrayLayers,
		Samples:               vk.SampleCountFlagBits(info.Samples),
		Tiling:                vk.ImageTiling(info.Tiling),
		Usage:                 vk.ImageUsageFlags(info.Usage),
		SharingMode:           vk.SharingMode(info.SharingMode),
		QueueFamilyIndexCount: uint32(len(info.QueueFamilyIndices)),
		PQueueFamilyIndices:   info.QueueFamilyIndices,
		InitialLayout:         vk.ImageLayout(info.InitialLayout),
	}
	var image vk.Image
	res := vk.CreateImage(dev(d), &ci, alloc(cb), &image)
	return foreign.Image(boundary(unsafe.Pointer(image))), foreign.Result(res)
}

func (Dispatch) DestroyImage(d foreign.Device, image foreign.Image, cb foreign.AllocationCallbacks) {
	vk.DestroyImage(dev(d), vk.Image(unsafe.Pointer(uintptr(image))), alloc(cb))
}

func (Dispatch) CreateImageView(d foreign.Device, info *foreign.ImageViewCreateInfo, cb foreign.AllocationCallbacks) (foreign.ImageView, foreign.Result) {
	ci := vk.ImageViewCreateInfo{
		SType:    vk.StructureTypeImageViewCreateInfo,
		Image:    vk.Image(unsafe.Pointer(uintptr(info.Image))),
		ViewType: vk.ImageViewType(info.ViewType),
		Format:   vk.Format(info.Format),
		SubresourceRange: vk.ImageSubresourceRange{
			AspectMask:     vk.ImageAspectFlags(info.SubresourceRange.AspectMask),
			BaseMipLevel:   info.SubresourceRange.BaseMipLevel,
			LevelCount:     info.SubresourceRange.LevelCount,
			BaseArrayLayer: info.SubresourceRange.BaseArrayLayer,
			LayerCount:     info.SubresourceRange.LayerCount,
		},
	}
	var view vk.ImageView
	res := vk.CreateImageView(dev(d), &ci, alloc(cb), &view)
	return foreign.ImageView(boundary(unsafe.Pointer(view))), foreign.Result(res)
}

func (Dispatch) DestroyImageView(d foreign.Device, view foreign.ImageView, cb foreign.AllocationCallbacks) {
	vk.DestroyImageView(dev(d), vk.ImageView(unsafe.Pointer(uintptr(view))), alloc(cb))
}

func (Dispatch) AllocateMemory(d foreign.Device, info *foreign.MemoryAllocateInfo, cb foreign.AllocationCallbacks) (foreign.DeviceMemory, foreign.Result) {
	ai := vk.MemoryAllocateInfo{
		SType:           vk.StructureTypeMemoryAllocateInfo,
		AllocationSize:  vk.DeviceSize(info.AllocationSize),
		MemoryTypeIndex: info.MemoryTypeIndex,
	}
	var memory vk.DeviceMemory
	res := vk.AllocateMemory(dev(d), &ai, alloc(cb), &memory)
	return foreign.DeviceMemory(boundary(unsafe.Pointer(memory))), foreign.Result(res)
}

func (Dispatch) FreeMemory(d foreign.Device, memory foreign.DeviceMemory, cb foreign.AllocationCallbacks) {
	vk.FreeMemory(dev(d), vk.DeviceMemory(unsafe.Pointer(uintptr(memory))), alloc(cb))
}

func (Dispatch) BindBufferMemory(d foreign.Device, buffer foreign.Buffer, memory foreign.DeviceMemory, offset uint64) foreign.Result {
	return foreign.Result(vk.BindBufferMemory(dev(d),
		vk.Buffer(unsafe.Pointer(uintptr(buffer))),
		vk.DeviceMemory(unsafe.Pointer(uintptr(memory))), vk.DeviceSize(offset)))
}

func (Dispatch) BindImageMemory(d foreign.Device, image foreign.Image, memory foreign.DeviceMemory, offset uint64) foreign.Result {
	return foreign.Result(vk.BindImageMemory(dev(d),
		vk.Image(unsafe.Pointer(uintptr(image))),
		vk.DeviceMemory(unsafe.Pointer(uintptr(memory))), vk.DeviceSize(offset)))
}

func (Dispatch) MapMemory(d foreign.Device, memory foreign.DeviceMemory, offset, size uint64) (uintptr, foreign.Result) {
	var data unsafe.Pointer
	res := vk.MapMemory(dev(d), vk.DeviceMemory(unsafe.Pointer(uintptr(memory))),
		vk.DeviceSize(offset), vk.DeviceSize(size), 0, &data)
	return uintptr(data), foreign.Result(res)
}

func (Dispatch) UnmapMemory(d foreign.Device, memory foreign.DeviceMemory) {
	vk.UnmapMemory(dev(d), vk.DeviceMemory(unsafe.Pointer(uintptr(memory))))
}

func (Dispatch) CreateFence(d foreign.Device, info *foreign.FenceCreateInfo, cb foreign.AllocationCallbacks) (foreign.Fence, foreign.Result) {
	ci := vk.FenceCreateInfo{
		SType: vk.StructureTypeFenceCreateInfo,
		Flags: vk.FenceCreateFlags(info.Flags),
	}
	var fence vk.Fence
	res := vk.CreateFence(dev(d), &ci, alloc(cb), &fence)
	return foreign.Fence(boundary(unsafe.Pointer(fence))), foreign.Result(res)
}

func (Dispatch) DestroyFence(d foreign.Device, fence foreign.Fence, cb foreign.AllocationCallbacks) {
	vk.DestroyFence(dev(d), vk.Fence(unsafe.Pointer(uintptr(fence))), alloc(cb))
}

func (Dispatch) GetFenceStatus(d foreign.Device, fence foreign.Fence) foreign.Result {
	return foreign.Result(vk.GetFenceStatus(dev(d), vk.Fence(unsafe.Pointer(uintptr(fence)))))
}

func (Dispatch) ResetFences(d foreign.Device, fences []foreign.Fence) foreign.Result {
	raw := make([]vk.Fence, len(fences))
	for i, f := range fences {
		raw[i] = vk.Fence(unsafe.Pointer(uintptr(f)))
	}
	return foreign.Result(vk.ResetFences(dev(d), uint32(len(raw)), raw))
}

func (Dispatch) WaitForFences(d foreign.Device, fences []foreign.Fence, waitAll bool, timeoutNanos uint64) foreign.Result {
	raw := make([]vk.Fence, len(fences))
	for i, f := range fences {
		raw[i] = vk.Fence(unsafe.Pointer(uintptr(f)))
	}
	all := vk.Bool32(vk.False)
	if waitAll {
		all = vk.Bool32(vk.True)
	}
	return foreign.Result(vk.WaitForFences(dev(d), uint32(len(raw)), raw, all, timeoutNanos))
}

func (Dispatch) CreateSemaphore(d foreign.Device, info *foreign.SemaphoreCreateInfo, cb foreign.AllocationCallbacks) (foreign.Semaphore, foreign.Result) {
	ci := vk.SemaphoreCreateInfo{
		SType: vk.StructureTypeSemaphoreCreateInfo,
	}
	var semaphore vk.Semaphore
	res := vk.CreateSemaphore(dev(d), &ci, alloc(cb), &semaphore)
	return foreign.Semaphore(boundary(unsafe.Pointer(semaphore))), foreign.Result(res)
}

func (Dispatch) DestroySemaphore(d foreign.Device, semaphore foreign.Semaphore, cb foreign.AllocationCallbacks) {
	vk.DestroySemaphore(dev(d), vk.Semaphore(unsafe.Pointer(uintptr(semaphore))), alloc(cb))
}

func (Dispatch) CreateDescriptorSetLayout(d foreign.Device, info *foreign.DescriptorSetLayoutCreateInfo, cb foreign.AllocationCallbacks) (foreign.DescriptorSetLayout, foreign.Result) {
	bindings := make([]vk.DescriptorSetLayoutBinding, len(info.Bindings))
	for i, b := range info.Bindings {
		bindings[i] = vk.DescriptorSetLayoutBinding{
			Binding:         b.Binding,
			DescriptorType:  vk.DescriptorType(b.DescriptorType),
			DescriptorCount: b.DescriptorCount,
			StageFlags:      vk.ShaderStageFlags(b.StageFlags),
		}
	}
	ci := vk.DescriptorSetLayoutCreateInfo{
		SType:        vk.StructureTypeDescriptorSetLayoutCreateInfo,
		BindingCount: uint32(len(bindings)),
		PBindings:    bindings,
	}
	var layout vk.DescriptorSetLayout
	res := vk.CreateDescriptorSetLayout(dev(d), &ci, alloc(cb), &layout)
	return foreign.DescriptorSetLayout(boundary(unsafe.Pointer(layout))), foreign.Result(res)
}

func (Dispatch) DestroyDescriptorSetLayout(d foreign.Device, layout foreign.DescriptorSetLayout, cb foreign.AllocationCallbacks) {
	vk.DestroyDescriptorSetLayout(dev(d),
		vk.DescriptorSetLayout(unsafe.Pointer(uintptr(layout))), alloc(cb))
}

func (Dispatch) CreateDescriptorPool(d foreign.Device, info *foreign.DescriptorPoolCreateInfo, cb foreign.AllocationCallbacks) (foreign.DescriptorPool, foreign.Result) {
	sizes := make([]vk.DescriptorPoolSize, len(info.PoolSizes))
	for i, s := range info.PoolSizes {
		sizes[i] = vk.DescriptorPoolSize{
			Type:            vk.DescriptorType(s.Type),
			DescriptorCount: s.Count,
		}
	}
	ci := vk.DescriptorPoolCreateInfo{
		SType:         vk.StructureTypeDescriptorPoolCreateInfo,
		Flags:         vk.DescriptorPoolCreateFlags(info.Flags),
		MaxSets:       info.MaxSets,
		PoolSizeCount: uint32(len(sizes)),
		PPoolSizes:    sizes,
	}
	var pool vk.DescriptorPool
	res := vk.CreateDescriptorPool(dev(d), &ci, alloc(cb), &pool)
	return foreign.DescriptorPool(boundary(unsafe.Pointer(pool))), foreign.Result(res)
}

func (Dispatch) DestroyDescriptorPool(d foreign.Device, pool foreign.DescriptorPool, cb foreign.AllocationCallbacks) {
	vk.DestroyDescriptorPool(dev(d),
		vk.DescriptorPool(unsafe.Pointer(uintptr(pool))), alloc(cb))
}

func (Dispatch) ResetDescriptorPool(d foreign.Device, pool foreign.DescriptorPool) foreign.Result {
	return foreign.Result(vk.ResetDescriptorPool(dev(d),
		vk.DescriptorPool(unsafe.Pointer(uintptr(pool))), 0))
}

func (Dispatch) AllocateDescriptorSets(d foreign.Device, info *foreign.DescriptorSetAllocateInfo) ([]foreign.DescriptorSet, foreign.Result) {
	layouts := make([]vk.DescriptorSetLayout, len(info.SetLayouts))
	for i, l := range info.SetLayouts {
		layouts[i] = vk.DescriptorSetLayout(unsafe.Pointer(uintptr(l)))
	}
	ai := vk.DescriptorSetAllocateInfo{
		SType:              vk.StructureTypeDescriptorSetAllocateInfo,
		DescriptorPool:     vk.DescriptorPool(unsafe.Pointer(uintptr(info.DescriptorPool))),
		DescriptorSetCount: uint32(len(layouts)),
		PSetLayouts:        layouts,
	}
	out := make([]foreign.DescriptorSet, len(layouts))
	for i := range layouts {
		var set vk.DescriptorSet
		res := vk.AllocateDescriptorSets(dev(d), &ai, &set)
		if vk.Result(res) != vk.Success {
			return nil, foreign.Result(res)
		}
		out[i] = foreign.DescriptorSet(boundary(unsafe.Pointer(set)))
	}
	return out, foreign.Result(vk.Success)
}

func (Dispatch) FreeDescriptorSets(d foreign.Device, pool foreign.DescriptorPool, sets []foreign.DescriptorSet) foreign.Result {
	var res vk.Result
	for _, s := range sets {
		set := vk.DescriptorSet(unsafe.Pointer(uintptr(s)))
		res = vk.FreeDescriptorSets(dev(d),
			vk.DescriptorPool(unsafe.Pointer(uintptr(pool))), 1, &set)
		if res != vk.Success {
			break
		}
	}
	return foreign.Result(res)
}

func (Dispatch) UpdateDescriptorSets(d foreign.Device, writes []foreign.WriteDescriptorSet) {
	raw := make([]vk.WriteDescriptorSet, len(writes))
	for i, w := range writes {
		infos := make([]vk.DescriptorBufferInfo, len(w.BufferInfos))
		for j, bi := range w.BufferInfos {
			infos[j] = vk.DescriptorBufferInfo{
				Buffer: vk.Buffer(unsafe.Pointer(uintptr(bi.Buffer))),
				Offset: vk.DeviceSize(bi.Offset),
				Range:  vk.DeviceSize(bi.Range),
			}
		}
		raw[i] = vk.WriteDescriptorSet{
			SType:           vk.StructureTypeWriteDescriptorSet,
			DstSet:          vk.DescriptorSet(unsafe.Pointer(uintptr(w.DstSet))),
			DstBinding:      w.DstBinding,
			DstArrayElement: w.DstArrayElement,
			DescriptorCount: uint32(len(infos)),
			DescriptorType:  vk.DescriptorType(w.DescriptorType),
			PBufferInfo:     infos,
		}
	}
	vk.UpdateDescriptorSets(dev(d), uint32(len(raw)), raw, 0, nil)
}

func (Dispatch) CreateRenderPass(d foreign.Device, info *foreign.RenderPassCreateInfo, cb foreign.AllocationCallbacks) (foreign.RenderPass, foreign.Result) {
	attachments := make([]vk.AttachmentDescription, len(info.Attachments))
	for i, a := range info.Attachments {
		attachments[i] = vk.AttachmentDescription{
			Format:         vk.Format(a.Format),
			Samples:        vk.SampleCountFlagBits(a.Samples),
			LoadOp:         vk.AttachmentLoadOp(a.LoadOp),
			StoreOp:        vk.AttachmentStoreOp(a.StoreOp),
			StencilLoadOp:  vk.AttachmentLoadOp(a.StencilLoadOp),
			StencilStoreOp: vk.AttachmentStoreOp(a.StencilStoreOp),
			InitialLayout:  vk.ImageLayout(a.InitialLayout),
			FinalLayout:    vk.ImageLayout(a.FinalLayout),
		}
	}
	refs := func(in []foreign.AttachmentReference) []vk.AttachmentReference {
		out := make([]vk.AttachmentReference, len(in))
		for i, r := range in {
			out[i] = vk.AttachmentReference{Attachment: r.Attachment, Layout: vk.ImageLayout(r.Layout)}
		}
		return out
	}
	subpasses := make([]vk.SubpassDescription, len(info.Subpasses))
	for i, s := range info.Subpasses {
		sub := vk.SubpassDescription{
			PipelineBindPoint:    vk.PipelineBindPoint(s.BindPoint),
			InputAttachmentCount: uint32(len(s.InputAttachments)),
			PInputAttachments:    refs(s.InputAttachments),
			ColorAttachmentCount: uint32(len(s.ColorAttachments)),
			PColorAttachments:    refs(s.ColorAttachments),
		}
		if s.DepthStencilAttachment != nil {
			ds := refs([]foreign.AttachmentReference{*s.DepthStencilAttachment})
			sub.PDepthStencilAttachment = &ds[0]
		}
		subpasses[i] = sub
	}
	deps := make([]vk.SubpassDependency, len(info.Dependencies))
	for i, dep := range info.Dependencies {
		deps[i] = vk.SubpassDependency{
			SrcSubpass:      dep.SrcSubpass,
			DstSubpass:      dep.DstSubpass,
			SrcStageMask:    vk.PipelineStageFlags(dep.SrcStageMask),
			DstStageMask:    vk.PipelineStageFlags(dep.DstStageMask),
			SrcAccessMask:   vk.AccessFlags(dep.SrcAccessMask),
			DstAccessMask:   vk.AccessFlags(dep.DstAccessMask),
			DependencyFlags: vk.DependencyFlags(dep.DependencyFlags),
		}
	}
	ci := vk.RenderPassCreateInfo{
		SType:           vk.StructureTypeRenderPassCreateInfo,
		AttachmentCount: uint32(len(attachments)),
		PAttachments:    attachments,
		SubpassCount:    uint32(len(subpasses)),
		PSubpasses:      subpasses,
		DependencyCount: uint32(len(deps)),
		PDependencies:   deps,
	}
	var renderPass vk.RenderPass
	res := vk.CreateRenderPass(dev(d), &ci, alloc(cb), &renderPass)
	return foreign.RenderPass(boundary(unsafe.Pointer(renderPass))), foreign.Result(res)
}

func (Dispatch) DestroyRenderPass(d foreign.Device, renderPass foreign.RenderPass, cb foreign.AllocationCallbacks) {
	vk.DestroyRenderPass(dev(d), vk.RenderPass(unsafe.Pointer(uintptr(renderPass))), alloc(cb))
}

func (Dispatch) CreateFramebuffer(d foreign.Device, info *foreign.FramebufferCreateInfo, cb foreign.AllocationCallbacks) (foreign.Framebuffer, foreign.Result) {
	attachments := make([]vk.ImageView, len(info.Attachments))
	for i, a := range info.Attachments {
		attachments[i] = vk.ImageView(unsafe.Pointer(uintptr(a)))
	}
	ci := vk.FramebufferCreateInfo{
		SType:           vk.StructureTypeFramebufferCreateInfo,
		RenderPass:      vk.RenderPass(unsafe.Pointer(uintptr(info.RenderPass))),
		AttachmentCount: uint32(len(attachments)),
		PAttachments:    attachments,
		Width:           info.Width,
		Height:          info.Height,
		Layers:          info.Layers,
	}
	var framebuffer vk.Framebuffer
	res := vk.CreateFramebuffer(dev(d), &ci, alloc(cb), &framebuffer)
	return foreign.Framebuffer(boundary(unsafe.Pointer(framebuffer))), foreign.Result(res)
}

func (Dispatch) DestroyFramebuffer(d foreign.Device, framebuffer foreign.Framebuffer, cb foreign.AllocationCallbacks) {
	vk.DestroyFramebuffer(dev(d), vk.Framebuffer(unsafe.Pointer(uintptr(framebuffer))), alloc(cb))
}

func (Dispatch) CreateShaderModule(d foreign.Device, info *foreign.ShaderModuleCreateInfo, cb foreign.AllocationCallbacks) (foreign.ShaderModule, foreign.Result) {
	ci := vk.ShaderModuleCreateInfo{
		SType:    vk.StructureTypeShaderModuleCreateInfo,
		CodeSize: uint(len(info.Code) * 4),
		PCode:    info.Code,
	}
	var module vk.ShaderModule
	res := vk.CreateShaderModule(dev(d), &ci, alloc(cb), &module)
	return foreign.ShaderModule(boundary(unsafe.Pointer(module))), foreign.Result(res)
}

func (Dispatch) DestroyShaderModule(d foreign.Device, module foreign.ShaderModule, cb foreign.AllocationCallbacks) {
	vk.DestroyShaderModule(dev(d), vk.ShaderModule(unsafe.Pointer(uintptr(module))), alloc(cb))
}

func (Dispatch) CreatePipelineLayout(d foreign.Device, info *foreign.PipelineLayoutCreateInfo, cb foreign.AllocationCallbacks) (foreign.PipelineLayout, foreign.Result) {
	layouts := make([]vk.DescriptorSetLayout, len(info.SetLayouts))
	for i, l := range info.SetLayouts {
		layouts[i] = vk.DescriptorSetLayout(unsafe.Pointer(uintptr(l)))
	}
	ranges := make([]vk.PushConstantRange, len(info.PushConstantRanges))
	for i, r := range info.PushConstantRanges {
		ranges[i] = vk.PushConstantRange{
			StageFlags: vk.ShaderStageFlags(r.StageFlags),
			Offset:     r.Offset,
			Size:       r.Size,
		}
	}
	ci := vk.PipelineLayoutCreateInfo{
		SType:                  vk.StructureTypePipelineLayoutCreateInfo,
		SetLayoutCount:         uint32(len(layouts)),
		PSetLayouts:            layouts,
		PushConstantRangeCount: uint32(len(ranges)),
		PPushConstantRanges:    ranges,
	}
	var layout vk.PipelineLayout
	res := vk.CreatePipelineLayout(dev(d), &ci, alloc(cb), &layout)
	return foreign.PipelineLayout(boundary(unsafe.Pointer(layout))), foreign.Result(res)
}

func (Dispatch) DestroyPipelineLayout(d foreign.Device, layout foreign.PipelineLayout, cb foreign.AllocationCallbacks) {
	vk.DestroyPipelineLayout(dev(d), vk.PipelineLayout(unsafe.Pointer(uintptr(layout))), alloc(cb))
}

func (Dispatch) CreateComputePipeline(d foreign.Device, info *foreign.ComputePipelineCreateInfo, cb foreign.AllocationCallbacks) (foreign.Pipeline, foreign.Result) {
	entry := info.EntryPoint
	if len(entry) == 0 || entry[len(entry)-1] != '\x00' {
		entry += "\x00"
	}
	ci := vk.ComputePipelineCreateInfo{
		SType: vk.StructureTypeComputePipelineCreateInfo,
		Stage: vk.PipelineShaderStageCreateInfo{
			SType:  vk.StructureTypePipelineShaderStageCreateInfo,
			Stage:  vk.ShaderStageComputeBit,
			Module: vk.ShaderModule(unsafe.Pointer(uintptr(info.Module))),
			PName:  entry,
		},
		Layout: vk.PipelineLayout(unsafe.Pointer(uintptr(info.Layout))),
	}
	var cache vk.PipelineCache
	pipelines := make([]vk.Pipeline, 1)
	res := vk.CreateComputePipelines(dev(d), cache,
		1, []vk.ComputePipelineCreateInfo{ci}, alloc(cb), pipelines)
	return foreign.Pipeline(boundary(unsafe.Pointer(pipelines[0]))), foreign.Result(res)
}

func (Dispatch) DestroyPipeline(d foreign.Device, pipeline foreign.Pipeline, cb foreign.AllocationCallbacks) {
	vk.DestroyPipeline(dev(d), vk.Pipeline(unsafe.Pointer(uintptr(pipeline))), alloc(cb))
}
