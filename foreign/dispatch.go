package foreign

// Dispatch is the complete set of foreign entry points package vks calls.
// Every creation call returns the new handle plus a result code; destruction
// calls return nothing because the foreign interface offers no recovery once
// a destroy has been issued.
//
// Implementations must be safe for concurrent use; the caller is responsible
// for the external synchronization requirements the foreign interface
// documents per handle (which is exactly what package vks enforces).
type Dispatch interface {
	// Device.
	DestroyDevice(dev Device, cb AllocationCallbacks)
	DeviceWaitIdle(dev Device) Result
	GetDeviceQueue(dev Device, family, index uint32) Queue

	// Queue.
	QueueSubmit(queue Queue, infos []SubmitInfo, fence Fence) Result
	QueueWaitIdle(queue Queue) Result

	// Command pool and command buffers.
	CreateCommandPool(dev Device, info *CommandPoolCreateInfo, cb AllocationCallbacks) (CommandPool, Result)
	DestroyCommandPool(dev Device, pool CommandPool, cb AllocationCallbacks)
	ResetCommandPool(dev Device, pool CommandPool, flags CommandPoolResetFlags) Result
	AllocateCommandBuffers(dev Device, info *CommandBufferAllocateInfo) ([]CommandBuffer, Result)
	FreeCommandBuffers(dev Device, pool CommandPool, buffers []CommandBuffer)
	BeginCommandBuffer(buffer CommandBuffer, info *CommandBufferBeginInfo) Result
	EndCommandBuffer(buffer CommandBuffer) Result
	ResetCommandBuffer(buffer CommandBuffer, flags CommandBufferResetFlags) Result

	// Recording.
	CmdBindPipeline(buffer CommandBuffer, bindPoint PipelineBindPoint, pipeline Pipeline)
	CmdBindDescriptorSets(buffer CommandBuffer, bindPoint PipelineBindPoint, layout PipelineLayout, firstSet uint32, sets []DescriptorSet)
	CmdBindVertexBuffers(buffer CommandBuffer, firstBinding uint32, buffers []Buffer, offsets []uint64)
	CmdBindIndexBuffer(buffer CommandBuffer, indexBuffer Buffer, offset uint64, indexType IndexType)
	CmdPushConstants(buffer CommandBuffer, layout PipelineLayout, stages ShaderStageFlags, offset uint32, data []byte)
	CmdDispatch(buffer CommandBuffer, x, y, z uint32)
	CmdDispatchBase(buffer CommandBuffer, baseX, baseY, baseZ, x, y, z uint32)
	CmdCopyBuffer(buffer CommandBuffer, src, dst Buffer, regions []BufferCopy)
	CmdCopyBufferToImage(buffer CommandBuffer, src Buffer, dst Image, dstLayout ImageLayout, regions []BufferImageCopy)
	CmdCopyImageToBuffer(buffer CommandBuffer, src Image, srcLayout ImageLayout, dst Buffer, regions []BufferImageCopy)
	CmdFillBuffer(buffer CommandBuffer, dst Buffer, offset, size uint64, value uint32)
	CmdUpdateBuffer(buffer CommandBuffer, dst Buffer, offset uint64, data []byte)
	CmdPipelineBarrier(buffer CommandBuffer, srcStages, dstStages PipelineStageFlags, flags DependencyFlags, memory []MemoryBarrier, buffers []BufferMemoryBarrier, images []ImageMemoryBarrier)
	CmdBeginRenderPass(buffer CommandBuffer, info *RenderPassBeginInfo, contents SubpassContents)
	CmdNextSubpass(buffer CommandBuffer, contents SubpassContents)
	CmdEndRenderPass(buffer CommandBuffer)
	CmdDraw(buffer CommandBuffer, vertexCount, instanceCount, firstVertex, firstInstance uint32)
	CmdDrawIndexed(buffer CommandBuffer, indexCount, instanceCount, firstIndex uint32, vertexOffset int32, firstInstance uint32)

	// Buffers, images and memory.
	CreateBuffer(dev Device, info *BufferCreateInfo, cb AllocationCallbacks) (Buffer, Result)
	DestroyBuffer(dev Device, buffer Buffer, cb AllocationCallbacks)
	CreateImage(dev Device, info *ImageCreateInfo, cb AllocationCallbacks) (Image, Result)
	DestroyImage(dev Device, image Image, cb AllocationCallbacks)
	CreateImageView(dev Device, info *ImageViewCreateInfo, cb AllocationCallbacks) (ImageView, Result)
	DestroyImageView(dev Device, view ImageView, cb AllocationCallbacks)
	AllocateMemory(dev Device, info *MemoryAllocateInfo, cb AllocationCallbacks) (DeviceMemory, Result)
	FreeMemory(dev Device, memory DeviceMemory, cb AllocationCallbacks)
	BindBufferMemory(dev Device, buffer Buffer, memory DeviceMemory, offset uint64) Result
	BindImageMemory(dev Device, image Image, memory DeviceMemory, offset uint64) Result
	MapMemory(dev Device, memory DeviceMemory, offset, size uint64) (uintptr, Result)
	UnmapMemory(dev Device, memory DeviceMemory)

	// Synchronization primitives.
	CreateFence(dev Device, info *FenceCreateInfo, cb AllocationCallbacks) (Fence, Result)
	DestroyFence(dev Device, fence Fence, cb AllocationCallbacks)
	GetFenceStatus(dev Device, fence Fence) Result
	ResetFences(dev Device, fences []Fence) Result
	WaitForFences(dev Device, fences []Fence, waitAll bool, timeoutNanos uint64) Result
	CreateSemaphore(dev Device, info *SemaphoreCreateInfo, cb AllocationCallbacks) (Semaphore, Result)
	DestroySemaphore(dev Device, semaphore Semaphore, cb AllocationCallbacks)

	// Descriptors.
	CreateDescriptorSetLayout(dev Device, info *DescriptorSetLayoutCreateInfo, cb AllocationCallbacks) (DescriptorSetLayout, Result)
	DestroyDescriptorSetLayout(dev Device, layout DescriptorSetLayout, cb AllocationCallbacks)
	CreateDescriptorPool(dev Device, info *DescriptorPoolCreateInfo, cb AllocationCallbacks) (DescriptorPool, Result)
	DestroyDescriptorPool(dev Device, pool DescriptorPool, cb AllocationCallbacks)
	ResetDescriptorPool(dev Device, pool DescriptorPool) Result
	AllocateDescriptorSets(dev Device, info *DescriptorSetAllocateInfo) ([]DescriptorSet, Result)
	FreeDescriptorSets(dev Device, pool DescriptorPool, sets []DescriptorSet) Result
	UpdateDescriptorSets(dev Device, writes []WriteDescriptorSet)

	// Render pass objects.
	CreateRenderPass(dev Device, info *RenderPassCreateInfo, cb AllocationCallbacks) (RenderPass, Result)
	DestroyRenderPass(dev Device, renderPass RenderPass, cb AllocationCallbacks)
	CreateFramebuffer(dev Device, info *FramebufferCreateInfo, cb AllocationCallbacks) (Framebuffer, Result)
	DestroyFramebuffer(dev Device, framebuffer Framebuffer, cb AllocationCallbacks)

	// Pipelines and shaders.
	CreateShaderModule(dev Device, info *ShaderModuleCreateInfo, cb AllocationCallbacks) (ShaderModule, Result)
	DestroyShaderModule(dev Device, module ShaderModule, cb AllocationCallbacks)
	CreatePipelineLayout(dev Device, info *PipelineLayoutCreateInfo, cb AllocationCallbacks) (PipelineLayout, Result)
	DestroyPipelineLayout(dev Device, layout PipelineLayout, cb AllocationCallbacks)
	CreateComputePipeline(dev Device, info *ComputePipelineCreateInfo, cb AllocationCallbacks) (Pipeline, Result)
	DestroyPipeline(dev Device, pipeline Pipeline, cb AllocationCallbacks)
}
