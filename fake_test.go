package vks

import (
	"sync"

	"github.com/vulkayes/vulkayes-go/foreign"
)

// fakeDispatch records every entry point call and hands out monotonically
// increasing handles. Tests override results per entry point to exercise
// error paths.
type fakeDispatch struct {
	mu      sync.Mutex
	next    uint64
	calls   []string
	results map[string]foreign.Result
	fences  foreign.Result // result for GetFenceStatus / WaitForFences
}

func newFakeDispatch() *fakeDispatch {
	return &fakeDispatch{next: 0x1000, results: map[string]foreign.Result{}}
}

func (f *fakeDispatch) record(name string) {
	f.mu.Lock()
	f.calls = append(f.calls, name)
	f.mu.Unlock()
}

func (f *fakeDispatch) handle() uint64 {
	f.mu.Lock()
	f.next++
	h := f.next
	f.mu.Unlock()
	return h
}

func (f *fakeDispatch) result(name string) foreign.Result {
	f.mu.Lock()
	r := f.results[name]
	f.mu.Unlock()
	return r
}

func (f *fakeDispatch) fail(name string, r foreign.Result) {
	f.mu.Lock()
	f.results[name] = r
	f.mu.Unlock()
}

func (f *fakeDispatch) callLog() []string {
	f.mu.Lock()
	out := append([]string(nil), f.calls...)
	f.mu.Unlock()
	return out
}

func (f *fakeDispatch) called(name string) int {
	n := 0
	for _, c := range f.callLog() {
		if c == name {
			n++
		}
	}
	return n
}

func (f *fakeDispatch) DestroyDevice(foreign.Device, foreign.AllocationCallbacks) {
	f.record("DestroyDevice")
}

func (f *fakeDispatch) DeviceWaitIdle(foreign.Device) foreign.Result {
	f.record("DeviceWaitIdle")
	return f.result("DeviceWaitIdle")
}

func (f *fakeDispatch) GetDeviceQueue(foreign.Device, uint32, uint32) foreign.Queue {
	f.record("GetDeviceQueue")
	return foreign.Queue(f.handle())
}

func (f *fakeDispatch) QueueSubmit(foreign.Queue, []foreign.SubmitInfo, foreign.Fence) foreign.Result {
	f.record("QueueSubmit")
	return f.result("QueueSubmit")
}

func (f *fakeDispatch) QueueWaitIdle(foreign.Queue) foreign.Result {
	f.record("QueueWaitIdle")
	return f.result("QueueWaitIdle")
}

func (f *fakeDispatch) CreateCommandPool(foreign.Device, *foreign.CommandPoolCreateInfo, foreign.AllocationCallbacks) (foreign.CommandPool, foreign.Result) {
	f.record("CreateCommandPool")
	return foreign.CommandPool(f.handle()), f.result("CreateCommandPool")
}

func (f *fakeDispatch) DestroyCommandPool(foreign.Device, foreign.CommandPool, foreign.AllocationCallbacks) {
	f.record("DestroyCommandPool")
}

func (f *fakeDispatch) ResetCommandPool(foreign.Device, foreign.CommandPool, foreign.CommandPoolResetFlags) foreign.Result {
	f.record("ResetCommandPool")
	return f.result("ResetCommandPool")
}

func (f *fakeDispatch) AllocateCommandBuffers(_ foreign.Device, info *foreign.CommandBufferAllocateInfo) ([]foreign.CommandBuffer, foreign.Result) {
	f.record("AllocateCommandBuffers")
	if r := f.result("AllocateCommandBuffers"); r != 0 {
		return nil, r
	}
	out := make([]foreign.CommandBuffer, info.Count)
	for i := range out {
		out[i] = foreign.CommandBuffer(f.handle())
	}
	return out, 0
}

func (f *fakeDispatch) FreeCommandBuffers(foreign.Device, foreign.CommandPool, []foreign.CommandBuffer) {
	f.record("FreeCommandBuffers")
}

func (f *fakeDispatch) BeginCommandBuffer(foreign.CommandBuffer, *foreign.CommandBufferBeginInfo) foreign.Result {
	f.record("BeginCommandBuffer")
	return f.result("BeginCommandBuffer")
}

func (f *fakeDispatch) EndCommandBuffer(foreign.CommandBuffer) foreign.Result {
	f.record("EndCommandBuffer")
	return f.result("EndCommandBuffer")
}

func (f *fakeDispatch) ResetCommandBuffer(foreign.CommandBuffer, foreign.CommandBufferResetFlags) foreign.Result {
	f.record("ResetCommandBuffer")
	return f.result("ResetCommandBuffer")
}

func (f *fakeDispatch) CmdBindPipeline(foreign.CommandBuffer, foreign.PipelineBindPoint, foreign.Pipeline) {
	f.record("CmdBindPipeline")
}

func (f *fakeDispatch) CmdBindDescriptorSets(foreign.CommandBuffer, foreign.PipelineBindPoint, foreign.PipelineLayout, uint32, []foreign.DescriptorSet) {
	f.record("CmdBindDescriptorSets")
}

func (f *fakeDispatch) CmdBindVertexBuffers(foreign.CommandBuffer, uint32, []foreign.Buffer, []uint64) {
	f.record("CmdBindVertexBuffers")
}

func (f *fakeDispatch) CmdBindIndexBuffer(foreign.CommandBuffer, foreign.Buffer, uint64, foreign.IndexType) {
	f.record("CmdBindIndexBuffer")
}

func (f *fakeDispatch) CmdPushConstants(foreign.CommandBuffer, foreign.PipelineLayout, foreign.ShaderStageFlags, uint32, []byte) {
	f.record("CmdPushConstants")
}

func (f *fakeDispatch) CmdDispatch(foreign.CommandBuffer, uint32, uint32, uint32) {
	f.record("CmdDispatch")
}

func (f *fakeDispatch) CmdDispatchBase(foreign.CommandBuffer, uint32, uint32, uint32, uint32, uint32, uint32) {
	f.record("CmdDispatchBase")
}

func (f *fakeDispatch) CmdCopyBuffer(foreign.CommandBuffer, foreign.Buffer, foreign.Buffer, []foreign.BufferCopy) {
	f.record("CmdCopyBuffer")
}

func (f *fakeDispatch) CmdCopyBufferToImage(foreign.CommandBuffer, foreign.Buffer, foreign.Image, foreign.ImageLayout, []foreign.BufferImageCopy) {
	f.record("CmdCopyBufferToImage")
}

func (f *fakeDispatch) CmdCopyImageToBuffer(foreign.CommandBuffer, foreign.Image, foreign.ImageLayout, foreign.Buffer, []foreign.BufferImageCopy) {
	f.record("CmdCopyImageToBuffer")
}

func (f *fakeDispatch) CmdFillBuffer(foreign.CommandBuffer, foreign.Buffer, uint64, uint64, uint32) {
	f.record("CmdFillBuffer")
}

func (f *fakeDispatch) CmdUpdateBuffer(foreign.CommandBuffer, foreign.Buffer, uint64, []byte) {
	f.record("CmdUpdateBuffer")
}

func (f *fakeDispatch) CmdPipelineBarrier(foreign.CommandBuffer, foreign.PipelineStageFlags, foreign.PipelineStageFlags, foreign.DependencyFlags, []foreign.MemoryBarrier, []foreign.BufferMemoryBarrier, []foreign.ImageMemoryBarrier) {
	f.record("CmdPipelineBarrier")
}

func (f *fakeDispatch) CmdBeginRenderPass(foreign.CommandBuffer, *foreign.RenderPassBeginInfo, foreign.SubpassContents) {
	f.record("CmdBeginRenderPass")
}

func (f *fakeDispatch) CmdNextSubpass(foreign.CommandBuffer, foreign.SubpassContents) {
	f.record("CmdNextSubpass")
}

func (f *fakeDispatch) CmdEndRenderPass(foreign.CommandBuffer) {
	f.record("CmdEndRenderPass")
}

func (f *fakeDispatch) CmdDraw(foreign.CommandBuffer, uint32, uint32, uint32, uint32) {
	f.record("CmdDraw")
}

func (f *fakeDispatch) CmdDrawIndexed(foreign.CommandBuffer, uint32, uint32, uint32, int32, uint32) {
	f.record("CmdDrawIndexed")
}

func (f *fakeDispatch) CreateBuffer(foreign.Device, *foreign.BufferCreateInfo, foreign.AllocationCallbacks) (foreign.Buffer, foreign.Result) {
	f.record("CreateBuffer")
	return foreign.Buffer(f.handle()), f.result("CreateBuffer")
}

func (f *fakeDispatch) DestroyBuffer(foreign.Device, foreign.Buffer, foreign.AllocationCallbacks) {
	f.record("DestroyBuffer")
}

func (f *fakeDispatch) CreateImage(foreign.Device, *foreign.ImageCreateInfo, foreign.AllocationCallbacks) (foreign.Image, foreign.Result) {
	f.record("CreateImage")
	return foreign.Image(f.handle()), f.result("CreateImage")
}

func (f *fakeDispatch) DestroyImage(foreign.Device, foreign.Image, foreign.AllocationCallbacks) {
	f.record("DestroyImage")
}

func (f *fakeDispatch) CreateImageView(foreign.Device, *foreign.ImageViewCreateInfo, foreign.AllocationCallbacks) (foreign.ImageView, foreign.Result) {
	f.record("CreateImageView")
	return foreign.ImageView(f.handle()), f.result("CreateImageView")
}

func (f *fakeDispatch) DestroyImageView(foreign.Device, foreign.ImageView, foreign.AllocationCallbacks) {
	f.record("DestroyImageView")
}

func (f *fakeDispatch) AllocateMemory(foreign.Device, *foreign.MemoryAllocateInfo, foreign.AllocationCallbacks) (foreign.DeviceMemory, foreign.Result) {
	f.record("AllocateMemory")
	return foreign.DeviceMemory(f.handle()), f.result("AllocateMemory")
}

func (f *fakeDispatch) FreeMemory(foreign.Device, foreign.DeviceMemory, foreign.AllocationCallbacks) {
	f.record("FreeMemory")
}

func (f *fakeDispatch) BindBufferMemory(foreign.Device, foreign.Buffer, foreign.DeviceMemory, uint64) foreign.Result {
	f.record("BindBufferMemory")
	return f.result("BindBufferMemory")
}

func (f *fakeDispatch) BindImageMemory(foreign.Device, foreign.Image, foreign.DeviceMemory, uint64) foreign.Result {
	f.record("BindImageMemory")
	return f.result("BindImageMemory")
}

func (f *fakeDispatch) MapMemory(foreign.Device, foreign.DeviceMemory, uint64, uint64) (uintptr, foreign.Result) {
	f.record("MapMemory")
	return uintptr(f.handle()), f.result("MapMemory")
}

func (f *fakeDispatch) UnmapMemory(foreign.Device, foreign.DeviceMemory) {
	f.record("UnmapMemory")
}

func (f *fakeDispatch) CreateFence(foreign.Device, *foreign.FenceCreateInfo, foreign.AllocationCallbacks) (foreign.Fence, foreign.Result) {
	f.record("CreateFence")
	return foreign.Fence(f.handle()), f.result("CreateFence")
}

func (f *fakeDispatch) DestroyFence(foreign.Device, foreign.Fence, foreign.AllocationCallbacks) {
	f.record("DestroyFence")
}

func (f *fakeDispatch) GetFenceStatus(foreign.Device, foreign.Fence) foreign.Result {
	f.record("GetFenceStatus")
	f.mu.Lock()
	r := f.fences
	f.mu.Unlock()
	return r
}

func (f *fakeDispatch) ResetFences(foreign.Device, []foreign.Fence) foreign.Result {
	f.record("ResetFences")
	return f.result("ResetFences")
}

func (f *fakeDispatch) WaitForFences(foreign.Device, []foreign.Fence, bool, uint64) foreign.Result {
	f.record("WaitForFences")
	f.mu.Lock()
	r := f.fences
	f.mu.Unlock()
	return r
}

func (f *fakeDispatch) CreateSemaphore(foreign.Device, *foreign.SemaphoreCreateInfo, foreign.AllocationCallbacks) (foreign.Semaphore, foreign.Result) {
	f.record("CreateSemaphore")
	return foreign.Semaphore(f.handle()), f.result("CreateSemaphore")
}

func (f *fakeDispatch) DestroySemaphore(foreign.Device, foreign.Semaphore, foreign.AllocationCallbacks) {
	f.record("DestroySemaphore")
}

func (f *fakeDispatch) CreateDescriptorSetLayout(foreign.Device, *foreign.DescriptorSetLayoutCreateInfo, foreign.AllocationCallbacks) (foreign.DescriptorSetLayout, foreign.Result) {
	f.record("CreateDescriptorSetLayout")
	return foreign.DescriptorSetLayout(f.handle()), f.result("CreateDescriptorSetLayout")
}

func (f *fakeDispatch) DestroyDescriptorSetLayout(foreign.Device, foreign.DescriptorSetLayout, foreign.AllocationCallbacks) {
	f.record("DestroyDescriptorSetLayout")
}

func (f *fakeDispatch) CreateDescriptorPool(foreign.Device, *foreign.DescriptorPoolCreateInfo, foreign.AllocationCallbacks) (foreign.DescriptorPool, foreign.Result) {
	f.record("CreateDescriptorPool")
	return foreign.DescriptorPool(f.handle()), f.result("CreateDescriptorPool")
}

func (f *fakeDispatch) DestroyDescriptorPool(foreign.Device, foreign.DescriptorPool, foreign.AllocationCallbacks) {
	f.record("DestroyDescriptorPool")
}

func (f *fakeDispatch) ResetDescriptorPool(foreign.Device, foreign.DescriptorPool) foreign.Result {
	f.record("ResetDescriptorPool")
	return f.result("ResetDescriptorPool")
}

func (f *fakeDispatch) AllocateDescriptorSets(_ foreign.Device, info *foreign.DescriptorSetAllocateInfo) ([]foreign.DescriptorSet, foreign.Result) {
	f.record("AllocateDescriptorSets")
	if r := f.result("AllocateDescriptorSets"); r != 0 {
		return nil, r
	}
	out := make([]foreign.DescriptorSet, len(info.SetLayouts))
	for i := range out {
		out[i] = foreign.DescriptorSet(f.handle())
	}
	return out, 0
}

func (f *fakeDispatch) FreeDescriptorSets(foreign.Device, foreign.DescriptorPool, []foreign.DescriptorSet) foreign.Result {
	f.record("FreeDescriptorSets")
	return f.result("FreeDescriptorSets")
}

func (f *fakeDispatch) UpdateDescriptorSets(foreign.Device, []foreign.WriteDescriptorSet) {
	f.record("UpdateDescriptorSets")
}

func (f *fakeDispatch) CreateRenderPass(foreign.Device, *foreign.RenderPassCreateInfo, foreign.AllocationCallbacks) (foreign.RenderPass, foreign.Result) {
	f.record("CreateRenderPass")
	return foreign.RenderPass(f.handle()), f.result("CreateRenderPass")
}

func (f *fakeDispatch) DestroyRenderPass(foreign.Device, foreign.RenderPass, foreign.AllocationCallbacks) {
	f.record("DestroyRenderPass")
}

func (f *fakeDispatch) CreateFramebuffer(foreign.Device, *foreign.FramebufferCreateInfo, foreign.AllocationCallbacks) (foreign.Framebuffer, foreign.Result) {
	f.record("CreateFramebuffer")
	return foreign.Framebuffer(f.handle()), f.result("CreateFramebuffer")
}

func (f *fakeDispatch) DestroyFramebuffer(foreign.Device, foreign.Framebuffer, foreign.AllocationCallbacks) {
	f.record("DestroyFramebuffer")
}

func (f *fakeDispatch) CreateShaderModule(foreign.Device, *foreign.ShaderModuleCreateInfo, foreign.AllocationCallbacks) (foreign.ShaderModule, foreign.Result) {
	f.record("CreateShaderModule")
	return foreign.ShaderModule(f.handle()), f.result("CreateShaderModule")
}

func (f *fakeDispatch) DestroyShaderModule(foreign.Device, foreign.ShaderModule, foreign.AllocationCallbacks) {
	f.record("DestroyShaderModule")
}

func (f *fakeDispatch) CreatePipelineLayout(foreign.Device, *foreign.PipelineLayoutCreateInfo, foreign.AllocationCallbacks) (foreign.PipelineLayout, foreign.Result) {
	f.record("CreatePipelineLayout")
	return foreign.PipelineLayout(f.handle()), f.result("CreatePipelineLayout")
}

func (f *fakeDispatch) DestroyPipelineLayout(foreign.Device, foreign.PipelineLayout, foreign.AllocationCallbacks) {
	f.record("DestroyPipelineLayout")
}

func (f *fakeDispatch) CreateComputePipeline(foreign.Device, *foreign.ComputePipelineCreateInfo, foreign.AllocationCallbacks) (foreign.Pipeline, foreign.Result) {
	f.record("CreateComputePipeline")
	return foreign.Pipeline(f.handle()), f.result("CreateComputePipeline")
}

func (f *fakeDispatch) DestroyPipeline(foreign.Device, foreign.Pipeline, foreign.AllocationCallbacks) {
	f.record("DestroyPipeline")
}

// newTestDevice builds a strict-validation device over a fresh fake dispatch.
func newTestDevice(t interface{ Fatalf(string, ...interface{}) }) (*Device, *fakeDispatch) {
	disp := newFakeDispatch()
	d, err := NewDevice(disp, foreign.Device(disp.handle()), DeviceOptions{StrictValidation: true})
	if err != nil {
		t.Fatalf("NewDevice: %v", err)
	}
	return d, disp
}
