package foreign

// Opaque handle types for every foreign object this layer touches. A handle
// is an identifier managed by the graphics runtime, not a pointer into Go
// memory. The zero value of every handle type is the null handle.
type (
	Device              uint64
	Queue               uint64
	CommandPool         uint64
	CommandBuffer       uint64
	Buffer              uint64
	Image               uint64
	ImageView           uint64
	DeviceMemory        uint64
	Fence               uint64
	Semaphore           uint64
	DescriptorPool      uint64
	DescriptorSet       uint64
	DescriptorSetLayout uint64
	RenderPass          uint64
	Framebuffer         uint64
	Pipeline            uint64
	PipelineLayout      uint64
	ShaderModule        uint64
)

// AllocationCallbacks is an opaque reference to a host memory allocation
// callback table owned by the caller. The zero value selects the runtime's
// unspecified default allocator. A non-zero value configured at the top of an
// ownership tree is threaded to every creation and destruction call for
// objects in that tree; mixing tables between create and destroy of the same
// object is undefined behavior in the foreign interface.
type AllocationCallbacks uintptr
