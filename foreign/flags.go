package foreign

// Flag and enum types mirroring the foreign interface's documented creation
// and recording parameters. Values match the foreign ABI so the binding in
// foreign/vulkan can pass them through unchanged.

type BufferUsageFlags uint32

const (
	BufferUsageTransferSrc        BufferUsageFlags = 0x0001
	BufferUsageTransferDst        BufferUsageFlags = 0x0002
	BufferUsageUniformTexelBuffer BufferUsageFlags = 0x0004
	BufferUsageStorageTexelBuffer BufferUsageFlags = 0x0008
	BufferUsageUniformBuffer      BufferUsageFlags = 0x0010
	BufferUsageStorageBuffer      BufferUsageFlags = 0x0020
	BufferUsageIndexBuffer        BufferUsageFlags = 0x0040
	BufferUsageVertexBuffer       BufferUsageFlags = 0x0080
	BufferUsageIndirectBuffer     BufferUsageFlags = 0x0100
)

type ImageUsageFlags uint32

const (
	ImageUsageTransferSrc            ImageUsageFlags = 0x0001
	ImageUsageTransferDst            ImageUsageFlags = 0x0002
	ImageUsageSampled                ImageUsageFlags = 0x0004
	ImageUsageStorage                ImageUsageFlags = 0x0008
	ImageUsageColorAttachment        ImageUsageFlags = 0x0010
	ImageUsageDepthStencilAttachment ImageUsageFlags = 0x0020
	ImageUsageTransientAttachment    ImageUsageFlags = 0x0040
	ImageUsageInputAttachment        ImageUsageFlags = 0x0080
)

type SharingMode uint32

const (
	SharingModeExclusive  SharingMode = 0
	SharingModeConcurrent SharingMode = 1
)

// QueueFamilyIgnored marks a barrier as not performing a queue family
// ownership transfer.
const QueueFamilyIgnored uint32 = 0xFFFFFFFF

// WholeSize selects the rest of a resource from a given offset.
const WholeSize uint64 = 0xFFFFFFFFFFFFFFFF

type CommandPoolCreateFlags uint32

const (
	CommandPoolCreateTransient          CommandPoolCreateFlags = 0x1
	CommandPoolCreateResetCommandBuffer CommandPoolCreateFlags = 0x2
	CommandPoolCreateProtected          CommandPoolCreateFlags = 0x4
)

type CommandPoolResetFlags uint32

const CommandPoolResetReleaseResources CommandPoolResetFlags = 0x1

type CommandBufferLevel uint32

const (
	CommandBufferLevelPrimary   CommandBufferLevel = 0
	CommandBufferLevelSecondary CommandBufferLevel = 1
)

type CommandBufferUsageFlags uint32

const (
	CommandBufferUsageOneTimeSubmit      CommandBufferUsageFlags = 0x1
	CommandBufferUsageRenderPassContinue CommandBufferUsageFlags = 0x2
	CommandBufferUsageSimultaneousUse    CommandBufferUsageFlags = 0x4
)

type CommandBufferResetFlags uint32

const CommandBufferResetReleaseResources CommandBufferResetFlags = 0x1

type FenceCreateFlags uint32

const FenceCreateSignaled FenceCreateFlags = 0x1

type PipelineStageFlags uint32

const (
	PipelineStageTopOfPipe             PipelineStageFlags = 0x00000001
	PipelineStageDrawIndirect          PipelineStageFlags = 0x00000002
	PipelineStageVertexInput           PipelineStageFlags = 0x00000004
	PipelineStageVertexShader          PipelineStageFlags = 0x00000008
	PipelineStageFragmentShader        PipelineStageFlags = 0x00000080
	PipelineStageEarlyFragmentTests    PipelineStageFlags = 0x00000100
	PipelineStageLateFragmentTests     PipelineStageFlags = 0x00000200
	PipelineStageColorAttachmentOutput PipelineStageFlags = 0x00000400
	PipelineStageComputeShader         PipelineStageFlags = 0x00000800
	PipelineStageTransfer              PipelineStageFlags = 0x00001000
	PipelineStageBottomOfPipe          PipelineStageFlags = 0x00002000
	PipelineStageHost                  PipelineStageFlags = 0x00004000
	PipelineStageAllGraphics           PipelineStageFlags = 0x00008000
	PipelineStageAllCommands           PipelineStageFlags = 0x00010000
)

type AccessFlags uint32

const (
	AccessIndirectCommandRead         AccessFlags = 0x00000001
	AccessIndexRead                   AccessFlags = 0x00000002
	AccessVertexAttributeRead         AccessFlags = 0x00000004
	AccessUniformRead                 AccessFlags = 0x00000008
	AccessInputAttachmentRead         AccessFlags = 0x00000010
	AccessShaderRead                  AccessFlags = 0x00000020
	AccessShaderWrite                 AccessFlags = 0x00000040
	AccessColorAttachmentRead         AccessFlags = 0x00000080
	AccessColorAttachmentWrite        AccessFlags = 0x00000100
	AccessDepthStencilAttachmentRead  AccessFlags = 0x00000200
	AccessDepthStencilAttachmentWrite AccessFlags = 0x00000400
	AccessTransferRead                AccessFlags = 0x00000800
	AccessTransferWrite               AccessFlags = 0x00001000
	AccessHostRead                    AccessFlags = 0x00002000
	AccessHostWrite                   AccessFlags = 0x00004000
	AccessMemoryRead                  AccessFlags = 0x00008000
	AccessMemoryWrite                 AccessFlags = 0x00010000
)

type DependencyFlags uint32

const DependencyByRegion DependencyFlags = 0x1

type ImageLayout uint32

const (
	ImageLayoutUndefined                     ImageLayout = 0
	ImageLayoutGeneral                       ImageLayout = 1
	ImageLayoutColorAttachmentOptimal        ImageLayout = 2
	ImageLayoutDepthStencilAttachmentOptimal ImageLayout = 3
	ImageLayoutDepthStencilReadOnlyOptimal   ImageLayout = 4
	ImageLayoutShaderReadOnlyOptimal         ImageLayout = 5
	ImageLayoutTransferSrcOptimal            ImageLayout = 6
	ImageLayoutTransferDstOptimal            ImageLayout = 7
	ImageLayoutPreinitialized                ImageLayout = 8
	ImageLayoutPresentSrc                    ImageLayout = 1000001002
)

type ImageAspectFlags uint32

const (
	ImageAspectColor   ImageAspectFlags = 0x1
	ImageAspectDepth   ImageAspectFlags = 0x2
	ImageAspectStencil ImageAspectFlags = 0x4
)

type ImageType uint32

const (
	ImageType1D ImageType = 0
	ImageType2D ImageType = 1
	ImageType3D ImageType = 2
)

type ImageViewType uint32

const (
	ImageViewType1D      ImageViewType = 0
	ImageViewType2D      ImageViewType = 1
	ImageViewType3D      ImageViewType = 2
	ImageViewTypeCube    ImageViewType = 3
	ImageViewType2DArray ImageViewType = 5
)

type ImageTiling uint32

const (
	ImageTilingOptimal ImageTiling = 0
	ImageTilingLinear  ImageTiling = 1
)

type SampleCountFlags uint32

const SampleCount1 SampleCountFlags = 0x1

type Format uint32

// The format list is limited to the formats the wrapper's own validation
// needs to know about; the binding passes unknown values through untouched.
const (
	FormatUndefined          Format = 0
	FormatR8G8B8A8Unorm      Format = 37
	FormatB8G8R8A8Unorm      Format = 44
	FormatR32G32B32A32Sfloat Format = 109
	FormatD32Sfloat          Format = 126
)

type PipelineBindPoint uint32

const (
	PipelineBindPointGraphics PipelineBindPoint = 0
	PipelineBindPointCompute  PipelineBindPoint = 1
)

type IndexType uint32

const (
	IndexTypeUint16 IndexType = 0
	IndexTypeUint32 IndexType = 1
)

type SubpassContents uint32

const (
	SubpassContentsInline                  SubpassContents = 0
	SubpassContentsSecondaryCommandBuffers SubpassContents = 1
)

type ShaderStageFlags uint32

const (
	ShaderStageVertex   ShaderStageFlags = 0x01
	ShaderStageFragment ShaderStageFlags = 0x10
	ShaderStageCompute  ShaderStageFlags = 0x20
	ShaderStageAll      ShaderStageFlags = 0x7FFFFFFF
)

type DescriptorType uint32

const (
	DescriptorTypeSampler              DescriptorType = 0
	DescriptorTypeCombinedImageSampler DescriptorType = 1
	DescriptorTypeSampledImage         DescriptorType = 2
	DescriptorTypeStorageImage         DescriptorType = 3
	DescriptorTypeUniformTexelBuffer   DescriptorType = 4
	DescriptorTypeStorageTexelBuffer   DescriptorType = 5
	DescriptorTypeUniformBuffer        DescriptorType = 6
	DescriptorTypeStorageBuffer        DescriptorType = 7
	DescriptorTypeUniformBufferDynamic DescriptorType = 8
	DescriptorTypeStorageBufferDynamic DescriptorType = 9
	DescriptorTypeInputAttachment      DescriptorType = 10
)

type DescriptorPoolCreateFlags uint32

const DescriptorPoolCreateFreeDescriptorSet DescriptorPoolCreateFlags = 0x1

type AttachmentLoadOp uint32

const (
	AttachmentLoadOpLoad     AttachmentLoadOp = 0
	AttachmentLoadOpClear    AttachmentLoadOp = 1
	AttachmentLoadOpDontCare AttachmentLoadOp = 2
)

type AttachmentStoreOp uint32

const (
	AttachmentStoreOpStore    AttachmentStoreOp = 0
	AttachmentStoreOpDontCare AttachmentStoreOp = 1
)
