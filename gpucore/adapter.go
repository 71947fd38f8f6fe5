package gpucore

// GPUAdapter abstracts over different GPU backend implementations.
//
// This interface is the core abstraction that lets the raycast renderer
// work with multiple backends (gogpu/wgpu HAL today; gogpu/gogpu is a
// plausible second adapter). Implementations must be thread-safe for
// concurrent use.
//
// Resource lifecycle:
//   - Resources are created via Create* methods
//   - Resources must be explicitly destroyed via Destroy* methods
//   - Destroying a resource while in use is undefined behavior
//   - IDs become invalid after destruction and must not be reused
type GPUAdapter interface {
	// === Capabilities ===

	// SupportsRender returns whether a hardware render pipeline is
	// available. If false, callers fall back to the software rasterizer.
	SupportsRender() bool

	// MaxTextureSize returns the maximum supported texture side length.
	MaxTextureSize() uint32

	// === Shader Compilation ===

	// CreateShaderModule creates a shader module from SPIR-V bytecode.
	// The SPIR-V is compiled by naga from WGSL before being passed here.
	CreateShaderModule(spirv []uint32, label string) (ShaderModuleID, error)

	// DestroyShaderModule releases a shader module.
	DestroyShaderModule(id ShaderModuleID)

	// === Buffer Management ===

	// CreateBuffer creates a GPU buffer.
	CreateBuffer(size int, usage BufferUsage) (BufferID, error)

	// DestroyBuffer releases a GPU buffer.
	DestroyBuffer(id BufferID)

	// WriteBuffer writes data to a buffer, such as the per-frame
	// RaycastUniforms block.
	WriteBuffer(id BufferID, offset uint64, data []byte)

	// === Texture Management ===

	// CreateTexture creates a GPU texture.
	CreateTexture(width, height int, format TextureFormat) (TextureID, error)

	// DestroyTexture releases a GPU texture.
	DestroyTexture(id TextureID)

	// WriteTexture writes data to a texture. The data must match the
	// texture's format and dimensions.
	WriteTexture(id TextureID, data []byte)

	// === Pipeline Management ===

	// CreateBindGroupLayout creates a bind group layout.
	CreateBindGroupLayout(desc *BindGroupLayoutDesc) (BindGroupLayoutID, error)

	// DestroyBindGroupLayout releases a bind group layout.
	DestroyBindGroupLayout(id BindGroupLayoutID)

	// CreatePipelineLayout combines bind group layouts into a pipeline layout.
	CreatePipelineLayout(layouts []BindGroupLayoutID) (PipelineLayoutID, error)

	// DestroyPipelineLayout releases a pipeline layout.
	DestroyPipelineLayout(id PipelineLayoutID)

	// CreateRenderPipeline creates the vertex+fragment pipeline for one
	// raycast pipeline kind.
	CreateRenderPipeline(desc *RenderPipelineDesc) (RenderPipelineID, error)

	// DestroyRenderPipeline releases a render pipeline.
	DestroyRenderPipeline(id RenderPipelineID)

	// CreateBindGroup binds actual resources to a bind group layout.
	CreateBindGroup(layout BindGroupLayoutID, entries []BindGroupEntry) (BindGroupID, error)

	// DestroyBindGroup releases a bind group.
	DestroyBindGroup(id BindGroupID)

	// === Command Recording and Execution ===

	// BeginDrawPass begins a render pass targeting the given output texture.
	BeginDrawPass(target TextureID) DrawPassEncoder

	// Submit submits recorded commands to the GPU queue.
	Submit()

	// WaitIdle waits for all GPU operations to complete. Used sparingly;
	// it forces a full GPU-CPU synchronization.
	WaitIdle()
}

// DrawPassEncoder records the single full-screen-quad draw call a
// raycast pipeline issues each frame.
//
// Usage:
//  1. Obtain encoder from GPUAdapter.BeginDrawPass()
//  2. SetPipeline, SetBindGroup for each group index
//  3. Draw(6, 1) for the two-triangle quad
//  4. End()
//  5. GPUAdapter.Submit()
type DrawPassEncoder interface {
	// SetPipeline sets the active render pipeline.
	SetPipeline(pipeline RenderPipelineID)

	// SetBindGroup sets a bind group at the specified index.
	SetBindGroup(index uint32, group BindGroupID)

	// Draw issues a non-indexed draw call.
	Draw(vertexCount, instanceCount uint32)

	// End finishes the render pass. The encoder cannot be reused after this.
	End()
}

// AdapterCapabilities describes GPU adapter capabilities.
type AdapterCapabilities struct {
	// SupportsRender indicates hardware render pipeline support.
	SupportsRender bool

	// MaxTextureSize is the maximum supported texture side length.
	MaxTextureSize uint32
}
