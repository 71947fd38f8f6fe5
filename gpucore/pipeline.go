package gpucore

import (
	"fmt"
	"sync"
)

// PipelineKind selects one of the four raycast pipeline variants by
// input-view count x output-eye count.
type PipelineKind uint8

const (
	// PipelineMNToMN renders a mono (or independent multi-eye) view from
	// a single input view.
	PipelineMNToMN PipelineKind = iota
	// PipelineSTToMN renders a mono output from a stereo (two-view) capture.
	PipelineSTToMN
	// PipelineMNToST renders stereo output from a single input view.
	PipelineMNToST
	// PipelineSTToST renders stereo output from a stereo capture.
	PipelineSTToST
)

// String returns the pipeline kind's shorthand name.
func (k PipelineKind) String() string {
	switch k {
	case PipelineMNToMN:
		return "MN->MN"
	case PipelineSTToMN:
		return "ST->MN"
	case PipelineMNToST:
		return "MN->ST"
	case PipelineSTToST:
		return "ST->ST"
	default:
		return "unknown"
	}
}

// NumInputViews reports how many input views this kind samples.
func (k PipelineKind) NumInputViews() int {
	if k == PipelineSTToMN || k == PipelineSTToST {
		return 2
	}
	return 1
}

// NumOutputEyes reports how many output eyes this kind draws.
func (k PipelineKind) NumOutputEyes() int {
	if k == PipelineMNToST || k == PipelineSTToST {
		return 2
	}
	return 1
}

// PipelineConfig configures a RaycastPipelineCache.
type PipelineConfig struct {
	// OutputWidth is the per-eye output canvas width in pixels.
	OutputWidth int

	// OutputHeight is the per-eye output canvas height in pixels.
	OutputHeight int

	// UseCPUFallback forces all draws through the software rasterizer
	// regardless of adapter capability.
	UseCPUFallback bool
}

// RaycastPipelineCache builds and caches the render pipeline for each
// [PipelineKind] on first use, lazily, since a given capture/output
// combination only ever exercises one or two of the four kinds.
type RaycastPipelineCache struct {
	mu sync.Mutex

	adapter GPUAdapter
	config  PipelineConfig

	shaders   map[PipelineKind]ShaderModuleID
	pipelines map[PipelineKind]RenderPipelineID
	layout    PipelineLayoutID
	bindLayout BindGroupLayoutID

	useGPU bool
}

// NewRaycastPipelineCache creates a pipeline cache bound to one GPU adapter.
func NewRaycastPipelineCache(adapter GPUAdapter, config *PipelineConfig) (*RaycastPipelineCache, error) {
	if adapter == nil {
		return nil, fmt.Errorf("gpucore: adapter is required")
	}
	if config == nil {
		return nil, fmt.Errorf("gpucore: config is required")
	}
	if config.OutputWidth <= 0 || config.OutputHeight <= 0 {
		return nil, fmt.Errorf("gpucore: invalid output size: %dx%d", config.OutputWidth, config.OutputHeight)
	}

	useGPU := !config.UseCPUFallback && adapter.SupportsRender()

	c := &RaycastPipelineCache{
		adapter:   adapter,
		config:    *config,
		shaders:   make(map[PipelineKind]ShaderModuleID),
		pipelines: make(map[PipelineKind]RenderPipelineID),
		useGPU:    useGPU,
	}

	layout, err := adapter.CreateBindGroupLayout(uniformBindGroupLayoutDesc())
	if err != nil {
		return nil, fmt.Errorf("gpucore: creating raycast bind group layout: %w", err)
	}
	c.bindLayout = layout

	pipelineLayout, err := adapter.CreatePipelineLayout([]BindGroupLayoutID{layout})
	if err != nil {
		return nil, fmt.Errorf("gpucore: creating raycast pipeline layout: %w", err)
	}
	c.layout = pipelineLayout

	return c, nil
}

// uniformBindGroupLayoutDesc describes the single bind group every
// raycast pipeline kind shares: one uniform buffer for [RaycastUniforms]
// plus up to MaxEyeSlots*MaxLayerSlots*2 sampled textures (color+invZ
// per layer per eye slot). Only the slots a given kind actually uses
// are populated at bind-group-creation time.
func uniformBindGroupLayoutDesc() *BindGroupLayoutDesc {
	entries := []BindGroupLayoutEntry{
		{Binding: 0, Type: BindingTypeUniformBuffer, MinBindingSize: 0},
		{Binding: 1, Type: BindingTypeSampler},
	}
	const maxTextureSlots = MaxEyeSlots * MaxLayerSlots * 2
	for i := 0; i < maxTextureSlots; i++ {
		entries = append(entries, BindGroupLayoutEntry{
			Binding: uint32(2 + i),
			Type:    BindingTypeSampledTexture,
		})
	}
	return &BindGroupLayoutDesc{Label: "ldi-raycast-bind-group-layout", Entries: entries}
}

// RegisterShader associates compiled SPIR-V for one pipeline kind. The
// renderer calls this once per kind it actually needs, after compiling
// the kind's WGSL fragment source through naga.
func (c *RaycastPipelineCache) RegisterShader(kind PipelineKind, spirv []uint32) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	module, err := c.adapter.CreateShaderModule(spirv, "ldi-raycast-"+kind.String())
	if err != nil {
		return fmt.Errorf("gpucore: compiling %s shader module: %w", kind, err)
	}
	c.shaders[kind] = module
	return nil
}

// Pipeline returns the render pipeline for kind, building it on first
// request. RegisterShader must have been called for kind beforehand.
func (c *RaycastPipelineCache) Pipeline(kind PipelineKind) (RenderPipelineID, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if id, ok := c.pipelines[kind]; ok {
		return id, nil
	}

	module, ok := c.shaders[kind]
	if !ok {
		return 0, fmt.Errorf("gpucore: no shader registered for pipeline kind %s", kind)
	}

	desc := &RenderPipelineDesc{
		Label:              "ldi-raycast-" + kind.String(),
		Layout:             c.layout,
		ShaderModule:       module,
		VertexEntryPoint:   "vs_main",
		FragmentEntryPoint: "fs_main",
		ColorFormat:        TextureFormatRGBA8Unorm,
	}
	id, err := c.adapter.CreateRenderPipeline(desc)
	if err != nil {
		return 0, fmt.Errorf("gpucore: creating %s pipeline: %w", kind, err)
	}
	c.pipelines[kind] = id
	return id, nil
}

// UseGPU reports whether the cache is backed by a real render pipeline,
// as opposed to deferring every draw to the CPU rasterizer.
func (c *RaycastPipelineCache) UseGPU() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.useGPU
}

// Resize updates the cache's expected output dimensions. Existing
// pipelines remain valid (the full-screen quad is resolution-agnostic);
// only textures need re-creation, which is the caller's responsibility.
func (c *RaycastPipelineCache) Resize(width, height int) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if width <= 0 || height <= 0 {
		return fmt.Errorf("gpucore: invalid output size: %dx%d", width, height)
	}
	c.config.OutputWidth = width
	c.config.OutputHeight = height
	return nil
}

// Destroy releases every cached pipeline, shader module, and layout.
func (c *RaycastPipelineCache) Destroy() {
	c.mu.Lock()
	defer c.mu.Unlock()

	for kind, id := range c.pipelines {
		c.adapter.DestroyRenderPipeline(id)
		delete(c.pipelines, kind)
	}
	for kind, id := range c.shaders {
		c.adapter.DestroyShaderModule(id)
		delete(c.shaders, kind)
	}
	if c.layout != InvalidID {
		c.adapter.DestroyPipelineLayout(c.layout)
		c.layout = InvalidID
	}
	if c.bindLayout != InvalidID {
		c.adapter.DestroyBindGroupLayout(c.bindLayout)
		c.bindLayout = InvalidID
	}
}

// BindGroupLayout exposes the shared bind group layout so callers can
// build per-frame bind groups against it.
func (c *RaycastPipelineCache) BindGroupLayout() BindGroupLayoutID {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.bindLayout
}
