package wgpu

import (
	"errors"
	"fmt"
	"sync"

	"github.com/gogpu/wgpu/core"

	"github.com/gogpu/ldi/gpucore"
)

// ErrNotImplemented is returned by pipeline operations that depend on a
// piece of the gogpu/wgpu render-pipeline API not yet exposed by the
// version of the module this backend was built against.
var ErrNotImplemented = errors.New("wgpu: operation not implemented by this gogpu/wgpu version")

// StubPipelineID is a placeholder for an actual wgpu RenderPipelineID.
// It will be replaced with core.RenderPipelineID once gogpu/wgpu exposes
// render (as opposed to compute) pipeline creation; see createRaycastPipeline.
type StubPipelineID uint64

// StubBindGroupLayoutID is a placeholder for an actual wgpu BindGroupLayoutID.
type StubBindGroupLayoutID uint64

// StubBindGroupID is a placeholder for an actual wgpu BindGroupID.
type StubBindGroupID uint64

// InvalidPipelineID represents an invalid/uninitialized pipeline.
const InvalidPipelineID StubPipelineID = 0

// PipelineCache caches the compiled render pipeline for each raycast
// [gpucore.PipelineKind] a capture actually needs. Kinds are built
// lazily: a mono capture rendered to a mono output never pays for the
// ST->ST pipeline's shader compile.
//
// PipelineCache is safe for concurrent read access; pipeline creation
// is synchronized internally.
type PipelineCache struct {
	mu sync.RWMutex

	device core.DeviceID

	pipelines map[gpucore.PipelineKind]StubPipelineID

	uniformLayout StubBindGroupLayoutID

	initialized bool
}

// NewPipelineCache creates a pipeline cache bound to device. No pipeline
// is compiled until Pipeline(kind) is first called for that kind.
func NewPipelineCache(device core.DeviceID) (*PipelineCache, error) {
	pc := &PipelineCache{
		device:    device,
		pipelines: make(map[gpucore.PipelineKind]StubPipelineID),
	}

	if err := pc.createUniformLayout(); err != nil {
		return nil, err
	}

	pc.initialized = true
	return pc, nil
}

// createUniformLayout creates the bind group layout shared by every
// raycast pipeline kind: one uniform buffer, one sampler, and the
// reserved color/invZ texture slots.
//
//nolint:unparam // error return prepared for when wgpu's render bind-group API lands
func (pc *PipelineCache) createUniformLayout() error {
	pc.uniformLayout = StubBindGroupLayoutID(1)

	// TODO: when gogpu/wgpu exposes render bind group layouts, create the
	// real layout:
	// layoutDesc := &types.BindGroupLayoutDescriptor{
	//     Entries: []types.BindGroupLayoutEntry{
	//         {
	//             Binding:    0,
	//             Visibility: types.ShaderStageFragment,
	//             Buffer: &types.BufferBindingLayout{
	//                 Type: types.BufferBindingTypeUniform,
	//             },
	//         },
	//         {
	//             Binding:    1,
	//             Visibility: types.ShaderStageFragment,
	//             Sampler:    &types.SamplerBindingLayout{Type: types.SamplerBindingTypeFiltering},
	//         },
	//         // bindings 2..17: layer_textures, one per reserved color/invZ slot
	//     },
	// }
	// pc.uniformLayout, err = core.CreateBindGroupLayout(pc.device, layoutDesc)

	return nil
}

// Pipeline returns the render pipeline for kind, compiling and building
// it on first use.
func (pc *PipelineCache) Pipeline(kind gpucore.PipelineKind) (StubPipelineID, error) {
	pc.mu.RLock()
	if id, ok := pc.pipelines[kind]; ok {
		pc.mu.RUnlock()
		return id, nil
	}
	pc.mu.RUnlock()

	pc.mu.Lock()
	defer pc.mu.Unlock()

	// Re-check after acquiring the write lock: another goroutine may have
	// built this kind while we were waiting.
	if id, ok := pc.pipelines[kind]; ok {
		return id, nil
	}

	spirv, err := compileShaderToSPIRV(sourceForKind(kind))
	if err != nil {
		return 0, fmt.Errorf("wgpu: compiling %s pipeline shader: %w", kind, err)
	}
	_ = spirv // consumed once hal.Device.CreateShaderModule is wired below

	id, err := pc.createRaycastPipeline(kind)
	if err != nil {
		return 0, err
	}
	pc.pipelines[kind] = id
	return id, nil
}

// createRaycastPipeline builds the vertex+fragment pipeline for kind.
//
//nolint:unparam // error return prepared for when wgpu's render pipeline API lands
func (pc *PipelineCache) createRaycastPipeline(kind gpucore.PipelineKind) (StubPipelineID, error) {
	id := StubPipelineID(uint64(kind) + 1)

	// TODO: when gogpu/wgpu exposes render pipeline creation, replace the
	// stub id above with:
	// desc := &types.RenderPipelineDescriptor{
	//     Label:  "ldi-raycast-" + kind.String(),
	//     Layout: pc.pipelineLayout,
	//     Vertex: types.VertexState{
	//         Module:     shaderModule,
	//         EntryPoint: "vs_main",
	//     },
	//     Fragment: &types.FragmentState{
	//         Module:     shaderModule,
	//         EntryPoint: "fs_main",
	//         Targets: []types.ColorTargetState{
	//             {Format: types.TextureFormatRGBA8Unorm},
	//         },
	//     },
	//     Primitive: types.PrimitiveState{Topology: types.PrimitiveTopologyTriangleList},
	// }
	// return core.CreateRenderPipeline(pc.device, desc)

	return id, nil
}

// Warmup compiles and builds the pipeline for every kind up front,
// instead of paying the first-draw cost inline. Renderer calls this
// once during construction for the kinds the bound capture needs.
func (pc *PipelineCache) Warmup(kinds ...gpucore.PipelineKind) error {
	for _, k := range kinds {
		if _, err := pc.Pipeline(k); err != nil {
			return fmt.Errorf("wgpu: warming up %s pipeline: %w", k, err)
		}
	}
	return nil
}

// CreateUniformBindGroup creates the per-frame bind group binding the
// RaycastUniforms buffer, sampler, and the layer color/invZ textures
// used by this draw.
//
//nolint:unparam // error return prepared for when wgpu's render bind-group API lands
func (pc *PipelineCache) CreateUniformBindGroup(uniformBuffer core.BufferID, textures []core.TextureID) (StubBindGroupID, error) {
	// TODO: when gogpu/wgpu exposes render bind groups:
	// entries := []types.BindGroupEntry{{Binding: 0, Buffer: uniformBuffer}}
	// for i, tex := range textures {
	//     entries = append(entries, types.BindGroupEntry{Binding: uint32(2 + i), Texture: tex})
	// }
	// return core.CreateBindGroup(pc.device, pc.uniformLayout, entries)
	_ = uniformBuffer
	_ = textures
	return StubBindGroupID(1), nil
}

// IsInitialized reports whether the cache finished its one-time setup.
func (pc *PipelineCache) IsInitialized() bool {
	pc.mu.RLock()
	defer pc.mu.RUnlock()
	return pc.initialized
}

// Destroy releases every cached pipeline and the shared bind group layout.
func (pc *PipelineCache) Destroy() {
	pc.mu.Lock()
	defer pc.mu.Unlock()

	// TODO: when real IDs replace the stubs, drop them here:
	// for _, p := range pc.pipelines {
	//     core.RenderPipelineDrop(p)
	// }
	// if pc.uniformLayout != 0 {
	//     core.BindGroupLayoutDrop(pc.uniformLayout)
	// }

	pc.pipelines = make(map[gpucore.PipelineKind]StubPipelineID)
	pc.initialized = false
}
