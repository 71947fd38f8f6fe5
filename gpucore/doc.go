// Package gpucore provides shared GPU abstractions for the LDI rendering core.
//
// This package defines the [GPUAdapter] interface, which abstracts over
// different GPU backend implementations, allowing the same raycast
// pipelines to work with:
//   - gogpu/wgpu (Pure Go WebGPU via HAL) — see package backend/wgpu
//   - any future gogpu/gogpu-backed adapter
//
// # Architecture
//
// gpucore holds the backend-agnostic pieces: opaque resource IDs,
// bind-group/pipeline descriptors, the uniform buffer layout shared by
// all four raycast pipeline kinds, and [RaycastPipelineCache], which
// lazily builds the render pipeline for whichever kinds a given capture
// actually needs. The diagram below places an adapter implementing
// [GPUAdapter] against the real device; this module ships no such
// adapter: backend/wgpu drives gogpu/wgpu directly through its own
// PipelineCache.
//
//	               +-----------------------+
//	               |        gpucore        |
//	               | (RaycastPipelineCache)|
//	               +-----------+-----------+
//	                           |
//	                  +--------v--------+
//	                  |  wgpu adapter   |
//	                  |  (hal.Device)   |
//	                  +--------+--------+
//	                           |
//	                  +--------v--------+
//	                  |   gogpu/wgpu    |
//	                  |   (Pure Go)     |
//	                  +-----------------+
//
// # Pipeline kinds
//
// The four [PipelineKind] values name the four (input view count x
// output eye count) combinations a capture can require: MN->MN,
// ST->MN, MN->ST, ST->ST. Each shares a vertex program (the full-screen
// quad) and a fragment program selected at pipeline build time; their
// bind group layouts differ only in how many of the reserved texture
// slots are actually written.
//
// # Resource management
//
// GPU resources are managed via opaque IDs ([BufferID], [TextureID],
// etc). The [GPUAdapter] interface provides creation and destruction
// methods for each resource type; adapters track the mapping between
// IDs and actual GPU resources.
//
// # CPU fallback
//
// When no adapter reports render support, or a config forces it, the
// caller should draw through raycast.SoftwareRasterizer instead of
// this package. RaycastPipelineCache.UseGPU reports which path is
// active.
package gpucore
