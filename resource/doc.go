// Package resource decodes a capture's layer blobs into pixel arrays
// and uploads them as GPU textures: Decode, DownscaleIfOver,
// ComposeMaskedDepth, and BuildTexture are the primitives; Manager
// wires them together per layer, fanning decode work out across
// worker goroutines with golang.org/x/sync/errgroup while guaranteeing
// every returned texture is fully written before use.
//
// # Ownership
//
// Manager never caches across captures: textures it builds are
// tracked into the caller's capture.Arena and released when that
// arena is torn down. Min/mag filtering (linear) and wrap mode
// (clamp-to-edge) are sampler properties fixed in the raycast
// pipeline's bind group layout, not a per-texture concern here.
package resource
