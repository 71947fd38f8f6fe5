package ldi

import (
	"github.com/gogpu/ldi/capture"
	"github.com/gogpu/ldi/raycast"
	"github.com/gogpu/ldi/render"
)

// RendererOption configures a Renderer returned by NewRenderer.
type RendererOption = raycast.RendererOption

// GPUBackend is the subset of a device-backed renderer's contract
// NewRenderer needs in order to draw through real hardware instead of
// the software rasterizer; backend/wgpu.GPURenderer satisfies it.
type GPUBackend interface {
	Draw(target render.RenderTarget, camL, camR *capture.RenderCamera, t float64) error
	Close() error
}

// WithGPUBackend makes the renderer draw through gpu rather than the
// software rasterizer. Pass nil to force software rendering even when
// a GPU adapter is available.
func WithGPUBackend(gpu GPUBackend) RendererOption {
	return raycast.WithGPUBackend(gpu)
}

// WithFeatherWidth overrides the software rasterizer's edge feather
// width; has no effect when a GPU backend is in use.
func WithFeatherWidth(width float64) RendererOption {
	return raycast.WithFeatherWidth(width)
}

// WithBackground overrides the color composited beneath fully
// transparent output pixels; software backend only.
func WithBackground(c RGBA) RendererOption {
	return raycast.WithBackground(raycast.RGBA(c))
}

// WithWindowEffect enables the outer-window behavior: output pixels
// outside the window derived from each view's originally captured
// resolution are filled with the background instead of raycast.
// Software backend only.
func WithWindowEffect(enabled bool) RendererOption {
	return raycast.WithWindowEffect(enabled)
}
