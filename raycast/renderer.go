package raycast

import (
	"fmt"
	"time"

	"github.com/gogpu/ldi/capture"
	"github.com/gogpu/ldi/render"
)

// gpuBackend is the subset of backend/wgpu.GPURenderer's contract
// Renderer depends on; kept as a local interface so raycast never
// imports backend/wgpu (which itself imports capture and render, and
// would otherwise risk a cycle back through any future facade glue).
type gpuBackend interface {
	Draw(target render.RenderTarget, camL, camR *capture.RenderCamera, t float64) error
	Close() error
}

// Renderer is the single entry point novel-view hosts draw through:
// it prefers a GPU backend when one was supplied and falls back to
// SoftwareRasterizer otherwise, so headless hosts and tests never
// need a GPU adapter.
type Renderer struct {
	gpu      gpuBackend
	software *SoftwareRasterizer

	drawDuration func(seconds float64)
}

// RendererOption configures a Renderer at construction time.
type RendererOption func(*Renderer)

// WithGPUBackend makes the renderer draw through gpu rather than the
// software rasterizer. Pass nil to force software rendering even when
// a GPU adapter is available (used by tests and headless hosts).
func WithGPUBackend(gpu gpuBackend) RendererOption {
	return func(r *Renderer) { r.gpu = gpu }
}

// WithFeatherWidth overrides the software rasterizer's edge feather
// width; has no effect when a GPU backend is in use (the equivalent
// constant is baked into the embedded shader's uniform layout).
func WithFeatherWidth(width float64) RendererOption {
	return func(r *Renderer) {
		if r.software != nil {
			r.software.FeatherWidth = width
		}
	}
}

// WithBackground overrides the color composited beneath fully
// transparent output pixels; software backend only.
func WithBackground(c RGBA) RendererOption {
	return func(r *Renderer) {
		if r.software != nil {
			r.software.Background = c
		}
	}
}

// WithWindowEffect enables the outer-window behavior: output pixels
// outside the window derived from each input view's originally
// captured resolution are filled with Background instead of raycast,
// so an outpainted layer's extended border doesn't show past the
// frame the viewer actually captured. Off by default; software
// backend only (the equivalent GPU-side gate is the shader's
// window_effect uniform).
func WithWindowEffect(enabled bool) RendererOption {
	return func(r *Renderer) {
		if r.software != nil {
			r.software.WindowEffect = enabled
		}
	}
}

// WithDrawDurationObserver registers a callback invoked after every
// Draw with the wall-clock seconds it took, for an embedding host to
// feed into its own metrics (see transport.Metrics for the sibling
// instrumentation on the chunked channel).
func WithDrawDurationObserver(observe func(seconds float64)) RendererOption {
	return func(r *Renderer) { r.drawDuration = observe }
}

// NewRenderer builds a Renderer over the given decoded input views,
// defaulting to software rendering until WithGPUBackend supplies a
// real device-backed renderer.
func NewRenderer(views []InputView, opts ...RendererOption) *Renderer {
	r := &Renderer{software: NewSoftwareRasterizer(views)}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Draw renders one frame into target. camL is always required; camR
// is non-nil only when rendering a stereo (two-eye) output, in which
// case both eyes are drawn before Draw returns.
func (r *Renderer) Draw(target render.RenderTarget, camL, camR *capture.RenderCamera, t float64) error {
	if camL == nil {
		return fmt.Errorf("raycast: left render camera is required")
	}

	if r.drawDuration != nil {
		start := time.Now()
		defer func() { r.drawDuration(time.Since(start).Seconds()) }()
	}

	if r.gpu != nil {
		return r.gpu.Draw(target, camL, camR, t)
	}

	pixmap, ok := target.(*render.PixmapTarget)
	if !ok {
		return fmt.Errorf("raycast: software rasterizer requires a *render.PixmapTarget, got %T", target)
	}

	if err := r.software.Render(pixmap, *camL); err != nil {
		return err
	}
	if camR != nil {
		if err := r.software.Render(pixmap, *camR); err != nil {
			return err
		}
	}
	return nil
}

// Close releases the active GPU backend, if any; a no-op when
// rendering in software.
func (r *Renderer) Close() error {
	if r.gpu != nil {
		return r.gpu.Close()
	}
	return nil
}
