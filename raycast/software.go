package raycast

import (
	"image/color"

	"github.com/gogpu/ldi/capture"
	"github.com/gogpu/ldi/render"
)

// nrgbaImage adapts *image.NRGBA (via the minimal getter pair) to
// nrgbaSampler so color.go's sampler stays free of an image import.
type nrgbaImage struct {
	pix           []uint8
	stride        int
	width, height int
}

func newNRGBAImage(pix []uint8, stride, width, height int) nrgbaImage {
	return nrgbaImage{pix: pix, stride: stride, width: width, height: height}
}

func (im nrgbaImage) Dim() (int, int) { return im.width, im.height }

func (im nrgbaImage) At(x, y int) color.NRGBA {
	i := y*im.stride + x*4
	if i < 0 || i+3 >= len(im.pix) {
		return color.NRGBA{}
	}
	return color.NRGBA{R: im.pix[i], G: im.pix[i+1], B: im.pix[i+2], A: im.pix[i+3]}
}

// SoftwareRasterizer renders novel views from one or two InputViews by
// running the shared per-pixel raycast algorithm directly on the CPU.
// backend/wgpu's GPU shader follows the same march/compose structure
// but does not reproduce this path pixel for pixel (its stereo blend,
// refine and feathering differ); the rasterizer exists for headless
// hosts (no GPU adapter available) and for deterministic testing.
type SoftwareRasterizer struct {
	Views []InputView

	// FeatherWidth is the normalized input-view edge width (in [0,1]
	// units of image size) over which layer contribution tapers to
	// zero near the image border.
	FeatherWidth float64

	// MaskDilateRadius widens a layer mask's valid region outward by
	// this many normalized units before windowing.
	MaskDilateRadius float64

	// Background is composited under the accumulated foreground
	// wherever the layer stack leaves a pixel transparent.
	Background RGBA

	// WindowEffect gates the outer-window behavior: when true, output
	// pixels outside the window derived from each view's
	// OriginalWidth/OriginalHeight are filled with Background directly
	// rather than raycast, so an outpainted layer's hallucinated
	// border doesn't show past the originally captured frame.
	WindowEffect bool
}

// NewSoftwareRasterizer builds a rasterizer over 1 or 2 input views,
// with sane feathering defaults.
func NewSoftwareRasterizer(views []InputView) *SoftwareRasterizer {
	return &SoftwareRasterizer{
		Views:            views,
		FeatherWidth:     0.02,
		MaskDilateRadius: 0.01,
		Background:       RGBA{A: 0},
	}
}

// Render rasterizes a single output eye into target using outCam's
// composed camera matrix and position. It implements all four
// input/output-count pipeline variants uniformly: the march always
// runs once per input view, and results from multiple input views are
// blended via stereoBlendWeight; a mono input simply has nothing to
// blend against.
func (r *SoftwareRasterizer) Render(target *render.PixmapTarget, outCam capture.RenderCamera) error {
	w, h := target.Width(), target.Height()
	fskrOut := outCam.FSKR()

	frames := make([]projectionFrame, len(r.Views))
	for i, iv := range r.Views {
		frames[i] = newProjectionFrame(iv.FSKR, iv.Position, fskrOut, outCam.Position)
	}

	for y := 0; y < h; y++ {
		s2y := (float64(y)+0.5)/float64(h) - 0.5
		for x := 0; x < w; x++ {
			s2x := (float64(x)+0.5)/float64(w) - 0.5

			px := r.shadePixel(frames, s2x, s2y, w, h)
			r.writePixel(target, x, y, px)
		}
	}
	return nil
}

// shadePixel runs the full per-pixel algorithm for one output pixel:
// per-input-view coarse march (+ binary refine once a second input
// view is present), front-to-back layer composition, stereo blend
// across input views, and background compositing.
func (r *SoftwareRasterizer) shadePixel(frames []projectionFrame, s2x, s2y float64, outW, outH int) RGBA {
	type viewResult struct {
		color      RGBA
		stretched  bool
		projU      float64
		projV      float64
		hit        bool
	}

	results := make([]viewResult, len(r.Views))
	nCoarse := NCoarseMN
	if len(r.Views) > 1 {
		nCoarse = NCoarseST
	}

	for i, iv := range r.Views {
		frame := frames[i]
		if !frame.valid {
			continue
		}
		if r.WindowEffect && outsideWindow(iv, s2x, s2y, outW, outH) {
			continue
		}

		var samples []RGBA
		var lastHit marchHit
		var gotHit bool

		for li := len(iv.Layers) - 1; li >= 0; li-- {
			layer := iv.Layers[li]
			colorImg := newNRGBAImage(layer.Color.Pix, layer.Color.Stride, layer.Color.Rect.Dx(), layer.Color.Rect.Dy())
			invZImg := newNRGBAImage(layer.InvZ.Pix, layer.InvZ.Stride, layer.InvZ.Rect.Dx(), layer.InvZ.Rect.Dy())

			sampleInvZ := func(u, v float64) float64 {
				c := sampleNearest(invZImg, u, v)
				return layer.Max + (layer.Min-layer.Max)*c.R
			}

			hit, ok := coarseMarch(frame, layer, s2x, s2y, nCoarse, sampleInvZ)
			if !ok {
				continue
			}

			if len(r.Views) > 1 {
				lo, hi := hit.InvZ+((layer.Max-layer.Min)/float64(nCoarse)), hit.InvZ-((layer.Max-layer.Min)/float64(nCoarse))
				u, v, invZ := binaryRefine(frame, s2x, s2y, lo, hi, sampleInvZ)
				hit.U, hit.V, hit.InvZ = u, v, invZ
			}

			sampled := sampleNearest(colorImg, hit.U, hit.V)
			sampleAlpha := func(u, v float64) float64 { return sampleNearest(colorImg, u, v).A }
			weight := taper(hit.U, hit.V, r.FeatherWidth) * maskDilated(sampleAlpha, hit.U, hit.V, r.MaskDilateRadius)
			sampled = sampled.Scale(weight)

			samples = append(samples, sampled)
			lastHit = hit
			gotHit = true
		}

		if !gotHit {
			continue
		}

		// samples was built farthest-first (the march above walks layer
		// indices from back to front so lastHit ends on the nearest
		// hit); composeLayers expects front-to-back order, so reverse
		// before composing.
		for lo, hi := 0, len(samples)-1; lo < hi; lo, hi = lo+1, hi-1 {
			samples[lo], samples[hi] = samples[hi], samples[lo]
		}

		results[i] = viewResult{
			color:     composeLayers(samples),
			stretched: lastHit.Stretched,
			projU:     lastHit.U,
			projV:     lastHit.V,
			hit:       true,
		}
	}

	var fg RGBA
	switch {
	case len(results) == 2 && results[0].hit && results[1].hit:
		disparity := results[0].projU - results[1].projU
		fg = blendStereo(results[0].color, results[1].color, disparity, results[0].stretched, results[1].stretched)
	case len(results) >= 1 && results[0].hit:
		fg = results[0].color
	case len(results) == 2 && results[1].hit:
		fg = results[1].color
	default:
		fg = RGBA{}
	}

	return composeBackground(fg, r.Background)
}

// outsideWindow reports whether output pixel (s2x,s2y) falls outside
// the outer window spec.md's feathering-and-windowing rule derives
// from iv's originally captured resolution: the window is centered on
// the frame and scaled so its smaller axis matches
// min(OriginalWidth,OriginalHeight)/min(outW,outH) — a view captured
// at a lower resolution than the current output has correspondingly
// less authentic (non-outpainted) content to show, so the window
// shrinks rather than stretching hallucinated fill across the whole
// frame. A view whose OriginalWidth or OriginalHeight is zero never
// windows.
func outsideWindow(iv InputView, s2x, s2y float64, outW, outH int) bool {
	if iv.OriginalWidth <= 0 || iv.OriginalHeight <= 0 {
		return false
	}
	minOut := outW
	if outH < minOut {
		minOut = outH
	}
	minOrig := iv.OriginalWidth
	if iv.OriginalHeight < minOrig {
		minOrig = iv.OriginalHeight
	}
	half := 0.5 * float64(minOrig) / float64(minOut)
	if half >= 0.5 {
		return false
	}
	return s2x < -half || s2x > half || s2y < -half || s2y > half
}

func (r *SoftwareRasterizer) writePixel(target *render.PixmapTarget, x, y int, px RGBA) {
	premult := px.Premultiply()
	target.SetPixel(x, y, color.RGBA{
		R: uint8(clamp01(premult.R) * 255),
		G: uint8(clamp01(premult.G) * 255),
		B: uint8(clamp01(premult.B) * 255),
		A: uint8(clamp01(premult.A) * 255),
	})
}
