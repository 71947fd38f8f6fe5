package xr

import "math"

// MaxTexSide caps the longer side of a VR-mode per-eye canvas.
const MaxTexSide = 1920

// CanvasSize is the per-eye offscreen framebuffer dimensions the
// session derives each time sizing-relevant inputs change.
type CanvasSize struct {
	Width  int
	Height int
}

// deriveCanvasSize computes the per-eye canvas for either derivation
// mode: 3D mode fits the convergence plane's aspect into the XR
// viewport; VR mode caps the longer side at MaxTexSide, preserving the
// input view's aspect.
func deriveCanvasSize(mode planeMode, planeW, planeH float64, viewportW, viewportH int, viewAspect float64) CanvasSize {
	if mode == modeVR {
		if viewAspect <= 0 {
			viewAspect = 1
		}
		if viewAspect >= 1 {
			return CanvasSize{Width: MaxTexSide, Height: int(math.Round(float64(MaxTexSide) / viewAspect))}
		}
		return CanvasSize{Width: int(math.Round(float64(MaxTexSide) * viewAspect)), Height: MaxTexSide}
	}

	if planeW <= 0 || planeH <= 0 {
		return CanvasSize{Width: viewportW, Height: viewportH}
	}

	scaleW := float64(viewportW) / planeW
	scaleH := float64(viewportH) / planeH
	scale := scaleW
	if scaleH < scale {
		scale = scaleH
	}

	return CanvasSize{
		Width:  int(math.Round(planeW * scale)),
		Height: int(math.Round(planeH * scale)),
	}
}
