// Package raycast implements the Layered Depth Image per-pixel
// raycast algorithm shared by all four (input-view-count x
// output-view-count) pipeline variants, plus a software rasterizer
// that runs it directly on the CPU for headless hosts and tests. A
// GPU variant of the algorithm lives in backend/wgpu's embedded WGSL
// shader; it does not reproduce every formula in this package, so a
// CPU and GPU render of the same frame can differ.
package raycast

import (
	"image"

	"github.com/gogpu/ldi/camera"
	"github.com/gogpu/ldi/capture"
)

// InputLayer is one decoded LDI layer ready for raycasting: its color
// and inverse-depth pixel buffers plus the depth range they were
// normalized against (Min is the nearest inverse depth, Max the
// farthest; Min > Max).
type InputLayer struct {
	Color *image.NRGBA
	InvZ  *image.NRGBA
	Min   float64
	Max   float64
}

// InputView is one captured vantage the raycaster projects from: its
// composed camera matrix, world position, and front-to-back layers.
type InputView struct {
	FSKR     camera.Matrix3
	Position camera.Vec3
	Layers   []InputLayer

	// OriginalWidth and OriginalHeight are the view's pre-outpainting
	// resolution (capture.View.WidthPx/HeightPx), used to derive the
	// windowing rectangle: outpainted layers may carry a larger
	// WidthPx/HeightPx of their own, but the outer window is always
	// sized against the vantage's originally captured frame.
	OriginalWidth, OriginalHeight int
}

// NewInputView composes a capture.View's camera matrix and carries its
// decoded layers, pairing each capture.Layer with the color/invZ pixel
// buffers the Resource Manager already decoded (layersPixels must be
// the same length and order as v.Layers).
func NewInputView(v capture.View, layersPixels []InputLayer) InputView {
	fskr := camera.ComposeFSKR(
		camera.MFocal(v.FocalPx, v.FocalPx),
		camera.MSkew(v.FrustumSkew.X, v.FrustumSkew.Y),
		camera.MRoll(v.Rotation.RollDegrees),
		camera.MSlant(v.Rotation.Slant.X, v.Rotation.Slant.Y),
	)
	return InputView{
		FSKR:           fskr,
		Position:       v.Position,
		Layers:         layersPixels,
		OriginalWidth:  v.WidthPx,
		OriginalHeight: v.HeightPx,
	}
}

// RGBA is a straight (non-premultiplied) linear color accumulator used
// throughout the per-pixel algorithm; see color.go for blending.
// Kept distinct from the root package's RGBA (rather than imported)
// so this package never imports the root package, which composes
// raycast.Renderer itself.
type RGBA struct {
	R, G, B, A float64
}
