package host

import (
	"github.com/gogpu/ldi/camera"
	"github.com/gogpu/ldi/capture"
	"github.com/gogpu/ldi/gpucore"
)

// Quad is one eye's textured plane in the Scene Host: positioned,
// oriented, and scaled to match the XR session's convergence plane
// every frame, and textured by that eye's offscreen render canvas.
type Quad struct {
	// Texture is the eye's offscreen render canvas, uploaded by the
	// raycaster each frame; zero value means nothing has been drawn
	// yet.
	Texture gpucore.TextureID

	// Position, Orientation, Width, and Height mirror the convergence
	// plane's world-space placement (see capture.ConvergencePlane).
	Position    camera.Vec3
	Orientation camera.Quaternion
	Width       float64
	Height      float64

	// Alpha is the quad's current opacity, driven by FadeIn.
	Alpha float32
}

// alignToPlane updates the quad's placement from the session's
// current convergence plane.
func (q *Quad) alignToPlane(plane capture.ConvergencePlane) {
	q.Position = plane.Center
	q.Orientation = plane.Orientation
	q.Width = plane.WidthWorld
	q.Height = plane.HeightWorld
}
