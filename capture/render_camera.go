package capture

import "github.com/gogpu/ldi/camera"

// RenderCamera is the per-frame camera the Renderer Core consumes: a
// position plus the same slant/skew/roll/focal shape a captured View
// carries, so the same camera.Matrix3 composition (see camera.ComposeFSKR)
// applies to both captured and synthesized views.
type RenderCamera struct {
	Position    camera.Vec3
	Slant       camera.Vec2
	Skew        camera.Vec2
	RollDegrees float64
	FocalPx     float64
}

// FSKR composes this camera's focal/skew/roll/slant matrices into the
// single transform the raycaster's per-pixel projection needs.
func (c RenderCamera) FSKR() camera.Matrix3 {
	return camera.ComposeFSKR(
		camera.MFocal(c.FocalPx, c.FocalPx),
		camera.MSkew(c.Skew.X, c.Skew.Y),
		camera.MRoll(c.RollDegrees),
		camera.MSlant(c.Slant.X, c.Slant.Y),
	)
}

// ConvergencePlane is the virtual display plane the XR Session Manager
// derives from the two XR sub-cameras; the Scene Host positions its
// quads to match it every frame.
type ConvergencePlane struct {
	Center      camera.Vec3
	Orientation camera.Quaternion
	WidthWorld  float64
	HeightWorld float64
}

// ToLocal transforms a world-space point into this plane's local
// frame: translate to the plane center, then rotate by the inverse of
// the plane's orientation.
func (p ConvergencePlane) ToLocal(worldPoint camera.Vec3) camera.Vec3 {
	return p.Orientation.Inverse().RotateVec(worldPoint.Sub(p.Center))
}
