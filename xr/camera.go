package xr

import "github.com/gogpu/ldi/camera"

// Projection holds the four projection-matrix elements the
// convergence-plane solver needs, named after their position in a
// column-major 4x4 XR projection matrix (indices 0, 5, 8, 9).
type Projection struct {
	M00 float64
	M05 float64
	M08 float64
	M09 float64
}

// fovTangents extracts the four symmetric-or-asymmetric FOV tangents
// from an XR projection matrix.
func (p Projection) fovTangents() (tanLeft, tanRight, tanDown, tanUp float64) {
	tanLeft = -(1 - p.M08) / p.M00
	tanRight = (1 + p.M08) / p.M00
	tanDown = -(1 - p.M09) / p.M05
	tanUp = (1 + p.M09) / p.M05
	return
}

// XRCamera is one eye's pose and projection as reported by the host's
// XR frame, in world coordinates.
type XRCamera struct {
	Position   camera.Vec3
	Quaternion camera.Quaternion
	Projection Projection
}

// GamepadState is the subset of an XR input source's gamepad the
// session reads: only button index 4 (left controller X button) is
// used, for the edge-triggered reset.
type GamepadState struct {
	Buttons []bool
}

// Button4Pressed reports whether gamepad button index 4 is currently
// held, treating a gamepad with fewer than 5 buttons as not pressed.
func (g GamepadState) Button4Pressed() bool {
	return len(g.Buttons) > 4 && g.Buttons[4]
}
