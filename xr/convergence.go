package xr

import (
	"math"

	"github.com/gogpu/ldi/camera"
	"github.com/gogpu/ldi/capture"
)

// denominatorThreshold is the minimum absolute value the convergence
// solve's linear-system denominator may have before the session falls
// back to VR mode (no finite convergence, or a mirror-symmetric
// frustum pair some OpenXR runtimes report).
const denominatorThreshold = 1e-4

// planeMode records which derivation path produced a convergencePlane.
type planeMode int

const (
	modeFinite planeMode = iota
	modeVR
)

// deriveConvergencePlane computes the virtual display plane from two
// XR sub-cameras, following the FOV-tangent / linear-solve / VR-mode
// fallback derivation.
func deriveConvergencePlane(left, right XRCamera, invZMin, focus, viewWidthPx, focalPx float64) (capture.ConvergencePlane, planeMode) {
	lTanLeft, lTanRight, lTanDown, lTanUp := left.Projection.fovTangents()
	rTanLeft, rTanRight, _, _ := right.Projection.fovTangents()

	center := left.Position.Add(right.Position).Scale(0.5)

	// Transform both eye positions into the left eye's local frame.
	invLeftQ := left.Quaternion.Inverse()
	x0loc := invLeftQ.RotateVec(left.Position.Sub(center))
	x1loc := invLeftQ.RotateVec(right.Position.Sub(center))

	x0, z0 := x0loc.X, x0loc.Z
	x1, z1 := x1loc.X, x1loc.Z
	l0, r0 := lTanLeft, lTanRight
	l1, r1 := rTanLeft, rTanRight

	denom := (r1 - l1) - (r0 - l0)

	if math.Abs(denom) < denominatorThreshold {
		return deriveVRPlane(left, invZMin, focus, viewWidthPx, focalPx), modeVR
	}

	zd := (2*(x1-x0) + z1*(r1-l1) - z0*(r0-l0)) / denom
	xd := x0 - (r0-l0)*(zd-z0)/2
	yd := x0loc.Y - (lTanUp-lTanDown)*(zd-z0)/2

	width := (z0 - zd) * (l0 + r0)
	height := (z0 - zd) * (lTanUp + lTanDown)

	localCenter := camera.V3(xd, yd, zd)
	worldCenter := center.Add(left.Quaternion.RotateVec(localCenter))

	return capture.ConvergencePlane{
		Center:      worldCenter,
		Orientation: left.Quaternion,
		WidthWorld:  width,
		HeightWorld: height,
	}, modeFinite
}

// deriveVRPlane places the plane at a fixed distance ahead of the
// head, sized from the input view's aspect, with roll stripped from
// the orientation via a Y-X-Z Euler decomposition.
func deriveVRPlane(left XRCamera, invZMin, focus, viewWidthPx, focalPx float64) capture.ConvergencePlane {
	d := 0.063 / (invZMin * focus)

	yaw, pitch, _ := left.Quaternion.EulerYXZ()
	orientation := camera.FromEulerYXZ(yaw, pitch, 0)

	forward := orientation.RotateVec(camera.V3(0, 0, -1))
	center := left.Position.Add(forward.Scale(d))

	aspect := viewWidthPx / focalPx
	width := aspect * d
	height := d

	return capture.ConvergencePlane{
		Center:      center,
		Orientation: orientation,
		WidthWorld:  width,
		HeightWorld: height,
	}
}
