package raycast

import "github.com/gogpu/ldi/camera"

// projectionFrame is the constant part of the per-pixel projection
// between one input view and one output (render) camera: P = FSKR1 *
// inverse(FSKR2), C = FSKR1 * (C2 - C1). Computed once per
// (input view, output camera) pair, reused for every output pixel.
type projectionFrame struct {
	P camera.Matrix3
	C camera.Vec3

	// valid is false when FSKR2 was near-singular: every pixel using
	// this frame must be clamped to zero confidence rather than
	// projected with a garbage inverse.
	valid bool
}

// newProjectionFrame builds the projection frame from input view 1
// (fskr1, pos1) onto output camera 2 (fskr2, pos2).
func newProjectionFrame(fskr1 camera.Matrix3, pos1 camera.Vec3, fskr2 camera.Matrix3, pos2 camera.Vec3) projectionFrame {
	invFSKR2, ok := fskr2.Invert()
	if !ok {
		return projectionFrame{valid: false}
	}
	return projectionFrame{
		P:     fskr1.Mul(invFSKR2),
		C:     fskr1.MulVec3(pos2.Sub(pos1)),
		valid: true,
	}
}

// s1 computes the input-view pixel coordinate (in [-0.5,0.5]^2
// convention) as a function of hypothesized inverse depth invZ, for
// output pixel s2: s1(invZ) = C.xy*invZ + (1 - C.z*invZ) * (P_xy*s2 +
// P_xy_z) / (P_z_xy . s2 + P_zz).
func (f projectionFrame) s1(s2x, s2y, invZ float64) (x, y float64) {
	numX := f.P[0][0]*s2x + f.P[0][1]*s2y + f.P[0][2]
	numY := f.P[1][0]*s2x + f.P[1][1]*s2y + f.P[1][2]
	den := f.P[2][0]*s2x + f.P[2][1]*s2y + f.P[2][2]

	scale := (1 - f.C.Z*invZ) / den
	x = f.C.X*invZ + numX*scale
	y = f.C.Y*invZ + numY*scale
	return x, y
}

// invZ2 computes the hypothesized inverse depth as seen from the
// output camera's own frame: invZ * (P_z_xy . s2 + P_zz) / (1 -
// C.z*invZ). A hit is only valid when this is positive (the surface
// is in front of the output camera).
func (f projectionFrame) invZ2(s2x, s2y, invZ float64) float64 {
	den := f.P[2][0]*s2x + f.P[2][1]*s2y + f.P[2][2]
	return invZ * den / (1 - f.C.Z*invZ)
}
