package camera

import "math"

// Quaternion represents a 3D rotation in the (x, y, z, w) convention.
type Quaternion struct {
	X, Y, Z, W float64
}

// IdentityQuaternion returns the identity rotation.
func IdentityQuaternion() Quaternion {
	return Quaternion{W: 1}
}

// Mul returns q composed with r, applying r first then q (q * r).
func (q Quaternion) Mul(r Quaternion) Quaternion {
	return Quaternion{
		X: q.W*r.X + q.X*r.W + q.Y*r.Z - q.Z*r.Y,
		Y: q.W*r.Y - q.X*r.Z + q.Y*r.W + q.Z*r.X,
		Z: q.W*r.Z + q.X*r.Y - q.Y*r.X + q.Z*r.W,
		W: q.W*r.W - q.X*r.X - q.Y*r.Y - q.Z*r.Z,
	}
}

// Inverse returns the inverse rotation. Assumes q is (close to) unit
// length, as every quaternion this package handles originates from an
// XR pose or camera orientation.
func (q Quaternion) Inverse() Quaternion {
	normSq := q.X*q.X + q.Y*q.Y + q.Z*q.Z + q.W*q.W
	if normSq == 0 {
		return IdentityQuaternion()
	}
	inv := 1 / normSq
	return Quaternion{X: -q.X * inv, Y: -q.Y * inv, Z: -q.Z * inv, W: q.W * inv}
}

// RotateVec rotates v by q.
func (q Quaternion) RotateVec(v Vec3) Vec3 {
	qv := Vec3{X: q.X, Y: q.Y, Z: q.Z}
	uv := qv.Cross(v)
	uuv := qv.Cross(uv)
	return v.Add(uv.Scale(2 * q.W)).Add(uuv.Scale(2))
}

// EulerYXZ returns the yaw (Y), pitch (X), and roll (Z) angles, in
// radians, of a Y-X-Z intrinsic Euler decomposition of q. Used by the
// VR-mode convergence plane derivation to strip roll from a pose's
// orientation while preserving yaw and pitch.
func (q Quaternion) EulerYXZ() (yaw, pitch, roll float64) {
	// Build the rotation matrix and extract angles from its entries,
	// following the standard Y-X-Z decomposition.
	x, y, z, w := q.X, q.Y, q.Z, q.W

	m20 := 2 * (x*z + y*w)
	m21 := 2 * (y*z - x*w)
	m22 := 1 - 2*(x*x+y*y)
	m00 := 1 - 2*(y*y+z*z)
	m10 := 2 * (x*y + z*w)

	pitch = math.Asin(clamp(-m21, -1, 1))
	if math.Abs(m21) < 0.9999999 {
		yaw = math.Atan2(m20, m22)
		roll = math.Atan2(m10, 1-2*(x*x+z*z))
	} else {
		// Gimbal lock: fold yaw and roll into a single degree of freedom.
		yaw = math.Atan2(-2*(x*z-y*w), 1-2*(y*y+z*z))
		roll = 0
	}
	_ = m00
	return yaw, pitch, roll
}

// FromEulerYXZ builds a quaternion from yaw (Y), pitch (X), and roll (Z)
// angles in radians, applied in that intrinsic order.
func FromEulerYXZ(yaw, pitch, roll float64) Quaternion {
	qy := Quaternion{Y: math.Sin(yaw / 2), W: math.Cos(yaw / 2)}
	qx := Quaternion{X: math.Sin(pitch / 2), W: math.Cos(pitch / 2)}
	qz := Quaternion{Z: math.Sin(roll / 2), W: math.Cos(roll / 2)}
	return qy.Mul(qx).Mul(qz)
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
