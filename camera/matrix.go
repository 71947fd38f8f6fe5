package camera

import "math"

// SingularThreshold is the determinant magnitude below which a Matrix3
// is treated as non-invertible rather than producing a numerically
// unstable inverse.
const SingularThreshold = 1e-6

// Matrix3 is a 3x3 matrix in row-major order: Rows[r][c].
//
// Matrix3 composes a view's focal scaling, frustum skew, roll, and
// slant into the single "FSKR" transform the raycaster needs, and
// inverts it to project between two views' pixel coordinate systems.
type Matrix3 [3][3]float64

// Identity3 returns the 3x3 identity matrix.
func Identity3() Matrix3 {
	return Matrix3{
		{1, 0, 0},
		{0, 1, 0},
		{0, 0, 1},
	}
}

// MSlant builds the orthonormalized rotation derived from tangent-space
// slant (slX, slY). Columns are
// (1/sqrt(1+slX^2), 0, -slX*inv), (0, 1/sqrt(1+slY^2), -slY*inv),
// (slX*inv, slY*inv, inv), where inv = 1/sqrt(1+slX^2+slY^2).
func MSlant(slX, slY float64) Matrix3 {
	inv := 1 / math.Sqrt(1+slX*slX+slY*slY)
	invX := 1 / math.Sqrt(1+slX*slX)
	invY := 1 / math.Sqrt(1+slY*slY)
	return Matrix3{
		{invX, 0, slX * inv},
		{0, invY, slY * inv},
		{-slX * inv, -slY * inv, inv},
	}
}

// MRoll builds a 2D rotation by thetaDeg degrees, embedded in 3x3.
func MRoll(thetaDeg float64) Matrix3 {
	rad := thetaDeg * math.Pi / 180
	c, s := math.Cos(rad), math.Sin(rad)
	return Matrix3{
		{c, -s, 0},
		{s, c, 0},
		{0, 0, 1},
	}
}

// MSkew builds the frustum skew matrix: identity with (-skX, -skY, 1)
// in the third column.
func MSkew(skX, skY float64) Matrix3 {
	return Matrix3{
		{1, 0, -skX},
		{0, 1, -skY},
		{0, 0, 1},
	}
}

// MFocal builds a diagonal scaling matrix for focal length (fX, fY).
func MFocal(fX, fY float64) Matrix3 {
	return Matrix3{
		{fX, 0, 0},
		{0, fY, 0},
		{0, 0, 1},
	}
}

// Mul returns m * other.
func (m Matrix3) Mul(other Matrix3) Matrix3 {
	var r Matrix3
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			r[i][j] = m[i][0]*other[0][j] + m[i][1]*other[1][j] + m[i][2]*other[2][j]
		}
	}
	return r
}

// MulVec3 applies m to v, treating v as a column vector.
func (m Matrix3) MulVec3(v Vec3) Vec3 {
	return Vec3{
		X: m[0][0]*v.X + m[0][1]*v.Y + m[0][2]*v.Z,
		Y: m[1][0]*v.X + m[1][1]*v.Y + m[1][2]*v.Z,
		Z: m[2][0]*v.X + m[2][1]*v.Y + m[2][2]*v.Z,
	}
}

// Determinant computes det(m) as a dot product of the first row with
// its cofactor minors.
func (m Matrix3) Determinant() float64 {
	minor0 := m[1][1]*m[2][2] - m[1][2]*m[2][1]
	minor1 := m[1][0]*m[2][2] - m[1][2]*m[2][0]
	minor2 := m[1][0]*m[2][1] - m[1][1]*m[2][0]
	return m[0][0]*minor0 - m[0][1]*minor1 + m[0][2]*minor2
}

// Invert computes the inverse of m via the adjugate formula. ok is
// false when |det(m)| < [SingularThreshold]; callers must not use the
// returned matrix in that case (the raycaster instead clamps affected
// pixels to zero confidence rather than dividing by a near-zero det).
func (m Matrix3) Invert() (inv Matrix3, ok bool) {
	det := m.Determinant()
	if math.Abs(det) < SingularThreshold {
		return Matrix3{}, false
	}
	invDet := 1 / det

	cofactor := func(r0, r1, c0, c1 int) float64 {
		return m[r0][c0]*m[r1][c1] - m[r0][c1]*m[r1][c0]
	}

	// Adjugate = transpose of the cofactor matrix.
	inv[0][0] = cofactor(1, 2, 1, 2) * invDet
	inv[0][1] = -cofactor(0, 2, 1, 2) * invDet
	inv[0][2] = cofactor(0, 1, 1, 2) * invDet
	inv[1][0] = -cofactor(1, 2, 0, 2) * invDet
	inv[1][1] = cofactor(0, 2, 0, 2) * invDet
	inv[1][2] = -cofactor(0, 1, 0, 2) * invDet
	inv[2][0] = cofactor(1, 2, 0, 1) * invDet
	inv[2][1] = -cofactor(0, 2, 0, 1) * invDet
	inv[2][2] = cofactor(0, 1, 0, 1) * invDet

	return inv, true
}

// ComposeFSKR composes a layer's focal, skew, roll, and slant matrices
// into the single transform the raycaster needs: FSKR = Focal * Skew *
// Roll * Slant.
func ComposeFSKR(focal, skew, roll, slant Matrix3) Matrix3 {
	return focal.Mul(skew).Mul(roll).Mul(slant)
}
