package camera

import (
	"math"
	"testing"
)

func TestIdentityQuaternion_RotatesNothing(t *testing.T) {
	v := V3(1, 2, 3)
	got := IdentityQuaternion().RotateVec(v)
	if !approxVec3(got, v, 1e-10) {
		t.Errorf("RotateVec(identity) = %v, want %v", got, v)
	}
}

func TestQuaternion_MulInverseIsIdentity(t *testing.T) {
	q := FromEulerYXZ(0.3, 0.2, 0.1)
	got := q.Mul(q.Inverse())
	id := IdentityQuaternion()
	if math.Abs(got.X-id.X) > 1e-9 || math.Abs(got.Y-id.Y) > 1e-9 ||
		math.Abs(got.Z-id.Z) > 1e-9 || math.Abs(got.W-id.W) > 1e-9 {
		t.Errorf("q * q.Inverse() = %v, want identity", got)
	}
}

func TestQuaternion_RotateVecAroundYaw(t *testing.T) {
	q := FromEulerYXZ(math.Pi/2, 0, 0)
	got := q.RotateVec(V3(0, 0, -1))
	want := V3(-1, 0, 0)
	if !approxVec3(got, want, 1e-9) {
		t.Errorf("90deg yaw rotate (0,0,-1) = %v, want %v", got, want)
	}
}

func TestQuaternion_EulerYXZRoundTrip(t *testing.T) {
	tests := []struct {
		name               string
		yaw, pitch, roll   float64
	}{
		{"zero", 0, 0, 0},
		{"small", 0.2, 0.1, 0.3},
		{"yaw only", 1.0, 0, 0},
		{"pitch only", 0, 0.5, 0},
		{"roll only", 0, 0, 0.7},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			q := FromEulerYXZ(tt.yaw, tt.pitch, tt.roll)
			yaw, pitch, roll := q.EulerYXZ()
			q2 := FromEulerYXZ(yaw, pitch, roll)

			// Compare by the effect on a probe vector rather than the
			// raw angles, since Euler decompositions are not unique at
			// the representation level.
			probe := V3(0.3, 0.4, 0.5)
			got := q.RotateVec(probe)
			want := q2.RotateVec(probe)
			if !approxVec3(got, want, 1e-6) {
				t.Errorf("round trip mismatch: rotate(%v)=%v, rotate(%v)=%v", probe, got, probe, want)
			}
		})
	}
}

func TestQuaternion_EulerYXZZeroesRoll(t *testing.T) {
	// VR-mode convergence plane derivation strips roll: rebuilding from
	// (yaw, pitch, 0) must still be a valid rotation with no residual
	// roll component.
	q := FromEulerYXZ(0.4, 0.2, 0.6)
	yaw, pitch, _ := q.EulerYXZ()
	stripped := FromEulerYXZ(yaw, pitch, 0)

	_, _, roll := stripped.EulerYXZ()
	if math.Abs(roll) > 1e-9 {
		t.Errorf("stripped quaternion has roll = %v, want 0", roll)
	}
}
