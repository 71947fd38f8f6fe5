package camera

import (
	"math"
	"testing"
)

func approxVec3(a, b Vec3, eps float64) bool {
	return math.Abs(a.X-b.X) < eps && math.Abs(a.Y-b.Y) < eps && math.Abs(a.Z-b.Z) < eps
}

func TestVec3_Add(t *testing.T) {
	tests := []struct {
		name   string
		v, w   Vec3
		expect Vec3
	}{
		{"zero+zero", V3(0, 0, 0), V3(0, 0, 0), V3(0, 0, 0)},
		{"positive", V3(1, 2, 3), V3(4, 5, 6), V3(5, 7, 9)},
		{"negative", V3(-1, -2, -3), V3(-1, -1, -1), V3(-2, -3, -4)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.v.Add(tt.w)
			if !approxVec3(got, tt.expect, 1e-10) {
				t.Errorf("%v.Add(%v) = %v, want %v", tt.v, tt.w, got, tt.expect)
			}
		})
	}
}

func TestVec3_Sub(t *testing.T) {
	got := V3(5, 7, 9).Sub(V3(1, 2, 3))
	want := V3(4, 5, 6)
	if !approxVec3(got, want, 1e-10) {
		t.Errorf("Sub = %v, want %v", got, want)
	}
}

func TestVec3_Cross(t *testing.T) {
	x := V3(1, 0, 0)
	y := V3(0, 1, 0)
	z := V3(0, 0, 1)
	if got := x.Cross(y); !approxVec3(got, z, 1e-10) {
		t.Errorf("X cross Y = %v, want %v", got, z)
	}
}

func TestVec3_Dot(t *testing.T) {
	if got := V3(1, 2, 3).Dot(V3(4, 5, 6)); got != 32 {
		t.Errorf("Dot = %v, want 32", got)
	}
}

func TestVec3_Length(t *testing.T) {
	if got := V3(3, 4, 0).Length(); math.Abs(got-5) > 1e-10 {
		t.Errorf("Length = %v, want 5", got)
	}
}

func TestVec3_Normalize(t *testing.T) {
	got := V3(3, 4, 0).Normalize()
	if math.Abs(got.Length()-1) > 1e-10 {
		t.Errorf("Normalize length = %v, want 1", got.Length())
	}

	zero := Vec3{}.Normalize()
	if zero != (Vec3{}) {
		t.Errorf("Normalize of zero vector = %v, want zero", zero)
	}
}

func TestVec2_Add(t *testing.T) {
	got := V2(1, 2).Add(V2(3, 4))
	want := V2(4, 6)
	if got != want {
		t.Errorf("Add = %v, want %v", got, want)
	}
}

func TestVec2_Length(t *testing.T) {
	if got := V2(3, 4).Length(); math.Abs(got-5) > 1e-10 {
		t.Errorf("Length = %v, want 5", got)
	}
}
