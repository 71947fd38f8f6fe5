package raycast

import (
	"math"
	"testing"

	"github.com/gogpu/ldi/camera"
)

func TestNewProjectionFrame_IdenticalCamerasIsIdentityLike(t *testing.T) {
	fskr := camera.ComposeFSKR(camera.MFocal(500, 500), camera.MSkew(0, 0), camera.MRoll(0), camera.MSlant(0, 0))
	pos := camera.V3(0, 0, 0)

	frame := newProjectionFrame(fskr, pos, fskr, pos)
	if !frame.valid {
		t.Fatal("frame should be valid for a well-conditioned FSKR")
	}

	u, v := frame.s1(0.1, 0.2, 1.0)
	if math.Abs(u-0.1) > 1e-6 || math.Abs(v-0.2) > 1e-6 {
		t.Errorf("s1() with identical cameras = (%v, %v), want (0.1, 0.2)", u, v)
	}
}

func TestNewProjectionFrame_SingularFSKR(t *testing.T) {
	zero := camera.Matrix3{}
	pos := camera.V3(0, 0, 0)
	frame := newProjectionFrame(zero, pos, zero, pos)
	if frame.valid {
		t.Error("frame should be invalid when FSKR2 is singular")
	}
}

func TestProjectionFrame_TranslationShiftsOrigin(t *testing.T) {
	fskr := camera.ComposeFSKR(camera.MFocal(500, 500), camera.MSkew(0, 0), camera.MRoll(0), camera.MSlant(0, 0))
	pos1 := camera.V3(0, 0, 0)
	pos2 := camera.V3(1, 0, 0)

	frame := newProjectionFrame(fskr, pos1, fskr, pos2)
	if !frame.valid {
		t.Fatal("expected valid frame")
	}
	if frame.C.X == 0 {
		t.Error("C.X should be nonzero when views are translated along X")
	}
}
