package xr

import (
	"testing"

	"github.com/gogpu/ldi/camera"
	"github.com/gogpu/ldi/capture"
)

func identityPlane() capture.ConvergencePlane {
	return capture.ConvergencePlane{
		Center:      camera.V3(0, 0, 0),
		Orientation: camera.IdentityQuaternion(),
		WidthWorld:  1,
		HeightWorld: 1,
	}
}

func TestUpdateRenderCamera_CenteredEyeYieldsZeroSkew(t *testing.T) {
	plane := identityPlane()
	frame := eyeFrame{IPD: 0.06, InitialY: 0, InitialZ: 0}
	eye := XRCamera{Position: camera.V3(0, 0, 0)}

	cam := updateRenderCamera(eye, plane, frame, 1.0, 1.0, 1000, 1.0, 1.0)
	if cam.Skew.X != 0 || cam.Skew.Y != 0 {
		t.Errorf("Skew = %+v, want zero for a centered eye", cam.Skew)
	}
}

func TestUpdateRenderCamera_OffsetEyeProducesPositionScaledByIPD(t *testing.T) {
	plane := identityPlane()
	frame := eyeFrame{IPD: 0.06, InitialY: 0, InitialZ: 0}
	eye := XRCamera{Position: camera.V3(0.03, 0, 0)}

	cam := updateRenderCamera(eye, plane, frame, 1.0, 1.0, 1000, 1.0, 1.0)
	want := 0.03 / 0.06
	if diff := cam.Position.X - want; diff > 1e-9 || diff < -1e-9 {
		t.Errorf("Position.X = %v, want %v", cam.Position.X, want)
	}
}

func TestUpdateRenderCamera_ZeroIPDDoesNotPanic(t *testing.T) {
	plane := identityPlane()
	frame := eyeFrame{IPD: 0, InitialY: 0, InitialZ: 0}
	eye := XRCamera{Position: camera.V3(0.03, 0, 0)}

	defer func() {
		if r := recover(); r != nil {
			t.Fatalf("updateRenderCamera panicked with zero IPD: %v", r)
		}
	}()
	updateRenderCamera(eye, plane, frame, 1.0, 1.0, 1000, 1.0, 1.0)
}
