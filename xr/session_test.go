package xr

import (
	"testing"

	"github.com/gogpu/ldi/camera"
	"github.com/gogpu/ldi/capture"
)

func testCapture() *capture.Capture {
	return &capture.Capture{
		Views: []capture.View{
			{
				WidthPx:  1024,
				HeightPx: 1024,
				FocalPx:  1000,
				Layers: []capture.Layer{
					{WidthPx: 1024, HeightPx: 1024, InvZMap: capture.InvZMap{Min: 1.0, Max: 0.1}},
				},
			},
		},
	}
}

func stereoXRCams() (left, right XRCamera) {
	left = XRCamera{
		Position:   camera.V3(-0.03, 0, 0),
		Quaternion: camera.IdentityQuaternion(),
		Projection: Projection{M00: 1, M05: 1, M08: 0.1, M09: 0},
	}
	right = XRCamera{
		Position:   camera.V3(0.03, 0, 0),
		Quaternion: camera.IdentityQuaternion(),
		Projection: Projection{M00: 1, M05: 1, M08: -0.1, M09: 0},
	}
	return
}

func TestNewSession_RequiresCapture(t *testing.T) {
	if _, err := NewSession(nil); err != ErrNoCapture {
		t.Errorf("NewSession(nil) error = %v, want ErrNoCapture", err)
	}
}

func TestSession_OnFrame_AdvancesIdleToRunning(t *testing.T) {
	s, err := NewSession(testCapture())
	if err != nil {
		t.Fatalf("NewSession() error = %v", err)
	}
	left, right := stereoXRCams()
	viewport := ViewportSize{Width: 1000, Height: 1000}

	if _, _, err := s.OnFrame(left, right, viewport, GamepadState{}, 0); err != nil {
		t.Fatalf("OnFrame() error = %v", err)
	}
	if s.State() != Initializing {
		t.Errorf("state after first frame = %v, want Initializing", s.State())
	}

	if _, _, err := s.OnFrame(left, right, viewport, GamepadState{}, 1.0/90); err != nil {
		t.Fatalf("OnFrame() error = %v", err)
	}
	if s.State() != Running {
		t.Errorf("state after second frame = %v, want Running", s.State())
	}
}

func TestSession_OnFrame_AfterEndReturnsError(t *testing.T) {
	s, _ := NewSession(testCapture())
	s.End()

	left, right := stereoXRCams()
	if _, _, err := s.OnFrame(left, right, ViewportSize{Width: 100, Height: 100}, GamepadState{}, 0); err != ErrSessionEnded {
		t.Errorf("OnFrame() after End() error = %v, want ErrSessionEnded", err)
	}
}

func TestSession_PausedSkipsDraws(t *testing.T) {
	s, _ := NewSession(testCapture())
	left, right := stereoXRCams()
	viewport := ViewportSize{Width: 1000, Height: 1000}

	s.OnFrame(left, right, viewport, GamepadState{}, 0)
	s.OnFrame(left, right, viewport, GamepadState{}, 1.0/90)
	if s.State() != Running {
		t.Fatalf("precondition: state = %v, want Running", s.State())
	}

	s.Blur()
	if s.State() != Paused {
		t.Fatalf("state after Blur() = %v, want Paused", s.State())
	}

	camL, camR, err := s.OnFrame(left, right, viewport, GamepadState{}, 2.0/90)
	if err != nil {
		t.Fatalf("OnFrame() while paused error = %v", err)
	}
	if camL != (capture.RenderCamera{}) || camR != (capture.RenderCamera{}) {
		t.Error("OnFrame() while paused should return zero-value cameras")
	}

	s.Resume()
	if s.State() != Running {
		t.Errorf("state after Resume() = %v, want Running", s.State())
	}
}

func TestSession_ResetIsEdgeTriggered(t *testing.T) {
	s, _ := NewSession(testCapture())
	left, right := stereoXRCams()
	viewport := ViewportSize{Width: 1000, Height: 1000}

	s.OnFrame(left, right, viewport, GamepadState{}, 0)
	s.OnFrame(left, right, viewport, GamepadState{}, 1.0/90)

	planeBefore := s.ConvergencePlane()

	// Holding the button across two frames should only reset once, on
	// the false->true edge. The eyes move before each of those frames,
	// so every reset shows up as a new plane center.
	gp := GamepadState{Buttons: []bool{false, false, false, false, true}}
	shift := camera.V3(1, 0, 0)
	left.Position, right.Position = left.Position.Add(shift), right.Position.Add(shift)
	s.OnFrame(left, right, viewport, gp, 2.0/90)

	planeAfterEdge := s.ConvergencePlane()
	if planeAfterEdge.Center == planeBefore.Center {
		t.Errorf("plane center unchanged after the button's press edge, want a reset")
	}

	left.Position, right.Position = left.Position.Add(shift), right.Position.Add(shift)
	s.OnFrame(left, right, viewport, gp, 3.0/90)

	if got := s.ConvergencePlane().Center; got != planeAfterEdge.Center {
		t.Errorf("plane center = %v while the button is held, want %v (no second reset)", got, planeAfterEdge.Center)
	}
}

func TestSession_FirstDrawClock(t *testing.T) {
	s, _ := NewSession(testCapture())
	left, right := stereoXRCams()
	viewport := ViewportSize{Width: 1000, Height: 1000}

	if _, ok := s.FirstDrawClock(); ok {
		t.Error("FirstDrawClock() should report false before any Running frame")
	}

	s.OnFrame(left, right, viewport, GamepadState{}, 0)
	s.OnFrame(left, right, viewport, GamepadState{}, 5.0)

	clock, ok := s.FirstDrawClock()
	if !ok {
		t.Fatal("FirstDrawClock() should report true after a Running frame")
	}
	if clock != 5.0 {
		t.Errorf("FirstDrawClock() = %v, want 5.0", clock)
	}
}
