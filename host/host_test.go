package host

import (
	"testing"

	"github.com/gogpu/ldi/camera"
	"github.com/gogpu/ldi/capture"
	"github.com/gogpu/ldi/gpucore"
	"github.com/gogpu/ldi/xr"
)

func runningSession(t *testing.T) *xr.Session {
	t.Helper()
	cap := &capture.Capture{
		Views: []capture.View{
			{
				WidthPx: 1024, HeightPx: 1024, FocalPx: 1000,
				Layers: []capture.Layer{{InvZMap: capture.InvZMap{Min: 1.0, Max: 0.1}}},
			},
		},
	}
	sess, err := xr.NewSession(cap)
	if err != nil {
		t.Fatalf("NewSession() error = %v", err)
	}

	left := xr.XRCamera{
		Position:   camera.V3(-0.03, 0, 0),
		Quaternion: camera.IdentityQuaternion(),
		Projection: xr.Projection{M00: 1, M05: 1, M08: 0.1, M09: 0},
	}
	right := xr.XRCamera{
		Position:   camera.V3(0.03, 0, 0),
		Quaternion: camera.IdentityQuaternion(),
		Projection: xr.Projection{M00: 1, M05: 1, M08: -0.1, M09: 0},
	}
	viewport := xr.ViewportSize{Width: 1000, Height: 1000}

	if _, _, err := sess.OnFrame(left, right, viewport, xr.GamepadState{}, 0); err != nil {
		t.Fatalf("OnFrame() error = %v", err)
	}
	if _, _, err := sess.OnFrame(left, right, viewport, xr.GamepadState{}, 1.0/90); err != nil {
		t.Fatalf("OnFrame() error = %v", err)
	}
	return sess
}

func TestHost_UpdateAlignsQuadsWhenRunning(t *testing.T) {
	sess := runningSession(t)
	h := NewHost()

	h.Update(sess, gpucore.TextureID(1), gpucore.TextureID(2), 1.0/90)

	if !h.Visible() {
		t.Error("Visible() = false, want true once the session is Running")
	}
	if h.LeftQuad.Texture != gpucore.TextureID(1) {
		t.Errorf("LeftQuad.Texture = %v, want 1", h.LeftQuad.Texture)
	}
	if h.RightQuad.Texture != gpucore.TextureID(2) {
		t.Errorf("RightQuad.Texture = %v, want 2", h.RightQuad.Texture)
	}
}

func TestHost_FadeInStartsAtFirstDraw(t *testing.T) {
	sess := runningSession(t)
	h := NewHost()

	h.Update(sess, gpucore.TextureID(1), gpucore.TextureID(1), 10.0)
	if h.LeftQuad.Alpha != 0 {
		t.Errorf("Alpha at first draw = %v, want 0", h.LeftQuad.Alpha)
	}

	h.Update(sess, gpucore.TextureID(1), gpucore.TextureID(1), 10.0+0.2+0.5)
	if h.LeftQuad.Alpha <= 0 || h.LeftQuad.Alpha >= 1 {
		t.Errorf("Alpha midway through fade-in = %v, want in (0,1)", h.LeftQuad.Alpha)
	}
}

func TestHost_NotVisibleBeforeRunning(t *testing.T) {
	cap := &capture.Capture{Views: []capture.View{{WidthPx: 10, HeightPx: 10, FocalPx: 10}}}
	sess, _ := xr.NewSession(cap)
	h := NewHost()

	h.Update(sess, gpucore.TextureID(1), gpucore.TextureID(1), 0)
	if h.Visible() {
		t.Error("Visible() = true before the session reaches Running")
	}
}

func TestHost_Release(t *testing.T) {
	sess := runningSession(t)
	h := NewHost()
	h.Update(sess, gpucore.TextureID(1), gpucore.TextureID(1), 1.0)

	h.Release()
	if h.Visible() {
		t.Error("Visible() = true after Release()")
	}
	if h.LeftQuad.Texture != 0 {
		t.Error("LeftQuad.Texture should be reset after Release()")
	}
}
