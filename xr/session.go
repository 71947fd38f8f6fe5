package xr

import (
	"github.com/gogpu/ldi"
	"github.com/gogpu/ldi/capture"
)

// ViewportSize is the host-reported XR viewport dimensions for one eye.
type ViewportSize struct {
	Width  int
	Height int
}

// Session drives the per-frame convergence-plane/canvas/render-camera
// derivation described in the XR Session Manager component. It holds
// no goroutines; every transition happens synchronously inside
// OnFrame or Reset, driven by values the host delivers each frame.
type Session struct {
	state State

	viewWidthPx float64
	viewFocalPx float64
	invZMin     float64
	focus       float64

	plane      capture.ConvergencePlane
	mode       planeMode
	frame      eyeFrame
	canvasL    CanvasSize
	canvasR    CanvasSize
	prevButton bool

	firstDrawAt   frameClock
	drawCount     int
}

// frameClock is an externally-advanced logical clock (seconds since
// session start), supplied by the host each frame rather than read
// from the wall clock, so Session stays synchronous and testable.
type frameClock float64

// NewSession creates a session seeded from the capture's first view
// (focal length, inverse-depth range) and default focus of 1.0.
func NewSession(cap *capture.Capture) (*Session, error) {
	if cap == nil || len(cap.Views) == 0 {
		return nil, ErrNoCapture
	}
	v := cap.Views[0]

	invZMin := 1.0
	if len(v.Layers) > 0 {
		invZMin = v.Layers[0].InvZMap.Min
	}

	return &Session{
		state:       SessionRequested,
		viewWidthPx: float64(v.WidthPx),
		viewFocalPx: v.FocalPx,
		invZMin:     invZMin,
		focus:       1.0,
	}, nil
}

// State returns the session's current lifecycle state.
func (s *Session) State() State { return s.state }

// SetFocus overrides the focus parameter used by the VR-mode plane
// distance and per-eye skew formulas (default 1.0).
func (s *Session) SetFocus(focus float64) { s.focus = focus }

// Blur transitions a running session to Paused; a no-op outside Running.
func (s *Session) Blur() {
	if s.state == Running {
		s.state = Paused
		ldi.Logger().Info("xr session paused")
	}
}

// Resume transitions a paused session back to Running; a no-op
// outside Paused.
func (s *Session) Resume() {
	if s.state == Paused {
		s.state = Running
		ldi.Logger().Info("xr session resumed")
	}
}

// End transitions the session to SessionEnded and releases the
// convergence plane and canvases. Terminal: further OnFrame calls
// return ErrSessionEnded.
func (s *Session) End() {
	s.state = SessionEnded
	s.plane = capture.ConvergencePlane{}
	s.canvasL, s.canvasR = CanvasSize{}, CanvasSize{}
	ldi.Logger().Info("xr session ended")
}

// Reset recomputes the convergence plane and reseeds IPD/initialY/
// initialZ in the new plane-local frame. Called on the edge-triggered
// gamepad reset and once automatically when the session first enters
// Initializing.
func (s *Session) Reset(left, right XRCamera, viewport ViewportSize) {
	plane, mode := deriveConvergencePlane(left, right, s.invZMin, s.focus, s.viewWidthPx, s.viewFocalPx)
	s.plane = plane
	s.mode = mode
	s.frame = seedEyeFrame(plane, left, right)

	aspect := 1.0
	if s.viewFocalPx != 0 {
		aspect = s.viewWidthPx / s.viewFocalPx
	}
	canvas := deriveCanvasSize(mode, plane.WidthWorld, plane.HeightWorld, viewport.Width, viewport.Height, aspect)
	s.canvasL, s.canvasR = canvas, canvas

	ldi.Logger().Debug("xr convergence plane reset", "mode", mode == modeVR, "width", canvas.Width, "height", canvas.Height)
}

// OnFrame advances the session one frame: it drives the Idle/Running
// state machine, applies the edge-triggered reset, and derives both
// eyes' render cameras. t is the host's logical clock for this frame,
// in seconds since session start (used only by the Scene Host's
// fade-in, surfaced here via FirstDrawClock for callers that also drive
// host.Host).
func (s *Session) OnFrame(left, right XRCamera, viewport ViewportSize, gp GamepadState, t float64) (camL, camR capture.RenderCamera, err error) {
	if s.state == SessionEnded {
		return capture.RenderCamera{}, capture.RenderCamera{}, ErrSessionEnded
	}

	pressed := gp.Button4Pressed()
	resetTriggered := pressed && !s.prevButton
	s.prevButton = pressed

	switch s.state {
	case SessionRequested:
		s.Reset(left, right, viewport)
		s.state = Initializing
	case Initializing:
		s.state = Running
		ldi.Logger().Info("xr session running")
	case Paused:
		return capture.RenderCamera{}, capture.RenderCamera{}, nil
	}

	if resetTriggered && s.state == Running {
		s.Reset(left, right, viewport)
	}

	if s.state != Running {
		return capture.RenderCamera{}, capture.RenderCamera{}, nil
	}

	viewportScale := 1.0
	viewportScaleFactor := 1.0
	if s.canvasL.Width > 0 {
		viewportScale = float64(s.canvasL.Width) / s.viewWidthPx
		viewportScaleFactor = 1.0
	}

	camL = updateRenderCamera(left, s.plane, s.frame, s.focus, s.invZMin, s.viewFocalPx, viewportScale, viewportScaleFactor)
	camR = updateRenderCamera(right, s.plane, s.frame, s.focus, s.invZMin, s.viewFocalPx, viewportScale, viewportScaleFactor)

	if s.drawCount == 0 {
		s.firstDrawAt = frameClock(t)
	}
	s.drawCount++

	return camL, camR, nil
}

// ConvergencePlane returns the last-derived convergence plane.
func (s *Session) ConvergencePlane() capture.ConvergencePlane { return s.plane }

// CanvasSizes returns the current per-eye canvas dimensions.
func (s *Session) CanvasSizes() (left, right CanvasSize) { return s.canvasL, s.canvasR }

// FirstDrawClock returns the logical time (as passed to OnFrame) of
// the first successful Running-state frame, and whether one has
// occurred yet; the Scene Host's fade-in is anchored to this moment.
func (s *Session) FirstDrawClock() (float64, bool) {
	return float64(s.firstDrawAt), s.drawCount > 0
}
