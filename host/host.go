package host

import (
	"github.com/gogpu/ldi/gpucore"
	"github.com/gogpu/ldi/xr"
)

// Host owns the two per-eye textured quads the XR session presents
// through. It is a pure data/update layer: it has no GPU device of
// its own and draws nothing directly, leaving actual quad geometry
// submission to whatever scene graph the embedding app already runs
// (matching the narrow "owns two textured quads" responsibility the
// component carries — it is not a general-purpose scene graph).
type Host struct {
	LeftQuad  Quad
	RightQuad Quad
	FadeIn    FadeIn

	firstDrawClock float64
	hasDrawn       bool
	running        bool
}

// NewHost creates a Host with the default fade-in timing.
func NewHost() *Host {
	return &Host{FadeIn: DefaultFadeIn()}
}

// Update aligns both quads to the session's current convergence
// plane, records this frame's per-eye texture IDs, and advances the
// fade-in and visibility state from the session's lifecycle state and
// frame clock. Call once per frame, after xr.Session.OnFrame.
func (h *Host) Update(sess *xr.Session, leftTex, rightTex gpucore.TextureID, t float64) {
	h.running = sess.State() == xr.Running
	if !h.running {
		return
	}

	plane := sess.ConvergencePlane()
	h.LeftQuad.alignToPlane(plane)
	h.RightQuad.alignToPlane(plane)
	h.LeftQuad.Texture = leftTex
	h.RightQuad.Texture = rightTex

	if !h.hasDrawn {
		h.hasDrawn = true
		h.firstDrawClock = t
	}

	alpha := h.FadeIn.Alpha(t - h.firstDrawClock)
	h.LeftQuad.Alpha = alpha
	h.RightQuad.Alpha = alpha
}

// Visible reports whether the host's quads should be rendered this
// frame: gated on the session being in the Running state.
func (h *Host) Visible() bool {
	return h.running
}

// Release drops both quads' texture references (does not destroy the
// underlying GPU textures — that remains capture.Arena's
// responsibility) and resets fade-in state, for use on session end.
func (h *Host) Release() {
	h.LeftQuad = Quad{}
	h.RightQuad = Quad{}
	h.hasDrawn = false
	h.firstDrawClock = 0
	h.running = false
}
