package xr

import (
	"github.com/gogpu/ldi/camera"
	"github.com/gogpu/ldi/capture"
)

// eyeFrame is the per-session-lifetime state seeded once at session
// start (or on reset) that the per-frame render-camera update is
// relative to.
type eyeFrame struct {
	IPD      float64
	InitialY float64
	InitialZ float64
}

// seedEyeFrame samples IPD and the initial plane-local Y/Z of the left
// eye, in the new convergence plane's local frame.
func seedEyeFrame(plane capture.ConvergencePlane, left, right XRCamera) eyeFrame {
	lLocal := plane.ToLocal(left.Position)
	rLocal := plane.ToLocal(right.Position)

	ipd := lLocal.Sub(rLocal).Length()

	return eyeFrame{
		IPD:      ipd,
		InitialY: lLocal.Y,
		InitialZ: lLocal.Z,
	}
}

// updateRenderCamera derives one eye's RenderCamera for the current
// frame from its world pose, the convergence plane, the seeded
// eyeFrame, and the view's focal/inverse-depth parameters.
func updateRenderCamera(eye XRCamera, plane capture.ConvergencePlane, frame eyeFrame, focus, invZMin, viewFocalPx, viewportScale, viewportScaleFactor float64) capture.RenderCamera {
	local := plane.ToLocal(eye.Position)

	ipd := frame.IPD
	if ipd == 0 {
		ipd = 1
	}

	posX := local.X / ipd
	posY := (frame.InitialY - local.Y) / ipd
	posZ := (frame.InitialZ - local.Z) / ipd

	invd := focus * invZMin
	denom := 1 - posZ*invd

	var skX, skY float64
	if denom != 0 {
		skX = -posX * invd / denom
		skY = -posY * invd / denom
	}

	fz := 1 - posZ*invd
	if fz < 0 {
		fz = 0
	}

	var f float64
	if viewportScaleFactor != 0 {
		f = viewFocalPx * viewportScale * fz / viewportScaleFactor
	}

	return capture.RenderCamera{
		Position: camera.V3(posX, posY, posZ),
		Skew:     camera.V2(skX, skY),
		FocalPx:  f,
	}
}
