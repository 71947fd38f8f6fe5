package raycast

import (
	"testing"

	"github.com/gogpu/ldi/camera"
)

func TestAgrees(t *testing.T) {
	if !agrees(1.0, 1.005) {
		t.Error("agrees() should accept a small gap")
	}
	if agrees(1.0, 1.5) {
		t.Error("agrees() should reject a large gap")
	}
}

func TestCoarseMarch_FindsHitJustPastKnownDepth(t *testing.T) {
	fskr := camera.ComposeFSKR(camera.MFocal(500, 500), camera.MSkew(0, 0), camera.MRoll(0), camera.MSlant(0, 0))
	pos := camera.V3(0, 0, 0)
	frame := newProjectionFrame(fskr, pos, fskr, pos)

	// Min > Max: marching starts at the nearest depth and steps toward
	// the farthest, as InputLayer's doc comment requires.
	const n = 11
	layer := InputLayer{Min: 1.0, Max: 0.0}
	const targetInvZ = 0.5

	sampleInvZ := func(u, v float64) float64 { return targetInvZ }

	hit, ok := coarseMarch(frame, layer, 0.0, 0.0, n, sampleInvZ)
	if !ok {
		t.Fatal("expected a hit")
	}
	step := (layer.Max - layer.Min) / float64(n-1)
	diff := targetInvZ - hit.InvZ
	if diff <= 0 || diff > -step+1e-9 {
		t.Errorf("hit.InvZ = %v, want just past %v by at most one coarse step (%v)", hit.InvZ, targetInvZ, -step)
	}
}

func TestCoarseMarch_NoHitWhenSampleNeverOvershoots(t *testing.T) {
	fskr := camera.ComposeFSKR(camera.MFocal(500, 500), camera.MSkew(0, 0), camera.MRoll(0), camera.MSlant(0, 0))
	pos := camera.V3(0, 0, 0)
	frame := newProjectionFrame(fskr, pos, fskr, pos)

	layer := InputLayer{Min: 1.0, Max: 0.0}
	sampleInvZ := func(u, v float64) float64 { return -100.0 }

	if _, ok := coarseMarch(frame, layer, 0.0, 0.0, NCoarseMN, sampleInvZ); ok {
		t.Error("expected no hit when the sampled depth never overshoots the march hypothesis")
	}
}

func TestCoarseMarch_InvalidFrameNeverHits(t *testing.T) {
	layer := InputLayer{Min: 1.0, Max: 0.1}
	frame := projectionFrame{valid: false}
	if _, ok := coarseMarch(frame, layer, 0, 0, NCoarseMN, func(u, v float64) float64 { return 0.5 }); ok {
		t.Error("expected no hit from an invalid frame")
	}
}

func TestBinaryRefine_ConvergesWithinBracket(t *testing.T) {
	fskr := camera.ComposeFSKR(camera.MFocal(500, 500), camera.MSkew(0, 0), camera.MRoll(0), camera.MSlant(0, 0))
	pos := camera.V3(0, 0, 0)
	frame := newProjectionFrame(fskr, pos, fskr, pos)

	const target = 0.5
	sampleInvZ := func(u, v float64) float64 { return target }

	_, _, invZ := binaryRefine(frame, 0, 0, 0.3, 0.7, sampleInvZ)
	if !agrees(invZ, target) {
		t.Errorf("binaryRefine converged to %v, want close to %v", invZ, target)
	}
}
