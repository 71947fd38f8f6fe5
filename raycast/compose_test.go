package raycast

import "testing"

func TestComposeLayers_FrontToBackOrder(t *testing.T) {
	front := RGBA{R: 1, A: 1}
	back := RGBA{R: 0, A: 1}
	got := composeLayers([]RGBA{front, back})
	if got.R != 1 || got.A != 1 {
		t.Errorf("composeLayers() = %+v, want opaque front color", got)
	}
}

func TestComposeLayers_EmptyIsTransparent(t *testing.T) {
	got := composeLayers(nil)
	if got.A != 0 {
		t.Errorf("composeLayers(nil) = %+v, want zero alpha", got)
	}
}

func TestComposeBackground_FillsTransparentForeground(t *testing.T) {
	fg := RGBA{A: 0}
	bg := RGBA{R: 1, G: 1, B: 1, A: 1}
	got := composeBackground(fg, bg)
	if !approxRGBA(got, bg, 1e-9) {
		t.Errorf("composeBackground() = %+v, want %+v", got, bg)
	}
}

func TestStereoBlendWeight_StretchedViewLosesWeight(t *testing.T) {
	if w := stereoBlendWeight(0, true, false); w != 1 {
		t.Errorf("left stretched: weight = %v, want 1 (favor right)", w)
	}
	if w := stereoBlendWeight(0, false, true); w != 0 {
		t.Errorf("right stretched: weight = %v, want 0 (favor left)", w)
	}
}

func TestStereoBlendWeight_NoStretchUsesDisparity(t *testing.T) {
	w := stereoBlendWeight(0, false, false)
	if w != 0.5 {
		t.Errorf("stereoBlendWeight(0) = %v, want 0.5", w)
	}
}

func TestMaskDilated_WidensValidRegion(t *testing.T) {
	sampleMask := func(u, v float64) float64 {
		if u > 0.5 {
			return 1
		}
		return 0
	}
	got := maskDilated(sampleMask, 0.48, 0.5, 0.05)
	if got != 1 {
		t.Errorf("maskDilated() near boundary = %v, want 1 (dilated in)", got)
	}
}

func TestMaskDilated_ZeroRadiusIsSampleMask(t *testing.T) {
	sampleMask := func(u, v float64) float64 { return 0.42 }
	if got := maskDilated(sampleMask, 0, 0, 0); got != 0.42 {
		t.Errorf("maskDilated() with zero radius = %v, want 0.42", got)
	}
}
