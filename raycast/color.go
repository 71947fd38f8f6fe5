package raycast

import "image/color"

// sampleNearest samples a straight-alpha RGBA value from an image.NRGBA
// at normalized (u,v) using nearest-neighbor, clamping to the image
// bounds. Coordinates outside [0,1]^2 are clamped, not wrapped.
func sampleNearest(img nrgbaSampler, u, v float64) RGBA {
	w, h := img.Dim()
	x := clampInt(int(u*float64(w)), 0, w-1)
	y := clampInt(int(v*float64(h)), 0, h-1)
	c := img.At(x, y)
	return RGBA{
		R: float64(c.R) / 255,
		G: float64(c.G) / 255,
		B: float64(c.B) / 255,
		A: float64(c.A) / 255,
	}
}

// nrgbaSampler is the minimal surface color.go needs to sample a
// decoded layer; satisfied by *image.NRGBA via nrgbaImage in
// software.go, kept as its own interface so color.go has no direct
// image-package dependency beyond image/color.
type nrgbaSampler interface {
	Dim() (w, h int)
	At(x, y int) color.NRGBA
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

// Premultiply converts straight alpha to premultiplied alpha.
func (c RGBA) Premultiply() RGBA {
	return RGBA{R: c.R * c.A, G: c.G * c.A, B: c.B * c.A, A: c.A}
}

// Unpremultiply converts premultiplied alpha back to straight alpha;
// returns transparent black when A is zero rather than dividing by
// zero.
func (c RGBA) Unpremultiply() RGBA {
	if c.A <= 0 {
		return RGBA{}
	}
	return RGBA{R: c.R / c.A, G: c.G / c.A, B: c.B / c.A, A: c.A}
}

// Lerp linearly interpolates between c and other by t in [0,1].
func (c RGBA) Lerp(other RGBA, t float64) RGBA {
	return RGBA{
		R: c.R + (other.R-c.R)*t,
		G: c.G + (other.G-c.G)*t,
		B: c.B + (other.B-c.B)*t,
		A: c.A + (other.A-c.A)*t,
	}
}

// Over composites src over dst (standard Porter-Duff "over"), both
// operands given in premultiplied form, returning a premultiplied
// result. Used for front-to-back layer composition.
func Over(src, dst RGBA) RGBA {
	inv := 1 - src.A
	return RGBA{
		R: src.R + dst.R*inv,
		G: src.G + dst.G*inv,
		B: src.B + dst.B*inv,
		A: src.A + dst.A*inv,
	}
}

// Under composites src under dst, i.e. dst painted over src; used
// when compositing the accumulated foreground over a resolved
// background sample.
func Under(src, dst RGBA) RGBA {
	return Over(dst, src)
}

// Scale multiplies all channels by k, used to taper contribution near
// layer/mask edges during feathering.
func (c RGBA) Scale(k float64) RGBA {
	return RGBA{R: c.R * k, G: c.G * k, B: c.B * k, A: c.A * k}
}
