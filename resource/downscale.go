package resource

import (
	"image"
	"math"

	xdraw "golang.org/x/image/draw"
)

// DownscaleIfOver scales img down so its larger side is at most
// maxSide, preserving aspect ratio. The larger dimension is the
// controlling axis; the other is derived by rounding to the nearest
// integer, so the same input always downscales to the same output
// size. Returns img unchanged if it is already within maxSide.
func DownscaleIfOver(img *image.NRGBA, maxSide int) *image.NRGBA {
	b := img.Bounds()
	w, h := b.Dx(), b.Dy()
	if w <= maxSide && h <= maxSide {
		return img
	}

	var newW, newH int
	if w >= h {
		newW = maxSide
		newH = int(math.Round(float64(h) * float64(maxSide) / float64(w)))
	} else {
		newH = maxSide
		newW = int(math.Round(float64(w) * float64(maxSide) / float64(h)))
	}
	if newW < 1 {
		newW = 1
	}
	if newH < 1 {
		newH = 1
	}

	dst := image.NewNRGBA(image.Rect(0, 0, newW, newH))
	xdraw.CatmullRom.Scale(dst, dst.Bounds(), img, b, xdraw.Over, nil)
	return dst
}

// DownscaleTo resamples img to exactly width x height, for aligning a
// mask blob to its color/depth sibling when the container's separately
// encoded images didn't come out at identical pixel dimensions.
func DownscaleTo(img *image.NRGBA, width, height int) *image.NRGBA {
	b := img.Bounds()
	if b.Dx() == width && b.Dy() == height {
		return img
	}
	dst := image.NewNRGBA(image.Rect(0, 0, width, height))
	xdraw.CatmullRom.Scale(dst, dst.Bounds(), img, b, xdraw.Over, nil)
	return dst
}
