package resource

import (
	"fmt"
	"image"
)

// ComposeMaskedDepth produces an RGBA image whose RGB channels come
// from depth and whose alpha channel comes from mask's red channel.
// depth and mask must share identical dimensions; callers are
// responsible for pre-resizing.
func ComposeMaskedDepth(depth, mask *image.NRGBA) (*image.NRGBA, error) {
	db, mb := depth.Bounds(), mask.Bounds()
	if db.Dx() != mb.Dx() || db.Dy() != mb.Dy() {
		return nil, fmt.Errorf("resource: depth %dx%d and mask %dx%d dimensions differ", db.Dx(), db.Dy(), mb.Dx(), mb.Dy())
	}

	out := image.NewNRGBA(db)
	for y := 0; y < db.Dy(); y++ {
		for x := 0; x < db.Dx(); x++ {
			d := depth.NRGBAAt(db.Min.X+x, db.Min.Y+y)
			m := mask.NRGBAAt(mb.Min.X+x, mb.Min.Y+y)
			d.A = m.R
			out.SetNRGBA(db.Min.X+x, db.Min.Y+y, d)
		}
	}
	return out, nil
}
