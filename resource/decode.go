package resource

import (
	"bytes"
	"fmt"
	"image"
	_ "image/jpeg"
	_ "image/png"
)

// Decode decodes blobBytes to an RGBA pixel array. kind only affects
// error messages; all three kinds share the same container formats
// (JPEG color images, PNG depth/mask channels).
func Decode(blobBytes []byte, kind Kind) (*image.NRGBA, error) {
	img, _, err := image.Decode(bytes.NewReader(blobBytes))
	if err != nil {
		return nil, fmt.Errorf("resource: decoding %s: %w", kind, err)
	}

	if nrgba, ok := img.(*image.NRGBA); ok {
		return nrgba, nil
	}

	bounds := img.Bounds()
	out := image.NewNRGBA(bounds)
	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			out.Set(x, y, img.At(x, y))
		}
	}
	return out, nil
}
