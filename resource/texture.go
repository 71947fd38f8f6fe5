package resource

import (
	"image"

	"github.com/gogpu/ldi/gpucore"
)

// BuildTexture uploads pixels to a new immutable GPU texture. Filter
// and wrap policy (linear min/mag, clamp-to-edge) are fixed at the
// sampler declared in the raycast pipeline's bind group layout, not
// per-texture, so BuildTexture only needs format and pixel data.
func BuildTexture(adapter gpucore.GPUAdapter, pixels *image.NRGBA) (gpucore.TextureID, error) {
	b := pixels.Bounds()
	id, err := adapter.CreateTexture(b.Dx(), b.Dy(), gpucore.TextureFormatRGBA8Unorm)
	if err != nil {
		return gpucore.InvalidID, err
	}
	adapter.WriteTexture(id, pixels.Pix)
	return id, nil
}
