package ldi

import (
	"fmt"
	"image"

	"github.com/gogpu/ldi/capture"
	"github.com/gogpu/ldi/container"
	"github.com/gogpu/ldi/raycast"
	"github.com/gogpu/ldi/resource"
)

// Parse decodes a capture file's raw bytes into a normalized
// capture.Capture: validating the trailing binary framing, locating
// the JSON metadata field, and applying the legacy-key and
// outpainting normalization rules.
func Parse(data []byte) (*capture.Capture, error) {
	return container.Parse(data)
}

// NewRenderer builds a raycast.Renderer for cap, decoding every
// layer's color and inverse-depth images into the pixel buffers the
// software rasterizer raycasts directly. Pass WithGPUBackend to drive
// a real device instead (see backend/wgpu.NewGPURenderer); without it,
// NewRenderer's result runs entirely on the CPU, which is what the
// test suite and any headless host exercise.
func NewRenderer(cap *capture.Capture, opts ...RendererOption) (*raycast.Renderer, error) {
	if cap == nil {
		return nil, fmt.Errorf("ldi: capture is required")
	}

	views := make([]raycast.InputView, 0, len(cap.Views))
	for _, v := range cap.Views {
		layers := make([]raycast.InputLayer, 0, len(v.Layers))
		for _, l := range v.Layers {
			il, err := decodeInputLayer(l)
			if err != nil {
				return nil, fmt.Errorf("ldi: decoding layer: %w", err)
			}
			layers = append(layers, il)
		}
		views = append(views, raycast.NewInputView(v, layers))
	}

	return raycast.NewRenderer(views, opts...), nil
}

func decodeInputLayer(l capture.Layer) (raycast.InputLayer, error) {
	color, err := resource.Decode(l.Image.Bytes, resource.ColorRGBA)
	if err != nil {
		return raycast.InputLayer{}, err
	}
	invZ, err := resource.Decode(l.InvZMap.Blob.Bytes, resource.DepthRGBA)
	if err != nil {
		return raycast.InputLayer{}, err
	}

	if l.Mask != nil {
		mask, err := resource.Decode(l.Mask.Bytes, resource.MaskRGBA)
		if err != nil {
			return raycast.InputLayer{}, err
		}
		if color, err = composeOrResize(color, mask); err != nil {
			return raycast.InputLayer{}, err
		}
		if invZ, err = composeOrResize(invZ, mask); err != nil {
			return raycast.InputLayer{}, err
		}
	}

	return raycast.InputLayer{
		Color: color,
		InvZ:  invZ,
		Min:   l.InvZMap.Min,
		Max:   l.InvZMap.Max,
	}, nil
}

// composeOrResize folds mask's red channel into src's alpha, resizing
// mask first if the container's JPEG and PNG layers were encoded at
// slightly different pixel dimensions.
func composeOrResize(src, mask *image.NRGBA) (*image.NRGBA, error) {
	sb, mb := src.Bounds(), mask.Bounds()
	if sb.Dx() != mb.Dx() || sb.Dy() != mb.Dy() {
		mask = resource.DownscaleTo(mask, sb.Dx(), sb.Dy())
	}
	return resource.ComposeMaskedDepth(src, mask)
}
