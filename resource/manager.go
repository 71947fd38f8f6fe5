package resource

import (
	"context"
	"image"

	"golang.org/x/sync/errgroup"

	"github.com/gogpu/ldi/capture"
	"github.com/gogpu/ldi/gpucore"
)

// LayerTextures holds the two GPU texture handles one Layer owns: its
// color texture (RGBA, alpha from mask if present) and its invZ
// texture (red = normalized inverse depth, alpha = mask presence).
type LayerTextures struct {
	Color capture.TextureHandle
	InvZ  capture.TextureHandle
}

// Manager decodes capture layer blobs into pixel arrays and uploads
// them as GPU textures, enforcing an optional maximum texture side
// length. It owns no state across captures: every call is scoped to
// the arena the caller passes in.
type Manager struct {
	MaxSide int // 0 disables downscaling.
}

// NewManager creates a Manager with the given maximum texture side
// length (0 disables downscaling).
func NewManager(maxSide int) *Manager {
	return &Manager{MaxSide: maxSide}
}

// LoadView decodes and uploads every layer of v in parallel worker
// tasks, tracking the resulting textures in arena. Per the
// concurrency model, decoding may run in parallel but every texture
// it returns is fully written by the time LoadView returns — no
// caller ever samples a texture still being built. Cancelling ctx
// (e.g. via arena.Cancel, when a newer capture supersedes this one)
// stops outstanding decode tasks; their textures are discarded rather
// than tracked.
func (m *Manager) LoadView(ctx context.Context, v capture.View, adapter gpucore.GPUAdapter, arena *capture.Arena) ([]LayerTextures, error) {
	out := make([]LayerTextures, len(v.Layers))

	g, gctx := errgroup.WithContext(ctx)
	for i, layer := range v.Layers {
		i, layer := i, layer
		g.Go(func() error {
			select {
			case <-gctx.Done():
				return gctx.Err()
			default:
			}

			lt, err := m.loadLayer(gctx, layer, adapter, arena)
			if err != nil {
				return err
			}
			out[i] = lt
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return out, nil
}

func (m *Manager) loadLayer(ctx context.Context, l capture.Layer, adapter gpucore.GPUAdapter, arena *capture.Arena) (LayerTextures, error) {
	colorPixels, err := m.decodeColor(l)
	if err != nil {
		return LayerTextures{}, err
	}
	invZPixels, err := m.decodeInvZ(l)
	if err != nil {
		return LayerTextures{}, err
	}

	colorID, err := BuildTexture(adapter, colorPixels)
	if err != nil {
		return LayerTextures{}, err
	}
	invZID, err := BuildTexture(adapter, invZPixels)
	if err != nil {
		return LayerTextures{}, err
	}

	// Re-check after decode/build, which run unbounded wall-clock time:
	// a cancellation that lands mid-flight must still discard these
	// textures rather than hand them to arena.Track.
	if err := ctx.Err(); err != nil {
		return LayerTextures{}, err
	}

	return LayerTextures{
		Color: arena.Track(colorID),
		InvZ:  arena.Track(invZID),
	}, nil
}

func (m *Manager) decodeColor(l capture.Layer) (*image.NRGBA, error) {
	return m.decodeWithMask(l.Image.Bytes, ColorRGBA, l.Mask)
}

func (m *Manager) decodeInvZ(l capture.Layer) (*image.NRGBA, error) {
	return m.decodeWithMask(l.InvZMap.Blob.Bytes, DepthRGBA, l.Mask)
}

// decodeWithMask decodes a color or depth source and, when a mask is
// present, composes the mask's red channel into its alpha: "if a mask
// exists, alpha is taken from the mask, not the image" for color
// textures, "alpha = mask presence" for invZ textures. Both reuse the
// same RGB-source + mask-alpha composition.
func (m *Manager) decodeWithMask(src []byte, kind Kind, mask *capture.BlobRef) (*image.NRGBA, error) {
	img, err := Decode(src, kind)
	if err != nil {
		return nil, err
	}
	img = m.downscale(img)

	if mask == nil {
		return img, nil
	}
	maskPixels, err := Decode(mask.Bytes, MaskRGBA)
	if err != nil {
		return nil, err
	}
	maskPixels = m.downscale(maskPixels)
	return ComposeMaskedDepth(img, maskPixels)
}

func (m *Manager) downscale(img *image.NRGBA) *image.NRGBA {
	if m.MaxSide <= 0 {
		return img
	}
	return DownscaleIfOver(img, m.MaxSide)
}
