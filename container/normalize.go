package container

import (
	"bytes"
	"image"
	_ "image/jpeg"
	_ "image/png"

	"github.com/gogpu/ldi/camera"
	"github.com/gogpu/ldi/capture"
)

// resolveBlobRef resolves a raw blob ID into a capture.BlobRef whose
// Bytes field already holds the payload: every blob reference is
// resolved to bytes during normalization so no downstream package
// needs the field table.
func resolveBlobRef(fields []field, fileBytes []byte, id int32) (capture.BlobRef, error) {
	b, err := resolveBlob(fields, fileBytes, id)
	if err != nil {
		return capture.BlobRef{}, err
	}
	return capture.BlobRef{ID: id, Bytes: b}, nil
}

// normalizeInvZ resolves a layer's depth map from whichever of the
// three legacy-or-current shapes the descriptor populated, renaming
// keys per the legacy mapping: max_disparity->max, min_disparity->min,
// and the intentional swap inv_z_dist_min->max, inv_z_dist_max->min
// (the renderer takes the algebraically smaller value as max).
func normalizeInvZ(fields []field, fileBytes []byte, primary, disparity, invZDist *jsonInvZMap) (capture.InvZMap, bool, error) {
	src := primary
	if src == nil {
		src = disparity
	}
	if src == nil {
		src = invZDist
	}
	if src == nil {
		return capture.InvZMap{}, false, nil
	}

	var min, max float64
	switch {
	case src.Min != nil:
		min = *src.Min
	case src.MinDisparity != nil:
		min = *src.MinDisparity
	case src.InvZDistMax != nil:
		min = *src.InvZDistMax
	}
	switch {
	case src.Max != nil:
		max = *src.Max
	case src.MaxDisparity != nil:
		max = *src.MaxDisparity
	case src.InvZDistMin != nil:
		max = *src.InvZDistMin
	}

	blob, err := resolveBlobRef(fields, fileBytes, src.BlobID)
	if err != nil {
		return capture.InvZMap{}, false, err
	}

	return capture.InvZMap{
		Blob: blob,
		Min:  min,
		Max:  max,
	}, true, nil
}

// normalizeBlobField resolves image/albedo into a single blob
// reference, preferring the current key.
func normalizeBlobField(fields []field, fileBytes []byte, image, albedo *int32) (capture.BlobRef, error) {
	switch {
	case image != nil:
		return resolveBlobRef(fields, fileBytes, *image)
	case albedo != nil:
		return resolveBlobRef(fields, fileBytes, *albedo)
	default:
		return resolveBlobRef(fields, fileBytes, capture.InlineBlobID)
	}
}

func normalizeMask(fields []field, fileBytes []byte, mask *int32) (*capture.BlobRef, error) {
	if mask == nil {
		return nil, nil
	}
	b, err := resolveBlobRef(fields, fileBytes, *mask)
	if err != nil {
		return nil, err
	}
	return &b, nil
}

func normalizeLayer(jl jsonLayer, viewWidthPx int, viewFocalPx float64, fields []field, fileBytes []byte) (capture.Layer, error) {
	invZ, ok, err := normalizeInvZ(fields, fileBytes, jl.InvZMap, jl.Disparity, jl.InvZDist)
	if err != nil {
		return capture.Layer{}, err
	}
	if !ok {
		return capture.Layer{}, ErrMissingMetadata
	}

	focal := viewFocalPx
	if jl.FocalPx != nil {
		focal = *jl.FocalPx
	} else if jl.WidthPx != 0 && viewWidthPx != 0 && jl.WidthPx != viewWidthPx {
		// A layer whose width differs from the view's must have its
		// focal length rescaled proportionally.
		focal = viewFocalPx * float64(jl.WidthPx) / float64(viewWidthPx)
	}

	image, err := normalizeBlobField(fields, fileBytes, jl.Image, jl.Albedo)
	if err != nil {
		return capture.Layer{}, err
	}
	mask, err := normalizeMask(fields, fileBytes, jl.Mask)
	if err != nil {
		return capture.Layer{}, err
	}

	return capture.Layer{
		WidthPx:  jl.WidthPx,
		HeightPx: jl.HeightPx,
		FocalPx:  focal,
		Image:    image,
		InvZMap:  invZ,
		Mask:     mask,
	}, nil
}

// decodeImageDims measures the pixel dimensions of a blob by decoding
// just its header, for legacy views that omit width_px/height_px.
func decodeImageDims(b []byte) (width, height int, err error) {
	cfg, _, err := image.DecodeConfig(bytes.NewReader(b))
	if err != nil {
		return 0, 0, ErrImageDecodeFailed
	}
	return cfg.Width, cfg.Height, nil
}

// foldLegacyCameraData derives width_px/height_px/focal_px and flattens
// camera_data onto a legacy view that omitted them, per the container
// normalization rules: decode the top-level image to measure
// dimensions, derive focal_px from focal_ratio_to_width, and divide
// every layer's inv_z_map.min/max by -focal_ratio_to_width.
func foldLegacyCameraData(v *capture.View, jv jsonView) error {
	if jv.CameraData == nil {
		return nil
	}
	cam := jv.CameraData

	if v.WidthPx == 0 {
		width, height, err := decodeImageDims(v.Layers[0].Image.Bytes)
		if err != nil {
			return err
		}
		v.WidthPx = width
		v.HeightPx = height
		v.FocalPx = cam.FocalRatioToWidth * float64(width)
	}

	v.Position = toVec3(cam.Position)
	v.FrustumSkew = toVec2(cam.FrustumSkew)
	v.Rotation = capture.Rotation{
		Slant:       toVec2(cam.Rotation.Slant),
		RollDegrees: cam.Rotation.RollDegrees,
	}

	if cam.FocalRatioToWidth != 0 {
		for i := range v.Layers {
			v.Layers[i].InvZMap.Min /= -cam.FocalRatioToWidth
			v.Layers[i].InvZMap.Max /= -cam.FocalRatioToWidth
		}
	}

	return nil
}

// foldOutpainting hoists layered_depth_image_data.layers_top_to_bottom
// onto the view and rescales each outpainted layer's width_px,
// height_px, focal_px, and inv_z_map.min/max.
func foldOutpainting(v *capture.View, jv jsonView, fields []field, fileBytes []byte) error {
	if jv.LayeredDepthImageData == nil {
		return nil
	}

	layers := make([]capture.Layer, 0, len(jv.LayeredDepthImageData.LayersTopToBottom))
	for _, ol := range jv.LayeredDepthImageData.LayersTopToBottom {
		invZ, ok, err := normalizeInvZ(fields, fileBytes, ol.InvZMap, nil, nil)
		if err != nil {
			return err
		}
		if !ok {
			return ErrMissingMetadata
		}

		focal := v.FocalPx
		if ol.FocalPx != nil {
			focal = *ol.FocalPx
		} else if ol.WidthPx != 0 && v.WidthPx != 0 && ol.WidthPx != v.WidthPx {
			focal = v.FocalPx * float64(ol.WidthPx) / float64(v.WidthPx)
			scale := float64(ol.WidthPx) / float64(v.WidthPx)
			invZ.Min *= scale
			invZ.Max *= scale
		}

		image, err := normalizeBlobField(fields, fileBytes, ol.Image, nil)
		if err != nil {
			return err
		}
		mask, err := normalizeMask(fields, fileBytes, ol.Mask)
		if err != nil {
			return err
		}

		layers = append(layers, capture.Layer{
			WidthPx:  ol.WidthPx,
			HeightPx: ol.HeightPx,
			FocalPx:  focal,
			Image:    image,
			InvZMap:  invZ,
			Mask:     mask,
		})
	}
	v.Layers = layers
	return nil
}

func toVec3(a [3]float64) camera.Vec3 { return camera.V3(a[0], a[1], a[2]) }
func toVec2(a [2]float64) camera.Vec2 { return camera.V2(a[0], a[1]) }
