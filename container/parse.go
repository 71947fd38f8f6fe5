package container

import "github.com/gogpu/ldi/capture"

// Parse decodes a capture file's raw bytes into a normalized
// capture.Capture: validating the trailing binary framing, locating
// the JSON metadata field, and applying the legacy-key and
// outpainting normalization rules before the result reaches the
// Resource Manager or Renderer Core.
func Parse(data []byte) (*capture.Capture, error) {
	fields, err := parseFraming(data)
	if err != nil {
		return nil, err
	}

	metaBytes, err := findMetadataField(fields)
	if err != nil {
		return nil, err
	}

	raw, err := parseDescriptor(metaBytes)
	if err != nil {
		return nil, err
	}

	views := make([]capture.View, 0, len(raw.Views))
	for _, jv := range raw.Views {
		v, err := normalizeView(jv, fields, data)
		if err != nil {
			return nil, err
		}
		views = append(views, v)
	}

	cap := &capture.Capture{Views: views}
	if raw.StereoRenderData != nil {
		cap.StereoRenderData = &capture.StereoRenderData{
			InvConvergenceDistance: raw.StereoRenderData.InvConvergenceDistance,
		}
	}

	if err := cap.Validate(); err != nil {
		return nil, err
	}
	return cap, nil
}

func normalizeView(jv jsonView, fields []field, fileBytes []byte) (capture.View, error) {
	layers := make([]capture.Layer, 0, len(jv.Layers))
	for _, jl := range jv.Layers {
		l, err := normalizeLayer(jl, jv.WidthPx, jv.FocalPx, fields, fileBytes)
		if err != nil {
			return capture.View{}, err
		}
		layers = append(layers, l)
	}

	v := capture.View{
		WidthPx:     jv.WidthPx,
		HeightPx:    jv.HeightPx,
		FocalPx:     jv.FocalPx,
		Position:    toVec3(jv.Position),
		FrustumSkew: toVec2(jv.FrustumSkew),
		Rotation: capture.Rotation{
			Slant:       toVec2(jv.Rotation.Slant),
			RollDegrees: jv.Rotation.RollDegrees,
		},
		Layers: layers,
	}

	if err := foldLegacyCameraData(&v, jv); err != nil {
		return capture.View{}, err
	}

	// foldOutpainting rebuilds v.Layers from layered_depth_image_data
	// against the already-final v.WidthPx/v.FocalPx, computing each
	// layer's focal_px and inv_z_map rescale together; re-deriving
	// focal_px again below would desync it from that already-applied
	// inv_z_map scale, so it only runs for the non-outpainted layers
	// built above, which were computed before foldLegacyCameraData
	// could correct a legacy view's initially-zero width_px.
	if jv.LayeredDepthImageData != nil {
		err := foldOutpainting(&v, jv, fields, fileBytes)
		return v, err
	}

	// Any layer whose width_px differs from the (possibly just-folded)
	// view width_px must have its focal_px rescaled proportionally.
	for i := range v.Layers {
		l := &v.Layers[i]
		if l.WidthPx != 0 && v.WidthPx != 0 && l.WidthPx != v.WidthPx {
			l.FocalPx = v.FocalPx * float64(l.WidthPx) / float64(v.WidthPx)
		}
	}

	return v, nil
}
