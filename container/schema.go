package container

import "encoding/json"

// The JSON descriptor schema below intentionally keeps every
// legacy-or-current key as a separate optional field rather than
// collapsing them with json.RawMessage tricks: normalize.go resolves
// which one a given capture actually populated, in the priority order
// the legacy key renames imply.

type jsonRotation struct {
	Slant       [2]float64 `json:"slant"`
	RollDegrees float64    `json:"roll_degrees"`
}

type jsonInvZMap struct {
	BlobID int32 `json:"blob_id"`

	Min *float64 `json:"min"`
	Max *float64 `json:"max"`

	// Legacy aliases; see normalizeInvZ.
	MaxDisparity *float64 `json:"max_disparity"`
	MinDisparity *float64 `json:"min_disparity"`
	InvZDistMin  *float64 `json:"inv_z_dist_min"`
	InvZDistMax  *float64 `json:"inv_z_dist_max"`
}

type jsonLayer struct {
	WidthPx  int      `json:"width_px"`
	HeightPx int      `json:"height_px"`
	FocalPx  *float64 `json:"focal_px"`

	Image  *int32 `json:"image"`
	Albedo *int32 `json:"albedo"`

	InvZMap   *jsonInvZMap `json:"inv_z_map"`
	Disparity *jsonInvZMap `json:"disparity"`
	InvZDist  *jsonInvZMap `json:"inv_z_dist"`

	Mask *int32 `json:"mask"`
}

// jsonOutpaintLayer describes one entry of layered_depth_image_data's
// layers_top_to_bottom: the delta fields folded into a base layer.
type jsonOutpaintLayer struct {
	WidthPx     int      `json:"width_px"`
	HeightPx    int      `json:"height_px"`
	FocalPx     *float64 `json:"focal_px"`
	InvZMap     *jsonInvZMap `json:"inv_z_map"`
	Image       *int32   `json:"image"`
	Mask        *int32   `json:"mask"`
}

type jsonLDIData struct {
	LayersTopToBottom []jsonOutpaintLayer `json:"layers_top_to_bottom"`
}

type jsonCameraData struct {
	FocalRatioToWidth float64      `json:"focal_ratio_to_width"`
	Position          [3]float64   `json:"position"`
	FrustumSkew       [2]float64   `json:"frustum_skew"`
	Rotation          jsonRotation `json:"rotation"`
}

type jsonView struct {
	WidthPx  int      `json:"width_px"`
	HeightPx int      `json:"height_px"`
	FocalPx  float64  `json:"focal_px"`

	Position    [3]float64   `json:"position"`
	FrustumSkew [2]float64   `json:"frustum_skew"`
	Rotation    jsonRotation `json:"rotation"`

	Layers []jsonLayer `json:"layers"`

	LayeredDepthImageData *jsonLDIData    `json:"layered_depth_image_data"`
	CameraData            *jsonCameraData `json:"camera_data"`
}

type jsonStereoRenderData struct {
	InvConvergenceDistance float64 `json:"inv_convergence_distance"`
}

type jsonCapture struct {
	Views             []jsonView            `json:"views"`
	StereoRenderData  *jsonStereoRenderData `json:"stereo_render_data"`
	Version           int                   `json:"version"`
}

func parseDescriptor(data []byte) (*jsonCapture, error) {
	var c jsonCapture
	if err := json.Unmarshal(data, &c); err != nil {
		return nil, ErrMissingMetadata
	}
	return &c, nil
}
