package container

import "testing"

func buildMetaContainer(t *testing.T, json string) []byte {
	t.Helper()
	return buildContainer(t, nil, []uint32{fieldTypeJSONMetaNew}, [][]byte{[]byte(json)})
}

func TestParse_MinimalMono(t *testing.T) {
	data := buildMetaContainer(t, `{
		"views": [
			{
				"width_px": 1024, "height_px": 768, "focal_px": 600,
				"position": [0, 0, 0],
				"frustum_skew": [0, 0],
				"rotation": {"slant": [0, 0], "roll_degrees": 0},
				"layers": [
					{
						"width_px": 1024, "height_px": 768,
						"image": 0,
						"inv_z_map": {"blob_id": 0, "min": 1.0, "max": 0.1}
					}
				]
			}
		]
	}`)

	cap, err := Parse(data)
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	if len(cap.Views) != 1 {
		t.Fatalf("len(Views) = %d, want 1", len(cap.Views))
	}
	if cap.IsStereo() {
		t.Error("single-view capture reports IsStereo() = true")
	}
	v := cap.Views[0]
	if len(v.Layers) != 1 {
		t.Fatalf("len(Layers) = %d, want 1", len(v.Layers))
	}
	if v.Layers[0].InvZMap.Min != 1.0 || v.Layers[0].InvZMap.Max != 0.1 {
		t.Errorf("InvZMap = %+v, want Min=1.0 Max=0.1", v.Layers[0].InvZMap)
	}
}

func TestParse_StereoWithLegacyDisparityKeys(t *testing.T) {
	data := buildMetaContainer(t, `{
		"views": [
			{
				"width_px": 512, "height_px": 512, "focal_px": 400,
				"position": [-0.03, 0, 0], "frustum_skew": [0, 0],
				"rotation": {"slant": [0, 0], "roll_degrees": 0},
				"layers": [
					{"width_px": 512, "height_px": 512, "albedo": 0,
					 "disparity": {"blob_id": 0, "min_disparity": 1.0, "max_disparity": 0.2}}
				]
			},
			{
				"width_px": 512, "height_px": 512, "focal_px": 400,
				"position": [0.03, 0, 0], "frustum_skew": [0, 0],
				"rotation": {"slant": [0, 0], "roll_degrees": 0},
				"layers": [
					{"width_px": 512, "height_px": 512, "albedo": 0,
					 "disparity": {"blob_id": 0, "min_disparity": 1.0, "max_disparity": 0.2}}
				]
			}
		]
	}`)

	cap, err := Parse(data)
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	if !cap.IsStereo() {
		t.Fatal("two-view capture reports IsStereo() = false")
	}
	for i, v := range cap.Views {
		if v.Layers[0].InvZMap.Min != 1.0 || v.Layers[0].InvZMap.Max != 0.2 {
			t.Errorf("view %d InvZMap = %+v, want Min=1.0 Max=0.2", i, v.Layers[0].InvZMap)
		}
		if v.Layers[0].Image.ID != 0 {
			t.Errorf("view %d albedo not normalized to Image, got %+v", i, v.Layers[0].Image)
		}
	}
}

func TestParse_MissingMetadata(t *testing.T) {
	data := buildContainer(t, nil, nil, nil)
	if _, err := Parse(data); err != ErrMissingMetadata {
		t.Errorf("Parse() error = %v, want ErrMissingMetadata", err)
	}
}

func TestParse_InvalidLayerCountFailsValidation(t *testing.T) {
	data := buildMetaContainer(t, `{
		"views": [
			{"width_px": 64, "height_px": 64, "focal_px": 50,
			 "position": [0,0,0], "frustum_skew": [0,0],
			 "rotation": {"slant": [0,0], "roll_degrees": 0},
			 "layers": []}
		]
	}`)
	if _, err := Parse(data); err == nil {
		t.Error("Parse() with zero layers = nil error, want a validation error")
	}
}
