// Package capture holds the normalized in-memory representation of a
// parsed Layered Depth Image: the Capture/View/Layer tree, the blob
// reference type container.Parse resolves, and the Render camera and
// convergence plane types the XR Session Manager and Renderer Core
// pass between each other every frame.
package capture

import "github.com/gogpu/ldi/camera"

// BlobRef is a resolved reference to a byte range inside a container's
// field table: the original blob_id == -1 sentinel ("the entire
// container file, interpreted as JPEG") is preserved in ID for
// diagnostics, but Bytes always holds the already-resolved payload by
// the time a Capture leaves container.Parse.
type BlobRef struct {
	ID    int32
	Bytes []byte
}

// InlineBlobID is the sentinel BlobRef.ID meaning the blob is the
// whole container file.
const InlineBlobID int32 = -1

// IsInline reports whether b refers to the whole container file.
func (b BlobRef) IsInline() bool {
	return b.ID == InlineBlobID
}

// Rotation is a view or layer's orientation: a tangent-space slant
// plus an in-plane roll.
type Rotation struct {
	Slant       camera.Vec2
	RollDegrees float64
}

// InvZMap is a layer's depth channel: a blob reference plus the
// inverse-depth range it was normalized against. After normalization
// Min holds the nearest inverse depth and Max the farthest, so
// Min > Max.
type InvZMap struct {
	Blob BlobRef
	Min  float64
	Max  float64
}

// Layer is one LDI layer within a View, ordered front-to-back by
// index (layer 0 is front-most).
type Layer struct {
	WidthPx  int
	HeightPx int
	FocalPx  float64

	Image   BlobRef
	InvZMap InvZMap

	// Mask is an optional single-channel alpha blob; when present the
	// color texture's alpha is taken from it instead of from Image.
	Mask *BlobRef
}

// View is one captured vantage point, holding 1-4 layers.
type View struct {
	WidthPx  int
	HeightPx int
	FocalPx  float64

	Position    camera.Vec3
	FrustumSkew camera.Vec2
	Rotation    Rotation

	Layers []Layer
}

// StereoRenderData carries the capture-time convergence hint for
// stereo (two-view) captures.
type StereoRenderData struct {
	InvConvergenceDistance float64
}

// Capture is the root of the normalized data model: 1 or 2 Views
// (index 0 is left when stereo) plus optional stereo render data.
type Capture struct {
	Views            []View
	StereoRenderData *StereoRenderData
}

// IsStereo reports whether the capture has two input views.
func (c *Capture) IsStereo() bool {
	return len(c.Views) == 2
}
