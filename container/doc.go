// Package container parses the on-disk Layered Depth Image capture
// format: a binary trailer (magic end marker, region offset, field
// table) wrapping a JSON metadata descriptor, normalized into the
// capture package's typed Capture/View/Layer model.
//
// # Framing
//
// The last 2 bytes of a capture file are a big-endian magic marker
// (0x1E1A). The 4 bytes before that are a big-endian region offset,
// measured from EOF, locating the metadata region's field table. Each
// field table entry is {field_type, field_size, field_data}, all
// big-endian. The JSON descriptor is whichever of field_type 8
// (preferred) or 7 is present.
//
// # Normalization
//
// Capture descriptors accumulated a handful of legacy key names over
// time (albedo for image, disparity/inv_z_dist for inv_z_map, and an
// inverted min/max naming for the oldest captures). Parse resolves
// these before constructing a capture.Capture so every downstream
// package sees one consistent shape: inv_z_map.Min is always the
// nearest inverse depth, inv_z_map.Max the farthest.
//
// Legacy captures that predate width_px/height_px fields carry a
// camera_data block instead; Parse decodes the layer's image just far
// enough to measure its pixel dimensions and derives focal_px from
// camera_data.focal_ratio_to_width. Captures with outpainted edges
// carry layered_depth_image_data, whose layers_top_to_bottom entries
// are folded into the view's layer list with rescaled dimensions.
package container
