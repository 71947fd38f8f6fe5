package container

import "encoding/binary"

// magicEndMarker is the trailing 2-byte big-endian sentinel every
// capture file ends with.
const magicEndMarker uint16 = 0x1E1A

// Field type codes used in the field table's field_type slot.
const (
	fieldTypeJSONMetaLegacy uint32 = 7
	fieldTypeJSONMetaNew    uint32 = 8
)

// field is one entry in the container's field table: a type tag plus
// its raw byte payload.
type field struct {
	Type uint32
	Data []byte
}

// parseFraming reads the trailing magic marker, region offset, and
// field table out of a capture file's byte buffer, bit-exact with the
// on-disk framing: magic (2 bytes BE) | region_offset (4 bytes BE,
// offset from EOF) ... field_count (4 bytes BE) followed by
// field_count {field_type, field_size, field_data} triples.
func parseFraming(data []byte) ([]field, error) {
	if len(data) < 6 {
		return nil, ErrTruncatedContainer
	}

	magic := binary.BigEndian.Uint16(data[len(data)-2:])
	if magic != magicEndMarker {
		return nil, ErrNotACapture
	}

	regionOffset := binary.BigEndian.Uint32(data[len(data)-6 : len(data)-2])
	if uint64(regionOffset) > uint64(len(data)) {
		return nil, ErrTruncatedContainer
	}
	regionStart := len(data) - int(regionOffset)
	if regionStart < 0 {
		return nil, ErrTruncatedContainer
	}

	cursor := data[regionStart:]
	if len(cursor) < 4 {
		return nil, ErrTruncatedContainer
	}
	fieldCount := binary.BigEndian.Uint32(cursor[:4])
	cursor = cursor[4:]

	// Every field consumes at least 8 bytes (type + size) of cursor, so
	// fieldCount can never legitimately exceed that bound; capping the
	// preallocation at it keeps a corrupt, oversized field_count from
	// driving a multi-gigabyte allocation before the truncation check
	// below ever runs.
	preallocCount := fieldCount
	if maxFields := uint32(len(cursor) / 8); preallocCount > maxFields {
		preallocCount = maxFields
	}
	fields := make([]field, 0, preallocCount)
	for i := uint32(0); i < fieldCount; i++ {
		if len(cursor) < 8 {
			return nil, ErrTruncatedContainer
		}
		fieldType := binary.BigEndian.Uint32(cursor[:4])
		fieldSize := binary.BigEndian.Uint32(cursor[4:8])
		cursor = cursor[8:]

		if uint64(len(cursor)) < uint64(fieldSize) {
			return nil, ErrTruncatedContainer
		}
		fieldData := cursor[:fieldSize]
		cursor = cursor[fieldSize:]

		fields = append(fields, field{Type: fieldType, Data: fieldData})
	}

	return fields, nil
}

// findMetadataField picks the JSON descriptor field, preferring
// JSON_META_NEW (8) over the legacy JSON_META (7) when both exist.
func findMetadataField(fields []field) ([]byte, error) {
	var legacy []byte
	for _, f := range fields {
		switch f.Type {
		case fieldTypeJSONMetaNew:
			return f.Data, nil
		case fieldTypeJSONMetaLegacy:
			legacy = f.Data
		}
	}
	if legacy != nil {
		return legacy, nil
	}
	return nil, ErrMissingMetadata
}

// resolveBlob resolves a blob ID to bytes: -1 means "the entire
// container file, interpreted as JPEG"; any other value indexes into
// the field table in declaration order.
func resolveBlob(fields []field, fileBytes []byte, blobID int32) ([]byte, error) {
	if blobID == -1 {
		return fileBytes, nil
	}
	if blobID < 0 || int(blobID) >= len(fields) {
		return nil, ErrInvalidBlobReference
	}
	return fields[blobID].Data, nil
}
