package container

import (
	"bytes"
	"encoding/binary"
	"testing"
)

// buildContainer assembles a synthetic capture file: arbitrary
// "blob" payload bytes followed by a field table and trailer, mirroring
// the on-disk framing parseFraming expects.
func buildContainer(t *testing.T, blobs [][]byte, fieldTypes []uint32, fieldData [][]byte) []byte {
	t.Helper()

	var payload bytes.Buffer
	for _, b := range blobs {
		payload.Write(b)
	}
	payloadLen := payload.Len()

	var region bytes.Buffer
	binary.Write(&region, binary.BigEndian, uint32(len(fieldTypes)))
	for i := range fieldTypes {
		binary.Write(&region, binary.BigEndian, fieldTypes[i])
		binary.Write(&region, binary.BigEndian, uint32(len(fieldData[i])))
		region.Write(fieldData[i])
	}

	var buf bytes.Buffer
	buf.Write(payload.Bytes())
	buf.Write(region.Bytes())
	// regionOffset is EOF-relative, so it must also count the 4-byte
	// offset field and 2-byte magic trailer written after it.
	regionOffset := uint32(buf.Len()-payloadLen) + 6
	binary.Write(&buf, binary.BigEndian, regionOffset)
	binary.Write(&buf, binary.BigEndian, magicEndMarker)

	return buf.Bytes()
}

func TestParseFraming_RoundTrip(t *testing.T) {
	data := buildContainer(t, nil,
		[]uint32{fieldTypeJSONMetaNew},
		[][]byte{[]byte(`{"views":[]}`)},
	)

	fields, err := parseFraming(data)
	if err != nil {
		t.Fatalf("parseFraming() error = %v", err)
	}
	if len(fields) != 1 {
		t.Fatalf("len(fields) = %d, want 1", len(fields))
	}
	if fields[0].Type != fieldTypeJSONMetaNew {
		t.Errorf("fields[0].Type = %d, want %d", fields[0].Type, fieldTypeJSONMetaNew)
	}
	if string(fields[0].Data) != `{"views":[]}` {
		t.Errorf("fields[0].Data = %q, want the JSON literal", fields[0].Data)
	}
}

func TestParseFraming_BadMagic(t *testing.T) {
	data := []byte{0, 0, 0, 0, 0xAB, 0xCD}
	if _, err := parseFraming(data); err != ErrNotACapture {
		t.Errorf("parseFraming() error = %v, want ErrNotACapture", err)
	}
}

func TestParseFraming_Truncated(t *testing.T) {
	tests := []struct {
		name string
		data []byte
	}{
		{"too short for magic", []byte{0x1E}},
		{"region offset beyond buffer", func() []byte {
			var buf bytes.Buffer
			binary.Write(&buf, binary.BigEndian, uint32(1000))
			binary.Write(&buf, binary.BigEndian, magicEndMarker)
			return buf.Bytes()
		}()},
		{"field table cut short", func() []byte {
			var buf bytes.Buffer
			binary.Write(&buf, binary.BigEndian, uint32(3)) // claims 3 fields, has 0
			regionOffset := uint32(buf.Len()) + 6
			binary.Write(&buf, binary.BigEndian, regionOffset)
			binary.Write(&buf, binary.BigEndian, magicEndMarker)
			return buf.Bytes()
		}()},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := parseFraming(tt.data); err != ErrTruncatedContainer {
				t.Errorf("parseFraming() error = %v, want ErrTruncatedContainer", err)
			}
		})
	}
}

func TestFindMetadataField_PrefersNew(t *testing.T) {
	fields := []field{
		{Type: fieldTypeJSONMetaLegacy, Data: []byte("legacy")},
		{Type: fieldTypeJSONMetaNew, Data: []byte("new")},
	}
	got, err := findMetadataField(fields)
	if err != nil {
		t.Fatalf("findMetadataField() error = %v", err)
	}
	if string(got) != "new" {
		t.Errorf("findMetadataField() = %q, want %q", got, "new")
	}
}

func TestFindMetadataField_FallsBackToLegacy(t *testing.T) {
	fields := []field{{Type: fieldTypeJSONMetaLegacy, Data: []byte("legacy")}}
	got, err := findMetadataField(fields)
	if err != nil {
		t.Fatalf("findMetadataField() error = %v", err)
	}
	if string(got) != "legacy" {
		t.Errorf("findMetadataField() = %q, want %q", got, "legacy")
	}
}

func TestFindMetadataField_Missing(t *testing.T) {
	if _, err := findMetadataField(nil); err != ErrMissingMetadata {
		t.Errorf("findMetadataField() error = %v, want ErrMissingMetadata", err)
	}
}

func TestResolveBlob_Inline(t *testing.T) {
	fileBytes := []byte("whole file jpeg bytes")
	got, err := resolveBlob(nil, fileBytes, -1)
	if err != nil {
		t.Fatalf("resolveBlob() error = %v", err)
	}
	if !bytes.Equal(got, fileBytes) {
		t.Errorf("resolveBlob(-1) = %q, want the whole file", got)
	}
}

func TestResolveBlob_Indexed(t *testing.T) {
	fields := []field{{Data: []byte("zero")}, {Data: []byte("one")}}
	got, err := resolveBlob(fields, nil, 1)
	if err != nil {
		t.Fatalf("resolveBlob() error = %v", err)
	}
	if string(got) != "one" {
		t.Errorf("resolveBlob(1) = %q, want %q", got, "one")
	}
}

func TestResolveBlob_OutOfRange(t *testing.T) {
	if _, err := resolveBlob(nil, nil, 5); err != ErrInvalidBlobReference {
		t.Errorf("resolveBlob(5) error = %v, want ErrInvalidBlobReference", err)
	}
}
