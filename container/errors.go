package container

import "errors"

var (
	// ErrNotACapture is returned when the trailing magic end marker
	// does not match 0x1E1A.
	ErrNotACapture = errors.New("container: not a capture file (bad magic)")

	// ErrTruncatedContainer is returned when the byte buffer is too
	// short to contain the field declared by its own framing.
	ErrTruncatedContainer = errors.New("container: truncated container")

	// ErrMissingMetadata is returned when neither a JSON_META_NEW (8)
	// nor JSON_META (7) field is present in the field table.
	ErrMissingMetadata = errors.New("container: missing metadata field")

	// ErrUnsupportedVersion names the failure for a metadata schema
	// version this parser does not understand. Parse does not check the
	// descriptor's version field and does not return this error.
	ErrUnsupportedVersion = errors.New("container: unsupported version")

	// ErrInvalidBlobReference is returned when a blob ID in the
	// metadata does not resolve to an entry in the field table and is
	// not the inline sentinel (-1).
	ErrInvalidBlobReference = errors.New("container: invalid blob reference")

	// ErrImageDecodeFailed is returned when a referenced image blob
	// cannot be decoded to measure its pixel dimensions.
	ErrImageDecodeFailed = errors.New("container: image decode failed")
)
