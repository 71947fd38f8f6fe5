package transport

// MaxChunkSize is the largest payload a single chunk frame may carry,
// leaving headroom under the ~1 MiB message-channel cap for framing
// overhead.
const MaxChunkSize = 800 * 1024

// MaxChunkCount bounds how many chunks a single transfer may declare.
// Reassembler.Deliver preallocates its output buffer off Chunk.Total,
// so an unbounded Total lets one small frame request an arbitrarily
// large allocation; at MaxChunkSize per chunk this still allows
// transfers up to several hundred MiB.
const MaxChunkCount = 4096

// PingTimeoutSeconds is how long a session may go without a new chunk before
// Sweep reports it as timed out.
const PingTimeoutSeconds = 5.0

// RebindWindowSeconds is how recently a direct-request session must
// have started for a response_-prefixed session to bind to it.
const RebindWindowSeconds = 30.0

// Chunk is one frame of a chunked transfer.
type Chunk struct {
	SessionID string
	Index     int
	Total     int
	Bytes     []byte

	// Metadata is only populated on Index == 0.
	Metadata map[string]any
}

// Validate checks the chunk's shape invariants: payload size,
// non-negative total, and index within [0, total).
func (c Chunk) Validate() error {
	if len(c.Bytes) > MaxChunkSize {
		return ErrChunkTooLarge
	}
	if c.Total <= 0 || c.Index < 0 || c.Index >= c.Total {
		return ErrIndexOutOfRange
	}
	if c.Total > MaxChunkCount {
		return ErrTooManyChunks
	}
	return nil
}
