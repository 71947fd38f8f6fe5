package transport

import "errors"

// ErrChunkTooLarge is returned when a chunk's payload exceeds MaxChunkSize.
var ErrChunkTooLarge = errors.New("transport: chunk payload exceeds max size")

// ErrUnknownSession names a chunk for a session the Reassembler has no
// record of. Reassembler.Deliver does not return it: a chunk with an
// unknown session ID starts a new session, whatever its index.
var ErrUnknownSession = errors.New("transport: unknown session")

// ErrIndexOutOfRange is returned when a chunk's index is not in [0, total).
var ErrIndexOutOfRange = errors.New("transport: chunk index out of range")

// ErrTooManyChunks is returned when a chunk's Total exceeds MaxChunkCount.
var ErrTooManyChunks = errors.New("transport: chunk total exceeds max count")

// ErrDuplicateChunk is returned when a chunk index has already been
// received for its session.
var ErrDuplicateChunk = errors.New("transport: duplicate chunk index")

// ErrPingTimeout names a session that has gone silent longer than
// PingTimeoutSeconds. Reassembler.Sweep reports such sessions by ID and
// does not return this error.
var ErrPingTimeout = errors.New("transport: session ping timeout")

// ErrNoRecentSession is returned when a response_-prefixed session
// arrives but there is no direct-request session young enough to bind
// it to.
var ErrNoRecentSession = errors.New("transport: no recent session to rebind to")
