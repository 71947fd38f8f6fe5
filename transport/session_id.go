package transport

import "github.com/google/uuid"

// responsePrefix marks a session ID as a response_-bound rebind
// target rather than a fresh direct request (see spec §4.7's
// deduplication rule).
const responsePrefix = "response_"

// NewSessionID mints a fresh session ID for a direct request.
func NewSessionID() string {
	return uuid.NewString()
}

// NewResponseSessionID mints a response_-prefixed session ID, used by
// a producer that could not return its payload inline and must bind
// to the consumer's most recent direct request instead.
func NewResponseSessionID() string {
	return responsePrefix + uuid.NewString()
}

// IsResponseSession reports whether sessionID uses the response_
// rebind prefix.
func IsResponseSession(sessionID string) bool {
	return len(sessionID) >= len(responsePrefix) && sessionID[:len(responsePrefix)] == responsePrefix
}
