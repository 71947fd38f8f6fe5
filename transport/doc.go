// Package transport implements the chunked external-data channel used
// to move a capture payload too large for a single message-port frame
// across a browser extension message port or a standalone WebSocket
// connection.
//
// The reassembly state machine has no goroutines or timers of its
// own: every transition happens inside Deliver, Rebind, or Sweep,
// called synchronously by the host each time a frame (or a clock
// tick) actually arrives.
package transport
