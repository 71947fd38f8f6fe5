package xr

import "errors"

// ErrSessionEnded is returned by OnFrame once the session has
// transitioned to SessionEnded; the caller must create a new Session
// to resume rendering.
var ErrSessionEnded = errors.New("xr: session has ended")

// ErrNoCapture is returned by NewSession when the capture has no
// views to derive IPD/focal defaults from.
var ErrNoCapture = errors.New("xr: capture has no views")
