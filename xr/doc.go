// Package xr implements the XR Session Manager: convergence-plane
// derivation from a pair of XR sub-cameras, per-eye canvas sizing,
// per-eye render-camera updates, and the session lifecycle state
// machine. It holds no goroutines — every transition is driven
// synchronously from OnFrame, using values the host supplies each
// frame rather than a background clock.
package xr
