// Package host implements the Scene Host: two per-eye textured quads
// aligned to the XR session's convergence plane, with a shared
// fade-in ramp and Running-gated visibility.
package host
