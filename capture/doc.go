// Package capture holds the normalized Capture/View/Layer data model a
// container is parsed into, the per-frame RenderCamera and
// ConvergencePlane types the XR Session Manager and Renderer Core
// exchange, and Arena, which owns a capture's GPU texture lifetime.
//
// # Ownership
//
// A Capture is produced by container.Parse and owned by exactly one
// Arena for as long as its layer textures exist. Arena hands out
// TextureHandle values scoped to a generation counter rather than raw
// gpucore.TextureID values, so a handle retained past the arena's
// teardown (Release) is detectably stale instead of aliasing whatever
// capture's textures happen to reuse that ID next.
//
// # Invariants
//
// Validate checks the structural invariants every Capture must
// satisfy: 1 or 2 views, 1-4 layers per view, and a normalized inverse
// depth range (Min > Max) per layer. container.Parse calls Validate
// after normalization; callers building captures by hand (tests,
// synthetic fixtures) should call it too.
package capture
