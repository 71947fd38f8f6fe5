package raycast

const (
	// NCoarseMN is the coarse march step count for a mono-to-mono (or
	// mono-to-stereo-eye) projection.
	NCoarseMN = 40
	// NCoarseST is the coarse march step count used once a stereo
	// input view is available, which narrows the search range enough
	// to spend fewer coarse steps before the binary refine.
	NCoarseST = 8
	// NFine is the number of binary-refine bisection steps run after
	// a stereo coarse march locates a bracketing interval.
	NFine = 5
)

// StretchGradientCoefficient and StretchGradientBaselineSteps parameterize
// stretchThreshold. Both are exported (rather than folded into a single
// unexported constant) so property-based tests can probe the gradient
// check at its exact threshold without reaching into march step counts.
var (
	StretchGradientCoefficient   = 0.02
	StretchGradientBaselineSteps = 140.0
)

// stretchThreshold bounds how fast the projected input coordinate may
// move between adjacent coarse steps before a sample is flagged as a
// stretch artifact (the ray grazing a depth discontinuity). A flagged
// hit is still returned and composited; the flag only steers
// stereoBlendWeight. It scales with the layer's own depth range and inversely
// with the step count, so a layer with a wide Min-Max spread or a
// coarser march doesn't get spuriously flagged for jumps that are
// merely the expected spacing between steps.
func stretchThreshold(layer InputLayer, n int) float64 {
	depthRange := layer.Min - layer.Max
	return StretchGradientCoefficient * depthRange * StretchGradientBaselineSteps / float64(n)
}

// marchHit is one accepted sample along a coarse (or refined) march:
// the input-view layer it hit, the input-view coordinate, and the
// inverse depth at the hit.
type marchHit struct {
	LayerIndex int
	U, V       float64
	InvZ       float64
	Stretched  bool
}

// coarseMarch steps invZ from layer.Min to layer.Max in n uniform
// steps, projecting each hypothesis into the input view via frame.s1
// (shifted from its documented [-0.5,0.5]^2 convention into [0,1]
// normalized image coordinates before any sample or bounds check).
// A step is a hit once the input view's own sampled inverse depth at
// the projected coordinate overshoots the hypothesis (disp > invZ):
// marching from the nearest depth outward, that is the first step
// that has crossed through the surface. invZ2 guards against accepting
// a hit that lands behind the output camera. Adjacent accepted steps
// whose projected (u,v) jump by more than stretchThreshold are flagged
// Stretched so composition can discount them.
func coarseMarch(frame projectionFrame, layer InputLayer, s2x, s2y float64, n int, sampleInvZ func(u, v float64) float64) (marchHit, bool) {
	if !frame.valid || n <= 0 {
		return marchHit{}, false
	}

	step := (layer.Max - layer.Min) / float64(n-1)
	if n == 1 {
		step = 0
	}
	threshold := stretchThreshold(layer, n)

	var prevU, prevV float64
	havePrev := false

	for i := 0; i < n; i++ {
		invZ := layer.Min + step*float64(i)
		u, v := frame.s1(s2x, s2y, invZ)
		u += 0.5
		v += 0.5
		if u < 0 || u > 1 || v < 0 || v > 1 {
			havePrev = false
			continue
		}

		sampled := sampleInvZ(u, v)
		if sampled > invZ && frame.invZ2(s2x, s2y, invZ) > 0 {
			stretched := false
			if havePrev {
				du, dv := u-prevU, v-prevV
				if du*du+dv*dv > threshold*threshold {
					stretched = true
				}
			}
			return marchHit{U: u, V: v, InvZ: invZ, Stretched: stretched}, true
		}

		prevU, prevV = u, v
		havePrev = true
	}

	return marchHit{}, false
}

// agreeTolerance bounds how close two inverse-depth values must be to
// count as converged; used by tests asserting a march result landed
// near an expected depth. binaryRefine uses its own refineTolerance.
const agreeTolerance = 1e-2

func agrees(sampled, hypothesis float64) bool {
	d := sampled - hypothesis
	if d < 0 {
		d = -d
	}
	return d < agreeTolerance
}

// binaryRefine bisects around a coarse hit for NFine steps, narrowing
// the bracket [lo,hi] of invZ values straddling the surface until the
// sampled-vs-hypothesis gap is below refineTolerance or the step
// budget runs out. Only used once a stereo second input view has
// narrowed the coarse search (ST variants); mono-only pipelines rely
// on coarseMarch's resolution alone.
func binaryRefine(frame projectionFrame, s2x, s2y, lo, hi float64, sampleInvZ func(u, v float64) float64) (u, v, invZ float64) {
	const refineTolerance = 1e-3

	for i := 0; i < NFine; i++ {
		mid := (lo + hi) / 2
		u, v = frame.s1(s2x, s2y, mid)
		u += 0.5
		v += 0.5
		sampled := sampleInvZ(u, v)
		invZ = mid

		d := sampled - mid
		if d < 0 {
			d = -d
		}
		if d < refineTolerance {
			break
		}
		if sampled > mid {
			lo = mid
		} else {
			hi = mid
		}
	}
	return u, v, invZ
}
