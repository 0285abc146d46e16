package roomresponse

import "github.com/sonara/roomresponse/internal/testutil"

// convolve computes the full linear convolution of a and b (length
// len(a)+len(b)-1), used by tests to synthesize a recording from a
// reference sweep and a known impulse response.
func convolve(a, b []float64) []float64 {
	out := make([]float64, len(a)+len(b)-1)
	for i, av := range a {
		if av == 0 {
			continue
		}
		for j, bv := range b {
			out[i+j] += av * bv
		}
	}
	return out
}

// syntheticReference returns deterministic broadband noise, standing
// in for a registered reference signal in tests that need a sharp
// autocorrelation peak (unlike a pure tone, noise has none of a sine's
// period ambiguity under cross-correlation).
func syntheticReference(length int) []float64 {
	return testutil.DeterministicNoise(1, 1.0, length)
}
