package roomresponse

import (
	"math"
	"testing"
)

func logFreqs(n int) []float64 {
	return logSpace(20, 20000, n)
}

func totalVariation(x []float64) float64 {
	var tv float64
	for i := 1; i < len(x); i++ {
		tv += math.Abs(x[i] - x[i-1])
	}
	return tv
}

// TestSmoothFractionalOctaveMonotoneInFraction checks the monotonicity
// property: a larger smoothing fraction never increases
// total variation relative to a smaller one on the same input.
func TestSmoothFractionalOctaveMonotoneInFraction(t *testing.T) {
	freqs := logFreqs(200)
	magDB := make([]float64, len(freqs))
	for i, f := range freqs {
		// A jagged synthetic spectrum with both broad shape and
		// bin-to-bin ripple for smoothing to act on.
		magDB[i] = 10*math.Sin(f/500) + 3*math.Sin(f/13)
	}

	coarse := smoothFractionalOctave(freqs, magDB, 1.0/3)
	fine := smoothFractionalOctave(freqs, magDB, 1.0/24)

	tvCoarse := totalVariation(coarse)
	tvFine := totalVariation(fine)

	if tvCoarse > tvFine {
		t.Fatalf("total variation at 1/3 octave (%v) > at 1/24 octave (%v), want <=", tvCoarse, tvFine)
	}
}

func TestSmoothFractionalOctavePreservesLength(t *testing.T) {
	freqs := logFreqs(50)
	magDB := make([]float64, len(freqs))
	for i := range magDB {
		magDB[i] = -3.0
	}

	out := smoothFractionalOctave(freqs, magDB, 1.0/3)
	if len(out) != len(freqs) {
		t.Fatalf("len(out) = %d, want %d", len(out), len(freqs))
	}
}

func TestSmoothFractionalOctaveFlatInputStaysFlat(t *testing.T) {
	freqs := logFreqs(50)
	magDB := make([]float64, len(freqs))
	for i := range magDB {
		magDB[i] = -6.0
	}

	out := smoothFractionalOctave(freqs, magDB, 1.0/3)
	for i, v := range out {
		if math.Abs(v-(-6.0)) > 1e-6 {
			t.Fatalf("out[%d] = %v, want -6.0 for a flat input", i, v)
		}
	}
}
