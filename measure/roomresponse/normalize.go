package roomresponse

import "math"

// normalize locates the bin nearest referenceFreqHz and subtracts its
// value from every element, so that bin becomes exactly 0 dB.
// Applying normalize twice is a no-op: the second pass subtracts 0
// from every element, since the anchor bin is already 0.
func normalize(freqs, magDB []float64, referenceFreqHz float64) []float64 {
	out := make([]float64, len(magDB))
	if len(freqs) == 0 {
		return out
	}

	anchor := 0
	best := math.Abs(freqs[0] - referenceFreqHz)
	for i, f := range freqs {
		d := math.Abs(f - referenceFreqHz)
		if d < best {
			best = d
			anchor = i
		}
	}

	shift := magDB[anchor]
	for i, v := range magDB {
		out[i] = v - shift
	}

	return out
}
