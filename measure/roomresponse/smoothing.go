package roomresponse

import (
	"math"

	"github.com/sonara/roomresponse/dsp/spectrum"
)

// smoothFractionalOctave applies fractional-octave smoothing to magDB
// (in dB): magnitudes are converted to linear power, averaged with
// dsp/spectrum.SmoothFractionalOctave, and converted back to dB.
// Averaging happens in the power domain, never directly on dB values,
// since dB-domain averaging biases toward peaks.
//
// fraction is an octave fraction such as 1/3 or 1/6; it is rounded to
// the nearest integer N (1/N-octave bands), the unit the underlying
// averager expects.
func smoothFractionalOctave(freqs, magDB []float64, fraction float64) []float64 {
	n := int(math.Round(1 / fraction))
	if n < 1 {
		n = 1
	}

	power := make([]float64, len(magDB))
	for i, db := range magDB {
		power[i] = math.Pow(10, db/10)
	}

	smoothedPower, err := spectrum.SmoothFractionalOctave(freqs, power, n)
	if err != nil {
		// freqs/power are already validated by extractSpectrum
		// (strictly increasing, positive); a failure here would be a
		// code defect, not a runtime condition callers recover from.
		panic(err)
	}

	out := make([]float64, len(smoothedPower))
	for i, p := range smoothedPower {
		out[i] = 10 * math.Log10(p+magnitudeFloor)
	}

	return out
}
