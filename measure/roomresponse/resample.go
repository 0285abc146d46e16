package roomresponse

import (
	"math"

	"github.com/sonara/roomresponse/dsp/spectrum"
)

// logSpace returns n points spaced evenly on a log10 scale between lo
// and hi inclusive (n >= 2).
func logSpace(lo, hi float64, n int) []float64 {
	out := make([]float64, n)
	logLo := math.Log10(lo)
	logHi := math.Log10(hi)
	step := (logHi - logLo) / float64(n-1)

	for i := range out {
		out[i] = math.Pow(10, logLo+step*float64(i))
	}
	out[n-1] = hi

	return out
}

// resampleLog linearly interpolates response over frequencies onto
// displayPoints points spaced logarithmically between 20 Hz and
// 20000 Hz. Targets outside [frequencies[0], frequencies[last]] are
// dropped from the output entirely rather than extrapolated: every
// in-domain target is interpolated by dsp/spectrum.InterpolateLinear,
// and out-of-domain targets never reach it.
func resampleLog(freqs, magDB []float64, displayPoints int) ([]float64, []float64) {
	if len(freqs) == 0 {
		return nil, nil
	}

	targets := logSpace(audibleLowHz, audibleHighHz, displayPoints)

	lo, hi := freqs[0], freqs[len(freqs)-1]
	inRange := make([]float64, 0, displayPoints)
	for _, t := range targets {
		if t >= lo && t <= hi {
			inRange = append(inRange, t)
		}
	}
	if len(inRange) == 0 {
		return nil, nil
	}

	outMagDB, err := spectrum.InterpolateLinear(freqs, magDB, inRange)
	if err != nil {
		// freqs is already validated strictly increasing by
		// extractSpectrum; a failure here would be a code defect.
		panic(err)
	}

	return inRange, outMagDB
}
