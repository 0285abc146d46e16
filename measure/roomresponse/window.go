package roomresponse

import "math"

// windowImpulse locates the peak of impulse and extracts a fixed
// acoustic window around it: preMS before the peak, postMS after,
// clamped to the available samples. This captures direct sound plus
// early reflections typical of rooms while discarding late-tail noise.
func windowImpulse(impulse []float64, sampleRate float64, preMS, postMS float64) []float64 {
	if len(impulse) == 0 {
		return nil
	}

	peak := findPeakAbs(impulse)

	pre := int(math.Round(preMS / 1000 * sampleRate))
	post := int(math.Round(postMS / 1000 * sampleRate))

	start := peak - pre
	if start < 0 {
		start = 0
	}

	end := peak + post
	if end > len(impulse) {
		end = len(impulse)
	}

	out := make([]float64, end-start)
	copy(out, impulse[start:end])

	return out
}

// findPeakAbs returns the index of the sample with the largest
// absolute value.
func findPeakAbs(x []float64) int {
	peakIdx := 0
	peakVal := math.Abs(x[0])

	for i, v := range x {
		av := math.Abs(v)
		if av > peakVal {
			peakVal = av
			peakIdx = i
		}
	}

	return peakIdx
}
