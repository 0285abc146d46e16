package roomresponse

import (
	"fmt"
	"math"
	"math/cmplx"

	algofft "github.com/MeKo-Christian/algo-fft"
	"github.com/sonara/roomresponse/dsp/resample"
)

// alignResult is the recording's contribution aligned to the start of
// the reference, plus diagnostics about how the alignment was found.
type alignResult struct {
	aligned []float64
	delay   int
	// degenerate is set when the recording was too short relative to
	// the located delay for a full-length window to be extracted; the
	// alignment is still returned, since this component never fails
	// outright.
	degenerate bool
}

// bridgeSampleRate resamples reference samples captured at refRate to
// targetRate when the two differ, using the configured quality
// profile. This keeps cross-correlation meaningful when a caller pairs
// a catalogue reference with a recording captured at a different rate;
// the reference catalogue is nominally 44.1 kHz, but recordings are
// free to use any rate.
func bridgeSampleRate(samples []float64, refRate, targetRate int, quality resample.Quality) ([]float64, error) {
	if refRate == targetRate || len(samples) == 0 {
		return samples, nil
	}

	r, err := resample.NewForRates(float64(refRate), float64(targetRate), resample.WithQuality(quality))
	if err != nil {
		return nil, fmt.Errorf("roomresponse: sample-rate bridge failed: %w", err)
	}

	out := r.Process(samples)
	// Flush the resampler's internal history by feeding a short tail
	// of silence; this mirrors the finite-impulse-response flush
	// pattern used for offline (non-streaming) resampling.
	flushLen := r.TapsPerPhase() + 1
	tail := r.Process(make([]float64, flushLen))
	return append(out, tail...), nil
}

// align locates the reference sweep inside the recording via
// cross-correlation and returns the recording's contribution aligned
// to the start of the reference
func align(recorded, reference []float64) (alignResult, error) {
	n := len(recorded)
	m := len(reference)

	if n == 0 || m == 0 {
		return alignResult{}, newError(KindInvalidRecording, "recording and reference must be non-empty")
	}

	if n < m {
		// N < M: correlation degenerates to a single lag; return what
		// we have per the "never fails" edge case.
		out := make([]float64, n)
		copy(out, recorded)
		return alignResult{aligned: out, delay: 0, degenerate: true}, nil
	}

	delay, err := crossCorrelateArgmax(recorded, reference)
	if err != nil {
		return alignResult{}, err
	}

	if delay >= n {
		out := make([]float64, m)
		copy(out, recorded[:min(m, n)])
		return alignResult{aligned: out, delay: delay, degenerate: true}, nil
	}

	end := delay + m
	degenerate := false
	if end > n {
		end = n
		degenerate = true
	}

	out := make([]float64, end-delay)
	copy(out, recorded[delay:end])

	return alignResult{aligned: out, delay: delay, degenerate: degenerate}, nil
}

// crossCorrelateArgmax computes c[k] = sum_i recorded[k+i]*reference[i]
// for k in [0, N-M] via FFT, and returns argmax_k |c[k]|.
//
// This is the valid-mode cross-correlation of , computed as
// the linear correlation of recorded against reference (length N+M-1)
// restricted to the first N-M+1 lags, which coincide with valid-mode
// lags because reference does not extend past recorded at any of
// them.
func crossCorrelateArgmax(recorded, reference []float64) (int, error) {
	n := len(recorded)
	m := len(reference)

	fftLen := n + m - 1
	fftSize := nextPowerOf2(fftLen)

	plan, err := algofft.NewPlan64(fftSize)
	if err != nil {
		return 0, fmt.Errorf("roomresponse: align FFT plan: %w", err)
	}

	a := make([]complex128, fftSize)
	for i, v := range recorded {
		a[i] = complex(v, 0)
	}

	b := make([]complex128, fftSize)
	for i, v := range reference {
		b[i] = complex(v, 0)
	}

	aFreq := make([]complex128, fftSize)
	if err := plan.Forward(aFreq, a); err != nil {
		return 0, fmt.Errorf("roomresponse: align forward FFT: %w", err)
	}

	bFreq := make([]complex128, fftSize)
	if err := plan.Forward(bFreq, b); err != nil {
		return 0, fmt.Errorf("roomresponse: align forward FFT: %w", err)
	}

	// Cross-correlation via FFT: IFFT(FFT(a) * conj(FFT(b))). Result
	// index i corresponds directly to lag i: corrTime[k] already
	// equals sum_i recorded[k+i]*reference[i], with no offset.
	prod := make([]complex128, fftSize)
	for i := range prod {
		prod[i] = aFreq[i] * cmplx.Conj(bFreq[i])
	}

	corrTime := make([]complex128, fftSize)
	if err := plan.Inverse(corrTime, prod); err != nil {
		return 0, fmt.Errorf("roomresponse: align inverse FFT: %w", err)
	}

	maxLag := n - m
	bestK, bestAbs := 0, math.Inf(-1)
	for k := 0; k <= maxLag; k++ {
		v := math.Abs(real(corrTime[k]))
		if v > bestAbs {
			bestAbs = v
			bestK = k
		}
	}

	return bestK, nil
}
