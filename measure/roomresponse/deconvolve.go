package roomresponse

import (
	"fmt"

	algofft "github.com/MeKo-Christian/algo-fft"
)

// deconvolve recovers the impulse response via regularized
// frequency-domain division:
//
//	H[k] = Y[k] * conj(X[k]) / (|X[k]|^2 + lambda)
//
// with Y = FFT(recorded, n), X = FFT(reference, n), n = N+M-1. The
// Tikhonov term lambda bounds the inverse filter's gain where the
// reference spectrum is near zero, which a non-flat sweep spectrum
// otherwise amplifies into noise under naive division.
//
// The returned slice always has length n, regardless of the FFT size
// used internally to compute it.
func deconvolve(recorded, reference []float64, lambda float64) ([]float64, error) {
	n := len(recorded) + len(reference) - 1
	if n <= 0 {
		return nil, newError(KindInvalidRecording, "recording and reference must be non-empty")
	}

	fftSize := nextPowerOf2(n)

	plan, err := algofft.NewPlan64(fftSize)
	if err != nil {
		return nil, fmt.Errorf("roomresponse: deconvolve FFT plan: %w", err)
	}

	yPadded, yHandle := getComplexScratch(fftSize)
	defer putComplexScratch(yHandle)
	for i, v := range recorded {
		yPadded[i] = complex(v, 0)
	}

	xPadded, xHandle := getComplexScratch(fftSize)
	defer putComplexScratch(xHandle)
	for i, v := range reference {
		xPadded[i] = complex(v, 0)
	}

	yFreq, yFreqHandle := getComplexScratch(fftSize)
	defer putComplexScratch(yFreqHandle)
	if err := plan.Forward(yFreq, yPadded); err != nil {
		return nil, fmt.Errorf("roomresponse: deconvolve forward FFT: %w", err)
	}

	xFreq, xFreqHandle := getComplexScratch(fftSize)
	defer putComplexScratch(xFreqHandle)
	if err := plan.Forward(xFreq, xPadded); err != nil {
		return nil, fmt.Errorf("roomresponse: deconvolve forward FFT: %w", err)
	}

	hFreq, hFreqHandle := getComplexScratch(fftSize)
	defer putComplexScratch(hFreqHandle)
	for i := range hFreq {
		xConj := complex(real(xFreq[i]), -imag(xFreq[i]))
		xMagSq := real(xFreq[i])*real(xFreq[i]) + imag(xFreq[i])*imag(xFreq[i])
		hFreq[i] = yFreq[i] * xConj / complex(xMagSq+lambda, 0)
	}

	hTime, hTimeHandle := getComplexScratch(fftSize)
	defer putComplexScratch(hTimeHandle)
	if err := plan.Inverse(hTime, hFreq); err != nil {
		return nil, fmt.Errorf("roomresponse: deconvolve inverse FFT: %w", err)
	}

	out := make([]float64, n)
	for i := range out {
		out[i] = real(hTime[i])
	}

	return out, nil
}
