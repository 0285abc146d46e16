package roomresponse

import (
	"fmt"
	"math"

	algofft "github.com/MeKo-Christian/algo-fft"
	"github.com/sonara/roomresponse/dsp/spectrum"
	"github.com/sonara/roomresponse/dsp/window"
)

const (
	audibleLowHz  = 20.0
	audibleHighHz = 20000.0
	magnitudeFloor = 1e-12
)

// freqResponse is the paired (frequencies, magnitudes-in-dB) sequence
// produced by the spectrum extractor (C5) and carried by every later
// stage of the pipeline. fullMagLinear is the unrestricted one-sided
// linear magnitude spectrum (bin 0 = DC through Nyquist); it exists
// only to feed the optional SpectralStats enrichment (C11) without
// forcing a second FFT.
type freqResponse struct {
	freqs         []float64
	magDB         []float64
	fullMagLinear []float64
}

// extractSpectrum truncates windowed to fftSize samples when it is
// longer, applies a Blackman-Harris window to it, zero-pads
// to fftSize, performs a fixed-size FFT, and returns magnitude-in-dB
// restricted to the audible band [20, 20000] Hz.
func extractSpectrum(windowed []float64, sampleRate float64, fftSize int) (freqResponse, error) {
	if len(windowed) == 0 {
		return freqResponse{}, newError(KindInvalidRecording, "windowed impulse is empty")
	}
	if len(windowed) > fftSize {
		windowed = windowed[:fftSize]
	}

	win := window.Generate(window.TypeBlackmanHarris4Term, len(windowed))

	padded := make([]complex128, fftSize)
	for i, v := range windowed {
		padded[i] = complex(v*win[i], 0)
	}

	plan, err := algofft.NewPlan64(fftSize)
	if err != nil {
		return freqResponse{}, fmt.Errorf("roomresponse: spectrum FFT plan: %w", err)
	}

	spectrumOut := make([]complex128, fftSize)
	if err := plan.Forward(spectrumOut, padded); err != nil {
		return freqResponse{}, fmt.Errorf("roomresponse: spectrum forward FFT: %w", err)
	}

	binCount := fftSize/2 + 1
	mag := spectrum.Magnitude(spectrumOut[:binCount])

	freqs := make([]float64, 0, binCount)
	magDB := make([]float64, 0, binCount)

	binHz := sampleRate / float64(fftSize)
	for k := 0; k < binCount; k++ {
		f := float64(k) * binHz
		if f < audibleLowHz || f > audibleHighHz {
			continue
		}
		freqs = append(freqs, f)
		magDB = append(magDB, 20*math.Log10(mag[k]+magnitudeFloor))
	}

	return freqResponse{freqs: freqs, magDB: magDB, fullMagLinear: mag}, nil
}
