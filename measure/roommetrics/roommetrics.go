// Package roommetrics computes ISO 3382-style acoustic decay metrics
// (EDT, T20, T30, clarity, definition, center time) from an already
// windowed impulse response. It is a separate, opt-in companion to
// measure/roomresponse.Analyze: nothing here participates in, or
// overrides, that pipeline's RT60 placeholder field.
package roommetrics

import (
	"errors"

	"github.com/sonara/roomresponse/measure/ir"
)

// ErrEmptyImpulse is returned when the impulse response has no samples.
var ErrEmptyImpulse = errors.New("roommetrics: impulse response is empty")

// ErrInvalidSampleRate is returned when sampleRate is not positive.
var ErrInvalidSampleRate = errors.New("roommetrics: sample rate must be positive")

// Metrics holds the extended decay metrics for a single impulse
// response, named after their ISO 3382 counterparts.
type Metrics struct {
	// EDT is the early decay time, extrapolated from the 0 to -10 dB
	// slope of the Schroeder decay curve, in seconds.
	EDT float64

	// T20 and T30 are reverberation-time estimates extrapolated from
	// the -5/-25 dB and -5/-35 dB slopes respectively, in seconds.
	T20 float64
	T30 float64

	// C50 and C80 are clarity indices at 50 ms and 80 ms, in dB.
	C50 float64
	C80 float64

	// D50 and D80 are definition ratios at 50 ms and 80 ms, in [0, 1].
	D50 float64
	D80 float64

	// CenterTime is the energy centroid of the decay, in seconds.
	CenterTime float64
}

// Analyze computes Metrics for a windowed impulse response sampled at
// sampleRate. The impulse is expected to already be trimmed to the
// direct-sound region, e.g. the output of a roomresponse deconvolution
// stage before spectrum extraction; Analyze itself re-locates the peak
// and measures decay from there.
func Analyze(impulse []float64, sampleRate float64) (Metrics, error) {
	if len(impulse) == 0 {
		return Metrics{}, ErrEmptyImpulse
	}
	if sampleRate <= 0 {
		return Metrics{}, ErrInvalidSampleRate
	}

	analyzer := ir.NewAnalyzer(sampleRate)
	m, err := analyzer.Analyze(impulse)
	if err != nil {
		return Metrics{}, err
	}

	return Metrics{
		EDT:        m.EDT,
		T20:        m.T20,
		T30:        m.T30,
		C50:        m.C50,
		C80:        m.C80,
		D50:        m.D50,
		D80:        m.D80,
		CenterTime: m.CenterTime,
	}, nil
}
