// Package calibration applies a piecewise-linear microphone
// correction curve to a frequency response. It is an optional
// collaborator for measure/roomresponse: Analyze never applies a
// calibration curve on its own, since the correct curve depends on
// which microphone captured the recording.
package calibration

import (
	"errors"
	"sort"

	"github.com/sonara/roomresponse/dsp/interp"
)

// ErrTooFewPoints is returned when a Curve has fewer than two points.
var ErrTooFewPoints = errors.New("calibration: curve needs at least two points")

// ErrUnsorted is returned when a Curve's points are not strictly
// increasing in frequency.
var ErrUnsorted = errors.New("calibration: curve points must be strictly increasing in frequency")

// Point is one (frequency Hz, correction dB) anchor of a calibration
// curve. The correction is added to a measured magnitude to compensate
// for the microphone's deviation from a flat response at that
// frequency.
type Point struct {
	FrequencyHz  float64
	CorrectionDB float64
}

// Curve is an immutable, sorted piecewise-linear correction curve.
type Curve struct {
	points []Point
}

// NewCurve builds a Curve from points, which must already be sorted by
// ascending frequency and contain at least two entries.
func NewCurve(points []Point) (Curve, error) {
	if len(points) < 2 {
		return Curve{}, ErrTooFewPoints
	}
	for i := 1; i < len(points); i++ {
		if points[i].FrequencyHz <= points[i-1].FrequencyHz {
			return Curve{}, ErrUnsorted
		}
	}
	cp := make([]Point, len(points))
	copy(cp, points)
	return Curve{points: cp}, nil
}

// Apply adds the curve's interpolated correction to each entry of
// magsDB, returning a new slice the same length as freqs. Frequencies
// outside the curve's range are clamped to the nearest endpoint
// correction, matching the original calibration script's behavior of
// extrapolating flat beyond its measured points.
func (c Curve) Apply(freqs, magsDB []float64) []float64 {
	out := make([]float64, len(freqs))
	if len(c.points) == 0 {
		copy(out, magsDB)
		return out
	}

	curveFreqs := make([]float64, len(c.points))
	for i, p := range c.points {
		curveFreqs[i] = p.FrequencyHz
	}

	lerp := interp.NewLagrangeInterpolator(1)
	lo, hi := c.points[0], c.points[len(c.points)-1]

	for i, f := range freqs {
		var correction float64
		switch {
		case f <= lo.FrequencyHz:
			correction = lo.CorrectionDB
		case f >= hi.FrequencyHz:
			correction = hi.CorrectionDB
		default:
			idx := sort.SearchFloat64s(curveFreqs, f)
			if curveFreqs[idx] == f {
				correction = c.points[idx].CorrectionDB
			} else {
				x0, x1 := c.points[idx-1], c.points[idx]
				frac := (f - x0.FrequencyHz) / (x1.FrequencyHz - x0.FrequencyHz)
				correction = lerp.Interpolate([]float64{x0.CorrectionDB, x1.CorrectionDB}, frac)
			}
		}
		out[i] = magsDB[i] + correction
	}

	return out
}

// FIFINEK669 returns the correction curve for the FIFINE K669 USB
// microphone: a low-frequency rolloff compensation below 100 Hz, a
// flat midrange, and a high-frequency rolloff compensation above
// 12 kHz.
func FIFINEK669() Curve {
	c, err := NewCurve([]Point{
		{FrequencyHz: 20, CorrectionDB: 12},
		{FrequencyHz: 50, CorrectionDB: 3},
		{FrequencyHz: 100, CorrectionDB: 0},
		{FrequencyHz: 200, CorrectionDB: 0},
		{FrequencyHz: 500, CorrectionDB: 0},
		{FrequencyHz: 1000, CorrectionDB: 0},
		{FrequencyHz: 2000, CorrectionDB: -1},
		{FrequencyHz: 5000, CorrectionDB: -2},
		{FrequencyHz: 8000, CorrectionDB: -3},
		{FrequencyHz: 10000, CorrectionDB: -3.5},
		{FrequencyHz: 12000, CorrectionDB: -4},
		{FrequencyHz: 16000, CorrectionDB: -2},
		{FrequencyHz: 20000, CorrectionDB: 5},
	})
	if err != nil {
		// The literal above is a fixed, known-good curve; a
		// construction failure here would indicate a code defect,
		// not a runtime condition callers can recover from.
		panic(err)
	}
	return c
}
