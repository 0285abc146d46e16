package roomresponse

import (
	"fmt"
	"math"
	"strconv"

	"github.com/sonara/roomresponse/stats/frequency"
)

// Recording is the transient, caller-owned input to Analyze: a mono
// floating-point PCM buffer and its sample rate.
type Recording struct {
	Samples    []float64
	SampleRate int
}

// Point is one (frequency, magnitude) sample of a frequency response.
type Point struct {
	FrequencyHz float64
	MagnitudeDB float64
}

// Result is the output of a successful Analyze call. Every field
// named here mirrors the external analysis result record; SpectralStats
// is an additive, optional enrichment (see Config.ComputeSpectralStats)
// that has no bearing on any of the mandatory fields.
type Result struct {
	FrequencyData []Point
	AnalysisType  string
	Smoothing     string
	FFTSize       int
	Reference     string
	RT60          float64
	RoomModes     []float64

	// SpectralStats is nil unless Config.ComputeSpectralStats was set.
	SpectralStats *frequency.Stats
}

// rt60Placeholder is the literal RT60 value populated by Analyze. Real
// reverberation-time estimation is out of scope for the core; see
// measure/roommetrics for an opt-in, separate extended-metrics
// computation that a caller may run alongside Analyze.
const rt60Placeholder = 0.5

const analysisTypeSweepDeconvolution = "sweep_deconvolution"

// Analyze sequences C1 through C9 (room modes only when room is
// non-nil), and returns either a fully populated
// Result or a *Error. No partial Result is ever returned alongside a
// non-nil error.
func Analyze(recording Recording, signalID string, room *Room, registry *Registry, opts ...Option) (Result, error) {
	cfg := ApplyConfigOptions(opts...)
	if err := cfg.validate(); err != nil {
		return Result{}, err
	}

	ref, ok := registry.Get(signalID)
	if !ok {
		return Result{}, newError(KindUnknownSignal, "signal id %q is not registered or failed to load", signalID)
	}

	if err := validateRecording(recording, ref); err != nil {
		return Result{}, err
	}

	refSamples, err := bridgeSampleRate(ref.Samples, ref.SampleRate, recording.SampleRate, cfg.ResampleQuality)
	if err != nil {
		return Result{}, err
	}

	if len(recording.Samples) < len(refSamples) {
		return Result{}, newError(KindInvalidRecording, "recording (%d samples) is shorter than the reference (%d samples)", len(recording.Samples), len(refSamples))
	}

	aligned, err := align(recording.Samples, refSamples)
	if err != nil {
		return Result{}, err
	}

	impulse, err := deconvolve(aligned.aligned, refSamples, cfg.RegularizationLambda)
	if err != nil {
		return Result{}, err
	}

	windowed := windowImpulse(impulse, float64(recording.SampleRate), cfg.PreWindowMS, cfg.PostWindowMS)
	if len(windowed) == 0 {
		return Result{}, newError(KindNumericFailure, "windowed impulse is empty")
	}

	spec, err := extractSpectrum(windowed, float64(recording.SampleRate), cfg.FFTSize)
	if err != nil {
		return Result{}, err
	}
	if len(spec.freqs) == 0 {
		return Result{}, newError(KindNumericFailure, "spectrum extraction produced no bins in the audible band")
	}

	smoothed := smoothFractionalOctave(spec.freqs, spec.magDB, cfg.SmoothingFraction)
	normalized := normalize(spec.freqs, smoothed, cfg.ReferenceFreqHz)
	for _, v := range normalized {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return Result{}, newError(KindNumericFailure, "normalization produced a non-finite value")
		}
	}

	outFreqs, outMagDB := resampleLog(spec.freqs, normalized, cfg.DisplayPoints)

	frequencyData := make([]Point, len(outFreqs))
	for i := range outFreqs {
		frequencyData[i] = Point{FrequencyHz: outFreqs[i], MagnitudeDB: outMagDB[i]}
	}

	var modes []float64
	if room != nil {
		modes = RoomModes(*room, cfg.ModeMax, cfg.ModeMinSpacingOctaves)
	}

	result := Result{
		FrequencyData: frequencyData,
		AnalysisType:  analysisTypeSweepDeconvolution,
		Smoothing:     formatSmoothingTag(cfg.SmoothingFraction),
		FFTSize:       cfg.FFTSize,
		Reference:     signalID,
		RT60:          rt60Placeholder,
		RoomModes:     modes,
	}

	if cfg.ComputeSpectralStats {
		stats := frequency.Calculate(spec.fullMagLinear, float64(recording.SampleRate))
		result.SpectralStats = &stats
	}

	return result, nil
}

// validateRecording checks the InvalidRecording preconditions that
// don't depend on the (possibly rate-bridged) reference length: the
// recording is non-empty, has a positive sample rate and only finite
// samples, and the reference has samples.
func validateRecording(recording Recording, ref Reference) error {
	if len(recording.Samples) == 0 {
		return newError(KindInvalidRecording, "recording is empty")
	}
	if recording.SampleRate <= 0 {
		return newError(KindInvalidRecording, "recording sample rate must be positive, got %d", recording.SampleRate)
	}
	for _, v := range recording.Samples {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return newError(KindInvalidRecording, "recording contains non-finite samples")
		}
	}
	if len(ref.Samples) == 0 {
		return newError(KindInvalidRecording, "reference signal has no samples")
	}
	return nil
}

// formatSmoothingTag echoes the configured smoothing fraction as a
// human-readable tag, preferring a small-integer "1/N" form for the
// common octave fractions (1/3, 1/6, 1/12, 1/24, ...) and falling back
// to a decimal otherwise.
func formatSmoothingTag(fraction float64) string {
	for n := 1; n <= 48; n++ {
		if math.Abs(1/float64(n)-fraction) < 1e-9 {
			return fmt.Sprintf("1/%d octave", n)
		}
	}
	return strconv.FormatFloat(fraction, 'g', -1, 64) + " octave"
}
