package roomresponse

import "github.com/sonara/roomresponse/dsp/resample"

// FFTSizeMin is the smallest permitted Config.FFTSize.
const FFTSizeMin = 4096

// Config holds the tunable parameters of the analysis pipeline. A zero
// Config is not valid; use DefaultConfig and override fields, or
// ApplyConfigOptions with functional options.
type Config struct {
	// FFTSize is the FFT length used by the spectrum extractor (C5).
	// Must be a power of two >= FFTSizeMin.
	FFTSize int

	// SmoothingFraction is the octave fraction used by the fractional
	// octave smoother (C6). Permitted range: (0, 1].
	SmoothingFraction float64

	// ReferenceFreqHz is the normalization anchor (C7).
	ReferenceFreqHz float64

	// RegularizationLambda is the Tikhonov term used by the
	// deconvolver (C3). Must be > 0.
	RegularizationLambda float64

	// PreWindowMS and PostWindowMS bound the impulse windower (C4).
	PreWindowMS  float64
	PostWindowMS float64

	// DisplayPoints is the log resampler's (C8) output count.
	DisplayPoints int

	// ModeMax caps the room-mode calculator's (C9) output length.
	ModeMax int

	// ModeMinSpacingOctaves is the room-mode calculator's (C9)
	// thinning threshold, expressed as an octave fraction (e.g. 1/6).
	ModeMinSpacingOctaves float64

	// ComputeSpectralStats attaches frequency-domain descriptors
	// (centroid, spread, flatness, rolloff, bandwidth) to Result when
	// true. Off by default; a supplement to the mandatory fields, not
	// a replacement for any of them.
	ComputeSpectralStats bool

	// ResampleQuality selects the anti-aliasing profile used to
	// reconcile a reference signal's sample rate with the recording's
	// before cross-correlation, when they differ.
	ResampleQuality resample.Quality
}

// DefaultConfig returns the canonical configuration: 32768-point FFT,
// 1/3-octave smoothing, 1 kHz anchor, lambda=1e-3, 50/400 ms
// windowing, 300 display points, up to 5 room modes spaced at least
// 1/6 octave apart.
func DefaultConfig() Config {
	return Config{
		FFTSize:               32768,
		SmoothingFraction:     1.0 / 3.0,
		ReferenceFreqHz:       1000,
		RegularizationLambda:  1e-3,
		PreWindowMS:           50,
		PostWindowMS:          400,
		DisplayPoints:         300,
		ModeMax:               5,
		ModeMinSpacingOctaves: 1.0 / 6.0,
		ComputeSpectralStats:  false,
		ResampleQuality:       resample.QualityBalanced,
	}
}

// Option mutates a Config built from DefaultConfig.
type Option func(*Config)

// WithFFTSize overrides the spectrum extractor's FFT length.
func WithFFTSize(n int) Option {
	return func(c *Config) { c.FFTSize = n }
}

// WithSmoothingFraction overrides the fractional-octave smoothing width.
func WithSmoothingFraction(f float64) Option {
	return func(c *Config) { c.SmoothingFraction = f }
}

// WithReferenceFreqHz overrides the normalization anchor frequency.
func WithReferenceFreqHz(f float64) Option {
	return func(c *Config) { c.ReferenceFreqHz = f }
}

// WithRegularizationLambda overrides the deconvolver's Tikhonov term.
func WithRegularizationLambda(lambda float64) Option {
	return func(c *Config) { c.RegularizationLambda = lambda }
}

// WithWindowMS overrides the impulse windower's pre/post bounds.
func WithWindowMS(preMS, postMS float64) Option {
	return func(c *Config) {
		c.PreWindowMS = preMS
		c.PostWindowMS = postMS
	}
}

// WithDisplayPoints overrides the log resampler's output count.
func WithDisplayPoints(n int) Option {
	return func(c *Config) { c.DisplayPoints = n }
}

// WithModeLimits overrides the room-mode calculator's cap and thinning
// spacing (expressed as an octave fraction).
func WithModeLimits(maxModes int, minSpacingOctaves float64) Option {
	return func(c *Config) {
		c.ModeMax = maxModes
		c.ModeMinSpacingOctaves = minSpacingOctaves
	}
}

// WithSpectralStats toggles the optional SpectralStats enrichment.
func WithSpectralStats(enabled bool) Option {
	return func(c *Config) { c.ComputeSpectralStats = enabled }
}

// WithResampleQuality overrides the sample-rate bridge's quality profile.
func WithResampleQuality(q resample.Quality) Option {
	return func(c *Config) { c.ResampleQuality = q }
}

// ApplyConfigOptions applies zero or more options atop DefaultConfig.
func ApplyConfigOptions(opts ...Option) Config {
	cfg := DefaultConfig()
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}
	return cfg
}

// validate checks that every field is within its documented range,
// returning a *Error{Kind: KindInvalidConfiguration} describing the
// first violation found.
func (c Config) validate() error {
	if c.FFTSize < FFTSizeMin || c.FFTSize&(c.FFTSize-1) != 0 {
		return newError(KindInvalidConfiguration, "fft_size must be a power of two >= %d, got %d", FFTSizeMin, c.FFTSize)
	}
	if c.SmoothingFraction <= 0 || c.SmoothingFraction > 1 {
		return newError(KindInvalidConfiguration, "smoothing_fraction must be in (0, 1], got %g", c.SmoothingFraction)
	}
	if c.ReferenceFreqHz <= 0 {
		return newError(KindInvalidConfiguration, "reference_freq_hz must be > 0, got %g", c.ReferenceFreqHz)
	}
	if c.RegularizationLambda <= 0 {
		return newError(KindInvalidConfiguration, "regularization_lambda must be > 0, got %g", c.RegularizationLambda)
	}
	if c.PreWindowMS < 0 || c.PostWindowMS <= 0 {
		return newError(KindInvalidConfiguration, "pre/post_window_ms must be non-negative with a positive post window, got %g/%g", c.PreWindowMS, c.PostWindowMS)
	}
	if c.DisplayPoints < 2 {
		return newError(KindInvalidConfiguration, "display_points must be >= 2, got %d", c.DisplayPoints)
	}
	if c.ModeMax < 0 {
		return newError(KindInvalidConfiguration, "mode_max must be >= 0, got %d", c.ModeMax)
	}
	if c.ModeMinSpacingOctaves <= 0 {
		return newError(KindInvalidConfiguration, "mode_min_spacing_octaves must be > 0, got %g", c.ModeMinSpacingOctaves)
	}
	return nil
}
