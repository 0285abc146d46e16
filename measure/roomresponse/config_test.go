package roomresponse

import "testing"

func TestDefaultConfigIsValid(t *testing.T) {
	if err := DefaultConfig().validate(); err != nil {
		t.Fatalf("DefaultConfig() failed validation: %v", err)
	}
}

func TestApplyConfigOptionsOverridesFields(t *testing.T) {
	cfg := ApplyConfigOptions(
		WithFFTSize(8192),
		WithSmoothingFraction(1.0/6),
		WithReferenceFreqHz(500),
		WithRegularizationLambda(1e-2),
		WithWindowMS(10, 100),
		WithDisplayPoints(64),
		WithModeLimits(3, 1.0/3),
		WithSpectralStats(true),
	)

	if cfg.FFTSize != 8192 {
		t.Errorf("FFTSize = %d, want 8192", cfg.FFTSize)
	}
	if cfg.SmoothingFraction != 1.0/6 {
		t.Errorf("SmoothingFraction = %v, want 1/6", cfg.SmoothingFraction)
	}
	if cfg.ReferenceFreqHz != 500 {
		t.Errorf("ReferenceFreqHz = %v, want 500", cfg.ReferenceFreqHz)
	}
	if cfg.RegularizationLambda != 1e-2 {
		t.Errorf("RegularizationLambda = %v, want 1e-2", cfg.RegularizationLambda)
	}
	if cfg.PreWindowMS != 10 || cfg.PostWindowMS != 100 {
		t.Errorf("window = %v/%v, want 10/100", cfg.PreWindowMS, cfg.PostWindowMS)
	}
	if cfg.DisplayPoints != 64 {
		t.Errorf("DisplayPoints = %d, want 64", cfg.DisplayPoints)
	}
	if cfg.ModeMax != 3 || cfg.ModeMinSpacingOctaves != 1.0/3 {
		t.Errorf("mode limits = %d/%v, want 3/1/3", cfg.ModeMax, cfg.ModeMinSpacingOctaves)
	}
	if !cfg.ComputeSpectralStats {
		t.Error("ComputeSpectralStats = false, want true")
	}

	if err := cfg.validate(); err != nil {
		t.Fatalf("overridden config failed validation: %v", err)
	}
}

func TestConfigValidateRejectsBadFFTSize(t *testing.T) {
	cfg := DefaultConfig()
	cfg.FFTSize = 5000 // not a power of two
	if err := cfg.validate(); err == nil {
		t.Fatal("expected validation error for non-power-of-two FFT size")
	}

	cfg = DefaultConfig()
	cfg.FFTSize = 1024 // below FFTSizeMin
	if err := cfg.validate(); err == nil {
		t.Fatal("expected validation error for FFT size below minimum")
	}
}

func TestConfigValidateRejectsOutOfRangeFields(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"smoothing fraction zero", func(c *Config) { c.SmoothingFraction = 0 }},
		{"smoothing fraction above 1", func(c *Config) { c.SmoothingFraction = 1.5 }},
		{"reference freq non-positive", func(c *Config) { c.ReferenceFreqHz = 0 }},
		{"lambda non-positive", func(c *Config) { c.RegularizationLambda = 0 }},
		{"pre window negative", func(c *Config) { c.PreWindowMS = -1 }},
		{"post window non-positive", func(c *Config) { c.PostWindowMS = 0 }},
		{"display points too small", func(c *Config) { c.DisplayPoints = 1 }},
		{"mode max negative", func(c *Config) { c.ModeMax = -1 }},
		{"mode spacing non-positive", func(c *Config) { c.ModeMinSpacingOctaves = 0 }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(&cfg)
			if err := cfg.validate(); err == nil {
				t.Fatalf("expected validation error for %s", tt.name)
			}
		})
	}
}
