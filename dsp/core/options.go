package core

// ProcessorConfig defines the tone detector settings shared by the filter
// front ends, the signal generator and the command line.
type ProcessorConfig struct {
	SampleRate      float64
	TargetFrequency float64
	WindowSize      int
}

// ProcessorOption mutates a ProcessorConfig.
type ProcessorOption func(*ProcessorConfig)

// DefaultProcessorConfig returns telephony defaults: 8 kHz sampling, a
// 1 kHz test tone and the 205-sample block used for DTMF detection.
func DefaultProcessorConfig() ProcessorConfig {
	return ProcessorConfig{
		SampleRate:      8000,
		TargetFrequency: 1000,
		WindowSize:      205,
	}
}

// WithSampleRate sets the sampling frequency in Hz.
func WithSampleRate(sampleRate float64) ProcessorOption {
	return func(cfg *ProcessorConfig) {
		if sampleRate > 0 {
			cfg.SampleRate = sampleRate
		}
	}
}

// WithTargetFrequency sets the frequency to detect in Hz.
func WithTargetFrequency(frequency float64) ProcessorOption {
	return func(cfg *ProcessorConfig) {
		if frequency > 0 {
			cfg.TargetFrequency = frequency
		}
	}
}

// WithWindowSize sets the number of samples per streamed result.
func WithWindowSize(n int) ProcessorOption {
	return func(cfg *ProcessorConfig) {
		if n > 0 {
			cfg.WindowSize = n
		}
	}
}

// ApplyProcessorOptions applies zero or more options to the default config.
func ApplyProcessorOptions(opts ...ProcessorOption) ProcessorConfig {
	cfg := DefaultProcessorConfig()
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}
	return cfg
}
