package detect

// Config holds detection thresholds. Durations and gaps are in samples at
// the configured sample rate; magnitudes are in signal units on the wavelet
// response.
type Config struct {
	SampleRate float64
	// WaveletScale is the Haar CWT scale used by the wavelet detector.
	WaveletScale int

	// SaccadeMagnitude is the wavelet response threshold for saccades.
	SaccadeMagnitude float64
	// SaccadeMinDuration and SaccadeMaxDuration bound saccade length.
	SaccadeMinDuration int
	SaccadeMaxDuration int

	// BlinkMagnitude is the wavelet response threshold for blinks.
	BlinkMagnitude float64
	// BlinkMaxGap is the largest distance between the rising and falling
	// response peaks of one blink.
	BlinkMaxGap int

	// FixationMinDuration is the shortest interval accepted as a fixation.
	FixationMinDuration int
	// FixationDispersion caps the summed per-channel range within a
	// fixation window.
	FixationDispersion float64

	// MinFixationMS is the Gazepoint detector's minimum fixation duration
	// in milliseconds.
	MinFixationMS float64
}

// Option mutates a Config.
type Option func(*Config)

// DefaultConfig returns the thresholds of the original EOG study: 1 kHz
// sampling, Haar scale 20, and the published magnitude/duration bounds.
func DefaultConfig() Config {
	return Config{
		SampleRate:          1000,
		WaveletScale:        20,
		SaccadeMagnitude:    0.1,
		SaccadeMinDuration:  20,
		SaccadeMaxDuration:  200,
		BlinkMagnitude:      0.3,
		BlinkMaxGap:         390,
		FixationMinDuration: 200,
		FixationDispersion:  1,
		MinFixationMS:       200,
	}
}

// WithSampleRate sets the signal sample rate in Hz.
func WithSampleRate(rate float64) Option {
	return func(c *Config) {
		if rate > 0 {
			c.SampleRate = rate
		}
	}
}

// WithWaveletScale sets the Haar CWT scale.
func WithWaveletScale(scale int) Option {
	return func(c *Config) {
		if scale > 1 {
			c.WaveletScale = scale
		}
	}
}

// WithSaccadeMagnitude sets the saccade response threshold.
func WithSaccadeMagnitude(th float64) Option {
	return func(c *Config) {
		if th > 0 {
			c.SaccadeMagnitude = th
		}
	}
}

// WithSaccadeDuration bounds saccade length in samples.
func WithSaccadeDuration(min, max int) Option {
	return func(c *Config) {
		if min > 0 && max >= min {
			c.SaccadeMinDuration = min
			c.SaccadeMaxDuration = max
		}
	}
}

// WithBlinkMagnitude sets the blink response threshold.
func WithBlinkMagnitude(th float64) Option {
	return func(c *Config) {
		if th > 0 {
			c.BlinkMagnitude = th
		}
	}
}

// WithBlinkMaxGap sets the largest peak gap of one blink, in samples.
func WithBlinkMaxGap(gap int) Option {
	return func(c *Config) {
		if gap > 0 {
			c.BlinkMaxGap = gap
		}
	}
}

// WithFixationDuration sets the minimum fixation length in samples.
func WithFixationDuration(samples int) Option {
	return func(c *Config) {
		if samples > 0 {
			c.FixationMinDuration = samples
		}
	}
}

// WithFixationDispersion sets the dispersion ceiling within a fixation.
func WithFixationDispersion(d float64) Option {
	return func(c *Config) {
		if d > 0 {
			c.FixationDispersion = d
		}
	}
}

// WithMinFixationMS sets the Gazepoint detector's minimum fixation
// duration in milliseconds.
func WithMinFixationMS(ms float64) Option {
	return func(c *Config) {
		if ms >= 0 {
			c.MinFixationMS = ms
		}
	}
}

func applyOptions(opts []Option) Config {
	cfg := DefaultConfig()
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}
	return cfg
}
