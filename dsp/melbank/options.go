package melbank

// DefaultSampleRate is the sample rate in Hz assumed when no option
// overrides it.
const DefaultSampleRate = 8000.0

// Option configures filter bank construction.
type Option func(*config)

type config struct {
	sampleRate float64
}

func defaultConfig() config {
	return config{sampleRate: DefaultSampleRate}
}

// WithSampleRate sets the sample rate in Hz used to map frequencies onto
// spectral bins.
func WithSampleRate(sampleRate float64) Option {
	return func(c *config) {
		c.sampleRate = sampleRate
	}
}
