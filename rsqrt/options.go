package rsqrt

// Config controls an Approximator.
type Config struct {
	// Steps is the number of Newton-Raphson passes. Zero returns the seed.
	Steps   int
	Magic32 uint32
	Magic64 uint64
}

// Option mutates a Config.
type Option func(*Config)

// DefaultConfig returns the classic setup: one refinement pass and the
// standard magic constants.
func DefaultConfig() Config {
	return Config{
		Steps:   1,
		Magic32: Magic32,
		Magic64: Magic64,
	}
}

// WithSteps sets the number of Newton-Raphson passes.
func WithSteps(steps int) Option {
	return func(cfg *Config) {
		if steps >= 0 {
			cfg.Steps = steps
		}
	}
}

// WithMagic32 sets the float32 magic constant.
func WithMagic32(magic uint32) Option {
	return func(cfg *Config) {
		if magic != 0 {
			cfg.Magic32 = magic
		}
	}
}

// WithMagic64 sets the float64 magic constant.
func WithMagic64(magic uint64) Option {
	return func(cfg *Config) {
		if magic != 0 {
			cfg.Magic64 = magic
		}
	}
}

// ApplyOptions applies zero or more options to the default config.
func ApplyOptions(opts ...Option) Config {
	cfg := DefaultConfig()
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}
	return cfg
}

// Approximator evaluates reciprocal square roots with a fixed Config.
// The zero value is not usable; construct with New.
type Approximator struct {
	cfg Config
}

// New returns an Approximator configured by opts.
func New(opts ...Option) Approximator {
	return Approximator{cfg: ApplyOptions(opts...)}
}

// Config returns the configuration in use.
func (a Approximator) Config() Config {
	return a.cfg
}

// Float32 approximates 1/sqrt(x).
func (a Approximator) Float32(x float32) float32 {
	return float32N(x, a.cfg.Steps, a.cfg.Magic32)
}

// Float64 approximates 1/sqrt(x).
func (a Approximator) Float64(x float64) float64 {
	return float64N(x, a.cfg.Steps, a.cfg.Magic64)
}
