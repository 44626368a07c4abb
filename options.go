package cubesim

import (
	"io"

	"github.com/sirupsen/logrus"
)

// Default tuning values.
const (
	DefaultNormalSpeed    = 300.0 // degrees per second
	DefaultFastSpeed      = 900.0 // degrees per second
	DefaultScrambleLength = 20
)

// Option configures Engine behavior.
type Option func(*config)

type config struct {
	normalSpeed    float64
	fastSpeed      float64
	scrambleLength int
	scrambler      *Scrambler
	logger         logrus.FieldLogger
	metrics        *Metrics
}

func defaultConfig() *config {
	discard := logrus.New()
	discard.SetOutput(io.Discard)
	return &config{
		normalSpeed:    DefaultNormalSpeed,
		fastSpeed:      DefaultFastSpeed,
		scrambleLength: DefaultScrambleLength,
		logger:         discard,
	}
}

// WithSpeeds sets the normal and fast animation rates in degrees per
// second. Non-positive values keep the defaults.
func WithSpeeds(normal, fast float64) Option {
	return func(c *config) {
		if normal > 0 {
			c.normalSpeed = normal
		}
		if fast > 0 {
			c.fastSpeed = fast
		}
	}
}

// WithScrambleLength sets how many moves Scramble generates when called
// with a non-positive count.
func WithScrambleLength(n int) Option {
	return func(c *config) {
		if n > 0 {
			c.scrambleLength = n
		}
	}
}

// WithSeed makes scrambles reproducible.
func WithSeed(seed uint64) Option {
	return func(c *config) {
		c.scrambler = NewScrambler(seed)
	}
}

// WithScrambler sets the move generator used by Scramble.
func WithScrambler(s *Scrambler) Option {
	return func(c *config) {
		c.scrambler = s
	}
}

// WithLogger sets the logger. By default the engine logs nothing.
func WithLogger(l logrus.FieldLogger) Option {
	return func(c *config) {
		if l != nil {
			c.logger = l
		}
	}
}

// WithMetrics enables Prometheus instrumentation.
func WithMetrics(m *Metrics) Option {
	return func(c *config) {
		c.metrics = m
	}
}
