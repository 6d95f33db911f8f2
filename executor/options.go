package executor

import "github.com/lae-eval/lae/internal/obslog"

// Option mutates executor construction parameters. Safe to apply in any
// order; later options win over earlier ones for the same field.
type Option func(*config)

type config struct {
	logger  *obslog.Logger
	seed    int64
	hasSeed bool
}

// WithLogger attaches a logger used for diagnostics; workers log each
// recovered task panic to it. Defaults to a no-op logger.
func WithLogger(l *obslog.Logger) Option {
	return func(c *config) { c.logger = l }
}

// WithSeed fixes the random source used to draw each worker's
// fatigueFactor, for reproducible tests. Without it, New uses a
// time-seeded source.
func WithSeed(seed int64) Option {
	return func(c *config) {
		c.seed = seed
		c.hasSeed = true
	}
}

func resolveConfig(opts ...Option) config {
	c := config{logger: obslog.Noop()}
	for _, opt := range opts {
		opt(&c)
	}
	if c.logger == nil {
		c.logger = obslog.Noop()
	}

	return c
}
