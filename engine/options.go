package engine

import (
	"golang.org/x/sync/semaphore"

	"github.com/lae-eval/lae/internal/obslog"
)

// Option mutates Engine construction parameters.
type Option func(*config)

type config struct {
	logger      *obslog.Logger
	seed        int64
	hasSeed     bool
	maxInFlight int64
}

// WithLogger attaches a logger for diagnostics: the engine logs row tasks
// abandoned because the WithMaxInFlight semaphore could not be acquired,
// and passes the logger to its executor, which logs recovered task
// panics. Defaults to a no-op logger.
func WithLogger(l *obslog.Logger) Option {
	return func(c *config) { c.logger = l }
}

// WithSeed fixes the executor's fatigueFactor random source, for
// reproducible tests.
func WithSeed(seed int64) Option {
	return func(c *config) {
		c.seed = seed
		c.hasSeed = true
	}
}

// WithMaxInFlight caps the number of row tasks in flight across the whole
// engine at once, independent of worker count, using a weighted semaphore.
// Useful when row tasks are memory-heavy and numWorkers alone would admit
// more concurrent rows than the host can hold comfortably. n must be
// positive; WithMaxInFlight is optional and the default is unbounded
// (limited only by the executor's worker count).
func WithMaxInFlight(n int64) Option {
	return func(c *config) { c.maxInFlight = n }
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

func (c config) semaphoreOrNil() *semaphore.Weighted {
	if c.maxInFlight <= 0 {
		return nil
	}

	return semaphore.NewWeighted(c.maxInFlight)
}
