package stats

import (
	"errors"
	"math/rand"
	"time"

	"go.uber.org/zap"

	"github.com/katalvlaran/percolath/metrics"
)

// ErrInvalidArgument indicates a non-positive grid side or trial count.
var ErrInvalidArgument = errors.New("stats: n and trials must be positive")

// confidenceZ is the two-sided 95% quantile of the standard normal.
const confidenceZ = 1.96

const methodNew = "New"

// Source yields uniform integers in [0,n). *rand.Rand satisfies it.
type Source interface {
	Intn(n int) int
}

// Option configures a simulation run.
type Option func(*config)

type config struct {
	src     Source
	logger  *zap.Logger
	metrics *metrics.Collector
}

// newConfig applies opts over clock-seeded defaults; later options win.
func newConfig(opts ...Option) config {
	cfg := config{logger: zap.NewNop()}
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.src == nil {
		cfg.src = rand.New(rand.NewSource(time.Now().UnixNano()))
	}

	return cfg
}

// WithSeed uses a *rand.Rand seeded with seed, making the run reproducible.
func WithSeed(seed int64) Option {
	return func(c *config) {
		c.src = rand.New(rand.NewSource(seed))
	}
}

// WithSource uses src for every draw. Panics on nil.
func WithSource(src Source) Option {
	if src == nil {
		panic("stats: WithSource(nil)")
	}
	return func(c *config) {
		c.src = src
	}
}

// WithLogger sends per-trial debug records and a final summary to l.
// Panics on nil.
func WithLogger(l *zap.Logger) Option {
	if l == nil {
		panic("stats: WithLogger(nil)")
	}
	return func(c *config) {
		c.logger = l
	}
}

// WithMetrics records every trial into m. Panics on nil.
func WithMetrics(m *metrics.Collector) Option {
	if m == nil {
		panic("stats: WithMetrics(nil)")
	}
	return func(c *config) {
		c.metrics = m
	}
}

// Stats holds the thresholds of a completed simulation. It is read-only
// after New returns.
type Stats struct {
	n          int
	thresholds []float64
}
