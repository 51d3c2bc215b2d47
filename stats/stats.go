package stats

import (
	"fmt"
	"math"

	"go.uber.org/zap"

	"github.com/katalvlaran/percolath/percolation"
)

// New runs trials independent percolation experiments on n-by-n grids and
// keeps one threshold per experiment.
// Returns ErrInvalidArgument if n ≤ 0 or trials ≤ 0.
func New(n, trials int, opts ...Option) (*Stats, error) {
	if n <= 0 || trials <= 0 {
		return nil, fmt.Errorf("%s: n=%d trials=%d: %w", methodNew, n, trials, ErrInvalidArgument)
	}
	cfg := newConfig(opts...)

	s := &Stats{
		n:          n,
		thresholds: make([]float64, trials),
	}
	sites := float64(n) * float64(n)
	for i := 0; i < trials; i++ {
		opened, draws, err := runTrial(n, cfg.src)
		if err != nil {
			return nil, fmt.Errorf("%s: trial %d: %w", methodNew, i, err)
		}
		s.thresholds[i] = float64(opened) / sites

		cfg.metrics.ObserveTrial(opened, draws, s.thresholds[i])
		cfg.logger.Debug("trial finished",
			zap.Int("trial", i),
			zap.Int("n", n),
			zap.Int("opened", opened),
			zap.Int("draws", draws),
			zap.Float64("threshold", s.thresholds[i]))
	}

	cfg.logger.Info("simulation finished",
		zap.Int("n", n),
		zap.Int("trials", trials),
		zap.Float64("mean", s.Mean()),
		zap.Float64("stddev", s.Stddev()))

	return s, nil
}

// runTrial opens random sites of a fresh grid until it percolates and
// returns the number of open sites and the number of draws it took.
func runTrial(n int, src Source) (opened, draws int, err error) {
	g, err := percolation.New(n)
	if err != nil {
		return 0, 0, err
	}
	for !g.Percolates() {
		row := uniform(src, 1, n+1)
		col := uniform(src, 1, n+1)
		draws++
		if err = g.Open(row, col); err != nil {
			return 0, 0, err
		}
	}

	return g.OpenSites(), draws, nil
}

// uniform draws an integer from [lo,hi).
func uniform(src Source, lo, hi int) int {
	return lo + src.Intn(hi-lo)
}

// N returns the grid side used by every trial.
func (s *Stats) N() int {
	return s.n
}

// Trials returns the number of completed trials.
func (s *Stats) Trials() int {
	return len(s.thresholds)
}

// Thresholds returns a copy of the per-trial thresholds in run order.
func (s *Stats) Thresholds() []float64 {
	out := make([]float64, len(s.thresholds))
	copy(out, s.thresholds)

	return out
}

// Mean returns the sample mean of the thresholds.
func (s *Stats) Mean() float64 {
	var sum float64
	for _, x := range s.thresholds {
		sum += x
	}

	return sum / float64(len(s.thresholds))
}

// Stddev returns the sample standard deviation of the thresholds.
// It is NaN when only one trial was run.
func (s *Stats) Stddev() float64 {
	t := len(s.thresholds)
	if t < 2 {
		return math.NaN()
	}
	mean := s.Mean()
	var sq float64
	for _, x := range s.thresholds {
		d := x - mean
		sq += d * d
	}

	return math.Sqrt(sq / float64(t-1))
}

// ConfidenceLo returns the low endpoint of the 95% confidence interval.
func (s *Stats) ConfidenceLo() float64 {
	return s.Mean() - s.halfWidth()
}

// ConfidenceHi returns the high endpoint of the 95% confidence interval.
func (s *Stats) ConfidenceHi() float64 {
	return s.Mean() + s.halfWidth()
}

func (s *Stats) halfWidth() float64 {
	return confidenceZ * s.Stddev() / math.Sqrt(float64(len(s.thresholds)))
}
