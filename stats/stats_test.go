package stats_test

import (
	"math"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/katalvlaran/percolath/metrics"
	"github.com/katalvlaran/percolath/stats"
)

// scripted replays a fixed sequence of Intn results, cycling at the end.
type scripted struct {
	vals []int
	pos  int
}

func (s *scripted) Intn(n int) int {
	v := s.vals[s.pos%len(s.vals)]
	s.pos++

	return v % n
}

// twoTrials drives two trials on a 2-by-2 grid:
//
//	trial 1: (1,1) (2,1)                  -> 2 open, threshold 0.50
//	trial 2: (1,1) (1,1) (1,2) (2,2)      -> 3 open, threshold 0.75
func twoTrials() *scripted {
	return &scripted{vals: []int{
		0, 0, 1, 0,
		0, 0, 0, 0, 0, 1, 1, 1,
	}}
}

// TestNew_InvalidArgument verifies non-positive parameters are rejected.
func TestNew_InvalidArgument(t *testing.T) {
	cases := []struct{ n, trials int }{
		{0, 10}, {-1, 10}, {10, 0}, {10, -5}, {0, 0},
	}
	for _, tc := range cases {
		s, err := stats.New(tc.n, tc.trials, stats.WithSeed(1))
		assert.Nil(t, s)
		assert.ErrorIs(t, err, stats.ErrInvalidArgument, "n=%d trials=%d", tc.n, tc.trials)
	}
}

// TestScripted checks exact aggregates on a hand-computed sample.
func TestScripted(t *testing.T) {
	s, err := stats.New(2, 2, stats.WithSource(twoTrials()))
	require.NoError(t, err)

	assert.Equal(t, []float64{0.5, 0.75}, s.Thresholds())
	assert.Equal(t, 2, s.Trials())
	assert.Equal(t, 2, s.N())
	assert.InDelta(t, 0.625, s.Mean(), 1e-12)

	sd := math.Sqrt(2 * 0.125 * 0.125)
	assert.InDelta(t, sd, s.Stddev(), 1e-12)
	half := 1.96 * sd / math.Sqrt(2)
	assert.InDelta(t, 0.625-half, s.ConfidenceLo(), 1e-12)
	assert.InDelta(t, 0.625+half, s.ConfidenceHi(), 1e-12)
}

// TestSeededRun is the n=2, trials=100 end-to-end run with a fixed seed.
func TestSeededRun(t *testing.T) {
	s, err := stats.New(2, 100, stats.WithSeed(42))
	require.NoError(t, err)

	mean := s.Mean()
	assert.Greater(t, mean, 0.0)
	assert.Less(t, mean, 1.0)
	assert.LessOrEqual(t, s.ConfidenceLo(), mean)
	assert.LessOrEqual(t, mean, s.ConfidenceHi())

	for i, x := range s.Thresholds() {
		assert.Greater(t, x, 0.0, "trial %d", i)
		assert.LessOrEqual(t, x, 1.0, "trial %d", i)
	}
}

// TestSeededRun_Reproducible verifies the same seed yields the same sample.
func TestSeededRun_Reproducible(t *testing.T) {
	a, err := stats.New(8, 20, stats.WithSeed(7))
	require.NoError(t, err)
	b, err := stats.New(8, 20, stats.WithSeed(7))
	require.NoError(t, err)

	assert.Equal(t, a.Thresholds(), b.Thresholds())
}

// TestSingleTrial verifies the undefined standard deviation is NaN, not 0.
func TestSingleTrial(t *testing.T) {
	s, err := stats.New(5, 1, stats.WithSeed(3))
	require.NoError(t, err)

	assert.False(t, math.IsNaN(s.Mean()))
	assert.True(t, math.IsNaN(s.Stddev()))
	assert.True(t, math.IsNaN(s.ConfidenceLo()))
	assert.True(t, math.IsNaN(s.ConfidenceHi()))
}

// TestSingleSiteGrid verifies every 1-by-1 trial ends after one site.
func TestSingleSiteGrid(t *testing.T) {
	s, err := stats.New(1, 5, stats.WithSeed(9))
	require.NoError(t, err)

	assert.Equal(t, 1.0, s.Mean())
	assert.Equal(t, 0.0, s.Stddev())
	assert.Equal(t, 1.0, s.ConfidenceLo())
	assert.Equal(t, 1.0, s.ConfidenceHi())
}

// TestThresholds_Copy verifies callers cannot mutate the stored sample.
func TestThresholds_Copy(t *testing.T) {
	s, err := stats.New(2, 2, stats.WithSource(twoTrials()))
	require.NoError(t, err)

	th := s.Thresholds()
	th[0] = 99
	assert.Equal(t, 0.5, s.Thresholds()[0])
}

// TestWithMetrics verifies every trial is recorded, including redundant draws.
func TestWithMetrics(t *testing.T) {
	reg := prometheus.NewRegistry()
	m, err := metrics.NewCollector(reg)
	require.NoError(t, err)

	_, err = stats.New(2, 2, stats.WithSource(twoTrials()), stats.WithMetrics(m))
	require.NoError(t, err)

	assert.Equal(t, 2.0, testutil.ToFloat64(m.Trials))
	assert.Equal(t, 5.0, testutil.ToFloat64(m.SitesOpened))
	assert.Equal(t, 6.0, testutil.ToFloat64(m.Draws))
}

// TestWithLogger verifies per-trial debug records and one summary record.
func TestWithLogger(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)

	_, err := stats.New(2, 2, stats.WithSource(twoTrials()), stats.WithLogger(zap.New(core)))
	require.NoError(t, err)

	trials := logs.FilterMessage("trial finished").All()
	require.Len(t, trials, 2)
	assert.Equal(t, 0.75, trials[1].ContextMap()["threshold"])
	assert.Equal(t, int64(3), trials[1].ContextMap()["opened"])
	assert.Equal(t, 1, logs.FilterMessage("simulation finished").Len())
}

// TestOptions_PanicOnNil verifies option constructors reject nil inputs.
func TestOptions_PanicOnNil(t *testing.T) {
	assert.Panics(t, func() { stats.WithSource(nil) })
	assert.Panics(t, func() { stats.WithLogger(nil) })
	assert.Panics(t, func() { stats.WithMetrics(nil) })
}
