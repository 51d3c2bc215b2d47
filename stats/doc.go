// Package stats estimates the percolation threshold by Monte Carlo
// simulation.
//
// New(n, trials) runs trials independent experiments, one after another.
// Each experiment builds a fresh percolation.Grid of side n and opens
// uniformly random sites until the grid percolates; the fraction of open
// sites at that moment is the experiment's threshold estimate. Draws that
// hit an already open site are allowed and simply repeat the draw.
//
// Aggregates:
//
//   - Mean:         arithmetic mean of the thresholds.
//   - Stddev:       sample standard deviation (divisor trials-1).
//   - ConfidenceLo: Mean - 1.96·Stddev/√trials.
//   - ConfidenceHi: Mean + 1.96·Stddev/√trials.
//
// With a single trial the sample standard deviation is undefined: Stddev
// returns NaN, and so do both confidence bounds. It is never reported as 0.
//
// Randomness comes from a Source (satisfied by *rand.Rand). Use WithSeed or
// WithSource for reproducible runs; the default source is seeded from the
// clock. Per-trial diagnostics go to an optional zap logger (WithLogger) and
// an optional metrics.Collector (WithMetrics); nothing is printed otherwise.
//
// Complexity: O(trials · n² · α(n²)) expected time, O(n²) memory per trial.
package stats
