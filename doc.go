// Package percolath models site percolation on an n-by-n grid and estimates
// the percolation threshold by Monte Carlo simulation.
//
// What is inside?
//
//	unionfind/   - disjoint-set forest: weighted union, path halving
//	percolation/ - Grid: open sites, virtual top/bottom nodes, IsFull, Percolates, FloodFill
//	stats/       - Monte Carlo driver: mean, stddev, 95% confidence interval
//	metrics/     - Prometheus instruments for trials and thresholds
//	config/      - TOML configuration for the command-line driver
//	cmd/percolath - CLI: `percolath run`, `percolath trial`
//
// Quick ASCII example (3×3, '.' open, '#' blocked):
//
//	# . #
//	# . #
//	# . #
//
// The middle column connects the top row to the bottom row, so the system
// percolates after three sites are open.
//
// On large grids the estimated threshold converges to p* ≈ 0.5927.
//
//	go install github.com/katalvlaran/percolath/cmd/percolath@latest
package percolath
