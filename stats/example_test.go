package stats_test

import (
	"fmt"

	"github.com/katalvlaran/percolath/stats"
)

// ExampleNew runs a small seeded simulation and checks the interval
// brackets the mean.
func ExampleNew() {
	s, err := stats.New(20, 30, stats.WithSeed(1))
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(s.Trials(), s.ConfidenceLo() <= s.Mean() && s.Mean() <= s.ConfidenceHi())
	// Output: 30 true
}
