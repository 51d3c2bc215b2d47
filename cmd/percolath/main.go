// Command percolath estimates the percolation threshold of an n-by-n grid
// by Monte Carlo simulation.
//
//	percolath run -n 200 -t 100 --seed 42
//	percolath trial -n 20 --seed 7
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "percolath:", err)
		os.Exit(1)
	}
}
