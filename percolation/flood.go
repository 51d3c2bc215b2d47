package percolation

import (
	"fmt"

	"github.com/bits-and-blooms/bitset"
	"github.com/emirpasic/gods/stacks/arraystack"
)

// FloodFill returns the set of full sites, as row-major indices, computed by
// a depth-first traversal from every open site of the first row. It ignores
// the forests entirely, so the result never contains backwash sites.
// Use Coordinate to turn an index back into (row,col).
//
// The traversal keeps its own stack; depth is bounded by n² pushes, never by
// the goroutine stack.
// Complexity: O(n²) time and memory.
func (g *Grid) FloodFill() (*bitset.BitSet, error) {
	full := bitset.New(uint(g.n * g.n))
	stack := arraystack.New()

	for col := 1; col <= g.n; col++ {
		p := g.index(1, col)
		if g.open.Test(uint(p)) {
			full.Set(uint(p))
			stack.Push(p)
		}
	}

	for !stack.Empty() {
		v, _ := stack.Pop()
		p, ok := v.(int)
		if !ok {
			return nil, fmt.Errorf("%s: unexpected stack value %T", methodFloodFill, v)
		}
		row, col := g.Coordinate(p)
		for _, d := range neighborOffsets {
			r, c := row+d[0], col+d[1]
			if !g.inBounds(r, c) {
				continue
			}
			q := uint(g.index(r, c))
			if !g.open.Test(q) || full.Test(q) {
				continue
			}
			full.Set(q)
			stack.Push(int(q))
		}
	}

	return full, nil
}
