package percolation

import (
	"fmt"

	"github.com/bits-and-blooms/bitset"

	"github.com/katalvlaran/percolath/unionfind"
)

// New creates an n-by-n grid with every site blocked.
// The first row is joined to the virtual top node and the last row to the
// virtual bottom node; for n == 1 the only site is joined to both.
// Returns ErrInvalidArgument if n ≤ 0.
// Complexity: O(n²) time and memory.
func New(n int, opts ...Option) (*Grid, error) {
	if n <= 0 {
		return nil, fmt.Errorf("%s: n=%d: %w", methodNew, n, ErrInvalidArgument)
	}
	var cfg gridConfig
	for _, opt := range opts {
		opt(&cfg)
	}

	sites := n * n
	g := &Grid{
		n:      n,
		open:   bitset.New(uint(sites)),
		top:    sites,
		bottom: sites + 1,
	}

	var err error
	if g.uf, err = unionfind.New(sites + 2); err != nil {
		return nil, fmt.Errorf("%s: %w", methodNew, err)
	}
	if !cfg.backwash {
		if g.full, err = unionfind.New(sites + 1); err != nil {
			return nil, fmt.Errorf("%s: %w", methodNew, err)
		}
	}

	lastRow := sites - n
	for col := 0; col < n; col++ {
		if err = g.uf.Union(g.top, col); err != nil {
			return nil, fmt.Errorf("%s: %w", methodNew, err)
		}
		if err = g.uf.Union(g.bottom, lastRow+col); err != nil {
			return nil, fmt.Errorf("%s: %w", methodNew, err)
		}
		if g.full != nil {
			if err = g.full.Union(g.top, col); err != nil {
				return nil, fmt.Errorf("%s: %w", methodNew, err)
			}
		}
	}

	return g, nil
}

// Size returns the grid side n.
func (g *Grid) Size() int {
	return g.n
}

// OpenSites returns the number of open sites.
// Complexity: O(1).
func (g *Grid) OpenSites() int {
	return g.openCount
}

// Open opens site (row,col) if it is blocked and joins it with every open
// orthogonal neighbour. Opening an open site is a no-op: the counter and the
// forests are left unchanged.
// Returns ErrIndexOutOfRange if row or col lies outside [1,n].
// Complexity: O(α(n²)) amortized.
func (g *Grid) Open(row, col int) error {
	if err := g.validate(methodOpen, row, col); err != nil {
		return err
	}
	p := g.index(row, col)
	if g.open.Test(uint(p)) {
		return nil
	}

	g.open.Set(uint(p))
	g.openCount++

	for _, d := range neighborOffsets {
		r, c := row+d[0], col+d[1]
		if !g.inBounds(r, c) {
			continue
		}
		q := g.index(r, c)
		if !g.open.Test(uint(q)) {
			continue
		}
		if err := g.uf.Union(p, q); err != nil {
			return fmt.Errorf("%s: (%d,%d): %w", methodOpen, row, col, err)
		}
		if g.full != nil {
			if err := g.full.Union(p, q); err != nil {
				return fmt.Errorf("%s: (%d,%d): %w", methodOpen, row, col, err)
			}
		}
	}

	return nil
}

// IsOpen reports whether site (row,col) is open.
// Returns ErrIndexOutOfRange if row or col lies outside [1,n].
// Complexity: O(1).
func (g *Grid) IsOpen(row, col int) (bool, error) {
	if err := g.validate(methodIsOpen, row, col); err != nil {
		return false, err
	}

	return g.open.Test(uint(g.index(row, col))), nil
}

// IsFull reports whether site (row,col) is open and connected to the top
// row through open sites. Under WithBackwash the answer comes from the
// shared forest and may include sites reached only through the bottom row.
// Returns ErrIndexOutOfRange if row or col lies outside [1,n].
// Complexity: O(α(n²)) amortized.
func (g *Grid) IsFull(row, col int) (bool, error) {
	if err := g.validate(methodIsFull, row, col); err != nil {
		return false, err
	}
	p := g.index(row, col)
	if !g.open.Test(uint(p)) {
		return false, nil
	}

	f := g.full
	if f == nil {
		f = g.uf
	}
	ok, err := f.Connected(g.top, p)
	if err != nil {
		return false, fmt.Errorf("%s: (%d,%d): %w", methodIsFull, row, col, err)
	}

	return ok, nil
}

// Percolates reports whether the virtual top node is connected to the
// virtual bottom node. A 1-by-1 grid has top and bottom joined through its
// single site from the start, so it also requires that site to be open.
// Complexity: O(α(n²)) amortized.
func (g *Grid) Percolates() bool {
	if g.openCount == 0 {
		return false
	}
	ok, err := g.uf.Connected(g.top, g.bottom)

	return err == nil && ok
}

// Coordinate converts a row-major site index back to 1-indexed (row,col).
// Complexity: O(1).
func (g *Grid) Coordinate(idx int) (row, col int) {
	return idx/g.n + 1, idx%g.n + 1
}

// index maps 1-indexed (row,col) to its forest index. Inputs must be valid.
func (g *Grid) index(row, col int) int {
	return (row-1)*g.n + (col - 1)
}

// inBounds reports whether (row,col) lies inside the grid.
func (g *Grid) inBounds(row, col int) bool {
	return row >= 1 && row <= g.n && col >= 1 && col <= g.n
}

// validate is the single bounds check shared by every site operation.
func (g *Grid) validate(method string, row, col int) error {
	if row < 1 || row > g.n {
		return fmt.Errorf("%s: row %d not in [1,%d]: %w", method, row, g.n, ErrIndexOutOfRange)
	}
	if col < 1 || col > g.n {
		return fmt.Errorf("%s: col %d not in [1,%d]: %w", method, col, g.n, ErrIndexOutOfRange)
	}

	return nil
}
