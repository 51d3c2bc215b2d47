package percolation

import (
	"errors"

	"github.com/bits-and-blooms/bitset"

	"github.com/katalvlaran/percolath/unionfind"
)

// Sentinel errors for grid operations.
var (
	// ErrInvalidArgument indicates a non-positive grid side.
	ErrInvalidArgument = errors.New("percolation: grid side must be positive")
	// ErrIndexOutOfRange indicates a row or column outside [1,n].
	ErrIndexOutOfRange = errors.New("percolation: index out of range")
)

// Method names used as error context prefixes.
const (
	methodNew       = "New"
	methodOpen      = "Open"
	methodIsOpen    = "IsOpen"
	methodIsFull    = "IsFull"
	methodFloodFill = "FloodFill"
)

// neighborOffsets lists the orthogonal neighbours as (drow, dcol):
// above, right, below, left.
var neighborOffsets = [4][2]int{{-1, 0}, {0, 1}, {1, 0}, {0, -1}}

// Option configures a Grid at construction.
type Option func(*gridConfig)

// gridConfig holds construction-time knobs.
type gridConfig struct {
	// backwash selects the single shared forest for IsFull.
	backwash bool
}

// WithBackwash makes IsFull answer from the same forest as Percolates.
// Once the system percolates, sites reachable only through the bottom row
// then report full. Use it to reproduce single-forest results.
func WithBackwash() Option {
	return func(c *gridConfig) {
		c.backwash = true
	}
}

// Grid is an n-by-n percolation system. All sites start blocked.
type Grid struct {
	n         int
	open      *bitset.BitSet    // open[(row-1)*n+(col-1)]
	openCount int               // always open.Count()
	uf        *unionfind.Forest // sites + top + bottom
	full      *unionfind.Forest // sites + top; nil under WithBackwash
	top       int               // n*n
	bottom    int               // n*n+1
}
