// Package percolation models an n-by-n grid of sites that are either blocked
// or open, and answers connectivity questions about it incrementally.
//
// What:
//
//   - Grid stores the open mask and a unionfind.Forest of n*n+2 elements:
//     one per site plus two virtual nodes, top (n*n) and bottom (n*n+1).
//   - The whole first row is joined to top and the whole last row to bottom
//     at construction, so "does the system percolate?" is a single query.
//   - Opening a site joins it with each open orthogonal neighbour.
//   - FloodFill recomputes the set of full sites from scratch with an
//     explicit stack, as an oracle independent of the forest.
//
// Coordinates are 1-indexed: row and col lie in [1,n]. Site (row,col) maps to
// forest index (row-1)*n + (col-1).
//
// Backwash:
//
//	With a single forest shared by top and bottom, every site joined to the
//	bottom row looks full as soon as the system percolates. By default Grid
//	keeps a second forest of n*n+1 elements (top only) and answers IsFull from
//	it. WithBackwash() drops the second forest and restores the single-forest
//	answers and saves one forest.
//
// Complexity:
//
//   - New:        O(n²) time and memory.
//   - Open:       O(α(n²)) amortized (at most four unions per forest).
//   - IsOpen:     O(1).
//   - IsFull:     O(α(n²)) amortized.
//   - Percolates: O(α(n²)) amortized.
//   - FloodFill:  O(n²) time and memory.
//
// Errors:
//
//   - ErrInvalidArgument: New called with n ≤ 0.
//   - ErrIndexOutOfRange: row or col outside [1,n].
//
// A Grid is not safe for concurrent use.
package percolation
