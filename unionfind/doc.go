// Package unionfind provides a disjoint-set forest (union-find) over a fixed
// universe of integer indices 0..count-1.
//
// What:
//
//   - Forest keeps one parent pointer and one subtree size per element.
//   - Union merges two sets by size: the smaller tree hangs under the larger root.
//   - Find returns the root of an element and halves the traversed path.
//   - Connected reports whether two elements share a root.
//
// Why:
//
//   - Incremental connectivity: percolation grids, Kruskal-style merging,
//     island counting when cells appear one at a time.
//   - Near-constant amortized cost per operation (inverse Ackermann α(n)).
//
// Complexity:
//
//   - New:       O(count) time and memory.
//   - Union:     O(α(count)) amortized.
//   - Find:      O(α(count)) amortized, O(log count) worst case per call.
//   - Connected: two Finds.
//
// Errors:
//
//   - ErrInvalidCount:    New called with count ≤ 0.
//   - ErrIndexOutOfRange: an index outside [0,count).
//
// The universe never grows or shrinks after New. A Forest is not safe for
// concurrent use: Find mutates parent pointers.
package unionfind
