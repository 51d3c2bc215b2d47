package unionfind

import "fmt"

// New builds a Forest of count singleton sets {0}, {1}, ..., {count-1}.
// Returns ErrInvalidCount if count ≤ 0.
// Complexity: O(count) time and memory.
func New(count int) (*Forest, error) {
	if count <= 0 {
		return nil, fmt.Errorf("%s: count=%d: %w", methodNew, count, ErrInvalidCount)
	}
	f := &Forest{
		parent:     make([]int, count),
		size:       make([]int, count),
		components: count,
	}
	for i := 0; i < count; i++ {
		f.parent[i] = i // every element starts as its own root
		f.size[i] = 1
	}

	return f, nil
}

// Len returns the size of the universe fixed at construction.
// Complexity: O(1).
func (f *Forest) Len() int {
	return len(f.parent)
}

// Components returns the current number of disjoint sets.
// Complexity: O(1).
func (f *Forest) Components() int {
	return f.components
}

// Find returns the root of the set containing a.
// Every other node on the walk is re-pointed to its grandparent (path halving),
// which keeps the loop iterative and flattens the tree for later calls.
// Returns ErrIndexOutOfRange if a is outside [0,Len()).
// Complexity: O(α(n)) amortized.
func (f *Forest) Find(a int) (int, error) {
	if err := f.validate(methodFind, a); err != nil {
		return -1, err
	}

	return f.root(a), nil
}

// Union merges the sets containing a and b. The root of the smaller set is
// attached under the root of the larger one; ties keep a's root on top.
// Union is a no-op when a and b are already connected.
// Returns ErrIndexOutOfRange if either index is invalid; the forest is left
// untouched in that case.
// Complexity: O(α(n)) amortized.
func (f *Forest) Union(a, b int) error {
	if err := f.validate(methodUnion, a); err != nil {
		return err
	}
	if err := f.validate(methodUnion, b); err != nil {
		return err
	}

	ra, rb := f.root(a), f.root(b)
	if ra == rb {
		return nil
	}
	if f.size[ra] < f.size[rb] {
		ra, rb = rb, ra
	}
	f.parent[rb] = ra
	f.size[ra] += f.size[rb]
	f.components--

	return nil
}

// Connected reports whether a and b belong to the same set.
// Returns ErrIndexOutOfRange if either index is invalid.
// Complexity: O(α(n)) amortized.
func (f *Forest) Connected(a, b int) (bool, error) {
	if err := f.validate(methodConnected, a); err != nil {
		return false, err
	}
	if err := f.validate(methodConnected, b); err != nil {
		return false, err
	}

	return f.root(a) == f.root(b), nil
}

// SizeOf returns the number of elements in the set containing a.
// Complexity: O(α(n)) amortized.
func (f *Forest) SizeOf(a int) (int, error) {
	if err := f.validate(methodSizeOf, a); err != nil {
		return 0, err
	}

	return f.size[f.root(a)], nil
}

// root walks to the root of a with path halving. a must be valid.
func (f *Forest) root(a int) int {
	for f.parent[a] != a {
		f.parent[a] = f.parent[f.parent[a]]
		a = f.parent[a]
	}

	return a
}

// validate checks that a lies in [0,Len()).
func (f *Forest) validate(method string, a int) error {
	if a < 0 || a >= len(f.parent) {
		return fmt.Errorf("%s: index %d not in [0,%d): %w", method, a, len(f.parent), ErrIndexOutOfRange)
	}

	return nil
}
