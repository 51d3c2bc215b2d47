package unionfind

import "errors"

// Sentinel errors for forest operations.
var (
	// ErrInvalidCount indicates New was called with a non-positive universe size.
	ErrInvalidCount = errors.New("unionfind: count must be positive")
	// ErrIndexOutOfRange indicates an element index outside [0,count).
	ErrIndexOutOfRange = errors.New("unionfind: index out of range")
)

// Method names used as error context prefixes.
const (
	methodNew       = "New"
	methodUnion     = "Union"
	methodFind      = "Find"
	methodConnected = "Connected"
	methodSizeOf    = "SizeOf"
)

// Forest is a weighted quick-union structure with path compression.
//
// parent[i] == i marks a root; size[r] is meaningful only for roots and
// holds the number of elements in r's tree. components counts the roots.
type Forest struct {
	parent     []int
	size       []int
	components int
}
