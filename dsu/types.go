package dsu

import "errors"

// Sentinel errors for union-find operations.
var (
	// ErrInvalidArgument indicates a negative element count.
	ErrInvalidArgument = errors.New("dsu: invalid argument")

	// ErrOutOfRange indicates an element id outside [0, n).
	ErrOutOfRange = errors.New("dsu: element out of range")
)

// UnionFind is a disjoint-set forest over the ids 0..n-1.
//
// parent, size and rank are parallel arrays indexed by id:
//   - parent[x] == x marks a root;
//   - size[r] is the number of ids whose root is r (meaningful for roots only);
//   - rank[r] is an upper bound on the height of the tree rooted at r.
type UnionFind struct {
	parent []int
	size   []int
	rank   []int
	count  int // number of classes
}
