package dsu

import "fmt"

// New returns a UnionFind holding n singleton classes {0}, {1}, …, {n-1}.
// n == 0 yields an empty structure on which every query fails with ErrOutOfRange.
//
// Complexity: O(n) time and memory.
func New(n int) (*UnionFind, error) {
	if n < 0 {
		return nil, fmt.Errorf("%w: n=%d", ErrInvalidArgument, n)
	}
	uf := &UnionFind{
		parent: make([]int, n),
		size:   make([]int, n),
		rank:   make([]int, n),
		count:  n,
	}
	for i := 0; i < n; i++ {
		uf.parent[i] = i
		uf.size[i] = 1
	}

	return uf, nil
}

// Len returns the number of elements the structure was built for.
func (uf *UnionFind) Len() int { return len(uf.parent) }

// Count returns the current number of disjoint classes.
func (uf *UnionFind) Count() int { return uf.count }

// Find returns the representative (root) of x's class.
//
// Two passes:
//  1. Walk parent links from x until a fixed point (the root) is reached.
//  2. Walk the same path again, pointing every visited node straight at the root.
//
// The partition is unchanged; only tree shape is flattened.
// Complexity: amortized O(α(n)).
func (uf *UnionFind) Find(x int) (int, error) {
	if err := uf.check(x); err != nil {
		return 0, err
	}

	return uf.root(x), nil
}

// Unite merges the classes of x and y. It returns true when they were distinct
// before the call and false when x and y already shared a class.
//
// Union by rank: the lower-rank root is attached under the higher-rank root.
// On a tie y's root goes under x's root and x's root gains one rank.
// The surviving root's size absorbs the other's.
//
// Complexity: amortized O(α(n)).
func (uf *UnionFind) Unite(x, y int) (bool, error) {
	if err := uf.check(x); err != nil {
		return false, err
	}
	if err := uf.check(y); err != nil {
		return false, err
	}

	rx, ry := uf.root(x), uf.root(y)
	if rx == ry {
		return false, nil
	}
	if uf.rank[rx] < uf.rank[ry] {
		rx, ry = ry, rx
	}
	uf.parent[ry] = rx
	uf.size[rx] += uf.size[ry]
	if uf.rank[rx] == uf.rank[ry] {
		uf.rank[rx]++
	}
	uf.count--

	return true, nil
}

// Same reports whether x and y belong to the same class.
func (uf *UnionFind) Same(x, y int) (bool, error) {
	if err := uf.check(x); err != nil {
		return false, err
	}
	if err := uf.check(y); err != nil {
		return false, err
	}

	return uf.root(x) == uf.root(y), nil
}

// Size returns the cardinality of x's class.
func (uf *UnionFind) Size(x int) (int, error) {
	if err := uf.check(x); err != nil {
		return 0, err
	}

	return uf.size[uf.root(x)], nil
}

// Groups returns every class as an ascending slice of ids. Classes are ordered
// by their smallest member, so the result is deterministic for a given partition.
//
// Complexity: O(n·α(n)) time, O(n) memory.
func (uf *UnionFind) Groups() [][]int {
	n := len(uf.parent)
	slot := make(map[int]int, uf.count) // root -> index in groups
	groups := make([][]int, 0, uf.count)
	for x := 0; x < n; x++ {
		r := uf.root(x)
		idx, ok := slot[r]
		if !ok {
			idx = len(groups)
			slot[r] = idx
			groups = append(groups, make([]int, 0, uf.size[r]))
		}
		// x increases monotonically: members land sorted and groups appear
		// in order of their smallest member.
		groups[idx] = append(groups[idx], x)
	}

	return groups
}

// root is Find without bounds checking.
func (uf *UnionFind) root(x int) int {
	r := x
	for uf.parent[r] != r {
		r = uf.parent[r]
	}
	for uf.parent[x] != r {
		x, uf.parent[x] = uf.parent[x], r
	}

	return r
}

func (uf *UnionFind) check(x int) error {
	if x < 0 || x >= len(uf.parent) {
		return fmt.Errorf("%w: id %d, n=%d", ErrOutOfRange, x, len(uf.parent))
	}

	return nil
}
