package mst

import (
	"fmt"
	"sort"

	"github.com/mutekichi/cptoolkit/dsu"
)

// Kruskal returns a minimum spanning tree of the graph on n vertices with the
// given edges, and its total weight.
//
// Steps:
//  1. Validate n and every endpoint.
//  2. n == 0 → ErrDisconnected; n == 1 → empty tree.
//  3. Copy non-loop edges and stable-sort them by weight.
//  4. Scan: keep an edge whose endpoints lie in different classes, merging them.
//  5. Stop at n-1 edges; fewer after the scan → ErrDisconnected.
//
// Complexity: O(E log E + E·α(V)) time, O(E + V) memory.
func Kruskal(n int, edges []Edge) ([]Edge, int64, error) {
	if err := validate(n, edges); err != nil {
		return nil, 0, err
	}
	if n == 0 {
		return nil, 0, ErrDisconnected
	}
	if n == 1 {
		return []Edge{}, 0, nil
	}

	sorted := make([]Edge, 0, len(edges))
	for _, e := range edges {
		if e.From == e.To {
			continue
		}
		sorted = append(sorted, e)
	}
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Weight < sorted[j].Weight
	})

	uf, err := dsu.New(n)
	if err != nil {
		return nil, 0, err
	}
	tree := make([]Edge, 0, n-1)
	var total int64
	for _, e := range sorted {
		merged, err := uf.Unite(e.From, e.To)
		if err != nil {
			return nil, 0, err
		}
		if !merged {
			continue
		}
		tree = append(tree, e)
		total += e.Weight
		if len(tree) == n-1 {
			break
		}
	}
	if len(tree) < n-1 {
		return nil, 0, fmt.Errorf("%w: %d components", ErrDisconnected, uf.Count())
	}

	return tree, total, nil
}

// validate checks the vertex count and every endpoint.
func validate(n int, edges []Edge) error {
	if n < 0 {
		return fmt.Errorf("%w: n=%d", ErrInvalidVertexCount, n)
	}
	for i, e := range edges {
		if e.From < 0 || e.From >= n || e.To < 0 || e.To >= n {
			return fmt.Errorf("%w: edge %d (%d-%d), n=%d", ErrVertexOutOfRange, i, e.From, e.To, n)
		}
	}

	return nil
}
