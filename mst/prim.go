package mst

import (
	"container/heap"
	"fmt"
)

// Prim returns a minimum spanning tree grown from root, and its total weight.
//
// Steps:
//  1. Validate n, every endpoint and root.
//  2. Build an adjacency list, skipping self-loops.
//  3. Mark root visited and push its incident edges.
//  4. Pop the lightest frontier edge; skip it if its far end is visited,
//     otherwise take it and push the far end's edges to unvisited vertices.
//  5. Fewer than n-1 edges once the heap drains → ErrDisconnected.
//
// Complexity: O(E log E) time, O(V + E) memory.
func Prim(n int, edges []Edge, root int) ([]Edge, int64, error) {
	if err := validate(n, edges); err != nil {
		return nil, 0, err
	}
	if n == 0 {
		return nil, 0, ErrDisconnected
	}
	if root < 0 || root >= n {
		return nil, 0, fmt.Errorf("%w: root %d, n=%d", ErrVertexOutOfRange, root, n)
	}
	if n == 1 {
		return []Edge{}, 0, nil
	}

	adj := make([][]int, n) // vertex -> indices into edges
	for i, e := range edges {
		if e.From == e.To {
			continue
		}
		adj[e.From] = append(adj[e.From], i)
		adj[e.To] = append(adj[e.To], i)
	}

	visited := make([]bool, n)
	tree := make([]Edge, 0, n-1)
	var total int64
	pq := &frontier{}

	push := func(v int) {
		for _, idx := range adj[v] {
			e := edges[idx]
			far := e.To
			if far == v {
				far = e.From
			}
			if !visited[far] {
				heap.Push(pq, candidate{edge: idx, to: far, weight: e.Weight})
			}
		}
	}

	visited[root] = true
	push(root)
	for pq.Len() > 0 && len(tree) < n-1 {
		c := heap.Pop(pq).(candidate)
		if visited[c.to] {
			continue
		}
		visited[c.to] = true
		tree = append(tree, edges[c.edge])
		total += c.weight
		push(c.to)
	}
	if len(tree) < n-1 {
		return nil, 0, fmt.Errorf("%w: reached %d of %d vertices", ErrDisconnected, len(tree)+1, n)
	}

	return tree, total, nil
}

// candidate is a frontier edge leading to the unvisited vertex to.
type candidate struct {
	edge   int
	to     int
	weight int64
}

// frontier is a min-heap of candidates ordered by weight, then input order.
type frontier []candidate

func (pq frontier) Len() int { return len(pq) }

func (pq frontier) Less(i, j int) bool {
	if pq[i].weight != pq[j].weight {
		return pq[i].weight < pq[j].weight
	}

	return pq[i].edge < pq[j].edge
}

func (pq frontier) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }

func (pq *frontier) Push(x any) { *pq = append(*pq, x.(candidate)) }

func (pq *frontier) Pop() any {
	old := *pq
	n := len(old)
	c := old[n-1]
	*pq = old[:n-1]

	return c
}
