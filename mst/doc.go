// Package mst computes minimum spanning trees of undirected, weighted graphs
// given as edge lists over dense vertex ids 0..n-1.
//
// Algorithms:
//
//   - Kruskal: sort edges by weight, keep an edge when its endpoints are still
//     in different dsu.UnionFind classes. O(E log E + E·α(V)).
//   - Prim: grow a tree from a root with a min-heap of frontier edges.
//     O(E log E).
//
// Compute dispatches between the two through functional options.
//
// Conventions:
//
//   - Self-loops are ignored; parallel edges are allowed.
//   - The returned tree has exactly n-1 edges; a single vertex yields an empty
//     tree of weight 0.
//   - Ties between equal weights are broken by input order (stable).
//
// Errors:
//
//   - ErrInvalidVertexCount: n < 0.
//   - ErrVertexOutOfRange:   an edge endpoint (or Prim root) outside [0, n).
//   - ErrDisconnected:       n == 0, or the graph is not connected.
//   - ErrUnknownMethod:      Compute given an unrecognized method.
package mst
