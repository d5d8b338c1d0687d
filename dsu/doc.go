// Package dsu provides a disjoint-set forest (union-find) over dense integer
// ids with path compression and union by rank.
//
// What:
//
//   - UnionFind tracks a partition of {0,…,n-1} into equivalence classes.
//   - Find returns the class representative, compressing the walked path.
//   - Unite merges two classes and reports whether they were distinct.
//   - Same, Size, Count and Groups answer queries about the partition.
//
// Why:
//
//   - Kruskal's MST (see package mst), connectivity queries over an edge
//     stream, offline "are these two the same" problems.
//
// Complexity:
//
//   - Find, Unite, Same, Size: amortized O(α(n)) (inverse Ackermann).
//   - Groups: O(n·α(n) + n log n).
//   - Memory: O(n).
//
// Concurrency:
//
//	Every operation mutates internal state, Find included. A *UnionFind must
//	not be shared between goroutines without external synchronization.
//
// Errors:
//
//   - ErrInvalidArgument: negative element count passed to New.
//   - ErrOutOfRange:      element id outside [0, n).
package dsu
