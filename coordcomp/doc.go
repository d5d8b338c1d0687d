// Package coordcomp maps a bag of ordered values onto dense ranks [0, k)
// that preserve order ("coordinate compression").
//
// A Compressor is built once from a sample of values: the sample is copied,
// sorted ascending and deduplicated. Afterwards it is immutable and safe to
// share read-only between goroutines.
//
// Queries:
//
//   - Rank(v)        strict; v must be one of the sample values.
//   - LowerBound(v)  first rank whose value is ≥ v; never fails.
//   - UpperBound(v)  first rank whose value is > v; never fails.
//   - ValueAt(i)     inverse of Rank.
//
// LowerBound/UpperBound let a client compress query endpoints that were not
// part of the sample: the closed value range [lo, hi] corresponds to the
// half-open rank range [LowerBound(lo), UpperBound(hi)).
//
// Complexity: New O(n log n); Rank, LowerBound, UpperBound O(log k);
// ValueAt, Size O(1).
package coordcomp
