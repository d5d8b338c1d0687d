// Package cptoolkit is a small, dependable toolkit of competitive-programming
// primitives: the pieces that keep reappearing across contest solutions,
// written once, documented and tested.
//
// 🚀 What is inside?
//
//	A set of independent, allocation-conscious packages:
//		• coordcomp — coordinate compression onto dense ranks
//		• primes    — trial-division primality, divisors, factorization; linear sieve
//		• zarray    — Z-algorithm (per-position LCP with the whole sequence)
//		• dsu       — union-find with path compression and union by rank
//		• numtheory — extended Euclid, modular exponentiation, inverses
//		• mst       — Kruskal and Prim over integer edge lists (built on dsu)
//
// ✨ Why cptoolkit?
//
//   - Generic where it matters – one ModPow for int32, int64 and uint64
//   - Explicit failures – sentinel errors matched with errors.Is, no silent clamping
//   - Quiet – library packages never log; the CLI owns logging
//   - Immutable results – compressors, sieves and Z-arrays may be shared read-only
//
// Layout:
//
//	coordcomp/      — Compressor[T]
//	primes/         — IsPrime, Divisors, Factorize, Sieve
//	zarray/         — Build, BuildString, Occurrences
//	dsu/            — UnionFind
//	numtheory/      — ExtGCD, ModPow, MulMod, GCD, LCM, ModInverse
//	mst/            — Kruskal, Prim, Compute
//	internal/cli/   — cobra command tree
//	cmd/cptoolkit/  — the cptoolkit binary
//
// Quick example:
//
//	c := coordcomp.New([]int{100, 2, 100, 50, 2})
//	r, _ := c.Rank(50) // 1
//
//	go install github.com/mutekichi/cptoolkit/cmd/cptoolkit@latest
package cptoolkit
