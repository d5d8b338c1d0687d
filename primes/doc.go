// Package primes provides primality tests, divisor enumeration and prime
// factorization, in two flavours:
//
//   - Stateless trial division over int64 (IsPrime, Divisors, Factorize):
//     O(√n) per call, no precomputation.
//   - A linear sieve (Sieve) holding the smallest prime factor of every
//     i ≤ N: O(N) to build, then O(1) primality and O(log i) factorization.
//
// Sieve layout:
//
//	i    : 0 1 2 3 4 5 6 7 8 9 10
//	spf  : 0 0 2 3 2 5 2 7 2 3 2
//
// spf[i] is the least prime dividing i; 0 is the sentinel for i < 2.
//
// A built Sieve is immutable and may be shared read-only between goroutines.
// Bitmap exports the primes as a Roaring bitmap for set algebra with other
// id sets.
//
// Errors:
//
//   - ErrInvalidArgument: n ≤ 0 for Divisors/Factorize, bad sieve bound.
//   - ErrOutOfRange:      sieve query outside [0, N].
package primes
