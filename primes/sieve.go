package primes

import (
	"fmt"
	"slices"

	"github.com/RoaringBitmap/roaring/v2"
)

// NewSieve builds the smallest-prime-factor table for [0, n] with a linear
// sieve.
//
// Algorithm Outline:
//  1. spf[i] = 0 for all i; primes = [].
//  2. For i = 2..n:
//     a. If spf[i] == 0, i is prime: spf[i] = i, append i to primes.
//     b. For each prime p ≤ spf[i] with i·p ≤ n: spf[i·p] = p.
//
// Each composite is written exactly once, by its least prime factor.
// n must lie in [0, MaxSieveLimit].
//
// Complexity: O(n) time, O(n) memory.
func NewSieve(n int) (*Sieve, error) {
	if n < 0 || n > MaxSieveLimit {
		return nil, fmt.Errorf("%w: sieve bound %d not in [0, %d]", ErrInvalidArgument, n, MaxSieveLimit)
	}
	spf := make([]int32, n+1)
	primes := make([]int32, 0, estimatePrimeCount(n))
	for i := 2; i <= n; i++ {
		if spf[i] == 0 {
			spf[i] = int32(i)
			primes = append(primes, int32(i))
		}
		for _, p := range primes {
			ip := int64(i) * int64(p)
			if p > spf[i] || ip > int64(n) {
				break
			}
			spf[ip] = p
		}
	}

	return &Sieve{n: n, spf: spf, primes: slices.Clip(primes)}, nil
}

// Limit returns the bound N the sieve was built for.
func (s *Sieve) Limit() int { return s.n }

// PrimeCount returns the number of primes ≤ N.
func (s *Sieve) PrimeCount() int { return len(s.primes) }

// IsPrime reports whether i is prime. Requires 0 ≤ i ≤ N.
// Complexity: O(1).
func (s *Sieve) IsPrime(i int) (bool, error) {
	if err := s.check(i); err != nil {
		return false, err
	}

	return i >= 2 && int(s.spf[i]) == i, nil
}

// SmallestPrimeFactor returns the table entry for i: its least prime factor,
// or 0 for i < 2.
func (s *Sieve) SmallestPrimeFactor(i int) (int, error) {
	if err := s.check(i); err != nil {
		return 0, err
	}

	return int(s.spf[i]), nil
}

// Factorize returns the ascending (prime, exponent) pairs of i by repeatedly
// dividing out the stored smallest prime factor. Factorize(1) is empty;
// i == 0 has no factorization and is rejected.
//
// Complexity: O(log i).
func (s *Sieve) Factorize(i int) ([]Factor, error) {
	if err := s.check(i); err != nil {
		return nil, err
	}
	if i == 0 {
		return nil, fmt.Errorf("%w: factorize 0", ErrInvalidArgument)
	}

	fs := make([]Factor, 0, 8)
	for i > 1 {
		p := int(s.spf[i])
		e := 0
		for i%p == 0 {
			i /= p
			e++
		}
		fs = append(fs, Factor{Prime: int64(p), Exp: e})
	}

	return fs, nil
}

// Divisors returns the positive divisors of i in ascending order, expanded
// from its factorization. i must be in [1, N].
//
// Complexity: O(log i + d(i) log d(i)).
func (s *Sieve) Divisors(i int) ([]int, error) {
	fs, err := s.Factorize(i)
	if err != nil {
		return nil, err
	}

	divs := []int{1}
	for _, f := range fs {
		base := len(divs)
		pw := 1
		for e := 0; e < f.Exp; e++ {
			pw *= int(f.Prime)
			for k := 0; k < base; k++ {
				divs = append(divs, divs[k]*pw)
			}
		}
	}
	slices.Sort(divs)

	return divs, nil
}

// Primes returns the ascending primes ≤ N. The slice is a fresh copy.
func (s *Sieve) Primes() []int {
	out := make([]int, len(s.primes))
	for k, p := range s.primes {
		out[k] = int(p)
	}

	return out
}

// Bitmap returns the primes ≤ N as a new Roaring bitmap owned by the caller.
func (s *Sieve) Bitmap() *roaring.Bitmap {
	bm := roaring.New()
	for _, p := range s.primes {
		bm.Add(uint32(p))
	}
	bm.RunOptimize()

	return bm
}

func (s *Sieve) check(i int) error {
	if i < 0 || i > s.n {
		return fmt.Errorf("%w: %d not in [0, %d]", ErrOutOfRange, i, s.n)
	}

	return nil
}

// estimatePrimeCount is a slight overestimate of π(n) used to size the prime
// list up front (n/ln n · 1.26 bounds π(n) for n ≥ 17).
func estimatePrimeCount(n int) int {
	if n < 17 {
		return 8
	}
	bits := 0
	for v := n; v > 0; v >>= 1 {
		bits++
	}
	// ln n ≥ 0.69·(bits-1); 1.26/0.69 < 2.
	return 2 * n / (bits - 1)
}
