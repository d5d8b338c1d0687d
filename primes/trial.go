package primes

import (
	"fmt"
	"slices"
)

// IsPrime reports whether n is prime by trial division.
// Values below 2 (negatives included) are not prime.
//
// Complexity: O(√n).
func IsPrime(n int64) bool {
	if n < 2 {
		return false
	}
	if n < 4 {
		return true
	}
	if n%2 == 0 {
		return false
	}
	// d <= n/d is d*d <= n without overflow near MaxInt64.
	for d := int64(3); d <= n/d; d += 2 {
		if n%d == 0 {
			return false
		}
	}

	return true
}

// Divisors returns the positive divisors of n in strictly ascending order.
// n must be positive; Divisors(1) is [1].
//
// Steps:
//  1. Walk d from 1 while d*d ≤ n.
//  2. When d divides n collect d, and n/d when it differs from d.
//  3. Sort.
//
// Complexity: O(√n + d(n) log d(n)).
func Divisors(n int64) ([]int64, error) {
	if n <= 0 {
		return nil, fmt.Errorf("%w: divisors of %d", ErrInvalidArgument, n)
	}
	var divs []int64
	for d := int64(1); d <= n/d; d++ {
		if n%d != 0 {
			continue
		}
		divs = append(divs, d)
		if q := n / d; q != d {
			divs = append(divs, q)
		}
	}
	slices.Sort(divs)

	return divs, nil
}

// Factorize returns the prime factorization of n as ascending (prime, exponent)
// pairs. Factorize(1) is an empty slice; n ≤ 0 is rejected.
//
// Steps:
//  1. Peel off every factor 2.
//  2. Trial-divide by odd d while d*d ≤ remainder, peeling exponents.
//  3. A remainder > 1 is itself prime and closes the list with exponent 1.
//
// Complexity: O(√n).
func Factorize(n int64) ([]Factor, error) {
	if n <= 0 {
		return nil, fmt.Errorf("%w: factorize %d", ErrInvalidArgument, n)
	}
	fs := make([]Factor, 0, 8)
	if e := peel(&n, 2); e > 0 {
		fs = append(fs, Factor{Prime: 2, Exp: e})
	}
	for d := int64(3); d <= n/d; d += 2 {
		if e := peel(&n, d); e > 0 {
			fs = append(fs, Factor{Prime: d, Exp: e})
		}
	}
	if n > 1 {
		fs = append(fs, Factor{Prime: n, Exp: 1})
	}

	return fs, nil
}

// Product multiplies a factorization back out. An empty list yields 1.
// The caller is responsible for the product fitting in int64.
func Product(fs []Factor) int64 {
	out := int64(1)
	for _, f := range fs {
		for e := 0; e < f.Exp; e++ {
			out *= f.Prime
		}
	}

	return out
}

// peel divides *n by d as often as possible and returns the count.
func peel(n *int64, d int64) int {
	e := 0
	for *n%d == 0 {
		*n /= d
		e++
	}

	return e
}
