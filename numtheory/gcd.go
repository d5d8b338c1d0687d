package numtheory

import (
	"fmt"

	"golang.org/x/exp/constraints"
)

// ExtGCD returns g, x, y with a·x + b·y = g = gcd(|a|, |b|).
//
// It is the iterative form of the recurrence
//
//	ext_gcd(a, 0) = (a, 1, 0)
//	ext_gcd(a, b) = (g, x', y' − (a/b)·x')  where (g, y', x') = ext_gcd(b, a%b)
//
// with / and % truncating toward zero. When negative inputs drive g below
// zero, all three results are negated so that g ≥ 0; the identity still holds.
// ExtGCD(0, 0) is (0, 1, 0).
//
// Complexity: O(log min(|a|, |b|)).
func ExtGCD[T constraints.Signed](a, b T) (g, x, y T) {
	oldR, r := a, b
	oldS, s := T(1), T(0)
	oldT, t := T(0), T(1)
	for r != 0 {
		q := oldR / r
		oldR, r = r, oldR-q*r
		oldS, s = s, oldS-q*s
		oldT, t = t, oldT-q*t
	}
	if oldR < 0 {
		return -oldR, -oldS, -oldT
	}

	return oldR, oldS, oldT
}

// GCD returns the non-negative greatest common divisor of a and b.
// GCD(0, 0) is 0.
func GCD[T constraints.Integer](a, b T) T {
	a, b = abs(a), abs(b)
	for b != 0 {
		a, b = b, a%b
	}

	return a
}

// LCM returns the non-negative least common multiple of a and b, or 0 when
// either is 0. The result must fit in T.
func LCM[T constraints.Integer](a, b T) T {
	if a == 0 || b == 0 {
		return 0
	}

	return abs(a) / GCD(a, b) * abs(b)
}

// ModInverse returns the x in [0, m) with a·x ≡ 1 (mod m).
// Returns ErrInvalidArgument for m ≤ 0 and ErrNoInverse when gcd(a, m) ≠ 1.
func ModInverse[T constraints.Signed](a, m T) (T, error) {
	if m <= 0 {
		return 0, fmt.Errorf("%w: modulus %d", ErrInvalidArgument, m)
	}
	a %= m
	if a < 0 {
		a += m
	}
	g, x, _ := ExtGCD(a, m)
	if g != 1 {
		return 0, fmt.Errorf("%w: gcd(%d, %d) = %d", ErrNoInverse, a, m, g)
	}
	x %= m
	if x < 0 {
		x += m
	}

	return x, nil
}

func abs[T constraints.Integer](v T) T {
	if v < 0 {
		return -v
	}

	return v
}
