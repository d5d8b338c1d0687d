package numtheory

import (
	"fmt"
	"math/bits"

	"golang.org/x/exp/constraints"
)

// ModPow returns base^exp mod m in [0, m) by binary exponentiation.
//
// Steps:
//  1. Validate m > 0 and exp ≥ 0.
//  2. Reduce base into [0, m); negative bases are shifted up by m.
//  3. result = 1 mod m; consume exp from the low bit, multiplying result by
//     the running square when the bit is set, squaring after every bit.
//
// ModPow(b, 0, m) is 1 mod m even when b ≡ 0 (mod m), following the usual
// 0^0 = 1 convention. ModPow(b, e, 1) is 0.
//
// Complexity: O(log exp) multiplications, each through a 128-bit product.
func ModPow[T constraints.Integer](base, exp, m T) (T, error) {
	if m <= 0 {
		return 0, fmt.Errorf("%w: modulus %d", ErrInvalidArgument, m)
	}
	if exp < 0 {
		return 0, fmt.Errorf("%w: exponent %d", ErrInvalidArgument, exp)
	}

	mod := uint64(m)
	b := reduce(base, m)
	result := 1 % mod
	for e := exp; e > 0; e >>= 1 {
		if e&1 == 1 {
			result = mulmod(result, b, mod)
		}
		b = mulmod(b, b, mod)
	}

	return T(result), nil
}

// MulMod returns a·b mod m in [0, m) without overflowing T.
// Returns ErrInvalidArgument for m ≤ 0.
func MulMod[T constraints.Integer](a, b, m T) (T, error) {
	if m <= 0 {
		return 0, fmt.Errorf("%w: modulus %d", ErrInvalidArgument, m)
	}

	return T(mulmod(reduce(a, m), reduce(b, m), uint64(m))), nil
}

// reduce maps v into [0, m) as a uint64. m must be positive.
func reduce[T constraints.Integer](v, m T) uint64 {
	r := v % m
	if r < 0 {
		r += m
	}

	return uint64(r)
}

// mulmod computes a·b mod m through the full 128-bit product. a, b < m.
func mulmod(a, b, m uint64) uint64 {
	hi, lo := bits.Mul64(a, b)

	return bits.Rem64(hi, lo, m)
}
