package numtheory

import "errors"

// Sentinel errors.
var (
	// ErrInvalidArgument indicates a nonpositive modulus or a negative exponent.
	ErrInvalidArgument = errors.New("numtheory: invalid argument")

	// ErrNoInverse indicates gcd(a, m) ≠ 1, so a has no inverse modulo m.
	ErrNoInverse = errors.New("numtheory: no modular inverse")
)
