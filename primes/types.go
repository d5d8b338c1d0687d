package primes

import (
	"errors"
	"fmt"
	"math"
)

// MaxSieveLimit is the largest bound accepted by NewSieve.
const MaxSieveLimit = math.MaxInt32

// Sentinel errors.
var (
	// ErrInvalidArgument indicates an input outside a function's domain.
	ErrInvalidArgument = errors.New("primes: invalid argument")

	// ErrOutOfRange indicates a sieve query beyond the sieved bound.
	ErrOutOfRange = errors.New("primes: index out of range")
)

// Factor is one prime power p^e of a factorization.
type Factor struct {
	Prime int64
	Exp   int
}

// String renders the factor as "p^e".
func (f Factor) String() string {
	return fmt.Sprintf("%d^%d", f.Prime, f.Exp)
}

// Sieve holds the smallest-prime-factor table for [0, N] and the ascending
// list of primes ≤ N. Built by NewSieve; immutable afterwards.
type Sieve struct {
	n      int
	spf    []int32
	primes []int32
}
