package coordcomp

import (
	"errors"

	"golang.org/x/exp/constraints"
)

// Sentinel errors for compression queries.
var (
	// ErrNotPresent indicates Rank was asked for a value outside the sample.
	ErrNotPresent = errors.New("coordcomp: value not present")

	// ErrOutOfRange indicates a rank outside [0, Size()).
	ErrOutOfRange = errors.New("coordcomp: rank out of range")
)

// Compressor holds the strictly increasing, duplicate-free sample xs.
// The zero value is an empty compressor.
type Compressor[T constraints.Ordered] struct {
	xs []T
}
