package coordcomp

import (
	"fmt"
	"slices"
	"sort"

	"golang.org/x/exp/constraints"
)

// New builds a Compressor from values. values itself is left untouched.
//
// Steps:
//  1. Copy values.
//  2. Sort ascending.
//  3. Drop consecutive duplicates.
//
// Complexity: O(n log n) time, O(n) memory.
func New[T constraints.Ordered](values []T) *Compressor[T] {
	xs := slices.Clone(values)
	slices.Sort(xs)
	xs = slices.Compact(xs)

	return &Compressor[T]{xs: slices.Clip(xs)}
}

// Size returns the number of distinct sample values.
func (c *Compressor[T]) Size() int { return len(c.xs) }

// Rank returns the index i with ValueAt(i) == v.
// Returns ErrNotPresent when v was not in the sample.
// Complexity: O(log k).
func (c *Compressor[T]) Rank(v T) (int, error) {
	i, found := slices.BinarySearch(c.xs, v)
	if !found {
		return 0, fmt.Errorf("%w: %v", ErrNotPresent, v)
	}

	return i, nil
}

// MustRank is Rank for callers that guarantee v is a sample value.
// It panics otherwise.
func (c *Compressor[T]) MustRank(v T) int {
	i, err := c.Rank(v)
	if err != nil {
		panic(err)
	}

	return i
}

// RankAll compresses every element of values, in order. It fails on the
// first value that is not part of the sample.
func (c *Compressor[T]) RankAll(values []T) ([]int, error) {
	ranks := make([]int, len(values))
	for i, v := range values {
		r, err := c.Rank(v)
		if err != nil {
			return nil, fmt.Errorf("position %d: %w", i, err)
		}
		ranks[i] = r
	}

	return ranks, nil
}

// LowerBound returns the smallest i with ValueAt(i) ≥ v, or Size() if every
// sample value is smaller than v.
func (c *Compressor[T]) LowerBound(v T) int {
	i, _ := slices.BinarySearch(c.xs, v)

	return i
}

// UpperBound returns the smallest i with ValueAt(i) > v, or Size().
func (c *Compressor[T]) UpperBound(v T) int {
	return sort.Search(len(c.xs), func(i int) bool { return c.xs[i] > v })
}

// ValueAt returns the sample value with rank i.
// Returns ErrOutOfRange for i < 0 or i ≥ Size().
func (c *Compressor[T]) ValueAt(i int) (T, error) {
	if i < 0 || i >= len(c.xs) {
		var zero T
		return zero, fmt.Errorf("%w: %d, size %d", ErrOutOfRange, i, len(c.xs))
	}

	return c.xs[i], nil
}

// Values returns a copy of the sorted, deduplicated sample.
func (c *Compressor[T]) Values() []T {
	return slices.Clone(c.xs)
}
