package primes_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/mutekichi/cptoolkit/primes"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestNewSieve_Invalid rejects bounds outside [0, MaxSieveLimit].
func TestNewSieve_Invalid(t *testing.T) {
	_, err := primes.NewSieve(-1)
	assert.ErrorIs(t, err, primes.ErrInvalidArgument)
	_, err = primes.NewSieve(primes.MaxSieveLimit + 1)
	assert.ErrorIs(t, err, primes.ErrInvalidArgument)
}

// TestSieve_Small checks the table, the prime list and the counts for N=30.
func TestSieve_Small(t *testing.T) {
	s, err := primes.NewSieve(30)
	require.NoError(t, err)

	assert.Equal(t, 30, s.Limit())
	want := []int{2, 3, 5, 7, 11, 13, 17, 19, 23, 29}
	if diff := cmp.Diff(want, s.Primes()); diff != "" {
		t.Errorf("Primes() mismatch (-want +got):\n%s", diff)
	}
	assert.Equal(t, len(want), s.PrimeCount())

	spf := map[int]int{0: 0, 1: 0, 2: 2, 9: 3, 15: 3, 25: 5, 29: 29, 30: 2}
	for i, wantSPF := range spf {
		got, err := s.SmallestPrimeFactor(i)
		require.NoError(t, err)
		assert.Equal(t, wantSPF, got, "spf[%d]", i)
	}
}

// TestSieve_Degenerate covers N = 0 and N = 1.
func TestSieve_Degenerate(t *testing.T) {
	for _, n := range []int{0, 1} {
		s, err := primes.NewSieve(n)
		require.NoError(t, err)
		assert.Empty(t, s.Primes())
		ok, err := s.IsPrime(n)
		require.NoError(t, err)
		assert.False(t, ok)
		assert.True(t, s.Bitmap().IsEmpty())
	}
}

// TestSieve_OutOfRange checks every indexed query beyond the bound.
func TestSieve_OutOfRange(t *testing.T) {
	s, err := primes.NewSieve(10)
	require.NoError(t, err)

	for _, i := range []int{-1, 11} {
		_, err = s.IsPrime(i)
		assert.ErrorIs(t, err, primes.ErrOutOfRange, "IsPrime(%d)", i)
		_, err = s.Factorize(i)
		assert.ErrorIs(t, err, primes.ErrOutOfRange, "Factorize(%d)", i)
		_, err = s.SmallestPrimeFactor(i)
		assert.ErrorIs(t, err, primes.ErrOutOfRange, "SmallestPrimeFactor(%d)", i)
		_, err = s.Divisors(i)
		assert.ErrorIs(t, err, primes.ErrOutOfRange, "Divisors(%d)", i)
	}
	_, err = s.Factorize(0)
	assert.ErrorIs(t, err, primes.ErrInvalidArgument)
}

// TestSieve_AgreesWithTrialDivision compares the sieve with the stateless
// functions for every i ≤ N.
func TestSieve_AgreesWithTrialDivision(t *testing.T) {
	const n = 3000
	s, err := primes.NewSieve(n)
	require.NoError(t, err)

	for i := 0; i <= n; i++ {
		got, err := s.IsPrime(i)
		require.NoError(t, err)
		assert.Equal(t, primes.IsPrime(int64(i)), got, "IsPrime(%d)", i)
		if i == 0 {
			continue
		}

		fs, err := s.Factorize(i)
		require.NoError(t, err)
		assert.Equal(t, int64(i), primes.Product(fs), "Product(Factorize(%d))", i)
		ref, err := primes.Factorize(int64(i))
		require.NoError(t, err)
		assert.Equal(t, ref, fs, "Factorize(%d)", i)

		divs, err := s.Divisors(i)
		require.NoError(t, err)
		refDivs, err := primes.Divisors(int64(i))
		require.NoError(t, err)
		require.Len(t, divs, len(refDivs))
		for k := range divs {
			assert.Equal(t, refDivs[k], int64(divs[k]))
		}
	}
}

// TestSieve_Bitmap checks that the bitmap mirrors the prime list.
func TestSieve_Bitmap(t *testing.T) {
	s, err := primes.NewSieve(1000)
	require.NoError(t, err)

	bm := s.Bitmap()
	assert.Equal(t, uint64(s.PrimeCount()), bm.GetCardinality())
	assert.True(t, bm.Contains(997))
	assert.False(t, bm.Contains(999))

	// Mutating the returned bitmap must not leak into later calls.
	bm.Add(4)
	assert.False(t, s.Bitmap().Contains(4))
}
