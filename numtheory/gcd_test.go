package numtheory_test

import (
	"math/rand"
	"testing"

	"github.com/mutekichi/cptoolkit/numtheory"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestTruncatedDivision pins down the language semantics ExtGCD depends on.
func TestTruncatedDivision(t *testing.T) {
	a, b := int64(-7), int64(2)
	assert.Equal(t, int64(-3), a/b, "division must round toward zero")
	assert.Equal(t, int64(-1), a%b, "remainder takes the dividend's sign")
	assert.Equal(t, a, (a/b)*b+a%b)
}

// TestExtGCD_Table covers the scenarios plus negative and zero inputs.
func TestExtGCD_Table(t *testing.T) {
	tests := []struct {
		a, b    int64
		g, x, y int64
	}{
		{a: 111, b: 30, g: 3, x: 3, y: -11},
		{a: 240, b: 46, g: 2, x: -9, y: 47},
		{a: -4, b: 6, g: 2, x: 1, y: 1},
		{a: -4, b: 0, g: 4, x: -1, y: 0},
		{a: 0, b: -5, g: 5, x: 0, y: -1},
		{a: 7, b: -3, g: 1, x: 1, y: 2},
		{a: -111, b: -30, g: 3, x: -3, y: 11},
		{a: 0, b: 0, g: 0, x: 1, y: 0},
	}
	for _, tt := range tests {
		g, x, y := numtheory.ExtGCD(tt.a, tt.b)
		assert.Equal(t, [3]int64{tt.g, tt.x, tt.y}, [3]int64{g, x, y}, "ExtGCD(%d, %d)", tt.a, tt.b)
		assert.Equal(t, g, tt.a*x+tt.b*y, "Bézout identity for (%d, %d)", tt.a, tt.b)
	}
}

// TestExtGCD_Random checks the identity, divisibility and sign on random
// signed inputs.
func TestExtGCD_Random(t *testing.T) {
	rng := rand.New(rand.NewSource(11))
	for i := 0; i < 5000; i++ {
		a := rng.Int63n(2_000_001) - 1_000_000
		b := rng.Int63n(2_000_001) - 1_000_000
		g, x, y := numtheory.ExtGCD(a, b)

		require.Equal(t, g, a*x+b*y, "ExtGCD(%d, %d) = (%d, %d, %d)", a, b, g, x, y)
		require.GreaterOrEqual(t, g, int64(0))
		require.Equal(t, numtheory.GCD(a, b), g)
		if g != 0 {
			require.Zero(t, a%g)
			require.Zero(t, b%g)
		}
	}
}

// TestExtGCD_Int32 shows the helper is usable for narrower kinds.
func TestExtGCD_Int32(t *testing.T) {
	g, x, y := numtheory.ExtGCD[int32](111, 30)
	assert.Equal(t, int32(3), g)
	assert.Equal(t, int32(3), x)
	assert.Equal(t, int32(-11), y)
}

func TestGCD_LCM(t *testing.T) {
	assert.Equal(t, 6, numtheory.GCD(-12, 18))
	assert.Equal(t, 0, numtheory.GCD(0, 0))
	assert.Equal(t, uint64(4), numtheory.GCD[uint64](12, 8))
	assert.Equal(t, 36, numtheory.LCM(-12, 18))
	assert.Equal(t, 0, numtheory.LCM(0, 5))
}

// TestModInverse covers invertible, non-invertible and invalid moduli.
func TestModInverse(t *testing.T) {
	const mod = 1_000_000_007
	for _, a := range []int64{1, 2, 3, 123456789, -5, mod + 2} {
		inv, err := numtheory.ModInverse(a, mod)
		require.NoError(t, err)
		assert.GreaterOrEqual(t, inv, int64(0))
		assert.Less(t, inv, int64(mod))
		prod, err := numtheory.MulMod(a, inv, mod)
		require.NoError(t, err)
		assert.Equal(t, int64(1), prod, "a=%d inv=%d", a, inv)
	}

	_, err := numtheory.ModInverse(int64(6), 9)
	assert.ErrorIs(t, err, numtheory.ErrNoInverse)
	_, err = numtheory.ModInverse(int64(3), 0)
	assert.ErrorIs(t, err, numtheory.ErrInvalidArgument)

	inv, err := numtheory.ModInverse(int64(42), 1)
	require.NoError(t, err)
	assert.Equal(t, int64(0), inv)
}
