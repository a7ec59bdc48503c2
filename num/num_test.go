// Package num_test contains unit tests for the numeric identities.
package num_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/cayley/num"
	"github.com/stretchr/testify/require"
)

// celsius checks that named types with a numeric core satisfy Number.
type celsius float64

// TestIdentities verifies Zero/One/MinusOne for integer and float kinds.
func TestIdentities(t *testing.T) {
	require.Equal(t, 0, num.Zero[int]())
	require.Equal(t, int32(1), num.One[int32]())
	require.Equal(t, int64(-1), num.MinusOne[int64]())

	require.Equal(t, 0.0, num.Zero[float64]())
	require.Equal(t, float32(1), num.One[float32]())
	require.Equal(t, celsius(-1), num.MinusOne[celsius]())

	// one + minus_one == zero for every kind
	require.Equal(t, num.Zero[int8](), num.One[int8]()+num.MinusOne[int8]())
	require.Equal(t, num.Zero[float64](), num.One[float64]()+num.MinusOne[float64]())
}

// TestAbs covers positive, negative and zero inputs.
func TestAbs(t *testing.T) {
	for _, tc := range []struct {
		name string
		in   float64
		want float64
	}{
		{"positive", 2.5, 2.5},
		{"negative", -2.5, 2.5},
		{"zero", 0, 0},
		{"neg-inf", math.Inf(-1), math.Inf(1)},
	} {
		t.Run(tc.name, func(t *testing.T) {
			require.Equal(t, tc.want, num.Abs(tc.in))
		})
	}

	require.Equal(t, 7, num.Abs(-7))
	require.Equal(t, int16(3), num.Abs(int16(3)))
	require.Equal(t, celsius(4), num.Abs(celsius(-4)))
}

// TestFromCount converts counts into each kind.
func TestFromCount(t *testing.T) {
	require.Equal(t, 12, num.FromCount[int](12))
	require.Equal(t, 12.0, num.FromCount[float64](12))
	require.Equal(t, float32(3), num.FromCount[float32](3))
}

// TestIsZero checks the exact-zero test used by the solver.
func TestIsZero(t *testing.T) {
	require.True(t, num.IsZero(0.0))
	require.True(t, num.IsZero(math.Copysign(0, -1))) // -0 == 0
	require.False(t, num.IsZero(1e-300))
	require.True(t, num.IsZero(0))
	require.False(t, num.IsZero(-1))
}
