// SPDX-License-Identifier: MIT

// Package matrix - uniform random constructors.
//
// Purpose:
//   - Fill a Dense or Vector with independent uniform samples in [low, high).
//
// Behavior highlights:
//   - Integer kinds draw uniformly from the integers low..high-1, including
//     intervals wider than math.MaxInt64.
//   - Float kinds draw low + (high-low)*u with u ∈ [0,1); a sample that rounds
//     up to high is clamped back to low so the interval stays half-open.
//
// Pass WithSeed in tests to make fixtures reproducible.

package matrix

import (
	"fmt"
	"math"
	"math/rand"

	"github.com/katalvlaran/cayley/num"
)

const (
	ctxRandom       = "Random"
	ctxRandomVector = "RandomVector"
)

// isIntegerKind reports whether T truncates fractions (every int kind does).
func isIntegerKind[T num.Number]() bool {
	half := 0.5

	return T(half) == num.Zero[T]()
}

// sampler returns a closure drawing one value in [low, high).
// Assumes low < high (validated by callers).
func sampler[T num.Number](rng *rand.Rand, low, high T) func() T {
	if isIntegerKind[T]() {
		base := int64(low)
		// high-low in two's complement; exact as unsigned for any low < high.
		span := uint64(int64(high) - base)
		if span <= math.MaxInt64 {
			return func() T { return T(base + rng.Int63n(int64(span))) }
		}

		// span >= 2^63: rejection sampling accepts more than half of all draws.
		return func() T {
			u := rng.Uint64()
			for u >= span {
				u = rng.Uint64()
			}

			return T(base + int64(u)) // wraps back into [low, high)
		}
	}
	lo, hi := float64(low), float64(high)

	return func() T {
		v := T(lo + (hi-lo)*rng.Float64())
		if v >= high { // rounding at the top edge
			return low
		}

		return v
	}
}

// fill writes n samples into a fresh slice.
func fill[T num.Number](rng *rand.Rand, low, high T, n int) []T {
	draw := sampler(rng, low, high)
	out := make([]T, n)
	for i := range out {
		out[i] = draw()
	}

	return out
}

// Random returns a rows×cols matrix of uniform samples in [low, high).
//
// Implementation:
//   - Stage 1: validate shape and bounds.
//   - Stage 2: resolve the source from options (per-call unless WithRand).
//   - Stage 3: draw rows*cols samples in row-major order.
//
// Errors:
//   - ErrInvalidDimensions for non-positive rows/cols.
//   - ErrInvalidBounds when low >= high.
//
// Determinism:
//   - Identical seed and arguments produce identical matrices.
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func Random[T num.Number](low, high T, rows, cols int, opts ...RandomOption) (*Dense[T], error) {
	if rows <= 0 || cols <= 0 {
		return nil, fmt.Errorf("%s(%d,%d): %w", ctxRandom, rows, cols, ErrInvalidDimensions)
	}
	if err := validateBounds(low, high); err != nil {
		return nil, fmt.Errorf("%s: %w", ctxRandom, err)
	}
	cfg := newRandomConfig(opts...)

	return &Dense[T]{r: rows, c: cols, data: fill(cfg.rng, low, high, rows*cols)}, nil
}

// RandomVector returns a vector of size uniform samples in [low, high).
// Errors: ErrInvalidDimensions for negative size, ErrInvalidBounds when low >= high.
// Complexity: O(size).
func RandomVector[T num.Number](low, high T, size int, o Orientation, opts ...RandomOption) (*Vector[T], error) {
	if size < 0 {
		return nil, fmt.Errorf("%s(%d): %w", ctxRandomVector, size, ErrInvalidDimensions)
	}
	if err := validateBounds(low, high); err != nil {
		return nil, fmt.Errorf("%s: %w", ctxRandomVector, err)
	}
	cfg := newRandomConfig(opts...)

	return &Vector[T]{elements: fill(cfg.rng, low, high, size), orientation: o}, nil
}
