// SPDX-License-Identifier: MIT

// Package num defines the scalar contract shared by every container and
// algorithm in cayley.
//
// Purpose:
//   - Provide one generic constraint (Number) instead of per-type copies.
//   - Provide the identities the algorithms need: Zero, One, MinusOne.
//   - Provide Abs and FromCount, which the built-in operators do not cover.
//
// Notes:
//   - Unsigned kinds are excluded on purpose: MinusOne must exist.
//   - Arithmetic (+, -, *, /) and ordering (<, >) come from the type set itself.
package num

// Number is the set of element types a Dense or Vector may hold.
// Field algebra (associativity, distributivity) is assumed, not enforced;
// floats satisfy it approximately, integers truncate on division.
type Number interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 | ~float32 | ~float64
}

// Zero returns the additive identity of T.
// Complexity: O(1).
func Zero[T Number]() T { return 0 }

// One returns the multiplicative identity of T.
// Complexity: O(1).
func One[T Number]() T { return 1 }

// MinusOne returns the additive inverse of One.
// Used as the coefficient that turns addition into subtraction.
// Complexity: O(1).
func MinusOne[T Number]() T { return -1 }

// Abs returns |v|.
// For the most negative integer of a fixed width the result overflows and
// stays negative, exactly as two's complement negation does.
// Complexity: O(1).
func Abs[T Number](v T) T {
	if v < 0 {
		return -v
	}

	return v
}

// FromCount converts an element count into T (e.g., the divisor of a mean).
// Complexity: O(1).
func FromCount[T Number](n int) T { return T(n) }

// IsZero reports whether v equals the additive identity exactly.
func IsZero[T Number](v T) bool { return v == Zero[T]() }
