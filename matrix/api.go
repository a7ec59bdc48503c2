// SPDX-License-Identifier: MIT
// Package matrix: public API facades.
//
// Purpose:
//   - Provide thin entry points for common constructions across the package.
//   - Avoid logic duplication; each facade delegates to the canonical implementation.

package matrix

import "github.com/katalvlaran/cayley/num"

// ---------- Constructors & Utilities (O(1) alloc + O(rc) zeroing by runtime) ----------

// NewZeros returns a new zero-initialized *Dense of size rows×cols.
// It is a thin alias of NewDense with an intention-revealing name.
//
// Note: Returns (*Dense, error) to surface ErrInvalidDimensions.
func NewZeros[T num.Number](rows, cols int) (*Dense[T], error) {
	return NewDense[T](rows, cols)
}

// NewIdentity returns I_n (n×n identity; ones on the diagonal, zeros elsewhere).
// Complexity: O(n^2) zeroing (constructor) + O(n) writes on the diagonal.
func NewIdentity[T num.Number](n int) (*Dense[T], error) {
	I, err := NewDense[T](n, n)
	if err != nil {
		return nil, err // propagate constructor error unchanged
	}
	for i := 0; i < n; i++ { // fixed i order
		I.data[i*n+i] = num.One[T]()
	}

	return I, nil
}

// ZerosLike returns a new zero matrix with the same shape as m.
// Errors: ErrNilMatrix for nil m.
func ZerosLike[T num.Number](m *Dense[T]) (*Dense[T], error) {
	if m == nil {
		return nil, matrixErrorf("ZerosLike", ErrNilMatrix)
	}

	return NewDense[T](m.r, m.c)
}

// Outer is a facade for u.Outer(v). It returns nil for an empty operand.
func Outer[T num.Number](u, v *Vector[T]) *Dense[T] { return u.Outer(v) }

// Dot is a facade for u.Dot(v).
func Dot[T num.Number](u, v *Vector[T]) (T, error) { return u.Dot(v) }
