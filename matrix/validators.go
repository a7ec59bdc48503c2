// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//  - Provide a single, canonical source of truth for common validation checks.
//  - Keep kernels minimal by delegating shape/nil checks here.
//  - Return sentinel errors tagged with the validator name so call sites can wrap uniformly.
//
// Determinism & Performance:
//  - All checks are pure, deterministic and allocate nothing.
//
// Note:
//  - Each composite validator follows a fixed sequence (NotNil → Shape).

package matrix

import (
	"fmt"

	"github.com/katalvlaran/cayley/num"
)

// validatorErrorf wraps an underlying error with the given validator tag.
func validatorErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// validateRectangular checks nested construction input and returns its shape.
//
// Errors: ErrInvalidDimensions (no rows, empty first row), ErrRagged.
// Complexity: O(r).
func validateRectangular[T num.Number](data [][]T) (rows, cols int, err error) {
	if len(data) == 0 || len(data[0]) == 0 {
		return 0, 0, validatorErrorf("validateRectangular", ErrInvalidDimensions)
	}
	rows, cols = len(data), len(data[0])
	for i := 1; i < rows; i++ {
		if len(data[i]) != cols {
			return 0, 0, validatorErrorf(fmt.Sprintf("validateRectangular: row %d has %d, want %d", i, len(data[i]), cols), ErrRagged)
		}
	}

	return rows, cols, nil
}

// validateBinary – Composite: NotNil(a) → NotNil(b).
//
// Errors: ErrNilMatrix.
// Complexity: O(1).
func validateBinary[T num.Number](a, b *Dense[T]) error {
	if a == nil || b == nil {
		return validatorErrorf("validateBinary", ErrNilMatrix)
	}

	return nil
}

// validateSameOrder – Composite: NotNil → rows*cols equal.
// Order (not shape) is compared; a 2×3 and a 3×2 operand are compatible.
//
// Errors: ErrNilMatrix, ErrDimensionMismatch.
// Complexity: O(1).
func validateSameOrder[T num.Number](a, b *Dense[T]) error {
	if err := validateBinary(a, b); err != nil {
		return validatorErrorf("validateSameOrder", err)
	}
	if len(a.data) != len(b.data) {
		return validatorErrorf("validateSameOrder", ErrDimensionMismatch)
	}

	return nil
}

// validateInner – Composite: NotNil → a.Cols == b.Rows.
//
// Errors: ErrNilMatrix, ErrDimensionMismatch.
// Complexity: O(1).
func validateInner[T num.Number](a, b *Dense[T]) error {
	if err := validateBinary(a, b); err != nil {
		return validatorErrorf("validateInner", err)
	}
	if a.c != b.r {
		return validatorErrorf("validateInner", ErrDimensionMismatch)
	}

	return nil
}

// validateVecLen ensures v is non-nil and has exactly n elements.
// Time: O(1). Space: O(1).
func validateVecLen[T num.Number](v *Vector[T], n int) error {
	if v == nil {
		return validatorErrorf("validateVecLen", ErrNilMatrix)
	}
	if len(v.elements) != n {
		return validatorErrorf("validateVecLen", ErrDimensionMismatch)
	}

	return nil
}

// validateBounds requires low < high for uniform sampling.
func validateBounds[T num.Number](low, high T) error {
	if !(low < high) { // also rejects NaN bounds
		return validatorErrorf("validateBounds", ErrInvalidBounds)
	}

	return nil
}
