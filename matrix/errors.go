// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set.
// This file defines ONLY package-level sentinel errors used across the matrix
// package. All operations MUST return these sentinels (optionally wrapped with
// context via %w) and tests MUST check them via errors.Is. No operation panics
// on user-triggered error conditions.

package matrix

import "errors"

// NOTE ON NAMING & PREFIXING
// --------------------------
// Every message is prefixed with "matrix: ..." for consistency and to allow
// easy grepping across logs. Detection sites wrap with context, e.g.
// fmt.Errorf("Dense.Get(%d,%d): %w", i, j, ErrOutOfRange); callers still
// match with errors.Is.
//
// ERROR PRIORITY (documented, enforced in tests):
// nil -> shape/construction -> index -> dimension mismatch.

var (
	// ErrInvalidDimensions indicates that requested dimensions are non-positive
	// or that a nested construction input has no rows / an empty first row.
	ErrInvalidDimensions = errors.New("matrix: dimensions must be > 0")

	// ErrRagged indicates a nested construction input whose rows differ in length.
	ErrRagged = errors.New("matrix: rows have different lengths")

	// ErrOutOfRange indicates that an index (row, column or position) is outside
	// valid bounds. Get/Set/GetRow/GetCol return this; they never panic.
	ErrOutOfRange = errors.New("matrix: index out of range")

	// ErrDimensionMismatch indicates incompatible operand shapes, e.g. Add with
	// a different order, Product where a.Cols != b.Rows, or Dot of vectors with
	// different lengths.
	ErrDimensionMismatch = errors.New("matrix: dimension mismatch")

	// ErrNilMatrix indicates that a nil *Dense or *Vector operand was used.
	ErrNilMatrix = errors.New("matrix: nil operand")

	// ErrInvalidBounds indicates a random range with low >= high.
	ErrInvalidBounds = errors.New("matrix: invalid random bounds")
)
