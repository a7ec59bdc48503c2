// SPDX-License-Identifier: MIT

// Package matrix: descriptor types shared by Dense and Vector.
// This file contains ONLY small value types (Size, Shape, Dimension,
// Orientation). They carry no storage and are safe to copy.
package matrix

import "fmt"

// Size is an immutable (rows, cols) pair.
// Complexity: all methods are O(1).
type Size struct {
	rows int // number of rows
	cols int // number of columns
}

// NewSize builds a Size. It does not validate; Dense constructors do.
func NewSize(rows, cols int) Size { return Size{rows: rows, cols: cols} }

// Rows returns the number of rows.
func (s Size) Rows() int { return s.rows }

// Cols returns the number of columns.
func (s Size) Cols() int { return s.cols }

// Order returns rows*cols, the number of stored elements.
func (s Size) Order() int { return s.rows * s.cols }

// WithRows returns a copy of s with rows replaced.
func (s Size) WithRows(rows int) Size { return Size{rows: rows, cols: s.cols} }

// WithCols returns a copy of s with cols replaced.
func (s Size) WithCols(cols int) Size { return Size{rows: s.rows, cols: cols} }

// String renders "rows×cols".
func (s Size) String() string { return fmt.Sprintf("%d×%d", s.rows, s.cols) }

// Dimension classifies a Shape as 1-, 2- or 3-dimensional.
type Dimension int

const (
	OneDim Dimension = iota + 1
	TwoDim
	ThreeDim
)

// String implements fmt.Stringer.
func (d Dimension) String() string {
	switch d {
	case OneDim:
		return "1D"
	case TwoDim:
		return "2D"
	case ThreeDim:
		return "3D"
	default:
		return fmt.Sprintf("Dimension(%d)", int(d))
	}
}

// Shape is the extended 3-axis descriptor (x = width, y = height, z = depth).
// A zero or unit axis does not count as a dimension.
type Shape struct {
	x, y, z int
}

// NewShape builds a Shape from its three axes.
func NewShape(x, y, z int) Shape { return Shape{x: x, y: y, z: z} }

// X returns the width (columns for a matrix, length for a vector).
func (s Shape) X() int { return s.x }

// Y returns the height (rows for a matrix).
func (s Shape) Y() int { return s.y }

// Z returns the depth (0 for matrices and vectors).
func (s Shape) Z() int { return s.z }

// Dim derives the Dimension from the axes:
//   - z > 1           → ThreeDim
//   - x > 1 and y > 1 → TwoDim
//   - otherwise       → OneDim
func (s Shape) Dim() Dimension {
	switch {
	case s.z > 1:
		return ThreeDim
	case s.x > 1 && s.y > 1:
		return TwoDim
	default:
		return OneDim
	}
}

// Orientation tells whether a Vector is read as 1×n (Row) or n×1 (Col).
// Storage is identical for both.
type Orientation int

const (
	// Col is the n×1 reading; it is the zero value.
	Col Orientation = iota
	// Row is the 1×n reading.
	Row
)

// Flip returns the opposite orientation.
func (o Orientation) Flip() Orientation {
	if o == Row {
		return Col
	}

	return Row
}

// String implements fmt.Stringer.
func (o Orientation) String() string {
	if o == Row {
		return "Row"
	}

	return "Col"
}
