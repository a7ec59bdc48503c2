// SPDX-License-Identifier: MIT

// Package matrix - Vector: 1-dimensional storage with an orientation tag.
//
// Purpose:
//   - Hold a flat element slice plus Row/Col orientation.
//   - Orientation matters only for outer and matrix products; Dot ignores it.
//
// Complexity quicksheet:
//   - NewVector: O(n); Get: O(1); Transpose: O(1); Dot/Map/Mul/Add: O(n); Outer: O(n*m).

package matrix

import (
	"fmt"
	"math"
	"strings"

	"github.com/katalvlaran/cayley/num"
)

// Vector is a dense 1-D container read as 1×n (Row) or n×1 (Col).
type Vector[T num.Number] struct {
	elements    []T         // flat storage
	orientation Orientation // Row or Col; does not change storage
}

// NewVector builds a vector from a copy of elements.
// Complexity: O(n).
func NewVector[T num.Number](elements []T, o Orientation) *Vector[T] {
	buf := make([]T, len(elements))
	copy(buf, elements)

	return &Vector[T]{elements: buf, orientation: o}
}

// Range builds the inclusive sequence left, left+1, …, right.
// An empty vector is returned when right < left.
// Complexity: O(right-left).
func Range[T num.Number](left, right int, o Orientation) *Vector[T] {
	if right < left {
		return &Vector[T]{elements: []T{}, orientation: o}
	}
	out := make([]T, 0, right-left+1)
	for i := left; i <= right; i++ {
		out = append(out, num.FromCount[T](i))
	}

	return &Vector[T]{elements: out, orientation: o}
}

// Len returns the number of elements.
func (v *Vector[T]) Len() int { return len(v.elements) }

// Orientation returns Row or Col.
func (v *Vector[T]) Orientation() Orientation { return v.orientation }

// Shape reports the vector in the 3-axis form (x = len, y = 1, z = 0).
func (v *Vector[T]) Shape() Shape { return Shape{x: len(v.elements), y: 1} }

// Get returns element i or ErrOutOfRange.
// Complexity: O(1).
func (v *Vector[T]) Get(i int) (T, error) {
	if i < 0 || i >= len(v.elements) {
		return num.Zero[T](), fmt.Errorf("Vector.Get(%d): %w", i, ErrOutOfRange)
	}

	return v.elements[i], nil
}

// Elements returns a copy of the storage.
func (v *Vector[T]) Elements() []T {
	out := make([]T, len(v.elements))
	copy(out, v.elements)

	return out
}

// Clone returns a deep copy with the same orientation.
func (v *Vector[T]) Clone() *Vector[T] { return NewVector(v.elements, v.orientation) }

// Transpose flips the orientation in place; storage is untouched.
// Complexity: O(1).
func (v *Vector[T]) Transpose() { v.orientation = v.orientation.Flip() }

// Dot returns Σ v[i]*other[i].
//
// Behavior highlights:
//   - Defined for any two equal-length vectors; orientation is ignored.
//
// Errors:
//   - ErrNilMatrix for nil other, ErrDimensionMismatch for different lengths.
//
// Complexity:
//   - Time O(n), Space O(1).
func (v *Vector[T]) Dot(other *Vector[T]) (T, error) {
	if err := validateVecLen(other, len(v.elements)); err != nil {
		return num.Zero[T](), matrixErrorf(opDot, err)
	}

	return dot(v.elements, other.elements), nil
}

// Outer returns the len(v)×len(other) matrix with cell[r,c] = v[r]*other[c].
// Always defined for non-empty operands.
// It returns nil when other is nil or either operand is empty, since a Dense
// needs rows > 0 and cols > 0; check the result before calling its methods.
// Complexity: O(n*m).
func (v *Vector[T]) Outer(other *Vector[T]) *Dense[T] {
	if other == nil || len(v.elements) == 0 || len(other.elements) == 0 {
		return nil
	}
	rows, cols := len(v.elements), len(other.elements)
	out := newDenseUnchecked[T](rows, cols)
	var r, c int
	for r = 0; r < rows; r++ {
		for c = 0; c < cols; c++ {
			out.data[r*cols+c] = v.elements[r] * other.elements[c]
		}
	}

	return out
}

// Map returns f(value, e) for every element e; v is not mutated.
func (v *Vector[T]) Map(value T, f func(value, e T) T) []T {
	out := make([]T, len(v.elements))
	for i, e := range v.elements {
		out[i] = f(value, e)
	}

	return out
}

func mulFn[T num.Number](value, e T) T { return value * e }

func addFn[T num.Number](value, e T) T { return value + e }

// Mul multiplies every element by value in place.
func (v *Vector[T]) Mul(value T) { v.elements = v.Map(value, mulFn[T]) }

// Add adds value to every element in place.
func (v *Vector[T]) Add(value T) { v.elements = v.Map(value, addFn[T]) }

// Scaled returns a new vector value*v with the same orientation.
func (v *Vector[T]) Scaled(value T) *Vector[T] {
	return &Vector[T]{elements: v.Map(value, mulFn[T]), orientation: v.orientation}
}

// Shifted returns a new vector v+value with the same orientation.
func (v *Vector[T]) Shifted(value T) *Vector[T] {
	return &Vector[T]{elements: v.Map(value, addFn[T]), orientation: v.orientation}
}

// Equals reports equal length and exact element-wise equality.
// Orientation is not compared.
func (v *Vector[T]) Equals(other *Vector[T]) bool {
	if other == nil || len(v.elements) != len(other.elements) {
		return false
	}
	for i := range v.elements {
		if v.elements[i] != other.elements[i] {
			return false
		}
	}

	return true
}

// ApproxEqual is Equals with an explicit absolute tolerance.
func (v *Vector[T]) ApproxEqual(other *Vector[T], tol float64) bool {
	if other == nil || math.IsNaN(tol) || tol < 0 {
		return false
	}

	return withinTol(v.elements, other.elements, tol)
}

// String renders "[a, b, c]" for Row and "[a, b, c]ᵀ" for Col.
func (v *Vector[T]) String() string {
	var b strings.Builder
	b.WriteString("[")
	for i, e := range v.elements {
		if i > 0 {
			b.WriteString(_fmtSep)
		}
		fmt.Fprintf(&b, "%v", e)
	}
	b.WriteString("]")
	if v.orientation == Col {
		b.WriteString("ᵀ")
	}

	return b.String()
}
