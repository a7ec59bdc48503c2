// SPDX-License-Identifier: MIT
// Package matrix provides the algebra of Dense: transpose, product,
// matrix-vector product, element-wise addition/subtraction, scalar scaling,
// reductions and comparisons. All operations validate operands fail-fast and
// return fresh results; receivers and arguments are never mutated.
//
// Notes:
//   - []float64 storage takes gonum/floats fast-paths for dot and sum kernels;
//     every other kind uses the generic loop with the same summation order.
//   - Tolerance comparisons go through gonum/floats/scalar.

package matrix

import (
	"fmt"
	"math"

	"github.com/katalvlaran/cayley/num"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/floats/scalar"
)

// DefaultTolerance is the absolute tolerance suggested for ApproxEqual on
// floating-point data.
const DefaultTolerance = 1e-9

// Operation name constants for unified error wrapping and reducing magic strings.
const (
	opAdd           = "Add"
	opSubtract      = "Subtract"
	opProduct       = "Product"
	opVectorProduct = "VectorProduct"
	opDot           = "Dot"
)

// matrixErrorf wraps err with an operation tag, preserving the original error via %w.
// Use only when err != nil.
// Complexity: O(1).
func matrixErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// asFloat64s exposes xs as []float64 when T is exactly float64.
func asFloat64s[T num.Number](xs []T) ([]float64, bool) {
	fs, ok := any(xs).([]float64)

	return fs, ok
}

// dot returns Σ a[i]*b[i] over equal-length slices, accumulating in index order.
func dot[T num.Number](a, b []T) T {
	if fa, ok := asFloat64s(a); ok {
		fb, _ := asFloat64s(b)

		return T(floats.Dot(fa, fb))
	}
	acc := num.Zero[T]()
	for i := range a {
		acc += a[i] * b[i]
	}

	return acc
}

// sum returns Σ xs[i], accumulating in index order.
func sum[T num.Number](xs []T) T {
	if fs, ok := asFloat64s(xs); ok {
		return T(floats.Sum(fs))
	}
	acc := num.Zero[T]()
	for _, v := range xs {
		acc += v
	}

	return acc
}

// withinTol reports |a-b| <= tol after widening both to float64.
func withinTol[T num.Number](a, b []T, tol float64) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if !scalar.EqualWithinAbs(float64(a[i]), float64(b[i]), tol) {
			return false
		}
	}

	return true
}

// Transpose returns a new matrix with rows and columns swapped (mᵀ).
//
// Implementation:
//   - Stage 1: allocate c×r.
//   - Stage 2: out[j*r+i] = in[i*c+j] with fixed i→j order.
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func (m *Dense[T]) Transpose() *Dense[T] {
	out := newDenseUnchecked[T](m.c, m.r)
	var i, j, base int
	for i = 0; i < m.r; i++ {
		base = i * m.c
		for j = 0; j < m.c; j++ {
			out.data[j*m.r+i] = m.data[base+j]
		}
	}

	return out
}

// Product performs standard matrix multiplication C = A × B (no aliasing).
//
// Implementation:
//   - Stage 1: validate A.Cols == B.Rows (direct inner-dimension check).
//   - Stage 2: allocate A.Rows×B.Cols.
//   - Stage 3: i→k→j loops; each C[i,j] accumulates A[i,k]*B[k,j] in k order.
//
// Behavior highlights:
//   - The i→k→j order streams rows of B and C, keeping access contiguous.
//
// Inputs:
//   - other: right operand, other.Rows() must equal m.Cols().
//
// Returns:
//   - *Dense[T]: m.Rows()×other.Cols() product.
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch (wrapped with "Product").
//
// Complexity:
//   - Time O(r*n*c), Space O(r*c).
func (m *Dense[T]) Product(other *Dense[T]) (*Dense[T], error) {
	if err := validateInner(m, other); err != nil {
		return nil, matrixErrorf(opProduct, err)
	}

	out := newDenseUnchecked[T](m.r, other.c)
	var (
		i, k, j    int // loop indices
		aik        T   // A[i,k] hoisted out of the j loop
		aBase      int // row offset in A
		bBase      int // row offset in B
		cBase      int // row offset in C
		inner      = m.c
		otherCols  = other.c
		rightData  = other.data
		resultData = out.data
	)
	for i = 0; i < m.r; i++ {
		aBase = i * inner
		cBase = i * otherCols
		for k = 0; k < inner; k++ {
			aik = m.data[aBase+k]
			bBase = k * otherCols
			for j = 0; j < otherCols; j++ {
				resultData[cBase+j] += aik * rightData[bBase+j]
			}
		}
	}

	return out, nil
}

// VectorProduct computes y = m · v where v is read as a column of length Cols().
// The result is a Col vector of length Rows().
// Errors: ErrNilMatrix for nil v, ErrDimensionMismatch when v.Len() != Cols().
// Complexity: O(r*c).
func (m *Dense[T]) VectorProduct(v *Vector[T]) (*Vector[T], error) {
	if err := validateVecLen(v, m.c); err != nil {
		return nil, matrixErrorf(opVectorProduct, err)
	}

	out := make([]T, m.r)
	var i int
	for i = 0; i < m.r; i++ {
		out[i] = dot(m.data[i*m.c:(i+1)*m.c], v.elements) // row i · v
	}

	return &Vector[T]{elements: out, orientation: Col}, nil
}

// addScaled computes out = a + coef*b element-wise; shared by Add/Subtract.
//
// Behavior highlights:
//   - Compatibility is by order (rows*cols); the result keeps a's shape.
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func addScaled[T num.Number](a, b *Dense[T], coef T, opTag string) (*Dense[T], error) {
	if err := validateSameOrder(a, b); err != nil {
		return nil, matrixErrorf(opTag, err)
	}

	out := newDenseUnchecked[T](a.r, a.c)
	for i := range a.data {
		out.data[i] = a.data[i] + coef*b.data[i]
	}

	return out, nil
}

// Add computes the element-wise sum m + other.
// Errors: ErrNilMatrix, ErrDimensionMismatch (order differs).
func (m *Dense[T]) Add(other *Dense[T]) (*Dense[T], error) {
	return addScaled(m, other, num.One[T](), opAdd)
}

// Subtract computes m - other as m + (-1)·other.
// Errors: ErrNilMatrix, ErrDimensionMismatch (order differs).
func (m *Dense[T]) Subtract(other *Dense[T]) (*Dense[T], error) {
	return addScaled(m, other, num.MinusOne[T](), opSubtract)
}

// Scalar returns a new matrix whose elements are v * m[i,j].
// Complexity: O(r*c).
func (m *Dense[T]) Scalar(v T) *Dense[T] {
	out := newDenseUnchecked[T](m.r, m.c)
	for i, e := range m.data {
		out.data[i] = e * v
	}

	return out
}

// AddScalar returns a new matrix whose elements are m[i,j] + v.
// Complexity: O(r*c).
func (m *Dense[T]) AddScalar(v T) *Dense[T] {
	out := newDenseUnchecked[T](m.r, m.c)
	for i, e := range m.data {
		out.data[i] = e + v
	}

	return out
}

// Sum folds all elements with +.
func (m *Dense[T]) Sum() T { return sum(m.data) }

// Mean returns Sum() divided by the element count.
// Integer kinds use truncating division.
func (m *Dense[T]) Mean() T { return m.Sum() / num.FromCount[T](len(m.data)) }

// Max returns the largest element.
// NaN elements never win a comparison and are skipped unless data[0] is NaN.
// Complexity: O(r*c).
func (m *Dense[T]) Max() T {
	best := m.data[0]
	for _, v := range m.data[1:] {
		if v > best {
			best = v
		}
	}

	return best
}

// Min returns the smallest element.
// Complexity: O(r*c).
func (m *Dense[T]) Min() T {
	best := m.data[0]
	for _, v := range m.data[1:] {
		if v < best {
			best = v
		}
	}

	return best
}

// Equals reports whether both matrices hold the same number of elements and
// every element compares equal with ==. Shapes are not compared; floats must
// match exactly (use ApproxEqual to relax).
func (m *Dense[T]) Equals(other *Dense[T]) bool {
	if other == nil || len(m.data) != len(other.data) {
		return false
	}
	for i := range m.data {
		if m.data[i] != other.data[i] {
			return false
		}
	}

	return true
}

// ApproxEqual is Equals with an explicit absolute tolerance: |a-b| <= tol.
// A negative or NaN tol never matches.
func (m *Dense[T]) ApproxEqual(other *Dense[T], tol float64) bool {
	if other == nil || math.IsNaN(tol) || tol < 0 {
		return false
	}

	return withinTol(m.data, other.data, tol)
}
