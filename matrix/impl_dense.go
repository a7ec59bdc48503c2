// SPDX-License-Identifier: MIT

// Package matrix - Dense storage (row-major) & safe accessors.
//
// Purpose:
//   - Provide a cache-friendly row-major buffer with the explicit index formula i*cols + j.
//   - Guarantee safety at the public surface: Get/Set return errors instead of panicking.
//   - Keep value semantics: constructors copy their input, accessors return copies.
//
// Complexity quicksheet:
//   - New/NewFromSlice/NewDense: O(r*c); Get/Set: O(1); GetRow: O(c); GetCol: O(r); Clone: O(r*c).

package matrix

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/cayley/num"
)

// ---------- error context tags ----------

const (
	ctxNew    = "New"          // ctor tag for New
	ctxSlice  = "NewFromSlice" // ctor tag for NewFromSlice
	ctxGet    = "Get"          // method tag used in error wrappers
	ctxSet    = "Set"          // method tag used in error wrappers
	ctxGetRow = "GetRow"       // method tag used in error wrappers
	ctxGetCol = "GetCol"       // method tag used in error wrappers
)

// ---------- Formatting literals  ----------
const (
	_fmtRowOpen  = "["
	_fmtRowClose = "]\n"
	_fmtSep      = ", "
)

// denseErrorf wraps an error with a uniform Dense context and callsite indices.
// MAIN DESCRIPTION:
//   - Attach method context and coordinates to a sentinel error for diagnostics.
//
// Inputs:
//   - method: context tag (ctxGet/ctxSet/...)
//   - row, col: coordinates
//   - err: sentinel (e.g., ErrOutOfRange)
//
// Returns:
//   - error: "Dense.<method>(row,col): <sentinel>", still matching errors.Is.
//
// Complexity:
//   - Time O(1), Space O(1).
func denseErrorf(method string, row, col int, err error) error {
	return fmt.Errorf("Dense.%s(%d,%d): %w", method, row, col, err)
}

// Dense is a row-major matrix of Number elements.
//   - r,c hold dimensions (rows, cols), both > 0.
//   - data is a flat buffer of length r*c in row-major order (offset = i*c + j).
type Dense[T num.Number] struct {
	r, c int // row and column counts
	data []T // contiguous row-major storage (len == r*c)
}

// Compile-time assertion for fmt.Stringer conformance.
var _ fmt.Stringer = (*Dense[float64])(nil)

// New builds a matrix from a rectangular nested slice.
// MAIN DESCRIPTION:
//   - Flatten rows in order into a fresh row-major buffer.
//
// Implementation:
//   - Stage 1: validate the input is non-empty and rectangular.
//   - Stage 2: allocate r*c and copy each row at offset i*c.
//
// Behavior highlights:
//   - The result never aliases data; later edits to data are not observed.
//   - Size is len(data) × len(data[0]).
//
// Inputs:
//   - data: rows of equal, positive length.
//
// Returns:
//   - *Dense[T]: newly allocated matrix.
//
// Errors:
//   - ErrInvalidDimensions when there are no rows or the first row is empty.
//   - ErrRagged when any row length differs from the first.
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func New[T num.Number](data [][]T) (*Dense[T], error) {
	rows, cols, err := validateRectangular(data)
	if err != nil {
		return nil, fmt.Errorf("Dense.%s: %w", ctxNew, err)
	}

	m := &Dense[T]{r: rows, c: cols, data: make([]T, rows*cols)}
	for i, row := range data {
		copy(m.data[i*cols:(i+1)*cols], row) // row i lands at offset i*c
	}

	return m, nil
}

// NewFromSlice builds a rows×cols matrix from a flat row-major slice (copied).
// Returns ErrInvalidDimensions for non-positive shapes and
// ErrDimensionMismatch when len(data) != rows*cols.
// Complexity: O(r*c).
func NewFromSlice[T num.Number](rows, cols int, data []T) (*Dense[T], error) {
	if rows <= 0 || cols <= 0 {
		return nil, fmt.Errorf("Dense.%s(%d,%d): %w", ctxSlice, rows, cols, ErrInvalidDimensions)
	}
	if len(data) != rows*cols {
		return nil, fmt.Errorf("Dense.%s(%d,%d): len %d: %w", ctxSlice, rows, cols, len(data), ErrDimensionMismatch)
	}
	buf := make([]T, len(data))
	copy(buf, data)

	return &Dense[T]{r: rows, c: cols, data: buf}, nil
}

// NewDense creates an r×c zero matrix.
// Returns ErrInvalidDimensions unless rows > 0 and cols > 0.
// Complexity: O(r*c).
func NewDense[T num.Number](rows, cols int) (*Dense[T], error) {
	if rows <= 0 || cols <= 0 {
		return nil, ErrInvalidDimensions
	}

	// make() zero-fills the buffer, which is num.Zero for every kind.
	return &Dense[T]{r: rows, c: cols, data: make([]T, rows*cols)}, nil
}

// newDenseUnchecked allocates a zero matrix for internal results whose shape
// is already derived from valid operands.
func newDenseUnchecked[T num.Number](rows, cols int) *Dense[T] {
	return &Dense[T]{r: rows, c: cols, data: make([]T, rows*cols)}
}

// Rows returns the row count. No side effects.
// Complexity: O(1).
func (m *Dense[T]) Rows() int { return m.r }

// Cols returns the column count. No side effects.
// Complexity: O(1).
func (m *Dense[T]) Cols() int { return m.c }

// Size packs Rows() and Cols() into a Size value.
// Complexity: O(1).
func (m *Dense[T]) Size() Size { return Size{rows: m.r, cols: m.c} }

// Shape reports the matrix in the 3-axis form (x = cols, y = rows, z = 0).
func (m *Dense[T]) Shape() Shape { return Shape{x: m.c, y: m.r} }

// indexOf computes the row-major offset or returns ErrOutOfRange.
// MAIN DESCRIPTION:
//   - Bounds-check (row,col) and compute flat offset for row-major storage.
//
// Behavior highlights:
//   - Returns the bare sentinel; public methods wrap with coordinates.
//
// Complexity:
//   - Time O(1), Space O(1).
func (m *Dense[T]) indexOf(row, col int) (int, error) {
	if row < 0 || row >= m.r {
		return 0, ErrOutOfRange
	}
	if col < 0 || col >= m.c {
		return 0, ErrOutOfRange
	}

	// Row-major offset: i*c + j.
	return row*m.c + col, nil
}

// Get returns the value at (row, col) or ErrOutOfRange.
// MAIN DESCRIPTION:
//   - Safe element read at coordinates.
//
// Implementation:
//   - Stage 1: compute offset via indexOf (bounds check).
//   - Stage 2: load from flat buffer.
//
// Errors:
//   - ErrOutOfRange when out of bounds (wrapped with "Dense.Get(row,col)").
//
// Complexity:
//   - Time O(1), Space O(1).
func (m *Dense[T]) Get(row, col int) (T, error) {
	off, err := m.indexOf(row, col)
	if err != nil {
		return num.Zero[T](), denseErrorf(ctxGet, row, col, err) // wrap with context
	}

	return m.data[off], nil
}

// Set stores v at (row, col) or returns ErrOutOfRange.
// This is the only in-place mutator of a Dense.
// On error the matrix is left untouched.
// Complexity: O(1).
func (m *Dense[T]) Set(row, col int, v T) error {
	off, err := m.indexOf(row, col)
	if err != nil {
		return denseErrorf(ctxSet, row, col, err) // wrap with context
	}
	m.data[off] = v // direct flat write

	return nil
}

// GetRow returns a copy of the cols elements of row, read from offset row*cols.
// Errors: ErrOutOfRange for an invalid row.
// Complexity: O(c).
func (m *Dense[T]) GetRow(row int) ([]T, error) {
	if row < 0 || row >= m.r {
		return nil, denseErrorf(ctxGetRow, row, 0, ErrOutOfRange)
	}
	out := make([]T, m.c)
	copy(out, m.data[row*m.c:(row+1)*m.c])

	return out, nil
}

// GetCol returns a copy of the rows elements of column col.
// Errors: ErrOutOfRange for an invalid column.
// Complexity: O(r).
func (m *Dense[T]) GetCol(col int) ([]T, error) {
	if col < 0 || col >= m.c {
		return nil, denseErrorf(ctxGetCol, 0, col, ErrOutOfRange)
	}
	out := make([]T, m.r)
	var i int
	for i = 0; i < m.r; i++ {
		out[i] = m.data[i*m.c+col] // stride c between consecutive rows
	}

	return out, nil
}

// Elements returns a row-major copy of the storage.
// Complexity: O(r*c).
func (m *Dense[T]) Elements() []T {
	out := make([]T, len(m.data))
	copy(out, m.data)

	return out
}

// Clone returns a deep copy (new buffer, same shape).
// Complexity: O(r*c).
func (m *Dense[T]) Clone() *Dense[T] {
	cp := make([]T, len(m.data)) // allocate same length
	copy(cp, m.data)             // deep copy

	return &Dense[T]{r: m.r, c: m.c, data: cp}
}

// String HUMAN-READABLE dump of rows for diagnostics.
// Implementation:
//   - Stage 1: iterate rows/cols deterministically.
//   - Stage 2: write values (%v) into strings.Builder with standard delimiters.
//
// Complexity:
//   - Time O(r*c), Space O(r*c) for formatting.
func (m *Dense[T]) String() string {
	var b strings.Builder
	var i, j, base int
	for i = 0; i < m.r; i++ { // iterate rows deterministically
		b.WriteString(_fmtRowOpen) // open row
		base = i * m.c
		for j = 0; j < m.c; j++ { // iterate cols
			fmt.Fprintf(&b, "%v", m.data[base+j])
			if j+1 < m.c {
				b.WriteString(_fmtSep) // separate values with comma + space
			}
		}
		b.WriteString(_fmtRowClose) // close row
	}

	return b.String()
}
