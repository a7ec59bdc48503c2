// SPDX-License-Identifier: MIT

package gauss

import (
	"fmt"

	"github.com/katalvlaran/cayley/matrix"
	"github.com/katalvlaran/cayley/num"
	"go.uber.org/zap"
)

const opSolve = "Solve"

// Solve solves A·x = b for square A by Gaussian elimination with partial pivoting.
//
// Implementation:
//   - Stage 1 (Validate): non-nil operands, A is n×n, len(b) == n.
//   - Stage 2 (Augment): copy [A | b] into an n×(n+1) working buffer.
//   - Stage 3 (Forward): for each column k pick the row with the largest
//     |a[i][k]| (i ≥ k), stop if that pivot is zero within tolerance, swap it
//     into row k and eliminate column k from every row below.
//   - Stage 4 (Back substitution): x[i] = (a[i][n] − Σ_{j>i} a[i][j]·x[j]) / a[i][i].
//
// Behavior highlights:
//   - Inputs are never mutated.
//   - Eliminated entries are written as exact zeros instead of the rounded
//     result of the subtraction.
//   - Integer kinds run the same steps with truncating division. The result
//     is a true solution only when every division is exact; otherwise ok is
//     still true but A·x != b (e.g. [[2,1],[1,1]]·x = [3,2] yields [0,2]).
//   - For integer kinds a pivot equal to the most negative value of T keeps a
//     negative magnitude under num.Abs and is treated as zero.
//
// Returns:
//   - x: Col vector of length n; ok: true when a solution was produced.
//   - (nil, false, nil) when a zero pivot is met: no unique solution.
//
// Errors:
//   - matrix.ErrNilMatrix for nil a or b.
//   - ErrNonSquare (also matrix.ErrDimensionMismatch) when A is not square.
//   - matrix.ErrDimensionMismatch when len(b) != n.
//
// Complexity:
//   - Time O(n³), Space O(n²).
func Solve[T num.Number](a *matrix.Dense[T], b *matrix.Vector[T], opts ...Option) (*matrix.Vector[T], bool, error) {
	// Stage 1: validate shapes before any allocation.
	if a == nil || b == nil {
		return nil, false, fmt.Errorf("%s: %w", opSolve, matrix.ErrNilMatrix)
	}
	n := a.Rows()
	if a.Cols() != n {
		return nil, false, fmt.Errorf("%s: %s: %w", opSolve, a.Size(), ErrNonSquare)
	}
	if b.Len() != n {
		return nil, false, fmt.Errorf("%s: len(b)=%d, n=%d: %w", opSolve, b.Len(), n, matrix.ErrDimensionMismatch)
	}
	cfg := newConfig(opts...)

	// Stage 2: augmented working copy.
	aug, err := augment(a, b)
	if err != nil {
		return nil, false, fmt.Errorf("%s: %w", opSolve, err)
	}

	// Stage 3: forward elimination to row-echelon form.
	if !eliminate(aug, n, cfg) {
		return nil, false, nil
	}

	// Stage 4: back substitution.
	return matrix.NewVector(backSubstitute(aug, n), matrix.Col), true, nil
}

// augment builds n rows of width n+1 over one flat buffer: [A | b].
// Rows are slice headers so a swap is O(1).
func augment[T num.Number](a *matrix.Dense[T], b *matrix.Vector[T]) ([][]T, error) {
	n := a.Rows()
	width := n + 1
	buf := make([]T, n*width)
	rows := make([][]T, n)
	rhs := b.Elements()
	for i := 0; i < n; i++ {
		src, err := a.GetRow(i)
		if err != nil {
			return nil, err
		}
		rows[i] = buf[i*width : (i+1)*width : (i+1)*width]
		copy(rows[i], src)
		rows[i][n] = rhs[i] // augmented column
	}

	return rows, nil
}

// eliminate reduces aug in place. It returns false on a zero pivot.
func eliminate[T num.Number](aug [][]T, n int, cfg config) bool {
	var (
		i, j, k int
		iMax    int // chosen pivot row
		maxAbs  T   // |aug[iMax][k]|
		abs     T
		factor  T // aug[i][k] / aug[k][k]
	)
	for k = 0; k < n; k++ {
		// a. partial pivoting: largest |aug[i][k]| over i = k..n-1, first wins on ties
		iMax = k
		maxAbs = num.Abs(aug[k][k])
		for i = k + 1; i < n; i++ {
			abs = num.Abs(aug[i][k])
			if abs > maxAbs {
				iMax = i
				maxAbs = abs
			}
		}

		// b. singularity check
		if float64(num.Abs(aug[iMax][k])) <= cfg.pivotTol {
			cfg.logger.Debug("gauss: zero pivot, no unique solution",
				zap.Int("column", k),
				zap.Float64("pivot", float64(aug[iMax][k])),
				zap.Float64("tolerance", cfg.pivotTol),
			)
			return false
		}

		// c. row swap
		if iMax != k {
			aug[k], aug[iMax] = aug[iMax], aug[k]
			cfg.logger.Debug("gauss: row swap",
				zap.Int("column", k),
				zap.Int("from", iMax),
				zap.Int("to", k),
				zap.Float64("pivot", float64(aug[k][k])),
			)
		}

		// d. eliminate column k below the pivot, including the augmented column
		for i = k + 1; i < n; i++ {
			factor = aug[i][k] / aug[k][k]
			for j = k + 1; j <= n; j++ {
				aug[i][j] -= aug[k][j] * factor
			}
			aug[i][k] = num.Zero[T]()
		}
	}

	return true
}

// backSubstitute solves the upper-triangular system held in aug.
func backSubstitute[T num.Number](aug [][]T, n int) []T {
	x := make([]T, n)
	for i := n - 1; i >= 0; i-- {
		x[i] = aug[i][n]
		for j := i + 1; j < n; j++ {
			x[i] -= aug[i][j] * x[j]
		}
		x[i] /= aug[i][i]
	}

	return x
}
