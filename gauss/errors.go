// SPDX-License-Identifier: MIT
// Package gauss: sentinel error set.
// Shape errors reuse the matrix sentinels so callers can match either
// package's errors with errors.Is.

package gauss

import (
	"fmt"

	"github.com/katalvlaran/cayley/matrix"
)

// ErrNonSquare signals that the coefficient matrix is not n×n.
// It wraps matrix.ErrDimensionMismatch.
var ErrNonSquare = fmt.Errorf("gauss: coefficient matrix is not square: %w", matrix.ErrDimensionMismatch)
