// SPDX-License-Identifier: MIT

// Package gauss: functional options.
//
// Contract (strict):
//   - Options are functional (type Option func(*config)).
//   - Option constructors VALIDATE and PANIC on meaningless inputs.
//     Solve itself MUST NOT panic.
//   - Defaults: exact-zero pivot test, no-op logger.
package gauss

import (
	"math"

	"go.uber.org/zap"
)

// DefaultPivotTolerance makes the singularity check an exact-zero test.
const DefaultPivotTolerance = 0.0

// config aggregates the knobs of Solve. Built per call.
type config struct {
	pivotTol float64     // |pivot| <= pivotTol ⇒ no solution
	logger   *zap.Logger // Debug diagnostics; never nil after newConfig
}

// Option customizes Solve.
type Option func(*config)

// WithPivotTolerance treats any pivot with |pivot| <= tol as zero.
// Panics on negative, NaN or infinite tol.
func WithPivotTolerance(tol float64) Option {
	if tol < 0 || math.IsNaN(tol) || math.IsInf(tol, 0) {
		panic("gauss: WithPivotTolerance requires a finite tol >= 0")
	}
	return func(c *config) {
		c.pivotTol = tol
	}
}

// WithLogger routes elimination diagnostics (row swaps, singular pivots) to l
// at Debug level. Panics on nil.
func WithLogger(l *zap.Logger) Option {
	if l == nil {
		panic("gauss: WithLogger(nil)")
	}
	return func(c *config) {
		c.logger = l
	}
}

// newConfig applies opts in order over the defaults.
func newConfig(opts ...Option) config {
	cfg := config{
		pivotTol: DefaultPivotTolerance,
		logger:   zap.NewNop(),
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}
