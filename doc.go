// Package cayley is a small dense linear-algebra toolkit: generic matrix and
// vector containers plus a direct linear-system solver.
//
// 🚀 What is cayley?
//
//	A compact, dependency-light library that brings together:
//		• Numeric constraint: one generic contract for integer and float elements
//		• Dense containers: row-major Matrix and oriented Vector
//		• Algebra: transpose, product, matrix-vector product, add/sub, scale
//		• Vector algebra: dot, outer, elementwise map
//		• Solver: Gaussian elimination with partial pivoting
//
// ✨ Why choose cayley?
//
//   - Value semantics – every derived matrix is a fresh copy, nothing aliases
//   - Explicit failures – sentinel errors for shapes, "no solution" for singular systems
//   - Pure Go – no cgo
//
// Everything is organized under three subpackages:
//
//	num/    - the Number constraint and its identities (Zero, One, MinusOne, Abs)
//	matrix/ - Size, Shape, Dense[T], Vector[T], random constructors
//	gauss/  - Solve: A·x = b via elimination and back substitution
//
// Quick example:
//
//	a, _ := matrix.New([][]float64{{1, 3, -2}, {3, 5, 6}, {2, 4, 3}})
//	b := matrix.NewVector([]float64{5, 7, 8}, matrix.Col)
//	x, ok, err := gauss.Solve(a, b) // x ≈ [-15, 8, 2]
//
//	go get github.com/katalvlaran/cayley
package cayley
