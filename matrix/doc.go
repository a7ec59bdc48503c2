// Package matrix offers dense generic containers for linear algebra.
//
// The matrix package provides:
//
//   - Dense[T], a row-major rows×cols matrix with bounds-checked Get/Set,
//     Transpose, Product, VectorProduct, Add/Subtract, Scalar and reductions.
//   - Vector[T], a flat vector tagged Row or Col, with Dot, Outer, Map and
//     in-place scalar Mul/Add.
//   - Size and the legacy 3-axis Shape/Dimension descriptors.
//   - Random and RandomVector for uniform fixtures (WithSeed for determinism).
//
// Every operation except Set, Vector.Transpose, Vector.Mul and Vector.Add
// returns a fresh value; results never alias their operands.
//
// Shape errors are returned as sentinels (ErrDimensionMismatch,
// ErrOutOfRange, ...) and should be matched with errors.Is.
package matrix
