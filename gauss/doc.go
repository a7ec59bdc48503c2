// Package gauss solves dense linear systems A·x = b by Gaussian elimination
// with partial pivoting followed by back substitution.
//
// What & Why:
//
//	Solve copies A and b into an n×(n+1) augmented buffer, reduces it to
//	row-echelon form choosing, for every column, the candidate row with the
//	largest absolute leading coefficient, and back-substitutes for x.
//	Partial pivoting keeps the divisors large and the rounding error small.
//
// Failure semantics:
//
//	A pivot whose magnitude does not exceed the pivot tolerance (0 by default,
//	i.e. an exact zero) means the system has no unique solution. Solve then
//	reports ok == false with a nil error: "no solution" is a result, not a
//	failure. Shape violations (non-square A, len(b) != n) are errors.
//
// Complexity:
//
//	O(n³) time, O(n²) memory for the working copy. Inputs are never mutated.
package gauss
