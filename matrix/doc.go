// Package matrix is a dense, row-major matrix engine over any scalar.Ring kind.
//
// The package provides:
//
//   - Construction from rectangular literals, bounds-checked At/Set, deep copies.
//   - Arithmetic: Add, Sub, Scale, Hadamard, Mul and the in-place receivers
//     AddInPlace, SubInPlace, ScaleInPlace, HadamardInPlace.
//   - Structural transforms: Transpose, Identity, Submatrix, Slice and Augment
//     (horizontal concatenation, also exported as Total).
//   - Reduction and solving: RREF, Rank, Det (cofactor expansion), Inverse
//     (reduction of [A | I]) and Solve.
//   - Bridges: single-column matrices to and from vector.Vector, and float64
//     matrices to and from gonum's mat.Dense.
//
// Shapes are runtime values. Every shape or index violation is reported with
// one of the sentinels in errors.go and can be matched with errors.Is.
// Inverse reports a singular input as (nil, false, nil): singularity is an
// ordinary outcome, not an error.
//
// All operations copy in and copy out. No result shares storage with an
// operand; only the *InPlace methods and Set mutate their receiver.
//
// Operations whose algebra needs division (RREF, Rank, Inverse, Solve) are
// constrained to scalar.Field, so calling them on an integer matrix does not
// compile.
package matrix
