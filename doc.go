// Package linal is a small dense linear-algebra engine with generic scalars.
//
// Subpackages:
//
//	scalar/ — capability constraints (Ring, Field, Real, Float) and identities
//	matrix/ — the Matrix type: arithmetic, transforms, RREF, Det, Inverse
//	vector/ — fixed-length vectors; converts to and from N×1 matrices
//
// Quick example:
//
//	m, _ := matrix.FromRows([][]float64{{8, 3, 2}, {1, 7, 9}, {5, 3, 3}})
//	d, _ := matrix.Det(m) // 14
//	inv, ok, _ := matrix.Inverse(m)
//
// Shapes are checked at run time; violations are reported with the sentinel
// errors of each package and matched with errors.Is.
package linal
