// SPDX-License-Identifier: MIT
// Package matrix: inversion via Gauss–Jordan reduction of [A | I].

package matrix

import (
	"fmt"

	"github.com/katalvlaran/linal/scalar"
)

// Inverse returns A⁻¹ for square m.
//
// Implementation:
//   - Stage 1: ValidateSquare; compute Det. A zero determinant returns
//     (nil, false, nil) without further work.
//   - Stage 2: build [A | I] with Augment, reduce it with RREF and copy the
//     right-hand n columns out with Slice.
//
// Behavior highlights:
//   - Singularity is an ordinary outcome reported through ok == false; the
//     error is reserved for nil and non-square input.
//   - The determinant test is exact. A nearly singular float matrix whose
//     determinant rounds to a tiny nonzero value is still inverted, with the
//     conditioning that implies.
//
// Errors: ErrNilMatrix, ErrNonSquare (also matches ErrDimensionMismatch).
// Complexity: O(n!) for the determinant check plus O(n³) for the reduction.
func Inverse[T scalar.Field](m *Matrix[T]) (inv *Matrix[T], ok bool, err error) {
	if err = ValidateSquare(m); err != nil {
		return nil, false, matrixErrorf(opInverse, err)
	}

	d, err := Det(m)
	if err != nil {
		return nil, false, matrixErrorf(opInverse, err)
	}
	if scalar.IsZero(d) {
		return nil, false, nil
	}

	n := m.r
	id, err := Identity[T](n)
	if err != nil {
		return nil, false, matrixErrorf(opInverse, err)
	}
	aug, err := Augment(m, id)
	if err != nil {
		return nil, false, matrixErrorf(opInverse, err)
	}
	reduced, err := RREF(aug)
	if err != nil {
		return nil, false, matrixErrorf(opInverse, err)
	}
	inv, err = Slice(reduced, 0, n, n, 2*n)
	if err != nil {
		return nil, false, matrixErrorf(opInverse, err)
	}

	return inv, true, nil
}

// Solve returns X with A·X = B, computed as A⁻¹·B.
// Unlike Inverse, a singular A is an error here (ErrSingular), for callers
// that only care whether a solution was produced.
//
// Errors: ErrNilMatrix, ErrNonSquare, ErrDimensionMismatch (B.Rows != A.Rows),
// ErrSingular.
func Solve[T scalar.Field](a, b *Matrix[T]) (*Matrix[T], error) {
	if err := ValidateMulCompatible(a, b); err != nil {
		return nil, matrixErrorf(opSolve, err)
	}
	inv, ok, err := Inverse(a)
	if err != nil {
		return nil, matrixErrorf(opSolve, err)
	}
	if !ok {
		return nil, matrixErrorf(fmt.Sprintf("%s: det(A) = 0", opSolve), ErrSingular)
	}

	return Mul(inv, b)
}
