// SPDX-License-Identifier: MIT
// Package matrix — public API facades.
//
// Purpose:
//   - Thin, intention-revealing aliases over the canonical kernels.
//   - No logic duplication: every facade delegates or composes.

package matrix

import "github.com/katalvlaran/linal/scalar"

// ZerosLike returns a zero matrix with the shape of m.
func ZerosLike[T scalar.Ring](m *Matrix[T]) (*Matrix[T], error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opNew, err)
	}

	return New[T](m.r, m.c)
}

// Sum is an alias for Add.
func Sum[T scalar.Ring](a, b *Matrix[T]) (*Matrix[T], error) { return Add(a, b) }

// Diff is an alias for Sub.
func Diff[T scalar.Ring](a, b *Matrix[T]) (*Matrix[T], error) { return Sub(a, b) }

// Product is an alias for Mul.
func Product[T scalar.Ring](a, b *Matrix[T]) (*Matrix[T], error) { return Mul(a, b) }

// T is an alias for Transpose.
func T[E scalar.Ring](m *Matrix[E]) (*Matrix[E], error) { return Transpose(m) }

// Trace returns Σ m[i][i] for square m, accumulated top to bottom.
func Trace[T scalar.Ring](m *Matrix[T]) (T, error) {
	if err := ValidateSquare(m); err != nil {
		return scalar.Zero[T](), matrixErrorf("Trace", err)
	}
	sum := scalar.Zero[T]()
	for i := 0; i < m.r; i++ {
		sum += m.data[i*m.c+i]
	}

	return sum, nil
}
