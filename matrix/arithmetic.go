// SPDX-License-Identifier: MIT
// Package matrix: element-wise arithmetic and the matrix product.
//
// Determinism:
//   - Element-wise kernels walk the flat slice 0..r*c-1.
//   - Mul accumulates each output cell left to right over the inner index,
//     starting from the zero of T; the order is part of the contract because
//     floating-point addition is not associative.

package matrix

import "github.com/katalvlaran/linal/scalar"

// addSub computes out = a + b (sub == false) or out = a - b (sub == true).
// Operands are not mutated; a fresh matrix is returned.
func addSub[T scalar.Ring](a, b *Matrix[T], sub bool, opTag string) (*Matrix[T], error) {
	// Validate shapes match
	if err := ValidateSameShape(a, b); err != nil {
		return nil, matrixErrorf(opTag, err)
	}

	res := &Matrix[T]{r: a.r, c: a.c, data: make([]T, len(a.data))}
	if sub {
		for idx := range a.data {
			res.data[idx] = a.data[idx] - b.data[idx]
		}
	} else {
		for idx := range a.data {
			res.data[idx] = a.data[idx] + b.data[idx]
		}
	}

	return res, nil
}

// Add computes the element-wise sum C = A + B.
// Errors: ErrNilMatrix, ErrDimensionMismatch (shapes differ).
// Complexity: O(r*c).
func Add[T scalar.Ring](a, b *Matrix[T]) (*Matrix[T], error) { return addSub(a, b, false, opAdd) }

// Sub computes the element-wise difference C = A - B.
// Errors: ErrNilMatrix, ErrDimensionMismatch (shapes differ).
// Complexity: O(r*c).
func Sub[T scalar.Ring](a, b *Matrix[T]) (*Matrix[T], error) { return addSub(a, b, true, opSub) }

// AddInPlace performs m += b. Only the receiver is mutated.
func (m *Matrix[T]) AddInPlace(b *Matrix[T]) error {
	if err := ValidateSameShape(m, b); err != nil {
		return matrixErrorf(opAdd, err)
	}
	for idx := range m.data {
		m.data[idx] += b.data[idx]
	}

	return nil
}

// SubInPlace performs m -= b. Only the receiver is mutated.
func (m *Matrix[T]) SubInPlace(b *Matrix[T]) error {
	if err := ValidateSameShape(m, b); err != nil {
		return matrixErrorf(opSub, err)
	}
	for idx := range m.data {
		m.data[idx] -= b.data[idx]
	}

	return nil
}

// Scale returns alpha·m. The shape is preserved.
func Scale[T scalar.Ring](m *Matrix[T], alpha T) (*Matrix[T], error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opScale, err)
	}
	res := &Matrix[T]{r: m.r, c: m.c, data: make([]T, len(m.data))}
	for idx, v := range m.data {
		res.data[idx] = v * alpha
	}

	return res, nil
}

// ScaleInPlace performs m *= alpha.
func (m *Matrix[T]) ScaleInPlace(alpha T) error {
	if err := ValidateNotNil(m); err != nil {
		return matrixErrorf(opScale, err)
	}
	for idx := range m.data {
		m.data[idx] *= alpha
	}

	return nil
}

// Hadamard returns the element-wise product A ⊙ B.
// Errors: ErrNilMatrix, ErrDimensionMismatch.
func Hadamard[T scalar.Ring](a, b *Matrix[T]) (*Matrix[T], error) {
	if err := ValidateSameShape(a, b); err != nil {
		return nil, matrixErrorf(opHadamard, err)
	}
	res := &Matrix[T]{r: a.r, c: a.c, data: make([]T, len(a.data))}
	for idx := range a.data {
		res.data[idx] = a.data[idx] * b.data[idx]
	}

	return res, nil
}

// HadamardInPlace performs m ⊙= b.
func (m *Matrix[T]) HadamardInPlace(b *Matrix[T]) error {
	if err := ValidateSameShape(m, b); err != nil {
		return matrixErrorf(opHadamard, err)
	}
	for idx := range m.data {
		m.data[idx] *= b.data[idx]
	}

	return nil
}

// Mul performs the matrix product C = A × B for A (M×N) and B (N×P).
//
//	C[m][p] = Σ_{n=0}^{N-1} A[m][n] * B[n][p]
//
// Implementation:
//   - Stage 1: ValidateMulCompatible (non-nil, A.Cols == B.Rows).
//   - Stage 2: fixed m→p→n loops; each cell starts at zero and adds the
//     products in increasing n. No zero-skipping, so NaN/Inf propagate as usual.
//
// Errors: ErrNilMatrix, ErrDimensionMismatch.
// Complexity: O(M*N*P) time, O(M*P) space.
func Mul[T scalar.Ring](a, b *Matrix[T]) (*Matrix[T], error) {
	if err := ValidateMulCompatible(a, b); err != nil {
		return nil, matrixErrorf(opMul, err)
	}

	rows, inner, cols := a.r, a.c, b.c
	res := &Matrix[T]{r: rows, c: cols, data: make([]T, rows*cols)}
	var (
		i, j, k int // loop iterators
		sum     T
	)
	for i = 0; i < rows; i++ {
		rowA := a.data[i*inner : (i+1)*inner]
		for j = 0; j < cols; j++ {
			sum = scalar.Zero[T]()
			for k = 0; k < inner; k++ {
				sum += rowA[k] * b.data[k*cols+j] // left to right, never reassociated
			}
			res.data[i*cols+j] = sum
		}
	}

	return res, nil
}
