// SPDX-License-Identifier: MIT
// Package matrix: structural transforms.
// Every transform allocates a new matrix of the derived shape; inputs are
// read-only.

package matrix

import (
	"fmt"

	"github.com/katalvlaran/linal/scalar"
)

// Transpose returns mᵀ: an N×M matrix with out[n][m] = in[m][n].
// Errors: ErrNilMatrix only.
// Complexity: O(r*c).
func Transpose[T scalar.Ring](m *Matrix[T]) (*Matrix[T], error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opTranspose, err)
	}

	res := &Matrix[T]{r: m.c, c: m.r, data: make([]T, len(m.data))}
	var i, j int
	for i = 0; i < m.r; i++ {
		for j = 0; j < m.c; j++ {
			res.data[j*m.r+i] = m.data[i*m.c+j]
		}
	}

	return res, nil
}

// Identity returns Iₙ: ones on the diagonal, zeros elsewhere.
// Errors: ErrBadShape when n <= 0.
func Identity[T scalar.Ring](n int) (*Matrix[T], error) {
	id, err := New[T](n, n)
	if err != nil {
		return nil, matrixErrorf(opIdentity, err)
	}
	one := scalar.One[T]()
	for i := 0; i < n; i++ {
		id.data[i*n+i] = one
	}

	return id, nil
}

// IdentityLike returns the identity with the dimension of square m.
// Errors: ErrNilMatrix, ErrNonSquare.
func IdentityLike[T scalar.Ring](m *Matrix[T]) (*Matrix[T], error) {
	if err := ValidateSquare(m); err != nil {
		return nil, matrixErrorf(opIdentity, err)
	}

	return Identity[T](m.r)
}

// Submatrix returns m with row `row` and column `col` removed, keeping the
// relative order of the remaining rows and columns. The result is (M-1)×(N-1).
//
// Errors:
//   - ErrNilMatrix.
//   - ErrOutOfRange when row or col is outside the shape.
//   - ErrBadShape when m has a single row or column (the result would be empty).
//
// Complexity: O(r*c).
func Submatrix[T scalar.Ring](m *Matrix[T], row, col int) (*Matrix[T], error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opSubmatrix, err)
	}
	if err := m.validateIndex(opSubmatrix, row, col); err != nil {
		return nil, err
	}
	res, err := New[T](m.r-1, m.c-1)
	if err != nil {
		return nil, matrixErrorf(opSubmatrix, err)
	}

	res.data = res.data[:0]
	for i := 0; i < m.r; i++ {
		if i == row {
			continue
		}
		base := i * m.c
		res.data = append(res.data, m.data[base:base+col]...)
		res.data = append(res.data, m.data[base+col+1:base+m.c]...)
	}

	return res, nil
}

// Slice returns a copy of the block rows [r0, r1) × columns [c0, c1).
//
// Errors: ErrNilMatrix; ErrOutOfRange when the bounds fall outside m or
// describe an empty block.
func Slice[T scalar.Ring](m *Matrix[T], r0, r1, c0, c1 int) (*Matrix[T], error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opSlice, err)
	}
	if r0 < 0 || c0 < 0 || r1 > m.r || c1 > m.c || r0 >= r1 || c0 >= c1 {
		return nil, matrixErrorf(fmt.Sprintf("%s[%d:%d, %d:%d]", opSlice, r0, r1, c0, c1), ErrOutOfRange)
	}

	rows, cols := r1-r0, c1-c0
	res := &Matrix[T]{r: rows, c: cols, data: make([]T, rows*cols)}
	for i := 0; i < rows; i++ {
		src := (r0+i)*m.c + c0
		copy(res.data[i*cols:(i+1)*cols], m.data[src:src+cols])
	}

	return res, nil
}

// Augment concatenates a (M×N) and b (M×R) horizontally into M×(N+R):
// each output row is a's row followed by b's row.
// Errors: ErrNilMatrix, ErrDimensionMismatch (row counts differ).
// Complexity: O(M*(N+R)).
func Augment[T scalar.Ring](a, b *Matrix[T]) (*Matrix[T], error) {
	if err := ValidateSameRows(a, b); err != nil {
		return nil, matrixErrorf(opAugment, err)
	}

	cols := a.c + b.c
	res := &Matrix[T]{r: a.r, c: cols, data: make([]T, a.r*cols)}
	for i := 0; i < a.r; i++ {
		dst := res.data[i*cols : (i+1)*cols]
		copy(dst[:a.c], a.data[i*a.c:(i+1)*a.c])
		copy(dst[a.c:], b.data[i*b.c:(i+1)*b.c])
	}

	return res, nil
}

// Total is an alias for Augment.
func Total[T scalar.Ring](a, b *Matrix[T]) (*Matrix[T], error) { return Augment(a, b) }
