// SPDX-License-Identifier: MIT
// Package matrix: conversions to and from the vector collaborator and gonum.
// Each conversion copies element by element; no storage is shared.

package matrix

import (
	"fmt"

	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/linal/scalar"
	"github.com/katalvlaran/linal/vector"
)

// FromVector returns the N×1 column matrix holding v's elements in order.
func FromVector[T scalar.Ring](v *vector.Vector[T]) (*Matrix[T], error) {
	if v == nil {
		return nil, matrixErrorf(opFromVector, vector.ErrNilVector)
	}
	vals := v.Slice()

	return &Matrix[T]{r: len(vals), c: 1, data: vals}, nil
}

// ToVector returns the column of a single-column matrix as a Vector.
// Errors: ErrNilMatrix, ErrDimensionMismatch when Cols() != 1.
func (m *Matrix[T]) ToVector() (*vector.Vector[T], error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opToVector, err)
	}
	if m.c != 1 {
		return nil, matrixErrorf(fmt.Sprintf("%s: %d columns", opToVector, m.c), ErrDimensionMismatch)
	}

	return vector.FromSlice(m.data) // copies
}

// ToGonum copies m into a gonum *mat.Dense, converting each element to float64.
func ToGonum[T scalar.Real](m *Matrix[T]) (*mat.Dense, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf("ToGonum", err)
	}
	data := make([]float64, len(m.data))
	for idx, v := range m.data {
		data[idx] = float64(v)
	}

	return mat.NewDense(m.r, m.c, data), nil
}

// FromGonum copies any gonum mat.Matrix into a float64 Matrix.
// Errors: ErrNilMatrix when a is nil, ErrBadShape for an empty gonum matrix.
func FromGonum(a mat.Matrix) (*Matrix[float64], error) {
	if a == nil {
		return nil, matrixErrorf(opFromGonum, ErrNilMatrix)
	}
	r, c := a.Dims()
	m, err := New[float64](r, c)
	if err != nil {
		return nil, matrixErrorf(opFromGonum, err)
	}
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			m.data[i*c+j] = a.At(i, j)
		}
	}

	return m, nil
}
