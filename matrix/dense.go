// SPDX-License-Identifier: MIT
// Package matrix: storage, construction and element access.
// Matrix stores elements in a flat row-major slice for cache friendliness;
// every accessor is bounds-checked and returns ErrOutOfRange instead of panicking.

package matrix

import (
	"fmt"
	"iter"

	"github.com/katalvlaran/linal/scalar"
)

// New creates a rows×cols matrix with every element set to the zero of T.
// Stage 1 (Validate): ensure rows and cols > 0.
// Stage 2 (Prepare): allocate the flat backing slice.
// Complexity: O(r*c) time and memory.
func New[T scalar.Ring](rows, cols int) (*Matrix[T], error) {
	// Validate dimensions
	if err := ValidateShape(rows, cols); err != nil {
		return nil, matrixErrorf(opNew, err)
	}

	// Allocate zeroed storage
	return &Matrix[T]{r: rows, c: cols, data: make([]T, rows*cols)}, nil
}

// FromRows builds a matrix from a rectangular literal. The input is copied.
// Stage 1 (Validate): at least one non-empty row; every row has len(rows[0]).
// Stage 2 (Execute): copy rows into flat storage in order.
// Errors: ErrBadShape (empty literal), ErrDimensionMismatch (ragged literal).
// Complexity: O(r*c).
func FromRows[T scalar.Ring](rows [][]T) (*Matrix[T], error) {
	if len(rows) == 0 {
		return nil, matrixErrorf(opFromRows, ErrBadShape)
	}
	cols := len(rows[0])
	m, err := New[T](len(rows), cols)
	if err != nil {
		return nil, matrixErrorf(opFromRows, err)
	}
	for i, row := range rows {
		if len(row) != cols {
			return nil, matrixErrorf(
				fmt.Sprintf("%s: row %d has %d columns, want %d", opFromRows, i, len(row), cols),
				ErrDimensionMismatch,
			)
		}
		copy(m.data[i*cols:(i+1)*cols], row) // row-major block copy
	}

	return m, nil
}

// Rows returns the number of rows.
func (m *Matrix[T]) Rows() int { return m.r }

// Cols returns the number of columns.
func (m *Matrix[T]) Cols() int { return m.c }

// Dims returns (rows, cols).
func (m *Matrix[T]) Dims() (int, int) { return m.r, m.c }

// IsSquare reports whether Rows() == Cols().
func (m *Matrix[T]) IsSquare() bool { return m.r == m.c }

// At returns the element at (row, col).
// Errors: ErrOutOfRange when either index is outside the shape.
// Complexity: O(1).
func (m *Matrix[T]) At(row, col int) (T, error) {
	if err := m.validateIndex("At", row, col); err != nil {
		return scalar.Zero[T](), err
	}

	return m.data[row*m.c+col], nil
}

// Set assigns v at (row, col).
// Errors: ErrOutOfRange when either index is outside the shape.
// Complexity: O(1).
func (m *Matrix[T]) Set(row, col int, v T) error {
	if err := m.validateIndex("Set", row, col); err != nil {
		return err
	}
	m.data[row*m.c+col] = v

	return nil
}

// Row returns a copy of row i.
func (m *Matrix[T]) Row(i int) ([]T, error) {
	if err := m.validateIndex("Row", i, 0); err != nil {
		return nil, err
	}
	out := make([]T, m.c)
	copy(out, m.data[i*m.c:(i+1)*m.c])

	return out, nil
}

// ToRows returns a deep copy of the matrix as a [][]T literal.
// FromRows(m.ToRows()) reproduces m.
func (m *Matrix[T]) ToRows() [][]T {
	out := make([][]T, m.r)
	for i := range out {
		out[i] = make([]T, m.c)
		copy(out[i], m.data[i*m.c:(i+1)*m.c])
	}

	return out
}

// All iterates rows top to bottom, yielding each row index with a copy of the row.
//
//	for i, row := range m.All() { ... }
func (m *Matrix[T]) All() iter.Seq2[int, []T] {
	return func(yield func(int, []T) bool) {
		for i := 0; i < m.r; i++ {
			row := make([]T, m.c)
			copy(row, m.data[i*m.c:(i+1)*m.c])
			if !yield(i, row) {
				return
			}
		}
	}
}

// Clone returns a deep copy of m.
// Complexity: O(r*c).
func (m *Matrix[T]) Clone() *Matrix[T] {
	data := make([]T, len(m.data))
	copy(data, m.data)

	return &Matrix[T]{r: m.r, c: m.c, data: data}
}

// Equal reports whether m and other have identical shapes and elements.
// Comparison is exact; for floating kinds use AllClose.
// Two nil matrices are equal; nil never equals a non-nil matrix.
func (m *Matrix[T]) Equal(other *Matrix[T]) bool {
	if m == nil || other == nil {
		return m == other
	}
	if m.r != other.r || m.c != other.c {
		return false
	}
	for i := range m.data {
		if m.data[i] != other.data[i] {
			return false
		}
	}

	return true
}

// AllClose reports whether a and b have identical shapes and every pair of
// elements differs by at most tol.
func AllClose[T scalar.Float](a, b *Matrix[T], tol T) bool {
	if a == nil || b == nil {
		return a == b
	}
	if a.r != b.r || a.c != b.c {
		return false
	}
	for i := range a.data {
		if !scalar.Close(a.data[i], b.data[i], tol) {
			return false
		}
	}

	return true
}
