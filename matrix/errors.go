// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set.
// Kernels return these sentinels wrapped with an operation tag; callers and
// tests match them via errors.Is. No kernel panics on user-triggered input.

package matrix

import (
	"errors"
	"fmt"
)

// Every message is prefixed with "matrix: ". Wrapping happens once per layer
// with "<Op>: <cause>" so the full chain reads like a call path.

var (
	// ErrBadShape is returned when a requested shape is invalid (rows<=0 or cols<=0),
	// including shapes produced by shrinking operations such as Submatrix.
	ErrBadShape = errors.New("matrix: invalid shape")

	// ErrOutOfRange indicates that a row or column index is outside valid bounds.
	ErrOutOfRange = errors.New("matrix: index out of range")

	// ErrDimensionMismatch indicates incompatible operand shapes: Add/Sub with
	// different shapes, Mul with a.Cols != b.Rows, Augment with different row
	// counts, or a ragged literal.
	ErrDimensionMismatch = errors.New("matrix: dimension mismatch")

	// ErrNonSquare signals that a square matrix was required. Errors carrying it
	// also match ErrDimensionMismatch.
	ErrNonSquare = errors.New("matrix: matrix is not square")

	// ErrNilMatrix indicates that a nil *Matrix (receiver or argument) was used.
	ErrNilMatrix = errors.New("matrix: nil matrix")

	// ErrSingular is returned by Solve when the coefficient matrix has no inverse.
	// Inverse itself never returns it.
	ErrSingular = errors.New("matrix: singular matrix")
)

// matrixErrorf wraps err with an operation tag, preserving it for errors.Is/As.
// Call only with a non-nil err.
func matrixErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// indexErrorf tags err with the offending (row, col) pair.
func indexErrorf(method string, row, col int, err error) error {
	return fmt.Errorf("%s(%d,%d): %w", method, row, col, err)
}
