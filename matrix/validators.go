// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//  - Single source of truth for nil/shape/index checks used by every kernel.
//  - Validators return sentinels tagged with the validator name; kernels add
//    their own operation tag on top via matrixErrorf.
//
// Note:
//  - Composite validators run in a fixed order: NotNil → Shape.
//  - All checks are O(1) and allocate nothing on the success path.

package matrix

import (
	"fmt"

	"github.com/katalvlaran/linal/scalar"
)

// validatorErrorf wraps an underlying error with the given validator tag.
func validatorErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// ValidateShape ensures rows and cols are both positive.
func ValidateShape(rows, cols int) error {
	if rows <= 0 || cols <= 0 {
		return validatorErrorf("ValidateShape", ErrBadShape)
	}

	return nil
}

// ValidateNotNil ensures the matrix reference is non-nil.
func ValidateNotNil[T scalar.Ring](m *Matrix[T]) error {
	if m == nil {
		return validatorErrorf("ValidateNotNil", ErrNilMatrix)
	}

	return nil
}

// ValidateSameShape ensures a and b are non-nil and have identical dimensions.
// Used by Add, Sub and Hadamard.
func ValidateSameShape[T scalar.Ring](a, b *Matrix[T]) error {
	if err := ValidateNotNil(a); err != nil {
		return validatorErrorf("ValidateSameShape", err)
	}
	if err := ValidateNotNil(b); err != nil {
		return validatorErrorf("ValidateSameShape", err)
	}
	if a.r != b.r {
		return validatorErrorf("ValidateSameShape: Rows", ErrDimensionMismatch)
	}
	if a.c != b.c {
		return validatorErrorf("ValidateSameShape: Columns", ErrDimensionMismatch)
	}

	return nil
}

// ValidateMulCompatible ensures a and b are non-nil and a.Cols() == b.Rows().
func ValidateMulCompatible[T scalar.Ring](a, b *Matrix[T]) error {
	if err := ValidateNotNil(a); err != nil {
		return validatorErrorf("ValidateMulCompatible", err)
	}
	if err := ValidateNotNil(b); err != nil {
		return validatorErrorf("ValidateMulCompatible", err)
	}
	if a.c != b.r {
		return validatorErrorf(
			fmt.Sprintf("ValidateMulCompatible: %dx%d · %dx%d", a.r, a.c, b.r, b.c),
			ErrDimensionMismatch,
		)
	}

	return nil
}

// ValidateSameRows ensures a and b are non-nil and share a row count.
// Used by Augment.
func ValidateSameRows[T scalar.Ring](a, b *Matrix[T]) error {
	if err := ValidateNotNil(a); err != nil {
		return validatorErrorf("ValidateSameRows", err)
	}
	if err := ValidateNotNil(b); err != nil {
		return validatorErrorf("ValidateSameRows", err)
	}
	if a.r != b.r {
		return validatorErrorf("ValidateSameRows", ErrDimensionMismatch)
	}

	return nil
}

// ValidateSquare ensures m is non-nil and Rows == Cols.
// The returned error matches both ErrNonSquare and ErrDimensionMismatch.
func ValidateSquare[T scalar.Ring](m *Matrix[T]) error {
	if err := ValidateNotNil(m); err != nil {
		return validatorErrorf("ValidateSquare", err)
	}
	if m.r != m.c {
		return validatorErrorf("ValidateSquare", fmt.Errorf("%w (%w)", ErrNonSquare, ErrDimensionMismatch))
	}

	return nil
}

// validateIndex checks 0 ≤ row < r and 0 ≤ col < c. It assumes m is non-nil.
func (m *Matrix[T]) validateIndex(method string, row, col int) error {
	if row < 0 || row >= m.r || col < 0 || col >= m.c {
		return indexErrorf(method, row, col, ErrOutOfRange)
	}

	return nil
}
