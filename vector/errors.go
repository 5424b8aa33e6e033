// SPDX-License-Identifier: MIT

package vector

import (
	"errors"
	"fmt"
)

var (
	// ErrBadLength is returned when a vector would have a non-positive length.
	ErrBadLength = errors.New("vector: length must be > 0")

	// ErrOutOfRange indicates an element index outside [0, Len()).
	ErrOutOfRange = errors.New("vector: index out of range")

	// ErrDimensionMismatch indicates operands of incompatible lengths,
	// or a Cross call on vectors that are not three-dimensional.
	ErrDimensionMismatch = errors.New("vector: dimension mismatch")

	// ErrNilVector indicates a nil receiver or argument.
	ErrNilVector = errors.New("vector: nil vector")
)

// vectorErrorf wraps err with an operation tag so errors.Is keeps matching.
func vectorErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}
