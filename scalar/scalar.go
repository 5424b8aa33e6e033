// SPDX-License-Identifier: MIT

package scalar

import (
	"math"

	"golang.org/x/exp/constraints"
)

// Float is the set of floating-point kinds.
type Float interface {
	constraints.Float
}

// Real is the set of ordered numeric kinds.
type Real interface {
	constraints.Integer | constraints.Float
}

// Field is the set of kinds where every nonzero element has a
// multiplicative inverse (up to floating-point rounding).
type Field interface {
	constraints.Float | constraints.Complex
}

// Ring is the set of kinds closed under +, - and *.
type Ring interface {
	constraints.Integer | Field
}

// Zero returns the additive identity of T.
func Zero[T Ring]() T {
	var zero T
	return zero
}

// One returns the multiplicative identity of T.
func One[T Ring]() T {
	return T(1)
}

// IsZero reports whether v equals the additive identity of T.
// The comparison is exact; no tolerance is applied.
func IsZero[T Ring](v T) bool {
	return v == Zero[T]()
}

// Close reports whether |a-b| <= tol. NaN is never close to anything.
func Close[T Float](a, b, tol T) bool {
	return math.Abs(float64(a)-float64(b)) <= math.Abs(float64(tol))
}
