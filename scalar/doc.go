// SPDX-License-Identifier: MIT

// Package scalar declares the capability constraints that the matrix and
// vector packages place on their element types.
//
// Operations ask only for what they need:
//
//	Ring  — add, subtract, multiply, zero and one (Add, Mul, Det).
//	Field — Ring plus division by any nonzero element (RREF, Inverse).
//	Real  — ordered kinds that convert losslessly enough to float64 (Magnitude, gonum bridge).
//	Float — floating kinds, used by tolerance comparisons.
//
// Integers form a Ring but not a Field: RREF and Inverse over integers are
// rejected at compile time instead of silently truncating.
package scalar
