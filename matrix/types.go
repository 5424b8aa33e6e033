// SPDX-License-Identifier: MIT

package matrix

import "github.com/katalvlaran/linal/scalar"

// Matrix is a dense rows×cols grid of T stored row-major in a flat slice.
// The shape is fixed for the lifetime of a value; shape-changing operations
// return a new Matrix.
//
// The zero value is not usable; build matrices with New, FromRows, Identity
// or any operation that returns one.
type Matrix[T scalar.Ring] struct {
	r, c int // number of rows and columns, both > 0
	data []T // len(data) == r*c
}

// Operation tags for uniform error wrapping.
const (
	opNew        = "New"
	opFromRows   = "FromRows"
	opAdd        = "Add"
	opSub        = "Sub"
	opMul        = "Mul"
	opScale      = "Scale"
	opHadamard   = "Hadamard"
	opTranspose  = "Transpose"
	opIdentity   = "Identity"
	opSubmatrix  = "Submatrix"
	opSlice      = "Slice"
	opAugment    = "Augment"
	opRREF       = "RREF"
	opDet        = "Det"
	opInverse    = "Inverse"
	opSolve      = "Solve"
	opFromVector = "FromVector"
	opToVector   = "ToVector"
	opFromGonum  = "FromGonum"
)
