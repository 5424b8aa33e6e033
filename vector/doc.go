// SPDX-License-Identifier: MIT

// Package vector provides a small fixed-length vector over any scalar.Ring
// kind: indexing, element-wise arithmetic, dot and cross products, and the
// Euclidean magnitude for real kinds.
//
// A Vector's length is fixed when it is created. Every operation returns a
// fresh Vector; no two vectors share backing storage.
//
// The matrix package converts an N-element Vector to and from an N×1 matrix
// (matrix.FromVector / (*matrix.Matrix).ToVector). That conversion is the only
// bridge between the two packages.
package vector
