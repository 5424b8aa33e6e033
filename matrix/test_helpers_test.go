// SPDX-License-Identifier: MIT
// Package matrix_test contains test helpers
//
// Purpose:
//   • Small deterministic fixtures shared by unit tests, examples and benchmarks.
//   • Keep all random data finite and integral-valued where exactness matters.

package matrix_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/linal/matrix"
	"github.com/katalvlaran/linal/scalar"
)

// floatTol is the element-wise tolerance for float64 results that go through
// division (RREF, Inverse).
const floatTol = 1e-9

// MustRows builds a matrix from a literal or fails the test.
func MustRows[T scalar.Ring](tb testing.TB, rows [][]T) *matrix.Matrix[T] {
	tb.Helper()
	m, err := matrix.FromRows(rows)
	require.NoError(tb, err)

	return m
}

// MustIdentity returns Iₙ or fails the test.
func MustIdentity[T scalar.Ring](tb testing.TB, n int) *matrix.Matrix[T] {
	tb.Helper()
	id, err := matrix.Identity[T](n)
	require.NoError(tb, err)

	return id
}

// RequireRows asserts that got has exactly the elements of want.
func RequireRows[T scalar.Ring](tb testing.TB, want [][]T, got *matrix.Matrix[T]) {
	tb.Helper()
	require.NotNil(tb, got)
	require.Equal(tb, want, got.ToRows())
}

// RequireClose asserts shape equality and |want-got| ≤ floatTol element-wise.
func RequireClose(tb testing.TB, want, got *matrix.Matrix[float64]) {
	tb.Helper()
	require.NotNil(tb, got)
	require.Truef(tb, matrix.AllClose(want, got, floatTol), "want\n%v\ngot\n%v", want, got)
}

// RandomInts returns an r×c float64 matrix with integer entries in [-9, 9],
// generated from a fixed seed so products and sums stay exact.
func RandomInts(tb testing.TB, r, c int, seed int64) *matrix.Matrix[float64] {
	tb.Helper()
	rng := rand.New(rand.NewSource(seed))
	m, err := matrix.New[float64](r, c)
	require.NoError(tb, err)
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			require.NoError(tb, m.Set(i, j, float64(rng.Intn(19)-9)))
		}
	}

	return m
}
