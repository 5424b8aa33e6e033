// SPDX-License-Identifier: MIT

package matrix

import "github.com/katalvlaran/linal/scalar"

// Det returns the determinant of square m by Laplace expansion along the
// first row:
//
//	det(A) = Σ_i (-1)^i · A[0][i] · det(Submatrix(A, 0, i))
//
// with det = a·d − b·c for 2×2 and det = a for 1×1. Terms are accumulated
// left to right starting from zero. The cost is O(n!), which is fine for the
// small matrices this package targets; there is no LU shortcut.
//
// Det only needs ring operations, so it works over integer kinds too.
//
// Errors: ErrNilMatrix, ErrNonSquare (also matches ErrDimensionMismatch).
func Det[T scalar.Ring](m *Matrix[T]) (T, error) {
	if err := ValidateSquare(m); err != nil {
		return scalar.Zero[T](), matrixErrorf(opDet, err)
	}

	return det(m)
}

func det[T scalar.Ring](m *Matrix[T]) (T, error) {
	d := m.data
	switch m.r {
	case 1:
		return d[0], nil
	case 2:
		return d[0]*d[3] - d[1]*d[2], nil
	}

	sum := scalar.Zero[T]()
	for i := 0; i < m.c; i++ {
		minor, err := Submatrix(m, 0, i)
		if err != nil {
			return scalar.Zero[T](), matrixErrorf(opDet, err)
		}
		sub, err := det(minor)
		if err != nil {
			return scalar.Zero[T](), err
		}
		if i%2 == 0 {
			sum += d[i] * sub
		} else {
			sum -= d[i] * sub
		}
	}

	return sum, nil
}
