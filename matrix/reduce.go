// SPDX-License-Identifier: MIT
// Package matrix: row reduction to reduced row-echelon form.
//
// Pivoting policy:
//   - The pivot for a column is the first row at or below the current pivot
//     row with a nonzero entry. No magnitude-based (partial) pivoting is done,
//     so results are reproducible bit for bit but can be poorly conditioned
//     for floating kinds.
//   - Zero tests are exact (scalar.IsZero); no tolerance is applied.

package matrix

import "github.com/katalvlaran/linal/scalar"

// RREF returns the reduced row-echelon form of m. m is not mutated.
//
// Implementation (column-major scan with pivot row p = 0):
//   - For each column left to right: if row p is zero in this column, swap in
//     the first lower row that is not; if none exists the column has no pivot.
//   - Divide row p, from the pivot column on, by the pivot value.
//   - Subtract (row i's entry in the pivot column) × row p from every other row i.
//   - Advance p; stop when p reaches Rows() or the columns run out.
//
// Errors: ErrNilMatrix.
// Complexity: O(r * c * min(r, c)).
func RREF[T scalar.Field](m *Matrix[T]) (*Matrix[T], error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opRREF, err)
	}

	w := m.Clone()
	reduce(w)

	return w, nil
}

// Rank returns the number of pivot rows in the RREF of m.
// The count is exact, so floating-point noise can make a numerically rank
// deficient matrix report full rank.
func Rank[T scalar.Field](m *Matrix[T]) (int, error) {
	if err := ValidateNotNil(m); err != nil {
		return 0, matrixErrorf(opRREF, err)
	}

	return reduce(m.Clone()), nil
}

// reduce brings w into RREF in place and returns the number of pivots found.
func reduce[T scalar.Field](w *Matrix[T]) int {
	rows, cols := w.r, w.c
	var (
		row, col, i, j int
		pivot, factor  T
	)
	for col = 0; col < cols && row < rows; col++ {
		if scalar.IsZero(w.data[row*cols+col]) {
			swap := -1
			for i = row + 1; i < rows; i++ {
				if !scalar.IsZero(w.data[i*cols+col]) {
					swap = i
					break
				}
			}
			if swap < 0 {
				continue // no pivot in this column; row pointer stays
			}
			w.swapRows(row, swap)
		}

		// Scale the pivot row so its leading entry becomes 1.
		pr := w.data[row*cols : (row+1)*cols]
		pivot = pr[col]
		for j = col; j < cols; j++ {
			pr[j] /= pivot
		}

		// Clear the pivot column in every other row.
		for i = 0; i < rows; i++ {
			if i == row {
				continue
			}
			ri := w.data[i*cols : (i+1)*cols]
			factor = ri[col]
			for j = col; j < cols; j++ {
				ri[j] -= factor * pr[j]
			}
		}

		row++
	}

	return row
}

// swapRows exchanges rows a and b in place.
func (m *Matrix[T]) swapRows(a, b int) {
	ra := m.data[a*m.c : (a+1)*m.c]
	rb := m.data[b*m.c : (b+1)*m.c]
	for j := range ra {
		ra[j], rb[j] = rb[j], ra[j]
	}
}
