// Package matrix_test contains unit tests for construction and element access.
package matrix_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/linal/matrix"
	"github.com/katalvlaran/linal/vector"
)

func TestNew_DefaultZero(t *testing.T) {
	for _, tc := range []struct{ rows, cols int }{
		{1, 1},
		{3, 3},
		{2, 5},
	} {
		t.Run(fmt.Sprintf("%dx%d", tc.rows, tc.cols), func(t *testing.T) {
			m, err := matrix.New[int](tc.rows, tc.cols)
			require.NoError(t, err)
			r, c := m.Dims()
			require.Equal(t, tc.rows, r)
			require.Equal(t, tc.cols, c)
			for _, row := range m.ToRows() {
				for _, v := range row {
					require.Zero(t, v)
				}
			}
		})
	}
}

func TestNew_BadShape(t *testing.T) {
	for _, tc := range []struct{ rows, cols int }{{0, 1}, {1, 0}, {-1, 3}} {
		_, err := matrix.New[float64](tc.rows, tc.cols)
		require.ErrorIs(t, err, matrix.ErrBadShape)
	}
}

func TestFromRows(t *testing.T) {
	src := [][]int{{1, 2, 3}, {4, 5, 6}}
	m, err := matrix.FromRows(src)
	require.NoError(t, err)
	assert.Equal(t, 2, m.Rows())
	assert.Equal(t, 3, m.Cols())
	assert.False(t, m.IsSquare())

	// the literal is copied
	src[0][0] = 100
	v, err := m.At(0, 0)
	require.NoError(t, err)
	assert.Equal(t, 1, v)

	_, err = matrix.FromRows([][]int{})
	require.ErrorIs(t, err, matrix.ErrBadShape)
	_, err = matrix.FromRows([][]int{{}})
	require.ErrorIs(t, err, matrix.ErrBadShape)
	_, err = matrix.FromRows([][]int{{1, 2}, {3}})
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)
}

func TestAtSet_Bounds(t *testing.T) {
	m := MustRows(t, [][]int{{1, 2}, {3, 4}})

	require.NoError(t, m.Set(1, 0, 9))
	v, err := m.At(1, 0)
	require.NoError(t, err)
	assert.Equal(t, 9, v)

	for _, idx := range [][2]int{{-1, 0}, {0, -1}, {2, 0}, {0, 2}} {
		_, err = m.At(idx[0], idx[1])
		require.ErrorIs(t, err, matrix.ErrOutOfRange)
		require.ErrorIs(t, m.Set(idx[0], idx[1], 0), matrix.ErrOutOfRange)
	}
	_, err = m.Row(2)
	require.ErrorIs(t, err, matrix.ErrOutOfRange)
}

func TestRowAndAll_ReturnCopies(t *testing.T) {
	m := MustRows(t, [][]int{{1, 2}, {3, 4}, {5, 6}})

	row, err := m.Row(1)
	require.NoError(t, err)
	assert.Equal(t, []int{3, 4}, row)
	row[0] = -1
	RequireRows(t, [][]int{{1, 2}, {3, 4}, {5, 6}}, m)

	var seen [][]int
	for i, r := range m.All() {
		require.Equal(t, len(seen), i)
		seen = append(seen, r)
	}
	assert.Equal(t, m.ToRows(), seen)

	// early break stops the iteration
	count := 0
	for range m.All() {
		count++
		break
	}
	assert.Equal(t, 1, count)
}

func TestCloneAndEqual(t *testing.T) {
	a := MustRows(t, [][]float64{{1, 2}, {3, 4}})
	b := a.Clone()
	require.True(t, a.Equal(b))

	require.NoError(t, b.Set(0, 0, 42))
	assert.False(t, a.Equal(b), "clone must not share storage")
	assert.False(t, a.Equal(MustRows(t, [][]float64{{1, 2, 0}, {3, 4, 0}})))
	assert.False(t, a.Equal(nil))

	var nilM *matrix.Matrix[float64]
	assert.True(t, nilM.Equal(nil))
}

func TestAllClose(t *testing.T) {
	a := MustRows(t, [][]float64{{1, 2}})
	assert.True(t, matrix.AllClose(a, MustRows(t, [][]float64{{1 + 1e-12, 2}}), 1e-9))
	assert.False(t, matrix.AllClose(a, MustRows(t, [][]float64{{1.1, 2}}), 1e-9))
	assert.False(t, matrix.AllClose(a, MustRows(t, [][]float64{{1}, {2}}), 1e-9))
}

func TestVectorRoundTrip(t *testing.T) {
	v, err := vector.FromSlice([]int{4, 5, 6})
	require.NoError(t, err)

	col, err := matrix.FromVector(v)
	require.NoError(t, err)
	RequireRows(t, [][]int{{4}, {5}, {6}}, col)

	back, err := col.ToVector()
	require.NoError(t, err)
	assert.True(t, v.Equal(back))

	// conversion copies in both directions
	require.NoError(t, col.Set(0, 0, 0))
	x, _ := back.At(0)
	assert.Equal(t, 4, x)

	_, err = MustRows(t, [][]int{{1, 2}}).ToVector()
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)
	_, err = matrix.FromVector[int](nil)
	require.ErrorIs(t, err, vector.ErrNilVector)
}

func TestNilMatrix(t *testing.T) {
	var m *matrix.Matrix[float64]
	_, err := matrix.Transpose(m)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)
	_, err = matrix.Add(m, m)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)
	_, err = matrix.Det(m)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)
	_, _, err = matrix.Inverse(m)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)
	_, err = m.ToVector()
	require.ErrorIs(t, err, matrix.ErrNilMatrix)
	require.ErrorIs(t, m.ScaleInPlace(2), matrix.ErrNilMatrix)
	assert.Equal(t, "<nil>", m.String())
}
