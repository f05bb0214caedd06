// SPDX-License-Identifier: MIT
package matrix_test

import (
	"errors"
	"fmt"
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/genalg/matrix"
)

func TestNewDenseDefaultZero(t *testing.T) {
	for _, tc := range []struct{ rows, cols int }{
		{1, 1},
		{3, 3},
		{2, 5},
	} {
		name := fmt.Sprintf("%dx%d", tc.rows, tc.cols)
		t.Run(name, func(t *testing.T) {
			m := MustDense(t, tc.rows, tc.cols)
			require.Equal(t, tc.rows, m.Rows())
			require.Equal(t, tc.cols, m.Cols())
			var i, j int
			for i = 0; i < tc.rows; i++ {
				for j = 0; j < tc.cols; j++ {
					require.Zero(t, MustAt(t, m, i, j), "element [%d,%d] of a new Dense must be 0", i, j)
				}
			}
		})
	}
}

func TestNewDense_BadShape(t *testing.T) {
	for _, shape := range [][2]int{{0, 1}, {1, 0}, {-1, 3}} {
		_, err := matrix.NewDense(shape[0], shape[1])
		require.ErrorIs(t, err, matrix.ErrBadShape)
	}
}

func TestNewDenseFrom(t *testing.T) {
	m := MustFrom(t, [][]float64{{1, 2}, {3, 4}})
	CompareClose(t, [][]float64{{1, 2}, {3, 4}}, m, 0)

	_, err := matrix.NewDenseFrom([][]float64{{1, 2}, {3}})
	require.ErrorIs(t, err, matrix.ErrBadShape)

	_, err = matrix.NewDenseFrom(nil)
	require.ErrorIs(t, err, matrix.ErrBadShape)

	_, err = matrix.NewDenseFrom([][]float64{{math.NaN()}})
	require.ErrorIs(t, err, matrix.ErrNaNInf)
}

func TestDense_AtSet_Errors(t *testing.T) {
	m := MustDense(t, 2, 2)

	_, err := m.At(2, 0)
	require.ErrorIs(t, err, matrix.ErrOutOfRange)
	_, err = m.At(0, -1)
	require.ErrorIs(t, err, matrix.ErrOutOfRange)

	err = m.Set(-1, 0, 1)
	require.ErrorIs(t, err, matrix.ErrOutOfRange)
	err = m.Set(0, 0, math.Inf(1))
	require.ErrorIs(t, err, matrix.ErrNaNInf)
	require.True(t, errors.Is(m.Set(1, 1, math.NaN()), matrix.ErrNaNInf))
}

func TestDense_CloneIsIndependent(t *testing.T) {
	m := MustFrom(t, [][]float64{{1, 2}, {3, 4}})
	c := m.Clone()
	MustSet(t, c, 0, 0, 42)

	require.Equal(t, 1.0, MustAt(t, m, 0, 0))
	require.Equal(t, 42.0, MustAt(t, c, 0, 0))
}

func TestDense_String(t *testing.T) {
	m := MustFrom(t, [][]float64{{1, 2.5}, {-3, 0}})
	require.Equal(t, "[1, 2.5]\n[-3, 0]\n", m.String())
}
