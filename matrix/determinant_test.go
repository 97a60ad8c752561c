package matrix_test

import (
	"testing"

	"github.com/katalvlaran/laguide/matrix"
	"github.com/stretchr/testify/require"
)

func TestDeterminant_ClosedForms(t *testing.T) {
	for _, tc := range []struct {
		name string
		in   [][]float64
		want float64
	}{
		{"1x1", [][]float64{{5}}, 5},
		{"2x2", [][]float64{{1, 2}, {3, 4}}, -2},
		{"identity 3", [][]float64{{1, 0, 0}, {0, 1, 0}, {0, 0, 1}}, 1},
		{"3x3", [][]float64{{4, 7, 2}, {3, 6, 1}, {2, 5, 3}}, 9},
		{"3x3 key", [][]float64{{6, 24, 1}, {13, 16, 10}, {20, 17, 15}}, 441},
		{"4x4 zeros in row 0", [][]float64{{1, 0, 2, -1}, {3, 0, 0, 5}, {2, 1, 4, -3}, {1, 0, 5, 0}}, 30},
		{"singular", [][]float64{{1, 2, 3}, {4, 5, 6}, {7, 8, 9}}, 0},
	} {
		t.Run(tc.name, func(t *testing.T) {
			got, err := matrix.Determinant(MustDense(t, tc.in))
			require.NoError(t, err)
			require.Equal(t, tc.want, got)
		})
	}
}

func TestDeterminant_RowSwapFlipsSign(t *testing.T) {
	a := MustDense(t, [][]float64{{2, -1, 0}, {1, 3, 4}, {0, 5, -2}})
	swapped, err := matrix.SwapRows(a, 0, 2)
	require.NoError(t, err)

	d1, err := matrix.Determinant(a)
	require.NoError(t, err)
	d2, err := matrix.Determinant(swapped)
	require.NoError(t, err)
	require.Equal(t, -d1, d2)
}

func TestDeterminant_NonSquare(t *testing.T) {
	_, err := matrix.Determinant(MustDense(t, [][]float64{{1, 2, 3}, {4, 5, 6}}))
	require.ErrorIs(t, err, matrix.ErrShapeMismatch)

	_, err = matrix.Determinant(nil)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)
}

func TestMinor(t *testing.T) {
	a := MustDense(t, [][]float64{{1, 2, 3}, {4, 5, 6}, {7, 8, 9}})

	m, err := matrix.Minor(a, 1, 2)
	require.NoError(t, err)
	require.Equal(t, [][]float64{{1, 2}, {7, 8}}, m.RawRows())

	_, err = matrix.Minor(a, 3, 0)
	require.ErrorIs(t, err, matrix.ErrOutOfRange)

	_, err = matrix.Minor(MustDense(t, [][]float64{{1, 2}}), 0, 0)
	require.ErrorIs(t, err, matrix.ErrInvalidDimensions)
}
