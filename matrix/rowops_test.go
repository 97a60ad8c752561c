package matrix_test

import (
	"testing"

	"github.com/katalvlaran/laguide/matrix"
	"github.com/stretchr/testify/require"
)

func TestRowOps_Results(t *testing.T) {
	a := MustDense(t, [][]float64{{1, 2}, {3, 4}, {5, 6}})

	for _, tc := range []struct {
		name string
		op   func() (*matrix.Dense, error)
		want [][]float64
	}{
		{"swap 0,2", func() (*matrix.Dense, error) { return matrix.SwapRows(a, 0, 2) }, [][]float64{{5, 6}, {3, 4}, {1, 2}}},
		{"swap same row", func() (*matrix.Dense, error) { return matrix.SwapRows(a, 1, 1) }, [][]float64{{1, 2}, {3, 4}, {5, 6}}},
		{"scale row 1 by -2", func() (*matrix.Dense, error) { return matrix.ScaleRow(a, 1, -2) }, [][]float64{{1, 2}, {-6, -8}, {5, 6}}},
		{"add 3*row0 to row2", func() (*matrix.Dense, error) { return matrix.AddScaledRow(a, 0, 2, 3) }, [][]float64{{1, 2}, {3, 4}, {8, 12}}},
	} {
		t.Run(tc.name, func(t *testing.T) {
			got, err := tc.op()
			require.NoError(t, err)
			require.Equal(t, tc.want, got.RawRows())
		})
	}

	// The source matrix is never touched.
	require.Equal(t, [][]float64{{1, 2}, {3, 4}, {5, 6}}, a.RawRows())
}

func TestRowOps_ReturnFreshMatrix(t *testing.T) {
	a := MustDense(t, [][]float64{{1, 2}, {3, 4}})

	b, err := matrix.SwapRows(a, 0, 0)
	require.NoError(t, err)
	require.NotSame(t, a, b)
	require.True(t, matrix.Equal(a, b))
}

func TestRowOps_Errors(t *testing.T) {
	a := MustDense(t, [][]float64{{1, 2}, {3, 4}})

	_, err := matrix.SwapRows(a, 0, 2)
	require.ErrorIs(t, err, matrix.ErrOutOfRange)
	_, err = matrix.ScaleRow(a, -1, 2)
	require.ErrorIs(t, err, matrix.ErrOutOfRange)
	_, err = matrix.AddScaledRow(a, 5, 0, 1)
	require.ErrorIs(t, err, matrix.ErrOutOfRange)
	_, err = matrix.AddScaledRow(nil, 0, 0, 1)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)
}
