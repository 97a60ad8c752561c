// SPDX-License-Identifier: MIT
// Package matrix_test contains test helpers
//
// Purpose:
//   - Provide small, deterministic fixtures for the kernels.
//   - Keep all data finite and well-formed.

package matrix_test

import (
	"testing"

	"github.com/katalvlaran/laguide/matrix"
	"github.com/stretchr/testify/require"
)

// Tolerances shared by numeric assertions.
const (
	atolTight = 1e-12
	rtolTight = 1e-12
)

// MustDense builds a *Dense from literal rows or fails the test.
func MustDense(t *testing.T, rows [][]float64) *matrix.Dense {
	t.Helper()
	m, err := matrix.NewDenseFromRows(rows)
	require.NoError(t, err, "NewDenseFromRows(%v)", rows)

	return m
}

// MustVector builds an n×1 column vector or fails the test.
func MustVector(t *testing.T, values ...float64) *matrix.Dense {
	t.Helper()
	v, err := matrix.NewVector(values)
	require.NoError(t, err)

	return v
}

// MustAt reads (i,j) or fails the test.
func MustAt(t *testing.T, m *matrix.Dense, i, j int) float64 {
	t.Helper()
	v, err := m.At(i, j)
	require.NoError(t, err, "At(%d,%d)", i, j)

	return v
}

// MustMul multiplies or fails the test.
func MustMul(t *testing.T, a, b *matrix.Dense) *matrix.Dense {
	t.Helper()
	p, err := matrix.Mul(a, b)
	require.NoError(t, err)

	return p
}

// RequireClose asserts got ≈ want element-wise within the tight tolerances.
func RequireClose(t *testing.T, want, got *matrix.Dense) {
	t.Helper()
	ok, err := matrix.AllClose(got, want, rtolTight, atolTight)
	require.NoError(t, err)
	require.True(t, ok, "want:\n%v\ngot:\n%v", want, got)
}

// MustIdentity returns I_n or fails the test.
func MustIdentity(t *testing.T, n int) *matrix.Dense {
	t.Helper()
	I, err := matrix.NewIdentity(n)
	require.NoError(t, err)

	return I
}
