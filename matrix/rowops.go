// SPDX-License-Identifier: MIT
// Package matrix: elementary row operations.
//
// These three transforms are the only mutation surface used by the elimination
// kernels. Each returns a fresh matrix equal to its input except for the
// touched row; the input is never modified.

package matrix

import "fmt"

// SwapRows returns a copy of a with rows k and l exchanged.
// k == l yields a plain copy.
// Errors: ErrNilMatrix, ErrOutOfRange.
// Complexity: O(r*c) for the copy.
func SwapRows(a *Dense, k, l int) (*Dense, error) {
	if err := ValidateNotNil(a); err != nil {
		return nil, matrixErrorf(opSwapRows, err)
	}
	if err := validateRowIndex(a, k); err != nil {
		return nil, matrixErrorf(opSwapRows, err)
	}
	if err := validateRowIndex(a, l); err != nil {
		return nil, matrixErrorf(opSwapRows, err)
	}

	return a.swapRows(k, l), nil
}

// ScaleRow returns a copy of a with row k multiplied by s.
// Errors: ErrNilMatrix, ErrOutOfRange.
func ScaleRow(a *Dense, k int, s float64) (*Dense, error) {
	if err := ValidateNotNil(a); err != nil {
		return nil, matrixErrorf(opScaleRow, err)
	}
	if err := validateRowIndex(a, k); err != nil {
		return nil, matrixErrorf(opScaleRow, err)
	}

	return a.scaleRow(k, s), nil
}

// AddScaledRow returns a copy of a where row l is replaced by row l + s*row k.
// Errors: ErrNilMatrix, ErrOutOfRange.
func AddScaledRow(a *Dense, k, l int, s float64) (*Dense, error) {
	if err := ValidateNotNil(a); err != nil {
		return nil, matrixErrorf(opAddScaled, err)
	}
	if err := validateRowIndex(a, k); err != nil {
		return nil, matrixErrorf(opAddScaled, fmt.Errorf("source %w", err))
	}
	if err := validateRowIndex(a, l); err != nil {
		return nil, matrixErrorf(opAddScaled, fmt.Errorf("target %w", err))
	}

	return a.addScaledRow(k, l, s), nil
}

// swapRows, scaleRow and addScaledRow are the unchecked kernels behind the
// public row operations. Kernels in this package call them after validating
// their own loop bounds once.

func (m *Dense) swapRows(k, l int) *Dense {
	out := m.Clone()
	if k == l {
		return out
	}
	rowK := out.data[k*m.c : (k+1)*m.c]
	rowL := out.data[l*m.c : (l+1)*m.c]
	var j int
	for j = 0; j < m.c; j++ {
		rowK[j], rowL[j] = rowL[j], rowK[j]
	}

	return out
}

func (m *Dense) scaleRow(k int, s float64) *Dense {
	out := m.Clone()
	row := out.data[k*m.c : (k+1)*m.c]
	var j int
	for j = range row {
		row[j] *= s
	}

	return out
}

func (m *Dense) addScaledRow(k, l int, s float64) *Dense {
	out := m.Clone()
	src := out.data[k*m.c : (k+1)*m.c]
	dst := out.data[l*m.c : (l+1)*m.c]
	var j int
	for j = range dst {
		dst[j] += src[j] * s
	}

	return out
}
