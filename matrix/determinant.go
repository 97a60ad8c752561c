// SPDX-License-Identifier: MIT
// Package matrix: determinant by cofactor expansion.

package matrix

import "fmt"

// Determinant returns det(A) by recursive cofactor expansion along row 0.
// MAIN DESCRIPTION:
//   - Base cases: 1×1 → A[0,0]; 2×2 → a·d − b·c.
//   - Recursive case: Σ_n (−1)^n · A[0,n] · det(minor(0,n)).
//
// Behavior highlights:
//   - Recursion depth equals n−1 and is bounded by the matrix itself.
//   - Zero entries in row 0 skip their minor entirely.
//   - Integer-valued inputs of the small sizes used by the Hill cipher produce
//     exact integer results.
//
// Errors:
//   - ErrNilMatrix, ErrShapeMismatch (non-square).
//
// Complexity:
//   - Time O(n!); intended for a handful of rows only. Minors are not memoized.
//   - Space O(n^2) per recursion level.
func Determinant(a *Dense) (float64, error) {
	if err := ValidateSquare(a); err != nil {
		return 0, matrixErrorf(opDeterminant, err)
	}

	return determinant(a), nil
}

// determinant is the unchecked recursive kernel; a is square.
func determinant(a *Dense) float64 {
	switch a.r {
	case 1:
		return a.data[0]
	case 2:
		return a.data[0]*a.data[3] - a.data[1]*a.data[2]
	}

	var (
		det  = ZeroSum
		sign = 1.0
		n    int
		v    float64
	)
	for n = 0; n < a.c; n++ {
		v = a.at(0, n)
		if v != 0 {
			det += sign * v * determinant(a.minor(0, n))
		}
		sign = -sign
	}

	return det
}

// Minor returns a copy of a with row i and column j removed.
// Errors: ErrNilMatrix, ErrOutOfRange, ErrInvalidDimensions (a is 1×k or k×1).
func Minor(a *Dense, i, j int) (*Dense, error) {
	if err := ValidateNotNil(a); err != nil {
		return nil, matrixErrorf(opMinor, err)
	}
	if i < 0 || i >= a.r || j < 0 || j >= a.c {
		return nil, matrixErrorf(opMinor, fmt.Errorf("(%d,%d) in %dx%d: %w", i, j, a.r, a.c, ErrOutOfRange))
	}
	if a.r < 2 || a.c < 2 {
		return nil, matrixErrorf(opMinor, ErrInvalidDimensions)
	}

	return a.minor(i, j), nil
}

// minor is the unchecked variant of Minor.
func (m *Dense) minor(skipRow, skipCol int) *Dense {
	out := newDense(m.r-1, m.c-1)
	var (
		i, j, oi, oj int
	)
	for i = 0; i < m.r; i++ {
		if i == skipRow {
			continue
		}
		oj = 0
		for j = 0; j < m.c; j++ {
			if j == skipCol {
				continue
			}
			out.data[oi*out.c+oj] = m.data[i*m.c+j]
			oj++
		}
		oi++
	}

	return out
}
