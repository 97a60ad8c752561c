// SPDX-License-Identifier: MIT
// Package matrix: classical Gram-Schmidt orthogonalization.

package matrix

import (
	"fmt"
	"math"
)

// NormZero is the additive identity for norm accumulation.
const NormZero = 0.0

// Dot returns uᵀv for two column vectors of equal length.
// Errors: ErrNilMatrix, ErrShapeMismatch.
func Dot(u, v *Dense) (float64, error) {
	if err := ValidateColumnVector(u, -1); err != nil {
		return 0, matrixErrorf(opDot, err)
	}
	if err := ValidateColumnVector(v, u.r); err != nil {
		return 0, matrixErrorf(opDot, err)
	}

	return dot(u, v), nil
}

func dot(u, v *Dense) float64 {
	sum := ZeroSum
	var i int
	for i = range u.data {
		sum += u.data[i] * v.data[i]
	}

	return sum
}

// Magnitude returns the Euclidean length √(vᵀv) of a column vector.
// Errors: ErrNilMatrix, ErrShapeMismatch.
func Magnitude(v *Dense) (float64, error) {
	if err := ValidateColumnVector(v, -1); err != nil {
		return 0, matrixErrorf(opMagnitude, err)
	}

	return math.Sqrt(dot(v, v)), nil
}

// QR factors A (rows ≥ cols) as Q·R with classical Gram-Schmidt.
// MAIN DESCRIPTION:
//   - For column i: W = A[:,i] − Σ_{j<i} (A[:,i]·Q[:,j]) Q[:,j]; Q[:,i] = W/|W|.
//   - R = Qᵀ·A (upper triangular up to round-off).
//
// Behavior highlights:
//   - Projections use the original column A[:,i] (classical, not modified, GS);
//     no re-orthogonalization pass, so nearly dependent columns lose orthogonality.
//
// Returns:
//   - Q: rows×cols with orthonormal columns.
//   - R: cols×cols.
//
// Errors:
//   - ErrNilMatrix, ErrShapeMismatch (rows < cols).
//   - ErrSingularPivot when some W has zero magnitude (rank-deficient A).
//
// Complexity:
//   - Time O(r*c^2), Space O(r*c).
func QR(a *Dense) (*Dense, *Dense, error) {
	if err := ValidateNotNil(a); err != nil {
		return nil, nil, matrixErrorf(opQR, err)
	}
	if a.r < a.c {
		return nil, nil, matrixErrorf(opQR, fmt.Errorf("%dx%d has fewer rows than columns: %w", a.r, a.c, ErrShapeMismatch))
	}

	var (
		rows, cols = a.r, a.c
		q          = newDense(rows, cols)
		w, ai, qj  *Dense
		i, j, k    int
		proj, mag  float64
	)
	for i = 0; i < cols; i++ {
		ai = a.col(i)
		w = ai.Clone()
		for j = 0; j < i; j++ {
			qj = q.col(j)
			proj = dot(ai, qj)
			for k = 0; k < rows; k++ {
				w.data[k] -= proj * qj.data[k]
			}
		}
		mag = math.Sqrt(dot(w, w))
		if mag == NormZero {
			return nil, nil, matrixErrorf(opQR, fmt.Errorf("column %d: %w", i, ErrSingularPivot))
		}
		for k = 0; k < rows; k++ {
			q.set(k, i, w.data[k]/mag)
		}
	}

	qt, err := Transpose(q)
	if err != nil {
		return nil, nil, matrixErrorf(opQR, err)
	}
	r, err := Mul(qt, a)
	if err != nil {
		return nil, nil, matrixErrorf(opQR, err)
	}

	return q, r, nil
}
