// SPDX-License-Identifier: MIT

package modular

import (
	"fmt"
	"math"

	"github.com/katalvlaran/laguide/matrix"
)

// ModInverseMatrix returns the inverse of the square integer matrix a modulo n,
// computed as adjugate(a) · det(a)⁻¹.
// MAIN DESCRIPTION:
//   - det(a) via matrix.Determinant, rounded to the nearest integer.
//   - invDet = ModInverse(det, n); failure yields ErrNoModularInverse.
//   - For every (i,j): cofactor (−1)^(i+j)·det(minor(i,j)), times invDet, stored
//     transposed at (j,i).
//
// Behavior highlights:
//   - Entries are NOT reduced modulo n; callers reduce at the point of use
//     (see ReduceMatrix). a·result ≡ I (mod n).
//   - A 1×1 input has adjugate [1], so the result is [invDet].
//
// Errors:
//   - ErrBadModulus, matrix.ErrNilMatrix, matrix.ErrShapeMismatch, ErrNotInteger,
//     ErrNoModularInverse.
//
// Complexity:
//   - Time O(n^2 · (n−1)!) from the cofactor determinants, Space O(n^2).
func ModInverseMatrix(a *matrix.Dense, n int) (*matrix.Dense, error) {
	invDet, err := invertibleDet(a, n)
	if err != nil {
		return nil, modErrorf(opInverseMatrix, err)
	}

	size := a.Rows()
	if size == 1 {
		return matrix.NewDense(1, 1, []float64{float64(invDet)})
	}

	var (
		adj         = make([]float64, size*size)
		i, j        int
		sign        int
		minor       *matrix.Dense
		cofactorDet float64
	)
	for i = 0; i < size; i++ {
		for j = 0; j < size; j++ {
			minor, err = matrix.Minor(a, i, j)
			if err != nil {
				return nil, modErrorf(opInverseMatrix, err)
			}
			cofactorDet, err = matrix.Determinant(minor)
			if err != nil {
				return nil, modErrorf(opInverseMatrix, err)
			}
			sign = 1
			if (i+j)%2 == 1 {
				sign = -1
			}
			// transposed write: adjugate = cofactorᵀ
			adj[j*size+i] = float64(sign * int(math.Round(cofactorDet)) * invDet)
		}
	}

	return matrix.NewDense(size, size, adj)
}

// IsInvertible reports (as a nil error) whether a is a valid key modulo n:
// square, integer-valued, and with det(a) coprime to n.
func IsInvertible(a *matrix.Dense, n int) error {
	if _, err := invertibleDet(a, n); err != nil {
		return modErrorf(opInvertible, err)
	}

	return nil
}

// ReduceMatrix returns a copy of the integer matrix a with every entry
// replaced by Mod(entry, n).
func ReduceMatrix(a *matrix.Dense, n int) (*matrix.Dense, error) {
	if n < 2 {
		return nil, modErrorf(opReduce, ErrBadModulus)
	}
	vals, err := intEntries(a)
	if err != nil {
		return nil, modErrorf(opReduce, err)
	}
	out := make([]float64, len(vals))
	var k int
	for k = range vals {
		out[k] = float64(Mod(vals[k], n))
	}

	return matrix.NewDense(a.Rows(), a.Cols(), out)
}

// invertibleDet validates a and returns det(a)⁻¹ mod n.
func invertibleDet(a *matrix.Dense, n int) (int, error) {
	if n < 2 {
		return 0, ErrBadModulus
	}
	if err := matrix.ValidateSquare(a); err != nil {
		return 0, err
	}
	if _, err := intEntries(a); err != nil {
		return 0, err
	}
	d, err := matrix.Determinant(a)
	if err != nil {
		return 0, err
	}
	det := int(math.Round(d))
	inv, ok := ModInverse(det, n)
	if !ok {
		return 0, fmt.Errorf("det %d (≡ %d mod %d): %w", det, Mod(det, n), n, ErrNoModularInverse)
	}

	return inv, nil
}

// intEntries returns the entries of a in row-major order as ints, or
// ErrNotInteger for the first non-whole entry.
func intEntries(a *matrix.Dense) ([]int, error) {
	if err := matrix.ValidateNotNil(a); err != nil {
		return nil, err
	}
	rows := a.RawRows()
	out := make([]int, 0, a.Rows()*a.Cols())
	var i, j int
	for i = range rows {
		for j = range rows[i] {
			v := rows[i][j]
			if v != math.Trunc(v) {
				return nil, fmt.Errorf("entry (%d,%d) = %g: %w", i, j, v, ErrNotInteger)
			}
			out = append(out, int(v))
		}
	}

	return out, nil
}
