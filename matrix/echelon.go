// SPDX-License-Identifier: MIT
// Package matrix: echelon reduction kernels.
//
// Two elimination policies share the same row-operation surface:
//
//	ReduceRestricted - square or augmented-square systems; pivot search runs down
//	                   the current column only; entries below the pivot are cleared.
//	ReduceFull       - any shape; pivot search walks down the column and then to
//	                   the right; produces the reduced row-echelon form (RREF).
//
// Both return a fresh matrix and never touch their input.

package matrix

import "math"

// DefaultTolerance is the residual magnitude ReduceFull forces to exactly zero.
const DefaultTolerance = 1e-14

// ReduceRestricted performs forward elimination with a column-restricted pivot search.
// MAIN DESCRIPTION:
//   - For k in [0, min(rows, cols)): when A[k,k] == 0 search rows k+1..rows-1 of
//     column k for a nonzero entry and swap it into place, then scale row k to a
//     unit pivot and clear every entry below it.
//
// Behavior highlights:
//   - The search never looks across columns; a column with no usable pivot is left
//     unreduced and elimination proceeds with the next column.
//   - The search bound is the full row count (the last row is a valid candidate).
//
// Returns:
//   - (*Dense, nil) on success.
//   - (*Dense, *PivotError) when some column had no usable pivot. The matrix is the
//     partially reduced result; PivotError.Col names the first such column.
//
// Errors:
//   - ErrNilMatrix, ErrSingularPivot (via *PivotError).
//
// Complexity:
//   - Time O(min(r,c) * r * r*c) including the per-operation copies, Space O(r*c).
func ReduceRestricted(a *Dense) (*Dense, error) {
	if err := ValidateNotNil(a); err != nil {
		return nil, matrixErrorf(opRestricted, err)
	}

	var (
		b        = a.Clone()
		steps    = min(a.r, a.c)
		k, i, p  int
		factor   float64
		firstBad *PivotError
	)
	for k = 0; k < steps; k++ {
		// Search strictly downward in column k while p < rows.
		p = k
		for p < b.r && b.at(p, k) == ZeroPivot {
			p++
		}
		if p == b.r {
			if firstBad == nil {
				firstBad = &PivotError{Op: opRestricted, Col: k}
			}
			continue
		}
		if p != k {
			b = b.swapRows(k, p)
		}

		b = b.scaleRow(k, 1.0/b.at(k, k))
		b.set(k, k, 1.0) // exact unit pivot
		for i = k + 1; i < b.r; i++ {
			factor = b.at(i, k)
			if factor != 0 {
				b = b.addScaledRow(k, i, -factor)
			}
		}
	}
	if firstBad != nil {
		return b, firstBad
	}

	return b, nil
}

// ReduceFull returns the reduced row-echelon form of a.
// MAIN DESCRIPTION:
//   - A (pivotRow, pivotCol) cursor walks the matrix diagonally. When the cursor
//     entry is zero the search scans down the current column, then the following
//     columns (never above pivotRow), until a nonzero entry turns up.
//   - The found row is swapped to pivotRow, scaled to a unit pivot, and every other
//     entry of the pivot column (above and below) is eliminated.
//   - After the pivot row is scaled and after each elimination step, entries
//     with |x| < tol are forced to 0.
//
// Behavior highlights:
//   - Idempotent: ReduceFull(ReduceFull(A)) == ReduceFull(A) exactly, because pivots
//     are written as exact ones and cleared entries as exact zeros.
//   - Terminates when either cursor coordinate leaves the matrix or no nonzero entry
//     remains in the lower-right block.
//
// Errors:
//   - ErrNilMatrix, ErrBadTolerance.
//
// Complexity:
//   - Time O(min(r,c) * r * r*c) including the per-operation copies, Space O(r*c).
func ReduceFull(a *Dense, tol float64) (*Dense, error) {
	if err := ValidateNotNil(a); err != nil {
		return nil, matrixErrorf(opFull, err)
	}
	if err := ValidateTolerance(tol); err != nil {
		return nil, matrixErrorf(opFull, err)
	}

	var (
		b              = a.Clone()
		pr, pc, fr, fc int
		i              int
		factor         float64
	)
	for pr < b.r && pc < b.c {
		fr, fc = b.findPivot(pr, pc)
		if fr < 0 {
			break // remaining block is all zeros
		}
		pc = fc
		if fr != pr {
			b = b.swapRows(pr, fr)
		}

		b = b.scaleRow(pr, 1.0/b.at(pr, pc))
		b.set(pr, pc, 1.0)
		b.chop(tol)
		for i = 0; i < b.r; i++ {
			if i == pr {
				continue
			}
			factor = b.at(i, pc)
			if factor == 0 {
				continue
			}
			b = b.addScaledRow(pr, i, -factor)
			b.set(i, pc, 0) // exact zero under the unit pivot
			b.chop(tol)
		}
		pr++
		pc++
	}

	return b, nil
}

// ReduceFullDefault is ReduceFull with DefaultTolerance.
func ReduceFullDefault(a *Dense) (*Dense, error) { return ReduceFull(a, DefaultTolerance) }

// Rank returns the number of nonzero rows in the RREF of a.
func Rank(a *Dense, tol float64) (int, error) {
	r, err := ReduceFull(a, tol)
	if err != nil {
		return 0, matrixErrorf(opRank, err)
	}
	var (
		i, j, rank int
	)
	for i = 0; i < r.r; i++ {
		for j = 0; j < r.c; j++ {
			if r.at(i, j) != 0 {
				rank++
				break
			}
		}
	}

	return rank, nil
}

// findPivot scans column pc from row pr down, then each following column from
// row pr down, and returns the first nonzero position or (-1,-1).
func (m *Dense) findPivot(pr, pc int) (int, int) {
	var row, col int
	for col = pc; col < m.c; col++ {
		for row = pr; row < m.r; row++ {
			if m.at(row, col) != 0 {
				return row, col
			}
		}
	}

	return -1, -1
}

// chop forces every |x| < tol to exactly zero. Only ever called on buffers
// owned by the running kernel.
func (m *Dense) chop(tol float64) {
	var k int
	for k = range m.data {
		if math.Abs(m.data[k]) < tol {
			m.data[k] = 0
		}
	}
}
