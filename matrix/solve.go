// SPDX-License-Identifier: MIT
// Package matrix: triangular back-substitution and the linear-system solver
// composed from ReduceRestricted + BackSubstitute.

package matrix

import "fmt"

// BackSubstitute solves U·X = Y for an upper-triangular square U.
// MAIN DESCRIPTION:
//   - X[i] = (Y[i] − Σ_{j>i} U[i,j]·X[j]) / U[i,i], computed from i = n−1 down to 0.
//
// Inputs:
//   - u: n×n upper-triangular matrix (entries below the diagonal are ignored).
//   - y: n×1 right-hand side.
//
// Errors:
//   - ErrNilMatrix, ErrShapeMismatch (u not square or y not n×1).
//   - ErrSingularPivot when some U[i,i] == 0; no division is attempted.
//
// Complexity:
//   - Time O(n^2), Space O(n).
func BackSubstitute(u, y *Dense) (*Dense, error) {
	if err := ValidateSquare(u); err != nil {
		return nil, matrixErrorf(opBackSubst, err)
	}
	if err := ValidateColumnVector(y, u.r); err != nil {
		return nil, matrixErrorf(opBackSubst, err)
	}

	return backSubstitute(u, y)
}

// backSubstitute is the unchecked kernel; shapes were validated by the caller.
func backSubstitute(u, y *Dense) (*Dense, error) {
	var (
		n          = u.r
		x          = newDense(n, 1)
		i, j       int
		sum, pivot float64
	)
	for i = n - 1; i >= 0; i-- {
		sum = ZeroSum
		for j = i + 1; j < n; j++ {
			sum += u.at(i, j) * x.data[j]
		}
		pivot = u.at(i, i)
		if pivot == ZeroPivot {
			return nil, matrixErrorf(opBackSubst, fmt.Errorf("U[%d,%d]: %w", i, i, ErrSingularPivot))
		}
		x.data[i] = (y.data[i] - sum) / pivot
	}

	return x, nil
}

// Solve returns X with A·X = B for square A and an n×1 right-hand side B.
// Implementation:
//   - Stage 1: validate shapes; build the augmented matrix [A|B].
//   - Stage 2: ReduceRestricted; a column without a usable pivot aborts with ErrSingularPivot.
//   - Stage 3: split the reduced matrix and back-substitute.
//
// Errors:
//   - ErrNilMatrix, ErrShapeMismatch, ErrSingularPivot.
//
// Complexity:
//   - Time O(n^4) with the copy-per-row-operation discipline, Space O(n^2).
func Solve(a, b *Dense) (*Dense, error) {
	if err := ValidateSquare(a); err != nil {
		return nil, matrixErrorf(opSolve, err)
	}
	if err := ValidateColumnVector(b, a.r); err != nil {
		return nil, matrixErrorf(opSolve, err)
	}

	aug, err := Augment(a, b)
	if err != nil {
		return nil, matrixErrorf(opSolve, err)
	}
	reduced, err := ReduceRestricted(aug)
	if err != nil {
		return nil, matrixErrorf(opSolve, err)
	}

	n := a.r
	x, err := backSubstitute(reduced.sliceCols(0, n), reduced.sliceCols(n, n+1))
	if err != nil {
		return nil, matrixErrorf(opSolve, err)
	}

	return x, nil
}

// Inverse computes A⁻¹ by reducing [A|I] once and back-substituting each
// transformed unit vector of the right block.
// Implementation:
//   - Stage 1: ValidateSquare; augment with I_n.
//   - Stage 2: ReduceRestricted on the n×2n block.
//   - Stage 3: for col = 0..n−1 back-substitute the reduced column n+col and write
//     the solution into column col of the result.
//
// Behavior highlights:
//   - No pivoting beyond the column-restricted search (deterministic).
//   - A singular A surfaces as ErrSingularPivot, either from the reduction or from
//     back-substitution. Callers wanting a strict contract should check
//     Determinant first.
//
// Complexity:
//   - Time O(n^4) with per-operation copies, Space O(n^2).
func Inverse(a *Dense) (*Dense, error) {
	if err := ValidateSquare(a); err != nil {
		return nil, matrixErrorf(opInverse, err)
	}

	n := a.r
	I, err := NewIdentity(n)
	if err != nil {
		return nil, matrixErrorf(opInverse, err)
	}
	aug, err := Augment(a, I)
	if err != nil {
		return nil, matrixErrorf(opInverse, err)
	}
	reduced, err := ReduceRestricted(aug)
	if err != nil {
		return nil, matrixErrorf(opInverse, err)
	}

	var (
		u   = reduced.sliceCols(0, n)
		inv = newDense(n, n)
		x   *Dense
		col int
		i   int
	)
	for col = 0; col < n; col++ {
		x, err = backSubstitute(u, reduced.col(n+col))
		if err != nil {
			return nil, matrixErrorf(opInverse, err)
		}
		for i = 0; i < n; i++ {
			inv.set(i, col, x.data[i])
		}
	}

	return inv, nil
}
