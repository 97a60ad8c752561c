// SPDX-License-Identifier: MIT
// Package matrix: public API facades.
//
// Purpose:
//   - Thin, intention-revealing aliases over the canonical kernels.
//   - No logic duplication; every facade delegates 1:1.

package matrix

// Product is an alias for Mul: matrix product a × b.
func Product(a, b *Dense) (*Dense, error) { return Mul(a, b) }

// T is an alias for Transpose: returns mᵀ.
func T(m *Dense) (*Dense, error) { return Transpose(m) }

// RREF is an alias for ReduceFullDefault.
func RREF(m *Dense) (*Dense, error) { return ReduceFullDefault(m) }

// IdentityLike returns I with dimension Rows(m); requires square shape.
func IdentityLike(m *Dense) (*Dense, error) {
	if err := ValidateSquare(m); err != nil {
		return nil, matrixErrorf("IdentityLike", err)
	}

	return NewIdentity(m.r)
}

// SolveAll solves A·X = B column by column for an n×k right-hand side B,
// sharing Solve's pivot policy and error surface.
func SolveAll(a, b *Dense) (*Dense, error) {
	if err := ValidateSquare(a); err != nil {
		return nil, matrixErrorf(opSolve, err)
	}
	if err := ValidateNotNil(b); err != nil {
		return nil, matrixErrorf(opSolve, err)
	}
	if b.r != a.r {
		return nil, matrixErrorf(opSolve, ErrShapeMismatch)
	}

	out := newDense(a.r, b.c)
	var j, i int
	for j = 0; j < b.c; j++ {
		x, err := Solve(a, b.col(j))
		if err != nil {
			return nil, err
		}
		for i = 0; i < a.r; i++ {
			out.set(i, j, x.data[i])
		}
	}

	return out, nil
}
