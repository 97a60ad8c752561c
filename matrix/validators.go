// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//  - Provide a single, canonical source of truth for common validation checks.
//  - Keep kernels minimal by delegating nil/shape/index checks here.
//  - Return sentinel errors tagged with the validator name so call sites can wrap uniformly.
//
// Note:
//  - Composite validators follow a fixed sequence (NotNil → Shape).
//  - All checks are O(1) and allocate nothing on the success path.

package matrix

import (
	"fmt"
	"math"
)

// validatorErrorf wraps an underlying error with the given validator tag.
func validatorErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// ValidateNotNil ensures the matrix reference is non-nil.
// Returns ErrNilMatrix if m == nil.
func ValidateNotNil(m *Dense) error {
	if m == nil {
		return validatorErrorf("ValidateNotNil", ErrNilMatrix)
	}

	return nil
}

// ValidateSquare checks that m is non-nil and square (Rows == Cols).
// Errors: ErrNilMatrix, ErrShapeMismatch.
func ValidateSquare(m *Dense) error {
	if err := ValidateNotNil(m); err != nil {
		return err
	}
	if m.r != m.c {
		return validatorErrorf(fmt.Sprintf("ValidateSquare: %dx%d", m.r, m.c), ErrShapeMismatch)
	}

	return nil
}

// ValidateSameShape ensures a and b are non-nil with equal dimensions.
func ValidateSameShape(a, b *Dense) error {
	if a == nil || b == nil {
		return validatorErrorf("ValidateSameShape", ErrNilMatrix)
	}
	if a.r != b.r || a.c != b.c {
		return validatorErrorf(fmt.Sprintf("ValidateSameShape: %dx%d vs %dx%d", a.r, a.c, b.r, b.c), ErrShapeMismatch)
	}

	return nil
}

// ValidateMulCompatible ensures a.Cols == b.Rows.
func ValidateMulCompatible(a, b *Dense) error {
	if a == nil || b == nil {
		return validatorErrorf("ValidateMulCompatible", ErrNilMatrix)
	}
	if a.c != b.r {
		return validatorErrorf(fmt.Sprintf("ValidateMulCompatible: %dx%d · %dx%d", a.r, a.c, b.r, b.c), ErrShapeMismatch)
	}

	return nil
}

// ValidateColumnVector ensures v is a non-nil (n,1) matrix.
// n < 0 skips the length check.
func ValidateColumnVector(v *Dense, n int) error {
	if v == nil {
		return validatorErrorf("ValidateColumnVector", ErrNilMatrix)
	}
	if v.c != 1 || (n >= 0 && v.r != n) {
		return validatorErrorf(fmt.Sprintf("ValidateColumnVector: %dx%d, want %dx1", v.r, v.c, n), ErrShapeMismatch)
	}

	return nil
}

// validateRowIndex checks 0 ≤ k < m.Rows(). Assumes m != nil.
func validateRowIndex(m *Dense, k int) error {
	if k < 0 || k >= m.r {
		return validatorErrorf(fmt.Sprintf("row %d of %d", k, m.r), ErrOutOfRange)
	}

	return nil
}

// ValidateTolerance ensures tol is finite and non-negative.
func ValidateTolerance(tol float64) error {
	if math.IsNaN(tol) || math.IsInf(tol, 0) || tol < 0 {
		return validatorErrorf("ValidateTolerance", ErrBadTolerance)
	}

	return nil
}
