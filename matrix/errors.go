// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set.
// This file defines ONLY package-level sentinel errors and the typed PivotError.
// All kernels MUST return these sentinels (optionally wrapped with an operation
// tag) and tests MUST check them via errors.Is. No kernel panics on a
// user-triggered error condition.

package matrix

import (
	"errors"
	"fmt"
)

// NOTE ON NAMING & PREFIXING
// --------------------------
// Every message is prefixed with "matrix: ..." for easy grepping across logs.
// Kernels wrap with matrixErrorf(op, err); callers still use errors.Is.
//
// ERROR PRIORITY (checked in this order by every kernel):
// nil -> shape/index -> tolerance -> numeric (singular pivot).

var (
	// ErrNilMatrix indicates that a nil *Dense (receiver or argument) was used.
	ErrNilMatrix = errors.New("matrix: nil matrix")

	// ErrInvalidDimensions indicates that requested matrix dimensions are non-positive
	// or that the supplied data does not fill the requested shape.
	ErrInvalidDimensions = errors.New("matrix: dimensions must be > 0")

	// ErrOutOfRange indicates that a row or column index is outside valid bounds.
	// Public indexers and row operations MUST return this, not panic.
	ErrOutOfRange = errors.New("matrix: index out of range")

	// ErrShapeMismatch covers both "square matrix required" and incompatible
	// operand dimensions (Mul, Augment, Dot, BackSubstitute, ...).
	ErrShapeMismatch = errors.New("matrix: shape mismatch")

	// ErrSingularPivot is returned when a zero pivot is met where elimination or
	// back-substitution needs a nonzero one.
	ErrSingularPivot = errors.New("matrix: zero pivot")

	// ErrNaNInf signals a NaN or ±Inf value at construction time.
	ErrNaNInf = errors.New("matrix: NaN or Inf encountered")

	// ErrBadTolerance signals a negative or non-finite rounding tolerance.
	ErrBadTolerance = errors.New("matrix: tolerance must be finite and >= 0")
)

// PivotError reports the first column for which an elimination kernel could
// not find a usable pivot. It unwraps to ErrSingularPivot.
type PivotError struct {
	Op  string // kernel that raised the condition
	Col int    // zero-based column left unreduced
}

// Error implements the error interface.
func (e *PivotError) Error() string {
	return fmt.Sprintf("%s: no nonzero pivot in column %d: %v", e.Op, e.Col, ErrSingularPivot)
}

// Unwrap exposes ErrSingularPivot to errors.Is.
func (e *PivotError) Unwrap() error { return ErrSingularPivot }
