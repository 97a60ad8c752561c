// SPDX-License-Identifier: MIT

package modular

import (
	"errors"
	"fmt"
)

var (
	// ErrNoModularInverse is returned when a scalar (typically a determinant)
	// shares a factor with the modulus and so has no inverse.
	ErrNoModularInverse = errors.New("modular: no modular inverse")

	// ErrNotInteger is returned when a matrix entry is not a whole number.
	ErrNotInteger = errors.New("modular: matrix entry is not an integer")

	// ErrBadModulus is returned for a modulus below 2.
	ErrBadModulus = errors.New("modular: modulus must be >= 2")
)

// Operation tags.
const (
	opInverseMatrix = "ModInverseMatrix"
	opReduce        = "ReduceMatrix"
	opInvertible    = "IsInvertible"
)

// modErrorf wraps err with an operation tag (same shape as matrix.matrixErrorf).
func modErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}
