// SPDX-License-Identifier: MIT
// Package matrix provides the structural operations every elimination and
// factorization kernel is composed from: identity/zero constructors, matrix
// product, transpose, horizontal augmentation and column slicing.
//
// Purpose:
//   - Declare operation tags and shared constants for error reporting.
//   - Keep every result freshly allocated; operands are never mutated.

package matrix

import (
	"fmt"
	"math"
)

// ZeroSum is the initial value for dot products and substitution sums.
const ZeroSum = 0.0

// ZeroPivot is the sentinel for detecting a zero pivot in elimination and substitution.
const ZeroPivot = 0.0

// Operation name constants for unified error wrapping.
const (
	opMul         = "Mul"
	opTranspose   = "Transpose"
	opAugment     = "Augment"
	opSliceCols   = "SliceCols"
	opAllClose    = "AllClose"
	opSwapRows    = "SwapRows"
	opScaleRow    = "ScaleRow"
	opAddScaled   = "AddScaledRow"
	opRestricted  = "ReduceRestricted"
	opFull        = "ReduceFull"
	opRank        = "Rank"
	opBackSubst   = "BackSubstitute"
	opSolve       = "Solve"
	opInverse     = "Inverse"
	opDeterminant = "Determinant"
	opMinor       = "Minor"
	opDot         = "Dot"
	opMagnitude   = "Magnitude"
	opQR          = "QR"
)

// matrixErrorf wraps err with an operation tag, preserving the original error via %w.
// Use only when err != nil.
func matrixErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// NewZeros returns a new zero-initialized rows×cols matrix.
func NewZeros(rows, cols int) (*Dense, error) {
	return NewDense(rows, cols, nil)
}

// NewIdentity returns I_n (ones on the diagonal, zeros elsewhere).
// Complexity: O(n^2) zeroing + O(n) diagonal writes.
func NewIdentity(n int) (*Dense, error) {
	if n <= 0 {
		return nil, ErrInvalidDimensions
	}
	I := newDense(n, n)
	var i int
	for i = 0; i < n; i++ {
		I.set(i, i, 1.0)
	}

	return I, nil
}

// Mul returns the matrix product a×b (a.Cols must equal b.Rows).
// Loop order i→k→j keeps the inner walk contiguous in both b and out.
// Complexity: O(r*n*c).
func Mul(a, b *Dense) (*Dense, error) {
	if err := ValidateMulCompatible(a, b); err != nil {
		return nil, matrixErrorf(opMul, err)
	}
	out := newDense(a.r, b.c)
	var (
		i, k, j int
		aik     float64
	)
	for i = 0; i < a.r; i++ {
		for k = 0; k < a.c; k++ {
			aik = a.data[i*a.c+k]
			if aik == 0 {
				continue
			}
			for j = 0; j < b.c; j++ {
				out.data[i*b.c+j] += aik * b.data[k*b.c+j]
			}
		}
	}

	return out, nil
}

// Transpose returns mᵀ. Complexity: O(r*c).
func Transpose(m *Dense) (*Dense, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opTranspose, err)
	}
	out := newDense(m.c, m.r)
	var i, j int
	for i = 0; i < m.r; i++ {
		for j = 0; j < m.c; j++ {
			out.data[j*m.r+i] = m.data[i*m.c+j]
		}
	}

	return out, nil
}

// Augment returns the block matrix [a | b]; both operands need the same row count.
func Augment(a, b *Dense) (*Dense, error) {
	if a == nil || b == nil {
		return nil, matrixErrorf(opAugment, ErrNilMatrix)
	}
	if a.r != b.r {
		return nil, matrixErrorf(opAugment, fmt.Errorf("%d rows vs %d rows: %w", a.r, b.r, ErrShapeMismatch))
	}
	cols := a.c + b.c
	out := newDense(a.r, cols)
	var i int
	for i = 0; i < a.r; i++ {
		copy(out.data[i*cols:i*cols+a.c], a.data[i*a.c:(i+1)*a.c])
		copy(out.data[i*cols+a.c:(i+1)*cols], b.data[i*b.c:(i+1)*b.c])
	}

	return out, nil
}

// SliceCols copies columns [from, to) of m into a new matrix.
func SliceCols(m *Dense, from, to int) (*Dense, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opSliceCols, err)
	}
	if from < 0 || to > m.c || from >= to {
		return nil, matrixErrorf(opSliceCols, fmt.Errorf("[%d,%d) of %d columns: %w", from, to, m.c, ErrOutOfRange))
	}

	return m.sliceCols(from, to), nil
}

// sliceCols is the unchecked variant of SliceCols.
func (m *Dense) sliceCols(from, to int) *Dense {
	w := to - from
	out := newDense(m.r, w)
	var i int
	for i = 0; i < m.r; i++ {
		copy(out.data[i*w:(i+1)*w], m.data[i*m.c+from:i*m.c+to])
	}

	return out
}

// AllClose checks element-wise |a-b| ≤ atol + rtol*|b| for identical shapes.
// NaN never compares equal. rtol and atol are taken by absolute value.
func AllClose(a, b *Dense, rtol, atol float64) (bool, error) {
	if err := ValidateSameShape(a, b); err != nil {
		return false, matrixErrorf(opAllClose, err)
	}
	rtol, atol = math.Abs(rtol), math.Abs(atol)
	var (
		k      int
		av, bv float64
	)
	for k = range a.data {
		av, bv = a.data[k], b.data[k]
		if math.IsNaN(av) || math.IsNaN(bv) {
			return false, nil
		}
		if math.Abs(av-bv) > atol+rtol*math.Abs(bv) {
			return false, nil
		}
	}

	return true, nil
}

// Equal reports exact element-wise equality of two same-shaped matrices.
// Mismatched shapes (or nil operands) compare unequal.
func Equal(a, b *Dense) bool {
	if ValidateSameShape(a, b) != nil {
		return false
	}
	var k int
	for k = range a.data {
		if a.data[k] != b.data[k] {
			return false
		}
	}

	return true
}
