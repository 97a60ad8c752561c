// SPDX-License-Identifier: MIT

// Package matrix - Dense storage (row-major) & safe accessors.
//
// Purpose:
//   - Provide a cache-friendly row-major buffer with the explicit index formula i*cols + j.
//   - Guarantee value semantics: constructors copy caller data, no exported mutator
//     exists, and every kernel allocates a fresh result.
//   - Guarantee safety at the public surface: At returns errors instead of panicking.
//
// Complexity quicksheet:
//   - NewDense / NewDenseFromRows: O(r*c); At: O(1); Clone: O(r*c); Row/Col: O(c)/O(r).

package matrix

import (
	"fmt"
	"math"
	"strings"
)

// ---------- error context tags ----------

const (
	ctxAt  = "At"  // method tag used in error wrappers
	ctxRow = "Row" // method tag used in error wrappers
	ctxCol = "Col" // method tag used in error wrappers
)

// ---------- Formatting literals ----------
const (
	_fmtRowOpen  = "["
	_fmtRowClose = "]\n"
	_fmtSep      = ", "
)

// denseErrorf wraps an error with a uniform Dense context and callsite indices.
// Format: "Dense.<method>(row,col): %w"; the sentinel survives for errors.Is.
func denseErrorf(method string, row, col int, err error) error {
	return fmt.Errorf("Dense.%s(%d,%d): %w", method, row, col, err)
}

// Dense is an immutable row-major matrix of float64 values.
//   - r,c hold dimensions (rows, cols), both > 0.
//   - data is a flat buffer of length r*c in row-major order (offset = i*c + j).
//
// A Dense never shares its buffer with a caller or with another Dense.
type Dense struct {
	r, c int       // row and column counts
	data []float64 // contiguous row-major storage (len == r*c)
}

// Compile-time assertion for fmt.Stringer conformance.
var _ fmt.Stringer = (*Dense)(nil)

// NewDense creates an r×c matrix from row-major data.
// MAIN DESCRIPTION:
//   - Public constructor with strict shape and numeric validation.
//
// Implementation:
//   - Stage 1: validate rows>0 && cols>0 and len(data) ∈ {0, rows*cols}.
//   - Stage 2: reject NaN/±Inf entries.
//   - Stage 3: copy data into a fresh buffer (nil/empty data => zero matrix).
//
// Errors:
//   - ErrInvalidDimensions (shape contract violation or wrong data length).
//   - ErrNaNInf (non-finite entry).
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func NewDense(rows, cols int, data []float64) (*Dense, error) {
	if rows <= 0 || cols <= 0 {
		return nil, ErrInvalidDimensions
	}
	if len(data) != 0 && len(data) != rows*cols {
		return nil, fmt.Errorf("NewDense: want %d values, got %d: %w", rows*cols, len(data), ErrInvalidDimensions)
	}
	var k int
	for k = range data {
		if math.IsNaN(data[k]) || math.IsInf(data[k], 0) {
			return nil, denseErrorf("New", k/cols, k%cols, ErrNaNInf)
		}
	}

	m := newDense(rows, cols)
	copy(m.data, data) // deep copy; caller keeps ownership of data

	return m, nil
}

// NewDenseFromRows builds a matrix from a rectangular [][]float64.
// Every row must have the same non-zero length.
// Complexity: O(r*c).
func NewDenseFromRows(rows [][]float64) (*Dense, error) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, ErrInvalidDimensions
	}
	cols := len(rows[0])
	flat := make([]float64, 0, len(rows)*cols)
	var i int
	for i = range rows {
		if len(rows[i]) != cols {
			return nil, fmt.Errorf("NewDenseFromRows: row %d has %d values, want %d: %w",
				i, len(rows[i]), cols, ErrInvalidDimensions)
		}
		flat = append(flat, rows[i]...)
	}

	return NewDense(len(rows), cols, flat)
}

// NewVector returns the (n,1) column vector holding values.
func NewVector(values []float64) (*Dense, error) {
	return NewDense(len(values), 1, values)
}

// newDense allocates a zero r×c matrix. Callers guarantee r,c > 0.
func newDense(rows, cols int) *Dense {
	return &Dense{r: rows, c: cols, data: make([]float64, rows*cols)}
}

// Rows returns the row count. Complexity: O(1).
func (m *Dense) Rows() int { return m.r }

// Cols returns the column count. Complexity: O(1).
func (m *Dense) Cols() int { return m.c }

// Shape packs Rows() and Cols() into a single call for convenience.
func (m *Dense) Shape() (rows, cols int) { return m.r, m.c }

// IsSquare reports whether Rows() == Cols().
func (m *Dense) IsSquare() bool { return m.r == m.c }

// At returns the value at (row, col) or ErrOutOfRange.
// Never panics on out-of-range; returns a wrapped sentinel.
// Complexity: O(1).
func (m *Dense) At(row, col int) (float64, error) {
	if row < 0 || row >= m.r || col < 0 || col >= m.c {
		return 0, denseErrorf(ctxAt, row, col, ErrOutOfRange)
	}

	return m.data[row*m.c+col], nil
}

// at is the unchecked in-package reader for hot loops.
func (m *Dense) at(row, col int) float64 { return m.data[row*m.c+col] }

// set is the unchecked in-package writer; only used on freshly allocated results.
func (m *Dense) set(row, col int, v float64) { m.data[row*m.c+col] = v }

// Row returns a copy of row i.
func (m *Dense) Row(i int) ([]float64, error) {
	if i < 0 || i >= m.r {
		return nil, denseErrorf(ctxRow, i, 0, ErrOutOfRange)
	}
	out := make([]float64, m.c)
	copy(out, m.data[i*m.c:(i+1)*m.c])

	return out, nil
}

// Col returns column j as a fresh (rows,1) vector.
func (m *Dense) Col(j int) (*Dense, error) {
	if j < 0 || j >= m.c {
		return nil, denseErrorf(ctxCol, 0, j, ErrOutOfRange)
	}

	return m.col(j), nil
}

// col is the unchecked variant of Col.
func (m *Dense) col(j int) *Dense {
	v := newDense(m.r, 1)
	var i int
	for i = 0; i < m.r; i++ {
		v.data[i] = m.data[i*m.c+j]
	}

	return v
}

// RawRows copies the matrix into a freshly allocated [][]float64.
func (m *Dense) RawRows() [][]float64 {
	out := make([][]float64, m.r)
	var i int
	for i = 0; i < m.r; i++ {
		out[i] = make([]float64, m.c)
		copy(out[i], m.data[i*m.c:(i+1)*m.c])
	}

	return out
}

// Clone returns a deep copy (new buffer).
// Complexity: O(r*c).
func (m *Dense) Clone() *Dense {
	cp := make([]float64, len(m.data))
	copy(cp, m.data)

	return &Dense{r: m.r, c: m.c, data: cp}
}

// String implements fmt.Stringer; one bracketed line per row.
func (m *Dense) String() string {
	var sb strings.Builder
	var i, j int
	for i = 0; i < m.r; i++ {
		sb.WriteString(_fmtRowOpen)
		for j = 0; j < m.c; j++ {
			if j > 0 {
				sb.WriteString(_fmtSep)
			}
			sb.WriteString(fmt.Sprintf("%g", m.data[i*m.c+j]))
		}
		sb.WriteString(_fmtRowClose)
	}

	return sb.String()
}
