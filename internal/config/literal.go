// SPDX-License-Identifier: MIT

package config

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/katalvlaran/laguide/matrix"
)

// ErrBadLiteral is returned for a malformed matrix literal.
var ErrBadLiteral = errors.New("config: malformed matrix literal")

// ParseMatrix parses rows separated by ';' and entries separated by ','.
// Whitespace around entries is ignored: "1, 2; 3, 5" is the 2×2 matrix
// [[1 2] [3 5]]. Ragged rows surface as matrix.ErrInvalidDimensions.
func ParseMatrix(s string) (*matrix.Dense, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, fmt.Errorf("empty literal: %w", ErrBadLiteral)
	}

	var (
		rowsText = strings.Split(s, ";")
		rows     = make([][]float64, 0, len(rowsText))
	)
	for i, rt := range rowsText {
		fields := strings.Split(rt, ",")
		row := make([]float64, 0, len(fields))
		for j, f := range fields {
			v, err := strconv.ParseFloat(strings.TrimSpace(f), 64)
			if err != nil {
				return nil, fmt.Errorf("entry (%d,%d) %q: %w", i, j, strings.TrimSpace(f), ErrBadLiteral)
			}
			row = append(row, v)
		}
		rows = append(rows, row)
	}

	return matrix.NewDenseFromRows(rows)
}

// ParseIntMatrix is ParseMatrix for integer-only literals, as used for keys.
func ParseIntMatrix(s string) ([][]int, error) {
	m, err := ParseMatrix(s)
	if err != nil {
		return nil, err
	}
	raw := m.RawRows()
	out := make([][]int, len(raw))
	for i := range raw {
		out[i] = make([]int, len(raw[i]))
		for j, v := range raw[i] {
			if v != float64(int(v)) {
				return nil, fmt.Errorf("entry (%d,%d) = %g is not an integer: %w", i, j, v, ErrBadLiteral)
			}
			out[i][j] = int(v)
		}
	}

	return out, nil
}
