// SPDX-License-Identifier: MIT

package hill

import (
	"errors"
	"fmt"
)

// ErrSymbolNotEncodable marks characters that are not part of Alphabet.
var ErrSymbolNotEncodable = errors.New("hill: symbol not in alphabet")

// SymbolError lists every character Encode skipped. It unwraps to
// ErrSymbolNotEncodable.
type SymbolError struct {
	Symbols   []rune // skipped characters as they appear in the input
	Positions []int  // rune offsets of Symbols in the input text
}

// Error implements the error interface.
func (e *SymbolError) Error() string {
	return fmt.Sprintf("%v: %q at rune offsets %v", ErrSymbolNotEncodable, string(e.Symbols), e.Positions)
}

// Unwrap exposes ErrSymbolNotEncodable to errors.Is.
func (e *SymbolError) Unwrap() error { return ErrSymbolNotEncodable }
