// SPDX-License-Identifier: MIT

package hill

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/katalvlaran/laguide/modular"
)

// Encode upper-cases text and maps every rune to its Alphabet position.
// MAIN DESCRIPTION:
//   - Each input rune is upper-cased with full Unicode rules, so one rune may
//     expand (e.g. 'ß' becomes "SS") before lookup.
//   - Runes whose upper-case form falls outside Alphabet are skipped; encodable
//     parts of an expansion are kept.
//
// Returns:
//   - The codes of all encodable runes, in order, and nil.
//   - The same codes plus a *SymbolError (wrapping ErrSymbolNotEncodable)
//     when anything was skipped. The codes are usable either way.
//
// Complexity: O(len(text)).
func Encode(text string) ([]int, error) {
	var (
		caser   = cases.Upper(language.Und)
		codes   = make([]int, 0, len(text))
		skipped *SymbolError
		pos     int
		code    int
		ok      bool
		bad     bool
	)
	for _, r := range text {
		bad = false
		for _, u := range caser.String(string(r)) {
			if code, ok = codeOf[u]; ok {
				codes = append(codes, code)
			} else {
				bad = true
			}
		}
		if bad {
			if skipped == nil {
				skipped = &SymbolError{}
			}
			skipped.Symbols = append(skipped.Symbols, r)
			skipped.Positions = append(skipped.Positions, pos)
		}
		pos++
	}
	if skipped != nil {
		return codes, skipped
	}

	return codes, nil
}

// Decode maps codes back to symbols. Every code is reduced modulo Modulus
// first, so any integer decodes.
func Decode(codes []int) string {
	var sb strings.Builder
	sb.Grow(len(codes))
	for _, c := range codes {
		sb.WriteByte(Alphabet[modular.Mod(c, Modulus)])
	}

	return sb.String()
}
