// SPDX-License-Identifier: MIT

package hill

// Alphabet is the ordered symbol set; a symbol's position is its numeric code.
const Alphabet = " .?ABCDEFGHIJKLMNOPQRSTUVWXYZ"

// Modulus is the alphabet size every code and cipher block is reduced by.
const Modulus = len(Alphabet)

// codeOf maps a symbol to its code. Built once at init and read-only after.
var codeOf = func() map[rune]int {
	m := make(map[rune]int, Modulus)
	for i, r := range Alphabet {
		m[r] = i
	}
	return m
}()
