// SPDX-License-Identifier: MIT

package modular

// Mod returns the non-negative remainder of a modulo n (n > 0).
// Go's % keeps the sign of the dividend; Mod(-1, 29) is 28, not -1.
func Mod(a, n int) int {
	r := a % n
	if r < 0 {
		r += n
	}

	return r
}

// ModInverse finds i in [0, n) with (i*a) mod n == 1 by direct search.
// The second result is false when no such i exists, i.e. gcd(a, n) != 1, or
// when n < 2.
//
// Complexity: O(n).
func ModInverse(a, n int) (int, bool) {
	if n < 2 {
		return 0, false
	}
	a = Mod(a, n) // keeps i*a small and handles negative determinants
	var i int
	for i = 0; i < n; i++ {
		if (i*a)%n == 1 {
			return i, true
		}
	}

	return 0, false
}
