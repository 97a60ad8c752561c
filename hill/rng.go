// SPDX-License-Identifier: MIT

package hill

import (
	crand "crypto/rand"
	"math/big"
	"math/rand"
)

// Source supplies padding codes. Intn must return a value in [0, n).
// *math/rand.Rand satisfies it.
//
// Implementations need not be goroutine-safe; a Cipher serializes its calls.
type Source interface {
	Intn(n int) int
}

// defaultSeed replaces a zero seed so WithSeed(0) stays reproducible.
const defaultSeed int64 = 1

// NewSeededSource returns a deterministic Source.
// Policy: seed == 0 uses defaultSeed; any other seed is used verbatim.
func NewSeededSource(seed int64) Source {
	if seed == 0 {
		seed = defaultSeed
	}

	return rand.New(rand.NewSource(seed))
}

// CryptoSource draws padding from crypto/rand. It is the default Source and
// is safe for concurrent use.
type CryptoSource struct{}

// Intn returns a uniform value in [0, n). It panics if n <= 0 or the
// system randomness source fails.
func (CryptoSource) Intn(n int) int {
	if n <= 0 {
		panic("hill: CryptoSource.Intn: non-positive bound")
	}
	v, err := crand.Int(crand.Reader, big.NewInt(int64(n)))
	if err != nil {
		panic("hill: CryptoSource.Intn: " + err.Error())
	}

	return int(v.Int64())
}
