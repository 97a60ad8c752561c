// SPDX-License-Identifier: MIT

package hill

import (
	"errors"
	"fmt"
	"sync"

	"github.com/katalvlaran/laguide/matrix"
	"github.com/katalvlaran/laguide/modular"
)

const (
	opNewCipher = "NewCipher"
	opEncrypt   = "Encrypt"
	opDecrypt   = "Decrypt"
	opNewKey    = "NewKey"
)

// Cipher holds a validated key, its inverse modulo Modulus, and a padding Source.
// A Cipher is safe for concurrent use.
type Cipher struct {
	key *matrix.Dense // reduced mod Modulus
	inv *matrix.Dense // reduced mod Modulus
	n   int

	mu  sync.Mutex // guards src
	src Source
}

// NewKey builds a key matrix from integer rows.
// Errors: matrix.ErrInvalidDimensions for empty or ragged rows.
func NewKey(rows [][]int) (*matrix.Dense, error) {
	fr := make([][]float64, len(rows))
	var i, j int
	for i = range rows {
		fr[i] = make([]float64, len(rows[i]))
		for j = range rows[i] {
			fr[i][j] = float64(rows[i][j])
		}
	}
	k, err := matrix.NewDenseFromRows(fr)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", opNewKey, err)
	}

	return k, nil
}

// NewCipher validates key and precomputes its modular inverse.
// MAIN DESCRIPTION:
//   - key must be square with integer entries and det(key) coprime to Modulus.
//   - Padding comes from CryptoSource unless WithSource or WithSeed says otherwise.
//
// Errors:
//   - matrix.ErrNilMatrix, matrix.ErrShapeMismatch, modular.ErrNotInteger,
//     modular.ErrNoModularInverse.
func NewCipher(key *matrix.Dense, opts ...Option) (*Cipher, error) {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	if err := modular.IsInvertible(key, Modulus); err != nil {
		return nil, fmt.Errorf("%s: %w", opNewCipher, err)
	}
	inv, err := modular.ModInverseMatrix(key, Modulus)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", opNewCipher, err)
	}
	if inv, err = modular.ReduceMatrix(inv, Modulus); err != nil {
		return nil, fmt.Errorf("%s: %w", opNewCipher, err)
	}
	k, err := modular.ReduceMatrix(key, Modulus)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", opNewCipher, err)
	}

	return &Cipher{key: k, inv: inv, n: key.Rows(), src: o.src}, nil
}

// BlockSize returns the key dimension N.
func (c *Cipher) BlockSize() int { return c.n }

// Key returns a copy of the reduced key.
func (c *Cipher) Key() *matrix.Dense { return c.key.Clone() }

// InverseKey returns a copy of the key inverse, reduced modulo Modulus.
func (c *Cipher) InverseKey() *matrix.Dense { return c.inv.Clone() }

// Encrypt transforms text with the key.
// MAIN DESCRIPTION:
//   - Encode (skipped symbols are logged, not fatal), pad to a multiple of N
//     with Source codes, arrange blocks as columns, multiply by the key,
//     reduce mod Modulus, Decode.
//
// Behavior highlights:
//   - len(result) is len(encodable codes) rounded up to a multiple of N.
//   - Empty input (after skipping) yields "".
//   - Skipped symbols do not stop encryption: the result is returned together
//     with a *SymbolError (errors.Is(err, ErrSymbolNotEncodable)).
func (c *Cipher) Encrypt(text string) (string, error) {
	out, err := c.apply(c.key, text)
	if err != nil {
		return out, fmt.Errorf("%s: %w", opEncrypt, err)
	}

	return out, nil
}

// Decrypt is Encrypt with the inverse key. Decrypt(Encrypt(m)) has the
// encodable, upper-cased m as a prefix; padding is left in place.
// Skipped symbols are reported the same way as in Encrypt.
func (c *Cipher) Decrypt(text string) (string, error) {
	out, err := c.apply(c.inv, text)
	if err != nil {
		return out, fmt.Errorf("%s: %w", opDecrypt, err)
	}

	return out, nil
}

// apply runs the block pipeline. A *SymbolError from Encode is carried to the
// caller alongside the output; any other failure yields "".
func (c *Cipher) apply(k *matrix.Dense, text string) (string, error) {
	codes, skipErr := Encode(text)
	if skipErr != nil {
		var se *SymbolError
		if !errors.As(skipErr, &se) {
			return "", skipErr
		}
		log.Warnf("skipping %d unencodable symbol(s): %q", len(se.Symbols), string(se.Symbols))
	}
	codes = c.pad(codes)
	if len(codes) == 0 {
		return "", skipErr
	}

	p, err := toBlocks(codes, c.n)
	if err != nil {
		return "", err
	}
	prod, err := matrix.Mul(k, p)
	if err != nil {
		return "", err
	}
	red, err := modular.ReduceMatrix(prod, Modulus)
	if err != nil {
		return "", err
	}

	return Decode(fromBlocks(red)), skipErr
}

// pad appends Source codes until len(codes) is a multiple of the block size.
func (c *Cipher) pad(codes []int) []int {
	short := (c.n - len(codes)%c.n) % c.n
	if short == 0 {
		return codes
	}
	log.Debugf("padding %d code(s) to block size %d", short, c.n)

	c.mu.Lock()
	defer c.mu.Unlock()
	var i int
	for i = 0; i < short; i++ {
		codes = append(codes, c.src.Intn(Modulus))
	}

	return codes
}

// toBlocks lays codes out as an n×(len/n) matrix whose k-th column is
// codes[k*n : (k+1)*n].
func toBlocks(codes []int, n int) (*matrix.Dense, error) {
	var (
		cols = len(codes) / n
		data = make([]float64, len(codes))
		i, k int
	)
	for k = 0; k < cols; k++ {
		for i = 0; i < n; i++ {
			data[i*cols+k] = float64(codes[k*n+i])
		}
	}

	return matrix.NewDense(n, cols, data)
}

// fromBlocks reads a block matrix back column by column.
func fromBlocks(m *matrix.Dense) []int {
	var (
		rows = m.RawRows()
		n    = m.Rows()
		cols = m.Cols()
		out  = make([]int, n*cols)
		i, k int
	)
	for k = 0; k < cols; k++ {
		for i = 0; i < n; i++ {
			out[k*n+i] = int(rows[i][k])
		}
	}

	return out
}

// Encrypt builds a one-shot Cipher and encrypts text. src may be nil.
// An ineligible key is refused: the original text is returned unchanged
// together with the error, and nothing is encrypted. Skipped symbols in an
// otherwise successful call come back as a *SymbolError next to the output,
// as in (*Cipher).Encrypt.
func Encrypt(text string, key *matrix.Dense, src Source) (string, error) {
	c, err := NewCipher(key, WithSource(src))
	if err != nil {
		log.Warnf("encryption not applied: %v", err)
		return text, err
	}

	return c.Encrypt(text)
}

// Decrypt is the one-shot counterpart of Encrypt with the same refusal policy.
func Decrypt(text string, key *matrix.Dense, src Source) (string, error) {
	c, err := NewCipher(key, WithSource(src))
	if err != nil {
		log.Warnf("decryption not applied: %v", err)
		return text, err
	}

	return c.Decrypt(text)
}
