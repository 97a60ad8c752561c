package hill_test

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/laguide/hill"
	"github.com/katalvlaran/laguide/matrix"
	"github.com/katalvlaran/laguide/modular"
)

// fixedSource always pads with the same code.
type fixedSource int

func (f fixedSource) Intn(n int) int { return int(f) % n }

func mustKey(t *testing.T, rows [][]int) *matrix.Dense {
	t.Helper()
	k, err := hill.NewKey(rows)
	require.NoError(t, err)
	return k
}

func TestAlphabet(t *testing.T) {
	require.Equal(t, 29, hill.Modulus)
	require.Equal(t, byte(' '), hill.Alphabet[0])
	require.Equal(t, byte('A'), hill.Alphabet[3])
	require.Equal(t, byte('Z'), hill.Alphabet[28])
}

func TestEncode_UpperCasesAndMaps(t *testing.T) {
	codes, err := hill.Encode("hi .?z")
	require.NoError(t, err)
	require.Equal(t, []int{10, 11, 0, 1, 2, 28}, codes)
}

func TestEncode_FullUnicodeUpper(t *testing.T) {
	codes, err := hill.Encode("straße")
	require.NoError(t, err)
	require.Equal(t, "STRASSE", hill.Decode(codes))
}

func TestEncode_ReportsSkippedSymbols(t *testing.T) {
	codes, err := hill.Encode("Hi!1")
	require.ErrorIs(t, err, hill.ErrSymbolNotEncodable)

	var se *hill.SymbolError
	require.True(t, errors.As(err, &se))
	require.Equal(t, []rune{'!', '1'}, se.Symbols)
	require.Equal(t, []int{2, 3}, se.Positions)
	require.Equal(t, []int{10, 11}, codes)
}

func TestEncode_PositionsReferToInput(t *testing.T) {
	// 'ß' expands to "SS"; offsets still count runes of the input.
	codes, err := hill.Encode("ßh!é")
	require.Equal(t, "SSH", hill.Decode(codes))

	var se *hill.SymbolError
	require.True(t, errors.As(err, &se))
	require.Equal(t, []rune{'!', 'é'}, se.Symbols)
	require.Equal(t, []int{2, 3}, se.Positions)
}

func TestDecode_ReducesCodes(t *testing.T) {
	require.Equal(t, " .?A?Z", hill.Decode([]int{0, 1, 2, 3, 31, -1}))
	require.Equal(t, "", hill.Decode(nil))
}

func TestCipher_KnownVectors(t *testing.T) {
	c, err := hill.NewCipher(mustKey(t, [][]int{{1, 2}, {3, 5}}))
	require.NoError(t, err)
	require.Equal(t, 2, c.BlockSize())

	got, err := c.Encrypt("hi")
	require.NoError(t, err)
	require.Equal(t, "AY", got)

	got, err = c.Encrypt("HELLO WORLD?")
	require.NoError(t, err)
	require.Equal(t, "VEKWOT.MQLHZ", got)

	c3, err := hill.NewCipher(mustKey(t, [][]int{{2, 4, 5}, {9, 2, 1}, {3, 17, 7}}))
	require.NoError(t, err)
	got, err = c3.Encrypt("ATTACK AT DAWN.")
	require.NoError(t, err)
	require.Equal(t, ".DMBSIDZ?HMEAXD", got)
}

func TestCipher_InverseKeyReduced(t *testing.T) {
	c, err := hill.NewCipher(mustKey(t, [][]int{{1, 2}, {3, 5}}))
	require.NoError(t, err)
	require.Equal(t, [][]float64{{24, 2}, {3, 28}}, c.InverseKey().RawRows())
}

func TestCipher_RoundTripNoPadding(t *testing.T) {
	c, err := hill.NewCipher(mustKey(t, [][]int{{1, 2}, {3, 5}}))
	require.NoError(t, err)

	for _, msg := range []string{"HELLO WORLD?", "AB", "  ..??ZZ"} {
		enc, err := c.Encrypt(msg)
		require.NoError(t, err)
		require.Len(t, enc, len(msg))
		dec, err := c.Decrypt(enc)
		require.NoError(t, err)
		require.Equal(t, msg, dec)
	}
}

func TestCipher_PaddingIsPrefixPreserving(t *testing.T) {
	c, err := hill.NewCipher(mustKey(t, [][]int{{2, 4, 5}, {9, 2, 1}, {3, 17, 7}}), hill.WithSource(fixedSource(0)))
	require.NoError(t, err)

	enc, err := c.Encrypt("hello")
	require.NoError(t, err)
	require.Len(t, enc, 6)

	dec, err := c.Decrypt(enc)
	require.NoError(t, err)
	require.Equal(t, "HELLO ", dec)
}

func TestCipher_SeededDeterminism(t *testing.T) {
	key := mustKey(t, [][]int{{3, 3}, {2, 5}})
	a, err := hill.NewCipher(key, hill.WithSeed(42))
	require.NoError(t, err)
	b, err := hill.NewCipher(key, hill.WithSeed(42))
	require.NoError(t, err)

	for _, msg := range []string{"ODD", "A", "SEVEN.."} {
		ea, err := a.Encrypt(msg)
		require.NoError(t, err)
		eb, err := b.Encrypt(msg)
		require.NoError(t, err)
		require.Equal(t, ea, eb)

		dec, err := a.Decrypt(ea)
		require.NoError(t, err)
		require.True(t, strings.HasPrefix(dec, msg))
		require.Len(t, dec, len(msg)+1)
	}
}

func TestCipher_DefaultSourceRoundTrip(t *testing.T) {
	c, err := hill.NewCipher(mustKey(t, [][]int{{1, 2}, {3, 5}}))
	require.NoError(t, err)

	enc, err := c.Encrypt("ABC")
	require.NoError(t, err)
	dec, err := c.Decrypt(enc)
	require.NoError(t, err)
	require.True(t, strings.HasPrefix(dec, "ABC"))
	require.Len(t, dec, 4)
}

func TestCipher_SkipsUnencodable(t *testing.T) {
	key := mustKey(t, [][]int{{1, 2}, {3, 5}})
	c, err := hill.NewCipher(key)
	require.NoError(t, err)

	enc, err := c.Encrypt("h!i")
	require.ErrorIs(t, err, hill.ErrSymbolNotEncodable)
	require.Equal(t, "AY", enc)

	var se *hill.SymbolError
	require.True(t, errors.As(err, &se))
	require.Equal(t, []rune{'!'}, se.Symbols)
	require.Equal(t, []int{1}, se.Positions)

	dec, err := c.Decrypt("A#Y")
	require.ErrorIs(t, err, hill.ErrSymbolNotEncodable)
	require.Equal(t, "HI", dec)

	// The one-shot helpers report the skip next to the ciphertext.
	enc, err = hill.Encrypt("h!i", key, nil)
	require.ErrorIs(t, err, hill.ErrSymbolNotEncodable)
	require.Equal(t, "AY", enc)
}

func TestCipher_EmptyText(t *testing.T) {
	c, err := hill.NewCipher(mustKey(t, [][]int{{1, 2}, {3, 5}}))
	require.NoError(t, err)

	enc, err := c.Encrypt("")
	require.NoError(t, err)
	require.Equal(t, "", enc)
	enc, err = c.Encrypt("!!")
	require.ErrorIs(t, err, hill.ErrSymbolNotEncodable)
	require.Equal(t, "", enc)
}

func TestNewCipher_RejectsBadKeys(t *testing.T) {
	_, err := hill.NewCipher(mustKey(t, [][]int{{1, 2}, {2, 4}}))
	require.ErrorIs(t, err, modular.ErrNoModularInverse)

	_, err = hill.NewCipher(mustKey(t, [][]int{{1, 2, 3}, {4, 5, 6}}))
	require.ErrorIs(t, err, matrix.ErrShapeMismatch)

	frac, err := matrix.NewDenseFromRows([][]float64{{1.5, 2}, {3, 5}})
	require.NoError(t, err)
	_, err = hill.NewCipher(frac)
	require.ErrorIs(t, err, modular.ErrNotInteger)

	_, err = hill.NewCipher(nil)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)
}

func TestEncrypt_RefusalReturnsOriginal(t *testing.T) {
	bad := mustKey(t, [][]int{{1, 2}, {2, 4}})

	out, err := hill.Encrypt("hello", bad, nil)
	require.ErrorIs(t, err, modular.ErrNoModularInverse)
	require.Equal(t, "hello", out)

	out, err = hill.Decrypt("hello", bad, nil)
	require.ErrorIs(t, err, modular.ErrNoModularInverse)
	require.Equal(t, "hello", out)
}

func TestEncryptDecrypt_OneShot(t *testing.T) {
	key := mustKey(t, [][]int{{1, 2}, {3, 5}})

	enc, err := hill.Encrypt("hi", key, nil)
	require.NoError(t, err)
	require.Equal(t, "AY", enc)

	dec, err := hill.Decrypt(enc, key, hill.NewSeededSource(7))
	require.NoError(t, err)
	require.Equal(t, "HI", dec)
}

func TestNewSeededSource_ZeroSeed(t *testing.T) {
	a := hill.NewSeededSource(0)
	b := hill.NewSeededSource(1)
	var i int
	for i = 0; i < 16; i++ {
		require.Equal(t, a.Intn(hill.Modulus), b.Intn(hill.Modulus))
	}
}

func TestCryptoSource_InRange(t *testing.T) {
	var (
		src hill.CryptoSource
		i   int
		v   int
	)
	for i = 0; i < 200; i++ {
		v = src.Intn(hill.Modulus)
		require.GreaterOrEqual(t, v, 0)
		require.Less(t, v, hill.Modulus)
	}
	require.Panics(t, func() { src.Intn(0) })
}

func TestNewKey_Ragged(t *testing.T) {
	_, err := hill.NewKey([][]int{{1, 2}, {3}})
	require.ErrorIs(t, err, matrix.ErrInvalidDimensions)
}
