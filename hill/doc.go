// Package hill implements a Hill block cipher over a fixed 29-symbol alphabet
// (space, '.', '?', 'A'..'Z').
//
// Text is upper-cased, mapped to numeric codes, padded with random codes to a
// multiple of the key dimension N, cut into N-code blocks that become the
// columns of a block matrix P, and transformed as key·P mod 29. Decryption
// applies the same pipeline with the modular inverse of the key.
//
// A key is valid when it is a square integer matrix whose determinant is
// invertible modulo 29. Invalid keys are refused with an error; the package
// never returns a garbled result for them.
//
// Padding is appended to the end of the stream and is never stripped:
// decrypting recovers the original message as a prefix, followed by the
// decodable but meaningless pad symbols. No length metadata travels with the
// ciphertext.
package hill
