// Package modular implements the modular arithmetic the Hill cipher is built on:
// non-negative remainders, scalar inverses by direct search, and the inverse of
// an integer matrix modulo N through the adjugate/determinant formula.
//
// Matrices are matrix.Dense values whose entries are whole numbers. The
// determinant comes from matrix.Determinant (cofactor expansion), so inputs are
// expected to be the small keys used by a cipher, not large systems.
package modular
