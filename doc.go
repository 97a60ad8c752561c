// Package laguide is a small linear-algebra playground: row operations,
// Gaussian elimination, determinants and Gram-Schmidt on dense matrices,
// plus a Hill block cipher built on top of them.
//
// 🚀 What is inside?
//
//   - Elementary row ops: swap, scale, add-scaled, all copy-on-write
//   - Echelon forms: restricted forward elimination and full RREF
//   - Linear systems: back-substitution, Solve, Inverse
//   - Determinant by cofactor expansion, Rank
//   - Orthogonalization: Dot, Magnitude, QR (classical Gram-Schmidt)
//   - Modular arithmetic: Mod, ModInverse, key inverses mod n
//   - Hill cipher over " .?A-Z" (29 symbols)
//
// ✨ Why laguide?
//
//   - Readable kernels - every step maps to the textbook algorithm
//   - Value semantics - no exported mutators, inputs are never touched
//   - Sentinel errors - match with errors.Is, never a silent garbled result
//
// Layout:
//
//	matrix/          - Dense type, row ops, elimination, solve, det, QR
//	modular/         - Mod, ModInverse, ModInverseMatrix, ReduceMatrix
//	hill/            - alphabet codec, padding sources, Cipher
//	internal/config/ - TOML config and matrix literals for the CLI
//	cmd/laguide/     - command-line front end
//	examples/        - runnable scenarios
//
// Quick example:
//
//	    ┌1 2┐   ┌H┐   ┌A┐
//	    └3 5┘ · └I┘ = └Y┘   (mod 29)
//
//	go install github.com/katalvlaran/laguide/cmd/laguide@latest
package laguide
