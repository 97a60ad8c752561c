// Package matrix is a small dense linear-algebra kernel with value semantics.
//
// The matrix package provides:
//
//   - Dense, an immutable row-major float64 matrix (vectors are n×1 Dense values).
//   - Elementary row operations (SwapRows, ScaleRow, AddScaledRow) that return a
//     new matrix and leave their input untouched.
//   - Two echelon reducers: ReduceRestricted for well-posed square/augmented
//     systems and ReduceFull for the reduced row-echelon form of any shape.
//   - BackSubstitute, Solve and Inverse built on ReduceRestricted.
//   - Determinant by cofactor expansion and QR by classical Gram-Schmidt.
//
// Every failure is a returned error matching one of the sentinels in errors.go
// via errors.Is; nothing prints diagnostics or silently returns its input.
//
// Cofactor expansion is factorial in the dimension and QR performs no
// re-orthogonalization; both are meant for the small matrices of teaching
// examples and of the hill package.
package matrix
