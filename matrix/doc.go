// Package matrix provides the rectangular float64 grid consumed by the vector
// core.
//
// The matrix package provides:
//
//   - Matrix, a small interface (Rows, Cols, At, Set, Clone) that is all the
//     vector package needs for row-vector × matrix products.
//   - Dense, a row-major implementation whose flat buffer is exposed to gonum
//     BLAS through RawMatrix, and which is the result type of vector.Outer.
//   - Equal and AllClose for exact and tolerant comparisons.
//
// Zero-area shapes are legal so the outer product of an empty vector is a
// well-formed 0×n matrix.
//
// See the examples in this package and in vector for usage patterns.
package matrix
