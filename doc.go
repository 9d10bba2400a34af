// Package linvec is a small linear-algebra toolkit built around one type: the
// fixed-length float64 vector.
//
// What is in here?
//
//	vector/  : the Vector interface, Dense and Sparse storages, and every
//	           operation (arithmetic, Dot, Norm, Normalize, MulMatrix, Outer,
//	           Resize, Slice, Swap, comparisons, reductions, binary encoding)
//	matrix/  : the Matrix collaborator and its row-major Dense implementation
//	factory/ : Dense() and Sparse() construction policies
//	persist/ : framed byte and stream serialization, optionally zstd-compressed
//	store/   : named vectors in SQLite (pure Go driver)
//
// Why this shape?
//
//   - Value semantics: every operation returns a new vector; only Set, Swap
//     and Fill write in place, and a failing call never writes at all.
//   - Errors, not panics: bad indices, ranges and lengths come back as
//     package sentinels you match with errors.Is.
//   - Dense operands run through gonum BLAS; Sparse operands only touch
//     their non-zero entries. Both give the same answers.
//
// Quick start:
//
//	f := factory.Dense()
//	a := f.CreateVector([]float64{1, 2})
//	m, _ := f.CreateMatrix([][]float64{{0, 5, 0, 6}, {1, 0, 8, 0}})
//	r, _ := vector.MulMatrix(a, m) // [2, 5, 16, 6]
//	n, _ := vector.Norm(r)
package linvec
