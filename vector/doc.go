// Package vector implements fixed-length float64 vectors with value-semantics
// arithmetic, vector × matrix products and structural reshaping.
//
// What is in here?
//
//	Vector is a small storage interface (Len, At, Set, Clone, Blank, Like).
//	Two storages implement it:
//	  • Dense : one contiguous []float64, fast paths through gonum BLAS
//	  • Sparse: sorted (index, value) pairs, zeros are never stored
//	Every operation is a package function written against the interface,
//	so the storages are interchangeable; results keep the storage kind of
//	the (left) operand.
//
// Operations:
//
//	arithmetic : AddScalar, Add, SubScalar, Sub, Scale, DivScalar, Hadamard
//	derived    : Dot, Outer, MulMatrix, Norm, Normalize
//	structural : Resize, Slice, SliceLeft, SliceRight, Swap (in place)
//	compare    : Equal, EqualApprox (WithEpsilon, default 1e-10)
//	reductions : Sum, Product, Max, Min, Density, NonZeroDo, Transform, Fill
//	encoding   : Encode, Decode, MarshalBinary, UnmarshalBinary
//
// Only Set, Swap and Fill mutate; everything else allocates a new vector
// with independent storage. Failing calls never mutate. Division by zero
// and other IEEE special values are results, not errors.
//
// Errors are package sentinels (ErrOutOfRange, ErrDimensionMismatch,
// ErrInvalidRange, ErrInvalidArgument, ...) matched with errors.Is.
//
// Vectors are not safe for concurrent mutation; lock externally when an
// instance is shared.
//
//	v := vector.NewDenseFrom([]float64{2, 3, 5, 7})
//	w := vector.NewDenseFrom([]float64{11, 13, 17, 19})
//	dot, _ := vector.Dot(v, w) // 279
package vector
