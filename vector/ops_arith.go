// SPDX-License-Identifier: MIT
// Package: vector
//
// Purpose:
//   - Element-wise and scalar arithmetic, inner product, norm, normalization.
//   - Every function returns a NEW vector of the receiver's storage kind;
//     operands are never mutated.
//
// Design:
//   - Dense fast-paths hand the flat buffers to gonum BLAS (Daxpy, Dscal,
//     Ddot, Dnrm2). Anything else goes through the Vector interface.
//   - Unary maps use the non-zero iteration whenever f(0) == 0, so Sparse
//     stays O(nnz) without changing IEEE results.
//
// Determinism & Performance:
//   - Fixed ascending index order; O(n) time and space (O(nnz) sparse-aware).
//   - IEEE special values propagate (x/0 gives ±Inf or NaN, never an error).

package vector

import (
	"gonum.org/v1/gonum/blas/blas64"
)

// ---------- private kernels ----------

// mapElems returns out[i] = f(v[i]) with the storage kind of v.
// v must be non-nil.
func mapElems(v Vector, f func(x float64) float64) Vector {
	// Dense fast-path: one flat loop.
	if d, ok := v.(*Dense); ok {
		out := make([]float64, len(d.data))
		for i, x := range d.data {
			out[i] = f(x)
		}
		return &Dense{data: out}
	}

	out := v.Blank()
	if f0 := f(0); f0 == 0 {
		// Zeros map to zero: only stored entries need work.
		nonZeroDo(v, func(i int, x float64) bool {
			_ = out.Set(i, f(x)) // i < Len by construction
			return true
		})
		return out
	}

	n := v.Len()
	for i := 0; i < n; i++ {
		x, _ := v.At(i)
		_ = out.Set(i, f(x))
	}

	return out
}

// zipElems returns out[i] = f(a[i], b[i]) with the storage kind of a.
// a and b must be non-nil and of equal length.
func zipElems(a, b Vector, f func(x, y float64) float64) Vector {
	if da, ok := a.(*Dense); ok {
		if db, ok := b.(*Dense); ok {
			out := make([]float64, len(da.data))
			for i := range da.data {
				out[i] = f(da.data[i], db.data[i])
			}
			return &Dense{data: out}
		}
	}

	out := a.Blank()
	n := a.Len()
	for i := 0; i < n; i++ {
		x, _ := a.At(i)
		y, _ := b.At(i)
		_ = out.Set(i, f(x, y))
	}

	return out
}

// axpyDense returns a + alpha*b for two Dense operands of equal length via Daxpy.
func axpyDense(alpha float64, a, b *Dense) *Dense {
	out := NewDenseFrom(a.data)
	if len(out.data) > 0 {
		blas64.Axpy(alpha, b.RawVector(), out.RawVector())
	}

	return out
}

// ---------- scalar arithmetic ----------

// AddScalar returns v[i] + s for every i.
// Errors: ErrNilVector. Complexity: O(n).
func AddScalar(v Vector, s float64) (Vector, error) {
	if err := validateNotNil(v); err != nil {
		return nil, vectorErrorf("AddScalar", err)
	}

	return mapElems(v, func(x float64) float64 { return x + s }), nil
}

// SubScalar returns v[i] - s for every i.
// Errors: ErrNilVector. Complexity: O(n).
func SubScalar(v Vector, s float64) (Vector, error) {
	if err := validateNotNil(v); err != nil {
		return nil, vectorErrorf("SubScalar", err)
	}

	return mapElems(v, func(x float64) float64 { return x - s }), nil
}

// Scale returns v[i] * s for every i (the scalar form of "multiply").
// MAIN DESCRIPTION:
//   - Dense: copy then Dscal. Sparse: O(nnz) when s is finite.
//
// Behavior highlights:
//   - s == 0 bypasses Dscal: BLAS zero-fills on alpha==0, which would hide
//     0*Inf = NaN. The plain loop keeps IEEE results.
//
// Errors: ErrNilVector. Complexity: O(n).
func Scale(v Vector, s float64) (Vector, error) {
	if err := validateNotNil(v); err != nil {
		return nil, vectorErrorf("Scale", err)
	}
	if d, ok := v.(*Dense); ok && s != 0 {
		out := NewDenseFrom(d.data)
		if len(out.data) > 0 {
			blas64.Scal(s, out.RawVector())
		}
		return out, nil
	}

	return mapElems(v, func(x float64) float64 { return x * s }), nil
}

// DivScalar returns v[i] / s for every i.
// Division by zero follows IEEE 754 (±Inf, NaN); it is not an error.
// Errors: ErrNilVector. Complexity: O(n).
func DivScalar(v Vector, s float64) (Vector, error) {
	if err := validateNotNil(v); err != nil {
		return nil, vectorErrorf("DivScalar", err)
	}

	return mapElems(v, func(x float64) float64 { return x / s }), nil
}

// ---------- element-wise vector arithmetic ----------

// Add returns a[i] + b[i] for every i.
// Errors: ErrNilVector, ErrDimensionMismatch. Complexity: O(n).
func Add(a, b Vector) (Vector, error) {
	if err := validateSameLen(a, b); err != nil {
		return nil, vectorErrorf("Add", err)
	}
	if da, ok := a.(*Dense); ok {
		if db, ok := b.(*Dense); ok {
			return axpyDense(1, da, db), nil
		}
	}

	return zipElems(a, b, func(x, y float64) float64 { return x + y }), nil
}

// Sub returns a[i] - b[i] for every i.
// Errors: ErrNilVector, ErrDimensionMismatch. Complexity: O(n).
func Sub(a, b Vector) (Vector, error) {
	if err := validateSameLen(a, b); err != nil {
		return nil, vectorErrorf("Sub", err)
	}
	if da, ok := a.(*Dense); ok {
		if db, ok := b.(*Dense); ok {
			return axpyDense(-1, da, db), nil
		}
	}

	return zipElems(a, b, func(x, y float64) float64 { return x - y }), nil
}

// Hadamard returns the element-wise product a[i] * b[i].
// Errors: ErrNilVector, ErrDimensionMismatch. Complexity: O(n).
func Hadamard(a, b Vector) (Vector, error) {
	if err := validateSameLen(a, b); err != nil {
		return nil, vectorErrorf("Hadamard", err)
	}

	return zipElems(a, b, func(x, y float64) float64 { return x * y }), nil
}

// ---------- derived scalars ----------

// Dot returns Σ a[i]*b[i] (the inner product).
// Dense pairs use Ddot; other storage sums in ascending index order.
// Errors: ErrNilVector, ErrDimensionMismatch. Complexity: O(n).
func Dot(a, b Vector) (float64, error) {
	if err := validateSameLen(a, b); err != nil {
		return 0, vectorErrorf("Dot", err)
	}
	if da, ok := a.(*Dense); ok {
		if db, ok := b.(*Dense); ok {
			if len(da.data) == 0 {
				return 0, nil
			}
			return blas64.Dot(da.RawVector(), db.RawVector()), nil
		}
	}

	var sum float64
	n := a.Len()
	for i := 0; i < n; i++ {
		x, _ := a.At(i)
		y, _ := b.At(i)
		sum += x * y
	}

	return sum, nil
}

// Norm returns the Euclidean (L2) norm √(Σ v[i]²).
// MAIN DESCRIPTION:
//   - Dnrm2 on the dense buffer, or on the stored values of a Sparse
//     (zeros add nothing to the scaled sum of squares).
//
// Errors: ErrNilVector. Complexity: O(n), O(nnz) for Sparse.
func Norm(v Vector) (float64, error) {
	if err := validateNotNil(v); err != nil {
		return 0, vectorErrorf("Norm", err)
	}

	var vals []float64
	switch t := v.(type) {
	case *Dense:
		vals = t.data
	case *Sparse:
		vals = t.val
	default:
		nonZeroDo(v, func(_ int, x float64) bool {
			vals = append(vals, x)
			return true
		})
	}
	if len(vals) == 0 {
		return 0, nil
	}

	return blas64.Nrm2(blas64.Vector{N: len(vals), Data: vals, Inc: 1}), nil
}

// Normalize returns v scaled by 1/Norm(v).
// A zero-norm vector (including the empty vector) yields ErrZeroNorm instead
// of a vector of NaN. A NaN or +Inf norm is not rejected; the result then
// follows IEEE arithmetic.
// Errors: ErrNilVector, ErrZeroNorm. Complexity: O(n).
func Normalize(v Vector) (Vector, error) {
	norm, err := Norm(v)
	if err != nil {
		return nil, vectorErrorf("Normalize", err)
	}
	if norm == 0 {
		return nil, vectorErrorf("Normalize", ErrZeroNorm)
	}

	return Scale(v, 1/norm)
}
