// SPDX-License-Identifier: MIT
// Package: vector
//
// Purpose:
//   - Reductions (Sum, Product, Max, Min, Density), non-zero iteration and
//     the functional helpers Transform and Fill.

package vector

import (
	"gonum.org/v1/gonum/floats"
)

// nonZeroDo dispatches to the storage's own non-zero iterator, falling back
// to a full At scan that skips zeros. v must be non-nil.
func nonZeroDo(v Vector, f func(i int, x float64) bool) {
	if it, ok := v.(nonZeroDoer); ok {
		it.NonZeroDo(f)
		return
	}
	n := v.Len()
	for i := 0; i < n; i++ {
		x, _ := v.At(i)
		if x == 0 {
			continue
		}
		if !f(i, x) {
			return
		}
	}
}

// NonZeroDo calls f(i, x) for every non-zero entry of v in ascending index
// order and stops when f returns false. NaN counts as non-zero.
// Errors: ErrNilVector.
func NonZeroDo(v Vector, f func(i int, x float64) bool) error {
	if err := validateNotNil(v); err != nil {
		return vectorErrorf("NonZeroDo", err)
	}
	nonZeroDo(v, f)

	return nil
}

// Sum returns Σ v[i]; 0 for the empty vector.
// Errors: ErrNilVector. Complexity: O(n), O(nnz) for Sparse.
func Sum(v Vector) (float64, error) {
	if err := validateNotNil(v); err != nil {
		return 0, vectorErrorf("Sum", err)
	}
	switch t := v.(type) {
	case *Dense:
		return floats.Sum(t.data), nil
	case *Sparse:
		return floats.Sum(t.val), nil
	}

	var sum float64
	nonZeroDo(v, func(_ int, x float64) bool {
		sum += x
		return true
	})

	return sum, nil
}

// Product returns Π v[i]; 1 for the empty vector.
// Errors: ErrNilVector. Complexity: O(n).
func Product(v Vector) (float64, error) {
	if err := validateNotNil(v); err != nil {
		return 0, vectorErrorf("Product", err)
	}
	if d, ok := v.(*Dense); ok {
		return floats.Prod(d.data), nil
	}

	prod := 1.0
	n := v.Len()
	for i := 0; i < n; i++ {
		x, _ := v.At(i)
		prod *= x
	}

	return prod, nil
}

// Max returns the largest element.
// Errors: ErrNilVector, ErrEmpty. Complexity: O(n).
func Max(v Vector) (float64, error) {
	if err := validateNotNil(v); err != nil {
		return 0, vectorErrorf("Max", err)
	}
	if v.Len() == 0 {
		return 0, vectorErrorf("Max", ErrEmpty)
	}
	if d, ok := v.(*Dense); ok {
		return floats.Max(d.data), nil
	}

	return extremum(v, func(x, best float64) bool { return x > best }), nil
}

// Min returns the smallest element.
// Errors: ErrNilVector, ErrEmpty. Complexity: O(n).
func Min(v Vector) (float64, error) {
	if err := validateNotNil(v); err != nil {
		return 0, vectorErrorf("Min", err)
	}
	if v.Len() == 0 {
		return 0, vectorErrorf("Min", ErrEmpty)
	}
	if d, ok := v.(*Dense); ok {
		return floats.Min(d.data), nil
	}

	return extremum(v, func(x, best float64) bool { return x < best }), nil
}

// extremum scans a non-empty v keeping the element for which better holds.
func extremum(v Vector, better func(x, best float64) bool) float64 {
	best, _ := v.At(0)
	n := v.Len()
	for i := 1; i < n; i++ {
		x, _ := v.At(i)
		if better(x, best) {
			best = x
		}
	}

	return best
}

// Density returns the fraction of non-zero entries; 0 for the empty vector.
// Errors: ErrNilVector. Complexity: O(n), O(1) for Sparse.
func Density(v Vector) (float64, error) {
	if err := validateNotNil(v); err != nil {
		return 0, vectorErrorf("Density", err)
	}
	n := v.Len()
	if n == 0 {
		return 0, nil
	}
	if s, ok := v.(*Sparse); ok {
		return float64(s.NNZ()) / float64(n), nil
	}

	nnz := 0
	nonZeroDo(v, func(int, float64) bool {
		nnz++
		return true
	})

	return float64(nnz) / float64(n), nil
}

// Transform returns a new vector with out[i] = f(i, v[i]), same storage kind.
// Errors: ErrNilVector. Complexity: O(n).
func Transform(v Vector, f func(i int, x float64) float64) (Vector, error) {
	if err := validateNotNil(v); err != nil {
		return nil, vectorErrorf("Transform", err)
	}

	out := v.Blank()
	n := v.Len()
	for i := 0; i < n; i++ {
		x, _ := v.At(i)
		_ = out.Set(i, f(i, x))
	}

	return out, nil
}

// Fill overwrites every element of v with x, in place.
// Errors: ErrNilVector. Complexity: O(n).
func Fill(v Vector, x float64) error {
	if err := validateNotNil(v); err != nil {
		return vectorErrorf("Fill", err)
	}

	switch t := v.(type) {
	case *Dense:
		for i := range t.data {
			t.data[i] = x
		}
		return nil
	case *Sparse:
		t.idx, t.val = t.idx[:0], t.val[:0]
		if x == 0 {
			return nil
		}
	}

	n := v.Len()
	for i := 0; i < n; i++ {
		_ = v.Set(i, x)
	}

	return nil
}
