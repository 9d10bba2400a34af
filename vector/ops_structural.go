// SPDX-License-Identifier: MIT
// Package: vector
//
// Purpose:
//   - Shape-changing copies (Resize, Slice, SliceLeft, SliceRight) and the
//     in-place Swap.
//
// Design:
//   - Copies allocate through Like so the storage kind is preserved; only
//     non-zero entries are written, the rest is already zero.
//   - Swap validates both indices before touching anything.

package vector

import "fmt"

// Resize returns a copy of v with length n.
// MAIN DESCRIPTION:
//   - n > Len: original entries keep their indices, the tail is zero.
//   - n < Len: entries at index >= n are dropped (truncation from the right).
//   - n == 0: the empty vector.
//
// Errors: ErrNilVector, ErrInvalidArgument (n<0). Complexity: O(n).
func Resize(v Vector, n int) (Vector, error) {
	if err := validateNotNil(v); err != nil {
		return nil, vectorErrorf("Resize", err)
	}
	if n < 0 {
		return nil, fmt.Errorf("Resize(%d): %w", n, ErrInvalidArgument)
	}

	if d, ok := v.(*Dense); ok {
		out := make([]float64, n)
		copy(out, d.data) // copies min(n, len) elements
		return &Dense{data: out}, nil
	}

	out, err := v.Like(n)
	if err != nil {
		return nil, vectorErrorf("Resize", err)
	}
	nonZeroDo(v, func(i int, x float64) bool {
		if i >= n {
			return false // ascending order: nothing left to keep
		}
		_ = out.Set(i, x)
		return true
	})

	return out, nil
}

// Slice returns the elements at indices [from, to) re-indexed from 0.
// Errors: ErrNilVector, ErrInvalidRange (from<0, to>Len or from>to).
// Complexity: O(to-from) dense, O(nnz) sparse.
func Slice(v Vector, from, to int) (Vector, error) {
	if err := validateNotNil(v); err != nil {
		return nil, vectorErrorf("Slice", err)
	}
	if err := validateRange(from, to, v.Len()); err != nil {
		return nil, fmt.Errorf("Slice(%d,%d): %w", from, to, err)
	}

	if d, ok := v.(*Dense); ok {
		return NewDenseFrom(d.data[from:to]), nil
	}

	out, err := v.Like(to - from)
	if err != nil {
		return nil, vectorErrorf("Slice", err)
	}
	nonZeroDo(v, func(i int, x float64) bool {
		if i < from {
			return true
		}
		if i >= to {
			return false
		}
		_ = out.Set(i-from, x)
		return true
	})

	return out, nil
}

// SliceLeft is Slice(v, 0, to).
func SliceLeft(v Vector, to int) (Vector, error) {
	return Slice(v, 0, to)
}

// SliceRight is Slice(v, from, v.Len()).
func SliceRight(v Vector, from int) (Vector, error) {
	if err := validateNotNil(v); err != nil {
		return nil, vectorErrorf("SliceRight", err)
	}

	return Slice(v, from, v.Len())
}

// Swap exchanges v[i] and v[j] in place. i == j is a no-op.
// Both indices are validated first, so a failed call leaves v unchanged.
// Errors: ErrNilVector, ErrOutOfRange. Complexity: O(1) dense.
func Swap(v Vector, i, j int) error {
	if err := validateNotNil(v); err != nil {
		return vectorErrorf("Swap", err)
	}
	n := v.Len()
	if err := validateIndex(i, n); err != nil {
		return indexErrorf("Swap", i, err)
	}
	if err := validateIndex(j, n); err != nil {
		return indexErrorf("Swap", j, err)
	}
	if i == j {
		return nil
	}

	if d, ok := v.(*Dense); ok {
		d.data[i], d.data[j] = d.data[j], d.data[i]
		return nil
	}

	xi, _ := v.At(i)
	xj, _ := v.At(j)
	_ = v.Set(i, xj)
	_ = v.Set(j, xi)

	return nil
}
