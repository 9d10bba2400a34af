// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//   - Numeric comparison of two matrices: exact (Equal) and tolerant (AllClose).
//   - Dense fast-path over the flat buffers; generic fallback via At.

package matrix

import (
	"math"

	"gonum.org/v1/gonum/floats"
)

// Equal reports whether a and b have the same shape and bitwise-equal
// (==) elements. NaN is never equal to anything. Nil operands are equal
// only to each other.
// Time: O(r*c). Space: O(1).
func Equal(a, b Matrix) bool {
	errA, errB := ValidateNotNil(a), ValidateNotNil(b)
	if errA != nil || errB != nil {
		return errA != nil && errB != nil
	}
	if ValidateSameShape(a, b) != nil {
		return false
	}

	// Dense fast-path: flat slice comparison.
	if da, ok := a.(*Dense); ok {
		if db, ok := b.(*Dense); ok {
			return floats.Equal(da.data, db.data)
		}
	}

	r, c := a.Rows(), a.Cols()
	var av, bv float64
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			av, _ = a.At(i, j)
			bv, _ = b.At(i, j)
			if av != bv {
				return false
			}
		}
	}

	return true
}

// AllClose checks element-wise |a-b| ≤ atol + rtol*|b| for identical shapes.
// Returns (true,nil) if all elements satisfy the relation; (false,nil) otherwise.
// Time: O(r*c). Space: O(1). Deterministic.
//
// Policy:
//   - a and b must be non-nil and have identical shapes.
//   - rtol, atol are treated as |rtol|, |atol| (negative values are normalized).
//   - NaN/Inf tolerances are rejected with ErrNaNInf.
//   - +Inf equals +Inf and -Inf equals -Inf; NaN never matches.
//
// AI-Hints:
//   - AllClose with small atol/rtol is ideal for invariance tests in unit tests.
func AllClose(a, b Matrix, rtol, atol float64) (bool, error) {
	if math.IsNaN(rtol) || math.IsNaN(atol) || math.IsInf(rtol, 0) || math.IsInf(atol, 0) {
		return false, matrixErrorf("AllClose", ErrNaNInf)
	}
	rtol, atol = math.Abs(rtol), math.Abs(atol)

	if err := ValidateBinarySameShape(a, b); err != nil {
		return false, matrixErrorf("AllClose", err)
	}

	within := func(x, y float64) bool {
		return x == y || math.Abs(x-y) <= atol+rtol*math.Abs(y)
	}

	// Dense fast-path: operate over flat slices when both are *Dense.
	if da, okA := a.(*Dense); okA {
		if db, okB := b.(*Dense); okB {
			return floats.EqualFunc(da.data, db.data, within), nil
		}
	}

	// Generic fallback via At (bounds-safe; still deterministic).
	r, c := a.Rows(), a.Cols()
	var av, bv float64
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			av, _ = a.At(i, j)
			bv, _ = b.At(i, j)
			if !within(av, bv) {
				return false, nil
			}
		}
	}

	return true, nil
}
