// SPDX-License-Identifier: MIT
// Package: vector
//
// Purpose:
//   - Structural equality (Equal) and tolerant equality (EqualApprox).
//   - Dense fast-path over the flat buffers; Sparse pairs compare their
//     canonical entry lists; everything else goes through At.

package vector

import (
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/floats/scalar"
)

// Equal reports whether a and b have the same length and element-wise ==
// values. NaN is never equal to anything; -0 equals +0. Storage kind does
// not matter: a Dense and a Sparse with the same values are equal. Two nil
// vectors are equal; a nil and a non-nil vector are not.
// Time: O(n). Space: O(1).
func Equal(a, b Vector) bool {
	errA, errB := validateNotNil(a), validateNotNil(b)
	if errA != nil || errB != nil {
		return errA != nil && errB != nil
	}
	if a.Len() != b.Len() {
		return false
	}

	switch ta := a.(type) {
	case *Dense:
		if tb, ok := b.(*Dense); ok {
			return floats.Equal(ta.data, tb.data)
		}
	case *Sparse:
		if tb, ok := b.(*Sparse); ok {
			if len(ta.idx) != len(tb.idx) {
				return false
			}
			for k := range ta.idx {
				if ta.idx[k] != tb.idx[k] || ta.val[k] != tb.val[k] {
					return false
				}
			}
			return true
		}
	}

	return equalFunc(a, b, func(x, y float64) bool { return x == y })
}

// EqualApprox reports whether a and b have the same length and
// |a[i]-b[i]| <= eps for every i (eps = DefaultEpsilon unless WithEpsilon
// is given). Equal infinities compare equal; NaN never does.
// Time: O(n). Space: O(1).
//
// AI-Hints:
//   - Use in tests and when comparing results of Dot/MulMatrix across storages.
func EqualApprox(a, b Vector, opts ...Option) bool {
	eps := gatherOptions(opts...).eps
	within := func(x, y float64) bool { return scalar.EqualWithinAbs(x, y, eps) }

	errA, errB := validateNotNil(a), validateNotNil(b)
	if errA != nil || errB != nil {
		return errA != nil && errB != nil
	}
	if a.Len() != b.Len() {
		return false
	}
	if da, ok := a.(*Dense); ok {
		if db, ok := b.(*Dense); ok {
			return floats.EqualFunc(da.data, db.data, within)
		}
	}

	return equalFunc(a, b, within)
}

// equalFunc is the generic At-based comparison loop (equal lengths assumed).
func equalFunc(a, b Vector, eq func(x, y float64) bool) bool {
	n := a.Len()
	for i := 0; i < n; i++ {
		x, _ := a.At(i)
		y, _ := b.At(i)
		if !eq(x, y) {
			return false
		}
	}

	return true
}
