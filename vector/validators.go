// SPDX-License-Identifier: MIT
// Package: vector
//
// Purpose:
//  - Single source of truth for operand checks shared by every kernel.
//  - Return bare sentinels; kernels wrap them with their own tag.

package vector

// validateNotNil rejects a nil interface and typed nil *Dense / *Sparse.
func validateNotNil(v Vector) error {
	switch t := v.(type) {
	case nil:
		return ErrNilVector
	case *Dense:
		if t == nil {
			return ErrNilVector
		}
	case *Sparse:
		if t == nil {
			return ErrNilVector
		}
	}

	return nil
}

// validateSameLen: composite: NotNil(a) → NotNil(b) → Len(a)==Len(b).
func validateSameLen(a, b Vector) error {
	if err := validateNotNil(a); err != nil {
		return err
	}
	if err := validateNotNil(b); err != nil {
		return err
	}
	if a.Len() != b.Len() {
		return ErrDimensionMismatch
	}

	return nil
}

// validateIndex checks 0 <= i < n.
func validateIndex(i, n int) error {
	if i < 0 || i >= n {
		return ErrOutOfRange
	}

	return nil
}

// validateRange checks 0 <= from <= to <= n.
func validateRange(from, to, n int) error {
	if from < 0 || to > n || from > to {
		return ErrInvalidRange
	}

	return nil
}
