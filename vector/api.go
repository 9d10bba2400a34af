// SPDX-License-Identifier: MIT
// Package vector: public API facades.
//
// Purpose:
//   - Long, intention-revealing names for the canonical kernels
//     (InnerProduct for Dot, HadamardProduct for Hadamard, ...).
//   - No logic here: each facade delegates 1:1.

package vector

import "github.com/katalvlaran/linvec/matrix"

// Copy returns an independent copy of v (v.Clone with a nil guard).
func Copy(v Vector) (Vector, error) {
	if err := validateNotNil(v); err != nil {
		return nil, vectorErrorf("Copy", err)
	}

	return v.Clone(), nil
}

// Blank returns a zero vector with the length and storage kind of v.
func Blank(v Vector) (Vector, error) {
	if err := validateNotNil(v); err != nil {
		return nil, vectorErrorf("Blank", err)
	}

	return v.Blank(), nil
}

// Subtract is an alias for Sub: element-wise a − b.
func Subtract(a, b Vector) (Vector, error) { return Sub(a, b) }

// Multiply is an alias for MulMatrix: row vector × matrix.
// Vector × vector has no Multiply; use HadamardProduct or OuterProduct.
func Multiply(v Vector, m matrix.Matrix) (Vector, error) { return MulMatrix(v, m) }

// Divide is an alias for DivScalar.
func Divide(v Vector, s float64) (Vector, error) { return DivScalar(v, s) }

// HadamardProduct is an alias for Hadamard: element-wise a ⊙ b.
func HadamardProduct(a, b Vector) (Vector, error) { return Hadamard(a, b) }

// InnerProduct is an alias for Dot.
func InnerProduct(a, b Vector) (float64, error) { return Dot(a, b) }

// OuterProduct is an alias for Outer.
func OuterProduct(a, b Vector) (*matrix.Dense, error) { return Outer(a, b) }
