// SPDX-License-Identifier: MIT
// Package: vector
//
// Purpose:
//   - The two places where vectors meet matrices: row-vector × matrix
//     (MulMatrix) and the outer product (Outer).
//
// Design:
//   - *Dense × *matrix.Dense runs Dgemv (transposed) / Dger on the raw buffers.
//   - Any other combination reads every vector entry through At and the
//     matrix through matrix.Matrix.At.
//   - Zero vector entries are multiplied like any other, so 0*Inf and 0*NaN
//     give NaN on every path and storages stay interchangeable.

package vector

import (
	"fmt"

	"gonum.org/v1/gonum/blas"
	"gonum.org/v1/gonum/blas/blas64"

	"github.com/katalvlaran/linvec/matrix"
)

// MulMatrix returns the row-vector product v × m.
// MAIN DESCRIPTION:
//   - r[j] = Σ_i v[i] * m[i][j]; len(r) == m.Cols().
//
// Implementation:
//   - Stage 1: validate v, m and v.Len() == m.Rows().
//   - Stage 2: Dense fast-path y = mᵀ·v via Dgemv(Trans).
//   - Stage 3: generic accumulation row by row over every entry of v.
//
// Errors:
//   - ErrNilVector; matrix.ErrNilMatrix; ErrDimensionMismatch (the error also
//     matches matrix.ErrDimensionMismatch).
//
// Complexity:
//   - Time O(n·m), Space O(m).
func MulMatrix(v Vector, m matrix.Matrix) (Vector, error) {
	if err := validateNotNil(v); err != nil {
		return nil, vectorErrorf("MulMatrix", err)
	}
	if err := matrix.ValidateNotNil(m); err != nil {
		return nil, vectorErrorf("MulMatrix", err)
	}
	if err := matrix.ValidateRowVector(v.Len(), m); err != nil {
		return nil, fmt.Errorf("MulMatrix: %w: %w", ErrDimensionMismatch, err)
	}

	rows, cols := m.Rows(), m.Cols()

	// Dense fast-path: single Dgemv over the row-major buffer.
	if dv, ok := v.(*Dense); ok {
		if dm, ok := m.(*matrix.Dense); ok {
			y := make([]float64, cols)
			if rows > 0 && cols > 0 {
				blas64.Gemv(blas.Trans, 1, dm.RawMatrix(), dv.RawVector(), 0,
					blas64.Vector{N: cols, Data: y, Inc: 1})
			}
			return &Dense{data: y}, nil
		}
	}

	// Generic fallback: acc += v[i] * row_i for every i, zeros included.
	acc := make([]float64, cols)
	for i := 0; i < rows; i++ {
		x, _ := v.At(i) // i < v.Len() == rows
		for j := 0; j < cols; j++ {
			a, err := m.At(i, j)
			if err != nil {
				return nil, vectorErrorf("MulMatrix", err)
			}
			acc[j] += x * a
		}
	}

	if _, ok := v.(*Dense); ok {
		return &Dense{data: acc}, nil
	}
	out, err := v.Like(cols)
	if err != nil {
		return nil, vectorErrorf("MulMatrix", err)
	}
	for j, x := range acc {
		_ = out.Set(j, x) // j < cols by construction
	}

	return out, nil
}

// Outer returns the outer product a ⊗ b as a new a.Len()×b.Len() matrix
// with cell [i][j] = a[i] * b[j]. The lengths are unconstrained; an empty
// operand gives a zero-area matrix.
//
// Errors: ErrNilVector. Complexity: O(n·m).
func Outer(a, b Vector) (*matrix.Dense, error) {
	if err := validateNotNil(a); err != nil {
		return nil, vectorErrorf("Outer", err)
	}
	if err := validateNotNil(b); err != nil {
		return nil, vectorErrorf("Outer", err)
	}

	rows, cols := a.Len(), b.Len()
	out, err := matrix.NewDense(rows, cols)
	if err != nil {
		return nil, vectorErrorf("Outer", err)
	}
	if rows == 0 || cols == 0 {
		return out, nil
	}

	// Dense fast-path: rank-1 update of the zero matrix.
	if da, ok := a.(*Dense); ok {
		if db, ok := b.(*Dense); ok {
			blas64.Ger(1, da.RawVector(), db.RawVector(), out.RawMatrix())
			return out, nil
		}
	}

	// Generic fallback: materialize b once, then accumulate every row into
	// the zero matrix the way Dger does.
	right := make([]float64, cols)
	for j := 0; j < cols; j++ {
		right[j], _ = b.At(j)
	}
	raw := out.RawMatrix()
	for i := 0; i < rows; i++ {
		x, _ := a.At(i)
		row := raw.Data[i*raw.Stride : i*raw.Stride+cols]
		for j, y := range right {
			row[j] += x * y
		}
	}

	return out, nil
}
