// SPDX-License-Identifier: MIT

// Package factory builds vectors and matrices from raw numeric arrays.
//
// A Factory fixes the construction policy (dense or sparse vector storage);
// the vector operations themselves do not care which one produced their
// operands. Matrices are always *matrix.Dense.
//
//	f := factory.Dense()
//	a := f.CreateVector([]float64{1, 2})
//	m, _ := f.CreateMatrix([][]float64{{0, 5, 0, 6}, {1, 0, 8, 0}})
//	r, _ := vector.MulMatrix(a, m) // [2 5 16 6]
package factory

import (
	"fmt"

	"github.com/katalvlaran/linvec/matrix"
	"github.com/katalvlaran/linvec/vector"
)

// Factory produces Vector and Matrix instances.
type Factory interface {
	// CreateVector returns a vector holding a copy of elements.
	CreateVector(elements []float64) vector.Vector

	// CreateZeroVector returns an all-zero vector of the given length.
	// Returns vector.ErrInvalidArgument for a negative length.
	CreateZeroVector(length int) (vector.Vector, error)

	// CreateMatrix returns a matrix holding a copy of rows.
	// Returns matrix.ErrDimensionMismatch for ragged rows.
	CreateMatrix(rows [][]float64) (matrix.Matrix, error)
}

// Kind names a construction policy.
type Kind string

const (
	KindDense  Kind = "dense"
	KindSparse Kind = "sparse"
)

// denseFactory builds *vector.Dense.
type denseFactory struct{}

// sparseFactory builds *vector.Sparse.
type sparseFactory struct{}

// Compile-time assertions.
var (
	_ Factory = denseFactory{}
	_ Factory = sparseFactory{}
)

// Dense returns the factory producing contiguous vectors.
func Dense() Factory { return denseFactory{} }

// Sparse returns the factory producing sparse vectors.
func Sparse() Factory { return sparseFactory{} }

// ForKind returns the factory for k, or an error for an unknown kind.
func ForKind(k Kind) (Factory, error) {
	switch k {
	case KindDense:
		return Dense(), nil
	case KindSparse:
		return Sparse(), nil
	}

	return nil, fmt.Errorf("factory: unknown kind %q: %w", k, vector.ErrInvalidArgument)
}

func (denseFactory) CreateVector(elements []float64) vector.Vector {
	return vector.NewDenseFrom(elements)
}

func (denseFactory) CreateZeroVector(length int) (vector.Vector, error) {
	v, err := vector.NewDense(length)
	if err != nil {
		return nil, err
	}

	return v, nil
}

func (denseFactory) CreateMatrix(rows [][]float64) (matrix.Matrix, error) {
	return createMatrix(rows)
}

func (sparseFactory) CreateVector(elements []float64) vector.Vector {
	return vector.NewSparseFrom(elements)
}

func (sparseFactory) CreateZeroVector(length int) (vector.Vector, error) {
	v, err := vector.NewSparse(length)
	if err != nil {
		return nil, err
	}

	return v, nil
}

func (sparseFactory) CreateMatrix(rows [][]float64) (matrix.Matrix, error) {
	return createMatrix(rows)
}

// createMatrix keeps the nil-interface trap out of both factories.
func createMatrix(rows [][]float64) (matrix.Matrix, error) {
	m, err := matrix.NewDenseFrom(rows)
	if err != nil {
		return nil, err
	}

	return m, nil
}
