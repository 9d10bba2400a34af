// SPDX-License-Identifier: MIT
package matrix_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/linvec/matrix"
)

func TestValidateNotNil(t *testing.T) {
	require.ErrorIs(t, matrix.ValidateNotNil(nil), matrix.ErrNilMatrix)

	var typedNil *matrix.Dense
	require.ErrorIs(t, matrix.ValidateNotNil(typedNil), matrix.ErrNilMatrix)

	m, err := matrix.NewDense(1, 1)
	require.NoError(t, err)
	require.NoError(t, matrix.ValidateNotNil(m))
}

func TestValidateBinarySameShape(t *testing.T) {
	a, _ := matrix.NewDense(2, 3)
	b, _ := matrix.NewDense(2, 3)
	c, _ := matrix.NewDense(3, 2)

	require.NoError(t, matrix.ValidateBinarySameShape(a, b))
	require.ErrorIs(t, matrix.ValidateBinarySameShape(a, c), matrix.ErrDimensionMismatch)
	require.ErrorIs(t, matrix.ValidateBinarySameShape(nil, b), matrix.ErrNilMatrix)
	require.ErrorIs(t, matrix.ValidateBinarySameShape(a, nil), matrix.ErrNilMatrix)
}

func TestValidateRowVector(t *testing.T) {
	m, _ := matrix.NewDense(2, 4)

	require.NoError(t, matrix.ValidateRowVector(2, m))
	require.ErrorIs(t, matrix.ValidateRowVector(4, m), matrix.ErrDimensionMismatch)
	require.ErrorIs(t, matrix.ValidateRowVector(2, nil), matrix.ErrNilMatrix)

	empty, _ := matrix.NewDense(0, 3)
	require.NoError(t, matrix.ValidateRowVector(0, empty))
}
