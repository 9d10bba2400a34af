// SPDX-License-Identifier: MIT
package vector_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/linvec/matrix"
	"github.com/katalvlaran/linvec/vector"
)

// TestMulMatrix: [1,2] × [[0,5,0,6],[1,0,8,0]] == [2,5,16,6] for dense and generic matrices.
func TestMulMatrix(t *testing.T) {
	rows := [][]float64{{0, 5, 0, 6}, {1, 0, 8, 0}}
	for _, s := range storages {
		t.Run(s.name, func(t *testing.T) {
			a := s.f.CreateVector([]float64{1, 2})
			m, err := s.f.CreateMatrix(rows)
			require.NoError(t, err)

			r, err := vector.Multiply(a, m)
			require.NoError(t, err)
			requireSameKind(t, a, r)
			require.Equal(t, m.Cols(), r.Len())
			requireValues(t, []float64{2, 5, 16, 6}, r)

			g, err := vector.MulMatrix(a, &rowMatrix{rows: rows})
			require.NoError(t, err)
			require.True(t, vector.Equal(r, g))

			requireValues(t, []float64{1, 2}, a) // operand untouched
		})
	}
}

// TestMulMatrixZeroEntries: a zero vector entry contributes nothing.
func TestMulMatrixZeroEntries(t *testing.T) {
	for _, s := range storages {
		t.Run(s.name, func(t *testing.T) {
			a := s.f.CreateVector([]float64{0, 3, 0})
			m, err := s.f.CreateMatrix([][]float64{{9, 9}, {1, -1}, {9, 9}})
			require.NoError(t, err)

			r, err := vector.MulMatrix(a, m)
			require.NoError(t, err)
			requireValues(t, []float64{3, -3}, r)
		})
	}
}

// TestMulMatrixErrors covers nil operands and the row-count mismatch.
func TestMulMatrixErrors(t *testing.T) {
	for _, s := range storages {
		t.Run(s.name, func(t *testing.T) {
			a := s.f.CreateVector([]float64{1, 2, 3})
			m, err := s.f.CreateMatrix([][]float64{{1, 2}, {3, 4}})
			require.NoError(t, err)

			_, err = vector.MulMatrix(a, m)
			require.ErrorIs(t, err, vector.ErrDimensionMismatch)
			require.ErrorIs(t, err, matrix.ErrDimensionMismatch)

			_, err = vector.MulMatrix(a, nil)
			require.ErrorIs(t, err, matrix.ErrNilMatrix)

			var typedNil *matrix.Dense
			_, err = vector.MulMatrix(a, typedNil)
			require.ErrorIs(t, err, matrix.ErrNilMatrix)

			_, err = vector.MulMatrix(nil, m)
			require.ErrorIs(t, err, vector.ErrNilVector)
		})
	}
}

// TestMulMatrixEmpty: a length-0 vector times a 0×3 matrix is the zero 3-vector.
func TestMulMatrixEmpty(t *testing.T) {
	for _, s := range storages {
		t.Run(s.name, func(t *testing.T) {
			m, err := matrix.NewDense(0, 3)
			require.NoError(t, err)

			r, err := vector.MulMatrix(s.f.CreateVector(nil), m)
			require.NoError(t, err)
			requireValues(t, []float64{0, 0, 0}, r)
		})
	}
}

// TestOuter: [2,3,5,7] ⊗ [11,13,17,19] for every pairing.
func TestOuter(t *testing.T) {
	want, err := matrix.NewDenseFrom([][]float64{
		{22, 26, 34, 38},
		{33, 39, 51, 57},
		{55, 65, 85, 95},
		{77, 91, 119, 133},
	})
	require.NoError(t, err)

	for _, sa := range storages {
		for _, sb := range storages {
			t.Run(sa.name+"x"+sb.name, func(t *testing.T) {
				a := sa.f.CreateVector([]float64{2, 3, 5, 7})
				b := sb.f.CreateVector([]float64{11, 13, 17, 19})

				o, err := vector.OuterProduct(a, b)
				require.NoError(t, err)
				require.True(t, matrix.Equal(want, o), "got\n%v", o)
			})
		}
	}
}

// TestOuterShapes: lengths are unconstrained and empty operands give zero-area matrices.
func TestOuterShapes(t *testing.T) {
	for _, s := range storages {
		t.Run(s.name, func(t *testing.T) {
			a := s.f.CreateVector([]float64{1, 0, 2})
			b := s.f.CreateVector([]float64{4, 5})

			o, err := vector.Outer(a, b)
			require.NoError(t, err)
			want, _ := matrix.NewDenseFrom([][]float64{{4, 5}, {0, 0}, {8, 10}})
			require.True(t, matrix.Equal(want, o))

			o, err = vector.Outer(s.f.CreateVector(nil), b)
			require.NoError(t, err)
			require.Equal(t, 0, o.Rows())
			require.Equal(t, 2, o.Cols())

			o, err = vector.Outer(a, s.f.CreateVector(nil))
			require.NoError(t, err)
			require.Equal(t, 3, o.Rows())
			require.Equal(t, 0, o.Cols())

			_, err = vector.Outer(a, nil)
			require.ErrorIs(t, err, vector.ErrNilVector)
		})
	}
}

// TestMatrixOpsPropagateIEEEAcrossStorages: a zero entry times Inf is NaN on every storage.
func TestMatrixOpsPropagateIEEEAcrossStorages(t *testing.T) {
	inf := math.Inf(1)
	for _, sa := range storages {
		for _, sb := range storages {
			t.Run(sa.name+"x"+sb.name, func(t *testing.T) {
				a := sa.f.CreateVector([]float64{0, 1})
				b := sb.f.CreateVector([]float64{inf, 1})

				o, err := vector.Outer(a, b)
				require.NoError(t, err)
				x, err := o.At(0, 0)
				require.NoError(t, err)
				require.True(t, math.IsNaN(x), "Outer[0][0] = %v", x)
				x, err = o.At(0, 1)
				require.NoError(t, err)
				require.Equal(t, 0.0, x)
				x, err = o.At(1, 0)
				require.NoError(t, err)
				require.True(t, math.IsInf(x, 1))

				dot, err := vector.Dot(a, b)
				require.NoError(t, err)
				require.True(t, math.IsNaN(dot))
			})
		}

		t.Run(sa.name+"/MulMatrix", func(t *testing.T) {
			a := sa.f.CreateVector([]float64{0, 1})
			rows := [][]float64{{inf, 2}, {1, 3}}

			m, err := sa.f.CreateMatrix(rows)
			require.NoError(t, err)
			for _, mm := range []matrix.Matrix{m, &rowMatrix{rows: rows}} {
				r, err := vector.MulMatrix(a, mm)
				require.NoError(t, err)
				xs := values(t, r)
				require.True(t, math.IsNaN(xs[0]), "MulMatrix[0] = %v", xs[0])
				require.Equal(t, 3.0, xs[1])
			}
		})
	}
}
