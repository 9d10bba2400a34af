// Package vector_test contains unit tests for the Dense and Sparse storages.
package vector_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/linvec/vector"
)

// TestConstructorsRejectNegativeLength covers NewDense, NewSparse and Like.
func TestConstructorsRejectNegativeLength(t *testing.T) {
	_, err := vector.NewDense(-1)
	require.ErrorIs(t, err, vector.ErrInvalidArgument)

	_, err = vector.NewSparse(-1)
	require.ErrorIs(t, err, vector.ErrInvalidArgument)

	for _, s := range storages {
		t.Run(s.name, func(t *testing.T) {
			_, err := s.f.CreateZeroVector(-3)
			require.ErrorIs(t, err, vector.ErrInvalidArgument)

			z, err := s.f.CreateZeroVector(3)
			require.NoError(t, err)
			requireValues(t, []float64{0, 0, 0}, z)

			_, err = z.Like(-1)
			require.ErrorIs(t, err, vector.ErrInvalidArgument)
		})
	}
}

// TestAtSetOutOfRange ensures bad indices fail with ErrOutOfRange and leave the state unchanged.
func TestAtSetOutOfRange(t *testing.T) {
	for _, s := range storages[:2] { // Dense and Sparse own their error messages
		t.Run(s.name, func(t *testing.T) {
			v := s.f.CreateVector([]float64{1, 0, 3})

			_, err := v.At(-1)
			require.ErrorIs(t, err, vector.ErrOutOfRange)
			_, err = v.At(3)
			require.ErrorIs(t, err, vector.ErrOutOfRange)

			err = v.Set(3, 9)
			require.ErrorIs(t, err, vector.ErrOutOfRange)
			require.Contains(t, err.Error(), "Set(3)")
			err = v.Set(-1, 9)
			require.ErrorIs(t, err, vector.ErrOutOfRange)

			requireValues(t, []float64{1, 0, 3}, v)
		})
	}
}

// TestCopyIndependence: a copy equals its source and mutating it never affects the source.
func TestCopyIndependence(t *testing.T) {
	for _, s := range storages {
		t.Run(s.name, func(t *testing.T) {
			a := s.f.CreateVector([]float64{2, 0, 5, 7})

			c, err := vector.Copy(a)
			require.NoError(t, err)
			require.True(t, vector.Equal(a, c))
			requireSameKind(t, a, c)

			require.NoError(t, c.Set(0, 100))
			require.NoError(t, c.Set(1, 1))
			requireValues(t, []float64{2, 0, 5, 7}, a)
			requireValues(t, []float64{100, 1, 5, 7}, c)
		})
	}

	_, err := vector.Copy(nil)
	require.ErrorIs(t, err, vector.ErrNilVector)
}

// TestBlank returns a zero vector of the same length and kind.
func TestBlank(t *testing.T) {
	for _, s := range storages {
		t.Run(s.name, func(t *testing.T) {
			a := s.f.CreateVector([]float64{1, 2, 3})
			b, err := vector.Blank(a)
			require.NoError(t, err)
			requireSameKind(t, a, b)
			requireValues(t, []float64{0, 0, 0}, b)
		})
	}
}

// TestCreateVectorCopiesInput: later writes to the source slice are not observed.
func TestCreateVectorCopiesInput(t *testing.T) {
	for _, s := range storages {
		t.Run(s.name, func(t *testing.T) {
			src := []float64{1, 2}
			v := s.f.CreateVector(src)
			src[0] = 42
			requireValues(t, []float64{1, 2}, v)
		})
	}
}

// TestSparseKeepsOnlyNonZeros checks the NNZ bookkeeping of Sparse.Set.
func TestSparseKeepsOnlyNonZeros(t *testing.T) {
	s := vector.NewSparseFrom([]float64{0, 1, 0, 2, 0})
	require.Equal(t, 5, s.Len())
	require.Equal(t, 2, s.NNZ())

	require.NoError(t, s.Set(1, 0)) // delete
	require.Equal(t, 1, s.NNZ())

	require.NoError(t, s.Set(0, 0)) // no-op
	require.Equal(t, 1, s.NNZ())

	require.NoError(t, s.Set(2, 7)) // insert in the middle
	require.NoError(t, s.Set(0, 5)) // insert at the front
	require.NoError(t, s.Set(4, 9)) // append
	require.NoError(t, s.Set(2, 8)) // update
	require.Equal(t, 4, s.NNZ())
	require.Equal(t, []float64{5, 0, 8, 2, 9}, s.Values())

	require.NoError(t, s.Set(3, math.NaN())) // NaN is stored
	require.Equal(t, 4, s.NNZ())

	var idx []int
	s.NonZeroDo(func(i int, _ float64) bool {
		idx = append(idx, i)
		return true
	})
	assert.Equal(t, []int{0, 2, 3, 4}, idx)
}

// TestDenseNonZeroDoAndDo covers both iterators and early stop.
func TestDenseNonZeroDoAndDo(t *testing.T) {
	d := vector.NewDenseFrom([]float64{0, 3, 0, 4})

	var nz []int
	d.NonZeroDo(func(i int, _ float64) bool {
		nz = append(nz, i)
		return true
	})
	assert.Equal(t, []int{1, 3}, nz)

	var all []int
	d.Do(func(i int, _ float64) bool {
		all = append(all, i)
		return i < 2
	})
	assert.Equal(t, []int{0, 1, 2}, all)
}

// TestValuesIsACopy ensures Values never aliases storage.
func TestValuesIsACopy(t *testing.T) {
	d := vector.NewDenseFrom([]float64{1, 2})
	xs := d.Values()
	xs[0] = 9
	requireValues(t, []float64{1, 2}, d)

	raw := d.RawVector()
	require.Equal(t, 2, raw.N)
	require.Equal(t, 1, raw.Inc)
}

// TestString pins the debug rendering for both storages.
func TestString(t *testing.T) {
	assert.Equal(t, "[1, 0, -2.5]", vector.NewDenseFrom([]float64{1, 0, -2.5}).String())
	assert.Equal(t, "[1, 0, -2.5]", vector.NewSparseFrom([]float64{1, 0, -2.5}).String())
	assert.Equal(t, "[]", vector.NewDenseFrom(nil).String())
}
