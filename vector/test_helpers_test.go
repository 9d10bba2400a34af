// SPDX-License-Identifier: MIT
package vector_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/linvec/factory"
	"github.com/katalvlaran/linvec/matrix"
	"github.com/katalvlaran/linvec/vector"
)

// plainVec implements only vector.Vector (no NonZeroDo, no raw buffer) so the
// generic At/Set code paths get exercised alongside Dense and Sparse.
type plainVec struct{ xs []float64 }

func (p *plainVec) Len() int { return len(p.xs) }
func (p *plainVec) At(i int) (float64, error) {
	if i < 0 || i >= len(p.xs) {
		return 0, vector.ErrOutOfRange
	}
	return p.xs[i], nil
}
func (p *plainVec) Set(i int, x float64) error {
	if i < 0 || i >= len(p.xs) {
		return vector.ErrOutOfRange
	}
	p.xs[i] = x
	return nil
}
func (p *plainVec) Clone() vector.Vector { return &plainVec{xs: append([]float64{}, p.xs...)} }
func (p *plainVec) Blank() vector.Vector { return &plainVec{xs: make([]float64, len(p.xs))} }
func (p *plainVec) Like(n int) (vector.Vector, error) {
	if n < 0 {
		return nil, vector.ErrInvalidArgument
	}
	return &plainVec{xs: make([]float64, n)}, nil
}

// plainFactory produces plainVec values.
type plainFactory struct{}

func (plainFactory) CreateVector(xs []float64) vector.Vector {
	return &plainVec{xs: append([]float64{}, xs...)}
}
func (plainFactory) CreateZeroVector(n int) (vector.Vector, error) {
	return (&plainVec{}).Like(n)
}
func (plainFactory) CreateMatrix(rows [][]float64) (matrix.Matrix, error) {
	return factory.Dense().CreateMatrix(rows)
}

// storages lists every construction policy each property is checked under.
var storages = []struct {
	name string
	f    factory.Factory
}{
	{"dense", factory.Dense()},
	{"sparse", factory.Sparse()},
	{"plain", plainFactory{}},
}

// values reads every element of v through At.
func values(t testing.TB, v vector.Vector) []float64 {
	t.Helper()
	require.NotNil(t, v)
	out := make([]float64, v.Len())
	for i := range out {
		x, err := v.At(i)
		require.NoError(t, err)
		out[i] = x
	}
	return out
}

// requireValues asserts v holds exactly want.
func requireValues(t testing.TB, want []float64, v vector.Vector) {
	t.Helper()
	require.Equal(t, want, values(t, v))
}

// requireSameKind asserts got has the dynamic type of want.
func requireSameKind(t testing.TB, want, got vector.Vector) {
	t.Helper()
	require.IsType(t, want, got)
}

// rowMatrix is a non-Dense matrix.Matrix for the generic MulMatrix path.
type rowMatrix struct{ rows [][]float64 }

func (m *rowMatrix) Rows() int { return len(m.rows) }
func (m *rowMatrix) Cols() int {
	if len(m.rows) == 0 {
		return 0
	}
	return len(m.rows[0])
}
func (m *rowMatrix) At(i, j int) (float64, error) {
	if i < 0 || i >= m.Rows() || j < 0 || j >= m.Cols() {
		return 0, matrix.ErrOutOfRange
	}
	return m.rows[i][j], nil
}
func (m *rowMatrix) Set(i, j int, v float64) error {
	if i < 0 || i >= m.Rows() || j < 0 || j >= m.Cols() {
		return matrix.ErrOutOfRange
	}
	m.rows[i][j] = v
	return nil
}
func (m *rowMatrix) Clone() matrix.Matrix {
	out := &rowMatrix{rows: make([][]float64, len(m.rows))}
	for i, r := range m.rows {
		out.rows[i] = append([]float64(nil), r...)
	}
	return out
}
