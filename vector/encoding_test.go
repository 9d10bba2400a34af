// SPDX-License-Identifier: MIT
package vector_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/linvec/vector"
)

// bits returns the raw IEEE bit patterns so NaN payloads can be compared.
func bits(t testing.TB, v vector.Vector) []uint64 {
	t.Helper()
	xs := values(t, v)
	out := make([]uint64, len(xs))
	for i, x := range xs {
		out[i] = math.Float64bits(x)
	}
	return out
}

// TestEncodeDecodeRoundTrip: Decode(Encode(a)) == a, bit for bit, for every storage.
func TestEncodeDecodeRoundTrip(t *testing.T) {
	inputs := [][]float64{
		nil,
		{0, 0, 0},
		{1, -2.5, 0, 1e300, -1e-300},
		{math.NaN(), math.Inf(1), 0, math.Inf(-1), math.Copysign(0, -1)},
	}
	for _, s := range storages {
		t.Run(s.name, func(t *testing.T) {
			for _, xs := range inputs {
				a := s.f.CreateVector(xs)

				b, err := vector.Encode(a)
				require.NoError(t, err)

				back, err := vector.Decode(b)
				require.NoError(t, err)
				require.Equal(t, a.Len(), back.Len())
				require.Equal(t, bits(t, a), bits(t, back))
			}
		})
	}
}

// TestDecodeKeepsStorageKind: Sparse stays sparse, everything else decodes dense.
func TestDecodeKeepsStorageKind(t *testing.T) {
	xs := []float64{0, 3, 0}

	b, err := vector.Encode(vector.NewSparseFrom(xs))
	require.NoError(t, err)
	back, err := vector.Decode(b)
	require.NoError(t, err)
	require.IsType(t, &vector.Sparse{}, back)

	b, err = vector.Encode(vector.NewDenseFrom(xs))
	require.NoError(t, err)
	back, err = vector.Decode(b)
	require.NoError(t, err)
	require.IsType(t, &vector.Dense{}, back)

	b, err = vector.Encode(&plainVec{xs: xs})
	require.NoError(t, err)
	back, err = vector.Decode(b)
	require.NoError(t, err)
	require.IsType(t, &vector.Dense{}, back)
	requireValues(t, xs, back)
}

// TestBinaryMarshalerCrossKind: each storage accepts either layout.
func TestBinaryMarshalerCrossKind(t *testing.T) {
	d := vector.NewDenseFrom([]float64{0, 1, 0, 2})
	s := vector.NewSparseFrom([]float64{5, 0, 6})

	db, err := d.MarshalBinary()
	require.NoError(t, err)
	sb, err := s.MarshalBinary()
	require.NoError(t, err)

	var d2 vector.Dense
	require.NoError(t, d2.UnmarshalBinary(sb))
	requireValues(t, []float64{5, 0, 6}, &d2)

	var s2 vector.Sparse
	require.NoError(t, s2.UnmarshalBinary(db))
	requireValues(t, []float64{0, 1, 0, 2}, &s2)
	require.Equal(t, 2, s2.NNZ())
}

// TestDecodeCorrupt: malformed payloads fail with ErrCorrupt, never panic.
func TestDecodeCorrupt(t *testing.T) {
	good, err := vector.Encode(vector.NewDenseFrom([]float64{1, 2}))
	require.NoError(t, err)
	sparse, err := vector.Encode(vector.NewSparseFrom([]float64{0, 1, 2}))
	require.NoError(t, err)

	mutate := func(src []byte, f func(b []byte) []byte) []byte {
		return f(append([]byte(nil), src...))
	}

	cases := map[string][]byte{
		"empty":     nil,
		"short":     good[:5],
		"magic":     mutate(good, func(b []byte) []byte { b[0] = 'X'; return b }),
		"version":   mutate(good, func(b []byte) []byte { b[2] = 9; return b }),
		"kind":      mutate(good, func(b []byte) []byte { b[3] = 7; return b }),
		"truncated": good[:len(good)-1],
		"trailing":  append(append([]byte(nil), good...), 0),
		"length":    mutate(good, func(b []byte) []byte { b[4] = 3; return b }),
		// sparse body: header(12) + nnz(8) + entries(16 each); first index at 20
		"sparse-order": mutate(sparse, func(b []byte) []byte { b[20] = 2; return b }),
		"sparse-range": mutate(sparse, func(b []byte) []byte { b[36] = 3; return b }),
		"sparse-zero": mutate(sparse, func(b []byte) []byte {
			for i := 28; i < 36; i++ {
				b[i] = 0
			}
			return b
		}),
		"sparse-count": sparse[:20],
	}
	for name, b := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := vector.Decode(b)
			require.ErrorIs(t, err, vector.ErrCorrupt)
		})
	}

	var d vector.Dense
	require.ErrorIs(t, d.UnmarshalBinary(good[:3]), vector.ErrCorrupt)

	_, err = vector.Encode(nil)
	require.ErrorIs(t, err, vector.ErrNilVector)
}
