// SPDX-License-Identifier: MIT

// Package vector - Dense storage & safe accessors.
//
// Purpose:
//   - Contiguous []float64 storage; the default variant produced by factory.Dense.
//   - Safety at the public surface: At/Set return errors instead of panicking.
//   - Zero-copy bridge into gonum BLAS via RawVector for the arithmetic kernels.
//
// Complexity quicksheet:
//   - NewDense: O(n) zero-init; At/Set: O(1); Clone/Blank/Like: O(n); RawVector: O(1).

package vector

import (
	"fmt"
	"strings"

	"gonum.org/v1/gonum/blas/blas64"
)

// ---------- error context tags ----------

const (
	ctxAt  = "At"
	ctxSet = "Set"
)

// ---------- Formatting literals  ----------
const (
	_fmtOpen  = "["
	_fmtClose = "]"
	_fmtSep   = ", "
)

// Dense is a vector backed by one contiguous []float64.
// len(data) is the vector length; the slice is never shared with another
// Dense (every constructor and operation allocates).
type Dense struct {
	data []float64
}

// NewDense creates a zero vector of length n.
// MAIN DESCRIPTION:
//   - "Blank" construction: n zeros.
//
// Errors:
//   - ErrInvalidArgument when n<0.
//
// Complexity:
//   - Time O(n), Space O(n).
func NewDense(n int) (*Dense, error) {
	if n < 0 {
		return nil, vectorErrorf("NewDense", ErrInvalidArgument)
	}

	return &Dense{data: make([]float64, n)}, nil
}

// NewDenseFrom creates a vector holding a copy of values.
// A nil or empty slice yields the empty vector. Complexity: O(n).
func NewDenseFrom(values []float64) *Dense {
	data := make([]float64, len(values))
	copy(data, values)

	return &Dense{data: data}
}

// Len returns the number of elements. Complexity: O(1).
func (v *Dense) Len() int { return len(v.data) }

// At returns the element at i or ErrOutOfRange. Complexity: O(1).
func (v *Dense) At(i int) (float64, error) {
	if i < 0 || i >= len(v.data) {
		return 0, indexErrorf("Dense."+ctxAt, i, ErrOutOfRange)
	}

	return v.data[i], nil
}

// Set stores x at i or returns ErrOutOfRange without touching the buffer.
// Complexity: O(1).
func (v *Dense) Set(i int, x float64) error {
	if i < 0 || i >= len(v.data) {
		return indexErrorf("Dense."+ctxSet, i, ErrOutOfRange)
	}
	v.data[i] = x

	return nil
}

// Clone returns an independent copy. Complexity: O(n).
func (v *Dense) Clone() Vector {
	return NewDenseFrom(v.data)
}

// Blank returns a zero Dense of the same length. Complexity: O(n).
func (v *Dense) Blank() Vector {
	return &Dense{data: make([]float64, len(v.data))}
}

// Like returns a zero Dense of length n. Complexity: O(n).
func (v *Dense) Like(n int) (Vector, error) {
	out, err := NewDense(n)
	if err != nil {
		return nil, err
	}

	return out, nil
}

// NonZeroDo calls f(i, x) for every x != 0 in ascending index order.
// NaN counts as non-zero. Stops early when f returns false.
func (v *Dense) NonZeroDo(f func(i int, x float64) bool) {
	for i, x := range v.data {
		if x == 0 {
			continue
		}
		if !f(i, x) {
			return
		}
	}
}

// Do calls f(i, x) for every element in ascending index order, zeros included.
// Stops early when f returns false.
func (v *Dense) Do(f func(i int, x float64) bool) {
	for i, x := range v.data {
		if !f(i, x) {
			return
		}
	}
}

// Values returns a copy of the elements.
func (v *Dense) Values() []float64 {
	out := make([]float64, len(v.data))
	copy(out, v.data)

	return out
}

// RawVector returns a blas64.Vector view over the buffer (Inc == 1).
// Writes through Data are visible in v.
func (v *Dense) RawVector() blas64.Vector {
	return blas64.Vector{N: len(v.data), Data: v.data, Inc: 1}
}

// String renders the vector as "[x0, x1, ...]" using %g.
func (v *Dense) String() string {
	return formatValues(len(v.data), func(i int) float64 { return v.data[i] })
}

// formatValues is shared by Dense and Sparse String methods.
func formatValues(n int, at func(i int) float64) string {
	var b strings.Builder
	b.WriteString(_fmtOpen)
	for i := 0; i < n; i++ {
		b.WriteString(fmt.Sprintf("%g", at(i)))
		if i+1 < n {
			b.WriteString(_fmtSep)
		}
	}
	b.WriteString(_fmtClose)

	return b.String()
}
