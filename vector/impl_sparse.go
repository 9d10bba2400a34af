// SPDX-License-Identifier: MIT

// Package vector - Sparse storage.
//
// Purpose:
//   - Compressed storage for vectors that are mostly zero: two parallel slices
//     (ascending indices, values) plus the logical length.
//   - Same observable semantics as Dense; only the cost model differs.
//
// Invariants:
//   - idx is strictly ascending and every entry is in [0, n).
//   - val[k] != 0 for every k (NaN is stored, zeros are not).
//
// Complexity quicksheet:
//   - At: O(log nnz); Set: O(log nnz) lookup + O(nnz) shift on insert/delete
//     (O(1) amortized when appending in ascending order); Clone: O(nnz).

package vector

import (
	"sort"
)

// Sparse is a vector that stores only its non-zero entries.
type Sparse struct {
	n   int       // logical length
	idx []int     // ascending indices of stored entries
	val []float64 // values aligned with idx, never 0
}

// NewSparse creates a zero vector of length n with no stored entries.
// Errors: ErrInvalidArgument when n<0. Complexity: O(1).
func NewSparse(n int) (*Sparse, error) {
	if n < 0 {
		return nil, vectorErrorf("NewSparse", ErrInvalidArgument)
	}

	return &Sparse{n: n}, nil
}

// NewSparseFrom creates a sparse vector equal to values, keeping only the
// non-zero entries. Complexity: O(n).
func NewSparseFrom(values []float64) *Sparse {
	s := &Sparse{n: len(values)}
	for i, x := range values {
		if x != 0 {
			s.idx = append(s.idx, i)
			s.val = append(s.val, x)
		}
	}

	return s
}

// Len returns the logical length. Complexity: O(1).
func (s *Sparse) Len() int { return s.n }

// NNZ returns the number of stored (non-zero) entries. Complexity: O(1).
func (s *Sparse) NNZ() int { return len(s.idx) }

// find returns the position of i in idx and whether it is stored.
func (s *Sparse) find(i int) (int, bool) {
	k := sort.SearchInts(s.idx, i)

	return k, k < len(s.idx) && s.idx[k] == i
}

// At returns the element at i or ErrOutOfRange. Complexity: O(log nnz).
func (s *Sparse) At(i int) (float64, error) {
	if i < 0 || i >= s.n {
		return 0, indexErrorf("Sparse."+ctxAt, i, ErrOutOfRange)
	}
	if k, ok := s.find(i); ok {
		return s.val[k], nil
	}

	return 0, nil
}

// Set stores x at i. Writing 0 removes the entry. The index is validated
// before any mutation.
func (s *Sparse) Set(i int, x float64) error {
	if i < 0 || i >= s.n {
		return indexErrorf("Sparse."+ctxSet, i, ErrOutOfRange)
	}
	k, ok := s.find(i)
	switch {
	case ok && x == 0:
		// delete entry k
		s.idx = append(s.idx[:k], s.idx[k+1:]...)
		s.val = append(s.val[:k], s.val[k+1:]...)
	case ok:
		s.val[k] = x
	case x == 0:
		// nothing stored, nothing to store
	case k == len(s.idx):
		// ascending append fast path
		s.idx = append(s.idx, i)
		s.val = append(s.val, x)
	default:
		s.idx = append(s.idx, 0)
		copy(s.idx[k+1:], s.idx[k:])
		s.idx[k] = i
		s.val = append(s.val, 0)
		copy(s.val[k+1:], s.val[k:])
		s.val[k] = x
	}

	return nil
}

// Clone returns an independent copy. Complexity: O(nnz).
func (s *Sparse) Clone() Vector {
	out := &Sparse{n: s.n}
	if len(s.idx) > 0 {
		out.idx = append(make([]int, 0, len(s.idx)), s.idx...)
		out.val = append(make([]float64, 0, len(s.val)), s.val...)
	}

	return out
}

// Blank returns an empty Sparse of the same length. Complexity: O(1).
func (s *Sparse) Blank() Vector {
	return &Sparse{n: s.n}
}

// Like returns an empty Sparse of length n. Complexity: O(1).
func (s *Sparse) Like(n int) (Vector, error) {
	out, err := NewSparse(n)
	if err != nil {
		return nil, err
	}

	return out, nil
}

// NonZeroDo calls f(i, x) for every stored entry in ascending index order.
// Stops early when f returns false. Complexity: O(nnz).
func (s *Sparse) NonZeroDo(f func(i int, x float64) bool) {
	for k, i := range s.idx {
		if !f(i, s.val[k]) {
			return
		}
	}
}

// Values returns the vector as a dense []float64. Complexity: O(n).
func (s *Sparse) Values() []float64 {
	out := make([]float64, s.n)
	for k, i := range s.idx {
		out[i] = s.val[k]
	}

	return out
}

// String renders the vector as "[x0, x1, ...]" using %g, zeros included.
func (s *Sparse) String() string {
	return formatValues(s.n, func(i int) float64 {
		x, _ := s.At(i)
		return x
	})
}
