// SPDX-License-Identifier: MIT

// Package vector: the public Vector interface and the optional capability
// interfaces that kernels probe for.
package vector

// Vector is a fixed-length, index-addressable sequence of float64 values.
// The interface is the storage capability set shared by Dense and Sparse;
// every arithmetic and structural operation in this package is written
// against it, so any conforming storage is interchangeable.
//
// Vector values are not safe for concurrent mutation: Set (and the in-place
// helpers Swap and Fill) are not synchronized. Callers sharing one instance
// across goroutines must lock externally.
type Vector interface {
	// Len returns the number of addressable elements.
	// Complexity: O(1).
	Len() int

	// At returns the element at index i.
	// Returns ErrOutOfRange if i<0 or i>=Len().
	At(i int) (float64, error)

	// Set overwrites the element at index i in place.
	// Returns ErrOutOfRange (and leaves the vector unchanged) on a bad index.
	Set(i int, x float64) error

	// Clone returns an independent deep copy of the same storage kind.
	Clone() Vector

	// Blank returns a zero vector with the same length and storage kind.
	Blank() Vector

	// Like returns a zero vector of length n with the same storage kind.
	// Returns ErrInvalidArgument for n<0.
	Like(n int) (Vector, error)
}

// nonZeroDoer is implemented by storages that can enumerate their non-zero
// entries cheaper than a full At scan. Both Dense and Sparse implement it.
type nonZeroDoer interface {
	NonZeroDo(f func(i int, x float64) bool)
}

// Compile-time assertions.
var (
	_ Vector      = (*Dense)(nil)
	_ Vector      = (*Sparse)(nil)
	_ nonZeroDoer = (*Dense)(nil)
	_ nonZeroDoer = (*Sparse)(nil)
)
