// SPDX-License-Identifier: MIT
// Package vector: sentinel error set.
// All operations return these sentinels (wrapped with the operation tag via
// vectorErrorf) and tests check them via errors.Is. No operation panics on
// user-triggered error conditions; option constructors panic on programmer
// errors only.

package vector

import (
	"errors"
	"fmt"
)

// ERROR PRIORITY (enforced in tests):
// nil operand -> argument/index validation -> dimension mismatch -> numeric (zero norm).

var (
	// ErrOutOfRange indicates an index outside [0, Len()) in At, Set or Swap.
	ErrOutOfRange = errors.New("vector: index out of range")

	// ErrDimensionMismatch indicates operands of incompatible lengths, or a
	// row vector whose length differs from the matrix row count.
	ErrDimensionMismatch = errors.New("vector: dimension mismatch")

	// ErrInvalidRange indicates a slice window with from<0, to>Len() or from>to.
	ErrInvalidRange = errors.New("vector: invalid range")

	// ErrInvalidArgument indicates a negative length (constructors, Resize).
	ErrInvalidArgument = errors.New("vector: invalid argument")

	// ErrNilVector indicates that a nil Vector (receiver or argument) was used.
	ErrNilVector = errors.New("vector: nil vector")

	// ErrZeroNorm is returned by Normalize when the Euclidean norm is zero.
	ErrZeroNorm = errors.New("vector: zero norm")

	// ErrEmpty is returned by reductions that have no value on an empty vector (Max, Min).
	ErrEmpty = errors.New("vector: empty vector")

	// ErrCorrupt indicates a malformed binary payload in Decode/UnmarshalBinary.
	ErrCorrupt = errors.New("vector: corrupt encoding")
)

// vectorErrorf wraps err with an operation tag while preserving the sentinel.
func vectorErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// indexErrorf wraps err with the method name and offending index.
func indexErrorf(method string, i int, err error) error {
	return fmt.Errorf("%s(%d): %w", method, i, err)
}
