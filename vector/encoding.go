// SPDX-License-Identifier: MIT
// Package: vector
//
// Purpose:
//   - Self-describing binary layout for both storage kinds, used by
//     MarshalBinary/UnmarshalBinary and by the persist package.
//
// Layout (little-endian):
//
//	offset  size  field
//	0       2     magic "LV"
//	2       1     version (1)
//	3       1     kind (0 dense, 1 sparse)
//	4       8     length n (uint64)
//	dense : n × 8 bytes IEEE 754 float64 bits
//	sparse: 8 bytes nnz, then nnz × (8 bytes index, 8 bytes float64 bits)
//
// Round trip preserves the storage kind and the exact bits of every stored value.

package vector

import (
	"encoding"
	"encoding/binary"
	"fmt"
	"math"
)

const (
	encMagic0    = 'L'
	encMagic1    = 'V'
	encVersion   = 1
	encHeaderLen = 12

	kindDense  byte = 0
	kindSparse byte = 1
)

// Compile-time assertions.
var (
	_ encoding.BinaryMarshaler   = (*Dense)(nil)
	_ encoding.BinaryUnmarshaler = (*Dense)(nil)
	_ encoding.BinaryMarshaler   = (*Sparse)(nil)
	_ encoding.BinaryUnmarshaler = (*Sparse)(nil)
)

// corruptf wraps ErrCorrupt with a reason.
func corruptf(format string, args ...any) error {
	return fmt.Errorf("Decode: "+format+": %w", append(args, ErrCorrupt)...)
}

// putHeader writes the fixed 12-byte header into b.
func putHeader(b []byte, kind byte, n int) {
	b[0], b[1], b[2], b[3] = encMagic0, encMagic1, encVersion, kind
	binary.LittleEndian.PutUint64(b[4:], uint64(n))
}

// Encode serializes v. *Sparse is written in the sparse layout, everything
// else in the dense layout.
// Errors: ErrNilVector. Complexity: O(n), O(nnz) for Sparse.
func Encode(v Vector) ([]byte, error) {
	if err := validateNotNil(v); err != nil {
		return nil, vectorErrorf("Encode", err)
	}

	if s, ok := v.(*Sparse); ok {
		nnz := len(s.idx)
		b := make([]byte, encHeaderLen+8+16*nnz)
		putHeader(b, kindSparse, s.n)
		binary.LittleEndian.PutUint64(b[encHeaderLen:], uint64(nnz))
		off := encHeaderLen + 8
		for k, i := range s.idx {
			binary.LittleEndian.PutUint64(b[off:], uint64(i))
			binary.LittleEndian.PutUint64(b[off+8:], math.Float64bits(s.val[k]))
			off += 16
		}
		return b, nil
	}

	n := v.Len()
	b := make([]byte, encHeaderLen+8*n)
	putHeader(b, kindDense, n)
	off := encHeaderLen
	for i := 0; i < n; i++ {
		x, _ := v.At(i)
		binary.LittleEndian.PutUint64(b[off:], math.Float64bits(x))
		off += 8
	}

	return b, nil
}

// Decode parses a payload produced by Encode and returns a *Dense or *Sparse.
// MAIN DESCRIPTION:
//   - Validates magic, version, kind, and that the payload length matches the
//     header exactly; sparse indices must be strictly ascending, < n, and
//     values non-zero.
//
// Errors: ErrCorrupt. Complexity: O(len(b)).
func Decode(b []byte) (Vector, error) {
	if len(b) < encHeaderLen {
		return nil, corruptf("short header (%d bytes)", len(b))
	}
	if b[0] != encMagic0 || b[1] != encMagic1 {
		return nil, corruptf("bad magic %q", b[:2])
	}
	if b[2] != encVersion {
		return nil, corruptf("unsupported version %d", b[2])
	}
	n64 := binary.LittleEndian.Uint64(b[4:])
	body := b[encHeaderLen:]

	switch b[3] {
	case kindDense:
		if uint64(len(body))%8 != 0 || n64 != uint64(len(body))/8 {
			return nil, corruptf("dense length %d does not match %d payload bytes", n64, len(body))
		}
		n := int(n64)
		data := make([]float64, n)
		for i := 0; i < n; i++ {
			data[i] = math.Float64frombits(binary.LittleEndian.Uint64(body[8*i:]))
		}
		return &Dense{data: data}, nil

	case kindSparse:
		if len(body) < 8 {
			return nil, corruptf("missing sparse entry count")
		}
		nnz64 := binary.LittleEndian.Uint64(body)
		body = body[8:]
		if uint64(len(body))%16 != 0 || nnz64 != uint64(len(body))/16 || nnz64 > n64 {
			return nil, corruptf("sparse entry count %d does not match %d payload bytes", nnz64, len(body))
		}
		if n64 > math.MaxInt {
			return nil, corruptf("length %d overflows int", n64)
		}
		s := &Sparse{n: int(n64)}
		nnz := int(nnz64)
		if nnz > 0 {
			s.idx = make([]int, nnz)
			s.val = make([]float64, nnz)
		}
		prev := -1
		for k := 0; k < nnz; k++ {
			i64 := binary.LittleEndian.Uint64(body[16*k:])
			x := math.Float64frombits(binary.LittleEndian.Uint64(body[16*k+8:]))
			if i64 >= n64 || int(i64) <= prev {
				return nil, corruptf("sparse index %d out of order or range", i64)
			}
			if x == 0 {
				return nil, corruptf("sparse entry %d stores zero", i64)
			}
			prev = int(i64)
			s.idx[k], s.val[k] = prev, x
		}
		return s, nil
	}

	return nil, corruptf("unknown kind %d", b[3])
}

// MarshalBinary implements encoding.BinaryMarshaler (dense layout).
func (v *Dense) MarshalBinary() ([]byte, error) { return Encode(v) }

// UnmarshalBinary implements encoding.BinaryUnmarshaler. Either layout is
// accepted; a sparse payload is expanded.
func (v *Dense) UnmarshalBinary(b []byte) error {
	dec, err := Decode(b)
	if err != nil {
		return err
	}
	switch t := dec.(type) {
	case *Dense:
		v.data = t.data
	case *Sparse:
		v.data = t.Values()
	}

	return nil
}

// MarshalBinary implements encoding.BinaryMarshaler (sparse layout).
func (s *Sparse) MarshalBinary() ([]byte, error) { return Encode(s) }

// UnmarshalBinary implements encoding.BinaryUnmarshaler. Either layout is
// accepted; a dense payload is compressed to its non-zero entries.
func (s *Sparse) UnmarshalBinary(b []byte) error {
	dec, err := Decode(b)
	if err != nil {
		return err
	}
	switch t := dec.(type) {
	case *Sparse:
		*s = *t
	case *Dense:
		*s = *NewSparseFrom(t.data)
	}

	return nil
}
