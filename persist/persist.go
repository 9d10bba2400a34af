// SPDX-License-Identifier: MIT

// Package persist serializes vectors to bytes and streams.
//
// A frame is one kind byte followed by the payload:
//
//	0x00  raw     vector.Encode output
//	0x01  zstd    zstd-compressed vector.Encode output
//
// Write/Read add a uint32 little-endian length prefix per frame so many
// vectors can share one stream. The only contract is round-trip equality:
// Unmarshal(Marshal(v)) is vector.Equal to v and keeps its storage kind.
package persist

import (
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"runtime"

	"github.com/klauspost/compress/zstd"
	"go.uber.org/zap"

	"github.com/katalvlaran/linvec/vector"
)

const (
	frameRaw  byte = 0
	frameZstd byte = 1

	// maxDecodedSize caps zstd output and the frame length Read accepts.
	maxDecodedSize = 1 << 30
)

var (
	// ErrUnknownFrame indicates an empty frame or an unknown frame kind byte.
	ErrUnknownFrame = errors.New("persist: unknown frame")

	// ErrFrameTooLarge indicates a frame longer than the 1 GiB stream limit.
	ErrFrameTooLarge = errors.New("persist: frame too large")
)

var encoder *zstd.Encoder = func() *zstd.Encoder {
	encoder, err := zstd.NewWriter(
		nil,
		zstd.WithEncoderLevel(zstd.SpeedFastest),
		zstd.WithEncoderConcurrency(runtime.NumCPU()),
	)
	if err != nil {
		panic(err)
	}
	return encoder
}()

var decoder *zstd.Decoder = func() *zstd.Decoder {
	decoder, err := zstd.NewReader(
		nil,
		zstd.WithDecoderConcurrency(runtime.NumCPU()),
		zstd.WithDecoderMaxMemory(maxDecodedSize),
	)
	if err != nil {
		panic(err)
	}
	return decoder
}()

// Marshal encodes v into a single frame.
// Errors: vector.ErrNilVector.
func Marshal(v vector.Vector, opts ...Option) ([]byte, error) {
	o := gatherOptions(opts...)

	payload, err := vector.Encode(v)
	if err != nil {
		return nil, fmt.Errorf("persist: Marshal: %w", err)
	}
	if !o.compress {
		return append([]byte{frameRaw}, payload...), nil
	}

	out := encoder.EncodeAll(payload, []byte{frameZstd})
	o.logger.Debug("compressed vector",
		zap.Int("length", v.Len()),
		zap.Int("raw_bytes", len(payload)),
		zap.Int("frame_bytes", len(out)),
		zap.Float64("ratio_pct", 100*float64(len(out))/float64(len(payload))),
	)

	return out, nil
}

// Unmarshal decodes a frame produced by Marshal.
// Errors: ErrUnknownFrame, vector.ErrCorrupt, zstd errors.
func Unmarshal(b []byte, opts ...Option) (vector.Vector, error) {
	o := gatherOptions(opts...)
	if len(b) == 0 {
		return nil, fmt.Errorf("persist: Unmarshal: empty frame: %w", ErrUnknownFrame)
	}

	payload := b[1:]
	switch b[0] {
	case frameRaw:
	case frameZstd:
		var err error
		payload, err = decoder.DecodeAll(payload, nil)
		if err != nil {
			return nil, fmt.Errorf("persist: Unmarshal: %w", err)
		}
		o.logger.Debug("decompressed vector",
			zap.Int("frame_bytes", len(b)),
			zap.Int("raw_bytes", len(payload)),
		)
	default:
		return nil, fmt.Errorf("persist: Unmarshal: kind %d: %w", b[0], ErrUnknownFrame)
	}

	v, err := vector.Decode(payload)
	if err != nil {
		return nil, fmt.Errorf("persist: Unmarshal: %w", err)
	}

	return v, nil
}

// Write appends one length-prefixed frame for v to w.
func Write(w io.Writer, v vector.Vector, opts ...Option) error {
	frame, err := Marshal(v, opts...)
	if err != nil {
		return err
	}
	if uint64(len(frame)) > maxDecodedSize {
		return fmt.Errorf("persist: Write: %d bytes: %w", len(frame), ErrFrameTooLarge)
	}

	var prefix [4]byte
	binary.LittleEndian.PutUint32(prefix[:], uint32(len(frame)))
	if _, err = w.Write(prefix[:]); err != nil {
		return fmt.Errorf("persist: Write: %w", err)
	}
	if _, err = w.Write(frame); err != nil {
		return fmt.Errorf("persist: Write: %w", err)
	}

	return nil
}

// Read consumes one frame from r. It returns io.EOF (unwrapped) when r is
// exhausted exactly at a frame boundary and io.ErrUnexpectedEOF for a
// truncated frame.
func Read(r io.Reader, opts ...Option) (vector.Vector, error) {
	var prefix [4]byte
	if _, err := io.ReadFull(r, prefix[:]); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, io.EOF
		}
		return nil, fmt.Errorf("persist: Read: %w", err)
	}

	size := binary.LittleEndian.Uint32(prefix[:])
	if uint64(size) > maxDecodedSize {
		return nil, fmt.Errorf("persist: Read: %d bytes: %w", size, ErrFrameTooLarge)
	}

	frame := make([]byte, size)
	if _, err := io.ReadFull(r, frame); err != nil {
		if errors.Is(err, io.EOF) {
			err = io.ErrUnexpectedEOF
		}
		return nil, fmt.Errorf("persist: Read: %w", err)
	}

	return Unmarshal(frame, opts...)
}
