// SPDX-License-Identifier: MIT

package store

import (
	"fmt"

	"go.uber.org/zap"
)

// ---------- Defaults (single source of truth) ----------

const (
	// DefaultTable is the table holding (name, data) rows.
	DefaultTable = "vectors"

	// DefaultCompression stores frames uncompressed.
	DefaultCompression = false
)

// Option mutates internal options. Safe to apply repeatedly (last wins).
type Option func(*Options)

// Options holds the resolved store configuration.
type Options struct {
	table    string
	compress bool
	logger   *zap.Logger
}

func defaultOptions() Options {
	return Options{table: DefaultTable, compress: DefaultCompression, logger: zap.NewNop()}
}

// WithTable selects the table name. The name is spliced into SQL, so it
// must be a plain identifier ([A-Za-z_][A-Za-z0-9_]*); anything else panics.
func WithTable(name string) Option {
	if !isIdentifier(name) {
		panic(fmt.Sprintf("store: WithTable: invalid identifier %q", name))
	}

	return func(o *Options) { o.table = name }
}

// WithCompression stores zstd-compressed frames.
func WithCompression(on bool) Option {
	return func(o *Options) { o.compress = on }
}

// WithLogger sets the logger. Panics on nil.
func WithLogger(l *zap.Logger) Option {
	if l == nil {
		panic("store: WithLogger: nil logger")
	}

	return func(o *Options) { o.logger = l }
}

func gatherOptions(opts ...Option) Options {
	o := defaultOptions()
	for _, fn := range opts {
		if fn != nil {
			fn(&o)
		}
	}

	return o
}

func isIdentifier(s string) bool {
	if s == "" {
		return false
	}
	for i, r := range s {
		switch {
		case r == '_', r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z':
		case i > 0 && r >= '0' && r <= '9':
		default:
			return false
		}
	}

	return true
}
