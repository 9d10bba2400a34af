// SPDX-License-Identifier: MIT

package persist

import "go.uber.org/zap"

// ---------- Defaults (single source of truth) ----------

// DefaultCompression controls whether Marshal/Write emit zstd frames.
const DefaultCompression = false

// Option mutates internal options. Safe to apply repeatedly (last wins).
type Option func(*Options)

// Options holds the resolved configuration; build it through Option values.
type Options struct {
	compress bool
	logger   *zap.Logger
}

func defaultOptions() Options {
	return Options{compress: DefaultCompression, logger: zap.NewNop()}
}

// WithCompression toggles zstd compression of the encoded vector.
// Reading never needs it: the frame byte says how to decode.
func WithCompression(on bool) Option {
	return func(o *Options) { o.compress = on }
}

// WithLogger sets the logger used for debug output. Panics on nil.
func WithLogger(l *zap.Logger) Option {
	if l == nil {
		panic("persist: WithLogger: nil logger")
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
