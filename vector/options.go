// SPDX-License-Identifier: MIT

// Package vector: functional configuration for tolerant comparisons.
// This file defines:
//   - Option / Options (functional options with internal state),
//   - documented defaults (constants),
//   - WithX constructors with strong validation (panic on nonsensical values),
//   - gatherOptions helper (internal).
//
// Design goals:
//   - Deterministic behavior: no global state.
//   - Safe by construction: panic only on invalid parameters (programmer error).
package vector

import "math"

// ---------- Defaults (single source of truth) ----------

// DefaultEpsilon is the absolute tolerance used by EqualApprox when no
// WithEpsilon option is supplied.
const DefaultEpsilon = 1e-10

// ---------- Internal panic messages (no magic strings) ----------

const panicEpsilonInvalid = "vector: WithEpsilon: eps must be finite, non-negative"

// Option mutates internal options. Safe to apply repeatedly (last wins).
type Option func(*Options)

// Options holds the resolved configuration. Fields are unexported; build it
// through Option values.
type Options struct {
	eps float64 // absolute tolerance for EqualApprox
}

// defaultOptions returns the zero-configuration state.
func defaultOptions() Options {
	return Options{eps: DefaultEpsilon}
}

// WithEpsilon sets the absolute tolerance for EqualApprox.
// Panics if eps is NaN, ±Inf or negative.
func WithEpsilon(eps float64) Option {
	if math.IsNaN(eps) || math.IsInf(eps, 0) || eps < 0 {
		panic(panicEpsilonInvalid)
	}

	return func(o *Options) { o.eps = eps }
}

// gatherOptions applies opts over the defaults. Nil options are skipped.
func gatherOptions(opts ...Option) Options {
	o := defaultOptions()
	for _, fn := range opts {
		if fn != nil {
			fn(&o)
		}
	}

	return o
}
