// SPDX-License-Identifier: MIT

// Package harness: functional configuration for the runner.
//
// Design goals mirror the rest of the repository: documented defaults,
// unexported option state, panic only on programmer error.
package harness

import "github.com/katalvlaran/zoracle/zformat"

// panicToleranceInvalid is the programmer-error message for a nonsensical ε.
const panicToleranceInvalid = "harness: WithTolerance: tolerance must be > 0"

// Option mutates internal runner options. Safe to apply repeatedly.
type Option func(*Options)

// Options carries the resolved runner configuration.
type Options struct {
	invoker   Invoker          // nil ⇒ oracle self-check mode
	tolerance float64          // absolute ε
	parseOpts []zformat.Option // forwarded to the complex-value parser
}

// WithInvoker attaches an external-implementation invoker. Scenarios with a
// TestName run through it; without an invoker every scenario self-checks.
func WithInvoker(inv Invoker) Option {
	return func(o *Options) {
		o.invoker = inv
	}
}

// WithTolerance overrides the absolute comparison tolerance.
// Panics on a non-positive value: a zero or negative ε can never pass and is
// always a programming mistake.
func WithTolerance(tol float64) Option {
	if tol <= 0 {
		panic(panicToleranceInvalid)
	}

	return func(o *Options) {
		o.tolerance = tol
	}
}

// WithParseOptions forwards codec options (e.g. an alternate imaginary-unit
// glyph set) to the parser applied to external output.
func WithParseOptions(opts ...zformat.Option) Option {
	return func(o *Options) {
		o.parseOpts = opts
	}
}

// gatherOptions folds opts over the documented defaults.
func gatherOptions(opts ...Option) Options {
	o := Options{tolerance: DefaultTolerance}
	for _, opt := range opts {
		opt(&o)
	}

	return o
}
