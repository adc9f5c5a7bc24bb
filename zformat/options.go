// SPDX-License-Identifier: MIT

// Package zformat: functional configuration for the complex-number parser.
// This file defines:
//   - Option / Options (functional options with internal state),
//   - documented defaults (constants),
//   - WithX constructors with strong validation (panic on nonsensical values),
//   - gatherOptions helper (internal) that enforces invariants.
//
// Design goals:
//   - Deterministic behavior: no global state, no hidden configuration.
//   - Safe by construction: panic only on invalid parameters (programmer error).
//   - Auditability: the accepted glyph set is explicit data, not a regex class.
package zformat

// Default imaginary-unit glyphs accepted by Parse.
// The plain ASCII letter covers most renderers; the double-struck variant
// covers pretty-printers that emit U+2148.
const (
	// DefaultGlyphASCII is the ordinary imaginary-unit letter.
	DefaultGlyphASCII = 'i'

	// DefaultGlyphDoubleStruck is the stylized imaginary unit (ⅈ, U+2148).
	DefaultGlyphDoubleStruck = 'ⅈ'
)

// panicNoGlyphs is the programmer-error message for an empty glyph set.
const panicNoGlyphs = "zformat: WithImaginaryUnits: at least one glyph required"

// Option mutates internal parser options. Safe to apply repeatedly.
// Constructors MUST panic only on nonsensical values (programmer error).
type Option func(*Options)

// Options carries the resolved parser configuration. Fields are unexported;
// public APIs consume ...Option.
type Options struct {
	glyphs map[rune]struct{} // accepted imaginary-unit runes
}

// WithImaginaryUnits replaces the accepted imaginary-unit glyph set.
// Panics if no glyph is supplied (an empty set would reject every affine
// complex form, which is never intended).
func WithImaginaryUnits(glyphs ...rune) Option {
	if len(glyphs) == 0 {
		panic(panicNoGlyphs)
	}

	return func(o *Options) {
		o.glyphs = make(map[rune]struct{}, len(glyphs))
		for _, g := range glyphs {
			o.glyphs[g] = struct{}{}
		}
	}
}

// defaultOptions returns the documented default configuration.
func defaultOptions() Options {
	return Options{glyphs: map[rune]struct{}{
		DefaultGlyphASCII:        {},
		DefaultGlyphDoubleStruck: {},
	}}
}

// gatherOptions folds opts over the defaults and enforces invariants.
func gatherOptions(opts ...Option) Options {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	return o
}

// acceptsGlyph reports whether r is a configured imaginary-unit glyph.
func (o Options) acceptsGlyph(r rune) bool {
	_, ok := o.glyphs[r]

	return ok
}
