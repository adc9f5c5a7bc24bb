// SPDX-License-Identifier: MIT

// Package zformat: canonical encode and grammar-based decode of complex text.
//
// Grammar accepted by Parse (after surrounding whitespace is trimmed):
//
//	value   := real | real ws sign ws unsigned ws glyph
//	real    := [+|-] unsigned
//	unsigned:= digits [ "." digits ] [ ("e"|"E") [+|-] digits ]
//	sign    := "+" | "-"
//	glyph   := one rune from the configured imaginary-unit set
//
// The sign of the imaginary part comes from the separator, never from the
// magnitude itself; this mirrors the affine rendering "a + bi" / "a - bi".
package zformat

import (
	"fmt"
	"math"
	"strconv"
)

// floatFmt is the canonical float rendering: shortest decimal text that
// round-trips through ParseFloat, locale-independent by construction.
const floatFmt = 'g'

// Format renders z in the canonical affine form "a + bi" / "a - bi" using
// the plain ASCII glyph. The output is always re-parseable by Parse with
// default options.
// Complexity: O(1).
func Format(z Complex) string {
	// Fold the imaginary sign into the separator; Signbit keeps -0 folding
	// consistent with every other negative value.
	sep, im := "+", z.Imag
	if math.Signbit(im) {
		sep, im = "-", -im
	}

	return strconv.FormatFloat(z.Real, floatFmt, -1, 64) +
		" " + sep + " " +
		strconv.FormatFloat(im, floatFmt, -1, 64) + string(DefaultGlyphASCII)
}

// Parse decodes text produced by an implementation under test into a Complex.
// It accepts the affine complex form with any configured imaginary-unit glyph
// and a bare real number (implicit zero imaginary part). Any other input
// fails with a wrapped ErrParse.
// Complexity: O(len(s)).
func Parse(s string, opts ...Option) (Complex, error) {
	// Stage 1: Resolve configuration and prime the scanner.
	o := gatherOptions(opts...)
	sc := scanner{src: []rune(s)}
	sc.skipSpaces()

	// Stage 2: Real part (signed).
	re, ok := sc.scanFloat(true)
	if !ok {
		return Complex{}, parseErrorf(s, "real part")
	}
	sc.skipSpaces()

	// Bare real number: done.
	if sc.eof() {
		return New(re, 0), nil
	}

	// Stage 3: Separator sign, imaginary magnitude, glyph.
	sign := sc.next()
	if sign != '+' && sign != '-' {
		return Complex{}, parseErrorf(s, "separator")
	}
	sc.skipSpaces()
	im, ok := sc.scanFloat(false)
	if !ok {
		return Complex{}, parseErrorf(s, "imaginary part")
	}
	sc.skipSpaces()
	if sc.eof() || !o.acceptsGlyph(sc.next()) {
		return Complex{}, parseErrorf(s, "imaginary unit")
	}
	sc.skipSpaces()
	if !sc.eof() {
		return Complex{}, parseErrorf(s, "trailing text")
	}

	// Stage 4: Fold the separator sign into the imaginary part.
	if sign == '-' {
		im = -im
	}

	return New(re, im), nil
}

// parseErrorf wraps ErrParse with the offending input and the grammar
// position that rejected it.
func parseErrorf(input, where string) error {
	return fmt.Errorf("Parse %q: bad %s: %w", input, where, ErrParse)
}

// scanner is a minimal cursor over the input runes. It exists so the
// acceptance rules stay explicit; no regular expressions are involved.
type scanner struct {
	src []rune
	pos int
}

// eof reports whether the cursor is past the last rune.
func (s *scanner) eof() bool { return s.pos >= len(s.src) }

// next consumes and returns the current rune. Callers must check eof first.
func (s *scanner) next() rune {
	r := s.src[s.pos]
	s.pos++

	return r
}

// skipSpaces advances past ASCII whitespace.
func (s *scanner) skipSpaces() {
	for !s.eof() {
		switch s.src[s.pos] {
		case ' ', '\t', '\r', '\n':
			s.pos++
		default:
			return
		}
	}
}

// scanFloat consumes a decimal float at the cursor and returns its value.
// When signed is false a leading sign is rejected (the affine grammar carries
// the imaginary sign on the separator). Returns ok=false without advancing
// past a malformed token boundary guarantee: on failure the cursor position
// is unspecified and the caller must abandon the parse.
func (s *scanner) scanFloat(signed bool) (float64, bool) {
	start := s.pos

	// Optional sign.
	if !s.eof() && (s.src[s.pos] == '+' || s.src[s.pos] == '-') {
		if !signed {
			return 0, false
		}
		s.pos++
	}

	// Mantissa: digits [ "." digits ], at least one digit overall.
	digits := s.scanDigits()
	if !s.eof() && s.src[s.pos] == '.' {
		s.pos++
		digits += s.scanDigits()
	}
	if digits == 0 {
		return 0, false
	}

	// Optional exponent; consumed only when well-formed, otherwise left for
	// the caller (it will fail as trailing text, which is correct).
	if !s.eof() && (s.src[s.pos] == 'e' || s.src[s.pos] == 'E') {
		mark := s.pos
		s.pos++
		if !s.eof() && (s.src[s.pos] == '+' || s.src[s.pos] == '-') {
			s.pos++
		}
		if s.scanDigits() == 0 {
			s.pos = mark // not an exponent after all
		}
	}

	v, err := strconv.ParseFloat(string(s.src[start:s.pos]), 64)
	if err != nil {
		return 0, false
	}

	return v, true
}

// scanDigits consumes a maximal run of ASCII digits and returns its length.
func (s *scanner) scanDigits() int {
	n := 0
	for !s.eof() && s.src[s.pos] >= '0' && s.src[s.pos] <= '9' {
		s.pos++
		n++
	}

	return n
}
