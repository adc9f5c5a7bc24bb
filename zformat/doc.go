// Package zformat provides the canonical textual representation of complex
// scalars used throughout the oracle: a portable JSON-facing value type,
// a locale-independent encoder, and a small formal parser for the affine
// complex grammar emitted by implementations under test.
//
// Accepted textual forms:
//
//	<real>                         bare real, implicit zero imaginary part
//	<real> + <imag><glyph>         e.g. "1.5 + 2.25i"
//	<real> - <imag><glyph>         e.g. "0 - 3.5i"
//
// The imaginary-unit glyph is configurable (see WithImaginaryUnits) because
// renderers disagree on it: some print a plain ASCII 'i', others a stylized
// double-struck 'ⅈ'. The default set accepts both.
//
// Parsing is scanner-based rather than regex-based so the acceptance rules
// stay auditable: the grammar above is the whole contract.
//
// Complexity: Format and Parse are O(len(s)) time, O(1) extra memory.
package zformat
