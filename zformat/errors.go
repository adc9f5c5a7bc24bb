// SPDX-License-Identifier: MIT
// Package zformat: sentinel error set.
// Algorithms MUST return this sentinel (wrapped with context) and tests MUST
// check it via errors.Is. Panics are reserved for programmer errors in option
// constructors.

package zformat

import "errors"

// ErrParse is returned when input text matches neither the affine complex
// form "<real> <+|-> <imag><glyph>" nor a plain real number.
var ErrParse = errors.New("zformat: cannot parse complex number")
