// SPDX-License-Identifier: MIT

// Package zformat: domain types for complex scalar interchange.
// This file intentionally contains ONLY the value type and its conversions;
// the sentinel error lives in errors.go and parsing options in options.go
// per the package-layout conventions used across the repository.
package zformat

// Complex is the interchange representation of a complex scalar.
// It exists separately from complex128 so fixtures serialize with the stable
// {"real": ..., "imag": ...} wire schema. Equality is exact (struct equality);
// tolerance-based closeness is a harness concern, never an identity one.
type Complex struct {
	Real float64 `json:"real"`
	Imag float64 `json:"imag"`
}

// New builds a Complex from its parts.
// Complexity: O(1).
func New(re, im float64) Complex {
	return Complex{Real: re, Imag: im}
}

// FromComplex128 converts a native complex128 into the interchange form.
// Complexity: O(1).
func FromComplex128(z complex128) Complex {
	return Complex{Real: real(z), Imag: imag(z)}
}

// Complex128 converts the interchange form back to a native complex128.
// Complexity: O(1).
func (z Complex) Complex128() complex128 {
	return complex(z.Real, z.Imag)
}
