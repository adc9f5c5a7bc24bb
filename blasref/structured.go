// SPDX-License-Identifier: MIT

// Package blasref: structural matrix derivations.
// Structured fixtures are DERIVED from a base matrix with these exact
// formulas, never drawn independently, so the structural guarantees
// (self-adjointness, exact zero region) hold by construction.
package blasref

// Operation name constants for unified error wrapping.
const (
	opConjTranspose   = "ConjTranspose"
	opHermitize       = "Hermitize"
	opUpperTriangular = "UpperTriangular"
)

// ConjTranspose returns Aᴴ: the transpose of a with every entry conjugated.
// Complexity: O(r·c).
func ConjTranspose(a Matrix) (Matrix, error) {
	if err := validateRectangular(opConjTranspose, a); err != nil {
		return nil, err
	}
	r, c := a.Dims()
	out := NewMatrix(c, r)
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			out[j][i] = conj(a[i][j])
		}
	}

	return out, nil
}

// Hermitize returns H = (A + Aᴴ) / 2 for square A. H equals its own conjugate
// transpose up to floating-point rounding; in particular every diagonal entry
// has an exactly real average with its own conjugate.
// Complexity: O(n²).
func Hermitize(a Matrix) (Matrix, error) {
	if err := validateSquare(opHermitize, a); err != nil {
		return nil, err
	}
	n := len(a)
	out := NewMatrix(n, n)
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			out[i][j] = (a[i][j] + conj(a[j][i])) / 2
		}
	}

	return out, nil
}

// UpperTriangular returns the upper-triangular extraction of square A:
// entries with row index greater than column index are exactly the zero
// complex value.
// Complexity: O(n²).
func UpperTriangular(a Matrix) (Matrix, error) {
	if err := validateSquare(opUpperTriangular, a); err != nil {
		return nil, err
	}
	n := len(a)
	out := NewMatrix(n, n)
	for i := 0; i < n; i++ {
		for j := i; j < n; j++ {
			out[i][j] = a[i][j]
		}
	}

	return out, nil
}

// conj returns the complex conjugate of z. Kept local to avoid pulling
// math/cmplx into every kernel for a one-liner.
func conj(z complex128) complex128 {
	return complex(real(z), -imag(z))
}
