// SPDX-License-Identifier: MIT

// Package blasref: Level 3 (matrix-matrix) reference kernels.
package blasref

import "fmt"

// Operation name constants for unified error wrapping.
const (
	opGemm = "Gemm"
	opHemm = "Hemm"
	opHerk = "Herk"
)

// Gemm computes the affine matrix update alpha·A·B + beta·C (zgemm) for
// A (m×k), B (k×n), C (m×n). C is not mutated.
// Complexity: O(m·k·n).
func Gemm(alpha complex128, a, b Matrix, beta complex128, c Matrix) (Matrix, error) {
	// Stage 1: Validate shapes.
	if err := validateRectangular(opGemm, a); err != nil {
		return nil, err
	}
	if err := validateRectangular(opGemm, b); err != nil {
		return nil, err
	}
	if err := validateRectangular(opGemm, c); err != nil {
		return nil, err
	}
	m, k := a.Dims()
	br, n := b.Dims()
	if br != k {
		return nil, validatorErrorf(opGemm,
			fmt.Sprintf("expected B with %d rows, got %d", k, br),
			ErrDimensionMismatch)
	}
	cr, cc := c.Dims()
	if cr != m || cc != n {
		return nil, validatorErrorf(opGemm,
			fmt.Sprintf("expected C of %dx%d, got %dx%d", m, n, cr, cc),
			ErrDimensionMismatch)
	}

	// Stage 2: Triple loop; row-major accumulation.
	out := NewMatrix(m, n)
	for i := 0; i < m; i++ {
		for j := 0; j < n; j++ {
			var acc complex128
			for p := 0; p < k; p++ {
				acc += a[i][p] * b[p][j]
			}
			out[i][j] = alpha*acc + beta*c[i][j]
		}
	}

	return out, nil
}

// Hemm computes alpha·H·B + beta·C with the left operand H constrained
// Hermitian (zhemm, left-side variant). Full storage; Hemm enforces only
// squareness of H, the Hermitian structure is the caller's contract.
// Complexity: O(n²·cols(B)).
func Hemm(alpha complex128, h, b Matrix, beta complex128, c Matrix) (Matrix, error) {
	if err := validateSquare(opHemm, h); err != nil {
		return nil, err
	}

	return Gemm(alpha, h, b, beta, c)
}

// Herk computes the Hermitian rank-k update alphaReal·A·Aᴴ + betaReal·C
// (zherk) for A (n×k) and Hermitian C (n×n). Both scalars are real by
// contract, hence the float64 parameters.
// Complexity: O(n²·k).
func Herk(alphaReal float64, a Matrix, betaReal float64, c Matrix) (Matrix, error) {
	// Stage 1: Validate shapes.
	if err := validateRectangular(opHerk, a); err != nil {
		return nil, err
	}
	if err := validateSquare(opHerk, c); err != nil {
		return nil, err
	}
	n, k := a.Dims()
	if len(c) != n {
		return nil, validatorErrorf(opHerk,
			fmt.Sprintf("expected C of %dx%d, got %dx%d", n, n, len(c), len(c)),
			ErrDimensionMismatch)
	}

	// Stage 2: out[i][j] = alpha·Σ_p a[i][p]·conj(a[j][p]) + beta·c[i][j].
	alpha, beta := complex(alphaReal, 0), complex(betaReal, 0)
	out := NewMatrix(n, n)
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			var acc complex128
			for p := 0; p < k; p++ {
				acc += a[i][p] * conj(a[j][p])
			}
			out[i][j] = alpha*acc + beta*c[i][j]
		}
	}

	return out, nil
}
