// SPDX-License-Identifier: MIT

// Package blasref: Level 2 (matrix-vector) reference kernels.
package blasref

import "fmt"

// Operation name constants for unified error wrapping.
const (
	opGemv = "Gemv"
	opHemv = "Hemv"
	opTrmv = "Trmv"
	opTrsv = "Trsv"
	opGeru = "Geru"
	opGerc = "Gerc"
	opHer  = "Her"
)

// Gemv computes the affine matrix-vector update alpha·A·x + beta·y (zgemv)
// for A of shape (m, n), x of length n, y of length m.
// Complexity: O(m·n).
func Gemv(alpha complex128, a Matrix, x Vector, beta complex128, y Vector) (Vector, error) {
	// Stage 1: Validate shapes.
	if err := validateMatVec(opGemv, a, x, y); err != nil {
		return nil, err
	}

	// Stage 2: Accumulate row products into a fresh result.
	out := make(Vector, len(y))
	for i, row := range a {
		var acc complex128
		for j, v := range row {
			acc += v * x[j]
		}
		out[i] = alpha*acc + beta*y[i]
	}

	return out, nil
}

// Hemv computes alpha·H·x + beta·y with H constrained Hermitian (zhemv).
// Full storage is used: every entry of H participates, no triangular packing
// shortcut. The Hermitian structure is the caller's contract; Hemv only
// enforces squareness.
// Complexity: O(n²).
func Hemv(alpha complex128, h Matrix, x Vector, beta complex128, y Vector) (Vector, error) {
	if err := validateSquare(opHemv, h); err != nil {
		return nil, err
	}

	return Gemv(alpha, h, x, beta, y)
}

// Trmv computes U·x with U upper triangular (ztrmv). Strictly-lower entries
// are never read.
// Complexity: O(n²).
func Trmv(u Matrix, x Vector) (Vector, error) {
	if err := validateSquare(opTrmv, u); err != nil {
		return nil, err
	}
	n := len(u)
	if len(x) != n {
		return nil, validatorErrorf(opTrmv,
			fmt.Sprintf("expected x of len %d, got %d", n, len(x)),
			ErrDimensionMismatch)
	}

	out := make(Vector, n)
	for i := 0; i < n; i++ {
		var acc complex128
		for j := i; j < n; j++ { // upper triangle only
			acc += u[i][j] * x[j]
		}
		out[i] = acc
	}

	return out, nil
}

// Trsv solves U·x = b for x with U upper triangular (ztrsv) by back
// substitution. Fails with ErrSingular on an exactly zero diagonal entry;
// the fixture generator never produces one, so a hit means caller error.
// Complexity: O(n²).
func Trsv(u Matrix, b Vector) (Vector, error) {
	// Stage 1: Validate shapes and pivots.
	if err := validateSquare(opTrsv, u); err != nil {
		return nil, err
	}
	n := len(u)
	if len(b) != n {
		return nil, validatorErrorf(opTrsv,
			fmt.Sprintf("expected b of len %d, got %d", n, len(b)),
			ErrDimensionMismatch)
	}
	for i := 0; i < n; i++ {
		if u[i][i] == 0 {
			return nil, validatorErrorf(opTrsv,
				fmt.Sprintf("zero pivot at diagonal %d", i),
				ErrSingular)
		}
	}

	// Stage 2: Back substitution from the last row upward.
	x := make(Vector, n)
	for i := n - 1; i >= 0; i-- {
		acc := b[i]
		for j := i + 1; j < n; j++ {
			acc -= u[i][j] * x[j]
		}
		x[i] = acc / u[i][i]
	}

	return x, nil
}

// Geru computes the unconjugated rank-1 update A + alpha·x·yᵀ (zgeru) for
// A of shape (m, n), x of length m, y of length n. A is not mutated.
// Complexity: O(m·n).
func Geru(alpha complex128, x, y Vector, a Matrix) (Matrix, error) {
	return rank1(opGeru, alpha, x, y, a, false)
}

// Gerc computes the conjugated rank-1 update A + alpha·x·conj(y)ᵀ (zgerc).
// Complexity: O(m·n).
func Gerc(alpha complex128, x, y Vector, a Matrix) (Matrix, error) {
	return rank1(opGerc, alpha, x, y, a, true)
}

// rank1 is the shared body of Geru/Gerc; conjY selects conj(y)ᵀ.
func rank1(op string, alpha complex128, x, y Vector, a Matrix, conjY bool) (Matrix, error) {
	if err := validateRectangular(op, a); err != nil {
		return nil, err
	}
	r, c := a.Dims()
	if len(x) != r {
		return nil, validatorErrorf(op,
			fmt.Sprintf("expected x of len %d, got %d", r, len(x)),
			ErrDimensionMismatch)
	}
	if len(y) != c {
		return nil, validatorErrorf(op,
			fmt.Sprintf("expected y of len %d, got %d", c, len(y)),
			ErrDimensionMismatch)
	}

	out := a.Clone()
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			yj := y[j]
			if conjY {
				yj = conj(yj)
			}
			out[i][j] += alpha * x[i] * yj
		}
	}

	return out, nil
}

// Her computes the Hermitian rank-1 update H + alphaReal·x·conj(x)ᵀ (zher).
// The update scalar is real by contract, hence the float64 parameter: passing
// a complex alpha with nonzero imaginary part is made unrepresentable.
// Complexity: O(n²).
func Her(alphaReal float64, x Vector, h Matrix) (Matrix, error) {
	if err := validateSquare(opHer, h); err != nil {
		return nil, err
	}
	n := len(h)
	if len(x) != n {
		return nil, validatorErrorf(opHer,
			fmt.Sprintf("expected x of len %d, got %d", n, len(x)),
			ErrDimensionMismatch)
	}

	alpha := complex(alphaReal, 0)
	out := h.Clone()
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			out[i][j] += alpha * x[i] * conj(x[j])
		}
	}

	return out, nil
}
