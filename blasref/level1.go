// SPDX-License-Identifier: MIT

// Package blasref: Level 1 (vector-vector) reference kernels.
package blasref

import (
	"math"
)

// Operation name constants for unified error wrapping.
const (
	opDotu        = "Dotu"
	opDotc        = "Dotc"
	opAxpy        = "Axpy"
	opSwap        = "Swap"
	opMaxAbsIndex = "MaxAbsIndex"
)

// Dotu computes the unconjugated dot product Σ x_i · y_i (zdotu).
// Complexity: O(n).
func Dotu(x, y Vector) (complex128, error) {
	if err := validateSameLen(opDotu, x, y); err != nil {
		return 0, err
	}
	var sum complex128
	for i := range x {
		sum += x[i] * y[i]
	}

	return sum, nil
}

// Dotc computes the conjugated dot product Σ conj(x_i) · y_i (zdotc).
// The FIRST operand is conjugated, never the second; the asymmetry is part
// of the contract.
// Complexity: O(n).
func Dotc(x, y Vector) (complex128, error) {
	if err := validateSameLen(opDotc, x, y); err != nil {
		return 0, err
	}
	var sum complex128
	for i := range x {
		sum += conj(x[i]) * y[i]
	}

	return sum, nil
}

// Nrm2 computes the Euclidean norm sqrt(Σ |x_i|²) (dznrm2).
// Complexity: O(n).
func Nrm2(x Vector) float64 {
	var sum float64
	for _, z := range x {
		sum += real(z)*real(z) + imag(z)*imag(z)
	}

	return math.Sqrt(sum)
}

// Asum computes Σ |Re(x_i)| + Σ |Im(x_i)| (dzasum): the sum of the real and
// imaginary magnitudes separately, NOT the sum of complex moduli. This is the
// defining, easily-misimplemented property of the operation.
// Complexity: O(n).
func Asum(x Vector) float64 {
	var sum float64
	for _, z := range x {
		sum += math.Abs(real(z)) + math.Abs(imag(z))
	}

	return sum
}

// Scal returns alpha · x element-wise (zscal). x is not mutated.
// Complexity: O(n).
func Scal(alpha complex128, x Vector) Vector {
	out := make(Vector, len(x))
	for i, z := range x {
		out[i] = alpha * z
	}

	return out
}

// DScal returns alpha · x element-wise for a real scalar alpha (zdscal).
// Complexity: O(n).
func DScal(alpha float64, x Vector) Vector {
	return Scal(complex(alpha, 0), x)
}

// Axpy returns alpha·x + y element-wise (zaxpy). Neither input is mutated.
// Complexity: O(n).
func Axpy(alpha complex128, x, y Vector) (Vector, error) {
	if err := validateSameLen(opAxpy, x, y); err != nil {
		return nil, err
	}
	out := make(Vector, len(x))
	for i := range x {
		out[i] = alpha*x[i] + y[i]
	}

	return out, nil
}

// Copy returns an independent copy of x (zcopy).
// Complexity: O(n).
func Copy(x Vector) Vector {
	return x.Clone()
}

// Swap returns (y, x) as two freshly allocated vectors (zswap). The originals
// are logically discarded; no aliasing with the inputs.
// Complexity: O(n).
func Swap(x, y Vector) (Vector, Vector, error) {
	if err := validateSameLen(opSwap, x, y); err != nil {
		return nil, nil, err
	}

	return y.Clone(), x.Clone(), nil
}

// MaxAbsIndex returns the index of the entry maximizing |Re(x_i)| + |Im(x_i)|
// (izamax). Ties resolve to the first occurrence. Fails with ErrEmptyVector
// over an empty input.
// Complexity: O(n).
func MaxAbsIndex(x Vector) (int, error) {
	if len(x) == 0 {
		return 0, validatorErrorf(opMaxAbsIndex, "no entries", ErrEmptyVector)
	}
	best, bestAbs := 0, math.Abs(real(x[0]))+math.Abs(imag(x[0]))
	for i := 1; i < len(x); i++ {
		a := math.Abs(real(x[i])) + math.Abs(imag(x[i]))
		if a > bestAbs {
			best, bestAbs = i, a
		}
	}

	return best, nil
}
