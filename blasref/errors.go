// SPDX-License-Identifier: MIT
// Package blasref: sentinel error set (unified, consistent).
// This file defines ONLY package-level sentinel errors used across the
// reference kernels. All kernels MUST return these sentinels and tests MUST
// check them via errors.Is. No kernel panics on user-triggered conditions.

package blasref

import "errors"

// NOTE ON NAMING & PREFIXING
// --------------------------
// Every message is prefixed with "blasref: ..." for consistency and easy
// grepping. Kernels wrap these with fmt.Errorf("<Op>: ...: %w", ErrX) so the
// failing operation and the offending shapes appear in the message while
// callers still match with errors.Is.

var (
	// ErrDimensionMismatch indicates incompatible dimensions between operands,
	// e.g. Dotu over different lengths, or Gemm where a.Cols != b.Rows.
	ErrDimensionMismatch = errors.New("blasref: dimension mismatch")

	// ErrRagged indicates a matrix whose rows have unequal lengths; every
	// kernel requires rectangular input.
	ErrRagged = errors.New("blasref: ragged matrix")

	// ErrNonSquare signals that a square matrix was required but the input
	// wasn't (Hermitian and triangular kernels).
	ErrNonSquare = errors.New("blasref: matrix is not square")

	// ErrSingular is returned by Trsv when a diagonal entry is exactly zero.
	// The generator never produces such a fixture; the solver must detect
	// the pivot rather than silently divide.
	ErrSingular = errors.New("blasref: singular triangular matrix")

	// ErrEmptyVector is returned by reductions that are undefined over an
	// empty vector (MaxAbsIndex).
	ErrEmptyVector = errors.New("blasref: empty vector")
)
