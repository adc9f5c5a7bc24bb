// SPDX-License-Identifier: MIT
// Package: blasref
//
// Purpose:
//  - Provide a single, canonical source of truth for shape validation.
//  - Keep kernels minimal by delegating length/rectangularity/square checks here.
//  - Return sentinels wrapped with the failing operation name and the
//    expected-vs-actual dimensions, so a mismatch is diagnosable from the
//    message alone.
//
// Determinism & Performance:
//  - All checks are pure, deterministic and allocate only on failure.
//  - Rectangularity runs O(r); everything else is O(1).

package blasref

import "fmt"

// validatorErrorf wraps an underlying sentinel with the given operation tag
// and a human-readable shape description.
func validatorErrorf(op, detail string, err error) error {
	return fmt.Errorf("%s: %s: %w", op, detail, err)
}

// validateSameLen ensures two vectors have equal length.
func validateSameLen(op string, x, y Vector) error {
	if len(x) != len(y) {
		return validatorErrorf(op,
			fmt.Sprintf("expected equal lengths, got %d and %d", len(x), len(y)),
			ErrDimensionMismatch)
	}

	return nil
}

// validateRectangular ensures every row of m has the same length.
func validateRectangular(op string, m Matrix) error {
	if len(m) == 0 {
		return nil
	}
	cols := len(m[0])
	for i, row := range m {
		if len(row) != cols {
			return validatorErrorf(op,
				fmt.Sprintf("row %d has %d cols, row 0 has %d", i, len(row), cols),
				ErrRagged)
		}
	}

	return nil
}

// validateSquare ensures m is rectangular and square.
func validateSquare(op string, m Matrix) error {
	if err := validateRectangular(op, m); err != nil {
		return err
	}
	r, c := m.Dims()
	if r != c {
		return validatorErrorf(op,
			fmt.Sprintf("expected square, got %dx%d", r, c),
			ErrNonSquare)
	}

	return nil
}

// validateMatVec ensures A is rectangular, x matches A's cols and y matches
// A's rows (the affine form y' = alpha·A·x + beta·y).
func validateMatVec(op string, a Matrix, x, y Vector) error {
	if err := validateRectangular(op, a); err != nil {
		return err
	}
	r, c := a.Dims()
	if len(x) != c {
		return validatorErrorf(op,
			fmt.Sprintf("expected x of len %d, got %d", c, len(x)),
			ErrDimensionMismatch)
	}
	if len(y) != r {
		return validatorErrorf(op,
			fmt.Sprintf("expected y of len %d, got %d", r, len(y)),
			ErrDimensionMismatch)
	}

	return nil
}

// validateSameShape ensures a and b are rectangular with identical shapes.
func validateSameShape(op string, a, b Matrix) error {
	if err := validateRectangular(op, a); err != nil {
		return err
	}
	if err := validateRectangular(op, b); err != nil {
		return err
	}
	ar, ac := a.Dims()
	br, bc := b.Dims()
	if ar != br || ac != bc {
		return validatorErrorf(op,
			fmt.Sprintf("expected %dx%d, got %dx%d", ar, ac, br, bc),
			ErrDimensionMismatch)
	}

	return nil
}
