// SPDX-License-Identifier: MIT
// Package fixture: sentinel error set.

package fixture

import "errors"

var (
	// ErrUnknownLevel is returned when a level name is not one of
	// "level1", "level2", "level3".
	ErrUnknownLevel = errors.New("fixture: unknown level name")

	// ErrBadResult is returned when a serialized result payload matches none
	// of the representable shapes (complex object, number, vector, matrix,
	// swap pair).
	ErrBadResult = errors.New("fixture: unrecognized result payload")
)
