// SPDX-License-Identifier: MIT

// Package fixture: conversions between the serialized interchange types and
// the native complex128 forms consumed by blasref.
package fixture

import (
	"github.com/samber/lo"

	"github.com/katalvlaran/zoracle/blasref"
	"github.com/katalvlaran/zoracle/zformat"
)

// toVector converts a native vector into its serialized form.
// Complexity: O(n).
func toVector(v blasref.Vector) Vector {
	return lo.Map(v, func(z complex128, _ int) zformat.Complex {
		return zformat.FromComplex128(z)
	})
}

// toMatrix converts a native matrix into its serialized form.
// Complexity: O(r·c).
func toMatrix(m blasref.Matrix) Matrix {
	return lo.Map(m, func(row blasref.Vector, _ int) Vector {
		return toVector(row)
	})
}

// BlasVector converts the serialized vector back to the native form.
// Complexity: O(n).
func (v Vector) BlasVector() blasref.Vector {
	return lo.Map(v, func(z zformat.Complex, _ int) complex128 {
		return z.Complex128()
	})
}

// BlasMatrix converts the serialized matrix back to the native form.
// Complexity: O(r·c).
func (m Matrix) BlasMatrix() blasref.Matrix {
	return lo.Map(m, func(row Vector, _ int) blasref.Vector {
		return row.BlasVector()
	})
}
