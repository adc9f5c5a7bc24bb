// SPDX-License-Identifier: MIT

// Package harness: tolerance comparison.
//
// The comparison is an exact absolute bound on the complex modulus of the
// difference: |actual - expected| <= ε, with NO relative-tolerance component.
// Scaling the bound by magnitude would silently loosen comparisons on large
// fixtures, defeating the frozen-baseline purpose.
package harness

import (
	"fmt"
	"math/cmplx"

	"github.com/katalvlaran/zoracle/blasref"
)

// DefaultTolerance is ε, the maximum allowed absolute deviation for a
// comparison to count as passing.
const DefaultTolerance = 1e-10

// Deviation returns |actual - expected| on the complex modulus.
// Complexity: O(1).
func Deviation(expected, actual complex128) float64 {
	return cmplx.Abs(actual - expected)
}

// WorstDeviation returns the largest element-wise deviation between two
// value sequences. Fails with ErrValueCount when the lengths differ: a
// missing or extra value is an error, not a deviation.
// Complexity: O(n).
func WorstDeviation(expected, actual blasref.Vector) (float64, error) {
	if len(expected) != len(actual) {
		return 0, fmt.Errorf("WorstDeviation: expected %d values, got %d: %w",
			len(expected), len(actual), ErrValueCount)
	}
	worst := 0.0
	for i := range expected {
		if d := Deviation(expected[i], actual[i]); d > worst {
			worst = d
		}
	}

	return worst, nil
}
