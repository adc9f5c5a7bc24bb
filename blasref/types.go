// SPDX-License-Identifier: MIT

// Package blasref: domain types for the reference kernels.
package blasref

// Vector is an ordered sequence of complex scalars. Order is significant:
// operation semantics depend on position.
type Vector []complex128

// Matrix is a rectangular row-major grid of complex scalars. Kernels validate
// rectangularity before reading; jagged input fails with ErrRagged.
type Matrix []Vector

// Clone returns an independent deep copy of v.
// Complexity: O(n).
func (v Vector) Clone() Vector {
	out := make(Vector, len(v))
	copy(out, v)

	return out
}

// Dims returns the (rows, cols) shape of m. A matrix with zero rows has
// shape (0, 0).
// Complexity: O(1).
func (m Matrix) Dims() (int, int) {
	if len(m) == 0 {
		return 0, 0
	}

	return len(m), len(m[0])
}

// Clone returns an independent deep copy of m.
// Complexity: O(r·c).
func (m Matrix) Clone() Matrix {
	out := make(Matrix, len(m))
	for i, row := range m {
		out[i] = row.Clone()
	}

	return out
}

// NewMatrix allocates a zero-valued r×c matrix.
// Complexity: O(r·c).
func NewMatrix(r, c int) Matrix {
	out := make(Matrix, r)
	for i := range out {
		out[i] = make(Vector, c)
	}

	return out
}
