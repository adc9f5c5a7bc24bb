// Package blasref is the reference computation library: one pure function per
// modeled complex BLAS operation, each reproducing the textbook definition
// bit-for-bit up to standard floating-point rounding.
//
// 🚀 What lives here?
//
//	Level 1 (vector):        Dotu, Dotc, Nrm2, Asum, Scal, DScal, Axpy,
//	                         Copy, Swap, MaxAbsIndex
//	Level 2 (matrix-vector): Gemv, Hemv, Trmv, Trsv, Geru, Gerc, Her
//	Level 3 (matrix-matrix): Gemm, Hemm, Herk
//	Structure derivations:   ConjTranspose, Hermitize, UpperTriangular
//
// ✨ Design rules:
//   - Every function is total over conforming shapes and side-effect free;
//     inputs are never mutated, results are freshly allocated.
//   - Shape mismatches fail with ErrDimensionMismatch naming expected vs
//     actual dimensions; a zero pivot in Trsv fails with ErrSingular.
//   - Hermitian operations use full storage: no triangular packing tricks,
//     the whole matrix participates.
//   - The conjugation asymmetry of Dotc (FIRST operand conjugated) and the
//     |Re|+|Im| definition of Asum are load-bearing and covered by tests.
//
// This package is the single source of truth for expected values: the fixture
// generator and the validation harness both compute through it and never
// hand-derive a result by a different formula.
//
// Complexity: Level 1 ops are O(n); Level 2 ops O(m·n); Level 3 ops O(m·k·n).
package blasref
