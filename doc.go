// Package zoracle is a reference oracle and validation harness for
// complex-valued BLAS operations: it deterministically generates test
// fixtures, computes their mathematically correct results, freezes both to a
// portable JSON baseline, and validates a target implementation's textual
// output against the oracle within numerical tolerance.
//
// 🚀 What is zoracle?
//
//	A small, deterministic toolkit that brings together:
//		• Reference kernels: Level 1/2/3 complex BLAS semantics, including
//		  Hermitian/triangular structure and conjugate asymmetry
//		• Fixture generation: seeded, reproducible suites with derived
//		  structured variants and hand-authored boundary cases
//		• Serialization: diffable, byte-stable JSON fixture files
//		• Validation: tolerance-based comparison with worst-deviation
//		  reporting and per-scenario isolation
//
// ✨ Why the split matters:
//
//   - blasref is the single source of truth — every expected value in a
//     fixture and every harness comparison goes through it
//   - Determinism is a contract: a fixed seed reproduces byte-identical
//     fixture files across runs and machines
//   - The comparison bound is an exact absolute ε on the complex modulus,
//     with no relative component
//
// Everything is organized under four subpackages plus one command:
//
//	zformat/ — canonical complex-scalar codec (encode + glyph-aware parse)
//	blasref/ — pure reference computations, one function per operation
//	fixture/ — data model, deterministic generator, serializer
//	harness/ — scenario runner, external invocation, report aggregation
//	cmd/zoracle — flagless generate and validate entry points
package zoracle
