// Package fixture builds, serializes and reloads the oracle's test suites.
//
// 🚀 What is a fixture here?
//
//	A TestCase bundles deterministic pseudo-random (and hand-authored)
//	inputs for one operation family together with the expected outputs of
//	every operation run over them. Expected values are ALWAYS computed
//	through blasref — never hand-derived by a second formula — so the
//	reference library stays the single source of truth.
//
// ✨ Key properties:
//   - Determinism: a fixed seed reproduces byte-identical fixture files
//     across runs and machines. The pseudo-random source is created once
//     per generation run and threaded explicitly through the generator;
//     there is no package-level RNG state and no mid-run re-seeding.
//   - Structured variants (Hermitian, upper-triangular) are derived from the
//     base draw with exact formulas, never drawn independently.
//   - The serialized form is 2-space-indented JSON with decimal floating
//     point text: diffable, portable, and stable under the round-trip law
//     Unmarshal(Marshal(s)) == s.
//
// ⚙️ Usage:
//
//	suite, err := fixture.New(fixture.WithSeed(42)).Generate()
//	if err != nil { ... }
//	data, err := fixture.Marshal(suite)
//
// Lifecycle: a Suite is built once per generation run, serialized immutably,
// and consumed read-only by the validation harness in a separate run.
package fixture
