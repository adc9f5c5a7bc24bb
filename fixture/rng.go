// Package fixture - RNG utilities for deterministic generation.
//
// This file centralizes pseudo-random drawing for the whole generator.
//
// Goals:
//   - Determinism: same seed ⇒ byte-identical fixture files across platforms.
//   - Encapsulation: a single RNG factory; no time-based sources hidden
//     anywhere, no package-level generator state.
//   - Reproducibility discipline: the source is created ONCE per generation
//     run and threaded through every draw; re-seeding mid-run is forbidden
//     because it would break reproducibility of later fixtures.
//
// Draw order is part of the determinism contract and must not be reordered:
// vectors draw all real parts first, then all imaginary parts; matrices draw
// row-major, real pass before imaginary pass.
//
// Concurrency:
//   - math/rand.Rand is NOT goroutine-safe. The generator is single-threaded
//     by design, so a single stream suffices.
package fixture

import "math/rand"

// DefaultSeed is the fixed seed used when callers pass seed==0. The value is
// the original frozen-baseline seed; changing it invalidates every fixture
// file generated so far.
const DefaultSeed int64 = 42

// rngFromSeed returns a deterministic *rand.Rand.
// Policy: seed==0 ⇒ use DefaultSeed; otherwise use the provided seed verbatim.
//
// Complexity: O(1).
func rngFromSeed(seed int64) *rand.Rand {
	s := seed
	if s == 0 {
		s = DefaultSeed
	}

	return rand.New(rand.NewSource(s))
}

// drawVector draws an n-vector with independent standard-normal real and
// imaginary parts: a full real pass, then a full imaginary pass.
//
// Complexity: O(n).
func drawVector(rng *rand.Rand, n int) Vector {
	out := make(Vector, n)
	for i := range out {
		out[i].Real = rng.NormFloat64()
	}
	for i := range out {
		out[i].Imag = rng.NormFloat64()
	}

	return out
}

// drawMatrix draws an r×c matrix row-major: a full real pass, then a full
// imaginary pass.
//
// Complexity: O(r·c).
func drawMatrix(rng *rand.Rand, r, c int) Matrix {
	out := make(Matrix, r)
	for i := range out {
		out[i] = make(Vector, c)
	}
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			out[i][j].Real = rng.NormFloat64()
		}
	}
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			out[i][j].Imag = rng.NormFloat64()
		}
	}

	return out
}
