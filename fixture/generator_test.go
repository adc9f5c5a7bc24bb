package fixture_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/zoracle/blasref"
	"github.com/katalvlaran/zoracle/fixture"
	"github.com/stretchr/testify/require"
)

const eps = 1e-10

func mustGenerate(t *testing.T, opts ...fixture.Option) *fixture.Suite {
	t.Helper()
	suite, err := fixture.New(opts...).Generate()
	require.NoError(t, err)

	return suite
}

func TestGenerate_DeterministicForFixedSeed(t *testing.T) {
	a := mustGenerate(t, fixture.WithSeed(42))
	b := mustGenerate(t, fixture.WithSeed(42))
	require.Equal(t, a, b)

	// Byte-identical fixture files, not merely equal structures.
	da, err := fixture.Marshal(a)
	require.NoError(t, err)
	db, err := fixture.Marshal(b)
	require.NoError(t, err)
	require.Equal(t, da, db)
}

func TestGenerate_ZeroSeedSelectsDefault(t *testing.T) {
	require.Equal(t, mustGenerate(t), mustGenerate(t, fixture.WithSeed(fixture.DefaultSeed)))
}

func TestGenerate_DifferentSeedsDiverge(t *testing.T) {
	require.NotEqual(t, mustGenerate(t, fixture.WithSeed(1)), mustGenerate(t, fixture.WithSeed(2)))
}

func TestWithSeed_PanicsOnNegative(t *testing.T) {
	require.Panics(t, func() { fixture.WithSeed(-1) })
}

func TestGenerate_DeclaredSizesMatchLiteralLengths(t *testing.T) {
	suite := mustGenerate(t)

	for _, tc := range suite.Level1 {
		require.Len(t, tc.X, tc.Size, "case %q", tc.Name)
		if tc.Y != nil {
			require.Len(t, tc.Y, tc.Size, "case %q", tc.Name)
		}
	}
	for _, tc := range suite.Level2 {
		require.Len(t, tc.A, tc.M)
		for _, row := range tc.A {
			require.Len(t, row, tc.N)
		}
		require.Len(t, tc.X, tc.N)
		require.Len(t, tc.Y, tc.M)
	}
	for _, tc := range suite.Level3 {
		require.Len(t, tc.A, tc.M)
		for _, row := range tc.A {
			require.Len(t, row, tc.K)
		}
		require.Len(t, tc.BMat, tc.K)
		for _, row := range tc.BMat {
			require.Len(t, row, tc.N)
		}
		require.Len(t, tc.C, tc.M)
		for _, row := range tc.C {
			require.Len(t, row, tc.N)
		}
	}
}

func TestGenerate_HermitianFixturesAreSelfAdjoint(t *testing.T) {
	suite := mustGenerate(t)
	checked := 0
	for _, level := range [][]fixture.TestCase{suite.Level2, suite.Level3} {
		for _, tc := range level {
			if tc.H == nil {
				continue
			}
			h := tc.H.BlasMatrix()
			ct, err := blasref.ConjTranspose(h)
			require.NoError(t, err)
			for i := range h {
				for j := range h[i] {
					require.LessOrEqual(t, math.Abs(real(h[i][j]-ct[i][j])), eps)
					require.LessOrEqual(t, math.Abs(imag(h[i][j]-ct[i][j])), eps)
				}
			}
			checked++
		}
	}
	require.NotZero(t, checked, "no Hermitian fixtures generated")
}

func TestGenerate_TriangularFixturesHaveExactZeroLowerRegion(t *testing.T) {
	suite := mustGenerate(t)
	checked := 0
	for _, tc := range suite.Level2 {
		if tc.U == nil {
			continue
		}
		for i, row := range tc.U {
			for j, z := range row {
				if i > j {
					require.Zero(t, z.Real, "U entry (%d,%d)", i, j)
					require.Zero(t, z.Imag, "U entry (%d,%d)", i, j)
				}
			}
		}
		checked++
	}
	require.NotZero(t, checked, "no triangular fixtures generated")
}

func TestGenerate_SpecialCaseCatalogue(t *testing.T) {
	suite := mustGenerate(t)

	byName := map[string]fixture.TestCase{}
	for _, tc := range suite.Level1 {
		if tc.Name != "" {
			byName[tc.Name] = tc
		}
	}
	require.Contains(t, byName, "pure_real")
	require.Contains(t, byName, "pure_imaginary")
	require.Contains(t, byName, "unit_norm")

	// pure_real: [1,2,3]·[4,5,6] = 32, conjugation is a no-op.
	pr := byName["pure_real"].Results
	require.InDelta(t, 32.0, pr["zdotu"].Scalar.Real, eps)
	require.InDelta(t, 0.0, pr["zdotu"].Scalar.Imag, eps)
	require.Equal(t, pr["zdotu"].Scalar, pr["zdotc"].Scalar)

	// pure_imaginary: (i·4i + 2i·5i + 3i·6i) = -32.
	pi := byName["pure_imaginary"].Results
	require.InDelta(t, -32.0, pi["zdotu"].Scalar.Real, eps)
	require.InDelta(t, 0.0, pi["zdotu"].Scalar.Imag, eps)

	// unit_norm: |(3+4i)/5| = 1 exactly within eps.
	require.InDelta(t, 1.0, byName["unit_norm"].Results["dznrm2"].Real, eps)
}

func TestGenerate_ResultsRecomputeThroughReferenceLibrary(t *testing.T) {
	// The stored expectation must equal a fresh blasref computation over the
	// stored inputs: the library is the single source of truth.
	suite := mustGenerate(t)

	for _, tc := range suite.Level2 {
		if tc.Name != "" {
			continue // rank-1 case has its own shape contract
		}
		gemv, err := blasref.Gemv(
			tc.Alpha.Complex128(), tc.A.BlasMatrix(), tc.X.BlasVector(),
			tc.Beta.Complex128(), tc.Y.BlasVector())
		require.NoError(t, err)
		stored := tc.Results["zgemv"].Vector.BlasVector()
		require.Len(t, stored, len(gemv))
		for i := range gemv {
			require.InDelta(t, 0, real(gemv[i]-stored[i]), eps)
			require.InDelta(t, 0, imag(gemv[i]-stored[i]), eps)
		}
	}
}

func TestGenerate_AffineIdentityReducesToPlainMultiply(t *testing.T) {
	suite := mustGenerate(t)
	tc := suite.Level2[0]

	a, x := tc.A.BlasMatrix(), tc.X.BlasVector()
	zero := make(blasref.Vector, tc.M)
	plain, err := blasref.Gemv(1, a, x, 0, zero)
	require.NoError(t, err)
	withY, err := blasref.Gemv(1, a, x, 0, tc.Y.BlasVector())
	require.NoError(t, err)
	for i := range plain {
		require.InDelta(t, 0, real(plain[i]-withY[i]), eps)
		require.InDelta(t, 0, imag(plain[i]-withY[i]), eps)
	}
}

func TestGenerate_SwapAndIndexResults(t *testing.T) {
	suite := mustGenerate(t)
	tc := suite.Level1[0]

	// zswap: x_after is the original y and vice versa.
	pair := tc.Results["zswap"].Pair
	require.NotNil(t, pair)
	require.Equal(t, tc.Y, pair.XAfter)
	require.Equal(t, tc.X, pair.YAfter)

	// izamax: a valid index maximizing |Re|+|Im|.
	idx := int(tc.Results["izamax"].Real)
	require.GreaterOrEqual(t, idx, 0)
	require.Less(t, idx, tc.Size)
	best := math.Abs(tc.X[idx].Real) + math.Abs(tc.X[idx].Imag)
	for _, z := range tc.X {
		require.LessOrEqual(t, math.Abs(z.Real)+math.Abs(z.Imag), best+eps)
	}
}
