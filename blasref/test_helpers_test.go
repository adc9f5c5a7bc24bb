package blasref_test

import (
	"math/cmplx"
	"testing"

	"github.com/katalvlaran/zoracle/blasref"
	"github.com/stretchr/testify/require"
)

// eps is the shared absolute tolerance for closeness checks in this package.
const eps = 1e-10

// requireClose asserts |got-want| <= eps on the complex modulus.
func requireClose(t *testing.T, want, got complex128, msgAndArgs ...interface{}) {
	t.Helper()
	require.LessOrEqual(t, cmplx.Abs(got-want), eps, msgAndArgs...)
}

// requireVecClose asserts element-wise closeness of two vectors.
func requireVecClose(t *testing.T, want, got blasref.Vector) {
	t.Helper()
	require.Len(t, got, len(want))
	for i := range want {
		requireClose(t, want[i], got[i], "index %d", i)
	}
}

// requireMatClose asserts element-wise closeness of two matrices.
func requireMatClose(t *testing.T, want, got blasref.Matrix) {
	t.Helper()
	require.Len(t, got, len(want))
	for i := range want {
		requireVecClose(t, want[i], got[i])
	}
}
