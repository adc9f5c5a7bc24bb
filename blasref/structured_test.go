package blasref_test

import (
	"testing"

	"github.com/katalvlaran/zoracle/blasref"
	"github.com/stretchr/testify/require"
)

func TestConjTranspose(t *testing.T) {
	a := blasref.Matrix{
		{complex(1, 2), complex(3, -4)},
		{complex(0, 1), complex(-1, 0)},
		{complex(5, 5), complex(0, 0)},
	}
	ct, err := blasref.ConjTranspose(a)
	require.NoError(t, err)
	want := blasref.Matrix{
		{complex(1, -2), complex(0, -1), complex(5, -5)},
		{complex(3, 4), complex(-1, 0), complex(0, 0)},
	}
	require.Equal(t, want, ct)
}

func TestHermitize_SelfAdjoint(t *testing.T) {
	a := blasref.Matrix{
		{complex(1, 2), complex(3, -1), complex(0, 4)},
		{complex(2, 2), complex(-1, 1), complex(1, 0)},
		{complex(0, -1), complex(5, 5), complex(2, -3)},
	}
	h, err := blasref.Hermitize(a)
	require.NoError(t, err)

	ct, err := blasref.ConjTranspose(h)
	require.NoError(t, err)
	requireMatClose(t, h, ct)

	// Diagonal entries are exactly real after symmetrization.
	for i := range h {
		require.Zero(t, imag(h[i][i]), "diagonal %d", i)
	}
}

func TestHermitize_RequiresSquare(t *testing.T) {
	_, err := blasref.Hermitize(blasref.Matrix{{1, 2, 3}, {4, 5, 6}})
	require.ErrorIs(t, err, blasref.ErrNonSquare)
}

func TestUpperTriangular_ExactZeroRegion(t *testing.T) {
	a := blasref.Matrix{
		{complex(1, 1), complex(2, 2), complex(3, 3)},
		{complex(4, 4), complex(5, 5), complex(6, 6)},
		{complex(7, 7), complex(8, 8), complex(9, 9)},
	}
	u, err := blasref.UpperTriangular(a)
	require.NoError(t, err)

	for i := range u {
		for j := range u[i] {
			if i > j {
				// Exactly the zero complex value, not merely small.
				require.Equal(t, complex128(0), u[i][j], "entry (%d,%d)", i, j)
			} else {
				require.Equal(t, a[i][j], u[i][j], "entry (%d,%d)", i, j)
			}
		}
	}
}
