package blasref_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/zoracle/blasref"
	"github.com/stretchr/testify/require"
)

func TestDotu_KnownValues(t *testing.T) {
	// (1)(3+4i) + (2+i)(1-2i) = 3+4i + 4-3i = 7+i
	x := blasref.Vector{complex(1, 0), complex(2, 1)}
	y := blasref.Vector{complex(3, 4), complex(1, -2)}
	got, err := blasref.Dotu(x, y)
	require.NoError(t, err)
	requireClose(t, complex(7, 1), got)

	// Pure imaginary operands: (i)(3i) + (2i)(4i) = -3 - 8 = -11
	x = blasref.Vector{complex(0, 1), complex(0, 2)}
	y = blasref.Vector{complex(0, 3), complex(0, 4)}
	got, err = blasref.Dotu(x, y)
	require.NoError(t, err)
	requireClose(t, complex(-11, 0), got)
}

func TestDotc_ConjugatesFirstOperand(t *testing.T) {
	// conj([3+4i, 1-2i]) · [2-i, 5+3i] = (3-4i)(2-i) + (1+2i)(5+3i) = 1+2i
	x := blasref.Vector{complex(3, 4), complex(1, -2)}
	y := blasref.Vector{complex(2, -1), complex(5, 3)}
	got, err := blasref.Dotc(x, y)
	require.NoError(t, err)
	requireClose(t, complex(1, 2), got)

	// Self dot is the squared norm: real and nonnegative.
	x = blasref.Vector{complex(3, 4), complex(0, 5)}
	got, err = blasref.Dotc(x, x)
	require.NoError(t, err)
	requireClose(t, complex(50, 0), got)
}

func TestDotu_Dotc_AsymmetryOnComplexOperands(t *testing.T) {
	x := blasref.Vector{complex(1, 0), complex(2, 1)}
	y := blasref.Vector{complex(3, 4), complex(1, -2)}
	du, err := blasref.Dotu(x, y)
	require.NoError(t, err)
	dc, err := blasref.Dotc(x, y)
	require.NoError(t, err)
	// Any nonzero imaginary component on an operand makes them differ.
	require.NotEqual(t, du, dc)
}

func TestNrm2_Exactness(t *testing.T) {
	require.InDelta(t, 5.0, blasref.Nrm2(blasref.Vector{complex(3, 4), 0}), eps)
	require.InDelta(t, 1.0, blasref.Nrm2(blasref.Vector{complex(3.0/5, 4.0/5)}), eps)
	require.InDelta(t, math.Sqrt(14), blasref.Nrm2(blasref.Vector{1, 2, 3}), eps)
	require.InDelta(t, math.Sqrt(5), blasref.Nrm2(blasref.Vector{complex(0, 1), complex(0, 2)}), eps)
}

func TestAsum_SumsComponentMagnitudesNotModuli(t *testing.T) {
	// |3|+|4| + |-1|+|0| = 8 — NOT |3+4i| + |-1| = 6.
	x := blasref.Vector{complex(3, 4), complex(-1, 0)}
	require.InDelta(t, 8.0, blasref.Asum(x), eps)

	x = blasref.Vector{complex(1, 1), complex(-2, 3), complex(0, -4)}
	require.InDelta(t, 11.0, blasref.Asum(x), eps)

	require.InDelta(t, 0.0, blasref.Asum(blasref.Vector{0, 0}), eps)
}

func TestScal_And_DScal(t *testing.T) {
	x := blasref.Vector{complex(1, 1), complex(2, -1)}
	got := blasref.Scal(complex(2, 1), x)
	requireVecClose(t, blasref.Vector{complex(1, 3), complex(5, 0)}, got)
	// Input untouched.
	require.Equal(t, blasref.Vector{complex(1, 1), complex(2, -1)}, x)

	got = blasref.DScal(2.5, x)
	requireVecClose(t, blasref.Vector{complex(2.5, 2.5), complex(5, -2.5)}, got)
}

func TestAxpy(t *testing.T) {
	x := blasref.Vector{complex(1, 0), complex(0, 1)}
	y := blasref.Vector{complex(1, 1), complex(1, 1)}
	got, err := blasref.Axpy(complex(2, 0), x, y)
	require.NoError(t, err)
	requireVecClose(t, blasref.Vector{complex(3, 1), complex(1, 3)}, got)

	_, err = blasref.Axpy(1, x, blasref.Vector{1})
	require.ErrorIs(t, err, blasref.ErrDimensionMismatch)
}

func TestSwap_NoAliasing(t *testing.T) {
	x := blasref.Vector{1, 2}
	y := blasref.Vector{3, 4}
	nx, ny, err := blasref.Swap(x, y)
	require.NoError(t, err)
	require.Equal(t, blasref.Vector{3, 4}, nx)
	require.Equal(t, blasref.Vector{1, 2}, ny)

	// Mutating the returned vectors must not touch the originals.
	nx[0], ny[0] = 99, 99
	require.Equal(t, blasref.Vector{1, 2}, x)
	require.Equal(t, blasref.Vector{3, 4}, y)
}

func TestCopy_Independent(t *testing.T) {
	x := blasref.Vector{complex(1, 2)}
	c := blasref.Copy(x)
	require.Equal(t, x, c)
	c[0] = 0
	require.Equal(t, blasref.Vector{complex(1, 2)}, x)
}

func TestMaxAbsIndex(t *testing.T) {
	// |Re|+|Im| per entry: 2, 7, 7 — first maximal wins.
	x := blasref.Vector{complex(1, -1), complex(-3, 4), complex(7, 0)}
	i, err := blasref.MaxAbsIndex(x)
	require.NoError(t, err)
	require.Equal(t, 1, i)

	_, err = blasref.MaxAbsIndex(blasref.Vector{})
	require.ErrorIs(t, err, blasref.ErrEmptyVector)
}

func TestLevel1_DimensionMismatches(t *testing.T) {
	x := blasref.Vector{1, 2}
	y := blasref.Vector{1}
	_, err := blasref.Dotu(x, y)
	require.ErrorIs(t, err, blasref.ErrDimensionMismatch)
	_, err = blasref.Dotc(x, y)
	require.ErrorIs(t, err, blasref.ErrDimensionMismatch)
	_, _, err = blasref.Swap(x, y)
	require.ErrorIs(t, err, blasref.ErrDimensionMismatch)
	// The message names expected vs actual lengths.
	require.ErrorContains(t, err, "2")
	require.ErrorContains(t, err, "1")
}
