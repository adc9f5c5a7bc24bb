package zformat_test

import (
	"testing"

	"github.com/katalvlaran/zoracle/zformat"
	"github.com/stretchr/testify/require"
)

func TestWithImaginaryUnits_PanicsOnEmptySet(t *testing.T) {
	// An empty glyph set would reject every affine form: programmer error.
	require.Panics(t, func() { zformat.WithImaginaryUnits() })
}

func TestWithImaginaryUnits_Idempotent(t *testing.T) {
	opt := zformat.WithImaginaryUnits('j', 'ⅉ')
	z, err := zformat.Parse("2 - 3ⅉ", opt, opt)
	require.NoError(t, err)
	require.Equal(t, zformat.New(2, -3), z)
}
