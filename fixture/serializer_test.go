package fixture_test

import (
	"encoding/json"
	"path/filepath"
	"testing"

	"github.com/katalvlaran/zoracle/fixture"
	"github.com/katalvlaran/zoracle/zformat"
	"github.com/stretchr/testify/require"
)

func TestMarshal_RoundTripLaw(t *testing.T) {
	suite := mustGenerate(t)

	data, err := fixture.Marshal(suite)
	require.NoError(t, err)
	back, err := fixture.Unmarshal(data)
	require.NoError(t, err)
	require.Equal(t, suite, back)

	// Re-marshaling the reloaded suite is byte-identical: safe as a frozen
	// baseline.
	again, err := fixture.Marshal(back)
	require.NoError(t, err)
	require.Equal(t, data, again)
}

func TestMarshal_WireSchema(t *testing.T) {
	suite := mustGenerate(t)
	data, err := fixture.Marshal(suite)
	require.NoError(t, err)

	// Top level is a mapping from level name to an array of case objects;
	// complex values carry the {"real": ..., "imag": ...} schema.
	var raw map[string][]map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(data, &raw))
	require.Len(t, raw, 3)
	require.Contains(t, raw, "level1")
	require.Contains(t, raw, "level2")
	require.Contains(t, raw, "level3")

	var x []map[string]float64
	require.NoError(t, json.Unmarshal(raw["level1"][0]["x"], &x))
	require.Contains(t, x[0], "real")
	require.Contains(t, x[0], "imag")
}

func TestReadWriteFile(t *testing.T) {
	suite := mustGenerate(t)
	path := filepath.Join(t.TempDir(), fixture.DefaultPath)

	require.NoError(t, fixture.WriteFile(path, suite))
	back, err := fixture.ReadFile(path)
	require.NoError(t, err)
	require.Equal(t, suite, back)
}

func TestReadFile_MissingPath(t *testing.T) {
	_, err := fixture.ReadFile(filepath.Join(t.TempDir(), "absent.json"))
	require.Error(t, err)
}

func TestSuite_Cases(t *testing.T) {
	suite := mustGenerate(t)

	l1, err := suite.Cases("level1")
	require.NoError(t, err)
	require.Equal(t, suite.Level1, l1)

	_, err = suite.Cases("level9")
	require.ErrorIs(t, err, fixture.ErrUnknownLevel)
}

func TestResult_PayloadSniffing(t *testing.T) {
	cases := []struct {
		payload string
		want    fixture.Result
	}{
		{`{"real": 1.5, "imag": -2}`, fixture.ScalarResult(complex(1.5, -2))},
		{`3.25`, fixture.RealResult(3.25)},
		{
			`[{"real": 1, "imag": 0}]`,
			fixture.VectorResult(fixture.Vector{zformat.New(1, 0)}),
		},
		{
			`[[{"real": 0, "imag": 1}]]`,
			fixture.MatrixResult(fixture.Matrix{{zformat.New(0, 1)}}),
		},
		{
			`{"x_after": [{"real": 1, "imag": 2}], "y_after": [{"real": 3, "imag": 4}]}`,
			fixture.SwapResult(
				fixture.Vector{zformat.New(1, 2)},
				fixture.Vector{zformat.New(3, 4)},
			),
		},
	}
	for _, tc := range cases {
		var got fixture.Result
		require.NoError(t, json.Unmarshal([]byte(tc.payload), &got), "payload %s", tc.payload)
		require.Equal(t, tc.want, got, "payload %s", tc.payload)

		// And back out again.
		data, err := json.Marshal(got)
		require.NoError(t, err)
		var again fixture.Result
		require.NoError(t, json.Unmarshal(data, &again))
		require.Equal(t, got, again)
	}
}

func TestResult_RejectsUnknownPayloads(t *testing.T) {
	for _, payload := range []string{`"text"`, `true`, `{"foo": 1}`, `null`} {
		var r fixture.Result
		require.ErrorIs(t, json.Unmarshal([]byte(payload), &r), fixture.ErrBadResult,
			"payload %s", payload)
	}
}
