package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"benchdiff/internal/benchmark"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const divanFixture = `Timer precision: 20 ns
decode               fastest       │ slowest       │ median        │ mean          │ samples │ iters
├─ decode_binary     1.816 ms      │ 2.343 ms      │ 1.868 ms      │ 1.883 ms      │ 100     │ 100
╰─ decode_ticks      2.381 ms      │ 2.798 ms      │ 2.427 ms      │ 2.454 ms      │ 100     │ 100
`

func TestParseCmd_Stdin(t *testing.T) {
	cmd := newParseCmd()
	out := new(bytes.Buffer)
	errOut := new(bytes.Buffer)
	cmd.SetIn(strings.NewReader(divanFixture))
	cmd.SetOut(out)
	cmd.SetErr(errOut)
	cmd.SetArgs([]string{})

	require.NoError(t, cmd.Execute())

	var results []benchmark.Result
	require.NoError(t, json.Unmarshal(out.Bytes(), &results))
	require.Len(t, results, 2)
	assert.Equal(t, "decode/decode_binary", results[0].Name)
	require.NotNil(t, results[0].Mean.Value)
	assert.Equal(t, int64(1_883_000), *results[0].Mean.Value)
}

func TestParseCmd_OutputFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.json")

	cmd := newParseCmd()
	out := new(bytes.Buffer)
	errOut := new(bytes.Buffer)
	cmd.SetIn(strings.NewReader(divanFixture))
	cmd.SetOut(out)
	cmd.SetErr(errOut)
	cmd.SetArgs([]string{"-", "--output", path})

	require.NoError(t, cmd.Execute())
	assert.Empty(t, out.String())
	assert.Contains(t, errOut.String(), "Parsed 2 benchmark(s)")

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	var results []benchmark.Result
	require.NoError(t, json.Unmarshal(data, &results))
	assert.Len(t, results, 2)
}

func TestParseCmd_InputFile(t *testing.T) {
	in := filepath.Join(t.TempDir(), "raw.txt")
	require.NoError(t, os.WriteFile(in, []byte(divanFixture), 0644))

	cmd := newParseCmd()
	out := new(bytes.Buffer)
	cmd.SetOut(out)
	cmd.SetErr(new(bytes.Buffer))
	cmd.SetArgs([]string{in})

	require.NoError(t, cmd.Execute())
	assert.Contains(t, out.String(), "decode/decode_ticks")
}

func TestParseCmd_MissingInputFile(t *testing.T) {
	cmd := newParseCmd()
	cmd.SetOut(new(bytes.Buffer))
	cmd.SetErr(new(bytes.Buffer))
	cmd.SetArgs([]string{filepath.Join(t.TempDir(), "nope.txt")})

	assert.Error(t, cmd.Execute())
}

func TestParseCmd_WarningsAndQuiet(t *testing.T) {
	// fastest > slowest violates the soft ordering invariant
	bad := `├─ weird  3 ms │ 1 ms │ 2 ms │ 2 ms │ 100 │ 100
`
	cmd := newParseCmd()
	errOut := new(bytes.Buffer)
	cmd.SetIn(strings.NewReader(bad))
	cmd.SetOut(new(bytes.Buffer))
	cmd.SetErr(errOut)
	cmd.SetArgs([]string{})

	require.NoError(t, cmd.Execute())
	assert.Contains(t, errOut.String(), "timing order")

	cmd = newParseCmd()
	errOut = new(bytes.Buffer)
	cmd.SetIn(strings.NewReader(bad))
	cmd.SetOut(new(bytes.Buffer))
	cmd.SetErr(errOut)
	cmd.SetArgs([]string{"--quiet"})

	require.NoError(t, cmd.Execute())
	assert.NotContains(t, errOut.String(), "timing order")
}
