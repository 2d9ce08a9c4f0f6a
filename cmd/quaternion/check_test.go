package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/sebdah/goldie/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCheckGolden(t *testing.T) {
	stdout, _, err := execute(t, "", "check", filepath.Join("testdata", "cases.yaml"))
	require.NoError(t, err)

	g := goldie.New(t,
		goldie.WithFixtureDir("testdata/golden"),
		goldie.WithNameSuffix(".golden"),
	)
	g.Assert(t, "check", []byte(stdout))
}

func TestCheckFailures(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cases.yaml")
	data := `cases:
  - name: right
    input: "(i)(j)"
    want: "k"
  - name: wrong
    input: "(j)(i)"
    want: "k"
  - name: unexpected error
    input: "(1.2.3)"
    want: "1"
  - name: missing error
    input: "(1*i)"
    error: "invalid character"
`
	require.NoError(t, os.WriteFile(path, []byte(data), 0o644))

	stdout, _, err := execute(t, "", "check", path)
	require.Error(t, err)
	assert.Equal(t, ExitFailure, exitCode(err))
	assert.Contains(t, stdout, "PASS right\n")
	assert.Contains(t, stdout, "FAIL wrong: want k, got -k\n")
	assert.Contains(t, stdout, "FAIL unexpected error: want 1, got error")
	assert.Contains(t, stdout, `FAIL missing error: want error containing "invalid character", got i+1`)
	assert.Contains(t, stdout, "1 passed, 3 failed\n")

	// The same file passes its last case in strict mode.
	stdout, _, err = execute(t, "", "--strict", "check", path)
	require.Error(t, err)
	assert.Contains(t, stdout, "PASS missing error\n")
	assert.Contains(t, stdout, "2 passed, 2 failed\n")
}

func TestParseCases(t *testing.T) {
	f, err := ParseCases([]byte("cases:\n  - input: \"(i)\"\n    want: i\n    duplicates: sum\n"))
	require.NoError(t, err)
	require.Len(t, f.Cases, 1)
	assert.Equal(t, "(i)", f.Cases[0].Name)
	assert.Equal(t, "sum", f.Cases[0].Duplicates)

	bad := []struct {
		name string
		data string
	}{
		{"empty", ""},
		{"nocases", "cases: []\n"},
		{"unknown", "cases:\n  - input: \"(i)\"\n    want: i\n    expect: i\n"},
		{"neither", "cases:\n  - input: \"(i)\"\n"},
		{"both", "cases:\n  - input: \"(i)\"\n    want: i\n    error: nope\n"},
		{"policy", "cases:\n  - input: \"(i)\"\n    want: i\n    duplicates: first\n"},
	}
	for _, c := range bad {
		t.Run(c.name, func(t *testing.T) {
			_, err := ParseCases([]byte(c.data))
			assert.Error(t, err)
		})
	}
}

func TestCheckCommandErrors(t *testing.T) {
	_, _, err := execute(t, "", "check")
	require.Error(t, err)
	assert.Equal(t, ExitCommandError, exitCode(err))

	_, _, err = execute(t, "", "check", filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)
	assert.Equal(t, ExitCommandError, exitCode(err))
}
