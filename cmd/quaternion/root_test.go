package main

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zephyrtronium/quaternion"
)

func TestRootCommand(t *testing.T) {
	cmd := newRootCommand()
	require.NotNil(t, cmd)
	assert.Equal(t, "quaternion", cmd.Name())

	sub, _, err := cmd.Find([]string{"check"})
	require.NoError(t, err)
	assert.Equal(t, "check", sub.Name())

	for _, name := range []string{"verbose", "strict", "sum-duplicates"} {
		f := cmd.PersistentFlags().Lookup(name)
		require.NotNil(t, f, name)
		assert.Equal(t, "false", f.DefValue)
	}
	for _, name := range []string{"in", "lines", "echo", "norm"} {
		assert.NotNil(t, cmd.Flags().Lookup(name), name)
	}
	assert.Equal(t, "v", cmd.PersistentFlags().Lookup("verbose").Shorthand)
	assert.Equal(t, "n", cmd.Flags().Lookup("lines").Shorthand)
}

func TestRun(t *testing.T) {
	cases := []struct {
		name  string
		stdin string
		args  []string
		want  string
	}{
		{"stdin", "(i+j+20)(j-9)\n(i)(j)\n", nil, "-9i+11j+k-181\n"},
		{"stdin-lines", "(i+j+20)(j-9)\n\n(i)(j)\n", []string{"-n"}, "-9i+11j+k-181\nk\n"},
		{"stdin-spaces", "  (i+j)(k)  \n", nil, "i-j\n"},
		{"args", "(ignored)", []string{"(i)(j)", "(j)(i)"}, "k\n-k\n"},
		{"args-and-stdin", "(k)(k)\n", []string{"--in", "-", "(i)(j)"}, "k\n-1\n"},
		{"echo", "", []string{"--echo", "(i+j)(k)"}, "(i+j)(k) : i-j\n"},
		{"norm", "", []string{"--norm", "(3)(4i)"}, "12i\t12\n"},
		{"zero", "", []string{"()(i)"}, "0\n"},
		{"duplicates", "", []string{"(i+2i)"}, "2i\n"},
		{"sum-duplicates", "", []string{"--sum-duplicates", "(i+2i)"}, "3i\n"},
		{"lenient", "", []string{"(1*i)"}, "i+1\n"},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			stdout, _, err := execute(t, c.stdin, c.args...)
			require.NoError(t, err)
			assert.Equal(t, c.want, stdout)
		})
	}
}

func TestRunInputFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "exprs.txt")
	require.NoError(t, os.WriteFile(path, []byte("(i+j)(k)\n(10i)(10j-k+1)(-99i+j-10k+7)(4)\n"), 0o644))

	stdout, _, err := execute(t, "", "--in", path, "-n")
	require.NoError(t, err)
	assert.Equal(t, "i-j\n-520i-38920j+6800k+7920\n", stdout)

	stdout, _, err = execute(t, "", "--in", path)
	require.NoError(t, err)
	assert.Equal(t, "i-j\n", stdout)
}

func TestRunErrors(t *testing.T) {
	t.Run("literal", func(t *testing.T) {
		_, _, err := execute(t, "", "(i)(1.2.3)")
		require.Error(t, err)
		assert.Equal(t, ExitFailure, exitCode(err))
		var ne *quaternion.NumberError
		assert.True(t, errors.As(err, &ne))
		assert.Contains(t, err.Error(), `"1.2.3"`)
	})
	t.Run("empty", func(t *testing.T) {
		_, _, err := execute(t, "", "no groups")
		require.Error(t, err)
		assert.Equal(t, ExitFailure, exitCode(err))
		assert.ErrorIs(t, err, quaternion.ErrEmptyProduct)
	})
	t.Run("strict", func(t *testing.T) {
		_, stderr, err := execute(t, "", "--strict", "(1*i)")
		require.Error(t, err)
		assert.Equal(t, ExitFailure, exitCode(err))
		var le *quaternion.LexError
		assert.True(t, errors.As(err, &le))
		assert.Contains(t, stderr, "evaluation failed")
	})
	t.Run("no-input", func(t *testing.T) {
		_, _, err := execute(t, "")
		require.Error(t, err)
		assert.Equal(t, ExitCommandError, exitCode(err))
	})
	t.Run("missing-file", func(t *testing.T) {
		_, _, err := execute(t, "", "--in", filepath.Join(t.TempDir(), "nope"))
		require.Error(t, err)
		assert.Equal(t, ExitCommandError, exitCode(err))
		assert.ErrorIs(t, err, os.ErrNotExist)
	})
	t.Run("flag", func(t *testing.T) {
		_, _, err := execute(t, "", "--bogus")
		require.Error(t, err)
		assert.Equal(t, ExitCommandError, exitCode(err))
	})
}

func TestVerboseLogging(t *testing.T) {
	stdout, stderr, err := execute(t, "", "-v", "(i+j)(k)")
	require.NoError(t, err)
	assert.Equal(t, "i-j\n", stdout)
	assert.Contains(t, stderr, "parsed group")
	assert.Contains(t, stderr, "product")
	assert.Contains(t, stderr, "i-j")

	_, stderr, err = execute(t, "", "(i+j)(k)")
	require.NoError(t, err)
	assert.Empty(t, stderr)
}

func TestExitCode(t *testing.T) {
	assert.Equal(t, ExitSuccess, exitCode(nil))
	assert.Equal(t, ExitCommandError, exitCode(errors.New("unknown flag")))
	err := &ExitError{Code: ExitFailure, Message: "evaluating", Err: quaternion.ErrEmptyProduct}
	assert.Equal(t, ExitFailure, exitCode(err))
	assert.Equal(t, "evaluating: quaternion: product of no quaternions", err.Error())
	assert.Equal(t, "plain", (&ExitError{Message: "plain"}).Error())
}
