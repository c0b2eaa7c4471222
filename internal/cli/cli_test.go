// SPDX-License-Identifier: MIT
package cli_test

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/katalvlaran/garside/braid"
	"github.com/katalvlaran/garside/factorization"
	"github.com/katalvlaran/garside/internal/cli"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// run invokes the command with captured streams.
func run(t *testing.T, args ...string) (stdout, stderr string, err error) {
	t.Helper()
	var out, errOut bytes.Buffer
	err = cli.Run(args, &out, &errOut)

	return out.String(), errOut.String(), err
}

// exitCode extracts the ExitCode of err.
func exitCode(t *testing.T, err error) int {
	t.Helper()
	var coder interface{ ExitCode() int }
	require.True(t, errors.As(err, &coder), "error %v has no exit code", err)

	return coder.ExitCode()
}

// TestRun_Braid checks the report for every single-braid input form.
func TestRun_Braid(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want string
	}{
		{
			"artin",
			[]string{"-n", "5", "--artin", "1,2,-1,-2"},
			"[5] D^(-1) * [4, 1, 0, 2, 3] * [1, 0, 2, 3, 4]\np=-1\nk=2\ncanonical=3\ntranspositions=8\nmixed=2\npermutation=[2, 0, 1, 3, 4]\n",
		},
		{
			"band inverted",
			[]string{"--width=5", "--band", "2:1,4:3", "--invert"},
			"[5] D^(-1) * [0, 4, 2, 1, 3]\np=-1\nk=1\ncanonical=2\ntranspositions=6\nmixed=6\npermutation=[1, 0, 3, 2, 4]\n",
		},
		{
			"canonical squared",
			[]string{"--braid", "[3] D^(1) * [0, 2, 1]", "--power", "2"},
			"[3] D^(3)\np=3\nk=0\ncanonical=3\ntranspositions=6\nmixed=6\npermutation=[0, 1, 2]\n",
		},
		{
			"twists",
			[]string{"-n", "4", "--artin", "1,2", "--twist", "3", "--twist", "-1"},
			"[4] D^(-1) * [3, 1, 0, 2] * [1, 0, 2, 3] * [0, 2, 1, 3] * [0, 1, 3, 2]\np=-1\nk=4\ncanonical=5\ntranspositions=8\nmixed=6\npermutation=[2, 1, 3, 0]\n",
		},
		{
			"power then invert",
			[]string{"-n", "3", "--artin=1,-2", "--power", "2", "--invert"},
			"[3] D^(-2) * [2, 1, 0] * [1, 0, 2] * [1, 0, 2] * [0, 2, 1]\np=-2\nk=4\ncanonical=6\ntranspositions=8\nmixed=4\npermutation=[1, 2, 0]\n",
		},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			out, _, err := run(t, tc.args...)
			require.NoError(t, err)
			assert.Equal(t, tc.want, out)
		})
	}
}

// TestRun_Random is reproducible and matches the library call.
func TestRun_Random(t *testing.T) {
	out1, _, err := run(t, "-n", "6", "--random", "20", "--seed", "7")
	require.NoError(t, err)
	out2, _, err := run(t, "-n", "6", "--random", "20", "--seed", "7")
	require.NoError(t, err)
	assert.Equal(t, out1, out2)

	b, err := braid.Random(6, 20, braid.WithSeed(7))
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(out1, b.String()+"\n"))
}

// TestRun_Color forces escape sequences on a non-terminal writer.
func TestRun_Color(t *testing.T) {
	out, _, err := run(t, "-n", "3", "--artin", "1", "--color", "always")
	require.NoError(t, err)
	assert.Contains(t, out, "\x1b[")

	out, _, err = run(t, "-n", "3", "--artin", "1")
	require.NoError(t, err)
	assert.NotContains(t, out, "\x1b[", "auto mode stays plain on a buffer")
}

// TestRun_Logging writes debug records to stderr only.
func TestRun_Logging(t *testing.T) {
	out, logs, err := run(t, "-n", "3", "--artin", "1,2", "--invert", "--log-level", "debug")
	require.NoError(t, err)
	assert.Contains(t, logs, "level=DEBUG")
	assert.Contains(t, logs, "msg=inverse")
	assert.NotContains(t, out, "level=")

	_, logs, err = run(t, "-n", "3", "--artin", "1,2")
	require.NoError(t, err)
	assert.Empty(t, logs)
}

// TestRun_UsageErrors covers command-line mistakes (exit status 2).
func TestRun_UsageErrors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		args []string
	}{
		{"no input", []string{"-n", "3"}},
		{"two inputs", []string{"-n", "3", "--artin", "1", "--band", "2:1"}},
		{"missing width", []string{"--artin", "1"}},
		{"bad band", []string{"-n", "3", "--band", "2-1"}},
		{"bad band number", []string{"-n", "3", "--band", "x:1"}},
		{"unknown flag", []string{"--frobnicate"}},
		{"bad int", []string{"-n", "three", "--artin", "1"}},
		{"stray argument", []string{"-n", "3", "--artin", "1", "extra"}},
		{"bad color", []string{"-n", "3", "--artin", "1", "--color", "sometimes"}},
		{"bad log level", []string{"-n", "3", "--artin", "1", "--log-level", "loud"}},
		{"search without file", []string{"-n", "3", "--artin", "1", "--search", "random"}},
		{"bridge without file", []string{"-n", "3", "--artin", "1", "--bridge", "other.yaml"}},
	}
	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			_, _, err := run(t, tc.args...)
			require.ErrorIs(t, err, cli.ErrUsage)
			assert.Equal(t, cli.ExitUsage, exitCode(t, err))
		})
	}
}

// TestRun_Failures covers inputs the library rejects (exit status 1).
func TestRun_Failures(t *testing.T) {
	_, _, err := run(t, "-n", "3", "--artin", "3")
	require.ErrorIs(t, err, braid.ErrConstruction)
	assert.Equal(t, cli.ExitFailure, exitCode(t, err))

	_, _, err = run(t, "--braid", "[3] D^(")
	require.ErrorIs(t, err, braid.ErrParse)

	_, _, err = run(t, "-n", "4", "--braid", "[3] D^(1)")
	require.ErrorIs(t, err, braid.ErrIncompatibleWidth)

	_, _, err = run(t, "--braid", "[3000000000] D^(1)")
	require.ErrorIs(t, err, braid.ErrParse)
	assert.Equal(t, cli.ExitFailure, exitCode(t, err))

	_, _, err = run(t, "-n", "70000", "--random", "4")
	require.ErrorIs(t, err, braid.ErrConstruction)

	_, _, err = run(t, "-n", "3", "--artin", "1", "--twist", "5")
	require.ErrorIs(t, err, braid.ErrIndexOutOfRange)
	assert.Equal(t, cli.ExitFailure, exitCode(t, err))
}

// TestRun_Help prints usage and succeeds.
func TestRun_Help(t *testing.T) {
	out, usage, err := run(t, "--help")
	require.NoError(t, err)
	assert.Empty(t, out)
	assert.Contains(t, usage, "--artin")
}

const doc = `width: 3
braids:
  - artin: [1]
  - artin: [2]
`

// writeDoc stores a YAML document in a temp dir.
func writeDoc(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "f.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))

	return path
}

// TestRun_File summarizes a factorization after a Hurwitz move.
func TestRun_File(t *testing.T) {
	path := writeDoc(t, doc)

	out, _, err := run(t, "--file", path, "--twist", "-1")
	require.NoError(t, err)
	assert.Equal(t,
		"[3] D^(0) * [0, 2, 1]\n"+
			"[3] D^(-1) * [2, 1, 0] * [1, 0, 2] * [0, 2, 1]\n"+
			"product=[3] D^(0) * [1, 0, 2] * [0, 2, 1]\n"+
			"braids=2\ncanonical=5\ntranspositions=6\nmixed=4\ncomponents=1\nboundary=1\n",
		out)
}

// TestRun_FileSearch undoes scrambling moves and prints YAML.
func TestRun_FileSearch(t *testing.T) {
	path := writeDoc(t, doc)

	out, logs, err := run(t, "--file", path, "--twist", "1", "--twist", "1",
		"--search", "weighted", "--steps", "50", "--yaml", "--log-level", "info")
	require.NoError(t, err)
	assert.Contains(t, logs, "search finished")

	f, err := factorization.Load(strings.NewReader(out))
	require.NoError(t, err)
	assert.Equal(t, 2, f.Complexity(factorization.MeasureMixed))
	assert.Equal(t, "[3] D^(0) * [1, 0, 2] * [0, 2, 1]", f.Product().String())
}

// TestRun_FileBridge joins (σ1, σ2) to its image under move 1.
func TestRun_FileBridge(t *testing.T) {
	path := writeDoc(t, doc)
	other := writeDoc(t, "width: 3\nbraids:\n  - conjugate: {twist: 2, by: [1]}\n  - artin: [1]\n")

	out, logs, err := run(t, "--file", path, "--bridge", other, "--log-level", "info")
	require.NoError(t, err)
	assert.Contains(t, logs, "bridge finished")
	assert.True(t, strings.HasSuffix(out, "\ndistance=0\n"), out)
	assert.Contains(t, out, "product=[3] D^(0) * [1, 0, 2] * [0, 2, 1]\n")

	_, _, err = run(t, "--file", path, "--bridge", other, "--search", "sideways")
	require.ErrorIs(t, err, cli.ErrUsage)

	_, _, err = run(t, "--file", path, "--bridge", writeDoc(t, "width: 4\nbraids:\n  - artin: [1]\n  - artin: [3]\n"))
	require.ErrorIs(t, err, factorization.ErrIncompatibleWidth)
	assert.Equal(t, cli.ExitFailure, exitCode(t, err))
}

// TestRun_FileErrors covers bad combinations and documents.
func TestRun_FileErrors(t *testing.T) {
	path := writeDoc(t, doc)

	_, _, err := run(t, "--file", path, "--artin", "1")
	require.ErrorIs(t, err, cli.ErrUsage)
	_, _, err = run(t, "--file", path, "--invert")
	require.ErrorIs(t, err, cli.ErrUsage)
	_, _, err = run(t, "--file", path, "--measure", "length")
	require.ErrorIs(t, err, cli.ErrUsage)
	_, _, err = run(t, "--file", path, "--search", "exhaustive")
	require.ErrorIs(t, err, cli.ErrUsage)

	_, _, err = run(t, "--file", writeDoc(t, "width: 3\nbraids:\n  - artin: [4]\n"))
	require.ErrorIs(t, err, factorization.ErrDocument)
	assert.Equal(t, cli.ExitFailure, exitCode(t, err))

	_, _, err = run(t, "--file", path, "--twist", "2")
	require.ErrorIs(t, err, factorization.ErrIndexOutOfRange)
}
