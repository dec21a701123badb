package edrun_test

import (
	"context"
	"os"
	"path/filepath"
	"regexp"
	"testing"
	"time"

	"github.com/katalvlaran/multiplet/edrun"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// installFake writes a shell script as <dir>/main with the given body.
func installFake(t *testing.T, body string) string {
	t.Helper()
	dir := t.TempDir()
	script := "#!/bin/sh\n" + body
	require.NoError(t, os.WriteFile(filepath.Join(dir, "main"), []byte(script), 0o755),
		"fake binary must install")

	return dir
}

// TestRun_CapturesOutput: the run directory receives INPUT, ed.out and
// ed.err, and the Result mirrors the captured streams.
func TestRun_CapturesOutput(t *testing.T) {
	install := installFake(t, "cat \"$1\"\necho diagnostics >&2\n")

	res, err := edrun.Run(context.Background(), install, "&CONTROL\n/\n")
	require.NoError(t, err, "successful run")

	assert.Equal(t, 0, res.ExitCode, "clean exit")
	assert.Equal(t, "&CONTROL\n/\n", res.Stdout, "stdout is the echoed INPUT")
	assert.Equal(t, "diagnostics\n", res.Stderr, "stderr captured")
	assert.Contains(t, res.Dir, filepath.Join(install, "mcpruns"), "run dir under <install>/mcpruns")

	out, err := os.ReadFile(filepath.Join(res.Dir, edrun.StdoutFileName))
	require.NoError(t, err, "ed.out written")
	assert.Equal(t, res.Stdout, string(out), "ed.out matches captured stdout")
	errOut, err := os.ReadFile(filepath.Join(res.Dir, edrun.StderrFileName))
	require.NoError(t, err, "ed.err written")
	assert.Equal(t, res.Stderr, string(errOut), "ed.err matches captured stderr")
	in, err := os.ReadFile(filepath.Join(res.Dir, edrun.InputFileName))
	require.NoError(t, err, "INPUT written")
	assert.Equal(t, "&CONTROL\n/\n", string(in), "INPUT holds the given text")
}

// TestRun_NonzeroExit: a failing binary is a Result, not an error.
func TestRun_NonzeroExit(t *testing.T) {
	install := installFake(t, "exit 3\n")

	res, err := edrun.Run(context.Background(), install, "x")
	require.NoError(t, err, "nonzero exit is not a run error")
	assert.Equal(t, 3, res.ExitCode, "exit code surfaced")
}

// TestRun_Timeout: the deadline kills the process and reports ErrTimeout.
func TestRun_Timeout(t *testing.T) {
	install := installFake(t, "sleep 5\n")

	_, err := edrun.Run(context.Background(), install, "x",
		edrun.WithTimeout(100*time.Millisecond))
	assert.ErrorIs(t, err, edrun.ErrTimeout, "slow binary times out")
}

// TestRun_BadInstallDir: missing or non-executable binaries fail early.
func TestRun_BadInstallDir(t *testing.T) {
	_, err := edrun.Run(context.Background(), t.TempDir(), "x")
	assert.ErrorIs(t, err, edrun.ErrExecutableMissing, "no binary in an empty dir")

	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "main"), []byte("#!/bin/sh\n"), 0o644),
		"plain file installs")
	_, err = edrun.Run(context.Background(), dir, "x")
	assert.ErrorIs(t, err, edrun.ErrNotExecutable, "mode bits are checked")
}

// TestRun_ExplicitRunDir honors a caller-chosen directory name and refuses
// to reuse it.
func TestRun_ExplicitRunDir(t *testing.T) {
	install := installFake(t, "exit 0\n")

	res, err := edrun.Run(context.Background(), install, "x", edrun.WithRunDir("myrun"))
	require.NoError(t, err, "explicit run dir works")
	assert.Equal(t, filepath.Join(install, "myrun"), res.Dir, "directory under the install dir")

	_, err = edrun.Run(context.Background(), install, "x", edrun.WithRunDir("myrun"))
	assert.Error(t, err, "an existing run dir is never reused")
}

// TestMakeRunDir: generated directories are unique and follow the
// mcpruns/<12 hex> layout.
func TestMakeRunDir(t *testing.T) {
	base := t.TempDir()

	a, err := edrun.MakeRunDir(base)
	require.NoError(t, err, "first run dir")
	b, err := edrun.MakeRunDir(base)
	require.NoError(t, err, "second run dir")

	assert.NotEqual(t, a, b, "run dirs are unique")
	name := regexp.MustCompile(`^[0-9a-f]{12}$`)
	assert.Regexp(t, name, filepath.Base(a), "12 hex chars")
	assert.Equal(t, "mcpruns", filepath.Base(filepath.Dir(a)), "under mcpruns")
}

// TestRun_OptionPanics: invalid option literals are programmer errors.
func TestRun_OptionPanics(t *testing.T) {
	assert.Panics(t, func() { edrun.WithTimeout(0) }, "zero timeout panics")
}
