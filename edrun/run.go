// SPDX-License-Identifier: MIT
package edrun

import (
	"bytes"
	"context"
	"crypto/sha1"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"time"
)

// File names inside a run directory. The downstream readers (edout,
// spectra) rely on them.
const (
	InputFileName  = "INPUT"
	StdoutFileName = "ed.out"
	StderrFileName = "ed.err"

	binaryName = "main"
	runSubdir  = "mcpruns"
)

// DefaultTimeout bounds one binary run unless overridden.
const DefaultTimeout = 60 * time.Second

// Result describes one completed (or failed) binary run.
type Result struct {
	// Cmd is the executed command line.
	Cmd []string
	// Dir is the run directory holding INPUT, ed.out and ed.err.
	Dir      string
	ExitCode int
	Stdout   string
	Stderr   string
}

type options struct {
	runDir  string
	timeout time.Duration
	env     map[string]string
}

// Option adjusts a single Run call.
type Option func(*options)

// WithRunDir pins the run directory name (relative to the install dir)
// instead of generating a unique one. The directory must not exist yet.
func WithRunDir(name string) Option {
	return func(o *options) { o.runDir = name }
}

// WithTimeout overrides DefaultTimeout. d must be positive.
func WithTimeout(d time.Duration) Option {
	if d <= 0 {
		panic(fmt.Sprintf("edrun: non-positive timeout %v", d))
	}

	return func(o *options) { o.timeout = d }
}

// WithEnv merges extra environment variables over the inherited ones.
func WithEnv(env map[string]string) Option {
	return func(o *options) { o.env = env }
}

// MakeRunDir creates a fresh unique directory <base>/mcpruns/<12 hex> and
// returns its path. An empty base falls back to the system temp dir.
func MakeRunDir(base string) (string, error) {
	if base == "" {
		base = os.TempDir()
	}
	uniq := fmt.Sprintf("%x", sha1.Sum([]byte(fmt.Sprintf("%d_%d", time.Now().UnixNano(), os.Getpid()))))[:12]
	dir := filepath.Join(base, runSubdir, uniq)
	if err := os.MkdirAll(filepath.Dir(dir), 0o755); err != nil {
		return "", fmt.Errorf("edrun: create run base: %w", err)
	}
	if err := os.Mkdir(dir, 0o755); err != nil {
		return "", fmt.Errorf("edrun: create run dir: %w", err)
	}

	return dir, nil
}

// Run executes <installDir>/main on a freshly written INPUT file inside a
// run directory, captures stdout/stderr to ed.out/ed.err, and returns the
// outcome. A nonzero exit code is a valid Result; only setup failures and
// timeouts are errors.
//
// Errors:
//   - ErrExecutableMissing / ErrNotExecutable — bad install dir.
//   - ErrTimeout — deadline exceeded, process killed.
func Run(ctx context.Context, installDir, inputText string, opts ...Option) (*Result, error) {
	o := options{timeout: DefaultTimeout}
	for _, opt := range opts {
		opt(&o)
	}

	exe := filepath.Join(installDir, binaryName)
	info, err := os.Stat(exe)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrExecutableMissing, exe)
	}
	if info.Mode().Perm()&0o111 == 0 {
		return nil, fmt.Errorf("%w: %s", ErrNotExecutable, exe)
	}

	var runDir string
	if o.runDir == "" {
		runDir, err = MakeRunDir(installDir)
		if err != nil {
			return nil, err
		}
	} else {
		runDir = filepath.Join(installDir, o.runDir)
		if err := os.MkdirAll(filepath.Dir(runDir), 0o755); err != nil {
			return nil, fmt.Errorf("edrun: create run base: %w", err)
		}
		if err := os.Mkdir(runDir, 0o755); err != nil {
			return nil, fmt.Errorf("edrun: create run dir: %w", err)
		}
	}

	inputPath := filepath.Join(runDir, InputFileName)
	if err := os.WriteFile(inputPath, []byte(inputText), 0o644); err != nil {
		return nil, fmt.Errorf("edrun: write INPUT: %w", err)
	}

	runCtx, cancel := context.WithTimeout(ctx, o.timeout)
	defer cancel()

	cmd := exec.CommandContext(runCtx, exe, inputPath)
	cmd.Dir = runDir
	cmd.Env = os.Environ()
	for k, v := range o.env {
		cmd.Env = append(cmd.Env, k+"="+v)
	}

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	runErr := cmd.Run()

	// Captured output is written out even on failure; partial output is
	// often the only diagnostic the binary leaves behind.
	if err := os.WriteFile(filepath.Join(runDir, StdoutFileName), stdout.Bytes(), 0o644); err != nil {
		return nil, fmt.Errorf("edrun: write %s: %w", StdoutFileName, err)
	}
	if err := os.WriteFile(filepath.Join(runDir, StderrFileName), stderr.Bytes(), 0o644); err != nil {
		return nil, fmt.Errorf("edrun: write %s: %w", StderrFileName, err)
	}

	if errors.Is(runCtx.Err(), context.DeadlineExceeded) {
		return nil, fmt.Errorf("%w after %v (killed)", ErrTimeout, o.timeout)
	}

	res := &Result{
		Cmd:    []string{exe, inputPath},
		Dir:    runDir,
		Stdout: stdout.String(),
		Stderr: stderr.String(),
	}
	if runErr != nil {
		var exitErr *exec.ExitError
		if !errors.As(runErr, &exitErr) {
			return nil, fmt.Errorf("edrun: run %s: %w", exe, runErr)
		}
		res.ExitCode = exitErr.ExitCode()
	}

	return res, nil
}
