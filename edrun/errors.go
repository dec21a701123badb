// SPDX-License-Identifier: MIT
package edrun

import "errors"

var (
	// ErrExecutableMissing is returned when <install_dir>/main does not exist.
	ErrExecutableMissing = errors.New("edrun: executable not found")

	// ErrNotExecutable is returned when the binary exists but lacks the
	// executable bit.
	ErrNotExecutable = errors.New("edrun: file is not executable")

	// ErrTimeout is returned when the run exceeds its deadline and the
	// process is killed.
	ErrTimeout = errors.New("edrun: binary timed out")
)
