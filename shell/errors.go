// SPDX-License-Identifier: MIT
// Package shell: sentinel error set. All validation failures surface as
// these sentinels and tests check them via errors.Is; helpers never panic
// on user-triggered conditions.

package shell

import "errors"

var (
	// ErrUnknownShell is returned for a shell label outside {s, p, d, f}.
	ErrUnknownShell = errors.New("shell: unknown shell label")

	// ErrElectronCount is returned when the electron count is not in
	// [1, |state space|].
	ErrElectronCount = errors.New("shell: electron count out of range")
)
