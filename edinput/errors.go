// SPDX-License-Identifier: MIT
package edinput

import "errors"

var (
	// ErrNoAtomicData is returned when the embedded tables carry no entry
	// for the requested element and valence.
	ErrNoAtomicData = errors.New("edinput: no atomic data for element/valence")

	// ErrNegativeHoles is returned when element+valence implies a negative
	// d-hole count, i.e. a configuration past the filled shell.
	ErrNegativeHoles = errors.New("edinput: invalid atomic configuration")
)
