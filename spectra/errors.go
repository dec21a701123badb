// SPDX-License-Identifier: MIT
package spectra

import "errors"

var (
	// ErrBadPolarization is returned for polarization strings outside
	// nonempty duplicate-free subsets of {X, Y, Z}.
	ErrBadPolarization = errors.New("spectra: invalid polarization")

	// ErrMissingFile is returned when a spectrum file for a requested
	// polarization does not exist in the run directory.
	ErrMissingFile = errors.New("spectra: spectrum file does not exist")

	// ErrBadGrid is returned when a spectrum file cannot be arranged into
	// a rectangular grid, or polarization files disagree on the grid.
	ErrBadGrid = errors.New("spectra: malformed spectrum grid")
)
