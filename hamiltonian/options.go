// SPDX-License-Identifier: MIT
// Package hamiltonian: functional options for Compute.
// Defaults are the single source of truth; With* constructors validate
// eagerly and panic on programmer errors (invalid literals), never on
// user data.

package hamiltonian

import (
	"fmt"
	"runtime"
)

// DefaultEigenCeiling is the largest basis size for which exact symbolic
// diagonalization is attempted. Above it the Hamiltonian is still returned
// in full, with the eigen step explicitly reported as skipped.
const DefaultEigenCeiling = 6

// options carries the resolved knobs of one Compute call.
type options struct {
	eigenCeiling int
	workers      int
}

// Option mutates the options of a single Compute call.
type Option func(*options)

func defaultOptions() options {
	return options{
		eigenCeiling: DefaultEigenCeiling,
		workers:      runtime.GOMAXPROCS(0),
	}
}

// WithEigenCeiling overrides the basis-size ceiling for the eigen step.
// A ceiling of 0 disables diagonalization entirely. Negative values are a
// programmer error.
func WithEigenCeiling(n int) Option {
	if n < 0 {
		panic(fmt.Sprintf("hamiltonian: negative eigen ceiling %d", n))
	}

	return func(o *options) { o.eigenCeiling = n }
}

// WithWorkers fixes the number of assembly workers. n must be >= 1.
func WithWorkers(n int) Option {
	if n < 1 {
		panic(fmt.Sprintf("hamiltonian: worker count %d < 1", n))
	}

	return func(o *options) { o.workers = n }
}

func gatherOptions(opts ...Option) options {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	return o
}
