// SPDX-License-Identifier: MIT
package edinput

// Option adjusts the parameter set after the atomic tables are applied.
type Option func(*Params)

// WithTenDQ sets the cubic crystal-field splitting: CF = [0, 0, t, t, t].
func WithTenDQ(t float64) Option {
	return func(p *Params) {
		p.Control.CF = []float64{0, 0, t, t, t}
	}
}

// WithParams applies an arbitrary mutation, for callers that already hold
// a partial override (see ApplyJSON).
func WithParams(f func(*Params)) Option {
	return func(p *Params) { f(p) }
}

// Generate builds the complete INPUT text for one ion: defaults, then the
// tabulated atomic parameters and hole count, then the options in order.
//
// Errors:
//   - ErrNegativeHoles — valence below the filled-shell configuration.
//   - ErrNoAtomicData  — element or valence absent from the tables.
func Generate(element string, valence int, opts ...Option) (string, error) {
	holes, atomic, err := LookupAtomic(element, valence)
	if err != nil {
		return "", err
	}

	p := DefaultParams()
	p.Control.SO = atomic.SO
	p.Control.SC2 = atomic.SC2
	p.Control.SC2EX = atomic.SC2EX
	p.Control.FG = atomic.FG
	p.Cell.Holes = holes
	for _, opt := range opts {
		opt(&p)
	}

	return p.Render(), nil
}
