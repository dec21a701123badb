// SPDX-License-Identifier: MIT
package hamiltonian

import (
	"fmt"
	"math/big"
	"sync"

	"github.com/katalvlaran/multiplet/coulomb"
	"github.com/katalvlaran/multiplet/shell"
	"github.com/katalvlaran/multiplet/symbolic"
)

// Eigenvalue is one exact multiplet energy with its degeneracy within the
// computed sector.
type Eigenvalue struct {
	Value        symbolic.Expr
	Multiplicity int
}

// Result is the complete outcome of one Compute call. All fields are
// populated once and never mutated afterwards.
type Result struct {
	L          int
	NElectrons int
	TargetML   int
	TargetMS   *big.Rat

	// States is the canonical single-particle basis of the shell.
	States []shell.State
	// Configs is the enumerated determinant basis, in enumeration order;
	// it indexes the rows and columns of H.
	Configs []shell.Config
	// H is the symbolic Coulomb matrix, len(Configs) square.
	H [][]symbolic.Expr

	// Eigen holds the exact spectrum when the eigen step ran to
	// completion; EigenSkipped carries the reason otherwise.
	Eigen        []Eigenvalue
	EigenSkipped string
}

// Compute — symbolic Coulomb Hamiltonian of one (shell, n, M_L, M_S) sector
//
// Description:
//
//	Enumerates the Slater determinants of the sector, assembles the exact
//	symbolic matrix from pairwise direct/exchange couplings, and attempts
//	exact diagonalization for bases up to the configured ceiling.
//
// Convention:
//
//	For a term (m1,m2,m3,m4) selected between determinants i and j, the
//	evaluator is called with the first two indices swapped,
//	Integral(m2,m1,m3,m4); direct terms add sign·I, exchange terms
//	subtract sign·I (the operator's own antisymmetrization, on top of the
//	permutation sign).
//
// Errors:
//   - shell.ErrUnknownShell  — label outside s/p/d/f.
//   - shell.ErrElectronCount — n outside [1, 2(2l+1)].
//
// An empty sector yields a 0×0 matrix and no spectrum; that is a valid
// result, not an error.
func Compute(shellLabel string, nElectrons, targetML int, targetMS *big.Rat, opts ...Option) (*Result, error) {
	o := gatherOptions(opts...)

	l, err := shell.ParseShell(shellLabel)
	if err != nil {
		return nil, err
	}
	space := shell.StateSpace(l)
	configs, err := shell.Enumerate(space, nElectrons, targetML, targetMS)
	if err != nil {
		return nil, err
	}

	res := &Result{
		L:          l,
		NElectrons: nElectrons,
		TargetML:   targetML,
		TargetMS:   new(big.Rat).Set(targetMS),
		States:     space,
		Configs:    configs,
		H:          assemble(configs, l, o.workers),
	}

	switch {
	case len(configs) == 0:
		// no spectrum to compute
	case o.eigenCeiling == 0 || len(configs) > o.eigenCeiling:
		res.EigenSkipped = fmt.Sprintf("matrix too large to diagonalize symbolically (%d > %d)",
			len(configs), o.eigenCeiling)
	default:
		res.Eigen, res.EigenSkipped = eigenvalues(res.H)
	}

	return res, nil
}

// assemble builds the full symbolic matrix, sharding rows across workers.
// Each cell is written exactly once by exactly one worker, so no
// synchronization beyond the final Wait is needed.
func assemble(configs []shell.Config, l, workers int) [][]symbolic.Expr {
	n := len(configs)
	h := make([][]symbolic.Expr, n)
	for i := range h {
		h[i] = make([]symbolic.Expr, n)
	}
	if n == 0 {
		return h
	}
	if workers > n {
		workers = n
	}

	rows := make(chan int)
	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range rows {
				for j := 0; j < n; j++ {
					h[i][j] = entry(configs[i], configs[j], l)
				}
			}
		}()
	}
	for i := 0; i < n; i++ {
		rows <- i
	}
	close(rows)
	wg.Wait()

	return h
}

// entry evaluates one matrix element ⟨cfg2|H|cfg1⟩ from its selected terms.
func entry(cfg1, cfg2 shell.Config, l int) symbolic.Expr {
	total := symbolic.Zero()
	for _, term := range coulomb.Terms(cfg1, cfg2) {
		integral := coulomb.Integral(term.M[1], term.M[0], term.M[2], term.M[3], l)
		if term.Sign < 0 {
			integral = integral.Neg()
		}
		if term.Kind == coulomb.Exchange {
			total = total.Sub(integral)
		} else {
			total = total.Add(integral)
		}
	}

	return total
}
