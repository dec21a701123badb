// Package multiplet is an exact atomic-multiplet toolkit: it builds the
// many-electron Coulomb Hamiltonian of an open s/p/d/f shell over Slater
// determinants, keeps every matrix element symbolic in the Slater-Condon
// parameters f0..f6, and wraps the surrounding workflow of a real multiplet
// calculation: input generation, binary supervision, output parsing and
// spectra rendering.
//
// 🚀 What does it do?
//
//	Given a shell, an electron count and a target (M_L, M_S) sector it:
//		• enumerates every Slater determinant of the sector
//		• selects the nonzero direct/exchange couplings between determinants
//		• evaluates each Coulomb integral exactly (Wigner 3j, no floats)
//		• assembles the symbolic Hamiltonian and, for small bases,
//		  extracts exact eigenvalues with multiplicities
//
// ✨ Why exact?
//
//   - Multiplet splittings are rational combinations of f0..f6; degenerate
//     terms must cancel bit-exactly, which floating point cannot guarantee.
//   - Coupling coefficients are rational multiples of square roots; the
//     symbolic package carries them as such, end to end.
//
// Under the hood, everything is organized under these subpackages:
//
//	symbolic/    — exact rational/radical scalars and f0..f6 expressions
//	shell/       — single-particle states, Slater-determinant enumeration
//	coulomb/     — term selection and exact Coulomb integral evaluation
//	hamiltonian/ — matrix assembly, exact eigenvalues, reports
//	edinput/     — INPUT script generation for the external ED binary
//	edrun/       — supervised runs of that binary + run registry
//	edout/       — parsers for its eig.txt / ed.out output files
//	spectra/     — XAS/RIXS file readers and PNG plots
//	mcpserver/   — MCP tool surface and HTTP status endpoints
//
// Quick taste (p² in the M_L=0, M_S=0 sector):
//
//	res, err := hamiltonian.Compute("p", 2, 0, big.NewRat(0, 1))
//	// res.Eigen: f0+10*f2 (×1), f0+f2 (×1), f0-5*f2 (×1)
//
// See cmd/multiplet for the CLI and MCP server entry point.
package multiplet
