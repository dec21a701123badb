// Package hamiltonian assembles the exact Coulomb Hamiltonian of an open
// atomic shell in a fixed (M_L, M_S) sector and, for small bases, extracts
// its exact eigenvalues.
//
// 🚀 Pipeline (strictly bottom-up, no shared state):
//
//	state space → determinant enumeration → pairwise term selection →
//	exact integral evaluation → symbolic matrix → exact eigenvalues
//
// Every matrix entry depends only on its own pair of determinants, so the
// pairwise loop is sharded across a bounded worker pool; the output is
// byte-identical regardless of worker count.
//
// ✨ Eigenvalues:
//
//	The matrix splits as H = Σ_k f_k·H_k. When the H_k commute — every
//	sector in which each LS term appears once — they are jointly
//	diagonalizable with rational eigenvalues, and the solver finds the
//	exact spectrum Σ_k μ_k·f_k with multiplicities. Sectors beyond that
//	(or beyond the basis-size ceiling) are reported as skipped, never
//	approximated numerically.
//
// ⚙️ Usage:
//
//	res, err := hamiltonian.Compute("p", 2, 0, big.NewRat(0, 1))
//	if err != nil { ... }
//	fmt.Println(res.Report())
package hamiltonian
