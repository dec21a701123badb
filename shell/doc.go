// Package shell models the one-electron basis of an open atomic shell and
// enumerates its Slater determinants.
//
// 🚀 What lives here?
//
//	• State        — one electron: magnetic quantum number m_l and spin m_s
//	• StateSpace   — the canonical ordering of the 2(2l+1) states of shell l
//	• Enumerate    — every n-electron determinant of a fixed (M_L, M_S) sector
//	• Diff, Parity — the multiset/permutation bookkeeping behind the
//	  antisymmetrization signs of determinant matrix elements
//
// The state-space ordering (all spin-up m_l = -l..l, then all spin-down) is
// the sign convention of the whole engine: every permutation parity is
// computed relative to it, so it must never change.
//
// ⚙️ Usage:
//
//	space := shell.StateSpace(1)                             // p shell, 6 states
//	cfgs, err := shell.Enumerate(space, 2, 0, big.NewRat(0, 1))
//	// cfgs: the Slater determinants of the p² (M_L=0, M_S=0) sector
package shell
