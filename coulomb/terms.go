// SPDX-License-Identifier: MIT
package coulomb

import "github.com/katalvlaran/multiplet/shell"

// Kind distinguishes the two topologically distinct ways a two-body
// operator connects two determinants.
type Kind int

const (
	// Direct keeps both electrons in their own orbitals.
	Direct Kind = iota
	// Exchange swaps the two electrons; it only acts between equal spins.
	Exchange
)

func (k Kind) String() string {
	if k == Exchange {
		return "exchange"
	}

	return "direct"
}

// Term is one contribution to a determinant matrix element: the
// antisymmetrization sign, the coupling kind, and the four magnetic
// quantum numbers (m1, m2, m3, m4) of the underlying integral.
type Term struct {
	Sign int
	Kind Kind
	M    [4]int
}

// Terms — nonzero two-body couplings between two determinants
//
// Description:
//
//	Case A, identical determinants: every unordered pair {i,j} of occupied
//	states contributes a direct term (m_i, m_j, m_i, m_j) with sign +1,
//	plus an exchange term (m_i, m_j, m_j, m_i) when the spins agree.
//
//	Case B, distinct determinants: take the multiset difference. Unless
//	exactly two states were removed and two added, a single two-body
//	operator cannot connect the determinants and no terms exist. Otherwise
//	search the two orderings of the removed pair (a,b) against the two
//	orderings of the added pair (c,d) for a spin-conserving assignment
//	(ms(a)=ms(c), ms(b)=ms(d)) whose in-place substitution a→c, b→d
//	reproduces the occupied multiset of the target. The permutation that
//	maps the substituted list onto the target's recorded order fixes the
//	sign. The first valid assignment wins (fixed search order; the result
//	is assignment-independent by antisymmetry, covered by a property test).
//	The exchange companion (m1, m2, m4, m3) is emitted when the removed
//	pair shares spin.
//
// An empty result is the normal way of saying "exactly zero", never a
// failure.
func Terms(c1, c2 shell.Config) []Term {
	if equalConfigs(c1, c2) {
		return diagonalTerms(c1)
	}

	removed, added := shell.Diff(c1, c2)
	if len(removed) != 2 || len(added) != 2 {
		return nil
	}

	for _, ab := range orderings(removed[0], removed[1]) {
		for _, cd := range orderings(added[0], added[1]) {
			a, b := ab[0], ab[1]
			c, d := cd[0], cd[1]
			if a.Ms != c.Ms || b.Ms != d.Ms {
				continue
			}

			trial := make(shell.Config, len(c1))
			copy(trial, c1)
			trial[indexOf(trial, a)] = c
			trial[indexOf(trial, b)] = d
			if !sameMultiset(trial, c2) {
				continue
			}

			perm := make([]int, len(c2))
			for i, st := range c2 {
				perm[i] = indexOf(trial, st)
			}
			sign := shell.Parity(perm)

			terms := []Term{{Sign: sign, Kind: Direct, M: [4]int{a.Ml, b.Ml, c.Ml, d.Ml}}}
			if a.Ms == b.Ms {
				terms = append(terms, Term{Sign: sign, Kind: Exchange, M: [4]int{a.Ml, b.Ml, d.Ml, c.Ml}})
			}

			return terms
		}
	}

	return nil
}

// diagonalTerms enumerates the Coulomb/exchange self-energy couplings of a
// single determinant.
func diagonalTerms(c shell.Config) []Term {
	var terms []Term
	for i := 0; i < len(c); i++ {
		for j := i + 1; j < len(c); j++ {
			terms = append(terms, Term{Sign: +1, Kind: Direct, M: [4]int{c[i].Ml, c[j].Ml, c[i].Ml, c[j].Ml}})
			if c[i].Ms == c[j].Ms {
				terms = append(terms, Term{Sign: +1, Kind: Exchange, M: [4]int{c[i].Ml, c[j].Ml, c[j].Ml, c[i].Ml}})
			}
		}
	}

	return terms
}

func orderings(a, b shell.State) [2][2]shell.State {
	return [2][2]shell.State{{a, b}, {b, a}}
}

func equalConfigs(c1, c2 shell.Config) bool {
	if len(c1) != len(c2) {
		return false
	}
	for i := range c1 {
		if c1[i] != c2[i] {
			return false
		}
	}

	return true
}

// indexOf returns the first position of st; the caller guarantees presence
// (states within a determinant are distinct).
func indexOf(c shell.Config, st shell.State) int {
	for i, s := range c {
		if s == st {
			return i
		}
	}
	panic("coulomb: state not present in configuration")
}

func sameMultiset(c1, c2 shell.Config) bool {
	if len(c1) != len(c2) {
		return false
	}
	count := make(map[shell.State]int, len(c1))
	for _, st := range c1 {
		count[st]++
	}
	for _, st := range c2 {
		count[st]--
		if count[st] < 0 {
			return false
		}
	}

	return true
}
