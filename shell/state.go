// SPDX-License-Identifier: MIT
package shell

import (
	"fmt"
	"math/big"
)

// MaxL is the highest supported orbital angular momentum (f shell).
const MaxL = 3

// ParseShell maps a shell label to its orbital angular momentum:
// s→0, p→1, d→2, f→3. Returns ErrUnknownShell for anything else.
func ParseShell(label string) (int, error) {
	switch label {
	case "s":
		return 0, nil
	case "p":
		return 1, nil
	case "d":
		return 2, nil
	case "f":
		return 3, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownShell, label)
	}
}

// Spin is a spin projection in units of ħ/2, so the two physical values
// m_s = ±1/2 are SpinUp = +1 and SpinDown = -1. Working in half-units keeps
// every spin sum an exact integer.
type Spin int8

const (
	// SpinUp is m_s = +1/2.
	SpinUp Spin = 1
	// SpinDown is m_s = -1/2.
	SpinDown Spin = -1
)

// Rat returns the spin projection as the exact rational ±1/2.
func (s Spin) Rat() *big.Rat { return big.NewRat(int64(s), 2) }

func (s Spin) String() string {
	if s == SpinUp {
		return "+1/2"
	}

	return "-1/2"
}

// State is one single-particle basis state (m_l, m_s). It is an immutable
// value type; equality and ordering are structural.
type State struct {
	Ml int
	Ms Spin
}

func (st State) String() string {
	return fmt.Sprintf("(%d, %s)", st.Ml, st.Ms)
}

// StateSpace returns the canonical ordered basis of shell l: all spin-up
// states with m_l = -l..l, then all spin-down states with m_l = -l..l,
// 2(2l+1) states total. This ordering is the reference frame for every
// permutation parity downstream.
func StateSpace(l int) []State {
	states := make([]State, 0, 2*(2*l+1))
	for ml := -l; ml <= l; ml++ {
		states = append(states, State{Ml: ml, Ms: SpinUp})
	}
	for ml := -l; ml <= l; ml++ {
		states = append(states, State{Ml: ml, Ms: SpinDown})
	}

	return states
}
