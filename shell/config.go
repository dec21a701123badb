// SPDX-License-Identifier: MIT
package shell

import (
	"fmt"
	"math/big"
	"strings"
)

// Config is one Slater determinant: an ordered tuple of n distinct
// single-particle states. The recorded order is the combination's natural
// order within the canonical state space; it is the reference for sign
// bookkeeping and must not be rearranged after enumeration.
type Config []State

// TotalMl returns the total orbital projection M_L = Σ m_l.
func (c Config) TotalMl() int {
	var sum int
	for _, st := range c {
		sum += st.Ml
	}

	return sum
}

// TotalMs2 returns twice the total spin projection, 2·M_S = Σ 2·m_s,
// which is always an exact integer.
func (c Config) TotalMs2() int {
	var sum int
	for _, st := range c {
		sum += int(st.Ms)
	}

	return sum
}

func (c Config) String() string {
	parts := make([]string, len(c))
	for i, st := range c {
		parts[i] = st.String()
	}

	return "{" + strings.Join(parts, ", ") + "}"
}

// Enumerate generates every n-combination of distinct states from space, in
// canonical (index-ascending) order, and keeps those whose total M_L and
// M_S match the targets exactly.
//
// Guarantees:
//   - deterministic: identical inputs always yield the identical ordered list
//   - an empty result is a valid outcome (empty sector), not an error
//
// Errors:
//   - ErrElectronCount — n < 1 or n > len(space).
func Enumerate(space []State, n int, targetML int, targetMS *big.Rat) ([]Config, error) {
	if n < 1 || n > len(space) {
		return nil, fmt.Errorf("%w: n=%d with %d states", ErrElectronCount, n, len(space))
	}

	// Exact M_S comparison in half-units: a non-half-integer target can
	// never match a spin sum, so the sector is empty.
	twice := new(big.Rat).Mul(targetMS, big.NewRat(2, 1))
	if !twice.IsInt() {
		return []Config{}, nil
	}
	targetMs2 := int(twice.Num().Int64())

	var out []Config
	idx := make([]int, n)
	for i := range idx {
		idx[i] = i
	}
	for {
		cfg := make(Config, n)
		for i, k := range idx {
			cfg[i] = space[k]
		}
		if cfg.TotalMl() == targetML && cfg.TotalMs2() == targetMs2 {
			out = append(out, cfg)
		}
		if !nextCombination(idx, len(space)) {
			break
		}
	}
	if out == nil {
		out = []Config{}
	}

	return out, nil
}

// nextCombination advances idx to the next n-combination of {0..m-1} in
// lexicographic order; returns false after the last one.
func nextCombination(idx []int, m int) bool {
	n := len(idx)
	for i := n - 1; i >= 0; i-- {
		if idx[i] < m-n+i {
			idx[i]++
			for j := i + 1; j < n; j++ {
				idx[j] = idx[j-1] + 1
			}

			return true
		}
	}

	return false
}

// Diff computes the multiset difference between two configurations:
// removed holds the states of c1 absent from c2, added the states of c2
// absent from c1, both in their configuration order. Within one
// configuration states are distinct, so the counts are plain set
// differences here, but the contract is multiset semantics.
func Diff(c1, c2 Config) (removed, added []State) {
	count := make(map[State]int, len(c1)+len(c2))
	for _, st := range c1 {
		count[st]++
	}
	for _, st := range c2 {
		count[st]--
	}
	for _, st := range c1 {
		if count[st] > 0 {
			removed = append(removed, st)
			count[st]--
		}
	}
	count = make(map[State]int, len(c2))
	for _, st := range c2 {
		count[st]++
	}
	for _, st := range c1 {
		count[st]--
	}
	for _, st := range c2 {
		if count[st] > 0 {
			added = append(added, st)
			count[st]--
		}
	}

	return removed, added
}

// Parity returns the signature of the permutation perm (a bijection of
// 0..len-1): +1 for even, -1 for odd, computed by cycle decomposition
// (a cycle of length k contributes k-1 transpositions).
func Parity(perm []int) int {
	seen := make([]bool, len(perm))
	sign := 1
	for i := range perm {
		if seen[i] {
			continue
		}
		length := 0
		for j := i; !seen[j]; j = perm[j] {
			seen[j] = true
			length++
		}
		if length%2 == 0 {
			sign = -sign
		}
	}

	return sign
}
