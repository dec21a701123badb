package shell_test

import (
	"math/big"
	"testing"

	"github.com/katalvlaran/multiplet/shell"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestParseShell maps the four labels and rejects everything else.
func TestParseShell(t *testing.T) {
	for label, want := range map[string]int{"s": 0, "p": 1, "d": 2, "f": 3} {
		l, err := shell.ParseShell(label)
		require.NoError(t, err, "label %q is valid", label)
		assert.Equal(t, want, l, "label %q maps to l=%d", label, want)
	}

	_, err := shell.ParseShell("g")
	assert.ErrorIs(t, err, shell.ErrUnknownShell, "label g must be rejected")
}

// TestStateSpace_SizeAndOrder verifies 2(2l+1) distinct states in the
// canonical order: spin-up block first, spin-down block second.
func TestStateSpace_SizeAndOrder(t *testing.T) {
	for l := 0; l <= shell.MaxL; l++ {
		space := shell.StateSpace(l)
		require.Len(t, space, 2*(2*l+1), "shell l=%d has 2(2l+1) states", l)

		seen := make(map[shell.State]bool, len(space))
		for _, st := range space {
			assert.False(t, seen[st], "state %v duplicated in l=%d space", st, l)
			seen[st] = true
		}

		half := 2*l + 1
		for i, st := range space {
			if i < half {
				assert.Equal(t, shell.SpinUp, st.Ms, "first block is spin-up")
				assert.Equal(t, i-l, st.Ml, "spin-up m_l ascends from -l")
			} else {
				assert.Equal(t, shell.SpinDown, st.Ms, "second block is spin-down")
				assert.Equal(t, i-half-l, st.Ml, "spin-down m_l ascends from -l")
			}
		}
	}
}

// TestEnumerate_PSquaredSector pins the p² (M_L=0, M_S=0) sector: exactly
// three determinants, each with the requested exact totals.
func TestEnumerate_PSquaredSector(t *testing.T) {
	space := shell.StateSpace(1)
	cfgs, err := shell.Enumerate(space, 2, 0, big.NewRat(0, 1))
	require.NoError(t, err)
	require.Len(t, cfgs, 3, "p² (0,0) sector has three determinants")

	for _, cfg := range cfgs {
		require.Len(t, cfg, 2, "every configuration holds n states")
		assert.Equal(t, 0, cfg.TotalMl(), "M_L matches the target exactly")
		assert.Equal(t, 0, cfg.TotalMs2(), "M_S matches the target exactly")
		assert.NotEqual(t, cfg[0], cfg[1], "Pauli exclusion: states distinct")
	}
}

// TestEnumerate_Deterministic repeats an enumeration and compares orderings.
func TestEnumerate_Deterministic(t *testing.T) {
	space := shell.StateSpace(2)
	first, err := shell.Enumerate(space, 3, 1, big.NewRat(1, 2))
	require.NoError(t, err)
	second, err := shell.Enumerate(space, 3, 1, big.NewRat(1, 2))
	require.NoError(t, err)
	assert.Equal(t, first, second, "identical inputs yield the identical ordered list")
	assert.NotEmpty(t, first, "d³ (1, 1/2) sector is populated")
}

// TestEnumerate_EmptySectorIsValid verifies an unreachable target returns
// zero configurations without error.
func TestEnumerate_EmptySectorIsValid(t *testing.T) {
	space := shell.StateSpace(1)

	cfgs, err := shell.Enumerate(space, 2, 5, big.NewRat(0, 1))
	require.NoError(t, err, "empty sector is not a failure")
	assert.Empty(t, cfgs, "M_L=5 is unreachable for p²")

	cfgs, err = shell.Enumerate(space, 2, 0, big.NewRat(1, 3))
	require.NoError(t, err)
	assert.Empty(t, cfgs, "non-half-integer M_S matches nothing")
}

// TestEnumerate_ElectronCountValidation checks the fail-fast bounds.
func TestEnumerate_ElectronCountValidation(t *testing.T) {
	space := shell.StateSpace(0)

	_, err := shell.Enumerate(space, 0, 0, big.NewRat(0, 1))
	assert.ErrorIs(t, err, shell.ErrElectronCount, "n=0 must be rejected")

	_, err = shell.Enumerate(space, 3, 0, big.NewRat(0, 1))
	assert.ErrorIs(t, err, shell.ErrElectronCount, "n beyond the state space must be rejected")
}

// TestDiff computes multiset differences in configuration order.
func TestDiff(t *testing.T) {
	c1 := shell.Config{{Ml: -1, Ms: shell.SpinUp}, {Ml: 0, Ms: shell.SpinUp}, {Ml: 1, Ms: shell.SpinDown}}
	c2 := shell.Config{{Ml: -1, Ms: shell.SpinUp}, {Ml: 1, Ms: shell.SpinUp}, {Ml: 0, Ms: shell.SpinDown}}

	removed, added := shell.Diff(c1, c2)
	assert.Equal(t, []shell.State{{Ml: 0, Ms: shell.SpinUp}, {Ml: 1, Ms: shell.SpinDown}}, removed,
		"removed: in c1, not in c2")
	assert.Equal(t, []shell.State{{Ml: 1, Ms: shell.SpinUp}, {Ml: 0, Ms: shell.SpinDown}}, added,
		"added: in c2, not in c1")

	removed, added = shell.Diff(c1, c1)
	assert.Empty(t, removed, "identical configs remove nothing")
	assert.Empty(t, added, "identical configs add nothing")
}

// TestParity checks the cycle-decomposition signature.
func TestParity(t *testing.T) {
	assert.Equal(t, +1, shell.Parity([]int{0, 1, 2}), "identity is even")
	assert.Equal(t, -1, shell.Parity([]int{1, 0, 2}), "one transposition is odd")
	assert.Equal(t, +1, shell.Parity([]int{1, 2, 0}), "a 3-cycle is even")
	assert.Equal(t, +1, shell.Parity([]int{3, 2, 1, 0}), "(03)(12) is a product of two transpositions, even")
	assert.Equal(t, -1, shell.Parity([]int{0, 1, 3, 2}), "a single distant swap is odd")
}
