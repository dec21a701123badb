package coulomb_test

import (
	"math/big"
	"testing"

	"github.com/katalvlaran/multiplet/coulomb"
	"github.com/katalvlaran/multiplet/symbolic"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ratCoeff extracts the coefficient of sym as an exact rational.
func ratCoeff(t *testing.T, e symbolic.Expr, sym symbolic.Symbol) *big.Rat {
	t.Helper()
	r, ok := e.Coeff(sym).Rat()
	require.True(t, ok, "coefficient of %s must be rational here", sym)

	return r
}

// TestIntegral_SShellIsZero: the s shell has no angular structure.
func TestIntegral_SShellIsZero(t *testing.T) {
	assert.True(t, coulomb.Integral(0, 0, 0, 0, 0).IsZero(), "l=0 integral vanishes identically")
}

// TestIntegral_PShellDiagonal pins the classic Condon-Shortley p-shell
// direct integrals: J(p0,p0) = f0 + 4·f2 and J(p1,p0) = f0 - 2·f2
// (f2 = F²/25).
func TestIntegral_PShellDiagonal(t *testing.T) {
	j00 := coulomb.Integral(0, 0, 0, 0, 1)
	assert.Equal(t, 0, ratCoeff(t, j00, symbolic.F0).Cmp(big.NewRat(1, 1)), "monopole of J(p0,p0) is 1")
	assert.Equal(t, 0, ratCoeff(t, j00, symbolic.F2).Cmp(big.NewRat(4, 1)), "f2 of J(p0,p0) is 4")
	assert.True(t, j00.Coeff(symbolic.F4).IsZero(), "no f4 in a p shell")
	assert.True(t, j00.Coeff(symbolic.F6).IsZero(), "no f6 in a p shell")

	// J(p1,p0): evaluator arguments in assembler order (m2,m1,m3,m4)
	// for the direct term (1,0,1,0).
	j10 := coulomb.Integral(0, 1, 1, 0, 1)
	assert.Equal(t, 0, ratCoeff(t, j10, symbolic.F0).Cmp(big.NewRat(1, 1)), "monopole of J(p1,p0) is 1")
	assert.Equal(t, 0, ratCoeff(t, j10, symbolic.F2).Cmp(big.NewRat(-2, 1)), "f2 of J(p1,p0) is -2")
}

// TestIntegral_PShellExchange pins K(p1,p0) = 3·f2: the monopole term dies
// on the 3j selection rule, only the quadrupole survives.
func TestIntegral_PShellExchange(t *testing.T) {
	k10 := coulomb.Integral(0, 1, 0, 1, 1)
	assert.True(t, k10.Coeff(symbolic.F0).IsZero(), "exchange between different m has no monopole")
	assert.Equal(t, 0, ratCoeff(t, k10, symbolic.F2).Cmp(big.NewRat(3, 1)), "f2 of K(p1,p0) is 3")
}

// TestIntegral_DShellDiagonal pins J(d2,d2) = f0 + 4·f2 + f4
// (f2 = F²/49, f4 = F⁴/441).
func TestIntegral_DShellDiagonal(t *testing.T) {
	j22 := coulomb.Integral(2, 2, 2, 2, 2)
	assert.Equal(t, 0, ratCoeff(t, j22, symbolic.F0).Cmp(big.NewRat(1, 1)), "monopole of J(d2,d2) is 1")
	assert.Equal(t, 0, ratCoeff(t, j22, symbolic.F2).Cmp(big.NewRat(4, 1)), "f2 of J(d2,d2) is 4")
	assert.Equal(t, 0, ratCoeff(t, j22, symbolic.F4).Cmp(big.NewRat(1, 1)), "f4 of J(d2,d2) is 1")
	assert.True(t, j22.Coeff(symbolic.F6).IsZero(), "no f6 in a d shell")
}

// TestIntegral_MonopoleSelection: every direct diagonal integral carries
// monopole coefficient exactly 1, for every shell and m pair.
func TestIntegral_MonopoleSelection(t *testing.T) {
	for l := 1; l <= 3; l++ {
		for m1 := -l; m1 <= l; m1++ {
			for m2 := -l; m2 <= l; m2++ {
				// Assembler order (m2,m1,m3,m4) of the direct term (m1,m2,m1,m2).
				e := coulomb.Integral(m2, m1, m1, m2, l)
				assert.Equal(t, 0, ratCoeff(t, e, symbolic.F0).Cmp(big.NewRat(1, 1)),
					"monopole of J(m=%d,m'=%d), l=%d is 1", m1, m2, l)
			}
		}
	}
}
