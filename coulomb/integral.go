// SPDX-License-Identifier: MIT
package coulomb

import (
	"math/big"

	"github.com/katalvlaran/multiplet/symbolic"
)

// slaterNorm holds, per shell, the fixed per-order normalization constants
// N_k relating the radial integrals F^k to the reduced Slater-Condon
// parameters, F^k = N_k²·f_k (p: F²=25·f2; d: F²=49·f2, F⁴=441·f4;
// f: F²=225·f2, F⁴=1089·f4, F⁶=184041/25·f6). These are tabulated, not
// derived: any deviation rescales every matrix element by a silent
// rational factor.
var slaterNorm = map[int][]*big.Rat{
	1: {big.NewRat(1, 1), big.NewRat(5, 1)},
	2: {big.NewRat(1, 1), big.NewRat(7, 1), big.NewRat(21, 1)},
	3: {big.NewRat(1, 1), big.NewRat(15, 1), big.NewRat(33, 1), big.NewRat(429, 5)},
}

// kSymbols maps the even multipole order k to its Slater-Condon symbol.
var kSymbols = [...]symbolic.Symbol{symbolic.F0, symbolic.F2, symbolic.F4, symbolic.F6}

// Integral — exact two-body Coulomb integral
//
// Description:
//
//	Computes ⟨m1 m2| 1/r₁₂ |m3 m4⟩ within shell l as an exact linear
//	combination of f0..f_{2l}. For each even multipole order k the
//	coefficient of f_k is
//
//	  s(m1)·s(m3) · N_k² · T(m1,m4) · T(m3,m2)
//
//	where T(a,b) = (2l+1)·3j(l,k,l;0,0,0)·3j(l,k,l;-a,a-b,b), N_k is the
//	tabulated per-order normalization, and s(m) = -1 for odd m corrects the
//	spherical-harmonic phase to the Condon-Shortley convention.
//
//	The s shell (l=0) has no angular structure: the integral is identically
//	zero there.
//
// The result is exact; no error conditions exist (l outside 0..3 is a
// contract violation upstream).
func Integral(m1, m2, m3, m4, l int) symbolic.Expr {
	expr := symbolic.Zero()
	if l == 0 {
		return expr
	}

	scale := big.NewRat(int64(oddSign(m1)*oddSign(m3)), 1)
	for i, norm := range slaterNorm[l] {
		k := 2 * i
		t1 := multipoleFactor(l, k, m1, m4)
		t2 := multipoleFactor(l, k, m3, m2)
		coef := t1.Mul(t2).
			MulRat(new(big.Rat).Mul(norm, norm)).
			MulRat(scale)
		expr = expr.AddTerm(kSymbols[i], symbolic.NewCoeff(coef))
	}

	return expr
}

// multipoleFactor evaluates (2l+1)·3j(l,k,l;0,0,0)·3j(l,k,l;-a,a-b,b),
// the π-free reduction of √(4π)·Gaunt(l,k,l;-a,a-b,b)/√(2k+1).
func multipoleFactor(l, k, a, b int) symbolic.Radical {
	w0 := wigner3j(l, k, l, 0, 0, 0)
	wm := wigner3j(l, k, l, -a, a-b, b)

	return w0.Mul(wm).MulRat(big.NewRat(int64(2*l+1), 1))
}

// oddSign is -1 for odd m, +1 for even m.
func oddSign(m int) int {
	if m%2 != 0 {
		return -1
	}

	return 1
}
