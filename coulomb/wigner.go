// SPDX-License-Identifier: MIT
package coulomb

import (
	"fmt"
	"math/big"

	"github.com/katalvlaran/multiplet/symbolic"
)

// wigner3j — exact Wigner 3j symbol for integer angular momenta
//
// Description:
//
//	Evaluates (j1 j2 j3; m1 m2 m3) by the Racah closed form:
//
//	  (-1)^(j1-j2-m3) · √(Δ · ∏ᵢ (jᵢ-mᵢ)!(jᵢ+mᵢ)!) · Σ_t (-1)^t / D(t)
//
//	with the triangle coefficient
//	  Δ = (j1+j2-j3)!(j1-j2+j3)!(-j1+j2+j3)! / (j1+j2+j3+1)!
//	and
//	  D(t) = t!·(j1+j2-j3-t)!·(j1-m1-t)!·(j2+m2-t)!·
//	         (j3-j2+m1+t)!·(j3-j1-m2+t)!
//
//	summed over every t that keeps all factorial arguments nonnegative.
//	The result is a rational multiple of a square root, returned exactly.
//
// Selection rules (zero returned when violated):
//   - m1+m2+m3 = 0
//   - |j1-j2| ≤ j3 ≤ j1+j2
//   - |mᵢ| ≤ jᵢ
//
// Only integer j are needed here (shell momenta and even multipole orders),
// which keeps every argument an int.
func wigner3j(j1, j2, j3, m1, m2, m3 int) symbolic.Radical {
	if m1+m2+m3 != 0 {
		return symbolic.NewInt(0)
	}
	if j3 < absInt(j1-j2) || j3 > j1+j2 {
		return symbolic.NewInt(0)
	}
	if absInt(m1) > j1 || absInt(m2) > j2 || absInt(m3) > j3 {
		return symbolic.NewInt(0)
	}

	delta := new(big.Rat).SetFrac(
		mulFact(j1+j2-j3, j1-j2+j3, -j1+j2+j3),
		fact(j1+j2+j3+1),
	)
	radicand := new(big.Rat).Mul(delta, new(big.Rat).SetFrac(
		mulFact(j1-m1, j1+m1, j2-m2, j2+m2, j3-m3, j3+m3),
		big.NewInt(1),
	))

	tMin := maxInt(0, j2-j3-m1, j1+m2-j3)
	tMax := minInt(j1+j2-j3, j1-m1, j2+m2)
	sum := new(big.Rat)
	for t := tMin; t <= tMax; t++ {
		den := mulFact(t, j1+j2-j3-t, j1-m1-t, j2+m2-t, j3-j2+m1+t, j3-j1-m2+t)
		term := new(big.Rat).SetFrac(big.NewInt(1), den)
		if t%2 != 0 {
			term.Neg(term)
		}
		sum.Add(sum, term)
	}
	if (j1-j2-m3)%2 != 0 {
		sum.Neg(sum)
	}

	return symbolic.Sqrt(radicand).MulRat(sum)
}

// fact returns n! as a big integer. Negative arguments are excluded by the
// selection rules, so they indicate a programmer error.
func fact(n int) *big.Int {
	if n < 0 {
		panic(fmt.Sprintf("coulomb: factorial of negative %d", n))
	}

	return new(big.Int).MulRange(1, int64(n))
}

// mulFact returns the product of the factorials of its arguments.
func mulFact(ns ...int) *big.Int {
	out := big.NewInt(1)
	for _, n := range ns {
		out.Mul(out, fact(n))
	}

	return out
}

func absInt(x int) int {
	if x < 0 {
		return -x
	}

	return x
}

func maxInt(vals ...int) int {
	m := vals[0]
	for _, v := range vals[1:] {
		if v > m {
			m = v
		}
	}

	return m
}

func minInt(vals ...int) int {
	m := vals[0]
	for _, v := range vals[1:] {
		if v < m {
			m = v
		}
	}

	return m
}
