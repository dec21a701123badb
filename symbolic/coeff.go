// SPDX-License-Identifier: MIT
package symbolic

import (
	"math/big"
	"sort"
	"strings"
)

// Coeff is a canonical sum of Radicals: sorted by radicand, pairwise
// distinct radicands, no zero terms. A nil/empty Coeff is exactly zero.
//
// Coeffs are closed under Add, Mul, Neg and Inv, i.e. they form a field
// (the real multiquadratic extension of ℚ generated by the radicands),
// which is what makes exact Gaussian elimination and characteristic
// polynomials possible in the eigensolver.
type Coeff []Radical

// NewCoeff builds a canonical Coeff from any collection of Radicals,
// merging equal radicands and dropping zero terms.
func NewCoeff(rads ...Radical) Coeff {
	byRoot := make(map[int64]*big.Rat, len(rads))
	for _, r := range rads {
		if r.IsZero() {
			continue
		}
		if acc, ok := byRoot[r.Root()]; ok {
			acc.Add(acc, r.coefOrZero())
		} else {
			byRoot[r.Root()] = r.Coef()
		}
	}
	out := make(Coeff, 0, len(byRoot))
	for root, coef := range byRoot {
		if coef.Sign() != 0 {
			out = append(out, Radical{coef: coef, root: root})
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].root < out[j].root })
	if len(out) == 0 {
		return nil
	}

	return out
}

// RatCoeff returns the rational r as a Coeff.
func RatCoeff(r *big.Rat) Coeff { return NewCoeff(NewRat(r)) }

// IntCoeff returns the integer n as a Coeff.
func IntCoeff(n int64) Coeff { return NewCoeff(NewInt(n)) }

// IsZero reports whether the value is exactly zero.
func (c Coeff) IsZero() bool { return len(c) == 0 }

// Add returns c + o.
func (c Coeff) Add(o Coeff) Coeff {
	all := make([]Radical, 0, len(c)+len(o))
	all = append(all, c...)
	all = append(all, o...)

	return NewCoeff(all...)
}

// Sub returns c - o.
func (c Coeff) Sub(o Coeff) Coeff { return c.Add(o.Neg()) }

// Neg returns -c.
func (c Coeff) Neg() Coeff {
	out := make(Coeff, len(c))
	for i, r := range c {
		out[i] = r.Neg()
	}

	return out
}

// Mul returns the exact product c·o (distributing over all radical pairs).
func (c Coeff) Mul(o Coeff) Coeff {
	prods := make([]Radical, 0, len(c)*len(o))
	for _, a := range c {
		for _, b := range o {
			prods = append(prods, a.Mul(b))
		}
	}

	return NewCoeff(prods...)
}

// MulRat returns c scaled by the rational q.
func (c Coeff) MulRat(q *big.Rat) Coeff {
	if q.Sign() == 0 {
		return nil
	}
	out := make([]Radical, len(c))
	for i, r := range c {
		out[i] = r.MulRat(q)
	}

	return NewCoeff(out...)
}

// Rat returns the value as a plain rational; ok is false when any
// irrational term is present.
func (c Coeff) Rat() (*big.Rat, bool) {
	switch len(c) {
	case 0:
		return new(big.Rat), true
	case 1:
		return c[0].Rat()
	default:
		return nil, false
	}
}

// Equal reports exact equality (canonical forms compare term-wise).
func (c Coeff) Equal(o Coeff) bool {
	if len(c) != len(o) {
		return false
	}
	for i := range c {
		if !c[i].Equal(o[i]) {
			return false
		}
	}

	return true
}

// Inv returns 1/c. ok is false iff c is zero.
//
// Inversion proceeds by iterated conjugation: pick a prime p dividing some
// radicand, split c = A + B·√p with A, B free of p, and use
//
//	1/c = (A - B·√p) / (A² - p·B²),
//
// where the denominator is free of p and nonzero (it is the product of two
// nonzero conjugates). Each step eliminates one prime, so the recursion
// bottoms out at a plain rational.
func (c Coeff) Inv() (Coeff, bool) {
	if c.IsZero() {
		return nil, false
	}
	if r, ok := c.Rat(); ok {
		return RatCoeff(new(big.Rat).Inv(r)), true
	}

	p := c.anyRootPrime()
	a, b := c.splitByPrime(p)
	pRat := new(big.Rat).SetInt64(p)
	den := a.Mul(a).Sub(b.Mul(b).MulRat(pRat))
	dinv, ok := den.Inv()
	if !ok {
		return nil, false
	}
	num := a.Sub(b.Mul(NewCoeff(Sqrt(pRat))))

	return num.Mul(dinv), true
}

// Float64 returns a float approximation, for bounds and diagnostics only.
func (c Coeff) Float64() float64 {
	var sum float64
	for _, r := range c {
		sum += r.Float64()
	}

	return sum
}

// String renders the sum, e.g. "10", "-1/2 + sqrt(6)", "2*sqrt(3)".
func (c Coeff) String() string {
	if len(c) == 0 {
		return "0"
	}
	var sb strings.Builder
	for i, r := range c {
		s := r.String()
		if i == 0 {
			sb.WriteString(s)
			continue
		}
		if strings.HasPrefix(s, "-") {
			sb.WriteString(" - ")
			sb.WriteString(s[1:])
		} else {
			sb.WriteString(" + ")
			sb.WriteString(s)
		}
	}

	return sb.String()
}

// anyRootPrime returns the smallest prime dividing the smallest non-trivial
// radicand. Callers guarantee at least one radicand > 1.
func (c Coeff) anyRootPrime() int64 {
	for _, r := range c {
		root := r.Root()
		if root == 1 {
			continue
		}
		for p := int64(2); p*p <= root; p++ {
			if root%p == 0 {
				return p
			}
		}

		return root
	}
	panic("symbolic: anyRootPrime on rational Coeff")
}

// splitByPrime writes c = a + b·√p with every radicand of a and b coprime
// to p. A term coef·√(p·m) contributes coef·√m to b.
func (c Coeff) splitByPrime(p int64) (a, b Coeff) {
	var aa, bb []Radical
	for _, r := range c {
		if r.Root()%p == 0 {
			bb = append(bb, normRadical(r.Coef(), r.Root()/p))
		} else {
			aa = append(aa, r)
		}
	}

	return NewCoeff(aa...), NewCoeff(bb...)
}
