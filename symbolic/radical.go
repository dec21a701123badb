// SPDX-License-Identifier: MIT
package symbolic

import (
	"fmt"
	"math"
	"math/big"
)

// Radical is a single exact value coef·√root, where coef is an arbitrary
// precision rational and root is a squarefree positive integer. A root of 1
// means the value is the plain rational coef. The zero Radical (zero coef)
// always carries root 1.
//
// Radicals are immutable; all methods return fresh values and never alias
// the receiver's internals.
type Radical struct {
	coef *big.Rat
	root int64
}

// NewRat returns the rational value r as a Radical (root 1).
func NewRat(r *big.Rat) Radical {
	return normRadical(new(big.Rat).Set(r), 1)
}

// NewInt returns the integer n as a Radical (root 1).
func NewInt(n int64) Radical {
	return normRadical(new(big.Rat).SetInt64(n), 1)
}

// Sqrt returns the exact square root of the nonnegative rational r,
// normalized so that the radicand is a squarefree integer:
//
//	√(a/b) = (s/b)·√f  with  a·b = s²·f, f squarefree.
//
// Sqrt panics on a negative argument; radicands in this codebase come from
// products of factorials and are nonnegative by construction, so a negative
// input is a programmer error.
func Sqrt(r *big.Rat) Radical {
	if r.Sign() < 0 {
		panic(fmt.Sprintf("symbolic: Sqrt of negative rational %s", r.String()))
	}
	if r.Sign() == 0 {
		return Radical{coef: new(big.Rat), root: 1}
	}
	m := new(big.Int).Mul(r.Num(), r.Denom())
	s, f := squarefree(m)
	coef := new(big.Rat).SetFrac(s, r.Denom())

	return normRadical(coef, f)
}

// Coef returns a copy of the rational prefactor.
func (r Radical) Coef() *big.Rat {
	if r.coef == nil {
		return new(big.Rat)
	}

	return new(big.Rat).Set(r.coef)
}

// Root returns the squarefree radicand (1 for rational values).
func (r Radical) Root() int64 {
	if r.root == 0 {
		return 1
	}

	return r.root
}

// IsZero reports whether the value is exactly zero.
func (r Radical) IsZero() bool { return r.coef == nil || r.coef.Sign() == 0 }

// Neg returns -r.
func (r Radical) Neg() Radical {
	return normRadical(new(big.Rat).Neg(r.coefOrZero()), r.Root())
}

// Mul returns the exact product r·o. The product of two radicals folds the
// shared square factor of the radicands back into the rational prefactor:
//
//	√r₁·√r₂ = g·√((r₁/g)·(r₂/g)),  g = gcd(r₁, r₂),
//
// which keeps the radicand squarefree without refactoring.
func (r Radical) Mul(o Radical) Radical {
	coef := new(big.Rat).Mul(r.coefOrZero(), o.coefOrZero())
	if coef.Sign() == 0 {
		return Radical{coef: coef, root: 1}
	}
	g := gcd64(r.Root(), o.Root())
	root := (r.Root() / g) * (o.Root() / g)
	coef.Mul(coef, new(big.Rat).SetInt64(g))

	return normRadical(coef, root)
}

// MulRat returns r scaled by the rational q.
func (r Radical) MulRat(q *big.Rat) Radical {
	return normRadical(new(big.Rat).Mul(r.coefOrZero(), q), r.Root())
}

// Rat returns the value as a plain rational. ok is false when the value is
// irrational (root > 1).
func (r Radical) Rat() (*big.Rat, bool) {
	if r.IsZero() {
		return new(big.Rat), true
	}
	if r.Root() != 1 {
		return nil, false
	}

	return new(big.Rat).Set(r.coef), true
}

// Equal reports exact structural equality.
func (r Radical) Equal(o Radical) bool {
	if r.IsZero() && o.IsZero() {
		return true
	}

	return r.Root() == o.Root() && r.coefOrZero().Cmp(o.coefOrZero()) == 0
}

// Float64 returns a float approximation, for bounds and diagnostics only.
func (r Radical) Float64() float64 {
	c, _ := r.coefOrZero().Float64()

	return c * math.Sqrt(float64(r.Root()))
}

// String renders the value: "3", "-1/2", "sqrt(6)", "2/5*sqrt(3)".
func (r Radical) String() string {
	if r.IsZero() {
		return "0"
	}
	if r.Root() == 1 {
		return r.coef.RatString()
	}
	one := big.NewRat(1, 1)
	switch {
	case r.coef.Cmp(one) == 0:
		return fmt.Sprintf("sqrt(%d)", r.Root())
	case r.coef.Cmp(new(big.Rat).Neg(one)) == 0:
		return fmt.Sprintf("-sqrt(%d)", r.Root())
	default:
		return fmt.Sprintf("%s*sqrt(%d)", r.coef.RatString(), r.Root())
	}
}

func (r Radical) coefOrZero() *big.Rat {
	if r.coef == nil {
		return new(big.Rat)
	}

	return r.coef
}

/// normRadical enforces the invariants: zero carries root 1, roots are >= 1.
func normRadical(coef *big.Rat, root int64) Radical {
	if root < 1 {
		panic(fmt.Sprintf("symbolic: non-positive radicand %d", root))
	}
	if coef.Sign() == 0 {
		return Radical{coef: coef, root: 1}
	}

	return Radical{coef: coef, root: root}
}

// squarefree splits m = s²·f with f squarefree, returning (s, f).
// Trial division covers every prime that can occur in factorial products;
// a large leftover is accepted whole if it is a perfect square, otherwise
// it is treated as squarefree.
func squarefree(m *big.Int) (*big.Int, int64) {
	s := big.NewInt(1)
	f := int64(1)
	rem := new(big.Int).Set(m)

	for p := int64(2); p <= 997; p++ {
		if p > 2 && p%2 == 0 {
			continue
		}
		pp := big.NewInt(p)
		if new(big.Int).Mul(pp, pp).Cmp(rem) > 0 {
			break
		}
		exp := 0
		q, r := new(big.Int), new(big.Int)
		for {
			q.QuoRem(rem, pp, r)
			if r.Sign() != 0 {
				break
			}
			rem.Set(q)
			exp++
		}
		for i := 0; i < exp/2; i++ {
			s.Mul(s, pp)
		}
		if exp%2 == 1 {
			f *= p
		}
	}

	if rem.Cmp(big.NewInt(1)) > 0 {
		sq := new(big.Int).Sqrt(rem)
		if new(big.Int).Mul(sq, sq).Cmp(rem) == 0 {
			s.Mul(s, sq)
		} else {
			if !rem.IsInt64() {
				panic("symbolic: radicand out of range")
			}
			f *= rem.Int64()
		}
	}

	return s, f
}

func gcd64(a, b int64) int64 {
	for b != 0 {
		a, b = b, a%b
	}
	if a < 0 {
		return -a
	}

	return a
}
