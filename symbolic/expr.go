// SPDX-License-Identifier: MIT
package symbolic

import (
	"math/big"
	"strings"
)

// Symbol identifies one of the four Slater-Condon radial parameters. The
// set is fixed: lower shells simply never populate the higher symbols.
type Symbol int

const (
	// F0 is the monopole (k=0) Slater-Condon parameter.
	F0 Symbol = iota
	// F2 is the k=2 Slater-Condon parameter.
	F2
	// F4 is the k=4 Slater-Condon parameter.
	F4
	// F6 is the k=6 Slater-Condon parameter.
	F6

	// NumSymbols is the size of the symbol set.
	NumSymbols = 4
)

// Symbols lists all symbols in canonical order.
func Symbols() []Symbol { return []Symbol{F0, F2, F4, F6} }

func (s Symbol) String() string {
	switch s {
	case F0:
		return "f0"
	case F2:
		return "f2"
	case F4:
		return "f4"
	case F6:
		return "f6"
	default:
		return "f?"
	}
}

// Expr is an exact linear combination Σ cᵢ·fᵢ over {f0, f2, f4, f6} with
// Coeff coefficients. The zero value of Expr is the zero expression.
// Exprs are immutable and always canonical, so simplification is a no-op
// by construction.
type Expr struct {
	coeffs [NumSymbols]Coeff
}

// Zero returns the zero expression.
func Zero() Expr { return Expr{} }

// Coeff returns the coefficient of symbol s.
func (e Expr) Coeff(s Symbol) Coeff { return e.coeffs[s] }

// AddTerm returns e + c·s.
func (e Expr) AddTerm(s Symbol, c Coeff) Expr {
	out := e
	out.coeffs[s] = e.coeffs[s].Add(c)

	return out
}

// Add returns e + o.
func (e Expr) Add(o Expr) Expr {
	var out Expr
	for i := range e.coeffs {
		out.coeffs[i] = e.coeffs[i].Add(o.coeffs[i])
	}

	return out
}

// Sub returns e - o.
func (e Expr) Sub(o Expr) Expr { return e.Add(o.Neg()) }

// Neg returns -e.
func (e Expr) Neg() Expr {
	var out Expr
	for i := range e.coeffs {
		out.coeffs[i] = e.coeffs[i].Neg()
	}

	return out
}

// IsZero reports whether every coefficient vanishes exactly.
func (e Expr) IsZero() bool {
	for _, c := range e.coeffs {
		if !c.IsZero() {
			return false
		}
	}

	return true
}

// Equal reports exact equality of all coefficients.
func (e Expr) Equal(o Expr) bool {
	for i := range e.coeffs {
		if !e.coeffs[i].Equal(o.coeffs[i]) {
			return false
		}
	}

	return true
}

// String renders the expression in symbol order: "f0 + 10*f2",
// "sqrt(6)*f2 - 5*f4", "0". Multi-term coefficients are parenthesized.
func (e Expr) String() string {
	var sb strings.Builder
	for _, s := range Symbols() {
		c := e.coeffs[s]
		if c.IsZero() {
			continue
		}
		term, negative := renderTerm(c, s)
		if sb.Len() == 0 {
			if negative {
				sb.WriteString("-")
			}
			sb.WriteString(term)
			continue
		}
		if negative {
			sb.WriteString(" - ")
		} else {
			sb.WriteString(" + ")
		}
		sb.WriteString(term)
	}
	if sb.Len() == 0 {
		return "0"
	}

	return sb.String()
}

// renderTerm renders |c|*s and reports whether the leading sign of c is
// negative (single-term coefficients only; sums are parenthesized with the
// sign kept inside).
func renderTerm(c Coeff, s Symbol) (string, bool) {
	if len(c) > 1 {
		return "(" + c.String() + ")*" + s.String(), false
	}
	r := c[0]
	neg := r.coefOrZero().Sign() < 0
	if neg {
		r = r.Neg()
	}
	if rat, ok := r.Rat(); ok && rat.Cmp(big.NewRat(1, 1)) == 0 {
		return s.String(), neg
	}

	return r.String() + "*" + s.String(), neg
}
