// SPDX-License-Identifier: MIT
package hamiltonian

import (
	"math"
	"math/big"

	"github.com/katalvlaran/multiplet/symbolic"
)

// The exact eigensolver works on the decomposition H = Σ_k f_k·H_k, where
// each H_k is a matrix over the radical field (symbolic.Coeff). When the
// H_k commute pairwise they are simultaneously diagonalizable and every
// eigenvalue of H is linear in f0..f6: the solver refines the full space
// into joint eigenspaces, one symbol at a time, entirely with exact
// arithmetic. Anything outside that regime (non-commuting components,
// irrational characteristic roots) is reported as skipped by reason —
// never approximated.

// skip reasons, also surfaced verbatim in Result.EigenSkipped.
const (
	skipNonCommuting = "eigenvalues skipped: multipole components do not commute, spectrum is not linear in f0..f6"
	skipIrrational   = "eigenvalues skipped: characteristic polynomial has irrational coefficients"
	skipNoFactor     = "eigenvalues skipped: characteristic polynomial does not factor over the rationals"
	skipBound        = "eigenvalues skipped: eigenvalue search bound too large"
	skipNotInvariant = "eigenvalues skipped: component subspace is not invariant"
)

type kvec []symbolic.Coeff

type kmat [][]symbolic.Coeff

// eigenvalues computes the exact spectrum of H with multiplicities, or a
// skip reason.
func eigenvalues(H [][]symbolic.Expr) ([]Eigenvalue, string) {
	n := len(H)
	comps := components(H)

	for s := 0; s < symbolic.NumSymbols; s++ {
		for t := s + 1; t < symbolic.NumSymbols; t++ {
			if !matEqual(matMul(comps[s], comps[t]), matMul(comps[t], comps[s])) {
				return nil, skipNonCommuting
			}
		}
	}

	type node struct {
		basis []kvec
		val   symbolic.Expr
	}
	nodes := []node{{basis: identityBasis(n), val: symbolic.Zero()}}

	for _, sym := range symbolic.Symbols() {
		var next []node
		for _, nd := range nodes {
			m, ok := restrict(comps[sym], nd.basis)
			if !ok {
				return nil, skipNotInvariant
			}
			roots, reason := rationalEigen(m)
			if reason != "" {
				return nil, reason
			}
			split := 0
			for _, mu := range roots {
				ker := nullspace(subScaledIdentity(m, mu))
				if len(ker) == 0 {
					continue
				}
				split += len(ker)
				next = append(next, node{
					basis: lift(nd.basis, ker),
					val:   nd.val.AddTerm(sym, symbolic.RatCoeff(mu)),
				})
			}
			if split != len(nd.basis) {
				return nil, skipNoFactor
			}
		}
		nodes = next
	}

	var out []Eigenvalue
	for _, nd := range nodes {
		merged := false
		for i := range out {
			if out[i].Value.Equal(nd.val) {
				out[i].Multiplicity += len(nd.basis)
				merged = true
				break
			}
		}
		if !merged {
			out = append(out, Eigenvalue{Value: nd.val, Multiplicity: len(nd.basis)})
		}
	}

	return out, ""
}

// components splits H into its per-symbol coefficient matrices.
func components(H [][]symbolic.Expr) [symbolic.NumSymbols]kmat {
	n := len(H)
	var comps [symbolic.NumSymbols]kmat
	for s := range comps {
		comps[s] = make(kmat, n)
		for i := 0; i < n; i++ {
			comps[s][i] = make(kvec, n)
			for j := 0; j < n; j++ {
				comps[s][i][j] = H[i][j].Coeff(symbolic.Symbol(s))
			}
		}
	}

	return comps
}

// rationalEigen returns the distinct rational eigenvalues of m, or a skip
// reason. The characteristic polynomial comes from the Faddeev–LeVerrier
// recurrence (ring operations and division by integers only, so it stays
// inside the field); its rational roots are found by scanning the integer
// roots of the denominator-cleared monic polynomial inside a Gershgorin
// bound.
func rationalEigen(m kmat) ([]*big.Rat, string) {
	d := len(m)
	if d == 0 {
		return nil, ""
	}

	// characteristic polynomial λ^d + c[1]·λ^(d-1) + ... + c[d]
	c := make([]*big.Rat, d+1)
	c[0] = big.NewRat(1, 1)
	aux := matCopy(m)
	for i := 1; i <= d; i++ {
		if i > 1 {
			aux = matMul(m, addScaledIdentity(aux, c[i-1]))
		}
		tr, ok := trace(aux).Rat()
		if !ok {
			return nil, skipIrrational
		}
		c[i] = tr.Quo(tr, big.NewRat(int64(-i), 1))
	}

	// clear denominators: y = D·λ gives a monic integer polynomial in y.
	den := big.NewInt(1)
	for i := 1; i <= d; i++ {
		den.Mul(den, new(big.Int).Div(c[i].Denom(), new(big.Int).GCD(nil, nil, den, c[i].Denom())))
	}
	poly := make([]*big.Int, d+1)
	poly[0] = big.NewInt(1)
	dPow := big.NewInt(1)
	for i := 1; i <= d; i++ {
		dPow.Mul(dPow, den)
		scaled := new(big.Rat).Mul(c[i], new(big.Rat).SetInt(dPow))
		if !scaled.IsInt() {
			return nil, skipNoFactor
		}
		poly[i] = new(big.Int).Set(scaled.Num())
	}

	// Gershgorin bound on λ, scaled to y units (float only for the bound;
	// every accepted root is verified exactly).
	var radius float64
	for i := 0; i < d; i++ {
		var rowSum float64
		for j := 0; j < d; j++ {
			rowSum += math.Abs(m[i][j].Float64())
		}
		radius = math.Max(radius, rowSum)
	}
	denF, _ := new(big.Float).SetInt(den).Float64()
	bound := int64(math.Ceil((radius+1)*denF)) + 1
	if bound > 5_000_000 {
		return nil, skipBound
	}

	var roots []*big.Rat
	remaining := poly
	for y := -bound; y <= bound && len(remaining) > 1; y++ {
		found := false
		for len(remaining) > 1 && evalPoly(remaining, y).Sign() == 0 {
			remaining = deflate(remaining, y)
			found = true
		}
		if found {
			roots = append(roots, new(big.Rat).SetFrac(big.NewInt(y), den))
		}
	}
	if len(remaining) > 1 {
		return nil, skipNoFactor
	}

	return roots, ""
}

// restrict expresses the action of a on the span of basis as a d×d matrix,
// verifying that the span is actually invariant.
func restrict(a kmat, basis []kvec) (kmat, bool) {
	n := len(a)
	d := len(basis)

	// augmented system [B | A·B]: after reducing the left block to
	// identity, the top d rows of the right block are the coordinates and
	// the remaining rows must vanish.
	aug := make(kmat, n)
	for i := 0; i < n; i++ {
		aug[i] = make(kvec, 2*d)
		for j := 0; j < d; j++ {
			aug[i][j] = basis[j][i]
		}
	}
	for j := 0; j < d; j++ {
		w := matVec(a, basis[j])
		for i := 0; i < n; i++ {
			aug[i][d+j] = w[i]
		}
	}

	row := 0
	for col := 0; col < d; col++ {
		p := -1
		for i := row; i < n; i++ {
			if !aug[i][col].IsZero() {
				p = i
				break
			}
		}
		if p < 0 {
			return nil, false
		}
		aug[row], aug[p] = aug[p], aug[row]
		inv, _ := aug[row][col].Inv()
		for j := col; j < 2*d; j++ {
			aug[row][j] = aug[row][j].Mul(inv)
		}
		for i := 0; i < n; i++ {
			if i == row || aug[i][col].IsZero() {
				continue
			}
			factor := aug[i][col]
			for j := col; j < 2*d; j++ {
				aug[i][j] = aug[i][j].Sub(factor.Mul(aug[row][j]))
			}
		}
		row++
	}

	out := make(kmat, d)
	for i := 0; i < d; i++ {
		out[i] = make(kvec, d)
		copy(out[i], aug[i][d:])
	}
	for i := d; i < n; i++ {
		for j := 0; j < d; j++ {
			if !aug[i][d+j].IsZero() {
				return nil, false
			}
		}
	}

	return out, true
}

// nullspace returns a basis of ker(m) via exact reduced row echelon form.
func nullspace(m kmat) []kvec {
	d := len(m)
	red := matCopy(m)

	pivotOfCol := make([]int, d)
	for j := range pivotOfCol {
		pivotOfCol[j] = -1
	}
	row := 0
	for col := 0; col < d && row < d; col++ {
		p := -1
		for i := row; i < d; i++ {
			if !red[i][col].IsZero() {
				p = i
				break
			}
		}
		if p < 0 {
			continue
		}
		red[row], red[p] = red[p], red[row]
		inv, _ := red[row][col].Inv()
		for j := col; j < d; j++ {
			red[row][j] = red[row][j].Mul(inv)
		}
		for i := 0; i < d; i++ {
			if i == row || red[i][col].IsZero() {
				continue
			}
			factor := red[i][col]
			for j := col; j < d; j++ {
				red[i][j] = red[i][j].Sub(factor.Mul(red[row][j]))
			}
		}
		pivotOfCol[col] = row
		row++
	}

	var basis []kvec
	for col := 0; col < d; col++ {
		if pivotOfCol[col] >= 0 {
			continue
		}
		v := make(kvec, d)
		v[col] = symbolic.IntCoeff(1)
		for pcol := 0; pcol < d; pcol++ {
			if r := pivotOfCol[pcol]; r >= 0 {
				v[pcol] = red[r][col].Neg()
			}
		}
		basis = append(basis, v)
	}

	return basis
}

// lift maps coordinate vectors of a subspace back to ambient vectors.
func lift(basis []kvec, coords []kvec) []kvec {
	n := len(basis[0])
	out := make([]kvec, len(coords))
	for t, cv := range coords {
		v := make(kvec, n)
		for i := 0; i < n; i++ {
			var acc symbolic.Coeff
			for j := range basis {
				if cv[j].IsZero() {
					continue
				}
				acc = acc.Add(cv[j].Mul(basis[j][i]))
			}
			v[i] = acc
		}
		out[t] = v
	}

	return out
}

func identityBasis(n int) []kvec {
	basis := make([]kvec, n)
	for i := range basis {
		v := make(kvec, n)
		v[i] = symbolic.IntCoeff(1)
		basis[i] = v
	}

	return basis
}

func matVec(m kmat, v kvec) kvec {
	out := make(kvec, len(m))
	for i := range m {
		var acc symbolic.Coeff
		for j := range v {
			if m[i][j].IsZero() || v[j].IsZero() {
				continue
			}
			acc = acc.Add(m[i][j].Mul(v[j]))
		}
		out[i] = acc
	}

	return out
}

func matMul(a, b kmat) kmat {
	n := len(a)
	out := make(kmat, n)
	for i := 0; i < n; i++ {
		out[i] = make(kvec, n)
		for j := 0; j < n; j++ {
			var acc symbolic.Coeff
			for k := 0; k < n; k++ {
				if a[i][k].IsZero() || b[k][j].IsZero() {
					continue
				}
				acc = acc.Add(a[i][k].Mul(b[k][j]))
			}
			out[i][j] = acc
		}
	}

	return out
}

func matEqual(a, b kmat) bool {
	for i := range a {
		for j := range a[i] {
			if !a[i][j].Equal(b[i][j]) {
				return false
			}
		}
	}

	return true
}

func matCopy(m kmat) kmat {
	out := make(kmat, len(m))
	for i := range m {
		out[i] = make(kvec, len(m[i]))
		copy(out[i], m[i])
	}

	return out
}

func trace(m kmat) symbolic.Coeff {
	var acc symbolic.Coeff
	for i := range m {
		acc = acc.Add(m[i][i])
	}

	return acc
}

func addScaledIdentity(m kmat, s *big.Rat) kmat {
	out := matCopy(m)
	for i := range out {
		out[i][i] = out[i][i].Add(symbolic.RatCoeff(s))
	}

	return out
}

func subScaledIdentity(m kmat, s *big.Rat) kmat {
	return addScaledIdentity(m, new(big.Rat).Neg(s))
}

func evalPoly(poly []*big.Int, y int64) *big.Int {
	acc := new(big.Int)
	yBig := big.NewInt(y)
	for _, c := range poly {
		acc.Mul(acc, yBig)
		acc.Add(acc, c)
	}

	return acc
}

// deflate divides the monic integer polynomial by (y - root) exactly.
func deflate(poly []*big.Int, root int64) []*big.Int {
	out := make([]*big.Int, len(poly)-1)
	acc := new(big.Int)
	rootBig := big.NewInt(root)
	for i := 0; i < len(poly)-1; i++ {
		acc.Mul(acc, rootBig)
		acc.Add(acc, poly[i])
		out[i] = new(big.Int).Set(acc)
	}

	return out
}
