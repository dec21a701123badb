// Package symbolic implements the exact scalar algebra behind the multiplet
// engine: arbitrary-precision rationals, square roots of rationals, and
// linear combinations of the Slater-Condon parameters f0, f2, f4, f6.
//
// 🚀 Why a dedicated scalar type?
//
//	Angular-momentum coupling coefficients are rational multiples of
//	square roots of integers, and multiplet energies emerge from exact
//	cancellations between many such terms. Floating point destroys those
//	cancellations; this package never touches a float in its arithmetic.
//
// ✨ The three layers:
//   - Radical — a single value coef·√root with coef ∈ ℚ and root a
//     squarefree positive integer (root=1 ⇒ plain rational).
//   - Coeff   — a canonical sum of Radicals over pairwise distinct roots.
//     Coeffs form a field: Add, Mul, Neg and exact Inv are closed.
//   - Expr    — a linear combination Σ cᵢ·fᵢ over the fixed symbol set
//     {f0, f2, f4, f6}, with Coeff coefficients.
//
// All values are immutable: every operation returns a fresh value and the
// canonical form is maintained by construction, so simplification is
// idempotent by design.
//
// ⚙️ Usage:
//
//	c := symbolic.Sqrt(big.NewRat(6, 25))       // 1/5·√6
//	e := symbolic.Zero().AddTerm(symbolic.F2, symbolic.NewCoeff(c))
//	fmt.Println(e)                              // 1/5*sqrt(6)*f2
package symbolic
