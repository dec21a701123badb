// Package coulomb evaluates two-body Coulomb matrix elements between
// Slater determinants, exactly.
//
// 🚀 Two halves:
//
//	• Terms    — which direct/exchange couplings connect two determinants,
//	  with the antisymmetrization sign (multiset difference + permutation
//	  parity). Determinants differing in more than two states never couple.
//	• Integral — the exact value of one two-body integral as a symbolic
//	  linear combination of the Slater-Condon parameters f0..f6, built from
//	  Wigner 3j symbols in the Condon-Shortley phase convention.
//
// ✨ Exactness:
//
//	The multipole expansion of 1/r₁₂ contributes, per even order k, a
//	product of two Gaunt coefficients. Written through 3j symbols the 4π
//	of the Gaunt normalization cancels against its √(4π) prefactors, so
//	each factor reduces to
//
//	   (2l+1) · 3j(l,k,l;0,0,0) · 3j(l,k,l;-m,m-m',m'),
//
//	a rational multiple of a square root — which the symbolic package
//	carries without approximation.
package coulomb
