// Package edinput generates INPUT scripts for the exact-diagonalization
// multiplet binary.
//
// 🚀 What it does:
//
//	DefaultParams() → (atomic tables) → Option overrides → Render()
//
// The INPUT format is three sections (&CONTROL, &CELL, &PHOTON) of
// tab-indented KEY = value lines in a fixed order, each closed by a "/"
// and a blank line. The consumer binary's parser is picky: booleans are
// True/False, lists are space-joined, strings are double-quoted except
// the EDGE value which must stay bare.
//
// ✨ Atomic data:
//
//	Spin-orbit and Slater-Condon parameters for Ti…Zn by oxidation state
//	(Haverkort's thesis values) ship embedded as YAML; Generate resolves
//	element+valence to hole count and CONTROL parameters in one call.
//
// ⚙️ Usage:
//
//	text, err := edinput.Generate("Ni", 2, edinput.WithTenDQ(1.1))
package edinput
