// Package edout parses the text files the exact-diagonalization binary
// leaves in a run directory: the eigenstate summary (eig.txt) and the main
// log (ed.out).
//
// Both formats are line-oriented and loosely structured, so the readers
// anchor on marker lines ("Num Holes", "Ground State composition") and
// tolerate everything around them.
package edout
