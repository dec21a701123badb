// SPDX-License-Identifier: MIT
package hamiltonian

import (
	"fmt"
	"strings"
)

// MatrixString renders H as aligned bracketed rows, one determinant per
// row/column in enumeration order.
func (r *Result) MatrixString() string {
	n := len(r.H)
	if n == 0 {
		return "[]"
	}

	cells := make([][]string, n)
	widths := make([]int, n)
	for i, row := range r.H {
		cells[i] = make([]string, n)
		for j, e := range row {
			s := e.String()
			cells[i][j] = s
			if len(s) > widths[j] {
				widths[j] = len(s)
			}
		}
	}

	var sb strings.Builder
	for i := range cells {
		sb.WriteString("[")
		for j, s := range cells[i] {
			if j > 0 {
				sb.WriteString("  ")
			}
			sb.WriteString(strings.Repeat(" ", widths[j]-len(s)))
			sb.WriteString(s)
		}
		sb.WriteString("]")
		if i < n-1 {
			sb.WriteString("\n")
		}
	}

	return sb.String()
}

// Report renders the full human-readable outcome: configuration listing,
// matrix, and spectrum (or the reason it was skipped).
func (r *Result) Report() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "Found %d valid antisymmetric configurations.", len(r.Configs))
	if len(r.Configs) == 0 {
		return sb.String()
	}
	for i, cfg := range r.Configs {
		fmt.Fprintf(&sb, "\nConfig %d: %s", i+1, cfg)
	}

	sb.WriteString("\n\nHamiltonian matrix:\n")
	sb.WriteString(r.MatrixString())

	switch {
	case r.EigenSkipped != "":
		fmt.Fprintf(&sb, "\n\n%s", r.EigenSkipped)
	case len(r.Eigen) > 0:
		sb.WriteString("\n\nEigenvalues:")
		for _, ev := range r.Eigen {
			fmt.Fprintf(&sb, "\n%s (multiplicity %d)", ev.Value, ev.Multiplicity)
		}
	}

	return sb.String()
}
