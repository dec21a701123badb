// SPDX-License-Identifier: MIT
package edinput

import (
	"fmt"
	"strconv"
	"strings"
)

// Render serializes the parameter set into INPUT text. Key order within
// each section is fixed (the binary's parser is order-sensitive for some
// keys), values follow the format rules documented on the package.
func (p Params) Render() string {
	var sb strings.Builder

	section(&sb, "CONTROL", []kv{
		{"HFSCALE", num(p.Control.HFScale)},
		{"DIAG", strconv.Itoa(p.Control.Diag)},
		{"OVERWRITE", boolean(p.Control.Overwrite)},
		{"EFFDEL", boolean(p.Control.EffDel)},
		{"CF", nums(p.Control.CF)},
		{"EXNEV", strconv.Itoa(p.Control.ExNEV)},
		{"GSNEV", strconv.Itoa(p.Control.GsNEV)},
		{"SO", nums(p.Control.SO)},
		{"SC2", nums(p.Control.SC2)},
		{"SC2EX", nums(p.Control.SC2EX)},
		{"FG", nums(p.Control.FG)},
	})
	section(&sb, "CELL", []kv{
		{"COORDINATION", quoted(p.Cell.Coordination)},
		{"SITES", strconv.Itoa(p.Cell.Sites)},
		{"HYBMAT", quoted(p.Cell.HybMat)},
		{"HOLES", strconv.Itoa(p.Cell.Holes)},
	})
	section(&sb, "PHOTON", []kv{
		{"XAS", boolean(p.Photon.XAS)},
		{"RIXS", boolean(p.Photon.RIXS)},
		{"PVIN", ints(p.Photon.PVIn)},
		{"PVOUT", ints(p.Photon.PVOut)},
		{"SOLVER", strconv.Itoa(p.Photon.Solver)},
		{"EPSAB", num(p.Photon.EpsAb)},
		{"EPSLOSS", num(p.Photon.EpsLoss)},
		{"NITERCFE", strconv.Itoa(p.Photon.NIterCFE)},
		{"CGTOL", num(p.Photon.CGTol)},
		{"PRECOND", strconv.Itoa(p.Photon.Precond)},
		{"NEDOS", strconv.Itoa(p.Photon.NEDOS)},
		{"AB", nums(p.Photon.AB)},
		{"ABMAX", strconv.Itoa(p.Photon.ABMax)},
		{"INCIDENT", nums(p.Photon.Incident)},
		{"CROSS", boolean(p.Photon.Cross)},
		// parser quirk: EDGE must be unquoted
		{"EDGE", p.Photon.Edge},
	})

	return strings.TrimSuffix(sb.String(), "\n")
}

type kv struct {
	key, val string
}

func section(sb *strings.Builder, name string, lines []kv) {
	fmt.Fprintf(sb, "&%s\n", name)
	for _, l := range lines {
		fmt.Fprintf(sb, "\t%s = %s\n", l.key, l.val)
	}
	sb.WriteString("/\n\n")
}

func num(v float64) string { return strconv.FormatFloat(v, 'g', -1, 64) }

func nums(vs []float64) string {
	parts := make([]string, len(vs))
	for i, v := range vs {
		parts[i] = num(v)
	}

	return strings.Join(parts, " ")
}

func ints(vs []int) string {
	parts := make([]string, len(vs))
	for i, v := range vs {
		parts[i] = strconv.Itoa(v)
	}

	return strings.Join(parts, " ")
}

func boolean(b bool) string {
	if b {
		return "True"
	}

	return "False"
}

func quoted(s string) string { return `"` + s + `"` }
