package edinput_test

import (
	"strings"
	"testing"

	"github.com/katalvlaran/multiplet/edinput"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestRender_Defaults pins the default INPUT text line by line for the
// parts the binary's parser is picky about.
func TestRender_Defaults(t *testing.T) {
	text := edinput.DefaultParams().Render()

	lines := strings.Split(text, "\n")
	assert.Equal(t, "&CONTROL", lines[0], "CONTROL section opens the file")
	assert.Equal(t, "\tHFSCALE = 0.8", lines[1], "first CONTROL key")
	assert.Contains(t, lines, "\tOVERWRITE = False", "booleans render as False")
	assert.Contains(t, lines, "\tEFFDEL = True", "booleans render as True")
	assert.Contains(t, lines, "\tCF = 0 0 1 1 1", "lists are space-joined")
	assert.Contains(t, lines, `	COORDINATION = ""`, "empty strings stay quoted")
	assert.Contains(t, lines, "\tCGTOL = 1e-08", "scientific notation preserved")
	assert.Contains(t, lines, "\tAB = -20 20", "negative list entries")
	assert.Contains(t, lines, "\tEDGE = L", "EDGE is the one unquoted string")
	assert.NotContains(t, text, `EDGE = "L"`, "EDGE must never be quoted")

	assert.Equal(t, 3, strings.Count(text, "/\n"), "every section closes with /")
	assert.True(t, strings.HasSuffix(text, "/"), "file ends on the last section close")

	// sections in fixed order
	ctrl := strings.Index(text, "&CONTROL")
	cell := strings.Index(text, "&CELL")
	photon := strings.Index(text, "&PHOTON")
	assert.True(t, ctrl < cell && cell < photon, "section order CONTROL, CELL, PHOTON")
}

// TestRender_Deterministic: identical params yield identical text.
func TestRender_Deterministic(t *testing.T) {
	a := edinput.DefaultParams().Render()
	b := edinput.DefaultParams().Render()
	assert.Equal(t, a, b, "rendering is deterministic")
}

// TestLookupAtomic_Ni2 pins one tabulated ion.
func TestLookupAtomic_Ni2(t *testing.T) {
	holes, params, err := edinput.LookupAtomic("Ni", 2)
	require.NoError(t, err, "Ni(2+) is tabulated")
	assert.Equal(t, 2, holes, "Ni(2+) is d⁸, two holes")
	assert.Equal(t, []float64{11.507, 0.102, 0}, params.SO, "spin-orbit set")
	assert.Equal(t, []float64{4.5, 5.783, 7.720, 3.290}, params.FG, "core-valence set")
}

// TestLookupAtomic_Errors: negative hole counts and missing entries fail
// with their sentinels.
func TestLookupAtomic_Errors(t *testing.T) {
	_, _, err := edinput.LookupAtomic("Zn", 1)
	assert.ErrorIs(t, err, edinput.ErrNegativeHoles, "Zn(1+) would be d¹¹")

	_, _, err = edinput.LookupAtomic("Xx", 2)
	assert.ErrorIs(t, err, edinput.ErrNoAtomicData, "unknown element")

	_, _, err = edinput.LookupAtomic("Ti", 4)
	assert.ErrorIs(t, err, edinput.ErrNoAtomicData, "Ti(4+) is not tabulated")
}

// TestGenerate_Ni2 checks the full pipeline: tables + hole count + tenDQ
// override land in the rendered text.
func TestGenerate_Ni2(t *testing.T) {
	text, err := edinput.Generate("Ni", 2, edinput.WithTenDQ(1.1))
	require.NoError(t, err, "Ni(2+) generates")

	assert.Contains(t, text, "\tSO = 11.507 0.102 0", "tabulated SO in CONTROL")
	assert.Contains(t, text, "\tSC2 = 4.5 0 12.233 0 7.597", "tabulated SC2 in CONTROL")
	assert.Contains(t, text, "\tHOLES = 2", "hole count in CELL")
	assert.Contains(t, text, "\tCF = 0 0 1.1 1.1 1.1", "tenDQ expands into CF")
}

// TestGenerate_ErrorPassthrough: table errors surface unchanged.
func TestGenerate_ErrorPassthrough(t *testing.T) {
	_, err := edinput.Generate("Zn", 1)
	assert.ErrorIs(t, err, edinput.ErrNegativeHoles, "table error propagates")
}

// TestApplyJSON overlays a partial document without disturbing untouched
// sections.
func TestApplyJSON(t *testing.T) {
	p := edinput.DefaultParams()
	raw := []byte(`{"PHOTON": {"RIXS": true, "NEDOS": 500}, "CELL": {"Holes": 3}}`)
	require.NoError(t, edinput.ApplyJSON(&p, raw), "valid overlay applies")

	assert.True(t, p.Photon.RIXS, "overlay reaches PHOTON.RIXS")
	assert.Equal(t, 500, p.Photon.NEDOS, "overlay reaches PHOTON.NEDOS")
	assert.Equal(t, 3, p.Cell.Holes, "overlay reaches CELL.Holes")
	assert.Equal(t, 0.8, p.Control.HFScale, "untouched sections keep defaults")
	assert.Equal(t, "L", p.Photon.Edge, "untouched keys keep defaults")

	assert.Error(t, edinput.ApplyJSON(&p, []byte("{nope")), "malformed JSON is an error")
	assert.NoError(t, edinput.ApplyJSON(&p, nil), "empty overlay is a no-op")
}
