package hamiltonian_test

import (
	"math/big"
	"testing"

	"github.com/katalvlaran/multiplet/hamiltonian"
	"github.com/katalvlaran/multiplet/shell"
	"github.com/katalvlaran/multiplet/symbolic"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// lin builds the expression Σ cᵢ·fᵢ from integer coefficients in symbol
// order f0, f2, f4, f6 (trailing zeros may be omitted).
func lin(coeffs ...int64) symbolic.Expr {
	e := symbolic.Zero()
	for i, c := range coeffs {
		if c != 0 {
			e = e.AddTerm(symbolic.Symbols()[i], symbolic.IntCoeff(c))
		}
	}

	return e
}

// half returns n/2 as an exact rational, for M_S targets.
func half(n int64) *big.Rat { return big.NewRat(n, 2) }

// TestCompute_P2Matrix pins the full p², (M_L=0, M_S=0) sector against the
// hand-assembled matrix
//
//	H = f0·I + f2·[[ 1, -3,  6],
//	               [-3,  4, -3],
//	               [ 6, -3,  1]]
//
// over the determinant basis {(-1↑,1↓), (0↑,0↓), (1↑,-1↓)}.
func TestCompute_P2Matrix(t *testing.T) {
	res, err := hamiltonian.Compute("p", 2, 0, half(0))
	require.NoError(t, err, "valid p² sector must compute")
	require.Len(t, res.Configs, 3, "p², (0,0) holds exactly three determinants")

	assert.Equal(t, "{(-1, +1/2), (1, -1/2)}", res.Configs[0].String(), "first determinant in enumeration order")
	assert.Equal(t, "{(0, +1/2), (0, -1/2)}", res.Configs[1].String(), "second determinant in enumeration order")
	assert.Equal(t, "{(1, +1/2), (-1, -1/2)}", res.Configs[2].String(), "third determinant in enumeration order")

	want := [3][3]symbolic.Expr{
		{lin(1, 1), lin(0, -3), lin(0, 6)},
		{lin(0, -3), lin(1, 4), lin(0, -3)},
		{lin(0, 6), lin(0, -3), lin(1, 1)},
	}
	for i := range want {
		for j := range want[i] {
			assert.True(t, res.H[i][j].Equal(want[i][j]),
				"H[%d][%d]: got %s, want %s", i, j, res.H[i][j], want[i][j])
		}
	}
}

// TestCompute_P2Spectrum: diagonalizing the p², (0,0) sector recovers the
// three LS terms ¹S = f0+10·f2, ¹D = f0+f2 and ³P = f0-5·f2, each once.
func TestCompute_P2Spectrum(t *testing.T) {
	res, err := hamiltonian.Compute("p", 2, 0, half(0))
	require.NoError(t, err, "valid p² sector must compute")
	require.Empty(t, res.EigenSkipped, "three commuting configurations diagonalize exactly")

	assertSpectrum(t, res, map[string]int{
		lin(1, 10).String(): 1,
		lin(1, 1).String():  1,
		lin(1, -5).String(): 1,
	})
}

// TestCompute_P2Triplet: the stretched (M_L=1, M_S=1) sector holds the lone
// ³P component, so the 1×1 matrix is the term energy itself.
func TestCompute_P2Triplet(t *testing.T) {
	res, err := hamiltonian.Compute("p", 2, 1, half(2))
	require.NoError(t, err, "valid p² sector must compute")
	require.Len(t, res.Configs, 1, "stretched sector holds one determinant")

	assert.True(t, res.H[0][0].Equal(lin(1, -5)), "³P energy is f0 - 5·f2, got %s", res.H[0][0])
	require.Len(t, res.Eigen, 1, "1×1 matrix has one eigenvalue")
	assert.Equal(t, 1, res.Eigen[0].Multiplicity, "nondegenerate in this sector")
}

// TestCompute_S2Closed: the filled s shell has only the monopole repulsion.
func TestCompute_S2Closed(t *testing.T) {
	res, err := hamiltonian.Compute("s", 2, 0, half(0))
	require.NoError(t, err, "s² is a valid sector")
	require.Len(t, res.Configs, 1, "s² admits one determinant")
	assert.True(t, res.H[0][0].Equal(lin(1)), "s² energy is exactly f0, got %s", res.H[0][0])
}

// TestCompute_D1NoRepulsion: a single electron has no pair interaction.
func TestCompute_D1NoRepulsion(t *testing.T) {
	res, err := hamiltonian.Compute("d", 1, 2, half(1))
	require.NoError(t, err, "d¹ is a valid sector")
	require.Len(t, res.Configs, 1, "d¹ at (2, ½) is a single determinant")
	assert.True(t, res.H[0][0].IsZero(), "one electron: no Coulomb energy")
	require.Len(t, res.Eigen, 1, "zero matrix still has its spectrum")
	assert.True(t, res.Eigen[0].Value.IsZero(), "single eigenvalue is 0")
}

// TestCompute_Hermitian: the assembled matrix is symmetric entry-by-entry
// (all couplings are real).
func TestCompute_Hermitian(t *testing.T) {
	res, err := hamiltonian.Compute("p", 3, 0, half(1))
	require.NoError(t, err, "valid p³ sector must compute")
	require.NotEmpty(t, res.Configs, "p³, (0, ½) is nonempty")

	for i := range res.H {
		for j := range res.H[i] {
			assert.True(t, res.H[i][j].Equal(res.H[j][i]),
				"H[%d][%d]=%s differs from H[%d][%d]=%s", i, j, res.H[i][j], j, i, res.H[j][i])
		}
	}
}

// TestCompute_EmptySector: an unreachable (M_L, M_S) target is a valid,
// empty result.
func TestCompute_EmptySector(t *testing.T) {
	res, err := hamiltonian.Compute("p", 2, 5, half(0))
	require.NoError(t, err, "empty sector is not an error")
	assert.Empty(t, res.Configs, "no determinant reaches M_L=5 in p²")
	assert.Empty(t, res.H, "0×0 matrix")
	assert.Empty(t, res.Eigen, "nothing to diagonalize")
	assert.Empty(t, res.EigenSkipped, "an empty sector is not a skip")
}

// TestCompute_NonHalfIntegerSpin: a spin target off the half-integer grid
// can never match and yields the empty sector.
func TestCompute_NonHalfIntegerSpin(t *testing.T) {
	res, err := hamiltonian.Compute("p", 2, 0, big.NewRat(1, 3))
	require.NoError(t, err, "off-grid M_S is a valid request")
	assert.Empty(t, res.Configs, "M_S=1/3 matches no determinant")
}

// TestCompute_InputErrors: shell label and electron count are validated up
// front with the sentinel errors of the shell package.
func TestCompute_InputErrors(t *testing.T) {
	_, err := hamiltonian.Compute("g", 2, 0, half(0))
	assert.ErrorIs(t, err, shell.ErrUnknownShell, "g shells are unsupported")

	_, err = hamiltonian.Compute("p", 7, 0, half(0))
	assert.ErrorIs(t, err, shell.ErrElectronCount, "p holds at most 6 electrons")

	_, err = hamiltonian.Compute("p", 0, 0, half(0))
	assert.ErrorIs(t, err, shell.ErrElectronCount, "at least one electron required")
}

// TestCompute_CeilingSkip: bases above the ceiling keep the matrix and
// report the skip instead of diagonalizing.
func TestCompute_CeilingSkip(t *testing.T) {
	res, err := hamiltonian.Compute("p", 2, 0, half(0), hamiltonian.WithEigenCeiling(1))
	require.NoError(t, err, "valid p² sector must compute")
	assert.Len(t, res.H, 3, "matrix is assembled regardless of the ceiling")
	assert.Empty(t, res.Eigen, "no spectrum above the ceiling")
	assert.Contains(t, res.EigenSkipped, "matrix too large", "skip reason names the cause")
}

// TestCompute_WorkerDeterminism: the matrix is identical for any worker
// count.
func TestCompute_WorkerDeterminism(t *testing.T) {
	one, err := hamiltonian.Compute("d", 2, 0, half(0), hamiltonian.WithWorkers(1))
	require.NoError(t, err, "single-worker run must compute")
	four, err := hamiltonian.Compute("d", 2, 0, half(0), hamiltonian.WithWorkers(4))
	require.NoError(t, err, "four-worker run must compute")

	require.Equal(t, len(one.H), len(four.H), "same basis either way")
	for i := range one.H {
		for j := range one.H[i] {
			assert.True(t, one.H[i][j].Equal(four.H[i][j]), "H[%d][%d] differs across worker counts", i, j)
		}
	}
}

// TestCompute_OptionPanics: invalid option literals are programmer errors.
func TestCompute_OptionPanics(t *testing.T) {
	assert.Panics(t, func() { hamiltonian.WithEigenCeiling(-1) }, "negative ceiling panics")
	assert.Panics(t, func() { hamiltonian.WithWorkers(0) }, "zero workers panics")
}

// TestReport_P2 checks the rendered report end to end on the smallest
// interesting sector.
func TestReport_P2(t *testing.T) {
	res, err := hamiltonian.Compute("p", 2, 0, half(0))
	require.NoError(t, err, "valid p² sector must compute")

	rep := res.Report()
	assert.Contains(t, rep, "Found 3 valid antisymmetric configurations.", "header counts determinants")
	assert.Contains(t, rep, "Config 1: {(-1, +1/2), (1, -1/2)}", "configurations listed in order")
	assert.Contains(t, rep, "Hamiltonian matrix:", "matrix section present")
	assert.Contains(t, rep, "Eigenvalues:", "spectrum section present")
	assert.Contains(t, rep, "f0 + 10*f2 (multiplicity 1)", "¹S rendered with multiplicity")
}

// TestReport_EmptySector: the report of an empty sector is just the count.
func TestReport_EmptySector(t *testing.T) {
	res, err := hamiltonian.Compute("p", 2, 5, half(0))
	require.NoError(t, err, "empty sector is not an error")
	assert.Equal(t, "Found 0 valid antisymmetric configurations.", res.Report(), "count only")
}

// assertSpectrum checks the eigenvalue multiset rendered by String against
// the expected multiplicities.
func assertSpectrum(t *testing.T, res *hamiltonian.Result, want map[string]int) {
	t.Helper()
	got := make(map[string]int, len(res.Eigen))
	for _, ev := range res.Eigen {
		got[ev.Value.String()] += ev.Multiplicity
	}
	assert.Equal(t, want, got, "spectrum with multiplicities")
}
