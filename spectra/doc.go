// Package spectra reads the XAS and RIXS output files of the
// exact-diagonalization binary and renders them as PNG plots.
//
// 🚀 File layout (inside one run directory):
//
//	XAS_<edge>edge_<p>.txt        two columns, first row skipped
//	RIXS_<edge>edge_<in>_<out>.txt three columns, first row skipped
//
// one file per polarization (X, Y, Z); intensities are summed over the
// requested polarizations. RIXS files are flat lists over a rectangular
// (incident, loss) grid; the grid shape is recovered from the run length
// of the leading incident-energy column.
//
// ✨ Plots (gonum/plot):
//
//	XAS   — intensity vs incident energy, line plot, unitless y axis.
//	RIXS  — heat map, either incident vs energy loss (zero-loss guide) or
//	        emission vs incident (elastic-diagonal guide).
//
// ⚙️ Usage:
//
//	xas, err := spectra.ReadXAS(runDir, "XYZ")
//	png, err := spectra.PlotXAS(xas)
package spectra
