// SPDX-License-Identifier: MIT
package spectra

import (
	"bytes"
	"fmt"
	"image/color"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/palette"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
)

type plotOptions struct {
	xlim, ylim *[2]float64
	emission   bool
}

// PlotOption adjusts one plot call.
type PlotOption func(*plotOptions)

// WithXLim pins the x-axis range.
func WithXLim(min, max float64) PlotOption {
	return func(o *plotOptions) { o.xlim = &[2]float64{min, max} }
}

// WithYLim pins the y-axis range.
func WithYLim(min, max float64) PlotOption {
	return func(o *plotOptions) { o.ylim = &[2]float64{min, max} }
}

// WithEmissionAxes switches the RIXS map from incident-vs-loss to
// emission-vs-incident axes.
func WithEmissionAxes() PlotOption {
	return func(o *plotOptions) { o.emission = true }
}

var guideStyle = struct {
	color  color.Color
	dashes []vg.Length
	width  vg.Length
}{
	color:  color.RGBA{R: 0xff, G: 0xff, A: 0xff},
	dashes: []vg.Length{vg.Points(6), vg.Points(4)},
	width:  vg.Points(2.5),
}

// PlotXAS renders the absorption spectrum as a PNG line plot: intensity
// against incident energy, with an unlabeled intensity axis.
func PlotXAS(x *XAS, opts ...PlotOption) ([]byte, error) {
	if len(x.Energy) == 0 {
		return nil, fmt.Errorf("%w: empty spectrum", ErrBadGrid)
	}
	o := plotOptions{}
	for _, opt := range opts {
		opt(&o)
	}

	p := plot.New()
	p.Title.Text = "XAS"
	p.X.Label.Text = "Incident energy (eV)"
	p.Y.Label.Text = "Intensity (a.u.)"
	p.Y.Tick.Marker = plot.ConstantTicks{}

	pts := make(plotter.XYs, len(x.Energy))
	for i := range x.Energy {
		pts[i].X = x.Energy[i]
		pts[i].Y = x.Intensity[i]
	}
	line, err := plotter.NewLine(pts)
	if err != nil {
		return nil, fmt.Errorf("spectra: build line: %w", err)
	}
	line.LineStyle.Width = vg.Points(2.5)
	p.Add(line)

	p.X.Min, p.X.Max = x.Energy[0], x.Energy[len(x.Energy)-1]
	applyLimits(p, o)

	return renderPNG(p, 8*vg.Inch, 6*vg.Inch)
}

// PlotRIXS renders the scattering map as a PNG heat map. The default axes
// are incident energy (x) against energy loss (y) with a dashed zero-loss
// guide; WithEmissionAxes switches to emission against incident energy
// with the elastic diagonal drawn instead.
func PlotRIXS(r *RIXS, opts ...PlotOption) ([]byte, error) {
	if r == nil || len(r.Intensity) == 0 || len(r.Intensity[0]) == 0 {
		return nil, fmt.Errorf("%w: empty spectrum", ErrBadGrid)
	}
	o := plotOptions{}
	for _, opt := range opts {
		opt(&o)
	}

	p := plot.New()
	p.Title.Text = "RIXS"

	var grid rixsGrid
	if o.emission {
		grid = emissionGrid(r)
		p.X.Label.Text = "Emission Energy (eV)"
		p.Y.Label.Text = "Incident Energy (eV)"
	} else {
		grid = lossGrid(r)
		p.X.Label.Text = "Incident Energy (eV)"
		p.Y.Label.Text = "Energy Loss (eV)"
	}
	p.Add(plotter.NewHeatMap(grid, palette.Heat(12, 1)))

	p.X.Min, p.X.Max = grid.xs[0], grid.xs[len(grid.xs)-1]
	if o.emission {
		p.Y.Min, p.Y.Max = grid.ys[0], grid.ys[len(grid.ys)-1]
	} else {
		// the interesting loss window
		p.Y.Min, p.Y.Max = -2, 10
	}

	guide, err := guideLine(p, o.emission)
	if err != nil {
		return nil, err
	}
	p.Add(guide)
	applyLimits(p, o)

	return renderPNG(p, 8*vg.Inch, 8*vg.Inch)
}

// rixsGrid adapts a rectangular spectrum to plotter.GridXYZ; z is indexed
// [x][y].
type rixsGrid struct {
	xs, ys []float64
	z      [][]float64
}

func (g rixsGrid) Dims() (int, int)   { return len(g.xs), len(g.ys) }
func (g rixsGrid) X(c int) float64    { return g.xs[c] }
func (g rixsGrid) Y(r int) float64    { return g.ys[r] }
func (g rixsGrid) Z(c, r int) float64 { return g.z[c][r] }

// lossGrid maps rows to the x axis (incident) and columns to the y axis
// (loss) directly.
func lossGrid(r *RIXS) rixsGrid {
	xs := make([]float64, len(r.Incident))
	for i, row := range r.Incident {
		xs[i] = row[0]
	}
	ys := make([]float64, len(r.Loss[0]))
	copy(ys, r.Loss[0])

	return rixsGrid{xs: xs, ys: ys, z: r.Intensity}
}

// emissionGrid rebins every row onto a shared uniform emission axis
// (emission = incident - loss), nearest-bin assignment.
func emissionGrid(r *RIXS) rixsGrid {
	cols := len(r.Loss[0])
	var emin, emax float64
	for i := range r.Incident {
		diff := make([]float64, cols)
		floats.SubTo(diff, r.Incident[i], r.Loss[i])
		lo, hi := floats.Min(diff), floats.Max(diff)
		if i == 0 || lo < emin {
			emin = lo
		}
		if i == 0 || hi > emax {
			emax = hi
		}
	}

	xs := make([]float64, cols)
	floats.Span(xs, emin, emax)
	ys := make([]float64, len(r.Incident))
	z := make([][]float64, cols)
	for c := range z {
		z[c] = make([]float64, len(ys))
	}
	step := (emax - emin) / float64(cols-1)
	for i := range r.Incident {
		ys[i] = r.Incident[i][0]
		for j := 0; j < cols; j++ {
			e := r.Incident[i][j] - r.Loss[i][j]
			bin := 0
			if step > 0 {
				bin = int((e-emin)/step + 0.5)
			}
			if bin < 0 {
				bin = 0
			}
			if bin >= cols {
				bin = cols - 1
			}
			z[bin][i] += r.Intensity[i][j]
		}
	}

	return rixsGrid{xs: xs, ys: ys, z: z}
}

// guideLine builds the dashed yellow reference: the zero-loss horizontal
// in loss mode, the elastic diagonal in emission mode.
func guideLine(p *plot.Plot, emission bool) (*plotter.Line, error) {
	var pts plotter.XYs
	if emission {
		lo := p.X.Min
		if p.Y.Min < lo {
			lo = p.Y.Min
		}
		hi := p.X.Max
		if p.Y.Max > hi {
			hi = p.Y.Max
		}
		pts = plotter.XYs{{X: lo, Y: lo}, {X: hi, Y: hi}}
	} else {
		pts = plotter.XYs{{X: p.X.Min, Y: 0}, {X: p.X.Max, Y: 0}}
	}

	line, err := plotter.NewLine(pts)
	if err != nil {
		return nil, fmt.Errorf("spectra: build guide: %w", err)
	}
	line.LineStyle.Color = guideStyle.color
	line.LineStyle.Dashes = guideStyle.dashes
	line.LineStyle.Width = guideStyle.width

	return line, nil
}

func applyLimits(p *plot.Plot, o plotOptions) {
	if o.xlim != nil {
		p.X.Min, p.X.Max = o.xlim[0], o.xlim[1]
	}
	if o.ylim != nil {
		p.Y.Min, p.Y.Max = o.ylim[0], o.ylim[1]
	}
}

func renderPNG(p *plot.Plot, w, h vg.Length) ([]byte, error) {
	wt, err := p.WriterTo(w, h, "png")
	if err != nil {
		return nil, fmt.Errorf("spectra: render: %w", err)
	}
	var buf bytes.Buffer
	if _, err := wt.WriteTo(&buf); err != nil {
		return nil, fmt.Errorf("spectra: render: %w", err)
	}

	return buf.Bytes(), nil
}
