// SPDX-License-Identifier: MIT
package spectra

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"gonum.org/v1/gonum/floats"
)

// DefaultEdge is the absorption edge the binary computes unless told
// otherwise.
const DefaultEdge = "L"

type options struct {
	edge     string
	cross    bool
	wipeLoss bool
}

// Option adjusts one read call.
type Option func(*options)

// WithEdge selects the absorption edge in the file names.
func WithEdge(edge string) Option {
	if edge == "" {
		panic("spectra: empty edge")
	}

	return func(o *options) { o.edge = edge }
}

// WithCross drops the parallel channels of a RIXS read: only pairs with
// different incoming and outgoing polarization are summed.
func WithCross() Option {
	return func(o *options) { o.cross = true }
}

// WithWipeLoss zeroes RIXS intensity at negative energy loss (emission
// above the incident energy), which is numerical noise of the solver.
func WithWipeLoss() Option {
	return func(o *options) { o.wipeLoss = true }
}

func gatherOptions(opts ...Option) options {
	o := options{edge: DefaultEdge}
	for _, opt := range opts {
		opt(&o)
	}

	return o
}

// XAS is one absorption spectrum: intensity summed over the requested
// polarizations on a shared incident-energy grid.
type XAS struct {
	Energy    []float64
	Intensity []float64
}

// ReadXAS reads XAS_<edge>edge_<p>.txt for every polarization in pol and
// sums the intensities.
//
// Errors:
//   - ErrBadPolarization — pol is not a subset of XYZ.
//   - ErrMissingFile     — a polarization file is absent.
//   - ErrBadGrid         — polarization files disagree on the grid.
func ReadXAS(dir, pol string, opts ...Option) (*XAS, error) {
	o := gatherOptions(opts...)
	pol, err := ParsePolarization(pol)
	if err != nil {
		return nil, err
	}

	out := &XAS{}
	for _, p := range pol {
		name := filepath.Join(dir, fmt.Sprintf("XAS_%sedge_%c.txt", o.edge, p))
		cols, err := readColumns(name, 2)
		if err != nil {
			if os.IsNotExist(err) {
				return nil, fmt.Errorf("%w: %s, with polarization: %c", ErrMissingFile, name, p)
			}

			return nil, err
		}
		if out.Energy == nil {
			out.Energy = cols[0]
			out.Intensity = cols[1]
			continue
		}
		if len(cols[1]) != len(out.Intensity) {
			return nil, fmt.Errorf("%w: %s has %d rows, expected %d",
				ErrBadGrid, name, len(cols[1]), len(out.Intensity))
		}
		floats.Add(out.Intensity, cols[1])
	}

	return out, nil
}

// RIXS is one resonant scattering map on a rectangular grid: rows share an
// incident energy, columns run over energy loss. Intensity is summed over
// the requested polarization pairs.
type RIXS struct {
	Incident  [][]float64
	Loss      [][]float64
	Intensity [][]float64
}

// ReadRIXS reads RIXS_<edge>edge_<in>_<out>.txt for every polarization
// pair and sums the intensity grids.
//
// Errors:
//   - ErrBadPolarization — a polarization set is not a subset of XYZ.
//   - ErrMissingFile     — a pair file is absent.
//   - ErrBadGrid         — a file does not reshape into a rectangle.
func ReadRIXS(dir, polIn, polOut string, opts ...Option) (*RIXS, error) {
	o := gatherOptions(opts...)
	polIn, err := ParsePolarization(polIn)
	if err != nil {
		return nil, err
	}
	polOut, err = ParsePolarization(polOut)
	if err != nil {
		return nil, err
	}

	var out *RIXS
	for _, pin := range polIn {
		for _, pout := range polOut {
			if o.cross && pin == pout {
				continue
			}
			name := filepath.Join(dir, fmt.Sprintf("RIXS_%sedge_%c_%c.txt", o.edge, pin, pout))
			cols, err := readColumns(name, 3)
			if err != nil {
				if os.IsNotExist(err) {
					return nil, fmt.Errorf("%w: %s, with polarization: %c,%c",
						ErrMissingFile, name, pin, pout)
				}

				return nil, err
			}
			grid, err := reshape(name, cols, o.wipeLoss)
			if err != nil {
				return nil, err
			}
			if out == nil {
				out = grid
				continue
			}
			if len(grid.Intensity) != len(out.Intensity) ||
				(len(out.Intensity) > 0 && len(grid.Intensity[0]) != len(out.Intensity[0])) {
				return nil, fmt.Errorf("%w: %s disagrees with earlier polarization pairs", ErrBadGrid, name)
			}
			for i := range out.Intensity {
				floats.Add(out.Intensity[i], grid.Intensity[i])
			}
		}
	}

	return out, nil
}

// reshape folds the flat (incident, loss, intensity) columns into rows of
// constant incident energy. The row length is the run length of the first
// incident value.
func reshape(name string, cols [][]float64, wipeLoss bool) (*RIXS, error) {
	x, y, z := cols[0], cols[1], cols[2]
	if wipeLoss {
		for i := range x {
			if x[i] < y[i] {
				z[i] = 0
			}
		}
	}

	run := len(x)
	for i := 1; i < len(x); i++ {
		if x[i] != x[0] {
			run = i
			break
		}
	}
	if run == 0 || len(x)%run != 0 {
		return nil, fmt.Errorf("%w: %s has %d rows, not divisible by run length %d",
			ErrBadGrid, name, len(x), run)
	}

	rows := len(x) / run
	grid := &RIXS{
		Incident:  make([][]float64, rows),
		Loss:      make([][]float64, rows),
		Intensity: make([][]float64, rows),
	}
	for r := 0; r < rows; r++ {
		grid.Incident[r] = x[r*run : (r+1)*run]
		grid.Loss[r] = y[r*run : (r+1)*run]
		grid.Intensity[r] = z[r*run : (r+1)*run]
	}

	return grid, nil
}

// readColumns parses a whitespace-separated table, skipping the first row
// and keeping the leading n columns of every remaining row.
func readColumns(name string, n int) ([][]float64, error) {
	f, err := os.Open(name)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	cols := make([][]float64, n)
	first := true
	sc := bufio.NewScanner(f)
	sc.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" {
			continue
		}
		if first {
			first = false
			continue
		}
		fields := strings.Fields(line)
		if len(fields) < n {
			return nil, fmt.Errorf("%w: %s row %q has %d columns, need %d",
				ErrBadGrid, name, line, len(fields), n)
		}
		for c := 0; c < n; c++ {
			v, err := strconv.ParseFloat(fields[c], 64)
			if err != nil {
				return nil, fmt.Errorf("%w: %s row %q: bad number", ErrBadGrid, name, line)
			}
			cols[c] = append(cols[c], v)
		}
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("spectra: read %s: %w", name, err)
	}

	return cols, nil
}
