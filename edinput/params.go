// SPDX-License-Identifier: MIT
package edinput

import "encoding/json"

// ControlParams is the &CONTROL section: diagonalization strategy, crystal
// field and the per-ion Slater-Condon/spin-orbit parameters.
type ControlParams struct {
	HFScale   float64   `json:"HFscale"`
	Diag      int       `json:"DIAG"`
	Overwrite bool      `json:"OVERWRITE"`
	EffDel    bool      `json:"EFFDEL"`
	CF        []float64 `json:"CF"`
	ExNEV     int       `json:"EXNEV"`
	GsNEV     int       `json:"GSNEV"`
	SO        []float64 `json:"SO"`
	SC2       []float64 `json:"SC2"`
	SC2EX     []float64 `json:"SC2EX"`
	FG        []float64 `json:"FG"`
}

// CellParams is the &CELL section: lattice/site description and the d-hole
// count of the ion.
type CellParams struct {
	Coordination string `json:"Coordination"`
	Sites        int    `json:"Sites"`
	HybMat       string `json:"HYBMAT"`
	Holes        int    `json:"Holes"`
}

// PhotonParams is the &PHOTON section: which spectra to compute and the
// solver/grid knobs of the spectral calculation.
type PhotonParams struct {
	XAS      bool      `json:"XAS"`
	RIXS     bool      `json:"RIXS"`
	PVIn     []int     `json:"pvin"`
	PVOut    []int     `json:"pvout"`
	Solver   int       `json:"solver"`
	EpsAb    float64   `json:"epsab"`
	EpsLoss  float64   `json:"epsloss"`
	NIterCFE int       `json:"niterCFE"`
	CGTol    float64   `json:"CGTOL"`
	Precond  int       `json:"precond"`
	NEDOS    int       `json:"NEDOS"`
	AB       []float64 `json:"AB"`
	ABMax    int       `json:"ABMAX"`
	Incident []float64 `json:"INCIDENT"`
	Cross    bool      `json:"CROSS"`
	Edge     string    `json:"Edge"`
}

// Params is one complete INPUT parameter set.
type Params struct {
	Control ControlParams `json:"CONTROL"`
	Cell    CellParams    `json:"CELL"`
	Photon  PhotonParams  `json:"PHOTON"`
}

// DefaultParams returns the full default parameter set the consumer binary
// expects when nothing is overridden.
func DefaultParams() Params {
	return Params{
		Control: ControlParams{
			HFScale:   0.8,
			Diag:      4,
			Overwrite: false,
			EffDel:    true,
			CF:        []float64{0, 0, 1, 1, 1},
			ExNEV:     10,
			GsNEV:     10,
			SO:        []float64{0, 0, 0},
			SC2:       []float64{0, 0, 0, 0, 0},
			SC2EX:     []float64{0, 0, 0, 0, 0},
			FG:        []float64{0, 0, 0, 0},
		},
		Cell: CellParams{
			Coordination: "",
			Sites:        1,
			HybMat:       "",
			Holes:        0,
		},
		Photon: PhotonParams{
			XAS:      true,
			RIXS:     false,
			PVIn:     []int{1, 1, 1},
			PVOut:    []int{1, 1, 1},
			Solver:   4,
			EpsAb:    0.5,
			EpsLoss:  0.3,
			NIterCFE: 120,
			CGTol:    1e-8,
			Precond:  0,
			NEDOS:    2000,
			AB:       []float64{-20, 20},
			ABMax:    30,
			Incident: []float64{8, 21, -1},
			Cross:    false,
			Edge:     "L",
		},
	}
}

// ApplyJSON overlays a partial JSON document ({"CONTROL": {...}, ...}) on
// p. Absent keys keep their current values; this is the override channel
// for callers that receive parameter subsets on the wire.
func ApplyJSON(p *Params, raw []byte) error {
	if len(raw) == 0 {
		return nil
	}

	return json.Unmarshal(raw, p)
}
