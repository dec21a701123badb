// SPDX-License-Identifier: MIT
package mcpserver

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"math/big"
	"path/filepath"
	"time"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/katalvlaran/multiplet/edinput"
	"github.com/katalvlaran/multiplet/edout"
	"github.com/katalvlaran/multiplet/edrun"
	"github.com/katalvlaran/multiplet/hamiltonian"
	"github.com/katalvlaran/multiplet/spectra"
)

// Server wires the toolchain packages behind the MCP tool surface. The
// run registry is optional; without it runs are simply not recorded.
type Server struct {
	store  *edrun.Store
	logger *slog.Logger
}

// New builds a Server. Both arguments may be nil.
func New(store *edrun.Store, logger *slog.Logger) *Server {
	if logger == nil {
		logger = slog.Default()
	}

	return &Server{store: store, logger: logger}
}

// Register adds every tool to the MCP server.
func (s *Server) Register(srv *mcp.Server) {
	s.registerHamiltonianTool(srv)
	s.registerInputTool(srv)
	s.registerRunTool(srv)
	s.registerGroundStateTool(srv)
	s.registerXASTool(srv)
	s.registerRIXSTool(srv)
}

func inputSchema(properties map[string]any, required []string) map[string]any {
	s := map[string]any{
		"type":       "object",
		"properties": properties,
	}
	if len(required) > 0 {
		s["required"] = required
	}

	return s
}

// toolError wraps a failure into a tool-level error result so it reaches
// the client as content, not as a broken protocol exchange.
func toolError(err error) *mcp.CallToolResult {
	var res mcp.CallToolResult
	res.SetError(err)

	return &res
}

func textResult(v any) (*mcp.CallToolResult, error) {
	data, err := json.Marshal(v)
	if err != nil {
		return toolError(fmt.Errorf("marshal: %w", err)), nil
	}

	return &mcp.CallToolResult{
		Content: []mcp.Content{&mcp.TextContent{Text: string(data)}},
	}, nil
}

func pngResult(png []byte) *mcp.CallToolResult {
	return &mcp.CallToolResult{
		Content: []mcp.Content{&mcp.ImageContent{Data: png, MIMEType: "image/png"}},
	}
}

// --- get_hamiltonian ---

type hamiltonianReq struct {
	Orbital    string  `json:"orbital"`
	NElectrons int     `json:"n_electrons"`
	TargetML   int     `json:"target_ML"`
	TargetMS   float64 `json:"target_MS"`
}

func (s *Server) registerHamiltonianTool(srv *mcp.Server) {
	tool := &mcp.Tool{
		Name:        "get_hamiltonian",
		Description: "Compute the symbolic Coulomb Hamiltonian of an open shell in a fixed (M_L, M_S) sector, with exact eigenvalues where feasible.",
		InputSchema: inputSchema(map[string]any{
			"orbital":     map[string]any{"type": "string", "description": "Shell label: s, p, d or f"},
			"n_electrons": map[string]any{"type": "integer", "description": "Number of electrons in the shell"},
			"target_ML":   map[string]any{"type": "integer", "description": "Total orbital projection M_L"},
			"target_MS":   map[string]any{"type": "number", "description": "Total spin projection M_S (half-integer)"},
		}, []string{"orbital", "n_electrons", "target_ML", "target_MS"}),
	}

	srv.AddTool(tool, func(_ context.Context, req *mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		var r hamiltonianReq
		if err := json.Unmarshal(req.Params.Arguments, &r); err != nil {
			return toolError(fmt.Errorf("invalid arguments: %w", err)), nil
		}
		ms, err := halfRat(r.TargetMS)
		if err != nil {
			return toolError(err), nil
		}
		res, err := hamiltonian.Compute(r.Orbital, r.NElectrons, r.TargetML, ms)
		if err != nil {
			return toolError(err), nil
		}

		return &mcp.CallToolResult{
			Content: []mcp.Content{&mcp.TextContent{Text: res.Report()}},
		}, nil
	})
}

// halfRat converts a wire float to an exact half-integer rational.
func halfRat(v float64) (*big.Rat, error) {
	r := new(big.Rat).SetFloat64(v)
	if r == nil {
		return nil, fmt.Errorf("mcpserver: target_MS %v is not finite", v)
	}
	twice := new(big.Rat).Mul(r, big.NewRat(2, 1))
	if !twice.IsInt() {
		return nil, fmt.Errorf("mcpserver: target_MS %v is not a half-integer", v)
	}

	return r, nil
}

// --- generate_multiplet_input ---

type generateReq struct {
	Element     string          `json:"element"`
	Valence     int             `json:"valence"`
	InputParams json.RawMessage `json:"input_params"`
	TenDQ       *float64        `json:"tenDQ"`
}

func (s *Server) registerInputTool(srv *mcp.Server) {
	tool := &mcp.Tool{
		Name:        "generate_multiplet_input",
		Description: "Generate a valid INPUT script for the multiplet binary from element, valence and optional parameter overrides.",
		InputSchema: inputSchema(map[string]any{
			"element":      map[string]any{"type": "string", "description": "Element symbol, e.g. Ni"},
			"valence":      map[string]any{"type": "integer", "description": "Oxidation state, e.g. 2 for Ni2+"},
			"input_params": map[string]any{"type": "object", "description": "Partial override with top-level keys CONTROL, CELL, PHOTON"},
			"tenDQ":        map[string]any{"type": "number", "description": "Cubic crystal field: positive octahedral, negative tetrahedral"},
		}, []string{"element", "valence"}),
	}

	srv.AddTool(tool, func(_ context.Context, req *mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		var r generateReq
		if err := json.Unmarshal(req.Params.Arguments, &r); err != nil {
			return toolError(fmt.Errorf("invalid arguments: %w", err)), nil
		}

		// overrides first, then tenDQ, then the tabulated per-ion values,
		// which always win for SO/SC2/SC2EX/FG and the hole count
		p := edinput.DefaultParams()
		if err := edinput.ApplyJSON(&p, r.InputParams); err != nil {
			return toolError(fmt.Errorf("invalid input_params: %w", err)), nil
		}
		if r.TenDQ != nil {
			t := *r.TenDQ
			p.Control.CF = []float64{0, 0, t, t, t}
		}
		holes, atomic, err := edinput.LookupAtomic(r.Element, r.Valence)
		if err != nil {
			return toolError(err), nil
		}
		p.Control.SO = atomic.SO
		p.Control.SC2 = atomic.SC2
		p.Control.SC2EX = atomic.SC2EX
		p.Control.FG = atomic.FG
		p.Cell.Holes = holes

		return textResult(map[string]any{"input_text": p.Render()})
	})
}

// --- run_multiplet_binary ---

type runReq struct {
	InstallDir string            `json:"install_dir"`
	InputText  string            `json:"input_text"`
	RunDir     string            `json:"run_dir"`
	Timeout    float64           `json:"timeout"`
	EnvVars    map[string]string `json:"env_vars"`
	Element    string            `json:"element"`
}

func (s *Server) registerRunTool(srv *mcp.Server) {
	tool := &mcp.Tool{
		Name:        "run_multiplet_binary",
		Description: "Run the multiplet binary in a unique run directory with the given INPUT text.",
		InputSchema: inputSchema(map[string]any{
			"install_dir": map[string]any{"type": "string", "description": "Installation directory of the binary"},
			"input_text":  map[string]any{"type": "string", "description": "INPUT script content (from generate_multiplet_input)"},
			"run_dir":     map[string]any{"type": "string", "description": "Optional explicit run directory name"},
			"timeout":     map[string]any{"type": "number", "description": "Timeout in seconds (default 60)"},
			"env_vars":    map[string]any{"type": "object", "description": "Extra environment variables"},
			"element":     map[string]any{"type": "string", "description": "Optional element label for the run registry"},
		}, []string{"install_dir", "input_text"}),
	}

	srv.AddTool(tool, func(ctx context.Context, req *mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		var r runReq
		if err := json.Unmarshal(req.Params.Arguments, &r); err != nil {
			return toolError(fmt.Errorf("invalid arguments: %w", err)), nil
		}

		var opts []edrun.Option
		if r.RunDir != "" {
			opts = append(opts, edrun.WithRunDir(r.RunDir))
		}
		if r.Timeout > 0 {
			opts = append(opts, edrun.WithTimeout(time.Duration(r.Timeout*float64(time.Second))))
		}
		if len(r.EnvVars) > 0 {
			opts = append(opts, edrun.WithEnv(r.EnvVars))
		}

		res, err := edrun.Run(ctx, r.InstallDir, r.InputText, opts...)
		s.recordRun(ctx, r.Element, res, err)
		if err != nil {
			return toolError(err), nil
		}

		return textResult(map[string]any{
			"cmd":       res.Cmd,
			"cwd":       res.Dir,
			"exit_code": res.ExitCode,
			"stdout":    res.Stdout,
			"stderr":    res.Stderr,
			"out_dir":   res.Dir,
		})
	})
}

func (s *Server) recordRun(ctx context.Context, element string, res *edrun.Result, runErr error) {
	if s.store == nil {
		return
	}

	rec := edrun.RunRecord{Element: element}
	switch {
	case runErr != nil:
		rec.Status = edrun.StatusTimeout
		if res != nil {
			rec.Dir = res.Dir
		}
	case res.ExitCode != 0:
		rec.Status = edrun.StatusFailed
		rec.Dir = res.Dir
		rec.ExitCode = res.ExitCode
	default:
		rec.Status = edrun.StatusOK
		rec.Dir = res.Dir
	}
	if _, err := s.store.Record(ctx, rec); err != nil {
		s.logger.Warn("run registry insert failed", "error", err)
	}
}

// --- get_multiplet_ground_state ---

type groundStateReq struct {
	RunDir string `json:"run_dir"`
}

func (s *Server) registerGroundStateTool(srv *mcp.Server) {
	tool := &mcp.Tool{
		Name:        "get_multiplet_ground_state",
		Description: "Return ground state occupation and composition of a finished multiplet run.",
		InputSchema: inputSchema(map[string]any{
			"run_dir": map[string]any{"type": "string", "description": "Run directory of the calculation"},
		}, []string{"run_dir"}),
	}

	srv.AddTool(tool, func(_ context.Context, req *mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		var r groundStateReq
		if err := json.Unmarshal(req.Params.Arguments, &r); err != nil {
			return toolError(fmt.Errorf("invalid arguments: %w", err)), nil
		}

		occ, err := edout.ReadOccupation(filepath.Join(r.RunDir, "eig.txt"))
		if err != nil {
			return toolError(err), nil
		}
		comp, err := edout.ReadGroundState(filepath.Join(r.RunDir, edrun.StdoutFileName))
		if err != nil {
			return toolError(err), nil
		}

		return textResult(map[string]any{
			"Occupation":  occ,
			"Composition": comp,
		})
	})
}

// --- plot_XAS_result ---

type xasReq struct {
	RunDir       string    `json:"run_dir"`
	Polarization string    `json:"polarization"`
	XLim         []float64 `json:"xlim"`
}

func (s *Server) registerXASTool(srv *mcp.Server) {
	tool := &mcp.Tool{
		Name:        "plot_XAS_result",
		Description: "Render the XAS spectrum of a run directory as a PNG plot.",
		InputSchema: inputSchema(map[string]any{
			"run_dir":      map[string]any{"type": "string", "description": "Run directory of the XAS calculation"},
			"polarization": map[string]any{"type": "string", "description": "Polarizations to sum, subset of XYZ (default XYZ)"},
			"xlim":         map[string]any{"type": "array", "description": "Optional [min, max] x-axis limits"},
		}, []string{"run_dir"}),
	}

	srv.AddTool(tool, func(_ context.Context, req *mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		var r xasReq
		if err := json.Unmarshal(req.Params.Arguments, &r); err != nil {
			return toolError(fmt.Errorf("invalid arguments: %w", err)), nil
		}
		if r.Polarization == "" {
			r.Polarization = "XYZ"
		}

		x, err := spectra.ReadXAS(r.RunDir, r.Polarization)
		if err != nil {
			return toolError(err), nil
		}
		var opts []spectra.PlotOption
		if len(r.XLim) == 2 {
			opts = append(opts, spectra.WithXLim(r.XLim[0], r.XLim[1]))
		}
		png, err := spectra.PlotXAS(x, opts...)
		if err != nil {
			return toolError(err), nil
		}

		return pngResult(png), nil
	})
}

// --- plot_RIXS_result ---

type rixsReq struct {
	RunDir          string    `json:"run_dir"`
	EnergyLoss      *bool     `json:"energy_loss"`
	PolarizationIn  string    `json:"polarization_in"`
	PolarizationOut string    `json:"polarization_out"`
	XLim            []float64 `json:"xlim"`
	YLim            []float64 `json:"ylim"`
}

func (s *Server) registerRIXSTool(srv *mcp.Server) {
	tool := &mcp.Tool{
		Name:        "plot_RIXS_result",
		Description: "Render the RIXS map of a run directory as a PNG heat map.",
		InputSchema: inputSchema(map[string]any{
			"run_dir":          map[string]any{"type": "string", "description": "Run directory of the RIXS calculation"},
			"energy_loss":      map[string]any{"type": "boolean", "description": "Energy-loss axes (default true)"},
			"polarization_in":  map[string]any{"type": "string", "description": "Incident polarizations, subset of XYZ (default XYZ)"},
			"polarization_out": map[string]any{"type": "string", "description": "Outgoing polarizations, subset of XYZ (default XYZ)"},
			"xlim":             map[string]any{"type": "array", "description": "Optional [min, max] x-axis limits"},
			"ylim":             map[string]any{"type": "array", "description": "Optional [min, max] y-axis limits"},
		}, []string{"run_dir"}),
	}

	srv.AddTool(tool, func(_ context.Context, req *mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		var r rixsReq
		if err := json.Unmarshal(req.Params.Arguments, &r); err != nil {
			return toolError(fmt.Errorf("invalid arguments: %w", err)), nil
		}
		if r.PolarizationIn == "" {
			r.PolarizationIn = "XYZ"
		}
		if r.PolarizationOut == "" {
			r.PolarizationOut = "XYZ"
		}

		grid, err := spectra.ReadRIXS(r.RunDir, r.PolarizationIn, r.PolarizationOut)
		if err != nil {
			return toolError(err), nil
		}
		var opts []spectra.PlotOption
		if r.EnergyLoss != nil && !*r.EnergyLoss {
			opts = append(opts, spectra.WithEmissionAxes())
		}
		if len(r.XLim) == 2 {
			opts = append(opts, spectra.WithXLim(r.XLim[0], r.XLim[1]))
		}
		if len(r.YLim) == 2 {
			opts = append(opts, spectra.WithYLim(r.YLim[0], r.YLim[1]))
		}
		png, err := spectra.PlotRIXS(grid, opts...)
		if err != nil {
			return toolError(err), nil
		}

		return pngResult(png), nil
	})
}
