// Package mcpserver exposes the multiplet toolchain over the Model
// Context Protocol, plus a small chi HTTP surface for liveness and run
// listing.
//
// 🚀 Tools:
//
//	get_hamiltonian            — symbolic Coulomb matrix + exact spectrum
//	generate_multiplet_input   — INPUT script from element/valence
//	run_multiplet_binary       — supervise one binary run
//	get_multiplet_ground_state — occupation + composition of a run
//	plot_XAS_result            — XAS line plot (PNG)
//	plot_RIXS_result           — RIXS heat map (PNG)
//
// Tool failures are reported as MCP tool errors, never as protocol
// failures, so a misbehaving run directory cannot take the session down.
//
// ⚙️ Usage:
//
//	srv := mcp.NewServer(&mcp.Implementation{Name: "multiplet"}, nil)
//	mcpserver.New(store, logger).Register(srv)
package mcpserver
