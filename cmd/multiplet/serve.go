// SPDX-License-Identifier: MIT
package main

import (
	"log/slog"
	"net/http"
	"os/signal"
	"syscall"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/multiplet/edrun"
	"github.com/katalvlaran/multiplet/mcpserver"
)

var (
	serveHTTPAddr string
	serveDBPath   string
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the multiplet tools over MCP on stdio",
	Long: `Start the MCP server on stdin/stdout. With --http an auxiliary HTTP
surface (liveness, run listing) is served on the given address; with --db
every binary run is recorded in a SQLite registry.`,
	RunE: runServe,
}

func init() {
	rootCmd.AddCommand(serveCmd)
	serveCmd.Flags().StringVar(&serveHTTPAddr, "http", "", "address of the auxiliary HTTP surface (disabled when empty)")
	serveCmd.Flags().StringVar(&serveDBPath, "db", "", "path of the run registry database (disabled when empty)")
}

func runServe(cmd *cobra.Command, _ []string) error {
	ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	var store *edrun.Store
	if serveDBPath != "" {
		var err error
		store, err = edrun.OpenStore(serveDBPath)
		if err != nil {
			return err
		}
		defer store.Close()
	}

	tools := mcpserver.New(store, slog.Default())
	srv := mcp.NewServer(&mcp.Implementation{
		Name:    "multiplet",
		Version: "1.0.0",
	}, nil)
	tools.Register(srv)

	if serveHTTPAddr != "" {
		go func() {
			slog.Info("http surface starting", "addr", serveHTTPAddr)
			if err := http.ListenAndServe(serveHTTPAddr, tools.HTTPHandler()); err != nil {
				slog.Error("http surface", "error", err)
			}
		}()
	}

	slog.Info("mcp server starting", "transport", "stdio")

	return srv.Run(ctx, &mcp.StdioTransport{})
}
