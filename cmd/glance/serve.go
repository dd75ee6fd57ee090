// Serve command runs the HTTP surface for the four read operations.
package main

import (
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/glance/internal/httpapi"
)

var flagAddr string

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the read operations over HTTP",
	Long: `Serve exposes the four read operations over HTTP:

  GET  /tables
  GET  /tables/{name}/rows?limit=&offset=
  GET  /tables/{name}/info
  POST /query

The server shuts down gracefully on SIGINT or SIGTERM.`,
	Args: cobra.NoArgs,
	RunE: runServe,
}

func init() {
	serveCmd.Flags().StringVar(&flagAddr, "addr", ":8173", "listen address")
}

func runServe(cmd *cobra.Command, args []string) error {
	ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	srv := httpapi.NewServer(engine, logger)
	return srv.ListenAndServe(ctx, flagAddr)
}
