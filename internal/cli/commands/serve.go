package commands

import (
	"fmt"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/leapstack-labs/zfdash/internal/dashboard"
)

// NewServeCommand creates the serve command.
func NewServeCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the dashboard JSON API",
		Long: `Start an HTTP server exposing the filters, the query catalogue and
section reports as JSON under /api.

When --watch is on and the dataset is a file, edits to it are reloaded and
announced to /api/updates subscribers over server-sent events.`,
		Example: `  # Serve on the default port
  zfdash serve --dataset zomato.csv

  # Custom port, no file watching
  zfdash serve --port 3000 --watch=false

  # Allow a frontend origin
  zfdash serve --allowed-origin http://localhost:5173`,
		RunE: runServe,
	}

	cmd.Flags().Int("port", 0, "Port to serve on (default: 8765)")
	cmd.Flags().Bool("watch", true, "Reload the dataset when its file changes")
	cmd.Flags().StringSlice("allowed-origin", nil, "CORS origins allowed to call the API (default: any)")

	return cmd
}

func runServe(cmd *cobra.Command, _ []string) error {
	cmdCtx := NewCommandContext(cmd)
	cfg := cmdCtx.Cfg
	logger := cmdCtx.Logger

	if err := cfg.ValidateSource(); err != nil {
		return err
	}

	store := dashboard.NewStore(cfg.Source, logger)
	if _, err := store.Reload(cmd.Context()); err != nil {
		return fmt.Errorf("failed to load dataset: %w", err)
	}

	server := dashboard.NewServer(dashboard.Config{
		Store:          store,
		Params:         cfg.Report,
		Port:           cfg.Serve.Port,
		Watch:          cfg.Serve.Watch,
		AllowedOrigins: cfg.Serve.AllowedOrigins,
		Logger:         logger,
	})

	r := cmdCtx.Renderer
	r.Printf("Serving %s on http://localhost:%d/api\n", store.Current().Source, cfg.Serve.Port)
	r.Muted("Press Ctrl+C to stop")

	ctx, cancel := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	return server.Serve(ctx)
}
