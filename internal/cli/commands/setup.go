package commands

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/leapstack-labs/zfdash/internal/cli/config"
	"github.com/leapstack-labs/zfdash/internal/cli/output"
	"github.com/leapstack-labs/zfdash/internal/dataset"
	"github.com/leapstack-labs/zfdash/internal/filter"
	"github.com/leapstack-labs/zfdash/internal/loader"
)

// CommandContext holds common dependencies for CLI commands.
type CommandContext struct {
	Cfg      *config.Config
	Logger   *slog.Logger
	Renderer *output.Renderer
}

// NewCommandContext builds a CommandContext from the config and logger that
// the root command stored in cmd's context.
func NewCommandContext(cmd *cobra.Command) *CommandContext {
	cfg := config.GetConfig(cmd.Context())
	logger := config.GetLogger(cmd.Context())
	mode := output.Mode(cfg.OutputFormat)
	r := output.NewRenderer(cmd.OutOrStdout(), cmd.ErrOrStderr(), mode)

	return &CommandContext{
		Cfg:      cfg,
		Logger:   logger,
		Renderer: r,
	}
}

// LoadDataset reads and normalizes the configured dataset.
func (c *CommandContext) LoadDataset(ctx context.Context) (*loader.Dataset, error) {
	if err := c.Cfg.ValidateSource(); err != nil {
		return nil, err
	}
	ds, err := loader.Load(ctx, c.Cfg.Source, c.Logger)
	if err != nil {
		return nil, fmt.Errorf("failed to load dataset: %w", err)
	}
	return ds, nil
}

// FilterOptions holds the --country, --city and --cuisine flags.
type FilterOptions struct {
	Countries []string
	Cities    []string
	Cuisines  []string
}

func addFilterFlags(cmd *cobra.Command, opts *FilterOptions) {
	cmd.Flags().StringSliceVar(&opts.Countries, "country", nil, "Restrict to these countries (default: all)")
	cmd.Flags().StringSliceVar(&opts.Cities, "city", nil, "Restrict to these cities (default: all)")
	cmd.Flags().StringSliceVar(&opts.Cuisines, "cuisine", nil, "Keep restaurants serving any of these cuisines")
}

// Set resolves the flags against t. Omitted countries or cities select all of them.
func (o *FilterOptions) Set(t *dataset.Table) filter.Set {
	s := filter.Default(t)
	if len(o.Countries) > 0 {
		s.Countries = o.Countries
	}
	if len(o.Cities) > 0 {
		s.Cities = o.Cities
	}
	s.Cuisines = o.Cuisines
	return s.Normalize()
}

func isStructured(mode output.Mode) bool {
	return mode == output.ModeJSON || mode == output.ModeYAML
}
