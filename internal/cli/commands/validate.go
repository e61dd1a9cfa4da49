package commands

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/leapstack-labs/zfdash/internal/dataset"
)

// NewValidateCommand creates the validate command.
func NewValidateCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "validate",
		Short: "Check that the dataset loads and carries every required column",
		Long: `Load and normalize the configured dataset without computing any query.

Exits with an error listing the missing columns when the header cannot be
mapped onto the canonical schema.`,
		Example: `  # Validate a CSV export
  zfdash validate --dataset zomato.csv

  # Validate a table in Postgres
  zfdash validate --dsn postgres://localhost/food --table restaurants`,
		RunE: runValidate,
	}
}

func runValidate(cmd *cobra.Command, _ []string) error {
	cmdCtx := NewCommandContext(cmd)
	r := cmdCtx.Renderer

	if err := cmdCtx.Cfg.Validate(); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	ds, err := cmdCtx.LoadDataset(cmd.Context())
	if err != nil {
		var missing *dataset.MissingColumnsError
		if errors.As(err, &missing) {
			cmdCtx.Logger.Debug("dataset header rejected", "missing", missing.Missing)
		}
		return err
	}

	if err := r.Dataset(ds); err != nil {
		return err
	}
	if !isStructured(r.EffectiveMode()) {
		r.Println()
		r.Success(fmt.Sprintf("%d rows match the restaurant schema", ds.Rows))
	}
	return nil
}
