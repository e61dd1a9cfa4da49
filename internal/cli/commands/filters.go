package commands

import (
	"github.com/spf13/cobra"

	"github.com/leapstack-labs/zfdash/internal/filter"
)

// NewFiltersCommand creates the filters command.
func NewFiltersCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "filters",
		Short: "Show the countries, cities and cuisines available for filtering",
		Example: `  # Choices offered by the dataset
  zfdash filters --dataset zomato.csv

  # As JSON for a frontend
  zfdash filters -o json`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cmdCtx := NewCommandContext(cmd)
			ds, err := cmdCtx.LoadDataset(cmd.Context())
			if err != nil {
				return err
			}
			return cmdCtx.Renderer.Options(filter.AvailableOptions(ds.Table))
		},
	}
}
