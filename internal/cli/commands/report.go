package commands

import (
	"github.com/spf13/cobra"

	"github.com/leapstack-labs/zfdash/internal/aggregate"
)

// ReportOptions holds options for the report command.
type ReportOptions struct {
	Filter   FilterOptions
	Sections []string
}

// NewReportCommand creates the report command.
func NewReportCommand() *cobra.Command {
	opts := &ReportOptions{}

	cmd := &cobra.Command{
		Use:   "report",
		Short: "Compute the restaurant dashboard report",
		Long: `Load the dataset, apply the filters and evaluate every query of the
selected sections (overview, country, city, restaurant, cuisine).

Output adapts to environment:
  - Terminal: Styled tables
  - Piped/Scripted: Markdown format (agent-friendly)

Use --output to override: auto, text, markdown, json, yaml`,
		Example: `  # Full report for the configured dataset
  zfdash report --dataset zomato.csv

  # Only the country and city sections for Brazil
  zfdash report --section country,city --country Brazil

  # Restrict to two cuisines and emit JSON
  zfdash report --cuisine Italian --cuisine Japanese -o json`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runReport(cmd, opts)
		},
	}

	addFilterFlags(cmd, &opts.Filter)
	cmd.Flags().StringSliceVar(&opts.Sections, "section", nil, "Sections to compute (default: all)")
	_ = cmd.RegisterFlagCompletionFunc("section", func(_ *cobra.Command, _ []string, _ string) ([]string, cobra.ShellCompDirective) {
		return sectionNames(), cobra.ShellCompDirectiveNoFileComp
	})

	return cmd
}

func runReport(cmd *cobra.Command, opts *ReportOptions) error {
	cmdCtx := NewCommandContext(cmd)

	sections := make([]aggregate.Section, len(opts.Sections))
	for i, s := range opts.Sections {
		sections[i] = aggregate.Section(s)
		if _, err := aggregate.SectionQueries(sections[i]); err != nil {
			return err
		}
	}

	ds, err := cmdCtx.LoadDataset(cmd.Context())
	if err != nil {
		return err
	}

	bundle, err := aggregate.Build(ds.Table, opts.Filter.Set(ds.Table), cmdCtx.Cfg.Report, sections...)
	if err != nil {
		return err
	}
	if bundle.Selected == 0 {
		cmdCtx.Renderer.Warning("No rows match the selected filters")
	}
	return cmdCtx.Renderer.Bundle(bundle)
}

func sectionNames() []string {
	sections := aggregate.Sections()
	names := make([]string, len(sections))
	for i, s := range sections {
		names[i] = string(s)
	}
	return names
}
