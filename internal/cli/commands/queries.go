package commands

import (
	"github.com/spf13/cobra"

	"github.com/leapstack-labs/zfdash/internal/aggregate"
)

// NewQueriesCommand creates the queries command.
func NewQueriesCommand() *cobra.Command {
	var section string

	cmd := &cobra.Command{
		Use:   "queries",
		Short: "List the named queries",
		Long:  `List every query of the catalogue with its section and title. No dataset is read.`,
		Example: `  # All queries
  zfdash queries

  # Only the cuisine section
  zfdash queries --section cuisine`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			r := NewCommandContext(cmd).Renderer
			if section == "" {
				return r.Catalogue(aggregate.Catalogue())
			}
			queries, err := aggregate.SectionQueries(aggregate.Section(section))
			if err != nil {
				return err
			}
			return r.Catalogue(queries)
		},
	}

	cmd.Flags().StringVar(&section, "section", "", "Only list queries of this section")
	_ = cmd.RegisterFlagCompletionFunc("section", func(_ *cobra.Command, _ []string, _ string) ([]string, cobra.ShellCompDirective) {
		return sectionNames(), cobra.ShellCompDirectiveNoFileComp
	})

	return cmd
}
