package commands

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/leapstack-labs/zfdash/internal/aggregate"
)

// NewQueryCommand creates the query command.
func NewQueryCommand() *cobra.Command {
	opts := &FilterOptions{}

	cmd := &cobra.Command{
		Use:   "query <name>",
		Short: "Evaluate a single named query",
		Long: `Evaluate one query of the catalogue against the filtered dataset.

Run 'zfdash queries' to list the available names.`,
		Example: `  # Country with the most restaurants
  zfdash query country.most_restaurants

  # Best rated cuisines in Brazil, top 5
  zfdash query cuisine.highest_mean_rating --country Brazil --cuisine-top-n 5

  # Machine readable
  zfdash query overview.votes -o json`,
		Args: cobra.ExactArgs(1),
		ValidArgsFunction: func(_ *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
			if len(args) > 0 {
				return nil, cobra.ShellCompDirectiveNoFileComp
			}
			var names []string
			for _, q := range aggregate.Catalogue() {
				if strings.HasPrefix(q.Name, toComplete) {
					names = append(names, q.Name+"\t"+q.Title)
				}
			}
			return names, cobra.ShellCompDirectiveNoFileComp
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runQuery(cmd, args[0], opts)
		},
	}

	addFilterFlags(cmd, opts)

	return cmd
}

func runQuery(cmd *cobra.Command, name string, opts *FilterOptions) error {
	cmdCtx := NewCommandContext(cmd)

	if _, ok := aggregate.Lookup(name); !ok {
		return fmt.Errorf("%w: %q\nHint: Run 'zfdash queries' to list available queries", aggregate.ErrUnknownQuery, name)
	}

	ds, err := cmdCtx.LoadDataset(cmd.Context())
	if err != nil {
		return err
	}

	res, err := aggregate.Run(name, ds.Table, opts.Set(ds.Table), cmdCtx.Cfg.Report)
	if err != nil {
		return err
	}
	return cmdCtx.Renderer.Result(res)
}
