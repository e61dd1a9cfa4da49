package commands

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/leapstack-labs/zfdash/internal/aggregate"
	"github.com/leapstack-labs/zfdash/internal/cli/config"
	"github.com/leapstack-labs/zfdash/internal/cli/output"
	clitest "github.com/leapstack-labs/zfdash/internal/cli/testutil"
	"github.com/leapstack-labs/zfdash/internal/dataset"
	"github.com/leapstack-labs/zfdash/internal/testutil"
)

func TestNewReportCommand(t *testing.T) {
	cmd := NewReportCommand()

	assert.Equal(t, "report", cmd.Use)
	assert.NotEmpty(t, cmd.Short, "Short should not be empty")
	assert.NotEmpty(t, cmd.Example, "Example should not be empty")

	// Note: --output, --dataset and --top-n are global persistent flags on root
	for _, flag := range []string{"section", "country", "city", "cuisine"} {
		assert.NotNil(t, cmd.Flags().Lookup(flag), "flag %q should exist", flag)
	}
}

func TestNewQueryCommand(t *testing.T) {
	cmd := NewQueryCommand()

	assert.Equal(t, "query <name>", cmd.Use)
	assert.NotEmpty(t, cmd.Short, "Short should not be empty")
	assert.NotEmpty(t, cmd.Example, "Example should not be empty")
	assert.NotNil(t, cmd.Flags().Lookup("cuisine"))

	names, directive := cmd.ValidArgsFunction(cmd, nil, "overview.")
	assert.NotEmpty(t, names)
	for _, n := range names {
		assert.Contains(t, n, "overview.")
	}
	assert.NotZero(t, directive)
}

func TestNewServeCommand(t *testing.T) {
	cmd := NewServeCommand()

	assert.Equal(t, "serve", cmd.Use)
	assert.NotEmpty(t, cmd.Example, "Example should not be empty")
	for _, flag := range []string{"port", "watch", "allowed-origin"} {
		assert.NotNil(t, cmd.Flags().Lookup(flag), "flag %q should exist", flag)
	}
}

func TestOtherCommandsMetadata(t *testing.T) {
	assert.Equal(t, "queries", NewQueriesCommand().Use)
	assert.Equal(t, "filters", NewFiltersCommand().Use)
	assert.Equal(t, "validate", NewValidateCommand().Use)
	assert.NotEmpty(t, NewValidateCommand().Long)
}

func TestReport_Overview(t *testing.T) {
	cfg := clitest.SampleConfig(t, output.ModeMarkdown)

	res, err := clitest.ExecuteCommand(t, NewReportCommand(), cfg, "--section", "overview")
	require.NoError(t, err)

	clitest.AssertNoANSI(t, res.Out)
	clitest.AssertValidMarkdown(t, res.Out)
	assert.Contains(t, res.Out, "# Restaurant report")
	assert.Contains(t, res.Out, "- **Rows**: 6 of 6")
	assert.Contains(t, res.Out, "## Overview")
	assert.Contains(t, res.Out, "- **Unique restaurants**: 6")
	assert.Contains(t, res.Out, "- **Unique cities**: 5")
	assert.Contains(t, res.Out, "- **Total votes**: 560")
	assert.NotContains(t, res.Out, "## Country")
}

func TestReport_CountryFilter(t *testing.T) {
	cfg := clitest.SampleConfig(t, output.ModeMarkdown)

	res, err := clitest.ExecuteCommand(t, NewReportCommand(), cfg, "--section", "country", "--country", "Brazil")
	require.NoError(t, err)

	assert.Contains(t, res.Out, "- **Rows**: 2 of 6")
	assert.Contains(t, res.Out, "### Most restaurants")
	assert.Contains(t, res.Out, "| 1 | Brazil | 2 |")
	assert.NotContains(t, res.Out, "United States of America")
}

func TestReport_EmptySelectionWarns(t *testing.T) {
	cfg := clitest.SampleConfig(t, output.ModeMarkdown)

	res, err := clitest.ExecuteCommand(t, NewReportCommand(), cfg, "--section", "restaurant", "--country", "Atlantis")
	require.NoError(t, err)

	assert.Contains(t, res.ErrOut, "No rows match the selected filters")
	assert.Contains(t, res.Out, "- **Rows**: 0 of 6")
	assert.Contains(t, res.Out, "### Most voted restaurants")
	assert.NotContains(t, res.Out, "| Restaurant |")
}

func TestReport_CuisineFilterYAML(t *testing.T) {
	cfg := clitest.SampleConfig(t, output.ModeYAML)

	res, err := clitest.ExecuteCommand(t, NewReportCommand(), cfg, "--cuisine", "BBQ")
	require.NoError(t, err)

	var bundle struct {
		Total    int `yaml:"total_rows"`
		Selected int `yaml:"selected_rows"`
		Sections []struct {
			Section string `yaml:"section"`
		} `yaml:"sections"`
	}
	require.NoError(t, yaml.Unmarshal([]byte(res.Out), &bundle))
	assert.Equal(t, 6, bundle.Total)
	assert.Equal(t, 2, bundle.Selected)
	assert.Len(t, bundle.Sections, len(aggregate.Sections()))
}

func TestReport_UnknownSection(t *testing.T) {
	cfg := clitest.SampleConfig(t, output.ModeMarkdown)

	_, err := clitest.ExecuteCommand(t, NewReportCommand(), cfg, "--section", "weather")
	assert.ErrorIs(t, err, aggregate.ErrUnknownSection)
}

func TestQuery_Ranking(t *testing.T) {
	cfg := clitest.SampleConfig(t, output.ModeMarkdown)

	res, err := clitest.ExecuteCommand(t, NewQueryCommand(), cfg, "country.most_restaurants")
	require.NoError(t, err)

	assert.Contains(t, res.Out, "## Most restaurants")
	assert.Contains(t, res.Out, "| 1 | United States of America | 3 |")
}

func TestQuery_JSON(t *testing.T) {
	cfg := clitest.SampleConfig(t, output.ModeJSON)

	res, err := clitest.ExecuteCommand(t, NewQueryCommand(), cfg, "overview.votes", "--country", "Brazil")
	require.NoError(t, err)

	var decoded struct {
		Name   string   `json:"name"`
		Kind   string   `json:"kind"`
		Scalar *float64 `json:"scalar"`
	}
	require.NoError(t, json.Unmarshal([]byte(res.Out), &decoded))
	assert.Equal(t, "overview.votes", decoded.Name)
	assert.Equal(t, string(aggregate.KindScalar), decoded.Kind)
	require.NotNil(t, decoded.Scalar)
	assert.InDelta(t, 160, *decoded.Scalar, 1e-9)
}

func TestQuery_Unknown(t *testing.T) {
	cfg := clitest.SampleConfig(t, output.ModeMarkdown)

	_, err := clitest.ExecuteCommand(t, NewQueryCommand(), cfg, "overview.nope")
	require.ErrorIs(t, err, aggregate.ErrUnknownQuery)
	assert.Contains(t, err.Error(), "zfdash queries")
}

func TestQueries(t *testing.T) {
	cfg := config.Default()
	cfg.OutputFormat = string(output.ModeMarkdown)

	res, err := clitest.ExecuteCommand(t, NewQueriesCommand(), cfg)
	require.NoError(t, err)
	assert.Contains(t, res.Out, "| Section | Name | Title |")
	assert.Contains(t, res.Out, "overview.restaurants")
	assert.Contains(t, res.Out, "cuisine.top_bottom.italian")

	res, err = clitest.ExecuteCommand(t, NewQueriesCommand(), cfg, "--section", "cuisine")
	require.NoError(t, err)
	assert.Contains(t, res.Out, "cuisine.highest_mean_cost")
	assert.NotContains(t, res.Out, "overview.votes")

	_, err = clitest.ExecuteCommand(t, NewQueriesCommand(), cfg, "--section", "weather")
	assert.ErrorIs(t, err, aggregate.ErrUnknownSection)
}

func TestFilters_JSON(t *testing.T) {
	cfg := clitest.SampleConfig(t, output.ModeJSON)

	res, err := clitest.ExecuteCommand(t, NewFiltersCommand(), cfg)
	require.NoError(t, err)

	var opts struct {
		Countries []string `json:"countries"`
		Cities    []string `json:"cities"`
		Cuisines  []string `json:"cuisines"`
	}
	require.NoError(t, json.Unmarshal([]byte(res.Out), &opts))
	assert.Equal(t, []string{"Brazil", "Italy", "United States of America"}, opts.Countries)
	assert.Len(t, opts.Cities, 5)
	assert.Contains(t, opts.Cuisines, "Pan-American")
}

func TestValidate(t *testing.T) {
	cfg := clitest.SampleConfig(t, output.ModeMarkdown)

	res, err := clitest.ExecuteCommand(t, NewValidateCommand(), cfg)
	require.NoError(t, err)
	assert.Contains(t, res.Out, "# Dataset")
	assert.Contains(t, res.Out, "- **Source**: csv")
	assert.Contains(t, res.Out, "- **Rows**: 6")
	assert.Contains(t, res.Out, "6 rows match the restaurant schema")
}

func TestValidate_MissingColumns(t *testing.T) {
	cfg := config.Default()
	cfg.Source.Path = testutil.WriteFile(t, "broken.csv", "Restaurant ID,Restaurant Name\n1,Only\n")

	_, err := clitest.ExecuteCommand(t, NewValidateCommand(), cfg)
	require.Error(t, err)

	var missing *dataset.MissingColumnsError
	require.ErrorAs(t, err, &missing)
	assert.Contains(t, missing.Missing, "votes")
}

func TestCommands_NoDataset(t *testing.T) {
	for _, cmd := range []struct {
		name string
		run  func() error
	}{
		{"report", func() error {
			_, err := clitest.ExecuteCommand(t, NewReportCommand(), config.Default())
			return err
		}},
		{"filters", func() error {
			_, err := clitest.ExecuteCommand(t, NewFiltersCommand(), config.Default())
			return err
		}},
		{"validate", func() error {
			_, err := clitest.ExecuteCommand(t, NewValidateCommand(), config.Default())
			return err
		}},
		{"serve", func() error {
			_, err := clitest.ExecuteCommand(t, NewServeCommand(), config.Default())
			return err
		}},
	} {
		assert.ErrorIs(t, cmd.run(), config.ErrNoDataset, cmd.name)
	}
}

func TestFilterOptions_Set(t *testing.T) {
	table := dataset.NewTable([]dataset.Restaurant{
		{Country: "Brazil", City: "Rio"},
		{Country: "USA", City: "Austin"},
	})

	all := (&FilterOptions{}).Set(table)
	assert.Equal(t, []string{"Brazil", "USA"}, all.Countries)
	assert.Equal(t, []string{"Austin", "Rio"}, all.Cities)
	assert.Empty(t, all.Cuisines)

	some := (&FilterOptions{Countries: []string{"USA", "USA"}, Cuisines: []string{" BBQ ", ""}}).Set(table)
	assert.Equal(t, []string{"USA"}, some.Countries)
	assert.Equal(t, []string{"Austin", "Rio"}, some.Cities)
	assert.Equal(t, []string{"BBQ"}, some.Cuisines)
}
