package output

import (
	"fmt"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"

	"github.com/leapstack-labs/zfdash/internal/aggregate"
	"github.com/leapstack-labs/zfdash/internal/filter"
	"github.com/leapstack-labs/zfdash/internal/loader"
)

// FormatValue renders an aggregate value, using the no-data marker when absent.
func FormatValue(v aggregate.Value) string {
	if !v.Valid {
		return aggregate.NoData
	}
	return FormatNumber(v.Number)
}

// KeyValue writes one labelled value in the current mode.
func (r *Renderer) KeyValue(key string, value any) {
	if r.EffectiveMode() == ModeMarkdown {
		r.Println(FormatKeyValue(key, value))
		return
	}
	r.Printf("%s %v\n", r.styles.Key.Render(key+":"), r.styles.Value.Render(fmt.Sprint(value)))
}

// Table writes rows under header as a box table on terminals and a markdown
// table otherwise.
func (r *Renderer) Table(header []string, rows [][]string) {
	t := table.NewWriter()
	t.SetOutputMirror(r.out)

	headerRow := make(table.Row, len(header))
	for i, h := range header {
		headerRow[i] = h
	}
	t.AppendHeader(headerRow)
	for _, row := range rows {
		tr := make(table.Row, len(row))
		for i, cell := range row {
			tr[i] = cell
		}
		t.AppendRow(tr)
	}

	if r.EffectiveMode() == ModeMarkdown {
		t.RenderMarkdown()
		r.Println()
		return
	}
	t.SetStyle(table.StyleLight)
	t.Render()
}

// Result writes one query result.
func (r *Renderer) Result(res aggregate.Result) error {
	if ok, err := r.Structured(res); ok {
		return err
	}
	r.result(res, 2)
	return nil
}

func (r *Renderer) result(res aggregate.Result, level int) {
	switch res.Kind {
	case aggregate.KindScalar:
		r.KeyValue(res.Title, FormatValue(*res.Scalar))
	case aggregate.KindLabel:
		r.KeyValue(res.Title, res.Label.String())
	case aggregate.KindRanking:
		r.Header(level, res.Title)
		if len(res.Series) == 0 {
			r.Muted(aggregate.NoData)
			r.Println()
			return
		}
		rows := make([][]string, len(res.Series))
		for i, p := range res.Series {
			rows[i] = []string{fmt.Sprint(i + 1), p.Key, FormatValue(p.Value)}
		}
		r.Table([]string{"#", "Group", "Value"}, rows)
	case aggregate.KindComparison:
		r.Header(level, res.Title)
		rows := make([][]string, len(res.Comparison.Entries))
		for i, p := range res.Comparison.Entries {
			rows[i] = []string{p.Key, FormatValue(p.Value)}
		}
		r.Table([]string{"Group", "Mean"}, rows)
		if res.Comparison.Verdict != "" {
			r.KeyValue("Verdict", res.Comparison.Verdict)
		}
	case aggregate.KindExtremes:
		r.Header(level, res.Title)
		r.KeyValue("Highest rated", res.Extremes.Highest.String())
		r.KeyValue("Lowest rated", res.Extremes.Lowest.String())
	case aggregate.KindRows:
		r.Header(level, res.Title)
		if len(res.Rows) == 0 {
			r.Muted(aggregate.NoData)
			r.Println()
			return
		}
		r.Table(summaryHeader, summaryRows(res.Rows))
	}
}

var summaryHeader = []string{"Restaurant", "Country", "City", "Cuisines", "Votes", "Rating", "Cost for two"}

func summaryRows(rows []aggregate.Summary) [][]string {
	out := make([][]string, len(rows))
	for i, s := range rows {
		cost := FormatValue(s.Cost)
		if s.Cost.Valid && s.Currency != "" {
			cost += " " + s.Currency
		}
		out[i] = []string{
			s.Name, s.Country, s.City, strings.Join(s.Cuisines, ", "),
			FormatValue(s.Votes), FormatValue(s.Rating), cost,
		}
	}
	return out
}

// Bundle writes every section of a report.
func (r *Renderer) Bundle(b aggregate.Bundle) error {
	if ok, err := r.Structured(b); ok {
		return err
	}
	r.Header(1, "Restaurant report")
	r.KeyValue("Rows", fmt.Sprintf("%s of %s", FormatCount(b.Selected), FormatCount(b.Total)))
	if len(b.Filter.Cuisines) > 0 {
		r.KeyValue("Cuisines", strings.Join(b.Filter.Cuisines, ", "))
	}
	r.Println()

	for _, sec := range b.Sections {
		r.Header(2, sectionTitle(sec.Section))
		for _, res := range sec.Results {
			r.result(res, 3)
		}
		r.Println()
	}
	return nil
}

func sectionTitle(s aggregate.Section) string {
	name := string(s)
	if name == "" {
		return name
	}
	return strings.ToUpper(name[:1]) + name[1:]
}

// Options writes the distinct filter choices of a dataset.
func (r *Renderer) Options(opts filter.Options) error {
	if ok, err := r.Structured(opts); ok {
		return err
	}
	r.Header(1, "Filter options")
	r.optionList("Countries", opts.Countries)
	r.optionList("Cities", opts.Cities)
	r.optionList("Cuisines", opts.Cuisines)
	return nil
}

func (r *Renderer) optionList(title string, values []string) {
	r.Header(2, fmt.Sprintf("%s (%d)", title, len(values)))
	if r.EffectiveMode() == ModeMarkdown {
		for _, v := range values {
			r.Println("- " + v)
		}
	} else {
		r.Println(strings.Join(values, ", "))
	}
	r.Println()
}

// Catalogue writes the named queries grouped by section.
func (r *Renderer) Catalogue(queries []aggregate.Query) error {
	if ok, err := r.Structured(queries); ok {
		return err
	}
	r.Header(1, "Queries")
	rows := make([][]string, len(queries))
	for i, q := range queries {
		rows[i] = []string{string(q.Section), q.Name, q.Title}
	}
	r.Table([]string{"Section", "Name", "Title"}, rows)
	return nil
}

// Dataset writes the metadata of a loaded dataset.
func (r *Renderer) Dataset(ds *loader.Dataset) error {
	if ok, err := r.Structured(ds); ok {
		return err
	}
	r.Header(1, "Dataset")
	r.KeyValue("ID", ds.ID)
	r.KeyValue("Source", ds.Source)
	if ds.Path != "" {
		r.KeyValue("Path", ds.Path)
	}
	r.KeyValue("Rows", FormatCount(ds.Rows))
	r.KeyValue("Columns", len(ds.Columns))
	r.KeyValue("Loaded", ds.LoadedAt.Format("2006-01-02 15:04:05 MST"))
	return nil
}
