// Package aggregate computes the named statistics shown by the dashboard.
// Every query is a pure function of a filtered view and its parameters.
package aggregate

import (
	"errors"
	"fmt"

	"github.com/leapstack-labs/zfdash/internal/dataset"
	"github.com/leapstack-labs/zfdash/internal/filter"
)

// Section groups queries the way the dashboard tabs do.
type Section string

// Dashboard sections.
const (
	SectionOverview   Section = "overview"
	SectionCountry    Section = "country"
	SectionCity       Section = "city"
	SectionRestaurant Section = "restaurant"
	SectionCuisine    Section = "cuisine"
)

// Sections returns every section in display order.
func Sections() []Section {
	return []Section{SectionOverview, SectionCountry, SectionCity, SectionRestaurant, SectionCuisine}
}

// Errors returned for names outside the catalogue.
var (
	ErrUnknownQuery   = errors.New("unknown query")
	ErrUnknownSection = errors.New("unknown section")
)

// Params tunes how much of each ranking is returned.
type Params struct {
	TopN        int `json:"top_n" mapstructure:"top_n" koanf:"top_n"`
	CuisineTopN int `json:"cuisine_top_n" mapstructure:"cuisine_top_n" koanf:"cuisine_top_n"`
}

// DefaultParams returns the dashboard defaults.
func DefaultParams() Params {
	return Params{TopN: 10, CuisineTopN: 15}
}

func (p Params) withDefaults() Params {
	d := DefaultParams()
	if p.TopN <= 0 {
		p.TopN = d.TopN
	}
	if p.CuisineTopN <= 0 {
		p.CuisineTopN = d.CuisineTopN
	}
	return p
}

// Query is one named entry of the catalogue.
type Query struct {
	Name    string  `json:"name"`
	Section Section `json:"section"`
	Title   string  `json:"title"`
	compute func(rows []Row, p Params) Result
}

// Evaluate runs q over the rows of view.
func (q Query) Evaluate(view *filter.View, p Params) Result {
	res := q.compute(view.Rows(), p.withDefaults())
	res.Name = q.Name
	res.Section = q.Section
	res.Title = q.Title
	return res
}

var catalogue = buildCatalogue()

func buildCatalogue() []Query {
	var qs []Query
	qs = append(qs, overviewQueries()...)
	qs = append(qs, countryQueries()...)
	qs = append(qs, cityQueries()...)
	qs = append(qs, restaurantQueries()...)
	qs = append(qs, cuisineQueries()...)
	return qs
}

// Catalogue returns every query in display order.
func Catalogue() []Query {
	out := make([]Query, len(catalogue))
	copy(out, catalogue)
	return out
}

// Lookup finds a query by name.
func Lookup(name string) (Query, bool) {
	for _, q := range catalogue {
		if q.Name == name {
			return q, true
		}
	}
	return Query{}, false
}

// SectionQueries returns the queries of one section.
func SectionQueries(section Section) ([]Query, error) {
	var out []Query
	for _, q := range catalogue {
		if q.Section == section {
			out = append(out, q)
		}
	}
	if len(out) == 0 {
		return nil, fmt.Errorf("%w: %q", ErrUnknownSection, section)
	}
	return out, nil
}

// Run filters t by s and evaluates the named query.
func Run(name string, t *dataset.Table, s filter.Set, p Params) (Result, error) {
	q, ok := Lookup(name)
	if !ok {
		return Result{}, fmt.Errorf("%w: %q", ErrUnknownQuery, name)
	}
	return q.Evaluate(filter.Apply(t, s), p), nil
}

// SectionResult holds the results of one section.
type SectionResult struct {
	Section Section  `json:"section" yaml:"section"`
	Results []Result `json:"results" yaml:"results"`
}

// Bundle is every result for one filter state.
type Bundle struct {
	Filter   filter.Set      `json:"filter" yaml:"filter"`
	Total    int             `json:"total_rows" yaml:"total_rows"`
	Selected int             `json:"selected_rows" yaml:"selected_rows"`
	Sections []SectionResult `json:"sections" yaml:"sections"`
}

// Build filters t by s and evaluates the requested sections, or all of them.
func Build(t *dataset.Table, s filter.Set, p Params, sections ...Section) (Bundle, error) {
	if len(sections) == 0 {
		sections = Sections()
	}
	view := filter.Apply(t, s)
	b := Bundle{Filter: s, Total: t.Len(), Selected: view.Len()}
	for _, sec := range sections {
		qs, err := SectionQueries(sec)
		if err != nil {
			return Bundle{}, err
		}
		sr := SectionResult{Section: sec, Results: make([]Result, 0, len(qs))}
		for _, q := range qs {
			sr.Results = append(sr.Results, q.Evaluate(view, p))
		}
		b.Sections = append(b.Sections, sr)
	}
	return b, nil
}
