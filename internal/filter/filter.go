// Package filter selects the rows of a canonical table that participate in
// aggregation for a given country/city/cuisine selection.
package filter

import (
	"sort"
	"strings"

	"github.com/RoaringBitmap/roaring"
	"github.com/leapstack-labs/zfdash/internal/dataset"
)

// Set is the active selection. A row passes when its country and city are
// members of Countries and Cities and, if Cuisines is non-empty, at least one
// of its cuisines is a member of Cuisines.
type Set struct {
	Countries []string `json:"countries" mapstructure:"country"`
	Cities    []string `json:"cities" mapstructure:"city"`
	Cuisines  []string `json:"cuisines" mapstructure:"cuisine"`
}

// Default selects every known country and city with no cuisine restriction.
func Default(t *dataset.Table) Set {
	return Set{
		Countries: t.Countries(),
		Cities:    t.Cities(),
		Cuisines:  []string{},
	}
}

// Options are the choices a display layer offers for each filter widget.
type Options struct {
	Countries []string `json:"countries"`
	Cities    []string `json:"cities"`
	Cuisines  []string `json:"cuisines"`
}

// AvailableOptions lists the sorted distinct values of t.
func AvailableOptions(t *dataset.Table) Options {
	return Options{
		Countries: t.Countries(),
		Cities:    t.Cities(),
		Cuisines:  t.Cuisines(),
	}
}

// Normalize returns a copy of s with sorted, deduplicated members.
// Cuisine entries are trimmed and blank ones dropped.
func (s Set) Normalize() Set {
	return Set{
		Countries: uniqueSorted(s.Countries, false),
		Cities:    uniqueSorted(s.Cities, false),
		Cuisines:  uniqueSorted(s.Cuisines, true),
	}
}

func uniqueSorted(values []string, trim bool) []string {
	seen := make(map[string]struct{}, len(values))
	out := make([]string, 0, len(values))
	for _, v := range values {
		if trim {
			if v = strings.TrimSpace(v); v == "" {
				continue
			}
		}
		if _, ok := seen[v]; ok {
			continue
		}
		seen[v] = struct{}{}
		out = append(out, v)
	}
	sort.Strings(out)
	return out
}

type matcher struct {
	countries map[string]struct{}
	cities    map[string]struct{}
	cuisines  map[string]struct{}
}

func (s Set) matcher() matcher {
	return matcher{
		countries: toSet(s.Countries),
		cities:    toSet(s.Cities),
		cuisines:  toSet(s.Cuisines),
	}
}

func (m matcher) match(r *dataset.Restaurant) bool {
	if _, ok := m.countries[r.Country]; !ok {
		return false
	}
	if _, ok := m.cities[r.City]; !ok {
		return false
	}
	if len(m.cuisines) == 0 {
		return true
	}
	for _, c := range r.Cuisines {
		if _, ok := m.cuisines[c]; ok {
			return true
		}
	}
	return false
}

func toSet(values []string) map[string]struct{} {
	m := make(map[string]struct{}, len(values))
	for _, v := range values {
		m[v] = struct{}{}
	}
	return m
}

// Apply derives a fresh view of the rows in t that pass s.
func Apply(t *dataset.Table, s Set) *View {
	return All(t).Narrow(s.matcher().match)
}

// All is a view over every row of t.
func All(t *dataset.Table) *View {
	bm := roaring.New()
	if t.Len() > 0 {
		bm.AddRange(0, uint64(t.Len()))
	}
	return &View{table: t, selected: bm}
}
