package aggregate

// Comparison is a small side-by-side table of means.
type Comparison struct {
	Entries Series `json:"entries" yaml:"entries"`
	Verdict string `json:"verdict,omitempty" yaml:"verdict,omitempty"`
}

// Subset is a labelled slice of rows.
type Subset struct {
	Label string
	Keep  Predicate
}

// CompareByFlag averages field for rows with and without flag.
func CompareByFlag(rows []Row, flag Predicate, field Field, with, without string) Comparison {
	return CompareSubsets(rows, field,
		Subset{Label: with, Keep: flag},
		Subset{Label: without, Keep: func(r Row) bool { return !flag(r) }},
	)
}

// CompareSubsets averages field over each subset, in the order given.
func CompareSubsets(rows []Row, field Field, subsets ...Subset) Comparison {
	entries := make(Series, 0, len(subsets))
	for _, s := range subsets {
		mean := Fold(Where(rows, s.Keep), "mean", func(r Row) any { return field(r) })
		entries = append(entries, Pair{Key: s.Label, Value: mean})
	}
	return Comparison{Entries: entries}
}

// Greater states which of the first two entries has the larger mean.
func (c Comparison) Greater() string {
	if len(c.Entries) < 2 {
		return "insufficient data"
	}
	a, b := c.Entries[0], c.Entries[1]
	if !a.Value.Valid || !b.Value.Valid {
		return "insufficient data"
	}
	if a.Value.Number > b.Value.Number {
		return a.Key + " > " + b.Key
	}
	return b.Key + " ≥ " + a.Key
}
