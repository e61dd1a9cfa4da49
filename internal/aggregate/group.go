package aggregate

import (
	"github.com/leapstack-labs/zfdash/internal/dataset"
)

// Row is a canonical restaurant row.
type Row = *dataset.Restaurant

// Exploded is one (restaurant, cuisine) pair of a restaurant's cuisine list.
type Exploded struct {
	Row     Row
	Cuisine string
}

// Explode expands each row into one entry per cuisine. Rows without
// cuisines contribute nothing.
func Explode(rows []Row) []Exploded {
	var out []Exploded
	for _, r := range rows {
		for _, c := range r.Cuisines {
			out = append(out, Exploded{Row: r, Cuisine: c})
		}
	}
	return out
}

// GroupBy folds items into one accumulator per key and returns the groups in
// first-seen order. Items with an empty key are skipped.
func GroupBy[T any](items []T, key func(T) string, fn string, value func(T) any) Series {
	accs := make(map[string]Accumulator)
	var order []string
	for _, it := range items {
		k := key(it)
		if k == "" {
			continue
		}
		acc, ok := accs[k]
		if !ok {
			acc = NewAccumulator(fn)
			accs[k] = acc
			order = append(order, k)
		}
		acc.Add(value(it))
	}

	out := make(Series, 0, len(order))
	for _, k := range order {
		out = append(out, Pair{Key: k, Value: accs[k].Result()})
	}
	return out
}

// Fold applies one accumulator to every item.
func Fold[T any](items []T, fn string, value func(T) any) Value {
	acc := NewAccumulator(fn)
	for _, it := range items {
		acc.Add(value(it))
	}
	return acc.Result()
}

// KeyFunc extracts a grouping key from a row.
type KeyFunc func(Row) string

// Grouping keys.
var (
	ByCountry KeyFunc = func(r Row) string { return r.Country }
	ByCity    KeyFunc = func(r Row) string { return r.City }
)

// Field extracts a nullable numeric field from a row.
type Field func(Row) dataset.NullFloat

// Numeric fields.
var (
	Votes  Field = func(r Row) dataset.NullFloat { return r.Votes }
	Rating Field = func(r Row) dataset.NullFloat { return r.AggregateRating }
	Cost   Field = func(r Row) dataset.NullFloat { return r.AverageCostForTwo }
)

func restaurantID(r Row) any { return r.ID }

// CountDistinctIDs counts distinct restaurant ids per group, most first.
func CountDistinctIDs(rows []Row, key KeyFunc) Series {
	return GroupBy(rows, key, "distinct", restaurantID).Sorted(Descending)
}

// CountDistinct counts distinct non-empty values per group, most first.
func CountDistinct(rows []Row, key KeyFunc, value func(Row) string) Series {
	return GroupBy(rows, key, "distinct", func(r Row) any { return value(r) }).Sorted(Descending)
}

// SumBy sums a field per group ignoring nulls, largest first.
func SumBy(rows []Row, key KeyFunc, field Field) Series {
	return GroupBy(rows, key, "sum", func(r Row) any { return field(r) }).Sorted(Descending)
}

// MeanBy averages a field per group ignoring nulls.
func MeanBy(rows []Row, key KeyFunc, field Field, order Order) Series {
	return GroupBy(rows, key, "mean", func(r Row) any { return field(r) }).Sorted(order)
}

// CountCuisinesBy counts distinct cuisines per group of exploded rows.
func CountCuisinesBy(exploded []Exploded, key KeyFunc) Series {
	return GroupBy(exploded,
		func(e Exploded) string { return key(e.Row) },
		"distinct",
		func(e Exploded) any { return e.Cuisine },
	).Sorted(Descending)
}

// MeanByCuisine averages a field per cuisine; every exploded row is an observation.
func MeanByCuisine(exploded []Exploded, field Field) Series {
	return GroupBy(exploded,
		func(e Exploded) string { return e.Cuisine },
		"mean",
		func(e Exploded) any { return field(e.Row) },
	).Sorted(Descending)
}

// CountDistinctIDsByCuisine counts distinct restaurant ids per cuisine.
func CountDistinctIDsByCuisine(exploded []Exploded) Series {
	return GroupBy(exploded,
		func(e Exploded) string { return e.Cuisine },
		"distinct",
		func(e Exploded) any { return e.Row.ID },
	).Sorted(Descending)
}
