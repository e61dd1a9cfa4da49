package aggregate

import (
	"github.com/leapstack-labs/zfdash/internal/dataset"
)

// Predicate selects rows.
type Predicate func(Row) bool

// Where returns the rows satisfying keep, preserving order.
func Where(rows []Row, keep Predicate) []Row {
	var out []Row
	for _, r := range rows {
		if keep(r) {
			out = append(out, r)
		}
	}
	return out
}

// WhereExploded returns the exploded rows whose restaurant satisfies keep.
func WhereExploded(exploded []Exploded, keep Predicate) []Exploded {
	var out []Exploded
	for _, e := range exploded {
		if keep(e.Row) {
			out = append(out, e)
		}
	}
	return out
}

// And combines predicates.
func And(preds ...Predicate) Predicate {
	return func(r Row) bool {
		for _, p := range preds {
			if !p(r) {
				return false
			}
		}
		return true
	}
}

// PriceRange selects rows with the given price range.
func PriceRange(n int64) Predicate {
	return func(r Row) bool { return r.PriceRange.Valid && r.PriceRange.Int64 == n }
}

// RatingAbove selects rows rated strictly above x.
func RatingAbove(x float64) Predicate {
	return func(r Row) bool { return r.AggregateRating.Valid && r.AggregateRating.Float64 > x }
}

// RatingBelow selects rows rated strictly below x.
func RatingBelow(x float64) Predicate {
	return func(r Row) bool { return r.AggregateRating.Valid && r.AggregateRating.Float64 < x }
}

// Flags.
var (
	DeliveringNow  Predicate = func(r Row) bool { return r.IsDeliveringNow }
	TableBooking   Predicate = func(r Row) bool { return r.HasTableBooking }
	OnlineDelivery Predicate = func(r Row) bool { return r.HasOnlineDelivery }
)

// CuisineMatch selects rows whose cuisine text contains any of names as a whole token.
func CuisineMatch(names ...string) Predicate {
	m := dataset.NewCuisineMatcher(names...)
	return m.MatchRow
}

// CountryIn selects rows whose country equals one of names, ignoring case.
func CountryIn(names ...string) Predicate {
	set := make(map[string]struct{}, len(names))
	for _, n := range names {
		set[dataset.Lower(n)] = struct{}{}
	}
	return func(r Row) bool {
		_, ok := set[dataset.Lower(r.Country)]
		return ok
	}
}
