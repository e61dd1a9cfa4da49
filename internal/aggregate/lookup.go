package aggregate

import (
	"sort"
	"strings"
)

// TopRow returns the row with the highest (or lowest) non-null field value.
// Ties keep the first row in source order.
func TopRow(rows []Row, field Field, order Order) (Row, bool) {
	var best Row
	var bestVal float64
	for _, r := range rows {
		v := field(r)
		if !v.Valid {
			continue
		}
		if best == nil ||
			(order == Descending && v.Float64 > bestVal) ||
			(order == Ascending && v.Float64 < bestVal) {
			best, bestVal = r, v.Float64
		}
	}
	return best, best != nil
}

// TopRows orders rows by field with nulls last and keeps at most n.
func TopRows(rows []Row, field Field, order Order, n int) []Row {
	out := make([]Row, len(rows))
	copy(out, rows)
	sort.SliceStable(out, func(i, j int) bool {
		a, b := field(out[i]), field(out[j])
		if a.Valid != b.Valid {
			return a.Valid
		}
		if !a.Valid {
			return false
		}
		if order == Ascending {
			return a.Float64 < b.Float64
		}
		return a.Float64 > b.Float64
	})
	if n > 0 && n < len(out) {
		out = out[:n]
	}
	return out
}

// CuisineTopBottom returns the highest and lowest rated restaurants among
// exploded rows whose cuisine equals one of names, ignoring case.
func CuisineTopBottom(exploded []Exploded, names ...string) (top, bottom Row, ok bool) {
	var rows []Row
	for _, e := range exploded {
		for _, name := range names {
			if strings.EqualFold(e.Cuisine, strings.TrimSpace(name)) {
				rows = append(rows, e.Row)
				break
			}
		}
	}
	top, ok = TopRow(rows, Rating, Descending)
	if !ok {
		return nil, nil, false
	}
	bottom, _ = TopRow(rows, Rating, Ascending)
	return top, bottom, true
}
