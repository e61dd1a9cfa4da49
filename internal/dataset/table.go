// Package dataset holds the canonical restaurant schema and the normalizer
// that turns raw tabular input into it.
package dataset

import "sort"

// RawTable is tabular input as read by a source, before normalization.
type RawTable struct {
	Columns []string
	Rows    [][]Value
}

// Cell returns the value at row i, column j, or null when the row is short.
func (t *RawTable) Cell(i, j int) Value {
	row := t.Rows[i]
	if j < 0 || j >= len(row) {
		return NullValue()
	}
	return row[j]
}

// Restaurant is one canonical dataset row.
type Restaurant struct {
	ID                NullInt    `json:"restaurant_id"`
	Name              string     `json:"restaurant_name"`
	Country           string     `json:"country"`
	City              string     `json:"city"`
	CuisinesRaw       NullString `json:"cuisines"`
	Cuisines          []string   `json:"cuisines_list"`
	CuisinesLower     string     `json:"-"`
	AverageCostForTwo NullFloat  `json:"average_cost_for_two"`
	Currency          string     `json:"currency"`
	AggregateRating   NullFloat  `json:"aggregate_rating"`
	RatingText        string     `json:"rating_text,omitempty"`
	Votes             NullFloat  `json:"votes"`
	PriceRange        NullInt    `json:"price_range"`
	HasOnlineDelivery bool       `json:"has_online_delivery"`
	IsDeliveringNow   bool       `json:"is_delivering_now"`
	HasTableBooking   bool       `json:"has_table_booking"`
}

// Table is the canonical, immutable restaurant dataset.
type Table struct {
	rows    []Restaurant
	columns []string
}

// NewTable builds a table from already canonical rows.
func NewTable(rows []Restaurant) *Table {
	return &Table{rows: rows, columns: CanonicalColumns()}
}

// Len returns the number of rows.
func (t *Table) Len() int { return len(t.rows) }

// Row returns a pointer to row i. Callers must not modify it.
func (t *Table) Row(i int) *Restaurant { return &t.rows[i] }

// Rows returns pointers to every row in source order.
func (t *Table) Rows() []*Restaurant {
	out := make([]*Restaurant, len(t.rows))
	for i := range t.rows {
		out[i] = &t.rows[i]
	}
	return out
}

// Columns returns the header after aliasing, including passed-through columns.
func (t *Table) Columns() []string {
	out := make([]string, len(t.columns))
	copy(out, t.columns)
	return out
}

// Countries returns the sorted distinct country values.
func (t *Table) Countries() []string {
	return t.distinct(func(r *Restaurant) []string { return []string{r.Country} })
}

// Cities returns the sorted distinct city values.
func (t *Table) Cities() []string {
	return t.distinct(func(r *Restaurant) []string { return []string{r.City} })
}

// Cuisines returns the sorted distinct cuisine tokens.
func (t *Table) Cuisines() []string {
	return t.distinct(func(r *Restaurant) []string { return r.Cuisines })
}

func (t *Table) distinct(values func(*Restaurant) []string) []string {
	seen := make(map[string]struct{})
	for i := range t.rows {
		for _, v := range values(&t.rows[i]) {
			seen[v] = struct{}{}
		}
	}
	out := make([]string, 0, len(seen))
	for v := range seen {
		out = append(out, v)
	}
	sort.Strings(out)
	return out
}
