package aggregate

import (
	"encoding/json"
	"sort"
	"strconv"
)

// NoData is the placeholder shown for results computed over no values.
const NoData = "—"

// Value is a numeric outcome that may be absent.
type Value struct {
	Number float64
	Valid  bool
}

// Some wraps a present number.
func Some(f float64) Value { return Value{Number: f, Valid: true} }

// None is an absent number.
func None() Value { return Value{} }

func (v Value) String() string {
	if !v.Valid {
		return NoData
	}
	return strconv.FormatFloat(v.Number, 'f', -1, 64)
}

// MarshalJSON renders absent values as null.
func (v Value) MarshalJSON() ([]byte, error) {
	if !v.Valid {
		return []byte("null"), nil
	}
	return json.Marshal(v.Number)
}

// MarshalYAML renders absent values as null.
func (v Value) MarshalYAML() (any, error) {
	if !v.Valid {
		return nil, nil
	}
	return v.Number, nil
}

// Label is a textual outcome that may be absent.
type Label struct {
	Text  string
	Valid bool
}

// LabelOf wraps a present label.
func LabelOf(s string) Label { return Label{Text: s, Valid: true} }

func (l Label) String() string {
	if !l.Valid {
		return NoData
	}
	return l.Text
}

// MarshalJSON renders absent labels as null.
func (l Label) MarshalJSON() ([]byte, error) {
	if !l.Valid {
		return []byte("null"), nil
	}
	return json.Marshal(l.Text)
}

// MarshalYAML renders absent labels as null.
func (l Label) MarshalYAML() (any, error) {
	if !l.Valid {
		return nil, nil
	}
	return l.Text, nil
}

// Pair is one group of a grouped aggregation.
type Pair struct {
	Key   string `json:"key" yaml:"key"`
	Value Value  `json:"value" yaml:"value"`
}

// Series is an ordered list of groups.
type Series []Pair

// Order selects the sort direction of a series or lookup.
type Order int

// Sort directions.
const (
	Descending Order = iota
	Ascending
)

// Sorted returns a copy of s ordered by value. Absent values sort last and
// equal values are ordered by key.
func (s Series) Sorted(order Order) Series {
	out := make(Series, len(s))
	copy(out, s)
	sort.SliceStable(out, func(i, j int) bool {
		a, b := out[i].Value, out[j].Value
		if a.Valid != b.Valid {
			return a.Valid
		}
		if a.Valid && a.Number != b.Number {
			if order == Ascending {
				return a.Number < b.Number
			}
			return a.Number > b.Number
		}
		return out[i].Key < out[j].Key
	})
	return out
}

// Top returns at most n leading pairs. n <= 0 keeps everything.
func (s Series) Top(n int) Series {
	if n <= 0 || n >= len(s) {
		return s
	}
	return s[:n]
}

// TopLabel returns the key of the first pair with a present value.
func (s Series) TopLabel() Label {
	for _, p := range s {
		if p.Value.Valid {
			return LabelOf(p.Key)
		}
	}
	return Label{}
}
