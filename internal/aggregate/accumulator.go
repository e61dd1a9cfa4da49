package aggregate

import (
	"strconv"

	"github.com/leapstack-labs/zfdash/internal/dataset"
)

// Accumulator folds the values of one group into a single result.
type Accumulator interface {
	Add(value any) Accumulator
	Result() Value
}

// NewAccumulator returns the accumulator registered under fn, or nil.
func NewAccumulator(fn string) Accumulator {
	switch fn {
	case "count":
		return &countAccumulator{}
	case "distinct":
		return &distinctAccumulator{seen: make(map[string]struct{})}
	case "sum":
		return &sumAccumulator{}
	case "mean":
		return &meanAccumulator{}
	}
	return nil
}

// numeric extracts a number from the value kinds rows produce.
func numeric(value any) (float64, bool) {
	switch v := value.(type) {
	case float64:
		return v, true
	case int:
		return float64(v), true
	case int64:
		return float64(v), true
	case dataset.NullFloat:
		return v.Float64, v.Valid
	case dataset.NullInt:
		return float64(v.Int64), v.Valid
	default:
		return 0, false
	}
}

// identity extracts a distinct-count key. Nulls and empty text have none.
func identity(value any) (string, bool) {
	switch v := value.(type) {
	case string:
		return v, v != ""
	case dataset.NullInt:
		return strconv.FormatInt(v.Int64, 10), v.Valid
	case int64:
		return strconv.FormatInt(v, 10), true
	default:
		return "", false
	}
}

type countAccumulator struct {
	count int
}

// Add counts every row, null or not.
func (c *countAccumulator) Add(_ any) Accumulator {
	c.count++
	return c
}

func (c *countAccumulator) Result() Value { return Some(float64(c.count)) }

type distinctAccumulator struct {
	seen map[string]struct{}
}

func (d *distinctAccumulator) Add(value any) Accumulator {
	if key, ok := identity(value); ok {
		d.seen[key] = struct{}{}
	}
	return d
}

func (d *distinctAccumulator) Result() Value { return Some(float64(len(d.seen))) }

type sumAccumulator struct {
	sum float64
	n   int
}

func (s *sumAccumulator) Add(value any) Accumulator {
	if f, ok := numeric(value); ok {
		s.sum += f
		s.n++
	}
	return s
}

func (s *sumAccumulator) Result() Value {
	if s.n == 0 {
		return None()
	}
	return Some(s.sum)
}

type meanAccumulator struct {
	sum float64
	n   int
}

func (m *meanAccumulator) Add(value any) Accumulator {
	if f, ok := numeric(value); ok {
		m.sum += f
		m.n++
	}
	return m
}

func (m *meanAccumulator) Result() Value {
	if m.n == 0 {
		return None()
	}
	return Some(m.sum / float64(m.n))
}
