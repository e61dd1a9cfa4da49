package dataset

import (
	"math"
	"strconv"
	"strings"
)

// truthy is the closed set of text tokens that coerce to true.
var truthy = map[string]struct{}{
	"1":    {},
	"true": {},
	"yes":  {},
	"y":    {},
	"sim":  {},
}

// CoerceFlag converts a heterogeneous cell into a boolean flag.
// Unrecognized input resolves to false, never an error.
func CoerceFlag(v Value) bool {
	switch v.kind {
	case KindBool:
		return v.b
	case KindInt:
		return v.i != 0
	case KindFloat:
		if math.IsNaN(v.f) || math.IsInf(v.f, 0) {
			return false
		}
		return int64(v.f) != 0
	case KindString:
		_, ok := truthy[strings.ToLower(strings.TrimSpace(v.s))]
		return ok
	default:
		return false
	}
}

// CoerceFloat parses v as a number. Unparseable and non-finite input is null.
func CoerceFloat(v Value) NullFloat {
	var f float64
	switch v.kind {
	case KindInt:
		f = float64(v.i)
	case KindFloat:
		f = v.f
	case KindBool:
		if v.b {
			f = 1
		}
	case KindString:
		parsed, err := strconv.ParseFloat(strings.TrimSpace(v.s), 64)
		if err != nil {
			return NullFloat{}
		}
		f = parsed
	default:
		return NullFloat{}
	}
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return NullFloat{}
	}
	return NullFloat{Float64: f, Valid: true}
}

// CoerceInt parses v as an integer. Numbers with a fractional part are null.
func CoerceInt(v Value) NullInt {
	if v.kind == KindInt {
		return NullInt{Int64: v.i, Valid: true}
	}
	if v.kind == KindString {
		if i, err := strconv.ParseInt(strings.TrimSpace(v.s), 10, 64); err == nil {
			return NullInt{Int64: i, Valid: true}
		}
	}
	f := CoerceFloat(v)
	if !f.Valid || f.Float64 != math.Trunc(f.Float64) {
		return NullInt{}
	}
	if f.Float64 > math.MaxInt64 || f.Float64 < math.MinInt64 {
		return NullInt{}
	}
	return NullInt{Int64: int64(f.Float64), Valid: true}
}
