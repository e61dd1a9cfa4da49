package dataset

import (
	"encoding/json"
	"math"
	"strconv"
	"strings"
)

// Kind identifies the variant stored in a Value.
type Kind uint8

// Value kinds produced by sources.
const (
	KindNull Kind = iota
	KindInt
	KindFloat
	KindBool
	KindString
)

func (k Kind) String() string {
	switch k {
	case KindInt:
		return "int"
	case KindFloat:
		return "float"
	case KindBool:
		return "bool"
	case KindString:
		return "string"
	default:
		return "null"
	}
}

// Value is a single raw cell as delivered by a source. Exactly one payload
// is meaningful, selected by Kind.
type Value struct {
	kind Kind
	i    int64
	f    float64
	b    bool
	s    string
}

// NullValue returns a missing cell.
func NullValue() Value { return Value{} }

// IntValue wraps an integer cell.
func IntValue(v int64) Value { return Value{kind: KindInt, i: v} }

// FloatValue wraps a floating point cell.
func FloatValue(v float64) Value { return Value{kind: KindFloat, f: v} }

// BoolValue wraps a boolean cell.
func BoolValue(v bool) Value { return Value{kind: KindBool, b: v} }

// StringValue wraps a text cell.
func StringValue(v string) Value { return Value{kind: KindString, s: v} }

// Kind returns the variant of v.
func (v Value) Kind() Kind { return v.kind }

// IsNull reports whether v is missing.
func (v Value) IsNull() bool { return v.kind == KindNull }

// Int returns the integer payload.
func (v Value) Int() int64 { return v.i }

// Float returns the float payload.
func (v Value) Float() float64 { return v.f }

// Bool returns the boolean payload.
func (v Value) Bool() bool { return v.b }

// Str returns the text payload.
func (v Value) Str() string { return v.s }

// Text renders v as trimmed text. Null renders as the empty string, never "nan".
func (v Value) Text() string {
	switch v.kind {
	case KindInt:
		return strconv.FormatInt(v.i, 10)
	case KindFloat:
		if math.IsNaN(v.f) {
			return ""
		}
		return strconv.FormatFloat(v.f, 'f', -1, 64)
	case KindBool:
		return strconv.FormatBool(v.b)
	case KindString:
		return strings.TrimSpace(v.s)
	default:
		return ""
	}
}

// NullInt is an integer that may be absent.
type NullInt struct {
	Int64 int64
	Valid bool
}

// MarshalJSON renders absent values as null.
func (n NullInt) MarshalJSON() ([]byte, error) {
	if !n.Valid {
		return []byte("null"), nil
	}
	return json.Marshal(n.Int64)
}

// NullFloat is a float that may be absent.
type NullFloat struct {
	Float64 float64
	Valid   bool
}

// MarshalJSON renders absent values as null.
func (n NullFloat) MarshalJSON() ([]byte, error) {
	if !n.Valid {
		return []byte("null"), nil
	}
	return json.Marshal(n.Float64)
}

// NullString is text that may be absent.
type NullString struct {
	String string
	Valid  bool
}

// MarshalJSON renders absent values as null.
func (n NullString) MarshalJSON() ([]byte, error) {
	if !n.Valid {
		return []byte("null"), nil
	}
	return json.Marshal(n.String)
}
