package output

import (
	"fmt"
	"math"
	"strings"

	"github.com/dustin/go-humanize"
)

// NotAvailable is printed for missing values.
const NotAvailable = "n/a"

// FormatHeader returns a markdown heading of the given level.
func FormatHeader(level int, text string) string {
	if level < 1 {
		level = 1
	}
	return strings.Repeat("#", level) + " " + text
}

// FormatKeyValue returns a markdown list entry with a bold key.
func FormatKeyValue(key string, value any) string {
	return fmt.Sprintf("- **%s**: %v", key, value)
}

// FormatNumber renders f with thousands separators and at most two decimals.
func FormatNumber(f float64) string {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return NotAvailable
	}
	if f == math.Trunc(f) && math.Abs(f) < 1e15 {
		return humanize.Comma(int64(f))
	}
	return humanize.CommafWithDigits(f, 2)
}

// FormatCount renders an integer count with thousands separators.
func FormatCount(n int) string {
	return humanize.Comma(int64(n))
}
