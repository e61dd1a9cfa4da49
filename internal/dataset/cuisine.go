package dataset

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// SplitCuisines splits comma separated cuisine text into trimmed, non-empty
// tokens in source order. Duplicates are kept.
func SplitCuisines(raw string) []string {
	parts := strings.Split(raw, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}

// Lower lowercases s with Unicode-aware rules.
func Lower(s string) string {
	return cases.Lower(language.Und).String(s)
}

// CuisineMatcher tests cuisine text for whole-token, case-insensitive
// occurrences of one or more cuisine names.
type CuisineMatcher struct {
	needles []string
}

// NewCuisineMatcher prepares a matcher for the given names. Blank names are ignored.
func NewCuisineMatcher(names ...string) *CuisineMatcher {
	caser := cases.Lower(language.Und)
	m := &CuisineMatcher{}
	for _, n := range names {
		if n = strings.TrimSpace(n); n != "" {
			m.needles = append(m.needles, caser.String(n))
		}
	}
	return m
}

// Match reports whether lower (already lowercased cuisine text) contains any
// of the matcher's names bounded by non-word characters on both sides.
func (m *CuisineMatcher) Match(lower string) bool {
	for _, n := range m.needles {
		if containsToken(lower, n) {
			return true
		}
	}
	return false
}

// MatchRow is Match applied to a restaurant's cuisine text.
func (m *CuisineMatcher) MatchRow(r *Restaurant) bool {
	return m.Match(r.CuisinesLower)
}

// MatchesCuisine is a one-off word-boundary test of lower against name.
func MatchesCuisine(lower, name string) bool {
	return NewCuisineMatcher(name).Match(lower)
}

func containsToken(haystack, needle string) bool {
	if needle == "" {
		return false
	}
	offset := 0
	for {
		idx := strings.Index(haystack[offset:], needle)
		if idx < 0 {
			return false
		}
		start := offset + idx
		end := start + len(needle)
		if boundaryBefore(haystack, start) && boundaryAfter(haystack, end) {
			return true
		}
		_, size := utf8.DecodeRuneInString(haystack[start:])
		offset = start + size
		if offset >= len(haystack) {
			return false
		}
	}
}

func boundaryBefore(s string, i int) bool {
	if i == 0 {
		return true
	}
	r, _ := utf8.DecodeLastRuneInString(s[:i])
	return !isWordRune(r)
}

func boundaryAfter(s string, i int) bool {
	if i >= len(s) {
		return true
	}
	r, _ := utf8.DecodeRuneInString(s[i:])
	return !isWordRune(r)
}

func isWordRune(r rune) bool {
	return r == '_' || unicode.IsLetter(r) || unicode.IsDigit(r)
}
