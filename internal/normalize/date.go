package normalize

import (
	"strings"
	"time"
)

// dateLayouts are tried in order. North American month-first layouts come
// before day-first ones because every supported institution exports
// month-first; adapters needing day-first parsing pass their layout to
// ParseDateLayout instead.
var dateLayouts = []string{
	"2006-01-02",
	"20060102",
	"01/02/2006",
	"1/2/2006",
	"2006/01/02",
	"2006.01.02",
	"01-02-2006",
	"Jan 2, 2006",
	"January 2, 2006",
	"2 Jan 2006",
	"02 Jan 2006",
	"Jan 2 2006",
}

// ParseDate parses a raw date string against the known bank export layouts
// and returns the canonical YYYY-MM-DD form. The second return value is
// false when no layout matches.
func ParseDate(raw string) (string, bool) {
	s := strings.TrimSpace(raw)
	if s == "" {
		return "", false
	}

	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t.Format("2006-01-02"), true
		}
	}

	// Generic fallback: timestamps like "2024-01-15T12:00:00Z" or
	// "2024-01-15 12:00:00" that some exports attach to the posting date.
	for _, layout := range []string{time.RFC3339, "2006-01-02 15:04:05", "2006-01-02T15:04:05"} {
		if t, err := time.Parse(layout, s); err == nil {
			return t.Format("2006-01-02"), true
		}
	}

	return "", false
}

// ParseDateLayout parses against one explicit layout, for adapters whose
// institution uses a format that would be ambiguous in the shared list
// (e.g. day-first dates).
func ParseDateLayout(raw, layout string) (string, bool) {
	t, err := time.Parse(layout, strings.TrimSpace(raw))
	if err != nil {
		return "", false
	}
	return t.Format("2006-01-02"), true
}
