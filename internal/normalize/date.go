package normalize

import (
	"strings"
	"time"
)

// dateLayouts is the fixed priority order for date parsing. MM/YYYY resolves
// to the first day of the month.
var dateLayouts = []string{
	"02/01/2006",
	"01/2006",
	"2006-01-02",
	"02-01-2006",
	"2006/01/02",
}

// Date parses a date string, trying each supported layout in priority order.
// It returns nil if no layout matches or the input is empty/placeholder text.
func Date(s string) *time.Time {
	s = strings.TrimSpace(s)
	if s == "" || strings.EqualFold(s, "nan") || s == "None" {
		return nil
	}

	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return &t
		}
	}
	return nil
}

// Competency converts an MM/YYYY competency token into the first day of that
// pay cycle. Returns nil for empty or malformed tokens.
func Competency(token string) *time.Time {
	token = strings.TrimSpace(token)
	if token == "" {
		return nil
	}
	return Date("01/" + token)
}
