package normalize

import (
	"regexp"
	"strings"
)

// nullMarkers are the placeholder strings the source systems emit for
// missing text values.
var nullMarkers = map[string]struct{}{
	"":     {},
	"N/A":  {},
	"nan":  {},
	"None": {},
	"NULL": {},
}

var nonDigitRe = regexp.MustCompile(`\D`)

// Text trims a free-text value, removes non-breaking spaces and maps the
// usual null placeholders to nil.
func Text(s string) *string {
	s = strings.ReplaceAll(s, "\u00a0", "")
	s = strings.TrimSpace(s)
	if _, null := nullMarkers[s]; null {
		return nil
	}
	return &s
}

// CPFDigits strips everything but digits from a CPF ("123.456.789-00" ->
// "12345678900"). Returns nil when nothing remains.
func CPFDigits(s string) *string {
	digits := nonDigitRe.ReplaceAllString(s, "")
	if digits == "" {
		return nil
	}
	return &digits
}
