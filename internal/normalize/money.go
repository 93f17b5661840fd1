// Package normalize converts the locale-formatted values found on Brazilian
// payroll documents into canonical typed values. Currency strings use "." as
// thousands separator and "," as decimal separator; this convention is
// load-bearing for every caller and must not be swapped.
package normalize

import (
	"strings"

	"github.com/shopspring/decimal"
)

// Money converts a Brazilian-formatted currency string ("R$ 1.234,56",
// "1.234,56", "0,00") to a decimal value. It returns nil on empty, malformed
// or non-numeric input; it never panics.
func Money(s string) *decimal.Decimal {
	// A leading "R$" appears on some layouts and is stripped before parsing.
	s = strings.ReplaceAll(s, "R$", "")
	s = strings.TrimSpace(s)
	s = strings.ReplaceAll(s, "\u00a0", "")
	if s == "" {
		return nil
	}

	// "1.000,50" -> "1000.50"
	s = strings.ReplaceAll(s, ".", "")
	s = strings.ReplaceAll(s, ",", ".")

	d, err := decimal.NewFromString(s)
	if err != nil {
		return nil
	}
	return &d
}
