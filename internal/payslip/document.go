// Package payslip implements the payroll document extraction engine: it
// splits a payslip PDF's text into per-employee blocks and converts each
// block into one consolidated summary record plus zero-or-more rubrica
// detail rows.
package payslip

import (
	"regexp"
	"strings"

	"github.com/arqpeople/fopag-flow/internal/model"
)

// Document-level metadata patterns, tried in priority order. Every fallback
// still yields an MM/YYYY-shaped token reusable as the competency.
var (
	competencyRe = regexp.MustCompile(`(?i)(?:Competência|Competencia|Referência|Referencia|Ref\.?)\s*[:.]?\s*(\d{2}/\d{4})`)
	calcTypeRe   = regexp.MustCompile(`(?i)Cálculo\s*:\s*(.+)`)

	// Vacation settlements carry no competency header; the end of the
	// enjoyment period stands in for it.
	vacationPeriodRe = regexp.MustCompile(`(?is)(?:Período de Gozo|Gozo).*?\d{2}/\d{2}/\d{4}\s+a\s+\d{2}/(\d{2}/\d{4})`)
	paymentDateRe    = regexp.MustCompile(`(?i)(?:Data de Pagamento|Pagamento|Data)[:\s]+\d{2}/(\d{2}/\d{4})`)
)

// ExtractDocumentInfo pulls the competency period and calculation-type label
// from a document's full text. Both are extracted once per document, not per
// block.
func ExtractDocumentInfo(text string) model.DocumentInfo {
	var info model.DocumentInfo

	if m := competencyRe.FindStringSubmatch(text); m != nil {
		info.CompetencyToken = strings.TrimSpace(m[1])
	} else if m := vacationPeriodRe.FindStringSubmatch(text); m != nil {
		info.CompetencyToken = strings.TrimSpace(m[1])
	} else if m := paymentDateRe.FindStringSubmatch(text); m != nil {
		info.CompetencyToken = strings.TrimSpace(m[1])
	}

	if m := calcTypeRe.FindStringSubmatch(text); m != nil {
		calc := strings.TrimSpace(m[1])
		info.CalculationType = &calc
	}

	return info
}
