package payslip

import (
	"regexp"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/arqpeople/fopag-flow/internal/model"
	"github.com/arqpeople/fopag-flow/internal/normalize"
	"github.com/arqpeople/fopag-flow/internal/rubrica"
)

// Table boundaries within a block. The table starts at the identity marker
// and ends at the net-deduction code line on the standard layout, or at the
// vacation totals on the vacation layout.
var tableEndMarkers = []string{"Total de Proventos", "Base INSS Férias"}

var (
	digitRe = regexp.MustCompile(`\d`)

	// A row is (code, label, amount, P/D flag); the vacation layout carries
	// an extra percentage/ratio column between label and amount. A flag is
	// only accepted when followed by the next rubrica code or the end of the
	// line, which is what keeps flags inside labels from terminating a row
	// early.
	rowCodeRe      = regexp.MustCompile(`(\d+)\s+`)
	standardPairRe = regexp.MustCompile(`\s+([\d.,]+)\s+([PD])`)
	vacationPairRe = regexp.MustCompile(`\s+[\d.,/%]+\s+([\d.,]+)\s+([PD])`)
	nextCodeTailRe = regexp.MustCompile(`^\s+\d{2}`)
)

// rowMatch is one tokenized rubrica row before taxonomy resolution.
type rowMatch struct {
	code   string
	label  string
	amount string
	flag   string
}

// extractLineItems parses the earnings/deductions table of one block. Rows
// whose amount is unparseable or exactly zero are discarded; they carry no
// reporting value. The caller is responsible for emitting the placeholder
// row when nothing survives.
func extractLineItems(b block, key model.CorrelationKey, taxonomy *rubrica.Taxonomy) []model.RubricaLine {
	region, ok := tableRegion(b.text)
	if !ok {
		return nil
	}

	var items []model.RubricaLine
	lines := strings.Split(region, "\n")
	if len(lines) > 0 {
		// The first line still belongs to the block header.
		lines = lines[1:]
	}

	for _, line := range lines {
		if !digitRe.MatchString(line) {
			continue
		}

		for _, row := range selectRows(line) {
			amount := normalize.Money(row.amount)
			if amount == nil || amount.IsZero() {
				continue
			}

			resolution := taxonomy.Resolve(row.code, row.label)
			category := reconcileCategory(resolution.Category, row.flag)

			items = append(items, model.RubricaLine{
				CorrelationKey: key,
				Code:           &resolution.Code,
				Name:           &resolution.Name,
				Category:       &category,
				Amount:         *amount,
			})
		}
	}
	return items
}

// placeholderLine is the synthetic detail row emitted for blocks whose table
// yields no line items, preserving one-row-per-employee-per-competency in
// the detail table.
func placeholderLine(key model.CorrelationKey) model.RubricaLine {
	return model.RubricaLine{CorrelationKey: key, Amount: decimal.Zero}
}

// tableRegion locates the line-item table inside a block. Both boundaries
// are required; without them no line items are attempted.
func tableRegion(text string) (string, bool) {
	start := strings.Index(text, "CPF:")
	if start == -1 {
		start = strings.Index(text, "Matrícula:")
	}

	end := strings.Index(text, "\nND:")
	if end == -1 {
		for _, marker := range tableEndMarkers {
			if end = strings.Index(text, marker); end != -1 {
				break
			}
		}
	}

	if start == -1 || end == -1 {
		return "", false
	}
	if end < start {
		return "", true
	}
	return text[start:end], true
}

// selectRows applies both row tokenizers to a line and keeps whichever
// produced strictly more matches; ties favor the standard layout. A single
// physical line can hold several concatenated rubrica entries, and the two
// layouts are not reliably distinguishable except by match count.
func selectRows(line string) []rowMatch {
	standard := tokenizeRows(line, standardPairRe)
	vacation := tokenizeRows(line, vacationPairRe)
	if len(vacation) > len(standard) {
		return vacation
	}
	return standard
}

// tokenizeRows scans a line for (code, label, amount, flag) rows. For each
// code candidate it takes the earliest amount/flag pair whose flag is
// followed by another code or the end of the line; when no pair validates,
// the scan resumes one character past the candidate so codes embedded in a
// previous label are still considered.
func tokenizeRows(line string, pairRe *regexp.Regexp) []rowMatch {
	var rows []rowMatch
	pos := 0

	for pos < len(line) {
		cm := rowCodeRe.FindStringSubmatchIndex(line[pos:])
		if cm == nil {
			break
		}
		codeStart := pos + cm[2]
		codeEnd := pos + cm[3]
		labelStart := pos + cm[1]

		matched := false
		searchFrom := labelStart
		for searchFrom < len(line) {
			pm := pairRe.FindStringSubmatchIndex(line[searchFrom:])
			if pm == nil {
				break
			}
			pairStart := searchFrom + pm[0]
			pairEnd := searchFrom + pm[1]
			tail := line[pairEnd:]

			if tail == "" || nextCodeTailRe.MatchString(tail) {
				rows = append(rows, rowMatch{
					code:   line[codeStart:codeEnd],
					label:  strings.TrimSpace(line[labelStart:pairStart]),
					amount: line[searchFrom+pm[2] : searchFrom+pm[3]],
					flag:   line[searchFrom+pm[4] : searchFrom+pm[5]],
				})
				pos = pairEnd
				matched = true
				break
			}
			searchFrom = pairStart + 1
		}

		if !matched {
			pos = codeStart + 1
		}
	}
	return rows
}

// reconcileCategory reconciles the taxonomy category against the row's
// explicit P/D flag. The printed flag is more trustworthy than the static
// table: on disagreement, and for unmapped codes, the flag wins.
func reconcileCategory(mapped *model.RubricaCategory, flag string) model.RubricaCategory {
	detected := model.CategoryDeduction
	if flag == "P" {
		detected = model.CategoryEarning
	}
	if mapped != nil && *mapped == detected {
		return *mapped
	}
	return detected
}
