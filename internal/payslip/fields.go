package payslip

import (
	"regexp"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/arqpeople/fopag-flow/internal/model"
	"github.com/arqpeople/fopag-flow/internal/normalize"
)

// Each scalar field is extracted by its own ordered attempt chain. A miss on
// one field never blanks another: the primary pattern targets the standard
// payslip layout, the fallback targets the vacation-settlement layout, and
// every field independently defaults to nil when both miss.
type fieldAttempts []*regexp.Regexp

// find returns the first capture group of the first pattern that matches.
func (a fieldAttempts) find(text string) *string {
	for _, re := range a {
		if m := re.FindStringSubmatch(text); m != nil {
			value := strings.TrimSpace(m[1])
			return &value
		}
	}
	return nil
}

var (
	bondRe = regexp.MustCompile(`(Empr|Contr)\.?`)

	statusLabeledRe   = regexp.MustCompile(`Situação:\s*([^\n\r]+)`)
	statusTruncateRe  = regexp.MustCompile(`\s+(?:CPF:|Adm:|PIS/PASEP:|Matrícula:)`)
	headerMarkerRe    = regexp.MustCompile(`(?i)(?:Empr|Contr)\.?\s*:\s*\d+`)
	statusUnlabeledRe = regexp.MustCompile(`(?i)\s(Trabalhando|Afastado|Férias|Demitido)\s*$`)

	terminationFullRe = regexp.MustCompile(`(?i)DEMITIDO EM\s+(\d{2}/\d{2}/\d{4})\s*-\s*([^\n]*)`)
	terminationDateRe = regexp.MustCompile(`(?i)(?:Data Demissão|Demissão):\s*(\d{2}/\d{2}/\d{4})`)

	nameLeadRe         = regexp.MustCompile(`(?i)(?:Empr|Contr)\.?\s*:\s*\d+\s+`)
	nameStopRe         = regexp.MustCompile(`(?i)\s*Situação:|\s*CPF:|\s*Adm:|\n`)
	nameVacationLeadRe = regexp.MustCompile(`(?i)Nome do Funcionário\s+`)
	nameVacationStopRe = regexp.MustCompile(`(?i)\s*Situação:|\s*PIS/PASEP:|\s*Matrícula:|\n`)
	trailingLabelRe    = regexp.MustCompile(`[^\s]+:\s*$`)

	taxIDRe     = regexp.MustCompile(`CPF:\s*([\d.\-]+)`)
	admissionRe = regexp.MustCompile(`Adm?:\s*(\d{2}/\d{2}/\d{4})`)

	jobTitleLeadRe = regexp.MustCompile(`Cargo:\s*\d+\s+`)
	// С is U+0421: dense extractions sometimes mangle the "C." column that
	// follows the job title.
	jobTitleStopRe         = regexp.MustCompile(`\s+Salário:|\s+C\.|С\.`)
	jobTitleVacationLeadRe = regexp.MustCompile(`Cargo:\s+`)
	jobTitleVacationStopRe = regexp.MustCompile(`\s+Data de Pagamento:|\n`)

	salaryRe = regexp.MustCompile(`Salário:\s*([\d.,]+)`)
)

// Footer totals: colon-labeled on the standard layout, bare "... Férias"
// labels on the vacation layout.
var (
	grossEarningsAttempts = fieldAttempts{
		regexp.MustCompile(`(?i)Proventos:\s*([\d.,]+)`),
		regexp.MustCompile(`(?is)Total de Proventos\s+([\d.,]+)`),
	}
	grossDeductionsAttempts = fieldAttempts{
		regexp.MustCompile(`(?i)Descontos:\s*([\d.,]+)`),
		regexp.MustCompile(`(?is)Total de Descontos\s+([\d.,]+)`),
	}
	netPayAttempts = fieldAttempts{
		regexp.MustCompile(`(?i)L[íi]quido:\s*([\d.,]+)`),
		regexp.MustCompile(`(?is)L[íi]quido de F[ée]rias\s+([\d.,]+)`),
	}
	ssBaseAttempts = fieldAttempts{
		regexp.MustCompile(`(?i)Base INSS:\s*([\d.,]+)`),
		regexp.MustCompile(`(?is)Base INSS F[ée]rias\s+([\d.,]+)`),
	}
	severanceBaseAttempts = fieldAttempts{
		regexp.MustCompile(`(?i)Base FGTS:\s*([\d.,]+)`),
		regexp.MustCompile(`(?is)Base FGTS F[ée]rias\s+([\d.,]+)`),
	}
	severanceAmountAttempts = fieldAttempts{
		regexp.MustCompile(`(?i)Valor FGTS:\s*([\d.,]+)`),
		regexp.MustCompile(`(?is)Valor FGTS F[ée]rias\s+([\d.,]+)`),
	}
	incomeTaxBaseAttempts = fieldAttempts{
		regexp.MustCompile(`(?i)Base IRRF:\s*([\d.,]+)`),
		regexp.MustCompile(`(?is)Base IRRF F[ée]rias\s+([\d.,]+)`),
	}
)

// extractSummary converts one employee block into a consolidated record.
// All fields start nil; extraction only ever fills them in, so partial
// failures leave the rest of the record intact.
func extractSummary(b block, info model.DocumentInfo) model.PayrollSummary {
	summary := model.PayrollSummary{
		Competency:      normalize.Competency(info.CompetencyToken),
		CalculationType: info.CalculationType,
		Department:      b.department,
	}

	summary.BondType = extractBond(b.text)
	summary.Status = extractStatus(b.text)
	summary.TerminationDate, summary.TerminationReason = extractTermination(b.text)
	summary.EmployeeName = extractName(b.text, summary.Status)

	if m := taxIDRe.FindStringSubmatch(b.text); m != nil {
		// Digits only; the warehouse joins people by CPF.
		summary.TaxID = normalize.CPFDigits(m[1])
	}
	if m := admissionRe.FindStringSubmatch(b.text); m != nil {
		summary.AdmissionDate = normalize.Date(m[1])
	}

	summary.JobTitle = extractJobTitle(b.text)

	if m := salaryRe.FindStringSubmatch(b.text); m != nil {
		summary.ContractualSalary = normalize.Money(m[1])
	}

	summary.GrossEarnings = findMoney(b.text, grossEarningsAttempts)
	summary.GrossDeductions = findMoney(b.text, grossDeductionsAttempts)
	summary.NetPay = findMoney(b.text, netPayAttempts)
	summary.SocialSecurityBase = findMoney(b.text, ssBaseAttempts)
	summary.SeveranceBase = findMoney(b.text, severanceBaseAttempts)
	summary.SeveranceAmount = findMoney(b.text, severanceAmountAttempts)
	summary.IncomeTaxBase = findMoney(b.text, incomeTaxBaseAttempts)

	return summary
}

func extractBond(text string) *model.BondType {
	m := bondRe.FindStringSubmatch(text)
	if m == nil {
		return nil
	}
	bond := model.BondContributor
	if strings.Contains(m[0], "Empr") {
		bond = model.BondEmployee
	}
	return &bond
}

// extractStatus prefers the labeled "Situação:" field, truncated at the next
// known label so it cannot bleed into adjacent fields. The vacation layout
// carries an unlabeled status word at the end of the header line instead.
func extractStatus(text string) *string {
	if m := statusLabeledRe.FindStringSubmatch(text); m != nil {
		value := m[1]
		if loc := statusTruncateRe.FindStringIndex(value); loc != nil {
			value = value[:loc[0]]
		}
		value = strings.TrimSpace(value)
		return &value
	}

	marker := headerMarkerRe.FindStringIndex(text)
	if marker == nil {
		return nil
	}
	chunk := text[marker[0]:]
	if end := earliestIndex(chunk, "\n", "CPF:"); end >= 0 {
		chunk = chunk[:end]
	} else {
		return nil
	}
	if m := statusUnlabeledRe.FindStringSubmatch(chunk); m != nil {
		value := m[1]
		return &value
	}
	return nil
}

func extractTermination(text string) (date *time.Time, reason *string) {
	if m := terminationFullRe.FindStringSubmatch(text); m != nil {
		r := strings.TrimSpace(m[2])
		return normalize.Date(m[1]), &r
	}
	if m := terminationDateRe.FindStringSubmatch(text); m != nil {
		return normalize.Date(m[1]), nil
	}
	return nil, nil
}

// extractName captures the text between the leading block marker and the
// next known label or line break. When the block's status word was detected
// without a label it tends to get absorbed into the name, so a matching
// suffix is stripped, as is any trailing partial label fragment ("Cargo:").
func extractName(text string, status *string) *string {
	name := captureUntil(text, nameLeadRe, nameStopRe)
	if name == nil {
		name = captureUntil(text, nameVacationLeadRe, nameVacationStopRe)
	}
	if name == nil {
		return nil
	}

	cleaned := *name
	if status != nil && strings.HasSuffix(strings.ToLower(cleaned), strings.ToLower(*status)) {
		cleaned = strings.TrimSpace(cleaned[:len(cleaned)-len(*status)])
	}
	cleaned = strings.TrimSpace(trailingLabelRe.ReplaceAllString(cleaned, ""))
	return &cleaned
}

func extractJobTitle(text string) *string {
	if title := captureUntil(text, jobTitleLeadRe, jobTitleStopRe); title != nil {
		return title
	}
	return captureUntil(text, jobTitleVacationLeadRe, jobTitleVacationStopRe)
}

// captureUntil captures the span between the end of the lead pattern's first
// match and the earliest following stop match. Both boundaries are required;
// embedded newlines collapse to spaces.
func captureUntil(text string, lead, stop *regexp.Regexp) *string {
	loc := lead.FindStringIndex(text)
	if loc == nil {
		return nil
	}
	rest := text[loc[1]:]
	s := stop.FindStringIndex(rest)
	if s == nil {
		return nil
	}
	captured := strings.TrimSpace(strings.ReplaceAll(rest[:s[0]], "\n", " "))
	return &captured
}

// earliestIndex returns the smallest index of any marker in s, or -1.
func earliestIndex(s string, markers ...string) int {
	best := -1
	for _, marker := range markers {
		if idx := strings.Index(s, marker); idx >= 0 && (best == -1 || idx < best) {
			best = idx
		}
	}
	return best
}

func findMoney(text string, attempts fieldAttempts) *decimal.Decimal {
	raw := attempts.find(text)
	if raw == nil {
		return nil
	}
	return normalize.Money(*raw)
}
