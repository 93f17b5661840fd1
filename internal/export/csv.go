// Package export writes the extracted payroll data as CSV files shaped for
// spreadsheet consumers: semicolon-separated, decimal comma, UTF-8 BOM.
package export

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/gocarina/gocsv"
	"github.com/shopspring/decimal"

	"github.com/arqpeople/fopag-flow/internal/model"
)

// Output file names.
const (
	ConsolidatedFileName = "FOPAG_Consolidada_Tratada.csv"
	DetailedFileName     = "FOPAG_Detalhada_Tratada.csv"
)

// utf8BOM makes Excel detect the encoding instead of assuming Latin-1.
const utf8BOM = "\xEF\xBB\xBF"

// csvDate renders dates as ISO yyyy-mm-dd, empty when absent.
type csvDate struct {
	value *time.Time
}

func (d csvDate) MarshalCSV() (string, error) {
	if d.value == nil {
		return "", nil
	}
	return d.value.Format("2006-01-02"), nil
}

// csvMoney renders amounts with a decimal comma, empty when absent.
type csvMoney struct {
	value *decimal.Decimal
}

func (m csvMoney) MarshalCSV() (string, error) {
	if m.value == nil {
		return "", nil
	}
	return strings.Replace(m.value.String(), ".", ",", 1), nil
}

type consolidatedRow struct {
	Competency        csvDate  `csv:"competencia"`
	CalculationType   *string  `csv:"tipo_calculo"`
	Department        *string  `csv:"departamento"`
	Bond              *string  `csv:"vinculo"`
	EmployeeName      *string  `csv:"nome_funcionario"`
	Status            *string  `csv:"situacao"`
	TerminationDate   csvDate  `csv:"data_demissao"`
	TerminationReason *string  `csv:"motivo_demissao"`
	JobTitle          *string  `csv:"cargo"`
	AdmissionDate     csvDate  `csv:"data_admissao"`
	TaxID             *string  `csv:"cpf"`
	ContractualSalary csvMoney `csv:"salario_contratual"`
	GrossEarnings     csvMoney `csv:"total_proventos"`
	GrossDeductions   csvMoney `csv:"total_descontos"`
	NetPay            csvMoney `csv:"valor_liquido"`
	SSBase            csvMoney `csv:"base_inss"`
	SeveranceBase     csvMoney `csv:"base_fgts"`
	SeveranceAmount   csvMoney `csv:"valor_fgts"`
	IncomeTaxBase     csvMoney `csv:"base_irrf"`
}

type detailedRow struct {
	Competency      csvDate  `csv:"competencia"`
	CalculationType *string  `csv:"tipo_calculo"`
	Department      *string  `csv:"departamento"`
	Bond            *string  `csv:"vinculo"`
	EmployeeName    *string  `csv:"nome_funcionario"`
	TaxID           *string  `csv:"cpf"`
	Status          *string  `csv:"situacao"`
	Code            *string  `csv:"codigo_rubrica"`
	Name            *string  `csv:"nome_rubrica"`
	Category        *string  `csv:"tipo_rubrica"`
	Amount          csvMoney `csv:"valor_rubrica"`
}

// Writer writes extraction results into an output directory, creating it if
// needed.
type Writer struct {
	outputDir string
}

// NewWriter creates a CSV writer rooted at outputDir.
func NewWriter(outputDir string) *Writer {
	return &Writer{outputDir: outputDir}
}

// WriteConsolidated writes the per-employee summary file and returns its
// path.
func (w *Writer) WriteConsolidated(summaries []model.PayrollSummary) (string, error) {
	rows := make([]consolidatedRow, 0, len(summaries))
	for i := range summaries {
		s := &summaries[i]
		rows = append(rows, consolidatedRow{
			Competency:        csvDate{s.Competency},
			CalculationType:   s.CalculationType,
			Department:        s.Department,
			Bond:              bondString(s.BondType),
			EmployeeName:      s.EmployeeName,
			Status:            s.Status,
			TerminationDate:   csvDate{s.TerminationDate},
			TerminationReason: s.TerminationReason,
			JobTitle:          s.JobTitle,
			AdmissionDate:     csvDate{s.AdmissionDate},
			TaxID:             s.TaxID,
			ContractualSalary: csvMoney{s.ContractualSalary},
			GrossEarnings:     csvMoney{s.GrossEarnings},
			GrossDeductions:   csvMoney{s.GrossDeductions},
			NetPay:            csvMoney{s.NetPay},
			SSBase:            csvMoney{s.SocialSecurityBase},
			SeveranceBase:     csvMoney{s.SeveranceBase},
			SeveranceAmount:   csvMoney{s.SeveranceAmount},
			IncomeTaxBase:     csvMoney{s.IncomeTaxBase},
		})
	}
	return w.writeFile(ConsolidatedFileName, &rows)
}

// WriteDetailed writes the rubrica detail file and returns its path.
func (w *Writer) WriteDetailed(details []model.RubricaLine) (string, error) {
	rows := make([]detailedRow, 0, len(details))
	for i := range details {
		d := &details[i]
		var category *string
		if d.Category != nil {
			c := string(*d.Category)
			category = &c
		}
		amount := d.Amount
		rows = append(rows, detailedRow{
			Competency:      csvDate{d.Competency},
			CalculationType: d.CalculationType,
			Department:      d.Department,
			Bond:            bondString(d.BondType),
			EmployeeName:    d.EmployeeName,
			TaxID:           d.TaxID,
			Status:          d.Status,
			Code:            d.Code,
			Name:            d.Name,
			Category:        category,
			Amount:          csvMoney{&amount},
		})
	}
	return w.writeFile(DetailedFileName, &rows)
}

func (w *Writer) writeFile(name string, rows any) (string, error) {
	if err := os.MkdirAll(w.outputDir, 0o755); err != nil {
		return "", fmt.Errorf("creating output directory: %w", err)
	}

	path := filepath.Join(w.outputDir, name)
	f, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("creating %s: %w", name, err)
	}
	defer f.Close()

	if _, err := f.WriteString(utf8BOM); err != nil {
		return "", fmt.Errorf("writing %s: %w", name, err)
	}

	cw := csv.NewWriter(f)
	cw.Comma = ';'
	if err := gocsv.MarshalCSV(rows, gocsv.NewSafeCSVWriter(cw)); err != nil {
		return "", fmt.Errorf("writing %s: %w", name, err)
	}
	return path, nil
}

func bondString(b *model.BondType) *string {
	if b == nil {
		return nil
	}
	s := string(*b)
	return &s
}
