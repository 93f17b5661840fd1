package export

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arqpeople/fopag-flow/internal/model"
)

func strPtr(s string) *string { return &s }

func timePtr(v time.Time) *time.Time { return &v }

func decPtr(s string) *decimal.Decimal {
	d := decimal.RequireFromString(s)
	return &d
}

func readLines(t *testing.T, path string) []string {
	t.Helper()
	raw, err := os.ReadFile(path)
	require.NoError(t, err)
	return strings.Split(strings.TrimRight(string(raw), "\n"), "\n")
}

func TestWriteConsolidated(t *testing.T) {
	bond := model.BondEmployee
	summaries := []model.PayrollSummary{{
		Competency:        timePtr(time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)),
		CalculationType:   strPtr("Mensal"),
		BondType:          &bond,
		EmployeeName:      strPtr("JOHN DOE"),
		Status:            strPtr("Trabalhando"),
		JobTitle:          strPtr("Analista de Sistemas"),
		AdmissionDate:     timePtr(time.Date(2020, 1, 10, 0, 0, 0, 0, time.UTC)),
		TaxID:             strPtr("12345678900"),
		ContractualSalary: decPtr("5000"),
		GrossEarnings:     decPtr("5123.45"),
		GrossDeductions:   decPtr("550"),
		NetPay:            decPtr("4573.45"),
	}}

	dir := t.TempDir()
	path, err := NewWriter(dir).WriteConsolidated(summaries)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, ConsolidatedFileName), path)

	raw, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(string(raw), "\xEF\xBB\xBF"), "missing UTF-8 BOM")

	lines := readLines(t, path)
	require.Len(t, lines, 2)
	assert.Equal(t,
		"\xEF\xBB\xBF"+"competencia;tipo_calculo;departamento;vinculo;nome_funcionario;"+
			"situacao;data_demissao;motivo_demissao;cargo;data_admissao;cpf;"+
			"salario_contratual;total_proventos;total_descontos;valor_liquido;"+
			"base_inss;base_fgts;valor_fgts;base_irrf",
		lines[0])
	assert.Equal(t,
		"2024-03-01;Mensal;;Empregado;JOHN DOE;Trabalhando;;;"+
			"Analista de Sistemas;2020-01-10;12345678900;5000;5123,45;550;4573,45;;;;",
		lines[1])
}

func TestWriteDetailed(t *testing.T) {
	earning := model.CategoryEarning
	details := []model.RubricaLine{
		{
			CorrelationKey: model.CorrelationKey{
				Competency:   timePtr(time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)),
				EmployeeName: strPtr("JOHN DOE"),
				TaxID:        strPtr("12345678900"),
			},
			Code:     strPtr("12"),
			Name:     strPtr("13_Salario_Integral"),
			Category: &earning,
			Amount:   decimal.RequireFromString("5000.99"),
		},
		{
			// Placeholder row for a block with no line items.
			CorrelationKey: model.CorrelationKey{
				EmployeeName: strPtr("MARY JANE"),
			},
			Amount: decimal.Zero,
		},
	}

	dir := t.TempDir()
	path, err := NewWriter(dir).WriteDetailed(details)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, DetailedFileName), path)

	lines := readLines(t, path)
	require.Len(t, lines, 3)
	assert.Equal(t,
		"\xEF\xBB\xBF"+"competencia;tipo_calculo;departamento;vinculo;nome_funcionario;"+
			"cpf;situacao;codigo_rubrica;nome_rubrica;tipo_rubrica;valor_rubrica",
		lines[0])
	assert.Equal(t,
		"2024-03-01;;;;JOHN DOE;12345678900;;12;13_Salario_Integral;Provento;5000,99",
		lines[1])
	assert.Equal(t, ";;;;MARY JANE;;;;;;0", lines[2])
}

func TestWriteCreatesOutputDirectory(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested", "output")

	path, err := NewWriter(dir).WriteConsolidated(nil)
	require.NoError(t, err)

	lines := readLines(t, path)
	require.Len(t, lines, 1)
	assert.Contains(t, lines[0], "competencia")
}
