package payslip

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arqpeople/fopag-flow/internal/model"
)

func summaryFromDoc(t *testing.T, doc string) model.PayrollSummary {
	t.Helper()
	info := ExtractDocumentInfo(doc)
	blocks := segment(doc)
	require.Len(t, blocks, 1)
	return extractSummary(blocks[0], info)
}

func TestExtractSummaryStandard(t *testing.T) {
	summary := summaryFromDoc(t, standardDoc)

	require.NotNil(t, summary.Competency)
	assert.Equal(t, time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC), *summary.Competency)
	require.NotNil(t, summary.CalculationType)
	assert.Equal(t, "Mensal", *summary.CalculationType)
	require.NotNil(t, summary.Department)
	assert.Equal(t, "Tecnologia da Informação", *summary.Department)

	require.NotNil(t, summary.BondType)
	assert.Equal(t, model.BondEmployee, *summary.BondType)
	require.NotNil(t, summary.EmployeeName)
	assert.Equal(t, "JOHN DOE", *summary.EmployeeName)
	require.NotNil(t, summary.Status)
	assert.Equal(t, "Trabalhando", *summary.Status)
	require.NotNil(t, summary.TaxID)
	assert.Equal(t, "12345678900", *summary.TaxID)
	require.NotNil(t, summary.AdmissionDate)
	assert.Equal(t, time.Date(2020, 1, 10, 0, 0, 0, 0, time.UTC), *summary.AdmissionDate)
	require.NotNil(t, summary.JobTitle)
	assert.Equal(t, "Analista de Sistemas", *summary.JobTitle)

	require.NotNil(t, summary.ContractualSalary)
	assert.Equal(t, "5000", summary.ContractualSalary.String())
	require.NotNil(t, summary.GrossEarnings)
	assert.Equal(t, "5000", summary.GrossEarnings.String())
	require.NotNil(t, summary.GrossDeductions)
	assert.Equal(t, "550", summary.GrossDeductions.String())
	require.NotNil(t, summary.NetPay)
	assert.Equal(t, "4450", summary.NetPay.String())
	require.NotNil(t, summary.SocialSecurityBase)
	assert.Equal(t, "5000", summary.SocialSecurityBase.String())
	require.NotNil(t, summary.SeveranceBase)
	assert.Equal(t, "5000", summary.SeveranceBase.String())
	require.NotNil(t, summary.SeveranceAmount)
	assert.Equal(t, "400", summary.SeveranceAmount.String())
	require.NotNil(t, summary.IncomeTaxBase)
	assert.Equal(t, "4450", summary.IncomeTaxBase.String())

	assert.Nil(t, summary.TerminationDate)
	assert.Nil(t, summary.TerminationReason)
}

func TestExtractSummaryVacation(t *testing.T) {
	summary := summaryFromDoc(t, vacationDoc)

	require.NotNil(t, summary.Competency)
	assert.Equal(t, time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC), *summary.Competency)
	assert.Nil(t, summary.CalculationType)

	require.NotNil(t, summary.EmployeeName)
	assert.Equal(t, "MARY JANE", *summary.EmployeeName)
	require.NotNil(t, summary.Status)
	assert.Equal(t, "Férias", *summary.Status)
	require.NotNil(t, summary.JobTitle)
	assert.Equal(t, "Engenheira", *summary.JobTitle)

	// Vacation layouts carry no CPF, bond or salary; those stay nil while
	// the totals come from the Férias fallbacks.
	assert.Nil(t, summary.TaxID)
	assert.Nil(t, summary.BondType)
	assert.Nil(t, summary.ContractualSalary)

	require.NotNil(t, summary.GrossEarnings)
	assert.Equal(t, "3000", summary.GrossEarnings.String())
	require.NotNil(t, summary.GrossDeductions)
	assert.Equal(t, "330", summary.GrossDeductions.String())
	require.NotNil(t, summary.NetPay)
	assert.Equal(t, "2670", summary.NetPay.String())
	require.NotNil(t, summary.SocialSecurityBase)
	assert.Equal(t, "3000", summary.SocialSecurityBase.String())
	require.NotNil(t, summary.SeveranceAmount)
	assert.Equal(t, "240", summary.SeveranceAmount.String())
	require.NotNil(t, summary.IncomeTaxBase)
	assert.Equal(t, "2670", summary.IncomeTaxBase.String())
}

func TestExtractSummaryFieldIsolation(t *testing.T) {
	// Missing salary and job title must not blank the fields around them.
	doc := `Competência: 04/2024
Empr.: 7 CARLOS SILVA Situação: Trabalhando CPF: 999.888.777-66 com texto de preenchimento
Proventos: 1.500,00 Descontos: 200,00 Líquido: 1.300,00`

	summary := summaryFromDoc(t, doc)

	assert.Nil(t, summary.ContractualSalary)
	assert.Nil(t, summary.JobTitle)
	assert.Nil(t, summary.AdmissionDate)

	require.NotNil(t, summary.EmployeeName)
	assert.Equal(t, "CARLOS SILVA", *summary.EmployeeName)
	require.NotNil(t, summary.TaxID)
	assert.Equal(t, "99988877766", *summary.TaxID)
	require.NotNil(t, summary.GrossEarnings)
	assert.Equal(t, "1500", summary.GrossEarnings.String())
	require.NotNil(t, summary.GrossDeductions)
	assert.Equal(t, "200", summary.GrossDeductions.String())
	require.NotNil(t, summary.NetPay)
	assert.Equal(t, "1300", summary.NetPay.String())
}

func TestExtractStatusUnlabeledSuffix(t *testing.T) {
	doc := `Empr.: 99 JANE ROE Trabalhando
CPF: 111.222.333-44 com bastante texto de preenchimento para o bloco`

	summary := summaryFromDoc(t, doc)

	require.NotNil(t, summary.Status)
	assert.Equal(t, "Trabalhando", *summary.Status)

	// The unlabeled status word gets absorbed into the raw name capture and
	// must be stripped back out.
	require.NotNil(t, summary.EmployeeName)
	assert.Equal(t, "JANE ROE", *summary.EmployeeName)
}

func TestExtractNameLowercaseStatusLabel(t *testing.T) {
	// Scans sometimes lowercase the "Situação:" label; it must still stop
	// the name capture.
	doc := `Empr.: 7 JOHN DOE situação: Ativo CPF: 999.888.777-66 com texto de preenchimento para o bloco`

	summary := summaryFromDoc(t, doc)

	require.NotNil(t, summary.EmployeeName)
	assert.Equal(t, "JOHN DOE", *summary.EmployeeName)
}

func TestExtractTermination(t *testing.T) {
	date, reason := extractTermination("Situação: DEMITIDO EM 15/03/2024 - Pedido de demissão\n")
	require.NotNil(t, date)
	assert.Equal(t, time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC), *date)
	require.NotNil(t, reason)
	assert.Equal(t, "Pedido de demissão", *reason)

	date, reason = extractTermination("Data Demissão: 20/05/2024")
	require.NotNil(t, date)
	assert.Equal(t, time.Date(2024, 5, 20, 0, 0, 0, 0, time.UTC), *date)
	assert.Nil(t, reason)

	date, reason = extractTermination("Situação: Trabalhando")
	assert.Nil(t, date)
	assert.Nil(t, reason)
}

func TestExtractBondContributor(t *testing.T) {
	bond := extractBond("Contr.: 55 FORNECEDOR AUTONOMO CPF: 123")
	require.NotNil(t, bond)
	assert.Equal(t, model.BondContributor, *bond)

	assert.Nil(t, extractBond("sem marcador de vínculo"))
}
