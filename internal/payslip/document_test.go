package payslip

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const standardDoc = `FOLHA DE PAGAMENTO
Competência: 03/2024 Cálculo: Mensal
Departamento: Tecnologia da Informação
Empr.: 12345 JOHN DOE Situação: Trabalhando CPF: 123.456.789-00 Adm: 10/01/2020
Cargo: 101 Analista de Sistemas C. Salário: 5.000,00
12 Salario Base 5.000,00 P 998 INSS 550,00 D
ND: 12345
Proventos: 5.000,00 Descontos: 550,00 Líquido: 4.450,00
Base INSS: 5.000,00 Base FGTS: 5.000,00 Valor FGTS: 400,00 Base IRRF: 4.450,00`

const vacationDoc = `RECIBO DE FÉRIAS
Período de Gozo: 01/02/2024 a 01/03/2024
Matrícula: 445 Nome do Funcionário MARY JANE Situação: Férias PIS/PASEP: 10123456
Cargo: Engenheira Data de Pagamento: 29/01/2024
9 Ferias Gozadas 30/30 3.000,00 P 812 INSS Ferias 330,00 D
Total de Proventos 3.000,00
Total de Descontos 330,00
Líquido de Férias 2.670,00
Base INSS Férias 3.000,00 Base FGTS Férias 3.000,00 Valor FGTS Férias 240,00 Base IRRF Férias 2.670,00`

func TestExtractDocumentInfoStandard(t *testing.T) {
	info := ExtractDocumentInfo(standardDoc)

	assert.Equal(t, "03/2024", info.CompetencyToken)
	require.NotNil(t, info.CalculationType)
	assert.Equal(t, "Mensal", *info.CalculationType)
}

func TestExtractDocumentInfoVacationPeriodFallback(t *testing.T) {
	info := ExtractDocumentInfo(vacationDoc)

	// No competency header: the end of the enjoyment period stands in.
	assert.Equal(t, "03/2024", info.CompetencyToken)
	assert.Nil(t, info.CalculationType)
}

func TestExtractDocumentInfoPaymentDateFallback(t *testing.T) {
	info := ExtractDocumentInfo("RECIBO\nData de Pagamento: 29/01/2024\n")

	assert.Equal(t, "01/2024", info.CompetencyToken)
}

func TestExtractDocumentInfoCompetencyWins(t *testing.T) {
	// The explicit header beats every fallback.
	text := "Competência: 05/2024\nPeríodo de Gozo: 01/02/2024 a 01/03/2024\nData de Pagamento: 29/01/2024"
	info := ExtractDocumentInfo(text)

	assert.Equal(t, "05/2024", info.CompetencyToken)
}

func TestExtractDocumentInfoNothingFound(t *testing.T) {
	info := ExtractDocumentInfo("no recognizable metadata here")

	assert.Empty(t, info.CompetencyToken)
	assert.Nil(t, info.CalculationType)
}
