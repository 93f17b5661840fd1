package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStandardizedNameMonthly(t *testing.T) {
	text := `Recibo de Pagamento
Competência: 03/2024 Tipo de Cálculo: Mensal`

	name, ok := standardizedName("folha marco.pdf", text)

	require.True(t, ok)
	assert.Equal(t, "2024-03_Folha_Mensal_folha_marco.pdf", name)
}

func TestStandardizedNameThirteenthByCalcType(t *testing.T) {
	text := `Recibo de Pagamento
Competência: 12/2024 Tipo de Cálculo: 13º Salário`

	name, ok := standardizedName("dezembro.pdf", text)

	require.True(t, ok)
	assert.Equal(t, "2024-12_13_Salario_dezembro.pdf", name)
}

func TestStandardizedNameThirteenthByBodyText(t *testing.T) {
	text := `Recibo de Pagamento referente ao 13º salário
Competência: 12/2024`

	name, ok := standardizedName("dezembro.pdf", text)

	require.True(t, ok)
	assert.Equal(t, "2024-12_13_Salario_dezembro.pdf", name)
}

func TestStandardizedNameNoCompetency(t *testing.T) {
	_, ok := standardizedName("qualquer.pdf", "documento sem data de referência")

	assert.False(t, ok)
}

func TestRenamedPrefixDetection(t *testing.T) {
	assert.True(t, renamedPrefixRe.MatchString("2024-03_Folha_Mensal_folha.pdf"))
	assert.False(t, renamedPrefixRe.MatchString("folha marco.pdf"))
	assert.False(t, renamedPrefixRe.MatchString("relatorio_2024-03.pdf"))
}
