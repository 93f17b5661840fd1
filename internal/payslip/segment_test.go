package payslip

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSegmentSingleBlock(t *testing.T) {
	blocks := segment(standardDoc)

	require.Len(t, blocks, 1)
	assert.True(t, strings.HasPrefix(blocks[0].text, "Empr.: 12345"))
	require.NotNil(t, blocks[0].department)
	assert.Equal(t, "Tecnologia da Informação", *blocks[0].department)
}

func TestSegmentVacationBlock(t *testing.T) {
	blocks := segment(vacationDoc)

	require.Len(t, blocks, 1)
	assert.True(t, strings.HasPrefix(blocks[0].text, "Matrícula: 445"))
	assert.Nil(t, blocks[0].department)
}

func TestSegmentNearestDepartment(t *testing.T) {
	text := `Departamento: Comercial
Empr.: 1 ALICE Situação: Trabalhando CPF: 111.111.111-11 e mais texto de preenchimento
Departamento: Financeiro
Empr.: 2 BOB Situação: Trabalhando CPF: 222.222.222-22 e mais texto de preenchimento`

	blocks := segment(text)

	require.Len(t, blocks, 2)
	require.NotNil(t, blocks[0].department)
	assert.Equal(t, "Comercial", *blocks[0].department)
	require.NotNil(t, blocks[1].department)
	assert.Equal(t, "Financeiro", *blocks[1].department)
}

func TestSegmentRejectsShortBlocks(t *testing.T) {
	// Below the minimum length even though it has the markers.
	blocks := segment("Empr.: 1 CPF: 111")

	assert.Empty(t, blocks)
}

func TestSegmentRejectsBlocksWithoutIdentity(t *testing.T) {
	text := "Empr.: 99 " + strings.Repeat("texto de rodapé sem identificação ", 5)

	blocks := segment(text)

	assert.Empty(t, blocks)
}

func TestSegmentPreambleNotARecord(t *testing.T) {
	// The span before the first marker is a candidate but fails the
	// structural filters here.
	blocks := segment(standardDoc)

	for _, b := range blocks {
		assert.NotContains(t, b.text, "FOLHA DE PAGAMENTO")
	}
}

func TestSegmentNoMarkers(t *testing.T) {
	assert.Nil(t, segment("documento sem nenhum marcador de funcionário"))
}
