package rubrica

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arqpeople/fopag-flow/internal/model"
)

func TestResolveMappedEarning(t *testing.T) {
	taxonomy := New(map[string]string{"1": "P_1_SALARIO_BASE"})

	res := taxonomy.Resolve("1", "whatever the payslip printed")

	assert.Equal(t, "1", res.Code)
	assert.Equal(t, "SALARIO_BASE", res.Name)
	require.NotNil(t, res.Category)
	assert.Equal(t, model.CategoryEarning, *res.Category)
}

func TestResolveMappedDeduction(t *testing.T) {
	taxonomy := New(map[string]string{"998": "D_998_INSS_FOLHA"})

	res := taxonomy.Resolve("998", "INSS")

	assert.Equal(t, "INSS_FOLHA", res.Name)
	require.NotNil(t, res.Category)
	assert.Equal(t, model.CategoryDeduction, *res.Category)
}

func TestResolveTrimsCode(t *testing.T) {
	taxonomy := New(map[string]string{"42": "P_42_PREMIO"})

	res := taxonomy.Resolve(" 42 ", "")

	assert.Equal(t, "42", res.Code)
	assert.Equal(t, "PREMIO", res.Name)
}

func TestResolveUnmappedSynthesizesName(t *testing.T) {
	taxonomy := New(nil)

	res := taxonomy.Resolve("9999", "Verba Especial 30 ")

	assert.Equal(t, "9999", res.Code)
	assert.Equal(t, "NAO_MAPEADO_VERBA_ESPECIAL", res.Name)
	assert.Nil(t, res.Category)
}

func TestResolveUnmappedStripsTrailingNoise(t *testing.T) {
	taxonomy := New(nil)

	res := taxonomy.Resolve("500", "Horas Extras 50% 10/2024 ")

	// Trailing digits, slashes and whitespace go; the % inside stays.
	assert.Equal(t, "NAO_MAPEADO_HORAS_EXTRAS_50%", res.Name)
}

func TestDefaultTableLoaded(t *testing.T) {
	taxonomy := Default()
	assert.Greater(t, taxonomy.Len(), 100)

	// Spot-check a known code.
	res := taxonomy.Resolve("12", "")
	assert.Equal(t, "13_Salario_Integral", res.Name)
	require.NotNil(t, res.Category)
	assert.Equal(t, model.CategoryEarning, *res.Category)
}

func TestNewCopiesTable(t *testing.T) {
	codes := map[string]string{"1": "P_1_SALARIO_BASE"}
	taxonomy := New(codes)

	codes["1"] = "D_1_MUTATED"

	res := taxonomy.Resolve("1", "")
	assert.Equal(t, "SALARIO_BASE", res.Name)
}
