package payslip

import (
	"context"
	"errors"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arqpeople/fopag-flow/internal/common"
)

// fakeExtractor maps document paths to canned text, failing for paths it
// does not know.
type fakeExtractor struct {
	texts map[string]string
}

func (f *fakeExtractor) ExtractText(_ context.Context, path string) (string, error) {
	text, ok := f.texts[filepath.Base(path)]
	if !ok {
		return "", errors.New("unreadable document")
	}
	return text, nil
}

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelError}))
}

func writeFakePDFs(t *testing.T, names ...string) string {
	t.Helper()
	dir := t.TempDir()
	for _, name := range names {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte("%PDF-1.4"), 0o600))
	}
	return dir
}

func TestProcessTextStandardDocument(t *testing.T) {
	p := NewProcessor(&fakeExtractor{}, testLogger())

	result := p.processText(standardDoc)

	require.Len(t, result.Summaries, 1)
	require.Len(t, result.Details, 2)
	assert.False(t, result.Details[0].IsPlaceholder())

	// Detail rows carry their block's correlation key.
	key := result.Summaries[0].CorrelationKey()
	assert.Equal(t, key, result.Details[0].CorrelationKey)
	assert.Equal(t, key, result.Details[1].CorrelationKey)
}

func TestProcessTextEmitsPlaceholder(t *testing.T) {
	doc := `Competência: 04/2024
Empr.: 7 CARLOS SILVA Situação: Trabalhando CPF: 999.888.777-66 com texto de preenchimento
Proventos: 1.500,00 Descontos: 200,00 Líquido: 1.300,00`

	p := NewProcessor(&fakeExtractor{}, testLogger())
	result := p.processText(doc)

	require.Len(t, result.Summaries, 1)
	require.Len(t, result.Details, 1)
	assert.True(t, result.Details[0].IsPlaceholder())
	assert.True(t, result.Details[0].Amount.IsZero())
	assert.Equal(t, result.Summaries[0].CorrelationKey(), result.Details[0].CorrelationKey)
}

func TestProcessTextIdempotent(t *testing.T) {
	p := NewProcessor(&fakeExtractor{}, testLogger())

	first := p.processText(standardDoc)
	second := p.processText(standardDoc)

	assert.Equal(t, first, second)
}

func TestProcessDirectorySkipsFailingDocument(t *testing.T) {
	dir := writeFakePDFs(t, "a.pdf", "broken.pdf")
	extractor := &fakeExtractor{texts: map[string]string{"a.pdf": standardDoc}}
	p := NewProcessor(extractor, testLogger())

	result, stats, err := p.ProcessDirectory(context.Background(), dir)

	require.NoError(t, err)
	assert.Len(t, result.Summaries, 1)
	assert.Len(t, result.Details, 2)
	require.Len(t, stats, 1)
	assert.Equal(t, 1, stats[0].Blocks)
}

func TestProcessDirectoryNoDocuments(t *testing.T) {
	dir := t.TempDir()
	p := NewProcessor(&fakeExtractor{}, testLogger())

	_, _, err := p.ProcessDirectory(context.Background(), dir)

	assert.ErrorIs(t, err, common.ErrNoDocuments)
}

func TestProcessDirectoryNoDataExtracted(t *testing.T) {
	dir := writeFakePDFs(t, "empty.pdf")
	extractor := &fakeExtractor{texts: map[string]string{"empty.pdf": "documento sem blocos"}}
	p := NewProcessor(extractor, testLogger())

	_, _, err := p.ProcessDirectory(context.Background(), dir)

	assert.ErrorIs(t, err, common.ErrNoDataExtracted)
}

func TestListDocumentsFiltersAndSorts(t *testing.T) {
	dir := t.TempDir()
	for _, name := range []string{"b.pdf", "a.PDF", "notes.txt"} {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte("x"), 0o600))
	}
	require.NoError(t, os.Mkdir(filepath.Join(dir, "sub.pdf"), 0o700))

	paths, err := ListDocuments(dir)

	require.NoError(t, err)
	require.Len(t, paths, 2)
	assert.Equal(t, "a.PDF", filepath.Base(paths[0]))
	assert.Equal(t, "b.pdf", filepath.Base(paths[1]))
}
