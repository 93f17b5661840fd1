package payslip

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/arqpeople/fopag-flow/internal/common"
	"github.com/arqpeople/fopag-flow/internal/model"
	"github.com/arqpeople/fopag-flow/internal/rubrica"
	"github.com/arqpeople/fopag-flow/internal/service"
)

// Result aggregates the extraction output of one or more documents.
type Result struct {
	Summaries []model.PayrollSummary
	Details   []model.RubricaLine
}

// DocumentStats reports per-document extraction counts.
type DocumentStats struct {
	Path      string
	Blocks    int
	LineItems int
}

// Processor drives the extraction pipeline: text extraction, block
// segmentation, field extraction, and line-item parsing.
type Processor struct {
	extractor service.TextExtractor
	taxonomy  *rubrica.Taxonomy
	logger    *slog.Logger
}

// NewProcessor creates a processor using the given text extractor and the
// built-in rubrica taxonomy.
func NewProcessor(extractor service.TextExtractor, logger *slog.Logger) *Processor {
	return &Processor{
		extractor: extractor,
		taxonomy:  rubrica.Default(),
		logger:    logger,
	}
}

// ProcessDirectory extracts every PDF in dir, in lexical order. A document
// that fails to parse is logged and skipped; one bad scan must not sink the
// batch. ErrNoDocuments is returned when the directory holds no PDFs and
// ErrNoDataExtracted when no document yielded any block.
func (p *Processor) ProcessDirectory(ctx context.Context, dir string) (*Result, []DocumentStats, error) {
	paths, err := ListDocuments(dir)
	if err != nil {
		return nil, nil, err
	}
	if len(paths) == 0 {
		return nil, nil, fmt.Errorf("%w in %s", common.ErrNoDocuments, dir)
	}

	result := &Result{}
	stats := make([]DocumentStats, 0, len(paths))
	for _, path := range paths {
		if err := ctx.Err(); err != nil {
			return nil, nil, err
		}

		docResult, err := p.ProcessDocument(ctx, path)
		if err != nil {
			p.logger.Error("document extraction failed",
				"path", path,
				"error", err)
			continue
		}

		result.Summaries = append(result.Summaries, docResult.Summaries...)
		result.Details = append(result.Details, docResult.Details...)
		stats = append(stats, DocumentStats{
			Path:      path,
			Blocks:    len(docResult.Summaries),
			LineItems: len(docResult.Details),
		})
		p.logger.Info("document processed",
			"path", filepath.Base(path),
			"blocks", len(docResult.Summaries),
			"line_items", len(docResult.Details))
	}

	if len(result.Summaries) == 0 {
		return nil, nil, common.ErrNoDataExtracted
	}
	return result, stats, nil
}

// ProcessDocument extracts one document.
func (p *Processor) ProcessDocument(ctx context.Context, path string) (*Result, error) {
	text, err := p.extractor.ExtractText(ctx, path)
	if err != nil {
		return nil, fmt.Errorf("extracting text from %s: %w", path, err)
	}
	return p.processText(text), nil
}

// processText runs the block pipeline on a document's full text. Document
// metadata is extracted once and stamped onto every block's records.
func (p *Processor) processText(text string) *Result {
	info := ExtractDocumentInfo(text)
	result := &Result{}

	for _, b := range segment(text) {
		summary := extractSummary(b, info)
		result.Summaries = append(result.Summaries, summary)

		key := summary.CorrelationKey()
		items := extractLineItems(b, key, p.taxonomy)
		if len(items) == 0 {
			items = []model.RubricaLine{placeholderLine(key)}
		}
		result.Details = append(result.Details, items...)
	}
	return result
}

// ListDocuments returns the PDF files in dir, sorted lexically. The match is
// case-insensitive on the extension.
func ListDocuments(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("reading document directory: %w", err)
	}

	var paths []string
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		if strings.EqualFold(filepath.Ext(entry.Name()), ".pdf") {
			paths = append(paths, filepath.Join(dir, entry.Name()))
		}
	}
	sort.Strings(paths)
	return paths, nil
}
