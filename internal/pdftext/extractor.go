// Package pdftext extracts plain text from PDF documents.
package pdftext

import (
	"context"
	"fmt"
	"strings"

	"github.com/dslipak/pdf"
)

// Extractor reads PDF files and returns their text content, page texts
// joined with newlines so page boundaries stay visible to the parsers
// downstream.
type Extractor struct{}

// NewExtractor creates a PDF text extractor.
func NewExtractor() *Extractor {
	return &Extractor{}
}

// ExtractText extracts the plain text of every page of the PDF at path.
// Malformed documents make the underlying reader panic rather than return
// an error, so the panic is converted into one here; a bad scan is a
// per-document failure, not a crash.
func (e *Extractor) ExtractText(ctx context.Context, path string) (text string, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("reading pdf %s: %v", path, r)
		}
	}()

	reader, err := pdf.Open(path)
	if err != nil {
		return "", fmt.Errorf("opening pdf %s: %w", path, err)
	}

	var pages []string
	for i := 1; i <= reader.NumPage(); i++ {
		if err := ctx.Err(); err != nil {
			return "", err
		}

		page := reader.Page(i)
		if page.V.IsNull() {
			continue
		}
		content, err := page.GetPlainText(nil)
		if err != nil {
			return "", fmt.Errorf("extracting page %d of %s: %w", i, path, err)
		}
		pages = append(pages, content)
	}

	return strings.Join(pages, "\n"), nil
}
