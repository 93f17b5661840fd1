// Package service defines the interfaces for all application services.
package service

import (
	"context"
	"time"

	"github.com/arqpeople/fopag-flow/internal/model"
)

// TextExtractor converts a document file into one plain-text blob, page
// texts joined with newline separators.
type TextExtractor interface {
	ExtractText(ctx context.Context, path string) (string, error)
}

// HRClient fetches employee master data from the HR system. Each record is a
// semi-structured key-value document as returned by the API.
type HRClient interface {
	FetchEmployees(ctx context.Context) ([]map[string]any, error)
}

// Warehouse is the relational load collaborator. Implementations perform
// set-based merge-by-natural-key with last-write-wins semantics: CPF for
// people, competency for payroll facts (an entire competency period's fact
// rows are replaced atomically before re-inserting).
type Warehouse interface {
	EnsureSchema(ctx context.Context) error
	LoadCalendar(ctx context.Context) error
	LoadPayroll(ctx context.Context, summaries []model.PayrollSummary, details []model.RubricaLine) error
	LoadEmployees(ctx context.Context, employees []model.Employee, benefits []model.Benefit) error
	MarkTransferred(ctx context.Context) error
	Close()
}

// RetryOptions configures retry behavior for operations.
type RetryOptions struct {
	MaxAttempts  int
	InitialDelay time.Duration
	MaxDelay     time.Duration
	Multiplier   float64
}
