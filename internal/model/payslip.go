// Package model defines the value objects produced by the payroll pipeline.
package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// BondType identifies the employment relationship printed on a payslip block.
type BondType string

// Bond types found on payslips.
const (
	BondEmployee    BondType = "Empregado"
	BondContributor BondType = "Contribuinte"
)

// RubricaCategory classifies an earnings/deduction line item.
type RubricaCategory string

// Rubrica categories. A nil category means the line is a placeholder row.
const (
	CategoryEarning   RubricaCategory = "Provento"
	CategoryDeduction RubricaCategory = "Desconto"
)

// DocumentInfo holds the document-level metadata extracted once per payslip
// PDF: the competency period (as the raw MM/YYYY token) and the calculation
// type label ("Mensal", "13º Salário", "Férias", ...).
type DocumentInfo struct {
	CompetencyToken string
	CalculationType *string
}

// PayrollSummary is one consolidated row per employee block. Every field is
// extracted independently, so any of them can be nil without affecting the
// others.
type PayrollSummary struct {
	Competency         *time.Time
	CalculationType    *string
	Department         *string
	BondType           *BondType
	EmployeeName       *string
	Status             *string
	TerminationDate    *time.Time
	TerminationReason  *string
	JobTitle           *string
	AdmissionDate      *time.Time
	TaxID              *string
	ContractualSalary  *decimal.Decimal
	GrossEarnings      *decimal.Decimal
	GrossDeductions    *decimal.Decimal
	NetPay             *decimal.Decimal
	SocialSecurityBase *decimal.Decimal
	SeveranceBase      *decimal.Decimal
	SeveranceAmount    *decimal.Decimal
	IncomeTaxBase      *decimal.Decimal
}

// CorrelationKey ties a detail row back to its employee block.
func (s *PayrollSummary) CorrelationKey() CorrelationKey {
	return CorrelationKey{
		Competency:      s.Competency,
		CalculationType: s.CalculationType,
		Department:      s.Department,
		BondType:        s.BondType,
		EmployeeName:    s.EmployeeName,
		TaxID:           s.TaxID,
		Status:          s.Status,
	}
}

// CorrelationKey identifies the employee block a rubrica line belongs to.
type CorrelationKey struct {
	Competency      *time.Time
	CalculationType *string
	Department      *string
	BondType        *BondType
	EmployeeName    *string
	TaxID           *string
	Status          *string
}

// RubricaLine is one detail row: a single earnings/deduction line item, or a
// placeholder (nil code/name/category, zero amount) when a block's table
// yields no items.
type RubricaLine struct {
	CorrelationKey
	Code     *string
	Name     *string
	Category *RubricaCategory
	Amount   decimal.Decimal
}

// IsPlaceholder reports whether the line is the synthetic row emitted for
// blocks with an empty line-item table.
func (r *RubricaLine) IsPlaceholder() bool {
	return r.Code == nil && r.Name == nil && r.Category == nil
}
