// Package hr transforms semi-structured HR API payloads into employee
// master-data records.
package hr

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/arqpeople/fopag-flow/internal/model"
	"github.com/arqpeople/fopag-flow/internal/normalize"
)

// Key probes for fields the API has renamed across versions. The first key
// that yields a value wins; nested keys are dot-free path slices.
var (
	departmentNameKeys = [][]string{{"departament", "name"}, {"department", "name"}}
	departmentIDKeys   = [][]string{{"departament", "id"}, {"department", "id"}}
	positionNameKeys   = [][]string{{"position", "name"}, {"cargo", "name"}}
	cpfKeys            = [][]string{
		{"documents", "idNumber"},
		{"documents", "cpf"},
		{"idNumber"},
		{"cpf"},
		{"document"},
	}
	educationKeys = [][]string{
		{"education"},
		{"educationLevel"},
		{"scholarship"},
		{"schooling"},
		{"escolaridade"},
	}
)

// Transform converts raw API records into employee and benefit rows. Records
// without a numeric id are dropped; everything else is carried over with
// whatever fields the payload actually had.
func Transform(records []map[string]any) ([]model.Employee, []model.Benefit) {
	employees := make([]model.Employee, 0, len(records))
	var benefits []model.Benefit

	for _, record := range records {
		id, ok := numberAt(record, "id")
		if !ok {
			continue
		}

		employees = append(employees, transformEmployee(id, record))
		benefits = append(benefits, transformBenefits(id, record)...)
	}
	return employees, benefits
}

func transformEmployee(id int64, record map[string]any) model.Employee {
	e := model.Employee{SolidesID: id}

	e.CPF = probeCPF(record)
	e.FullName = stringAt(record, "name")
	e.BirthDate = dateAt(record, "birthDate")
	e.Gender = stringAt(record, "gender")
	e.AdmissionDate = dateAt(record, "dateAdmission")
	e.DismissalDate = dateAt(record, "dateDismissal")
	e.DismissalReason = stringAt(record, "reasonDismissal")
	e.Active = boolAt(record, "active")

	e.DepartmentID = probeNumber(record, departmentIDKeys)
	e.DepartmentName = probeString(record, departmentNameKeys)
	if idVal, ok := numberAt(record, "position", "id"); ok {
		e.PositionID = &idVal
	}
	e.PositionName = probeString(record, positionNameKeys)

	e.Registration = stringAt(record, "registration")
	e.Email = stringAt(record, "email")
	e.PersonalPhone = stringAt(record, "contact", "phone")
	e.CellPhone = stringAt(record, "contact", "cellPhone")
	e.MaritalStatus = stringAt(record, "maritalStatus")
	e.Salary = moneyAt(record, "salary")
	e.WorkShift = stringAt(record, "workShift")
	e.ContractType = stringAt(record, "typeContract")
	e.EducationLevel = probeString(record, educationKeys)
	e.HierarchicalLevel = stringAt(record, "hierarchicalLevel")
	e.ManagerName = stringAt(record, "senior", "name")
	e.UnitName = stringAt(record, "unity", "name")
	e.Ethnicity = stringAt(record, "ethnicity")
	e.Disabled = boolAt(record, "disabledPerson")

	e.Street = stringAt(record, "address", "streetName")
	e.Number = stringAt(record, "address", "number")
	e.Complement = stringAt(record, "address", "additionalInformation")
	e.Neighborhood = stringAt(record, "address", "neighborhood")
	e.City = stringAt(record, "address", "city", "name")
	e.State = stringAt(record, "address", "state", "initials")
	e.ZipCode = stringAt(record, "address", "zipCode")
	e.RG = stringAt(record, "documents", "rg")
	e.PIS = stringAt(record, "documents", "pis")

	return e
}

func transformBenefits(id int64, record map[string]any) []model.Benefit {
	raw, ok := record["benefits"].([]any)
	if !ok {
		return nil
	}

	benefits := make([]model.Benefit, 0, len(raw))
	for _, item := range raw {
		entry, ok := item.(map[string]any)
		if !ok {
			continue
		}
		benefits = append(benefits, model.Benefit{
			SolidesID:      id,
			Name:           stringAt(entry, "benefitName"),
			Type:           stringAt(entry, "typeBenefit"),
			Value:          moneyAt(entry, "value"),
			Discount:       moneyAt(entry, "valueDiscount"),
			Periodicity:    stringAt(entry, "dates"),
			DiscountOption: stringAt(entry, "discountOption"),
			AppliedAs:      stringAt(entry, "benefitAppliedAs"),
		})
	}
	return benefits
}

// probeCPF tries the known CPF key variants and keeps digits only.
func probeCPF(record map[string]any) *string {
	for _, path := range cpfKeys {
		if s := stringAt(record, path...); s != nil {
			if digits := normalize.CPFDigits(*s); digits != nil {
				return digits
			}
		}
	}
	return nil
}

func probeString(record map[string]any, paths [][]string) *string {
	for _, path := range paths {
		if s := stringAt(record, path...); s != nil {
			return s
		}
	}
	return nil
}

func probeNumber(record map[string]any, paths [][]string) *int64 {
	for _, path := range paths {
		if n, ok := numberAt(record, path...); ok {
			return &n
		}
	}
	return nil
}

// valueAt walks nested maps along path; nil when any segment is missing.
func valueAt(record map[string]any, path ...string) any {
	var current any = record
	for _, key := range path {
		m, ok := current.(map[string]any)
		if !ok {
			return nil
		}
		if current, ok = m[key]; !ok {
			return nil
		}
	}
	return current
}

func stringAt(record map[string]any, path ...string) *string {
	s, ok := valueAt(record, path...).(string)
	if !ok {
		return nil
	}
	return normalize.Text(s)
}

func numberAt(record map[string]any, path ...string) (int64, bool) {
	switch v := valueAt(record, path...).(type) {
	case float64:
		return int64(v), true
	default:
		return 0, false
	}
}

func boolAt(record map[string]any, path ...string) *bool {
	b, ok := valueAt(record, path...).(bool)
	if !ok {
		return nil
	}
	return &b
}

// dateAt parses day-first dates, falling back to ISO.
func dateAt(record map[string]any, path ...string) *time.Time {
	s := stringAt(record, path...)
	if s == nil {
		return nil
	}
	return normalize.Date(*s)
}

// moneyAt parses Brazilian currency strings; JSON numbers are accepted too.
func moneyAt(record map[string]any, path ...string) *decimal.Decimal {
	switch v := valueAt(record, path...).(type) {
	case string:
		return normalize.Money(v)
	case float64:
		d := decimal.NewFromFloat(v)
		return &d
	default:
		return nil
	}
}
