package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// Employee is one HR master-data record assembled from the Solides API
// detail payload. Field availability varies per record; anything the API
// omits stays nil.
type Employee struct {
	SolidesID         int64
	CPF               *string
	FullName          *string
	BirthDate         *time.Time
	Gender            *string
	AdmissionDate     *time.Time
	DismissalDate     *time.Time
	DismissalReason   *string
	Active            *bool
	DepartmentID      *int64
	DepartmentName    *string
	PositionID        *int64
	PositionName      *string
	Registration      *string
	Email             *string
	PersonalPhone     *string
	CellPhone         *string
	MaritalStatus     *string
	Salary            *decimal.Decimal
	WorkShift         *string
	ContractType      *string
	EducationLevel    *string
	HierarchicalLevel *string
	ManagerName       *string
	UnitName          *string
	Ethnicity         *string
	Disabled          *bool
	Street            *string
	Number            *string
	Complement        *string
	Neighborhood      *string
	City              *string
	State             *string
	ZipCode           *string
	RG                *string
	PIS               *string
}

// Benefit is one row of the benefits array attached to a Solides employee
// detail record.
type Benefit struct {
	SolidesID      int64
	Name           *string
	Type           *string
	Value          *decimal.Decimal
	Discount       *decimal.Decimal
	Periodicity    *string
	DiscountOption *string
	AppliedAs      *string
}
