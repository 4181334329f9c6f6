package salary

import (
	"time"

	"go-payroll/internal/payrollcalc"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// SalaryStructure is the single wage definition of an employee. It is
// overwritten on every save and never deleted.
type SalaryStructure struct {
	ID                      uuid.UUID           `gorm:"type:uuid;primaryKey"`
	EmployeeID              uuid.UUID           `gorm:"type:uuid;not null;uniqueIndex:uq_salary_structures_employee"`
	MonthlyWage             decimal.Decimal     `gorm:"type:numeric(14,2);not null"`
	WorkingDaysPerWeek      int                 `gorm:"not null;default:5"`
	BreakHours              decimal.Decimal     `gorm:"type:numeric(5,2);not null;default:0"`
	PFEmployeeRate          decimal.Decimal     `gorm:"column:pf_employee_rate;type:numeric(5,2);not null;default:0"`
	PFEmployerRate          decimal.Decimal     `gorm:"column:pf_employer_rate;type:numeric(5,2);not null;default:0"`
	ProfessionalTaxOverride decimal.NullDecimal `gorm:"type:numeric(14,2)"`
	EmployeeName            string              `gorm:"->"`
	CreatedAt               time.Time
	UpdatedAt               time.Time
}

func (SalaryStructure) TableName() string {
	return "salary_structures"
}

// SalaryComponent is an earning or deduction line. Amount is the resolved
// value against the structure's monthly wage.
type SalaryComponent struct {
	ID              uuid.UUID                   `gorm:"type:uuid;primaryKey"`
	EmployeeID      uuid.UUID                   `gorm:"type:uuid;not null;index"`
	Name            string                      `gorm:"type:varchar(120);not null"`
	ComputationType payrollcalc.ComputationType `gorm:"type:varchar(20);not null"`
	Value           decimal.Decimal             `gorm:"type:numeric(14,2);not null"`
	IsDeduction     bool                        `gorm:"not null;default:false"`
	Amount          decimal.Decimal             `gorm:"type:numeric(14,2);not null;default:0"`
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

func (SalaryComponent) TableName() string {
	return "salary_components"
}

// CalcComponent adapts a stored component to the formula engine.
func (c SalaryComponent) CalcComponent() payrollcalc.Component {
	return payrollcalc.Component{
		Name:            c.Name,
		ComputationType: c.ComputationType,
		Value:           c.Value,
		IsDeduction:     c.IsDeduction,
	}
}
