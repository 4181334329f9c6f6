package payroll

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// PayRun is one payroll cycle. A calendar month has at most one.
type PayRun struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey"`
	PeriodYear  int       `gorm:"not null;uniqueIndex:uq_payruns_period"`
	PeriodMonth int       `gorm:"not null;uniqueIndex:uq_payruns_period"`
	CreatedAt   time.Time
}

func (PayRun) TableName() string {
	return "payruns"
}

func (p PayRun) Period() time.Month {
	return time.Month(p.PeriodMonth)
}

// Payslip is created once per employee per pay run and is immutable apart
// from the employer_cost backfill. EmployerCost is NULL on rows written
// before that column existed.
type Payslip struct {
	ID              uuid.UUID           `gorm:"type:uuid;primaryKey"`
	EmployeeID      uuid.UUID           `gorm:"type:uuid;not null;uniqueIndex:uq_payslips_employee_payrun"`
	PayRunID        uuid.UUID           `gorm:"column:payrun_id;type:uuid;not null;uniqueIndex:uq_payslips_employee_payrun"`
	TotalWorkedDays decimal.Decimal     `gorm:"type:numeric(5,2);not null;default:0"`
	TotalLeaves     decimal.Decimal     `gorm:"type:numeric(5,2);not null;default:0"`
	PayableDays     decimal.Decimal     `gorm:"type:numeric(5,2);not null;default:0"`
	BasicWage       decimal.Decimal     `gorm:"type:numeric(14,2);not null"`
	GrossWage       decimal.Decimal     `gorm:"type:numeric(14,2);not null"`
	NetWage         decimal.Decimal     `gorm:"type:numeric(14,2);not null"`
	EmployerCost    decimal.NullDecimal `gorm:"type:numeric(14,2)"`
	EmployeeName    string              `gorm:"->"`
	CreatedAt       time.Time
	UpdatedAt       time.Time

	PayRun     *PayRun            `gorm:"foreignKey:PayRunID"`
	Components []PayslipComponent `gorm:"foreignKey:PayslipID"`
}

func (Payslip) TableName() string {
	return "payslips"
}

type PayslipComponent struct {
	ID            uuid.UUID       `gorm:"type:uuid;primaryKey"`
	PayslipID     uuid.UUID       `gorm:"type:uuid;not null;index"`
	ComponentName string          `gorm:"type:varchar(120);not null"`
	Amount        decimal.Decimal `gorm:"type:numeric(14,2);not null"`
	IsDeduction   bool            `gorm:"not null;default:false"`
	CreatedAt     time.Time
}

func (PayslipComponent) TableName() string {
	return "payslip_components"
}

// PayslipSample is the row shape read by the verification report.
type PayslipSample struct {
	ID              string
	EmployeeName    string
	BasicWage       decimal.Decimal
	GrossWage       decimal.Decimal
	NetWage         decimal.Decimal
	EmployerCost    decimal.NullDecimal
	TotalWorkedDays decimal.Decimal
	TotalLeaves     decimal.Decimal
	PayableDays     decimal.Decimal
}
