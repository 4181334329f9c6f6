package salary

import "github.com/shopspring/decimal"

type UpsertStructureRequest struct {
	MonthlyWage             *decimal.Decimal `json:"monthly_wage" binding:"required"`
	WorkingDaysPerWeek      int              `json:"working_days_per_week" binding:"omitempty,min=1,max=7"`
	BreakHours              *decimal.Decimal `json:"break_hours"`
	PFEmployeeRate          *decimal.Decimal `json:"pf_employee_rate"`
	PFEmployerRate          *decimal.Decimal `json:"pf_employer_rate"`
	ProfessionalTaxOverride *decimal.Decimal `json:"professional_tax_override"`
}

type CreateComponentRequest struct {
	Name            string           `json:"name" binding:"required"`
	ComputationType string           `json:"computation_type" binding:"omitempty,oneof=fixed percentage"`
	Value           *decimal.Decimal `json:"value" binding:"required"`
	IsDeduction     bool             `json:"is_deduction"`
}

type UpdateComponentRequest struct {
	Name            *string          `json:"name" binding:"omitempty,min=1"`
	ComputationType *string          `json:"computation_type" binding:"omitempty,oneof=fixed percentage"`
	Value           *decimal.Decimal `json:"value"`
	IsDeduction     *bool            `json:"is_deduction"`
}

type ListStructuresRequest struct {
	Page     int `form:"page" binding:"omitempty,min=1"`
	PageSize int `form:"pageSize" binding:"omitempty,min=1,max=100"`
}

type StructureResponse struct {
	ID                      string           `json:"id"`
	EmployeeID              string           `json:"employee_id"`
	EmployeeName            string           `json:"employee_name,omitempty"`
	MonthlyWage             decimal.Decimal  `json:"monthly_wage"`
	WorkingDaysPerWeek      int              `json:"working_days_per_week"`
	BreakHours              decimal.Decimal  `json:"break_hours"`
	PFEmployeeRate          decimal.Decimal  `json:"pf_employee_rate"`
	PFEmployerRate          decimal.Decimal  `json:"pf_employer_rate"`
	ProfessionalTaxOverride *decimal.Decimal `json:"professional_tax_override"`
	UpdatedAt               string           `json:"updated_at,omitempty"`
}

type ComponentResponse struct {
	ID              string          `json:"id"`
	EmployeeID      string          `json:"employee_id"`
	Name            string          `json:"name"`
	ComputationType string          `json:"computation_type"`
	Value           decimal.Decimal `json:"value"`
	IsDeduction     bool            `json:"is_deduction"`
	Amount          decimal.Decimal `json:"amount"`
}

// EmployeeSalaryResponse is what the admin screen loads: the structure, which
// is null until first saved, and every component line.
type EmployeeSalaryResponse struct {
	EmployeeID string              `json:"employee_id"`
	Structure  *StructureResponse  `json:"structure"`
	Components []ComponentResponse `json:"components"`
}
