package payroll

import "github.com/shopspring/decimal"

type CreatePayRunRequest struct {
	PeriodYear  int `json:"period_year" binding:"required,min=2000,max=2100"`
	PeriodMonth int `json:"period_month" binding:"required,min=1,max=12"`
}

type RequestPayslipRequest struct {
	EmployeeID      string           `json:"employee_id" binding:"required,uuid"`
	TotalWorkedDays *decimal.Decimal `json:"total_worked_days" binding:"required"`
	TotalLeaves     *decimal.Decimal `json:"total_leaves"`
}

type ListPayslipsRequest struct {
	Page     int `form:"page" binding:"omitempty,min=1"`
	PageSize int `form:"pageSize" binding:"omitempty,min=1,max=100"`
}

type VerificationRequest struct {
	Limit int `form:"limit" binding:"omitempty,min=1,max=500"`
}

// GeneratePayslipInput is the payload of a payslip request event.
type GeneratePayslipInput struct {
	PayRunID        string
	EmployeeID      string
	TotalWorkedDays decimal.Decimal
	TotalLeaves     decimal.Decimal
}

type PayRunResponse struct {
	ID          string `json:"id"`
	PeriodYear  int    `json:"period_year"`
	PeriodMonth int    `json:"period_month"`
	CreatedAt   string `json:"created_at,omitempty"`
}

type PayslipRequestedResponse struct {
	PayRunID   string `json:"payrun_id"`
	EmployeeID string `json:"employee_id"`
	Status     string `json:"status"`
}

type PayslipComponentResponse struct {
	Name        string          `json:"name"`
	Amount      decimal.Decimal `json:"amount"`
	IsDeduction bool            `json:"is_deduction"`
}

type PayslipResponse struct {
	ID              string                     `json:"id"`
	EmployeeID      string                     `json:"employee_id"`
	EmployeeName    string                     `json:"employee_name,omitempty"`
	PayRunID        string                     `json:"payrun_id"`
	PeriodYear      int                        `json:"period_year,omitempty"`
	PeriodMonth     int                        `json:"period_month,omitempty"`
	TotalWorkedDays decimal.Decimal            `json:"total_worked_days"`
	TotalLeaves     decimal.Decimal            `json:"total_leaves"`
	PayableDays     decimal.Decimal            `json:"payable_days"`
	BasicWage       decimal.Decimal            `json:"basic_wage"`
	GrossWage       decimal.Decimal            `json:"gross_wage"`
	NetWage         decimal.Decimal            `json:"net_wage"`
	EmployerCost    *decimal.Decimal           `json:"employer_cost"`
	Components      []PayslipComponentResponse `json:"components"`
}
