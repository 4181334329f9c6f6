// Package payrollcalc derives a payslip's wage figures from a salary
// structure, its components and the attendance of one pay period.
//
// All currency values are rounded to two decimal places, half away from
// zero. Percentages are whole or fractional percents (12 means 12%).
package payrollcalc

import (
	"errors"

	"github.com/shopspring/decimal"
)

type ComputationType string

const (
	ComputationFixed      ComputationType = "fixed"
	ComputationPercentage ComputationType = "percentage"
)

func (t ComputationType) Valid() bool {
	return t == ComputationFixed || t == ComputationPercentage
}

var (
	ErrInvalidMonthlyWage  = errors.New("monthly wage must be greater than zero")
	ErrNegativePayableDays = errors.New("payable days cannot be negative")
	ErrNoWorkingDays       = errors.New("expected working days must be greater than zero")
)

var hundred = decimal.NewFromInt(100)

type Component struct {
	Name            string
	ComputationType ComputationType
	Value           decimal.Decimal
	IsDeduction     bool
}

type ResolvedComponent struct {
	Component
	Amount decimal.Decimal
}

type Input struct {
	MonthlyWage         decimal.Decimal
	PayableDays         decimal.Decimal
	ExpectedWorkingDays int
	Components          []Component
}

type Result struct {
	BasicWage       decimal.Decimal
	GrossWage       decimal.Decimal
	NetWage         decimal.Decimal
	EmployerCost    decimal.Decimal
	TotalAllowances decimal.Decimal
	TotalDeductions decimal.Decimal
	Components      []ResolvedComponent
}

// ResolveAmount returns the currency amount of a component: the value itself
// for fixed components, value% of basicWage for percentage components.
func ResolveAmount(c Component, basicWage decimal.Decimal) decimal.Decimal {
	if c.ComputationType == ComputationPercentage {
		return c.Value.Mul(basicWage).Div(hundred).Round(2)
	}
	return c.Value
}

// BasicWage prorates the monthly wage by payable days over expected working days.
func BasicWage(monthlyWage, payableDays decimal.Decimal, expectedWorkingDays int) decimal.Decimal {
	return monthlyWage.
		Mul(payableDays).
		Div(decimal.NewFromInt(int64(expectedWorkingDays))).
		Round(2)
}

func Validate(in Input) error {
	if !in.MonthlyWage.IsPositive() {
		return ErrInvalidMonthlyWage
	}
	if in.PayableDays.IsNegative() {
		return ErrNegativePayableDays
	}
	if in.ExpectedWorkingDays <= 0 {
		return ErrNoWorkingDays
	}
	return nil
}

// Compute applies the payroll formula. Employer cost equals the prorated basic
// wage only; neither allowances nor the PF employer contribution are added.
func Compute(in Input) (Result, error) {
	if err := Validate(in); err != nil {
		return Result{}, err
	}

	basic := BasicWage(in.MonthlyWage, in.PayableDays, in.ExpectedWorkingDays)

	res := Result{
		BasicWage:       basic,
		TotalAllowances: decimal.Zero,
		TotalDeductions: decimal.Zero,
		Components:      make([]ResolvedComponent, 0, len(in.Components)),
	}

	for _, c := range in.Components {
		amount := ResolveAmount(c, basic)
		res.Components = append(res.Components, ResolvedComponent{Component: c, Amount: amount})
		if c.IsDeduction {
			res.TotalDeductions = res.TotalDeductions.Add(amount)
		} else {
			res.TotalAllowances = res.TotalAllowances.Add(amount)
		}
	}

	res.GrossWage = basic.Add(res.TotalAllowances)
	res.NetWage = res.GrossWage.Sub(res.TotalDeductions)
	res.EmployerCost = basic

	return res, nil
}

// PayableDays counts worked days plus leave days that are paid.
func PayableDays(workedDays, leaveDays decimal.Decimal) decimal.Decimal {
	return workedDays.Add(leaveDays)
}
