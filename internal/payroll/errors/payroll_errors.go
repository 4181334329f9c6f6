package payrollerrors

import (
	"net/http"

	"go-payroll/internal/shared/apperror"
)

var (
	ErrInvalidEmployeeID = apperror.New(
		apperror.CodeInvalidInput,
		"invalid employee id",
		http.StatusBadRequest,
	)
	ErrInvalidPayRunID = apperror.New(
		apperror.CodeInvalidInput,
		"invalid payrun id",
		http.StatusBadRequest,
	)
	ErrInvalidPayslipID = apperror.New(
		apperror.CodeInvalidInput,
		"invalid payslip id",
		http.StatusBadRequest,
	)
	ErrInvalidPeriod = apperror.New(
		apperror.CodeInvalidInput,
		"period_month must be between 1 and 12",
		http.StatusBadRequest,
	)
	ErrInvalidAttendance = apperror.New(
		apperror.CodeInvalidInput,
		"worked days and leaves cannot be negative",
		http.StatusBadRequest,
	)
	ErrNoWorkingDays = apperror.New(
		apperror.CodeInvalidState,
		"the pay period has no working days for this salary structure",
		http.StatusUnprocessableEntity,
	)
	ErrInvalidMonthlyWage = apperror.New(
		apperror.CodeInvalidState,
		"salary structure has no positive monthly wage",
		http.StatusUnprocessableEntity,
	)
	ErrPayRunNotFound = apperror.New(
		apperror.CodeNotFound,
		"payrun not found",
		http.StatusNotFound,
	)
	ErrPayslipNotFound = apperror.New(
		apperror.CodeNotFound,
		"payslip not found",
		http.StatusNotFound,
	)
	ErrEmployeeNotFound = apperror.New(
		apperror.CodeNotFound,
		"employee not found",
		http.StatusNotFound,
	)
	ErrPayRunAlreadyExists = apperror.New(
		apperror.CodeConflict,
		"a payrun already exists for this period",
		http.StatusConflict,
	)
	ErrPayslipAlreadyExists = apperror.New(
		"PAYSLIP_ALREADY_EXISTS",
		"a payslip already exists for this employee in this payrun",
		http.StatusConflict,
	)
)
