package salaryerrors

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
	ErrInvalidComponentID = apperror.New(
		apperror.CodeInvalidInput,
		"invalid component id",
		http.StatusBadRequest,
	)
	ErrInvalidMonthlyWage = apperror.New(
		apperror.CodeInvalidInput,
		"monthly wage must be greater than zero",
		http.StatusBadRequest,
	)
	ErrInvalidBreakHours = apperror.New(
		apperror.CodeInvalidInput,
		"break hours cannot be negative",
		http.StatusBadRequest,
	)
	ErrInvalidRate = apperror.New(
		apperror.CodeInvalidInput,
		"provident fund rates must be between 0 and 100",
		http.StatusBadRequest,
	)
	ErrInvalidTaxOverride = apperror.New(
		apperror.CodeInvalidInput,
		"professional tax override cannot be negative",
		http.StatusBadRequest,
	)
	ErrInvalidComponentValue = apperror.New(
		apperror.CodeInvalidInput,
		"component value cannot be negative",
		http.StatusBadRequest,
	)
	ErrInvalidComputationType = apperror.New(
		apperror.CodeInvalidInput,
		"computation type must be fixed or percentage",
		http.StatusBadRequest,
	)
	ErrStructureNotFound = apperror.New(
		"STRUCTURE_NOT_FOUND",
		"salary structure not found for this employee",
		http.StatusNotFound,
	)
	ErrComponentNotFound = apperror.New(
		apperror.CodeNotFound,
		"salary component not found",
		http.StatusNotFound,
	)
	ErrEmployeeNotFound = apperror.New(
		apperror.CodeNotFound,
		"employee not found",
		http.StatusNotFound,
	)
	ErrStructureAlreadyExists = apperror.New(
		apperror.CodeConflict,
		"salary structure for this employee was created concurrently",
		http.StatusConflict,
	)
)
