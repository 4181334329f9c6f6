package payroll

import (
	"errors"
	"strings"

	payrollerrors "go-payroll/internal/payroll/errors"
	"go-payroll/internal/payrollcalc"

	"github.com/jackc/pgx/v5/pgconn"
)

const (
	pgUniqueViolation     = "23505"
	pgForeignKeyViolation = "23503"

	constraintPayRunPeriod   = "uq_payruns_period"
	constraintPayslipPerRun  = "uq_payslips_employee_payrun"
	constraintPayslipEmpFKey = "fk_payslips_employee"
)

func mapRepositoryError(err error) error {
	if err == nil {
		return nil
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch {
		case pgErr.Code == pgUniqueViolation && pgErr.ConstraintName == constraintPayslipPerRun:
			return payrollerrors.ErrPayslipAlreadyExists
		case pgErr.Code == pgUniqueViolation && pgErr.ConstraintName == constraintPayRunPeriod:
			return payrollerrors.ErrPayRunAlreadyExists
		case pgErr.Code == pgForeignKeyViolation && pgErr.ConstraintName == constraintPayslipEmpFKey:
			return payrollerrors.ErrEmployeeNotFound
		}
	}

	errMsg := strings.ToLower(err.Error())
	if strings.Contains(errMsg, "duplicate key value") {
		switch {
		case strings.Contains(errMsg, constraintPayslipPerRun):
			return payrollerrors.ErrPayslipAlreadyExists
		case strings.Contains(errMsg, constraintPayRunPeriod):
			return payrollerrors.ErrPayRunAlreadyExists
		}
	}

	return err
}

func mapCalcError(err error) error {
	switch {
	case errors.Is(err, payrollcalc.ErrNoWorkingDays):
		return payrollerrors.ErrNoWorkingDays
	case errors.Is(err, payrollcalc.ErrInvalidMonthlyWage):
		return payrollerrors.ErrInvalidMonthlyWage
	case errors.Is(err, payrollcalc.ErrNegativePayableDays):
		return payrollerrors.ErrInvalidAttendance
	}
	return err
}
