package salary

import (
	"errors"
	"strings"

	salaryerrors "go-payroll/internal/salary/errors"

	"github.com/jackc/pgx/v5/pgconn"
)

const (
	pgUniqueViolation     = "23505"
	pgForeignKeyViolation = "23503"
	pgCheckViolation      = "23514"

	constraintStructureEmployee = "uq_salary_structures_employee"
	constraintStructureWage     = "chk_salary_structures_wage"
	constraintComponentType     = "chk_salary_components_type"
)

func mapRepositoryError(err error) error {
	if err == nil {
		return nil
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch {
		case pgErr.Code == pgUniqueViolation && pgErr.ConstraintName == constraintStructureEmployee:
			return salaryerrors.ErrStructureAlreadyExists
		case pgErr.Code == pgForeignKeyViolation && strings.Contains(pgErr.ConstraintName, "employee"):
			return salaryerrors.ErrEmployeeNotFound
		case pgErr.Code == pgCheckViolation && pgErr.ConstraintName == constraintStructureWage:
			return salaryerrors.ErrInvalidMonthlyWage
		case pgErr.Code == pgCheckViolation && pgErr.ConstraintName == constraintComponentType:
			return salaryerrors.ErrInvalidComputationType
		}
	}

	errMsg := strings.ToLower(err.Error())
	if strings.Contains(errMsg, "duplicate key value") && strings.Contains(errMsg, constraintStructureEmployee) {
		return salaryerrors.ErrStructureAlreadyExists
	}

	return err
}
