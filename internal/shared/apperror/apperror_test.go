package apperror_test

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"testing"

	"go-payroll/internal/shared/apperror"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
)

type structureInput struct {
	MonthlyWage float64 `validate:"required"`
	WorkingDays int     `validate:"min=1,max=7"`
}

func TestToHTTP(t *testing.T) {
	t.Run("app error keeps status and code", func(t *testing.T) {
		err := apperror.Wrap(errors.New("boom"), apperror.CodeConflict, "already exists", http.StatusConflict)

		httpErr := apperror.ToHTTP(err)

		assert.Equal(t, http.StatusConflict, httpErr.Status)
		assert.Equal(t, apperror.CodeConflict, httpErr.Code)
		assert.Equal(t, "already exists", httpErr.Message)
	})

	t.Run("plain error becomes internal", func(t *testing.T) {
		httpErr := apperror.ToHTTP(errors.New("pq: relation does not exist"))

		assert.Equal(t, http.StatusInternalServerError, httpErr.Status)
		assert.Equal(t, apperror.CodeInternalError, httpErr.Code)
		assert.NotContains(t, httpErr.Message, "relation")
	})
}

func TestMapValidationError(t *testing.T) {
	v := validator.New()

	t.Run("required", func(t *testing.T) {
		err := v.Struct(structureInput{WorkingDays: 5})

		mapped := apperror.MapValidationError(err)

		var appErr *apperror.AppError
		assert.True(t, errors.As(mapped, &appErr))
		assert.Equal(t, "Monthlywage is required", appErr.Message)
		assert.Equal(t, http.StatusBadRequest, appErr.HTTPStatus)
		assert.Equal(t, map[string]string{"field": "MonthlyWage", "rule": "required"}, appErr.Details)
	})

	t.Run("other tag", func(t *testing.T) {
		err := v.Struct(structureInput{MonthlyWage: 1, WorkingDays: 9})

		mapped := apperror.MapValidationError(err)

		assert.Equal(t, "Workingdays is invalid", mapped.Error())
	})

	t.Run("json type mismatch", func(t *testing.T) {
		var body struct {
			MonthlyWage float64 `json:"monthly_wage"`
		}
		err := json.Unmarshal([]byte(`{"monthly_wage":"lots"}`), &body)

		mapped := apperror.MapValidationError(err)

		assert.Equal(t, "Monthly Wage is invalid", mapped.Error())
		assert.True(t, errors.Is(mapped, apperror.InvalidField("Monthly Wage")))
	})

	t.Run("non validation error", func(t *testing.T) {
		mapped := apperror.MapValidationError(errors.New("EOF"))

		assert.Equal(t, "Invalid input", mapped.Error())
	})
}

func TestAppErrorIs(t *testing.T) {
	sentinel := apperror.New(apperror.CodeNotFound, "Payslip not found", http.StatusNotFound)

	t.Run("copy with details matches sentinel", func(t *testing.T) {
		detailed := sentinel.WithDetails(map[string]string{"id": "p-1"})

		assert.ErrorIs(t, detailed, sentinel)
		assert.Nil(t, sentinel.Details)
	})

	t.Run("wrapped still matches", func(t *testing.T) {
		err := fmt.Errorf("generate: %w", sentinel)

		assert.ErrorIs(t, err, sentinel)
	})

	t.Run("same code different message does not match", func(t *testing.T) {
		other := apperror.New(apperror.CodeNotFound, "Pay run not found", http.StatusNotFound)

		assert.False(t, errors.Is(other, sentinel))
	})

	t.Run("details reach the http shape", func(t *testing.T) {
		httpErr := apperror.ToHTTP(sentinel.WithDetails("p-1"))

		assert.Equal(t, "p-1", httpErr.Details)
	})
}
