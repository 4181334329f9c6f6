package response_test

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"go-payroll/internal/shared/apperror"
	"go-payroll/internal/shared/response"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func newContext() (*gin.Context, *httptest.ResponseRecorder) {
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	return c, w
}

func TestNewPaginationMeta(t *testing.T) {
	assert.Equal(t, 3, response.NewPaginationMeta(41, 1, 20).TotalPages)
	assert.Equal(t, 0, response.NewPaginationMeta(0, 1, 20).TotalPages)
	assert.Equal(t, 0, response.NewPaginationMeta(5, 1, 0).TotalPages)
}

func TestSuccess(t *testing.T) {
	c, w := newContext()
	meta := response.NewPaginationMeta(1, 1, 20)

	response.Success(c, http.StatusOK, []string{"a"}, &meta)

	assert.JSONEq(t, `{"ok":true,"data":["a"],"meta":{"total":1,"totalPages":1,"page":1,"pageSize":20}}`, w.Body.String())
}

func TestFromError(t *testing.T) {
	t.Run("app error", func(t *testing.T) {
		c, w := newContext()

		response.FromError(c, apperror.New(apperror.CodeNotFound, "payslip not found", http.StatusNotFound))

		assert.Equal(t, http.StatusNotFound, w.Code)
		assert.JSONEq(t, `{"ok":false,"error":{"code":"NOT_FOUND","message":"payslip not found","details":null}}`, w.Body.String())
	})

	t.Run("unknown error is hidden", func(t *testing.T) {
		c, w := newContext()

		response.FromError(c, errors.New("pq: connection refused"))

		assert.Equal(t, http.StatusInternalServerError, w.Code)
		assert.NotContains(t, w.Body.String(), "connection refused")
	})
}
