package payroll_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"go-payroll/internal/payroll"
	payrollerrors "go-payroll/internal/payroll/errors"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

type fakePayrollService struct {
	createPayRunFn   func(ctx context.Context, req payroll.CreatePayRunRequest) (payroll.PayRunResponse, error)
	requestPayslipFn func(ctx context.Context, payRunID string, req payroll.RequestPayslipRequest) (payroll.PayslipRequestedResponse, error)
	getPayslipFn     func(ctx context.Context, id string) (payroll.PayslipResponse, error)
	listPayslipsFn   func(ctx context.Context, payRunID string, page, pageSize int) ([]payroll.PayslipResponse, int64, error)
	renderPDFFn      func(ctx context.Context, id string) ([]byte, string, error)
}

func (f *fakePayrollService) CreatePayRun(ctx context.Context, req payroll.CreatePayRunRequest) (payroll.PayRunResponse, error) {
	return f.createPayRunFn(ctx, req)
}
func (f *fakePayrollService) RequestPayslip(ctx context.Context, payRunID string, req payroll.RequestPayslipRequest) (payroll.PayslipRequestedResponse, error) {
	return f.requestPayslipFn(ctx, payRunID, req)
}
func (f *fakePayrollService) GeneratePayslip(ctx context.Context, in payroll.GeneratePayslipInput) (payroll.PayslipResponse, error) {
	panic("not used by handler")
}
func (f *fakePayrollService) GetPayslip(ctx context.Context, id string) (payroll.PayslipResponse, error) {
	return f.getPayslipFn(ctx, id)
}
func (f *fakePayrollService) ListPayslips(ctx context.Context, payRunID string, page, pageSize int) ([]payroll.PayslipResponse, int64, error) {
	return f.listPayslipsFn(ctx, payRunID, page, pageSize)
}
func (f *fakePayrollService) RenderPayslipPDF(ctx context.Context, id string) ([]byte, string, error) {
	return f.renderPDFFn(ctx, id)
}

type fakeAuditor struct {
	verifyFn func(ctx context.Context, limit int) (payroll.VerificationReport, error)
}

func (f *fakeAuditor) Verify(ctx context.Context, limit int) (payroll.VerificationReport, error) {
	return f.verifyFn(ctx, limit)
}

type envelope struct {
	Ok    bool            `json:"ok"`
	Data  json.RawMessage `json:"data"`
	Meta  map[string]any  `json:"meta"`
	Error struct {
		Code    string `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
}

func decodeEnvelope(t *testing.T, w *httptest.ResponseRecorder) envelope {
	t.Helper()
	var env envelope
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &env))
	return env
}

func newPayrollContext(method, target, body string) (*gin.Context, *httptest.ResponseRecorder) {
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)

	req := httptest.NewRequest(method, target, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	c.Request = req
	return c, w
}

func TestPayrollHandler_CreatePayRun(t *testing.T) {
	t.Run("created", func(t *testing.T) {
		svc := &fakePayrollService{
			createPayRunFn: func(ctx context.Context, req payroll.CreatePayRunRequest) (payroll.PayRunResponse, error) {
				return payroll.PayRunResponse{ID: "pr-1", PeriodYear: req.PeriodYear, PeriodMonth: req.PeriodMonth}, nil
			},
		}
		h := payroll.NewHandler(svc, nil)

		c, w := newPayrollContext(http.MethodPost, "/payruns", `{"period_year":2026,"period_month":10}`)
		h.CreatePayRun(c)

		assert.Equal(t, http.StatusCreated, w.Code)
		env := decodeEnvelope(t, w)
		assert.True(t, env.Ok)
		assert.Contains(t, string(env.Data), `"period_month":10`)
	})

	t.Run("month out of range", func(t *testing.T) {
		h := payroll.NewHandler(&fakePayrollService{}, nil)

		c, w := newPayrollContext(http.MethodPost, "/payruns", `{"period_year":2026,"period_month":13}`)
		h.CreatePayRun(c)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Equal(t, "INVALID_INPUT", decodeEnvelope(t, w).Error.Code)
	})

	t.Run("duplicate period", func(t *testing.T) {
		svc := &fakePayrollService{
			createPayRunFn: func(ctx context.Context, req payroll.CreatePayRunRequest) (payroll.PayRunResponse, error) {
				return payroll.PayRunResponse{}, payrollerrors.ErrPayRunAlreadyExists
			},
		}
		h := payroll.NewHandler(svc, nil)

		c, w := newPayrollContext(http.MethodPost, "/payruns", `{"period_year":2026,"period_month":10}`)
		h.CreatePayRun(c)

		assert.Equal(t, http.StatusConflict, w.Code)
	})
}

func TestPayrollHandler_RequestPayslip(t *testing.T) {
	payRunID := uuid.NewString()
	employeeID := uuid.NewString()
	body := `{"employee_id":"` + employeeID + `","total_worked_days":"18","total_leaves":"2"}`

	t.Run("queued", func(t *testing.T) {
		svc := &fakePayrollService{
			requestPayslipFn: func(ctx context.Context, id string, req payroll.RequestPayslipRequest) (payroll.PayslipRequestedResponse, error) {
				assert.Equal(t, payRunID, id)
				assert.True(t, req.TotalWorkedDays.Equal(decimal.NewFromInt(18)))
				assert.True(t, req.TotalLeaves.Equal(decimal.NewFromInt(2)))
				return payroll.PayslipRequestedResponse{PayRunID: id, EmployeeID: req.EmployeeID, Status: payroll.PayslipStatusQueued}, nil
			},
		}
		h := payroll.NewHandler(svc, nil)

		c, w := newPayrollContext(http.MethodPost, "/payruns/"+payRunID+"/payslips", body)
		c.Params = gin.Params{{Key: "id", Value: payRunID}}
		h.RequestPayslip(c)

		assert.Equal(t, http.StatusAccepted, w.Code)
	})

	t.Run("generated inline", func(t *testing.T) {
		svc := &fakePayrollService{
			requestPayslipFn: func(ctx context.Context, id string, req payroll.RequestPayslipRequest) (payroll.PayslipRequestedResponse, error) {
				return payroll.PayslipRequestedResponse{Status: payroll.PayslipStatusGenerated}, nil
			},
		}
		h := payroll.NewHandler(svc, nil)

		c, w := newPayrollContext(http.MethodPost, "/payruns/"+payRunID+"/payslips", body)
		c.Params = gin.Params{{Key: "id", Value: payRunID}}
		h.RequestPayslip(c)

		assert.Equal(t, http.StatusCreated, w.Code)
	})

	t.Run("missing worked days", func(t *testing.T) {
		h := payroll.NewHandler(&fakePayrollService{}, nil)

		c, w := newPayrollContext(http.MethodPost, "/payruns/"+payRunID+"/payslips", `{"employee_id":"`+employeeID+`"}`)
		c.Params = gin.Params{{Key: "id", Value: payRunID}}
		h.RequestPayslip(c)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("already exists", func(t *testing.T) {
		svc := &fakePayrollService{
			requestPayslipFn: func(ctx context.Context, id string, req payroll.RequestPayslipRequest) (payroll.PayslipRequestedResponse, error) {
				return payroll.PayslipRequestedResponse{}, payrollerrors.ErrPayslipAlreadyExists
			},
		}
		h := payroll.NewHandler(svc, nil)

		c, w := newPayrollContext(http.MethodPost, "/payruns/"+payRunID+"/payslips", body)
		c.Params = gin.Params{{Key: "id", Value: payRunID}}
		h.RequestPayslip(c)

		assert.Equal(t, http.StatusConflict, w.Code)
		assert.Equal(t, "PAYSLIP_ALREADY_EXISTS", decodeEnvelope(t, w).Error.Code)
	})
}

func TestPayrollHandler_ListPayslips(t *testing.T) {
	payRunID := uuid.NewString()
	svc := &fakePayrollService{
		listPayslipsFn: func(ctx context.Context, id string, page, pageSize int) ([]payroll.PayslipResponse, int64, error) {
			assert.Equal(t, 2, page)
			assert.Equal(t, 20, pageSize)
			return []payroll.PayslipResponse{{ID: "p-1"}}, 21, nil
		},
	}
	h := payroll.NewHandler(svc, nil)

	c, w := newPayrollContext(http.MethodGet, "/payruns/"+payRunID+"/payslips?page=2", "")
	c.Params = gin.Params{{Key: "id", Value: payRunID}}
	h.ListPayslips(c)

	assert.Equal(t, http.StatusOK, w.Code)
	env := decodeEnvelope(t, w)
	assert.EqualValues(t, 2, env.Meta["totalPages"])
}

func TestPayrollHandler_GetPayslip(t *testing.T) {
	svc := &fakePayrollService{
		getPayslipFn: func(ctx context.Context, id string) (payroll.PayslipResponse, error) {
			return payroll.PayslipResponse{}, payrollerrors.ErrPayslipNotFound
		},
	}
	h := payroll.NewHandler(svc, nil)

	c, w := newPayrollContext(http.MethodGet, "/payslips/x", "")
	c.Params = gin.Params{{Key: "id", Value: uuid.NewString()}}
	h.GetPayslip(c)

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "NOT_FOUND", decodeEnvelope(t, w).Error.Code)
}

func TestPayrollHandler_DownloadPayslip(t *testing.T) {
	svc := &fakePayrollService{
		renderPDFFn: func(ctx context.Context, id string) ([]byte, string, error) {
			return []byte("%PDF-1.4"), "payslip-2026-10-e1.pdf", nil
		},
	}
	h := payroll.NewHandler(svc, nil)

	c, w := newPayrollContext(http.MethodGet, "/payslips/x/pdf", "")
	c.Params = gin.Params{{Key: "id", Value: uuid.NewString()}}
	h.DownloadPayslip(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "application/pdf", w.Header().Get("Content-Type"))
	assert.Equal(t, `attachment; filename="payslip-2026-10-e1.pdf"`, w.Header().Get("Content-Disposition"))
	assert.Equal(t, "%PDF-1.4", w.Body.String())
}

func TestPayrollHandler_Verify(t *testing.T) {
	t.Run("passes limit through", func(t *testing.T) {
		auditor := &fakeAuditor{
			verifyFn: func(ctx context.Context, limit int) (payroll.VerificationReport, error) {
				assert.Equal(t, 5, limit)
				return payroll.VerificationReport{Payslips: []payroll.PayslipVerification{{PayslipID: "p-1"}}}, nil
			},
		}
		h := payroll.NewHandler(&fakePayrollService{}, auditor)

		c, w := newPayrollContext(http.MethodGet, "/payroll/verification?limit=5", "")
		h.Verify(c)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, string(decodeEnvelope(t, w).Data), `"payslip_id":"p-1"`)
	})

	t.Run("limit too large", func(t *testing.T) {
		h := payroll.NewHandler(&fakePayrollService{}, &fakeAuditor{})

		c, w := newPayrollContext(http.MethodGet, "/payroll/verification?limit=501", "")
		h.Verify(c)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}
