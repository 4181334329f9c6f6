package payroll

import (
	"context"
	"fmt"
	"net/http"

	"go-payroll/internal/shared/apperror"
	"go-payroll/internal/shared/response"

	"github.com/gin-gonic/gin"
)

// Auditor is the read-only side of Maintenance exposed over HTTP.
type Auditor interface {
	Verify(ctx context.Context, limit int) (VerificationReport, error)
}

type Handler struct {
	service Service
	auditor Auditor
}

func NewHandler(service Service, auditor Auditor) *Handler {
	return &Handler{service: service, auditor: auditor}
}

func (h *Handler) writeServiceError(c *gin.Context, err error) {
	response.FromError(c, err)
}

func (h *Handler) CreatePayRun(c *gin.Context) {
	var req CreatePayRunRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.writeServiceError(c, apperror.MapValidationError(err))
		return
	}

	resp, err := h.service.CreatePayRun(c.Request.Context(), req)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	response.Success(c, http.StatusCreated, resp, nil)
}

func (h *Handler) RequestPayslip(c *gin.Context) {
	var req RequestPayslipRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.writeServiceError(c, apperror.MapValidationError(err))
		return
	}

	resp, err := h.service.RequestPayslip(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	status := http.StatusAccepted
	if resp.Status == PayslipStatusGenerated {
		status = http.StatusCreated
	}
	response.Success(c, status, resp, nil)
}

func (h *Handler) ListPayslips(c *gin.Context) {
	var req ListPayslipsRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		h.writeServiceError(c, apperror.MapValidationError(err))
		return
	}
	if req.Page == 0 {
		req.Page = 1
	}
	if req.PageSize == 0 {
		req.PageSize = defaultPageSize
	}

	resp, total, err := h.service.ListPayslips(c.Request.Context(), c.Param("id"), req.Page, req.PageSize)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	meta := response.NewPaginationMeta(total, req.Page, req.PageSize)
	response.Success(c, http.StatusOK, resp, &meta)
}

func (h *Handler) GetPayslip(c *gin.Context) {
	resp, err := h.service.GetPayslip(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	response.Success(c, http.StatusOK, resp, nil)
}

func (h *Handler) DownloadPayslip(c *gin.Context) {
	content, filename, err := h.service.RenderPayslipPDF(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	c.Data(http.StatusOK, "application/pdf", content)
}

func (h *Handler) Verify(c *gin.Context) {
	var req VerificationRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		h.writeServiceError(c, apperror.MapValidationError(err))
		return
	}

	report, err := h.auditor.Verify(c.Request.Context(), req.Limit)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	response.Success(c, http.StatusOK, report, nil)
}
