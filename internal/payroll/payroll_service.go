package payroll

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"go-payroll/internal/events"
	"go-payroll/internal/messaging/kafka"
	payrollerrors "go-payroll/internal/payroll/errors"
	"go-payroll/internal/payrollcalc"
	"go-payroll/internal/salary"
	salaryerrors "go-payroll/internal/salary/errors"
	"go-payroll/internal/shared/contextutil"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

const (
	BasicComponentName = "Basic"

	PayslipStatusQueued    = "queued"
	PayslipStatusGenerated = "generated"

	defaultPageSize = 20
)

//go:generate mockgen -source=payroll_service.go -destination=mock/payroll_service_mock.go -package=mock
type Service interface {
	CreatePayRun(ctx context.Context, req CreatePayRunRequest) (PayRunResponse, error)
	RequestPayslip(ctx context.Context, payRunID string, req RequestPayslipRequest) (PayslipRequestedResponse, error)
	GeneratePayslip(ctx context.Context, in GeneratePayslipInput) (PayslipResponse, error)
	GetPayslip(ctx context.Context, id string) (PayslipResponse, error)
	ListPayslips(ctx context.Context, payRunID string, page, pageSize int) ([]PayslipResponse, int64, error)
	RenderPayslipPDF(ctx context.Context, id string) ([]byte, string, error)
}

type service struct {
	db         *gorm.DB
	repo       Repository
	salaryRepo salary.Repository
	outbox     kafka.OutboxRepository
	logger     *zap.Logger
}

func NewService(db *gorm.DB, repo Repository, salaryRepo salary.Repository, logger ...*zap.Logger) Service {
	return NewServiceWithOutbox(db, repo, salaryRepo, nil, logger...)
}

// NewServiceWithOutbox queues payslip requests for the consumer. Without an
// outbox RequestPayslip generates the payslip inline.
func NewServiceWithOutbox(
	db *gorm.DB,
	repo Repository,
	salaryRepo salary.Repository,
	outboxRepo kafka.OutboxRepository,
	logger ...*zap.Logger,
) Service {
	l := zap.L().Named("payroll.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("payroll.service")
	}
	return &service{
		db:         db,
		repo:       repo,
		salaryRepo: salaryRepo,
		outbox:     outboxRepo,
		logger:     l,
	}
}

func (s *service) CreatePayRun(ctx context.Context, req CreatePayRunRequest) (PayRunResponse, error) {
	if req.PeriodMonth < 1 || req.PeriodMonth > 12 {
		return PayRunResponse{}, payrollerrors.ErrInvalidPeriod
	}

	payRun := &PayRun{
		ID:          uuid.New(),
		PeriodYear:  req.PeriodYear,
		PeriodMonth: req.PeriodMonth,
	}
	if err := s.repo.CreatePayRun(ctx, payRun); err != nil {
		return PayRunResponse{}, mapRepositoryError(err)
	}

	s.logger.With(contextutil.Fields(ctx)...).Info("payrun created",
		zap.String("payrun_id", payRun.ID.String()),
		zap.Int("period_year", payRun.PeriodYear),
		zap.Int("period_month", payRun.PeriodMonth),
	)
	return mapPayRunToResponse(*payRun), nil
}

func (s *service) RequestPayslip(
	ctx context.Context,
	payRunID string,
	req RequestPayslipRequest,
) (PayslipRequestedResponse, error) {
	rid := contextutil.GetRequestID(ctx)

	in := GeneratePayslipInput{
		PayRunID:        payRunID,
		EmployeeID:      req.EmployeeID,
		TotalWorkedDays: decimal.Zero,
		TotalLeaves:     decimal.Zero,
	}
	if req.TotalWorkedDays != nil {
		in.TotalWorkedDays = *req.TotalWorkedDays
	}
	if req.TotalLeaves != nil {
		in.TotalLeaves = *req.TotalLeaves
	}
	if err := validateGenerateInput(in); err != nil {
		return PayslipRequestedResponse{}, err
	}

	resp := PayslipRequestedResponse{
		PayRunID:   payRunID,
		EmployeeID: req.EmployeeID,
	}

	if s.outbox == nil {
		if _, err := s.GeneratePayslip(ctx, in); err != nil {
			return PayslipRequestedResponse{}, err
		}
		resp.Status = PayslipStatusGenerated
		return resp, nil
	}

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		qtx := s.repo.WithTx(tx)

		if _, err := qtx.FindPayRun(ctx, payRunID); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return payrollerrors.ErrPayRunNotFound
			}
			return err
		}

		exists, err := qtx.PayslipExists(ctx, req.EmployeeID, payRunID)
		if err != nil {
			return err
		}
		if exists {
			return payrollerrors.ErrPayslipAlreadyExists
		}

		event := events.PayslipRequestedEvent{
			EventType:       "payroll.payslip.requested",
			PayRunID:        payRunID,
			EmployeeID:      req.EmployeeID,
			TotalWorkedDays: in.TotalWorkedDays.String(),
			TotalLeaves:     in.TotalLeaves.String(),
			RequestedBy:     contextutil.GetUserID(ctx),
			OccurredAt:      time.Now().UTC(),
		}
		payload, err := json.Marshal(event)
		if err != nil {
			return err
		}

		return s.outbox.WithTx(tx).Create(ctx, kafka.OutboxEvent{
			ID:            uuid.NewString(),
			RequestID:     rid,
			AggregateType: "payslip",
			AggregateID:   req.EmployeeID,
			EventType:     event.EventType,
			Topic:         events.PayslipRequestedTopic,
			Payload:       payload,
			Status:        kafka.OutboxStatusPending,
		})
	})
	if err != nil {
		return PayslipRequestedResponse{}, err
	}

	s.logger.Info("payslip request queued",
		zap.String("request_id", rid),
		zap.String("payrun_id", payRunID),
		zap.String("employee_id", req.EmployeeID),
	)
	resp.Status = PayslipStatusQueued
	return resp, nil
}

// GeneratePayslip computes and stores one payslip from the employee's
// current salary structure. The stored lines are a "Basic" earning followed
// by every resolved component, so the earnings add up to gross wage.
func (s *service) GeneratePayslip(ctx context.Context, in GeneratePayslipInput) (PayslipResponse, error) {
	if err := validateGenerateInput(in); err != nil {
		return PayslipResponse{}, err
	}

	var created *Payslip
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		qtx := s.repo.WithTx(tx)
		sqtx := s.salaryRepo.WithTx(tx)

		payRun, err := qtx.FindPayRun(ctx, in.PayRunID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return payrollerrors.ErrPayRunNotFound
			}
			return err
		}

		exists, err := qtx.PayslipExists(ctx, in.EmployeeID, in.PayRunID)
		if err != nil {
			return err
		}
		if exists {
			return payrollerrors.ErrPayslipAlreadyExists
		}

		structure, err := sqtx.FindStructureByEmployee(ctx, in.EmployeeID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return salaryerrors.ErrStructureNotFound
			}
			return err
		}

		components, err := sqtx.FindComponentsByEmployee(ctx, in.EmployeeID)
		if err != nil {
			return err
		}

		calcInput := payrollcalc.Input{
			MonthlyWage:         structure.MonthlyWage,
			PayableDays:         payrollcalc.PayableDays(in.TotalWorkedDays, in.TotalLeaves),
			ExpectedWorkingDays: payrollcalc.ExpectedWorkingDays(payRun.PeriodYear, payRun.Period(), structure.WorkingDaysPerWeek),
		}
		for _, c := range components {
			calcInput.Components = append(calcInput.Components, c.CalcComponent())
		}

		result, err := payrollcalc.Compute(calcInput)
		if err != nil {
			return mapCalcError(err)
		}

		created = newPayslip(payRun.ID, structure.EmployeeID, in, calcInput.PayableDays, result)
		if err := qtx.CreatePayslip(ctx, created); err != nil {
			return mapRepositoryError(err)
		}

		created, err = qtx.FindPayslip(ctx, created.ID.String())
		return err
	})
	if err != nil {
		s.logger.Warn("generate payslip failed",
			zap.String("payrun_id", in.PayRunID),
			zap.String("employee_id", in.EmployeeID),
			zap.Error(err),
		)
		return PayslipResponse{}, err
	}

	s.logger.Info("payslip generated",
		zap.String("payslip_id", created.ID.String()),
		zap.String("payrun_id", in.PayRunID),
		zap.String("employee_id", in.EmployeeID),
		zap.String("gross_wage", created.GrossWage.StringFixed(2)),
		zap.String("net_wage", created.NetWage.StringFixed(2)),
	)
	return mapPayslipToResponse(*created), nil
}

func (s *service) GetPayslip(ctx context.Context, id string) (PayslipResponse, error) {
	payslip, err := s.findPayslip(ctx, id)
	if err != nil {
		return PayslipResponse{}, err
	}
	return mapPayslipToResponse(*payslip), nil
}

func (s *service) ListPayslips(ctx context.Context, payRunID string, page, pageSize int) ([]PayslipResponse, int64, error) {
	if _, err := uuid.Parse(payRunID); err != nil {
		return nil, 0, payrollerrors.ErrInvalidPayRunID
	}
	if page < 1 {
		page = 1
	}
	if pageSize < 1 {
		pageSize = defaultPageSize
	}

	payslips, total, err := s.repo.ListPayslipsByPayRun(ctx, payRunID, (page-1)*pageSize, pageSize)
	if err != nil {
		return nil, 0, err
	}

	res := make([]PayslipResponse, len(payslips))
	for i, p := range payslips {
		res[i] = mapPayslipToResponse(p)
	}
	return res, total, nil
}

func (s *service) RenderPayslipPDF(ctx context.Context, id string) ([]byte, string, error) {
	payslip, err := s.findPayslip(ctx, id)
	if err != nil {
		return nil, "", err
	}

	content, err := buildSimplePayslipPDF(payslipLines(*payslip))
	if err != nil {
		return nil, "", err
	}

	filename := fmt.Sprintf("payslip-%s.pdf", payslip.ID.String())
	if payslip.PayRun != nil {
		filename = fmt.Sprintf("payslip-%04d-%02d-%s.pdf", payslip.PayRun.PeriodYear, payslip.PayRun.PeriodMonth, payslip.EmployeeID.String())
	}
	return content, filename, nil
}

func (s *service) findPayslip(ctx context.Context, id string) (*Payslip, error) {
	if _, err := uuid.Parse(id); err != nil {
		return nil, payrollerrors.ErrInvalidPayslipID
	}

	payslip, err := s.repo.FindPayslip(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, payrollerrors.ErrPayslipNotFound
		}
		return nil, err
	}
	return payslip, nil
}

func validateGenerateInput(in GeneratePayslipInput) error {
	if _, err := uuid.Parse(in.PayRunID); err != nil {
		return payrollerrors.ErrInvalidPayRunID
	}
	if _, err := uuid.Parse(in.EmployeeID); err != nil {
		return payrollerrors.ErrInvalidEmployeeID
	}
	if in.TotalWorkedDays.IsNegative() || in.TotalLeaves.IsNegative() {
		return payrollerrors.ErrInvalidAttendance
	}
	return nil
}

func newPayslip(
	payRunID, employeeID uuid.UUID,
	in GeneratePayslipInput,
	payableDays decimal.Decimal,
	result payrollcalc.Result,
) *Payslip {
	payslip := &Payslip{
		ID:              uuid.New(),
		EmployeeID:      employeeID,
		PayRunID:        payRunID,
		TotalWorkedDays: in.TotalWorkedDays,
		TotalLeaves:     in.TotalLeaves,
		PayableDays:     payableDays,
		BasicWage:       result.BasicWage,
		GrossWage:       result.GrossWage,
		NetWage:         result.NetWage,
		EmployerCost:    decimal.NewNullDecimal(result.EmployerCost),
	}

	payslip.Components = append(payslip.Components, PayslipComponent{
		ID:            uuid.New(),
		PayslipID:     payslip.ID,
		ComponentName: BasicComponentName,
		Amount:        result.BasicWage,
	})
	for _, c := range result.Components {
		payslip.Components = append(payslip.Components, PayslipComponent{
			ID:            uuid.New(),
			PayslipID:     payslip.ID,
			ComponentName: c.Name,
			Amount:        c.Amount,
			IsDeduction:   c.IsDeduction,
		})
	}
	return payslip
}

func mapPayRunToResponse(p PayRun) PayRunResponse {
	res := PayRunResponse{
		ID:          p.ID.String(),
		PeriodYear:  p.PeriodYear,
		PeriodMonth: p.PeriodMonth,
	}
	if !p.CreatedAt.IsZero() {
		res.CreatedAt = p.CreatedAt.Format(time.RFC3339)
	}
	return res
}

func mapPayslipToResponse(p Payslip) PayslipResponse {
	res := PayslipResponse{
		ID:              p.ID.String(),
		EmployeeID:      p.EmployeeID.String(),
		EmployeeName:    p.EmployeeName,
		PayRunID:        p.PayRunID.String(),
		TotalWorkedDays: p.TotalWorkedDays,
		TotalLeaves:     p.TotalLeaves,
		PayableDays:     p.PayableDays,
		BasicWage:       p.BasicWage,
		GrossWage:       p.GrossWage,
		NetWage:         p.NetWage,
		Components:      make([]PayslipComponentResponse, 0, len(p.Components)),
	}
	if p.PayRun != nil {
		res.PeriodYear = p.PayRun.PeriodYear
		res.PeriodMonth = p.PayRun.PeriodMonth
	}
	if p.EmployerCost.Valid {
		v := p.EmployerCost.Decimal
		res.EmployerCost = &v
	}
	for _, c := range p.Components {
		res.Components = append(res.Components, PayslipComponentResponse{
			Name:        c.ComponentName,
			Amount:      c.Amount,
			IsDeduction: c.IsDeduction,
		})
	}
	return res
}
