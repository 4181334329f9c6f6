package payroll_test

import (
	"context"
	"encoding/json"
	"strings"
	"testing"

	"go-payroll/internal/events"
	"go-payroll/internal/messaging/kafka"
	"go-payroll/internal/payroll"
	payrollerrors "go-payroll/internal/payroll/errors"
	payrollMock "go-payroll/internal/payroll/mock"
	"go-payroll/internal/payrollcalc"
	"go-payroll/internal/salary"
	salaryerrors "go-payroll/internal/salary/errors"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
	"gorm.io/gorm"
)

type fakeSalaryRepo struct {
	salary.Repository
	structure  *salary.SalaryStructure
	components []salary.SalaryComponent
}

func (f *fakeSalaryRepo) WithTx(tx *gorm.DB) salary.Repository { return f }

func (f *fakeSalaryRepo) FindStructureByEmployee(ctx context.Context, employeeID string) (*salary.SalaryStructure, error) {
	if f.structure == nil {
		return nil, gorm.ErrRecordNotFound
	}
	return f.structure, nil
}

func (f *fakeSalaryRepo) FindComponentsByEmployee(ctx context.Context, employeeID string) ([]salary.SalaryComponent, error) {
	return f.components, nil
}

type recordingOutbox struct {
	kafka.OutboxRepository
	events []kafka.OutboxEvent
}

func (r *recordingOutbox) WithTx(tx *gorm.DB) kafka.OutboxRepository { return r }

func (r *recordingOutbox) Create(ctx context.Context, event kafka.OutboxEvent) error {
	r.events = append(r.events, event)
	return nil
}

type payrollDeps struct {
	sqlMock    sqlmock.Sqlmock
	repo       *payrollMock.MockRepository
	salaryRepo *fakeSalaryRepo
	outbox     *recordingOutbox
	service    payroll.Service
	inline     payroll.Service
}

func setupPayrollServiceTest(t *testing.T) *payrollDeps {
	ctrl := gomock.NewController(t)
	gdb, sqlMock := newGormMock(t)

	repo := payrollMock.NewMockRepository(ctrl)
	repo.EXPECT().WithTx(gomock.Any()).Return(repo).AnyTimes()

	employeeID := uuid.New()
	salaryRepo := &fakeSalaryRepo{
		structure: &salary.SalaryStructure{
			ID:                 uuid.New(),
			EmployeeID:         employeeID,
			MonthlyWage:        decimal.NewFromInt(30000),
			WorkingDaysPerWeek: 5,
		},
		components: []salary.SalaryComponent{
			{Name: "HRA", ComputationType: payrollcalc.ComputationFixed, Value: decimal.NewFromInt(5000)},
			{Name: "PF", ComputationType: payrollcalc.ComputationPercentage, Value: decimal.NewFromInt(12), IsDeduction: true},
		},
	}
	outbox := &recordingOutbox{}

	return &payrollDeps{
		sqlMock:    sqlMock,
		repo:       repo,
		salaryRepo: salaryRepo,
		outbox:     outbox,
		service:    payroll.NewServiceWithOutbox(gdb, repo, salaryRepo, outbox),
		inline:     payroll.NewService(gdb, repo, salaryRepo),
	}
}

// October 2026 has 22 working days on a five-day week.
func october2026() *payroll.PayRun {
	return &payroll.PayRun{ID: uuid.New(), PeriodYear: 2026, PeriodMonth: 10}
}

func TestPayrollService_GeneratePayslip(t *testing.T) {
	ctx := context.Background()

	t.Run("computes and stores the payslip", func(t *testing.T) {
		deps := setupPayrollServiceTest(t)
		expectTx(t, deps.sqlMock, true)

		payRun := october2026()
		employeeID := deps.salaryRepo.structure.EmployeeID

		var stored *payroll.Payslip
		deps.repo.EXPECT().FindPayRun(gomock.Any(), payRun.ID.String()).Return(payRun, nil)
		deps.repo.EXPECT().PayslipExists(gomock.Any(), employeeID.String(), payRun.ID.String()).Return(false, nil)
		deps.repo.EXPECT().CreatePayslip(gomock.Any(), gomock.Any()).DoAndReturn(
			func(ctx context.Context, p *payroll.Payslip) error {
				stored = p
				return nil
			})
		deps.repo.EXPECT().FindPayslip(gomock.Any(), gomock.Any()).DoAndReturn(
			func(ctx context.Context, id string) (*payroll.Payslip, error) {
				assert.Equal(t, stored.ID.String(), id)
				return stored, nil
			})

		resp, err := deps.service.GeneratePayslip(ctx, payroll.GeneratePayslipInput{
			PayRunID:        payRun.ID.String(),
			EmployeeID:      employeeID.String(),
			TotalWorkedDays: decimal.NewFromInt(18),
			TotalLeaves:     decimal.NewFromInt(2),
		})

		assert.NoError(t, err)
		assert.Equal(t, "20", resp.PayableDays.String())
		assert.Equal(t, "27272.73", resp.BasicWage.StringFixed(2))
		assert.Equal(t, "32272.73", resp.GrossWage.StringFixed(2))
		assert.Equal(t, "29000.00", resp.NetWage.StringFixed(2))
		if assert.NotNil(t, resp.EmployerCost) {
			assert.True(t, resp.BasicWage.Equal(*resp.EmployerCost))
		}

		if assert.Len(t, resp.Components, 3) {
			assert.Equal(t, payroll.BasicComponentName, resp.Components[0].Name)
			assert.Equal(t, "HRA", resp.Components[1].Name)
			assert.Equal(t, "3272.73", resp.Components[2].Amount.StringFixed(2))
			assert.True(t, resp.Components[2].IsDeduction)
		}

		sample := payroll.PayslipSample{
			BasicWage:    stored.BasicWage,
			GrossWage:    stored.GrossWage,
			NetWage:      stored.NetWage,
			EmployerCost: stored.EmployerCost,
		}
		assert.True(t, payroll.VerifyPayslip(sample, stored.Components).Passed())
		assert.NoError(t, deps.sqlMock.ExpectationsWereMet())
	})

	t.Run("duplicate payslip", func(t *testing.T) {
		deps := setupPayrollServiceTest(t)
		expectTx(t, deps.sqlMock, false)

		payRun := october2026()
		deps.repo.EXPECT().FindPayRun(gomock.Any(), gomock.Any()).Return(payRun, nil)
		deps.repo.EXPECT().PayslipExists(gomock.Any(), gomock.Any(), gomock.Any()).Return(true, nil)
		deps.repo.EXPECT().CreatePayslip(gomock.Any(), gomock.Any()).Times(0)

		_, err := deps.service.GeneratePayslip(ctx, payroll.GeneratePayslipInput{
			PayRunID:   payRun.ID.String(),
			EmployeeID: uuid.NewString(),
		})

		assert.ErrorIs(t, err, payrollerrors.ErrPayslipAlreadyExists)
		assert.NoError(t, deps.sqlMock.ExpectationsWereMet())
	})

	t.Run("payrun not found", func(t *testing.T) {
		deps := setupPayrollServiceTest(t)
		expectTx(t, deps.sqlMock, false)

		deps.repo.EXPECT().FindPayRun(gomock.Any(), gomock.Any()).Return(nil, gorm.ErrRecordNotFound)

		_, err := deps.service.GeneratePayslip(ctx, payroll.GeneratePayslipInput{
			PayRunID:   uuid.NewString(),
			EmployeeID: uuid.NewString(),
		})

		assert.ErrorIs(t, err, payrollerrors.ErrPayRunNotFound)
	})

	t.Run("employee without structure", func(t *testing.T) {
		deps := setupPayrollServiceTest(t)
		deps.salaryRepo.structure = nil
		expectTx(t, deps.sqlMock, false)

		deps.repo.EXPECT().FindPayRun(gomock.Any(), gomock.Any()).Return(october2026(), nil)
		deps.repo.EXPECT().PayslipExists(gomock.Any(), gomock.Any(), gomock.Any()).Return(false, nil)

		_, err := deps.service.GeneratePayslip(ctx, payroll.GeneratePayslipInput{
			PayRunID:   uuid.NewString(),
			EmployeeID: uuid.NewString(),
		})

		assert.ErrorIs(t, err, salaryerrors.ErrStructureNotFound)
	})

	t.Run("negative attendance rejected before any query", func(t *testing.T) {
		deps := setupPayrollServiceTest(t)

		_, err := deps.service.GeneratePayslip(ctx, payroll.GeneratePayslipInput{
			PayRunID:        uuid.NewString(),
			EmployeeID:      uuid.NewString(),
			TotalWorkedDays: decimal.NewFromInt(-1),
		})

		assert.ErrorIs(t, err, payrollerrors.ErrInvalidAttendance)
		assert.NoError(t, deps.sqlMock.ExpectationsWereMet())
	})
}

func TestPayrollService_RequestPayslip(t *testing.T) {
	ctx := context.Background()
	worked := decimal.NewFromInt(21)

	t.Run("queues an outbox event", func(t *testing.T) {
		deps := setupPayrollServiceTest(t)
		expectTx(t, deps.sqlMock, true)

		payRun := october2026()
		employeeID := uuid.NewString()
		deps.repo.EXPECT().FindPayRun(gomock.Any(), payRun.ID.String()).Return(payRun, nil)
		deps.repo.EXPECT().PayslipExists(gomock.Any(), employeeID, payRun.ID.String()).Return(false, nil)

		resp, err := deps.service.RequestPayslip(ctx, payRun.ID.String(), payroll.RequestPayslipRequest{
			EmployeeID:      employeeID,
			TotalWorkedDays: &worked,
		})

		assert.NoError(t, err)
		assert.Equal(t, payroll.PayslipStatusQueued, resp.Status)
		if assert.Len(t, deps.outbox.events, 1) {
			ev := deps.outbox.events[0]
			assert.Equal(t, events.PayslipRequestedTopic, ev.Topic)
			assert.Equal(t, kafka.OutboxStatusPending, ev.Status)

			var payload events.PayslipRequestedEvent
			assert.NoError(t, json.Unmarshal(ev.Payload, &payload))
			assert.Equal(t, employeeID, payload.EmployeeID)
			assert.Equal(t, "21", payload.TotalWorkedDays)
			assert.Equal(t, "0", payload.TotalLeaves)
		}
		assert.NoError(t, deps.sqlMock.ExpectationsWereMet())
	})

	t.Run("already generated", func(t *testing.T) {
		deps := setupPayrollServiceTest(t)
		expectTx(t, deps.sqlMock, false)

		deps.repo.EXPECT().FindPayRun(gomock.Any(), gomock.Any()).Return(october2026(), nil)
		deps.repo.EXPECT().PayslipExists(gomock.Any(), gomock.Any(), gomock.Any()).Return(true, nil)

		_, err := deps.service.RequestPayslip(ctx, uuid.NewString(), payroll.RequestPayslipRequest{
			EmployeeID:      uuid.NewString(),
			TotalWorkedDays: &worked,
		})

		assert.ErrorIs(t, err, payrollerrors.ErrPayslipAlreadyExists)
		assert.Empty(t, deps.outbox.events)
	})

	t.Run("invalid payrun id", func(t *testing.T) {
		deps := setupPayrollServiceTest(t)

		_, err := deps.service.RequestPayslip(ctx, "nope", payroll.RequestPayslipRequest{
			EmployeeID:      uuid.NewString(),
			TotalWorkedDays: &worked,
		})

		assert.ErrorIs(t, err, payrollerrors.ErrInvalidPayRunID)
	})

	t.Run("generates inline without outbox", func(t *testing.T) {
		deps := setupPayrollServiceTest(t)
		expectTx(t, deps.sqlMock, true)

		payRun := october2026()
		deps.repo.EXPECT().FindPayRun(gomock.Any(), gomock.Any()).Return(payRun, nil)
		deps.repo.EXPECT().PayslipExists(gomock.Any(), gomock.Any(), gomock.Any()).Return(false, nil)
		var stored *payroll.Payslip
		deps.repo.EXPECT().CreatePayslip(gomock.Any(), gomock.Any()).DoAndReturn(
			func(ctx context.Context, p *payroll.Payslip) error {
				stored = p
				return nil
			})
		deps.repo.EXPECT().FindPayslip(gomock.Any(), gomock.Any()).DoAndReturn(
			func(ctx context.Context, id string) (*payroll.Payslip, error) {
				return stored, nil
			})

		resp, err := deps.inline.RequestPayslip(ctx, payRun.ID.String(), payroll.RequestPayslipRequest{
			EmployeeID:      deps.salaryRepo.structure.EmployeeID.String(),
			TotalWorkedDays: &worked,
		})

		assert.NoError(t, err)
		assert.Equal(t, payroll.PayslipStatusGenerated, resp.Status)
		assert.Empty(t, deps.outbox.events)
	})
}

func TestPayrollService_CreatePayRun(t *testing.T) {
	ctx := context.Background()

	t.Run("success", func(t *testing.T) {
		deps := setupPayrollServiceTest(t)
		deps.repo.EXPECT().CreatePayRun(gomock.Any(), gomock.Any()).Return(nil)

		resp, err := deps.service.CreatePayRun(ctx, payroll.CreatePayRunRequest{PeriodYear: 2026, PeriodMonth: 10})

		assert.NoError(t, err)
		assert.Equal(t, 10, resp.PeriodMonth)
		assert.NotEmpty(t, resp.ID)
	})

	t.Run("invalid month", func(t *testing.T) {
		deps := setupPayrollServiceTest(t)

		_, err := deps.service.CreatePayRun(ctx, payroll.CreatePayRunRequest{PeriodYear: 2026, PeriodMonth: 13})

		assert.ErrorIs(t, err, payrollerrors.ErrInvalidPeriod)
	})
}

func TestPayrollService_GetPayslipAndPDF(t *testing.T) {
	ctx := context.Background()
	deps := setupPayrollServiceTest(t)

	payslip := &payroll.Payslip{
		ID:           uuid.New(),
		EmployeeID:   uuid.New(),
		EmployeeName: "Asha Rao",
		BasicWage:    decimal.RequireFromString("27272.73"),
		GrossWage:    decimal.RequireFromString("32272.73"),
		NetWage:      decimal.RequireFromString("29000.00"),
		PayRun:       october2026(),
		Components:   scenarioComponents(),
	}

	t.Run("not found", func(t *testing.T) {
		deps.repo.EXPECT().FindPayslip(gomock.Any(), gomock.Any()).Return(nil, gorm.ErrRecordNotFound)

		_, err := deps.service.GetPayslip(ctx, uuid.NewString())

		assert.ErrorIs(t, err, payrollerrors.ErrPayslipNotFound)
	})

	t.Run("null employer cost stays null", func(t *testing.T) {
		deps.repo.EXPECT().FindPayslip(gomock.Any(), payslip.ID.String()).Return(payslip, nil)

		resp, err := deps.service.GetPayslip(ctx, payslip.ID.String())

		assert.NoError(t, err)
		assert.Nil(t, resp.EmployerCost)
		assert.Equal(t, 2026, resp.PeriodYear)
	})

	t.Run("pdf", func(t *testing.T) {
		deps.repo.EXPECT().FindPayslip(gomock.Any(), payslip.ID.String()).Return(payslip, nil)

		content, filename, err := deps.service.RenderPayslipPDF(ctx, payslip.ID.String())

		assert.NoError(t, err)
		assert.Equal(t, "payslip-2026-10-"+payslip.EmployeeID.String()+".pdf", filename)
		assert.True(t, len(content) > 0)
		assert.Contains(t, string(content), "%PDF-1.4")
		assert.Contains(t, string(content), "Net Wage: INR 29000.00")
		assert.Contains(t, string(content), "Period: October 2026")
		assert.Contains(t, string(content), "/F1 12 Tf\n16 TL\n50 800 Td\n(Payslip) Tj\n")
		assert.True(t, strings.HasSuffix(string(content), "%%EOF"))
	})

	t.Run("pdf escapes parentheses", func(t *testing.T) {
		named := *payslip
		named.EmployeeName = `Rao (Asha) \ HR`
		deps.repo.EXPECT().FindPayslip(gomock.Any(), payslip.ID.String()).Return(&named, nil)

		content, _, err := deps.service.RenderPayslipPDF(ctx, payslip.ID.String())

		assert.NoError(t, err)
		assert.Contains(t, string(content), `T* (Employee: Rao \(Asha\) \\ HR) Tj`)
	})

	t.Run("invalid id", func(t *testing.T) {
		_, _, err := deps.service.RenderPayslipPDF(ctx, "x")
		assert.ErrorIs(t, err, payrollerrors.ErrInvalidPayslipID)
	})
}
