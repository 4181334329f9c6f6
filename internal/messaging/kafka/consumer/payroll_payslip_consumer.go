package consumer

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"go-payroll/internal/events"
	"go-payroll/internal/payroll"
	payrollerrors "go-payroll/internal/payroll/errors"

	kafkago "github.com/segmentio/kafka-go"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

// PayslipGenerator is the part of payroll.Service the consumer calls.
type PayslipGenerator interface {
	GeneratePayslip(ctx context.Context, in payroll.GeneratePayslipInput) (payroll.PayslipResponse, error)
}

func ConsumePayslipRequested(
	ctx context.Context,
	reader MessageReader,
	payrollService PayslipGenerator,
	logger *zap.Logger,
) {
	log := logger.Named("kafka.consumer.payslip_requested")
	consume(ctx, reader, log, func(ctx context.Context, msg kafkago.Message) error {
		return handlePayslipRequested(ctx, msg, payrollService, log)
	})
}

func handlePayslipRequested(
	ctx context.Context,
	msg kafkago.Message,
	payrollService PayslipGenerator,
	log *zap.Logger,
) error {
	var event events.PayslipRequestedEvent
	if err := json.Unmarshal(msg.Value, &event); err != nil {
		log.Error("decode payslip requested event failed", zap.Error(err))
		return ErrSkip
	}

	in, err := generateInputFromEvent(event)
	if err != nil {
		log.Error("invalid payslip requested event",
			zap.String("payrun_id", event.PayRunID),
			zap.String("employee_id", event.EmployeeID),
			zap.Error(err),
		)
		return ErrSkip
	}

	payslip, err := payrollService.GeneratePayslip(ctx, in)
	if err != nil {
		if errors.Is(err, payrollerrors.ErrPayslipAlreadyExists) {
			log.Warn("payslip already generated, skipping",
				zap.String("payrun_id", event.PayRunID),
				zap.String("employee_id", event.EmployeeID),
			)
			return ErrSkip
		}
		log.Error("generate payslip failed",
			zap.String("payrun_id", event.PayRunID),
			zap.String("employee_id", event.EmployeeID),
			zap.Error(err),
		)
		return err
	}

	log.Info("payslip generated from event",
		zap.String("payslip_id", payslip.ID),
		zap.String("payrun_id", event.PayRunID),
		zap.String("employee_id", event.EmployeeID),
		zap.String("requested_by", event.RequestedBy),
	)
	return nil
}

func generateInputFromEvent(event events.PayslipRequestedEvent) (payroll.GeneratePayslipInput, error) {
	worked, err := parseDays(event.TotalWorkedDays)
	if err != nil {
		return payroll.GeneratePayslipInput{}, fmt.Errorf("total_worked_days: %w", err)
	}
	leaves, err := parseDays(event.TotalLeaves)
	if err != nil {
		return payroll.GeneratePayslipInput{}, fmt.Errorf("total_leaves: %w", err)
	}

	return payroll.GeneratePayslipInput{
		PayRunID:        event.PayRunID,
		EmployeeID:      event.EmployeeID,
		TotalWorkedDays: worked,
		TotalLeaves:     leaves,
	}, nil
}

func parseDays(v string) (decimal.Decimal, error) {
	if v == "" {
		return decimal.Zero, nil
	}
	return decimal.NewFromString(v)
}
