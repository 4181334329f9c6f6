package payroll

import (
	"context"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// Maintenance holds the one-off employer_cost fixes and the read-only
// formula audit. Each write runs in a single transaction: a failing
// statement leaves the table untouched.
type Maintenance struct {
	db     *gorm.DB
	repo   Repository
	logger *zap.Logger
}

type BackfillResult struct {
	Found   int64
	Updated int64
}

func NewMaintenance(db *gorm.DB, repo Repository, logger ...*zap.Logger) *Maintenance {
	l := zap.L().Named("payroll.maintenance")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("payroll.maintenance")
	}
	return &Maintenance{db: db, repo: repo, logger: l}
}

// ApplySchema executes a raw schema statement, typically the contents of
// the add-employer-cost migration file.
func (m *Maintenance) ApplySchema(ctx context.Context, statement string) error {
	m.logger.Info("running migration statement")
	if err := m.repo.ExecRaw(ctx, statement); err != nil {
		return err
	}
	m.logger.Info("migration statement applied")
	return nil
}

// BackfillEmployerCost sets employer_cost = basic_wage on every payslip
// where it is NULL. Zero qualifying rows is a successful no-op.
func (m *Maintenance) BackfillEmployerCost(ctx context.Context) (BackfillResult, error) {
	var res BackfillResult
	err := m.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		qtx := m.repo.WithTx(tx)

		found, err := qtx.CountMissingEmployerCost(ctx)
		if err != nil {
			return err
		}
		res.Found = found
		m.logger.Info("Found payslips to update", zap.Int64("count", found))
		if found == 0 {
			return nil
		}

		updated, err := qtx.BackfillEmployerCost(ctx)
		if err != nil {
			return err
		}
		res.Updated = updated
		return nil
	})
	if err != nil {
		return BackfillResult{}, err
	}

	m.logger.Info("existing payslips updated", zap.Int64("updated", res.Updated))
	return res, nil
}

// RepairEmployerCost unconditionally resets employer_cost to basic_wage.
// Running it twice yields the same values.
func (m *Maintenance) RepairEmployerCost(ctx context.Context) (int64, error) {
	var updated int64
	err := m.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		n, err := m.repo.WithTx(tx).RepairEmployerCost(ctx)
		updated = n
		return err
	})
	if err != nil {
		return 0, err
	}

	m.logger.Info("employer cost now equals basic wage", zap.Int64("updated", updated))
	return updated, nil
}

// Verify recomputes gross and net from the stored component lines of up to
// limit payslips. It never writes.
func (m *Maintenance) Verify(ctx context.Context, limit int) (VerificationReport, error) {
	if limit < 1 {
		limit = DefaultVerificationLimit
	}

	samples, err := m.repo.SamplePayslips(ctx, limit)
	if err != nil {
		return VerificationReport{}, err
	}

	report := VerificationReport{Payslips: make([]PayslipVerification, 0, len(samples))}
	for _, sample := range samples {
		components, err := m.repo.FindPayslipComponents(ctx, sample.ID)
		if err != nil {
			return VerificationReport{}, err
		}
		report.Payslips = append(report.Payslips, VerifyPayslip(sample, components))
	}

	m.logger.Info("payslip verification finished",
		zap.Int("checked", len(report.Payslips)),
		zap.Int("failed", report.Failures()),
	)
	return report, nil
}
