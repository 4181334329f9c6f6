package payroll

import (
	"context"

	"gorm.io/gorm"
)

//go:generate mockgen -source=payroll_repo.go -destination=mock/payroll_repo_mock.go -package=mock
type Repository interface {
	WithTx(tx *gorm.DB) Repository
	CreatePayRun(ctx context.Context, payRun *PayRun) error
	FindPayRun(ctx context.Context, id string) (*PayRun, error)
	CreatePayslip(ctx context.Context, payslip *Payslip) error
	FindPayslip(ctx context.Context, id string) (*Payslip, error)
	ListPayslipsByPayRun(ctx context.Context, payRunID string, offset, limit int) ([]Payslip, int64, error)
	PayslipExists(ctx context.Context, employeeID, payRunID string) (bool, error)

	ExecRaw(ctx context.Context, statement string) error
	CountMissingEmployerCost(ctx context.Context) (int64, error)
	BackfillEmployerCost(ctx context.Context) (int64, error)
	RepairEmployerCost(ctx context.Context) (int64, error)
	SamplePayslips(ctx context.Context, limit int) ([]PayslipSample, error)
	FindPayslipComponents(ctx context.Context, payslipID string) ([]PayslipComponent, error)
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) WithTx(tx *gorm.DB) Repository {
	return &repository{db: tx}
}

func (r *repository) CreatePayRun(ctx context.Context, payRun *PayRun) error {
	return r.db.WithContext(ctx).Create(payRun).Error
}

func (r *repository) FindPayRun(ctx context.Context, id string) (*PayRun, error) {
	var payRun PayRun
	if err := r.db.WithContext(ctx).Where("id = ?", id).Take(&payRun).Error; err != nil {
		return nil, err
	}
	return &payRun, nil
}

// CreatePayslip inserts the payslip together with its component lines.
func (r *repository) CreatePayslip(ctx context.Context, payslip *Payslip) error {
	return r.db.WithContext(ctx).Omit("PayRun").Create(payslip).Error
}

func (r *repository) payslipQuery(ctx context.Context) *gorm.DB {
	return r.db.WithContext(ctx).
		Model(&Payslip{}).
		Select("payslips.*, employees.first_name || ' ' || employees.last_name AS employee_name").
		Joins("JOIN employees ON employees.id = payslips.employee_id")
}

func (r *repository) FindPayslip(ctx context.Context, id string) (*Payslip, error) {
	var payslip Payslip
	err := r.payslipQuery(ctx).
		Preload("PayRun").
		Preload("Components", func(db *gorm.DB) *gorm.DB {
			return db.Order("is_deduction ASC, created_at ASC")
		}).
		Where("payslips.id = ?", id).
		Take(&payslip).Error
	if err != nil {
		return nil, err
	}
	return &payslip, nil
}

func (r *repository) ListPayslipsByPayRun(ctx context.Context, payRunID string, offset, limit int) ([]Payslip, int64, error) {
	var total int64
	if err := r.db.WithContext(ctx).Model(&Payslip{}).Where("payrun_id = ?", payRunID).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var payslips []Payslip
	err := r.payslipQuery(ctx).
		Where("payslips.payrun_id = ?", payRunID).
		Order("employees.first_name ASC, employees.last_name ASC").
		Offset(offset).
		Limit(limit).
		Find(&payslips).Error
	return payslips, total, err
}

func (r *repository) PayslipExists(ctx context.Context, employeeID, payRunID string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&Payslip{}).
		Where("employee_id = ? AND payrun_id = ?", employeeID, payRunID).
		Count(&count).Error
	return count > 0, err
}

// ExecRaw runs a schema statement read from a migration file.
func (r *repository) ExecRaw(ctx context.Context, statement string) error {
	return r.db.WithContext(ctx).Exec(statement).Error
}

func (r *repository) CountMissingEmployerCost(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Raw("SELECT COUNT(*) FROM payslips WHERE employer_cost IS NULL").
		Scan(&count).Error
	return count, err
}

func (r *repository) BackfillEmployerCost(ctx context.Context) (int64, error) {
	res := r.db.WithContext(ctx).
		Exec("UPDATE payslips SET employer_cost = basic_wage WHERE employer_cost IS NULL")
	return res.RowsAffected, res.Error
}

func (r *repository) RepairEmployerCost(ctx context.Context) (int64, error) {
	res := r.db.WithContext(ctx).
		Exec("UPDATE payslips SET employer_cost = basic_wage")
	return res.RowsAffected, res.Error
}

func (r *repository) SamplePayslips(ctx context.Context, limit int) ([]PayslipSample, error) {
	query := `
SELECT
	p.id::text AS id,
	e.first_name || ' ' || e.last_name AS employee_name,
	p.basic_wage,
	p.gross_wage,
	p.net_wage,
	p.employer_cost,
	p.total_worked_days,
	p.total_leaves,
	p.payable_days
FROM payslips p
JOIN employees e ON e.id = p.employee_id
ORDER BY p.created_at ASC
LIMIT ?
`
	var samples []PayslipSample
	err := r.db.WithContext(ctx).Raw(query, limit).Scan(&samples).Error
	return samples, err
}

func (r *repository) FindPayslipComponents(ctx context.Context, payslipID string) ([]PayslipComponent, error) {
	var components []PayslipComponent
	err := r.db.WithContext(ctx).
		Where("payslip_id = ?", payslipID).
		Order("is_deduction ASC, created_at ASC").
		Find(&components).Error
	return components, err
}
