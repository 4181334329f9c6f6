package salary

import (
	"context"

	"gorm.io/gorm"
)

//go:generate mockgen -source=salary_repo.go -destination=mock/salary_repo_mock.go -package=mock
type Repository interface {
	WithTx(tx *gorm.DB) Repository
	FindStructureByEmployee(ctx context.Context, employeeID string) (*SalaryStructure, error)
	ListStructures(ctx context.Context, offset, limit int) ([]SalaryStructure, int64, error)
	CreateStructure(ctx context.Context, structure *SalaryStructure) error
	UpdateStructure(ctx context.Context, structure *SalaryStructure) error
	FindComponentsByEmployee(ctx context.Context, employeeID string) ([]SalaryComponent, error)
	FindComponent(ctx context.Context, employeeID, componentID string) (*SalaryComponent, error)
	CreateComponent(ctx context.Context, component *SalaryComponent) error
	UpdateComponent(ctx context.Context, component *SalaryComponent) error
	DeleteComponent(ctx context.Context, employeeID, componentID string) (int64, error)
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

func (r *repository) FindStructureByEmployee(ctx context.Context, employeeID string) (*SalaryStructure, error) {
	var structure SalaryStructure
	err := r.db.WithContext(ctx).
		Table("salary_structures").
		Select("salary_structures.*, employees.first_name || ' ' || employees.last_name AS employee_name").
		Joins("JOIN employees ON employees.id = salary_structures.employee_id").
		Where("salary_structures.employee_id = ?", employeeID).
		Take(&structure).Error
	if err != nil {
		return nil, err
	}
	return &structure, nil
}

func (r *repository) ListStructures(ctx context.Context, offset, limit int) ([]SalaryStructure, int64, error) {
	var total int64
	if err := r.db.WithContext(ctx).Model(&SalaryStructure{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var structures []SalaryStructure
	err := r.db.WithContext(ctx).
		Table("salary_structures").
		Select("salary_structures.*, employees.first_name || ' ' || employees.last_name AS employee_name").
		Joins("JOIN employees ON employees.id = salary_structures.employee_id").
		Order("employees.first_name ASC, employees.last_name ASC").
		Offset(offset).
		Limit(limit).
		Find(&structures).Error
	return structures, total, err
}

func (r *repository) CreateStructure(ctx context.Context, structure *SalaryStructure) error {
	return r.db.WithContext(ctx).Create(structure).Error
}

func (r *repository) UpdateStructure(ctx context.Context, structure *SalaryStructure) error {
	return r.db.WithContext(ctx).Save(structure).Error
}

func (r *repository) FindComponentsByEmployee(ctx context.Context, employeeID string) ([]SalaryComponent, error) {
	var components []SalaryComponent
	err := r.db.WithContext(ctx).
		Where("employee_id = ?", employeeID).
		Order("is_deduction ASC, created_at ASC").
		Find(&components).Error
	return components, err
}

func (r *repository) FindComponent(ctx context.Context, employeeID, componentID string) (*SalaryComponent, error) {
	var component SalaryComponent
	err := r.db.WithContext(ctx).
		Where("id = ? AND employee_id = ?", componentID, employeeID).
		Take(&component).Error
	if err != nil {
		return nil, err
	}
	return &component, nil
}

func (r *repository) CreateComponent(ctx context.Context, component *SalaryComponent) error {
	return r.db.WithContext(ctx).Create(component).Error
}

func (r *repository) UpdateComponent(ctx context.Context, component *SalaryComponent) error {
	return r.db.WithContext(ctx).Save(component).Error
}

func (r *repository) DeleteComponent(ctx context.Context, employeeID, componentID string) (int64, error) {
	res := r.db.WithContext(ctx).
		Where("id = ? AND employee_id = ?", componentID, employeeID).
		Delete(&SalaryComponent{})
	return res.RowsAffected, res.Error
}
