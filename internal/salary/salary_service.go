package salary

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"time"

	"go-payroll/internal/events"
	"go-payroll/internal/messaging/kafka"
	"go-payroll/internal/payrollcalc"
	salaryerrors "go-payroll/internal/salary/errors"
	"go-payroll/internal/shared/apperror"
	"go-payroll/internal/shared/contextutil"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

const (
	defaultWorkingDaysPerWeek = 5
	defaultPageSize           = 20
)

var (
	defaultBreakHours = decimal.NewFromInt(1)
	defaultPFRate     = decimal.NewFromInt(12)
	hundred           = decimal.NewFromInt(100)
)

//go:generate mockgen -source=salary_service.go -destination=mock/salary_service_mock.go -package=mock
type Service interface {
	GetByEmployee(ctx context.Context, employeeID string) (EmployeeSalaryResponse, error)
	GetMine(ctx context.Context, employeeID string) (EmployeeSalaryResponse, error)
	List(ctx context.Context, page, pageSize int) ([]StructureResponse, int64, error)
	UpsertStructure(ctx context.Context, employeeID string, req UpsertStructureRequest) (EmployeeSalaryResponse, error)
	AddComponent(ctx context.Context, employeeID string, req CreateComponentRequest) (ComponentResponse, error)
	UpdateComponent(ctx context.Context, employeeID, componentID string, req UpdateComponentRequest) (ComponentResponse, error)
	DeleteComponent(ctx context.Context, employeeID, componentID string) error
}

type service struct {
	db     *gorm.DB
	repo   Repository
	outbox kafka.OutboxRepository
	logger *zap.Logger
}

func NewService(db *gorm.DB, repo Repository, logger ...*zap.Logger) Service {
	return NewServiceWithOutbox(db, repo, nil, logger...)
}

func NewServiceWithOutbox(
	db *gorm.DB,
	repo Repository,
	outboxRepo kafka.OutboxRepository,
	logger ...*zap.Logger,
) Service {
	l := zap.L().Named("salary.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("salary.service")
	}
	return &service{
		db:     db,
		repo:   repo,
		outbox: outboxRepo,
		logger: l,
	}
}

func (s *service) GetByEmployee(ctx context.Context, employeeID string) (EmployeeSalaryResponse, error) {
	if _, err := uuid.Parse(employeeID); err != nil {
		return EmployeeSalaryResponse{}, salaryerrors.ErrInvalidEmployeeID
	}
	return s.load(ctx, s.repo, employeeID)
}

// GetMine is GetByEmployee for the employee bound to the caller's token.
func (s *service) GetMine(ctx context.Context, employeeID string) (EmployeeSalaryResponse, error) {
	if employeeID == "" {
		return EmployeeSalaryResponse{}, apperror.ErrUnauthorized
	}
	return s.GetByEmployee(ctx, employeeID)
}

func (s *service) List(ctx context.Context, page, pageSize int) ([]StructureResponse, int64, error) {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 {
		pageSize = defaultPageSize
	}

	structures, total, err := s.repo.ListStructures(ctx, (page-1)*pageSize, pageSize)
	if err != nil {
		return nil, 0, mapRepositoryError(err)
	}

	res := make([]StructureResponse, len(structures))
	for i, st := range structures {
		res[i] = mapStructureToResponse(st)
	}
	return res, total, nil
}

func (s *service) UpsertStructure(
	ctx context.Context,
	employeeID string,
	req UpsertStructureRequest,
) (EmployeeSalaryResponse, error) {
	rid := contextutil.GetRequestID(ctx)
	empID, err := uuid.Parse(employeeID)
	if err != nil {
		return EmployeeSalaryResponse{}, salaryerrors.ErrInvalidEmployeeID
	}
	if err := validateStructureRequest(req); err != nil {
		return EmployeeSalaryResponse{}, err
	}

	var resp EmployeeSalaryResponse
	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		qtx := s.repo.WithTx(tx)

		structure, err := qtx.FindStructureByEmployee(ctx, employeeID)
		switch {
		case errors.Is(err, gorm.ErrRecordNotFound):
			structure = newStructure(empID)
			applyStructureRequest(structure, req)
			if err := qtx.CreateStructure(ctx, structure); err != nil {
				return mapRepositoryError(err)
			}
		case err != nil:
			return mapRepositoryError(err)
		default:
			applyStructureRequest(structure, req)
			if err := qtx.UpdateStructure(ctx, structure); err != nil {
				return mapRepositoryError(err)
			}
		}

		components, err := qtx.FindComponentsByEmployee(ctx, employeeID)
		if err != nil {
			return mapRepositoryError(err)
		}
		for i := range components {
			amount := payrollcalc.ResolveAmount(components[i].CalcComponent(), structure.MonthlyWage)
			if amount.Equal(components[i].Amount) {
				continue
			}
			components[i].Amount = amount
			if err := qtx.UpdateComponent(ctx, &components[i]); err != nil {
				return mapRepositoryError(err)
			}
		}

		if s.outbox != nil {
			if err := s.queueStructureUpdated(ctx, tx, rid, structure); err != nil {
				return err
			}
		}

		resp, err = s.load(ctx, qtx, employeeID)
		return err
	})
	if err != nil {
		s.logger.Error("upsert salary structure failed",
			zap.String("request_id", rid),
			zap.String("employee_id", employeeID),
			zap.Error(err),
		)
		return EmployeeSalaryResponse{}, err
	}

	s.logger.Info("salary structure saved",
		zap.String("request_id", rid),
		zap.String("employee_id", employeeID),
		zap.Int("components", len(resp.Components)),
	)
	return resp, nil
}

func (s *service) AddComponent(
	ctx context.Context,
	employeeID string,
	req CreateComponentRequest,
) (ComponentResponse, error) {
	empID, err := uuid.Parse(employeeID)
	if err != nil {
		return ComponentResponse{}, salaryerrors.ErrInvalidEmployeeID
	}

	name := strings.TrimSpace(req.Name)
	if name == "" {
		return ComponentResponse{}, apperror.RequiredField("Name")
	}
	if req.Value == nil {
		return ComponentResponse{}, apperror.RequiredField("Value")
	}
	computationType := payrollcalc.ComputationFixed
	if req.ComputationType != "" {
		computationType = payrollcalc.ComputationType(req.ComputationType)
	}
	value := req.Value.Round(2)
	if err := validateComponent(computationType, value); err != nil {
		return ComponentResponse{}, err
	}

	var created SalaryComponent
	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		qtx := s.repo.WithTx(tx)

		structure, err := qtx.FindStructureByEmployee(ctx, employeeID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return salaryerrors.ErrStructureNotFound
			}
			return mapRepositoryError(err)
		}

		created = SalaryComponent{
			ID:              uuid.New(),
			EmployeeID:      empID,
			Name:            name,
			ComputationType: computationType,
			Value:           value,
			IsDeduction:     req.IsDeduction,
		}
		created.Amount = payrollcalc.ResolveAmount(created.CalcComponent(), structure.MonthlyWage)

		return mapRepositoryError(qtx.CreateComponent(ctx, &created))
	})
	if err != nil {
		return ComponentResponse{}, err
	}

	s.logger.Info("salary component added",
		zap.String("employee_id", employeeID),
		zap.String("component_id", created.ID.String()),
		zap.String("name", created.Name),
	)
	return mapComponentToResponse(created), nil
}

func (s *service) UpdateComponent(
	ctx context.Context,
	employeeID, componentID string,
	req UpdateComponentRequest,
) (ComponentResponse, error) {
	if _, err := uuid.Parse(employeeID); err != nil {
		return ComponentResponse{}, salaryerrors.ErrInvalidEmployeeID
	}
	if _, err := uuid.Parse(componentID); err != nil {
		return ComponentResponse{}, salaryerrors.ErrInvalidComponentID
	}
	if req.Name != nil && strings.TrimSpace(*req.Name) == "" {
		return ComponentResponse{}, apperror.RequiredField("Name")
	}

	var updated SalaryComponent
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		qtx := s.repo.WithTx(tx)

		component, err := qtx.FindComponent(ctx, employeeID, componentID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return salaryerrors.ErrComponentNotFound
			}
			return mapRepositoryError(err)
		}

		if req.Name != nil {
			component.Name = strings.TrimSpace(*req.Name)
		}
		if req.ComputationType != nil {
			component.ComputationType = payrollcalc.ComputationType(*req.ComputationType)
		}
		if req.Value != nil {
			component.Value = req.Value.Round(2)
		}
		if req.IsDeduction != nil {
			component.IsDeduction = *req.IsDeduction
		}
		if err := validateComponent(component.ComputationType, component.Value); err != nil {
			return err
		}

		structure, err := qtx.FindStructureByEmployee(ctx, employeeID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return salaryerrors.ErrStructureNotFound
			}
			return mapRepositoryError(err)
		}
		component.Amount = payrollcalc.ResolveAmount(component.CalcComponent(), structure.MonthlyWage)

		if err := qtx.UpdateComponent(ctx, component); err != nil {
			return mapRepositoryError(err)
		}
		updated = *component
		return nil
	})
	if err != nil {
		return ComponentResponse{}, err
	}

	return mapComponentToResponse(updated), nil
}

func (s *service) DeleteComponent(ctx context.Context, employeeID, componentID string) error {
	if _, err := uuid.Parse(employeeID); err != nil {
		return salaryerrors.ErrInvalidEmployeeID
	}
	if _, err := uuid.Parse(componentID); err != nil {
		return salaryerrors.ErrInvalidComponentID
	}

	affected, err := s.repo.DeleteComponent(ctx, employeeID, componentID)
	if err != nil {
		return mapRepositoryError(err)
	}
	if affected == 0 {
		return salaryerrors.ErrComponentNotFound
	}

	s.logger.Info("salary component deleted",
		zap.String("employee_id", employeeID),
		zap.String("component_id", componentID),
	)
	return nil
}

func (s *service) load(ctx context.Context, repo Repository, employeeID string) (EmployeeSalaryResponse, error) {
	resp := EmployeeSalaryResponse{
		EmployeeID: employeeID,
		Components: []ComponentResponse{},
	}

	structure, err := repo.FindStructureByEmployee(ctx, employeeID)
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
	case err != nil:
		return EmployeeSalaryResponse{}, mapRepositoryError(err)
	default:
		st := mapStructureToResponse(*structure)
		resp.Structure = &st
	}

	components, err := repo.FindComponentsByEmployee(ctx, employeeID)
	if err != nil {
		return EmployeeSalaryResponse{}, mapRepositoryError(err)
	}
	for _, c := range components {
		resp.Components = append(resp.Components, mapComponentToResponse(c))
	}
	return resp, nil
}

func (s *service) queueStructureUpdated(ctx context.Context, tx *gorm.DB, rid string, structure *SalaryStructure) error {
	event := events.SalaryStructureUpdatedEvent{
		EventType:   "salary.structure.updated",
		EmployeeID:  structure.EmployeeID.String(),
		StructureID: structure.ID.String(),
		MonthlyWage: structure.MonthlyWage.StringFixed(2),
		OccurredAt:  time.Now().UTC(),
	}
	payload, err := json.Marshal(event)
	if err != nil {
		return err
	}

	return s.outbox.WithTx(tx).Create(ctx, kafka.OutboxEvent{
		ID:            uuid.NewString(),
		RequestID:     rid,
		AggregateType: "salary_structure",
		AggregateID:   structure.EmployeeID.String(),
		EventType:     event.EventType,
		Topic:         events.SalaryStructureUpdatedTopic,
		Payload:       payload,
		Status:        kafka.OutboxStatusPending,
	})
}

func newStructure(employeeID uuid.UUID) *SalaryStructure {
	return &SalaryStructure{
		ID:                 uuid.New(),
		EmployeeID:         employeeID,
		WorkingDaysPerWeek: defaultWorkingDaysPerWeek,
		BreakHours:         defaultBreakHours,
		PFEmployeeRate:     defaultPFRate,
		PFEmployerRate:     defaultPFRate,
	}
}

// applyStructureRequest overwrites the fields present in req. A nil tax
// override clears it.
func applyStructureRequest(st *SalaryStructure, req UpsertStructureRequest) {
	st.MonthlyWage = req.MonthlyWage.Round(2)
	if req.WorkingDaysPerWeek != 0 {
		st.WorkingDaysPerWeek = req.WorkingDaysPerWeek
	}
	if req.BreakHours != nil {
		st.BreakHours = *req.BreakHours
	}
	if req.PFEmployeeRate != nil {
		st.PFEmployeeRate = *req.PFEmployeeRate
	}
	if req.PFEmployerRate != nil {
		st.PFEmployerRate = *req.PFEmployerRate
	}
	st.ProfessionalTaxOverride = decimal.NullDecimal{}
	if req.ProfessionalTaxOverride != nil {
		st.ProfessionalTaxOverride = decimal.NewNullDecimal(req.ProfessionalTaxOverride.Round(2))
	}
}

func validateStructureRequest(req UpsertStructureRequest) error {
	if req.MonthlyWage == nil {
		return apperror.RequiredField("Monthly Wage")
	}
	if !req.MonthlyWage.Round(2).IsPositive() {
		return salaryerrors.ErrInvalidMonthlyWage
	}
	if req.WorkingDaysPerWeek < 0 || req.WorkingDaysPerWeek > 7 {
		return apperror.InvalidField("Working Days Per Week")
	}
	if req.BreakHours != nil && req.BreakHours.IsNegative() {
		return salaryerrors.ErrInvalidBreakHours
	}
	for _, rate := range []*decimal.Decimal{req.PFEmployeeRate, req.PFEmployerRate} {
		if rate != nil && (rate.IsNegative() || rate.GreaterThan(hundred)) {
			return salaryerrors.ErrInvalidRate
		}
	}
	if req.ProfessionalTaxOverride != nil && req.ProfessionalTaxOverride.IsNegative() {
		return salaryerrors.ErrInvalidTaxOverride
	}
	return nil
}

func validateComponent(t payrollcalc.ComputationType, value decimal.Decimal) error {
	if !t.Valid() {
		return salaryerrors.ErrInvalidComputationType
	}
	if value.IsNegative() {
		return salaryerrors.ErrInvalidComponentValue
	}
	return nil
}

func mapStructureToResponse(st SalaryStructure) StructureResponse {
	res := StructureResponse{
		ID:                 st.ID.String(),
		EmployeeID:         st.EmployeeID.String(),
		EmployeeName:       st.EmployeeName,
		MonthlyWage:        st.MonthlyWage,
		WorkingDaysPerWeek: st.WorkingDaysPerWeek,
		BreakHours:         st.BreakHours,
		PFEmployeeRate:     st.PFEmployeeRate,
		PFEmployerRate:     st.PFEmployerRate,
	}
	if st.ProfessionalTaxOverride.Valid {
		v := st.ProfessionalTaxOverride.Decimal
		res.ProfessionalTaxOverride = &v
	}
	if !st.UpdatedAt.IsZero() {
		res.UpdatedAt = st.UpdatedAt.Format(time.RFC3339)
	}
	return res
}

func mapComponentToResponse(c SalaryComponent) ComponentResponse {
	return ComponentResponse{
		ID:              c.ID.String(),
		EmployeeID:      c.EmployeeID.String(),
		Name:            c.Name,
		ComputationType: string(c.ComputationType),
		Value:           c.Value,
		IsDeduction:     c.IsDeduction,
		Amount:          c.Amount,
	}
}
