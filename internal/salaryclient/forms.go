package salaryclient

import (
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
)

const (
	ComputationFixed      = "fixed"
	ComputationPercentage = "percentage"
)

// StructureForm holds the structure fields as the user typed them. Empty
// optional fields are left to the server defaults.
type StructureForm struct {
	MonthlyWage             string `yaml:"monthly_wage"`
	WorkingDaysPerWeek      string `yaml:"working_days_per_week"`
	BreakHours              string `yaml:"break_hours"`
	PFEmployeeRate          string `yaml:"pf_employee_rate"`
	PFEmployerRate          string `yaml:"pf_employer_rate"`
	ProfessionalTaxOverride string `yaml:"professional_tax_override"`
}

type structurePayload struct {
	MonthlyWage             decimal.Decimal  `json:"monthly_wage"`
	WorkingDaysPerWeek      int              `json:"working_days_per_week,omitempty"`
	BreakHours              *decimal.Decimal `json:"break_hours,omitempty"`
	PFEmployeeRate          *decimal.Decimal `json:"pf_employee_rate,omitempty"`
	PFEmployerRate          *decimal.Decimal `json:"pf_employer_rate,omitempty"`
	ProfessionalTaxOverride *decimal.Decimal `json:"professional_tax_override,omitempty"`
}

func (f StructureForm) Validate() error {
	_, err := f.payload()
	return err
}

func (f StructureForm) payload() (structurePayload, error) {
	var p structurePayload

	raw := strings.TrimSpace(f.MonthlyWage)
	if raw == "" {
		return p, &ValidationError{Field: "monthly_wage", Message: "is required"}
	}
	wage, err := decimal.NewFromString(raw)
	if err != nil {
		return p, &ValidationError{Field: "monthly_wage", Message: "must be a number"}
	}
	p.MonthlyWage = wage

	if v := strings.TrimSpace(f.WorkingDaysPerWeek); v != "" {
		days, err := strconv.Atoi(v)
		if err != nil || days < 1 || days > 7 {
			return p, &ValidationError{Field: "working_days_per_week", Message: "must be a whole number from 1 to 7"}
		}
		p.WorkingDaysPerWeek = days
	}

	optional := []struct {
		field string
		raw   string
		dst   **decimal.Decimal
	}{
		{"break_hours", f.BreakHours, &p.BreakHours},
		{"pf_employee_rate", f.PFEmployeeRate, &p.PFEmployeeRate},
		{"pf_employer_rate", f.PFEmployerRate, &p.PFEmployerRate},
		{"professional_tax_override", f.ProfessionalTaxOverride, &p.ProfessionalTaxOverride},
	}
	for _, o := range optional {
		d, err := optionalDecimal(o.field, o.raw)
		if err != nil {
			return p, err
		}
		*o.dst = d
	}
	return p, nil
}

// ComponentForm is a new component line. Name and Value are required.
type ComponentForm struct {
	Name            string `yaml:"name"`
	ComputationType string `yaml:"computation_type"`
	Value           string `yaml:"value"`
	IsDeduction     bool   `yaml:"is_deduction"`
}

type componentPayload struct {
	Name            string          `json:"name"`
	ComputationType string          `json:"computation_type,omitempty"`
	Value           decimal.Decimal `json:"value"`
	IsDeduction     bool            `json:"is_deduction"`
}

func (f ComponentForm) Validate() error {
	_, err := f.payload()
	return err
}

func (f ComponentForm) payload() (componentPayload, error) {
	p := componentPayload{
		Name:            strings.TrimSpace(f.Name),
		ComputationType: strings.TrimSpace(f.ComputationType),
		IsDeduction:     f.IsDeduction,
	}
	if p.Name == "" {
		return p, &ValidationError{Field: "name", Message: "is required"}
	}
	if err := validateComputationType(p.ComputationType); err != nil {
		return p, err
	}

	raw := strings.TrimSpace(f.Value)
	if raw == "" {
		return p, &ValidationError{Field: "value", Message: "is required"}
	}
	value, err := decimal.NewFromString(raw)
	if err != nil {
		return p, &ValidationError{Field: "value", Message: "must be a number"}
	}
	p.Value = value
	return p, nil
}

// ComponentPatch changes only the fields that are set.
type ComponentPatch struct {
	Name            *string
	ComputationType *string
	Value           *string
	IsDeduction     *bool
}

type componentPatchPayload struct {
	Name            *string          `json:"name,omitempty"`
	ComputationType *string          `json:"computation_type,omitempty"`
	Value           *decimal.Decimal `json:"value,omitempty"`
	IsDeduction     *bool            `json:"is_deduction,omitempty"`
}

func (f ComponentPatch) Validate() error {
	_, err := f.payload()
	return err
}

func (f ComponentPatch) payload() (componentPatchPayload, error) {
	p := componentPatchPayload{IsDeduction: f.IsDeduction}

	if f.Name != nil {
		name := strings.TrimSpace(*f.Name)
		if name == "" {
			return p, &ValidationError{Field: "name", Message: "cannot be empty"}
		}
		p.Name = &name
	}
	if f.ComputationType != nil {
		t := strings.TrimSpace(*f.ComputationType)
		if t == "" {
			return p, &ValidationError{Field: "computation_type", Message: "cannot be empty"}
		}
		if err := validateComputationType(t); err != nil {
			return p, err
		}
		p.ComputationType = &t
	}
	if f.Value != nil {
		raw := strings.TrimSpace(*f.Value)
		if raw == "" {
			return p, &ValidationError{Field: "value", Message: "cannot be empty"}
		}
		d, err := decimal.NewFromString(raw)
		if err != nil {
			return p, &ValidationError{Field: "value", Message: "must be a number"}
		}
		p.Value = &d
	}
	return p, nil
}

func validateComputationType(t string) error {
	switch t {
	case "", ComputationFixed, ComputationPercentage:
		return nil
	default:
		return &ValidationError{Field: "computation_type", Message: "must be fixed or percentage"}
	}
}

func optionalDecimal(field, raw string) (*decimal.Decimal, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil, nil
	}
	d, err := decimal.NewFromString(raw)
	if err != nil {
		return nil, &ValidationError{Field: field, Message: "must be a number"}
	}
	return &d, nil
}
