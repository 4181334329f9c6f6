package salaryclient

import (
	"context"
	"fmt"
	"io"
	"strings"

	"gopkg.in/yaml.v3"
)

// ApplyDocument describes one employee's salary setup in a single file:
//
//	employee_id: 6f1c...
//	structure:
//	  monthly_wage: "30000"
//	components:
//	  - name: HRA
//	    value: "5000"
type ApplyDocument struct {
	EmployeeID string          `yaml:"employee_id"`
	Structure  *StructureForm  `yaml:"structure"`
	Components []ComponentForm `yaml:"components"`
}

func DecodeApplyDocument(r io.Reader) (ApplyDocument, error) {
	var doc ApplyDocument
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&doc); err != nil {
		return doc, fmt.Errorf("decode apply file: %w", err)
	}
	if strings.TrimSpace(doc.EmployeeID) == "" {
		return doc, &ValidationError{Field: "employee_id", Message: "is required"}
	}
	return doc, nil
}

// StepResult is the outcome of one request of an apply run.
type StepResult struct {
	Step string
	Err  error
}

// Apply saves the structure and then adds each component, one request per
// step. A failed step does not stop later steps and nothing is rolled back,
// so the caller must report every failed StepResult.
func (c *Client) Apply(ctx context.Context, doc ApplyDocument) []StepResult {
	var results []StepResult

	if doc.Structure != nil {
		_, err := c.SaveStructure(ctx, doc.EmployeeID, *doc.Structure)
		results = append(results, StepResult{Step: "save structure", Err: err})
	}

	for i, comp := range doc.Components {
		_, err := c.AddComponent(ctx, doc.EmployeeID, comp, "")
		step := fmt.Sprintf("add component #%d", i+1)
		if name := strings.TrimSpace(comp.Name); name != "" {
			step = fmt.Sprintf("add component %q", name)
		}
		results = append(results, StepResult{Step: step, Err: err})
	}
	return results
}
