package events

import "time"

const SalaryStructureUpdatedTopic = "hr.salary.structure.updated.v1"

type SalaryStructureUpdatedEvent struct {
	EventType   string    `json:"event_type"`
	EmployeeID  string    `json:"employee_id"`
	StructureID string    `json:"structure_id"`
	MonthlyWage string    `json:"monthly_wage"`
	OccurredAt  time.Time `json:"occurred_at"`
}
