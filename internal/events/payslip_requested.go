package events

import "time"

const PayslipRequestedTopic = "hr.payroll.payslip.requested.v1"

// PayslipRequestedEvent asks the consumer to generate one payslip from the
// employee's current salary structure and the given attendance.
type PayslipRequestedEvent struct {
	EventType       string    `json:"event_type"`
	PayRunID        string    `json:"payrun_id"`
	EmployeeID      string    `json:"employee_id"`
	TotalWorkedDays string    `json:"total_worked_days"`
	TotalLeaves     string    `json:"total_leaves"`
	RequestedBy     string    `json:"requested_by"`
	OccurredAt      time.Time `json:"occurred_at"`
}
