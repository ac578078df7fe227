package events

import "time"

const (
	PayrollLifecycleTopic = "erp.payroll.lifecycle.v1"

	EventPayrollCalculated = "payroll_calculated"
	EventPayrollApproved   = "payroll_approved"
	EventPayrollPaid       = "payroll_paid"
)

// PayrollStatusChangedEvent is emitted in the same transaction as every
// payroll status transition. Money fields are decimal strings.
type PayrollStatusChangedEvent struct {
	EventType       string    `json:"event_type"`
	RequestID       string    `json:"request_id,omitempty"`
	PayrollID       string    `json:"payroll_id"`
	CompanyID       string    `json:"company_id"`
	ReferenceMonth  int       `json:"reference_month"`
	ReferenceYear   int       `json:"reference_year"`
	Type            string    `json:"type"`
	FromStatus      string    `json:"from_status"`
	ToStatus        string    `json:"to_status"`
	EmployeeCount   int       `json:"employee_count"`
	TotalEarnings   string    `json:"total_earnings"`
	TotalDeductions string    `json:"total_deductions"`
	NetAmount       string    `json:"net_amount"`
	ActorID         string    `json:"actor_id,omitempty"`
	OccurredAt      time.Time `json:"occurred_at"`
}
