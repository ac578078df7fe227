package events

import "time"

const (
	EmployeeLifecycleTopic = "erp.employee.lifecycle.v1"

	EventEmployeeCreated = "employee_created"
)

// EmployeeCreatedEvent seeds the salary history of a newly hired employee.
type EmployeeCreatedEvent struct {
	EventType  string    `json:"event_type"`
	RequestID  string    `json:"request_id,omitempty"`
	EmployeeID string    `json:"employee_id"`
	CompanyID  string    `json:"company_id"`
	BaseSalary string    `json:"base_salary"`
	HireDate   string    `json:"hire_date"`
	OccurredAt time.Time `json:"occurred_at"`
}
