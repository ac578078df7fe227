package payroll

import (
	"time"

	"github.com/shopspring/decimal"
)

type CreatePayrollRequest struct {
	ReferenceMonth int    `json:"reference_month" binding:"required,min=1,max=12"`
	ReferenceYear  int    `json:"reference_year" binding:"required,min=2000,max=2100"`
	Type           string `json:"type" binding:"required,oneof=MONTHLY WEEKLY DAILY ADVANCE"`
	StartDate      string `json:"start_date" binding:"required"`
	EndDate        string `json:"end_date" binding:"required"`
	PaymentDate    string `json:"payment_date" binding:"required"`
	Description    string `json:"description" binding:"max=255"`
}

type UpdatePayrollRequest struct {
	Description *string `json:"description" binding:"omitempty,max=255"`
	StartDate   *string `json:"start_date"`
	EndDate     *string `json:"end_date"`
	PaymentDate *string `json:"payment_date"`
}

type GetPayrollsFilterRequest struct {
	Status string `form:"status"`
	Type   string `form:"type"`
	Year   int    `form:"year" binding:"omitempty,min=2000,max=2100"`
	Month  int    `form:"month" binding:"omitempty,min=1,max=12"`
}

type ItemEntryRequest struct {
	TypeID string          `json:"type_id" binding:"omitempty,uuid"`
	Code   string          `json:"code" binding:"required,max=40"`
	Name   string          `json:"name" binding:"required,max=120"`
	Value  decimal.Decimal `json:"value"`
}

// UpsertItemRequest replaces the entries of one employee's item.
type UpsertItemRequest struct {
	Earnings   []ItemEntryRequest `json:"earnings" binding:"dive"`
	Deductions []ItemEntryRequest `json:"deductions" binding:"dive"`
	Notes      string             `json:"notes" binding:"max=500"`
}

type PayrollResponse struct {
	ID                string                `json:"id"`
	CompanyID         string                `json:"company_id"`
	ReferenceMonth    int                   `json:"reference_month"`
	ReferenceYear     int                   `json:"reference_year"`
	Type              Type                  `json:"type"`
	StartDate         string                `json:"start_date"`
	EndDate           string                `json:"end_date"`
	PaymentDate       string                `json:"payment_date"`
	Status            Status                `json:"status"`
	Description       string                `json:"description"`
	TotalEarnings     decimal.Decimal       `json:"total_earnings"`
	TotalDeductions   decimal.Decimal       `json:"total_deductions"`
	NetAmount         decimal.Decimal       `json:"net_amount"`
	TotalEmployerInss decimal.Decimal       `json:"total_employer_inss"`
	TotalFgts         decimal.Decimal       `json:"total_fgts"`
	EmployeeCount     int                   `json:"employee_count"`
	CreatedBy         string                `json:"created_by"`
	CalculatedAt      *time.Time            `json:"calculated_at,omitempty"`
	ApprovedBy        *string               `json:"approved_by,omitempty"`
	ApprovedAt        *time.Time            `json:"approved_at,omitempty"`
	PaidAt            *time.Time            `json:"paid_at,omitempty"`
	Items             []PayrollItemResponse `json:"items,omitempty"`
}

type PayrollItemResponse struct {
	ID                 string          `json:"id"`
	EmployeeID         string          `json:"employee_id"`
	EmployeeName       string          `json:"employee_name,omitempty"`
	RegistrationNumber string          `json:"registration_number,omitempty"`
	CostCenterName     string          `json:"cost_center_name,omitempty"`
	BaseSalary         decimal.Decimal `json:"base_salary"`
	Earnings           []ItemEntry     `json:"earnings"`
	Deductions         []ItemEntry     `json:"deductions"`
	TotalEarnings      decimal.Decimal `json:"total_earnings"`
	TotalDeductions    decimal.Decimal `json:"total_deductions"`
	NetAmount          decimal.Decimal `json:"net_amount"`
	EmployerInss       decimal.Decimal `json:"employer_inss"`
	FgtsAmount         decimal.Decimal `json:"fgts_amount"`
	Notes              string          `json:"notes,omitempty"`
}

type BreakdownLine struct {
	Code  string          `json:"code"`
	Name  string          `json:"name"`
	Count int             `json:"count"`
	Total decimal.Decimal `json:"total"`
}

type CostCenterTotal struct {
	CostCenterID   string          `json:"cost_center_id,omitempty"`
	CostCenterName string          `json:"cost_center_name"`
	EmployeeCount  int             `json:"employee_count"`
	TotalEarnings  decimal.Decimal `json:"total_earnings"`
	NetAmount      decimal.Decimal `json:"net_amount"`
}

type PayrollBreakdownResponse struct {
	PayrollID     string            `json:"payroll_id"`
	Earnings      []BreakdownLine   `json:"earnings"`
	Deductions    []BreakdownLine   `json:"deductions"`
	CostCenters   []CostCenterTotal `json:"cost_centers"`
	TotalEmployer decimal.Decimal   `json:"total_employer_charges"`
}
