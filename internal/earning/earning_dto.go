package earning

import "github.com/shopspring/decimal"

type CreateEarningTypeRequest struct {
	Kind        string `json:"kind" binding:"required,oneof=EARNING DEDUCTION"`
	Code        string `json:"code" binding:"required,max=20"`
	Name        string `json:"name" binding:"required,max=120"`
	Description string `json:"description" binding:"omitempty,max=255"`
}

type UpdateEarningTypeRequest struct {
	Name        string `json:"name" binding:"required,max=120"`
	Description string `json:"description" binding:"omitempty,max=255"`
	Active      *bool  `json:"active"`
}

type EarningTypeResponse struct {
	ID          string `json:"id"`
	Kind        string `json:"kind"`
	Code        string `json:"code"`
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	Active      bool   `json:"active"`
}

type CreateAssignmentRequest struct {
	EmployeeID    string           `json:"employee_id" binding:"required,uuid"`
	EarningTypeID string           `json:"earning_type_id" binding:"required,uuid"`
	Value         *decimal.Decimal `json:"value"`
	Percentage    *decimal.Decimal `json:"percentage"`
	Recurrent     bool             `json:"recurrent"`
	StartDate     string           `json:"start_date" binding:"required,datetime=2006-01-02"`
	EndDate       string           `json:"end_date" binding:"omitempty,datetime=2006-01-02"`
	Notes         string           `json:"notes" binding:"omitempty,max=255"`
}

type UpdateAssignmentRequest struct {
	Value      *decimal.Decimal `json:"value"`
	Percentage *decimal.Decimal `json:"percentage"`
	Recurrent  bool             `json:"recurrent"`
	StartDate  string           `json:"start_date" binding:"required,datetime=2006-01-02"`
	EndDate    string           `json:"end_date" binding:"omitempty,datetime=2006-01-02"`
	Active     *bool            `json:"active"`
	Notes      string           `json:"notes" binding:"omitempty,max=255"`
}

type AssignmentResponse struct {
	ID            string           `json:"id"`
	Kind          string           `json:"kind"`
	EmployeeID    string           `json:"employee_id"`
	EarningTypeID string           `json:"earning_type_id"`
	Code          string           `json:"code,omitempty"`
	Name          string           `json:"name,omitempty"`
	Value         *decimal.Decimal `json:"value,omitempty"`
	Percentage    *decimal.Decimal `json:"percentage,omitempty"`
	Recurrent     bool             `json:"recurrent"`
	StartDate     string           `json:"start_date"`
	EndDate       string           `json:"end_date,omitempty"`
	Active        bool             `json:"active"`
	Notes         string           `json:"notes,omitempty"`
}
