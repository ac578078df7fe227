package employee

import "github.com/shopspring/decimal"

type CreateEmployeeRequest struct {
	FullName           string          `json:"full_name" binding:"required,max=150"`
	Email              string          `json:"email" binding:"required,email"`
	Cpf                string          `json:"cpf" binding:"omitempty"`
	RegistrationNumber string          `json:"registration_number" binding:"omitempty,max=30"`
	CostCenterID       string          `json:"cost_center_id" binding:"omitempty,uuid"`
	HireDate           string          `json:"hire_date" binding:"required,datetime=2006-01-02"`
	Salary             decimal.Decimal `json:"salary"`
	FgtsCategory       string          `json:"fgts_category" binding:"omitempty,oneof=STANDARD APPRENTICE INTERN DOMESTIC"`
}

type UpdateEmployeeRequest struct {
	FullName        string `json:"full_name" binding:"required,max=150"`
	Email           string `json:"email" binding:"required,email"`
	Cpf             string `json:"cpf" binding:"omitempty"`
	CostCenterID    string `json:"cost_center_id" binding:"omitempty,uuid"`
	FgtsCategory    string `json:"fgts_category" binding:"omitempty,oneof=STANDARD APPRENTICE INTERN DOMESTIC"`
	Status          string `json:"status" binding:"omitempty,oneof=ACTIVE INACTIVE TERMINATED"`
	TerminationDate string `json:"termination_date" binding:"omitempty,datetime=2006-01-02"`
}

type EmployeeResponse struct {
	ID                 string          `json:"id"`
	CompanyID          string          `json:"company_id"`
	RegistrationNumber string          `json:"registration_number"`
	FullName           string          `json:"full_name"`
	Email              string          `json:"email"`
	Cpf                string          `json:"cpf,omitempty"`
	CostCenterID       string          `json:"cost_center_id,omitempty"`
	CostCenterName     string          `json:"cost_center_name,omitempty"`
	HireDate           string          `json:"hire_date"`
	TerminationDate    string          `json:"termination_date,omitempty"`
	Salary             decimal.Decimal `json:"salary"`
	FgtsCategory       string          `json:"fgts_category"`
	Status             string          `json:"status"`
}

// EmployeeOptionResponse feeds select inputs.
type EmployeeOptionResponse struct {
	ID                 string `json:"id"`
	RegistrationNumber string `json:"registration_number"`
	FullName           string `json:"full_name"`
}
