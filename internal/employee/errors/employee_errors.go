package employeeerrors

import "github.com/hyagosilvaxds/backend-erp-sub001/internal/shared/apperror"

var (
	ErrEmployeeNotFound                = apperror.NotFound("Employee not found")
	ErrEmployeeAlreadyExists           = apperror.Conflict("Employee with the same email already exists")
	ErrRegistrationNumberAlreadyExists = apperror.Conflict("Registration number already exists in this company")
	ErrInvalidCompanyID                = apperror.InvalidInput("Invalid company ID")
	ErrInvalidCpf                      = apperror.InvalidInput("Invalid CPF")
	ErrInvalidSalary                   = apperror.InvalidInput("Salary must be greater than zero")
	ErrInvalidHireDate                 = apperror.InvalidInput("Invalid hire_date format, expected YYYY-MM-DD")
	ErrInvalidTerminationDate          = apperror.InvalidInput("Termination date must be a YYYY-MM-DD date on or after the hire date")
)
