package employeesalaryerrors

import "github.com/hyagosilvaxds/backend-erp-sub001/internal/shared/apperror"

var (
	ErrSalaryEffectiveDateAlreadyExists = apperror.Conflict("Salary for this employee and effective date already exists")
	ErrSalaryNotFound                   = apperror.NotFound("Salary record not found")
	ErrInvalidBaseSalary                = apperror.InvalidInput("Base salary must be greater than zero")
	ErrInvalidEffectiveDate             = apperror.InvalidInput("Invalid effective_date format, expected YYYY-MM-DD")
	ErrInvalidEmployeeID                = apperror.InvalidInput("Invalid employee ID")
)
