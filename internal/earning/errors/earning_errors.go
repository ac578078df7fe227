package earningerrors

import "github.com/hyagosilvaxds/backend-erp-sub001/internal/shared/apperror"

var (
	ErrEarningTypeNotFound       = apperror.NotFound("Earning type not found")
	ErrEarningTypeCodeExists     = apperror.Conflict("Earning type code already exists in this company")
	ErrEarningTypeKindMismatch   = apperror.InvalidInput("Earning type kind does not match the assignment")
	ErrAssignmentNotFound        = apperror.NotFound("Employee earning or deduction not found")
	ErrValueOrPercentageRequired = apperror.InvalidInput("Exactly one of value or percentage is required")
	ErrInvalidAmount             = apperror.InvalidInput("Value must be positive and percentage must be between 0 and 100")
	ErrInvalidDateRange          = apperror.InvalidInput("end_date must not be before start_date")
	ErrInvalidKind               = apperror.InvalidInput("Kind must be EARNING or DEDUCTION")
	ErrEmployeeNotFound          = apperror.NotFound("Employee not found")
)
