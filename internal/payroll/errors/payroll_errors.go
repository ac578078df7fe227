package payrollerrors

import "github.com/hyagosilvaxds/backend-erp-sub001/internal/shared/apperror"

var (
	ErrInvalidCompanyID      = apperror.InvalidInput("invalid company id")
	ErrInvalidActorID        = apperror.InvalidInput("invalid actor id")
	ErrInvalidEmployeeID     = apperror.InvalidInput("invalid employee id")
	ErrInvalidDateFormat     = apperror.InvalidInput("invalid date format, expected YYYY-MM-DD")
	ErrInvalidDateRange      = apperror.InvalidInput("end_date must not be before start_date")
	ErrInvalidPaymentDate    = apperror.InvalidInput("payment_date must be after end_date")
	ErrInvalidType           = apperror.InvalidInput("type must be MONTHLY, WEEKLY, DAILY or ADVANCE")
	ErrInvalidStatusFilter   = apperror.InvalidInput("invalid payroll status filter")
	ErrInvalidEntry          = apperror.InvalidInput("payroll entries need a code, a name and a non-negative value")
	ErrPayrollAlreadyExists  = apperror.Conflict("payroll already exists for this reference period and type")
	ErrPayrollNotFound       = apperror.NotFound("payroll not found")
	ErrEmployeeNotFound      = apperror.NotFound("employee not found in this company")
	ErrItemNotFound          = apperror.NotFound("payroll item not found")
	ErrCalculateNotAllowed   = apperror.InvalidState("payroll can only be calculated while DRAFT or CALCULATED")
	ErrItemsLocked           = apperror.InvalidState("payroll items can only change while DRAFT or CALCULATED")
	ErrApproveOnlyCalculated = apperror.InvalidState("payroll can only be approved while CALCULATED")
	ErrPayOnlyApproved       = apperror.InvalidState("payroll can only be paid while APPROVED")
	ErrUpdateOnlyDraft       = apperror.InvalidState("payroll header can only be changed while DRAFT")
	ErrDeleteOnlyDraft       = apperror.InvalidState("payroll can only be deleted while DRAFT")
)
