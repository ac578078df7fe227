package costcentererrors

import "github.com/hyagosilvaxds/backend-erp-sub001/internal/shared/apperror"

var (
	ErrCostCenterNotFound   = apperror.NotFound("Cost center not found")
	ErrCostCenterCodeExists = apperror.Conflict("Cost center code already exists in this company")
	ErrInvalidCompanyID     = apperror.InvalidInput("Invalid company ID")
)
