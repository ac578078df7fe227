package companyerrors

import "github.com/hyagosilvaxds/backend-erp-sub001/internal/shared/apperror"

var (
	ErrCompanyNotFound         = apperror.NotFound("Company not found")
	ErrInvalidCompanyID        = apperror.InvalidInput("Invalid company ID")
	ErrInvalidRegistrationType = apperror.InvalidInput("Registration type must be one of CNPJ, IE, IM")
	ErrInvalidCnpj             = apperror.InvalidInput("CNPJ is invalid")
	ErrRegistrationNotFound    = apperror.NotFound("Company registration not found")
	ErrMissingRequiredFields   = apperror.InvalidInput("Missing required fields")
)
