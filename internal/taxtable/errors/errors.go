package taxtableerrors

import "github.com/hyagosilvaxds/backend-erp-sub001/internal/shared/apperror"

var (
	ErrTaxTableNotFound  = apperror.NotFound("Tax table not found")
	ErrActiveTableExists = apperror.Conflict("An active tax table already exists for this kind and period")
	ErrInvalidKind       = apperror.InvalidInput("Kind must be inss, irrf or fgts")
	ErrInvalidPeriod     = apperror.InvalidInput("Year must be between 2000 and 2100 and month between 1 and 12")
	ErrInvalidBrackets   = apperror.InvalidInput("Tax brackets are invalid")
	ErrInvalidFgtsRates  = apperror.InvalidInput("FGTS rates are invalid")
	ErrInvalidSimulation = apperror.InvalidInput("Simulation amount must not be negative")
	ErrNoActiveTable     = apperror.NotFound("No active tax table for this period")
)
