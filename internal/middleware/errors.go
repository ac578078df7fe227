package middleware

import "github.com/hyagosilvaxds/backend-erp-sub001/internal/shared/apperror"

var (
	ErrTokenNotFound      = apperror.Unauthorized("Token not found")
	ErrInvalidToken       = apperror.Unauthorized("Invalid token")
	ErrTokenExpired       = apperror.Unauthorized("Token expired")
	ErrMissingClaim       = apperror.Unauthorized("Required claim missing from token")
	ErrMissingAuthContext = apperror.Unauthorized("Missing auth context")
	ErrRequestInProgress  = apperror.Conflict("A request with the same Idempotency-Key is still being processed")
	ErrTooManyRequests    = apperror.TooManyRequests("Too many requests")
)
