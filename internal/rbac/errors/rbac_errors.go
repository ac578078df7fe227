package rbacerrors

import "github.com/hyagosilvaxds/backend-erp-sub001/internal/shared/apperror"

var (
	ErrRoleNotFound         = apperror.NotFound("Role not found")
	ErrRoleAlreadyExists    = apperror.Conflict("Role with the same name already exists")
	ErrMissingEnforceFields = apperror.InvalidInput("employee_id, company_id, resource, and action are required")
	ErrUnknownPermission    = apperror.InvalidInput("One or more permissions do not exist")
)
