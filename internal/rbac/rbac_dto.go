package rbac

import "github.com/hyagosilvaxds/backend-erp-sub001/internal/domain"

type (
	EnforceRequest     = domain.EnforceRequest
	EnforceResponse    = domain.EnforceResponse
	RoleResponse       = domain.RoleResponse
	CreateRoleRequest  = domain.CreateRoleRequest
	UpdateRoleRequest  = domain.UpdateRoleRequest
	PermissionResponse = domain.PermissionResponse
)

type AssignRoleRequest struct {
	EmployeeID string `json:"employee_id" binding:"required,uuid"`
}
