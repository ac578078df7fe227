// Package domain holds the access-control types shared by the rbac module and
// the HTTP middleware, which cannot import each other.
package domain

import (
	"fmt"
	"strings"
)

// Permission is a resource/action pair, written "payroll:approve".
type Permission struct {
	Resource string
	Action   string
}

func (p Permission) String() string {
	return p.Resource + ":" + p.Action
}

func ParsePermission(raw string) (Permission, error) {
	resource, action, ok := strings.Cut(strings.TrimSpace(raw), ":")
	resource, action = strings.TrimSpace(resource), strings.TrimSpace(action)
	if !ok || resource == "" || action == "" || strings.Contains(action, ":") {
		return Permission{}, fmt.Errorf("malformed permission %q", raw)
	}
	return Permission{Resource: resource, Action: action}, nil
}

// EnforceRequest asks whether an employee may perform action on resource
// inside the company (casbin domain).
type EnforceRequest struct {
	EmployeeID string `json:"employee_id" binding:"required"`
	CompanyID  string `json:"company_id" binding:"required"`
	Resource   string `json:"resource" binding:"required"`
	Action     string `json:"action" binding:"required"`
}

func (r EnforceRequest) Permission() Permission {
	return Permission{Resource: r.Resource, Action: r.Action}
}

type EnforceResponse struct {
	Allowed bool `json:"allowed"`
}

type RoleResponse struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Permissions []string `json:"permissions"`
}

type CreateRoleRequest struct {
	Name        string   `json:"name" binding:"required,max=80"`
	Description string   `json:"description" binding:"omitempty,max=255"`
	Permissions []string `json:"permissions"`
}

type UpdateRoleRequest struct {
	Name        string   `json:"name" binding:"omitempty,max=80"`
	Description string   `json:"description" binding:"omitempty,max=255"`
	Permissions []string `json:"permissions"`
}

type PermissionResponse struct {
	ID       string `json:"id"`
	Resource string `json:"resource"`
	Action   string `json:"action"`
	Label    string `json:"label"`
	Category string `json:"category"`
}
