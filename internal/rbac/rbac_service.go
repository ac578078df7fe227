package rbac

import (
	"errors"
	"strings"
	"sync"

	"github.com/hyagosilvaxds/backend-erp-sub001/internal/domain"
	rbacerrors "github.com/hyagosilvaxds/backend-erp-sub001/internal/rbac/errors"

	"github.com/casbin/casbin/v2"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

//go:generate mockgen -source=rbac_service.go -destination=mock/rbac_service_mock.go -package=mock
type Service interface {
	LoadCompanyPolicy(companyID string) error
	Enforce(req EnforceRequest) (bool, error)

	ListRoles(companyID string) ([]RoleResponse, error)
	GetRole(companyID, id string) (RoleResponse, error)
	CreateRole(companyID string, req CreateRoleRequest) (RoleResponse, error)
	UpdateRole(companyID, id string, req UpdateRoleRequest) (RoleResponse, error)
	DeleteRole(companyID, id string) error
	AssignRole(companyID, roleID, employeeID string) error
	ListPermissions() ([]PermissionResponse, error)
}

type service struct {
	repo     Repository
	enforcer *casbin.Enforcer
	mu       sync.Mutex
	logger   *zap.Logger
}

func NewService(repo Repository, enforcer *casbin.Enforcer, logger ...*zap.Logger) Service {
	l := zap.L().Named("rbac.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("rbac.service")
	}
	return &service{
		repo:     repo,
		enforcer: enforcer,
		logger:   l,
	}
}

func (s *service) LoadCompanyPolicy(companyID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.loadCompanyPolicyUnlocked(companyID)
}

// loadCompanyPolicyUnlocked replaces the in-memory policy with the company's
// grouping (employee -> role) and permission (role -> resource/action) rules.
func (s *service) loadCompanyPolicyUnlocked(companyID string) error {
	s.enforcer.ClearPolicy()

	employeeRoles, err := s.repo.GetEmployeeRoles(companyID)
	if err != nil {
		return err
	}
	for _, er := range employeeRoles {
		if _, err := s.enforcer.AddGroupingPolicy(er.EmployeeID, er.RoleID, companyID); err != nil {
			return err
		}
	}

	rolePerms, err := s.repo.GetRolePermissions(companyID)
	if err != nil {
		return err
	}
	for _, rp := range rolePerms {
		if _, err := s.enforcer.AddPolicy(rp.RoleID, companyID, rp.Resource, rp.Action); err != nil {
			return err
		}
	}

	s.logger.Debug("rbac policy loaded",
		zap.String("company_id", companyID),
		zap.Int("employee_roles", len(employeeRoles)),
		zap.Int("role_permissions", len(rolePerms)),
	)
	return nil
}

func (s *service) Enforce(req EnforceRequest) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.loadCompanyPolicyUnlocked(req.CompanyID); err != nil {
		return false, err
	}

	allowed, err := s.enforcer.Enforce(req.EmployeeID, req.CompanyID, req.Resource, req.Action)
	if err != nil {
		s.logger.Error("rbac enforce failed",
			zap.String("employee_id", req.EmployeeID),
			zap.String("company_id", req.CompanyID),
			zap.String("resource", req.Resource),
			zap.String("action", req.Action),
			zap.Error(err),
		)
		return false, err
	}

	s.logger.Debug("rbac enforce result",
		zap.String("employee_id", req.EmployeeID),
		zap.String("company_id", req.CompanyID),
		zap.String("resource", req.Resource),
		zap.String("action", req.Action),
		zap.Bool("allowed", allowed),
	)
	return allowed, nil
}

func (s *service) ListRoles(companyID string) ([]RoleResponse, error) {
	roles, err := s.repo.ListRoles(companyID)
	if err != nil {
		return nil, err
	}

	resp := make([]RoleResponse, 0, len(roles))
	for _, role := range roles {
		perms, err := s.repo.GetPermissionsByRoleID(role.ID)
		if err != nil {
			return nil, err
		}
		resp = append(resp, mapRoleResponse(role, perms))
	}
	return resp, nil
}

func (s *service) GetRole(companyID, id string) (RoleResponse, error) {
	role, err := s.repo.GetRoleByID(companyID, id)
	if err != nil {
		return RoleResponse{}, mapRepositoryError(err)
	}
	perms, err := s.repo.GetPermissionsByRoleID(role.ID)
	if err != nil {
		return RoleResponse{}, err
	}
	return mapRoleResponse(*role, perms), nil
}

func (s *service) CreateRole(companyID string, req CreateRoleRequest) (RoleResponse, error) {
	name := strings.TrimSpace(req.Name)
	if existing, err := s.repo.GetRoleByName(companyID, name); err == nil && existing != nil {
		return RoleResponse{}, rbacerrors.ErrRoleAlreadyExists
	} else if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return RoleResponse{}, err
	}

	permIDs, err := s.resolvePermissions(req.Permissions)
	if err != nil {
		return RoleResponse{}, err
	}

	role := &RoleRow{CompanyID: companyID, Name: name, Description: req.Description}
	if err := s.repo.CreateRole(role); err != nil {
		return RoleResponse{}, err
	}
	if err := s.repo.UpdateRolePermissions(role.ID, permIDs); err != nil {
		return RoleResponse{}, err
	}

	s.logger.Info("role created", zap.String("company_id", companyID), zap.String("role_id", role.ID))
	return s.GetRole(companyID, role.ID)
}

func (s *service) UpdateRole(companyID, id string, req UpdateRoleRequest) (RoleResponse, error) {
	role, err := s.repo.GetRoleByID(companyID, id)
	if err != nil {
		return RoleResponse{}, mapRepositoryError(err)
	}

	if name := strings.TrimSpace(req.Name); name != "" && name != role.Name {
		if existing, err := s.repo.GetRoleByName(companyID, name); err == nil && existing != nil {
			return RoleResponse{}, rbacerrors.ErrRoleAlreadyExists
		}
		role.Name = name
	}
	if req.Description != "" {
		role.Description = req.Description
	}
	if err := s.repo.UpdateRole(role); err != nil {
		return RoleResponse{}, err
	}

	if req.Permissions != nil {
		permIDs, err := s.resolvePermissions(req.Permissions)
		if err != nil {
			return RoleResponse{}, err
		}
		if err := s.repo.UpdateRolePermissions(role.ID, permIDs); err != nil {
			return RoleResponse{}, err
		}
	}

	return s.GetRole(companyID, role.ID)
}

func (s *service) DeleteRole(companyID, id string) error {
	return mapRepositoryError(s.repo.DeleteRole(companyID, id))
}

func (s *service) AssignRole(companyID, roleID, employeeID string) error {
	if _, err := s.repo.GetRoleByID(companyID, roleID); err != nil {
		return mapRepositoryError(err)
	}
	return s.repo.AssignRole(employeeID, roleID)
}

func (s *service) ListPermissions() ([]PermissionResponse, error) {
	perms, err := s.repo.ListPermissions()
	if err != nil {
		return nil, err
	}
	resp := make([]PermissionResponse, len(perms))
	for i, p := range perms {
		resp[i] = PermissionResponse{ID: p.ID, Resource: p.Resource, Action: p.Action, Label: p.Label, Category: p.Category}
	}
	return resp, nil
}

// resolvePermissions turns "resource:action" strings into permission ids.
func (s *service) resolvePermissions(raw []string) ([]string, error) {
	keys := make([]PermissionKey, 0, len(raw))
	seen := make(map[PermissionKey]struct{}, len(raw))
	for _, item := range raw {
		key, err := domain.ParsePermission(item)
		if err != nil {
			return nil, rbacerrors.ErrUnknownPermission.WithCause(err)
		}
		if _, dup := seen[key]; dup {
			continue
		}
		seen[key] = struct{}{}
		keys = append(keys, key)
	}
	if len(keys) == 0 {
		return nil, nil
	}

	perms, err := s.repo.FindPermissionsByKeys(keys)
	if err != nil {
		return nil, err
	}
	if len(perms) != len(keys) {
		return nil, rbacerrors.ErrUnknownPermission
	}

	ids := make([]string, len(perms))
	for i, p := range perms {
		ids[i] = p.ID
	}
	return ids, nil
}

func mapRepositoryError(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return rbacerrors.ErrRoleNotFound
	}
	return err
}

func mapRoleResponse(role RoleRow, perms []PermissionRow) RoleResponse {
	keys := make([]string, len(perms))
	for i, p := range perms {
		keys[i] = p.Key().String()
	}
	return RoleResponse{
		ID:          role.ID,
		Name:        role.Name,
		Description: role.Description,
		Permissions: keys,
	}
}
