package rbac

import (
	"time"

	"github.com/hyagosilvaxds/backend-erp-sub001/internal/domain"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

//go:generate mockgen -source=rbac_repo.go -destination=mock/rbac_repo_mock.go -package=mock
type Repository interface {
	GetEmployeeRoles(companyID string) ([]EmployeeRoleRow, error)
	GetRolePermissions(companyID string) ([]RolePermissionRow, error)

	ListRoles(companyID string) ([]RoleRow, error)
	GetRoleByID(companyID, id string) (*RoleRow, error)
	GetRoleByName(companyID, name string) (*RoleRow, error)
	CreateRole(role *RoleRow) error
	UpdateRole(role *RoleRow) error
	DeleteRole(companyID, id string) error

	ListPermissions() ([]PermissionRow, error)
	GetPermissionsByRoleID(roleID string) ([]PermissionRow, error)
	FindPermissionsByKeys(keys []PermissionKey) ([]PermissionRow, error)
	UpsertPermissions(perms []PermissionRow) error
	UpdateRolePermissions(roleID string, permIDs []string) error
	AssignRole(employeeID, roleID string) error
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

type RoleRow struct {
	ID          string `gorm:"primaryKey;type:uuid"`
	CompanyID   string `gorm:"type:uuid;index;uniqueIndex:uq_roles_company_name"`
	Name        string `gorm:"type:varchar(100);uniqueIndex:uq_roles_company_name"`
	Description string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

func (RoleRow) TableName() string { return "roles" }

type PermissionRow struct {
	ID       string `gorm:"primaryKey;type:uuid"`
	Resource string `gorm:"type:varchar(60);uniqueIndex:uq_permissions_resource_action"`
	Action   string `gorm:"type:varchar(60);uniqueIndex:uq_permissions_resource_action"`
	Label    string
	Category string
}

func (PermissionRow) TableName() string { return "permissions" }

func (p PermissionRow) Key() domain.Permission {
	return domain.Permission{Resource: p.Resource, Action: p.Action}
}

// RolePermissionLink is the role_permissions join table.
type RolePermissionLink struct {
	RoleID       string `gorm:"primaryKey;type:uuid"`
	PermissionID string `gorm:"primaryKey;type:uuid"`
}

func (RolePermissionLink) TableName() string { return "role_permissions" }

// RolePermissionRow is a resolved policy line used to feed casbin.
type RolePermissionRow struct {
	RoleID   string
	Resource string
	Action   string
}

type EmployeeRoleRow struct {
	EmployeeID string `gorm:"primaryKey;type:uuid"`
	RoleID     string `gorm:"primaryKey;type:uuid"`
}

func (EmployeeRoleRow) TableName() string { return "employee_roles" }

type PermissionKey = domain.Permission

func (r *repository) GetEmployeeRoles(companyID string) ([]EmployeeRoleRow, error) {
	var result []EmployeeRoleRow
	err := r.db.
		Table("employee_roles").
		Select("employee_roles.employee_id, employee_roles.role_id").
		Joins("JOIN roles ON roles.id = employee_roles.role_id").
		Where("roles.company_id = ?", companyID).
		Scan(&result).Error
	return result, err
}

func (r *repository) GetRolePermissions(companyID string) ([]RolePermissionRow, error) {
	var result []RolePermissionRow
	err := r.db.
		Table("role_permissions").
		Select("role_permissions.role_id, permissions.resource, permissions.action").
		Joins("JOIN roles ON roles.id = role_permissions.role_id").
		Joins("JOIN permissions ON permissions.id = role_permissions.permission_id").
		Where("roles.company_id = ?", companyID).
		Scan(&result).Error
	return result, err
}

func (r *repository) ListRoles(companyID string) ([]RoleRow, error) {
	var result []RoleRow
	err := r.db.Where("company_id = ?", companyID).Order("name").Find(&result).Error
	return result, err
}

func (r *repository) GetRoleByID(companyID, id string) (*RoleRow, error) {
	var result RoleRow
	if err := r.db.First(&result, "id = ? AND company_id = ?", id, companyID).Error; err != nil {
		return nil, err
	}
	return &result, nil
}

func (r *repository) GetRoleByName(companyID, name string) (*RoleRow, error) {
	var result RoleRow
	if err := r.db.Where("company_id = ? AND name = ?", companyID, name).First(&result).Error; err != nil {
		return nil, err
	}
	return &result, nil
}

func (r *repository) CreateRole(role *RoleRow) error {
	if role.ID == "" {
		role.ID = uuid.NewString()
	}
	return r.db.Create(role).Error
}

func (r *repository) UpdateRole(role *RoleRow) error {
	return r.db.Save(role).Error
}

func (r *repository) DeleteRole(companyID, id string) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("role_id = ?", id).Delete(&RolePermissionLink{}).Error; err != nil {
			return err
		}
		if err := tx.Where("role_id = ?", id).Delete(&EmployeeRoleRow{}).Error; err != nil {
			return err
		}
		res := tx.Where("id = ? AND company_id = ?", id, companyID).Delete(&RoleRow{})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}
		return nil
	})
}

func (r *repository) ListPermissions() ([]PermissionRow, error) {
	var result []PermissionRow
	err := r.db.Order("category, label").Find(&result).Error
	return result, err
}

func (r *repository) GetPermissionsByRoleID(roleID string) ([]PermissionRow, error) {
	var result []PermissionRow
	err := r.db.
		Table("permissions").
		Select("permissions.*").
		Joins("JOIN role_permissions ON role_permissions.permission_id = permissions.id").
		Where("role_permissions.role_id = ?", roleID).
		Order("permissions.resource, permissions.action").
		Scan(&result).Error
	return result, err
}

func (r *repository) FindPermissionsByKeys(keys []PermissionKey) ([]PermissionRow, error) {
	if len(keys) == 0 {
		return nil, nil
	}
	q := r.db.Model(&PermissionRow{})
	cond := r.db.Where("1 = 0")
	for _, k := range keys {
		cond = cond.Or("resource = ? AND action = ?", k.Resource, k.Action)
	}
	var result []PermissionRow
	err := q.Where(cond).Find(&result).Error
	return result, err
}

func (r *repository) UpsertPermissions(perms []PermissionRow) error {
	if len(perms) == 0 {
		return nil
	}
	return r.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "resource"}, {Name: "action"}},
		DoUpdates: clause.AssignmentColumns([]string{"label", "category"}),
	}).Create(&perms).Error
}

func (r *repository) UpdateRolePermissions(roleID string, permIDs []string) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("role_id = ?", roleID).Delete(&RolePermissionLink{}).Error; err != nil {
			return err
		}
		for _, pID := range permIDs {
			if err := tx.Create(&RolePermissionLink{RoleID: roleID, PermissionID: pID}).Error; err != nil {
				return err
			}
		}
		return nil
	})
}

func (r *repository) AssignRole(employeeID, roleID string) error {
	return r.db.Clauses(clause.OnConflict{DoNothing: true}).
		Create(&EmployeeRoleRow{EmployeeID: employeeID, RoleID: roleID}).Error
}
