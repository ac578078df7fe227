package employee

import (
	"context"
	"database/sql"
	"time"

	"github.com/hyagosilvaxds/backend-erp-sub001/internal/shared/database"
	"github.com/hyagosilvaxds/backend-erp-sub001/internal/tenant"

	"gorm.io/gorm"
)

//go:generate mockgen -source=employee_repo.go -destination=mock/employee_repo_mock.go -package=mock
type Repository interface {
	WithTx(tx *sql.Tx) Repository
	Create(ctx context.Context, empl *Employee) error
	FindAllByCompany(ctx context.Context, companyID string) ([]Employee, error)
	FindOptionsByCompany(ctx context.Context, companyID string) ([]Employee, error)
	FindByIDAndCompany(ctx context.Context, companyID, id string) (*Employee, error)
	FindActiveForPeriod(ctx context.Context, companyID string, start, end time.Time) ([]Employee, error)
	CostCenterExists(ctx context.Context, companyID, costCenterID string) (bool, error)
	Update(ctx context.Context, empl *Employee) error
	Delete(ctx context.Context, companyID, id string) error
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) WithTx(tx *sql.Tx) Repository {
	return &repository{db: database.BindTx(r.db, tx)}
}

func (r *repository) Create(ctx context.Context, empl *Employee) error {
	return r.db.WithContext(ctx).Create(empl).Error
}

func (r *repository) withCostCenter(ctx context.Context, companyID string) *gorm.DB {
	return r.db.WithContext(ctx).
		Model(&Employee{}).
		Select("employees.*, cost_centers.name AS cost_center_name").
		Joins("LEFT JOIN cost_centers ON cost_centers.id = employees.cost_center_id").
		Scopes(tenant.ScopeTable("employees", companyID))
}

func (r *repository) FindAllByCompany(ctx context.Context, companyID string) ([]Employee, error) {
	var employees []Employee
	err := r.withCostCenter(ctx, companyID).
		Order("employees.full_name ASC").
		Find(&employees).Error
	return employees, err
}

func (r *repository) FindOptionsByCompany(ctx context.Context, companyID string) ([]Employee, error) {
	var employees []Employee
	err := r.db.WithContext(ctx).
		Select("id", "registration_number", "full_name").
		Scopes(tenant.Scope(companyID)).
		Where("status = ?", StatusActive).
		Order("full_name ASC").
		Find(&employees).Error
	return employees, err
}

func (r *repository) FindByIDAndCompany(ctx context.Context, companyID, id string) (*Employee, error) {
	var empl Employee
	err := r.withCostCenter(ctx, companyID).
		Where("employees.id = ?", id).
		First(&empl).Error
	if err != nil {
		return nil, err
	}
	return &empl, nil
}

// FindActiveForPeriod returns employees on the payroll for [start, end]:
// hired by end, not inactive, and not terminated before start.
func (r *repository) FindActiveForPeriod(ctx context.Context, companyID string, start, end time.Time) ([]Employee, error) {
	var employees []Employee
	err := r.db.WithContext(ctx).
		Scopes(tenant.Scope(companyID)).
		Where("status <> ?", StatusInactive).
		Where("hire_date <= ?", end).
		Where("termination_date IS NULL OR termination_date >= ?", start).
		Order("registration_number ASC").
		Find(&employees).Error
	return employees, err
}

func (r *repository) CostCenterExists(ctx context.Context, companyID, costCenterID string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Table("cost_centers").
		Scopes(tenant.Scope(companyID)).
		Where("id = ? AND deleted_at IS NULL", costCenterID).
		Count(&count).Error
	return count > 0, err
}

func (r *repository) Update(ctx context.Context, empl *Employee) error {
	return r.db.WithContext(ctx).Save(empl).Error
}

func (r *repository) Delete(ctx context.Context, companyID, id string) error {
	res := r.db.WithContext(ctx).
		Scopes(tenant.Scope(companyID)).
		Where("id = ?", id).
		Delete(&Employee{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
