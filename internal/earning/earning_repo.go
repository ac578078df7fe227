package earning

import (
	"context"
	"database/sql"
	"time"

	"github.com/hyagosilvaxds/backend-erp-sub001/internal/shared/database"
	"github.com/hyagosilvaxds/backend-erp-sub001/internal/tenant"

	"gorm.io/gorm"
)

//go:generate mockgen -source=earning_repo.go -destination=mock/earning_repo_mock.go -package=mock
type Repository interface {
	WithTx(tx *sql.Tx) Repository

	CreateType(ctx context.Context, et *EarningType) error
	FindTypes(ctx context.Context, companyID string, kind Kind) ([]EarningType, error)
	FindTypeByID(ctx context.Context, companyID, id string) (*EarningType, error)
	UpdateType(ctx context.Context, et *EarningType) error
	DeleteType(ctx context.Context, companyID, id string) error

	CreateAssignment(ctx context.Context, kind Kind, a *Assignment) error
	FindAssignments(ctx context.Context, kind Kind, companyID, employeeID string) ([]Assignment, error)
	FindAssignmentByID(ctx context.Context, kind Kind, companyID, id string) (*Assignment, error)
	UpdateAssignment(ctx context.Context, kind Kind, a *Assignment) error
	DeleteAssignment(ctx context.Context, kind Kind, companyID, id string) error
	EmployeeExists(ctx context.Context, companyID, employeeID string) (bool, error)

	FindActiveEarningsForPeriod(ctx context.Context, companyID string, start, end time.Time) ([]Assignment, error)
	FindActiveDeductionsForPeriod(ctx context.Context, companyID string, start, end time.Time) ([]Assignment, error)
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

func assignmentTable(kind Kind) string {
	if kind == KindDeduction {
		return EmployeeDeduction{}.TableName()
	}
	return EmployeeEarning{}.TableName()
}

func (r *repository) CreateType(ctx context.Context, et *EarningType) error {
	return r.db.WithContext(ctx).Create(et).Error
}

func (r *repository) FindTypes(ctx context.Context, companyID string, kind Kind) ([]EarningType, error) {
	q := r.db.WithContext(ctx).Scopes(tenant.Scope(companyID))
	if kind != "" {
		q = q.Where("kind = ?", kind)
	}
	var types []EarningType
	err := q.Order("kind ASC, code ASC").Find(&types).Error
	return types, err
}

func (r *repository) FindTypeByID(ctx context.Context, companyID, id string) (*EarningType, error) {
	var et EarningType
	err := r.db.WithContext(ctx).
		Scopes(tenant.Scope(companyID)).
		Where("id = ?", id).
		First(&et).Error
	if err != nil {
		return nil, err
	}
	return &et, nil
}

func (r *repository) UpdateType(ctx context.Context, et *EarningType) error {
	return r.db.WithContext(ctx).Save(et).Error
}

func (r *repository) DeleteType(ctx context.Context, companyID, id string) error {
	res := r.db.WithContext(ctx).
		Scopes(tenant.Scope(companyID)).
		Where("id = ?", id).
		Delete(&EarningType{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *repository) CreateAssignment(ctx context.Context, kind Kind, a *Assignment) error {
	return r.db.WithContext(ctx).Table(assignmentTable(kind)).Create(a).Error
}

// withType selects assignments of kind together with their type code and name.
func (r *repository) withType(ctx context.Context, kind Kind, companyID string) *gorm.DB {
	table := assignmentTable(kind)
	return r.db.WithContext(ctx).
		Table(table+" AS a").
		Select("a.*, earning_types.code AS type_code, earning_types.name AS type_name").
		Joins("JOIN earning_types ON earning_types.id = a.earning_type_id AND earning_types.deleted_at IS NULL").
		Scopes(tenant.ScopeTable("a", companyID))
}

func (r *repository) FindAssignments(ctx context.Context, kind Kind, companyID, employeeID string) ([]Assignment, error) {
	q := r.withType(ctx, kind, companyID)
	if employeeID != "" {
		q = q.Where("a.employee_id = ?", employeeID)
	}
	var out []Assignment
	err := q.Order("a.start_date DESC, earning_types.code ASC").Find(&out).Error
	return out, err
}

func (r *repository) FindAssignmentByID(ctx context.Context, kind Kind, companyID, id string) (*Assignment, error) {
	var a Assignment
	err := r.withType(ctx, kind, companyID).
		Where("a.id = ?", id).
		Take(&a).Error
	if err != nil {
		return nil, err
	}
	return &a, nil
}

func (r *repository) UpdateAssignment(ctx context.Context, kind Kind, a *Assignment) error {
	return r.db.WithContext(ctx).Table(assignmentTable(kind)).Save(a).Error
}

func (r *repository) DeleteAssignment(ctx context.Context, kind Kind, companyID, id string) error {
	res := r.db.WithContext(ctx).
		Table(assignmentTable(kind)).
		Scopes(tenant.Scope(companyID)).
		Where("id = ?", id).
		Delete(&Assignment{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *repository) EmployeeExists(ctx context.Context, companyID, employeeID string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Table("employees").
		Scopes(tenant.Scope(companyID)).
		Where("id = ? AND deleted_at IS NULL", employeeID).
		Count(&count).Error
	return count > 0, err
}

func (r *repository) FindActiveEarningsForPeriod(ctx context.Context, companyID string, start, end time.Time) ([]Assignment, error) {
	return r.findActiveForPeriod(ctx, KindEarning, companyID, start, end)
}

func (r *repository) FindActiveDeductionsForPeriod(ctx context.Context, companyID string, start, end time.Time) ([]Assignment, error) {
	return r.findActiveForPeriod(ctx, KindDeduction, companyID, start, end)
}

// findActiveForPeriod returns active assignments of active types that apply
// to [start, end]: recurrent ones already started by end, or ones whose date
// range overlaps the period.
func (r *repository) findActiveForPeriod(ctx context.Context, kind Kind, companyID string, start, end time.Time) ([]Assignment, error) {
	var out []Assignment
	err := r.withType(ctx, kind, companyID).
		Where("a.active = ? AND earning_types.active = ?", true, true).
		Where("a.start_date <= ?", end).
		Where("a.recurrent = ? OR a.end_date IS NULL OR a.end_date >= ?", true, start).
		Order("a.employee_id ASC, earning_types.code ASC").
		Find(&out).Error
	return out, err
}
