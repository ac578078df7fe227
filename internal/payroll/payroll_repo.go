package payroll

import (
	"context"
	"database/sql"

	"github.com/hyagosilvaxds/backend-erp-sub001/internal/shared/database"
	"github.com/hyagosilvaxds/backend-erp-sub001/internal/tenant"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type ListFilter struct {
	Status Status
	Type   Type
	Year   int
	Month  int
}

//go:generate mockgen -source=payroll_repo.go -destination=mock/payroll_repo_mock.go -package=mock
type Repository interface {
	WithTx(tx *sql.Tx) Repository
	Create(ctx context.Context, payroll *Payroll) error
	FindAll(ctx context.Context, companyID string, filter ListFilter) ([]Payroll, error)
	FindByIDAndCompany(ctx context.Context, companyID, id string) (*Payroll, error)
	FindByIDForUpdate(ctx context.Context, companyID, id string) (*Payroll, error)
	Update(ctx context.Context, payroll *Payroll) error
	Delete(ctx context.Context, companyID, id string) error
	ExistsForPeriod(ctx context.Context, companyID string, month, year int, payrollType Type) (bool, error)

	FindItems(ctx context.Context, companyID, payrollID string) ([]PayrollItem, error)
	FindItem(ctx context.Context, payrollID, employeeID string) (*PayrollItem, error)
	CreateItems(ctx context.Context, items []PayrollItem) error
	SaveItem(ctx context.Context, item *PayrollItem) error
	DeleteItems(ctx context.Context, payrollID string) error
	DeleteItem(ctx context.Context, payrollID, employeeID string) error
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

func (r *repository) Create(ctx context.Context, payroll *Payroll) error {
	return r.db.WithContext(ctx).Omit(clause.Associations).Create(payroll).Error
}

func (r *repository) FindAll(ctx context.Context, companyID string, filter ListFilter) ([]Payroll, error) {
	q := r.db.WithContext(ctx).Scopes(tenant.Scope(companyID))
	if filter.Status != "" {
		q = q.Where("status = ?", filter.Status)
	}
	if filter.Type != "" {
		q = q.Where("type = ?", filter.Type)
	}
	if filter.Year > 0 {
		q = q.Where("reference_year = ?", filter.Year)
	}
	if filter.Month > 0 {
		q = q.Where("reference_month = ?", filter.Month)
	}

	var payrolls []Payroll
	err := q.Order("reference_year DESC, reference_month DESC, type ASC").Find(&payrolls).Error
	return payrolls, err
}

func (r *repository) FindByIDAndCompany(ctx context.Context, companyID, id string) (*Payroll, error) {
	var payroll Payroll
	err := r.db.WithContext(ctx).
		Scopes(tenant.Scope(companyID)).
		First(&payroll, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &payroll, nil
}

// FindByIDForUpdate locks the payroll row until the surrounding transaction
// ends so concurrent transitions on the same payroll serialize.
func (r *repository) FindByIDForUpdate(ctx context.Context, companyID, id string) (*Payroll, error) {
	var payroll Payroll
	err := r.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		Scopes(tenant.Scope(companyID)).
		First(&payroll, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &payroll, nil
}

func (r *repository) Update(ctx context.Context, payroll *Payroll) error {
	return r.db.WithContext(ctx).Omit(clause.Associations).Save(payroll).Error
}

func (r *repository) Delete(ctx context.Context, companyID, id string) error {
	if err := r.db.WithContext(ctx).
		Where("payroll_id = ?", id).
		Scopes(tenant.Scope(companyID)).
		Delete(&PayrollItem{}).Error; err != nil {
		return err
	}

	res := r.db.WithContext(ctx).
		Scopes(tenant.Scope(companyID)).
		Delete(&Payroll{}, "id = ?", id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *repository) ExistsForPeriod(ctx context.Context, companyID string, month, year int, payrollType Type) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&Payroll{}).
		Scopes(tenant.Scope(companyID)).
		Where("reference_month = ? AND reference_year = ? AND type = ?", month, year, payrollType).
		Count(&count).Error
	return count > 0, err
}

func (r *repository) FindItems(ctx context.Context, companyID, payrollID string) ([]PayrollItem, error) {
	var items []PayrollItem
	err := r.db.WithContext(ctx).
		Table("payroll_items").
		Select(`payroll_items.*,
			employees.full_name AS employee_name,
			employees.registration_number AS registration_number,
			employees.cost_center_id AS cost_center_id,
			cost_centers.name AS cost_center_name`).
		Joins("LEFT JOIN employees ON employees.id = payroll_items.employee_id").
		Joins("LEFT JOIN cost_centers ON cost_centers.id = employees.cost_center_id").
		Scopes(tenant.ScopeTable("payroll_items", companyID)).
		Where("payroll_items.payroll_id = ?", payrollID).
		Order("employees.registration_number ASC").
		Find(&items).Error
	return items, err
}

func (r *repository) FindItem(ctx context.Context, payrollID, employeeID string) (*PayrollItem, error) {
	var item PayrollItem
	err := r.db.WithContext(ctx).
		Where("payroll_id = ? AND employee_id = ?", payrollID, employeeID).
		First(&item).Error
	if err != nil {
		return nil, err
	}
	return &item, nil
}

func (r *repository) CreateItems(ctx context.Context, items []PayrollItem) error {
	if len(items) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).CreateInBatches(items, 100).Error
}

func (r *repository) SaveItem(ctx context.Context, item *PayrollItem) error {
	return r.db.WithContext(ctx).Save(item).Error
}

func (r *repository) DeleteItems(ctx context.Context, payrollID string) error {
	return r.db.WithContext(ctx).
		Where("payroll_id = ?", payrollID).
		Delete(&PayrollItem{}).Error
}

func (r *repository) DeleteItem(ctx context.Context, payrollID, employeeID string) error {
	res := r.db.WithContext(ctx).
		Where("payroll_id = ? AND employee_id = ?", payrollID, employeeID).
		Delete(&PayrollItem{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
