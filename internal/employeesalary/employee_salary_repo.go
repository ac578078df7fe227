package employeesalary

import (
	"context"
	"database/sql"
	"time"

	"github.com/hyagosilvaxds/backend-erp-sub001/internal/shared/database"
	"github.com/hyagosilvaxds/backend-erp-sub001/internal/tenant"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

//go:generate mockgen -source=employee_salary_repo.go -destination=mock/employee_salary_repo_mock.go -package=mock
type Repository interface {
	WithTx(tx *sql.Tx) Repository
	Create(ctx context.Context, salary *EmployeeSalary) error
	Update(ctx context.Context, salary *EmployeeSalary) error
	FindAllByCompany(ctx context.Context, companyID string) ([]EmployeeSalary, error)
	FindByEmployee(ctx context.Context, companyID, employeeID string) ([]EmployeeSalary, error)
	FindByIDAndCompany(ctx context.Context, companyID string, id string) (*EmployeeSalary, error)
	FindEffective(ctx context.Context, companyID, employeeID string, asOf time.Time) (*EmployeeSalary, error)
	SyncEmployeeSalary(ctx context.Context, companyID, employeeID string, amount decimal.Decimal) error
	Delete(ctx context.Context, companyID string, id string) error
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

func (r *repository) Create(ctx context.Context, salary *EmployeeSalary) error {
	return r.db.WithContext(ctx).Create(salary).Error
}

func (r *repository) Update(ctx context.Context, salary *EmployeeSalary) error {
	return r.db.WithContext(ctx).
		Model(&EmployeeSalary{}).
		Where("id = ? AND company_id = ?", salary.ID, salary.CompanyID).
		Updates(map[string]any{
			"base_salary":    salary.BaseSalary,
			"effective_date": salary.EffectiveDate,
			"reason":         salary.Reason,
			"updated_at":     time.Now().UTC(),
		}).Error
}

func (r *repository) withEmployeeName(ctx context.Context, companyID string) *gorm.DB {
	return r.db.WithContext(ctx).
		Table("employee_salaries").
		Select("employee_salaries.*, employees.full_name AS employee_name").
		Joins("JOIN employees ON employees.id = employee_salaries.employee_id").
		Scopes(tenant.ScopeTable("employee_salaries", companyID))
}

func (r *repository) FindAllByCompany(ctx context.Context, companyID string) ([]EmployeeSalary, error) {
	var salaries []EmployeeSalary
	err := r.withEmployeeName(ctx, companyID).
		Order("employees.full_name ASC").
		Order("employee_salaries.effective_date DESC").
		Scan(&salaries).Error
	return salaries, err
}

func (r *repository) FindByEmployee(ctx context.Context, companyID, employeeID string) ([]EmployeeSalary, error) {
	var salaries []EmployeeSalary
	err := r.withEmployeeName(ctx, companyID).
		Where("employee_salaries.employee_id = ?", employeeID).
		Order("employee_salaries.effective_date DESC").
		Scan(&salaries).Error
	return salaries, err
}

func (r *repository) FindByIDAndCompany(ctx context.Context, companyID string, id string) (*EmployeeSalary, error) {
	var salary EmployeeSalary
	err := r.withEmployeeName(ctx, companyID).
		Where("employee_salaries.id = ?", id).
		Take(&salary).Error
	if err != nil {
		return nil, err
	}
	return &salary, nil
}

// FindEffective returns the entry in force on asOf (latest effective_date <= asOf).
func (r *repository) FindEffective(ctx context.Context, companyID, employeeID string, asOf time.Time) (*EmployeeSalary, error) {
	var salary EmployeeSalary
	err := r.db.WithContext(ctx).
		Scopes(tenant.Scope(companyID)).
		Where("employee_id = ? AND effective_date <= ?", employeeID, asOf).
		Order("effective_date DESC").
		First(&salary).Error
	if err != nil {
		return nil, err
	}
	return &salary, nil
}

// SyncEmployeeSalary copies the salary in force onto employees.salary, the
// base the payroll calculation reads.
func (r *repository) SyncEmployeeSalary(ctx context.Context, companyID, employeeID string, amount decimal.Decimal) error {
	return r.db.WithContext(ctx).
		Table("employees").
		Scopes(tenant.Scope(companyID)).
		Where("id = ?", employeeID).
		Updates(map[string]any{"salary": amount, "updated_at": time.Now().UTC()}).Error
}

func (r *repository) Delete(ctx context.Context, companyID string, id string) error {
	res := r.db.WithContext(ctx).
		Scopes(tenant.Scope(companyID)).
		Where("id = ?", id).
		Delete(&EmployeeSalary{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
