package taxtable

import (
	"context"
	"errors"

	"github.com/hyagosilvaxds/backend-erp-sub001/internal/tenant"

	"gorm.io/gorm"
)

//go:generate mockgen -source=taxtable_repo.go -destination=mock/taxtable_repo_mock.go -package=mock
type Repository interface {
	Create(ctx context.Context, t *TaxTable) error
	FindAll(ctx context.Context, companyID string, kind Kind, filter ListFilter) ([]TaxTable, error)
	FindByID(ctx context.Context, companyID string, kind Kind, id string) (*TaxTable, error)
	Update(ctx context.Context, t *TaxTable) error
	Delete(ctx context.Context, companyID string, kind Kind, id string) error
	ActiveExists(ctx context.Context, companyID string, kind Kind, year, month int, excludeID string) (bool, error)
	GetActiveTable(ctx context.Context, companyID string, kind Kind, year, month int) (*TaxTable, error)
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) Create(ctx context.Context, t *TaxTable) error {
	return r.db.WithContext(ctx).Create(t).Error
}

func (r *repository) FindAll(ctx context.Context, companyID string, kind Kind, filter ListFilter) ([]TaxTable, error) {
	q := r.db.WithContext(ctx).
		Scopes(tenant.Scope(companyID)).
		Where("kind = ?", kind)
	if filter.Year != nil {
		q = q.Where("year = ?", *filter.Year)
	}
	if filter.Active != nil {
		q = q.Where("active = ?", *filter.Active)
	}

	var tables []TaxTable
	err := q.Order("year DESC, month DESC, created_at DESC").Find(&tables).Error
	return tables, err
}

func (r *repository) FindByID(ctx context.Context, companyID string, kind Kind, id string) (*TaxTable, error) {
	var t TaxTable
	err := r.db.WithContext(ctx).
		Scopes(tenant.Scope(companyID)).
		Where("id = ? AND kind = ?", id, kind).
		First(&t).Error
	if err != nil {
		return nil, err
	}
	return &t, nil
}

func (r *repository) Update(ctx context.Context, t *TaxTable) error {
	return r.db.WithContext(ctx).Save(t).Error
}

func (r *repository) Delete(ctx context.Context, companyID string, kind Kind, id string) error {
	res := r.db.WithContext(ctx).
		Scopes(tenant.Scope(companyID)).
		Where("id = ? AND kind = ?", id, kind).
		Delete(&TaxTable{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *repository) ActiveExists(ctx context.Context, companyID string, kind Kind, year, month int, excludeID string) (bool, error) {
	q := r.db.WithContext(ctx).
		Model(&TaxTable{}).
		Scopes(tenant.Scope(companyID)).
		Where("kind = ? AND year = ? AND month = ? AND active = ?", kind, year, month, true)
	if excludeID != "" {
		q = q.Where("id <> ?", excludeID)
	}

	var count int64
	if err := q.Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

// GetActiveTable returns the active table for the exact period, or else the
// most recent active table before it. It returns nil when neither exists.
func (r *repository) GetActiveTable(ctx context.Context, companyID string, kind Kind, year, month int) (*TaxTable, error) {
	base := func() *gorm.DB {
		return r.db.WithContext(ctx).
			Scopes(tenant.Scope(companyID)).
			Where("kind = ? AND active = ?", kind, true)
	}

	var t TaxTable
	err := base().Where("year = ? AND month = ?", year, month).First(&t).Error
	if err == nil {
		return &t, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	err = base().
		Where("(year < ? OR (year = ? AND month <= ?))", year, year, month).
		Order("year DESC, month DESC").
		First(&t).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &t, nil
}
