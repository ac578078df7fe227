package costcenter

import (
	"context"
	"database/sql"

	"github.com/hyagosilvaxds/backend-erp-sub001/internal/shared/database"
	"github.com/hyagosilvaxds/backend-erp-sub001/internal/tenant"

	"gorm.io/gorm"
)

//go:generate mockgen -source=costcenter_repo.go -destination=mock/costcenter_repo_mock.go -package=mock
type Repository interface {
	WithTx(tx *sql.Tx) Repository
	Create(ctx context.Context, cc *CostCenter) error
	FindAllByCompany(ctx context.Context, companyID string) ([]CostCenter, error)
	FindByIDAndCompany(ctx context.Context, companyID, id string) (*CostCenter, error)
	Update(ctx context.Context, cc *CostCenter) error
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

func (r *repository) Create(ctx context.Context, cc *CostCenter) error {
	return r.db.WithContext(ctx).Create(cc).Error
}

func (r *repository) FindAllByCompany(ctx context.Context, companyID string) ([]CostCenter, error) {
	var centers []CostCenter
	err := r.db.WithContext(ctx).
		Scopes(tenant.Scope(companyID)).
		Order("code ASC").
		Find(&centers).Error
	return centers, err
}

func (r *repository) FindByIDAndCompany(ctx context.Context, companyID, id string) (*CostCenter, error) {
	var cc CostCenter
	err := r.db.WithContext(ctx).
		Scopes(tenant.Scope(companyID)).
		Where("id = ?", id).
		First(&cc).Error
	if err != nil {
		return nil, err
	}
	return &cc, nil
}

func (r *repository) Update(ctx context.Context, cc *CostCenter) error {
	return r.db.WithContext(ctx).Save(cc).Error
}

func (r *repository) Delete(ctx context.Context, companyID, id string) error {
	res := r.db.WithContext(ctx).
		Scopes(tenant.Scope(companyID)).
		Where("id = ?", id).
		Delete(&CostCenter{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
