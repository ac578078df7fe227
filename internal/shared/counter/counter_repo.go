package counter

import (
	"context"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

const TypeEmployeeRegistration = "employee_registration"

// CompanyCounter is a per-company monotonic sequence.
type CompanyCounter struct {
	CompanyID   string `gorm:"type:uuid;primaryKey"`
	CounterType string `gorm:"type:varchar(50);primaryKey"`
	LastValue   int64  `gorm:"not null;default:0"`
	UpdatedAt   time.Time
}

func (CompanyCounter) TableName() string {
	return "company_counters"
}

//go:generate mockgen -destination=mock/counter_repo_mock.go -package=mock . Repository
type Repository interface {
	GetNextValue(ctx context.Context, companyID string, counterType string) (int64, error)
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

// GetNextValue increments and returns the counter atomically, creating it on first use.
func (r *repository) GetNextValue(ctx context.Context, companyID string, counterType string) (int64, error) {
	var next int64
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		row := CompanyCounter{CompanyID: companyID, CounterType: counterType, LastValue: 1, UpdatedAt: time.Now().UTC()}
		if err := tx.Clauses(clause.OnConflict{
			Columns: []clause.Column{{Name: "company_id"}, {Name: "counter_type"}},
			DoUpdates: clause.Assignments(map[string]any{
				"last_value": gorm.Expr("company_counters.last_value + 1"),
				"updated_at": time.Now().UTC(),
			}),
		}).Create(&row).Error; err != nil {
			return err
		}

		return tx.Model(&CompanyCounter{}).
			Select("last_value").
			Where("company_id = ? AND counter_type = ?", companyID, counterType).
			Scan(&next).Error
	})
	if err != nil {
		return 0, err
	}
	return next, nil
}
