package costcenter

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type CostCenter struct {
	ID          uuid.UUID      `gorm:"type:uuid;primaryKey"`
	CompanyID   uuid.UUID      `gorm:"type:uuid;not null;uniqueIndex:uq_cost_center_code"`
	Code        string         `gorm:"type:varchar(20);not null;uniqueIndex:uq_cost_center_code"`
	Name        string         `gorm:"size:150;not null"`
	Description string         `gorm:"size:255"`
	IsActive    bool           `gorm:"not null;default:true"`
	CreatedAt   time.Time      `gorm:"autoCreateTime"`
	UpdatedAt   time.Time      `gorm:"autoUpdateTime"`
	DeletedAt   gorm.DeletedAt `gorm:"index"`
}

func (CostCenter) TableName() string {
	return "cost_centers"
}
