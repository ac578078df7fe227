package company

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Company struct {
	ID            uuid.UUID             `gorm:"type:uuid;primaryKey"`
	Name          string                `gorm:"type:varchar(150);not null"`
	TradeName     string                `gorm:"type:varchar(150)"`
	Email         string                `gorm:"type:varchar(255);index"`
	IsActive      bool                  `gorm:"not null;default:true"`
	CreatedAt     time.Time             `gorm:"not null"`
	UpdatedAt     time.Time             `gorm:"not null"`
	DeletedAt     gorm.DeletedAt        `gorm:"index"`
	Registrations []CompanyRegistration `gorm:"foreignKey:CompanyID"`
}

func (Company) TableName() string {
	return "companies"
}

func (c *Company) BeforeCreate(tx *gorm.DB) error {
	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}
	return nil
}

type RegistrationType string

const (
	RegistrationTypeCNPJ RegistrationType = "CNPJ"
	RegistrationTypeIE   RegistrationType = "IE"
	RegistrationTypeIM   RegistrationType = "IM"
)

func (t RegistrationType) Valid() bool {
	switch t {
	case RegistrationTypeCNPJ, RegistrationTypeIE, RegistrationTypeIM:
		return true
	}
	return false
}

// CompanyRegistration holds one registration per type (federal CNPJ, state IE,
// municipal IM).
type CompanyRegistration struct {
	ID        uuid.UUID        `gorm:"type:uuid;primaryKey"`
	CompanyID uuid.UUID        `gorm:"type:uuid;not null;uniqueIndex:uq_company_registration_type"`
	Type      RegistrationType `gorm:"type:varchar(10);not null;uniqueIndex:uq_company_registration_type"`
	Number    string           `gorm:"type:varchar(30);not null"`
	IssuedAt  *time.Time
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (CompanyRegistration) TableName() string {
	return "company_registrations"
}

func (r *CompanyRegistration) BeforeCreate(tx *gorm.DB) error {
	if r.ID == uuid.Nil {
		r.ID = uuid.New()
	}
	return nil
}
