package employee

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type Status string

const (
	StatusActive     Status = "ACTIVE"
	StatusInactive   Status = "INACTIVE"
	StatusTerminated Status = "TERMINATED"
)

const (
	FgtsCategoryStandard   = "STANDARD"
	FgtsCategoryApprentice = "APPRENTICE"
	FgtsCategoryIntern     = "INTERN"
	FgtsCategoryDomestic   = "DOMESTIC"
)

type Employee struct {
	ID                 uuid.UUID       `gorm:"type:uuid;primaryKey"`
	CompanyID          uuid.UUID       `gorm:"type:uuid;not null;index;uniqueIndex:uq_employee_registration,priority:1;uniqueIndex:uq_employee_email,priority:1"`
	CostCenterID       *uuid.UUID      `gorm:"type:uuid;index"`
	CostCenterName     string          `gorm:"->;-:migration"`
	RegistrationNumber string          `gorm:"type:varchar(30);not null;uniqueIndex:uq_employee_registration,priority:2"`
	FullName           string          `gorm:"type:varchar(150);not null"`
	Email              string          `gorm:"type:varchar(150);not null;uniqueIndex:uq_employee_email,priority:2"`
	Cpf                string          `gorm:"type:varchar(11)"`
	HireDate           time.Time       `gorm:"type:date;not null"`
	TerminationDate    *time.Time      `gorm:"type:date"`
	Salary             decimal.Decimal `gorm:"type:decimal(15,2);not null"`
	FgtsCategory       string          `gorm:"type:varchar(20);not null"`
	Status             Status          `gorm:"type:varchar(20);not null;index"`
	CreatedAt          time.Time
	UpdatedAt          time.Time
	DeletedAt          gorm.DeletedAt `gorm:"index"`
}

func (Employee) TableName() string {
	return "employees"
}

func (e *Employee) BeforeCreate(tx *gorm.DB) error {
	if e.ID == uuid.Nil {
		e.ID = uuid.New()
	}
	return nil
}
