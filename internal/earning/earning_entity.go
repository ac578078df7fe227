package earning

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type Kind string

const (
	KindEarning   Kind = "EARNING"
	KindDeduction Kind = "DEDUCTION"
)

func (k Kind) Valid() bool {
	return k == KindEarning || k == KindDeduction
}

// EarningType is the company catalog entry (e.g. HE50, VT) referenced by
// employee earnings and deductions.
type EarningType struct {
	ID          uuid.UUID      `gorm:"type:uuid;primaryKey"`
	CompanyID   uuid.UUID      `gorm:"type:uuid;not null;uniqueIndex:uq_earning_type_code,priority:1"`
	Kind        Kind           `gorm:"type:varchar(20);not null"`
	Code        string         `gorm:"type:varchar(20);not null;uniqueIndex:uq_earning_type_code,priority:2"`
	Name        string         `gorm:"type:varchar(120);not null"`
	Description string         `gorm:"type:varchar(255)"`
	Active      bool           `gorm:"not null;default:true"`
	CreatedAt   time.Time      `gorm:"autoCreateTime"`
	UpdatedAt   time.Time      `gorm:"autoUpdateTime"`
	DeletedAt   gorm.DeletedAt `gorm:"index"`
}

func (EarningType) TableName() string {
	return "earning_types"
}

// Assignment links an employee to an earning type with either a flat value or
// a percentage of the base salary.
type Assignment struct {
	ID            uuid.UUID        `gorm:"type:uuid;primaryKey"`
	CompanyID     uuid.UUID        `gorm:"type:uuid;not null;index"`
	EmployeeID    uuid.UUID        `gorm:"type:uuid;not null;index"`
	EarningTypeID uuid.UUID        `gorm:"type:uuid;not null"`
	TypeCode      string           `gorm:"->;-:migration"`
	TypeName      string           `gorm:"->;-:migration"`
	Value         *decimal.Decimal `gorm:"type:decimal(15,2)"`
	Percentage    *decimal.Decimal `gorm:"type:decimal(7,4)"`
	Recurrent     bool             `gorm:"not null;default:false"`
	StartDate     time.Time        `gorm:"type:date;not null"`
	EndDate       *time.Time       `gorm:"type:date"`
	Active        bool             `gorm:"not null;default:true"`
	Notes         string           `gorm:"type:varchar(255)"`
	CreatedAt     time.Time        `gorm:"autoCreateTime"`
	UpdatedAt     time.Time        `gorm:"autoUpdateTime"`
}

// Amount resolves the assignment against base: the flat value, or
// base*percentage/100 rounded to cents.
func (a Assignment) Amount(base decimal.Decimal) decimal.Decimal {
	if a.Value != nil {
		return a.Value.Round(2)
	}
	if a.Percentage != nil {
		return base.Mul(*a.Percentage).Div(decimal.NewFromInt(100)).Round(2)
	}
	return decimal.Zero
}

type EmployeeEarning struct {
	Assignment `gorm:"embedded"`
}

func (EmployeeEarning) TableName() string {
	return "employee_earnings"
}

type EmployeeDeduction struct {
	Assignment `gorm:"embedded"`
}

func (EmployeeDeduction) TableName() string {
	return "employee_deductions"
}
