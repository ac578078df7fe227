package taxtable

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type Kind string

const (
	KindINSS Kind = "INSS"
	KindIRRF Kind = "IRRF"
	KindFGTS Kind = "FGTS"
)

func (k Kind) Valid() bool {
	switch k {
	case KindINSS, KindIRRF, KindFGTS:
		return true
	}
	return false
}

// ParseKind accepts the lowercase form used in route paths.
func ParseKind(s string) (Kind, bool) {
	k := Kind(strings.ToUpper(strings.TrimSpace(s)))
	return k, k.Valid()
}

const (
	CategoryStandard   = "STANDARD"
	CategoryApprentice = "APPRENTICE"
	CategoryIntern     = "INTERN"
	CategoryDomestic   = "DOMESTIC"
)

func validFgtsCategory(category string) bool {
	switch category {
	case CategoryStandard, CategoryApprentice, CategoryIntern, CategoryDomestic:
		return true
	}
	return false
}

// NormalizeFgtsCategory trims and uppercases a category as sent by clients.
func NormalizeFgtsCategory(category string) string {
	return strings.ToUpper(strings.TrimSpace(category))
}

// Bracket is one progressive range. A nil MaxValue means unbounded. A nil
// EmployeeRate means the employee pays Rate; an explicit zero means the
// bracket is employer-only.
type Bracket struct {
	MinValue     decimal.Decimal  `json:"minValue"`
	MaxValue     *decimal.Decimal `json:"maxValue"`
	Rate         decimal.Decimal  `json:"rate"`
	Deduction    decimal.Decimal  `json:"deduction"`
	EmployeeRate *decimal.Decimal `json:"employeeRate,omitempty"`
	EmployerRate decimal.Decimal  `json:"employerRate"`
}

func (b Bracket) employeeRate() decimal.Decimal {
	if b.EmployeeRate != nil {
		return *b.EmployeeRate
	}
	return b.Rate
}

func (b Bracket) contains(v decimal.Decimal) bool {
	if v.LessThan(b.MinValue) {
		return false
	}
	return b.MaxValue == nil || v.LessThanOrEqual(*b.MaxValue)
}

type FgtsRate struct {
	Category        string          `json:"category"`
	MonthlyRate     decimal.Decimal `json:"monthlyRate"`
	TerminationRate decimal.Decimal `json:"terminationRate"`
}

type TaxTable struct {
	ID                 uuid.UUID                    `gorm:"type:uuid;primaryKey"`
	CompanyID          uuid.UUID                    `gorm:"type:uuid;not null;index:idx_tax_table_period,priority:1;uniqueIndex:uq_tax_table_active,priority:1,where:active = true"`
	Kind               Kind                         `gorm:"type:varchar(10);not null;index:idx_tax_table_period,priority:2;uniqueIndex:uq_tax_table_active,priority:2,where:active = true"`
	Year               int                          `gorm:"not null;index:idx_tax_table_period,priority:3;uniqueIndex:uq_tax_table_active,priority:3,where:active = true"`
	Month              int                          `gorm:"not null;index:idx_tax_table_period,priority:4;uniqueIndex:uq_tax_table_active,priority:4,where:active = true"`
	Active             bool                         `gorm:"not null"`
	Description        string                       `gorm:"type:varchar(255)"`
	Brackets           datatypes.JSONSlice[Bracket] `gorm:"not null"`
	FgtsRates          datatypes.JSONSlice[FgtsRate]
	DependentDeduction decimal.Decimal `gorm:"type:decimal(15,2);not null;default:0"`
	CreatedAt          time.Time
	UpdatedAt          time.Time
}

func (TaxTable) TableName() string {
	return "tax_tables"
}

func (t *TaxTable) BeforeCreate(tx *gorm.DB) error {
	if t.ID == uuid.Nil {
		t.ID = uuid.New()
	}
	return nil
}

// Period returns the comparable yyyymm value of the table.
func (t TaxTable) Period() int {
	return t.Year*100 + t.Month
}
