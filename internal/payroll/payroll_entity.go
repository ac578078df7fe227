package payroll

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type Status string

const (
	StatusDraft      Status = "DRAFT"
	StatusCalculated Status = "CALCULATED"
	StatusApproved   Status = "APPROVED"
	StatusPaid       Status = "PAID"
)

func (s Status) Valid() bool {
	switch s {
	case StatusDraft, StatusCalculated, StatusApproved, StatusPaid:
		return true
	}
	return false
}

// Editable reports whether items may still be generated or corrected.
func (s Status) Editable() bool {
	return s == StatusDraft || s == StatusCalculated
}

type Type string

const (
	TypeMonthly Type = "MONTHLY"
	TypeWeekly  Type = "WEEKLY"
	TypeDaily   Type = "DAILY"
	TypeAdvance Type = "ADVANCE"
)

func (t Type) Valid() bool {
	switch t {
	case TypeMonthly, TypeWeekly, TypeDaily, TypeAdvance:
		return true
	}
	return false
}

const (
	CodeBaseSalary = "BASE_SALARY"
	CodeInss       = "INSS"
	CodeIrrf       = "IRRF"
)

// ItemEntry is one earning or deduction line captured on a payroll item.
type ItemEntry struct {
	TypeID string          `json:"typeId,omitempty"`
	Code   string          `json:"code"`
	Name   string          `json:"name"`
	Value  decimal.Decimal `json:"value"`
}

func sumEntries(entries []ItemEntry) decimal.Decimal {
	total := decimal.Zero
	for _, e := range entries {
		total = total.Add(e.Value)
	}
	return total
}

type Payroll struct {
	ID                uuid.UUID       `gorm:"type:uuid;primaryKey"`
	CompanyID         uuid.UUID       `gorm:"type:uuid;not null;uniqueIndex:uq_payroll_period,priority:1;index:idx_payroll_company_status,priority:1"`
	ReferenceMonth    int             `gorm:"not null;uniqueIndex:uq_payroll_period,priority:2"`
	ReferenceYear     int             `gorm:"not null;uniqueIndex:uq_payroll_period,priority:3"`
	Type              Type            `gorm:"type:varchar(20);not null;uniqueIndex:uq_payroll_period,priority:4"`
	StartDate         time.Time       `gorm:"type:date;not null"`
	EndDate           time.Time       `gorm:"type:date;not null"`
	PaymentDate       time.Time       `gorm:"type:date;not null"`
	Status            Status          `gorm:"type:varchar(20);not null;index:idx_payroll_company_status,priority:2"`
	Description       string          `gorm:"type:varchar(255)"`
	TotalEarnings     decimal.Decimal `gorm:"type:decimal(15,2);not null;default:0"`
	TotalDeductions   decimal.Decimal `gorm:"type:decimal(15,2);not null;default:0"`
	NetAmount         decimal.Decimal `gorm:"type:decimal(15,2);not null;default:0"`
	TotalEmployerInss decimal.Decimal `gorm:"type:decimal(15,2);not null;default:0"`
	TotalFgts         decimal.Decimal `gorm:"type:decimal(15,2);not null;default:0"`
	EmployeeCount     int             `gorm:"not null;default:0"`
	CreatedBy         uuid.UUID       `gorm:"type:uuid;not null"`
	CalculatedAt      *time.Time
	ApprovedBy        *uuid.UUID `gorm:"type:uuid"`
	ApprovedAt        *time.Time
	PaidAt            *time.Time
	CreatedAt         time.Time
	UpdatedAt         time.Time

	Items []PayrollItem `gorm:"foreignKey:PayrollID"`
}

func (Payroll) TableName() string {
	return "payrolls"
}

func (p *Payroll) BeforeCreate(tx *gorm.DB) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	return nil
}

type PayrollItem struct {
	ID                 uuid.UUID                      `gorm:"type:uuid;primaryKey"`
	PayrollID          uuid.UUID                      `gorm:"type:uuid;not null;uniqueIndex:uq_payroll_item_employee,priority:1"`
	CompanyID          uuid.UUID                      `gorm:"type:uuid;not null;index"`
	EmployeeID         uuid.UUID                      `gorm:"type:uuid;not null;uniqueIndex:uq_payroll_item_employee,priority:2"`
	EmployeeName       string                         `gorm:"->;-:migration"`
	RegistrationNumber string                         `gorm:"->;-:migration"`
	CostCenterID       *uuid.UUID                     `gorm:"->;-:migration"`
	CostCenterName     string                         `gorm:"->;-:migration"`
	BaseSalary         decimal.Decimal                `gorm:"type:decimal(15,2);not null"`
	Earnings           datatypes.JSONSlice[ItemEntry] `gorm:"not null"`
	Deductions         datatypes.JSONSlice[ItemEntry] `gorm:"not null"`
	TotalEarnings      decimal.Decimal                `gorm:"type:decimal(15,2);not null"`
	TotalDeductions    decimal.Decimal                `gorm:"type:decimal(15,2);not null"`
	NetAmount          decimal.Decimal                `gorm:"type:decimal(15,2);not null"`
	EmployerInss       decimal.Decimal                `gorm:"type:decimal(15,2);not null;default:0"`
	FgtsAmount         decimal.Decimal                `gorm:"type:decimal(15,2);not null;default:0"`
	Notes              string                         `gorm:"type:varchar(500)"`
	CreatedAt          time.Time
	UpdatedAt          time.Time
}

func (PayrollItem) TableName() string {
	return "payroll_items"
}

func (i *PayrollItem) BeforeCreate(tx *gorm.DB) error {
	if i.ID == uuid.Nil {
		i.ID = uuid.New()
	}
	return nil
}

// Recompute derives the item totals from its entries.
func (i *PayrollItem) Recompute() {
	i.TotalEarnings = sumEntries(i.Earnings)
	i.TotalDeductions = sumEntries(i.Deductions)
	i.NetAmount = i.TotalEarnings.Sub(i.TotalDeductions)
}

// ApplyTotals sets the payroll totals to the sums across items.
func (p *Payroll) ApplyTotals(items []PayrollItem) {
	p.TotalEarnings = decimal.Zero
	p.TotalDeductions = decimal.Zero
	p.NetAmount = decimal.Zero
	p.TotalEmployerInss = decimal.Zero
	p.TotalFgts = decimal.Zero
	for _, item := range items {
		p.TotalEarnings = p.TotalEarnings.Add(item.TotalEarnings)
		p.TotalDeductions = p.TotalDeductions.Add(item.TotalDeductions)
		p.NetAmount = p.NetAmount.Add(item.NetAmount)
		p.TotalEmployerInss = p.TotalEmployerInss.Add(item.EmployerInss)
		p.TotalFgts = p.TotalFgts.Add(item.FgtsAmount)
	}
	p.EmployeeCount = len(items)
}
