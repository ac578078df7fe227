package employeesalary

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// EmployeeSalary is one entry of an employee's effective-dated salary history.
type EmployeeSalary struct {
	ID            uuid.UUID       `gorm:"type:uuid;primaryKey"`
	CompanyID     uuid.UUID       `gorm:"type:uuid;not null;index"`
	EmployeeID    uuid.UUID       `gorm:"type:uuid;not null;uniqueIndex:uq_employee_salary_effective"`
	EmployeeName  string          `gorm:"->;-:migration"`
	BaseSalary    decimal.Decimal `gorm:"type:decimal(15,2);not null"`
	EffectiveDate time.Time       `gorm:"type:date;not null;uniqueIndex:uq_employee_salary_effective"`
	Reason        string          `gorm:"type:varchar(120)"`
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

func (EmployeeSalary) TableName() string {
	return "employee_salaries"
}
