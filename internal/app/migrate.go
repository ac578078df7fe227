package app

import (
	"github.com/hyagosilvaxds/backend-erp-sub001/internal/company"
	"github.com/hyagosilvaxds/backend-erp-sub001/internal/costcenter"
	"github.com/hyagosilvaxds/backend-erp-sub001/internal/earning"
	"github.com/hyagosilvaxds/backend-erp-sub001/internal/employee"
	"github.com/hyagosilvaxds/backend-erp-sub001/internal/employeesalary"
	"github.com/hyagosilvaxds/backend-erp-sub001/internal/messaging/kafka"
	"github.com/hyagosilvaxds/backend-erp-sub001/internal/payroll"
	"github.com/hyagosilvaxds/backend-erp-sub001/internal/rbac"
	"github.com/hyagosilvaxds/backend-erp-sub001/internal/shared/counter"
	"github.com/hyagosilvaxds/backend-erp-sub001/internal/taxtable"

	"gorm.io/gorm"
)

// AutoMigrate creates or updates every table owned by the modules. Order
// follows foreign keys.
func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&company.Company{},
		&company.CompanyRegistration{},
		&counter.CompanyCounter{},
		&costcenter.CostCenter{},
		&employee.Employee{},
		&employeesalary.EmployeeSalary{},
		&earning.EarningType{},
		&earning.EmployeeEarning{},
		&earning.EmployeeDeduction{},
		&taxtable.TaxTable{},
		&payroll.Payroll{},
		&payroll.PayrollItem{},
		&kafka.OutboxRecord{},
		&rbac.RoleRow{},
		&rbac.PermissionRow{},
		&rbac.RolePermissionLink{},
		&rbac.EmployeeRoleRow{},
	)
}
