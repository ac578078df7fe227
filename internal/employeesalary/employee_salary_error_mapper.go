package employeesalary

import (
	"errors"

	employeesalaryerrors "github.com/hyagosilvaxds/backend-erp-sub001/internal/employeesalary/errors"
	"github.com/hyagosilvaxds/backend-erp-sub001/internal/shared/database"

	"gorm.io/gorm"
)

func mapRepositoryError(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return employeesalaryerrors.ErrSalaryNotFound
	}
	if name, ok := database.UniqueViolation(err); ok && database.ConstraintIs(name, "uq_employee_salary_effective", "employee_salaries.") {
		return employeesalaryerrors.ErrSalaryEffectiveDateAlreadyExists
	}
	return err
}
