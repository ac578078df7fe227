package employee

import (
	"errors"

	employeeerrors "github.com/hyagosilvaxds/backend-erp-sub001/internal/employee/errors"
	"github.com/hyagosilvaxds/backend-erp-sub001/internal/shared/database"

	"gorm.io/gorm"
)

func mapRepositoryError(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return employeeerrors.ErrEmployeeNotFound
	}

	name, ok := database.UniqueViolation(err)
	switch {
	case !ok:
		return err
	case database.ConstraintIs(name, "uq_employee_registration", "employees.registration_number"):
		return employeeerrors.ErrRegistrationNumberAlreadyExists
	case database.ConstraintIs(name, "uq_employee_email", "employees.email"):
		return employeeerrors.ErrEmployeeAlreadyExists
	}
	return err
}
