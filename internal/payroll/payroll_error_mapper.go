package payroll

import (
	"errors"

	payrollerrors "github.com/hyagosilvaxds/backend-erp-sub001/internal/payroll/errors"
	"github.com/hyagosilvaxds/backend-erp-sub001/internal/shared/database"

	"gorm.io/gorm"
)

func mapRepositoryError(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return payrollerrors.ErrPayrollNotFound
	}
	if name, ok := database.UniqueViolation(err); ok && database.ConstraintIs(name, "uq_payroll_period", "payrolls.") {
		return payrollerrors.ErrPayrollAlreadyExists
	}
	return err
}

func mapItemError(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return payrollerrors.ErrItemNotFound
	}
	return err
}
