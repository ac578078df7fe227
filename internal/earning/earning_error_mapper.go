package earning

import (
	"errors"

	earningerrors "github.com/hyagosilvaxds/backend-erp-sub001/internal/earning/errors"
	"github.com/hyagosilvaxds/backend-erp-sub001/internal/shared/database"

	"gorm.io/gorm"
)

func mapTypeError(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return earningerrors.ErrEarningTypeNotFound
	}
	if name, ok := database.UniqueViolation(err); ok && database.ConstraintIs(name, "uq_earning_type_code", "earning_types.code") {
		return earningerrors.ErrEarningTypeCodeExists
	}
	return err
}

func mapAssignmentError(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return earningerrors.ErrAssignmentNotFound
	}
	return err
}
