package costcenter

import (
	"errors"

	costcentererrors "github.com/hyagosilvaxds/backend-erp-sub001/internal/costcenter/errors"
	"github.com/hyagosilvaxds/backend-erp-sub001/internal/shared/database"

	"gorm.io/gorm"
)

func mapRepositoryError(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return costcentererrors.ErrCostCenterNotFound
	}
	if name, ok := database.UniqueViolation(err); ok && (name == "" || database.ConstraintIs(name, "uq_cost_center_code", "cost_centers.code")) {
		return costcentererrors.ErrCostCenterCodeExists
	}
	return err
}
