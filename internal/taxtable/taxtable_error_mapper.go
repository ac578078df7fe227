package taxtable

import (
	"errors"

	"github.com/hyagosilvaxds/backend-erp-sub001/internal/shared/database"
	taxtableerrors "github.com/hyagosilvaxds/backend-erp-sub001/internal/taxtable/errors"

	"gorm.io/gorm"
)

func mapRepositoryError(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return taxtableerrors.ErrTaxTableNotFound
	}
	if name, ok := database.UniqueViolation(err); ok && database.ConstraintIs(name, "uq_tax_table_active", "tax_tables.") {
		return taxtableerrors.ErrActiveTableExists
	}
	return err
}
