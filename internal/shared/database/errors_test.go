package database

import (
	"errors"
	"fmt"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

func TestUniqueViolation(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantName   string
		wantUnique bool
	}{
		{name: "nil", err: nil},
		{
			name:       "postgres unique",
			err:        fmt.Errorf("insert: %w", &pgconn.PgError{Code: "23505", ConstraintName: "uq_payroll_period"}),
			wantName:   "uq_payroll_period",
			wantUnique: true,
		},
		{
			name:     "postgres foreign key",
			err:      &pgconn.PgError{Code: "23503", ConstraintName: "fk_payroll_items_payroll"},
			wantName: "fk_payroll_items_payroll",
		},
		{
			name:       "sqlite unique",
			err:        errors.New("constraint failed: UNIQUE constraint failed: employees.email (2067)"),
			wantName:   "employees.email (2067)",
			wantUnique: true,
		},
		{name: "translated by gorm", err: gorm.ErrDuplicatedKey, wantUnique: true},
		{name: "not found", err: gorm.ErrRecordNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			name, unique := UniqueViolation(tt.err)

			assert.Equal(t, tt.wantUnique, unique)
			assert.Equal(t, tt.wantName, name)
		})
	}
}

func TestConstraintIs(t *testing.T) {
	assert.True(t, ConstraintIs("uq_employee_email", "uq_employee_email", "employees.email"))
	assert.True(t, ConstraintIs("employees.company_id, employees.email", "uq_employee_email", "employees.email"))
	assert.False(t, ConstraintIs("employees.registration_number", "employees.email"))
	assert.False(t, ConstraintIs("", "employees.email"))
}
