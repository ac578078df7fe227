package company_test

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/hyagosilvaxds/backend-erp-sub001/internal/company"

	"github.com/glebarez/sqlite"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func setupCompanyDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", uuid.NewString())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&company.Company{}, &company.CompanyRegistration{}))
	return db
}

func TestRepository_Registrations(t *testing.T) {
	db := setupCompanyDB(t)
	repo := company.NewRepository(db)
	ctx := context.Background()

	comp := &company.Company{Name: "Acme", IsActive: true}
	require.NoError(t, repo.Create(ctx, comp))

	now := time.Now().UTC()
	require.NoError(t, repo.UpsertRegistration(ctx, &company.CompanyRegistration{
		CompanyID: comp.ID, Type: company.RegistrationTypeCNPJ, Number: "11222333000181", CreatedAt: now, UpdatedAt: now,
	}))
	require.NoError(t, repo.UpsertRegistration(ctx, &company.CompanyRegistration{
		CompanyID: comp.ID, Type: company.RegistrationTypeCNPJ, Number: "11444777000161", CreatedAt: now, UpdatedAt: now,
	}))

	regs, err := repo.GetRegistrationsByCompanyID(ctx, comp.ID)
	require.NoError(t, err)
	require.Len(t, regs, 1)
	assert.Equal(t, "11444777000161", regs[0].Number)

	loaded, err := repo.GetByID(ctx, comp.ID)
	require.NoError(t, err)
	assert.Len(t, loaded.Registrations, 1)

	require.NoError(t, repo.DeleteRegistration(ctx, comp.ID, company.RegistrationTypeCNPJ))
	assert.ErrorIs(t, repo.DeleteRegistration(ctx, comp.ID, company.RegistrationTypeCNPJ), gorm.ErrRecordNotFound)
}
