package counter_test

import (
	"context"
	"fmt"
	"testing"

	"github.com/hyagosilvaxds/backend-erp-sub001/internal/shared/counter"

	"github.com/glebarez/sqlite"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func TestRepository_GetNextValue(t *testing.T) {
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", uuid.NewString())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&counter.CompanyCounter{}))

	repo := counter.NewRepository(db)
	ctx := context.Background()
	companyA := uuid.NewString()
	companyB := uuid.NewString()

	first, err := repo.GetNextValue(ctx, companyA, counter.TypeEmployeeRegistration)
	require.NoError(t, err)
	second, err := repo.GetNextValue(ctx, companyA, counter.TypeEmployeeRegistration)
	require.NoError(t, err)
	other, err := repo.GetNextValue(ctx, companyB, counter.TypeEmployeeRegistration)
	require.NoError(t, err)

	assert.Equal(t, int64(1), first)
	assert.Equal(t, int64(2), second)
	assert.Equal(t, int64(1), other)
}
