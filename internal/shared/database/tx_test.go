package database_test

import (
	"context"
	"fmt"
	"testing"

	"github.com/hyagosilvaxds/backend-erp-sub001/internal/shared/database"

	"github.com/glebarez/sqlite"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

type note struct {
	ID   string `gorm:"primaryKey"`
	Body string
}

func openDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", uuid.NewString())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&note{}))
	return db
}

func TestBindTx_RollbackDiscardsWrites(t *testing.T) {
	db := openDB(t)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	ctx := context.Background()

	tx, err := sqlDB.BeginTx(ctx, nil)
	require.NoError(t, err)
	require.NoError(t, database.BindTx(db, tx).WithContext(ctx).Create(&note{ID: "a", Body: "x"}).Error)
	require.NoError(t, tx.Rollback())

	var count int64
	require.NoError(t, db.Model(&note{}).Count(&count).Error)
	assert.Equal(t, int64(0), count)
}

func TestBindTx_CommitPersists(t *testing.T) {
	db := openDB(t)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	ctx := context.Background()

	tx, err := sqlDB.BeginTx(ctx, nil)
	require.NoError(t, err)
	require.NoError(t, database.BindTx(db, tx).WithContext(ctx).Create(&note{ID: "b", Body: "y"}).Error)
	require.NoError(t, tx.Commit())

	var count int64
	require.NoError(t, db.Model(&note{}).Count(&count).Error)
	assert.Equal(t, int64(1), count)
}

func TestBindTx_NilTxReturnsSameHandle(t *testing.T) {
	db := openDB(t)
	assert.Same(t, db, database.BindTx(db, nil))
}
