package earning_test

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/hyagosilvaxds/backend-erp-sub001/internal/earning"

	"github.com/glebarez/sqlite"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func setupRepo(t *testing.T) (earning.Repository, *gorm.DB) {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", uuid.NewString())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&earning.EarningType{}, &earning.EmployeeEarning{}, &earning.EmployeeDeduction{}))
	return earning.NewRepository(db), db
}

func date(s string) time.Time {
	d, _ := time.Parse("2006-01-02", s)
	return d
}

func datePtr(s string) *time.Time {
	d := date(s)
	return &d
}

func TestRepository_FindActiveEarningsForPeriod(t *testing.T) {
	repo, _ := setupRepo(t)
	ctx := context.Background()
	companyID := uuid.New()
	employeeID := uuid.New()

	active := &earning.EarningType{ID: uuid.New(), CompanyID: companyID, Kind: earning.KindEarning, Code: "HE50", Name: "Hora extra", Active: true}
	disabled := &earning.EarningType{ID: uuid.New(), CompanyID: companyID, Kind: earning.KindEarning, Code: "OLD", Name: "Legado", Active: true}
	require.NoError(t, repo.CreateType(ctx, active))
	require.NoError(t, repo.CreateType(ctx, disabled))
	disabled.Active = false
	require.NoError(t, repo.UpdateType(ctx, disabled))

	add := func(typeID uuid.UUID, notes string, recurrent bool, start string, end *time.Time, isActive bool) {
		a := &earning.Assignment{
			ID:            uuid.New(),
			CompanyID:     companyID,
			EmployeeID:    employeeID,
			EarningTypeID: typeID,
			Value:         dec("100"),
			Recurrent:     recurrent,
			StartDate:     date(start),
			EndDate:       end,
			Active:        true,
			Notes:         notes,
		}
		require.NoError(t, repo.CreateAssignment(ctx, earning.KindEarning, a))
		if !isActive {
			a.Active = false
			require.NoError(t, repo.UpdateAssignment(ctx, earning.KindEarning, a))
		}
	}

	add(active.ID, "recurrent", true, "2025-01-01", datePtr("2025-06-30"), true)
	add(active.ID, "overlapping", false, "2026-02-15", datePtr("2026-03-15"), true)
	add(active.ID, "open ended", false, "2025-11-01", nil, true)
	add(active.ID, "ended before", false, "2025-01-01", datePtr("2026-01-31"), true)
	add(active.ID, "starts after", true, "2026-03-01", nil, true)
	add(active.ID, "inactive", true, "2025-01-01", nil, false)
	add(disabled.ID, "inactive type", true, "2025-01-01", nil, true)

	got, err := repo.FindActiveEarningsForPeriod(ctx, companyID.String(), date("2026-02-01"), date("2026-02-28"))
	require.NoError(t, err)

	notes := make([]string, len(got))
	for i, a := range got {
		notes[i] = a.Notes
		assert.Equal(t, "HE50", a.TypeCode)
	}
	assert.ElementsMatch(t, []string{"recurrent", "overlapping", "open ended"}, notes)

	deductions, err := repo.FindActiveDeductionsForPeriod(ctx, companyID.String(), date("2026-02-01"), date("2026-02-28"))
	require.NoError(t, err)
	assert.Empty(t, deductions)
}

func TestRepository_DeleteAssignment(t *testing.T) {
	repo, _ := setupRepo(t)
	ctx := context.Background()
	companyID := uuid.New()

	et := &earning.EarningType{ID: uuid.New(), CompanyID: companyID, Kind: earning.KindDeduction, Code: "VT", Name: "Vale transporte", Active: true}
	require.NoError(t, repo.CreateType(ctx, et))
	a := &earning.Assignment{
		ID: uuid.New(), CompanyID: companyID, EmployeeID: uuid.New(), EarningTypeID: et.ID,
		Percentage: dec("6"), Recurrent: true, StartDate: date("2026-01-01"), Active: true,
	}
	require.NoError(t, repo.CreateAssignment(ctx, earning.KindDeduction, a))

	found, err := repo.FindAssignmentByID(ctx, earning.KindDeduction, companyID.String(), a.ID.String())
	require.NoError(t, err)
	assert.Equal(t, "Vale transporte", found.TypeName)

	_, err = repo.FindAssignmentByID(ctx, earning.KindEarning, companyID.String(), a.ID.String())
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)

	require.NoError(t, repo.DeleteAssignment(ctx, earning.KindDeduction, companyID.String(), a.ID.String()))
	assert.ErrorIs(t, repo.DeleteAssignment(ctx, earning.KindDeduction, companyID.String(), a.ID.String()), gorm.ErrRecordNotFound)
}
