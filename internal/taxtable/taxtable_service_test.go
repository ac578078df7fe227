package taxtable_test

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/hyagosilvaxds/backend-erp-sub001/internal/shared/metrics"
	"github.com/hyagosilvaxds/backend-erp-sub001/internal/taxtable"
	taxtableerrors "github.com/hyagosilvaxds/backend-erp-sub001/internal/taxtable/errors"
	taxtableMock "github.com/hyagosilvaxds/backend-erp-sub001/internal/taxtable/mock"

	"github.com/go-redis/redismock/v9"
	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"gorm.io/gorm"
)

type serviceDeps struct {
	service   taxtable.Service
	repo      *taxtableMock.MockRepository
	redismock redismock.ClientMock
}

func setupServiceTest(t *testing.T) *serviceDeps {
	ctrl := gomock.NewController(t)
	rdb, redisMock := redismock.NewClientMock()
	repo := taxtableMock.NewMockRepository(ctrl)

	return &serviceDeps{
		service:   taxtable.NewService(repo, rdb, metrics.NewPayrollMetrics(prometheus.NewRegistry())),
		repo:      repo,
		redismock: redisMock,
	}
}

func acceptAnyArgs(expected, actual []interface{}) error { return nil }

func money(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func moneyPtr(s string) *decimal.Decimal {
	d := money(s)
	return &d
}

func irrfBrackets() []taxtable.Bracket {
	return []taxtable.Bracket{
		{MinValue: money("0"), MaxValue: moneyPtr("2259.20")},
		{MinValue: money("2259.21"), MaxValue: moneyPtr("2826.65"), Rate: money("7.5"), Deduction: money("169.44")},
		{MinValue: money("2826.66"), Rate: money("15"), Deduction: money("381.44")},
	}
}

func inssBrackets() []taxtable.Bracket {
	return []taxtable.Bracket{
		{MinValue: money("0"), MaxValue: moneyPtr("1412.00"), EmployeeRate: moneyPtr("7.5")},
		{MinValue: money("1412.01"), MaxValue: moneyPtr("2666.68"), EmployeeRate: moneyPtr("9")},
	}
}

func TestTaxTableService_Create(t *testing.T) {
	ctx := context.Background()

	t.Run("success invalidates cached lookups", func(t *testing.T) {
		deps := setupServiceTest(t)
		companyID := uuid.NewString()
		cachedKey := taxtable.GetActiveTableKey(companyID, taxtable.KindIRRF, 2024, 3)

		deps.repo.EXPECT().
			ActiveExists(gomock.Any(), companyID, taxtable.KindIRRF, 2024, 1, "").
			Return(false, nil)
		deps.repo.EXPECT().
			Create(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, tt *taxtable.TaxTable) error {
				assert.Equal(t, taxtable.KindIRRF, tt.Kind)
				assert.True(t, tt.Active)
				assert.Equal(t, "189.59", tt.DependentDeduction.StringFixed(2))
				return nil
			})
		deps.redismock.ExpectScan(0, "taxtable:active:"+companyID+":IRRF:*", 100).SetVal([]string{cachedKey}, 0)
		deps.redismock.ExpectDel(cachedKey).SetVal(1)

		res, err := deps.service.Create(ctx, companyID, taxtable.KindIRRF, taxtable.CreateTaxTableRequest{
			Year:               2024,
			Month:              1,
			Description:        " IRRF 2024 ",
			Brackets:           irrfBrackets(),
			DependentDeduction: money("189.59"),
		})

		require.NoError(t, err)
		assert.Equal(t, "IRRF 2024", res.Description)
		assert.Len(t, res.Brackets, 3)
		assert.NoError(t, deps.redismock.ExpectationsWereMet())
	})

	t.Run("second active table conflicts", func(t *testing.T) {
		deps := setupServiceTest(t)
		companyID := uuid.NewString()

		deps.repo.EXPECT().
			ActiveExists(gomock.Any(), companyID, taxtable.KindINSS, 2024, 1, "").
			Return(true, nil)

		_, err := deps.service.Create(ctx, companyID, taxtable.KindINSS, taxtable.CreateTaxTableRequest{
			Year: 2024, Month: 1, Brackets: inssBrackets(),
		})

		assert.ErrorIs(t, err, taxtableerrors.ErrActiveTableExists)
	})

	t.Run("inactive table skips the conflict check", func(t *testing.T) {
		deps := setupServiceTest(t)
		companyID := uuid.NewString()
		inactive := false

		deps.repo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil)
		deps.redismock.ExpectScan(0, "taxtable:active:"+companyID+":INSS:*", 100).SetVal(nil, 0)

		res, err := deps.service.Create(ctx, companyID, taxtable.KindINSS, taxtable.CreateTaxTableRequest{
			Year: 2024, Month: 1, Active: &inactive, Brackets: inssBrackets(),
		})

		require.NoError(t, err)
		assert.False(t, res.Active)
	})

	t.Run("invalid brackets never reach the repository", func(t *testing.T) {
		deps := setupServiceTest(t)

		_, err := deps.service.Create(ctx, uuid.NewString(), taxtable.KindINSS, taxtable.CreateTaxTableRequest{
			Year: 2024, Month: 1,
			Brackets: []taxtable.Bracket{
				{MinValue: money("0"), MaxValue: moneyPtr("1000"), EmployeeRate: moneyPtr("7.5")},
				{MinValue: money("1500"), EmployeeRate: moneyPtr("9")},
			},
		})

		assert.ErrorIs(t, err, taxtableerrors.ErrInvalidBrackets)
	})

	t.Run("fgts categories are stored uppercased", func(t *testing.T) {
		deps := setupServiceTest(t)
		companyID := uuid.NewString()

		deps.repo.EXPECT().
			ActiveExists(gomock.Any(), companyID, taxtable.KindFGTS, 2024, 1, "").
			Return(false, nil)
		deps.repo.EXPECT().
			Create(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, tt *taxtable.TaxTable) error {
				require.Len(t, tt.FgtsRates, 1)
				assert.Equal(t, taxtable.CategoryStandard, tt.FgtsRates[0].Category)
				return nil
			})
		deps.redismock.ExpectScan(0, "taxtable:active:"+companyID+":FGTS:*", 100).SetVal(nil, 0)

		res, err := deps.service.Create(ctx, companyID, taxtable.KindFGTS, taxtable.CreateTaxTableRequest{
			Year: 2024, Month: 1,
			FgtsRates: []taxtable.FgtsRate{{Category: " standard", MonthlyRate: money("8"), TerminationRate: money("40")}},
		})

		require.NoError(t, err)
		assert.Equal(t, taxtable.CategoryStandard, res.FgtsRates[0].Category)
	})

	t.Run("unknown fgts category never reaches the repository", func(t *testing.T) {
		deps := setupServiceTest(t)

		_, err := deps.service.Create(ctx, uuid.NewString(), taxtable.KindFGTS, taxtable.CreateTaxTableRequest{
			Year: 2024, Month: 1,
			FgtsRates: []taxtable.FgtsRate{{Category: "seasonal", MonthlyRate: money("8")}},
		})

		assert.ErrorIs(t, err, taxtableerrors.ErrInvalidFgtsRates)
	})

	t.Run("invalid period and company", func(t *testing.T) {
		deps := setupServiceTest(t)

		_, err := deps.service.Create(ctx, uuid.NewString(), taxtable.KindINSS, taxtable.CreateTaxTableRequest{Year: 2024, Month: 13})
		assert.ErrorIs(t, err, taxtableerrors.ErrInvalidPeriod)

		_, err = deps.service.Create(ctx, "not-a-uuid", taxtable.KindINSS, taxtable.CreateTaxTableRequest{Year: 2024, Month: 1})
		require.Error(t, err)
	})
}

func TestTaxTableService_GetActiveTable(t *testing.T) {
	ctx := context.Background()

	t.Run("cache hit", func(t *testing.T) {
		deps := setupServiceTest(t)
		companyID := uuid.NewString()
		cached := taxtable.TaxTable{ID: uuid.New(), Kind: taxtable.KindIRRF, Year: 2024, Month: 1, Active: true, Brackets: irrfBrackets()}
		data, err := json.Marshal(cached)
		require.NoError(t, err)

		deps.redismock.ExpectGet(taxtable.GetActiveTableKey(companyID, taxtable.KindIRRF, 2024, 5)).SetVal(string(data))

		got, err := deps.service.GetActiveTable(ctx, companyID, taxtable.KindIRRF, 2024, 5)

		require.NoError(t, err)
		require.NotNil(t, got)
		assert.Equal(t, cached.ID, got.ID)
		assert.Len(t, got.Brackets, 3)
		assert.True(t, got.Brackets[1].Deduction.Equal(money("169.44")))
	})

	t.Run("cache miss loads and stores", func(t *testing.T) {
		deps := setupServiceTest(t)
		companyID := uuid.NewString()
		cacheKey := taxtable.GetActiveTableKey(companyID, taxtable.KindINSS, 2024, 5)
		table := &taxtable.TaxTable{ID: uuid.New(), Kind: taxtable.KindINSS, Year: 2024, Month: 1, Active: true}

		deps.redismock.ExpectGet(cacheKey).RedisNil()
		deps.repo.EXPECT().GetActiveTable(gomock.Any(), companyID, taxtable.KindINSS, 2024, 5).Return(table, nil)
		deps.redismock.CustomMatch(acceptAnyArgs).ExpectSet(cacheKey, "", 0).SetVal("OK")

		got, err := deps.service.GetActiveTable(ctx, companyID, taxtable.KindINSS, 2024, 5)

		require.NoError(t, err)
		assert.Equal(t, table.ID, got.ID)
		assert.NoError(t, deps.redismock.ExpectationsWereMet())
	})

	t.Run("shared load survives a cancelled caller", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := taxtableMock.NewMockRepository(ctrl)
		service := taxtable.NewService(repo, nil, metrics.NewPayrollMetrics(prometheus.NewRegistry()))
		companyID := uuid.NewString()
		table := &taxtable.TaxTable{ID: uuid.New(), Kind: taxtable.KindIRRF, Year: 2024, Month: 1, Active: true}

		cancelled, cancel := context.WithCancel(ctx)
		cancel()

		repo.EXPECT().
			GetActiveTable(gomock.Any(), companyID, taxtable.KindIRRF, 2024, 5).
			DoAndReturn(func(loadCtx context.Context, _ string, _ taxtable.Kind, _, _ int) (*taxtable.TaxTable, error) {
				require.NoError(t, loadCtx.Err())
				return table, nil
			})

		got, err := service.GetActiveTable(cancelled, companyID, taxtable.KindIRRF, 2024, 5)

		require.NoError(t, err)
		assert.Equal(t, table.ID, got.ID)
	})

	t.Run("absent table is not an error", func(t *testing.T) {
		deps := setupServiceTest(t)
		companyID := uuid.NewString()

		deps.redismock.ExpectGet(taxtable.GetActiveTableKey(companyID, taxtable.KindFGTS, 2024, 5)).RedisNil()
		deps.repo.EXPECT().GetActiveTable(gomock.Any(), companyID, taxtable.KindFGTS, 2024, 5).Return(nil, nil)

		got, err := deps.service.GetActiveTable(ctx, companyID, taxtable.KindFGTS, 2024, 5)

		require.NoError(t, err)
		assert.Nil(t, got)
	})

	t.Run("repository failure", func(t *testing.T) {
		deps := setupServiceTest(t)
		companyID := uuid.NewString()

		deps.redismock.ExpectGet(taxtable.GetActiveTableKey(companyID, taxtable.KindINSS, 2024, 5)).RedisNil()
		deps.repo.EXPECT().
			GetActiveTable(gomock.Any(), companyID, taxtable.KindINSS, 2024, 5).
			Return(nil, errors.New("database connection lost"))

		got, err := deps.service.GetActiveTable(ctx, companyID, taxtable.KindINSS, 2024, 5)

		assert.Nil(t, got)
		assert.EqualError(t, err, "database connection lost")
	})

	t.Run("GetActive reports a missing table", func(t *testing.T) {
		deps := setupServiceTest(t)
		companyID := uuid.NewString()

		deps.redismock.ExpectGet(taxtable.GetActiveTableKey(companyID, taxtable.KindINSS, 2024, 5)).RedisNil()
		deps.repo.EXPECT().GetActiveTable(gomock.Any(), companyID, taxtable.KindINSS, 2024, 5).Return(nil, nil)

		_, err := deps.service.GetActive(ctx, companyID, taxtable.KindINSS, 2024, 5)

		assert.ErrorIs(t, err, taxtableerrors.ErrNoActiveTable)
	})
}

func TestTaxTableService_Update(t *testing.T) {
	ctx := context.Background()

	t.Run("activation rechecks the conflict", func(t *testing.T) {
		deps := setupServiceTest(t)
		companyID := uuid.NewString()
		id := uuid.New()
		active := true

		deps.repo.EXPECT().
			FindByID(gomock.Any(), companyID, taxtable.KindINSS, id.String()).
			Return(&taxtable.TaxTable{ID: id, Kind: taxtable.KindINSS, Year: 2024, Month: 1, Brackets: inssBrackets()}, nil)
		deps.repo.EXPECT().
			ActiveExists(gomock.Any(), companyID, taxtable.KindINSS, 2024, 1, id.String()).
			Return(true, nil)

		_, err := deps.service.Update(ctx, companyID, taxtable.KindINSS, id.String(), taxtable.UpdateTaxTableRequest{Active: &active})

		assert.ErrorIs(t, err, taxtableerrors.ErrActiveTableExists)
	})

	t.Run("replaces brackets", func(t *testing.T) {
		deps := setupServiceTest(t)
		companyID := uuid.NewString()
		id := uuid.New()
		description := "revised"

		deps.repo.EXPECT().
			FindByID(gomock.Any(), companyID, taxtable.KindIRRF, id.String()).
			Return(&taxtable.TaxTable{ID: id, Kind: taxtable.KindIRRF, Year: 2024, Month: 1, Active: true, Brackets: irrfBrackets()}, nil)
		deps.repo.EXPECT().Update(gomock.Any(), gomock.Any()).Return(nil)
		deps.redismock.ExpectScan(0, "taxtable:active:"+companyID+":IRRF:*", 100).SetVal(nil, 0)

		res, err := deps.service.Update(ctx, companyID, taxtable.KindIRRF, id.String(), taxtable.UpdateTaxTableRequest{
			Description: &description,
			Brackets:    []taxtable.Bracket{{MinValue: money("0"), Rate: money("10")}},
		})

		require.NoError(t, err)
		assert.Equal(t, "revised", res.Description)
		assert.Len(t, res.Brackets, 1)
	})

	t.Run("not found", func(t *testing.T) {
		deps := setupServiceTest(t)
		companyID := uuid.NewString()

		deps.repo.EXPECT().
			FindByID(gomock.Any(), companyID, taxtable.KindIRRF, "missing").
			Return(nil, gorm.ErrRecordNotFound)

		_, err := deps.service.Update(ctx, companyID, taxtable.KindIRRF, "missing", taxtable.UpdateTaxTableRequest{})

		assert.ErrorIs(t, err, taxtableerrors.ErrTaxTableNotFound)
	})
}

func TestTaxTableService_Delete(t *testing.T) {
	ctx := context.Background()
	deps := setupServiceTest(t)
	companyID := uuid.NewString()

	deps.repo.EXPECT().Delete(gomock.Any(), companyID, taxtable.KindFGTS, "missing").Return(gorm.ErrRecordNotFound)
	assert.ErrorIs(t, deps.service.Delete(ctx, companyID, taxtable.KindFGTS, "missing"), taxtableerrors.ErrTaxTableNotFound)

	deps.repo.EXPECT().Delete(gomock.Any(), companyID, taxtable.KindFGTS, "t-1").Return(nil)
	deps.redismock.ExpectScan(0, "taxtable:active:"+companyID+":FGTS:*", 100).SetVal(nil, 0)
	assert.NoError(t, deps.service.Delete(ctx, companyID, taxtable.KindFGTS, "t-1"))
}

func TestTaxTableService_Simulate(t *testing.T) {
	ctx := context.Background()
	ctrl := gomock.NewController(t)
	repo := taxtableMock.NewMockRepository(ctrl)
	svc := taxtable.NewService(repo, nil, nil)
	companyID := uuid.NewString()

	repo.EXPECT().
		GetActiveTable(gomock.Any(), companyID, taxtable.KindINSS, 2024, 2).
		Return(&taxtable.TaxTable{ID: uuid.New(), Kind: taxtable.KindINSS, Year: 2024, Month: 1, Brackets: inssBrackets()}, nil)

	res, err := svc.Simulate(ctx, companyID, taxtable.KindINSS, taxtable.SimulateRequest{Year: 2024, Month: 2, Amount: money("2000")})

	require.NoError(t, err)
	require.NotNil(t, res.Inss)
	assert.Nil(t, res.Irrf)
	assert.Equal(t, "158.82", res.Inss.EmployeeContribution.StringFixed(2))
	assert.Equal(t, 1, res.Month)

	repo.EXPECT().GetActiveTable(gomock.Any(), companyID, taxtable.KindFGTS, 2024, 2).Return(nil, nil)
	_, err = svc.Simulate(ctx, companyID, taxtable.KindFGTS, taxtable.SimulateRequest{Year: 2024, Month: 2, Amount: money("2000")})
	assert.ErrorIs(t, err, taxtableerrors.ErrNoActiveTable)

	_, err = svc.Simulate(ctx, companyID, taxtable.KindIRRF, taxtable.SimulateRequest{Year: 2024, Month: 2, Amount: money("-1")})
	assert.ErrorIs(t, err, taxtableerrors.ErrInvalidSimulation)
}
