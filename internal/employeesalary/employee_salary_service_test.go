package employeesalary_test

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/hyagosilvaxds/backend-erp-sub001/internal/employeesalary"
	employeesalaryerrors "github.com/hyagosilvaxds/backend-erp-sub001/internal/employeesalary/errors"
	employeesalaryMock "github.com/hyagosilvaxds/backend-erp-sub001/internal/employeesalary/mock"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"gorm.io/gorm"
)

type serviceDeps struct {
	db      *sql.DB
	sqlMock sqlmock.Sqlmock
	service employeesalary.Service
	repo    *employeesalaryMock.MockRepository
}

func setupServiceTest(t *testing.T) *serviceDeps {
	ctrl := gomock.NewController(t)

	db, sqlMock, err := sqlmock.New()
	require.NoError(t, err)
	repo := employeesalaryMock.NewMockRepository(ctrl)

	return &serviceDeps{
		db:      db,
		sqlMock: sqlMock,
		service: employeesalary.NewService(db, repo),
		repo:    repo,
	}
}

func TestEmployeeSalaryService_Create(t *testing.T) {
	ctx := context.Background()
	companyID := uuid.NewString()
	employeeID := uuid.NewString()

	validReq := employeesalary.CreateEmployeeSalaryRequest{
		EmployeeID:    employeeID,
		BaseSalary:    decimal.RequireFromString("5000.00"),
		EffectiveDate: "2026-01-01",
		Reason:        "promotion",
	}

	t.Run("success syncs current salary", func(t *testing.T) {
		deps := setupServiceTest(t)
		defer deps.db.Close()

		var createdID uuid.UUID
		deps.sqlMock.ExpectBegin()
		deps.repo.EXPECT().WithTx(gomock.Any()).Return(deps.repo)
		deps.repo.EXPECT().
			Create(ctx, gomock.Any()).
			DoAndReturn(func(_ context.Context, s *employeesalary.EmployeeSalary) error {
				createdID = s.ID
				assert.Equal(t, employeeID, s.EmployeeID.String())
				assert.True(t, s.BaseSalary.Equal(decimal.NewFromInt(5000)))
				return nil
			})
		deps.repo.EXPECT().
			FindEffective(ctx, companyID, employeeID, gomock.Any()).
			DoAndReturn(func(_ context.Context, _, _ string, _ time.Time) (*employeesalary.EmployeeSalary, error) {
				return &employeesalary.EmployeeSalary{ID: createdID, BaseSalary: decimal.NewFromInt(5000)}, nil
			})
		deps.repo.EXPECT().
			SyncEmployeeSalary(ctx, companyID, employeeID, decimal.NewFromInt(5000)).
			Return(nil)
		deps.repo.EXPECT().
			FindByIDAndCompany(ctx, companyID, gomock.Any()).
			DoAndReturn(func(_ context.Context, _, id string) (*employeesalary.EmployeeSalary, error) {
				return &employeesalary.EmployeeSalary{
					ID:            createdID,
					EmployeeID:    uuid.MustParse(employeeID),
					EmployeeName:  "Ana",
					BaseSalary:    decimal.NewFromInt(5000),
					EffectiveDate: time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC),
				}, nil
			})
		deps.sqlMock.ExpectCommit()

		resp, err := deps.service.Create(ctx, companyID, validReq)

		require.NoError(t, err)
		assert.Equal(t, "Ana", resp.EmployeeName)
		assert.Equal(t, "2026-01-01", resp.EffectiveDate)
		assert.NoError(t, deps.sqlMock.ExpectationsWereMet())
	})

	t.Run("future entry does not touch employee salary", func(t *testing.T) {
		deps := setupServiceTest(t)
		defer deps.db.Close()

		deps.sqlMock.ExpectBegin()
		deps.repo.EXPECT().WithTx(gomock.Any()).Return(deps.repo)
		deps.repo.EXPECT().Create(ctx, gomock.Any()).Return(nil)
		deps.repo.EXPECT().
			FindEffective(ctx, companyID, employeeID, gomock.Any()).
			Return(nil, gorm.ErrRecordNotFound)
		deps.repo.EXPECT().SyncEmployeeSalary(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Times(0)
		deps.repo.EXPECT().
			FindByIDAndCompany(ctx, companyID, gomock.Any()).
			Return(&employeesalary.EmployeeSalary{ID: uuid.New(), EffectiveDate: time.Now().AddDate(1, 0, 0)}, nil)
		deps.sqlMock.ExpectCommit()

		_, err := deps.service.Create(ctx, companyID, validReq)

		require.NoError(t, err)
	})

	t.Run("duplicate effective date", func(t *testing.T) {
		deps := setupServiceTest(t)
		defer deps.db.Close()

		deps.sqlMock.ExpectBegin()
		deps.repo.EXPECT().WithTx(gomock.Any()).Return(deps.repo)
		deps.repo.EXPECT().
			Create(ctx, gomock.Any()).
			Return(&pgconn.PgError{Code: "23505", ConstraintName: "uq_employee_salary_effective"})
		deps.sqlMock.ExpectRollback()

		_, err := deps.service.Create(ctx, companyID, validReq)

		assert.ErrorIs(t, err, employeesalaryerrors.ErrSalaryEffectiveDateAlreadyExists)
	})

	t.Run("rejects non positive salary", func(t *testing.T) {
		deps := setupServiceTest(t)
		defer deps.db.Close()

		req := validReq
		req.BaseSalary = decimal.Zero

		_, err := deps.service.Create(ctx, companyID, req)

		assert.ErrorIs(t, err, employeesalaryerrors.ErrInvalidBaseSalary)
	})

	t.Run("rejects malformed effective date", func(t *testing.T) {
		deps := setupServiceTest(t)
		defer deps.db.Close()

		req := validReq
		req.EffectiveDate = "01/01/2026"

		_, err := deps.service.Create(ctx, companyID, req)

		assert.ErrorIs(t, err, employeesalaryerrors.ErrInvalidEffectiveDate)
	})

	t.Run("rejects malformed employee id", func(t *testing.T) {
		deps := setupServiceTest(t)
		defer deps.db.Close()

		req := validReq
		req.EmployeeID = "nope"

		_, err := deps.service.Create(ctx, companyID, req)

		assert.ErrorIs(t, err, employeesalaryerrors.ErrInvalidEmployeeID)
	})
}

func TestEmployeeSalaryService_GetHistory(t *testing.T) {
	deps := setupServiceTest(t)
	defer deps.db.Close()

	ctx := context.Background()
	companyID := uuid.NewString()
	employeeID := uuid.NewString()

	deps.repo.EXPECT().
		FindByEmployee(ctx, companyID, employeeID).
		Return([]employeesalary.EmployeeSalary{
			{ID: uuid.New(), BaseSalary: decimal.NewFromInt(6000), EffectiveDate: time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)},
			{ID: uuid.New(), BaseSalary: decimal.NewFromInt(5000), EffectiveDate: time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC)},
		}, nil)

	resp, err := deps.service.GetHistory(ctx, companyID, employeeID)

	require.NoError(t, err)
	require.Len(t, resp, 2)
	assert.Equal(t, "2026-03-01", resp[0].EffectiveDate)
}

func TestEmployeeSalaryService_GetEffective(t *testing.T) {
	ctx := context.Background()
	companyID := uuid.NewString()
	employeeID := uuid.NewString()

	t.Run("as of a date", func(t *testing.T) {
		deps := setupServiceTest(t)
		defer deps.db.Close()

		asOf := time.Date(2026, 2, 15, 0, 0, 0, 0, time.UTC)
		deps.repo.EXPECT().
			FindEffective(ctx, companyID, employeeID, asOf).
			Return(&employeesalary.EmployeeSalary{
				ID:            uuid.New(),
				BaseSalary:    decimal.NewFromInt(5000),
				EffectiveDate: time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC),
			}, nil)

		resp, err := deps.service.GetEffective(ctx, companyID, employeeID, "2026-02-15")

		require.NoError(t, err)
		assert.Equal(t, "2026-01-01", resp.EffectiveDate)
		assert.Equal(t, "5000", resp.BaseSalary.String())
	})

	t.Run("defaults to today", func(t *testing.T) {
		deps := setupServiceTest(t)
		defer deps.db.Close()

		deps.repo.EXPECT().
			FindEffective(ctx, companyID, employeeID, gomock.Any()).
			Return(nil, gorm.ErrRecordNotFound)

		_, err := deps.service.GetEffective(ctx, companyID, employeeID, "")

		assert.ErrorIs(t, err, employeesalaryerrors.ErrSalaryNotFound)
	})

	t.Run("invalid input", func(t *testing.T) {
		deps := setupServiceTest(t)
		defer deps.db.Close()

		_, err := deps.service.GetEffective(ctx, companyID, "not-a-uuid", "")
		assert.ErrorIs(t, err, employeesalaryerrors.ErrInvalidEmployeeID)

		_, err = deps.service.GetEffective(ctx, companyID, employeeID, "15/02/2026")
		assert.ErrorIs(t, err, employeesalaryerrors.ErrInvalidEffectiveDate)
	})
}

func TestEmployeeSalaryService_GetByID_NotFound(t *testing.T) {
	deps := setupServiceTest(t)
	defer deps.db.Close()

	ctx := context.Background()
	deps.repo.EXPECT().FindByIDAndCompany(ctx, "c1", "s1").Return(nil, gorm.ErrRecordNotFound)

	_, err := deps.service.GetByID(ctx, "c1", "s1")

	assert.ErrorIs(t, err, employeesalaryerrors.ErrSalaryNotFound)
}

func TestEmployeeSalaryService_Update(t *testing.T) {
	ctx := context.Background()
	companyID := uuid.NewString()
	employeeID := uuid.New()
	salaryID := uuid.New()

	t.Run("success resyncs", func(t *testing.T) {
		deps := setupServiceTest(t)
		defer deps.db.Close()

		existing := &employeesalary.EmployeeSalary{ID: salaryID, EmployeeID: employeeID, BaseSalary: decimal.NewFromInt(4000)}

		deps.sqlMock.ExpectBegin()
		deps.repo.EXPECT().WithTx(gomock.Any()).Return(deps.repo)
		deps.repo.EXPECT().FindByIDAndCompany(ctx, companyID, salaryID.String()).Return(existing, nil)
		deps.repo.EXPECT().Update(ctx, existing).Return(nil)
		deps.repo.EXPECT().
			FindEffective(ctx, companyID, employeeID.String(), gomock.Any()).
			Return(existing, nil)
		deps.repo.EXPECT().
			SyncEmployeeSalary(ctx, companyID, employeeID.String(), decimal.RequireFromString("4500.50")).
			Return(nil)
		deps.sqlMock.ExpectCommit()

		resp, err := deps.service.Update(ctx, companyID, salaryID.String(), employeesalary.UpdateEmployeeSalaryRequest{
			BaseSalary:    decimal.RequireFromString("4500.50"),
			EffectiveDate: "2025-06-01",
		})

		require.NoError(t, err)
		assert.Equal(t, "2025-06-01", resp.EffectiveDate)
		assert.True(t, resp.BaseSalary.Equal(decimal.RequireFromString("4500.50")))
	})

	t.Run("not found", func(t *testing.T) {
		deps := setupServiceTest(t)
		defer deps.db.Close()

		deps.sqlMock.ExpectBegin()
		deps.repo.EXPECT().WithTx(gomock.Any()).Return(deps.repo)
		deps.repo.EXPECT().FindByIDAndCompany(ctx, companyID, salaryID.String()).Return(nil, gorm.ErrRecordNotFound)
		deps.sqlMock.ExpectRollback()

		_, err := deps.service.Update(ctx, companyID, salaryID.String(), employeesalary.UpdateEmployeeSalaryRequest{
			BaseSalary:    decimal.NewFromInt(1),
			EffectiveDate: "2025-06-01",
		})

		assert.ErrorIs(t, err, employeesalaryerrors.ErrSalaryNotFound)
	})
}

func TestEmployeeSalaryService_Delete(t *testing.T) {
	ctx := context.Background()
	companyID := uuid.NewString()
	employeeID := uuid.New()
	salaryID := uuid.New()

	t.Run("falls back to previous entry", func(t *testing.T) {
		deps := setupServiceTest(t)
		defer deps.db.Close()

		deps.sqlMock.ExpectBegin()
		deps.repo.EXPECT().WithTx(gomock.Any()).Return(deps.repo)
		deps.repo.EXPECT().
			FindByIDAndCompany(ctx, companyID, salaryID.String()).
			Return(&employeesalary.EmployeeSalary{ID: salaryID, EmployeeID: employeeID}, nil)
		deps.repo.EXPECT().Delete(ctx, companyID, salaryID.String()).Return(nil)
		deps.repo.EXPECT().
			FindEffective(ctx, companyID, employeeID.String(), gomock.Any()).
			Return(&employeesalary.EmployeeSalary{BaseSalary: decimal.NewFromInt(3000)}, nil)
		deps.repo.EXPECT().
			SyncEmployeeSalary(ctx, companyID, employeeID.String(), decimal.NewFromInt(3000)).
			Return(nil)
		deps.sqlMock.ExpectCommit()

		require.NoError(t, deps.service.Delete(ctx, companyID, salaryID.String()))
	})

	t.Run("repository failure rolls back", func(t *testing.T) {
		deps := setupServiceTest(t)
		defer deps.db.Close()

		deps.sqlMock.ExpectBegin()
		deps.repo.EXPECT().WithTx(gomock.Any()).Return(deps.repo)
		deps.repo.EXPECT().
			FindByIDAndCompany(ctx, companyID, salaryID.String()).
			Return(&employeesalary.EmployeeSalary{ID: salaryID, EmployeeID: employeeID}, nil)
		deps.repo.EXPECT().Delete(ctx, companyID, salaryID.String()).Return(errors.New("db down"))
		deps.sqlMock.ExpectRollback()

		err := deps.service.Delete(ctx, companyID, salaryID.String())

		assert.EqualError(t, err, "db down")
		assert.NoError(t, deps.sqlMock.ExpectationsWereMet())
	})
}
