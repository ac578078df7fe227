package employeesalary

import (
	"context"
	"database/sql"
	"errors"
	"time"

	employeesalaryerrors "github.com/hyagosilvaxds/backend-erp-sub001/internal/employeesalary/errors"
	"github.com/hyagosilvaxds/backend-erp-sub001/internal/shared/contextutil"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

const dateLayout = "2006-01-02"

//go:generate mockgen -source=employee_salary_service.go -destination=mock/employee_salary_service_mock.go -package=mock
type Service interface {
	Create(ctx context.Context, companyID string, req CreateEmployeeSalaryRequest) (EmployeeSalaryResponse, error)
	GetAll(ctx context.Context, companyID string) ([]EmployeeSalaryResponse, error)
	GetHistory(ctx context.Context, companyID, employeeID string) ([]EmployeeSalaryResponse, error)
	GetEffective(ctx context.Context, companyID, employeeID, asOf string) (EmployeeSalaryResponse, error)
	GetByID(ctx context.Context, companyID, id string) (EmployeeSalaryResponse, error)
	Update(ctx context.Context, companyID, id string, req UpdateEmployeeSalaryRequest) (EmployeeSalaryResponse, error)
	Delete(ctx context.Context, companyID, id string) error
}

type service struct {
	db     *sql.DB
	repo   Repository
	now    func() time.Time
	logger *zap.Logger
}

func NewService(db *sql.DB, repo Repository, logger ...*zap.Logger) Service {
	l := zap.L().Named("employeesalary.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("employeesalary.service")
	}
	return &service{db: db, repo: repo, now: time.Now, logger: l}
}

func (s *service) Create(
	ctx context.Context,
	companyID string,
	req CreateEmployeeSalaryRequest,
) (EmployeeSalaryResponse, error) {
	companyUUID, err := uuid.Parse(companyID)
	if err != nil {
		return EmployeeSalaryResponse{}, employeesalaryerrors.ErrInvalidEmployeeID
	}
	employeeID, err := uuid.Parse(req.EmployeeID)
	if err != nil {
		return EmployeeSalaryResponse{}, employeesalaryerrors.ErrInvalidEmployeeID
	}
	effectiveDate, err := time.Parse(dateLayout, req.EffectiveDate)
	if err != nil {
		return EmployeeSalaryResponse{}, employeesalaryerrors.ErrInvalidEffectiveDate
	}
	if !req.BaseSalary.IsPositive() {
		return EmployeeSalaryResponse{}, employeesalaryerrors.ErrInvalidBaseSalary
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return EmployeeSalaryResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	salary := &EmployeeSalary{
		ID:            uuid.New(),
		CompanyID:     companyUUID,
		EmployeeID:    employeeID,
		BaseSalary:    req.BaseSalary.Round(2),
		EffectiveDate: effectiveDate,
		Reason:        req.Reason,
	}

	if err := qtx.Create(ctx, salary); err != nil {
		return EmployeeSalaryResponse{}, mapRepositoryError(err)
	}

	if err := s.syncCurrent(ctx, qtx, companyID, req.EmployeeID); err != nil {
		return EmployeeSalaryResponse{}, err
	}

	created, err := qtx.FindByIDAndCompany(ctx, companyID, salary.ID.String())
	if err != nil {
		return EmployeeSalaryResponse{}, mapRepositoryError(err)
	}

	if err := tx.Commit(); err != nil {
		return EmployeeSalaryResponse{}, err
	}

	contextutil.GetLogger(ctx, s.logger).Info("employee salary recorded",
		zap.String("company_id", companyID),
		zap.String("employee_id", req.EmployeeID),
		zap.String("effective_date", req.EffectiveDate),
	)
	return mapToResponse(*created), nil
}

func (s *service) GetAll(ctx context.Context, companyID string) ([]EmployeeSalaryResponse, error) {
	salaries, err := s.repo.FindAllByCompany(ctx, companyID)
	if err != nil {
		return nil, mapRepositoryError(err)
	}
	return mapToListResponse(salaries), nil
}

func (s *service) GetHistory(ctx context.Context, companyID, employeeID string) ([]EmployeeSalaryResponse, error) {
	salaries, err := s.repo.FindByEmployee(ctx, companyID, employeeID)
	if err != nil {
		return nil, mapRepositoryError(err)
	}
	return mapToListResponse(salaries), nil
}

// GetEffective returns the entry in force on asOf (YYYY-MM-DD, today when
// empty): the latest one whose effective date is not after it.
func (s *service) GetEffective(ctx context.Context, companyID, employeeID, asOf string) (EmployeeSalaryResponse, error) {
	if _, err := uuid.Parse(employeeID); err != nil {
		return EmployeeSalaryResponse{}, employeesalaryerrors.ErrInvalidEmployeeID
	}
	date := s.now().UTC()
	if asOf != "" {
		parsed, err := time.Parse(dateLayout, asOf)
		if err != nil {
			return EmployeeSalaryResponse{}, employeesalaryerrors.ErrInvalidEffectiveDate
		}
		date = parsed
	}

	salary, err := s.repo.FindEffective(ctx, companyID, employeeID, date)
	if err != nil {
		return EmployeeSalaryResponse{}, mapRepositoryError(err)
	}
	return mapToResponse(*salary), nil
}

func (s *service) GetByID(ctx context.Context, companyID, id string) (EmployeeSalaryResponse, error) {
	salary, err := s.repo.FindByIDAndCompany(ctx, companyID, id)
	if err != nil {
		return EmployeeSalaryResponse{}, mapRepositoryError(err)
	}
	return mapToResponse(*salary), nil
}

func (s *service) Update(
	ctx context.Context,
	companyID, id string,
	req UpdateEmployeeSalaryRequest,
) (EmployeeSalaryResponse, error) {
	effectiveDate, err := time.Parse(dateLayout, req.EffectiveDate)
	if err != nil {
		return EmployeeSalaryResponse{}, employeesalaryerrors.ErrInvalidEffectiveDate
	}
	if !req.BaseSalary.IsPositive() {
		return EmployeeSalaryResponse{}, employeesalaryerrors.ErrInvalidBaseSalary
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return EmployeeSalaryResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	salary, err := qtx.FindByIDAndCompany(ctx, companyID, id)
	if err != nil {
		return EmployeeSalaryResponse{}, mapRepositoryError(err)
	}

	salary.BaseSalary = req.BaseSalary.Round(2)
	salary.EffectiveDate = effectiveDate
	salary.Reason = req.Reason

	if err := qtx.Update(ctx, salary); err != nil {
		return EmployeeSalaryResponse{}, mapRepositoryError(err)
	}
	if err := s.syncCurrent(ctx, qtx, companyID, salary.EmployeeID.String()); err != nil {
		return EmployeeSalaryResponse{}, err
	}

	if err := tx.Commit(); err != nil {
		return EmployeeSalaryResponse{}, err
	}

	return mapToResponse(*salary), nil
}

func (s *service) Delete(ctx context.Context, companyID, id string) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	salary, err := qtx.FindByIDAndCompany(ctx, companyID, id)
	if err != nil {
		return mapRepositoryError(err)
	}
	if err := qtx.Delete(ctx, companyID, id); err != nil {
		return mapRepositoryError(err)
	}
	if err := s.syncCurrent(ctx, qtx, companyID, salary.EmployeeID.String()); err != nil {
		return err
	}

	return tx.Commit()
}

// syncCurrent keeps employees.salary equal to the entry in force today.
func (s *service) syncCurrent(ctx context.Context, qtx Repository, companyID, employeeID string) error {
	current, err := qtx.FindEffective(ctx, companyID, employeeID, s.now().UTC())
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil
	}
	if err != nil {
		return err
	}
	return qtx.SyncEmployeeSalary(ctx, companyID, employeeID, current.BaseSalary)
}

func mapToResponse(salary EmployeeSalary) EmployeeSalaryResponse {
	return EmployeeSalaryResponse{
		ID:            salary.ID.String(),
		EmployeeID:    salary.EmployeeID.String(),
		EmployeeName:  salary.EmployeeName,
		BaseSalary:    salary.BaseSalary,
		EffectiveDate: salary.EffectiveDate.Format(dateLayout),
		Reason:        salary.Reason,
	}
}

func mapToListResponse(salaries []EmployeeSalary) []EmployeeSalaryResponse {
	res := make([]EmployeeSalaryResponse, len(salaries))
	for i, salary := range salaries {
		res[i] = mapToResponse(salary)
	}
	return res
}

