package employee

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	employeeerrors "github.com/hyagosilvaxds/backend-erp-sub001/internal/employee/errors"
	"github.com/hyagosilvaxds/backend-erp-sub001/internal/events"
	"github.com/hyagosilvaxds/backend-erp-sub001/internal/messaging/kafka"
	"github.com/hyagosilvaxds/backend-erp-sub001/internal/shared/apperror"
	"github.com/hyagosilvaxds/backend-erp-sub001/internal/shared/contextutil"
	"github.com/hyagosilvaxds/backend-erp-sub001/internal/shared/counter"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"
)

const (
	EmployeeOptionsKeyPrefix = "employees:options:"
	optionsCacheTTL          = time.Hour
	dateLayout               = "2006-01-02"
)

func GetEmployeeOptionsKey(companyID string) string {
	return EmployeeOptionsKeyPrefix + companyID
}

//go:generate mockgen -source=employee_service.go -destination=mock/employee_service_mock.go -package=mock
type Service interface {
	Create(ctx context.Context, companyID string, req CreateEmployeeRequest) (EmployeeResponse, error)
	GetAll(ctx context.Context, companyID string) ([]EmployeeResponse, error)
	GetOptions(ctx context.Context, companyID string) ([]EmployeeOptionResponse, error)
	GetByID(ctx context.Context, companyID, id string) (EmployeeResponse, error)
	Update(ctx context.Context, companyID, id string, req UpdateEmployeeRequest) (EmployeeResponse, error)
	Delete(ctx context.Context, companyID, id string) error
}

type service struct {
	db      *sql.DB
	repo    Repository
	counter counter.Repository
	outbox  kafka.OutboxRepository
	rdb     *redis.Client
	sf      *singleflight.Group
	logger  *zap.Logger
}

func NewService(
	db *sql.DB,
	repo Repository,
	counter counter.Repository,
	outboxRepo kafka.OutboxRepository,
	rdb *redis.Client,
	logger ...*zap.Logger,
) Service {
	l := zap.L().Named("employee.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("employee.service")
	}
	return &service{
		db:      db,
		repo:    repo,
		counter: counter,
		outbox:  outboxRepo,
		rdb:     rdb,
		sf:      &singleflight.Group{},
		logger:  l,
	}
}

func (s *service) Create(
	ctx context.Context,
	companyID string,
	req CreateEmployeeRequest,
) (EmployeeResponse, error) {
	log := contextutil.GetLogger(ctx, s.logger)
	rid := contextutil.GetRequestID(ctx)

	companyUUID, err := uuid.Parse(companyID)
	if err != nil {
		return EmployeeResponse{}, employeeerrors.ErrInvalidCompanyID
	}
	hireDate, err := time.Parse(dateLayout, req.HireDate)
	if err != nil {
		return EmployeeResponse{}, employeeerrors.ErrInvalidHireDate
	}
	if !req.Salary.IsPositive() {
		return EmployeeResponse{}, employeeerrors.ErrInvalidSalary
	}
	cpf := onlyDigits(req.Cpf)
	if req.Cpf != "" && !ValidCPF(cpf) {
		return EmployeeResponse{}, employeeerrors.ErrInvalidCpf
	}
	category := req.FgtsCategory
	if category == "" {
		category = FgtsCategoryStandard
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		log.Error("create employee begin tx failed", zap.Error(err))
		return EmployeeResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	costCenterID, err := s.resolveCostCenter(ctx, qtx, companyID, req.CostCenterID)
	if err != nil {
		return EmployeeResponse{}, err
	}

	registration := strings.TrimSpace(req.RegistrationNumber)
	if registration == "" {
		next, err := s.counter.GetNextValue(ctx, companyID, counter.TypeEmployeeRegistration)
		if err != nil {
			log.Error("create employee generate registration number failed", zap.Error(err))
			return EmployeeResponse{}, err
		}
		registration = fmt.Sprintf("MAT-%06d", next)
	}

	empl := &Employee{
		ID:                 uuid.New(),
		CompanyID:          companyUUID,
		CostCenterID:       costCenterID,
		RegistrationNumber: registration,
		FullName:           strings.TrimSpace(req.FullName),
		Email:              strings.ToLower(strings.TrimSpace(req.Email)),
		Cpf:                cpf,
		HireDate:           hireDate,
		Salary:             req.Salary.Round(2),
		FgtsCategory:       category,
		Status:             StatusActive,
	}

	if err := qtx.Create(ctx, empl); err != nil {
		log.Error("create employee persist failed", zap.Error(err))
		return EmployeeResponse{}, mapRepositoryError(err)
	}

	if s.outbox != nil {
		event, err := kafka.NewOutboxEvent(rid, "employee", empl.ID.String(), events.EventEmployeeCreated,
			events.EmployeeLifecycleTopic, events.EmployeeCreatedEvent{
				EventType:  events.EventEmployeeCreated,
				RequestID:  rid,
				EmployeeID: empl.ID.String(),
				CompanyID:  companyID,
				BaseSalary: empl.Salary.StringFixed(2),
				HireDate:   req.HireDate,
				OccurredAt: time.Now().UTC(),
			})
		if err != nil {
			return EmployeeResponse{}, err
		}
		if err := s.outbox.WithTx(tx).Create(ctx, event); err != nil {
			log.Error("create employee outbox persist failed",
				zap.String("employee_id", empl.ID.String()),
				zap.Error(err),
			)
			return EmployeeResponse{}, err
		}
	}

	if err := tx.Commit(); err != nil {
		log.Error("create employee commit failed", zap.Error(err))
		return EmployeeResponse{}, err
	}

	s.invalidateOptions(ctx, companyID)
	log.Info("employee created",
		zap.String("employee_id", empl.ID.String()),
		zap.String("registration_number", registration),
	)

	return mapToResponse(*empl), nil
}

func (s *service) resolveCostCenter(ctx context.Context, qtx Repository, companyID, raw string) (*uuid.UUID, error) {
	if raw == "" {
		return nil, nil
	}
	id, err := uuid.Parse(raw)
	if err != nil {
		return nil, apperror.InvalidField("cost_center_id")
	}
	ok, err := qtx.CostCenterExists(ctx, companyID, raw)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, apperror.InvalidField("cost_center_id")
	}
	return &id, nil
}

func (s *service) GetAll(ctx context.Context, companyID string) ([]EmployeeResponse, error) {
	employees, err := s.repo.FindAllByCompany(ctx, companyID)
	if err != nil {
		contextutil.GetLogger(ctx, s.logger).Error("get all employees failed", zap.Error(err))
		return nil, mapRepositoryError(err)
	}

	return mapToListResponse(employees), nil
}

func (s *service) GetOptions(ctx context.Context, companyID string) ([]EmployeeOptionResponse, error) {
	cacheKey := GetEmployeeOptionsKey(companyID)

	if s.rdb != nil {
		if cached, err := s.rdb.Get(ctx, cacheKey).Result(); err == nil {
			var resp []EmployeeOptionResponse
			if json.Unmarshal([]byte(cached), &resp) == nil {
				return resp, nil
			}
		}
	}

	v, err, _ := s.sf.Do(cacheKey, func() (interface{}, error) {
		employees, err := s.repo.FindOptionsByCompany(ctx, companyID)
		if err != nil {
			return nil, mapRepositoryError(err)
		}

		resp := make([]EmployeeOptionResponse, len(employees))
		for i, e := range employees {
			resp[i] = EmployeeOptionResponse{
				ID:                 e.ID.String(),
				RegistrationNumber: e.RegistrationNumber,
				FullName:           e.FullName,
			}
		}

		if s.rdb != nil {
			if data, err := json.Marshal(resp); err == nil {
				if err := s.rdb.Set(ctx, cacheKey, data, optionsCacheTTL).Err(); err != nil {
					s.logger.Warn("employee options cache write failed", zap.String("key", cacheKey), zap.Error(err))
				}
			}
		}

		return resp, nil
	})
	if err != nil {
		return nil, err
	}

	return v.([]EmployeeOptionResponse), nil
}

func (s *service) GetByID(ctx context.Context, companyID, id string) (EmployeeResponse, error) {
	empl, err := s.repo.FindByIDAndCompany(ctx, companyID, id)
	if err != nil {
		return EmployeeResponse{}, mapRepositoryError(err)
	}

	return mapToResponse(*empl), nil
}

// Update edits the employee record. Salary changes go through the salary
// history so they keep an effective date.
func (s *service) Update(
	ctx context.Context,
	companyID, id string,
	req UpdateEmployeeRequest,
) (EmployeeResponse, error) {
	log := contextutil.GetLogger(ctx, s.logger)

	cpf := onlyDigits(req.Cpf)
	if req.Cpf != "" && !ValidCPF(cpf) {
		return EmployeeResponse{}, employeeerrors.ErrInvalidCpf
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		log.Error("update employee begin tx failed", zap.Error(err))
		return EmployeeResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	empl, err := qtx.FindByIDAndCompany(ctx, companyID, id)
	if err != nil {
		return EmployeeResponse{}, mapRepositoryError(err)
	}

	costCenterID, err := s.resolveCostCenter(ctx, qtx, companyID, req.CostCenterID)
	if err != nil {
		return EmployeeResponse{}, err
	}

	empl.FullName = strings.TrimSpace(req.FullName)
	empl.Email = strings.ToLower(strings.TrimSpace(req.Email))
	empl.Cpf = cpf
	empl.CostCenterID = costCenterID
	if req.FgtsCategory != "" {
		empl.FgtsCategory = req.FgtsCategory
	}
	if req.Status != "" {
		empl.Status = Status(req.Status)
	}

	switch {
	case req.TerminationDate != "":
		terminated, err := time.Parse(dateLayout, req.TerminationDate)
		if err != nil || terminated.Before(empl.HireDate) {
			return EmployeeResponse{}, employeeerrors.ErrInvalidTerminationDate
		}
		empl.TerminationDate = &terminated
		empl.Status = StatusTerminated
	case empl.Status != StatusTerminated:
		empl.TerminationDate = nil
	}

	if err := qtx.Update(ctx, empl); err != nil {
		log.Error("update employee persist failed", zap.Error(err))
		return EmployeeResponse{}, mapRepositoryError(err)
	}

	if err := tx.Commit(); err != nil {
		log.Error("update employee commit failed", zap.Error(err))
		return EmployeeResponse{}, err
	}

	s.invalidateOptions(ctx, companyID)
	log.Info("employee updated", zap.String("employee_id", id))

	return mapToResponse(*empl), nil
}

func (s *service) Delete(ctx context.Context, companyID, id string) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if err := s.repo.WithTx(tx).Delete(ctx, companyID, id); err != nil {
		return mapRepositoryError(err)
	}

	if err := tx.Commit(); err != nil {
		return err
	}

	s.invalidateOptions(ctx, companyID)
	contextutil.GetLogger(ctx, s.logger).Info("employee deleted", zap.String("employee_id", id))
	return nil
}

func (s *service) invalidateOptions(ctx context.Context, companyID string) {
	if s.rdb == nil {
		return
	}
	cacheKey := GetEmployeeOptionsKey(companyID)
	if err := s.rdb.Del(ctx, cacheKey).Err(); err != nil {
		s.logger.Error("failed to invalidate employee options cache",
			zap.Error(err),
			zap.String("key", cacheKey),
		)
	}
}

func mapToResponse(empl Employee) EmployeeResponse {
	resp := EmployeeResponse{
		ID:                 empl.ID.String(),
		CompanyID:          empl.CompanyID.String(),
		RegistrationNumber: empl.RegistrationNumber,
		FullName:           empl.FullName,
		Email:              empl.Email,
		Cpf:                empl.Cpf,
		CostCenterName:     empl.CostCenterName,
		HireDate:           empl.HireDate.Format(dateLayout),
		Salary:             empl.Salary,
		FgtsCategory:       empl.FgtsCategory,
		Status:             string(empl.Status),
	}
	if empl.CostCenterID != nil {
		resp.CostCenterID = empl.CostCenterID.String()
	}
	if empl.TerminationDate != nil {
		resp.TerminationDate = empl.TerminationDate.Format(dateLayout)
	}
	return resp
}

func mapToListResponse(employees []Employee) []EmployeeResponse {
	res := make([]EmployeeResponse, len(employees))
	for i, e := range employees {
		res[i] = mapToResponse(e)
	}
	return res
}
