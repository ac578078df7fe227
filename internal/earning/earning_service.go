package earning

import (
	"context"
	"database/sql"
	"strings"
	"time"

	earningerrors "github.com/hyagosilvaxds/backend-erp-sub001/internal/earning/errors"
	"github.com/hyagosilvaxds/backend-erp-sub001/internal/shared/apperror"
	"github.com/hyagosilvaxds/backend-erp-sub001/internal/shared/contextutil"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

const dateLayout = "2006-01-02"

var hundred = decimal.NewFromInt(100)

//go:generate mockgen -source=earning_service.go -destination=mock/earning_service_mock.go -package=mock
type Service interface {
	CreateType(ctx context.Context, companyID string, req CreateEarningTypeRequest) (EarningTypeResponse, error)
	GetTypes(ctx context.Context, companyID string, kind Kind) ([]EarningTypeResponse, error)
	GetTypeByID(ctx context.Context, companyID, id string) (EarningTypeResponse, error)
	UpdateType(ctx context.Context, companyID, id string, req UpdateEarningTypeRequest) (EarningTypeResponse, error)
	DeleteType(ctx context.Context, companyID, id string) error

	CreateAssignment(ctx context.Context, kind Kind, companyID string, req CreateAssignmentRequest) (AssignmentResponse, error)
	GetAssignments(ctx context.Context, kind Kind, companyID, employeeID string) ([]AssignmentResponse, error)
	GetAssignmentByID(ctx context.Context, kind Kind, companyID, id string) (AssignmentResponse, error)
	UpdateAssignment(ctx context.Context, kind Kind, companyID, id string, req UpdateAssignmentRequest) (AssignmentResponse, error)
	DeleteAssignment(ctx context.Context, kind Kind, companyID, id string) error
}

type service struct {
	db     *sql.DB
	repo   Repository
	logger *zap.Logger
}

func NewService(db *sql.DB, repo Repository, logger ...*zap.Logger) Service {
	l := zap.L().Named("earning.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("earning.service")
	}
	return &service{db: db, repo: repo, logger: l}
}

func (s *service) CreateType(ctx context.Context, companyID string, req CreateEarningTypeRequest) (EarningTypeResponse, error) {
	cid, err := uuid.Parse(companyID)
	if err != nil {
		return EarningTypeResponse{}, apperror.InvalidField("company_id")
	}
	kind := Kind(strings.ToUpper(req.Kind))
	if !kind.Valid() {
		return EarningTypeResponse{}, earningerrors.ErrInvalidKind
	}

	et := &EarningType{
		ID:          uuid.New(),
		CompanyID:   cid,
		Kind:        kind,
		Code:        strings.ToUpper(strings.TrimSpace(req.Code)),
		Name:        strings.TrimSpace(req.Name),
		Description: req.Description,
		Active:      true,
	}
	if err := s.repo.CreateType(ctx, et); err != nil {
		return EarningTypeResponse{}, mapTypeError(err)
	}

	contextutil.GetLogger(ctx, s.logger).Info("earning type created",
		zap.String("earning_type_id", et.ID.String()),
		zap.String("code", et.Code),
		zap.String("kind", string(et.Kind)),
	)
	return mapTypeToResponse(*et), nil
}

func (s *service) GetTypes(ctx context.Context, companyID string, kind Kind) ([]EarningTypeResponse, error) {
	if kind != "" && !kind.Valid() {
		return nil, earningerrors.ErrInvalidKind
	}
	types, err := s.repo.FindTypes(ctx, companyID, kind)
	if err != nil {
		return nil, mapTypeError(err)
	}
	res := make([]EarningTypeResponse, len(types))
	for i, et := range types {
		res[i] = mapTypeToResponse(et)
	}
	return res, nil
}

func (s *service) GetTypeByID(ctx context.Context, companyID, id string) (EarningTypeResponse, error) {
	et, err := s.repo.FindTypeByID(ctx, companyID, id)
	if err != nil {
		return EarningTypeResponse{}, mapTypeError(err)
	}
	return mapTypeToResponse(*et), nil
}

func (s *service) UpdateType(ctx context.Context, companyID, id string, req UpdateEarningTypeRequest) (EarningTypeResponse, error) {
	et, err := s.repo.FindTypeByID(ctx, companyID, id)
	if err != nil {
		return EarningTypeResponse{}, mapTypeError(err)
	}

	et.Name = strings.TrimSpace(req.Name)
	et.Description = req.Description
	if req.Active != nil {
		et.Active = *req.Active
	}
	if err := s.repo.UpdateType(ctx, et); err != nil {
		return EarningTypeResponse{}, mapTypeError(err)
	}
	return mapTypeToResponse(*et), nil
}

func (s *service) DeleteType(ctx context.Context, companyID, id string) error {
	return mapTypeError(s.repo.DeleteType(ctx, companyID, id))
}

func (s *service) CreateAssignment(
	ctx context.Context,
	kind Kind,
	companyID string,
	req CreateAssignmentRequest,
) (AssignmentResponse, error) {
	cid, err := uuid.Parse(companyID)
	if err != nil {
		return AssignmentResponse{}, apperror.InvalidField("company_id")
	}
	employeeID, err := uuid.Parse(req.EmployeeID)
	if err != nil {
		return AssignmentResponse{}, earningerrors.ErrEmployeeNotFound
	}
	typeID, err := uuid.Parse(req.EarningTypeID)
	if err != nil {
		return AssignmentResponse{}, earningerrors.ErrEarningTypeNotFound
	}
	if err := validateAmount(req.Value, req.Percentage); err != nil {
		return AssignmentResponse{}, err
	}
	start, end, err := parseRange(req.StartDate, req.EndDate)
	if err != nil {
		return AssignmentResponse{}, err
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return AssignmentResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	et, err := qtx.FindTypeByID(ctx, companyID, req.EarningTypeID)
	if err != nil {
		return AssignmentResponse{}, mapTypeError(err)
	}
	if et.Kind != kind {
		return AssignmentResponse{}, earningerrors.ErrEarningTypeKindMismatch
	}
	ok, err := qtx.EmployeeExists(ctx, companyID, req.EmployeeID)
	if err != nil {
		return AssignmentResponse{}, err
	}
	if !ok {
		return AssignmentResponse{}, earningerrors.ErrEmployeeNotFound
	}

	a := &Assignment{
		ID:            uuid.New(),
		CompanyID:     cid,
		EmployeeID:    employeeID,
		EarningTypeID: typeID,
		Value:         roundPtr(req.Value, 2),
		Percentage:    roundPtr(req.Percentage, 4),
		Recurrent:     req.Recurrent,
		StartDate:     start,
		EndDate:       end,
		Active:        true,
		Notes:         req.Notes,
	}
	if err := qtx.CreateAssignment(ctx, kind, a); err != nil {
		return AssignmentResponse{}, mapAssignmentError(err)
	}

	if err := tx.Commit(); err != nil {
		return AssignmentResponse{}, err
	}

	a.TypeCode, a.TypeName = et.Code, et.Name
	contextutil.GetLogger(ctx, s.logger).Info("employee assignment created",
		zap.String("kind", string(kind)),
		zap.String("employee_id", req.EmployeeID),
		zap.String("code", et.Code),
	)
	return mapAssignmentToResponse(kind, *a), nil
}

func (s *service) GetAssignments(ctx context.Context, kind Kind, companyID, employeeID string) ([]AssignmentResponse, error) {
	items, err := s.repo.FindAssignments(ctx, kind, companyID, employeeID)
	if err != nil {
		return nil, mapAssignmentError(err)
	}
	res := make([]AssignmentResponse, len(items))
	for i, a := range items {
		res[i] = mapAssignmentToResponse(kind, a)
	}
	return res, nil
}

func (s *service) GetAssignmentByID(ctx context.Context, kind Kind, companyID, id string) (AssignmentResponse, error) {
	a, err := s.repo.FindAssignmentByID(ctx, kind, companyID, id)
	if err != nil {
		return AssignmentResponse{}, mapAssignmentError(err)
	}
	return mapAssignmentToResponse(kind, *a), nil
}

func (s *service) UpdateAssignment(
	ctx context.Context,
	kind Kind,
	companyID, id string,
	req UpdateAssignmentRequest,
) (AssignmentResponse, error) {
	if err := validateAmount(req.Value, req.Percentage); err != nil {
		return AssignmentResponse{}, err
	}
	start, end, err := parseRange(req.StartDate, req.EndDate)
	if err != nil {
		return AssignmentResponse{}, err
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return AssignmentResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	a, err := qtx.FindAssignmentByID(ctx, kind, companyID, id)
	if err != nil {
		return AssignmentResponse{}, mapAssignmentError(err)
	}

	a.Value = roundPtr(req.Value, 2)
	a.Percentage = roundPtr(req.Percentage, 4)
	a.Recurrent = req.Recurrent
	a.StartDate = start
	a.EndDate = end
	a.Notes = req.Notes
	if req.Active != nil {
		a.Active = *req.Active
	}

	if err := qtx.UpdateAssignment(ctx, kind, a); err != nil {
		return AssignmentResponse{}, mapAssignmentError(err)
	}
	if err := tx.Commit(); err != nil {
		return AssignmentResponse{}, err
	}

	return mapAssignmentToResponse(kind, *a), nil
}

func (s *service) DeleteAssignment(ctx context.Context, kind Kind, companyID, id string) error {
	return mapAssignmentError(s.repo.DeleteAssignment(ctx, kind, companyID, id))
}

// validateAmount enforces exactly one of value (> 0) or percentage (0, 100].
func validateAmount(value, percentage *decimal.Decimal) error {
	if (value == nil) == (percentage == nil) {
		return earningerrors.ErrValueOrPercentageRequired
	}
	if value != nil && !value.IsPositive() {
		return earningerrors.ErrInvalidAmount
	}
	if percentage != nil && (!percentage.IsPositive() || percentage.GreaterThan(hundred)) {
		return earningerrors.ErrInvalidAmount
	}
	return nil
}

func parseRange(startRaw, endRaw string) (time.Time, *time.Time, error) {
	start, err := time.Parse(dateLayout, startRaw)
	if err != nil {
		return time.Time{}, nil, earningerrors.ErrInvalidDateRange
	}
	if endRaw == "" {
		return start, nil, nil
	}
	end, err := time.Parse(dateLayout, endRaw)
	if err != nil || end.Before(start) {
		return time.Time{}, nil, earningerrors.ErrInvalidDateRange
	}
	return start, &end, nil
}

func roundPtr(d *decimal.Decimal, places int32) *decimal.Decimal {
	if d == nil {
		return nil
	}
	r := d.Round(places)
	return &r
}

func mapTypeToResponse(et EarningType) EarningTypeResponse {
	return EarningTypeResponse{
		ID:          et.ID.String(),
		Kind:        string(et.Kind),
		Code:        et.Code,
		Name:        et.Name,
		Description: et.Description,
		Active:      et.Active,
	}
}

func mapAssignmentToResponse(kind Kind, a Assignment) AssignmentResponse {
	resp := AssignmentResponse{
		ID:            a.ID.String(),
		Kind:          string(kind),
		EmployeeID:    a.EmployeeID.String(),
		EarningTypeID: a.EarningTypeID.String(),
		Code:          a.TypeCode,
		Name:          a.TypeName,
		Value:         a.Value,
		Percentage:    a.Percentage,
		Recurrent:     a.Recurrent,
		StartDate:     a.StartDate.Format(dateLayout),
		Active:        a.Active,
		Notes:         a.Notes,
	}
	if a.EndDate != nil {
		resp.EndDate = a.EndDate.Format(dateLayout)
	}
	return resp
}
