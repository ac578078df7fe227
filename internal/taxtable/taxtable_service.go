package taxtable

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/hyagosilvaxds/backend-erp-sub001/internal/shared/apperror"
	"github.com/hyagosilvaxds/backend-erp-sub001/internal/shared/contextutil"
	"github.com/hyagosilvaxds/backend-erp-sub001/internal/shared/metrics"
	taxtableerrors "github.com/hyagosilvaxds/backend-erp-sub001/internal/taxtable/errors"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"
	"gorm.io/datatypes"
)

const defaultActiveCacheTTL = 6 * time.Hour

func GetActiveTableKey(companyID string, kind Kind, year, month int) string {
	return fmt.Sprintf("taxtable:active:%s:%s:%04d-%02d", companyID, kind, year, month)
}

func activeTablePattern(companyID string, kind Kind) string {
	return fmt.Sprintf("taxtable:active:%s:%s:*", companyID, kind)
}

//go:generate mockgen -source=taxtable_service.go -destination=mock/taxtable_service_mock.go -package=mock
type Service interface {
	Create(ctx context.Context, companyID string, kind Kind, req CreateTaxTableRequest) (TaxTableResponse, error)
	GetAll(ctx context.Context, companyID string, kind Kind, filter ListFilter) ([]TaxTableResponse, error)
	GetByID(ctx context.Context, companyID string, kind Kind, id string) (TaxTableResponse, error)
	Update(ctx context.Context, companyID string, kind Kind, id string, req UpdateTaxTableRequest) (TaxTableResponse, error)
	Delete(ctx context.Context, companyID string, kind Kind, id string) error

	GetActive(ctx context.Context, companyID string, kind Kind, year, month int) (TaxTableResponse, error)
	GetActiveTable(ctx context.Context, companyID string, kind Kind, year, month int) (*TaxTable, error)
	Simulate(ctx context.Context, companyID string, kind Kind, req SimulateRequest) (SimulateResponse, error)
}

type service struct {
	repo     Repository
	rdb      *redis.Client
	sf       *singleflight.Group
	cacheTTL time.Duration
	metrics  *metrics.PayrollMetrics
	logger   *zap.Logger
}

func NewService(repo Repository, rdb *redis.Client, m *metrics.PayrollMetrics, logger ...*zap.Logger) Service {
	return NewServiceWithCacheTTL(repo, rdb, m, defaultActiveCacheTTL, logger...)
}

func NewServiceWithCacheTTL(
	repo Repository,
	rdb *redis.Client,
	m *metrics.PayrollMetrics,
	cacheTTL time.Duration,
	logger ...*zap.Logger,
) Service {
	l := zap.L().Named("taxtable.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("taxtable.service")
	}
	if cacheTTL <= 0 {
		cacheTTL = defaultActiveCacheTTL
	}
	return &service{
		repo:     repo,
		rdb:      rdb,
		sf:       &singleflight.Group{},
		cacheTTL: cacheTTL,
		metrics:  m,
		logger:   l,
	}
}

func (s *service) Create(ctx context.Context, companyID string, kind Kind, req CreateTaxTableRequest) (TaxTableResponse, error) {
	cid, err := uuid.Parse(companyID)
	if err != nil {
		return TaxTableResponse{}, apperror.InvalidField("company_id")
	}
	if !kind.Valid() {
		return TaxTableResponse{}, taxtableerrors.ErrInvalidKind
	}
	if err := validatePeriod(req.Year, req.Month); err != nil {
		return TaxTableResponse{}, err
	}
	fgtsRates := NormalizeFgtsRates(req.FgtsRates)
	if err := ValidateTable(kind, req.Brackets, fgtsRates, req.DependentDeduction); err != nil {
		return TaxTableResponse{}, err
	}

	active := true
	if req.Active != nil {
		active = *req.Active
	}
	if active {
		exists, err := s.repo.ActiveExists(ctx, companyID, kind, req.Year, req.Month, "")
		if err != nil {
			return TaxTableResponse{}, mapRepositoryError(err)
		}
		if exists {
			return TaxTableResponse{}, taxtableerrors.ErrActiveTableExists
		}
	}

	t := &TaxTable{
		ID:                 uuid.New(),
		CompanyID:          cid,
		Kind:               kind,
		Year:               req.Year,
		Month:              req.Month,
		Active:             active,
		Description:        strings.TrimSpace(req.Description),
		Brackets:           bracketsOrEmpty(req.Brackets),
		FgtsRates:          datatypes.JSONSlice[FgtsRate](fgtsRates),
		DependentDeduction: req.DependentDeduction.Round(2),
	}
	if err := s.repo.Create(ctx, t); err != nil {
		return TaxTableResponse{}, mapRepositoryError(err)
	}
	s.invalidateActive(ctx, companyID, kind)

	contextutil.GetLogger(ctx, s.logger).Info("tax table created",
		zap.String("tax_table_id", t.ID.String()),
		zap.String("kind", string(kind)),
		zap.Int("year", t.Year),
		zap.Int("month", t.Month),
		zap.Bool("active", t.Active),
	)
	return mapTableToResponse(*t), nil
}

func (s *service) GetAll(ctx context.Context, companyID string, kind Kind, filter ListFilter) ([]TaxTableResponse, error) {
	if !kind.Valid() {
		return nil, taxtableerrors.ErrInvalidKind
	}
	tables, err := s.repo.FindAll(ctx, companyID, kind, filter)
	if err != nil {
		return nil, mapRepositoryError(err)
	}
	res := make([]TaxTableResponse, len(tables))
	for i, t := range tables {
		res[i] = mapTableToResponse(t)
	}
	return res, nil
}

func (s *service) GetByID(ctx context.Context, companyID string, kind Kind, id string) (TaxTableResponse, error) {
	if !kind.Valid() {
		return TaxTableResponse{}, taxtableerrors.ErrInvalidKind
	}
	t, err := s.repo.FindByID(ctx, companyID, kind, id)
	if err != nil {
		return TaxTableResponse{}, mapRepositoryError(err)
	}
	return mapTableToResponse(*t), nil
}

func (s *service) Update(ctx context.Context, companyID string, kind Kind, id string, req UpdateTaxTableRequest) (TaxTableResponse, error) {
	if !kind.Valid() {
		return TaxTableResponse{}, taxtableerrors.ErrInvalidKind
	}
	t, err := s.repo.FindByID(ctx, companyID, kind, id)
	if err != nil {
		return TaxTableResponse{}, mapRepositoryError(err)
	}

	if req.Description != nil {
		t.Description = strings.TrimSpace(*req.Description)
	}
	if req.Brackets != nil {
		t.Brackets = datatypes.JSONSlice[Bracket](req.Brackets)
	}
	if req.FgtsRates != nil {
		t.FgtsRates = datatypes.JSONSlice[FgtsRate](NormalizeFgtsRates(req.FgtsRates))
	}
	if req.DependentDeduction != nil {
		t.DependentDeduction = req.DependentDeduction.Round(2)
	}
	if err := ValidateTable(kind, t.Brackets, t.FgtsRates, t.DependentDeduction); err != nil {
		return TaxTableResponse{}, err
	}

	if req.Active != nil && *req.Active && !t.Active {
		exists, err := s.repo.ActiveExists(ctx, companyID, kind, t.Year, t.Month, t.ID.String())
		if err != nil {
			return TaxTableResponse{}, mapRepositoryError(err)
		}
		if exists {
			return TaxTableResponse{}, taxtableerrors.ErrActiveTableExists
		}
	}
	if req.Active != nil {
		t.Active = *req.Active
	}

	if err := s.repo.Update(ctx, t); err != nil {
		return TaxTableResponse{}, mapRepositoryError(err)
	}
	s.invalidateActive(ctx, companyID, kind)

	contextutil.GetLogger(ctx, s.logger).Info("tax table updated",
		zap.String("tax_table_id", t.ID.String()),
		zap.String("kind", string(kind)),
		zap.Bool("active", t.Active),
	)
	return mapTableToResponse(*t), nil
}

func (s *service) Delete(ctx context.Context, companyID string, kind Kind, id string) error {
	if !kind.Valid() {
		return taxtableerrors.ErrInvalidKind
	}
	if err := s.repo.Delete(ctx, companyID, kind, id); err != nil {
		return mapRepositoryError(err)
	}
	s.invalidateActive(ctx, companyID, kind)

	contextutil.GetLogger(ctx, s.logger).Info("tax table deleted",
		zap.String("tax_table_id", id),
		zap.String("kind", string(kind)),
	)
	return nil
}

func (s *service) GetActive(ctx context.Context, companyID string, kind Kind, year, month int) (TaxTableResponse, error) {
	t, err := s.GetActiveTable(ctx, companyID, kind, year, month)
	if err != nil {
		return TaxTableResponse{}, err
	}
	if t == nil {
		return TaxTableResponse{}, taxtableerrors.ErrNoActiveTable
	}
	return mapTableToResponse(*t), nil
}

// GetActiveTable resolves the table in force for the period. A nil table
// with a nil error means the tax is not configured.
func (s *service) GetActiveTable(ctx context.Context, companyID string, kind Kind, year, month int) (*TaxTable, error) {
	if !kind.Valid() {
		return nil, taxtableerrors.ErrInvalidKind
	}
	if err := validatePeriod(year, month); err != nil {
		return nil, err
	}

	cacheKey := GetActiveTableKey(companyID, kind, year, month)
	if s.rdb != nil {
		if cached, err := s.rdb.Get(ctx, cacheKey).Result(); err == nil {
			var t TaxTable
			if json.Unmarshal([]byte(cached), &t) == nil {
				s.metrics.ObserveTaxTableLookup(string(kind), metrics.LookupHit)
				return &t, nil
			}
		}
	}

	// Shared by every caller waiting on cacheKey; detached from the first one.
	loadCtx := context.WithoutCancel(ctx)
	v, err, _ := s.sf.Do(cacheKey, func() (interface{}, error) {
		t, err := s.repo.GetActiveTable(loadCtx, companyID, kind, year, month)
		if err != nil {
			return nil, err
		}
		if t == nil {
			return (*TaxTable)(nil), nil
		}

		if s.rdb != nil {
			if data, err := json.Marshal(t); err == nil {
				if err := s.rdb.Set(loadCtx, cacheKey, data, s.cacheTTL).Err(); err != nil {
					s.logger.Warn("tax table cache write failed", zap.String("key", cacheKey), zap.Error(err))
				}
			}
		}
		return t, nil
	})
	if err != nil {
		s.metrics.ObserveTaxTableLookup(string(kind), metrics.LookupFailure)
		return nil, err
	}

	t := v.(*TaxTable)
	if t == nil {
		s.metrics.ObserveTaxTableLookup(string(kind), metrics.LookupAbsent)
		contextutil.GetLogger(ctx, s.logger).Warn("no active tax table",
			zap.String("kind", string(kind)),
			zap.Int("year", year),
			zap.Int("month", month),
		)
		return nil, nil
	}
	s.metrics.ObserveTaxTableLookup(string(kind), metrics.LookupMiss)
	return t, nil
}

func (s *service) Simulate(ctx context.Context, companyID string, kind Kind, req SimulateRequest) (SimulateResponse, error) {
	if req.Amount.IsNegative() || req.Dependents < 0 {
		return SimulateResponse{}, taxtableerrors.ErrInvalidSimulation
	}
	t, err := s.GetActiveTable(ctx, companyID, kind, req.Year, req.Month)
	if err != nil {
		return SimulateResponse{}, err
	}
	if t == nil {
		return SimulateResponse{}, taxtableerrors.ErrNoActiveTable
	}

	res := SimulateResponse{
		TableID: t.ID.String(),
		Kind:    kind,
		Year:    t.Year,
		Month:   t.Month,
	}
	switch kind {
	case KindINSS:
		inss := CalculateInss(req.Amount, t)
		res.Inss = &inss
	case KindIRRF:
		irrf := CalculateIrrf(req.Amount, req.Dependents, t)
		res.Irrf = &irrf
	case KindFGTS:
		category := NormalizeFgtsCategory(req.Category)
		if category == "" {
			category = CategoryStandard
		}
		fgts := CalculateFgts(req.Amount, category, t)
		res.Fgts = &fgts
	}
	return res, nil
}

func (s *service) invalidateActive(ctx context.Context, companyID string, kind Kind) {
	if s.rdb == nil {
		return
	}

	pattern := activeTablePattern(companyID, kind)
	var cursor uint64
	for {
		keys, next, err := s.rdb.Scan(ctx, cursor, pattern, 100).Result()
		if err != nil {
			s.logger.Error("failed to scan tax table cache", zap.String("pattern", pattern), zap.Error(err))
			return
		}
		if len(keys) > 0 {
			if err := s.rdb.Del(ctx, keys...).Err(); err != nil {
				s.logger.Error("failed to invalidate tax table cache",
					zap.String("pattern", pattern),
					zap.Error(err),
				)
				return
			}
		}
		if next == 0 {
			return
		}
		cursor = next
	}
}

func bracketsOrEmpty(in []Bracket) datatypes.JSONSlice[Bracket] {
	if in == nil {
		return datatypes.JSONSlice[Bracket]{}
	}
	return datatypes.JSONSlice[Bracket](in)
}

