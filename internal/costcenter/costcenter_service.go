package costcenter

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	costcentererrors "github.com/hyagosilvaxds/backend-erp-sub001/internal/costcenter/errors"
	"github.com/hyagosilvaxds/backend-erp-sub001/internal/shared/contextutil"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

const listCacheTTL = 30 * time.Minute

func GetListCacheKey(companyID string) string {
	return fmt.Sprintf("cost_centers:all:%s", companyID)
}

//go:generate mockgen -source=costcenter_service.go -destination=mock/costcenter_service_mock.go -package=mock
type Service interface {
	Create(ctx context.Context, companyID string, req CreateCostCenterRequest) (CostCenterResponse, error)
	GetAll(ctx context.Context, companyID string) ([]CostCenterResponse, error)
	GetByID(ctx context.Context, companyID, id string) (CostCenterResponse, error)
	Update(ctx context.Context, companyID, id string, req UpdateCostCenterRequest) (CostCenterResponse, error)
	Delete(ctx context.Context, companyID, id string) error
}

type service struct {
	db     *sql.DB
	repo   Repository
	rdb    *redis.Client
	logger *zap.Logger
}

func NewService(db *sql.DB, repo Repository, rdb *redis.Client, logger ...*zap.Logger) Service {
	l := zap.L().Named("costcenter.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("costcenter.service")
	}
	return &service{db: db, repo: repo, rdb: rdb, logger: l}
}

func (s *service) Create(ctx context.Context, companyID string, req CreateCostCenterRequest) (CostCenterResponse, error) {
	cid, err := uuid.Parse(companyID)
	if err != nil {
		return CostCenterResponse{}, costcentererrors.ErrInvalidCompanyID
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return CostCenterResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	cc := &CostCenter{
		ID:          uuid.New(),
		CompanyID:   cid,
		Code:        strings.ToUpper(strings.TrimSpace(req.Code)),
		Name:        strings.TrimSpace(req.Name),
		Description: req.Description,
		IsActive:    true,
	}
	if err := qtx.Create(ctx, cc); err != nil {
		return CostCenterResponse{}, mapRepositoryError(err)
	}

	if err := tx.Commit(); err != nil {
		return CostCenterResponse{}, err
	}

	s.invalidate(ctx, companyID)
	contextutil.GetLogger(ctx, s.logger).Info("cost center created",
		zap.String("company_id", companyID),
		zap.String("cost_center_id", cc.ID.String()),
		zap.String("code", cc.Code),
	)
	return mapToResponse(*cc), nil
}

func (s *service) GetAll(ctx context.Context, companyID string) ([]CostCenterResponse, error) {
	cacheKey := GetListCacheKey(companyID)

	if s.rdb != nil {
		if cached, err := s.rdb.Get(ctx, cacheKey).Result(); err == nil {
			var resp []CostCenterResponse
			if json.Unmarshal([]byte(cached), &resp) == nil {
				return resp, nil
			}
		}
	}

	centers, err := s.repo.FindAllByCompany(ctx, companyID)
	if err != nil {
		return nil, mapRepositoryError(err)
	}
	resp := mapToListResponse(centers)

	if s.rdb != nil {
		if data, err := json.Marshal(resp); err == nil {
			if err := s.rdb.Set(ctx, cacheKey, data, listCacheTTL).Err(); err != nil {
				s.logger.Warn("cost center cache write failed", zap.String("key", cacheKey), zap.Error(err))
			}
		}
	}

	return resp, nil
}

func (s *service) GetByID(ctx context.Context, companyID, id string) (CostCenterResponse, error) {
	cc, err := s.repo.FindByIDAndCompany(ctx, companyID, id)
	if err != nil {
		return CostCenterResponse{}, mapRepositoryError(err)
	}
	return mapToResponse(*cc), nil
}

func (s *service) Update(ctx context.Context, companyID, id string, req UpdateCostCenterRequest) (CostCenterResponse, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return CostCenterResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	cc, err := qtx.FindByIDAndCompany(ctx, companyID, id)
	if err != nil {
		return CostCenterResponse{}, mapRepositoryError(err)
	}

	cc.Code = strings.ToUpper(strings.TrimSpace(req.Code))
	cc.Name = strings.TrimSpace(req.Name)
	cc.Description = req.Description
	if req.IsActive != nil {
		cc.IsActive = *req.IsActive
	}

	if err := qtx.Update(ctx, cc); err != nil {
		return CostCenterResponse{}, mapRepositoryError(err)
	}

	if err := tx.Commit(); err != nil {
		return CostCenterResponse{}, err
	}

	s.invalidate(ctx, companyID)
	return mapToResponse(*cc), nil
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

	s.invalidate(ctx, companyID)
	return nil
}

func (s *service) invalidate(ctx context.Context, companyID string) {
	if s.rdb == nil {
		return
	}
	cacheKey := GetListCacheKey(companyID)
	if err := s.rdb.Del(ctx, cacheKey).Err(); err != nil {
		s.logger.Error("failed to invalidate cost center cache", zap.String("key", cacheKey), zap.Error(err))
	}
}

func mapToResponse(cc CostCenter) CostCenterResponse {
	return CostCenterResponse{
		ID:          cc.ID.String(),
		CompanyID:   cc.CompanyID.String(),
		Code:        cc.Code,
		Name:        cc.Name,
		Description: cc.Description,
		IsActive:    cc.IsActive,
	}
}

func mapToListResponse(centers []CostCenter) []CostCenterResponse {
	res := make([]CostCenterResponse, len(centers))
	for i, c := range centers {
		res[i] = mapToResponse(c)
	}
	return res
}
