package company

import (
	"context"
	"errors"
	"strings"
	"time"

	companyerrors "github.com/hyagosilvaxds/backend-erp-sub001/internal/company/errors"
	"github.com/hyagosilvaxds/backend-erp-sub001/internal/shared/contextutil"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

//go:generate mockgen -destination=mock/company_service_mock.go -package=mock . Service
type Service interface {
	GetByID(ctx context.Context, id string) (*CompanyResponse, error)
	Update(ctx context.Context, id string, req UpdateCompanyRequest) (*CompanyResponse, error)

	UpsertRegistration(ctx context.Context, companyID string, req UpsertCompanyRegistrationRequest) error
	ListRegistrations(ctx context.Context, companyID string) ([]CompanyRegistrationResponse, error)
	DeleteRegistration(ctx context.Context, companyID string, regType RegistrationType) error
}

type service struct {
	repo   Repository
	logger *zap.Logger
}

func NewService(repo Repository, logger ...*zap.Logger) Service {
	l := zap.L().Named("company.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("company.service")
	}
	return &service{repo: repo, logger: l}
}

func (s *service) GetByID(ctx context.Context, id string) (*CompanyResponse, error) {
	uid, err := uuid.Parse(id)
	if err != nil {
		return nil, companyerrors.ErrInvalidCompanyID
	}

	comp, err := s.repo.GetByID(ctx, uid)
	if err != nil {
		return nil, mapRepositoryError(err)
	}

	return mapToResponse(comp), nil
}

func (s *service) Update(ctx context.Context, id string, req UpdateCompanyRequest) (*CompanyResponse, error) {
	uid, err := uuid.Parse(id)
	if err != nil {
		return nil, companyerrors.ErrInvalidCompanyID
	}

	comp, err := s.repo.GetByID(ctx, uid)
	if err != nil {
		return nil, mapRepositoryError(err)
	}

	if name := strings.TrimSpace(req.Name); name != "" {
		comp.Name = name
	}
	if tradeName := strings.TrimSpace(req.TradeName); tradeName != "" {
		comp.TradeName = tradeName
	}
	if req.Email != "" {
		comp.Email = strings.ToLower(strings.TrimSpace(req.Email))
	}
	if req.IsActive != nil {
		comp.IsActive = *req.IsActive
	}
	comp.UpdatedAt = time.Now().UTC()

	if err := s.repo.Update(ctx, comp); err != nil {
		return nil, err
	}

	contextutil.GetLogger(ctx, s.logger).Info("company updated", zap.String("company_id", id))
	return mapToResponse(comp), nil
}

func (s *service) UpsertRegistration(ctx context.Context, companyID string, req UpsertCompanyRegistrationRequest) error {
	id, err := uuid.Parse(companyID)
	if err != nil {
		return companyerrors.ErrInvalidCompanyID
	}
	if !req.Type.Valid() {
		return companyerrors.ErrInvalidRegistrationType
	}

	number := strings.TrimSpace(req.Number)
	if number == "" {
		return companyerrors.ErrMissingRequiredFields
	}
	if req.Type == RegistrationTypeCNPJ {
		if !ValidCNPJ(number) {
			return companyerrors.ErrInvalidCnpj
		}
		number = onlyDigits(number)
	}

	now := time.Now().UTC()
	return s.repo.UpsertRegistration(ctx, &CompanyRegistration{
		CompanyID: id,
		Type:      req.Type,
		Number:    number,
		IssuedAt:  req.IssuedAt,
		CreatedAt: now,
		UpdatedAt: now,
	})
}

func (s *service) ListRegistrations(ctx context.Context, companyID string) ([]CompanyRegistrationResponse, error) {
	id, err := uuid.Parse(companyID)
	if err != nil {
		return nil, companyerrors.ErrInvalidCompanyID
	}

	regs, err := s.repo.GetRegistrationsByCompanyID(ctx, id)
	if err != nil {
		return nil, err
	}

	result := make([]CompanyRegistrationResponse, 0, len(regs))
	for _, r := range regs {
		result = append(result, CompanyRegistrationResponse{
			ID:        r.ID.String(),
			Type:      r.Type,
			Number:    r.Number,
			IssuedAt:  r.IssuedAt,
			CreatedAt: r.CreatedAt,
			UpdatedAt: r.UpdatedAt,
		})
	}

	return result, nil
}

func (s *service) DeleteRegistration(ctx context.Context, companyID string, regType RegistrationType) error {
	id, err := uuid.Parse(companyID)
	if err != nil {
		return companyerrors.ErrInvalidCompanyID
	}
	if !regType.Valid() {
		return companyerrors.ErrInvalidRegistrationType
	}

	if err := s.repo.DeleteRegistration(ctx, id, regType); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return companyerrors.ErrRegistrationNotFound
		}
		return err
	}
	return nil
}

func mapRepositoryError(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return companyerrors.ErrCompanyNotFound
	}
	return err
}

func mapToResponse(c *Company) *CompanyResponse {
	resp := &CompanyResponse{
		ID:        c.ID.String(),
		Name:      c.Name,
		TradeName: c.TradeName,
		Email:     c.Email,
		IsActive:  c.IsActive,
	}
	for _, reg := range c.Registrations {
		if reg.Type == RegistrationTypeCNPJ {
			resp.Cnpj = reg.Number
		}
	}
	return resp
}
