package company_test

import (
	"context"
	"errors"
	"testing"

	"github.com/hyagosilvaxds/backend-erp-sub001/internal/company"
	companyerrors "github.com/hyagosilvaxds/backend-erp-sub001/internal/company/errors"
	companyMock "github.com/hyagosilvaxds/backend-erp-sub001/internal/company/mock"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
	"gorm.io/gorm"
)

func TestService_GetByID(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := companyMock.NewMockRepository(ctrl)
	service := company.NewService(mockRepo)
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		id := uuid.New()
		mockComp := &company.Company{
			ID:       id,
			Name:     "Acme Indústria Ltda",
			Email:    "rh@acme.com.br",
			IsActive: true,
			Registrations: []company.CompanyRegistration{
				{Type: company.RegistrationTypeCNPJ, Number: "11222333000181"},
			},
		}

		mockRepo.EXPECT().GetByID(ctx, id).Return(mockComp, nil)

		resp, err := service.GetByID(ctx, id.String())

		assert.NoError(t, err)
		assert.Equal(t, mockComp.Name, resp.Name)
		assert.Equal(t, "11222333000181", resp.Cnpj)
	})

	t.Run("Not Found", func(t *testing.T) {
		id := uuid.New()
		mockRepo.EXPECT().GetByID(ctx, id).Return(nil, gorm.ErrRecordNotFound)

		_, err := service.GetByID(ctx, id.String())
		assert.ErrorIs(t, err, companyerrors.ErrCompanyNotFound)
	})

	t.Run("Invalid ID", func(t *testing.T) {
		_, err := service.GetByID(ctx, "not-a-uuid")
		assert.ErrorIs(t, err, companyerrors.ErrInvalidCompanyID)
	})
}

func TestService_Update(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := companyMock.NewMockRepository(ctrl)
	service := company.NewService(mockRepo)
	ctx := context.Background()

	t.Run("Success Update Name", func(t *testing.T) {
		id := uuid.New()
		mockComp := &company.Company{ID: id, Name: "Old Name", IsActive: true}

		mockRepo.EXPECT().GetByID(ctx, id).Return(mockComp, nil)
		mockRepo.EXPECT().Update(ctx, gomock.Any()).DoAndReturn(func(ctx context.Context, c *company.Company) error {
			assert.Equal(t, "New Name", c.Name)
			assert.Equal(t, "Acme", c.TradeName)
			return nil
		})

		resp, err := service.Update(ctx, id.String(), company.UpdateCompanyRequest{
			Name:      "New Name",
			TradeName: " Acme ",
		})

		assert.NoError(t, err)
		assert.Equal(t, "New Name", resp.Name)
	})

	t.Run("Repository error", func(t *testing.T) {
		id := uuid.New()
		mockRepo.EXPECT().GetByID(ctx, id).Return(&company.Company{ID: id}, nil)
		mockRepo.EXPECT().Update(ctx, gomock.Any()).Return(errors.New("db down"))

		_, err := service.Update(ctx, id.String(), company.UpdateCompanyRequest{Name: "x"})
		assert.Error(t, err)
	})
}

func TestService_UpsertRegistration(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := companyMock.NewMockRepository(ctrl)
	service := company.NewService(mockRepo)
	ctx := context.Background()
	companyID := uuid.New()

	t.Run("CNPJ is normalized", func(t *testing.T) {
		mockRepo.EXPECT().UpsertRegistration(ctx, gomock.Any()).DoAndReturn(func(ctx context.Context, reg *company.CompanyRegistration) error {
			assert.Equal(t, companyID, reg.CompanyID)
			assert.Equal(t, "11222333000181", reg.Number)
			return nil
		})

		err := service.UpsertRegistration(ctx, companyID.String(), company.UpsertCompanyRegistrationRequest{
			Type:   company.RegistrationTypeCNPJ,
			Number: "11.222.333/0001-81",
		})
		assert.NoError(t, err)
	})

	t.Run("Invalid CNPJ", func(t *testing.T) {
		err := service.UpsertRegistration(ctx, companyID.String(), company.UpsertCompanyRegistrationRequest{
			Type:   company.RegistrationTypeCNPJ,
			Number: "11.222.333/0001-82",
		})
		assert.ErrorIs(t, err, companyerrors.ErrInvalidCnpj)
	})

	t.Run("Invalid type", func(t *testing.T) {
		err := service.UpsertRegistration(ctx, companyID.String(), company.UpsertCompanyRegistrationRequest{
			Type:   "NPWP",
			Number: "123",
		})
		assert.ErrorIs(t, err, companyerrors.ErrInvalidRegistrationType)
	})
}

func TestService_DeleteRegistration(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := companyMock.NewMockRepository(ctrl)
	service := company.NewService(mockRepo)
	ctx := context.Background()
	companyID := uuid.New()

	mockRepo.EXPECT().DeleteRegistration(ctx, companyID, company.RegistrationTypeIE).Return(gorm.ErrRecordNotFound)

	err := service.DeleteRegistration(ctx, companyID.String(), company.RegistrationTypeIE)
	assert.ErrorIs(t, err, companyerrors.ErrRegistrationNotFound)
}

func TestValidCNPJ(t *testing.T) {
	tests := []struct {
		in   string
		want bool
	}{
		{"11.222.333/0001-81", true},
		{"11222333000181", true},
		{"11222333000182", false},
		{"00000000000000", false},
		{"1122233300018", false},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, company.ValidCNPJ(tt.in), tt.in)
	}
}
