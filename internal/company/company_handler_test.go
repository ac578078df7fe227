package company_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/hyagosilvaxds/backend-erp-sub001/internal/company"
	companyerrors "github.com/hyagosilvaxds/backend-erp-sub001/internal/company/errors"
	companyMock "github.com/hyagosilvaxds/backend-erp-sub001/internal/company/mock"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func newCompanyRouter(compID string) (*httptest.ResponseRecorder, *gin.Engine) {
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	_, r := gin.CreateTestContext(w)
	r.Use(func(c *gin.Context) {
		if compID != "" {
			c.Set("company_id", compID)
		}
		c.Next()
	})
	return w, r
}

func TestHandler_GetMe(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockService := companyMock.NewMockService(ctrl)
	handler := company.NewHandler(mockService)

	t.Run("Success", func(t *testing.T) {
		compID := "comp-123"
		mockService.EXPECT().GetByID(gomock.Any(), compID).Return(&company.CompanyResponse{ID: compID, Name: "Acme"}, nil)

		w, r := newCompanyRouter(compID)
		r.GET("/me", handler.GetMe)
		req, _ := http.NewRequest(http.MethodGet, "/me", nil)
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)

		var res map[string]interface{}
		assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &res))
		assert.Equal(t, true, res["ok"])
	})

	t.Run("Missing company", func(t *testing.T) {
		w, r := newCompanyRouter("")
		r.GET("/me", handler.GetMe)
		req, _ := http.NewRequest(http.MethodGet, "/me", nil)
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("Not found", func(t *testing.T) {
		mockService.EXPECT().GetByID(gomock.Any(), "comp-x").Return(nil, companyerrors.ErrCompanyNotFound)

		w, r := newCompanyRouter("comp-x")
		r.GET("/me", handler.GetMe)
		req, _ := http.NewRequest(http.MethodGet, "/me", nil)
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}

func TestHandler_UpdateMe(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockService := companyMock.NewMockService(ctrl)
	handler := company.NewHandler(mockService)

	compID := "comp-123"
	mockService.EXPECT().Update(gomock.Any(), compID, gomock.Any()).Return(&company.CompanyResponse{ID: compID, Name: "Updated Name"}, nil)

	w, r := newCompanyRouter(compID)
	jsonReq, _ := json.Marshal(company.UpdateCompanyRequest{Name: "Updated Name"})
	r.PUT("/me", handler.UpdateMe)
	req, _ := http.NewRequest(http.MethodPut, "/me", bytes.NewBuffer(jsonReq))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestHandler_UpsertRegistration_Validation(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	handler := company.NewHandler(companyMock.NewMockService(ctrl))

	w, r := newCompanyRouter("comp-123")
	r.PUT("/me/registrations", handler.UpsertRegistration)
	req, _ := http.NewRequest(http.MethodPut, "/me/registrations", bytes.NewBufferString(`{"type":"NPWP","number":"1"}`))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandler_DeleteRegistration(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockService := companyMock.NewMockService(ctrl)
	handler := company.NewHandler(mockService)

	mockService.EXPECT().DeleteRegistration(gomock.Any(), "comp-123", company.RegistrationTypeIM).Return(nil)

	w, r := newCompanyRouter("comp-123")
	r.DELETE("/me/registrations/:type", handler.DeleteRegistration)
	req, _ := http.NewRequest(http.MethodDelete, "/me/registrations/im", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNoContent, w.Code)
}
