package costcenter_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/hyagosilvaxds/backend-erp-sub001/internal/costcenter"
	costcentererrors "github.com/hyagosilvaxds/backend-erp-sub001/internal/costcenter/errors"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeCostCenterService struct {
	CreateFn  func(ctx context.Context, companyID string, req costcenter.CreateCostCenterRequest) (costcenter.CostCenterResponse, error)
	GetAllFn  func(ctx context.Context, companyID string) ([]costcenter.CostCenterResponse, error)
	GetByIDFn func(ctx context.Context, companyID, id string) (costcenter.CostCenterResponse, error)
	UpdateFn  func(ctx context.Context, companyID, id string, req costcenter.UpdateCostCenterRequest) (costcenter.CostCenterResponse, error)
	DeleteFn  func(ctx context.Context, companyID, id string) error
}

func (f *fakeCostCenterService) Create(ctx context.Context, companyID string, req costcenter.CreateCostCenterRequest) (costcenter.CostCenterResponse, error) {
	return f.CreateFn(ctx, companyID, req)
}
func (f *fakeCostCenterService) GetAll(ctx context.Context, companyID string) ([]costcenter.CostCenterResponse, error) {
	return f.GetAllFn(ctx, companyID)
}
func (f *fakeCostCenterService) GetByID(ctx context.Context, companyID, id string) (costcenter.CostCenterResponse, error) {
	return f.GetByIDFn(ctx, companyID, id)
}
func (f *fakeCostCenterService) Update(ctx context.Context, companyID, id string, req costcenter.UpdateCostCenterRequest) (costcenter.CostCenterResponse, error) {
	return f.UpdateFn(ctx, companyID, id, req)
}
func (f *fakeCostCenterService) Delete(ctx context.Context, companyID, id string) error {
	return f.DeleteFn(ctx, companyID, id)
}

func TestCostCenterHandler_Create(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("success", func(t *testing.T) {
		svc := &fakeCostCenterService{
			CreateFn: func(ctx context.Context, cid string, req costcenter.CreateCostCenterRequest) (costcenter.CostCenterResponse, error) {
				assert.Equal(t, "company-1", cid)
				return costcenter.CostCenterResponse{ID: "cc-1", Code: req.Code, Name: req.Name}, nil
			},
		}

		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)
		c.Request = httptest.NewRequest(http.MethodPost, "/cost-centers", strings.NewReader(`{"code":"ADM","name":"Administrativo"}`))
		c.Request.Header.Set("Content-Type", "application/json")
		c.Set("company_id", "company-1")

		costcenter.NewHandler(svc).Create(c)

		assert.Equal(t, http.StatusCreated, w.Code)
	})

	t.Run("validation error", func(t *testing.T) {
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)
		c.Request = httptest.NewRequest(http.MethodPost, "/cost-centers", strings.NewReader(`{"name":"no code"}`))
		c.Request.Header.Set("Content-Type", "application/json")

		costcenter.NewHandler(&fakeCostCenterService{}).Create(c)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("conflict", func(t *testing.T) {
		svc := &fakeCostCenterService{
			CreateFn: func(ctx context.Context, cid string, req costcenter.CreateCostCenterRequest) (costcenter.CostCenterResponse, error) {
				return costcenter.CostCenterResponse{}, costcentererrors.ErrCostCenterCodeExists
			},
		}

		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)
		c.Request = httptest.NewRequest(http.MethodPost, "/cost-centers", strings.NewReader(`{"code":"ADM","name":"Adm"}`))
		c.Request.Header.Set("Content-Type", "application/json")

		costcenter.NewHandler(svc).Create(c)

		assert.Equal(t, http.StatusConflict, w.Code)
	})
}

func TestCostCenterHandler_GetAll_Paginates(t *testing.T) {
	gin.SetMode(gin.TestMode)
	svc := &fakeCostCenterService{
		GetAllFn: func(ctx context.Context, cid string) ([]costcenter.CostCenterResponse, error) {
			return []costcenter.CostCenterResponse{{ID: "1"}, {ID: "2"}, {ID: "3"}}, nil
		},
	}

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/cost-centers?page=2&page_size=2", nil)

	costcenter.NewHandler(svc).GetAll(c)

	require.Equal(t, http.StatusOK, w.Code)
	var env struct {
		Data []costcenter.CostCenterResponse `json:"data"`
		Meta struct {
			Total int `json:"total"`
			Page  int `json:"page"`
		} `json:"meta"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &env))
	assert.Len(t, env.Data, 1)
	assert.Equal(t, "3", env.Data[0].ID)
	assert.Equal(t, 3, env.Meta.Total)
	assert.Equal(t, 2, env.Meta.Page)
}

func TestCostCenterHandler_Delete(t *testing.T) {
	gin.SetMode(gin.TestMode)
	svc := &fakeCostCenterService{
		DeleteFn: func(ctx context.Context, cid, id string) error {
			assert.Equal(t, "cc-9", id)
			return nil
		},
	}

	router := gin.New()
	router.DELETE("/cost-centers/:id", costcenter.NewHandler(svc).Delete)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodDelete, "/cost-centers/cc-9", nil))

	assert.Equal(t, http.StatusNoContent, w.Code)
}
