package taxtable_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/hyagosilvaxds/backend-erp-sub001/internal/taxtable"
	taxtableerrors "github.com/hyagosilvaxds/backend-erp-sub001/internal/taxtable/errors"
	taxtableMock "github.com/hyagosilvaxds/backend-erp-sub001/internal/taxtable/mock"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type envelope struct {
	Ok    bool            `json:"ok"`
	Data  json.RawMessage `json:"data"`
	Error *struct {
		Code string `json:"code"`
	} `json:"error"`
}

func newRouter(svc taxtable.Service) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(func(c *gin.Context) {
		c.Set("company_id", "company-1")
		c.Next()
	})

	h := taxtable.NewHandler(svc)
	g := r.Group("/tax-tables/:kind")
	g.GET("", h.GetAll)
	g.GET("/active", h.GetActive)
	g.GET("/:id", h.GetByID)
	g.POST("", h.Create)
	g.POST("/simulate", h.Simulate)
	g.DELETE("/:id", h.Delete)
	return r
}

func serve(r *gin.Engine, method, path, body string) (*httptest.ResponseRecorder, envelope) {
	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, path, nil)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	var env envelope
	_ = json.Unmarshal(w.Body.Bytes(), &env)
	return w, env
}

func TestHandler_Create(t *testing.T) {
	t.Run("kind comes from the path", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		svc := taxtableMock.NewMockService(ctrl)
		svc.EXPECT().
			Create(gomock.Any(), "company-1", taxtable.KindIRRF, gomock.Any()).
			DoAndReturn(func(_ context.Context, _ string, _ taxtable.Kind, req taxtable.CreateTaxTableRequest) (taxtable.TaxTableResponse, error) {
				assert.Equal(t, 2024, req.Year)
				require.Len(t, req.Brackets, 1)
				assert.Nil(t, req.Brackets[0].MaxValue)
				assert.Equal(t, "189.59", req.DependentDeduction.StringFixed(2))
				return taxtable.TaxTableResponse{ID: "t-1", Kind: taxtable.KindIRRF}, nil
			})

		w, env := serve(newRouter(svc), http.MethodPost, "/tax-tables/irrf",
			`{"year":2024,"month":1,"dependentDeduction":"189.59","brackets":[{"minValue":"0","maxValue":null,"rate":"27.5","deduction":"896"}]}`)

		assert.Equal(t, http.StatusCreated, w.Code)
		assert.True(t, env.Ok)
	})

	t.Run("unknown kind", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		w, env := serve(newRouter(taxtableMock.NewMockService(ctrl)), http.MethodPost, "/tax-tables/iss", `{"year":2024,"month":1}`)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Equal(t, taxtableerrors.ErrInvalidKind.Code, env.Error.Code)
	})

	t.Run("validation error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		w, env := serve(newRouter(taxtableMock.NewMockService(ctrl)), http.MethodPost, "/tax-tables/inss", `{"year":2024,"month":14}`)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Equal(t, "VALIDATION_ERROR", env.Error.Code)
	})

	t.Run("conflict", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		svc := taxtableMock.NewMockService(ctrl)
		svc.EXPECT().
			Create(gomock.Any(), "company-1", taxtable.KindINSS, gomock.Any()).
			Return(taxtable.TaxTableResponse{}, taxtableerrors.ErrActiveTableExists)

		w, env := serve(newRouter(svc), http.MethodPost, "/tax-tables/inss", `{"year":2024,"month":1}`)

		assert.Equal(t, http.StatusConflict, w.Code)
		assert.Equal(t, "CONFLICT", env.Error.Code)
	})
}

func TestHandler_GetActive(t *testing.T) {
	t.Run("found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		svc := taxtableMock.NewMockService(ctrl)
		svc.EXPECT().
			GetActive(gomock.Any(), "company-1", taxtable.KindFGTS, 2024, 3).
			Return(taxtable.TaxTableResponse{ID: "t-9", Kind: taxtable.KindFGTS, Year: 2024, Month: 1}, nil)

		w, env := serve(newRouter(svc), http.MethodGet, "/tax-tables/fgts/active?year=2024&month=3", "")

		require.Equal(t, http.StatusOK, w.Code)
		var res taxtable.TaxTableResponse
		require.NoError(t, json.Unmarshal(env.Data, &res))
		assert.Equal(t, "t-9", res.ID)
	})

	t.Run("missing period", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		w, env := serve(newRouter(taxtableMock.NewMockService(ctrl)), http.MethodGet, "/tax-tables/fgts/active?year=2024", "")

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Equal(t, taxtableerrors.ErrInvalidPeriod.Code, env.Error.Code)
	})

	t.Run("none configured", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		svc := taxtableMock.NewMockService(ctrl)
		svc.EXPECT().
			GetActive(gomock.Any(), "company-1", taxtable.KindINSS, 2024, 3).
			Return(taxtable.TaxTableResponse{}, taxtableerrors.ErrNoActiveTable)

		w, _ := serve(newRouter(svc), http.MethodGet, "/tax-tables/inss/active?year=2024&month=3", "")

		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}

func TestHandler_GetAll(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc := taxtableMock.NewMockService(ctrl)
	svc.EXPECT().
		GetAll(gomock.Any(), "company-1", taxtable.KindINSS, gomock.Any()).
		DoAndReturn(func(_ context.Context, _ string, _ taxtable.Kind, filter taxtable.ListFilter) ([]taxtable.TaxTableResponse, error) {
			require.NotNil(t, filter.Year)
			require.NotNil(t, filter.Active)
			assert.Equal(t, 2024, *filter.Year)
			assert.True(t, *filter.Active)
			return []taxtable.TaxTableResponse{{ID: "a"}, {ID: "b"}, {ID: "c"}}, nil
		})

	w, env := serve(newRouter(svc), http.MethodGet, "/tax-tables/inss?year=2024&active=true&page=2&page_size=2", "")

	require.Equal(t, http.StatusOK, w.Code)
	var res []taxtable.TaxTableResponse
	require.NoError(t, json.Unmarshal(env.Data, &res))
	require.Len(t, res, 1)
	assert.Equal(t, "c", res[0].ID)
}

func TestHandler_SimulateAndDelete(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc := taxtableMock.NewMockService(ctrl)
	svc.EXPECT().
		Simulate(gomock.Any(), "company-1", taxtable.KindINSS, gomock.Any()).
		DoAndReturn(func(_ context.Context, _ string, kind taxtable.Kind, req taxtable.SimulateRequest) (taxtable.SimulateResponse, error) {
			inss := taxtable.CalculateInss(req.Amount, &taxtable.TaxTable{Brackets: inssBrackets()})
			return taxtable.SimulateResponse{Kind: kind, Inss: &inss}, nil
		})
	svc.EXPECT().Delete(gomock.Any(), "company-1", taxtable.KindINSS, "t-1").Return(nil)

	r := newRouter(svc)

	w, env := serve(r, http.MethodPost, "/tax-tables/inss/simulate", `{"year":2024,"month":1,"amount":"2000"}`)
	require.Equal(t, http.StatusOK, w.Code)
	var res taxtable.SimulateResponse
	require.NoError(t, json.Unmarshal(env.Data, &res))
	require.NotNil(t, res.Inss)
	assert.Equal(t, "158.82", res.Inss.EmployeeContribution.StringFixed(2))

	w, _ = serve(r, http.MethodDelete, "/tax-tables/inss/t-1", "")
	assert.Equal(t, http.StatusNoContent, w.Code)
}
