package employee_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/hyagosilvaxds/backend-erp-sub001/internal/employee"
	employeeerrors "github.com/hyagosilvaxds/backend-erp-sub001/internal/employee/errors"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeEmployeeService struct {
	CreateFn     func(ctx context.Context, companyID string, req employee.CreateEmployeeRequest) (employee.EmployeeResponse, error)
	GetAllFn     func(ctx context.Context, companyID string) ([]employee.EmployeeResponse, error)
	GetOptionsFn func(ctx context.Context, companyID string) ([]employee.EmployeeOptionResponse, error)
	GetByIDFn    func(ctx context.Context, companyID, id string) (employee.EmployeeResponse, error)
	UpdateFn     func(ctx context.Context, companyID, id string, req employee.UpdateEmployeeRequest) (employee.EmployeeResponse, error)
	DeleteFn     func(ctx context.Context, companyID, id string) error
}

func (f *fakeEmployeeService) Create(ctx context.Context, companyID string, req employee.CreateEmployeeRequest) (employee.EmployeeResponse, error) {
	return f.CreateFn(ctx, companyID, req)
}
func (f *fakeEmployeeService) GetAll(ctx context.Context, companyID string) ([]employee.EmployeeResponse, error) {
	return f.GetAllFn(ctx, companyID)
}
func (f *fakeEmployeeService) GetOptions(ctx context.Context, companyID string) ([]employee.EmployeeOptionResponse, error) {
	return f.GetOptionsFn(ctx, companyID)
}
func (f *fakeEmployeeService) GetByID(ctx context.Context, companyID, id string) (employee.EmployeeResponse, error) {
	return f.GetByIDFn(ctx, companyID, id)
}
func (f *fakeEmployeeService) Update(ctx context.Context, companyID, id string, req employee.UpdateEmployeeRequest) (employee.EmployeeResponse, error) {
	return f.UpdateFn(ctx, companyID, id, req)
}
func (f *fakeEmployeeService) Delete(ctx context.Context, companyID, id string) error {
	return f.DeleteFn(ctx, companyID, id)
}

type listEnvelope struct {
	Data []employee.EmployeeResponse `json:"data"`
	Meta struct {
		Total int64 `json:"total"`
	} `json:"meta"`
}

func setupRouter(companyID string) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(func(c *gin.Context) {
		c.Set("company_id", companyID)
		c.Next()
	})
	return r
}

func TestEmployeeHandler_Create(t *testing.T) {
	companyID := uuid.NewString()

	t.Run("created", func(t *testing.T) {
		svc := &fakeEmployeeService{
			CreateFn: func(_ context.Context, cid string, req employee.CreateEmployeeRequest) (employee.EmployeeResponse, error) {
				assert.Equal(t, companyID, cid)
				assert.Equal(t, "3500.5", req.Salary.String())
				return employee.EmployeeResponse{ID: "e1", FullName: req.FullName, Salary: req.Salary}, nil
			},
		}
		r := setupRouter(companyID)
		r.POST("/employees", employee.NewHandler(svc).Create)

		body := `{"full_name":"Ana","email":"ana@example.com","hire_date":"2026-01-05","salary":"3500.50"}`
		req := httptest.NewRequest(http.MethodPost, "/employees", strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusCreated, w.Code)
		assert.Contains(t, w.Body.String(), `"salary":"3500.5"`)
	})

	t.Run("invalid fgts category", func(t *testing.T) {
		r := setupRouter(companyID)
		r.POST("/employees", employee.NewHandler(&fakeEmployeeService{}).Create)

		body := `{"full_name":"Ana","email":"ana@example.com","hire_date":"2026-01-05","salary":"1","fgts_category":"PIRATE"}`
		req := httptest.NewRequest(http.MethodPost, "/employees", strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, w.Body.String(), "VALIDATION_ERROR")
	})

	t.Run("conflict", func(t *testing.T) {
		svc := &fakeEmployeeService{
			CreateFn: func(context.Context, string, employee.CreateEmployeeRequest) (employee.EmployeeResponse, error) {
				return employee.EmployeeResponse{}, employeeerrors.ErrEmployeeAlreadyExists
			},
		}
		r := setupRouter(companyID)
		r.POST("/employees", employee.NewHandler(svc).Create)

		body := `{"full_name":"Ana","email":"ana@example.com","hire_date":"2026-01-05","salary":"10"}`
		req := httptest.NewRequest(http.MethodPost, "/employees", strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusConflict, w.Code)
	})
}

func TestEmployeeHandler_GetAll_FilterSortPaginate(t *testing.T) {
	companyID := uuid.NewString()
	svc := &fakeEmployeeService{
		GetAllFn: func(context.Context, string) ([]employee.EmployeeResponse, error) {
			return []employee.EmployeeResponse{
				{ID: "1", FullName: "Carla", Email: "carla@x.com", RegistrationNumber: "MAT-000003", Status: "ACTIVE"},
				{ID: "2", FullName: "Bruno", Email: "bruno@x.com", RegistrationNumber: "MAT-000002", Status: "TERMINATED"},
				{ID: "3", FullName: "Alice", Email: "alice@x.com", RegistrationNumber: "MAT-000001", Status: "ACTIVE"},
			}, nil
		},
	}
	r := setupRouter(companyID)
	r.GET("/employees", employee.NewHandler(svc).GetAll)

	t.Run("status filter and desc sort", func(t *testing.T) {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/employees?status=active&sort_dir=desc", nil))

		require.Equal(t, http.StatusOK, w.Code)
		var env listEnvelope
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &env))
		require.Len(t, env.Data, 2)
		assert.Equal(t, "Carla", env.Data[0].FullName)
		assert.Equal(t, "Alice", env.Data[1].FullName)
	})

	t.Run("query matches registration number", func(t *testing.T) {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/employees?q=mat-000002", nil))

		var env listEnvelope
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &env))
		require.Len(t, env.Data, 1)
		assert.Equal(t, "Bruno", env.Data[0].FullName)
	})

	t.Run("pagination", func(t *testing.T) {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/employees?page=2&page_size=2", nil))

		var env listEnvelope
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &env))
		require.Len(t, env.Data, 1)
		assert.Equal(t, "Carla", env.Data[0].FullName)
		assert.Equal(t, int64(3), env.Meta.Total)
	})
}

func TestEmployeeHandler_GetByID_NotFound(t *testing.T) {
	companyID := uuid.NewString()
	svc := &fakeEmployeeService{
		GetByIDFn: func(_ context.Context, _ string, id string) (employee.EmployeeResponse, error) {
			assert.Equal(t, "missing", id)
			return employee.EmployeeResponse{}, employeeerrors.ErrEmployeeNotFound
		},
	}
	r := setupRouter(companyID)
	r.GET("/employees/:id", employee.NewHandler(svc).GetByID)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/employees/missing", nil))

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Body.String(), "NOT_FOUND")
}

func TestEmployeeHandler_GetOptions(t *testing.T) {
	companyID := uuid.NewString()
	svc := &fakeEmployeeService{
		GetOptionsFn: func(context.Context, string) ([]employee.EmployeeOptionResponse, error) {
			return []employee.EmployeeOptionResponse{{ID: "1", FullName: "Ana", RegistrationNumber: "MAT-000001"}}, nil
		},
	}
	r := setupRouter(companyID)
	r.GET("/employees/options", employee.NewHandler(svc).GetOptions)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/employees/options", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "MAT-000001")
}
