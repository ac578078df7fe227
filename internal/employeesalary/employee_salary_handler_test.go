package employeesalary_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/hyagosilvaxds/backend-erp-sub001/internal/employeesalary"
	employeesalaryerrors "github.com/hyagosilvaxds/backend-erp-sub001/internal/employeesalary/errors"
	employeesalaryMock "github.com/hyagosilvaxds/backend-erp-sub001/internal/employeesalary/mock"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func newTestContext(method, target, body, companyID string) (*gin.Context, *httptest.ResponseRecorder) {
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)

	req := httptest.NewRequest(method, target, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	c.Request = req
	c.Set("company_id", companyID)
	return c, w
}

func TestEmployeeSalaryHandler_Create(t *testing.T) {
	companyID := uuid.NewString()
	employeeID := uuid.NewString()

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		svc := employeesalaryMock.NewMockService(ctrl)
		svc.EXPECT().
			Create(gomock.Any(), companyID, gomock.Any()).
			DoAndReturn(func(_ context.Context, _ string, req employeesalary.CreateEmployeeSalaryRequest) (employeesalary.EmployeeSalaryResponse, error) {
				assert.True(t, req.BaseSalary.Equal(decimal.RequireFromString("3500.75")))
				return employeesalary.EmployeeSalaryResponse{
					ID:            uuid.NewString(),
					EmployeeID:    req.EmployeeID,
					BaseSalary:    req.BaseSalary,
					EffectiveDate: req.EffectiveDate,
				}, nil
			})

		body := `{"employee_id":"` + employeeID + `","base_salary":"3500.75","effective_date":"2026-02-01"}`
		c, w := newTestContext(http.MethodPost, "/employee-salaries", body, companyID)

		employeesalary.NewHandler(svc).Create(c)

		assert.Equal(t, http.StatusCreated, w.Code)
		assert.Contains(t, w.Body.String(), employeeID)
	})

	t.Run("validation error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		svc := employeesalaryMock.NewMockService(ctrl)

		c, w := newTestContext(http.MethodPost, "/employee-salaries", `{"base_salary":"10"}`, companyID)

		employeesalary.NewHandler(svc).Create(c)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("conflict", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		svc := employeesalaryMock.NewMockService(ctrl)
		svc.EXPECT().
			Create(gomock.Any(), companyID, gomock.Any()).
			Return(employeesalary.EmployeeSalaryResponse{}, employeesalaryerrors.ErrSalaryEffectiveDateAlreadyExists)

		body := `{"employee_id":"` + employeeID + `","base_salary":"3500","effective_date":"2026-02-01"}`
		c, w := newTestContext(http.MethodPost, "/employee-salaries", body, companyID)

		employeesalary.NewHandler(svc).Create(c)

		assert.Equal(t, http.StatusConflict, w.Code)
	})
}

func TestEmployeeSalaryHandler_GetAll(t *testing.T) {
	companyID := uuid.NewString()

	t.Run("history filter", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		svc := employeesalaryMock.NewMockService(ctrl)
		svc.EXPECT().
			GetHistory(gomock.Any(), companyID, "emp-1").
			Return([]employeesalary.EmployeeSalaryResponse{{ID: "s1"}, {ID: "s2"}}, nil)

		c, w := newTestContext(http.MethodGet, "/employee-salaries?employee_id=emp-1", "", companyID)

		employeesalary.NewHandler(svc).GetAll(c)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), `"s2"`)
	})

	t.Run("all", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		svc := employeesalaryMock.NewMockService(ctrl)
		svc.EXPECT().GetAll(gomock.Any(), companyID).Return([]employeesalary.EmployeeSalaryResponse{}, nil)

		c, w := newTestContext(http.MethodGet, "/employee-salaries", "", companyID)

		employeesalary.NewHandler(svc).GetAll(c)

		assert.Equal(t, http.StatusOK, w.Code)
	})
}

func TestEmployeeSalaryHandler_GetEffective(t *testing.T) {
	companyID := uuid.NewString()
	ctrl := gomock.NewController(t)
	svc := employeesalaryMock.NewMockService(ctrl)
	svc.EXPECT().
		GetEffective(gomock.Any(), companyID, "emp-1", "2026-02-15").
		Return(employeesalary.EmployeeSalaryResponse{ID: "s1", EffectiveDate: "2026-01-01"}, nil)

	c, w := newTestContext(http.MethodGet, "/employee-salaries/effective?employee_id=emp-1&as_of=2026-02-15", "", companyID)

	employeesalary.NewHandler(svc).GetEffective(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"2026-01-01"`)
}

func TestEmployeeSalaryHandler_Delete(t *testing.T) {
	companyID := uuid.NewString()

	t.Run("no content", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		svc := employeesalaryMock.NewMockService(ctrl)
		svc.EXPECT().Delete(gomock.Any(), companyID, "s1").Return(nil)

		c, _ := newTestContext(http.MethodDelete, "/employee-salaries/s1", "", companyID)
		c.Params = gin.Params{{Key: "id", Value: "s1"}}

		employeesalary.NewHandler(svc).Delete(c)

		assert.Equal(t, http.StatusNoContent, c.Writer.Status())
	})

	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		svc := employeesalaryMock.NewMockService(ctrl)
		svc.EXPECT().Delete(gomock.Any(), companyID, "s1").Return(employeesalaryerrors.ErrSalaryNotFound)

		c, w := newTestContext(http.MethodDelete, "/employee-salaries/s1", "", companyID)
		c.Params = gin.Params{{Key: "id", Value: "s1"}}

		employeesalary.NewHandler(svc).Delete(c)

		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}
