package employeesalary

import (
	"github.com/hyagosilvaxds/backend-erp-sub001/internal/middleware"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.RouterGroup, handler *Handler, rbacService middleware.RBACService) {
	canRead := middleware.RBACAuthorize(rbacService, "salary", "read")
	canWrite := middleware.RBACAuthorize(rbacService, "salary", "update")

	salaries := r.Group("/employee-salaries", middleware.AuthMiddleware())

	// ?employee_id= narrows the list to one employee's history.
	salaries.GET("", middleware.RateLimitByUser(1, 5), canRead, handler.GetAll)
	salaries.GET("/effective", middleware.RateLimitByUser(2, 5), canRead, handler.GetEffective)
	salaries.GET("/:id", middleware.RateLimitByUser(2, 5), canRead, handler.GetByID)

	salaries.POST("", middleware.RateLimitByUser(0.1, 1), canWrite, handler.Create)
	salaries.PUT("/:id", middleware.RateLimitByUser(0.1, 1), canWrite, handler.Update)
	salaries.DELETE("/:id", middleware.RateLimitByUser(0.05, 1), canWrite, handler.Delete)
}
