package employee

import (
	"github.com/hyagosilvaxds/backend-erp-sub001/internal/middleware"

	"github.com/gin-gonic/gin"
)

// RegisterRoutes mounts /employees. The read endpoints share one bucket per
// user; each write has its own.
func RegisterRoutes(r *gin.RouterGroup, handler *Handler, rbacService middleware.RBACService) {
	canRead := middleware.RBACAuthorize(rbacService, "employee", "read")
	readLimit := middleware.RateLimitByUser(3, 10)

	employees := r.Group("/employees", middleware.AuthMiddleware())

	employees.GET("", readLimit, canRead, handler.GetAll)
	employees.GET("/options", middleware.RateLimitByUser(5, 20), canRead, handler.GetOptions)
	employees.GET("/:id", readLimit, canRead, handler.GetByID)

	employees.POST("",
		middleware.RateLimitByUser(0.1, 1),
		middleware.RBACAuthorize(rbacService, "employee", "create"),
		handler.Create,
	)
	employees.PUT("/:id",
		middleware.RateLimitByUser(0.5, 2),
		middleware.RBACAuthorize(rbacService, "employee", "update"),
		handler.Update,
	)
	employees.DELETE("/:id",
		middleware.RateLimitByUser(0.05, 1),
		middleware.RBACAuthorize(rbacService, "employee", "delete"),
		handler.Delete,
	)
}
