package taxtable

import (
	"github.com/hyagosilvaxds/backend-erp-sub001/internal/middleware"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(
	r *gin.RouterGroup,
	handler *Handler,
	rbacService middleware.RBACService,
) {
	tables := r.Group("/tax-tables/:kind")
	tables.Use(middleware.AuthMiddleware())
	{
		tables.GET("",
			middleware.RateLimitByUser(3, 10),
			middleware.RBACAuthorize(rbacService, "tax_table", "read"),
			handler.GetAll,
		)
		tables.GET("/active",
			middleware.RateLimitByUser(3, 10),
			middleware.RBACAuthorize(rbacService, "tax_table", "read"),
			handler.GetActive,
		)
		tables.GET("/:id",
			middleware.RateLimitByUser(3, 10),
			middleware.RBACAuthorize(rbacService, "tax_table", "read"),
			handler.GetByID,
		)
		tables.POST("/simulate",
			middleware.RateLimitByUser(2, 5),
			middleware.RBACAuthorize(rbacService, "tax_table", "read"),
			handler.Simulate,
		)
		tables.POST("",
			middleware.RateLimitByUser(0.2, 2),
			middleware.RBACAuthorize(rbacService, "tax_table", "manage"),
			handler.Create,
		)
		tables.PUT("/:id",
			middleware.RateLimitByUser(0.2, 2),
			middleware.RBACAuthorize(rbacService, "tax_table", "manage"),
			handler.Update,
		)
		tables.DELETE("/:id",
			middleware.RateLimitByUser(0.05, 1),
			middleware.RBACAuthorize(rbacService, "tax_table", "manage"),
			handler.Delete,
		)
	}
}
