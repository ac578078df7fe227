package payroll

import (
	"github.com/hyagosilvaxds/backend-erp-sub001/internal/middleware"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
)

func RegisterRoutes(
	r *gin.RouterGroup,
	handler *Handler,
	rbacService middleware.RBACService,
	rdb *redis.Client,
) {
	create := []gin.HandlerFunc{
		middleware.RateLimitByUser(0.2, 2),
		middleware.RBACAuthorize(rbacService, "payroll", "create"),
	}
	if rdb != nil {
		create = append(create, middleware.Idempotency(rdb))
	}

	payrolls := r.Group("/payrolls")
	payrolls.Use(middleware.AuthMiddleware())
	{
		payrolls.GET("",
			middleware.RateLimitByUser(3, 10),
			middleware.RBACAuthorize(rbacService, "payroll", "read"),
			handler.GetAll,
		)
		payrolls.GET("/:id",
			middleware.RateLimitByUser(3, 10),
			middleware.RBACAuthorize(rbacService, "payroll", "read"),
			handler.GetByID,
		)
		payrolls.GET("/:id/items",
			middleware.RateLimitByUser(3, 10),
			middleware.RBACAuthorize(rbacService, "payroll", "read"),
			handler.GetItems,
		)
		payrolls.GET("/:id/breakdown",
			middleware.RateLimitByUser(3, 10),
			middleware.RBACAuthorize(rbacService, "payroll", "read"),
			handler.GetBreakdown,
		)
		payrolls.POST("", append(create, handler.Create)...)
		payrolls.PUT("/:id",
			middleware.RateLimitByUser(0.5, 3),
			middleware.RBACAuthorize(rbacService, "payroll", "create"),
			handler.Update,
		)
		payrolls.DELETE("/:id",
			middleware.RateLimitByUser(0.05, 1),
			middleware.RBACAuthorize(rbacService, "payroll", "delete"),
			handler.Delete,
		)
		payrolls.PUT("/:id/items/:employee_id",
			middleware.RateLimitByUser(1, 5),
			middleware.RBACAuthorize(rbacService, "payroll", "create"),
			handler.UpsertItem,
		)
		payrolls.DELETE("/:id/items/:employee_id",
			middleware.RateLimitByUser(0.5, 3),
			middleware.RBACAuthorize(rbacService, "payroll", "create"),
			handler.RemoveItem,
		)
		payrolls.POST("/:id/calculate",
			middleware.RateLimitByUser(0.1, 2),
			middleware.RBACAuthorize(rbacService, "payroll", "calculate"),
			handler.Calculate,
		)
		payrolls.POST("/:id/approve",
			middleware.RateLimitByUser(0.2, 2),
			middleware.RBACAuthorize(rbacService, "payroll", "approve"),
			handler.Approve,
		)
		payrolls.POST("/:id/pay",
			middleware.RateLimitByUser(0.2, 2),
			middleware.RBACAuthorize(rbacService, "payroll", "pay"),
			handler.Pay,
		)
	}
}
