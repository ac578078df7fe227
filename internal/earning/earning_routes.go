package earning

import (
	"github.com/hyagosilvaxds/backend-erp-sub001/internal/middleware"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(
	r *gin.RouterGroup,
	handler *Handler,
	rbacService middleware.RBACService,
) {
	types := r.Group("/earning-types")
	types.Use(middleware.AuthMiddleware())
	{
		types.GET("",
			middleware.RateLimitByUser(3, 10),
			middleware.RBACAuthorize(rbacService, "earning", "read"),
			handler.GetTypes,
		)
		types.GET("/:id",
			middleware.RateLimitByUser(3, 10),
			middleware.RBACAuthorize(rbacService, "earning", "read"),
			handler.GetTypeByID,
		)
		types.POST("",
			middleware.RateLimitByUser(0.2, 2),
			middleware.RBACAuthorize(rbacService, "earning", "manage"),
			handler.CreateType,
		)
		types.PUT("/:id",
			middleware.RateLimitByUser(0.2, 2),
			middleware.RBACAuthorize(rbacService, "earning", "manage"),
			handler.UpdateType,
		)
		types.DELETE("/:id",
			middleware.RateLimitByUser(0.05, 1),
			middleware.RBACAuthorize(rbacService, "earning", "manage"),
			handler.DeleteType,
		)
	}

	registerAssignmentRoutes(r.Group("/employee-earnings"), handler, rbacService, KindEarning)
	registerAssignmentRoutes(r.Group("/employee-deductions"), handler, rbacService, KindDeduction)
}

func registerAssignmentRoutes(g *gin.RouterGroup, handler *Handler, rbacService middleware.RBACService, kind Kind) {
	g.Use(middleware.AuthMiddleware())
	{
		g.GET("",
			middleware.RateLimitByUser(3, 10),
			middleware.RBACAuthorize(rbacService, "earning", "read"),
			handler.GetAssignments(kind),
		)
		g.GET("/:id",
			middleware.RateLimitByUser(3, 10),
			middleware.RBACAuthorize(rbacService, "earning", "read"),
			handler.GetAssignmentByID(kind),
		)
		g.POST("",
			middleware.RateLimitByUser(0.5, 3),
			middleware.RBACAuthorize(rbacService, "earning", "assign"),
			handler.CreateAssignment(kind),
		)
		g.PUT("/:id",
			middleware.RateLimitByUser(0.5, 3),
			middleware.RBACAuthorize(rbacService, "earning", "assign"),
			handler.UpdateAssignment(kind),
		)
		g.DELETE("/:id",
			middleware.RateLimitByUser(0.1, 1),
			middleware.RBACAuthorize(rbacService, "earning", "assign"),
			handler.DeleteAssignment(kind),
		)
	}
}
