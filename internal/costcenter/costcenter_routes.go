package costcenter

import (
	"github.com/hyagosilvaxds/backend-erp-sub001/internal/middleware"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.RouterGroup, h *Handler, rbacService middleware.RBACService) {
	centers := r.Group("/cost-centers")
	centers.Use(middleware.AuthMiddleware())
	{
		centers.GET("", middleware.RBACAuthorize(rbacService, "cost_center", "read"), h.GetAll)
		centers.POST("", middleware.RBACAuthorize(rbacService, "cost_center", "create"), h.Create)
		centers.GET("/:id", middleware.RBACAuthorize(rbacService, "cost_center", "read"), h.GetByID)
		centers.PUT("/:id", middleware.RBACAuthorize(rbacService, "cost_center", "update"), h.Update)
		centers.DELETE("/:id", middleware.RBACAuthorize(rbacService, "cost_center", "delete"), h.Delete)
	}
}
