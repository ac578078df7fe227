package earning

import (
	"net/http"
	"strings"

	"github.com/hyagosilvaxds/backend-erp-sub001/internal/shared/apperror"
	"github.com/hyagosilvaxds/backend-erp-sub001/internal/shared/response"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type Handler struct {
	service Service
	logger  *zap.Logger
}

func NewHandler(service Service, logger ...*zap.Logger) *Handler {
	l := zap.L().Named("earning.handler")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("earning.handler")
	}
	return &Handler{service: service, logger: l}
}

func (h *Handler) writeServiceError(c *gin.Context, err error) {
	httpErr := apperror.ToHTTP(err)
	if httpErr.Status >= http.StatusInternalServerError {
		h.logger.Error("earning request failed", zap.String("path", c.FullPath()), zap.Error(err))
	}
	response.Error(c, httpErr.Status, httpErr.Code, httpErr.Message, httpErr.Details)
}

func (h *Handler) CreateType(c *gin.Context) {
	var req CreateEarningTypeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.writeServiceError(c, apperror.MapValidationError(err))
		return
	}

	resp, err := h.service.CreateType(c.Request.Context(), c.GetString("company_id"), req)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusCreated, resp, nil)
}

func (h *Handler) GetTypes(c *gin.Context) {
	kind := Kind(strings.ToUpper(c.Query("kind")))
	resp, err := h.service.GetTypes(c.Request.Context(), c.GetString("company_id"), kind)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, resp, nil)
}

func (h *Handler) GetTypeByID(c *gin.Context) {
	resp, err := h.service.GetTypeByID(c.Request.Context(), c.GetString("company_id"), c.Param("id"))
	if err != nil {
		h.writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, resp, nil)
}

func (h *Handler) UpdateType(c *gin.Context) {
	var req UpdateEarningTypeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.writeServiceError(c, apperror.MapValidationError(err))
		return
	}

	resp, err := h.service.UpdateType(c.Request.Context(), c.GetString("company_id"), c.Param("id"), req)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, resp, nil)
}

func (h *Handler) DeleteType(c *gin.Context) {
	if err := h.service.DeleteType(c.Request.Context(), c.GetString("company_id"), c.Param("id")); err != nil {
		h.writeServiceError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// Assignment handlers are shared by employee earnings and deductions.

func (h *Handler) CreateAssignment(kind Kind) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req CreateAssignmentRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			h.writeServiceError(c, apperror.MapValidationError(err))
			return
		}

		resp, err := h.service.CreateAssignment(c.Request.Context(), kind, c.GetString("company_id"), req)
		if err != nil {
			h.writeServiceError(c, err)
			return
		}
		response.Success(c, http.StatusCreated, resp, nil)
	}
}

func (h *Handler) GetAssignments(kind Kind) gin.HandlerFunc {
	return func(c *gin.Context) {
		resp, err := h.service.GetAssignments(c.Request.Context(), kind, c.GetString("company_id"), c.Query("employee_id"))
		if err != nil {
			h.writeServiceError(c, err)
			return
		}
		page, meta := response.Paginate(c, resp)
		response.Success(c, http.StatusOK, page, &meta)
	}
}

func (h *Handler) GetAssignmentByID(kind Kind) gin.HandlerFunc {
	return func(c *gin.Context) {
		resp, err := h.service.GetAssignmentByID(c.Request.Context(), kind, c.GetString("company_id"), c.Param("id"))
		if err != nil {
			h.writeServiceError(c, err)
			return
		}
		response.Success(c, http.StatusOK, resp, nil)
	}
}

func (h *Handler) UpdateAssignment(kind Kind) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req UpdateAssignmentRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			h.writeServiceError(c, apperror.MapValidationError(err))
			return
		}

		resp, err := h.service.UpdateAssignment(c.Request.Context(), kind, c.GetString("company_id"), c.Param("id"), req)
		if err != nil {
			h.writeServiceError(c, err)
			return
		}
		response.Success(c, http.StatusOK, resp, nil)
	}
}

func (h *Handler) DeleteAssignment(kind Kind) gin.HandlerFunc {
	return func(c *gin.Context) {
		if err := h.service.DeleteAssignment(c.Request.Context(), kind, c.GetString("company_id"), c.Param("id")); err != nil {
			h.writeServiceError(c, err)
			return
		}
		c.Status(http.StatusNoContent)
	}
}
