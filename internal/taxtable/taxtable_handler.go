package taxtable

import (
	"net/http"
	"strconv"

	"github.com/hyagosilvaxds/backend-erp-sub001/internal/shared/apperror"
	"github.com/hyagosilvaxds/backend-erp-sub001/internal/shared/response"
	taxtableerrors "github.com/hyagosilvaxds/backend-erp-sub001/internal/taxtable/errors"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type Handler struct {
	service Service
	logger  *zap.Logger
}

func NewHandler(service Service, logger ...*zap.Logger) *Handler {
	l := zap.L().Named("taxtable.handler")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("taxtable.handler")
	}
	return &Handler{service: service, logger: l}
}

func (h *Handler) writeServiceError(c *gin.Context, err error) {
	httpErr := apperror.ToHTTP(err)
	if httpErr.Status >= http.StatusInternalServerError {
		h.logger.Error("tax table request failed", zap.String("path", c.FullPath()), zap.Error(err))
	}
	response.Error(c, httpErr.Status, httpErr.Code, httpErr.Message, httpErr.Details)
}

func (h *Handler) kind(c *gin.Context) (Kind, bool) {
	kind, ok := ParseKind(c.Param("kind"))
	if !ok {
		h.writeServiceError(c, taxtableerrors.ErrInvalidKind)
	}
	return kind, ok
}

func (h *Handler) Create(c *gin.Context) {
	kind, ok := h.kind(c)
	if !ok {
		return
	}
	var req CreateTaxTableRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.writeServiceError(c, apperror.MapValidationError(err))
		return
	}

	res, err := h.service.Create(c.Request.Context(), c.GetString("company_id"), kind, req)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusCreated, res, nil)
}

func (h *Handler) GetAll(c *gin.Context) {
	kind, ok := h.kind(c)
	if !ok {
		return
	}

	var filter ListFilter
	if v := c.Query("year"); v != "" {
		year, err := strconv.Atoi(v)
		if err != nil {
			h.writeServiceError(c, apperror.InvalidField("year"))
			return
		}
		filter.Year = &year
	}
	if v := c.Query("active"); v != "" {
		active, err := strconv.ParseBool(v)
		if err != nil {
			h.writeServiceError(c, apperror.InvalidField("active"))
			return
		}
		filter.Active = &active
	}

	res, err := h.service.GetAll(c.Request.Context(), c.GetString("company_id"), kind, filter)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}
	page, meta := response.Paginate(c, res)
	response.Success(c, http.StatusOK, page, &meta)
}

func (h *Handler) GetByID(c *gin.Context) {
	kind, ok := h.kind(c)
	if !ok {
		return
	}
	res, err := h.service.GetByID(c.Request.Context(), c.GetString("company_id"), kind, c.Param("id"))
	if err != nil {
		h.writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, res, nil)
}

func (h *Handler) Update(c *gin.Context) {
	kind, ok := h.kind(c)
	if !ok {
		return
	}
	var req UpdateTaxTableRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.writeServiceError(c, apperror.MapValidationError(err))
		return
	}

	res, err := h.service.Update(c.Request.Context(), c.GetString("company_id"), kind, c.Param("id"), req)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, res, nil)
}

func (h *Handler) Delete(c *gin.Context) {
	kind, ok := h.kind(c)
	if !ok {
		return
	}
	if err := h.service.Delete(c.Request.Context(), c.GetString("company_id"), kind, c.Param("id")); err != nil {
		h.writeServiceError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *Handler) GetActive(c *gin.Context) {
	kind, ok := h.kind(c)
	if !ok {
		return
	}
	year, err := strconv.Atoi(c.Query("year"))
	if err != nil {
		h.writeServiceError(c, taxtableerrors.ErrInvalidPeriod)
		return
	}
	month, err := strconv.Atoi(c.Query("month"))
	if err != nil {
		h.writeServiceError(c, taxtableerrors.ErrInvalidPeriod)
		return
	}

	res, err := h.service.GetActive(c.Request.Context(), c.GetString("company_id"), kind, year, month)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, res, nil)
}

func (h *Handler) Simulate(c *gin.Context) {
	kind, ok := h.kind(c)
	if !ok {
		return
	}
	var req SimulateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.writeServiceError(c, apperror.MapValidationError(err))
		return
	}

	res, err := h.service.Simulate(c.Request.Context(), c.GetString("company_id"), kind, req)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, res, nil)
}
