package handler

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"job_hunter/internal/api"
	"job_hunter/internal/feature/actions/domain/entity"
	"job_hunter/internal/feature/actions/transport/http/dto"
	"job_hunter/internal/feature/actions/usecase"
)

// TemplateUsecase defines the catalog operations the handlers depend on.
type TemplateUsecase interface {
	Create(ctx context.Context, in usecase.TemplateInput) (*entity.ActionTemplate, error)
	List(ctx context.Context) ([]*entity.ActionTemplate, error)
	Update(ctx context.Context, id uint, in usecase.TemplateInput) (*entity.ActionTemplate, error)
	Delete(ctx context.Context, id uint) error
}

// TemplateHandler handles HTTP requests for the action template catalog.
type TemplateHandler struct {
	templates TemplateUsecase
}

// NewTemplateHandler creates a new instance of TemplateHandler.
func NewTemplateHandler(templates TemplateUsecase) *TemplateHandler {
	return &TemplateHandler{templates: templates}
}

func templateInput(req dto.TemplateReq) usecase.TemplateInput {
	return usecase.TemplateInput{
		Name:        req.Name,
		Description: req.Description,
		Category:    entity.Category(req.Category),
		IsDefault:   req.IsDefault,
		Color:       req.Color,
		Icon:        req.Icon,
		Order:       req.Order,
	}
}

// Create handles POST /actions/templates.
func (h *TemplateHandler) Create(c *gin.Context) {
	var req dto.TemplateReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "invalid request"})
		return
	}
	if v := req.Validate(); len(v) > 0 {
		c.JSON(http.StatusBadRequest, api.NewValidationError(v))
		return
	}

	tpl, err := h.templates.Create(c.Request.Context(), templateInput(req))
	if err != nil {
		if errors.Is(err, usecase.ErrTemplateNameTaken) {
			c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "Template name already exists"})
			return
		}
		slog.Error("template creation failed", "error", err)
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "Failed to create template"})
		return
	}

	c.JSON(http.StatusCreated, dto.TemplateRes{Template: tpl})
}

// List handles GET /actions/templates. The catalog is shared, so this
// endpoint is public.
func (h *TemplateHandler) List(c *gin.Context) {
	tpls, err := h.templates.List(c.Request.Context())
	if err != nil {
		slog.Error("template list failed", "error", err)
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "Failed to get templates"})
		return
	}
	c.JSON(http.StatusOK, dto.TemplateListRes{Templates: tpls})
}

// Update handles PUT /actions/templates/:id.
func (h *TemplateHandler) Update(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "invalid template id"})
		return
	}

	var req dto.TemplateReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "invalid request"})
		return
	}
	if v := req.Validate(); len(v) > 0 {
		c.JSON(http.StatusBadRequest, api.NewValidationError(v))
		return
	}

	tpl, err := h.templates.Update(c.Request.Context(), uint(id), templateInput(req))
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrTemplateNotFound):
			c.JSON(http.StatusNotFound, api.ErrorResponse{Error: "Action template not found"})
		case errors.Is(err, usecase.ErrTemplateNameTaken):
			c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "Template name already exists"})
		default:
			slog.Error("template update failed", "template_id", id, "error", err)
			c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "Failed to update template"})
		}
		return
	}

	c.JSON(http.StatusOK, dto.TemplateRes{Template: tpl})
}

// Delete handles DELETE /actions/templates/:id.
func (h *TemplateHandler) Delete(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "invalid template id"})
		return
	}

	if err := h.templates.Delete(c.Request.Context(), uint(id)); err != nil {
		if errors.Is(err, usecase.ErrTemplateNotFound) {
			c.JSON(http.StatusNotFound, api.ErrorResponse{Error: "Action template not found"})
			return
		}
		slog.Error("template delete failed", "template_id", id, "error", err)
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "Failed to delete template"})
		return
	}

	c.JSON(http.StatusOK, api.MessageResponse{Message: "Action template deleted successfully"})
}
