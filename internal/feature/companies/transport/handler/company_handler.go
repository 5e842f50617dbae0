// Package handler provides Gin handlers for the companies feature.
package handler

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"job_hunter/internal/api"
	"job_hunter/internal/feature/companies/domain/entity"
	"job_hunter/internal/feature/companies/transport/http/dto"
	"job_hunter/internal/feature/companies/usecase"
)

// CompanyUsecase defines the company operations the handler depends on.
type CompanyUsecase interface {
	Create(ctx context.Context, in usecase.CompanyInput) (*entity.Company, error)
	GetByID(ctx context.Context, id uint) (*entity.Company, error)
	Update(ctx context.Context, id uint, in usecase.CompanyInput) (*entity.Company, error)
}

// CompanyHandler handles HTTP requests related to companies.
type CompanyHandler struct {
	companies CompanyUsecase
}

// NewCompanyHandler creates a new instance of CompanyHandler.
func NewCompanyHandler(companies CompanyUsecase) *CompanyHandler {
	return &CompanyHandler{companies: companies}
}

func companyInput(req dto.CompanyReq) usecase.CompanyInput {
	return usecase.CompanyInput{
		Name:        req.Name,
		Description: req.Description,
		Website:     req.Website,
		Location:    req.Location,
	}
}

// Create handles POST /companies.
func (h *CompanyHandler) Create(c *gin.Context) {
	var req dto.CompanyReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "invalid request"})
		return
	}
	if v := req.Validate(); len(v) > 0 {
		c.JSON(http.StatusBadRequest, api.NewValidationError(v))
		return
	}

	company, err := h.companies.Create(c.Request.Context(), companyInput(req))
	if err != nil {
		slog.Error("company creation failed", "error", err)
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "Failed to create company"})
		return
	}

	c.JSON(http.StatusCreated, dto.CompanyRes{Company: company})
}

// GetByID handles GET /companies/:id.
func (h *CompanyHandler) GetByID(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "invalid company id"})
		return
	}

	company, err := h.companies.GetByID(c.Request.Context(), uint(id))
	if err != nil {
		if errors.Is(err, usecase.ErrCompanyNotFound) {
			c.JSON(http.StatusNotFound, api.ErrorResponse{Error: "Company not found"})
			return
		}
		slog.Error("company lookup failed", "company_id", id, "error", err)
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "Failed to get company"})
		return
	}

	c.JSON(http.StatusOK, dto.CompanyRes{Company: company})
}

// Update handles PUT /companies/:id.
func (h *CompanyHandler) Update(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "invalid company id"})
		return
	}

	var req dto.CompanyReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "invalid request"})
		return
	}
	if v := req.Validate(); len(v) > 0 {
		c.JSON(http.StatusBadRequest, api.NewValidationError(v))
		return
	}

	company, err := h.companies.Update(c.Request.Context(), uint(id), companyInput(req))
	if err != nil {
		if errors.Is(err, usecase.ErrCompanyNotFound) {
			c.JSON(http.StatusNotFound, api.ErrorResponse{Error: "Company not found"})
			return
		}
		slog.Error("company update failed", "company_id", id, "error", err)
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "Failed to update company"})
		return
	}

	c.JSON(http.StatusOK, dto.CompanyRes{Company: company})
}
