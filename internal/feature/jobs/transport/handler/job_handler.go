// Package handler provides HTTP handlers for the jobs feature.
package handler

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"job_hunter/internal/api"
	"job_hunter/internal/feature/jobs/domain/entity"
	"job_hunter/internal/feature/jobs/transport/http/dto"
	"job_hunter/internal/feature/jobs/usecase"
	jwtmw "job_hunter/internal/platform/jwt"
	"job_hunter/internal/shared/ownership"
)

// JobUsecase defines the job operations the handlers depend on.
type JobUsecase interface {
	Create(ctx context.Context, userID uint, in usecase.CreateJobInput) (*entity.Job, error)
	List(ctx context.Context, userID uint) ([]*entity.Job, error)
	GetByID(ctx context.Context, id, userID uint) (*entity.Job, error)
}

// JobHandler handles HTTP requests for job records.
type JobHandler struct {
	jobs JobUsecase
}

// NewJobHandler creates a new instance of JobHandler.
func NewJobHandler(jobs JobUsecase) *JobHandler {
	return &JobHandler{jobs: jobs}
}

// Create handles POST /jobs/create for the current user.
func (h *JobHandler) Create(c *gin.Context) {
	user, ok := jwtmw.CurrentUser(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, api.ErrorResponse{Error: "authentication failed"})
		return
	}

	var req dto.CreateJobReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "invalid request"})
		return
	}
	if v := req.Validate(); len(v) > 0 {
		c.JSON(http.StatusBadRequest, api.NewValidationError(v))
		return
	}

	in := usecase.CreateJobInput{
		Title:          req.Title,
		Company:        req.Company,
		Location:       req.Location,
		Description:    req.Description,
		Requirements:   req.Requirements,
		Salary:         req.Salary,
		Type:           entity.JobType(req.Type),
		Status:         entity.JobStatus(req.Status),
		ResumeLink:     req.ResumeLink,
		JobPostingLink: req.JobPostingLink,
		Notes:          req.Notes,
	}
	if req.AppliedDate != nil {
		in.AppliedDate = &req.AppliedDate.Time
	}

	job, err := h.jobs.Create(c.Request.Context(), user.ID, in)
	if err != nil {
		slog.Error("job creation failed", "user_id", user.ID, "error", err)
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "Failed to create job"})
		return
	}

	c.JSON(http.StatusCreated, dto.JobRes{Job: job})
}

// List handles GET /jobs for the current user.
func (h *JobHandler) List(c *gin.Context) {
	user, ok := jwtmw.CurrentUser(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, api.ErrorResponse{Error: "authentication failed"})
		return
	}

	jobs, err := h.jobs.List(c.Request.Context(), user.ID)
	if err != nil {
		slog.Error("job list failed", "user_id", user.ID, "error", err)
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "Failed to get jobs"})
		return
	}

	c.JSON(http.StatusOK, dto.JobListRes{Jobs: jobs})
}

// GetByID handles GET /jobs/:id. A job owned by another user yields 403
// even when the id is correct.
func (h *JobHandler) GetByID(c *gin.Context) {
	user, ok := jwtmw.CurrentUser(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, api.ErrorResponse{Error: "authentication failed"})
		return
	}

	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "invalid job id"})
		return
	}

	job, err := h.jobs.GetByID(c.Request.Context(), uint(id), user.ID)
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrJobNotFound):
			c.JSON(http.StatusNotFound, api.ErrorResponse{Error: "Job not found"})
		case errors.Is(err, ownership.ErrAccessDenied):
			c.JSON(http.StatusForbidden, api.ErrorResponse{Error: "Access denied: You can only access your own jobs"})
		default:
			slog.Error("job fetch failed", "user_id", user.ID, "job_id", id, "error", err)
			c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "Failed to get job"})
		}
		return
	}

	c.JSON(http.StatusOK, dto.JobRes{Job: job})
}
