// Package handler provides HTTP handlers for the actions feature.
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
	jobentity "job_hunter/internal/feature/jobs/domain/entity"
	jobusecase "job_hunter/internal/feature/jobs/usecase"
	jwtmw "job_hunter/internal/platform/jwt"
	"job_hunter/internal/shared/ownership"
)

// ActionUsecase defines the action operations the handlers depend on.
type ActionUsecase interface {
	Create(ctx context.Context, userID uint, in usecase.CreateActionInput) (*entity.Action, error)
	ListByJob(ctx context.Context, jobID, userID uint) ([]*entity.Action, error)
	ListByUser(ctx context.Context, userID uint) ([]*entity.Action, error)
	Update(ctx context.Context, id, userID uint, in usecase.UpdateActionInput) (*entity.Action, error)
	Delete(ctx context.Context, id, userID uint) error
}

// JobGetter loads a job with the ownership check applied, so an action can
// only be attached to a job the requester owns.
type JobGetter interface {
	GetByID(ctx context.Context, id, userID uint) (*jobentity.Job, error)
}

// ActionHandler handles HTTP requests for action instances.
type ActionHandler struct {
	actions ActionUsecase
	jobs    JobGetter
}

// NewActionHandler creates a new instance of ActionHandler.
func NewActionHandler(actions ActionUsecase, jobs JobGetter) *ActionHandler {
	return &ActionHandler{actions: actions, jobs: jobs}
}

// Create handles POST /actions.
func (h *ActionHandler) Create(c *gin.Context) {
	user, ok := jwtmw.CurrentUser(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, api.ErrorResponse{Error: "authentication failed"})
		return
	}

	var req dto.CreateActionReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "invalid request"})
		return
	}
	if v := req.Validate(); len(v) > 0 {
		c.JSON(http.StatusBadRequest, api.NewValidationError(v))
		return
	}

	// The target job must exist and belong to the requester.
	if _, err := h.jobs.GetByID(c.Request.Context(), req.JobID, user.ID); err != nil {
		switch {
		case errors.Is(err, jobusecase.ErrJobNotFound):
			c.JSON(http.StatusNotFound, api.ErrorResponse{Error: "Job not found"})
		case errors.Is(err, ownership.ErrAccessDenied):
			c.JSON(http.StatusForbidden, api.ErrorResponse{Error: "Access denied: You can only access your own jobs"})
		default:
			slog.Error("job check failed", "user_id", user.ID, "job_id", req.JobID, "error", err)
			c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "Failed to create action"})
		}
		return
	}

	in := usecase.CreateActionInput{
		JobID:      req.JobID,
		TemplateID: req.TemplateID,
		Notes:      req.Notes,
	}
	if req.Date != nil {
		in.Date = &req.Date.Time
	}
	if req.ScheduledDate != nil {
		in.ScheduledDate = &req.ScheduledDate.Time
	}

	action, err := h.actions.Create(c.Request.Context(), user.ID, in)
	if err != nil {
		if errors.Is(err, usecase.ErrTemplateNotFound) {
			c.JSON(http.StatusNotFound, api.ErrorResponse{Error: "Action template not found"})
			return
		}
		slog.Error("action creation failed", "user_id", user.ID, "error", err)
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "Failed to create action"})
		return
	}

	c.JSON(http.StatusCreated, dto.ActionRes{Action: action})
}

// ListByJob handles GET /actions/job/:jobId.
func (h *ActionHandler) ListByJob(c *gin.Context) {
	user, ok := jwtmw.CurrentUser(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, api.ErrorResponse{Error: "authentication failed"})
		return
	}

	jobID, err := strconv.ParseUint(c.Param("jobId"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "invalid job id"})
		return
	}

	actions, err := h.actions.ListByJob(c.Request.Context(), uint(jobID), user.ID)
	if err != nil {
		slog.Error("action list failed", "user_id", user.ID, "job_id", jobID, "error", err)
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "Failed to get actions"})
		return
	}

	c.JSON(http.StatusOK, dto.ActionListRes{Actions: actions})
}

// ListByUser handles GET /actions/user.
func (h *ActionHandler) ListByUser(c *gin.Context) {
	user, ok := jwtmw.CurrentUser(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, api.ErrorResponse{Error: "authentication failed"})
		return
	}

	actions, err := h.actions.ListByUser(c.Request.Context(), user.ID)
	if err != nil {
		slog.Error("action list failed", "user_id", user.ID, "error", err)
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "Failed to get actions"})
		return
	}

	c.JSON(http.StatusOK, dto.ActionListRes{Actions: actions})
}

// Update handles PUT /actions/:id. Lookups are scoped by user, so another
// user's action reads as missing.
func (h *ActionHandler) Update(c *gin.Context) {
	user, ok := jwtmw.CurrentUser(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, api.ErrorResponse{Error: "authentication failed"})
		return
	}

	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "invalid action id"})
		return
	}

	var req dto.UpdateActionReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "invalid request"})
		return
	}

	in := usecase.UpdateActionInput{Notes: req.Notes}
	if req.Date != nil {
		in.Date = &req.Date.Time
	}
	if req.ScheduledDate != nil {
		in.ScheduledDate = &req.ScheduledDate.Time
	}

	action, err := h.actions.Update(c.Request.Context(), uint(id), user.ID, in)
	if err != nil {
		if errors.Is(err, usecase.ErrActionNotFound) {
			c.JSON(http.StatusNotFound, api.ErrorResponse{Error: "Action not found"})
			return
		}
		slog.Error("action update failed", "user_id", user.ID, "action_id", id, "error", err)
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "Failed to update action"})
		return
	}

	c.JSON(http.StatusOK, dto.ActionRes{Action: action})
}

// Delete handles DELETE /actions/:id.
func (h *ActionHandler) Delete(c *gin.Context) {
	user, ok := jwtmw.CurrentUser(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, api.ErrorResponse{Error: "authentication failed"})
		return
	}

	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "invalid action id"})
		return
	}

	if err := h.actions.Delete(c.Request.Context(), uint(id), user.ID); err != nil {
		if errors.Is(err, usecase.ErrActionNotFound) {
			c.JSON(http.StatusNotFound, api.ErrorResponse{Error: "Action not found"})
			return
		}
		slog.Error("action delete failed", "user_id", user.ID, "action_id", id, "error", err)
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "Failed to delete action"})
		return
	}

	c.JSON(http.StatusOK, api.MessageResponse{Message: "Action deleted successfully"})
}
