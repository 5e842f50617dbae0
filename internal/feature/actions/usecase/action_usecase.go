package usecase

import (
	"context"
	"time"

	"job_hunter/internal/feature/actions/domain/entity"
)

// ActionRepository abstracts the persistence layer for action instances.
// Lookups are scoped by user id, so a foreign action behaves exactly like a
// missing one.
type ActionRepository interface {
	// Create persists a new action.
	Create(ctx context.Context, action *entity.Action) error

	// FindByJobAndUser returns a job's actions for the user, newest first.
	FindByJobAndUser(ctx context.Context, jobID, userID uint) ([]*entity.Action, error)

	// FindByUser returns all of a user's actions, newest first.
	FindByUser(ctx context.Context, userID uint) ([]*entity.Action, error)

	// FindByIDAndUser retrieves an action owned by the user.
	FindByIDAndUser(ctx context.Context, id, userID uint) (*entity.Action, error)

	// Update persists changes to an existing action.
	Update(ctx context.Context, action *entity.Action) error

	// DeleteByIDAndUser removes an action owned by the user.
	// ErrActionNotFound when no row matches.
	DeleteByIDAndUser(ctx context.Context, id, userID uint) error
}

// CreateActionInput carries the fields of an action creation request.
// Job existence and ownership are verified by the caller before this runs.
type CreateActionInput struct {
	JobID         uint
	TemplateID    uint
	Date          *time.Time
	ScheduledDate *time.Time
	Notes         string
}

// UpdateActionInput carries the mutable fields of an action. Nil pointers
// leave the stored value untouched.
type UpdateActionInput struct {
	Date          *time.Time
	ScheduledDate *time.Time
	Notes         *string
}

type actionUsecase struct {
	actions   ActionRepository
	templates TemplateRepository
}

// NewActionUsecase creates a new instance of actionUsecase.
func NewActionUsecase(actions ActionRepository, templates TemplateRepository) *actionUsecase {
	return &actionUsecase{actions: actions, templates: templates}
}

// Create instantiates a template against a job. The template name is
// denormalized onto the action at creation time.
func (u *actionUsecase) Create(ctx context.Context, userID uint, in CreateActionInput) (*entity.Action, error) {
	tpl, err := u.templates.FindByID(ctx, in.TemplateID)
	if err != nil {
		return nil, err
	}

	action := &entity.Action{
		JobID:         in.JobID,
		UserID:        userID,
		TemplateID:    tpl.ID,
		TemplateName:  tpl.Name,
		ScheduledDate: in.ScheduledDate,
		Notes:         in.Notes,
	}
	if in.Date != nil {
		action.Date = *in.Date
	} else {
		action.Date = time.Now()
	}

	if err := u.actions.Create(ctx, action); err != nil {
		return nil, err
	}
	return action, nil
}

// ListByJob returns a job's actions for the user, newest first.
func (u *actionUsecase) ListByJob(ctx context.Context, jobID, userID uint) ([]*entity.Action, error) {
	return u.actions.FindByJobAndUser(ctx, jobID, userID)
}

// ListByUser returns all of the user's actions, newest first.
func (u *actionUsecase) ListByUser(ctx context.Context, userID uint) ([]*entity.Action, error) {
	return u.actions.FindByUser(ctx, userID)
}

// Update applies partial changes to an action owned by the user.
func (u *actionUsecase) Update(ctx context.Context, id, userID uint, in UpdateActionInput) (*entity.Action, error) {
	action, err := u.actions.FindByIDAndUser(ctx, id, userID)
	if err != nil {
		return nil, err
	}
	if in.Date != nil {
		action.Date = *in.Date
	}
	if in.ScheduledDate != nil {
		action.ScheduledDate = in.ScheduledDate
	}
	if in.Notes != nil {
		action.Notes = *in.Notes
	}
	if err := u.actions.Update(ctx, action); err != nil {
		return nil, err
	}
	return action, nil
}

// Delete removes an action owned by the user.
func (u *actionUsecase) Delete(ctx context.Context, id, userID uint) error {
	return u.actions.DeleteByIDAndUser(ctx, id, userID)
}

// SeedForJob instantiates every default-flagged template against a newly
// created job, all dated to the job's applied date.
func (u *actionUsecase) SeedForJob(ctx context.Context, jobID, userID uint, date time.Time) error {
	defaults, err := u.templates.FindDefaults(ctx)
	if err != nil {
		return err
	}
	for _, tpl := range defaults {
		action := &entity.Action{
			JobID:        jobID,
			UserID:       userID,
			TemplateID:   tpl.ID,
			TemplateName: tpl.Name,
			Date:         date,
		}
		if err := u.actions.Create(ctx, action); err != nil {
			return err
		}
	}
	return nil
}
