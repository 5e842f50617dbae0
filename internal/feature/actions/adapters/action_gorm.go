package adapters

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"job_hunter/internal/feature/actions/domain/entity"
	"job_hunter/internal/feature/actions/usecase"
)

// actionGorm is a GORM implementation of the ActionRepository interface.
// Every lookup is scoped by user id so foreign actions are indistinguishable
// from missing ones.
type actionGorm struct {
	db *gorm.DB
}

// Compile-time check to ensure actionGorm implements ActionRepository.
var _ usecase.ActionRepository = (*actionGorm)(nil)

// NewActionGorm creates a new instance of actionGorm.
func NewActionGorm(db *gorm.DB) *actionGorm {
	return &actionGorm{db: db}
}

// Create inserts the action.
func (r *actionGorm) Create(ctx context.Context, action *entity.Action) error {
	return r.db.WithContext(ctx).Create(action).Error
}

// FindByJobAndUser returns a job's actions for the user, newest first.
func (r *actionGorm) FindByJobAndUser(ctx context.Context, jobID, userID uint) ([]*entity.Action, error) {
	var actions []*entity.Action
	if err := r.db.WithContext(ctx).
		Where("job_id = ? AND user_id = ?", jobID, userID).
		Order("date DESC").
		Find(&actions).Error; err != nil {
		return nil, err
	}
	return actions, nil
}

// FindByUser returns all of a user's actions, newest first.
func (r *actionGorm) FindByUser(ctx context.Context, userID uint) ([]*entity.Action, error) {
	var actions []*entity.Action
	if err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("date DESC").
		Find(&actions).Error; err != nil {
		return nil, err
	}
	return actions, nil
}

// FindByIDAndUser retrieves an action owned by the user.
func (r *actionGorm) FindByIDAndUser(ctx context.Context, id, userID uint) (*entity.Action, error) {
	var action entity.Action
	if err := r.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", id, userID).
		First(&action).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, usecase.ErrActionNotFound
		}
		return nil, err
	}
	return &action, nil
}

// Update saves the full action record.
func (r *actionGorm) Update(ctx context.Context, action *entity.Action) error {
	return r.db.WithContext(ctx).Save(action).Error
}

// DeleteByIDAndUser removes an action owned by the user.
func (r *actionGorm) DeleteByIDAndUser(ctx context.Context, id, userID uint) error {
	result := r.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", id, userID).
		Delete(&entity.Action{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return usecase.ErrActionNotFound
	}
	return nil
}
