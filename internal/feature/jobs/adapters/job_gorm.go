// Package adapters provides repository implementations for the jobs feature.
package adapters

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"job_hunter/internal/feature/jobs/domain/entity"
	"job_hunter/internal/feature/jobs/usecase"
)

// jobGorm is a GORM implementation of the JobRepository interface.
type jobGorm struct {
	db *gorm.DB
}

// Compile-time check to ensure jobGorm implements JobRepository.
var _ usecase.JobRepository = (*jobGorm)(nil)

// NewJobGorm creates a new instance of jobGorm for the given connection.
func NewJobGorm(db *gorm.DB) *jobGorm {
	return &jobGorm{db: db}
}

// Create inserts the job.
func (r *jobGorm) Create(ctx context.Context, job *entity.Job) error {
	return r.db.WithContext(ctx).Create(job).Error
}

// FindByUserID returns the user's jobs, most recently applied first.
func (r *jobGorm) FindByUserID(ctx context.Context, userID uint) ([]*entity.Job, error) {
	var jobs []*entity.Job
	if err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("applied_date DESC").
		Find(&jobs).Error; err != nil {
		return nil, err
	}
	return jobs, nil
}

// FindByID retrieves a job by ID, owner not considered.
func (r *jobGorm) FindByID(ctx context.Context, id uint) (*entity.Job, error) {
	var job entity.Job
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&job).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, usecase.ErrJobNotFound
		}
		return nil, err
	}
	return &job, nil
}
