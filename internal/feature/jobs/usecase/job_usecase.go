package usecase

import (
	"context"
	"log/slog"
	"time"

	"job_hunter/internal/feature/jobs/domain/entity"
	"job_hunter/internal/shared/ownership"
)

// JobRepository abstracts the persistence layer for job entities.
type JobRepository interface {
	// Create persists a new job.
	Create(ctx context.Context, job *entity.Job) error

	// FindByUserID retrieves every job owned by the user.
	FindByUserID(ctx context.Context, userID uint) ([]*entity.Job, error)

	// FindByID retrieves a job regardless of owner. The caller is
	// responsible for the ownership check.
	FindByID(ctx context.Context, id uint) (*entity.Job, error)
}

// DefaultActionSeeder instantiates every default-flagged action template
// against a newly created job.
type DefaultActionSeeder interface {
	SeedForJob(ctx context.Context, jobID, userID uint, date time.Time) error
}

// CreateJobInput carries the fields of a job creation request after
// validation. Zero values fall back to the documented defaults.
type CreateJobInput struct {
	Title          string
	Company        string
	Location       string
	Description    string
	Requirements   []string
	Salary         string
	Type           entity.JobType
	Status         entity.JobStatus
	AppliedDate    *time.Time
	ResumeLink     string
	JobPostingLink string
	Notes          string
}

type jobUsecase struct {
	jobs   JobRepository
	seeder DefaultActionSeeder
}

// NewJobUsecase creates a new instance of jobUsecase.
func NewJobUsecase(jobs JobRepository, seeder DefaultActionSeeder) *jobUsecase {
	return &jobUsecase{jobs: jobs, seeder: seeder}
}

// Create stores a new job for the user, applying defaults, then attaches
// the default action templates to it.
func (u *jobUsecase) Create(ctx context.Context, userID uint, in CreateJobInput) (*entity.Job, error) {
	job := &entity.Job{
		UserID:         userID,
		Title:          in.Title,
		Company:        in.Company,
		Location:       in.Location,
		Description:    in.Description,
		Requirements:   in.Requirements,
		Salary:         in.Salary,
		Type:           in.Type,
		Status:         in.Status,
		ResumeLink:     in.ResumeLink,
		JobPostingLink: in.JobPostingLink,
		Notes:          in.Notes,
	}
	if job.Requirements == nil {
		job.Requirements = []string{}
	}
	if job.Type == "" {
		job.Type = entity.JobTypeFullTime
	}
	if job.Status == "" {
		job.Status = entity.JobStatusOpen
	}
	if in.AppliedDate != nil {
		job.AppliedDate = *in.AppliedDate
	} else {
		job.AppliedDate = time.Now()
	}

	if err := u.jobs.Create(ctx, job); err != nil {
		return nil, err
	}

	// Default actions are a convenience layer on top of the job record;
	// the created job stands even if seeding them fails.
	if u.seeder != nil {
		if err := u.seeder.SeedForJob(ctx, job.ID, userID, job.AppliedDate); err != nil {
			slog.Warn("failed to seed default actions for job", "job_id", job.ID, "error", err)
		}
	}

	return job, nil
}

// List returns every job owned by the user.
func (u *jobUsecase) List(ctx context.Context, userID uint) ([]*entity.Job, error) {
	return u.jobs.FindByUserID(ctx, userID)
}

// GetByID loads a job and enforces that it belongs to the requesting user.
func (u *jobUsecase) GetByID(ctx context.Context, id, userID uint) (*entity.Job, error) {
	job, err := u.jobs.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := ownership.Check(job.UserID, userID); err != nil {
		return nil, err
	}
	return job, nil
}
