// Package dto defines data transfer objects for the jobs feature's HTTP
// transport layer.
package dto

import (
	openapi_types "github.com/oapi-codegen/runtime/types"

	"job_hunter/internal/api"
	"job_hunter/internal/feature/jobs/domain/entity"
	"job_hunter/internal/platform/validation"
)

// CreateJobReq represents the request body for POST /jobs/create.
// Dates arrive as "YYYY-MM-DD" strings.
type CreateJobReq struct {
	Title          string              `json:"title"`
	Company        string              `json:"company"`
	Location       string              `json:"location"`
	Description    string              `json:"description"`
	Requirements   []string            `json:"requirements"`
	Salary         string              `json:"salary"`
	Type           string              `json:"type"`
	Status         string              `json:"status"`
	AppliedDate    *openapi_types.Date `json:"appliedDate"`
	ResumeLink     string              `json:"resumeLink"`
	JobPostingLink string              `json:"jobPostingLink"`
	Notes          string              `json:"notes"`
}

// Validate checks the job creation schema.
func (r CreateJobReq) Validate() []api.Violation {
	return validation.Validate(
		validation.Field("title",
			r.Title,
			validation.R("required", "Title is required"),
		),
		validation.Field("company",
			r.Company,
			validation.R("required", "Company is required"),
		),
		validation.Field("type",
			r.Type,
			validation.R("omitempty,oneof=full-time part-time contract internship", "Type must be one of full-time, part-time, contract, internship"),
		),
		validation.Field("status",
			r.Status,
			validation.R("omitempty,oneof=open closed", "Status must be open or closed"),
		),
	)
}

// JobRes wraps a single job.
type JobRes struct {
	Job *entity.Job `json:"job"`
}

// JobListRes wraps a user's job list.
type JobListRes struct {
	Jobs []*entity.Job `json:"jobs"`
}
