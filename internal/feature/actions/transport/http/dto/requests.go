// Package dto defines data transfer objects for the actions feature's HTTP
// transport layer.
package dto

import (
	openapi_types "github.com/oapi-codegen/runtime/types"

	"job_hunter/internal/api"
	"job_hunter/internal/feature/actions/domain/entity"
	"job_hunter/internal/platform/validation"
)

// CreateActionReq represents the request body for POST /actions.
type CreateActionReq struct {
	JobID         uint                `json:"jobId"`
	TemplateID    uint                `json:"templateId"`
	Date          *openapi_types.Date `json:"date"`
	ScheduledDate *openapi_types.Date `json:"scheduledDate"`
	Notes         string              `json:"notes"`
}

// Validate checks the action creation schema.
func (r CreateActionReq) Validate() []api.Violation {
	return validation.Validate(
		validation.Field("jobId",
			r.JobID,
			validation.R("required", "Job id is required"),
		),
		validation.Field("templateId",
			r.TemplateID,
			validation.R("required", "Template id is required"),
		),
	)
}

// UpdateActionReq represents the request body for PUT /actions/:id.
// Nil fields are left untouched.
type UpdateActionReq struct {
	Date          *openapi_types.Date `json:"date"`
	ScheduledDate *openapi_types.Date `json:"scheduledDate"`
	Notes         *string             `json:"notes"`
}

// TemplateReq represents the request body for template create and update.
type TemplateReq struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Category    string `json:"category"`
	IsDefault   bool   `json:"isDefault"`
	Color       string `json:"color"`
	Icon        string `json:"icon"`
	Order       int    `json:"order"`
}

// Validate checks the template schema.
func (r TemplateReq) Validate() []api.Violation {
	return validation.Validate(
		validation.Field("name",
			r.Name,
			validation.R("required", "Name is required"),
		),
		validation.Field("description",
			r.Description,
			validation.R("required", "Description is required"),
		),
		validation.Field("category",
			r.Category,
			validation.R("required", "Category is required"),
			validation.R("omitempty,oneof=application interview response follow-up other", "Category must be one of application, interview, response, follow-up, other"),
		),
	)
}

// ActionRes wraps a single action.
type ActionRes struct {
	Action *entity.Action `json:"action"`
}

// ActionListRes wraps a list of actions.
type ActionListRes struct {
	Actions []*entity.Action `json:"actions"`
}

// TemplateRes wraps a single template.
type TemplateRes struct {
	Template *entity.ActionTemplate `json:"template"`
}

// TemplateListRes wraps the template catalog.
type TemplateListRes struct {
	Templates []*entity.ActionTemplate `json:"templates"`
}
