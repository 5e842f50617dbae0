// Package dto defines data transfer objects for the companies feature's HTTP
// transport layer.
package dto

import (
	"job_hunter/internal/api"
	"job_hunter/internal/feature/companies/domain/entity"
	"job_hunter/internal/platform/validation"
)

// CompanyReq represents the request body for company create and update.
type CompanyReq struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Website     string `json:"website"`
	Location    string `json:"location"`
}

// Validate checks the company schema.
func (r CompanyReq) Validate() []api.Violation {
	return validation.Validate(
		validation.Field("name",
			r.Name,
			validation.R("required", "Company name is required"),
		),
		validation.Field("website",
			r.Website,
			validation.R("omitempty,url", "Website must be a valid URL"),
		),
	)
}

// CompanyRes wraps a single company.
type CompanyRes struct {
	Company *entity.Company `json:"company"`
}
