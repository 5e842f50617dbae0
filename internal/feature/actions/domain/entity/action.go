// Package entity defines the domain entities for the actions feature.
package entity

import "time"

// Category groups action templates for display and filtering.
type Category string

const (
	CategoryApplication Category = "application"
	CategoryInterview   Category = "interview"
	CategoryResponse    Category = "response"
	CategoryFollowUp    Category = "follow-up"
	CategoryOther       Category = "other"
)

// ActionTemplate is a shared, admin-defined catalog entry describing a
// reusable job-application event type. Templates are not user-owned.
type ActionTemplate struct {
	ID          uint     `json:"id" gorm:"primaryKey"`
	Name        string   `json:"name" gorm:"uniqueIndex;size:255;not null"`
	Description string   `json:"description" gorm:"size:512;not null"`
	Category    Category `json:"category" gorm:"size:32;not null"`

	// IsDefault marks templates automatically instantiated against every
	// newly created job.
	IsDefault bool `json:"isDefault"`

	// Display hints for the UI.
	Color string `json:"color,omitempty" gorm:"size:16"`
	Icon  string `json:"icon,omitempty" gorm:"size:16"`

	// Order controls sort position in the UI. "order" is a reserved word,
	// hence the column name.
	Order int `json:"order" gorm:"column:sort_order"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// Action is a template applied to a specific job: an interview, an offer,
// a rejection. It belongs to exactly one job and one user.
type Action struct {
	ID     uint `json:"id" gorm:"primaryKey"`
	JobID  uint `json:"jobId" gorm:"index:idx_actions_job_date;not null"`
	UserID uint `json:"userId" gorm:"index:idx_actions_user_date;not null"`

	TemplateID uint `json:"templateId" gorm:"index;not null"`

	// TemplateName is denormalized from the template at creation time and
	// is not kept in sync with later template edits.
	TemplateName string `json:"templateName" gorm:"size:255;not null"`

	Date          time.Time  `json:"date" gorm:"index:idx_actions_job_date,sort:desc;index:idx_actions_user_date,sort:desc;not null"`
	ScheduledDate *time.Time `json:"scheduledDate,omitempty"`
	Notes         string     `json:"notes,omitempty"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}
