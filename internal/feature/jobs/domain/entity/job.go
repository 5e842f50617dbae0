// Package entity defines the domain entities for the jobs feature.
package entity

import "time"

// JobType classifies the employment type of a position.
type JobType string

const (
	JobTypeFullTime   JobType = "full-time"
	JobTypePartTime   JobType = "part-time"
	JobTypeContract   JobType = "contract"
	JobTypeInternship JobType = "internship"
)

// JobStatus tracks whether an application is still in play.
type JobStatus string

const (
	JobStatusOpen   JobStatus = "open"
	JobStatusClosed JobStatus = "closed"
)

// Job is a job-application record. Every job has exactly one owning user;
// only that user may read, mutate or delete it.
type Job struct {
	ID     uint `json:"id" gorm:"primaryKey"`
	UserID uint `json:"userId" gorm:"index;not null"`

	Title   string `json:"title" gorm:"size:255;not null"`
	Company string `json:"company" gorm:"size:255;not null"`

	Location    string `json:"location,omitempty" gorm:"size:255"`
	Description string `json:"description,omitempty"`

	// Requirements is an ordered list of requirement strings, stored as a
	// JSON document.
	Requirements []string `json:"requirements" gorm:"serializer:json"`

	// Salary is free text, e.g. "90k-110k USD".
	Salary string `json:"salary,omitempty" gorm:"size:255"`

	Type   JobType   `json:"type" gorm:"size:32;not null"`
	Status JobStatus `json:"status" gorm:"size:16;not null"`

	AppliedDate time.Time `json:"appliedDate" gorm:"not null"`

	ResumeLink     string `json:"resumeLink,omitempty" gorm:"size:512"`
	JobPostingLink string `json:"jobPostingLink,omitempty" gorm:"size:512"`
	Notes          string `json:"notes,omitempty"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}
