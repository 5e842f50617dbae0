// Package entity defines the domain entities for the companies feature.
package entity

import "time"

// Company is a shared directory entry for an employer.
type Company struct {
	ID          uint      `json:"id" gorm:"primaryKey"`
	Name        string    `json:"name" gorm:"size:255;not null"`
	Description string    `json:"description,omitempty"`
	Website     string    `json:"website,omitempty" gorm:"size:512"`
	Location    string    `json:"location,omitempty" gorm:"size:255"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}
