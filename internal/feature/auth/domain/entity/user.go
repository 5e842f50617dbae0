// Package entity defines the domain entities for the auth feature.
package entity

import "time"

// SocialLinks groups a user's public profile links.
type SocialLinks struct {
	LinkedIn string `json:"linkedin,omitempty" gorm:"size:255"`
	GitHub   string `json:"github,omitempty" gorm:"size:255"`
	Website  string `json:"website,omitempty" gorm:"size:255"`
}

// User represents a registered user in the system.
// Credential fields are never serialized back to a client.
type User struct {
	// ID is the unique identifier for the user.
	ID uint `json:"id" gorm:"primaryKey"`

	// Email is the user's email address used for authentication.
	// It is stored lowercase and must be unique across all users.
	Email string `json:"email" gorm:"uniqueIndex;size:255;not null"`

	// Password is the bcrypt hash of the user's password.
	// This never stores plaintext and is never rendered in JSON.
	Password string `json:"-" gorm:"size:255;not null"`

	// Name is the user's display name.
	Name string `json:"name" gorm:"size:255;not null"`

	// ResetToken is the pending password reset token, empty when none.
	ResetToken string `json:"-" gorm:"index;size:64"`

	// ResetTokenExpiry bounds the reset token's validity, nil when none.
	ResetTokenExpiry *time.Time `json:"-"`

	// Optional profile fields.
	Phone          string      `json:"phone,omitempty" gorm:"size:64"`
	Location       string      `json:"location,omitempty" gorm:"size:255"`
	Bio            string      `json:"bio,omitempty" gorm:"size:500"`
	ProfilePicture string      `json:"profilePicture,omitempty" gorm:"size:512"`
	SocialLinks    SocialLinks `json:"socialLinks" gorm:"embedded;embeddedPrefix:social_"`

	// CreatedAt is the timestamp when the user was created.
	CreatedAt time.Time `json:"createdAt"`

	// UpdatedAt is the timestamp when the user was last updated.
	UpdatedAt time.Time `json:"updatedAt"`
}
