// Package dto defines data transfer objects for the auth feature's HTTP
// transport layer. Each request knows how to validate itself; violations
// come back as a full list so the client can show every problem at once.
package dto

import (
	"job_hunter/internal/api"
	"job_hunter/internal/feature/auth/domain/entity"
	"job_hunter/internal/platform/validation"
)

// RegisterReq represents the request body for POST /users/register.
type RegisterReq struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	Name     string `json:"name"`
}

// Validate checks the registration schema.
func (r RegisterReq) Validate() []api.Violation {
	return validation.Validate(
		validation.Field("email",
			r.Email,
			validation.R("required", "Invalid email address"),
			validation.R("omitempty,email", "Invalid email address"),
		),
		validation.FieldRules{Path: "password", Value: r.Password, Rules: validation.PasswordRules()},
		validation.Field("name",
			r.Name,
			validation.R("required", "Name must be at least 2 characters"),
			validation.R("omitempty,min=2", "Name must be at least 2 characters"),
		),
	)
}

// LoginReq represents the request body for POST /users/login.
type LoginReq struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Validate checks the login schema. The password only has to be present;
// policy checks at login would leak which rules an account predates.
func (r LoginReq) Validate() []api.Violation {
	return validation.Validate(
		validation.Field("email",
			r.Email,
			validation.R("required", "Invalid email address"),
			validation.R("omitempty,email", "Invalid email address"),
		),
		validation.Field("password",
			r.Password,
			validation.R("required", "Password is required"),
		),
	)
}

// ChangePasswordReq represents the request body for PUT /users/change-password.
type ChangePasswordReq struct {
	CurrentPassword string `json:"currentPassword"`
	NewPassword     string `json:"newPassword"`
}

// Validate checks the change-password schema. The new password carries the
// full compound policy.
func (r ChangePasswordReq) Validate() []api.Violation {
	return validation.Validate(
		validation.Field("currentPassword",
			r.CurrentPassword,
			validation.R("required", "Current password is required"),
		),
		validation.FieldRules{Path: "newPassword", Value: r.NewPassword, Rules: validation.PasswordRules()},
	)
}

// ForgotPasswordReq represents the request body for POST /users/forgot-password.
type ForgotPasswordReq struct {
	Email string `json:"email"`
}

// Validate checks the forgot-password schema.
func (r ForgotPasswordReq) Validate() []api.Violation {
	return validation.Validate(
		validation.Field("email",
			r.Email,
			validation.R("required", "Invalid email address"),
			validation.R("omitempty,email", "Invalid email address"),
		),
	)
}

// ResetPasswordReq represents the request body for POST /users/reset-password.
type ResetPasswordReq struct {
	Token       string `json:"token"`
	NewPassword string `json:"newPassword"`
}

// Validate checks the reset-password schema.
func (r ResetPasswordReq) Validate() []api.Violation {
	return validation.Validate(
		validation.Field("token",
			r.Token,
			validation.R("required", "Token is required"),
		),
		validation.FieldRules{Path: "newPassword", Value: r.NewPassword, Rules: validation.PasswordRules()},
	)
}

// UpdateProfileReq represents the request body for PUT /users/profile.
// Nil fields are left untouched.
type UpdateProfileReq struct {
	Name           *string             `json:"name"`
	Email          *string             `json:"email"`
	Phone          *string             `json:"phone"`
	Location       *string             `json:"location"`
	Bio            *string             `json:"bio"`
	ProfilePicture *string             `json:"profilePicture"`
	SocialLinks    *entity.SocialLinks `json:"socialLinks"`
}

// Validate checks only the provided fields.
func (r UpdateProfileReq) Validate() []api.Violation {
	var fields []validation.FieldRules
	if r.Name != nil {
		fields = append(fields, validation.Field("name",
			*r.Name, validation.R("min=2", "Name must be at least 2 characters")))
	}
	if r.Email != nil {
		fields = append(fields, validation.Field("email",
			*r.Email, validation.R("email", "Invalid email address")))
	}
	if r.Bio != nil {
		fields = append(fields, validation.Field("bio",
			*r.Bio, validation.R("omitempty,max=500", "Bio must be at most 500 characters")))
	}
	return validation.Validate(fields...)
}

// AuthRes is the response for successful register and login calls.
type AuthRes struct {
	User  *entity.User `json:"user"`
	Token string       `json:"token"`
}

// UserRes wraps a user for profile reads and updates.
type UserRes struct {
	User *entity.User `json:"user"`
}

// ForgotPasswordRes returns the generated reset token.
// TODO: deliver the token by email instead of the response body once an
// outbound mail service exists.
type ForgotPasswordRes struct {
	Message    string `json:"message"`
	ResetToken string `json:"resetToken"`
}
