// Package usecase implements the business logic for the auth feature.
package usecase

import "errors"

var (
	// ErrUserNotFound is returned when a user cannot be found by email or ID.
	ErrUserNotFound = errors.New("user not found")

	// ErrEmailAlreadyExists is returned when attempting to create or adopt
	// an email address that is already registered.
	ErrEmailAlreadyExists = errors.New("email already registered")

	// ErrInvalidCredentials is returned when login email or password is wrong.
	// The message is deliberately uniform so account existence does not leak.
	ErrInvalidCredentials = errors.New("invalid credentials")

	// ErrCurrentPasswordMismatch is returned by change-password when the
	// supplied current password does not match the stored hash.
	ErrCurrentPasswordMismatch = errors.New("current password is incorrect")

	// ErrInvalidResetToken is returned when a reset token is unknown,
	// already used, or past its expiry.
	ErrInvalidResetToken = errors.New("invalid or expired reset token")
)
