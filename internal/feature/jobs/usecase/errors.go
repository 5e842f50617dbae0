// Package usecase implements the business logic for the jobs feature.
package usecase

import "errors"

var (
	// ErrJobNotFound is returned when no job exists with the given ID.
	ErrJobNotFound = errors.New("job not found")
)
