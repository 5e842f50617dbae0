// Package usecase implements the business logic for the actions feature.
package usecase

import "errors"

var (
	// ErrTemplateNotFound is returned when no template exists with the given ID.
	ErrTemplateNotFound = errors.New("action template not found")

	// ErrTemplateNameTaken is returned when a template name is already in use.
	ErrTemplateNameTaken = errors.New("action template name already exists")

	// ErrActionNotFound is returned when no action matches the given ID for
	// the requesting user.
	ErrActionNotFound = errors.New("action not found")
)
