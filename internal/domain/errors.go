package domain

import (
	"errors"
	"fmt"
)

// Common domain errors used across the application.
var (
	// ErrValidation is returned when a domain entity fails validation.
	// This is often wrapped with a more specific error message.
	ErrValidation = errors.New("validation failed")

	// ErrEmptyItemTitle is returned when an item title is empty or blank.
	ErrEmptyItemTitle = fmt.Errorf("%w: item title cannot be empty", ErrValidation)

	// ErrInvalidPriority is returned when a priority is outside the
	// allowed set of values.
	ErrInvalidPriority = fmt.Errorf("%w: invalid item priority", ErrValidation)
)
