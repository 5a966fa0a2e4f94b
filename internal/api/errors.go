package api

import (
	"errors"
	"net/http"

	"github.com/taskdeck/taskdeck/internal/domain"
	"github.com/taskdeck/taskdeck/internal/service"
	"github.com/taskdeck/taskdeck/internal/store"
	"github.com/taskdeck/taskdeck/internal/translation"
)

// MapErrorToStatusCode maps internal errors to appropriate HTTP status
// codes based on the error kind. Validation and not-found errors are client
// errors; storage failures are server errors; translation failures map to
// the gateway/availability codes.
func MapErrorToStatusCode(err error) int {
	switch {
	// Validation errors
	case errors.Is(err, domain.ErrValidation),
		errors.Is(err, service.ErrInvalidFilter),
		errors.Is(err, store.ErrInvalidEntity),
		errors.Is(err, translation.ErrEmptyText),
		errors.Is(err, translation.ErrEmptyLanguage):
		return http.StatusBadRequest

	// Not found errors
	case errors.Is(err, service.ErrItemNotFound),
		errors.Is(err, store.ErrNotFound):
		return http.StatusNotFound

	// Translation availability and upstream failures
	case errors.Is(err, translation.ErrUnavailable):
		return http.StatusServiceUnavailable
	case errors.Is(err, translation.ErrTranslationFailed),
		errors.Is(err, translation.ErrInvalidResponse):
		return http.StatusBadGateway

	// Default: internal server error (storage and unknown failures)
	default:
		return http.StatusInternalServerError
	}
}

// GetSafeErrorMessage returns a sanitized, user-friendly error message
// based on the error kind. Internal details never reach clients.
func GetSafeErrorMessage(err error) string {
	if err == nil {
		return "An unexpected error occurred"
	}

	switch {
	case errors.Is(err, domain.ErrEmptyItemTitle):
		return "Title must not be empty"

	case errors.Is(err, domain.ErrInvalidPriority):
		return "Priority must be one of: low, medium, high"

	case errors.Is(err, service.ErrInvalidFilter):
		return "Status filter must be one of: pending, completed, all"

	case errors.Is(err, store.ErrInvalidEntity):
		return "Invalid item data"

	case errors.Is(err, service.ErrItemNotFound),
		errors.Is(err, store.ErrNotFound):
		return "Item not found"

	case errors.Is(err, translation.ErrEmptyText):
		return "Text to translate must not be empty"

	case errors.Is(err, translation.ErrEmptyLanguage):
		return "Target language must not be empty"

	case errors.Is(err, translation.ErrUnavailable):
		return "Translation service is not available"

	case errors.Is(err, translation.ErrTranslationFailed),
		errors.Is(err, translation.ErrInvalidResponse):
		return "Translation failed"

	default:
		return "An unexpected error occurred"
	}
}
