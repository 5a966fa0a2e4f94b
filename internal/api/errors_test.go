package api_test

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/taskdeck/taskdeck/internal/api"
	"github.com/taskdeck/taskdeck/internal/domain"
	"github.com/taskdeck/taskdeck/internal/service"
	"github.com/taskdeck/taskdeck/internal/store"
	"github.com/taskdeck/taskdeck/internal/translation"
)

func TestMapErrorToStatusCode(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		err  error
		want int
	}{
		{name: "empty_title", err: domain.ErrEmptyItemTitle, want: http.StatusBadRequest},
		{name: "invalid_priority", err: domain.ErrInvalidPriority, want: http.StatusBadRequest},
		{name: "invalid_filter", err: service.ErrInvalidFilter, want: http.StatusBadRequest},
		{name: "invalid_entity", err: store.ErrInvalidEntity, want: http.StatusBadRequest},
		{name: "empty_translation_text", err: translation.ErrEmptyText, want: http.StatusBadRequest},
		{name: "empty_target_language", err: translation.ErrEmptyLanguage, want: http.StatusBadRequest},
		{name: "service_not_found", err: service.ErrItemNotFound, want: http.StatusNotFound},
		{name: "store_not_found", err: store.ErrItemNotFound, want: http.StatusNotFound},
		{
			name: "wrapped_not_found",
			err:  fmt.Errorf("lookup: %w", service.ErrItemNotFound),
			want: http.StatusNotFound,
		},
		{name: "translation_unavailable", err: translation.ErrUnavailable, want: http.StatusServiceUnavailable},
		{name: "translation_failed", err: translation.ErrTranslationFailed, want: http.StatusBadGateway},
		{name: "translation_bad_response", err: translation.ErrInvalidResponse, want: http.StatusBadGateway},
		{
			name: "storage_error",
			err:  store.NewStoreError("item", "list", "query failed", errors.New("boom")),
			want: http.StatusInternalServerError,
		},
		{name: "unknown_error", err: errors.New("mystery"), want: http.StatusInternalServerError},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tc.want, api.MapErrorToStatusCode(tc.err))
		})
	}
}

func TestGetSafeErrorMessage(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "Title must not be empty", api.GetSafeErrorMessage(domain.ErrEmptyItemTitle))
	assert.Equal(t, "Item not found", api.GetSafeErrorMessage(service.ErrItemNotFound))
	assert.Equal(t, "Translation service is not available", api.GetSafeErrorMessage(translation.ErrUnavailable))
	assert.Equal(t, "An unexpected error occurred", api.GetSafeErrorMessage(nil))

	// Internal details must never leak.
	internal := store.NewStoreError("item", "create", "insert failed",
		errors.New("pq: password authentication failed"))
	msg := api.GetSafeErrorMessage(internal)
	assert.Equal(t, "An unexpected error occurred", msg)
	assert.NotContains(t, msg, "password")
}
