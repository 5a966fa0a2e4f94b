package postgres_test

import (
	"database/sql"
	"errors"
	"fmt"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/taskdeck/taskdeck/internal/platform/postgres"
	"github.com/taskdeck/taskdeck/internal/store"
)

func TestMapError(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		input   error
		wantIs  error
		wantNil bool
	}{
		{
			name:    "nil_error",
			input:   nil,
			wantNil: true,
		},
		{
			name:   "no_rows_maps_to_not_found",
			input:  sql.ErrNoRows,
			wantIs: store.ErrNotFound,
		},
		{
			name:   "wrapped_no_rows_maps_to_not_found",
			input:  fmt.Errorf("scan: %w", sql.ErrNoRows),
			wantIs: store.ErrNotFound,
		},
		{
			name:   "unique_violation_maps_to_invalid_entity",
			input:  &pgconn.PgError{Code: "23505", ConstraintName: "items_pkey"},
			wantIs: store.ErrInvalidEntity,
		},
		{
			name:   "check_violation_maps_to_invalid_entity",
			input:  &pgconn.PgError{Code: "23514", ConstraintName: "items_priority_check"},
			wantIs: store.ErrInvalidEntity,
		},
		{
			name:   "not_null_violation_maps_to_invalid_entity",
			input:  &pgconn.PgError{Code: "23502", ColumnName: "title"},
			wantIs: store.ErrInvalidEntity,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			got := postgres.MapError(tc.input)
			if tc.wantNil {
				assert.NoError(t, got)
				return
			}
			assert.ErrorIs(t, got, tc.wantIs)
		})
	}
}

func TestMapErrorPassesThroughUnknownErrors(t *testing.T) {
	t.Parallel()

	unknown := errors.New("connection refused")
	got := postgres.MapError(unknown)

	assert.Same(t, unknown, got)
	assert.False(t, store.IsNotFoundError(got))
}

func TestNewPostgresItemStorePanicsOnNilDB(t *testing.T) {
	t.Parallel()

	assert.Panics(t, func() {
		postgres.NewPostgresItemStore(nil, nil)
	})
}
