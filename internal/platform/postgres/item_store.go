package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"

	"github.com/taskdeck/taskdeck/internal/domain"
	"github.com/taskdeck/taskdeck/internal/platform/logger"
	"github.com/taskdeck/taskdeck/internal/store"
)

// PostgresItemStore implements the store.ItemStore interface
// using a PostgreSQL database as the storage backend.
type PostgresItemStore struct {
	db     store.DBTX
	logger *slog.Logger
}

// NewPostgresItemStore creates a new PostgreSQL implementation of the
// ItemStore interface. It accepts a database connection or transaction that
// should be initialized and managed by the caller.
// If logger is nil, a default logger will be used.
func NewPostgresItemStore(db store.DBTX, logger *slog.Logger) *PostgresItemStore {
	if db == nil {
		panic("db cannot be nil")
	}

	if logger == nil {
		logger = slog.Default()
	}

	return &PostgresItemStore{
		db:     db,
		logger: logger.With(slog.String("component", "item_store")),
	}
}

// Ensure PostgresItemStore implements store.ItemStore
var _ store.ItemStore = (*PostgresItemStore)(nil)

// Create implements store.ItemStore.Create
// It saves a new item to the database, handling domain validation, and
// writes the assigned ID back onto the passed item.
func (s *PostgresItemStore) Create(ctx context.Context, item *domain.Item) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if err := item.Validate(); err != nil {
		log.Warn("item validation failed during create",
			slog.String("error", err.Error()))
		return err
	}

	query := `
		INSERT INTO items (title, description, priority, due_date, completed, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id
	`
	err := s.db.QueryRowContext(
		ctx,
		query,
		item.Title,
		item.Description,
		item.Priority,
		item.DueDate,
		item.Completed,
		item.CreatedAt,
	).Scan(&item.ID)

	if err != nil {
		mapped := MapError(err)
		log.Error("failed to create item",
			slog.String("error", err.Error()),
			slog.String("title", item.Title))
		if errors.Is(mapped, store.ErrInvalidEntity) {
			return mapped
		}
		return store.NewStoreError("item", "create", "insert failed", err)
	}

	log.Info("item created successfully",
		slog.Int64("item_id", item.ID),
		slog.String("priority", string(item.Priority)))
	return nil
}

// GetByID implements store.ItemStore.GetByID
// Returns store.ErrItemNotFound if the item does not exist.
func (s *PostgresItemStore) GetByID(ctx context.Context, id int64) (*domain.Item, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	log.Debug("retrieving item by ID", slog.Int64("item_id", id))

	query := `
		SELECT id, title, description, priority, due_date, completed, created_at
		FROM items
		WHERE id = $1
	`

	var item domain.Item
	var priority string

	err := s.db.QueryRowContext(ctx, query, id).Scan(
		&item.ID,
		&item.Title,
		&item.Description,
		&priority,
		&item.DueDate,
		&item.Completed,
		&item.CreatedAt,
	)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			log.Debug("item not found", slog.Int64("item_id", id))
			return nil, store.ErrItemNotFound
		}
		log.Error("failed to get item by ID",
			slog.String("error", err.Error()),
			slog.Int64("item_id", id))
		return nil, store.NewStoreError("item", "get", "query failed", err)
	}

	item.Priority = domain.Priority(priority)

	return &item, nil
}

// List implements store.ItemStore.List
// Items come back in insertion order (id ASC). Returns an empty slice when
// nothing matches the filter.
func (s *PostgresItemStore) List(ctx context.Context, filter store.ListFilter) ([]*domain.Item, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if !store.IsValidListFilter(filter) {
		return nil, fmt.Errorf("%w: unknown list filter %q", store.ErrInvalidEntity, filter)
	}

	query := `
		SELECT id, title, description, priority, due_date, completed, created_at
		FROM items
	`
	var args []any
	switch filter {
	case store.ListPending:
		query += ` WHERE completed = $1`
		args = append(args, false)
	case store.ListCompleted:
		query += ` WHERE completed = $1`
		args = append(args, true)
	}
	query += ` ORDER BY id ASC`

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Error("failed to query items",
			slog.String("error", err.Error()),
			slog.String("filter", string(filter)))
		return nil, store.NewStoreError("item", "list", "query failed", err)
	}
	defer func() {
		if err := rows.Close(); err != nil {
			log.Error("failed to close rows", slog.String("error", err.Error()))
		}
	}()

	var items []*domain.Item
	for rows.Next() {
		var item domain.Item
		var priority string

		err := rows.Scan(
			&item.ID,
			&item.Title,
			&item.Description,
			&priority,
			&item.DueDate,
			&item.Completed,
			&item.CreatedAt,
		)
		if err != nil {
			log.Error("failed to scan item row", slog.String("error", err.Error()))
			return nil, store.NewStoreError("item", "list", "row scan failed", err)
		}

		item.Priority = domain.Priority(priority)
		items = append(items, &item)
	}

	if err := rows.Err(); err != nil {
		log.Error("error after scanning rows", slog.String("error", err.Error()))
		return nil, store.NewStoreError("item", "list", "row iteration failed", err)
	}

	if items == nil {
		items = []*domain.Item{}
	}

	log.Debug("listed items",
		slog.String("filter", string(filter)),
		slog.Int("count", len(items)))
	return items, nil
}

// MarkCompleted implements store.ItemStore.MarkCompleted
// It sets completed=true and returns the updated row. Completing an
// already-completed item simply re-confirms the state.
// Returns store.ErrItemNotFound if the item does not exist.
func (s *PostgresItemStore) MarkCompleted(ctx context.Context, id int64) (*domain.Item, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	log.Debug("marking item completed", slog.Int64("item_id", id))

	query := `
		UPDATE items
		SET completed = TRUE
		WHERE id = $1
		RETURNING id, title, description, priority, due_date, completed, created_at
	`

	var item domain.Item
	var priority string

	err := s.db.QueryRowContext(ctx, query, id).Scan(
		&item.ID,
		&item.Title,
		&item.Description,
		&priority,
		&item.DueDate,
		&item.Completed,
		&item.CreatedAt,
	)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			log.Debug("item not found for completion", slog.Int64("item_id", id))
			return nil, store.ErrItemNotFound
		}
		log.Error("failed to mark item completed",
			slog.String("error", err.Error()),
			slog.Int64("item_id", id))
		return nil, store.NewStoreError("item", "complete", "update failed", err)
	}

	item.Priority = domain.Priority(priority)

	log.Info("item marked completed", slog.Int64("item_id", id))
	return &item, nil
}

// Delete implements store.ItemStore.Delete
// The delete is permanent. Returns store.ErrItemNotFound if the item
// does not exist.
func (s *PostgresItemStore) Delete(ctx context.Context, id int64) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	log.Debug("deleting item", slog.Int64("item_id", id))

	result, err := s.db.ExecContext(ctx, `DELETE FROM items WHERE id = $1`, id)
	if err != nil {
		log.Error("failed to delete item",
			slog.String("error", err.Error()),
			slog.Int64("item_id", id))
		return store.NewStoreError("item", "delete", "exec failed", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		log.Error("failed to get rows affected",
			slog.String("error", err.Error()),
			slog.Int64("item_id", id))
		return store.NewStoreError("item", "delete", "rows affected unavailable", err)
	}

	if rowsAffected == 0 {
		log.Debug("item not found for deletion", slog.Int64("item_id", id))
		return store.ErrItemNotFound
	}

	log.Info("item deleted", slog.Int64("item_id", id))
	return nil
}
