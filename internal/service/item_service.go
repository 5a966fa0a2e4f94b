package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/taskdeck/taskdeck/internal/domain"
	"github.com/taskdeck/taskdeck/internal/store"
)

// Common sentinel errors for ItemService
var (
	// ErrItemNotFound indicates that the referenced item does not exist.
	ErrItemNotFound = errors.New("item not found")

	// ErrInvalidFilter indicates an unknown list filter value.
	ErrInvalidFilter = errors.New("invalid list filter")
)

// ItemService provides the to-do item use cases: create, fetch, list,
// complete, and delete. It enforces validation before any store call and
// carries no business logic beyond that.
type ItemService interface {
	// Create validates the input and stores a new pending item.
	// Returns domain validation errors for an empty title or an invalid
	// priority; nothing is stored in that case.
	Create(ctx context.Context, title string, description *string, priority domain.Priority, dueDate *time.Time) (*domain.Item, error)

	// Get retrieves an item by ID. Returns ErrItemNotFound if absent.
	Get(ctx context.Context, id int64) (*domain.Item, error)

	// List retrieves items matching the filter in insertion order.
	List(ctx context.Context, filter store.ListFilter) ([]*domain.Item, error)

	// Complete marks the item completed and returns the updated item.
	// Completing an already-completed item re-confirms completed=true.
	// Returns ErrItemNotFound if absent.
	Complete(ctx context.Context, id int64) (*domain.Item, error)

	// Delete removes the item permanently. Returns ErrItemNotFound if absent.
	Delete(ctx context.Context, id int64) error
}

// itemService is the store-backed ItemService implementation.
type itemService struct {
	items  store.ItemStore
	logger *slog.Logger
}

// NewItemService creates an ItemService backed by the given store.
func NewItemService(items store.ItemStore, logger *slog.Logger) (ItemService, error) {
	if items == nil {
		return nil, errors.New("item store cannot be nil")
	}
	if logger == nil {
		logger = slog.Default()
	}

	return &itemService{
		items:  items,
		logger: logger.With(slog.String("component", "item_service")),
	}, nil
}

func (s *itemService) Create(
	ctx context.Context,
	title string,
	description *string,
	priority domain.Priority,
	dueDate *time.Time,
) (*domain.Item, error) {
	item, err := domain.NewItem(title, description, priority, dueDate)
	if err != nil {
		s.logger.Debug("item validation failed",
			slog.String("error", err.Error()))
		return nil, err
	}

	if err := s.items.Create(ctx, item); err != nil {
		return nil, fmt.Errorf("failed to create item: %w", err)
	}

	return item, nil
}

func (s *itemService) Get(ctx context.Context, id int64) (*domain.Item, error) {
	item, err := s.items.GetByID(ctx, id)
	if err != nil {
		if store.IsNotFoundError(err) {
			return nil, ErrItemNotFound
		}
		return nil, fmt.Errorf("failed to get item %d: %w", id, err)
	}
	return item, nil
}

func (s *itemService) List(ctx context.Context, filter store.ListFilter) ([]*domain.Item, error) {
	if filter == "" {
		filter = store.ListAll
	}
	if !store.IsValidListFilter(filter) {
		return nil, fmt.Errorf("%w: %q", ErrInvalidFilter, filter)
	}

	items, err := s.items.List(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to list items: %w", err)
	}
	return items, nil
}

func (s *itemService) Complete(ctx context.Context, id int64) (*domain.Item, error) {
	item, err := s.items.MarkCompleted(ctx, id)
	if err != nil {
		if store.IsNotFoundError(err) {
			return nil, ErrItemNotFound
		}
		return nil, fmt.Errorf("failed to complete item %d: %w", id, err)
	}
	return item, nil
}

func (s *itemService) Delete(ctx context.Context, id int64) error {
	if err := s.items.Delete(ctx, id); err != nil {
		if store.IsNotFoundError(err) {
			return ErrItemNotFound
		}
		return fmt.Errorf("failed to delete item %d: %w", id, err)
	}
	return nil
}
