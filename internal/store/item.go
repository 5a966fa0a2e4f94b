package store

import (
	"context"

	"github.com/taskdeck/taskdeck/internal/domain"
)

// ListFilter selects which items a List call returns.
type ListFilter string

// Possible list filters
const (
	ListAll       ListFilter = "all"
	ListPending   ListFilter = "pending"
	ListCompleted ListFilter = "completed"
)

// IsValidListFilter checks if the given filter is one of the defined values.
func IsValidListFilter(f ListFilter) bool {
	switch f {
	case ListAll, ListPending, ListCompleted:
		return true
	default:
		return false
	}
}

// ItemStore defines the interface for to-do item persistence.
type ItemStore interface {
	// Create saves a new item and assigns its ID and stored timestamps
	// back onto the passed item. It handles domain validation internally.
	Create(ctx context.Context, item *domain.Item) error

	// GetByID retrieves an item by its unique ID.
	// Returns ErrItemNotFound if the item does not exist.
	GetByID(ctx context.Context, id int64) (*domain.Item, error)

	// List retrieves items matching the filter in insertion order.
	// Returns an empty slice when nothing matches.
	List(ctx context.Context, filter ListFilter) ([]*domain.Item, error)

	// MarkCompleted sets completed=true on the item and returns the updated
	// row. Completing an already-completed item re-confirms the state.
	// Returns ErrItemNotFound if the item does not exist.
	MarkCompleted(ctx context.Context, id int64) (*domain.Item, error)

	// Delete removes the item permanently.
	// Returns ErrItemNotFound if the item does not exist.
	Delete(ctx context.Context, id int64) error
}
