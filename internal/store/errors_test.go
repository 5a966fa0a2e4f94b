package store_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/taskdeck/taskdeck/internal/store"
)

func TestIsNotFoundError(t *testing.T) {
	t.Parallel()

	assert.True(t, store.IsNotFoundError(store.ErrNotFound))
	assert.True(t, store.IsNotFoundError(store.ErrItemNotFound))
	assert.True(t, store.IsNotFoundError(fmt.Errorf("lookup failed: %w", store.ErrItemNotFound)))
	assert.False(t, store.IsNotFoundError(store.ErrInvalidEntity))
	assert.False(t, store.IsNotFoundError(errors.New("some other error")))
}

func TestStoreError(t *testing.T) {
	t.Parallel()

	underlying := errors.New("connection reset")
	err := store.NewStoreError("item", "create", "insert failed", underlying)

	assert.Contains(t, err.Error(), "create operation on item failed")
	assert.Contains(t, err.Error(), "connection reset")
	assert.ErrorIs(t, err, underlying)

	withoutCause := store.NewStoreError("item", "delete", "no rows", nil)
	assert.Equal(t, "delete operation on item failed: no rows", withoutCause.Error())
	assert.Nil(t, errors.Unwrap(withoutCause))
}

func TestIsValidListFilter(t *testing.T) {
	t.Parallel()

	assert.True(t, store.IsValidListFilter(store.ListAll))
	assert.True(t, store.IsValidListFilter(store.ListPending))
	assert.True(t, store.IsValidListFilter(store.ListCompleted))
	assert.False(t, store.IsValidListFilter(store.ListFilter("done")))
	assert.False(t, store.IsValidListFilter(store.ListFilter("")))
}
