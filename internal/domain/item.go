package domain

import (
	"strings"
	"time"
)

// Priority represents the relative urgency of an item.
type Priority string

// Possible priority values
const (
	PriorityLow    Priority = "low"
	PriorityMedium Priority = "medium"
	PriorityHigh   Priority = "high"
)

// Item represents a single to-do entry. The ID is assigned by the
// store on insertion and is immutable afterwards.
type Item struct {
	ID          int64      `json:"id"`
	Title       string     `json:"title"`
	Description *string    `json:"description,omitempty"`
	Priority    Priority   `json:"priority"`
	DueDate     *time.Time `json:"due_date,omitempty"`
	Completed   bool       `json:"completed"`
	CreatedAt   time.Time  `json:"created_at"`
}

// NewItem creates a new Item with the given title, optional description,
// priority, and optional due date. The item starts pending and carries a
// UTC creation timestamp; the ID is zero until the store assigns one.
// Returns an error if validation fails.
func NewItem(title string, description *string, priority Priority, dueDate *time.Time) (*Item, error) {
	item := &Item{
		Title:       strings.TrimSpace(title),
		Description: description,
		Priority:    priority,
		DueDate:     dueDate,
		Completed:   false,
		CreatedAt:   time.Now().UTC(),
	}

	if err := item.Validate(); err != nil {
		return nil, err
	}

	return item, nil
}

// Validate checks if the Item has valid data.
// Returns an error if any field fails validation.
func (i *Item) Validate() error {
	if strings.TrimSpace(i.Title) == "" {
		return ErrEmptyItemTitle
	}

	if !IsValidPriority(i.Priority) {
		return ErrInvalidPriority
	}

	return nil
}

// MarkCompleted flips the item to completed. Completing an already-completed
// item is a no-op that re-confirms the state rather than an error.
func (i *Item) MarkCompleted() {
	i.Completed = true
}

// ParsePriority converts a string into a Priority, accepting any casing.
// Returns ErrInvalidPriority for values outside the allowed set.
func ParsePriority(s string) (Priority, error) {
	p := Priority(strings.ToLower(strings.TrimSpace(s)))
	if !IsValidPriority(p) {
		return "", ErrInvalidPriority
	}
	return p, nil
}

// IsValidPriority checks if the given priority is one of the defined values.
func IsValidPriority(p Priority) bool {
	switch p {
	case PriorityLow, PriorityMedium, PriorityHigh:
		return true
	default:
		return false
	}
}
