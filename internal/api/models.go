package api

import (
	"time"

	"github.com/taskdeck/taskdeck/internal/domain"
)

// dateFormat is the wire format for due dates (date precision only).
const dateFormat = "2006-01-02"

// CreateItemRequest represents the request body for creating a new item.
type CreateItemRequest struct {
	Title       string  `json:"title"       validate:"required,min=1"`
	Description *string `json:"description,omitempty"`
	Priority    string  `json:"priority"    validate:"required"`
	DueDate     *string `json:"due_date,omitempty"`
}

// TranslateRequest represents the request body for translating text.
type TranslateRequest struct {
	Text           string `json:"text"            validate:"required,min=1"`
	TargetLanguage string `json:"target_language" validate:"required,min=1"`
}

// TranslateResponse represents a successful translation.
type TranslateResponse struct {
	TranslatedText string `json:"translated_text"`
}

// ItemResponse represents the response data for a single item.
type ItemResponse struct {
	ID          int64     `json:"id"`
	Title       string    `json:"title"`
	Description *string   `json:"description,omitempty"`
	Priority    string    `json:"priority"`
	DueDate     *string   `json:"due_date,omitempty"`
	Completed   bool      `json:"completed"`
	CreatedAt   time.Time `json:"created_at"`
}

// itemToResponse converts a domain.Item to an ItemResponse.
func itemToResponse(item *domain.Item) ItemResponse {
	resp := ItemResponse{
		ID:          item.ID,
		Title:       item.Title,
		Description: item.Description,
		Priority:    string(item.Priority),
		Completed:   item.Completed,
		CreatedAt:   item.CreatedAt,
	}
	if item.DueDate != nil {
		due := item.DueDate.Format(dateFormat)
		resp.DueDate = &due
	}
	return resp
}

// itemsToResponse converts a slice of domain items.
func itemsToResponse(items []*domain.Item) []ItemResponse {
	out := make([]ItemResponse, 0, len(items))
	for _, item := range items {
		out = append(out, itemToResponse(item))
	}
	return out
}
