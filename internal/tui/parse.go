package tui

import (
	"errors"
	"strings"
	"time"

	"github.com/taskdeck/taskdeck/internal/api"
)

// ErrEmptyTitle is returned when an add input contains no title text.
var ErrEmptyTitle = errors.New("title cannot be empty")

// ErrBadDueDate is returned when an @token is not a valid YYYY-MM-DD date.
var ErrBadDueDate = errors.New("due date must be YYYY-MM-DD")

// parseAddInput turns one line of inline-add input into a create request.
// The title may carry a "!low", "!medium" or "!high" token to set priority
// and an "@YYYY-MM-DD" token to set the due date, in any position:
//
//	buy milk !high @2026-09-15
//
// Unrecognized tokens stay part of the title. Priority defaults to medium.
func parseAddInput(input string) (api.CreateItemRequest, error) {
	req := api.CreateItemRequest{Priority: "medium"}

	var titleWords []string
	for _, word := range strings.Fields(input) {
		switch {
		case word == "!low" || word == "!medium" || word == "!high":
			req.Priority = strings.TrimPrefix(word, "!")
		case strings.HasPrefix(word, "@"):
			raw := strings.TrimPrefix(word, "@")
			if _, err := time.Parse("2006-01-02", raw); err != nil {
				return api.CreateItemRequest{}, ErrBadDueDate
			}
			due := raw
			req.DueDate = &due
		default:
			titleWords = append(titleWords, word)
		}
	}

	req.Title = strings.Join(titleWords, " ")
	if req.Title == "" {
		return api.CreateItemRequest{}, ErrEmptyTitle
	}
	return req, nil
}
