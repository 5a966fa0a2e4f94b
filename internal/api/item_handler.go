package api

import (
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"
	"github.com/taskdeck/taskdeck/internal/api/shared"
	"github.com/taskdeck/taskdeck/internal/domain"
	"github.com/taskdeck/taskdeck/internal/service"
	"github.com/taskdeck/taskdeck/internal/store"
)

// ItemHandler handles to-do item HTTP requests.
type ItemHandler struct {
	itemService service.ItemService
	validator   *validator.Validate
	logger      *slog.Logger
}

// NewItemHandler creates a new ItemHandler.
func NewItemHandler(itemService service.ItemService, logger *slog.Logger) *ItemHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return &ItemHandler{
		itemService: itemService,
		validator:   validator.New(),
		logger:      logger.With(slog.String("component", "item_handler")),
	}
}

// CreateItem handles POST /api/items requests.
func (h *ItemHandler) CreateItem(w http.ResponseWriter, r *http.Request) {
	var req CreateItemRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request format")
		return
	}

	if err := h.validator.Struct(req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Validation error: title and priority are required")
		return
	}

	priority, err := domain.ParsePriority(req.Priority)
	if err != nil {
		shared.RespondWithErrorAndLog(w, r, MapErrorToStatusCode(err), GetSafeErrorMessage(err), err)
		return
	}

	var dueDate *time.Time
	if req.DueDate != nil && *req.DueDate != "" {
		parsed, err := time.Parse(dateFormat, *req.DueDate)
		if err != nil {
			shared.RespondWithError(w, r, http.StatusBadRequest, "Due date must use the YYYY-MM-DD format")
			return
		}
		dueDate = &parsed
	}

	item, err := h.itemService.Create(r.Context(), req.Title, req.Description, priority, dueDate)
	if err != nil {
		shared.RespondWithErrorAndLog(w, r, MapErrorToStatusCode(err), GetSafeErrorMessage(err), err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusCreated, itemToResponse(item))
}

// ListItems handles GET /api/items requests. The optional status query
// parameter filters to pending or completed items; the default is all.
func (h *ItemHandler) ListItems(w http.ResponseWriter, r *http.Request) {
	filter := store.ListFilter(r.URL.Query().Get("status"))
	if filter == "" {
		filter = store.ListAll
	}
	if !store.IsValidListFilter(filter) {
		shared.RespondWithError(w, r, http.StatusBadRequest,
			"Status filter must be one of: pending, completed, all")
		return
	}

	items, err := h.itemService.List(r.Context(), filter)
	if err != nil {
		shared.RespondWithErrorAndLog(w, r, MapErrorToStatusCode(err), GetSafeErrorMessage(err), err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, itemsToResponse(items))
}

// GetItem handles GET /api/items/{id} requests.
func (h *ItemHandler) GetItem(w http.ResponseWriter, r *http.Request) {
	id, ok := h.itemID(w, r)
	if !ok {
		return
	}

	item, err := h.itemService.Get(r.Context(), id)
	if err != nil {
		shared.RespondWithErrorAndLog(w, r, MapErrorToStatusCode(err), GetSafeErrorMessage(err), err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, itemToResponse(item))
}

// CompleteItem handles POST /api/items/{id}/complete requests.
func (h *ItemHandler) CompleteItem(w http.ResponseWriter, r *http.Request) {
	id, ok := h.itemID(w, r)
	if !ok {
		return
	}

	item, err := h.itemService.Complete(r.Context(), id)
	if err != nil {
		shared.RespondWithErrorAndLog(w, r, MapErrorToStatusCode(err), GetSafeErrorMessage(err), err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, itemToResponse(item))
}

// DeleteItem handles DELETE /api/items/{id} requests.
func (h *ItemHandler) DeleteItem(w http.ResponseWriter, r *http.Request) {
	id, ok := h.itemID(w, r)
	if !ok {
		return
	}

	if err := h.itemService.Delete(r.Context(), id); err != nil {
		shared.RespondWithErrorAndLog(w, r, MapErrorToStatusCode(err), GetSafeErrorMessage(err), err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusNoContent, nil)
}

// itemID parses the {id} path parameter, responding with 400 on bad input.
func (h *ItemHandler) itemID(w http.ResponseWriter, r *http.Request) (int64, bool) {
	raw := chi.URLParam(r, "id")
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Item ID must be a positive integer")
		return 0, false
	}
	return id, true
}
