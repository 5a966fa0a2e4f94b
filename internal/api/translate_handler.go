package api

import (
	"log/slog"
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/taskdeck/taskdeck/internal/api/shared"
	"github.com/taskdeck/taskdeck/internal/translation"
)

// TranslateHandler handles text translation HTTP requests. Translation is a
// read-only operation over item text; it never touches stored data.
type TranslateHandler struct {
	translator translation.Translator
	validator  *validator.Validate
	logger     *slog.Logger
}

// NewTranslateHandler creates a new TranslateHandler.
func NewTranslateHandler(translator translation.Translator, logger *slog.Logger) *TranslateHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return &TranslateHandler{
		translator: translator,
		validator:  validator.New(),
		logger:     logger.With(slog.String("component", "translate_handler")),
	}
}

// Translate handles POST /api/translate requests.
func (h *TranslateHandler) Translate(w http.ResponseWriter, r *http.Request) {
	var req TranslateRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request format")
		return
	}

	if err := h.validator.Struct(req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Validation error: text and target_language are required")
		return
	}

	translated, err := h.translator.Translate(r.Context(), req.Text, req.TargetLanguage)
	if err != nil {
		shared.RespondWithErrorAndLog(w, r, MapErrorToStatusCode(err), GetSafeErrorMessage(err), err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, TranslateResponse{TranslatedText: translated})
}
