// Package gemini implements the translation.Translator interface using
// Google's Gemini API.
package gemini

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/taskdeck/taskdeck/internal/config"
	"github.com/taskdeck/taskdeck/internal/redact"
	"github.com/taskdeck/taskdeck/internal/translation"
	"google.golang.org/genai"
)

// Translator calls the Gemini API to translate item text. It is safe for
// concurrent use; the underlying client manages its own connections.
type Translator struct {
	logger  *slog.Logger
	client  *genai.Client
	model   string
	timeout time.Duration
}

// NewTranslator creates a Gemini-backed Translator from the translation
// configuration. The API key must be present; callers are expected to check
// cfg.Enabled() first and fall back to NewDisabled when it is not.
func NewTranslator(ctx context.Context, logger *slog.Logger, cfg config.TranslationConfig) (*Translator, error) {
	if logger == nil {
		return nil, errors.New("logger cannot be nil")
	}

	if cfg.GeminiAPIKey == "" {
		return nil, fmt.Errorf("%w: gemini API key cannot be empty", translation.ErrInvalidConfig)
	}

	if cfg.ModelName == "" {
		return nil, fmt.Errorf("%w: model name cannot be empty", translation.ErrInvalidConfig)
	}

	if cfg.TimeoutSeconds <= 0 {
		return nil, fmt.Errorf("%w: timeout must be positive", translation.ErrInvalidConfig)
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  cfg.GeminiAPIKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("%w: failed to create Gemini client: %v", translation.ErrInvalidConfig, err)
	}

	return &Translator{
		logger:  logger,
		client:  client,
		model:   cfg.ModelName,
		timeout: time.Duration(cfg.TimeoutSeconds) * time.Second,
	}, nil
}

// Ensure Translator implements translation.Translator
var _ translation.Translator = (*Translator)(nil)

// Translate implements translation.Translator.
// It makes a single call bounded by the configured timeout; failures are
// not retried and the caller decides how to surface them.
func (t *Translator) Translate(ctx context.Context, text, targetLanguage string) (string, error) {
	if strings.TrimSpace(text) == "" {
		return "", translation.ErrEmptyText
	}

	if strings.TrimSpace(targetLanguage) == "" {
		return "", translation.ErrEmptyLanguage
	}

	prompt := fmt.Sprintf("Translate the following text into %s: %s", targetLanguage, text)

	callCtx, cancel := context.WithTimeout(ctx, t.timeout)
	defer cancel()

	t.logger.DebugContext(ctx, "calling Gemini API",
		slog.String("model", t.model),
		slog.String("target_language", targetLanguage),
		slog.Int("text_length", len(text)))

	resp, err := t.client.Models.GenerateContent(callCtx, t.model, genai.Text(prompt), nil)
	if err != nil {
		// API errors can echo request details, key included.
		t.logger.ErrorContext(ctx, "Gemini API call failed",
			slog.String("error", redact.Error(err)),
			slog.String("target_language", targetLanguage))
		return "", fmt.Errorf("%w: %v", translation.ErrTranslationFailed, err)
	}

	if resp == nil || len(resp.Candidates) == 0 {
		return "", fmt.Errorf("%w: no content generated", translation.ErrInvalidResponse)
	}

	if resp.Candidates[0].FinishReason == genai.FinishReasonSafety {
		return "", fmt.Errorf("%w: content blocked by safety filters", translation.ErrInvalidResponse)
	}

	translated := strings.TrimSpace(resp.Text())
	if translated == "" {
		return "", fmt.Errorf("%w: empty translation", translation.ErrInvalidResponse)
	}

	t.logger.DebugContext(ctx, "translation succeeded",
		slog.String("target_language", targetLanguage),
		slog.Int("translated_length", len(translated)))
	return translated, nil
}

// Disabled is a Translator used when no API key is configured. Every call
// fails with translation.ErrUnavailable so the API layer can report a 503
// without the rest of the system caring.
type Disabled struct{}

// NewDisabled returns a Translator that always reports unavailability.
func NewDisabled() *Disabled {
	return &Disabled{}
}

// Ensure Disabled implements translation.Translator
var _ translation.Translator = (*Disabled)(nil)

// Translate implements translation.Translator.
func (*Disabled) Translate(context.Context, string, string) (string, error) {
	return "", fmt.Errorf("%w: API key not configured", translation.ErrUnavailable)
}
