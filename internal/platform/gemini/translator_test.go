package gemini_test

import (
	"context"
	"log/slog"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/taskdeck/taskdeck/internal/config"
	"github.com/taskdeck/taskdeck/internal/platform/gemini"
	"github.com/taskdeck/taskdeck/internal/translation"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelError}))
}

func TestNewTranslatorConfigValidation(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		cfg  config.TranslationConfig
	}{
		{
			name: "missing_api_key",
			cfg: config.TranslationConfig{
				ModelName:      "gemini-2.5-flash",
				TimeoutSeconds: 30,
			},
		},
		{
			name: "missing_model_name",
			cfg: config.TranslationConfig{
				GeminiAPIKey:   "test-key",
				TimeoutSeconds: 30,
			},
		},
		{
			name: "non_positive_timeout",
			cfg: config.TranslationConfig{
				GeminiAPIKey: "test-key",
				ModelName:    "gemini-2.5-flash",
			},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			tr, err := gemini.NewTranslator(context.Background(), testLogger(), tc.cfg)
			assert.ErrorIs(t, err, translation.ErrInvalidConfig)
			assert.Nil(t, tr)
		})
	}
}

func TestNewTranslatorRequiresLogger(t *testing.T) {
	t.Parallel()

	tr, err := gemini.NewTranslator(context.Background(), nil, config.TranslationConfig{
		GeminiAPIKey:   "test-key",
		ModelName:      "gemini-2.5-flash",
		TimeoutSeconds: 30,
	})
	assert.Error(t, err)
	assert.Nil(t, tr)
}

func TestTranslateInputValidation(t *testing.T) {
	t.Parallel()

	tr, err := gemini.NewTranslator(context.Background(), testLogger(), config.TranslationConfig{
		GeminiAPIKey:   "test-key",
		ModelName:      "gemini-2.5-flash",
		TimeoutSeconds: 30,
	})
	require.NoError(t, err)

	// Both checks fail before any API call is made.
	_, err = tr.Translate(context.Background(), "   ", "Spanish")
	assert.ErrorIs(t, err, translation.ErrEmptyText)

	_, err = tr.Translate(context.Background(), "Buy milk", "  ")
	assert.ErrorIs(t, err, translation.ErrEmptyLanguage)
}

func TestDisabledTranslator(t *testing.T) {
	t.Parallel()

	tr := gemini.NewDisabled()
	translated, err := tr.Translate(context.Background(), "Buy milk", "Spanish")

	assert.ErrorIs(t, err, translation.ErrUnavailable)
	assert.Empty(t, translated)
}
