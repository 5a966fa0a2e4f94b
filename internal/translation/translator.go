// Package translation defines the boundary between the application and
// external text translation services. The Translator interface keeps the
// API layer independent of any concrete AI provider.
package translation

import "context"

// Translator translates text into a target language using an external
// service. Implementations must surface failures through the error kinds
// defined in this package.
type Translator interface {
	// Translate returns the given text translated into targetLanguage.
	// The context bounds the external call; cancellation or timeout is
	// reported as ErrTranslationFailed.
	Translate(ctx context.Context, text, targetLanguage string) (string, error)
}
