package translation

import "errors"

// Common errors returned by translation implementations
var (
	// ErrTranslationFailed is returned when the external call fails for any
	// general reason (network failure, quota, auth).
	ErrTranslationFailed = errors.New("failed to translate text")

	// ErrInvalidResponse is returned when the service response is empty or
	// cannot be interpreted.
	ErrInvalidResponse = errors.New("invalid response from translation service")

	// ErrUnavailable is returned when translation is not configured, e.g.
	// the API key is missing. The rest of the application keeps working.
	ErrUnavailable = errors.New("translation service unavailable")

	// ErrInvalidConfig is returned when the translator configuration is invalid.
	ErrInvalidConfig = errors.New("invalid translator configuration")

	// ErrEmptyText is returned when there is no text to translate.
	ErrEmptyText = errors.New("text to translate cannot be empty")

	// ErrEmptyLanguage is returned when no target language is given.
	ErrEmptyLanguage = errors.New("target language cannot be empty")
)
