package entity

import "context"

// Config selects the recognizer implementation.
type Config struct {
	// GeminiAPIKey enables the LLM-backed recognizer when set.
	GeminiAPIKey string

	// Disabled forces the null-object recognizer, useful for tests and for
	// running without the statistical model.
	Disabled bool
}

// New builds the process-wide Recognizer: Gemini when an API key is
// configured, otherwise the bundled prose model, otherwise the null object.
// The returned recognizer is read-only and shared by all extraction calls.
func New(ctx context.Context, cfg Config) (Recognizer, error) {
	if cfg.Disabled {
		return NewNoop(), nil
	}
	if cfg.GeminiAPIKey != "" {
		return NewGemini(ctx, cfg.GeminiAPIKey)
	}
	return NewProse(), nil
}
