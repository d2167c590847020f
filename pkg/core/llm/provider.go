// Package llm wraps the model backends used for coaching report generation.
package llm

import "context"

// Provider is the interface every model backend implements.
// Options are provider-specific knobs (model override, json mode, api_key).
type Provider interface {
	GenerateResponse(ctx context.Context, prompt string, systemPrompt string, options map[string]interface{}) (string, error)
}

// JSONMode is the options entry that asks a provider for structured output.
func JSONMode() map[string]interface{} {
	return map[string]interface{}{
		"response_format": map[string]interface{}{"type": "json_object"},
	}
}
