// Package llm provides provider-agnostic LLM client functionality.
package llm

import (
	"context"
)

// GenerateResponseResult holds a completion plus token usage stats.
type GenerateResponseResult struct {
	Content          string
	PromptTokens     int
	CompletionTokens int
	TotalTokens      int
}

// LLMClient defines the interface for LLM operations.
// Use this interface for dependency injection to enable mocking in tests.
type LLMClient interface {
	// GenerateResponse generates a chat completion response.
	// Set jsonMode=true to request a JSON-only response body from providers
	// that support structured output.
	GenerateResponse(ctx context.Context, prompt string, systemMessage string, temperature float64, jsonMode bool) (*GenerateResponseResult, error)

	// GetModel returns the configured model name.
	GetModel() string
}
