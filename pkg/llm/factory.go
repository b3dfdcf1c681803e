package llm

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"
)

// FactoryConfig selects and configures a provider.
type FactoryConfig struct {
	Provider string // "openai", "anthropic", or "gemini"
	Endpoint string
	Model    string
	APIKey   string
	Timeout  time.Duration
}

// NewClientForProvider creates an LLM client for the configured provider.
// Returns the LLMClient interface to enable dependency injection of mocks.
func NewClientForProvider(ctx context.Context, cfg *FactoryConfig, logger *zap.Logger) (LLMClient, error) {
	clientCfg := &Config{
		Endpoint: cfg.Endpoint,
		Model:    cfg.Model,
		APIKey:   cfg.APIKey,
		Timeout:  cfg.Timeout,
	}

	switch cfg.Provider {
	case "openai":
		return NewClient(clientCfg, logger)
	case "anthropic":
		return NewAnthropicClient(clientCfg, logger)
	case "gemini":
		return NewGeminiClient(ctx, clientCfg, logger)
	default:
		return nil, fmt.Errorf("unsupported LLM provider %q", cfg.Provider)
	}
}
