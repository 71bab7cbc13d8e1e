package ai

import (
	"context"
	"errors"
)

const (
	ProviderOpenAI     = "openai"
	ProviderAnthropic  = "anthropic"
	ProviderCompatible = "compatible"
)

var (
	ErrMissingAPIKey   = errors.New("ai: missing API key")
	ErrMissingModel    = errors.New("ai: missing model")
	ErrMissingBaseURL  = errors.New("ai: compatible provider requires a base URL")
	ErrInvalidProvider = errors.New("ai: invalid provider")
)

// Provider generates a completion for a system/user prompt pair. An empty
// answer with a nil error means the upstream returned no content.
type Provider interface {
	Name() string
	Synthesize(ctx context.Context, systemPrompt, userPrompt string) (string, error)
}

// Config selects and parameterizes a provider.
type Config struct {
	Provider    string
	APIKey      string
	BaseURL     string
	Model       string
	MaxTokens   int
	Temperature float64
}

// NewProvider creates a provider from config. An empty provider name selects
// OpenAI; "compatible" is any OpenAI-compatible endpoint at a custom base URL.
func NewProvider(cfg Config) (Provider, error) {
	if cfg.APIKey == "" {
		return nil, ErrMissingAPIKey
	}
	if cfg.Model == "" {
		return nil, ErrMissingModel
	}

	switch cfg.Provider {
	case "", ProviderOpenAI:
		return newOpenAIProvider(cfg, ProviderOpenAI), nil
	case ProviderCompatible:
		if cfg.BaseURL == "" {
			return nil, ErrMissingBaseURL
		}
		return newOpenAIProvider(cfg, ProviderCompatible), nil
	case ProviderAnthropic:
		return newAnthropicProvider(cfg), nil
	default:
		return nil, ErrInvalidProvider
	}
}
