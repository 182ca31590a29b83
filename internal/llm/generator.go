package llm

import (
	"context"
	"fmt"

	"github.com/sirupsen/logrus"

	"har2jmx/internal/config"
)

// Provider identifies which external API handles the generation.
type Provider string

const (
	ProviderOpenAI Provider = "openai"
	ProviderGoogle Provider = "google"
)

// ParseProvider normalizes the request's aiProvider field, defaulting to
// OpenAI when empty.
func ParseProvider(name string) (Provider, error) {
	switch name {
	case "", string(ProviderOpenAI):
		return ProviderOpenAI, nil
	case string(ProviderGoogle):
		return ProviderGoogle, nil
	default:
		return "", fmt.Errorf("unsupported provider: %s", name)
	}
}

// Generator produces raw model output for a prompt. Both provider adapters
// implement it so the handler shares one extraction/validation pipeline.
type Generator interface {
	Name() string
	Generate(ctx context.Context, prompt string) (string, error)
}

// ForProvider builds the Generator for the selected provider. A missing API
// key yields a ConfigurationError before any client is constructed.
func ForProvider(ctx context.Context, provider Provider, cfg *config.Config, logger *logrus.Entry) (Generator, error) {
	switch provider {
	case ProviderOpenAI:
		return NewOpenAIGenerator(cfg.OpenAIAPIKey, logger)
	case ProviderGoogle:
		return NewGoogleGenerator(ctx, cfg.GoogleAIAPIKey, logger)
	default:
		return nil, fmt.Errorf("unsupported provider: %s", provider)
	}
}
