package assistant

import (
	"context"
	"fmt"
)

// Role is the message sender role.
type Role string

const (
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

// Message is one turn of the running conversation.
type Message struct {
	Role    Role
	Content string
}

// Provider abstracts the hosted completion service.
type Provider interface {
	// Chat sends the system prompt plus conversation (history then the new
	// prompt) and returns the model's reply text.
	Chat(ctx context.Context, system string, history []Message, prompt string) (string, error)

	// ModelID returns the model identifier this provider is configured with.
	ModelID() string
}

// Config selects and parameterizes a provider.
type Config struct {
	Provider string // gemini|openai|mock
	Model    string
	APIKey   string
}

// NewProvider creates a Provider from configuration.
func NewProvider(ctx context.Context, cfg Config) (Provider, error) {
	switch cfg.Provider {
	case "gemini":
		return NewGeminiProvider(ctx, cfg)
	case "openai":
		return NewOpenAIProvider(cfg)
	case "mock":
		return NewMockProvider(), nil
	default:
		return nil, fmt.Errorf("unknown assistant provider: %q", cfg.Provider)
	}
}
