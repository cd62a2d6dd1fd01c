// Package llm provides a unified interface for chat-completion backends.
package llm

import (
	"context"
	"errors"
	"time"
)

// Role represents the role of a message sender.
type Role string

const (
	RoleSystem Role = "system"
	RoleUser   Role = "user"
)

// Message represents a chat message.
type Message struct {
	Role    Role
	Content string
}

// CompletionRequest represents a request to the backend.
type CompletionRequest struct {
	Messages    []Message
	MaxTokens   int
	Temperature float64
}

// CompletionResponse represents the backend's freeform text response.
type CompletionResponse struct {
	Content      string
	FinishReason string
}

// Provider is the abstraction over chat-completion backends.
type Provider interface {
	// Complete sends a completion request and returns the text response.
	Complete(ctx context.Context, req CompletionRequest) (CompletionResponse, error)

	// Name returns the provider identifier.
	Name() string
}

// ErrNoCredential indicates a keyed provider was configured without an
// API key. Detected before any network call is attempted.
var ErrNoCredential = errors.New("no API key configured")

// ProviderConfig holds common configuration for providers.
type ProviderConfig struct {
	APIKey  string
	BaseURL string // For OpenRouter or custom endpoints
	Model   string
	Timeout time.Duration
}

// DefaultProviderConfig returns sensible defaults.
func DefaultProviderConfig() ProviderConfig {
	return ProviderConfig{
		Timeout: 30 * time.Second,
	}
}
