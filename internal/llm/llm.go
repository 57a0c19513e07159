// Package llm abstracts chat-completion providers behind a small interface.
package llm

import (
	"context"
	"errors"
)

// Message is one turn of a chat-completion conversation.
type Message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// Chat roles understood by the providers.
const (
	RoleSystem = "system"
	RoleUser   = "user"
)

// Client abstracts LLM providers for the resume assistant.
type Client interface {
	Complete(ctx context.Context, messages []Message) (string, error)
}

var (
	// ErrNotConfigured is returned by the placeholder client.
	ErrNotConfigured = errors.New("llm provider not configured")
	// ErrRateLimited maps provider 429 responses.
	ErrRateLimited = errors.New("llm rate limited")
	// ErrUnavailable maps provider 5xx responses and transport failures.
	ErrUnavailable = errors.New("llm unavailable")
)

// PlaceholderClient is a stub implementation used when no provider is wired.
type PlaceholderClient struct{}

// Complete returns ErrNotConfigured.
func (PlaceholderClient) Complete(ctx context.Context, messages []Message) (string, error) {
	_ = ctx
	_ = messages
	return "", ErrNotConfigured
}

var _ Client = PlaceholderClient{}
