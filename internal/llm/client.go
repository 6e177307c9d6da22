package llm

import (
	"context"
	"errors"
	"fmt"
	"net/http"
)

// Message is a single chat message. Role is "system", "user" or "assistant".
type Message struct {
	Role    string
	Content string
}

type ChatRequest struct {
	Messages    []Message
	MaxTokens   int
	Temperature float32
}

// ChatClient sends one chat-completion request and returns the first
// choice's text. An empty string with a nil error means the provider
// answered without content.
type ChatClient interface {
	Chat(ctx context.Context, req ChatRequest) (string, error)
}

// Provider codes that signal exhausted quota or rate limiting.
const (
	CodeInsufficientQuota = "insufficient_quota"
	CodeRateLimitExceeded = "rate_limit_exceeded"
)

// Error is a provider failure normalized from the SDK error types.
type Error struct {
	StatusCode int
	Code       string
	Message    string
	Err        error
}

func (e *Error) Error() string {
	if e.Code != "" {
		return fmt.Sprintf("llm: status %d (%s): %s", e.StatusCode, e.Code, e.Message)
	}
	return fmt.Sprintf("llm: status %d: %s", e.StatusCode, e.Message)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// IsQuotaExceeded reports whether err carries a rate-limit or quota signal:
// HTTP 429 or one of the provider quota codes.
func IsQuotaExceeded(err error) bool {
	var llmErr *Error
	if !errors.As(err, &llmErr) {
		return false
	}
	if llmErr.StatusCode == http.StatusTooManyRequests {
		return true
	}
	switch llmErr.Code {
	case CodeInsufficientQuota, CodeRateLimitExceeded:
		return true
	}
	return false
}
