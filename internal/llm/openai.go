package llm

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"hospital-dashboard/config"

	openai "github.com/sashabaranov/go-openai"
)

// OpenAIClient calls the OpenAI chat completion API.
type OpenAIClient struct {
	client *openai.Client
	model  string
}

// NewOpenAIClient returns nil when no API key is configured so callers can
// treat the assistant as unconfigured.
func NewOpenAIClient(cfg config.AssistantConfig) *OpenAIClient {
	if cfg.APIKey == "" {
		return nil
	}

	clientConfig := openai.DefaultConfig(cfg.APIKey)
	if cfg.BaseURL != "" {
		clientConfig.BaseURL = cfg.BaseURL
	}
	clientConfig.HTTPClient = &http.Client{Timeout: cfg.Timeout}

	model := cfg.Model
	if model == "" {
		model = "gpt-4o-mini"
	}

	return &OpenAIClient{
		client: openai.NewClientWithConfig(clientConfig),
		model:  model,
	}
}

func (c *OpenAIClient) Chat(ctx context.Context, req ChatRequest) (string, error) {
	if c == nil || c.client == nil {
		return "", errors.New("openai client not initialized")
	}

	msgs := make([]openai.ChatCompletionMessage, 0, len(req.Messages))
	for _, m := range req.Messages {
		role := m.Role
		if role != openai.ChatMessageRoleSystem && role != openai.ChatMessageRoleUser && role != openai.ChatMessageRoleAssistant {
			role = openai.ChatMessageRoleUser
		}
		msgs = append(msgs, openai.ChatCompletionMessage{Role: role, Content: m.Content})
	}

	resp, err := c.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model:       c.model,
		Messages:    msgs,
		MaxTokens:   req.MaxTokens,
		Temperature: req.Temperature,
	})
	if err != nil {
		return "", normalizeError(err)
	}
	if len(resp.Choices) == 0 {
		return "", nil
	}
	return resp.Choices[0].Message.Content, nil
}

func normalizeError(err error) error {
	var apiErr *openai.APIError
	if errors.As(err, &apiErr) {
		code := apiErr.Type
		if s, ok := apiErr.Code.(string); ok && s != "" {
			code = s
		}
		return &Error{
			StatusCode: apiErr.HTTPStatusCode,
			Code:       code,
			Message:    apiErr.Message,
			Err:        err,
		}
	}

	var reqErr *openai.RequestError
	if errors.As(err, &reqErr) {
		return &Error{
			StatusCode: reqErr.HTTPStatusCode,
			Message:    http.StatusText(reqErr.HTTPStatusCode),
			Err:        err,
		}
	}

	return fmt.Errorf("openai chat completion: %w", err)
}
