package llm

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"hospital-dashboard/config"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) *OpenAIClient {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	return NewOpenAIClient(config.AssistantConfig{
		APIKey:  "sk-test",
		BaseURL: srv.URL + "/v1",
		Model:   "gpt-4o-mini",
		Timeout: 5 * time.Second,
	})
}

func TestNewOpenAIClient_NoKey(t *testing.T) {
	if c := NewOpenAIClient(config.AssistantConfig{}); c != nil {
		t.Error("expected nil client without API key")
	}
}

func TestOpenAIClient_Chat(t *testing.T) {
	var got struct {
		Model       string  `json:"model"`
		MaxTokens   int     `json:"max_tokens"`
		Temperature float32 `json:"temperature"`
		Messages    []struct {
			Role    string `json:"role"`
			Content string `json:"content"`
		} `json:"messages"`
	}

	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if err := json.NewDecoder(r.Body).Decode(&got); err != nil {
			t.Errorf("decode request: %v", err)
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"id":"x","object":"chat.completion","choices":[{"index":0,"message":{"role":"assistant","content":"Groupe O+."},"finish_reason":"stop"}]}`))
	})

	reply, err := c.Chat(context.Background(), ChatRequest{
		Messages:    []Message{{Role: "system", Content: "ctx"}, {Role: "patient", Content: "groupe ?"}},
		MaxTokens:   1024,
		Temperature: 0.2,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if reply != "Groupe O+." {
		t.Errorf("unexpected reply %q", reply)
	}
	if got.MaxTokens != 1024 || got.Model != "gpt-4o-mini" {
		t.Errorf("unexpected request: %+v", got)
	}
	if len(got.Messages) != 2 || got.Messages[1].Role != "user" {
		t.Errorf("expected unknown role coerced to user, got %+v", got.Messages)
	}
}

func TestOpenAIClient_Chat_NoChoices(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"id":"x","object":"chat.completion","choices":[]}`))
	})

	reply, err := c.Chat(context.Background(), ChatRequest{Messages: []Message{{Role: "user", Content: "?"}}})
	if err != nil || reply != "" {
		t.Errorf("expected empty reply without error, got %q, %v", reply, err)
	}
}

func TestOpenAIClient_Chat_Errors(t *testing.T) {
	tests := []struct {
		name      string
		status    int
		body      string
		wantQuota bool
	}{
		{"rate limited", http.StatusTooManyRequests, `{"error":{"message":"slow down","type":"requests","code":"rate_limit_exceeded"}}`, true},
		{"insufficient quota", http.StatusForbidden, `{"error":{"message":"billing","type":"insufficient_quota","code":"insufficient_quota"}}`, true},
		{"server error", http.StatusInternalServerError, `{"error":{"message":"boom","type":"server_error"}}`, false},
		{"malformed body", http.StatusBadGateway, `<html>bad gateway</html>`, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
				w.Header().Set("Content-Type", "application/json")
				w.WriteHeader(tt.status)
				w.Write([]byte(tt.body))
			})

			_, err := c.Chat(context.Background(), ChatRequest{Messages: []Message{{Role: "user", Content: "?"}}})
			if err == nil {
				t.Fatal("expected an error")
			}
			var llmErr *Error
			if !errors.As(err, &llmErr) {
				t.Fatalf("expected *Error, got %T: %v", err, err)
			}
			if llmErr.StatusCode != tt.status {
				t.Errorf("expected status %d, got %d", tt.status, llmErr.StatusCode)
			}
			if IsQuotaExceeded(err) != tt.wantQuota {
				t.Errorf("IsQuotaExceeded = %v, want %v", !tt.wantQuota, tt.wantQuota)
			}
		})
	}
}

func TestIsQuotaExceeded_PlainError(t *testing.T) {
	if IsQuotaExceeded(errors.New("dial tcp: timeout")) {
		t.Error("plain errors are not quota errors")
	}
}
