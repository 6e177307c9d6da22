// Package voice proxies speech-to-text and text-to-speech calls to
// ElevenLabs so the provider key never reaches the browser.
package voice

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/url"
	"strings"

	"hospital-dashboard/config"
)

var (
	ErrNotConfigured = errors.New("voice provider is not configured")
	ErrEmptyText     = errors.New("text is required")
	ErrEmptyAudio    = errors.New("audio file is required")
)

const maxErrorBody = 4 << 10

// ProviderError is a non-2xx answer from the provider.
type ProviderError struct {
	StatusCode int
	Body       string
}

func (e *ProviderError) Error() string {
	return fmt.Sprintf("elevenlabs: status %d: %s", e.StatusCode, e.Body)
}

type Client struct {
	httpClient      *http.Client
	apiKey          string
	baseURL         string
	voiceID         string
	speechModel     string
	transcribeModel string
	language        string
}

// NewClient returns nil when no API key is configured.
func NewClient(cfg config.VoiceConfig) *Client {
	if cfg.APIKey == "" {
		return nil
	}
	return &Client{
		httpClient:      &http.Client{Timeout: cfg.Timeout},
		apiKey:          cfg.APIKey,
		baseURL:         strings.TrimRight(cfg.BaseURL, "/"),
		voiceID:         cfg.VoiceID,
		speechModel:     cfg.SpeechModel,
		transcribeModel: cfg.TranscribeModel,
		language:        cfg.Language,
	}
}

// Transcribe sends an audio file to the speech-to-text endpoint and
// returns the recognized text.
func (c *Client) Transcribe(ctx context.Context, filename string, audio io.Reader) (string, error) {
	if c == nil {
		return "", ErrNotConfigured
	}

	var body bytes.Buffer
	mw := multipart.NewWriter(&body)
	part, err := mw.CreateFormFile("file", filename)
	if err != nil {
		return "", err
	}
	n, err := io.Copy(part, audio)
	if err != nil {
		return "", fmt.Errorf("read audio: %w", err)
	}
	if n == 0 {
		return "", ErrEmptyAudio
	}
	if err := mw.WriteField("model_id", c.transcribeModel); err != nil {
		return "", err
	}
	if c.language != "" {
		if err := mw.WriteField("language_code", c.language); err != nil {
			return "", err
		}
	}
	if err := mw.Close(); err != nil {
		return "", err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/v1/speech-to-text", &body)
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", mw.FormDataContentType())

	resp, err := c.do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	var out struct {
		Text string `json:"text"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return "", fmt.Errorf("decode transcription: %w", err)
	}
	return strings.TrimSpace(out.Text), nil
}

// Synthesize converts text to MPEG audio. The caller must close the
// returned reader.
func (c *Client) Synthesize(ctx context.Context, text string) (io.ReadCloser, error) {
	if c == nil {
		return nil, ErrNotConfigured
	}
	text = strings.TrimSpace(text)
	if text == "" {
		return nil, ErrEmptyText
	}

	payload, err := json.Marshal(map[string]string{
		"text":     text,
		"model_id": c.speechModel,
	})
	if err != nil {
		return nil, err
	}

	endpoint := c.baseURL + "/v1/text-to-speech/" + url.PathEscape(c.voiceID)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(payload))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "audio/mpeg")

	resp, err := c.do(req)
	if err != nil {
		return nil, err
	}
	return resp.Body, nil
}

func (c *Client) do(req *http.Request) (*http.Response, error) {
	req.Header.Set("xi-api-key", c.apiKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("elevenlabs request: %w", err)
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		defer resp.Body.Close()
		b, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		return nil, &ProviderError{StatusCode: resp.StatusCode, Body: strings.TrimSpace(string(b))}
	}
	return resp, nil
}
