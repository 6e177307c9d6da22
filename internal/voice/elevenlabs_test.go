package voice

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"hospital-dashboard/config"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	return NewClient(config.VoiceConfig{
		APIKey:          "xi-test",
		BaseURL:         srv.URL + "/",
		VoiceID:         "voice-1",
		SpeechModel:     "eleven_multilingual_v2",
		TranscribeModel: "scribe_v2",
		Language:        "fr",
		Timeout:         5 * time.Second,
	})
}

func TestNewClient_NotConfigured(t *testing.T) {
	c := NewClient(config.VoiceConfig{})
	if c != nil {
		t.Fatal("expected nil client without API key")
	}
	if _, err := c.Transcribe(context.Background(), "a.webm", strings.NewReader("x")); !errors.Is(err, ErrNotConfigured) {
		t.Errorf("expected ErrNotConfigured, got %v", err)
	}
	if _, err := c.Synthesize(context.Background(), "bonjour"); !errors.Is(err, ErrNotConfigured) {
		t.Errorf("expected ErrNotConfigured, got %v", err)
	}
}

func TestTranscribe(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/v1/speech-to-text" {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		if r.Header.Get("xi-api-key") != "xi-test" {
			t.Error("missing api key header")
		}
		if err := r.ParseMultipartForm(1 << 20); err != nil {
			t.Errorf("parse multipart: %v", err)
			return
		}
		if r.FormValue("model_id") != "scribe_v2" || r.FormValue("language_code") != "fr" {
			t.Errorf("unexpected form values %v", r.MultipartForm.Value)
		}
		f, _, err := r.FormFile("file")
		if err != nil {
			t.Errorf("missing file: %v", err)
			return
		}
		b, _ := io.ReadAll(f)
		if string(b) != "audio-bytes" {
			t.Errorf("unexpected audio %q", b)
		}
		json.NewEncoder(w).Encode(map[string]string{"text": " Quel est son groupe sanguin ? "})
	})

	text, err := c.Transcribe(context.Background(), "question.webm", strings.NewReader("audio-bytes"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if text != "Quel est son groupe sanguin ?" {
		t.Errorf("unexpected text %q", text)
	}
}

func TestTranscribe_EmptyAudio(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		t.Error("provider should not be called")
	})
	if _, err := c.Transcribe(context.Background(), "a.webm", strings.NewReader("")); !errors.Is(err, ErrEmptyAudio) {
		t.Errorf("expected ErrEmptyAudio, got %v", err)
	}
}

func TestSynthesize(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/v1/text-to-speech/voice-1" {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		var body map[string]string
		json.NewDecoder(r.Body).Decode(&body)
		if body["text"] != "Bonjour" || body["model_id"] != "eleven_multilingual_v2" {
			t.Errorf("unexpected body %v", body)
		}
		w.Header().Set("Content-Type", "audio/mpeg")
		w.Write([]byte("mp3"))
	})

	rc, err := c.Synthesize(context.Background(), "  Bonjour ")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	defer rc.Close()
	b, _ := io.ReadAll(rc)
	if string(b) != "mp3" {
		t.Errorf("unexpected audio %q", b)
	}
}

func TestSynthesize_ProviderError(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		w.Write([]byte(`{"detail":"invalid api key"}`))
	})

	_, err := c.Synthesize(context.Background(), "Bonjour")
	var perr *ProviderError
	if !errors.As(err, &perr) || perr.StatusCode != http.StatusUnauthorized {
		t.Errorf("expected provider error 401, got %v", err)
	}
}
