package response

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestSuccessEnvelope(t *testing.T) {
	rec := httptest.NewRecorder()
	Success(rec, http.StatusCreated, "Created", map[string]int{"id": 7})

	if rec.Code != http.StatusCreated {
		t.Fatalf("status = %d, want 201", rec.Code)
	}
	if ct := rec.Header().Get("Content-Type"); ct != "application/json" {
		t.Fatalf("content type = %q", ct)
	}

	var body struct {
		Success bool           `json:"success"`
		Message string         `json:"message"`
		Data    map[string]int `json:"data"`
	}
	if err := json.NewDecoder(rec.Body).Decode(&body); err != nil {
		t.Fatal(err)
	}
	if !body.Success || body.Message != "Created" || body.Data["id"] != 7 {
		t.Fatalf("unexpected body %+v", body)
	}
}

func TestErrorDefaults(t *testing.T) {
	tests := []struct {
		name    string
		write   func(http.ResponseWriter, string)
		status  int
		message string
	}{
		{"bad request", BadRequest, http.StatusBadRequest, "Bad request"},
		{"not found", NotFound, http.StatusNotFound, "Resource not found"},
		{"internal", InternalServerError, http.StatusInternalServerError, "Internal server error"},
		{"unavailable", ServiceUnavailable, http.StatusServiceUnavailable, "Service unavailable"},
		{"bad gateway", BadGateway, http.StatusBadGateway, "Upstream service error"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			tt.write(rec, "")

			if rec.Code != tt.status {
				t.Fatalf("status = %d, want %d", rec.Code, tt.status)
			}
			var body Response
			if err := json.NewDecoder(rec.Body).Decode(&body); err != nil {
				t.Fatal(err)
			}
			if body.Success || body.Message != tt.message {
				t.Fatalf("unexpected body %+v", body)
			}
		})
	}
}
