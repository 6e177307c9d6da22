package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"

	"hospital-dashboard/internal/assistant"
	"hospital-dashboard/internal/delivery/dto"
	"hospital-dashboard/pkg/response"
)

const (
	errMessageRequired   = "message is required"
	errPatientIDRequired = "patient_id is required"
)

// Assistant answers one chat turn about a patient record.
type Assistant interface {
	Answer(ctx context.Context, patientID int64, message string) (*assistant.Result, error)
}

// ChatHandler keeps a bare {reply} / {error} contract instead of the usual
// envelope. Every valid request gets a 200, degraded or not.
type ChatHandler struct {
	assistant Assistant
}

func NewChatHandler(gateway Assistant) *ChatHandler {
	return &ChatHandler{assistant: gateway}
}

func (h *ChatHandler) Chat(w http.ResponseWriter, r *http.Request) {
	var req dto.ChatRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		chatError(w, errMessageRequired)
		return
	}

	var message string
	if err := json.Unmarshal(req.Message, &message); err != nil || strings.TrimSpace(message) == "" {
		chatError(w, errMessageRequired)
		return
	}
	if req.PatientID == nil {
		chatError(w, errPatientIDRequired)
		return
	}

	result, err := h.assistant.Answer(r.Context(), *req.PatientID, message)
	if err != nil {
		chatError(w, errMessageRequired)
		return
	}

	response.JSON(w, http.StatusOK, dto.ChatResponse{Reply: result.Reply})
}

func chatError(w http.ResponseWriter, message string) {
	response.JSON(w, http.StatusBadRequest, dto.ChatErrorResponse{Error: message})
}
