package handler

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"hospital-dashboard/internal/delivery/dto"
	"hospital-dashboard/internal/voice"
	"hospital-dashboard/pkg/response"
	"hospital-dashboard/pkg/validator"

	"github.com/sirupsen/logrus"
)

const maxAudioUpload = 25 << 20

type VoiceClient interface {
	Transcribe(ctx context.Context, filename string, audio io.Reader) (string, error)
	Synthesize(ctx context.Context, text string) (io.ReadCloser, error)
}

type VoiceHandler struct {
	voice     VoiceClient
	validator *validator.CustomValidator
	log       *logrus.Logger
}

func NewVoiceHandler(client VoiceClient, validator *validator.CustomValidator, log *logrus.Logger) *VoiceHandler {
	return &VoiceHandler{
		voice:     client,
		validator: validator,
		log:       log,
	}
}

func (h *VoiceHandler) Speech(w http.ResponseWriter, r *http.Request) {
	var req dto.SpeechRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body")
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	audio, err := h.voice.Synthesize(r.Context(), req.Text)
	if err != nil {
		h.writeError(w, err, "Failed to synthesize speech")
		return
	}
	defer audio.Close()

	w.Header().Set("Content-Type", "audio/mpeg")
	w.WriteHeader(http.StatusOK)
	if _, err := io.Copy(w, audio); err != nil {
		h.log.Warnf("Failed to stream speech: %+v", err)
	}
}

func (h *VoiceHandler) Transcribe(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, maxAudioUpload)
	if err := r.ParseMultipartForm(maxAudioUpload); err != nil {
		response.BadRequest(w, "Invalid multipart body")
		return
	}

	file, header, err := r.FormFile("file")
	if err != nil {
		response.BadRequest(w, "file is required")
		return
	}
	defer file.Close()

	text, err := h.voice.Transcribe(r.Context(), header.Filename, file)
	if err != nil {
		h.writeError(w, err, "Failed to transcribe audio")
		return
	}

	response.Success(w, http.StatusOK, "Audio transcribed successfully", dto.TranscriptionResponse{Text: text})
}

func (h *VoiceHandler) writeError(w http.ResponseWriter, err error, message string) {
	var providerErr *voice.ProviderError
	switch {
	case errors.Is(err, voice.ErrNotConfigured):
		response.ServiceUnavailable(w, "Voice provider not configured")
	case errors.Is(err, voice.ErrEmptyText), errors.Is(err, voice.ErrEmptyAudio):
		response.BadRequest(w, err.Error())
	case errors.As(err, &providerErr):
		h.log.Warnf("%s: %+v", message, err)
		response.BadGateway(w, message)
	default:
		h.log.Warnf("%s: %+v", message, err)
		response.InternalServerError(w, message)
	}
}
