package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"hospital-dashboard/internal/delivery/dto"
	"hospital-dashboard/internal/domain/entity"
	"hospital-dashboard/internal/usecase"
	"hospital-dashboard/pkg/response"
	"hospital-dashboard/pkg/validator"
)

type ConsultationNoteHandler struct {
	noteUsecase usecase.ConsultationNoteUsecase
	validator   *validator.CustomValidator
}

func NewConsultationNoteHandler(noteUsecase usecase.ConsultationNoteUsecase, validator *validator.CustomValidator) *ConsultationNoteHandler {
	return &ConsultationNoteHandler{
		noteUsecase: noteUsecase,
		validator:   validator,
	}
}

func (h *ConsultationNoteHandler) CreateNote(w http.ResponseWriter, r *http.Request) {
	patientID, ok := pathID(r, "id")
	if !ok {
		response.BadRequest(w, "Invalid patient ID")
		return
	}

	var req dto.CreateNoteRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body")
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	note, err := h.noteUsecase.CreateNote(r.Context(), patientID, &req)
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrPatientNotFound):
			response.NotFound(w, "Patient not found")
		case errors.Is(err, entity.ErrInvalidRecordDate):
			response.BadRequest(w, err.Error())
		default:
			response.InternalServerError(w, "Failed to create consultation note")
		}
		return
	}

	response.Success(w, http.StatusCreated, "Consultation note created successfully", note)
}

func (h *ConsultationNoteHandler) DeleteNote(w http.ResponseWriter, r *http.Request) {
	patientID, ok := pathID(r, "id")
	if !ok {
		response.BadRequest(w, "Invalid patient ID")
		return
	}
	noteID, ok := pathID(r, "noteId")
	if !ok {
		response.BadRequest(w, "Invalid note ID")
		return
	}

	if err := h.noteUsecase.DeleteNote(r.Context(), patientID, noteID); err != nil {
		switch err {
		case usecase.ErrNoteNotFound:
			response.NotFound(w, "Consultation note not found")
		default:
			response.InternalServerError(w, "Failed to delete consultation note")
		}
		return
	}

	response.NoContent(w)
}
