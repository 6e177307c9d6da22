package handler

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"hospital-dashboard/internal/delivery/dto"
	"hospital-dashboard/internal/service"
	"hospital-dashboard/internal/usecase"
	"hospital-dashboard/pkg/response"
	"hospital-dashboard/pkg/validator"

	"github.com/sirupsen/logrus"
)

type PatientHandler struct {
	patientUsecase usecase.PatientRecordUsecase
	validator      *validator.CustomValidator
	log            *logrus.Logger
}

func NewPatientHandler(patientUsecase usecase.PatientRecordUsecase, validator *validator.CustomValidator, log *logrus.Logger) *PatientHandler {
	return &PatientHandler{
		patientUsecase: patientUsecase,
		validator:      validator,
		log:            log,
	}
}

func (h *PatientHandler) ListPatients(w http.ResponseWriter, r *http.Request) {
	patients, err := h.patientUsecase.ListPatients(r.Context())
	if err != nil {
		response.InternalServerError(w, "Failed to get patients")
		return
	}

	response.Success(w, http.StatusOK, "Patients retrieved successfully", patients)
}

func (h *PatientHandler) CreatePatient(w http.ResponseWriter, r *http.Request) {
	var req dto.CreatePatientRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body")
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	record, err := h.patientUsecase.CreatePatient(r.Context(), &req)
	if err != nil {
		response.InternalServerError(w, "Failed to create patient")
		return
	}

	response.Success(w, http.StatusCreated, "Patient created successfully", record)
}

func (h *PatientHandler) GetPatient(w http.ResponseWriter, r *http.Request) {
	patientID, ok := pathID(r, "id")
	if !ok {
		response.BadRequest(w, "Invalid patient ID")
		return
	}

	record, err := h.patientUsecase.GetPatientRecord(r.Context(), patientID)
	if err != nil {
		switch err {
		case usecase.ErrPatientNotFound:
			response.NotFound(w, "Patient not found")
		default:
			response.InternalServerError(w, "Failed to get patient")
		}
		return
	}

	response.Success(w, http.StatusOK, "Patient retrieved successfully", record)
}

func (h *PatientHandler) UpdatePatient(w http.ResponseWriter, r *http.Request) {
	patientID, ok := pathID(r, "id")
	if !ok {
		response.BadRequest(w, "Invalid patient ID")
		return
	}

	var req dto.UpdatePatientRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body")
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	patient, err := h.patientUsecase.UpdatePatient(r.Context(), patientID, &req)
	if err != nil {
		switch err {
		case usecase.ErrPatientNotFound:
			response.NotFound(w, "Patient not found")
		default:
			response.InternalServerError(w, "Failed to update patient")
		}
		return
	}

	response.Success(w, http.StatusOK, "Patient updated successfully", patient)
}

func (h *PatientHandler) DeletePatient(w http.ResponseWriter, r *http.Request) {
	patientID, ok := pathID(r, "id")
	if !ok {
		response.BadRequest(w, "Invalid patient ID")
		return
	}

	if err := h.patientUsecase.DeletePatient(r.Context(), patientID); err != nil {
		switch err {
		case usecase.ErrPatientNotFound:
			response.NotFound(w, "Patient not found")
		default:
			response.InternalServerError(w, "Failed to delete patient")
		}
		return
	}

	response.Success(w, http.StatusOK, "Patient deleted successfully", nil)
}

func (h *PatientHandler) UpdateHistory(w http.ResponseWriter, r *http.Request) {
	patientID, ok := pathID(r, "id")
	if !ok {
		response.BadRequest(w, "Invalid patient ID")
		return
	}

	var req dto.UpdateHistoryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body")
		return
	}

	history, err := h.patientUsecase.UpdateMedicalHistory(r.Context(), patientID, &req)
	if err != nil {
		switch err {
		case usecase.ErrPatientNotFound:
			response.NotFound(w, "Patient not found")
		default:
			response.InternalServerError(w, "Failed to update medical history")
		}
		return
	}

	response.Success(w, http.StatusOK, "Medical history updated successfully", history)
}

// GetSummary serves the plain-text record, ?kind=full (default) or essential.
func (h *PatientHandler) GetSummary(w http.ResponseWriter, r *http.Request) {
	patientID, ok := pathID(r, "id")
	if !ok {
		response.BadRequest(w, "Invalid patient ID")
		return
	}

	summary, err := h.patientUsecase.GetSummary(r.Context(), patientID, r.URL.Query().Get("kind"))
	if err != nil {
		switch err {
		case usecase.ErrPatientNotFound:
			response.NotFound(w, "Patient not found")
		case usecase.ErrInvalidSummaryKind:
			response.BadRequest(w, err.Error())
		default:
			response.InternalServerError(w, "Failed to build summary")
		}
		return
	}

	response.Success(w, http.StatusOK, "Summary built successfully", summary)
}

func (h *PatientHandler) UploadPhoto(w http.ResponseWriter, r *http.Request) {
	patientID, ok := pathID(r, "id")
	if !ok {
		response.BadRequest(w, "Invalid patient ID")
		return
	}

	var req dto.UploadPhotoRequest
	if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxJSONBody)).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body")
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	photo, err := h.patientUsecase.UploadPhoto(r.Context(), patientID, &req)
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrPatientNotFound):
			response.NotFound(w, "Patient not found")
		case errors.Is(err, service.ErrInvalidPhoto):
			response.BadRequest(w, "Invalid photo data")
		case errors.Is(err, service.ErrPhotoTooLarge):
			response.Error(w, http.StatusRequestEntityTooLarge, err.Error(), nil)
		default:
			response.InternalServerError(w, "Failed to upload photo")
		}
		return
	}

	response.Success(w, http.StatusOK, "Photo uploaded successfully", photo)
}

func (h *PatientHandler) GetPhoto(w http.ResponseWriter, r *http.Request) {
	patientID, ok := pathID(r, "id")
	if !ok {
		response.BadRequest(w, "Invalid patient ID")
		return
	}

	photo, err := h.patientUsecase.OpenPhoto(r.Context(), patientID)
	if err != nil {
		switch err {
		case usecase.ErrPatientNotFound:
			response.NotFound(w, "Patient not found")
		case usecase.ErrPhotoNotFound:
			response.NotFound(w, "Photo not found")
		default:
			response.InternalServerError(w, "Failed to read photo")
		}
		return
	}
	defer photo.Close()

	w.Header().Set("Content-Type", "image/jpeg")
	w.Header().Set("Cache-Control", "no-cache")
	w.WriteHeader(http.StatusOK)
	if _, err := io.Copy(w, photo); err != nil {
		h.log.Warnf("Failed to stream photo: %+v", err)
	}
}
