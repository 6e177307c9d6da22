package handler

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"hospital-dashboard/internal/delivery/dto"
	"hospital-dashboard/internal/domain/entity"
	"hospital-dashboard/internal/usecase"
	"hospital-dashboard/pkg/response"
	"hospital-dashboard/pkg/validator"

	"github.com/sirupsen/logrus"
)

type PrescriptionHandler struct {
	prescriptionUsecase usecase.PrescriptionUsecase
	validator           *validator.CustomValidator
	log                 *logrus.Logger
}

func NewPrescriptionHandler(prescriptionUsecase usecase.PrescriptionUsecase, validator *validator.CustomValidator, log *logrus.Logger) *PrescriptionHandler {
	return &PrescriptionHandler{
		prescriptionUsecase: prescriptionUsecase,
		validator:           validator,
		log:                 log,
	}
}

func (h *PrescriptionHandler) CreatePrescription(w http.ResponseWriter, r *http.Request) {
	patientID, ok := pathID(r, "id")
	if !ok {
		response.BadRequest(w, "Invalid patient ID")
		return
	}

	var req dto.CreatePrescriptionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body")
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	prescription, err := h.prescriptionUsecase.CreatePrescription(r.Context(), patientID, &req)
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrPatientNotFound):
			response.NotFound(w, "Patient not found")
		case errors.Is(err, entity.ErrInvalidRecordDate):
			response.BadRequest(w, err.Error())
		default:
			response.InternalServerError(w, "Failed to create prescription")
		}
		return
	}

	response.Success(w, http.StatusCreated, "Prescription created successfully", prescription)
}

func (h *PrescriptionHandler) UpdatePrescription(w http.ResponseWriter, r *http.Request) {
	patientID, prescriptionID, ok := h.ids(w, r)
	if !ok {
		return
	}

	var req dto.UpdatePrescriptionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body")
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	prescription, err := h.prescriptionUsecase.SetDispensed(r.Context(), patientID, prescriptionID, &req)
	if err != nil {
		switch err {
		case usecase.ErrPrescriptionNotFound:
			response.NotFound(w, "Prescription not found")
		default:
			response.InternalServerError(w, "Failed to update prescription")
		}
		return
	}

	response.Success(w, http.StatusOK, "Prescription updated successfully", prescription)
}

func (h *PrescriptionHandler) DeletePrescription(w http.ResponseWriter, r *http.Request) {
	patientID, prescriptionID, ok := h.ids(w, r)
	if !ok {
		return
	}

	if err := h.prescriptionUsecase.DeletePrescription(r.Context(), patientID, prescriptionID); err != nil {
		switch err {
		case usecase.ErrPrescriptionNotFound:
			response.NotFound(w, "Prescription not found")
		default:
			response.InternalServerError(w, "Failed to delete prescription")
		}
		return
	}

	response.NoContent(w)
}

func (h *PrescriptionHandler) DownloadPDF(w http.ResponseWriter, r *http.Request) {
	patientID, prescriptionID, ok := h.ids(w, r)
	if !ok {
		return
	}

	buf, err := h.prescriptionUsecase.RenderPDF(r.Context(), patientID, prescriptionID)
	if err != nil {
		switch err {
		case usecase.ErrPatientNotFound:
			response.NotFound(w, "Patient not found")
		case usecase.ErrPrescriptionNotFound:
			response.NotFound(w, "Prescription not found")
		default:
			response.InternalServerError(w, "Failed to render prescription")
		}
		return
	}

	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", fmt.Sprintf("inline; filename=ordonnance-%d.pdf", prescriptionID))
	w.WriteHeader(http.StatusOK)
	if _, err := buf.WriteTo(w); err != nil {
		h.log.Warnf("Failed to write prescription pdf: %+v", err)
	}
}

func (h *PrescriptionHandler) ids(w http.ResponseWriter, r *http.Request) (int64, int64, bool) {
	patientID, ok := pathID(r, "id")
	if !ok {
		response.BadRequest(w, "Invalid patient ID")
		return 0, 0, false
	}
	prescriptionID, ok := pathID(r, "prescriptionId")
	if !ok {
		response.BadRequest(w, "Invalid prescription ID")
		return 0, 0, false
	}
	return patientID, prescriptionID, true
}
