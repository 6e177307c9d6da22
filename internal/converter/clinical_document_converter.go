package converter

import (
	"hospital-dashboard/internal/delivery/dto"
	"hospital-dashboard/internal/domain/entity"
)

func NoteToResponse(note *entity.ConsultationNote) *dto.NoteResponse {
	if note == nil {
		return nil
	}
	return &dto.NoteResponse{
		ID:        note.ID,
		Date:      note.Date,
		Content:   note.Content,
		CreatedAt: note.CreatedAt,
	}
}

func NotesToResponses(notes []entity.ConsultationNote) []dto.NoteResponse {
	responses := make([]dto.NoteResponse, len(notes))
	for i := range notes {
		responses[i] = *NoteToResponse(&notes[i])
	}
	return responses
}

func PrescriptionToResponse(prescription *entity.Prescription) *dto.PrescriptionResponse {
	if prescription == nil {
		return nil
	}
	return &dto.PrescriptionResponse{
		ID:        prescription.ID,
		Date:      prescription.Date,
		Physician: prescription.Physician,
		Content:   prescription.Content,
		Dispensed: prescription.Dispensed,
		CreatedAt: prescription.CreatedAt,
	}
}

func PrescriptionsToResponses(prescriptions []entity.Prescription) []dto.PrescriptionResponse {
	responses := make([]dto.PrescriptionResponse, len(prescriptions))
	for i := range prescriptions {
		responses[i] = *PrescriptionToResponse(&prescriptions[i])
	}
	return responses
}
