package converter

import (
	"fmt"

	"hospital-dashboard/internal/delivery/dto"
	"hospital-dashboard/internal/domain/entity"
)

// PhotoURL is the API path serving the patient's identity photo, or "" when
// none was uploaded.
func PhotoURL(patient *entity.Patient) string {
	if patient == nil || !patient.HasPhoto() {
		return ""
	}
	return fmt.Sprintf("/api/v1/patients/%d/photo", patient.ID)
}

// PatientToResponse converts a Patient entity to PatientResponse DTO
func PatientToResponse(patient *entity.Patient) *dto.PatientResponse {
	if patient == nil {
		return nil
	}

	return &dto.PatientResponse{
		ID:               patient.ID,
		FullName:         patient.FullName,
		BirthDate:        patient.BirthDate,
		Sex:              patient.Sex,
		BloodGroup:       patient.BloodGroup,
		NationalID:       patient.NationalID,
		Address:          patient.Address,
		Contact:          patient.Contact,
		EmergencyContact: patient.EmergencyContact,
		PhotoURL:         PhotoURL(patient),
		CreatedAt:        patient.CreatedAt,
		UpdatedAt:        patient.UpdatedAt,
	}
}

func PatientsToListItems(patients []entity.Patient) []dto.PatientListItem {
	items := make([]dto.PatientListItem, len(patients))
	for i, p := range patients {
		items[i] = dto.PatientListItem{ID: p.ID, FullName: p.FullName}
	}
	return items
}

// MedicalHistoryToResponse maps a missing history to empty texts.
func MedicalHistoryToResponse(history *entity.MedicalHistory) dto.MedicalHistoryResponse {
	if history == nil {
		return dto.MedicalHistoryResponse{}
	}
	return dto.MedicalHistoryResponse{
		Personal: history.Personal,
		Family:   history.Family,
	}
}

func PatientRecordToResponse(
	patient *entity.Patient,
	history *entity.MedicalHistory,
	notes []entity.ConsultationNote,
	prescriptions []entity.Prescription,
) *dto.PatientRecordResponse {
	return &dto.PatientRecordResponse{
		Patient:           *PatientToResponse(patient),
		MedicalHistory:    MedicalHistoryToResponse(history),
		ConsultationNotes: NotesToResponses(notes),
		Prescriptions:     PrescriptionsToResponses(prescriptions),
	}
}
