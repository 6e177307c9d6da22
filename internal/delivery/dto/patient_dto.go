package dto

import "time"

// Request DTOs

type CreatePatientRequest struct {
	FullName         string `json:"full_name" validate:"required,max=200"`
	BirthDate        string `json:"birth_date" validate:"required,recorddate"`
	Sex              string `json:"sex" validate:"required,max=32"`
	BloodGroup       string `json:"blood_group" validate:"omitempty,max=8"`
	NationalID       string `json:"national_id" validate:"max=64"`
	Address          string `json:"address"`
	Contact          string `json:"contact"`
	EmergencyContact string `json:"emergency_contact"`
	Personal         string `json:"personal_history"`
	Family           string `json:"family_history"`
}

// UpdatePatientRequest edits identity fields. Nil fields are left unchanged.
type UpdatePatientRequest struct {
	FullName         *string `json:"full_name" validate:"omitempty,min=1,max=200"`
	BirthDate        *string `json:"birth_date" validate:"omitempty,recorddate"`
	Sex              *string `json:"sex" validate:"omitempty,min=1,max=32"`
	BloodGroup       *string `json:"blood_group" validate:"omitempty,max=8"`
	NationalID       *string `json:"national_id" validate:"omitempty,max=64"`
	Address          *string `json:"address"`
	Contact          *string `json:"contact"`
	EmergencyContact *string `json:"emergency_contact"`
}

type UpdateHistoryRequest struct {
	Personal string `json:"personal"`
	Family   string `json:"family"`
}

type UploadPhotoRequest struct {
	Photo string `json:"photo" validate:"required"`
}

// Response DTOs

type PatientListItem struct {
	ID       int64  `json:"id"`
	FullName string `json:"full_name"`
}

type PatientListResponse struct {
	Patients []PatientListItem `json:"patients"`
	Total    int               `json:"total"`
}

type PatientResponse struct {
	ID               int64     `json:"id"`
	FullName         string    `json:"full_name"`
	BirthDate        string    `json:"birth_date"`
	Sex              string    `json:"sex"`
	BloodGroup       string    `json:"blood_group"`
	NationalID       string    `json:"national_id"`
	Address          string    `json:"address"`
	Contact          string    `json:"contact"`
	EmergencyContact string    `json:"emergency_contact"`
	PhotoURL         string    `json:"photo_url"`
	CreatedAt        time.Time `json:"created_at"`
	UpdatedAt        time.Time `json:"updated_at"`
}

type MedicalHistoryResponse struct {
	Personal string `json:"personal"`
	Family   string `json:"family"`
}

// PatientRecordResponse is the full dashboard view of one patient.
type PatientRecordResponse struct {
	Patient           PatientResponse        `json:"patient"`
	MedicalHistory    MedicalHistoryResponse `json:"medical_history"`
	ConsultationNotes []NoteResponse         `json:"consultation_notes"`
	Prescriptions     []PrescriptionResponse `json:"prescriptions"`
}

type SummaryResponse struct {
	Kind string `json:"kind"`
	Text string `json:"text"`
}

type PhotoResponse struct {
	PhotoURL string `json:"photo_url"`
}
