package repository

import (
	"context"

	"hospital-dashboard/internal/domain/entity"
	domainRepo "hospital-dashboard/internal/domain/repository"

	"gorm.io/gorm"
)

// RecordReader exposes the read side of the record store to the summary
// builder. Every call uses its own short query; no transaction is held.
type RecordReader struct {
	db            *gorm.DB
	patients      domainRepo.PatientRepository
	histories     domainRepo.MedicalHistoryRepository
	notes         domainRepo.ConsultationNoteRepository
	prescriptions domainRepo.PrescriptionRepository
}

func NewRecordReader(
	db *gorm.DB,
	patients domainRepo.PatientRepository,
	histories domainRepo.MedicalHistoryRepository,
	notes domainRepo.ConsultationNoteRepository,
	prescriptions domainRepo.PrescriptionRepository,
) *RecordReader {
	return &RecordReader{
		db:            db,
		patients:      patients,
		histories:     histories,
		notes:         notes,
		prescriptions: prescriptions,
	}
}

func (r *RecordReader) GetPatient(ctx context.Context, id int64) (*entity.Patient, error) {
	return r.patients.FindByID(ctx, r.db, id)
}

func (r *RecordReader) GetMedicalHistory(ctx context.Context, patientID int64) (*entity.MedicalHistory, error) {
	return r.histories.FindByPatientID(ctx, r.db, patientID)
}

func (r *RecordReader) ListConsultationNotes(ctx context.Context, patientID int64) ([]entity.ConsultationNote, error) {
	return r.notes.FindByPatientID(ctx, r.db, patientID)
}

func (r *RecordReader) ListPrescriptions(ctx context.Context, patientID int64) ([]entity.Prescription, error) {
	return r.prescriptions.FindByPatientID(ctx, r.db, patientID)
}
