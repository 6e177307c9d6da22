package repository

import (
	"context"
	"errors"

	"hospital-dashboard/internal/domain/entity"
	domainRepo "hospital-dashboard/internal/domain/repository"

	"gorm.io/gorm"
)

type patientRepository struct{}

func NewPatientRepository() domainRepo.PatientRepository {
	return &patientRepository{}
}

func (r *patientRepository) Create(ctx context.Context, db *gorm.DB, patient *entity.Patient) error {
	return db.WithContext(ctx).Omit("MedicalHistory", "ConsultationNotes", "Prescriptions").Create(patient).Error
}

func (r *patientRepository) FindByID(ctx context.Context, db *gorm.DB, id int64) (*entity.Patient, error) {
	var patient entity.Patient
	err := db.WithContext(ctx).Where("id = ?", id).First(&patient).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &patient, nil
}

func (r *patientRepository) FindAll(ctx context.Context, db *gorm.DB) ([]entity.Patient, error) {
	var patients []entity.Patient
	err := db.WithContext(ctx).Select("id", "full_name").Order("id").Find(&patients).Error
	if err != nil {
		return nil, err
	}
	return patients, nil
}

func (r *patientRepository) Update(ctx context.Context, db *gorm.DB, patient *entity.Patient) error {
	return db.WithContext(ctx).Omit("MedicalHistory", "ConsultationNotes", "Prescriptions").Save(patient).Error
}

func (r *patientRepository) UpdatePhoto(ctx context.Context, db *gorm.DB, id int64, photoRef string) error {
	return db.WithContext(ctx).Model(&entity.Patient{}).
		Where("id = ?", id).
		Update("photo_ref", photoRef).Error
}

// Delete returns affected rows: 0 means the patient did not exist.
func (r *patientRepository) Delete(ctx context.Context, db *gorm.DB, id int64) (int64, error) {
	result := db.WithContext(ctx).Where("id = ?", id).Delete(&entity.Patient{})
	return result.RowsAffected, result.Error
}
