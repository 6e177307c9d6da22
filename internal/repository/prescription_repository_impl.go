package repository

import (
	"context"
	"errors"

	"hospital-dashboard/internal/domain/entity"
	domainRepo "hospital-dashboard/internal/domain/repository"

	"gorm.io/gorm"
)

type prescriptionRepository struct{}

func NewPrescriptionRepository() domainRepo.PrescriptionRepository {
	return &prescriptionRepository{}
}

func (r *prescriptionRepository) Create(ctx context.Context, db *gorm.DB, prescription *entity.Prescription) error {
	return db.WithContext(ctx).Create(prescription).Error
}

func (r *prescriptionRepository) FindByID(ctx context.Context, db *gorm.DB, patientID, id int64) (*entity.Prescription, error) {
	var prescription entity.Prescription
	err := db.WithContext(ctx).Where("id = ? AND patient_id = ?", id, patientID).First(&prescription).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &prescription, nil
}

func (r *prescriptionRepository) FindByPatientID(ctx context.Context, db *gorm.DB, patientID int64) ([]entity.Prescription, error) {
	var prescriptions []entity.Prescription
	err := db.WithContext(ctx).
		Where("patient_id = ?", patientID).
		Order("date_key DESC").
		Order("id DESC").
		Find(&prescriptions).Error
	if err != nil {
		return nil, err
	}
	return prescriptions, nil
}

func (r *prescriptionRepository) UpdateDispensed(ctx context.Context, db *gorm.DB, id int64, dispensed bool) error {
	return db.WithContext(ctx).Model(&entity.Prescription{}).
		Where("id = ?", id).
		Update("dispensed", dispensed).Error
}

func (r *prescriptionRepository) Delete(ctx context.Context, db *gorm.DB, patientID, id int64) (int64, error) {
	result := db.WithContext(ctx).Where("id = ? AND patient_id = ?", id, patientID).Delete(&entity.Prescription{})
	return result.RowsAffected, result.Error
}

func (r *prescriptionRepository) DeleteByPatientID(ctx context.Context, db *gorm.DB, patientID int64) error {
	return db.WithContext(ctx).Where("patient_id = ?", patientID).Delete(&entity.Prescription{}).Error
}
