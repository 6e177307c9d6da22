package repository

import (
	"context"
	"errors"

	"hospital-dashboard/internal/domain/entity"
	domainRepo "hospital-dashboard/internal/domain/repository"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type medicalHistoryRepository struct{}

func NewMedicalHistoryRepository() domainRepo.MedicalHistoryRepository {
	return &medicalHistoryRepository{}
}

func (r *medicalHistoryRepository) FindByPatientID(ctx context.Context, db *gorm.DB, patientID int64) (*entity.MedicalHistory, error) {
	var history entity.MedicalHistory
	err := db.WithContext(ctx).Where("patient_id = ?", patientID).First(&history).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &history, nil
}

// Upsert keeps the one-to-one invariant through the unique patient_id index.
func (r *medicalHistoryRepository) Upsert(ctx context.Context, db *gorm.DB, history *entity.MedicalHistory) error {
	return db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "patient_id"}},
		DoUpdates: clause.AssignmentColumns([]string{"personal", "family"}),
	}).Create(history).Error
}

func (r *medicalHistoryRepository) DeleteByPatientID(ctx context.Context, db *gorm.DB, patientID int64) error {
	return db.WithContext(ctx).Where("patient_id = ?", patientID).Delete(&entity.MedicalHistory{}).Error
}
