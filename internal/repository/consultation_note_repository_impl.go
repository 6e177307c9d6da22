package repository

import (
	"context"
	"errors"

	"hospital-dashboard/internal/domain/entity"
	domainRepo "hospital-dashboard/internal/domain/repository"

	"gorm.io/gorm"
)

type consultationNoteRepository struct{}

func NewConsultationNoteRepository() domainRepo.ConsultationNoteRepository {
	return &consultationNoteRepository{}
}

func (r *consultationNoteRepository) Create(ctx context.Context, db *gorm.DB, note *entity.ConsultationNote) error {
	return db.WithContext(ctx).Create(note).Error
}

func (r *consultationNoteRepository) FindByID(ctx context.Context, db *gorm.DB, patientID, id int64) (*entity.ConsultationNote, error) {
	var note entity.ConsultationNote
	err := db.WithContext(ctx).Where("id = ? AND patient_id = ?", id, patientID).First(&note).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &note, nil
}

func (r *consultationNoteRepository) FindByPatientID(ctx context.Context, db *gorm.DB, patientID int64) ([]entity.ConsultationNote, error) {
	var notes []entity.ConsultationNote
	err := db.WithContext(ctx).
		Where("patient_id = ?", patientID).
		Order("date_key DESC").
		Order("id DESC").
		Find(&notes).Error
	if err != nil {
		return nil, err
	}
	return notes, nil
}

func (r *consultationNoteRepository) Delete(ctx context.Context, db *gorm.DB, patientID, id int64) (int64, error) {
	result := db.WithContext(ctx).Where("id = ? AND patient_id = ?", id, patientID).Delete(&entity.ConsultationNote{})
	return result.RowsAffected, result.Error
}

func (r *consultationNoteRepository) DeleteByPatientID(ctx context.Context, db *gorm.DB, patientID int64) error {
	return db.WithContext(ctx).Where("patient_id = ?", patientID).Delete(&entity.ConsultationNote{}).Error
}
